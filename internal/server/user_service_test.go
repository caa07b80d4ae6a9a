package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusuke/career-tracker/internal/config"
	"github.com/yusuke/career-tracker/internal/db"
	"github.com/yusuke/career-tracker/internal/types"
)

// fakeUserStore is an in-memory DBClient for unit tests.
type fakeUserStore struct {
	users       map[uuid.UUID]*db.User
	byEmail     map[string]uuid.UUID
	failOnCheck bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:   make(map[uuid.UUID]*db.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.byEmail[email] = id
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return f.users[id], nil
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	if f.failOnCheck {
		return false, fmt.Errorf("connection refused")
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func newTestUserService(store *fakeUserStore) *UserService {
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
}

func TestUserService_Register(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	user, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Yamada Taro",
		Email:    "taro@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Yamada Taro", user.Name)
	assert.Equal(t, "taro@example.com", user.Email)
	assert.True(t, user.PasswordSet)

	// Stored hash must not be the raw password
	stored := store.users[user.ID]
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	_, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Yamada Taro", Email: "taro@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Impostor", Email: "taro@example.com", Password: "password456",
	})
	require.Error(t, err)

	var dupErr *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "taro@example.com", dupErr.Email)
}

func TestUserService_Register_StoreFailure(t *testing.T) {
	store := newFakeUserStore()
	store.failOnCheck = true
	service := newTestUserService(store)

	_, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Yamada Taro", Email: "taro@example.com", Password: "password123",
	})
	assert.Error(t, err)
}

func TestUserService_Login(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	registered, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Yamada Taro", Email: "taro@example.com", Password: "password123",
	})
	require.NoError(t, err)

	user, err := service.Login(context.Background(), &types.LoginRequest{
		Email: "taro@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	_, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Yamada Taro", Email: "taro@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &types.LoginRequest{
		Email: "taro@example.com", Password: "wrong-password",
	})
	require.Error(t, err)

	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	})
	require.Error(t, err)

	// The same error for unknown email and wrong password
	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestUserService_UpdatePassword(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	user, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Yamada Taro", Email: "taro@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	err = service.UpdatePassword(context.Background(), user.ID, "old-password", "new-password")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &types.LoginRequest{
		Email: "taro@example.com", Password: "new-password",
	})
	assert.NoError(t, err)

	_, err = service.Login(context.Background(), &types.LoginRequest{
		Email: "taro@example.com", Password: "old-password",
	})
	assert.Error(t, err)
}

func TestUserService_UpdatePassword_WrongCurrent(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	user, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Yamada Taro", Email: "taro@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	err = service.UpdatePassword(context.Background(), user.ID, "not-the-password", "new-password")
	require.Error(t, err)

	var mismatchErr *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatchErr)
}

func TestUserService_UpdatePassword_UnknownUser(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	err := service.UpdatePassword(context.Background(), uuid.New(), "whatever", "new-password")
	require.Error(t, err)

	var notFoundErr *ErrUserNotFound
	assert.ErrorAs(t, err, &notFoundErr)
}
