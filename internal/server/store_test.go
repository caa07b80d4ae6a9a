package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yusuke/career-tracker/internal/db"
)

// fakeStore is an in-memory Store for handler tests. Per-project entry
// errors can be injected through entriesErr.
type fakeStore struct {
	users      map[uuid.UUID]*db.User
	projects   map[uuid.UUID]*db.Project
	entries    map[uuid.UUID]*db.Entry
	logs       map[uuid.UUID]*db.InterviewLog
	inquiries  map[uuid.UUID]*db.ContactInquiry
	entriesErr map[uuid.UUID]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[uuid.UUID]*db.User),
		projects:   make(map[uuid.UUID]*db.Project),
		entries:    make(map[uuid.UUID]*db.Entry),
		logs:       make(map[uuid.UUID]*db.InterviewLog),
		inquiries:  make(map[uuid.UUID]*db.ContactInquiry),
		entriesErr: make(map[uuid.UUID]error),
	}
}

func (f *fakeStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeStore) CreateProject(_ context.Context, p *db.Project) (uuid.UUID, error) {
	id := uuid.New()
	stored := *p
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.projects[id] = &stored
	return id, nil
}

func (f *fakeStore) GetProject(_ context.Context, userID, projectID uuid.UUID) (*db.Project, error) {
	p, ok := f.projects[projectID]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

func (f *fakeStore) ListProjects(_ context.Context, userID uuid.UUID) ([]db.Project, error) {
	var out []db.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateProject(_ context.Context, p *db.Project) error {
	existing, ok := f.projects[p.ID]
	if !ok || existing.UserID != p.UserID {
		return fmt.Errorf("project not found: %s", p.ID)
	}
	updated := *p
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.projects[p.ID] = &updated
	return nil
}

func (f *fakeStore) DeleteProject(_ context.Context, userID, projectID uuid.UUID) error {
	p, ok := f.projects[projectID]
	if !ok || p.UserID != userID {
		return fmt.Errorf("project not found: %s", projectID)
	}
	delete(f.projects, projectID)
	for id, e := range f.entries {
		if e.ProjectID == projectID {
			delete(f.entries, id)
		}
	}
	return nil
}

func (f *fakeStore) CreateEntry(_ context.Context, e *db.Entry) (uuid.UUID, error) {
	id := uuid.New()
	stored := *e
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.entries[id] = &stored
	return id, nil
}

func (f *fakeStore) ListEntries(_ context.Context, userID, projectID uuid.UUID) ([]db.Entry, error) {
	if err := f.entriesErr[projectID]; err != nil {
		return nil, err
	}
	var out []db.Entry
	for _, e := range f.entries {
		if e.UserID == userID && e.ProjectID == projectID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateEntry(_ context.Context, e *db.Entry) error {
	existing, ok := f.entries[e.ID]
	if !ok || existing.UserID != e.UserID {
		return fmt.Errorf("entry not found: %s", e.ID)
	}
	updated := *e
	updated.ProjectID = existing.ProjectID
	f.entries[e.ID] = &updated
	return nil
}

func (f *fakeStore) DeleteEntry(_ context.Context, userID, entryID uuid.UUID) error {
	e, ok := f.entries[entryID]
	if !ok || e.UserID != userID {
		return fmt.Errorf("entry not found: %s", entryID)
	}
	delete(f.entries, entryID)
	return nil
}

func (f *fakeStore) CreateInterviewLog(_ context.Context, l *db.InterviewLog) (uuid.UUID, error) {
	id := uuid.New()
	stored := *l
	stored.ID = id
	f.logs[id] = &stored
	return id, nil
}

func (f *fakeStore) ListInterviewLogs(_ context.Context, userID uuid.UUID) ([]db.InterviewLog, error) {
	var out []db.InterviewLog
	for _, l := range f.logs {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateInterviewLog(_ context.Context, l *db.InterviewLog) error {
	existing, ok := f.logs[l.ID]
	if !ok || existing.UserID != l.UserID {
		return fmt.Errorf("interview log not found: %s", l.ID)
	}
	stored := *l
	f.logs[l.ID] = &stored
	return nil
}

func (f *fakeStore) DeleteInterviewLog(_ context.Context, userID, logID uuid.UUID) error {
	l, ok := f.logs[logID]
	if !ok || l.UserID != userID {
		return fmt.Errorf("interview log not found: %s", logID)
	}
	delete(f.logs, logID)
	return nil
}

func (f *fakeStore) CreateInquiry(_ context.Context, q *db.ContactInquiry) (uuid.UUID, error) {
	id := uuid.New()
	stored := *q
	stored.ID = id
	stored.Status = db.InquiryNew
	f.inquiries[id] = &stored
	return id, nil
}

func (f *fakeStore) ListInquiries(_ context.Context, userID uuid.UUID) ([]db.ContactInquiry, error) {
	var out []db.ContactInquiry
	for _, q := range f.inquiries {
		if q.UserID == userID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateInquiry(_ context.Context, q *db.ContactInquiry) error {
	existing, ok := f.inquiries[q.ID]
	if !ok || existing.UserID != q.UserID {
		return fmt.Errorf("inquiry not found: %s", q.ID)
	}
	existing.Status = q.Status
	existing.AdminNote = q.AdminNote
	existing.AdminReply = q.AdminReply
	return nil
}

// newTestServer builds a Server backed by the fake store, with the cache
// disabled and no HTTP listener.
func newTestServer(store Store) *Server {
	return &Server{
		store:      store,
		statsCache: nil,
	}
}
