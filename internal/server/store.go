// Package server provides the HTTP REST API for the career tracker.
package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/yusuke/career-tracker/internal/db"
)

// Store is the subset of database operations the record handlers need.
// Declared as an interface so handler tests can substitute a fake store.
type Store interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)

	CreateProject(ctx context.Context, p *db.Project) (uuid.UUID, error)
	GetProject(ctx context.Context, userID, projectID uuid.UUID) (*db.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]db.Project, error)
	UpdateProject(ctx context.Context, p *db.Project) error
	DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error

	CreateEntry(ctx context.Context, e *db.Entry) (uuid.UUID, error)
	ListEntries(ctx context.Context, userID, projectID uuid.UUID) ([]db.Entry, error)
	UpdateEntry(ctx context.Context, e *db.Entry) error
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error

	CreateInterviewLog(ctx context.Context, l *db.InterviewLog) (uuid.UUID, error)
	ListInterviewLogs(ctx context.Context, userID uuid.UUID) ([]db.InterviewLog, error)
	UpdateInterviewLog(ctx context.Context, l *db.InterviewLog) error
	DeleteInterviewLog(ctx context.Context, userID, logID uuid.UUID) error

	CreateInquiry(ctx context.Context, q *db.ContactInquiry) (uuid.UUID, error)
	ListInquiries(ctx context.Context, userID uuid.UUID) ([]db.ContactInquiry, error)
	UpdateInquiry(ctx context.Context, q *db.ContactInquiry) error
}
