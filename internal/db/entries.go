package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const entryColumns = `id, project_id, user_id, date, COALESCE(title, ''),
	COALESCE(content, ''), tags, COALESCE(worked_hours, 0), created_at, updated_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.ProjectID, &e.UserID, &e.Date, &e.Title,
		&e.Content, &e.Tags, &e.WorkedHours, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEntry inserts a new diary entry for a project and returns its ID
func (db *DB) CreateEntry(ctx context.Context, e *Entry) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO entries (project_id, user_id, date, title, content, tags, worked_hours)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		e.ProjectID, e.UserID, e.Date, e.Title, nullIfEmpty(e.Content), e.Tags, e.WorkedHours,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return id, nil
}

// GetEntry retrieves a diary entry by ID scoped to its owner. Returns nil if not found.
func (db *DB) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*Entry, error) {
	e, err := scanEntry(db.pool.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = $1 AND user_id = $2`,
		entryID, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return e, nil
}

// ListEntries retrieves all diary entries for one project, newest date first
func (db *DB) ListEntries(ctx context.Context, userID, projectID uuid.UUID) ([]Entry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM entries
		 WHERE project_id = $1 AND user_id = $2
		 ORDER BY date DESC, created_at DESC`,
		projectID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, nil
}

// UpdateEntry rewrites a diary entry's mutable fields and refreshes updated_at
func (db *DB) UpdateEntry(ctx context.Context, e *Entry) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE entries SET date = $1, title = $2, content = $3, tags = $4,
		     worked_hours = $5, updated_at = NOW()
		 WHERE id = $6 AND user_id = $7`,
		e.Date, e.Title, nullIfEmpty(e.Content), e.Tags, e.WorkedHours,
		e.ID, e.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("entry not found: %s", e.ID)
	}
	return nil
}

// DeleteEntry removes a diary entry
func (db *DB) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM entries WHERE id = $1 AND user_id = $2`,
		entryID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("entry not found: %s", entryID)
	}
	return nil
}
