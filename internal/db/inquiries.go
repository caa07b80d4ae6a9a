package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const inquiryColumns = `id, user_id, user_email, name, email, COALESCE(company, ''),
	message, status, COALESCE(admin_note, ''), COALESCE(admin_reply, ''),
	created_at, updated_at`

func scanInquiry(row pgx.Row) (*ContactInquiry, error) {
	var q ContactInquiry
	err := row.Scan(&q.ID, &q.UserID, &q.UserEmail, &q.Name, &q.Email, &q.Company,
		&q.Message, &q.Status, &q.AdminNote, &q.AdminReply,
		&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateInquiry inserts a new contact inquiry with status "new" and returns its ID
func (db *DB) CreateInquiry(ctx context.Context, q *ContactInquiry) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO contact_inquiries (user_id, user_email, name, email, company, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		q.UserID, q.UserEmail, q.Name, q.Email, nullIfEmpty(q.Company), q.Message, InquiryNew,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return id, nil
}

// ListInquiries retrieves all inquiries submitted by an owner, newest first
func (db *DB) ListInquiries(ctx context.Context, userID uuid.UUID) ([]ContactInquiry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+inquiryColumns+` FROM contact_inquiries
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []ContactInquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *q)
	}
	return inquiries, nil
}

// UpdateInquiry updates an inquiry's status and admin fields
func (db *DB) UpdateInquiry(ctx context.Context, q *ContactInquiry) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE contact_inquiries SET status = $1, admin_note = $2, admin_reply = $3,
		     updated_at = NOW()
		 WHERE id = $4 AND user_id = $5`,
		q.Status, nullIfEmpty(q.AdminNote), nullIfEmpty(q.AdminReply),
		q.ID, q.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inquiry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("inquiry not found: %s", q.ID)
	}
	return nil
}
