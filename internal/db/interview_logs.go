package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const interviewColumns = `id, user_id, interview_date, company, COALESCE("position", ''),
	COALESCE(discussion_summary, ''), result, interest_level,
	COALESCE(questions_asked, ''), COALESCE(job_summary, ''), created_at, updated_at`

func scanInterviewLog(row pgx.Row) (*InterviewLog, error) {
	var l InterviewLog
	err := row.Scan(&l.ID, &l.UserID, &l.InterviewDate, &l.Company, &l.Position,
		&l.DiscussionSummary, &l.Result, &l.InterestLevel,
		&l.QuestionsAsked, &l.JobSummary, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateInterviewLog inserts a new interview log and returns its ID
func (db *DB) CreateInterviewLog(ctx context.Context, l *InterviewLog) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interview_logs (user_id, interview_date, company, "position",
		     discussion_summary, result, interest_level, questions_asked, job_summary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		l.UserID, l.InterviewDate, l.Company, nullIfEmpty(l.Position),
		nullIfEmpty(l.DiscussionSummary), l.Result, l.InterestLevel,
		nullIfEmpty(l.QuestionsAsked), nullIfEmpty(l.JobSummary),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create interview log: %w", err)
	}
	return id, nil
}

// ListInterviewLogs retrieves all interview logs for an owner, newest first
func (db *DB) ListInterviewLogs(ctx context.Context, userID uuid.UUID) ([]InterviewLog, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+interviewColumns+` FROM interview_logs
		 WHERE user_id = $1
		 ORDER BY interview_date DESC NULLS LAST, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview logs: %w", err)
	}
	defer rows.Close()

	var logs []InterviewLog
	for rows.Next() {
		l, err := scanInterviewLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview log: %w", err)
		}
		logs = append(logs, *l)
	}
	return logs, nil
}

// UpdateInterviewLog rewrites an interview log's mutable fields
func (db *DB) UpdateInterviewLog(ctx context.Context, l *InterviewLog) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interview_logs SET interview_date = $1, company = $2, "position" = $3,
		     discussion_summary = $4, result = $5, interest_level = $6,
		     questions_asked = $7, job_summary = $8, updated_at = NOW()
		 WHERE id = $9 AND user_id = $10`,
		l.InterviewDate, l.Company, nullIfEmpty(l.Position),
		nullIfEmpty(l.DiscussionSummary), l.Result, l.InterestLevel,
		nullIfEmpty(l.QuestionsAsked), nullIfEmpty(l.JobSummary),
		l.ID, l.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update interview log: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview log not found: %s", l.ID)
	}
	return nil
}

// DeleteInterviewLog removes an interview log
func (db *DB) DeleteInterviewLog(ctx context.Context, userID, logID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM interview_logs WHERE id = $1 AND user_id = $2`,
		logID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete interview log: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview log not found: %s", logID)
	}
	return nil
}
