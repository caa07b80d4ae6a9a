package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, user_id, project_name, company, start_date, end_date,
	COALESCE(role, ''), skills, phases, contract_tier, intermediary_companies,
	monthly_rate, rate_history, COALESCE(description, ''), worked_hours,
	created_at, updated_at`

func scanProject(row pgx.Row) (*Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.UserID, &p.ProjectName, &p.Company, &p.StartDate, &p.EndDate,
		&p.Role, &p.Skills, &p.Phases, &p.ContractTier, &p.IntermediaryCompanies,
		&p.MonthlyRate, &p.RateHistory, &p.Description, &p.WorkedHours,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject inserts a new project for the given owner and returns its ID
func (db *DB) CreateProject(ctx context.Context, p *Project) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (user_id, project_name, company, start_date, end_date, role,
		     skills, phases, contract_tier, intermediary_companies, monthly_rate,
		     rate_history, description, worked_hours)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		p.UserID, p.ProjectName, p.Company, p.StartDate, p.EndDate, nullIfEmpty(p.Role),
		p.Skills, p.Phases, p.ContractTier, p.IntermediaryCompanies, p.MonthlyRate,
		p.RateHistory, nullIfEmpty(p.Description), p.WorkedHours,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create project: %w", err)
	}
	return id, nil
}

// GetProject retrieves a project by ID scoped to its owner. Returns nil if not found.
func (db *DB) GetProject(ctx context.Context, userID, projectID uuid.UUID) (*Project, error) {
	p, err := scanProject(db.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1 AND user_id = $2`,
		projectID, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects retrieves all projects for an owner, newest engagement first
func (db *DB) ListProjects(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE user_id = $1
		 ORDER BY start_date DESC NULLS LAST, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

// UpdateProject rewrites a project's mutable fields and refreshes updated_at
func (db *DB) UpdateProject(ctx context.Context, p *Project) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE projects SET project_name = $1, company = $2, start_date = $3, end_date = $4,
		     role = $5, skills = $6, phases = $7, contract_tier = $8,
		     intermediary_companies = $9, monthly_rate = $10, rate_history = $11,
		     description = $12, worked_hours = $13, updated_at = NOW()
		 WHERE id = $14 AND user_id = $15`,
		p.ProjectName, p.Company, p.StartDate, p.EndDate, nullIfEmpty(p.Role),
		p.Skills, p.Phases, p.ContractTier, p.IntermediaryCompanies, p.MonthlyRate,
		p.RateHistory, nullIfEmpty(p.Description), p.WorkedHours,
		p.ID, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %s", p.ID)
	}
	return nil
}

// DeleteProject deletes a project and all its diary entries (via cascade)
func (db *DB) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`,
		projectID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %s", projectID)
	}
	return nil
}
