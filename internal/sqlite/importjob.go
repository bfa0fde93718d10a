package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkessler/rolodex/internal/domain/importjob"
	"github.com/dkessler/rolodex/internal/repository"
)

// ImportJobRepository implements importjob.Repository for SQLite
type ImportJobRepository struct {
	db *DB
}

// NewImportJobRepository creates a new ImportJobRepository
func NewImportJobRepository(db *DB) *ImportJobRepository {
	return &ImportJobRepository{db: db}
}

// Create inserts a new import job
func (r *ImportJobRepository) Create(ctx context.Context, tenantID string, job *importjob.ImportJob) error {
	query := `
		INSERT INTO import_jobs (id, tenant_id, project_id, source, status, total, created, matched, failed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		job.ID,
		tenantID,
		job.ProjectID,
		job.Source,
		job.Status,
		job.Total,
		job.Created,
		job.Matched,
		job.Failed,
		job.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create import job: %w", err)
	}

	return nil
}

// Finish records final counters and status for a job
func (r *ImportJobRepository) Finish(ctx context.Context, tenantID string, job *importjob.ImportJob) error {
	query := `
		UPDATE import_jobs
		SET status = ?, created = ?, matched = ?, failed = ?, finished_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		job.Status,
		job.Created,
		job.Matched,
		job.Failed,
		job.FinishedAt,
		job.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish import job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Get retrieves an import job by ID
func (r *ImportJobRepository) Get(ctx context.Context, tenantID, id string) (*importjob.ImportJob, error) {
	query := `
		SELECT id, tenant_id, project_id, source, status, total, created, matched, failed, created_at, finished_at
		FROM import_jobs
		WHERE id = ? AND tenant_id = ?
	`

	var job importjob.ImportJob
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&job.ID,
		&job.TenantID,
		&job.ProjectID,
		&job.Source,
		&job.Status,
		&job.Total,
		&job.Created,
		&job.Matched,
		&job.Failed,
		&job.CreatedAt,
		&job.FinishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get import job: %w", err)
	}

	return &job, nil
}

// List returns import jobs, newest first
func (r *ImportJobRepository) List(ctx context.Context, tenantID string, opts importjob.ListOptions) ([]importjob.ImportJob, error) {
	query := `
		SELECT id, tenant_id, project_id, source, status, total, created, matched, failed, created_at, finished_at
		FROM import_jobs
		WHERE tenant_id = ?
	`
	args := []interface{}{tenantID}

	if opts.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, opts.ProjectID)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list import jobs: %w", err)
	}
	defer rows.Close()

	var jobs []importjob.ImportJob
	for rows.Next() {
		var job importjob.ImportJob
		err := rows.Scan(
			&job.ID,
			&job.TenantID,
			&job.ProjectID,
			&job.Source,
			&job.Status,
			&job.Total,
			&job.Created,
			&job.Matched,
			&job.Failed,
			&job.CreatedAt,
			&job.FinishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import job rows: %w", err)
	}

	return jobs, nil
}
