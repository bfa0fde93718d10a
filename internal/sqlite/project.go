package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkessler/rolodex/internal/domain/project"
	"github.com/dkessler/rolodex/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, tenantID string, proj *project.Project) error {
	query := `
		INSERT INTO projects (id, tenant_id, name, description, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		tenantID,
		proj.Name,
		proj.Description,
		proj.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, tenantID, id string) (*project.Project, error) {
	query := `
		SELECT id, tenant_id, name, description, created_at
		FROM projects
		WHERE id = ? AND tenant_id = ?
	`

	var proj project.Project
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&proj.ID,
		&proj.TenantID,
		&proj.Name,
		&description,
		&proj.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	proj.Description = description.String

	return &proj, nil
}

// GetDefault returns the oldest project for the tenant
func (r *ProjectRepository) GetDefault(ctx context.Context, tenantID string) (*project.Project, error) {
	query := `
		SELECT id, tenant_id, name, description, created_at
		FROM projects
		WHERE tenant_id = ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`

	var proj project.Project
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, tenantID).Scan(
		&proj.ID,
		&proj.TenantID,
		&proj.Name,
		&description,
		&proj.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default project: %w", err)
	}
	proj.Description = description.String

	return &proj, nil
}

// List returns project summaries with person counts
func (r *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.ProjectSummary, error) {
	query := `
		SELECT pr.id, pr.name, pr.description, COUNT(pe.id) AS person_count, pr.created_at
		FROM projects pr
		LEFT JOIN persons pe ON pe.project_id = pr.id AND pe.tenant_id = pr.tenant_id
		WHERE pr.tenant_id = ?
		GROUP BY pr.id, pr.name, pr.description, pr.created_at
		ORDER BY pr.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.ProjectSummary
	for rows.Next() {
		var summary project.ProjectSummary
		var description sql.NullString
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&description,
			&summary.PersonCount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		summary.Description = description.String
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}
