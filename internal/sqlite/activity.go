package sqlite

import (
	"context"
	"fmt"

	"github.com/dkessler/rolodex/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends a resolution log entry
func (r *ActivityRepository) Log(ctx context.Context, tenantID string, entry *activity.ActivityEntry) error {
	query := `
		INSERT INTO resolution_log (tenant_id, project_id, person_id, activity_type, matched_by, source, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`

	_, err := r.db.ExecContext(ctx, query,
		tenantID,
		entry.ProjectID,
		entry.PersonID,
		entry.ActivityType,
		entry.MatchedBy,
		entry.Source,
		entry.Summary,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	return nil
}

// List returns resolution log entries, newest first
func (r *ActivityRepository) List(ctx context.Context, tenantID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	query := `
		SELECT id, tenant_id, project_id, person_id, activity_type, matched_by, source, summary, created_at
		FROM resolution_log
		WHERE tenant_id = ?
	`
	args := []interface{}{tenantID}

	if opts.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, opts.ProjectID)
	}
	if opts.PersonID != nil {
		query += " AND person_id = ?"
		args = append(args, *opts.PersonID)
	}
	if opts.ActivityType != nil {
		query += " AND activity_type = ?"
		args = append(args, *opts.ActivityType)
	}

	query += " ORDER BY created_at DESC, id DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ?"
	args = append(args, limit)

	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.ActivityEntry
	for rows.Next() {
		var entry activity.ActivityEntry
		err := rows.Scan(
			&entry.ID,
			&entry.TenantID,
			&entry.ProjectID,
			&entry.PersonID,
			&entry.ActivityType,
			&entry.MatchedBy,
			&entry.Source,
			&entry.Summary,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}
