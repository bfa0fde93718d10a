package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/dkessler/rolodex/internal/repository"
)

// PersonRepository implements person.Repository for SQLite
type PersonRepository struct {
	db *DB
}

// NewPersonRepository creates a new PersonRepository
func NewPersonRepository(db *DB) *PersonRepository {
	return &PersonRepository{db: db}
}

const personColumns = `
	id, tenant_id, project_id, display_name, email, company,
	title, role, person_type, source, created_at
`

// Create inserts a person and its seed platform identities in one
// transaction. Uniqueness violations (normalized email, or a platform
// identity already held by another person in the scope) are reported as
// repository.ErrDuplicate so the resolver can re-resolve.
func (r *PersonRepository) Create(ctx context.Context, scope person.Scope, p *person.Person) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO persons (
			id, tenant_id, project_id, display_name, display_name_folded,
			email, email_normalized, company, company_folded,
			title, role, person_type, source, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		p.ID,
		scope.TenantID,
		scope.ProjectID,
		p.DisplayName,
		person.FoldKey(p.DisplayName),
		p.Email,
		person.NormalizeEmail(p.Email),
		p.Company,
		person.FoldKey(p.Company),
		p.Title,
		p.Role,
		p.PersonType,
		p.Source,
		p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create person: %w", err)
	}

	for platform, userID := range p.PlatformIdentities {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO platform_identities (person_id, tenant_id, project_id, platform, user_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.ID, scope.TenantID, scope.ProjectID, platform, userID, p.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return repository.ErrDuplicate
			}
			return fmt.Errorf("failed to create platform identity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit person: %w", err)
	}

	return nil
}

// Get retrieves a person by ID
func (r *PersonRepository) Get(ctx context.Context, scope person.Scope, id string) (*person.Person, error) {
	query := `SELECT ` + personColumns + `
		FROM persons
		WHERE id = ? AND tenant_id = ? AND project_id = ?
	`
	return r.queryOne(ctx, query, id, scope.TenantID, scope.ProjectID)
}

// FindByEmail looks up a person by normalized email within the scope.
func (r *PersonRepository) FindByEmail(ctx context.Context, scope person.Scope, emailNormalized string) (*person.Person, error) {
	query := `SELECT ` + personColumns + `
		FROM persons
		WHERE tenant_id = ? AND project_id = ? AND email_normalized = ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`
	return r.queryOne(ctx, query, scope.TenantID, scope.ProjectID, emailNormalized)
}

// FindByPlatformID looks up a person holding the given platform identity.
// Platform user ids are opaque tokens, compared exactly.
func (r *PersonRepository) FindByPlatformID(ctx context.Context, scope person.Scope, platform, userID string) (*person.Person, error) {
	query := `
		SELECT p.id, p.tenant_id, p.project_id, p.display_name, p.email, p.company,
			p.title, p.role, p.person_type, p.source, p.created_at
		FROM persons p
		JOIN platform_identities pi ON pi.person_id = p.id
		WHERE pi.tenant_id = ? AND pi.project_id = ? AND pi.platform = ? AND pi.user_id = ?
		ORDER BY p.created_at ASC, p.id ASC
		LIMIT 1
	`
	return r.queryOne(ctx, query, scope.TenantID, scope.ProjectID, platform, userID)
}

// FindByNameCompany looks up a person by folded display name and company.
// An empty folded company matches persons with no company recorded. When
// several candidates qualify the oldest wins, so repeated ambiguous inputs
// resolve stably.
func (r *PersonRepository) FindByNameCompany(ctx context.Context, scope person.Scope, nameFolded, companyFolded string) (*person.Person, error) {
	query := `SELECT ` + personColumns + `
		FROM persons
		WHERE tenant_id = ? AND project_id = ? AND display_name_folded = ? AND company_folded = ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`
	return r.queryOne(ctx, query, scope.TenantID, scope.ProjectID, nameFolded, companyFolded)
}

// List returns persons in the scope as lightweight references
func (r *PersonRepository) List(ctx context.Context, scope person.Scope, opts person.ListOptions) ([]person.PersonRef, error) {
	query := `
		SELECT id, display_name, email, company, person_type, created_at
		FROM persons
		WHERE tenant_id = ? AND project_id = ?
	`
	args := []interface{}{scope.TenantID, scope.ProjectID}

	if opts.PersonType != "" {
		query += " AND person_type = ?"
		args = append(args, opts.PersonType)
	}
	if opts.Company != "" {
		query += " AND company_folded = ?"
		args = append(args, person.FoldKey(opts.Company))
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
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var refs []person.PersonRef
	for rows.Next() {
		var ref person.PersonRef
		err := rows.Scan(
			&ref.ID,
			&ref.DisplayName,
			&ref.Email,
			&ref.Company,
			&ref.PersonType,
			&ref.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person ref: %w", err)
		}
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}

	return refs, nil
}

// AttachPlatformIdentity upserts one platform identity for a person. The
// per-person slot is overwritten; taking an identity already held by a
// different person in the scope violates the scope-wide unique index and
// surfaces as repository.ErrDuplicate.
func (r *PersonRepository) AttachPlatformIdentity(ctx context.Context, scope person.Scope, personID, platform, userID string) error {
	query := `
		INSERT INTO platform_identities (person_id, tenant_id, project_id, platform, user_id)
		SELECT id, tenant_id, project_id, ?, ?
		FROM persons
		WHERE id = ? AND tenant_id = ? AND project_id = ?
		ON CONFLICT(person_id, platform) DO UPDATE SET user_id = excluded.user_id
	`

	result, err := r.db.ExecContext(ctx, query, platform, userID, personID, scope.TenantID, scope.ProjectID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to attach platform identity: %w", err)
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

func (r *PersonRepository) queryOne(ctx context.Context, query string, args ...interface{}) (*person.Person, error) {
	var p person.Person
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.TenantID,
		&p.ProjectID,
		&p.DisplayName,
		&p.Email,
		&p.Company,
		&p.Title,
		&p.Role,
		&p.PersonType,
		&p.Source,
		&p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	identities, err := r.loadIdentities(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.PlatformIdentities = identities

	return &p, nil
}

func (r *PersonRepository) loadIdentities(ctx context.Context, personID string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT platform, user_id FROM platform_identities WHERE person_id = ?
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform identities: %w", err)
	}
	defer rows.Close()

	identities := make(map[string]string)
	for rows.Next() {
		var platform, userID string
		if err := rows.Scan(&platform, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan platform identity: %w", err)
		}
		identities[platform] = userID
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating identity rows: %w", err)
	}

	if len(identities) == 0 {
		return nil, nil
	}
	return identities, nil
}
