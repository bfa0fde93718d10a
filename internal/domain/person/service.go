package person

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dkessler/rolodex/internal/domain/activity"
	"github.com/dkessler/rolodex/internal/repository"
	"github.com/google/uuid"
)

// Service handles person identity resolution.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new person service.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		activities: activities,
		logger:     logger,
	}
}

// Resolve decides whether the input refers to an already-known person in the
// scope or creates a new canonical record. Signals are tried strictest-first
// (email, then platform identity, then name+company); the first hit wins.
// On a miss the insert relies on the store's uniqueness constraints: a
// concurrent winner surfaces as repository.ErrDuplicate and is resolved by
// re-running the cascade once, so racing callers converge on one record.
func (s *Service) Resolve(ctx context.Context, scope Scope, input ResolveInput) (*Resolution, error) {
	norm := normalizeInput(input)

	match, kind, err := s.findMatch(ctx, scope, norm)
	if err != nil {
		return nil, err
	}
	if match != nil {
		s.logResolution(ctx, scope, match.ID, activity.TypePersonMatched, kind, norm)
		return &Resolution{Person: match, MatchedBy: kind}, nil
	}

	p := &Person{
		ID:          uuid.NewString(),
		TenantID:    scope.TenantID,
		ProjectID:   scope.ProjectID,
		DisplayName: norm.displayName,
		Email:       norm.email,
		Company:     norm.company,
		Title:       norm.title,
		Role:        norm.role,
		PersonType:  norm.personType,
		Source:      norm.source,
		CreatedAt:   time.Now(),
	}
	if norm.hasPlatformSignal() {
		p.PlatformIdentities = map[string]string{norm.platform: norm.platformUserID}
	}

	if err := s.repo.Create(ctx, scope, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return s.reResolve(ctx, scope, norm)
		}
		return nil, fmt.Errorf("creating person: %w", err)
	}

	s.logResolution(ctx, scope, p.ID, activity.TypePersonCreated, MatchCreated, norm)
	return &Resolution{Person: p, Created: true, MatchedBy: MatchCreated}, nil
}

// reResolve handles the lost-race path: another caller inserted the same
// identity between our cascade check and our insert. The winner must now be
// findable; if not, the store's constraints don't match the cascade and we
// fail hard rather than retry.
func (s *Service) reResolve(ctx context.Context, scope Scope, norm normalizedInput) (*Resolution, error) {
	match, kind, err := s.findMatch(ctx, scope, norm)
	if err != nil {
		return nil, fmt.Errorf("re-resolving after duplicate insert: %w", err)
	}
	if match == nil {
		return nil, ErrResolveConflict
	}
	if s.logger != nil {
		s.logger.Debug("resolution converged on concurrent winner",
			"person_id", match.ID, "matched_by", kind, "tenant_id", scope.TenantID)
	}
	s.logResolution(ctx, scope, match.ID, activity.TypePersonMatched, kind, norm)
	return &Resolution{Person: match, MatchedBy: kind}, nil
}

// findMatch runs the match cascade. Stage order is fixed; a stage whose
// signal is absent is skipped entirely rather than counted as a miss.
func (s *Service) findMatch(ctx context.Context, scope Scope, norm normalizedInput) (*Person, MatchKind, error) {
	if norm.emailNormalized != "" {
		p, err := s.repo.FindByEmail(ctx, scope, norm.emailNormalized)
		if err == nil {
			return p, MatchEmail, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("email lookup: %w", err)
		}
	}

	if norm.hasPlatformSignal() {
		p, err := s.repo.FindByPlatformID(ctx, scope, norm.platform, norm.platformUserID)
		if err == nil {
			return p, MatchPlatformID, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("platform identity lookup: %w", err)
		}
	}

	if norm.nameFolded != "" {
		p, err := s.repo.FindByNameCompany(ctx, scope, norm.nameFolded, norm.companyFolded)
		if err == nil {
			return p, MatchNameCompany, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("name lookup: %w", err)
		}
	}

	return nil, "", nil
}

// AttachPlatformIdentity records that a person holds the given user id on a
// platform, overwriting any previous id for that platform. The identity must
// not belong to another person in the same scope.
func (s *Service) AttachPlatformIdentity(ctx context.Context, scope Scope, personID, platform, userID string) (*Person, error) {
	platform = strings.TrimSpace(platform)
	if personID == "" || platform == "" || userID == "" {
		return nil, ErrInvalidInput
	}

	if err := s.repo.AttachPlatformIdentity(ctx, scope, personID, platform, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrPersonNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrIdentityInUse
		}
		return nil, fmt.Errorf("attaching platform identity: %w", err)
	}

	p, err := s.Get(ctx, scope, personID)
	if err != nil {
		return nil, err
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, scope.TenantID, &activity.ActivityEntry{
			ProjectID:    scope.ProjectID,
			PersonID:     &p.ID,
			ActivityType: activity.TypeIdentityAttached,
			Summary:      fmt.Sprintf("attached %s identity to person %s", platform, p.ID),
		})
	}

	return p, nil
}

// Get returns a person by ID.
func (s *Service) Get(ctx context.Context, scope Scope, id string) (*Person, error) {
	p, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("getting person: %w", err)
	}
	return p, nil
}

// List returns person references in the scope.
func (s *Service) List(ctx context.Context, scope Scope, opts ListOptions) ([]PersonRef, error) {
	return s.repo.List(ctx, scope, opts)
}

func (s *Service) logResolution(ctx context.Context, scope Scope, personID string, activityType activity.ActivityType, kind MatchKind, norm normalizedInput) {
	if s.activities == nil {
		return
	}
	summary := fmt.Sprintf("matched person %s by %s", personID, kind)
	if activityType == activity.TypePersonCreated {
		summary = fmt.Sprintf("created person %s", personID)
	}
	_ = s.activities.Log(ctx, scope.TenantID, &activity.ActivityEntry{
		ProjectID:    scope.ProjectID,
		PersonID:     &personID,
		ActivityType: activityType,
		MatchedBy:    string(kind),
		Source:       norm.source,
		Summary:      summary,
	})
}
