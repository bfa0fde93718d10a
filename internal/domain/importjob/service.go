package importjob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dkessler/rolodex/internal/domain/activity"
	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/dkessler/rolodex/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds how many resolutions one import runs at a time.
const defaultConcurrency = 4

// Service runs batches of contacts through the resolver.
type Service struct {
	jobs        Repository
	resolver    Resolver
	activities  ActivityRepository
	logger      *slog.Logger
	concurrency int
}

// NewService creates a new import service.
func NewService(jobs Repository, resolver Resolver, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{
		jobs:        jobs,
		resolver:    resolver,
		activities:  activities,
		logger:      logger,
		concurrency: defaultConcurrency,
	}
}

// Run resolves every input against the scope, counting created, matched and
// failed contacts. Resolutions run concurrently; the idempotency guard in
// the resolver keeps duplicate inputs inside one batch from producing
// duplicate persons. A failed input is counted, not fatal to the batch.
func (s *Service) Run(ctx context.Context, scope person.Scope, source string, inputs []person.ResolveInput) (*ImportJob, error) {
	if scope.TenantID == "" || scope.ProjectID == "" {
		return nil, ErrInvalidInput
	}

	job := &ImportJob{
		ID:        uuid.NewString(),
		TenantID:  scope.TenantID,
		ProjectID: scope.ProjectID,
		Source:    source,
		Status:    StatusRunning,
		Total:     len(inputs),
		CreatedAt: time.Now(),
	}
	if err := s.jobs.Create(ctx, scope.TenantID, job); err != nil {
		return nil, fmt.Errorf("creating import job: %w", err)
	}
	s.logEvent(ctx, scope, job, activity.TypeImportStarted,
		fmt.Sprintf("import %s started with %d contacts", job.ID, job.Total))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, input := range inputs {
		if input.Source == "" {
			input.Source = source
		}
		g.Go(func() error {
			res, err := s.resolver.Resolve(gctx, scope, input)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				job.Failed++
				if s.logger != nil {
					s.logger.Warn("import resolution failed", "job_id", job.ID, "error", err)
				}
				return nil
			}
			if res.Created {
				job.Created++
			} else {
				job.Matched++
			}
			return nil
		})
	}
	_ = g.Wait()

	now := time.Now()
	job.FinishedAt = &now
	job.Status = StatusCompleted
	if job.Failed > 0 {
		job.Status = StatusFailed
	}
	if err := s.jobs.Finish(ctx, scope.TenantID, job); err != nil {
		return nil, fmt.Errorf("finishing import job: %w", err)
	}
	s.logEvent(ctx, scope, job, activity.TypeImportFinished,
		fmt.Sprintf("import %s finished: %d created, %d matched, %d failed",
			job.ID, job.Created, job.Matched, job.Failed))

	return job, nil
}

// Get returns an import job by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*ImportJob, error) {
	job, err := s.jobs.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting import job: %w", err)
	}
	return job, nil
}

// List returns import jobs for the tenant.
func (s *Service) List(ctx context.Context, tenantID string, opts ListOptions) ([]ImportJob, error) {
	return s.jobs.List(ctx, tenantID, opts)
}

func (s *Service) logEvent(ctx context.Context, scope person.Scope, job *ImportJob, activityType activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, scope.TenantID, &activity.ActivityEntry{
		ProjectID:    scope.ProjectID,
		ActivityType: activityType,
		Source:       job.Source,
		Summary:      summary,
	})
}
