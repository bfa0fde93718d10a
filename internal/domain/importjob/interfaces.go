package importjob

import (
	"context"

	"github.com/dkessler/rolodex/internal/domain/activity"
	"github.com/dkessler/rolodex/internal/domain/person"
)

// Repository provides persistence for import jobs.
type Repository interface {
	Create(ctx context.Context, tenantID string, job *ImportJob) error
	Finish(ctx context.Context, tenantID string, job *ImportJob) error
	Get(ctx context.Context, tenantID, id string) (*ImportJob, error)
	List(ctx context.Context, tenantID string, opts ListOptions) ([]ImportJob, error)
}

// Resolver resolves one contact description to a canonical person.
type Resolver interface {
	Resolve(ctx context.Context, scope person.Scope, input person.ResolveInput) (*person.Resolution, error)
}

// ActivityRepository logs import lifecycle events.
type ActivityRepository interface {
	Log(ctx context.Context, tenantID string, entry *activity.ActivityEntry) error
}
