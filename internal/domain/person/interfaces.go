package person

import (
	"context"

	"github.com/dkessler/rolodex/internal/domain/activity"
)

// Repository provides persistence for persons. Find lookups return
// repository.ErrNotFound on a miss and pick the oldest record first when
// several candidates qualify, so ambiguous inputs resolve stably.
type Repository interface {
	Create(ctx context.Context, scope Scope, p *Person) error
	Get(ctx context.Context, scope Scope, id string) (*Person, error)
	FindByEmail(ctx context.Context, scope Scope, emailNormalized string) (*Person, error)
	FindByPlatformID(ctx context.Context, scope Scope, platform, userID string) (*Person, error)
	FindByNameCompany(ctx context.Context, scope Scope, nameFolded, companyFolded string) (*Person, error)
	List(ctx context.Context, scope Scope, opts ListOptions) ([]PersonRef, error)
	AttachPlatformIdentity(ctx context.Context, scope Scope, personID, platform, userID string) error
}

// ActivityRepository logs resolution provenance.
type ActivityRepository interface {
	Log(ctx context.Context, tenantID string, entry *activity.ActivityEntry) error
}
