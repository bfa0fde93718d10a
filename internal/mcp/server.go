package mcp

import (
	"context"
	"log/slog"

	"github.com/dkessler/rolodex/internal/domain/activity"
	"github.com/dkessler/rolodex/internal/domain/importjob"
	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/dkessler/rolodex/internal/domain/project"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// PersonService defines person resolution operations needed by MCP.
type PersonService interface {
	Resolve(ctx context.Context, scope person.Scope, input person.ResolveInput) (*person.Resolution, error)
	Get(ctx context.Context, scope person.Scope, id string) (*person.Person, error)
	List(ctx context.Context, scope person.Scope, opts person.ListOptions) ([]person.PersonRef, error)
	AttachPlatformIdentity(ctx context.Context, scope person.Scope, personID, platform, userID string) (*person.Person, error)
}

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, tenantID string, req project.CreateRequest) (*project.Project, error)
	List(ctx context.Context, tenantID string) ([]project.ProjectSummary, error)
	Get(ctx context.Context, tenantID, id string) (*project.Project, error)
	GetDefault(ctx context.Context, tenantID string) (*project.Project, error)
}

// ImportService defines import job operations needed by MCP.
type ImportService interface {
	Run(ctx context.Context, scope person.Scope, source string, inputs []person.ResolveInput) (*importjob.ImportJob, error)
	Get(ctx context.Context, tenantID, id string) (*importjob.ImportJob, error)
	List(ctx context.Context, tenantID string, opts importjob.ListOptions) ([]importjob.ImportJob, error)
}

// ActivityService defines resolution log operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, tenantID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Persons  PersonService
	Projects ProjectService
	Imports  ImportService
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Resolver      TenantResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "rolodex",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio mode: always disable auth (local dev only)
	if cfg.TransportMode == "stdio" {
		server.AddReceivingMiddleware(noAuthMiddleware("default"))
	} else {
		if cfg.AuthEnabled {
			server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
		} else {
			server.AddReceivingMiddleware(noAuthMiddleware("default"))
		}
	}
	server.AddReceivingMiddleware(sourceMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
