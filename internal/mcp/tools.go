package mcp

import (
	"context"

	"github.com/dkessler/rolodex/internal/domain/activity"
	"github.com/dkessler/rolodex/internal/domain/importjob"
	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/dkessler/rolodex/internal/domain/project"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type toolHandlers struct {
	svc Services
}

// scopeFor builds the resolution scope from the authenticated tenant and an
// optional project id. An empty project id selects the default project.
func (h *toolHandlers) scopeFor(ctx context.Context, projectID string) (person.Scope, error) {
	tenantID := getTenantID(ctx)
	var (
		proj *project.Project
		err  error
	)
	if projectID == "" {
		proj, err = h.svc.Projects.GetDefault(ctx, tenantID)
	} else {
		proj, err = h.svc.Projects.Get(ctx, tenantID, projectID)
	}
	if err != nil {
		return person.Scope{}, mapError(err)
	}
	return person.Scope{TenantID: tenantID, ProjectID: proj.ID}, nil
}

// registerTools registers all tools on the server with typed handlers.
func registerTools(server *sdkmcp.Server, svc Services) {
	h := &toolHandlers{svc: svc}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "resolve_person",
		Description: "Resolve a partial contact description to a canonical person, creating one if no identity signal matches. Signals are tried strictest-first: email, platform identity, then name+company.",
	}, h.resolvePerson)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_person",
		Description: "Get a person by ID, including all attached platform identities",
	}, h.getPerson)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_persons",
		Description: "List persons in a project, optionally filtered by person type and company",
	}, h.listPersons)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "attach_platform_identity",
		Description: "Attach a platform identity (e.g. a Zoom or Slack user id) to a person, overwriting the person's previous id for that platform",
	}, h.attachPlatformIdentity)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project to scope person resolution",
	}, h.createProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get details for a specific project or the default project",
	}, h.getProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects for the current tenant with person counts",
	}, h.listProjects)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "run_import",
		Description: "Run a batch of contacts through the resolver, counting created, matched and failed entries",
	}, h.runImport)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_import",
		Description: "Get an import job by ID",
	}, h.getImport)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_imports",
		Description: "List import jobs for the current tenant, newest first",
	}, h.listImports)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Get recent resolution log entries for a project or a specific person",
	}, h.getRecentActivity)
}

func (h *toolHandlers) resolvePerson(ctx context.Context, req *sdkmcp.CallToolRequest, args ResolvePersonParams) (*sdkmcp.CallToolResult, any, error) {
	scope, err := h.scopeFor(ctx, args.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	source := args.Source
	if source == "" {
		source = getSource(ctx)
	}

	res, err := h.svc.Persons.Resolve(ctx, scope, person.ResolveInput{
		Name:           args.Name,
		FirstName:      args.FirstName,
		LastName:       args.LastName,
		Email:          args.Email,
		Company:        args.Company,
		Title:          args.Title,
		Role:           args.Role,
		PersonType:     args.PersonType,
		Platform:       args.Platform,
		PlatformUserID: args.PlatformUserID,
		Source:         source,
	})
	if err != nil {
		return nil, nil, mapError(err)
	}

	return nil, ResolvePersonResponse{
		Person:    *res.Person,
		Created:   res.Created,
		MatchedBy: res.MatchedBy,
	}, nil
}

func (h *toolHandlers) getPerson(ctx context.Context, req *sdkmcp.CallToolRequest, args GetPersonParams) (*sdkmcp.CallToolResult, any, error) {
	scope, err := h.scopeFor(ctx, args.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	p, err := h.svc.Persons.Get(ctx, scope, args.ID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return nil, p, nil
}

func (h *toolHandlers) listPersons(ctx context.Context, req *sdkmcp.CallToolRequest, args ListPersonsParams) (*sdkmcp.CallToolResult, any, error) {
	scope, err := h.scopeFor(ctx, args.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	refs, err := h.svc.Persons.List(ctx, scope, person.ListOptions{
		PersonType: args.PersonType,
		Company:    args.Company,
		Limit:      args.Limit,
		Offset:     args.Offset,
	})
	if err != nil {
		return nil, nil, mapError(err)
	}
	if refs == nil {
		refs = []person.PersonRef{}
	}
	return nil, ListPersonsResponse{Persons: refs}, nil
}

func (h *toolHandlers) attachPlatformIdentity(ctx context.Context, req *sdkmcp.CallToolRequest, args AttachPlatformIdentityParams) (*sdkmcp.CallToolResult, any, error) {
	scope, err := h.scopeFor(ctx, args.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	p, err := h.svc.Persons.AttachPlatformIdentity(ctx, scope, args.PersonID, args.Platform, args.PlatformUserID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return nil, p, nil
}

func (h *toolHandlers) createProject(ctx context.Context, req *sdkmcp.CallToolRequest, args CreateProjectParams) (*sdkmcp.CallToolResult, any, error) {
	proj, err := h.svc.Projects.Create(ctx, getTenantID(ctx), project.CreateRequest{
		ID:          args.ID,
		Name:        args.Name,
		Description: args.Description,
	})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return nil, proj, nil
}

func (h *toolHandlers) getProject(ctx context.Context, req *sdkmcp.CallToolRequest, args GetProjectParams) (*sdkmcp.CallToolResult, any, error) {
	tenantID := getTenantID(ctx)

	var (
		proj *project.Project
		err  error
	)
	if args.ID == "" {
		proj, err = h.svc.Projects.GetDefault(ctx, tenantID)
	} else {
		proj, err = h.svc.Projects.Get(ctx, tenantID, args.ID)
	}
	if err != nil {
		return nil, nil, mapError(err)
	}
	return nil, proj, nil
}

func (h *toolHandlers) listProjects(ctx context.Context, req *sdkmcp.CallToolRequest, args ListProjectsParams) (*sdkmcp.CallToolResult, any, error) {
	projects, err := h.svc.Projects.List(ctx, getTenantID(ctx))
	if err != nil {
		return nil, nil, mapError(err)
	}
	if projects == nil {
		projects = []project.ProjectSummary{}
	}
	return nil, ListProjectsResponse{Projects: projects}, nil
}

func (h *toolHandlers) runImport(ctx context.Context, req *sdkmcp.CallToolRequest, args RunImportParams) (*sdkmcp.CallToolResult, any, error) {
	scope, err := h.scopeFor(ctx, args.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	source := args.Source
	if source == "" {
		source = getSource(ctx)
	}

	job, err := h.svc.Imports.Run(ctx, scope, source, args.Contacts)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return nil, job, nil
}

func (h *toolHandlers) getImport(ctx context.Context, req *sdkmcp.CallToolRequest, args GetImportParams) (*sdkmcp.CallToolResult, any, error) {
	job, err := h.svc.Imports.Get(ctx, getTenantID(ctx), args.ID)
	if err != nil {
		return nil, nil, mapError(err)
	}
	return nil, job, nil
}

func (h *toolHandlers) listImports(ctx context.Context, req *sdkmcp.CallToolRequest, args ListImportsParams) (*sdkmcp.CallToolResult, any, error) {
	jobs, err := h.svc.Imports.List(ctx, getTenantID(ctx), importjob.ListOptions{
		ProjectID: args.ProjectID,
		Limit:     args.Limit,
		Offset:    args.Offset,
	})
	if err != nil {
		return nil, nil, mapError(err)
	}
	if jobs == nil {
		jobs = []importjob.ImportJob{}
	}
	return nil, ListImportsResponse{Imports: jobs}, nil
}

func (h *toolHandlers) getRecentActivity(ctx context.Context, req *sdkmcp.CallToolRequest, args GetRecentActivityParams) (*sdkmcp.CallToolResult, any, error) {
	opts := activity.ListActivityOptions{
		ProjectID: args.ProjectID,
		PersonID:  args.PersonID,
		Limit:     args.Limit,
		Offset:    args.Offset,
	}
	if args.Type != "" {
		activityType := activity.ActivityType(args.Type)
		opts.ActivityType = &activityType
	}

	entries, err := h.svc.Activity.GetRecentActivity(ctx, getTenantID(ctx), opts)
	if err != nil {
		return nil, nil, mapError(err)
	}
	if entries == nil {
		entries = []activity.ActivityEntry{}
	}
	return nil, GetRecentActivityResponse{Activity: entries}, nil
}
