package mocks

import (
	"context"

	"github.com/dkessler/rolodex/internal/domain/activity"
	"github.com/dkessler/rolodex/internal/domain/importjob"
	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/dkessler/rolodex/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, tenantID string, proj *project.Project) error {
	args := m.Called(ctx, tenantID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, tenantID, id string) (*project.Project, error) {
	args := m.Called(ctx, tenantID, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetDefault(ctx context.Context, tenantID string) (*project.Project, error) {
	args := m.Called(ctx, tenantID)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.ProjectSummary, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]project.ProjectSummary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PersonRepository is a mock for person.Repository.
type PersonRepository struct {
	mock.Mock
}

func (m *PersonRepository) Create(ctx context.Context, scope person.Scope, p *person.Person) error {
	args := m.Called(ctx, scope, p)
	return args.Error(0)
}

func (m *PersonRepository) Get(ctx context.Context, scope person.Scope, id string) (*person.Person, error) {
	args := m.Called(ctx, scope, id)
	if p, ok := args.Get(0).(*person.Person); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PersonRepository) FindByEmail(ctx context.Context, scope person.Scope, emailNormalized string) (*person.Person, error) {
	args := m.Called(ctx, scope, emailNormalized)
	if p, ok := args.Get(0).(*person.Person); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PersonRepository) FindByPlatformID(ctx context.Context, scope person.Scope, platform, userID string) (*person.Person, error) {
	args := m.Called(ctx, scope, platform, userID)
	if p, ok := args.Get(0).(*person.Person); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PersonRepository) FindByNameCompany(ctx context.Context, scope person.Scope, nameFolded, companyFolded string) (*person.Person, error) {
	args := m.Called(ctx, scope, nameFolded, companyFolded)
	if p, ok := args.Get(0).(*person.Person); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PersonRepository) List(ctx context.Context, scope person.Scope, opts person.ListOptions) ([]person.PersonRef, error) {
	args := m.Called(ctx, scope, opts)
	if list, ok := args.Get(0).([]person.PersonRef); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PersonRepository) AttachPlatformIdentity(ctx context.Context, scope person.Scope, personID, platform, userID string) error {
	args := m.Called(ctx, scope, personID, platform, userID)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, tenantID string, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, tenantID, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, tenantID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, tenantID, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ImportJobRepository is a mock for importjob.Repository.
type ImportJobRepository struct {
	mock.Mock
}

func (m *ImportJobRepository) Create(ctx context.Context, tenantID string, job *importjob.ImportJob) error {
	args := m.Called(ctx, tenantID, job)
	return args.Error(0)
}

func (m *ImportJobRepository) Finish(ctx context.Context, tenantID string, job *importjob.ImportJob) error {
	args := m.Called(ctx, tenantID, job)
	return args.Error(0)
}

func (m *ImportJobRepository) Get(ctx context.Context, tenantID, id string) (*importjob.ImportJob, error) {
	args := m.Called(ctx, tenantID, id)
	if job, ok := args.Get(0).(*importjob.ImportJob); ok {
		return job, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImportJobRepository) List(ctx context.Context, tenantID string, opts importjob.ListOptions) ([]importjob.ImportJob, error) {
	args := m.Called(ctx, tenantID, opts)
	if list, ok := args.Get(0).([]importjob.ImportJob); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
