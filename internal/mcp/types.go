package mcp

import (
	"github.com/dkessler/rolodex/internal/domain/activity"
	"github.com/dkessler/rolodex/internal/domain/importjob"
	"github.com/dkessler/rolodex/internal/domain/person"
	"github.com/dkessler/rolodex/internal/domain/project"
)

type ResolvePersonParams struct {
	ProjectID      string `json:"project_id,omitempty"`
	Name           string `json:"name,omitempty"`
	FirstName      string `json:"firstname,omitempty"`
	LastName       string `json:"lastname,omitempty"`
	Email          string `json:"email,omitempty"`
	Company        string `json:"company,omitempty"`
	Title          string `json:"title,omitempty"`
	Role           string `json:"role,omitempty"`
	PersonType     string `json:"person_type,omitempty"`
	Platform       string `json:"platform,omitempty"`
	PlatformUserID string `json:"platform_user_id,omitempty"`
	Source         string `json:"source,omitempty"`
}

type GetPersonParams struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id,omitempty"`
}

type ListPersonsParams struct {
	ProjectID  string `json:"project_id,omitempty"`
	PersonType string `json:"person_type,omitempty"`
	Company    string `json:"company,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

type AttachPlatformIdentityParams struct {
	PersonID       string `json:"person_id"`
	Platform       string `json:"platform"`
	PlatformUserID string `json:"platform_user_id"`
	ProjectID      string `json:"project_id,omitempty"`
}

type CreateProjectParams struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type GetProjectParams struct {
	ID string `json:"id,omitempty"`
}

type ListProjectsParams struct{}

type RunImportParams struct {
	ProjectID string                `json:"project_id,omitempty"`
	Source    string                `json:"source,omitempty"`
	Contacts  []person.ResolveInput `json:"contacts"`
}

type GetImportParams struct {
	ID string `json:"id"`
}

type ListImportsParams struct {
	ProjectID string `json:"project_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

type GetRecentActivityParams struct {
	ProjectID string  `json:"project_id,omitempty"`
	PersonID  *string `json:"person_id,omitempty"`
	Type      string  `json:"type,omitempty"`
	Limit     int     `json:"limit,omitempty"`
	Offset    int     `json:"offset,omitempty"`
}

type ResolvePersonResponse struct {
	Person    person.Person    `json:"person"`
	Created   bool             `json:"created"`
	MatchedBy person.MatchKind `json:"matched_by"`
}

type ListPersonsResponse struct {
	Persons []person.PersonRef `json:"persons"`
}

type ListProjectsResponse struct {
	Projects []project.ProjectSummary `json:"projects"`
}

type ListImportsResponse struct {
	Imports []importjob.ImportJob `json:"imports"`
}

type GetRecentActivityResponse struct {
	Activity []activity.ActivityEntry `json:"activity"`
}
