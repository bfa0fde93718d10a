package person

import "time"

// MatchKind identifies which identity signal resolved a person.
type MatchKind string

const (
	MatchEmail       MatchKind = "email"
	MatchPlatformID  MatchKind = "platform_id"
	MatchNameCompany MatchKind = "name_company"
	MatchCreated     MatchKind = "created"
)

// Scope is the (tenant, project) pair within which all matching and
// uniqueness is evaluated. Identities in different scopes never collide.
type Scope struct {
	TenantID  string `json:"tenant_id"`
	ProjectID string `json:"project_id"`
}

// Person is the canonical record for one human identity within a scope.
type Person struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	ProjectID   string `json:"project_id"`
	DisplayName string `json:"display_name"`
	// Email keeps the casing it was first seen with; comparison always
	// happens on the normalized form.
	Email      string `json:"email,omitempty"`
	Company    string `json:"company,omitempty"`
	Title      string `json:"title,omitempty"`
	Role       string `json:"role,omitempty"`
	PersonType string `json:"person_type,omitempty"`
	Source     string `json:"source,omitempty"`
	// PlatformIdentities maps a platform name to the person's user id on
	// that platform. At most one user id per platform.
	PlatformIdentities map[string]string `json:"platform_identities,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

// PersonRef is a lightweight reference for listing
type PersonRef struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	Company     string    `json:"company,omitempty"`
	PersonType  string    `json:"person_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResolveInput is a partial description of a human observed in some
// interaction. Every field is optional; the FirstName/LastName pair takes
// precedence over Name when both are supplied.
type ResolveInput struct {
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
	// Source tags the origin pipeline. Provenance only, never matched on.
	Source string `json:"source,omitempty"`
}

// Resolution is the outcome of resolving one input.
type Resolution struct {
	Person    *Person   `json:"person"`
	Created   bool      `json:"created"`
	MatchedBy MatchKind `json:"matched_by"`
}

// ListOptions provides filtering options for listing persons
type ListOptions struct {
	PersonType string
	Company    string
	Limit      int
	Offset     int
}
