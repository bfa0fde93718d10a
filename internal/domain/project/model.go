package project

import "time"

// Project is one half of the tenant scope: all person matching and
// uniqueness happens within a (tenant, project) pair
type Project struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectSummary is a lightweight representation for listing
type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PersonCount int       `json:"person_count"`
	CreatedAt   time.Time `json:"created_at"`
}
