package importjob

import "time"

// Status represents the lifecycle state of an import job
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// ImportJob tracks one batch of contacts pushed through the resolver
type ImportJob struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	ProjectID  string     `json:"project_id"`
	Source     string     `json:"source,omitempty"`
	Status     Status     `json:"status"`
	Total      int        `json:"total"`
	Created    int        `json:"created"`
	Matched    int        `json:"matched"`
	Failed     int        `json:"failed"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// ListOptions provides filtering options for listing import jobs
type ListOptions struct {
	ProjectID string
	Limit     int
	Offset    int
}
