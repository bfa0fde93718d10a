package activity

import "time"

// ActivityType represents the type of resolution event
type ActivityType string

const (
	TypePersonCreated    ActivityType = "person_created"
	TypePersonMatched    ActivityType = "person_matched"
	TypeIdentityAttached ActivityType = "identity_attached"
	TypeImportStarted    ActivityType = "import_started"
	TypeImportFinished   ActivityType = "import_finished"
)

// ActivityEntry represents an event in the resolution log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	TenantID     string       `json:"tenant_id"`
	ProjectID    string       `json:"project_id"`
	PersonID     *string      `json:"person_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	MatchedBy    string       `json:"matched_by,omitempty"`
	Source       string       `json:"source,omitempty"`
	Summary      string       `json:"summary"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ListActivityOptions provides filtering options for listing the log
type ListActivityOptions struct {
	ProjectID    string
	PersonID     *string
	ActivityType *ActivityType
	Limit        int
	Offset       int
}
