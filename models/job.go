package models

// Job statuses tracked by the backend.
const (
	JobPending   = "pending"
	JobContacted = "contacted"
	JobInterview = "interview"
	JobRejected  = "rejected"
	JobHired     = "hired"
)

// Job is a business the user may contact.
type Job struct {
	ID              int64  `json:"id"`
	BusinessName    string `json:"business_name"`
	BusinessPhone   string `json:"business_phone"`
	JobType         string `json:"job_type,omitempty"`
	URL             string `json:"url,omitempty"`
	Street          string `json:"street,omitempty"`
	Suburb          string `json:"suburb,omitempty"`
	State           string `json:"state,omitempty"`
	Postcode        string `json:"postcode,omitempty"`
	Status          string `json:"status,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	HasConversation bool   `json:"has_conversation,omitempty"`
}

// JobFilter narrows a job list on the client.
type JobFilter struct {
	// Query is matched case-insensitively against name, type and suburb.
	Query string

	// Status keeps only jobs in this status when non-empty.
	Status string

	// HasConversation keeps only jobs with (or without) a conversation
	// when non-nil.
	HasConversation *bool
}

// JobsResponse is the body of GET /api/jobs.
type JobsResponse struct {
	Jobs []Job `json:"jobs"`
}

// JobResponse is the body returned when a single job is created, updated
// or rejected as a duplicate.
type JobResponse struct {
	Message string `json:"message,omitempty"`
	Job     Job    `json:"job"`
}
