package models

import "encoding/json"

// SearchStatus is the lifecycle state of a background job search.
type SearchStatus string

const (
	SearchPending    SearchStatus = "pending"
	SearchInProgress SearchStatus = "in_progress"
	SearchCompleted  SearchStatus = "completed"
	SearchFailed     SearchStatus = "failed"
)

// Older backends report "running" and "error".
var legacySearchStatuses = map[string]SearchStatus{
	"running": SearchInProgress,
	"error":   SearchFailed,
}

// UnmarshalJSON normalises legacy status names.
func (s *SearchStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if mapped, ok := legacySearchStatuses[raw]; ok {
		*s = mapped
		return nil
	}
	*s = SearchStatus(raw)
	return nil
}

// Active reports whether the search can still change.
func (s SearchStatus) Active() bool {
	return s == SearchPending || s == SearchInProgress
}

// Terminal reports whether the search has finished, successfully or not.
func (s SearchStatus) Terminal() bool {
	return s == SearchCompleted || s == SearchFailed
}

// Business is a read-only record scraped by a search.
type Business struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Street   string `json:"street"`
	URL      string `json:"url"`
}

// SearchTask is the server-side view of one search. The client never
// edits it; each poll replaces the whole list.
type SearchTask struct {
	ID           string       `json:"id"`
	What         string       `json:"what"`
	Where        string       `json:"where"`
	State        string       `json:"state"`
	Status       SearchStatus `json:"status"`
	Progress     int          `json:"progress"`
	ResultsCount int          `json:"results_count"`
	JobsImported int          `json:"jobs_imported"`
	Message      string       `json:"message,omitempty"`
	Results      []Business   `json:"results,omitempty"`
	CreatedAt    string       `json:"created_at,omitempty"`
	CompletedAt  string       `json:"completed_at,omitempty"`
}

// Finished reports whether the task completed with full progress, which is
// the point at which its businesses have been imported as jobs.
func (t SearchTask) Finished() bool {
	return t.Status == SearchCompleted && t.Progress == 100
}

// SearchRequest starts a background search.
type SearchRequest struct {
	What  string `json:"what"`
	Where string `json:"where"`
	State string `json:"state"`
}

// SearchHandle is returned by POST /api/search-jobs.
type SearchHandle struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	JobID   string `json:"job_id"`
}

// SearchStatusResponse is the body of GET /api/search-status.
type SearchStatusResponse struct {
	Searches []SearchTask `json:"searches"`
}
