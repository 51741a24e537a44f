package service

import (
	"context"

	"github.com/mitchellbreust/client-crawler/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AuthSession owns the identity of the current user. IsAuthenticated is
// derived from token presence only. AuthSession is also the credential
// source of the HTTP adapter, so every request reads the current token.
type AuthSession interface {
	// Init restores the session from the token store. Without a stored
	// token the session ends up logged out and not loading. With one, the
	// current user is fetched; any failure performs a full logout. A JWT
	// whose exp has passed is dropped without a network round-trip.
	Init(ctx context.Context) error

	// Login authenticates and persists the returned token. On failure it
	// returns an [*AuthError] carrying the backend message or a generic
	// fallback and leaves the stored token untouched. A response without
	// access_token fails with [ErrNoTokenReceived].
	Login(ctx context.Context, creds models.Credentials) error

	// Register has the same contract as Login. The password confirmation
	// never leaves the client.
	Register(ctx context.Context, reg models.Registration) error

	// Logout clears the stored and in-memory credential. Idempotent.
	Logout(ctx context.Context)

	// UpdateSettings saves the settings and replaces the current user with
	// the backend's answer.
	UpdateSettings(ctx context.Context, settings models.Settings) error

	// Snapshot returns a copy of the current state.
	Snapshot() models.Session

	IsAuthenticated() bool

	// Subscribe registers fn to receive every state change. The returned
	// func removes the subscription.
	Subscribe(fn func(models.Session)) (unsubscribe func())

	// Token and Invalidate make the session an adapter.CredentialSource.
	Token() string
	Invalidate(token string)
}

// SearchStatusPoller tracks background searches. It polls the backend on a
// fixed interval only while at least one search is pending or in progress.
type SearchStatusPoller interface {
	// Submit starts a search, refreshes the task list immediately and
	// starts polling. A search with the same parameters that is still
	// running yields [ErrSearchInProgress].
	Submit(ctx context.Context, req models.SearchRequest) (models.SearchHandle, error)

	// Refresh polls once on demand and starts the loop if a task is
	// active.
	Refresh(ctx context.Context) error

	// Tasks returns a copy of the latest snapshot.
	Tasks() []models.SearchTask

	// ActiveCount returns the number of pending or in-progress tasks in
	// the latest snapshot.
	ActiveCount() int

	// Running reports whether the poll loop is scheduled.
	Running() bool

	// OnUpdate registers fn to receive every new snapshot.
	OnUpdate(fn func([]models.SearchTask))

	// OnJobsImported registers fn to be called once per poll in which a
	// task newly reached completed with progress 100.
	OnJobsImported(fn func())

	// Stop cancels polling. Idempotent.
	Stop()
}

// JobService manages the user's job list.
type JobService interface {
	List(ctx context.Context) ([]models.Job, error)
	Get(ctx context.Context, id int64) (models.Job, error)

	// Create validates required fields locally, then creates the job. A
	// duplicate business name and phone yields [ErrDuplicateJob].
	Create(ctx context.Context, job models.Job) (models.Job, error)
	Update(ctx context.Context, id int64, job models.Job) (models.Job, error)
	Delete(ctx context.Context, id int64) error

	// Filter narrows jobs on the client without a request.
	Filter(jobs []models.Job, filter models.JobFilter) []models.Job
}

// ConversationService manages conversations and outbound messages.
type ConversationService interface {
	List(ctx context.Context) ([]models.ConversationSummary, error)

	// ForJob returns the conversation of a job or [ErrNoConversation].
	ForJob(ctx context.Context, jobID int64) (models.Conversation, error)

	// CreateForJob opens a conversation for a job and returns its id. If
	// one already exists its id is returned instead.
	CreateForJob(ctx context.Context, jobID int64) (int64, error)

	// Send posts text to a conversation, optionally as SMS.
	Send(ctx context.Context, conversationID int64, text string, sendSMS bool) (models.Message, error)

	// SendToJob gets or creates the job's conversation and then sends
	// text as SMS. The second call is never issued before the first
	// resolves.
	SendToJob(ctx context.Context, jobID int64, text string) (models.Message, error)

	// Generate drafts outreach text for a business.
	Generate(ctx context.Context, req models.GenerateMessageRequest) (string, error)
}

// BatchSender sends one text to many jobs, one at a time, with a fixed
// delay between consecutive sends.
type BatchSender interface {
	// Send attempts every job in order. A failed send is recorded and
	// does not stop the batch; cancelling ctx does.
	Send(ctx context.Context, jobs []models.Job, text string) models.BatchResult
}

// ConversationWatcher refreshes one open conversation on a fixed interval.
type ConversationWatcher interface {
	// Watch fetches the conversation of jobID now and then on every tick,
	// delivering each snapshot to fn. Any previous watch is cancelled.
	Watch(ctx context.Context, jobID int64, fn func(models.Conversation, error))

	// Stop cancels the watch. Idempotent.
	Stop()
}
