// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

// Package adapter provides the transport layer for talking to the outreach
// backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships one REST implementation
// ([NewHTTPServerAdapter]) built on a single resty client. Every request goes
// through the same middleware chain: the bearer credential is attached from a
// [CredentialSource] and any 401 clears that credential and notifies an
// [UnauthorizedHandler].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mitchellbreust/client-crawler/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// CredentialSource supplies the bearer token for outgoing requests. It is
// read on every request so the adapter never holds a stale copy.
type CredentialSource interface {
	// Token returns the current credential, or "" when logged out.
	Token() string

	// Invalidate drops token if it is still the current credential. It is
	// called when the backend rejects token with a 401.
	Invalidate(token string)
}

// UnauthorizedHandler is invoked after a 401 has cleared the credential.
// The TUI uses it to navigate back to the login page.
type UnauthorizedHandler func()

// ServerAdapter defines communication with the outreach backend. Every
// method maps non-2xx responses to the sentinel errors of this package.
type ServerAdapter interface {
	// SetCredentialSource installs the token provider used by the request
	// middleware.
	SetCredentialSource(src CredentialSource)

	// OnUnauthorized installs the handler fired at most once per rejected
	// credential.
	OnUnauthorized(handler UnauthorizedHandler)

	// Register creates an account with POST /auth/register.
	Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error)

	// Login authenticates with POST /auth/login.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// CurrentUser fetches the account behind the current token.
	CurrentUser(ctx context.Context) (models.User, error)

	// UpdateUser applies settings with PUT /auth/user and returns the
	// updated account.
	UpdateUser(ctx context.Context, settings models.Settings) (models.User, error)

	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id int64) (models.Job, error)

	// CreateJob returns an error wrapping [ErrConflict] when a job with the
	// same business name and phone already exists.
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	UpdateJob(ctx context.Context, id int64, job models.Job) (models.Job, error)
	DeleteJob(ctx context.Context, id int64) error

	// SearchJobs starts a background search. A 409 means the same search
	// is still running.
	SearchJobs(ctx context.Context, req models.SearchRequest) (models.SearchHandle, error)

	// SearchStatus lists the user's recent searches.
	SearchStatus(ctx context.Context) ([]models.SearchTask, error)

	// GetConversation returns the conversation of a job, or an error
	// wrapping [ErrNotFound] when none exists yet.
	GetConversation(ctx context.Context, jobID int64) (models.Conversation, error)

	// CreateConversation opens a conversation for a job. When one already
	// exists the returned error is an [*HTTPError] wrapping [ErrConflict]
	// whose body carries conversation_id.
	CreateConversation(ctx context.Context, jobID int64) (models.Conversation, error)

	ListConversations(ctx context.Context) ([]models.ConversationSummary, error)

	// SendMessage stores a message and optionally sends it as SMS.
	SendMessage(ctx context.Context, conversationID int64, req models.SendMessageRequest) (models.Message, error)

	// GenerateMessage asks the backend to draft outreach text.
	GenerateMessage(ctx context.Context, req models.GenerateMessageRequest) (string, error)
}
