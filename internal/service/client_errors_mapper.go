// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
)

// User-facing messages.
const (
	MsgLoginFailed          = "Login failed"
	MsgRegistrationFailed   = "Registration failed"
	MsgUpdateSettingsFailed = "Failed to update settings"
	MsgNoTokenReceived      = "No token received"
	MsgNotAuthenticated     = "Please log in first"
	MsgDuplicateJob         = "A job with this business name and phone already exists"
	MsgSearchInProgress     = "This search is already in progress"
	MsgNoConversation       = "No conversation found for this job"
	MsgSessionExpired       = "Your session has expired. Please log in again."
	MsgNetwork              = "Cannot reach the server. Check your connection and try again."
	MsgGeneric              = "Something went wrong. Please try again."
)

// UserMessage maps any error returned by this package to the text shown to
// the user. Validation, conflict and auth failures get a specific message;
// everything else gets a generic retry hint.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	var authErr *AuthError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.Is(err, ErrDuplicateJob):
		return MsgDuplicateJob
	case errors.Is(err, ErrSearchInProgress):
		return MsgSearchInProgress
	case errors.Is(err, ErrNoConversation):
		return MsgNoConversation
	case errors.Is(err, ErrNotAuthenticated):
		return MsgNotAuthenticated
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, adapter.ErrTransport), errors.Is(err, context.DeadlineExceeded):
		return MsgNetwork
	}

	if msg := clientErrorMessage(err); msg != "" {
		return msg
	}
	return MsgGeneric
}

// clientErrorMessage returns the backend message of a 4xx response. Server
// errors may carry stack traces or provider details and are never shown.
func clientErrorMessage(err error) string {
	var httpErr *adapter.HTTPError
	if !errors.As(err, &httpErr) {
		return ""
	}
	if httpErr.StatusCode < http.StatusBadRequest || httpErr.StatusCode >= http.StatusInternalServerError {
		return ""
	}
	return httpErr.Message
}

// authFailure builds the AuthError for a failed session call.
func authFailure(fallback string, err error) *AuthError {
	msg := clientErrorMessage(err)
	if msg == "" {
		msg = fallback
	}
	return &AuthError{Message: msg, Err: err}
}

// mapAdapterError translates the adapter's transport error into a service
// business error where one exists.
func mapAdapterError(err error, conflict error) error {
	if err == nil {
		return nil
	}
	if conflict != nil && errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("%w: %w", conflict, err)
	}
	return err
}
