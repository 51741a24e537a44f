package service

import (
	"errors"
)

var (
	// ErrValidation is matched by every [*ValidationError]. Validation
	// failures are detected before any request is sent.
	ErrValidation = errors.New("validation failed")

	// ErrNoTokenReceived is returned when login or register succeeds at
	// the HTTP level but the body carries no access_token.
	ErrNoTokenReceived = errors.New("no access token received")

	// ErrNotAuthenticated is returned by operations that need a session
	// when there is none.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrDuplicateJob     = errors.New("duplicate job")
	ErrSearchInProgress = errors.New("search already in progress")
	ErrNoConversation   = errors.New("no conversation for job")
)

// ValidationError is a client-side input problem. Message is shown to the
// user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// AuthError is returned by the session operations. Message is either the
// backend's message or a generic fallback; Err is the underlying cause.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
