// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys, request IDs,
// HTTP client initialization and unverified JWT inspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store a caller-chosen request ID in the
// context. The HTTP adapter sends it as X-Request-ID instead of generating a
// fresh one.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithRequestID(ctx, "batch-42")
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request ID from the context.
//
// Returns the ID and an ok flag:
//   - ok == true: a non-empty string value is present
//   - ok == false: value is missing, empty or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
