package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for well-known backend responses. Every error returned by
// a [ServerAdapter] method wraps one of these, so callers can branch with
// [errors.Is] without looking at status codes.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
	ErrUnexpected   = errors.New("unexpected response")

	// ErrTransport wraps network-level failures such as refused
	// connections and timeouts.
	ErrTransport = errors.New("transport error")
)

// HTTPError is a non-2xx backend response. It unwraps to the sentinel that
// matches StatusCode.
type HTTPError struct {
	StatusCode int

	// Message is the backend's "message" field, or the raw body text when
	// the body is not the usual JSON envelope.
	Message string

	// Body is the raw response body.
	Body []byte

	kind error
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: http %d: %s", e.kind, e.StatusCode, msg)
}

func (e *HTTPError) Unwrap() error {
	return e.kind
}

// Decode unmarshals the response body into v. It is used for error bodies
// that carry data, e.g. the existing conversation id on a 409.
func (e *HTTPError) Decode(v any) error {
	return json.Unmarshal(e.Body, v)
}
