package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mitchellbreust/client-crawler/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return NewHTTPError(resp.StatusCode(), resp.Body())
}

// NewHTTPError builds the error for a non-2xx response with the given
// status and body.
func NewHTTPError(status int, body []byte) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: status,
		Message:    extractMessage(body),
		Body:       body,
	}

	switch {
	case status == http.StatusBadRequest:
		httpErr.kind = ErrBadRequest
	case status == http.StatusUnauthorized:
		httpErr.kind = ErrUnauthorized
	case status == http.StatusForbidden:
		httpErr.kind = ErrForbidden
	case status == http.StatusNotFound:
		httpErr.kind = ErrNotFound
	case status == http.StatusConflict:
		httpErr.kind = ErrConflict
	case status >= http.StatusInternalServerError:
		httpErr.kind = ErrServer
	default:
		httpErr.kind = ErrUnexpected
	}

	return httpErr
}

// extractMessage returns the backend "message" field; flask-jwt-extended
// uses "msg" for its own 401/422 responses.
func extractMessage(body []byte) string {
	var envelope struct {
		models.ErrorResponse
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Msg != "" {
			return envelope.Msg
		}
	}

	return strings.TrimSpace(string(body))
}
