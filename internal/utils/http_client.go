package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000", 15*time.Second)
//	resp, err := client.R().Get("/api/jobs")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON client rooted at baseURL. Retries are
// disabled: every call is issued exactly once and its outcome is reported
// to the caller.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
