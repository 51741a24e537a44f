package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:5000", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:5000", 3*time.Second)

	if client.BaseURL != "http://localhost:5000" {
		t.Errorf("expected base url to be set, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", client.GetClient().Timeout)
	}
	if client.RetryCount != 0 {
		t.Errorf("expected retries disabled, got %d", client.RetryCount)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept header, got %q", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}
