package store

import (
	"context"
	"strings"
	"sync"
)

type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns a process-local [TokenStore]. It is used when
// no database is configured and in tests.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Load(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrTokenNotFound
	}
	return s.token, nil
}

func (s *memoryTokenStore) Save(_ context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
