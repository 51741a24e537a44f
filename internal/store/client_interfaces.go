package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenStore persists the bearer credential across client restarts under
// the key "token". Implementations must be safe for concurrent use.
type TokenStore interface {
	// Load returns the stored credential or [ErrTokenNotFound] when none
	// has been saved.
	Load(ctx context.Context) (string, error)

	// Save stores token, replacing any previous credential.
	Save(ctx context.Context, token string) error

	// Clear removes the stored credential. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}

// KeyValueRepository is the low-level local key/value table the
// [TokenStore] is built on.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
