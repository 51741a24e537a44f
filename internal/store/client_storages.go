package store

import (
	"context"
	"fmt"

	"github.com/mitchellbreust/client-crawler/internal/config"
	"github.com/mitchellbreust/client-crawler/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// TokenStore persists the bearer credential across restarts.
	TokenStore TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [TokenStore] on top of the client_state table.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenStore: NewTokenStore(NewKeyValueRepository(db)),
		db:         db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
