package store

import (
	"database/sql"

	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/migrations"
)

// DB wraps the local SQLite handle together with the logger used by the
// repositories built on top of it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
