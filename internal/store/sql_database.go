package store

import (
	"database/sql"

	"github.com/logilink/logilink-client/internal/logger"
	"github.com/logilink/logilink-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
