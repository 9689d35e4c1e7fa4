package store

import (
	"database/sql"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/migrations"
)

// DB is the local SQLite handle shared by the key/value store. The
// classificator decides which driver errors are worth a retry.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the kv_entries schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
