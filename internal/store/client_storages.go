package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-serble-keeper/internal/config"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
)

// ClientStorages groups all client-side stores into a single value that can
// be passed around the service layer. Every store sits on the same
// [KeyValueStorage].
type ClientStorages struct {
	// KV is the backing key/value storage, SQLite or in-memory.
	KV KeyValueStorage
	// Passwords is the obfuscated note-password cache.
	Passwords *PasswordCache
	// Sessions persists the access token between runs.
	Sessions *SessionStore
	// Credentials holds key pairs of the software authenticator.
	Credentials CredentialRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. For the DSN ":memory:" or "memory" (or an empty DSN), builds an
//     in-process store and returns.
//  2. Otherwise opens an SQLite connection to the file at cfg.DB.DSN,
//     creating the file if it does not yet exist.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Wires every store to the resulting [KeyValueStorage].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if isMemoryDSN(cfg.DB.DSN) {
		return newClientStorages(NewMemoryKeyValueStorage(), nil), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(NewSQLiteKeyValueStorage(db), db), nil
}

// NewMemoryClientStorages is a convenience for tests and throwaway sessions.
func NewMemoryClientStorages() *ClientStorages {
	return newClientStorages(NewMemoryKeyValueStorage(), nil)
}

func newClientStorages(kv KeyValueStorage, db *DB) *ClientStorages {
	return &ClientStorages{
		KV:          kv,
		Passwords:   NewPasswordCache(kv),
		Sessions:    NewSessionStore(kv),
		Credentials: NewCredentialRepository(kv),
		db:          db,
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func isMemoryDSN(dsn string) bool {
	return dsn == "" || dsn == ":memory:" || dsn == "memory"
}
