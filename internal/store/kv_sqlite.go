package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
)

const (
	kvTable       = "kv_entries"
	kvKeyColumn   = "storage_key"
	kvValueColumn = "storage_value"
	kvTimeColumn  = "updated_at"

	kvMaxRetries = 3
	kvRetryDelay = 50 * time.Millisecond
)

type sqliteKeyValueStorage struct {
	*DB
	backoff func() retry.Backoff
}

// NewSQLiteKeyValueStorage returns a [KeyValueStorage] over the kv_entries
// table. Busy and locked errors are retried a few times before giving up.
func NewSQLiteKeyValueStorage(db *DB) KeyValueStorage {
	if db.errorClassificator == nil {
		db.errorClassificator = NewSQLiteErrorClassifier()
	}
	return &sqliteKeyValueStorage{
		DB: db,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(kvMaxRetries, retry.NewConstant(kvRetryDelay))
		},
	}
}

func (s *sqliteKeyValueStorage) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStorage.Get").Msg("failed to build select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStorage.Get").Str("key", key).Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStorage) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvTimeColumn).
		Values(key, value, now).
		Suffix("ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvTimeColumn + " = excluded." + kvTimeColumn).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStorage.Set").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStorage.Set").Str("key", key).Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStorage) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStorage.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStorage.Delete").Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// withRetry runs fn, repeating it while the classifier calls the error
// retryable. The error of the last attempt is returned as is.
func (s *sqliteKeyValueStorage) withRetry(ctx context.Context, fn func(context.Context) error) error {
	return retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && s.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
