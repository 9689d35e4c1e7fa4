package store

import "errors"

// Sentinel errors returned by client stores. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStorage.Get] for a key that has
	// no value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCredentialNotFound is returned when a sign-counter update targets a
	// credential id that is not stored.
	ErrCredentialNotFound = errors.New("credential not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
