package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTokenNotFound is returned by [TokenStore.Load] when no credential
	// has been persisted.
	ErrTokenNotFound = errors.New("token not found")

	// ErrKeyNotFound is returned by [KeyValueRepository.Get] when the key
	// has no row.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyToken is returned by [TokenStore.Save] for a blank credential.
	ErrEmptyToken = errors.New("empty token")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
