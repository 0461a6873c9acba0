package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNothingPersisted is returned when a load targets a state slice that
	// has never been saved (or was cleared). Callers treat it as "start from
	// the empty state", not as a failure.
	ErrNothingPersisted = errors.New("nothing persisted for slice")

	// ErrCorruptPayload is returned when a persisted payload exists but can
	// no longer be decoded. Callers discard it and start from the empty state.
	ErrCorruptPayload = errors.New("persisted payload is corrupt")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination fails.
	ErrScanningRow = errors.New("failed to scan state row")
)
