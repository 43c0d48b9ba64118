package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a user with the same username or
	// email is already stored, either found by the pre-check or reported by
	// the UNIQUE constraints.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrScenarioNotFound is returned when no scenario has the requested id.
	ErrScenarioNotFound = errors.New("scenario was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrConnectingDatabase is returned when the pool could not be
	// established within the configured number of attempts.
	ErrConnectingDatabase = errors.New("error connecting database")

	// ErrBuildingSQLQuery is returned when rendering a composed query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning or iterating a multi-row
	// result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
