package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSellerNotFound is returned when no seller record matches the given
	// member id or email.
	ErrSellerNotFound = errors.New("no seller was found")

	// ErrServiceZoneNotFound is returned when a referenced service zone does
	// not exist in the database.
	ErrServiceZoneNotFound = errors.New("service zone was not found")

	// ErrShippingOptionNotFound is returned when a query or update targets a
	// shipping option that does not exist in the database.
	ErrShippingOptionNotFound = errors.New("shipping option was not found")

	// ErrShippingOptionAlreadyLinked is returned when a link insert violates
	// the one-owner-per-option constraint.
	ErrShippingOptionAlreadyLinked = errors.New("shipping option is already linked to a seller")

	// ErrLinkNotFound is returned when a shipping option has no owning
	// seller link record.
	ErrLinkNotFound = errors.New("seller link was not found")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
