package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no account matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProjectNotFound is returned when a project does not exist or is
	// owned by another user.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrRevisionNotFound is returned when a revision code does not exist
	// for the project.
	ErrRevisionNotFound = errors.New("revision was not found")

	// ErrRevisionCodeTaken is returned when another request already stored a
	// revision with the same code for the project.
	ErrRevisionCodeTaken = errors.New("revision code already taken")

	// ErrTransientFailure wraps driver errors that may succeed on another
	// attempt: serialization failures, deadlocks, lost connections and
	// SQLITE_BUSY.
	ErrTransientFailure = errors.New("transient database failure")

	// ErrLibraryItemNotFound is returned when a library row id does not exist.
	ErrLibraryItemNotFound = errors.New("library item was not found")

	// ErrUnknownLibraryKind is returned for a kind without a library table.
	ErrUnknownLibraryKind = errors.New("unknown library kind")

	// ErrPDFNotFound is returned when a stored report file is missing.
	ErrPDFNotFound = errors.New("pdf was not found")

	// ErrInvalidPDFPath is returned for report paths that escape the store.
	ErrInvalidPDFPath = errors.New("invalid pdf path")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
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
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a snapshot or result cannot be
	// stored as JSON.
	ErrEncodingJSON = errors.New("failed to encode json column")

	// ErrDecodingJSON is returned when a stored JSON column is corrupt.
	ErrDecodingJSON = errors.New("failed to decode json column")
)
