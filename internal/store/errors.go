package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a sign-up collides with an
	// existing account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note does not exist or belongs to
	// another user.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteAlreadyExists is returned when a created note reuses an ID.
	ErrNoteAlreadyExists = errors.New("note already exists")

	// ErrBackupNotFound is returned for unknown or tombstoned backups.
	ErrBackupNotFound = errors.New("backup was not found")

	// ErrAttachmentNotFound is returned when an object is missing from its
	// bucket.
	ErrAttachmentNotFound = errors.New("attachment was not found")

	// ErrInvalidAttachmentName is returned for empty names or names that
	// would escape the bucket directory.
	ErrInvalidAttachmentName = errors.New("invalid attachment name")

	// ErrInvalidBucket is returned for bucket names other than images/voice.
	ErrInvalidBucket = errors.New("invalid bucket")

	// ErrTokenNotFound is returned when a one-time token is unknown, expired
	// or already used.
	ErrTokenNotFound = errors.New("token was not found")

	// ErrLocalSessionNotFound is returned when no session is stored locally.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrTransient marks driver failures that may succeed on retry, such as
	// lost connections or serialization conflicts.
	ErrTransient = errors.New("transient storage failure")
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

	// ErrEncodingPayload is returned when a JSON column cannot be encoded
	// or decoded.
	ErrEncodingPayload = errors.New("failed to encode payload")
)
