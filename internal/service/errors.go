package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrEmailNotVerified    = errors.New("email is not verified")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token was revoked")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrInvalidOneTimeToken     = errors.New("one-time token is invalid or expired")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Client-side errors.
var (
	// ErrNotAuthenticated is returned when an operation gets a session
	// without a signed-in principal.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoNotes is the precondition failure of a backup of an empty set.
	ErrNoNotes = errors.New("no notes to back up")

	// ErrNoNotesSelected is returned by bulk operations given no IDs.
	ErrNoNotesSelected = errors.New("no notes selected")

	// ErrUnsupportedRestoreStrategy is returned for any strategy but merge.
	ErrUnsupportedRestoreStrategy = errors.New("unsupported restore strategy")

	// ErrUnsupportedExportFormat is returned for unknown export formats.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	// ErrAdminGateDisabled is returned when no admin password is configured.
	ErrAdminGateDisabled = errors.New("admin password is not configured")

	// ErrAdminPasswordMismatch is returned for a wrong admin password.
	ErrAdminPasswordMismatch = errors.New("admin password does not match")
)

// RepositoryError reports a failed remote operation of the note repository.
// Op names the operation ("create", "update", "list", ...). Err is the
// underlying cause; errors.Is and errors.As see through it.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("notes %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func repositoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{Op: op, Err: err}
}
