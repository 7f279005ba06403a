package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidNoteID     = errors.New("invalid note id")
	ErrInvalidTimestamps = errors.New("invalid note timestamps")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrEmptyNotes        = errors.New("notes list cannot be empty")
	ErrDuplicateNoteIDs  = errors.New("notes list contains duplicate ids")
	ErrInvalidBackupID   = errors.New("invalid backup id")
	ErrInvalidBackupType = errors.New("invalid backup type")
	ErrEmptyBackupName   = errors.New("backup name is required")
	ErrNoteCountMismatch = errors.New("note count does not match notes")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrFieldTooLong      = errors.New("field is too long")
	ErrEmptyOneTimeToken = errors.New("token is required")
)
