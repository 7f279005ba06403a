package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the note UUID.
	FieldID = "id"

	// FieldOwnerID targets the owner of a note.
	FieldOwnerID = "owner_id"

	// FieldTimestamps targets created_at/updated_at ordering.
	FieldTimestamps = "timestamps"

	// FieldSize targets the length limits of sealed fields.
	FieldSize = "size"

	// FieldUpdate requires at least one field of a partial update.
	FieldUpdate = "update"

	// FieldNotes targets the notes list of a batch or a backup payload.
	FieldNotes = "notes"

	// FieldBackupType targets manual/auto.
	FieldBackupType = "backup_type"

	// FieldBackupName targets the human readable backup label.
	FieldBackupName = "backup_name"

	// FieldNoteCount checks the payload count against its notes.
	FieldNoteCount = "note_count"
)

// MaxFieldBytes bounds a single sealed note field. Sealing grows a value by
// roughly a third, so this leaves room for about 1.5 MiB of plaintext.
const MaxFieldBytes = 2 << 20

// NoteValidator implements [Validator] for notes and backups: Note,
// NoteUpdate, InsertNotesRequest and CreateBackupRequest, by value or pointer.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation to the type-specific method.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	case models.InsertNotesRequest:
		return v.validateInsertNotes(ctx, value, fields...)
	case *models.InsertNotesRequest:
		return v.validateInsertNotes(ctx, *value, fields...)

	case models.CreateBackupRequest:
		return v.validateCreateBackup(ctx, value, fields...)
	case *models.CreateBackupRequest:
		return v.validateCreateBackup(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldTimestamps, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsUUID(note.ID) {
				return ErrInvalidNoteID
			}
		case FieldOwnerID:
			if note.OwnerID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTimestamps:
			if note.CreatedAt.IsZero() || note.UpdatedAt.Before(note.CreatedAt) {
				return ErrInvalidTimestamps
			}
		case FieldSize:
			if tooLong(note.Title) || tooLong(note.Content) || (note.ImageRef != nil && tooLong(*note.ImageRef)) {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(_ context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldSize:
			for _, p := range []*string{update.Title, update.Content, update.ImageRef} {
				if p != nil && tooLong(*p) {
					return ErrFieldTooLong
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateInsertNotes(ctx context.Context, request models.InsertNotesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldNotes:
			if len(request.Notes) == 0 {
				return ErrEmptyNotes
			}
			if err := v.validateNoteList(ctx, request.Notes); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateCreateBackup(ctx context.Context, request models.CreateBackupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBackupName, FieldBackupType, FieldNotes, FieldNoteCount}
	}

	for _, f := range fields {
		switch f {
		case FieldBackupName:
			if request.BackupName == "" {
				return ErrEmptyBackupName
			}
		case FieldBackupType:
			if !request.BackupType.Valid() {
				return ErrInvalidBackupType
			}
		case FieldNotes:
			// an empty set is a client precondition, not a malformed request
			if len(request.Payload.Notes) == 0 {
				return ErrEmptyNotes
			}
			if err := v.validateNoteList(ctx, request.Payload.Notes); err != nil {
				return err
			}
		case FieldNoteCount:
			if request.Payload.NoteCount != len(request.Payload.Notes) {
				return ErrNoteCountMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNoteList checks every note (owner excluded, it comes from the
// token) and rejects repeated IDs.
func (v *NoteValidator) validateNoteList(ctx context.Context, notes []models.Note) error {
	seen := make(map[string]struct{}, len(notes))
	for i, note := range notes {
		if err := v.validateNote(ctx, note, FieldID, FieldTimestamps, FieldSize); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
		if _, dup := seen[note.ID]; dup {
			return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateNoteIDs)
		}
		seen[note.ID] = struct{}{}
	}
	return nil
}

func tooLong(s string) bool {
	return len(s) > MaxFieldBytes
}
