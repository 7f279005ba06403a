package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteServiceWrapper decorates a NoteService with additional behavior.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// NoteValidationService checks requests before they reach the wrapped
// NoteService. Failures wrap ErrInvalidDataProvided.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	if userID <= 0 {
		return nil, invalid(validators.ErrInvalidUserID)
	}
	return v.inner.ListNotes(ctx, userID)
}

func (v *NoteValidationService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	if err := checkNoteRef(userID, noteID); err != nil {
		return models.Note{}, err
	}
	return v.inner.GetNote(ctx, userID, noteID)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	if userID <= 0 {
		return models.Note{}, invalid(validators.ErrInvalidUserID)
	}
	// the id is optional here, the server assigns one when it is empty
	if note.ID != "" && !utils.IsUUID(note.ID) {
		return models.Note{}, invalid(validators.ErrInvalidNoteID)
	}
	if err := v.validator.Validate(ctx, note, validators.FieldSize); err != nil {
		return models.Note{}, invalid(err)
	}
	return v.inner.CreateNote(ctx, userID, note)
}

func (v *NoteValidationService) InsertNotes(ctx context.Context, userID int64, req models.InsertNotesRequest) (int, error) {
	if userID <= 0 {
		return 0, invalid(validators.ErrInvalidUserID)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, invalid(err)
	}
	return v.inner.InsertNotes(ctx, userID, req)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) (models.Note, error) {
	if err := checkNoteRef(userID, noteID); err != nil {
		return models.Note{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, invalid(err)
	}
	return v.inner.UpdateNote(ctx, userID, noteID, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	if err := checkNoteRef(userID, noteID); err != nil {
		return models.Note{}, err
	}
	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *NoteValidationService) Revision(ctx context.Context, userID int64) (models.NotesRevision, error) {
	if userID <= 0 {
		return models.NotesRevision{}, invalid(validators.ErrInvalidUserID)
	}
	return v.inner.Revision(ctx, userID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

func checkNoteRef(userID int64, noteID string) error {
	if userID <= 0 {
		return invalid(validators.ErrInvalidUserID)
	}
	if !utils.IsUUID(noteID) {
		return invalid(validators.ErrInvalidNoteID)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
