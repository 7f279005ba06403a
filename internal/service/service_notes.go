package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService stores notes exactly as received. Field values are sealed by
// the client; the server never opens them.
type noteService struct {
	noteRepository store.NoteRepository

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	observeNoteOp("list", err)
	return notes, err
}

func (s *noteService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	return s.noteRepository.GetNote(ctx, userID, noteID)
}

// CreateNote takes the owner from userID, never from the note itself.
func (s *noteService) CreateNote(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	now := s.now().UTC()

	if note.ID == "" {
		note.ID = s.ids.Generate()
	}
	note.OwnerID = userID
	note.CreatedAt = now
	note.UpdatedAt = now

	created, err := s.noteRepository.CreateNote(ctx, note)
	observeNoteOp("create", err)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	return created, nil
}

// InsertNotes keeps IDs and timestamps of the given notes.
func (s *noteService) InsertNotes(ctx context.Context, userID int64, req models.InsertNotesRequest) (int, error) {
	inserted, err := s.noteRepository.InsertNotes(ctx, userID, req.Notes)
	observeNoteOp("insert", err)
	if err != nil {
		return 0, fmt.Errorf("insert notes: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", userID).
		Int("requested", len(req.Notes)).
		Int("inserted", inserted).
		Msg("notes inserted verbatim")

	return inserted, nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) (models.Note, error) {
	updated, err := s.noteRepository.UpdateNote(ctx, userID, noteID, update)
	observeNoteOp("update", err)
	return updated, err
}

func (s *noteService) DeleteNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	deleted, err := s.noteRepository.DeleteNote(ctx, userID, noteID)
	observeNoteOp("delete", err)
	return deleted, err
}

func (s *noteService) Revision(ctx context.Context, userID int64) (models.NotesRevision, error) {
	return s.noteRepository.Revision(ctx, userID)
}
