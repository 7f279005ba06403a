package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientNoteService struct {
	adapter adapter.ServerAdapter
	sealer  crypto.Sealer

	logger *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, sealer crypto.Sealer, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{adapter: serverAdapter, sealer: sealer, logger: logger}
}

func (s *clientNoteService) Create(ctx context.Context, session models.Session, input models.NoteInput) (models.Note, error) {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{OwnerID: session.UserID}
	if note.Title, err = s.sealer.Seal(input.Title); err != nil {
		return models.Note{}, fmt.Errorf("seal title: %w", err)
	}
	if note.Content, err = s.sealer.Seal(input.Content); err != nil {
		return models.Note{}, fmt.Errorf("seal content: %w", err)
	}
	if note.ImageRef, err = s.sealOptional(input.ImageRef); err != nil {
		return models.Note{}, fmt.Errorf("seal image reference: %w", err)
	}

	created, err := s.adapter.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, repositoryError("create", mapAdapterError(err))
	}

	return s.open(created), nil
}

func (s *clientNoteService) Update(ctx context.Context, session models.Session, noteID string, update models.NoteUpdate) error {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return err
	}

	sealed := models.NoteUpdate{ClearImage: update.ClearImage}
	if sealed.Title, err = s.sealOptional(update.Title); err != nil {
		return fmt.Errorf("seal title: %w", err)
	}
	if sealed.Content, err = s.sealOptional(update.Content); err != nil {
		return fmt.Errorf("seal content: %w", err)
	}
	if !update.ClearImage {
		if sealed.ImageRef, err = s.sealOptional(update.ImageRef); err != nil {
			return fmt.Errorf("seal image reference: %w", err)
		}
	}

	if _, err = s.adapter.UpdateNote(ctx, noteID, sealed); err != nil {
		return repositoryError("update", mapAdapterError(err))
	}

	return nil
}

// Delete removes the note first; the image is only cleaned up once the note
// is gone.
func (s *clientNoteService) Delete(ctx context.Context, session models.Session, noteID string) (models.DeleteResult, error) {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return models.DeleteResult{}, err
	}
	log := logger.FromContext(ctx)

	note, err := s.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.DeleteResult{}, repositoryError("delete", mapAdapterError(err))
	}

	if err = s.adapter.DeleteNote(ctx, noteID); err != nil {
		return models.DeleteResult{}, repositoryError("delete", mapAdapterError(err))
	}

	result := models.DeleteResult{NoteID: noteID}
	if !note.HasImage() {
		return result, nil
	}

	name := attachmentName(s.sealer.Open(*note.ImageRef))
	if err = s.adapter.DeleteAttachment(ctx, models.BucketImages, name); err != nil {
		log.Warn().Err(err).
			Str("func", "*clientNoteService.Delete").
			Str("note_id", noteID).
			Str("attachment", name).
			Msg("note deleted but its image was not removed")
		result.AttachmentErr = err
	}

	return result, nil
}

func (s *clientNoteService) List(ctx context.Context, session models.Session) ([]models.Note, error) {
	notes, err := s.ListRaw(ctx, session)
	if err != nil {
		return nil, err
	}

	opened := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		opened = append(opened, s.open(n))
	}
	return opened, nil
}

func (s *clientNoteService) Get(ctx context.Context, session models.Session, noteID string) (models.Note, error) {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, repositoryError("get", mapAdapterError(err))
	}

	return s.open(note), nil
}

func (s *clientNoteService) ListRaw(ctx context.Context, session models.Session) ([]models.Note, error) {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return nil, err
	}

	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return nil, repositoryError("list", mapAdapterError(err))
	}

	return notes, nil
}

func (s *clientNoteService) InsertRaw(ctx context.Context, session models.Session, notes []models.Note) (int, error) {
	ctx, err := authorize(ctx, session)
	if err != nil {
		return 0, err
	}
	if len(notes) == 0 {
		return 0, nil
	}

	inserted, err := s.adapter.InsertNotes(ctx, notes)
	if err != nil {
		return 0, repositoryError("insert", mapAdapterError(err))
	}

	return inserted, nil
}

func (s *clientNoteService) BulkDelete(ctx context.Context, session models.Session, noteIDs []string) (models.BatchResult, error) {
	if len(noteIDs) == 0 {
		return models.BatchResult{}, ErrNoNotesSelected
	}
	if !session.Valid() {
		return models.BatchResult{}, ErrNotAuthenticated
	}
	log := logger.FromContext(ctx)

	result := models.BatchResult{Attempted: len(noteIDs)}
	for _, id := range noteIDs {
		if _, err := s.Delete(ctx, session, id); err != nil {
			log.Err(err).Str("func", "*clientNoteService.BulkDelete").Str("note_id", id).Msg("note was not deleted")
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Succeeded++
	}

	return result, nil
}

// open returns note with every sealed field opened.
func (s *clientNoteService) open(note models.Note) models.Note {
	note.Title = s.sealer.Open(note.Title)
	note.Content = s.sealer.Open(note.Content)
	if note.ImageRef != nil {
		ref := s.sealer.Open(*note.ImageRef)
		note.ImageRef = &ref
	}
	return note
}

func (s *clientNoteService) sealOptional(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	sealed, err := s.sealer.Seal(*value)
	if err != nil {
		return nil, err
	}
	return &sealed, nil
}

// authorize attaches the session token to ctx for the adapter.
func authorize(ctx context.Context, session models.Session) (context.Context, error) {
	if !session.Valid() {
		return ctx, ErrNotAuthenticated
	}
	return adapter.WithToken(ctx, session.Token), nil
}

// attachmentName reduces an image reference, a bare name or a URL ending in
// the object name, to the object name.
func attachmentName(ref string) string {
	ref = strings.TrimSpace(ref)
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return path.Base(ref)
}
