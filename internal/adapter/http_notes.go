package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ListNotes implements [ServerAdapter] via GET /api/notes.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := h.getJSON(ctx, "/api/notes", &notes); err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	return notes, nil
}

// GetNote implements [ServerAdapter] via GET /api/notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note
	if err := h.getJSON(ctx, notePath(noteID), &note); err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	return note, nil
}

// CreateNote implements [ServerAdapter] via POST /api/notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note

	resp, err := h.authedRequest(ctx).
		SetBody(note).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// InsertNotes implements [ServerAdapter] via POST /api/notes/batch.
func (h *httpServerAdapter) InsertNotes(ctx context.Context, notes []models.Note) (int, error) {
	req, err := h.hashedRequest(ctx, models.InsertNotesRequest{Notes: notes})
	if err != nil {
		return 0, err
	}

	var result models.InsertNotesResponse
	resp, err := req.SetResult(&result).Post("/api/notes/batch")
	if err != nil {
		return 0, fmt.Errorf("insert notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.Inserted, nil
}

// UpdateNote implements [ServerAdapter] via PATCH /api/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	var updated models.Note

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&updated).
		Patch(notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote implements [ServerAdapter] via DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).Delete(notePath(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// NotesRevision implements [ServerAdapter] via GET /api/notes/revision.
func (h *httpServerAdapter) NotesRevision(ctx context.Context) (models.NotesRevision, error) {
	var rev models.NotesRevision
	if err := h.getJSON(ctx, "/api/notes/revision", &rev); err != nil {
		return models.NotesRevision{}, fmt.Errorf("notes revision request: %w", err)
	}
	return rev, nil
}

func notePath(noteID string) string {
	return "/api/notes/" + url.PathEscape(noteID)
}
