package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.listNotes", err)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.listNotes", err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.getNote", err)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// createNote stores a sealed note. The owner always comes from the token.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createNote", err)
		return
	}

	var note models.Note
	if err = decodeJSON(w, r, &note); err != nil {
		writeServiceError(w, r, "*Handler.createNote", err)
		return
	}

	created, err := h.services.NoteService.CreateNote(r.Context(), id, note)
	if err != nil {
		writeServiceError(w, r, "*Handler.createNote", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// insertNotes stores notes verbatim and reports how many were new.
func (h *Handler) insertNotes(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.insertNotes", err)
		return
	}

	var req models.InsertNotesRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.insertNotes", err)
		return
	}

	inserted, err := h.services.NoteService.InsertNotes(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.insertNotes", err)
		return
	}

	utils.WriteJSON(w, models.InsertNotesResponse{Inserted: inserted}, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateNote", err)
		return
	}

	var update models.NoteUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, "*Handler.updateNote", err)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), id, chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// deleteNote answers with the deleted note so that callers can clean up
// its attachment.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteNote", err)
		return
	}

	note, err := h.services.NoteService.DeleteNote(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) notesRevision(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.notesRevision", err)
		return
	}

	rev, err := h.services.NoteService.Revision(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.notesRevision", err)
		return
	}

	utils.WriteJSON(w, rev, http.StatusOK)
}
