package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

// listBackups answers with summaries only, never payloads.
func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.listBackups", err)
		return
	}

	backups, err := h.services.BackupService.ListBackups(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.listBackups", err)
		return
	}
	if backups == nil {
		backups = []models.BackupSummary{}
	}

	utils.WriteJSON(w, backups, http.StatusOK)
}

func (h *Handler) getBackup(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.getBackup", err)
		return
	}

	backup, err := h.services.BackupService.GetBackup(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getBackup", err)
		return
	}

	utils.WriteJSON(w, backup, http.StatusOK)
}

func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createBackup", err)
		return
	}

	var req models.CreateBackupRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.createBackup", err)
		return
	}

	backup, err := h.services.BackupService.CreateBackup(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createBackup", err)
		return
	}

	utils.WriteJSON(w, backup, http.StatusCreated)
}

func (h *Handler) deleteBackup(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteBackup", err)
		return
	}

	if err = h.services.BackupService.DeleteBackup(r.Context(), id, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteBackup", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
