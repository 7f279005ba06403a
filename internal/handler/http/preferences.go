package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.getPreferences", err)
		return
	}

	prefs, err := h.services.PreferencesService.GetPreferences(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.getPreferences", err)
		return
	}

	utils.WriteJSON(w, prefs, http.StatusOK)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updatePreferences", err)
		return
	}

	var update models.PreferencesUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, "*Handler.updatePreferences", err)
		return
	}

	prefs, err := h.services.PreferencesService.UpdatePreferences(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updatePreferences", err)
		return
	}

	utils.WriteJSON(w, prefs, http.StatusOK)
}
