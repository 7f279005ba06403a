package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.CredentialsRequest
	if err := decodeJSON(w, r, &creds); err != nil {
		writeServiceError(w, r, "*Handler.register", err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), creds)
	if err != nil {
		writeServiceError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

// login answers with the public user and the bearer token in the
// Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.CredentialsRequest
	if err := decodeJSON(w, r, &creds); err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		writeServiceError(w, r, "*Handler.logout", ErrMissingUserID)
		return
	}

	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		writeServiceError(w, r, "*Handler.logout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.session", err)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.session", err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updatePassword", err)
		return
	}

	var req models.PasswordUpdateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.updatePassword", err)
		return
	}

	if err = h.services.AuthService.UpdatePassword(r.Context(), id, req); err != nil {
		writeServiceError(w, r, "*Handler.updatePassword", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestPasswordReset always answers 202 for well-formed requests so that
// registered emails cannot be probed.
func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.requestPasswordReset", err)
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), req); err != nil {
		writeServiceError(w, r, "*Handler.requestPasswordReset", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetConfirmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.confirmPasswordReset", err)
		return
	}

	if err := h.services.AuthService.ConfirmPasswordReset(r.Context(), req); err != nil {
		writeServiceError(w, r, "*Handler.confirmPasswordReset", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyEmailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.verifyEmail", err)
		return
	}

	if err := h.services.AuthService.VerifyEmail(r.Context(), req); err != nil {
		writeServiceError(w, r, "*Handler.verifyEmail", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
