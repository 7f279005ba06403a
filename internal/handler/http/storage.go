package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

func attachmentKey(r *http.Request) (models.Bucket, string) {
	return models.Bucket(chi.URLParam(r, "bucket")), chi.URLParam(r, "name")
}

// setAttachmentHeaders describes the object without a body.
func setAttachmentHeaders(w http.ResponseWriter, info models.AttachmentInfo) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(info.SizeBytes, 10))
	if !info.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", info.UpdatedAt.UTC().Format(http.TimeFormat))
	}
}

func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.uploadAttachment", err)
		return
	}

	bucket, name := attachmentKey(r)
	body := http.MaxBytesReader(w, r.Body, maxAttachmentBodyBytes)

	info, err := h.services.AttachmentService.Upload(r.Context(), id, bucket, name, body)
	if err != nil {
		writeServiceError(w, r, "*Handler.uploadAttachment", err)
		return
	}

	utils.WriteJSON(w, info, http.StatusCreated)
}

func (h *Handler) attachmentInfo(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.attachmentInfo", err)
		return
	}

	bucket, name := attachmentKey(r)
	info, err := h.services.AttachmentService.Info(r.Context(), id, bucket, name)
	if err != nil {
		status, _ := replyFromError(err)
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.attachmentInfo").Int("status", status).Send()
		w.WriteHeader(status)
		return
	}

	setAttachmentHeaders(w, info)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) downloadAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.downloadAttachment", err)
		return
	}

	bucket, name := attachmentKey(r)
	rc, info, err := h.services.AttachmentService.Open(r.Context(), id, bucket, name)
	if err != nil {
		writeServiceError(w, r, "*Handler.downloadAttachment", err)
		return
	}
	defer rc.Close()

	setAttachmentHeaders(w, info)
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.downloadAttachment").Msg("failed to stream attachment")
	}
}

func (h *Handler) deleteAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteAttachment", err)
		return
	}

	bucket, name := attachmentKey(r)
	if err = h.services.AttachmentService.Delete(r.Context(), id, bucket, name); err != nil {
		writeServiceError(w, r, "*Handler.deleteAttachment", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
