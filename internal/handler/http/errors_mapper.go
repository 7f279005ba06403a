package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// errorReply is the status and the public message of a known error.
type errorReply struct {
	target  error
	status  int
	message string
}

// errorReplies is checked in order; the first errors.Is match wins.
var errorReplies = []errorReply{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidOneTimeToken, http.StatusBadRequest, app.MsgInvalidOneTimeToken},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgVersionIsNotSpecified},
	{store.ErrInvalidAttachmentName, http.StatusBadRequest, app.MsgInvalidAttachmentName},
	{store.ErrInvalidBucket, http.StatusBadRequest, app.MsgInvalidAttachmentName},
	{models.ErrUnsupportedPayloadVersion, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenRevoked, http.StatusUnauthorized, app.MsgTokenRevoked},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrEmailNotVerified, http.StatusForbidden, app.MsgEmailNotVerified},

	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
	{store.ErrBackupNotFound, http.StatusNotFound, app.MsgBackupNotFound},
	{store.ErrAttachmentNotFound, http.StatusNotFound, app.MsgAttachmentNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrNoteAlreadyExists, http.StatusConflict, app.MsgNoteAlreadyExists},

	{store.ErrTransient, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func replyFromError(err error) (int, string) {
	for _, reply := range errorReplies {
		if errors.Is(err, reply.target) {
			return reply.status, reply.message
		}
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge)
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and answers with the mapped status and message.
// Client errors are logged at warn level, everything else at error level.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := replyFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
