// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidOneTimeToken:
			return ErrInvalidOneTimeToken
		case app.MsgInvalidAttachmentName:
			return store.ErrInvalidAttachmentName
		case app.MsgIntegrityCheckFailed:
			return ErrInvalidDataProvided
		case app.MsgVersionIsNotSpecified:
			return ErrVersionIsNotSpecified
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenRevoked:
			return ErrTokenRevoked
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgEmailNotVerified {
			return ErrEmailNotVerified
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgBackupNotFound:
			return store.ErrBackupNotFound
		case app.MsgAttachmentNotFound:
			return store.ErrAttachmentNotFound
		}
		return store.ErrNoteNotFound

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgNoteAlreadyExists:
			return store.ErrNoteAlreadyExists
		}

	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return store.ErrTransient
	}

	return err
}

// extractBody extracts the server message from "<op>: bad request: <body>".
// Server messages never contain ": ".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
