package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	wrap := func(sentinel error, msg string) error {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	other := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "invalid data", err: wrap(adapter.ErrBadRequest, app.MsgInvalidDataProvided), want: ErrInvalidDataProvided},
		{name: "integrity", err: wrap(adapter.ErrBadRequest, app.MsgIntegrityCheckFailed), want: ErrInvalidDataProvided},
		{name: "wrong password", err: wrap(adapter.ErrUnauthorized, app.MsgInvalidLoginPassword), want: ErrWrongPassword},
		{name: "expired", err: wrap(adapter.ErrUnauthorized, app.MsgTokenIsExpired), want: ErrTokenIsExpired},
		{name: "revoked", err: wrap(adapter.ErrUnauthorized, app.MsgTokenRevoked), want: ErrTokenRevoked},
		{name: "unknown unauthorized", err: wrap(adapter.ErrUnauthorized, "?"), want: ErrTokenIsExpiredOrInvalid},
		{name: "not verified", err: wrap(adapter.ErrForbidden, app.MsgEmailNotVerified), want: ErrEmailNotVerified},
		{name: "note not found", err: wrap(adapter.ErrNotFound, app.MsgNoteNotFound), want: store.ErrNoteNotFound},
		{name: "backup not found", err: wrap(adapter.ErrNotFound, app.MsgBackupNotFound), want: store.ErrBackupNotFound},
		{name: "attachment not found", err: wrap(adapter.ErrNotFound, app.MsgAttachmentNotFound), want: store.ErrAttachmentNotFound},
		{name: "email taken", err: wrap(adapter.ErrConflict, app.MsgEmailAlreadyExists), want: store.ErrEmailAlreadyExists},
		{name: "unavailable", err: wrap(adapter.ErrServiceUnavailable, app.MsgServiceUnavailable), want: store.ErrTransient},
		{name: "passthrough", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.err), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
