// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

const (
	msgOffline        = "Отсутствует сеть или Сервер недоступен"
	msgSessionExpired = "Сессия истекла, войдите снова"
	msgNoteMissing    = "Заметка уже удалена"
)

// networkHints match transport errors that reach the browser only as text,
// e.g. after passing through the HTTP client.
var networkHints = []string{
	"connection refused",
	"no such host",
	"network is unreachable",
	"i/o timeout",
}

// humanizeError turns a service error into a status line for the browser.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, store.ErrTransient):
		return msgOffline
	case errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, service.ErrTokenIsExpired):
		return msgSessionExpired
	case errors.Is(err, store.ErrNoteNotFound):
		return msgNoteMissing
	}

	text := strings.ToLower(err.Error())
	for _, hint := range networkHints {
		if strings.Contains(text, hint) {
			return msgOffline
		}
	}
	return err.Error()
}
