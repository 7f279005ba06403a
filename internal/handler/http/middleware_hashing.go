// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// BodyHashHeader carries the hex HMAC-SHA256 of the raw request body.
const BodyHashHeader = "X-Body-Hash"

// bodyHash verifies [BodyHashHeader] against the raw body of bulk writes.
// It is a pass-through when no hash key is configured. The body is restored
// for the next handler.
func (h *Handler) bodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
		if err != nil {
			writeServiceError(w, r, "*Handler.bodyHash", err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !utils.VerifyHash(body, r.Header.Get(BodyHashHeader)) {
			log.Warn().Str("func", "*Handler.bodyHash").
				Str("hash from request", r.Header.Get(BodyHashHeader)).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
