// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Browser is the interactive view of a signed-in session. It returns
// tui.ErrSessionEnded when ctx is cancelled under it.
type Browser interface {
	Browse(ctx context.Context, sess models.Session, guard tui.ActivityGuard, updates <-chan []models.Note) error
}
