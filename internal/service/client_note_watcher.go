// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/benbjohnson/clock"
)

// DefaultWatchInterval is used when Start gets a non-positive interval.
const DefaultWatchInterval = 5 * time.Second

type noteWatcher struct {
	notes   ClientNoteService
	adapter adapter.ServerAdapter
	clock   clock.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNoteWatcher creates a watcher that polls the notes revision on a
// ticker. It is idle until Start is called.
func NewNoteWatcher(notes ClientNoteService, serverAdapter adapter.ServerAdapter, clk clock.Clock) NoteWatcher {
	if clk == nil {
		clk = clock.New()
	}
	return &noteWatcher{notes: notes, adapter: serverAdapter, clock: clk}
}

// Start implements NoteWatcher. It stops any previously running poller, then
// launches a goroutine that compares the notes revision every interval and
// re-lists the notes when it differs from the last one seen. The first tick
// always delivers the list. The goroutine exits when ctx is cancelled or
// Stop is called.
func (w *noteWatcher) Start(ctx context.Context, session models.Session, interval time.Duration, onChange func([]models.Note)) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := w.clock.Ticker(interval)
		defer t.Stop()

		var (
			seen     models.NotesRevision
			haveSeen bool
		)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				rev, changed := w.poll(jobCtx, session, seen, haveSeen)
				if !changed {
					continue
				}
				notes, err := w.notes.List(jobCtx, session)
				if err != nil {
					logger.FromContext(jobCtx).Err(err).Str("func", "*noteWatcher.Start").Msg("re-list after change failed")
					continue
				}
				seen, haveSeen = rev, true
				onChange(notes)
			}
		}
	}()
}

func (w *noteWatcher) poll(ctx context.Context, session models.Session, seen models.NotesRevision, haveSeen bool) (models.NotesRevision, bool) {
	rev, err := w.adapter.NotesRevision(adapter.WithToken(ctx, session.Token))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteWatcher.poll").Msg("revision check failed")
		return seen, false
	}
	return rev, !haveSeen || !rev.Equal(seen)
}

// Stop implements NoteWatcher. It cancels the poller's context and blocks
// until the goroutine has fully exited. Safe to call when not running.
func (w *noteWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
