package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteWatch forwards the lists of a [service.NoteWatcher] to a channel.
// Only the newest list is kept when the reader falls behind.
type NoteWatch struct {
	watcher  service.NoteWatcher
	session  models.Session
	interval time.Duration
	updates  chan []models.Note
}

func NewNoteWatch(watcher service.NoteWatcher, sess models.Session, interval time.Duration) *NoteWatch {
	return &NoteWatch{
		watcher:  watcher,
		session:  sess,
		interval: interval,
		updates:  make(chan []models.Note, 1),
	}
}

// Updates is never closed.
func (w *NoteWatch) Updates() <-chan []models.Note {
	return w.updates
}

func (w *NoteWatch) Run(ctx context.Context) {
	w.watcher.Start(ctx, w.session, w.interval, w.publish)
}

func (w *NoteWatch) Stop() {
	w.watcher.Stop()
}

func (w *NoteWatch) publish(notes []models.Note) {
	for {
		select {
		case w.updates <- notes:
			return
		default:
		}
		// drop the stale list
		select {
		case <-w.updates:
		default:
		}
	}
}
