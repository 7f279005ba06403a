// Package workers runs the background jobs of a signed-in client session:
// the delayed automatic backup check and the notes watcher.
// It defines the Worker interface and a Workers aggregate that starts and
// stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines and return.
// The goroutines exit when ctx is cancelled or Stop is called. Stop waits
// for them and is safe to call more than once.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
