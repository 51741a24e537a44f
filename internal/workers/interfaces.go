// Package workers provides the background loops of the client and an
// aggregate that stops them together on shutdown.
// It defines the Worker interface, the Loop ticker used by every polling
// concern, and a Workers aggregate.
package workers

import (
	"context"
)

// Worker is the interface that must be implemented by any background worker.
// Stop must be idempotent and must block until the worker's goroutine has
// exited.
//
// Example implementation:
//
//	type MyWorker struct{ loop Loop }
//
//	func (w *MyWorker) Stop() {
//	    w.loop.Stop()
//	}
type Worker interface {
	Stop()
}

// Resetter is implemented by workers that hold state of the current
// session. Reset cancels the worker without waiting for it and drops that
// state.
type Resetter interface {
	Reset()
}

// TickFunc is called on every tick of a [Loop]. Returning false ends the
// loop. A TickFunc must not call Start or Stop on its own loop.
type TickFunc func(ctx context.Context) bool
