package workers

import "sync"

// Workers stops a set of workers together.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
}

// NewWorkers returns an aggregate over ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// StopAll stops every registered worker in registration order.
func (w *Workers) StopAll() {
	w.mu.Lock()
	ws := append([]Worker(nil), w.workers...)
	w.mu.Unlock()

	for _, worker := range ws {
		worker.Stop()
	}
}

// ResetAll resets every worker that implements [Resetter]. It does not
// block, so it is safe to call from a session callback that a worker's own
// request triggered.
func (w *Workers) ResetAll() {
	w.mu.Lock()
	ws := append([]Worker(nil), w.workers...)
	w.mu.Unlock()

	for _, worker := range ws {
		if r, ok := worker.(Resetter); ok {
			r.Reset()
		}
	}
}
