package workers

import (
	"context"
	"sync"
	"time"
)

// Loop runs one TickFunc on a fixed interval. At most one goroutine is
// active per Loop: Start cancels any previous run first. The zero value is
// ready to use.
type Loop struct {
	// opMu serialises Start and Stop.
	opMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64

	wg sync.WaitGroup
}

// Start stops any running goroutine, then launches a new one that calls
// tick every interval until ctx is cancelled, Stop is called or tick
// returns false. The first tick happens one interval after Start.
func (l *Loop) Start(ctx context.Context, interval time.Duration, tick TickFunc) {
	l.opMu.Lock()
	defer l.opMu.Unlock()

	l.stop()

	l.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.gen++
	gen := l.gen
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer l.finish(gen, cancel)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				if !tick(loopCtx) || loopCtx.Err() != nil {
					return
				}
			}
		}
	}()
}

// Stop cancels the running goroutine and blocks until it has exited. Safe
// to call when the loop is not running (no-op in that case).
func (l *Loop) Stop() {
	l.opMu.Lock()
	defer l.opMu.Unlock()

	l.stop()
}

// Cancel stops the running goroutine without waiting for it. Unlike Stop
// it may be called from inside a tick.
func (l *Loop) Cancel() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Running reports whether a goroutine is currently scheduled.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

func (l *Loop) stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}

// finish clears the running state when the goroutine exits on its own.
func (l *Loop) finish(gen uint64, cancel context.CancelFunc) {
	cancel()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen == gen {
		l.cancel = nil
	}
}
