// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/workers"
	"github.com/mitchellbreust/client-crawler/models"
)

const defaultSearchPollInterval = 3 * time.Second

type searchStatusPoller struct {
	adapter  adapter.ServerAdapter
	interval time.Duration
	loop     workers.Loop
	logger   *logger.Logger

	// pollMu keeps ticks and on-demand refreshes from interleaving.
	pollMu sync.Mutex

	mu             sync.RWMutex
	tasks          []models.SearchTask
	seeded         bool
	onUpdate       func([]models.SearchTask)
	onJobsImported func()

	// session is bumped by Reset; polls started before it are discarded.
	session uint64
}

// NewSearchStatusPoller creates an idle poller. interval defaults to 3
// seconds when zero or negative.
func NewSearchStatusPoller(serverAdapter adapter.ServerAdapter, interval time.Duration, logger *logger.Logger) SearchStatusPoller {
	if interval <= 0 {
		interval = defaultSearchPollInterval
	}
	return &searchStatusPoller{adapter: serverAdapter, interval: interval, logger: logger}
}

func (p *searchStatusPoller) Submit(ctx context.Context, req models.SearchRequest) (models.SearchHandle, error) {
	if req.What == "" || req.Where == "" || req.State == "" {
		return models.SearchHandle{}, newValidationError("Search parameters (what, where, state) are required")
	}

	handle, err := p.adapter.SearchJobs(ctx, req)
	if err != nil {
		return models.SearchHandle{}, mapAdapterError(err, ErrSearchInProgress)
	}
	p.logger.Info().
		Str("func", "searchStatusPoller.Submit").
		Str("search_id", handle.JobID).
		Msg("search submitted")

	if err = p.Refresh(ctx); err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
		// the search is running server-side; the next tick will catch up
		p.ensureRunning(ctx)
	}

	return handle, nil
}

func (p *searchStatusPoller) Refresh(ctx context.Context) error {
	active, err := p.poll(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "searchStatusPoller.Refresh").Msg("search status poll failed")
		return fmt.Errorf("refresh search status: %w", err)
	}
	if active > 0 {
		p.ensureRunning(ctx)
	}
	return nil
}

func (p *searchStatusPoller) ensureRunning(ctx context.Context) {
	if p.loop.Running() {
		return
	}
	// the loop outlives the request that started it
	p.loop.Start(context.WithoutCancel(ctx), p.interval, p.tick)
}

// tick is one scheduled poll. A failed request keeps the loop alive unless
// the credential was rejected; an empty active set ends it.
func (p *searchStatusPoller) tick(ctx context.Context) bool {
	active, err := p.poll(ctx)
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		p.logger.Info().Str("func", "searchStatusPoller.tick").Msg("credential rejected, polling stopped")
		return false
	case errors.Is(err, context.Canceled):
		return false
	case err != nil:
		p.logger.Warn().Err(err).Str("func", "searchStatusPoller.tick").Msg("search status poll failed")
		return true
	}
	if active == 0 {
		p.logger.Debug().Str("func", "searchStatusPoller.tick").Msg("no active searches, polling stopped")
		return false
	}
	return true
}

// poll fetches the task list, replaces the snapshot and fires the
// callbacks. It returns the number of active tasks.
func (p *searchStatusPoller) poll(ctx context.Context) (int, error) {
	p.pollMu.Lock()
	defer p.pollMu.Unlock()

	p.mu.RLock()
	session := p.session
	p.mu.RUnlock()

	tasks, err := p.adapter.SearchStatus(ctx)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	if p.session != session {
		p.mu.Unlock()
		return 0, nil
	}
	imported := p.seeded && newlyFinished(p.tasks, tasks)
	p.tasks = tasks
	p.seeded = true
	onUpdate, onJobsImported := p.onUpdate, p.onJobsImported
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(cloneTasks(tasks))
	}
	if imported && onJobsImported != nil {
		p.logger.Info().Str("func", "searchStatusPoller.poll").Msg("search finished, refreshing jobs")
		onJobsImported()
	}

	return countActive(tasks), nil
}

func (p *searchStatusPoller) Tasks() []models.SearchTask {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneTasks(p.tasks)
}

func (p *searchStatusPoller) ActiveCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return countActive(p.tasks)
}

func (p *searchStatusPoller) Running() bool {
	return p.loop.Running()
}

func (p *searchStatusPoller) OnUpdate(fn func([]models.SearchTask)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = fn
}

func (p *searchStatusPoller) OnJobsImported(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onJobsImported = fn
}

func (p *searchStatusPoller) Stop() {
	p.loop.Stop()
}

// Reset implements workers.Resetter. It cancels polling and forgets the
// snapshot, so the next session seeds afresh.
func (p *searchStatusPoller) Reset() {
	p.loop.Cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.tasks = nil
	p.seeded = false
	p.session++
}

// newlyFinished reports whether next holds a finished task that was not
// finished in prev.
func newlyFinished(prev, next []models.SearchTask) bool {
	done := make(map[string]bool, len(prev))
	for _, t := range prev {
		if t.Finished() {
			done[t.ID] = true
		}
	}
	for _, t := range next {
		if t.Finished() && !done[t.ID] {
			return true
		}
	}
	return false
}

func countActive(tasks []models.SearchTask) int {
	n := 0
	for _, t := range tasks {
		if t.Status.Active() {
			n++
		}
	}
	return n
}

func cloneTasks(tasks []models.SearchTask) []models.SearchTask {
	if tasks == nil {
		return nil
	}
	out := make([]models.SearchTask, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].Results != nil {
			out[i].Results = append([]models.Business(nil), out[i].Results...)
		}
	}
	return out
}
