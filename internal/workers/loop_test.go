// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_Start_TicksRepeatedly(t *testing.T) {
	var l Loop
	var calls atomic.Int64

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	l.Start(context.Background(), 10*time.Millisecond, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	time.Sleep(55 * time.Millisecond)
	l.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestLoop_Stop_StopsGoroutine(t *testing.T) {
	var l Loop
	var calls atomic.Int64

	l.Start(context.Background(), 10*time.Millisecond, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	time.Sleep(30 * time.Millisecond)
	l.Stop()
	assert.False(t, l.Running())

	callsAfterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestLoop_Stop_Idempotent(t *testing.T) {
	var l Loop

	// Stop без Start не должен паниковать
	assert.NotPanics(t, func() {
		l.Stop()
		l.Stop()
	})
}

func TestLoop_TickFalse_EndsLoop(t *testing.T) {
	var l Loop
	var calls atomic.Int64

	l.Start(context.Background(), 5*time.Millisecond, func(context.Context) bool {
		return calls.Add(1) < 2
	})

	require.Eventually(t, func() bool { return !l.Running() }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(2), calls.Load())
}

func TestLoop_Start_ReplacesPreviousRun(t *testing.T) {
	var l Loop
	var first, second atomic.Int64

	l.Start(context.Background(), 5*time.Millisecond, func(context.Context) bool {
		first.Add(1)
		return true
	})
	time.Sleep(20 * time.Millisecond)

	l.Start(context.Background(), 5*time.Millisecond, func(context.Context) bool {
		second.Add(1)
		return true
	})
	firstAfterRestart := first.Load()
	time.Sleep(30 * time.Millisecond)
	l.Stop()

	assert.Equal(t, firstAfterRestart, first.Load(), "старый цикл должен быть остановлен")
	assert.Positive(t, second.Load())
}

func TestLoop_ParentContextCancel(t *testing.T) {
	var l Loop
	ctx, cancel := context.WithCancel(context.Background())

	l.Start(ctx, 5*time.Millisecond, func(context.Context) bool { return true })
	cancel()

	require.Eventually(t, func() bool { return !l.Running() }, time.Second, 5*time.Millisecond)
}

func TestLoop_CancelFromInsideTick(t *testing.T) {
	var l Loop
	var calls atomic.Int64

	l.Start(context.Background(), 5*time.Millisecond, func(context.Context) bool {
		calls.Add(1)
		// Stop здесь заблокировался бы навсегда, Cancel нет
		l.Cancel()
		return true
	})

	require.Eventually(t, func() bool { return calls.Load() == 1 && !l.Running() }, time.Second, 5*time.Millisecond)
	l.Stop()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load())
}
