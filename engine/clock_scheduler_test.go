package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockScheduler_TicksOnlyWhileRunning(t *testing.T) {
	var ticks atomic.Int64
	e := New(NewWorld(), StrategyFunc(func([]*Entity, float64) { ticks.Add(1) }))
	cs := NewClockScheduler(e, 2*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cs.Run(ctx) }()

	require.Eventually(t, cs.Running, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, ticks.Load(), "paused engine must not tick")

	require.NoError(t, cs.Call(ctx, func(e *Engine) error {
		e.Start()
		return nil
	}))
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.False(t, cs.Running())
	assert.GreaterOrEqual(t, cs.TickCount(), uint64(3))
}

func TestClockScheduler_SecondRunRejected(t *testing.T) {
	e := New(NewWorld(), StrategyFunc(func([]*Entity, float64) {}))
	cs := NewClockScheduler(e, time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = cs.Run(ctx) }()
	require.Eventually(t, cs.Running, time.Second, time.Millisecond)

	assert.ErrorIs(t, cs.Run(ctx), ErrSchedulerRunning)
}

func TestClockScheduler_NoStrategyPauses(t *testing.T) {
	e := New(NewWorld(), nil)
	cs := NewClockScheduler(e, time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = cs.Run(ctx) }()

	require.NoError(t, cs.Call(ctx, func(e *Engine) error {
		e.Start()
		return nil
	}))

	require.Eventually(t, func() bool {
		var running bool
		_ = cs.Call(ctx, func(e *Engine) error {
			running = e.Running()
			return nil
		})
		return !running
	}, time.Second, 2*time.Millisecond)
	assert.Zero(t, cs.TickCount())
}

func TestClockScheduler_CallHonorsCancelledContext(t *testing.T) {
	e := New(NewWorld(), nil)
	cs := NewClockScheduler(e, time.Millisecond, nil)

	// Fill the command queue with nobody consuming it
	for i := 0; i < cap(cs.commands); i++ {
		require.NoError(t, cs.Do(context.Background(), func(*Engine) {}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, cs.Call(ctx, func(*Engine) error { return nil }), context.Canceled)
}
