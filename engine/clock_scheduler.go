package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/labsim/parameter"
)

// ClockScheduler is the per-frame driver that owns the engine goroutine
// Lifecycle commands from other goroutines are queued and run between ticks,
// so the engine is never entered concurrently
type ClockScheduler struct {
	engine   *Engine
	interval time.Duration
	logger   *zap.Logger

	commands chan func(*Engine)
	running  atomic.Bool

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
}

// NewClockScheduler creates a scheduler ticking the engine every interval
func NewClockScheduler(e *Engine, interval time.Duration, logger *zap.Logger) *ClockScheduler {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClockScheduler{
		engine:   e,
		interval: interval,
		logger:   logger,
		commands: make(chan func(*Engine), parameter.CommandQueueSize),
	}
}

// Run drives the engine until ctx is cancelled
// Returns nil on cancellation, ErrSchedulerRunning if already running
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer cs.running.Store(false)

	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	cs.logger.Debug("scheduler started", zap.Duration("interval", cs.interval))
	for {
		select {
		case <-ctx.Done():
			cs.logger.Debug("scheduler stopped", zap.Uint64("ticks", cs.tickCount.Load()))
			return nil

		case fn := <-cs.commands:
			fn(cs.engine)

		case <-ticker.C:
			cs.processTick()
		}
	}
}

func (cs *ClockScheduler) processTick() {
	if err := cs.engine.Update(); err != nil {
		if errors.Is(err, ErrNoStrategy) {
			// Pause instead of logging every frame
			cs.engine.Pause()
		}
		cs.logger.Warn("tick failed", zap.Error(err))
		return
	}
	cs.tickCount.Add(1)
}

// Do queues fn to run on the engine goroutine without waiting for it
func (cs *ClockScheduler) Do(ctx context.Context, fn func(*Engine)) error {
	select {
	case cs.commands <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Call runs fn on the engine goroutine and waits for its result
// Must not be called from the engine goroutine itself
func (cs *ClockScheduler) Call(ctx context.Context, fn func(*Engine) error) error {
	done := make(chan error, 1)
	if err := cs.Do(ctx, func(e *Engine) { done <- fn(e) }); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TickCount returns the number of successful ticks since Run started
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Running reports whether Run is active
func (cs *ClockScheduler) Running() bool {
	return cs.running.Load()
}
