package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/labsim/status"
)

// Option configures an Engine at construction
type Option func(*Engine)

// WithClock replaces the wall clock used to measure tick deltas
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger enables engine lifecycle logging; default is a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxDelta caps the measured delta of a single Update; zero disables the cap
func WithMaxDelta(d time.Duration) Option {
	return func(e *Engine) { e.maxDelta = d }
}

// WithStatus shares a metrics registry with the engine and its strategies
func WithStatus(r *status.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.status = r
		}
	}
}
