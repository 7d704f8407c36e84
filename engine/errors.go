package engine

import "errors"

var (
	// ErrNoStrategy is returned when a tick runs with no strategy installed
	ErrNoStrategy = errors.New("no simulation strategy set")

	// ErrNotImplemented is the panic value of UnimplementedStrategy.Update
	ErrNotImplemented = errors.New("strategy update not implemented")

	// ErrSchedulerRunning is returned by a second concurrent ClockScheduler.Run
	ErrSchedulerRunning = errors.New("clock scheduler already running")
)
