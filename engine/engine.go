package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/labsim/event"
	"github.com/lixenwraith/labsim/status"
)

// SetupFunc seeds a cleared world with a scene
type SetupFunc func(w *World) error

// Engine owns the world and the active strategy and drives one tick per Update
// Not reentrant: all methods must be called from a single goroutine, see ClockScheduler
type Engine struct {
	world    *World
	strategy Strategy

	observers []Observer
	handlers  []event.Handler
	events    *event.EventQueue

	clock    Clock
	maxDelta time.Duration
	logger   *zap.Logger
	status   *status.Registry

	running  bool
	lastTick time.Time
	frame    uint64
	run      uuid.UUID

	// Cached metric pointers
	statTicks    *atomic.Int64
	statEntities *atomic.Int64
	statDelta    *status.AtomicFloat
}

// New creates a paused engine over world with an initial strategy, which may be nil
func New(world *World, strategy Strategy, opts ...Option) *Engine {
	e := &Engine{
		world:  world,
		events: event.NewEventQueue(),
		clock:  NewTimeProvider(),
		logger: zap.NewNop(),
		status: status.NewRegistry(),
		run:    uuid.New(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.statTicks = e.status.Ints.Get(status.KeyTicks)
	e.statEntities = e.status.Ints.Get(status.KeyEntities)
	e.statDelta = e.status.Floats.Get(status.KeyFrameDelta)

	e.install(strategy)
	return e
}

// Start marks the engine running and resets the elapsed-time baseline
func (e *Engine) Start() {
	e.running = true
	e.lastTick = e.clock.Now()
	e.logger.Debug("engine started", zap.Stringer("run", e.run), zap.Uint64("frame", e.frame))
}

// Pause stops ticking; Update becomes a no-op until Start
func (e *Engine) Pause() {
	e.running = false
	e.logger.Debug("engine paused", zap.Stringer("run", e.run), zap.Uint64("frame", e.frame))
}

// Reset pauses, clears the world and notifies observers with an empty snapshot
// Re-seeding is the caller's responsibility
func (e *Engine) Reset() {
	e.Pause()
	e.world.Clear()
	e.frame = 0
	e.run = uuid.New()
	e.events.Reset()
	e.status.Reset()

	e.events.Push(event.SimEvent{Type: event.EventWorldReset})
	e.dispatchEvents()

	e.logger.Info("engine reset", zap.Stringer("run", e.run))
	e.notify()
}

// SetStrategy swaps the active algorithm without touching the world
func (e *Engine) SetStrategy(s Strategy) {
	e.install(s)
	e.events.Push(event.SimEvent{Type: event.EventStrategyChanged, Payload: StrategyName(s)})
	e.dispatchEvents()
	e.logger.Info("strategy changed", zap.String("strategy", StrategyName(s)))
}

func (e *Engine) install(s Strategy) {
	e.strategy = s
	if aware, ok := s.(EnvAware); ok {
		aware.Attach(Env{
			Events: e.events,
			Status: e.status,
			Logger: e.logger.Named(StrategyName(s)),
		})
	}
}

// Seed runs a scene setup against the world and notifies observers
func (e *Engine) Seed(setup SetupFunc) error {
	if setup != nil {
		if err := setup(e.world); err != nil {
			return err
		}
	}
	e.statEntities.Store(int64(e.world.Count()))
	e.logger.Debug("world seeded", zap.Int("entities", e.world.Count()))
	e.notify()
	return nil
}

// Update measures the delta since the previous call and runs one tick
// No-op while paused
func (e *Engine) Update() error {
	if !e.running {
		return nil
	}
	now := e.clock.Now()
	delta := now.Sub(e.lastTick)
	e.lastTick = now

	if delta < 0 {
		delta = 0
	}
	if e.maxDelta > 0 && delta > e.maxDelta {
		delta = e.maxDelta
	}
	return e.tick(delta.Seconds())
}

// Step runs exactly one tick of dt seconds regardless of the running state
func (e *Engine) Step(dt float64) error {
	return e.tick(dt)
}

func (e *Engine) tick(dt float64) error {
	if e.strategy == nil {
		return ErrNoStrategy
	}

	e.strategy.Update(e.world.All(), dt)
	e.frame++

	e.statTicks.Add(1)
	e.statEntities.Store(int64(e.world.Count()))
	e.statDelta.Set(dt)

	e.dispatchEvents()
	e.notify()
	return nil
}

// Subscribe registers an observer notified after every tick, seed and reset
func (e *Engine) Subscribe(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

// OnEvent registers a handler for events drained after each tick
func (e *Engine) OnEvent(h event.Handler) {
	if h != nil {
		e.handlers = append(e.handlers, h)
	}
}

func (e *Engine) dispatchEvents() {
	pending := e.events.Consume()
	if len(e.handlers) == 0 {
		return
	}
	for _, ev := range pending {
		ev.Frame = e.frame
		for _, h := range e.handlers {
			h(ev)
		}
	}
}

func (e *Engine) notify() {
	if len(e.observers) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, o := range e.observers {
		o.Notify(snap)
	}
}

// Snapshot returns the current state as observers would see it
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Run:      e.run,
		Frame:    e.frame,
		Strategy: StrategyName(e.strategy),
		Running:  e.running,
		Entities: e.world.All(),
	}
}

// Running reports whether Update advances the simulation
func (e *Engine) Running() bool { return e.running }

// Frame returns the number of ticks since the last reset
func (e *Engine) Frame() uint64 { return e.frame }

// Strategy returns the active strategy
func (e *Engine) Strategy() Strategy { return e.strategy }

// Status returns the metrics registry shared with strategies
func (e *Engine) Status() *status.Registry { return e.status }
