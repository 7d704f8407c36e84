package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/core"
	"github.com/lixenwraith/labsim/event"
	"github.com/lixenwraith/labsim/status"
)

// recordingStrategy captures every dt it is called with
type recordingStrategy struct {
	name  string
	calls []float64
	seen  int
}

func (r *recordingStrategy) Update(entities []*Entity, dt float64) {
	r.calls = append(r.calls, dt)
	r.seen = len(entities)
}

func (r *recordingStrategy) Name() string { return r.name }

// emittingStrategy pushes one collision event per tick through its attached env
type emittingStrategy struct {
	env Env
}

func (s *emittingStrategy) Attach(env Env) { s.env = env }

func (s *emittingStrategy) Update([]*Entity, float64) {
	s.env.Events.Push(event.SimEvent{Type: event.EventCollision, Payload: event.CollisionPayload{A: 1, B: 2}})
	s.env.Status.Ints.Get(status.KeyCollisions).Add(1)
}

func newTestEngine(s Strategy) (*Engine, *World, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	w := NewWorld()
	return New(w, s, WithClock(clock)), w, clock
}

func TestEngine_UpdateIsNoopWhilePaused(t *testing.T) {
	strat := &recordingStrategy{name: "rec"}
	e, _, clock := newTestEngine(strat)

	clock.Advance(time.Second)
	require.NoError(t, e.Update())

	assert.Empty(t, strat.calls)
	assert.Zero(t, e.Frame())
	assert.False(t, e.Running())
}

func TestEngine_UpdateMeasuresElapsed(t *testing.T) {
	strat := &recordingStrategy{name: "rec"}
	e, w, clock := newTestEngine(strat)
	w.Create(core.KindPhysics)

	// Time passed before Start is not counted
	clock.Advance(5 * time.Second)
	e.Start()

	clock.Advance(16 * time.Millisecond)
	require.NoError(t, e.Update())
	clock.Advance(20 * time.Millisecond)
	require.NoError(t, e.Update())

	require.Len(t, strat.calls, 2)
	assert.InDelta(t, 0.016, strat.calls[0], 1e-9)
	assert.InDelta(t, 0.020, strat.calls[1], 1e-9)
	assert.Equal(t, 1, strat.seen)
	assert.Equal(t, uint64(2), e.Frame())
}

func TestEngine_StartResetsBaselineAfterPause(t *testing.T) {
	strat := &recordingStrategy{name: "rec"}
	e, _, clock := newTestEngine(strat)

	e.Start()
	clock.Advance(10 * time.Millisecond)
	require.NoError(t, e.Update())

	e.Pause()
	clock.Advance(time.Minute)
	require.NoError(t, e.Update())

	e.Start()
	clock.Advance(10 * time.Millisecond)
	require.NoError(t, e.Update())

	require.Len(t, strat.calls, 2)
	assert.InDelta(t, 0.010, strat.calls[1], 1e-9)
}

func TestEngine_MaxDeltaCaps(t *testing.T) {
	strat := &recordingStrategy{name: "rec"}
	clock := NewMockTimeProvider(time.Unix(0, 0))
	e := New(NewWorld(), strat, WithClock(clock), WithMaxDelta(100*time.Millisecond))

	e.Start()
	clock.Advance(3 * time.Second)
	require.NoError(t, e.Update())

	require.Len(t, strat.calls, 1)
	assert.InDelta(t, 0.1, strat.calls[0], 1e-9)
}

func TestEngine_StepRunsWhilePaused(t *testing.T) {
	strat := &recordingStrategy{name: "rec"}
	e, _, _ := newTestEngine(strat)

	require.NoError(t, e.Step(0.5))

	assert.Equal(t, []float64{0.5}, strat.calls)
	assert.False(t, e.Running())
}

func TestEngine_NotifiesObserversAfterTick(t *testing.T) {
	e, w, _ := newTestEngine(&recordingStrategy{name: "rec"})
	w.Create(core.KindPhysics)
	w.Create(core.KindCircuit)

	var snaps []Snapshot
	e.Subscribe(ObserverFunc(func(s Snapshot) { snaps = append(snaps, s) }))

	require.NoError(t, e.Step(0.016))

	require.Len(t, snaps, 1)
	assert.Equal(t, uint64(1), snaps[0].Frame)
	assert.Equal(t, "rec", snaps[0].Strategy)
	assert.Len(t, snaps[0].Entities, 2)
}

func TestEngine_ResetClearsAndNotifiesEmpty(t *testing.T) {
	e, w, _ := newTestEngine(&recordingStrategy{name: "rec"})
	w.Create(core.KindPhysics)
	e.Start()
	require.NoError(t, e.Step(0.1))
	runBefore := e.Snapshot().Run

	var last Snapshot
	notified := 0
	e.Subscribe(ObserverFunc(func(s Snapshot) {
		last = s
		notified++
	}))

	e.Reset()

	assert.Equal(t, 1, notified)
	assert.Empty(t, last.Entities)
	assert.False(t, last.Running)
	assert.Zero(t, last.Frame)
	assert.NotEqual(t, runBefore, last.Run)
	assert.Equal(t, core.Entity(1), w.Create(core.KindPhysics).ID)
}

func TestEngine_SetStrategyKeepsWorld(t *testing.T) {
	first := &recordingStrategy{name: "first"}
	second := &recordingStrategy{name: "second"}
	e, w, _ := newTestEngine(first)
	body := w.NewEntity(core.KindPhysics).
		WithTransform(component.TransformComponent{X: 5}).
		Build()

	require.NoError(t, e.Step(0.1))
	e.SetStrategy(second)
	require.NoError(t, e.Step(0.2))

	assert.Len(t, first.calls, 1)
	assert.Len(t, second.calls, 1)
	assert.Equal(t, "second", e.Snapshot().Strategy)
	got, ok := w.Get(body.ID)
	require.True(t, ok)
	assert.Equal(t, 5.0, got.Transform.X)
}

func TestEngine_NoStrategy(t *testing.T) {
	e, _, _ := newTestEngine(nil)

	err := e.Step(0.1)
	assert.True(t, errors.Is(err, ErrNoStrategy))
	assert.Equal(t, "none", e.Snapshot().Strategy)
}

func TestEngine_UnimplementedStrategyFailsFast(t *testing.T) {
	e, _, _ := newTestEngine(UnimplementedStrategy{})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrNotImplemented)
	}()
	_ = e.Step(0.1)
}

func TestEngine_EventsDispatchedToHandlers(t *testing.T) {
	strat := &emittingStrategy{}
	e, _, _ := newTestEngine(strat)

	var got []event.SimEvent
	e.OnEvent(func(ev event.SimEvent) { got = append(got, ev) })

	require.NoError(t, e.Step(0.1))
	require.NoError(t, e.Step(0.1))

	require.Len(t, got, 2)
	assert.Equal(t, event.EventCollision, got[0].Type)
	assert.Equal(t, uint64(1), got[0].Frame)
	assert.Equal(t, uint64(2), got[1].Frame)
	assert.Equal(t, int64(2), e.Status().Ints.Get(status.KeyCollisions).Load())
	assert.Equal(t, int64(2), e.Status().Ints.Get(status.KeyTicks).Load())
}

func TestEngine_LifecycleEvents(t *testing.T) {
	e, _, _ := newTestEngine(&recordingStrategy{name: "a"})

	var types []event.EventType
	e.OnEvent(func(ev event.SimEvent) { types = append(types, ev.Type) })

	e.SetStrategy(&recordingStrategy{name: "b"})
	e.Reset()

	assert.Equal(t, []event.EventType{event.EventStrategyChanged, event.EventWorldReset}, types)
}

func TestEngine_SeedNotifies(t *testing.T) {
	e, _, _ := newTestEngine(&recordingStrategy{name: "rec"})

	var snap Snapshot
	e.Subscribe(ObserverFunc(func(s Snapshot) { snap = s }))

	err := e.Seed(func(w *World) error {
		w.Create(core.KindCircuit)
		w.Create(core.KindCircuit)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, snap.Entities, 2)

	boom := errors.New("boom")
	assert.ErrorIs(t, e.Seed(func(*World) error { return boom }), boom)
}
