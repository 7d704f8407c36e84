package shell

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/labsim/circuit"
	"github.com/lixenwraith/labsim/core"
	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/physics"
	"github.com/lixenwraith/labsim/scene"
)

type fakeView struct {
	level    string
	message  string
	notified int
	last     engine.Snapshot
}

func (v *fakeView) Notify(s engine.Snapshot) { v.notified++; v.last = s }
func (v *fakeView) SetLevel(name string)     { v.level = name }
func (v *fakeView) SetMessage(msg string)    { v.message = msg }

func newShell(t *testing.T) (*Shell, *engine.Engine, *fakeView) {
	t.Helper()
	eng := engine.New(engine.NewWorld(), nil)
	view := &fakeView{}
	strategies := map[core.SimMode]engine.Strategy{
		core.ModePhysics: physics.NewStrategy(),
		core.ModeCircuit: circuit.NewStrategy(),
	}
	s := New(eng, scene.NewCatalog(), strategies, view, WithStepDelta(0.02))
	require.NoError(t, s.Load(core.ModePhysics, 0))
	return s, eng, view
}

func TestLoad_InitialLevel(t *testing.T) {
	_, eng, view := newShell(t)

	assert.Equal(t, "physics", engine.StrategyName(eng.Strategy()))
	assert.Equal(t, 3, len(eng.Snapshot().Entities))
	assert.Equal(t, "1:drop", view.level)
	assert.False(t, eng.Running())
	assert.Zero(t, eng.Frame())
}

func TestApply_ToggleRun(t *testing.T) {
	s, eng, view := newShell(t)

	assert.False(t, s.Apply(Intent{Type: IntentToggleRun}))
	assert.True(t, eng.Running())
	assert.True(t, view.last.Running)

	s.Apply(Intent{Type: IntentToggleRun})
	assert.False(t, eng.Running())
}

func TestApply_StepWhilePaused(t *testing.T) {
	s, eng, _ := newShell(t)
	before := eng.Snapshot().Entities[0].Transform.Y

	s.Apply(Intent{Type: IntentStep})

	assert.Equal(t, uint64(1), eng.Frame())
	assert.False(t, eng.Running())
	assert.Greater(t, eng.Snapshot().Entities[0].Transform.Y, before)
}

func TestApply_ResetReseeds(t *testing.T) {
	s, eng, _ := newShell(t)
	start := *eng.Snapshot().Entities[0].Transform

	for i := 0; i < 5; i++ {
		s.Apply(Intent{Type: IntentStep})
	}
	s.Apply(Intent{Type: IntentReset})

	snap := eng.Snapshot()
	assert.Zero(t, snap.Frame)
	require.Len(t, snap.Entities, 3)
	assert.Equal(t, core.Entity(1), snap.Entities[0].ID)
	assert.Equal(t, start, *snap.Entities[0].Transform)
}

func TestApply_ModeSwitch(t *testing.T) {
	s, eng, view := newShell(t)

	s.Apply(Intent{Type: IntentMode, Mode: core.ModeCircuit})

	assert.Equal(t, core.ModeCircuit, s.Mode())
	assert.Equal(t, "circuit", engine.StrategyName(eng.Strategy()))
	assert.Equal(t, "1:series", view.level)
	for _, e := range eng.Snapshot().Entities {
		assert.Equal(t, core.KindCircuit, e.Kind)
	}

	s.Apply(Intent{Type: IntentStep})
	assert.InDelta(t, 0.03, eng.Snapshot().Entities[1].Circuit.Current, 1e-9)
}

func TestApply_SameModeKeepsLevel(t *testing.T) {
	s, eng, _ := newShell(t)
	s.Apply(Intent{Type: IntentLevel, Level: 2})
	s.Apply(Intent{Type: IntentStep})

	s.Apply(Intent{Type: IntentMode, Mode: core.ModePhysics})

	assert.Equal(t, 2, s.Level())
	assert.Equal(t, uint64(1), eng.Frame(), "same mode must not reset")
}

func TestApply_UnknownLevel(t *testing.T) {
	s, eng, view := newShell(t)
	s.Apply(Intent{Type: IntentStep})

	s.Apply(Intent{Type: IntentLevel, Level: 8})

	assert.Contains(t, view.message, "unknown level")
	assert.Equal(t, 0, s.Level())
	assert.Equal(t, uint64(1), eng.Frame(), "world must be untouched")
}

func TestApply_Quit(t *testing.T) {
	s, _, _ := newShell(t)
	assert.True(t, s.Apply(Intent{Type: IntentQuit}))
}

func TestKeyTable_Resolve(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Intent{Type: IntentToggleRun}},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), Intent{Type: IntentLevel, Level: 2}},
		{"circuit", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), Intent{Type: IntentMode, Mode: core.ModeCircuit}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Intent{}},
		{"zero", tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone), Intent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Resolve(tt.ev))
		})
	}
}

func TestRun_KeysThroughScheduler(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	s, eng, _ := newShell(t)
	sched := engine.NewClockScheduler(eng, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = sched.Run(ctx) }()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, screen, sched) }()

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	assert.Eventually(t, func() bool {
		var running bool
		_ = sched.Call(ctx, func(e *engine.Engine) error {
			running = e.Running()
			return nil
		})
		return running
	}, time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQuit)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after quit")
	}
}

func TestRun_ContextCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	s, eng, _ := newShell(t)
	sched := engine.NewClockScheduler(eng, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = sched.Run(ctx) }()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, screen, sched) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
