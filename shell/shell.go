// Package shell binds terminal input to the simulation engine lifecycle
package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/labsim/core"
	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/scene"
)

// ErrQuit is returned by Run when the user asks to exit
var ErrQuit = errors.New("quit requested")

// View is the presentation surface the shell annotates
type View interface {
	engine.Observer
	SetLevel(name string)
	SetMessage(msg string)
}

// Shell owns mode and level selection and translates intents into engine calls
// Apply must run on the engine goroutine; Run handles that through the scheduler
type Shell struct {
	eng        *engine.Engine
	catalog    *scene.Catalog
	strategies map[core.SimMode]engine.Strategy
	view       View
	keys       *KeyTable
	logger     *zap.Logger

	stepDelta float64
	mode      core.SimMode
	level     int
}

// Option configures a Shell
type Option func(*Shell)

// WithLogger enables intent logging
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKeyTable replaces the default bindings
func WithKeyTable(kt *KeyTable) Option {
	return func(s *Shell) { s.keys = kt }
}

// WithStepDelta sets the dt in seconds of a manual single step
func WithStepDelta(dt float64) Option {
	return func(s *Shell) { s.stepDelta = dt }
}

// New creates a shell; strategies supplies one strategy per mode
// view may be nil for headless use
func New(eng *engine.Engine, catalog *scene.Catalog, strategies map[core.SimMode]engine.Strategy, view View, opts ...Option) *Shell {
	s := &Shell{
		eng:        eng,
		catalog:    catalog,
		strategies: strategies,
		view:       view,
		keys:       DefaultKeyTable(),
		logger:     zap.NewNop(),
		stepDelta:  1.0 / 60,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the active simulation mode
func (s *Shell) Mode() core.SimMode { return s.mode }

// Level returns the zero-based index of the loaded level within the mode
func (s *Shell) Level() int { return s.level }

// Load switches to mode if needed, resets the world and seeds the level
// An unknown level leaves the current world untouched
func (s *Shell) Load(mode core.SimMode, index int) error {
	lvl, err := s.catalog.Level(mode, index)
	if err != nil {
		return err
	}

	if mode != s.mode || s.eng.Strategy() == nil {
		strategy, ok := s.strategies[mode]
		if !ok {
			return fmt.Errorf("no strategy for %s mode: %w", mode, engine.ErrNoStrategy)
		}
		s.eng.SetStrategy(strategy)
	}

	s.mode, s.level = mode, index
	s.eng.Reset()
	if err := s.eng.Seed(lvl.Setup()); err != nil {
		return fmt.Errorf("seed %s: %w", lvl.Name, err)
	}
	if s.view != nil {
		s.view.SetLevel(fmt.Sprintf("%d:%s", index+1, lvl.Name))
		s.view.SetMessage("")
	}
	s.logger.Info("level loaded", zap.Stringer("mode", mode), zap.String("level", lvl.Name))
	return nil
}

// Apply executes one intent against the engine and reports whether to quit
// Failures are shown on the view and logged rather than returned
func (s *Shell) Apply(in Intent) bool {
	var err error
	switch in.Type {
	case IntentQuit:
		return true
	case IntentToggleRun:
		if s.eng.Running() {
			s.eng.Pause()
		} else {
			s.eng.Start()
		}
	case IntentStep:
		err = s.eng.Step(s.stepDelta)
	case IntentReset:
		err = s.Load(s.mode, s.level)
	case IntentMode:
		if in.Mode != s.mode {
			err = s.Load(in.Mode, 0)
		}
	case IntentLevel:
		err = s.Load(s.mode, in.Level)
	case IntentNone, IntentResize:
	}

	if err != nil {
		s.logger.Warn("intent failed", zap.Stringer("intent", in.Type), zap.Error(err))
		if s.view != nil {
			s.view.SetMessage(err.Error())
		}
	}
	s.refresh()
	return false
}

func (s *Shell) refresh() {
	if s.view != nil {
		s.view.Notify(s.eng.Snapshot())
	}
}

// Run reads terminal events until quit or ctx cancellation
// Every intent is executed on the scheduler goroutine; returns ErrQuit on user exit
func (s *Shell) Run(ctx context.Context, screen tcell.Screen, sched *engine.ClockScheduler) error {
	core.Go(func() {
		<-ctx.Done()
		// Wake PollEvent so the loop observes cancellation
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		var in Intent
		switch ev := ev.(type) {
		case *tcell.EventKey:
			in = s.keys.Resolve(ev)
		case *tcell.EventResize:
			screen.Sync()
			in = Intent{Type: IntentResize}
		default:
			continue
		}
		if in.Type == IntentNone {
			continue
		}

		var quit bool
		err := sched.Call(ctx, func(*engine.Engine) error {
			quit = s.Apply(in)
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if quit {
			s.logger.Info("quit requested")
			return ErrQuit
		}
	}
}
