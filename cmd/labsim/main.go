package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/labsim/audio"
	"github.com/lixenwraith/labsim/circuit"
	"github.com/lixenwraith/labsim/config"
	"github.com/lixenwraith/labsim/core"
	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/physics"
	"github.com/lixenwraith/labsim/render"
	"github.com/lixenwraith/labsim/scene"
	"github.com/lixenwraith/labsim/shell"
	"github.com/lixenwraith/labsim/status"
)

func main() {
	configPath := flag.String("config", "labsim.toml", "path to TOML config; missing file uses defaults")
	mode := flag.String("mode", "", "start mode override: physics or circuit")
	level := flag.Int("level", 0, "start level override, 1-based")
	flag.Parse()

	if err := run(*configPath, *mode, *level); err != nil {
		fmt.Fprintf(os.Stderr, "labsim: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, modeOverride string, levelOverride int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if modeOverride != "" {
		cfg.Engine.Mode = modeOverride
	}
	if levelOverride > 0 {
		cfg.Engine.Level = levelOverride
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	logger.Info("labsim starting", zap.String("config", configPath), zap.String("mode", cfg.Engine.Mode))

	catalog := scene.NewCatalog()
	extra, err := scene.LoadDir(cfg.Engine.LevelsDir)
	if err != nil {
		return err
	}
	for _, l := range extra {
		if err := catalog.Add(l); err != nil {
			return err
		}
	}
	logger.Debug("levels loaded", zap.Int("from_dir", len(extra)), zap.String("dir", cfg.Engine.LevelsDir))

	reg := status.NewRegistry()
	eng := engine.New(engine.NewWorld(), nil,
		engine.WithLogger(logger.Named("engine")),
		engine.WithMaxDelta(cfg.Engine.MaxDelta),
		engine.WithStatus(reg),
	)
	strategies := map[core.SimMode]engine.Strategy{
		core.ModePhysics: physics.NewStrategy(
			physics.WithGravity(cfg.Physics.Gravity),
			physics.WithRestitution(cfg.Physics.Restitution),
			physics.WithBounds(physics.Bounds{
				Floor: cfg.Physics.Floor,
				Right: cfg.Physics.RightWall,
				Left:  cfg.Physics.LeftWall,
			}),
		),
		core.ModeCircuit: circuit.NewStrategy(),
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen, reg)
	eng.Subscribe(renderer)

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, logger.Named("audio"))
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the simulator runs silent
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			eng.OnEvent(sm.HandleEvent)
			defer sm.Cleanup()
		}
	}

	sh := shell.New(eng, catalog, strategies, renderer,
		shell.WithLogger(logger.Named("shell")),
		shell.WithStepDelta(cfg.Engine.StepDelta.Seconds()),
	)
	if err := sh.Load(cfg.SimMode(), cfg.Engine.Level-1); err != nil {
		logger.Warn("configured level unavailable, loading first", zap.Error(err))
		if err := sh.Load(cfg.SimMode(), 0); err != nil {
			return err
		}
	}

	sched := engine.NewClockScheduler(eng, cfg.Engine.FrameInterval, logger.Named("scheduler"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer core.Recover()
		return sched.Run(ctx)
	})
	g.Go(func() error {
		defer core.Recover()
		return sh.Run(ctx, screen, sched)
	})

	err = g.Wait()
	if errors.Is(err, shell.ErrQuit) {
		err = nil
	}
	logger.Info("labsim stopped", zap.Uint64("ticks", sched.TickCount()), zap.Error(err))
	return err
}
