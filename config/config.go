// Package config loads labsim settings from a TOML file layered over built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/labsim/core"
	"github.com/lixenwraith/labsim/parameter"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Physics PhysicsConfig `toml:"physics"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	FrameInterval time.Duration `toml:"frame_interval"`
	MaxDelta      time.Duration `toml:"max_delta"`
	StepDelta     time.Duration `toml:"step_delta"` // dt of one manual single step
	Mode          string        `toml:"mode"`       // "physics" or "circuit"
	Level         int           `toml:"level"`      // 1-based index within Mode
	LevelsDir     string        `toml:"levels_dir"` // extra YAML levels, optional
}

type PhysicsConfig struct {
	Gravity     float64 `toml:"gravity"`
	Floor       float64 `toml:"floor"`
	LeftWall    float64 `toml:"left_wall"`
	RightWall   float64 `toml:"right_wall"`
	Restitution float64 `toml:"restitution"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // terminal is owned by the UI, logs go to a file
}

// Load reads path over the defaults
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			FrameInterval: parameter.FrameUpdateInterval,
			MaxDelta:      parameter.MaxFrameDelta,
			StepDelta:     parameter.FrameUpdateInterval,
			Mode:          core.ModePhysics.String(),
			Level:         1,
			LevelsDir:     "levels",
		},
		Physics: PhysicsConfig{
			Gravity:     parameter.Gravity,
			Floor:       parameter.BoundFloor,
			LeftWall:    parameter.BoundLeftWall,
			RightWall:   parameter.BoundRightWall,
			Restitution: parameter.Restitution,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.DefaultMasterVolume,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "labsim.log",
		},
	}
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	if c.Engine.FrameInterval <= 0 {
		return fmt.Errorf("engine.frame_interval %v: %w", c.Engine.FrameInterval, ErrInvalid)
	}
	if c.Engine.MaxDelta < 0 {
		return fmt.Errorf("engine.max_delta %v: %w", c.Engine.MaxDelta, ErrInvalid)
	}
	if c.Engine.StepDelta <= 0 {
		return fmt.Errorf("engine.step_delta %v: %w", c.Engine.StepDelta, ErrInvalid)
	}
	if _, ok := core.ParseMode(c.Engine.Mode); !ok {
		return fmt.Errorf("engine.mode %q: %w", c.Engine.Mode, ErrInvalid)
	}
	if c.Engine.Level < 1 {
		return fmt.Errorf("engine.level %d: %w", c.Engine.Level, ErrInvalid)
	}
	if c.Physics.LeftWall >= c.Physics.RightWall {
		return fmt.Errorf("physics.left_wall %v >= right_wall %v: %w", c.Physics.LeftWall, c.Physics.RightWall, ErrInvalid)
	}
	if c.Physics.Restitution < 0 {
		return fmt.Errorf("physics.restitution %v: %w", c.Physics.Restitution, ErrInvalid)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v: %w", c.Audio.Volume, ErrInvalid)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalid)
	}
	return nil
}

// SimMode returns the configured start mode
func (c *Config) SimMode() core.SimMode {
	m, _ := core.ParseMode(c.Engine.Mode)
	return m
}
