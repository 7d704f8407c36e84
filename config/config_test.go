package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/labsim/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labsim.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 98.0, cfg.Physics.Gravity)
	assert.Equal(t, 550.0, cfg.Physics.Floor)
	assert.Equal(t, 10.0, cfg.Physics.LeftWall)
	assert.Equal(t, 800.0, cfg.Physics.RightWall)
	assert.Equal(t, 1.0, cfg.Physics.Restitution)
	assert.Equal(t, core.ModePhysics, cfg.SimMode())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[engine]
frame_interval = "20ms"
mode = "circuit"
level = 2

[physics]
gravity = 50.0

[audio]
enabled = false

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Millisecond, cfg.Engine.FrameInterval)
	assert.Equal(t, core.ModeCircuit, cfg.SimMode())
	assert.Equal(t, 2, cfg.Engine.Level)
	assert.Equal(t, 50.0, cfg.Physics.Gravity)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched keys keep their defaults
	assert.Equal(t, 550.0, cfg.Physics.Floor)
	assert.Equal(t, Default().Engine.MaxDelta, cfg.Engine.MaxDelta)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "[engine\nmode = ")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"mode", "[engine]\nmode = \"chemistry\"\n"},
		{"interval", "[engine]\nframe_interval = \"0s\"\n"},
		{"level", "[engine]\nlevel = 0\n"},
		{"walls", "[physics]\nleft_wall = 900.0\n"},
		{"volume", "[audio]\nvolume = 1.5\n"},
		{"format", "[logging]\nformat = \"xml\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
