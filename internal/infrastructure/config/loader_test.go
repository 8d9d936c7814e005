package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault_MatchesHardcoded(t *testing.T) {
	cfg := LoadDefault()

	assert.Equal(t, Default(), *cfg, "embedded game.yaml and Default() must agree")
}

func TestLoadDefault_Values(t *testing.T) {
	cfg := LoadDefault()

	assert.Equal(t, 1600, cfg.World.Width)
	assert.Equal(t, 700, cfg.World.Height)
	assert.Equal(t, 600.0, cfg.World.Gravity)
	assert.Equal(t, 280.0, cfg.Player.Speed)
	assert.Equal(t, -350.0, cfg.Player.JumpVelocity)
	assert.Equal(t, 150*time.Millisecond, cfg.Player.CoyoteWindow())
	assert.Equal(t, 8, cfg.Platforms.Count)
	assert.Equal(t, 10, cfg.Scoring.TreatValue)
	assert.Equal(t, 3*time.Second, cfg.Run.WinDelay())
	assert.Equal(t, 2*time.Second, cfg.Run.LoseDelay())
}

func TestLoader_LoadGame(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": &fstest.MapFile{Data: []byte(`
platforms:
  count: 3
run:
  seed: 42
`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadGame("game.yaml")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Platforms.Count)
	assert.Equal(t, int64(42), cfg.Run.Seed)
	assert.Equal(t, 130, cfg.Platforms.MinWidth, "unset keys keep defaults")
	assert.Equal(t, 600.0, cfg.World.Gravity)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.yaml":  &fstest.MapFile{Data: []byte("world: [1, 2")},
		"invalid.yaml": &fstest.MapFile{Data: []byte("world:\n  gravity: -1\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadGame("nope.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := loader.LoadGame("broken.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := loader.LoadGame("invalid.yaml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
		assert.Contains(t, err.Error(), "gravity")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  treat_value: 25\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Scoring.TreatValue)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero screen", func(c *GameConfig) { c.Display.ScreenWidth = 0 }},
		{"zero framerate", func(c *GameConfig) { c.Display.Framerate = 0 }},
		{"zero world", func(c *GameConfig) { c.World.Height = 0 }},
		{"zero gravity", func(c *GameConfig) { c.World.Gravity = 0 }},
		{"zero player", func(c *GameConfig) { c.Player.Width = 0 }},
		{"zero speed", func(c *GameConfig) { c.Player.Speed = 0 }},
		{"downward jump", func(c *GameConfig) { c.Player.JumpVelocity = 100 }},
		{"negative coyote", func(c *GameConfig) { c.Player.CoyoteTimeMs = -1 }},
		{"negative delay", func(c *GameConfig) { c.Run.LoseDelayMs = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		cfg := Default()
		assert.NoError(t, cfg.Validate())
	})
}
