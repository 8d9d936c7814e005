package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up by Load
const DefaultFileName = "game.yaml"

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads a game config file. Keys missing from the file keep
// their Default() values.
func (l *Loader) LoadGame(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(l.basePath, name), err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Join(l.basePath, name), err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile loads a config from an explicit path
func LoadFile(path string) (*GameConfig, error) {
	return NewLoader(filepath.Dir(path)).LoadGame(filepath.Base(path))
}

// Load resolves the game configuration.
// Search order: customPath -> ./configs/game.yaml -> embedded default
func Load(customPath string) (*GameConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if cfg, err := NewLoader("configs").LoadGame(DefaultFileName); err == nil {
		return cfg, nil
	}

	return LoadDefault(), nil
}

// LoadDefault returns the embedded configuration, falling back to
// Default() if the embedded file is unusable
func LoadDefault() *GameConfig {
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		d := Default()
		return &d
	}
	return cfg
}

// Validate rejects values the game cannot run with. Platform generator
// ranges are checked by the level generator itself.
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: display size must be positive, got %dx%d", ErrInvalid, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: display framerate must be positive, got %d", ErrInvalid, c.Display.Framerate)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %dx%d", ErrInvalid, c.World.Width, c.World.Height)
	case c.World.Gravity <= 0:
		return fmt.Errorf("%w: world gravity must be positive, got %v", ErrInvalid, c.World.Gravity)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive, got %vx%v", ErrInvalid, c.Player.Width, c.Player.Height)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive, got %v", ErrInvalid, c.Player.Speed)
	case c.Player.JumpVelocity >= 0:
		return fmt.Errorf("%w: player jump_velocity must be negative (up), got %v", ErrInvalid, c.Player.JumpVelocity)
	case c.Player.CoyoteTimeMs < 0:
		return fmt.Errorf("%w: player coyote_time_ms must not be negative, got %d", ErrInvalid, c.Player.CoyoteTimeMs)
	case c.Run.WinDelayMs < 0 || c.Run.LoseDelayMs < 0:
		return fmt.Errorf("%w: run delays must not be negative", ErrInvalid)
	}
	return nil
}
