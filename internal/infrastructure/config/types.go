package config

import "time"

// GameConfig is the root of game.yaml
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Run       RunConfig       `yaml:"run"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Framerate    int    `yaml:"framerate"`
}

// WorldConfig sizes the world and places the goal relative to the last platform
type WorldConfig struct {
	Width        int     `yaml:"width"` // minimum width, grows to fit the goal
	Height       int     `yaml:"height"`
	GroundHeight int     `yaml:"ground_height"`
	Gravity      float64 `yaml:"gravity"`
	GoalOffsetX  int     `yaml:"goal_offset_x"`
	GoalOffsetY  int     `yaml:"goal_offset_y"`
	Margin       int     `yaml:"margin"`
}

type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative is up
	CoyoteTimeMs int     `yaml:"coyote_time_ms"`
}

// CoyoteWindow returns the grace period for late jumps
func (p PlayerConfig) CoyoteWindow() time.Duration {
	return time.Duration(p.CoyoteTimeMs) * time.Millisecond
}

// PlatformsConfig drives the procedural layout
type PlatformsConfig struct {
	Count      int `yaml:"count"`
	StartX     int `yaml:"start_x"`
	StartY     int `yaml:"start_y"`
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	MinHeight  int `yaml:"min_height"`
	MaxHeight  int `yaml:"max_height"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
	MinY       int `yaml:"min_y"`
	MaxY       int `yaml:"max_y"`
	MaxYChange int `yaml:"max_y_change"`
}

type ScoringConfig struct {
	TreatValue int `yaml:"treat_value"`
}

// RunConfig controls restarts. Seed 0 draws a fresh seed per run.
type RunConfig struct {
	Seed        int64 `yaml:"seed"`
	WinDelayMs  int   `yaml:"win_delay_ms"`
	LoseDelayMs int   `yaml:"lose_delay_ms"`
}

func (r RunConfig) WinDelay() time.Duration {
	return time.Duration(r.WinDelayMs) * time.Millisecond
}

func (r RunConfig) LoseDelay() time.Duration {
	return time.Duration(r.LoseDelayMs) * time.Millisecond
}
