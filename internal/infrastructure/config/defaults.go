package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the hardcoded bedroom configuration
func Default() GameConfig {
	return GameConfig{
		Display: DisplayConfig{
			Title:        "Bedtime Dash",
			ScreenWidth:  960,
			ScreenHeight: 700,
			Framerate:    60,
		},
		World: WorldConfig{
			Width:        1600,
			Height:       700,
			GroundHeight: 40,
			Gravity:      600,
			GoalOffsetX:  180,
			GoalOffsetY:  -20,
			Margin:       300,
		},
		Player: PlayerConfig{
			StartX:       80,
			StartY:       600,
			Width:        48,
			Height:       40,
			Speed:        280,
			JumpVelocity: -350,
			CoyoteTimeMs: 150,
		},
		Platforms: PlatformsConfig{
			Count:      8,
			StartX:     200,
			StartY:     600,
			MinWidth:   130,
			MaxWidth:   180,
			MinHeight:  25,
			MaxHeight:  35,
			MinSpacing: 150,
			MaxSpacing: 250,
			MinY:       480,
			MaxY:       600,
			MaxYChange: 60,
		},
		Scoring: ScoringConfig{
			TreatValue: 10,
		},
		Run: RunConfig{
			WinDelayMs:  3000,
			LoseDelayMs: 2000,
		},
	}
}
