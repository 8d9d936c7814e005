package system

import (
	"fmt"

	"github.com/younwookim/bedtime/internal/domain/level"
	"github.com/younwookim/bedtime/internal/ecs"
	"github.com/younwookim/bedtime/internal/infrastructure/config"
)

// LayoutParams converts the game config into level generator parameters
func LayoutParams(cfg *config.GameConfig) level.Params {
	p := cfg.Platforms
	return level.Params{
		Count:            p.Count,
		StartX:           p.StartX,
		StartY:           p.StartY,
		MinWidth:         p.MinWidth,
		MaxWidth:         p.MaxWidth,
		MinHeight:        p.MinHeight,
		MaxHeight:        p.MaxHeight,
		MinSpacing:       p.MinSpacing,
		MaxSpacing:       p.MaxSpacing,
		MinY:             p.MinY,
		MaxY:             p.MaxY,
		MaxYChange:       p.MaxYChange,
		WorldWidth:       cfg.World.Width,
		WorldHeight:      cfg.World.Height,
		GroundHeight:     cfg.World.GroundHeight,
		GoalOffsetX:      cfg.World.GoalOffsetX,
		GoalOffsetY:      cfg.World.GoalOffsetY,
		Margin:           cfg.World.Margin,
		CollectibleValue: cfg.Scoring.TreatValue,
	}
}

// MotionSettings extracts the motion controller tunables
func MotionSettings(cfg *config.GameConfig) MotionConfig {
	return MotionConfig{
		Speed:        cfg.Player.Speed,
		JumpVelocity: cfg.Player.JumpVelocity,
		CoyoteWindow: cfg.Player.CoyoteWindow(),
	}
}

// PhysicsSettings extracts the physics tunables
func PhysicsSettings(cfg *config.GameConfig) PhysicsConfig {
	return PhysicsConfig{
		Gravity:      cfg.World.Gravity,
		PlayerWidth:  cfg.Player.Width,
		PlayerHeight: cfg.Player.Height,
	}
}

// LoadStage generates a layout and registers it in a fresh world
func LoadStage(cfg *config.GameConfig, r level.Rand) (*level.Layout, *ecs.World, error) {
	layout, err := level.Build(LayoutParams(cfg), r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build stage: %w", err)
	}
	return layout, ecs.NewWorldFromLayout(layout), nil
}
