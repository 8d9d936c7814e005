package level

import (
	"fmt"
	"math"

	"github.com/younwookim/bedtime/internal/domain/entity"
)

// groundHazardSink is how far ground spikes sit below the floor top
const groundHazardSink = 5

// Layout is a fully planned level, ready to be registered with physics
type Layout struct {
	Platforms    []entity.Platform
	Collectibles []entity.Collectible
	Hazards      []entity.Hazard
	Goal         entity.Goal
	Ground       entity.Ground
	Bounds       entity.WorldBounds
}

// Build generates platforms, plans collectibles then hazards on the same
// random stream, and places the goal after the last platform.
func Build(p Params, r Rand) (*Layout, error) {
	if p.WorldHeight <= 0 {
		return nil, configErr("world_height", "must be positive, got %d", p.WorldHeight)
	}
	if p.GroundHeight < 0 || p.GroundHeight >= p.WorldHeight {
		return nil, configErr("ground_height", "must be in [0, %d), got %d", p.WorldHeight, p.GroundHeight)
	}

	platforms, err := Generate(p, r)
	if err != nil {
		return nil, fmt.Errorf("failed to generate platforms: %w", err)
	}

	floorTop := float64(p.WorldHeight - p.GroundHeight)
	groundY := floorTop - groundHazardSink

	l := &Layout{
		Platforms:    platforms,
		Collectibles: PlanCollectibles(platforms, r, p.CollectibleValue),
		Hazards:      PlanHazards(platforms, groundY, r),
	}

	last := platforms[len(platforms)-1]
	l.Goal = entity.Goal{
		X:      last.X + float64(p.GoalOffsetX),
		Y:      last.Y + float64(p.GoalOffsetY),
		Width:  entity.GoalWidth,
		Height: entity.GoalHeight,
	}
	l.Bounds = entity.WorldBounds{
		Width:  WorldWidth(p, platforms),
		Height: float64(p.WorldHeight),
	}
	l.Ground = entity.Ground{Rect: entity.Rect{
		X: 0,
		Y: floorTop,
		W: l.Bounds.Width,
		H: float64(p.GroundHeight),
	}}

	return l, nil
}

// WorldWidth returns max(base width, last platform + goal offset + margin)
func WorldWidth(p Params, platforms []entity.Platform) float64 {
	w := float64(p.WorldWidth)
	if len(platforms) == 0 {
		return w
	}
	last := platforms[len(platforms)-1]
	return math.Max(w, last.X+float64(p.GoalOffsetX+p.Margin))
}

// GroundY returns the centre line used for ground hazards
func (l *Layout) GroundY() float64 {
	return l.Ground.Y - groundHazardSink
}

// Bonuses returns the number of bonus collectibles
func (l *Layout) Bonuses() int {
	n := 0
	for _, c := range l.Collectibles {
		if c.Bonus {
			n++
		}
	}
	return n
}
