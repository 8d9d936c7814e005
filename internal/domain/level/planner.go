package level

import (
	"github.com/younwookim/bedtime/internal/domain/entity"
)

// Placement probabilities and offsets
const (
	CollectibleChance = 0.7
	CollectibleLift   = 50
	BonusCount        = 2
	BonusJitter       = 80
	BonusMinLift      = 80
	BonusMaxLift      = 120

	GroundHazardChance   = 0.4
	GroundHazardMinWidth = 35
	GroundHazardMaxWidth = 45
	GroundHazardHeight   = 20
	PlatformHazardChance = 0.2
	PlatformHazardJitter = 40
	PlatformHazardLift   = 20
	PlatformHazardWidth  = 35
	PlatformHazardHeight = 18
)

// PlanCollectibles places treats above platforms plus bonus treats over
// interior platforms. Layouts with fewer than three platforms have no
// interior platform and get no bonus.
func PlanCollectibles(platforms []entity.Platform, r Rand, value int) []entity.Collectible {
	var out []entity.Collectible

	for i, p := range platforms {
		if r.Float64() < CollectibleChance {
			out = append(out, entity.Collectible{
				X:        p.X,
				Y:        p.Y - CollectibleLift,
				Platform: i,
				Value:    value,
			})
		}
	}

	n := len(platforms)
	if n < 3 {
		return out
	}
	for i := 0; i < BonusCount; i++ {
		idx := Between(r, 1, n-2)
		p := platforms[idx]
		out = append(out, entity.Collectible{
			X:        p.X + float64(Between(r, -BonusJitter, BonusJitter)),
			Y:        p.Y - float64(Between(r, BonusMinLift, BonusMaxLift)),
			Platform: idx,
			Value:    value,
			Bonus:    true,
		})
	}

	return out
}

// PlanHazards places spikes on the ground between adjacent platforms and
// occasionally on top of interior platforms.
func PlanHazards(platforms []entity.Platform, groundY float64, r Rand) []entity.Hazard {
	var out []entity.Hazard

	for i := 0; i+1 < len(platforms); i++ {
		if r.Float64() < GroundHazardChance {
			out = append(out, entity.Hazard{
				X:        (platforms[i].X + platforms[i+1].X) / 2,
				Y:        groundY,
				Width:    float64(Between(r, GroundHazardMinWidth, GroundHazardMaxWidth)),
				Height:   GroundHazardHeight,
				Platform: i,
				Ground:   true,
			})
		}
	}

	for i := 1; i < len(platforms)-1; i++ {
		if r.Float64() < PlatformHazardChance {
			p := platforms[i]
			out = append(out, entity.Hazard{
				X:        p.X + float64(Between(r, -PlatformHazardJitter, PlatformHazardJitter)),
				Y:        p.Y - PlatformHazardLift,
				Width:    PlatformHazardWidth,
				Height:   PlatformHazardHeight,
				Platform: i,
			})
		}
	}

	return out
}
