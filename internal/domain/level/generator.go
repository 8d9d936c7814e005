package level

import (
	"github.com/younwookim/bedtime/internal/domain/entity"
)

// Rand is the random source used for generation. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Between returns a uniform integer in [min, max] inclusive
func Between(r Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

// Params configures a generated level
type Params struct {
	Count int

	StartX, StartY int

	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int

	MinSpacing, MaxSpacing int

	MinY, MaxY int
	MaxYChange int

	// World assembly
	WorldWidth   int // minimum world width
	WorldHeight  int
	GroundHeight int
	GoalOffsetX  int
	GoalOffsetY  int
	Margin       int

	CollectibleValue int
}

// DefaultParams returns the stock bedroom layout
func DefaultParams() Params {
	return Params{
		Count:            8,
		StartX:           200,
		StartY:           600,
		MinWidth:         130,
		MaxWidth:         180,
		MinHeight:        25,
		MaxHeight:        35,
		MinSpacing:       150,
		MaxSpacing:       250,
		MinY:             480,
		MaxY:             600,
		MaxYChange:       60,
		WorldWidth:       1600,
		WorldHeight:      700,
		GroundHeight:     40,
		GoalOffsetX:      180,
		GoalOffsetY:      -20,
		Margin:           300,
		CollectibleValue: 10,
	}
}

// Validate checks the generator parameters
func (p Params) Validate() error {
	switch {
	case p.Count < 1:
		return configErr("count", "must be at least 1, got %d", p.Count)
	case p.MinWidth <= 0:
		return configErr("min_width", "must be positive, got %d", p.MinWidth)
	case p.MinWidth > p.MaxWidth:
		return configErr("min_width", "%d exceeds max_width %d", p.MinWidth, p.MaxWidth)
	case p.MinHeight <= 0:
		return configErr("min_height", "must be positive, got %d", p.MinHeight)
	case p.MinHeight > p.MaxHeight:
		return configErr("min_height", "%d exceeds max_height %d", p.MinHeight, p.MaxHeight)
	case p.MinSpacing <= 0:
		return configErr("min_spacing", "must be positive, got %d", p.MinSpacing)
	case p.MinSpacing > p.MaxSpacing:
		return configErr("min_spacing", "%d exceeds max_spacing %d", p.MinSpacing, p.MaxSpacing)
	case p.MinY > p.MaxY:
		return configErr("min_y", "%d exceeds max_y %d", p.MinY, p.MaxY)
	case p.MaxYChange < 0:
		return configErr("max_y_change", "must not be negative, got %d", p.MaxYChange)
	}
	return nil
}

// Generate produces count platforms walking right from the start point.
// Vertical deltas are clamped into [MinY, MaxY], never re-rolled.
func Generate(p Params, r Rand) ([]entity.Platform, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	platforms := make([]entity.Platform, 0, p.Count)
	x := p.StartX
	y := clamp(p.StartY, p.MinY, p.MaxY)

	for i := 0; i < p.Count; i++ {
		w := Between(r, p.MinWidth, p.MaxWidth)
		h := Between(r, p.MinHeight, p.MaxHeight)
		platforms = append(platforms, entity.Platform{
			X:      float64(x),
			Y:      float64(y),
			Width:  float64(w),
			Height: float64(h),
		})

		x += Between(r, p.MinSpacing, p.MaxSpacing)
		y = clamp(y+Between(r, -p.MaxYChange, p.MaxYChange), p.MinY, p.MaxY)
	}

	return platforms, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
