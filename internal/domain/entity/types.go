package entity

// Kind tags the variant of a level entity
type Kind int

const (
	KindPlatform Kind = iota
	KindCollectible
	KindHazard
	KindGoal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "Platform"
	case KindCollectible:
		return "Collectible"
	case KindHazard:
		return "Hazard"
	case KindGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Entity is implemented by every level entity variant
type Entity interface {
	Kind() Kind
}

// HasCollisionBody is implemented by entities that block the player
type HasCollisionBody interface {
	Entity
	CollisionBody() Rect
}

// HasOverlapSensor is implemented by entities that trigger on contact
// without blocking movement
type HasOverlapSensor interface {
	Entity
	SensorArea() Rect
}

// Sensor sizes
const (
	CollectibleSize = 32
	GoalWidth       = 90
	GoalHeight      = 60
)

// Platform is a generated static platform. X, Y is the centre.
type Platform struct {
	X, Y          float64
	Width, Height float64
}

func (Platform) Kind() Kind { return KindPlatform }

// CollisionBody returns the solid area of the platform
func (p Platform) CollisionBody() Rect {
	return NewCenteredRect(p.X, p.Y, p.Width, p.Height)
}

// Top returns the y coordinate of the walkable surface
func (p Platform) Top() float64 {
	return p.Y - p.Height/2
}

// WorldBounds is the playable area derived from the layout
type WorldBounds struct {
	Width, Height float64
}

// Collectible is a treat. Platform is the index of the platform that
// produced it.
type Collectible struct {
	X, Y     float64
	Platform int
	Value    int
	Bonus    bool
}

func (Collectible) Kind() Kind { return KindCollectible }

// SensorArea returns the pickup area
func (c Collectible) SensorArea() Rect {
	return NewCenteredRect(c.X, c.Y, CollectibleSize, CollectibleSize)
}

// Hazard is a spike strip. Ground hazards sit on the floor between
// Platform and Platform+1.
type Hazard struct {
	X, Y          float64
	Width, Height float64
	Platform      int
	Ground        bool
}

func (Hazard) Kind() Kind { return KindHazard }

// Hazard hit area scale relative to the visual footprint
const (
	HazardHitWidthScale  = 0.5
	HazardHitHeightScale = 0.4
)

// Visual returns the drawn footprint of the hazard
func (h Hazard) Visual() Rect {
	return NewCenteredRect(h.X, h.Y, h.Width, h.Height)
}

// SensorArea returns the hit area: narrower and shorter than the visual,
// centred on it
func (h Hazard) SensorArea() Rect {
	return NewCenteredRect(h.X, h.Y, h.Width*HazardHitWidthScale, h.Height*HazardHitHeightScale)
}

// Goal is the bed at the end of the level
type Goal struct {
	X, Y          float64
	Width, Height float64
}

func (Goal) Kind() Kind { return KindGoal }

// SensorArea returns the goal trigger area
func (g Goal) SensorArea() Rect {
	return NewCenteredRect(g.X, g.Y, g.Width, g.Height)
}

// Ground is the floor slab spanning the world
type Ground struct {
	Rect
}

func (Ground) Kind() Kind { return KindPlatform }

// CollisionBody returns the floor area
func (g Ground) CollisionBody() Rect {
	return g.Rect
}
