package system

import (
	"cmp"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/younwookim/bedtime/internal/domain/entity"
	"github.com/younwookim/bedtime/internal/ecs"
)

// PhysicsConfig holds the physics tunables
type PhysicsConfig struct {
	Gravity      float64 // pixels/second^2
	PlayerWidth  float64
	PlayerHeight float64
}

// OverlapHandler receives the layout index of a sensor the player started
// touching
type OverlapHandler func(index int)

// PhysicsSystem handles physics simulation with Intent & Apply model.
// Broad-phase queries go through the resolv space, exact blocking uses
// axis-aligned rect tests.
type PhysicsSystem struct {
	config PhysicsConfig
	world  *ecs.World
	player *resolv.Object
	body   entity.Body
	paused bool

	handlers map[entity.Kind]OverlapHandler
	touching map[*resolv.Object]bool
}

// NewPhysicsSystem creates a physics system with the player centred on
// (x, y)
func NewPhysicsSystem(cfg PhysicsConfig, world *ecs.World, x, y float64) *PhysicsSystem {
	r := entity.NewCenteredRect(x, y, cfg.PlayerWidth, cfg.PlayerHeight)
	s := &PhysicsSystem{
		config:   cfg,
		world:    world,
		player:   world.AddPlayer(r),
		handlers: make(map[entity.Kind]OverlapHandler),
		touching: make(map[*resolv.Object]bool),
	}
	s.syncBody()
	return s
}

// OnOverlap registers the handler for a sensor kind
func (s *PhysicsSystem) OnOverlap(kind entity.Kind, fn OverlapHandler) {
	s.handlers[kind] = fn
}

// Apply applies intents to the player velocity
func (s *PhysicsSystem) Apply(intents []Intent) {
	for _, in := range intents {
		switch i := in.(type) {
		case MoveIntent:
			s.body.VX = i.VX
		case JumpIntent:
			s.body.VY = i.VY
		}
	}
}

// Update advances the simulation by dt seconds, then reports overlap
// onsets. Does nothing while paused.
func (s *PhysicsSystem) Update(dt float64) {
	if s.paused {
		return
	}

	s.body.VY += s.config.Gravity * dt
	s.applyMovement(s.body.VX*dt, s.body.VY*dt)
	s.dispatchOverlaps()
}

// Pause freezes the simulation and overlap reporting
func (s *PhysicsSystem) Pause() { s.paused = true }

// Paused reports whether the simulation is frozen
func (s *PhysicsSystem) Paused() bool { return s.paused }

// Player returns the player body
func (s *PhysicsSystem) Player() entity.Body { return s.body }

// OnGround reports whether the last downward move was blocked
func (s *PhysicsSystem) OnGround() bool { return s.body.OnGround }

// applyMovement moves the player one axis at a time
func (s *PhysicsSystem) applyMovement(dx, dy float64) {
	s.body.OnGround = false

	s.resolveOverlap()
	s.moveX(dx)
	s.moveY(dy)
	s.clampToBounds()

	s.player.Update()
	s.syncBody()
}

// moveX moves player horizontally, stopping flush against solids
func (s *PhysicsSystem) moveX(dx float64) {
	if dx == 0 {
		return
	}

	cur := ecs.Rect(s.player)
	target := cur.X + dx
	blocked := false

	for _, obj := range s.solidsAlong(dx, 0) {
		r := ecs.Rect(obj)
		moved := entity.Rect{X: target, Y: cur.Y, W: cur.W, H: cur.H}
		if cur.Intersects(r) || !moved.Intersects(r) {
			continue
		}
		blocked = true
		if dx > 0 {
			target = r.X - cur.W
		} else {
			target = r.Right()
		}
	}

	s.player.X = target
	s.player.Update()
	if blocked {
		s.body.VX = 0
	}
}

// moveY moves player vertically. A blocked downward move lands the player.
func (s *PhysicsSystem) moveY(dy float64) {
	if dy == 0 {
		return
	}

	cur := ecs.Rect(s.player)
	target := cur.Y + dy
	blocked := false

	for _, obj := range s.solidsAlong(0, dy) {
		r := ecs.Rect(obj)
		moved := entity.Rect{X: cur.X, Y: target, W: cur.W, H: cur.H}
		if cur.Intersects(r) || !moved.Intersects(r) {
			continue
		}
		blocked = true
		if dy > 0 {
			target = r.Y - cur.H
		} else {
			target = r.Bottom()
		}
	}

	s.player.Y = target
	s.player.Update()
	if blocked {
		s.body.VY = 0
		if dy > 0 {
			s.body.OnGround = true
		}
	}
}

// queryPad widens broad-phase queries on every side. resolv registers
// objects in cells up to X+W-1, so a body with a fractional far edge is
// missing from the last cell it touches.
const queryPad = 1.0

var padOffsets = [...][2]float64{
	{-queryPad, -queryPad},
	{queryPad, queryPad},
	{-queryPad, queryPad},
	{queryPad, -queryPad},
}

// solidsAlong returns broad-phase candidates for a move
func (s *PhysicsSystem) solidsAlong(dx, dy float64) []*resolv.Object {
	return s.candidates(dx, dy, ecs.TagSolid)
}

// candidates merges the objects found by padded checks around a move
func (s *PhysicsSystem) candidates(dx, dy float64, tag string) []*resolv.Object {
	var found []*resolv.Object
	for _, off := range padOffsets {
		c := s.player.Check(dx+off[0], dy+off[1], tag)
		if c == nil {
			continue
		}
		for _, obj := range c.Objects {
			if !slices.Contains(found, obj) {
				found = append(found, obj)
			}
		}
	}
	return found
}

// resolveOverlap pushes the player out of any solid it is already inside,
// along the axis of least penetration
func (s *PhysicsSystem) resolveOverlap() {
	cur := ecs.Rect(s.player)
	for _, obj := range s.solidsAlong(0, 0) {
		r := ecs.Rect(obj)
		if !cur.Intersects(r) {
			continue
		}

		pushLeft := cur.Right() - r.X
		pushRight := r.Right() - cur.X
		pushUp := cur.Bottom() - r.Y
		pushDown := r.Bottom() - cur.Y

		best := min(pushLeft, pushRight, pushUp, pushDown)
		switch best {
		case pushUp:
			cur.Y = r.Y - cur.H
			s.body.VY = 0
			s.body.OnGround = true
		case pushDown:
			cur.Y = r.Bottom()
			s.body.VY = 0
		case pushLeft:
			cur.X = r.X - cur.W
			s.body.VX = 0
		default:
			cur.X = r.Right()
			s.body.VX = 0
		}
	}

	s.player.X, s.player.Y = cur.X, cur.Y
	s.player.Update()
}

// clampToBounds keeps the player inside the world
func (s *PhysicsSystem) clampToBounds() {
	b := s.world.Bounds
	p := s.player

	if p.X < 0 {
		p.X = 0
		s.body.VX = 0
	} else if p.X+p.W > b.Width {
		p.X = b.Width - p.W
		s.body.VX = 0
	}

	if p.Y < 0 {
		p.Y = 0
		s.body.VY = 0
	} else if p.Y+p.H > b.Height {
		p.Y = b.Height - p.H
		s.body.VY = 0
		s.body.OnGround = true
	}
}

func (s *PhysicsSystem) syncBody() {
	s.body.Rect = ecs.Rect(s.player)
}

// dispatchOverlaps fires handlers for sensors the player started touching
// this tick, ordered by kind then index. Stops early if a handler pauses
// the simulation.
func (s *PhysicsSystem) dispatchOverlaps() {
	current := make(map[*resolv.Object]bool)
	var onsets []ecs.SensorData

	pr := ecs.Rect(s.player)
	for _, obj := range s.candidates(0, 0, ecs.TagSensor) {
		if !pr.Intersects(ecs.Rect(obj)) {
			continue
		}
		entry, ok := s.world.Lookup(obj)
		if !ok {
			continue
		}
		sensor := ecs.Sensor.Get(entry)
		if !sensor.Active {
			continue
		}
		current[obj] = true
		if !s.touching[obj] {
			onsets = append(onsets, *sensor)
		}
	}
	s.touching = current

	slices.SortFunc(onsets, func(a, b ecs.SensorData) int {
		if a.Kind != b.Kind {
			return cmp.Compare(a.Kind, b.Kind)
		}
		return cmp.Compare(a.Index, b.Index)
	})

	for _, o := range onsets {
		if s.paused {
			return
		}
		if fn := s.handlers[o.Kind]; fn != nil {
			fn(o.Index)
		}
	}
}
