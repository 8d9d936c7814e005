package ecs

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/younwookim/bedtime/internal/domain/entity"
	"github.com/younwookim/bedtime/internal/domain/level"
)

// CellSize is the resolv broad-phase cell size in pixels
const CellSize = 32

var (
	sensorQuery = donburi.NewQuery(filter.Contains(Sensor))
	solidQuery  = donburi.NewQuery(filter.Contains(Solid))
)

// World pairs the entity registry with the collision space
type World struct {
	Registry donburi.World
	Space    *resolv.Space
	Bounds   entity.WorldBounds

	byObject map[*resolv.Object]donburi.Entity
}

// NewWorld creates an empty world sized to bounds
func NewWorld(bounds entity.WorldBounds) *World {
	w := int(math.Ceil(bounds.Width))
	h := int(math.Ceil(bounds.Height))
	return &World{
		Registry: donburi.NewWorld(),
		Space:    resolv.NewSpace(w, h, CellSize, CellSize),
		Bounds:   bounds,
		byObject: make(map[*resolv.Object]donburi.Entity),
	}
}

// NewWorldFromLayout registers every static body and sensor of a layout.
// Sensor indices follow the layout lists.
func NewWorldFromLayout(l *level.Layout) *World {
	w := NewWorld(l.Bounds)

	w.AddSolid(l.Ground)
	for _, p := range l.Platforms {
		w.AddSolid(p)
	}
	for i, c := range l.Collectibles {
		w.AddSensor(c, i)
	}
	for i, h := range l.Hazards {
		w.AddSensor(h, i)
	}
	w.AddSensor(l.Goal, 0)

	return w
}

// AddSolid registers static geometry that blocks the player
func (w *World) AddSolid(e entity.HasCollisionBody) donburi.Entity {
	r := e.CollisionBody()
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagSolid)
	w.Space.Add(obj)

	ent := w.Registry.Create(Body, Variant, Solid)
	entry := w.Registry.Entry(ent)
	Body.SetValue(entry, BodyData{Object: obj})
	Variant.SetValue(entry, VariantData{Entity: e})
	w.byObject[obj] = ent

	return ent
}

// AddSensor registers a non-blocking overlap region
func (w *World) AddSensor(e entity.HasOverlapSensor, index int) donburi.Entity {
	r := e.SensorArea()
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagSensor)
	w.Space.Add(obj)

	ent := w.Registry.Create(Body, Variant, Sensor)
	entry := w.Registry.Entry(ent)
	Body.SetValue(entry, BodyData{Object: obj})
	Variant.SetValue(entry, VariantData{Entity: e})
	Sensor.SetValue(entry, SensorData{Kind: e.Kind(), Index: index, Active: true})
	w.byObject[obj] = ent

	return ent
}

// AddPlayer creates the dynamic body. It lives in the space but not in
// the registry.
func (w *World) AddPlayer(r entity.Rect) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagPlayer)
	w.Space.Add(obj)
	return obj
}

// Lookup returns the entry owning a resolv object
func (w *World) Lookup(obj *resolv.Object) (*donburi.Entry, bool) {
	ent, ok := w.byObject[obj]
	if !ok || !w.Registry.Valid(ent) {
		return nil, false
	}
	return w.Registry.Entry(ent), true
}

// FindSensor returns the sensor entry for a kind and index
func (w *World) FindSensor(kind entity.Kind, index int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	sensorQuery.Each(w.Registry, func(entry *donburi.Entry) {
		s := Sensor.Get(entry)
		if found == nil && s.Kind == kind && s.Index == index {
			found = entry
		}
	})
	return found, found != nil
}

// Deactivate makes a sensor inert: it is removed from the collision space
// and never reported again. Returns false if it was already inert.
func (w *World) Deactivate(entry *donburi.Entry) bool {
	s := Sensor.Get(entry)
	if !s.Active {
		return false
	}
	s.Active = false

	obj := Body.Get(entry).Object
	if obj.Space != nil {
		w.Space.Remove(obj)
	}
	delete(w.byObject, obj)
	return true
}

// CountSensors returns the number of active sensors of a kind
func (w *World) CountSensors(kind entity.Kind) int {
	n := 0
	sensorQuery.Each(w.Registry, func(entry *donburi.Entry) {
		s := Sensor.Get(entry)
		if s.Active && s.Kind == kind {
			n++
		}
	})
	return n
}

// CountSolids returns the number of static bodies
func (w *World) CountSolids() int {
	return solidQuery.Count(w.Registry)
}
