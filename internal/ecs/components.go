package ecs

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/younwookim/bedtime/internal/domain/entity"
)

// resolv tags
const (
	TagSolid  = "solid"
	TagSensor = "sensor"
	TagPlayer = "player"
)

// BodyData links an entity to its collision object
type BodyData struct {
	Object *resolv.Object
}

// SensorData identifies an overlap sensor. Index is the position of the
// source entity in its layout list.
type SensorData struct {
	Kind   entity.Kind
	Index  int
	Active bool
}

// VariantData keeps the tagged level entity for presentation
type VariantData struct {
	Entity entity.Entity
}

var (
	Body    = donburi.NewComponentType[BodyData]()
	Sensor  = donburi.NewComponentType[SensorData]()
	Variant = donburi.NewComponentType[VariantData]()

	// Solid marks static geometry
	Solid = donburi.NewTag()
)

// Rect returns the current bounds of a resolv object
func Rect(obj *resolv.Object) entity.Rect {
	return entity.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
