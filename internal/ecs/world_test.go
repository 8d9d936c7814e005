package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bedtime/internal/domain/entity"
	"github.com/younwookim/bedtime/internal/domain/level"
)

func createTestLayout() *level.Layout {
	return &level.Layout{
		Platforms: []entity.Platform{
			{X: 200, Y: 600, Width: 150, Height: 30},
			{X: 450, Y: 560, Width: 140, Height: 30},
		},
		Collectibles: []entity.Collectible{
			{X: 200, Y: 550, Platform: 0, Value: 10},
			{X: 450, Y: 510, Platform: 1, Value: 10},
			{X: 470, Y: 450, Platform: 1, Value: 10, Bonus: true},
		},
		Hazards: []entity.Hazard{
			{X: 325, Y: 655, Width: 40, Height: 20, Platform: 0, Ground: true},
		},
		Goal:   entity.Goal{X: 630, Y: 540, Width: entity.GoalWidth, Height: entity.GoalHeight},
		Ground: entity.Ground{Rect: entity.Rect{X: 0, Y: 660, W: 1600, H: 40}},
		Bounds: entity.WorldBounds{Width: 1600, Height: 700},
	}
}

func TestNewWorldFromLayout(t *testing.T) {
	w := NewWorldFromLayout(createTestLayout())

	assert.Equal(t, 3, w.CountSolids(), "ground plus two platforms")
	assert.Equal(t, 3, w.CountSensors(entity.KindCollectible))
	assert.Equal(t, 1, w.CountSensors(entity.KindHazard))
	assert.Equal(t, 1, w.CountSensors(entity.KindGoal))
	assert.Len(t, w.Space.Objects(), 8)
}

func TestWorld_SensorGeometry(t *testing.T) {
	l := createTestLayout()
	w := NewWorldFromLayout(l)

	entry, ok := w.FindSensor(entity.KindHazard, 0)
	require.True(t, ok)

	obj := Body.Get(entry).Object
	assert.Equal(t, l.Hazards[0].SensorArea(), Rect(obj), "hazard sensor uses the reduced hit area")
	assert.True(t, obj.HasTags(TagSensor))
	assert.False(t, obj.HasTags(TagSolid))

	variant := Variant.Get(entry)
	assert.Equal(t, entity.KindHazard, variant.Entity.Kind())
}

func TestWorld_Lookup(t *testing.T) {
	w := NewWorld(entity.WorldBounds{Width: 640, Height: 480})
	ent := w.AddSolid(entity.Platform{X: 100, Y: 100, Width: 64, Height: 16})

	entry, ok := w.Lookup(Body.Get(w.Registry.Entry(ent)).Object)
	require.True(t, ok)
	assert.True(t, entry.HasComponent(Solid))

	player := w.AddPlayer(entity.Rect{X: 0, Y: 0, W: 16, H: 16})
	_, ok = w.Lookup(player)
	assert.False(t, ok, "player is not a registry entity")
}

func TestWorld_Deactivate(t *testing.T) {
	w := NewWorldFromLayout(createTestLayout())

	entry, ok := w.FindSensor(entity.KindCollectible, 1)
	require.True(t, ok)
	obj := Body.Get(entry).Object

	assert.True(t, w.Deactivate(entry))
	assert.False(t, w.Deactivate(entry), "second deactivate is a no-op")

	assert.False(t, Sensor.Get(entry).Active)
	assert.Equal(t, 2, w.CountSensors(entity.KindCollectible))
	assert.NotContains(t, w.Space.Objects(), obj)

	_, ok = w.Lookup(obj)
	assert.False(t, ok)
}

func TestWorld_FindSensorMissing(t *testing.T) {
	w := NewWorldFromLayout(createTestLayout())

	_, ok := w.FindSensor(entity.KindCollectible, 99)
	assert.False(t, ok)
}
