package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bedtime/internal/domain/entity"
	"github.com/younwookim/bedtime/internal/ecs"
)

const testDT = 1.0 / 60.0

func createTestPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:      600,
		PlayerWidth:  20,
		PlayerHeight: 20,
	}
}

// createTestWorld returns a 640x480 world with a 40px floor whose top is y=440
func createTestWorld() *ecs.World {
	w := ecs.NewWorld(entity.WorldBounds{Width: 640, Height: 480})
	w.AddSolid(entity.Ground{Rect: entity.Rect{X: 0, Y: 440, W: 640, H: 40}})
	return w
}

func step(s *PhysicsSystem, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Update(testDT)
	}
}

func TestPhysicsSystem_LandsOnGround(t *testing.T) {
	s := NewPhysicsSystem(createTestPhysicsConfig(), createTestWorld(), 100, 300)

	assert.False(t, s.OnGround())

	step(s, 120)

	p := s.Player()
	assert.True(t, s.OnGround())
	assert.Equal(t, 440.0, p.Bottom(), "player rests flush on the floor")
	assert.Equal(t, 0.0, p.VY)
}

func TestPhysicsSystem_StaysGroundedWhileResting(t *testing.T) {
	s := NewPhysicsSystem(createTestPhysicsConfig(), createTestWorld(), 100, 430)

	for i := 0; i < 30; i++ {
		s.Update(testDT)
		require.True(t, s.OnGround(), "tick %d", i)
	}
	assert.Equal(t, 420.0, s.Player().Y)
}

func TestPhysicsSystem_Jump(t *testing.T) {
	s := NewPhysicsSystem(createTestPhysicsConfig(), createTestWorld(), 100, 430)
	step(s, 1)
	require.True(t, s.OnGround())

	s.Apply([]Intent{JumpIntent{VY: -350}})
	s.Update(testDT)

	assert.False(t, s.OnGround())
	assert.Less(t, s.Player().Y, 420.0)
	assert.Less(t, s.Player().VY, 0.0)

	step(s, 180)
	assert.True(t, s.OnGround(), "lands again")
}

func TestPhysicsSystem_BlockedByWall(t *testing.T) {
	w := createTestWorld()
	w.AddSolid(entity.Platform{X: 200, Y: 400, Width: 20, Height: 100})
	s := NewPhysicsSystem(createTestPhysicsConfig(), w, 100, 430)

	s.Apply([]Intent{MoveIntent{VX: 280}})
	step(s, 60)

	p := s.Player()
	assert.Equal(t, 190.0, p.Right(), "stops flush against the wall")
	assert.Equal(t, 0.0, p.VX)
	assert.True(t, s.OnGround())
}

func TestPhysicsSystem_LandsOnPlatform(t *testing.T) {
	w := createTestWorld()
	w.AddSolid(entity.Platform{X: 100, Y: 300, Width: 150, Height: 30})
	s := NewPhysicsSystem(createTestPhysicsConfig(), w, 100, 200)

	step(s, 60)

	assert.True(t, s.OnGround())
	assert.Equal(t, 285.0, s.Player().Bottom())
}

// A 145px platform centred on x=344 ends at 416.5, half a pixel into the
// next 32px broad-phase cell
func createHalfPixelLedgeWorld() *ecs.World {
	w := createTestWorld()
	w.AddSolid(entity.Platform{X: 344, Y: 300, Width: 145, Height: 26})
	return w
}

func TestPhysicsSystem_HalfPixelLedge(t *testing.T) {
	// left edge at 416.2 overlaps the last 0.3px of the platform
	const playerX = 426.2

	t.Run("lands on top", func(t *testing.T) {
		s := NewPhysicsSystem(createTestPhysicsConfig(), createHalfPixelLedgeWorld(), playerX, 200)

		step(s, 60)

		assert.True(t, s.OnGround())
		assert.Equal(t, 287.0, s.Player().Bottom())
	})

	t.Run("head blocked by underside", func(t *testing.T) {
		s := NewPhysicsSystem(createTestPhysicsConfig(), createHalfPixelLedgeWorld(), playerX, 430)
		step(s, 1)
		require.True(t, s.OnGround())

		s.Apply([]Intent{JumpIntent{VY: -500}})
		minY := s.Player().Y
		for i := 0; i < 60; i++ {
			s.Update(testDT)
			minY = min(minY, s.Player().Y)
		}

		assert.Equal(t, 313.0, minY, "stops flush under the platform")
		assert.True(t, s.OnGround(), "falls back to the floor")
	})

	t.Run("one pixel inside", func(t *testing.T) {
		s := NewPhysicsSystem(createTestPhysicsConfig(), createHalfPixelLedgeWorld(), playerX-1, 200)

		step(s, 60)

		assert.Equal(t, 287.0, s.Player().Bottom())
	})
}

func TestPhysicsSystem_WorldBounds(t *testing.T) {
	t.Run("left edge", func(t *testing.T) {
		s := NewPhysicsSystem(createTestPhysicsConfig(), createTestWorld(), 15, 430)
		s.Apply([]Intent{MoveIntent{VX: -280}})
		step(s, 10)
		assert.Equal(t, 0.0, s.Player().X)
	})

	t.Run("right edge", func(t *testing.T) {
		s := NewPhysicsSystem(createTestPhysicsConfig(), createTestWorld(), 620, 430)
		s.Apply([]Intent{MoveIntent{VX: 280}})
		step(s, 10)
		assert.Equal(t, 640.0, s.Player().Right())
	})

	t.Run("top edge", func(t *testing.T) {
		s := NewPhysicsSystem(createTestPhysicsConfig(), createTestWorld(), 100, 20)
		s.Apply([]Intent{JumpIntent{VY: -2000}})
		s.Update(testDT)
		assert.Equal(t, 0.0, s.Player().Y)
		assert.Equal(t, 0.0, s.Player().VY)
	})
}

func TestPhysicsSystem_OverlapOnsetOnly(t *testing.T) {
	w := createTestWorld()
	w.AddSensor(entity.Collectible{X: 300, Y: 430, Value: 10}, 7)
	s := NewPhysicsSystem(createTestPhysicsConfig(), w, 200, 430)

	var got []int
	s.OnOverlap(entity.KindCollectible, func(index int) {
		got = append(got, index)
	})

	s.Apply([]Intent{MoveIntent{VX: 280}})
	step(s, 60)
	assert.Equal(t, []int{7}, got, "one callback while passing through")

	s.Apply([]Intent{MoveIntent{VX: -280}})
	step(s, 60)
	assert.Equal(t, []int{7, 7}, got, "re-entering is a new onset")
}

func TestPhysicsSystem_InertSensorIgnored(t *testing.T) {
	w := createTestWorld()
	ent := w.AddSensor(entity.Collectible{X: 200, Y: 430, Value: 10}, 0)
	require.True(t, w.Deactivate(w.Registry.Entry(ent)))
	s := NewPhysicsSystem(createTestPhysicsConfig(), w, 200, 430)

	called := false
	s.OnOverlap(entity.KindCollectible, func(int) { called = true })
	step(s, 10)

	assert.False(t, called)
}

func TestPhysicsSystem_PauseStopsDispatch(t *testing.T) {
	w := createTestWorld()
	w.AddSensor(entity.Goal{X: 200, Y: 420, Width: entity.GoalWidth, Height: entity.GoalHeight}, 0)
	w.AddSensor(entity.Hazard{X: 200, Y: 430, Width: 40, Height: 20}, 3)
	s := NewPhysicsSystem(createTestPhysicsConfig(), w, 200, 430)

	var order []string
	s.OnOverlap(entity.KindHazard, func(index int) {
		order = append(order, "hazard")
		assert.Equal(t, 3, index)
		s.Pause()
	})
	s.OnOverlap(entity.KindGoal, func(int) {
		order = append(order, "goal")
	})

	s.Update(testDT)

	assert.Equal(t, []string{"hazard"}, order, "hazard dispatches before goal and freezes physics")
	assert.True(t, s.Paused())

	before := s.Player()
	s.Apply([]Intent{MoveIntent{VX: 280}})
	step(s, 10)
	assert.Equal(t, before.Rect, s.Player().Rect, "paused physics does not move")
}

func TestPhysicsSystem_ApplyIntents(t *testing.T) {
	s := NewPhysicsSystem(createTestPhysicsConfig(), createTestWorld(), 100, 300)

	s.Apply([]Intent{MoveIntent{VX: -280}, JumpIntent{VY: -350}})

	p := s.Player()
	assert.Equal(t, -280.0, p.VX)
	assert.Equal(t, -350.0, p.VY)
}
