package system

import "time"

// MotionConfig holds the player movement tunables
type MotionConfig struct {
	Speed        float64
	JumpVelocity float64 // negative is up
	CoyoteWindow time.Duration
}

// Kinematics is the controller-owned view of the player
type Kinematics struct {
	OnGround     bool
	LastGrounded time.Duration
	Jumping      bool
	FacingRight  bool
}

// MotionController turns input into velocity intents. A jump is allowed
// while grounded or within CoyoteWindow of last touching ground, once
// per airborne stretch.
type MotionController struct {
	config MotionConfig
	state  Kinematics
}

// NewMotionController creates a controller for a player that has not
// touched ground yet
func NewMotionController(cfg MotionConfig) *MotionController {
	c := &MotionController{config: cfg}
	c.Reset()
	return c
}

// Reset restores the spawn state. LastGrounded is placed a full window in
// the past so a mid-air spawn gets no coyote jump.
func (c *MotionController) Reset() {
	c.state = Kinematics{
		LastGrounded: -c.config.CoyoteWindow,
		FacingRight:  true,
	}
}

// State returns a copy of the current kinematic state
func (c *MotionController) State() Kinematics {
	return c.state
}

// Update consumes one tick of input
func (c *MotionController) Update(in InputState, onGround bool, now time.Duration) []Intent {
	c.state.OnGround = onGround
	if onGround {
		c.state.Jumping = false
		c.state.LastGrounded = now
	}

	intents := []Intent{c.horizontal(in)}

	if in.JumpPressed && c.canJump(now) {
		c.state.Jumping = true
		intents = append(intents, JumpIntent{VY: c.config.JumpVelocity})
	}

	return intents
}

func (c *MotionController) horizontal(in InputState) MoveIntent {
	switch {
	case in.Left:
		c.state.FacingRight = false
		return MoveIntent{VX: -c.config.Speed}
	case in.Right:
		c.state.FacingRight = true
		return MoveIntent{VX: c.config.Speed}
	default:
		return MoveIntent{VX: 0}
	}
}

func (c *MotionController) canJump(now time.Duration) bool {
	if c.state.Jumping {
		return false
	}
	return c.state.OnGround || now-c.state.LastGrounded < c.config.CoyoteWindow
}
