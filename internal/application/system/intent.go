package system

// Intent represents a velocity command for the player body
type Intent interface {
	isIntent()
}

// MoveIntent sets the horizontal velocity (pixels/second)
type MoveIntent struct {
	VX float64
}

func (MoveIntent) isIntent() {}

// JumpIntent sets the vertical velocity (pixels/second, negative is up)
type JumpIntent struct {
	VY float64
}

func (JumpIntent) isIntent() {}
