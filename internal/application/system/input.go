package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds one tick of directional + jump input
type InputState struct {
	Left        bool
	Right       bool
	JumpPressed bool // edge-triggered
}

// InputSystem samples the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state. Arrows and WASD both work;
// jump is Up, W or Space.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:       anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		JumpPressed: anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
