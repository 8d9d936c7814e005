// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The game loop delegates Update and Draw
// to the current scene; a scene hands over by returning the next one.
type Scene interface {
	// Update advances the scene by dt seconds, the fixed display step.
	// A non-nil next scene replaces this one. An error ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game exits.
	OnExit()
}
