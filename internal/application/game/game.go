// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/bedtime/internal/application/scene"
	"github.com/younwookim/bedtime/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	display config.DisplayConfig
	fps     int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	fps := display.Framerate
	if fps <= 0 {
		fps = 60
	}
	g := &Game{
		current: initialScene,
		display: display,
		fps:     fps,
		dt:      1.0 / float64(fps),
	}
	g.current.OnEnter()
	return g
}

// Run configures the window and blocks until the game exits
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.display.ScreenWidth, g.display.ScreenHeight)
	ebiten.SetWindowTitle(g.display.Title)
	ebiten.SetTPS(g.fps)
	defer g.current.OnExit()
	return ebiten.RunGame(g)
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.ScreenWidth, g.display.ScreenHeight
}

// DT returns the fixed step passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}
