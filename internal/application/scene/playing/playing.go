// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/bedtime/internal/application/event"
	"github.com/younwookim/bedtime/internal/application/replay"
	"github.com/younwookim/bedtime/internal/application/run"
	"github.com/younwookim/bedtime/internal/application/scene"
	"github.com/younwookim/bedtime/internal/application/state"
	"github.com/younwookim/bedtime/internal/application/system"
	"github.com/younwookim/bedtime/internal/domain/entity"
	"github.com/younwookim/bedtime/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorGround    = color.RGBA{70, 60, 90, 255}
	colorPlatform  = color.RGBA{120, 110, 170, 255}
	colorTreat     = color.RGBA{255, 215, 0, 255}
	colorBonus     = color.RGBA{255, 150, 220, 255}
	colorSpike     = color.RGBA{200, 50, 50, 255}
	colorSpikeHit  = color.RGBA{255, 120, 120, 96}
	colorBed       = color.RGBA{100, 160, 255, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorPlayerHit = color.RGBA{255, 255, 255, 220}
	colorFace      = color.RGBA{30, 30, 30, 255}
)

// Feedback tuning
const (
	popupFrames = 40
	popupRise   = 0.8
	flashFrames = 12
	shakeHit    = 6.0
	shakeDecay  = 0.85
)

// popup is a floating score label spawned by a Collected event
type popup struct {
	x, y float64
	text string
	ttl  int
}

// Options configures the scene
type Options struct {
	// Seed fixes every layout. Zero draws a new seed per run.
	Seed int64
	// RecordPath enables recording. Each finished run is saved there.
	RecordPath string
	Logger     *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	session     *run.Session
	inputSystem *system.InputSystem
	logger      *log.Logger
	screenW     int
	screenH     int
	dt          time.Duration
	paused      bool

	// Feedback, driven by bus events only
	popups      []popup
	flashFrames int
	shake       float64
	shakeRNG    *rand.Rand

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
	runEnded       bool
}

// New creates a new Playing scene and starts the first run
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seeder := run.TimeSeed()
	if opts.Seed != 0 {
		seeder = run.FixedSeed(opts.Seed)
	}

	p := &Playing{
		config:         cfg,
		inputSystem:    system.NewInputSystem(),
		logger:         logger,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		dt:             time.Second / time.Duration(cfg.Display.Framerate),
		shakeRNG:       rand.New(rand.NewSource(1)),
		recordFilename: opts.RecordPath,
	}

	bus := event.NewBus()
	bus.Subscribe(event.RunStarted, p.onRunStarted)
	bus.Subscribe(event.Collected, p.onCollected)
	bus.Subscribe(event.HazardHit, p.onHazardHit)
	bus.Subscribe(event.GoalReached, p.onGoalReached)

	p.session = run.NewSession(run.Options{
		Config: cfg,
		Seeder: seeder,
		Bus:    bus,
		Logger: logger,
	})

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(0, cfg)
		logger.Info("recording enabled", "path", opts.RecordPath)
	}

	if err := p.session.Start(); err != nil {
		return nil, err
	}
	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	p.step(p.inputSystem.GetInput())
	return nil, nil // nil = stay on this scene
}

// step runs one fixed tick with the given input. A restart due this tick
// fires inside the session update, so the input is recorded afterwards
// and lands in the new run's recording.
func (p *Playing) step(input system.InputState) {
	p.session.Update(input, p.dt)

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
		if p.runEnded {
			p.saveRecording()
		}
	}
	p.runEnded = false

	p.updateFeedback()
}

func (p *Playing) updateFeedback() {
	live := p.popups[:0]
	for _, pop := range p.popups {
		pop.ttl--
		pop.y -= popupRise
		if pop.ttl > 0 {
			live = append(live, pop)
		}
	}
	p.popups = live

	if p.flashFrames > 0 {
		p.flashFrames--
	}
	p.shake *= shakeDecay
	if p.shake < 0.1 {
		p.shake = 0
	}
}

func (p *Playing) onRunStarted(e event.Event) {
	p.popups = p.popups[:0]
	p.flashFrames = 0
	p.shake = 0
	if p.recorder != nil {
		p.recorder.Restart(e.Seed)
	}
}

func (p *Playing) onCollected(e event.Event) {
	p.popups = append(p.popups, popup{
		x:    e.X,
		y:    e.Y,
		text: fmt.Sprintf("+%d", e.Value),
		ttl:  popupFrames,
	})
}

func (p *Playing) onHazardHit(event.Event) {
	p.flashFrames = flashFrames
	p.shake = shakeHit
	p.runEnded = true
}

func (p *Playing) onGoalReached(event.Event) {
	p.runEnded = true
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		if errors.Is(err, replay.ErrNoFrames) {
			p.logger.Debug("nothing to save", "path", filename)
			return
		}
		p.logger.Error("failed to save recording", "path", filename, "error", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount(), "seed", p.recorder.Data().Seed)
}

// camera returns the top-left world position of the view, following the
// player and clamped to the world
func (p *Playing) camera() (float64, float64) {
	px, py := p.session.Player().Center()
	bounds := p.session.Layout().Bounds

	camX := clampCam(px-float64(p.screenW)/2, bounds.Width-float64(p.screenW))
	camY := clampCam(py-float64(p.screenH)/2, bounds.Height-float64(p.screenH))

	if p.shake > 0 {
		camX += p.shake * (2*p.shakeRNG.Float64() - 1)
		camY += p.shake * (2*p.shakeRNG.Float64() - 1)
	}
	return camX, camY
}

func clampCam(v, limit float64) float64 {
	if limit < 0 {
		limit = 0
	}
	return math.Max(0, math.Min(v, limit))
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	layout := p.session.Layout()

	fillRect(screen, layout.Ground.Rect, camX, camY, colorGround)
	for _, pl := range layout.Platforms {
		fillRect(screen, pl.CollisionBody(), camX, camY, colorPlatform)
	}
	for i, c := range layout.Collectibles {
		if p.session.Collected(i) {
			continue
		}
		clr := colorTreat
		if c.Bonus {
			clr = colorBonus
		}
		fillRect(screen, c.SensorArea(), camX, camY, clr)
	}
	for _, h := range layout.Hazards {
		p.drawSpikes(screen, h, camX, camY)
	}
	fillRect(screen, layout.Goal.SensorArea(), camX, camY, colorBed)

	p.drawPlayer(screen, camX, camY)
	p.drawPopups(screen, camX, camY)
	p.drawUI(screen)

	switch {
	case p.paused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case p.session.Outcome() == state.Won:
		p.drawOverlay(screen, color.RGBA{20, 40, 100, 140},
			fmt.Sprintf("SWEET DREAMS!\n\nTreats: %d", p.session.Score()))
	case p.session.Outcome() == state.Lost:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 140},
			fmt.Sprintf("OUCH!\n\nTreats: %d\n\nBack to bed...", p.session.Score()))
	}
}

func fillRect(screen *ebiten.Image, r entity.Rect, camX, camY float64, c color.Color) {
	r = r.Translate(-camX, -camY)
	ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, c)
}

// drawSpikes draws a row of triangles over the visual footprint and,
// with Tab held, the smaller hit area
func (p *Playing) drawSpikes(screen *ebiten.Image, h entity.Hazard, camX, camY float64) {
	v := h.Visual()
	teeth := int(math.Max(1, math.Round(v.W/20)))
	tw := v.W / float64(teeth)
	baseY := v.Y + v.H - camY
	for i := 0; i < teeth; i++ {
		x0 := v.X + float64(i)*tw - camX
		ebitenutil.DrawLine(screen, x0, baseY, x0+tw/2, v.Y-camY, colorSpike)
		ebitenutil.DrawLine(screen, x0+tw/2, v.Y-camY, x0+tw, baseY, colorSpike)
	}
	ebitenutil.DrawLine(screen, v.X-camX, baseY, v.X+v.W-camX, baseY, colorSpike)

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		fillRect(screen, h.SensorArea(), camX, camY, colorSpikeHit)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	r := p.session.Player().Rect

	c := colorPlayer
	if p.flashFrames > 0 && p.flashFrames%4 < 2 {
		c = colorPlayerHit
	}
	fillRect(screen, r, camX, camY, c)

	// Eye on the facing side
	eyeX := r.X + r.W*0.7
	if !p.session.Kinematics().FacingRight {
		eyeX = r.X + r.W*0.3
	}
	ebitenutil.DrawRect(screen, eyeX-camX-2, r.Y+r.H*0.3-camY-2, 4, 4, colorFace)
}

func (p *Playing) drawPopups(screen *ebiten.Image, camX, camY float64) {
	for _, pop := range p.popups {
		ebitenutil.DebugPrintAt(screen, pop.text, int(pop.x-camX)-8, int(pop.y-camY)-24)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Treats: %d", p.session.Score()), 10, 20)

	// Controls
	debugText := "A/D: Move | W/Space: Jump | ESC: Pause"
	if p.recorder != nil {
		debugText += " | F5: Save replay"
	}
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
