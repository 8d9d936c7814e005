package run

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/bedtime/internal/application/event"
	"github.com/younwookim/bedtime/internal/application/state"
	"github.com/younwookim/bedtime/internal/application/system"
	"github.com/younwookim/bedtime/internal/application/timer"
	"github.com/younwookim/bedtime/internal/domain/entity"
	"github.com/younwookim/bedtime/internal/domain/level"
	"github.com/younwookim/bedtime/internal/ecs"
	"github.com/younwookim/bedtime/internal/infrastructure/config"
)

// Seeder supplies the seed for each new layout
type Seeder func() int64

// FixedSeed replays the same layout every run
func FixedSeed(seed int64) Seeder {
	return func() int64 { return seed }
}

// TimeSeed draws a new layout every run
func TimeSeed() Seeder {
	return func() int64 { return time.Now().UnixNano() }
}

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Config *config.GameConfig
	Seeder Seeder
	Bus    *event.Bus
	Logger *log.Logger
}

// Session owns one player's run: layout, physics, motion and the
// Playing -> Won|Lost state machine with deferred restarts
type Session struct {
	cfg    *config.GameConfig
	seeder Seeder
	bus    *event.Bus
	logger *log.Logger
	clock  *timer.Scheduler

	seed      int64
	runs      int
	layout    *level.Layout
	world     *ecs.World
	physics   *system.PhysicsSystem
	motion    *system.MotionController
	state     *state.RunState
	collected []bool
	restart   *timer.Timer
}

// NewSession creates a session. Call Start before Update.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	seeder := opts.Seeder
	if seeder == nil {
		seeder = TimeSeed()
	}
	bus := opts.Bus
	if bus == nil {
		bus = event.NewBus()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		cfg:    cfg,
		seeder: seeder,
		bus:    bus,
		logger: logger,
		clock:  timer.NewScheduler(),
		motion: system.NewMotionController(system.MotionSettings(cfg)),
		state:  state.NewRunState(),
	}
}

// Start begins a fresh run with a newly generated layout. Any pending
// restart is cancelled first. On error the previous run is left as is.
func (s *Session) Start() error {
	if s.restart.Cancel() {
		s.logger.Debug("cancelled pending restart")
	}
	s.restart = nil

	seed := s.seeder()
	layout, world, err := system.LoadStage(s.cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}

	s.seed = seed
	s.layout = layout
	s.world = world
	s.physics = system.NewPhysicsSystem(system.PhysicsSettings(s.cfg), world, s.cfg.Player.StartX, s.cfg.Player.StartY)
	s.physics.OnOverlap(entity.KindCollectible, s.OnCollectibleOverlap)
	s.physics.OnOverlap(entity.KindHazard, s.OnHazardOverlap)
	s.physics.OnOverlap(entity.KindGoal, func(int) { s.OnGoalOverlap() })
	s.motion.Reset()
	s.state = state.NewRunState()
	s.collected = make([]bool, len(layout.Collectibles))
	s.runs++

	s.logger.Info("run started",
		"run", s.runs,
		"seed", seed,
		"platforms", len(layout.Platforms),
		"treats", len(layout.Collectibles),
		"spikes", len(layout.Hazards),
		"width", layout.Bounds.Width,
	)
	s.bus.Emit(event.Event{Type: event.RunStarted, Seed: seed})
	return nil
}

// Update advances one host tick. Due restarts fire first, so a restart
// and the first tick of the new run happen in the same frame.
func (s *Session) Update(in system.InputState, dt time.Duration) {
	s.clock.Advance(dt)
	if s.physics == nil {
		return
	}

	switch s.state.Outcome {
	case state.Playing:
		intents := s.motion.Update(in, s.physics.OnGround(), s.clock.Now())
		s.physics.Apply(intents)
	case state.Won:
		s.physics.Apply([]system.Intent{system.MoveIntent{VX: 0}})
	}

	s.physics.Update(dt.Seconds())
}

// OnCollectibleOverlap scores a treat once and makes it inert
func (s *Session) OnCollectibleOverlap(index int) {
	if s.state.Outcome.Terminal() {
		s.logger.Debug("ignored treat after run ended", "index", index)
		return
	}
	if index < 0 || index >= len(s.collected) || s.collected[index] {
		s.logger.Debug("ignored inert treat", "index", index)
		return
	}

	s.collected[index] = true
	if entry, ok := s.world.FindSensor(entity.KindCollectible, index); ok {
		s.world.Deactivate(entry)
	}

	c := s.layout.Collectibles[index]
	s.state.AddScore(c.Value)
	s.bus.Emit(event.Event{Type: event.Collected, Value: c.Value, X: c.X, Y: c.Y})
}

// OnHazardOverlap ends the run as Lost, freezes physics and schedules a
// restart
func (s *Session) OnHazardOverlap(index int) {
	if !s.state.Lose() {
		s.logger.Debug("ignored hazard after run ended", "index", index)
		return
	}

	s.physics.Pause()
	p := s.physics.Player()
	s.logger.Info("run lost", "run", s.runs, "score", s.state.Score, "hazard", index)
	s.bus.Emit(event.Event{Type: event.HazardHit, Value: s.state.Score, X: p.X + p.W/2, Y: p.Y + p.H/2})
	s.scheduleRestart(s.cfg.Run.LoseDelay())
}

// OnGoalOverlap ends the run as Won and schedules a restart. Physics keeps
// running but input is ignored.
func (s *Session) OnGoalOverlap() {
	if !s.state.Win() {
		s.logger.Debug("ignored goal after run ended")
		return
	}

	s.logger.Info("run won", "run", s.runs, "score", s.state.Score)
	s.bus.Emit(event.Event{Type: event.GoalReached, Value: s.state.Score, X: s.layout.Goal.X, Y: s.layout.Goal.Y})
	s.scheduleRestart(s.cfg.Run.WinDelay())
}

func (s *Session) scheduleRestart(d time.Duration) {
	s.restart.Cancel()
	s.restart = s.clock.After(d, func() {
		s.restart = nil
		if err := s.Start(); err != nil {
			s.logger.Error("restart failed", "error", err)
		}
	})
	s.logger.Debug("restart scheduled", "run", s.runs, "at", s.restart.Due())
}

// Score returns the current score
func (s *Session) Score() int { return s.state.Score }

// Outcome returns the current outcome
func (s *Session) Outcome() state.Outcome { return s.state.Outcome }

// Layout returns the current level layout
func (s *Session) Layout() *level.Layout { return s.layout }

// Player returns the player body
func (s *Session) Player() entity.Body {
	if s.physics == nil {
		return entity.Body{}
	}
	return s.physics.Player()
}

// Kinematics returns the motion controller state
func (s *Session) Kinematics() system.Kinematics { return s.motion.State() }

// Collected reports whether the treat at index has been picked up
func (s *Session) Collected(index int) bool {
	return index >= 0 && index < len(s.collected) && s.collected[index]
}

// Seed returns the seed of the current layout
func (s *Session) Seed() int64 { return s.seed }

// Runs returns the number of runs started
func (s *Session) Runs() int { return s.runs }

// Now returns the session clock
func (s *Session) Now() time.Duration { return s.clock.Now() }

// RestartPending reports whether a deferred restart is scheduled
func (s *Session) RestartPending() bool { return s.restart != nil }

// Paused reports whether physics is frozen
func (s *Session) Paused() bool { return s.physics != nil && s.physics.Paused() }

// Bus returns the presentation event bus
func (s *Session) Bus() *event.Bus { return s.bus }

// World returns the entity registry of the current run
func (s *Session) World() *ecs.World { return s.world }
