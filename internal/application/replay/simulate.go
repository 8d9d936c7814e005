package replay

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/bedtime/internal/application/event"
	"github.com/younwookim/bedtime/internal/application/run"
	"github.com/younwookim/bedtime/internal/application/state"
	"github.com/younwookim/bedtime/internal/infrastructure/config"
)

// Result summarises a headless replay
type Result struct {
	Frames  int
	Score   int
	Outcome state.Outcome
	Runs    int
	Wins    int
	Losses  int
	Treats  int
}

// Simulate plays data back through a session without a window. The
// config stored in the replay wins over cfg. Every run uses the recorded
// seed, one frame per display tick.
func Simulate(data ReplayData, cfg *config.GameConfig, logger *log.Logger) (Result, error) {
	if data.Config != nil {
		cfg = data.Config
	}
	if cfg == nil {
		cfg = config.LoadDefault()
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay config: %w", err)
	}

	var res Result
	bus := event.NewBus()
	bus.Subscribe(event.Collected, func(event.Event) { res.Treats++ })
	bus.Subscribe(event.GoalReached, func(event.Event) { res.Wins++ })
	bus.Subscribe(event.HazardHit, func(event.Event) { res.Losses++ })

	session := run.NewSession(run.Options{
		Config: cfg,
		Seeder: run.FixedSeed(data.Seed),
		Bus:    bus,
		Logger: logger,
	})
	if err := session.Start(); err != nil {
		return Result{}, err
	}

	dt := time.Second / time.Duration(cfg.Display.Framerate)
	replayer := NewReplayer(data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		session.Update(input, dt)
	}

	res.Frames = replayer.CurrentFrame()
	res.Score = session.Score()
	res.Outcome = session.Outcome()
	res.Runs = session.Runs()
	return res, nil
}
