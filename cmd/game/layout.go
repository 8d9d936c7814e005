package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/bedtime/internal/application/system"
	"github.com/younwookim/bedtime/internal/domain/entity"
	"github.com/younwookim/bedtime/internal/domain/level"
	"github.com/younwookim/bedtime/internal/ecs"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the generated level for a seed",
	Long: `Generates a level exactly as a run would and prints its platforms,
treats, spikes and goal.

Examples:
  bedtime layout --seed 42
  bedtime layout --config configs/hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bonusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

func runLayout(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	layout, world, err := system.LoadStage(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	logger.Debug("layout generated", "seed", seed, "solids", world.CountSolids())

	fmt.Fprintln(cmd.OutOrStdout(), renderLayout(layout, world, seed))
	return nil
}

// renderLayout formats a layout as styled tables
func renderLayout(l *level.Layout, world *ecs.World, seed int64) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d", seed)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("world %.0fx%.0f  ground y=%.0f  solids=%d sensors=%d",
		l.Bounds.Width, l.Bounds.Height, l.GroundY(), world.CountSolids(),
		world.CountSensors(entity.KindCollectible)+world.CountSensors(entity.KindHazard)+world.CountSensors(entity.KindGoal))))
	b.WriteString("\n")

	b.WriteString(boxStyle.Render(platformTable(l.Platforms)))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(treatTable(l.Collectibles)))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(spikeTable(l.Hazards)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Bed"))
	b.WriteString(fmt.Sprintf(" at (%.0f, %.0f)", l.Goal.X, l.Goal.Y))

	return b.String()
}

func platformTable(platforms []entity.Platform) string {
	rows := []string{
		headerStyle.Render(fmt.Sprintf("Platforms (%d)", len(platforms))),
		dimStyle.Render(fmt.Sprintf("%3s  %6s  %6s  %5s  %5s", "#", "x", "y", "w", "h")),
	}
	for i, p := range platforms {
		rows = append(rows, fmt.Sprintf("%3d  %6.0f  %6.0f  %5.0f  %5.0f", i, p.X, p.Y, p.Width, p.Height))
	}
	return strings.Join(rows, "\n")
}

func treatTable(treats []entity.Collectible) string {
	rows := []string{
		headerStyle.Render(fmt.Sprintf("Treats (%d)", len(treats))),
		dimStyle.Render(fmt.Sprintf("%3s  %6s  %6s  %8s  %5s", "#", "x", "y", "platform", "value")),
	}
	for i, c := range treats {
		row := fmt.Sprintf("%3d  %6.0f  %6.0f  %8d  %5d", i, c.X, c.Y, c.Platform, c.Value)
		if c.Bonus {
			row = bonusStyle.Render(row + "  bonus")
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func spikeTable(hazards []entity.Hazard) string {
	rows := []string{
		headerStyle.Render(fmt.Sprintf("Spikes (%d)", len(hazards))),
		dimStyle.Render(fmt.Sprintf("%3s  %6s  %6s  %5s  %s", "#", "x", "y", "w", "on")),
	}
	for i, h := range hazards {
		on := fmt.Sprintf("platform %d", h.Platform)
		if h.Ground {
			on = fmt.Sprintf("floor after %d", h.Platform)
		}
		rows = append(rows, fmt.Sprintf("%3d  %6.0f  %6.0f  %5.0f  %s", i, h.X, h.Y, h.Width, on))
	}
	return strings.Join(rows, "\n")
}
