package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/bedtime/internal/application/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recording without a window",
	Long: `Loads a recording saved with --record (or F5) and plays it back
through the game logic at the recorded seed, then prints the result.

Examples:
  bedtime replay run.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	// Recordings carry their config; --config only fills in for old files
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("replaying", "file", args[0], "seed", data.Seed, "frames", len(data.Frames))
	res, err := replay.Simulate(*data, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderResult(args[0], res))
	return nil
}

// renderResult formats a replay result as a small styled box
func renderResult(name string, res replay.Result) string {
	rows := []string{
		headerStyle.Render(name),
		fmt.Sprintf("%-8s %d", "frames", res.Frames),
		fmt.Sprintf("%-8s %s", "outcome", res.Outcome),
		fmt.Sprintf("%-8s %d", "score", res.Score),
		fmt.Sprintf("%-8s %d", "treats", res.Treats),
		fmt.Sprintf("%-8s %d", "runs", res.Runs),
		dimStyle.Render(fmt.Sprintf("%d won, %d lost", res.Wins, res.Losses)),
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}
