// bedtime is a small side-scrolling platformer: run across generated
// platforms, collect treats, avoid spikes and reach the bed.
//
// Usage:
//
//	bedtime                  - Play in a window
//	bedtime layout           - Print the generated level for a seed
//	bedtime replay <file>    - Replay a recording headlessly
//
// Global flags:
//
//	--seed <value>    - Layout seed (0 = config value, then random)
//	--config <path>   - Game config YAML (default: ./configs/game.yaml, then built-in)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/bedtime/internal/application/game"
	"github.com/younwookim/bedtime/internal/application/scene/playing"
	"github.com/younwookim/bedtime/internal/infrastructure/config"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagVerbose bool

	// Play flags
	flagRecord string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bedtime",
	Short: "Bedtime Dash - a tiny platformer",
	Long: `Bedtime Dash generates a row of platforms, scatters treats over them
and spikes between them, and puts a bed at the far end.

Controls:
  A/D or arrows   - Move
  W/Up/Space      - Jump
  ESC             - Pause
  F5              - Save recording (with --record)

Examples:
  bedtime --seed 42
  bedtime --record run.json
  bedtime layout --seed 42
  bedtime replay run.json`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Layout seed (0 = use config, random if unset)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")

	// Add subcommands
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(replayCmd)
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bedtime",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the config and applies the --seed override
func loadConfig() (*config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagSeed != 0 {
		cfg.Run.Seed = flagSeed
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scene, err := playing.New(cfg, playing.Options{
		Seed:       cfg.Run.Seed,
		RecordPath: flagRecord,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	logger.Debug("starting window", "width", cfg.Display.ScreenWidth, "height", cfg.Display.ScreenHeight, "fps", cfg.Display.Framerate)
	return game.New(scene, cfg.Display).Run()
}
