package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uffo/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in an 800x600 desktop window.

Controls:
  Space/Up/W - Jump (hold to keep flapping)
  Enter      - Start
  P/Esc      - Pause
  R          - Restart (after game over)
  Q          - Quit

Examples:
  uffo window
  uffo window --scale 1.5
  uffo window --difficulty easy --verbose`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x600 field")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, preset, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	a := newApp(cfg, preset, logger)
	runErr := window.Run(a.runner, window.Options{
		TickRate: flagFPS,
		Scale:    flagScale,
		Logger:   logger,
	})

	// Close before potential exit
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
