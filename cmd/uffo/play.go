package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W - Jump (also starts a round)
  Enter      - Start
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentler speed-ups
  normal - Configured values
  hard   - Faster start, steeper speed-ups
  fixed  - Speed never increases

Examples:
  uffo play
  uffo play --difficulty hard
  uffo play --seed 42 --mute
  uffo play --config ./my-uffo.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that starts a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := playTerminal(cfg, preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playTerminal runs one terminal session until the player quits.
func playTerminal(cfg config.Config, preset config.Preset) error {
	logger, closeLog := openLogFile(flagLogPath)
	defer closeLog()

	a := newApp(cfg, preset, logger)
	defer a.Close()

	width, height := terminalSize()
	return tui.Run(a.runner, width, height, tui.Options{
		TickRate:      flagFPS,
		ScreenshotDir: tui.DefaultScreenshotDir,
		Logger:        logger,
	})
}
