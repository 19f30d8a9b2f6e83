package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/highscore"
	"github.com/vovakirdan/uffo/internal/platform/host"
	"github.com/vovakirdan/uffo/internal/platform/tui"
	"github.com/vovakirdan/uffo/internal/storage"
)

// runMenu shows the launcher and loops back to it after every game.
func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset == "" {
		preset = config.PresetNormal
	}

	// Menu loop
	for {
		width, height := terminalSize()

		menuResult, err := tui.RunMenu(preset, storedHighScore(), width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		preset = menuResult.Difficulty

		switch menuResult.Choice {
		case tui.ChoicePlay:
			cfg, _, err := loadConfig(flagConfig, string(preset))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if err := playTerminal(cfg, preset); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		case tui.ChoiceScores:
			goBack, sbErr := showScoreboard(width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return // User quit from scoreboard
			}

		default:
			return
		}
	}
}

// storedHighScore reads the high score for the menu header, ignoring errors.
// The run history backs up a missing or reset high score file.
func storedHighScore() int {
	var file host.HighScoreStore
	if store, err := highscore.NewFileStore(flagHighScore); err == nil {
		file = store
	}

	var runs highScoreSource
	if store, err := storage.Open(flagDBPath); err == nil {
		defer store.Close()
		runs = store
	}
	return bestScore(file, runs)
}

type highScoreSource interface {
	HighScore() (int, error)
}

// bestScore returns the larger of the file and history high scores. Either
// source may be nil.
func bestScore(file host.HighScoreStore, runs highScoreSource) int {
	best := 0
	if file != nil {
		if score, err := file.Load(); err == nil {
			best = score
		}
	}
	if runs != nil {
		if score, err := runs.HighScore(); err == nil {
			best = max(best, score)
		}
	}
	return best
}

// showScoreboard opens the run history browser. Without a database it still
// shows an empty board.
func showScoreboard(width, height int) (bool, error) {
	var source tui.RunSource
	store, err := storage.Open(flagDBPath)
	if err == nil {
		defer store.Close()
		source = store
	}
	return tui.RunScoreboard(source, width, height)
}
