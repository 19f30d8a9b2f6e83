package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/game"
	"github.com/vovakirdan/uffo/internal/highscore"
	"github.com/vovakirdan/uffo/internal/platform/host"
	"github.com/vovakirdan/uffo/internal/platform/sound"
	"github.com/vovakirdan/uffo/internal/storage"
)

const (
	defaultDBPath  = "~/.uffo/runs.db"
	defaultLogPath = "~/.uffo/uffo.log"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "uffo",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the terminal-play log. The alternate screen owns stdout,
// so a file that cannot be opened falls back to discarding.
func openLogFile(path string) (*log.Logger, func()) {
	path, err := expandHome(path)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err != nil {
		return newLogger(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { _ = f.Close() }
}

// loadConfig resolves the config file, applies the difficulty preset and
// validates the result.
func loadConfig(path, difficulty string) (config.Config, config.Preset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Config{}, "", err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, preset, nil
}

// openHistory opens the run database. The game works without it.
func openHistory(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func openHighScores(logger *log.Logger) host.HighScoreStore {
	store, err := highscore.NewFileStore(flagHighScore)
	if err != nil {
		logger.Warn("high score file disabled", "error", err)
		return nil
	}
	return store
}

func sessionSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// app bundles everything one play session needs.
type app struct {
	runner *host.Runner
	store  *storage.Store
	audio  sound.Player
}

func newApp(cfg config.Config, preset config.Preset, logger *log.Logger) *app {
	a := &app{
		store: openHistory(logger),
		audio: sound.Open(logger, flagMute),
	}

	scores := openHighScores(logger)
	high := 0
	if scores != nil {
		high = host.LoadHighScore(scores, logger)
	}

	// A nil *storage.Store must not end up inside a non-nil interface.
	var history host.RunRecorder
	if a.store != nil {
		history = a.store
	}

	seed := sessionSeed()
	logger.Info("session ready", "seed", seed, "difficulty", preset, "high_score", high)

	a.runner = host.NewRunner(game.NewSession(cfg, seed, high), host.Options{
		Sound:      a.audio,
		HighScores: scores,
		History:    history,
		Logger:     logger,
		Difficulty: string(preset),
	})
	return a
}

func (a *app) Close() {
	a.runner.Close()
	if a.store != nil {
		_ = a.store.Close()
	}
}
