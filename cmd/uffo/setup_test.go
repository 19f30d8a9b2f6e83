package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/platform/host"
	"github.com/vovakirdan/uffo/internal/storage"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.uffo/runs.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".uffo", "runs.db"), got)

	got, err = expandHome("/tmp/runs.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/runs.db", got)
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uffo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty:\n  base_speed: 100\n"), 0o644))

	cfg, preset, err := loadConfig(path, "fixed")
	require.NoError(t, err)
	assert.Equal(t, config.PresetFixed, preset)
	assert.Equal(t, 100.0, cfg.Difficulty.BaseSpeed)
	assert.Zero(t, cfg.Difficulty.SpeedIncrement)
}

func TestLoadConfigErrors(t *testing.T) {
	_, _, err := loadConfig("", "insane")
	require.ErrorIs(t, err, config.ErrUnknownPreset)

	path := filepath.Join(t.TempDir(), "uffo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[field]\nwidth = -1\n"), 0o644))
	_, _, err = loadConfig(path, "")
	assert.Error(t, err)
}

func TestSessionSeed(t *testing.T) {
	old := flagSeed
	t.Cleanup(func() { flagSeed = old })

	flagSeed = 42
	assert.Equal(t, int64(42), sessionSeed())

	flagSeed = 0
	assert.NotZero(t, sessionSeed())
}

type fixedScore struct {
	score int
	err   error
}

func (f fixedScore) Load() (int, error)      { return f.score, f.err }
func (f fixedScore) Save(int) error          { return nil }
func (f fixedScore) HighScore() (int, error) { return f.score, f.err }

func TestBestScore(t *testing.T) {
	broken := errors.New("unreadable")

	tests := []struct {
		name string
		file host.HighScoreStore
		runs highScoreSource
		want int
	}{
		{"no sources", nil, nil, 0},
		{"file only", fixedScore{score: 12}, nil, 12},
		{"history backs up a missing file", fixedScore{}, fixedScore{score: 30}, 30},
		{"file wins when higher", fixedScore{score: 40}, fixedScore{score: 30}, 40},
		{"errors are ignored", fixedScore{score: 9, err: broken}, fixedScore{score: 7}, 7},
		{"history error", fixedScore{score: 5}, fixedScore{err: broken}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bestScore(tt.file, tt.runs))
		})
	}
}

func TestStoredHighScoreFallsBackToHistory(t *testing.T) {
	dir := t.TempDir()
	oldDB, oldFile := flagDBPath, flagHighScore
	t.Cleanup(func() { flagDBPath, flagHighScore = oldDB, oldFile })
	flagDBPath = filepath.Join(dir, "runs.db")
	flagHighScore = filepath.Join(dir, "highscore.txt")

	store, err := storage.Open(flagDBPath)
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{Score: 23, Duration: 4})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.Equal(t, 23, storedHighScore())
}
