package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Score: 100, Milestones: 6, Duration: 210.5, Seed: 1, Difficulty: "normal"},
		{Score: 50, Duration: 99},
		{Score: 200, Milestones: 13, Duration: 400},
	} {
		id, err := store.SaveRun(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, 200, runs[0].Score)
	assert.Equal(t, 100, runs[1].Score)
	assert.Equal(t, 50, runs[2].Score)

	assert.Equal(t, 6, runs[1].Milestones)
	assert.Equal(t, 210.5, runs[1].Duration)
	assert.Equal(t, int64(1), runs[1].Seed)
	assert.Equal(t, "normal", runs[1].Difficulty)
	assert.False(t, runs[1].CreatedAt.IsZero())
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(Run{Score: (i + 1) * 100})
		require.NoError(t, err)
	}

	runs, err := store.TopRuns(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []int{500, 400, 300}, []int{runs[0].Score, runs[1].Score, runs[2].Score})

	runs, err = store.TopRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 5, "non-positive limit falls back to the default")
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 9, 1} {
		_, err := store.SaveRun(Run{Score: score})
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 1, runs[0].Score)
	assert.Equal(t, 9, runs[1].Score)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	for _, score := range []int{100, 300, 200} {
		_, err := store.SaveRun(Run{Score: score})
		require.NoError(t, err)
	}

	high, err = store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Runs)
	assert.True(t, stats.LastPlayed.IsZero())

	_, err = store.SaveRun(Run{Score: 10, Duration: 30})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Score: 20, Duration: 45})
	require.NoError(t, err)

	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Runs)
	assert.Equal(t, 20, stats.HighScore)
	assert.Equal(t, 15.0, stats.AvgScore)
	assert.Equal(t, 75.0, stats.TotalPlayTime)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{Score: 100})
	require.NoError(t, err)

	require.NoError(t, store.ClearRuns())

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Score: 42})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 42, high)
}
