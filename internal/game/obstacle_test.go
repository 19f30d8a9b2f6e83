package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/uffo/internal/config"
)

func newTestField() *ObstacleField {
	cfg := config.DefaultConfig()
	return NewObstacleField(cfg.Obstacles, cfg.Field.Height)
}

func TestObstacleEdges(t *testing.T) {
	f := newTestField()
	f.SpawnAt(800, 300)
	o := f.Obstacles()[0]

	assert.Equal(t, 760.0, o.Left())
	assert.Equal(t, 840.0, o.Right())
	assert.Equal(t, 400.0, o.GapTop())
	assert.Equal(t, 200.0, o.GapBottom())
	assert.False(t, o.IsScored())

	assert.Equal(t, 600.0, o.UpperBox().Top())
	assert.Equal(t, 400.0, o.UpperBox().Bottom())
	assert.Equal(t, 200.0, o.LowerBox().Top())
	assert.Equal(t, 0.0, o.LowerBox().Bottom())
}

func TestObstacleAdvance(t *testing.T) {
	o := Obstacle{X: 800, Width: 80}
	o.Advance(0.5, 200)
	assert.Equal(t, 700.0, o.X)
}

func TestObstacleIsOffscreen(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{x: 0, want: false},
		{x: -40, want: false}, // trailing edge exactly at 0
		{x: -40.5, want: true},
		{x: -500, want: true},
	}

	for _, tt := range tests {
		o := Obstacle{X: tt.x, Width: 80}
		assert.Equal(t, tt.want, o.IsOffscreen(), "x=%g", tt.x)
	}
}

func TestFieldTickDoesNotSpawnOrPrune(t *testing.T) {
	f := newTestField()
	f.SpawnAt(10, 300)
	f.SpawnAt(500, 300)

	f.Tick(1, 200)

	require.Equal(t, 2, f.Len())
	assert.Equal(t, -190.0, f.Obstacles()[0].X)
	assert.Equal(t, 300.0, f.Obstacles()[1].X)
}

func TestFieldPrune(t *testing.T) {
	f := newTestField()
	f.SpawnAt(-100, 300)
	f.SpawnAt(100, 310)
	f.SpawnAt(-60, 320)
	f.SpawnAt(500, 330)

	removed := f.Prune()

	assert.Equal(t, 2, removed)
	require.Equal(t, 2, f.Len())
	assert.Equal(t, 100.0, f.Obstacles()[0].X)
	assert.Equal(t, 310.0, f.Obstacles()[0].GapCenter)
	assert.Equal(t, 500.0, f.Obstacles()[1].X)

	assert.Zero(t, f.Prune())
}

func TestFieldClear(t *testing.T) {
	f := newTestField()
	f.SpawnAt(100, 300)
	f.Clear()
	assert.Zero(t, f.Len())
}

func TestRandomGapCenterWithinMargin(t *testing.T) {
	f := newTestField()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		c := f.RandomGapCenter(rng)
		require.GreaterOrEqual(t, c, 200.0)
		require.LessOrEqual(t, c, 400.0)
	}
}

func TestRandomGapCenterDegenerateMargin(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Obstacles.GapMargin = 300
	f := NewObstacleField(cfg.Obstacles, 600)

	assert.Equal(t, 300.0, f.RandomGapCenter(rand.New(rand.NewSource(1))))
}
