package game

import (
	"math/rand"

	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/core"
)

// Obstacle is a full-height column with a passable gap.
type Obstacle struct {
	X         float64 // Horizontal centre
	Width     float64
	Height    float64 // Field height the column spans
	GapCenter float64
	GapSize   float64
	scored    bool
}

// Advance moves the obstacle left.
func (o *Obstacle) Advance(dt, speed float64) {
	o.X -= speed * dt
}

// IsOffscreen reports whether the trailing edge has left the field.
func (o Obstacle) IsOffscreen() bool {
	return o.Right() < 0
}

// MarkScored records that the player passed this obstacle.
func (o *Obstacle) MarkScored() { o.scored = true }

// IsScored reports whether this obstacle already counted towards the score.
func (o Obstacle) IsScored() bool { return o.scored }

// Left returns the leading edge.
func (o Obstacle) Left() float64 { return o.X - o.Width/2 }

// Right returns the trailing edge.
func (o Obstacle) Right() float64 { return o.X + o.Width/2 }

// GapTop returns the upper edge of the gap.
func (o Obstacle) GapTop() float64 { return o.GapCenter + o.GapSize/2 }

// GapBottom returns the lower edge of the gap.
func (o Obstacle) GapBottom() float64 { return o.GapCenter - o.GapSize/2 }

// UpperBox returns the solid part above the gap.
func (o Obstacle) UpperBox() core.Box {
	top := o.GapTop()
	return core.Box{CX: o.X, CY: (top + o.Height) / 2, W: o.Width, H: o.Height - top}
}

// LowerBox returns the solid part below the gap.
func (o Obstacle) LowerBox() core.Box {
	bottom := o.GapBottom()
	return core.Box{CX: o.X, CY: bottom / 2, W: o.Width, H: bottom}
}

// ObstacleField holds the live obstacles in spawn order, which is also
// left-to-right order since they all move at the same speed.
type ObstacleField struct {
	obstacles []Obstacle
	cfg       config.ObstacleConfig
	height    float64
}

// NewObstacleField creates an empty field for a playfield of the given height.
func NewObstacleField(cfg config.ObstacleConfig, height float64) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
		height:    height,
	}
}

// Tick advances every obstacle. It neither spawns nor prunes.
func (f *ObstacleField) Tick(dt, speed float64) {
	for i := range f.obstacles {
		f.obstacles[i].Advance(dt, speed)
	}
}

// Prune removes offscreen obstacles, keeping the order of the rest.
// It returns how many were removed.
func (f *ObstacleField) Prune() int {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if !o.IsOffscreen() {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	f.obstacles = kept
	return removed
}

// SpawnAt appends an obstacle centred on x with the given gap centre.
func (f *ObstacleField) SpawnAt(x, gapCenter float64) {
	f.obstacles = append(f.obstacles, Obstacle{
		X:         x,
		Width:     f.cfg.Width,
		Height:    f.height,
		GapCenter: gapCenter,
		GapSize:   f.cfg.GapSize,
	})
}

// RandomGapCenter draws a gap centre uniformly from [margin, height-margin].
func (f *ObstacleField) RandomGapCenter(rng *rand.Rand) float64 {
	lo := f.cfg.GapMargin
	hi := f.height - f.cfg.GapMargin
	if hi <= lo {
		return f.height / 2
	}
	return lo + rng.Float64()*(hi-lo)
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Clear removes every obstacle.
func (f *ObstacleField) Clear() {
	f.obstacles = f.obstacles[:0]
}
