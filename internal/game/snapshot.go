package game

import "github.com/vovakirdan/uffo/internal/core"

// Snapshot is a comparable copy of everything that evolves during a round.
// Two sessions with the same seed, config and input history produce equal
// snapshots.
type Snapshot struct {
	Phase      core.Phase
	Paused     bool
	Score      int
	HighScore  int
	Speed      float64
	Theme      core.Theme
	SpawnTimer float64
	Elapsed    float64
	Ticks      uint64

	PlayerY   float64
	PlayerVY  float64
	Alive     bool
	Frame     int
	Obstacles []Obstacle
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.field.obstacles))
	copy(obstacles, s.field.obstacles)

	return Snapshot{
		Phase:      s.phase,
		Paused:     s.paused,
		Score:      s.score,
		HighScore:  s.highScore,
		Speed:      s.speed,
		Theme:      s.theme,
		SpawnTimer: s.spawnTimer,
		Elapsed:    s.elapsed,
		Ticks:      s.ticks,
		PlayerY:    s.player.y,
		PlayerVY:   s.player.velocityY,
		Alive:      s.player.alive,
		Frame:      s.player.frame,
		Obstacles:  obstacles,
	}
}
