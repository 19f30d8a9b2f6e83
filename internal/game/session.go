package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/core"
)

// Session is one game instance: the player, the obstacle field, score and
// the AwaitingStart -> Playing -> Over -> AwaitingStart cycle.
//
// A Session is not safe for concurrent use; the host owns it from a single
// loop and calls Tick once per frame.
type Session struct {
	cfg  config.Config
	ramp config.Ramp
	rng  *rand.Rand
	seed int64

	player PlayerBody
	field  *ObstacleField

	phase      core.Phase
	paused     bool
	score      int
	highScore  int
	speed      float64
	theme      core.Theme
	spawnTimer float64
	elapsed    float64 // Seconds played in the current round
	ticks      uint64

	events []core.Event
}

// NewSession creates a session waiting for the start input.
// highScore is the persisted best score loaded by the host.
func NewSession(cfg config.Config, seed int64, highScore int) *Session {
	s := &Session{
		cfg:       cfg,
		ramp:      config.NewRamp(cfg.Difficulty),
		rng:       rand.New(rand.NewSource(seed)),
		seed:      seed,
		field:     NewObstacleField(cfg.Obstacles, cfg.Field.Height),
		highScore: max(highScore, 0),
	}
	s.resetRound()
	return s
}

// resetRound puts everything except the high score and RNG back to the
// start-of-round values.
func (s *Session) resetRound() {
	s.field.Clear()
	s.player = NewPlayerBody(s.cfg.Player, s.cfg.Physics)
	s.phase = core.PhaseAwaitingStart
	s.paused = false
	s.score = 0
	s.speed = s.ramp.BaseSpeed()
	s.theme = core.ThemeDay
	s.spawnTimer = 0
	s.elapsed = 0
}

// Tick advances the session by dt seconds and returns the resulting state
// together with the side effects the host must perform.
func (s *Session) Tick(in core.InputFrame, dt float64) core.StepResult {
	s.events = nil
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	switch s.phase {
	case core.PhaseAwaitingStart:
		// The start press only starts the round; the first jump and the
		// first physics step come on the next tick.
		if in.Any(core.ActionJump, core.ActionConfirm) {
			s.phase = core.PhasePlaying
			s.emit(core.Event{Kind: core.EventStarted})
		}

	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
		}
		if !s.paused {
			s.ticks++
			s.play(in, dt)
		}

	case core.PhaseOver:
		if in.Any(core.ActionJump, core.ActionRestart) {
			if s.score > s.highScore {
				s.highScore = s.score
				s.emit(core.Event{Kind: core.EventHighScore, Score: s.score})
			}
			s.resetRound()
		}
	}

	return core.StepResult{State: s.State(), Events: s.events}
}

// play runs one Playing frame.
func (s *Session) play(in core.InputFrame, dt float64) {
	if in.Has(core.ActionJump) && s.player.Jump() {
		s.emit(core.Event{Kind: core.EventJump, Score: s.score})
	}

	s.player.Integrate(dt)
	s.elapsed += dt

	s.spawnTimer += dt
	if s.spawnTimer >= s.cfg.Obstacles.SpawnInterval {
		s.spawnTimer = 0
		s.field.SpawnAt(s.cfg.Field.Width, s.field.RandomGapCenter(s.rng))
	}

	s.field.Tick(dt, s.speed)
	s.field.Prune()

	for i := range s.field.obstacles {
		o := &s.field.obstacles[i]

		if Collides(s.player, *o) {
			s.player.Kill()
			s.phase = core.PhaseOver
			s.emit(core.Event{Kind: core.EventCrash, Score: s.score, Duration: s.elapsed})
			return
		}

		if !o.IsScored() && o.Right() < s.player.X() {
			o.MarkScored()
			s.score++
			s.emit(core.Event{Kind: core.EventScore, Score: s.score})

			if s.ramp.IsMilestone(s.score) {
				s.speed += s.ramp.Increment()
				s.theme = s.theme.Toggle()
				s.emit(core.Event{Kind: core.EventMilestone, Score: s.score, Theme: s.theme, Speed: s.speed})
			}
		}
	}
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// State returns the externally visible state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Phase:     s.phase,
		Score:     s.score,
		HighScore: s.highScore,
		Theme:     s.theme,
		Speed:     s.speed,
		Paused:    s.paused,
	}
}

// Player returns a copy of the player.
func (s *Session) Player() PlayerBody {
	return s.player
}

// Obstacles returns the live obstacles in spawn order. The slice must not be
// modified and is only valid until the next Tick.
func (s *Session) Obstacles() []Obstacle {
	return s.field.Obstacles()
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Seed returns the seed of the gap generator.
func (s *Session) Seed() int64 {
	return s.seed
}
