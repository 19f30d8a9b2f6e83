// Package host connects a game session to the outside world: it feeds frames
// into the session and performs the side effects the session asks for.
package host

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/core"
	"github.com/vovakirdan/uffo/internal/game"
	"github.com/vovakirdan/uffo/internal/highscore"
	"github.com/vovakirdan/uffo/internal/platform/sound"
	"github.com/vovakirdan/uffo/internal/storage"
)

// MaxFrameDelta caps the time step of one frame, in seconds.
const MaxFrameDelta = 0.1

// HighScoreStore loads and saves the persisted high score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// RunRecorder appends finished rounds to the history.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a Runner. Nil fields disable the matching side effect.
type Options struct {
	Sound      sound.Player
	HighScores HighScoreStore
	History    RunRecorder
	Logger     *log.Logger
	Difficulty string // Recorded with each run
}

// Runner drives a Session one frame at a time.
type Runner struct {
	session *game.Session
	ramp    config.Ramp
	opts    Options
	logger  *log.Logger
}

// LoadHighScore reads the stored high score. Failures are logged and yield 0.
func LoadHighScore(store HighScoreStore, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	score, err := store.Load()
	if err != nil {
		if errors.Is(err, highscore.ErrCorrupt) {
			logger.Warn("ignoring corrupt high score file", "error", err)
		} else {
			logger.Warn("cannot read high score", "error", err)
		}
		return 0
	}
	return score
}

// NewRunner creates a runner for a session and starts the background music.
func NewRunner(s *game.Session, opts Options) *Runner {
	if opts.Sound == nil {
		opts.Sound = sound.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := &Runner{
		session: s,
		ramp:    config.NewRamp(s.Config().Difficulty),
		opts:    opts,
		logger:  logger,
	}
	opts.Sound.StartMusic()
	return r
}

// Session returns the driven session.
func (r *Runner) Session() *game.Session {
	return r.session
}

// Frame advances the session by dt seconds and dispatches its events.
func (r *Runner) Frame(in core.InputFrame, dt float64) core.StepResult {
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	res := r.session.Tick(in, dt)
	for _, e := range res.Events {
		r.dispatch(e)
	}
	return res
}

func (r *Runner) dispatch(e core.Event) {
	if effect, ok := sound.EffectFor(e.Kind); ok {
		r.opts.Sound.Play(effect)
	}

	switch e.Kind {
	case core.EventStarted:
		r.logger.Debug("round started", "seed", r.session.Seed())

	case core.EventMilestone:
		r.logger.Debug("milestone", "score", e.Score, "speed", e.Speed, "theme", e.Theme)

	case core.EventCrash:
		r.logger.Info("round over", "score", e.Score, "duration", e.Duration)
		// A record is kept right away so quitting from the game-over screen
		// does not lose it; the restart saves the same value again.
		if e.Score > r.session.State().HighScore {
			r.saveHighScore(e.Score)
		}
		if r.opts.History == nil {
			return
		}
		run := storage.Run{
			Score:      e.Score,
			Milestones: r.ramp.Milestones(e.Score),
			Duration:   e.Duration,
			Seed:       r.session.Seed(),
			Difficulty: r.opts.Difficulty,
		}
		if _, err := r.opts.History.SaveRun(run); err != nil {
			r.logger.Error("failed to record run", "error", err)
		}

	case core.EventHighScore:
		r.logger.Info("new high score", "score", e.Score)
		r.saveHighScore(e.Score)
	}
}

func (r *Runner) saveHighScore(score int) {
	if r.opts.HighScores == nil {
		return
	}
	if err := r.opts.HighScores.Save(score); err != nil {
		r.logger.Error("failed to save high score", "error", err)
	}
}

// Close stops the sound.
func (r *Runner) Close() {
	r.opts.Sound.StopMusic()
	r.opts.Sound.Close()
}
