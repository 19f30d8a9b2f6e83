package core

// RuntimeConfig contains host-provided settings passed to a session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells or pixels
	TickRate int   // Frames per second requested from the host
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the discrete state of a game session.
type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhasePlaying
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting_start"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Theme is the active visual theme.
type Theme int

const (
	ThemeDay Theme = iota
	ThemeNight
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDay {
		return ThemeNight
	}
	return ThemeDay
}

// String returns a human-readable name for the theme.
func (t Theme) String() string {
	if t == ThemeNight {
		return "night"
	}
	return "day"
}

// GameState is the externally visible state of a session after a frame.
type GameState struct {
	Phase     Phase
	Score     int
	HighScore int
	Theme     Theme
	Speed     float64
	Paused    bool
}

// GameOver reports whether the session is waiting for a restart.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// EventKind identifies a side effect requested by the game.
type EventKind int

const (
	EventStarted   EventKind = iota // A round began
	EventJump                       // A jump impulse was applied
	EventScore                      // An obstacle was cleared
	EventMilestone                  // Speed increased and theme toggled
	EventCrash                      // The player hit an obstacle; the round is over
	EventHighScore                  // A new high score must be persisted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventMilestone:
		return "milestone"
	case EventCrash:
		return "crash"
	case EventHighScore:
		return "high_score"
	default:
		return "unknown"
	}
}

// Event is one side-effect intent produced by a frame.
// The game never performs I/O itself; the host acts on these.
type Event struct {
	Kind     EventKind
	Score    int     // Score at the time of the event
	Theme    Theme   // Theme after a milestone
	Speed    float64 // Scroll speed after a milestone
	Duration float64 // Seconds of play, set on EventCrash
}

// StepResult is returned after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this frame.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
