// Package sound turns gameplay events into short synthesized effects and a
// background hum played through github.com/gopxl/beep.
package sound

import (
	"github.com/vovakirdan/uffo/internal/core"
)

// Effect is a one-shot sound.
type Effect int

const (
	EffectJump Effect = iota
	EffectPoint
	EffectDie
	EffectMilestone
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectJump:
		return "jump"
	case EffectPoint:
		return "point"
	case EffectDie:
		return "die"
	case EffectMilestone:
		return "milestone"
	default:
		return "unknown"
	}
}

// EffectFor maps a game event to the effect it should trigger.
func EffectFor(kind core.EventKind) (Effect, bool) {
	switch kind {
	case core.EventJump:
		return EffectJump, true
	case core.EventScore:
		return EffectPoint, true
	case core.EventCrash:
		return EffectDie, true
	case core.EventMilestone:
		return EffectMilestone, true
	default:
		return 0, false
	}
}

// Player plays effects and the background music.
// Implementations must never block the game loop.
type Player interface {
	Play(e Effect)
	StartMusic()
	StopMusic()
	Close()
}

// Silent is a Player that does nothing. It is used with --mute and when no
// audio device is available.
type Silent struct{}

func (Silent) Play(Effect) {}
func (Silent) StartMusic() {}
func (Silent) StopMusic()  {}
func (Silent) Close()      {}
