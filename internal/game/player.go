// Package game implements the uffo gameplay: a falling player, scrolling gated
// obstacles, the collision rule and the session state machine. The package
// performs no I/O; side effects are returned to the host as core.Event intents.
package game

import (
	"github.com/vovakirdan/uffo/internal/config"
	"github.com/vovakirdan/uffo/internal/core"
)

// Sprite is an opaque handle to one animation frame. Hosts map it to a glyph
// or an image.
type Sprite int

// FrameCount is the number of frames in the player animation.
const FrameCount = 3

// DefaultFrames are the sprite handles used by NewPlayerBody.
var DefaultFrames = [FrameCount]Sprite{0, 1, 2}

// PlayerBody is the falling, jumping character.
// The world is y-up: a jump makes the velocity negative and y grow.
type PlayerBody struct {
	x, y          float64
	width, height float64
	velocityY     float64
	alive         bool

	jumpCooldown float64
	animTimer    float64
	frame        int
	frames       [FrameCount]Sprite

	physics config.PhysicsConfig
}

// NewPlayerBody creates a living player at its spawn position.
func NewPlayerBody(pc config.PlayerConfig, phys config.PhysicsConfig) PlayerBody {
	return PlayerBody{
		x:       pc.X,
		y:       pc.Y,
		width:   pc.Width,
		height:  pc.Height,
		alive:   true,
		frames:  DefaultFrames,
		physics: phys,
	}
}

// Integrate advances physics, cooldown and animation by dt seconds.
// A dead player does not move.
func (p *PlayerBody) Integrate(dt float64) {
	if !p.alive {
		return
	}

	p.velocityY += p.physics.Gravity * dt
	p.y -= p.velocityY * dt

	if p.jumpCooldown > 0 {
		p.jumpCooldown -= dt
	}

	p.animTimer += dt
	if p.animTimer >= p.physics.AnimationInterval {
		p.animTimer = 0
		p.frame = (p.frame + 1) % FrameCount
	}
}

// Jump applies the upward impulse when the cooldown has elapsed.
// It reports whether the impulse was applied.
func (p *PlayerBody) Jump() bool {
	if !p.alive || p.jumpCooldown > 0 {
		return false
	}
	p.velocityY = -p.physics.JumpImpulse
	p.jumpCooldown = p.physics.JumpCooldown
	return true
}

// Kill stops the player. Calling it again has no effect.
func (p *PlayerBody) Kill() {
	p.alive = false
}

// Alive reports whether the player still responds to physics.
func (p PlayerBody) Alive() bool { return p.alive }

// X returns the horizontal centre.
func (p PlayerBody) X() float64 { return p.x }

// Y returns the vertical centre.
func (p PlayerBody) Y() float64 { return p.y }

// VelocityY returns the vertical velocity; positive means falling.
func (p PlayerBody) VelocityY() float64 { return p.velocityY }

// JumpCooldown returns the seconds left before the next jump is allowed.
func (p PlayerBody) JumpCooldown() float64 { return p.jumpCooldown }

// Frame returns the current animation frame index.
func (p PlayerBody) Frame() int { return p.frame }

// Sprite returns the sprite of the current frame.
func (p PlayerBody) Sprite() Sprite { return p.frames[p.frame] }

// Box returns the hitbox in world units.
func (p PlayerBody) Box() core.Box {
	return core.Box{CX: p.x, CY: p.y, W: p.width, H: p.height}
}
