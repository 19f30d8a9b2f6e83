// Package config provides YAML/TOML game configuration loading and the
// milestone difficulty ramp.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables of the game.
type Config struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FieldConfig is the size of the playing field in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines player physics. Times are in seconds.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse       float64 `yaml:"jump_impulse" toml:"jump_impulse"` // Magnitude; applied upward
	JumpCooldown      float64 `yaml:"jump_cooldown" toml:"jump_cooldown"`
	AnimationInterval float64 `yaml:"animation_interval" toml:"animation_interval"`
}

// PlayerConfig defines the player's spawn position and hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ObstacleConfig defines obstacle geometry and spawning.
type ObstacleConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	GapSize       float64 `yaml:"gap_size" toml:"gap_size"`
	GapMargin     float64 `yaml:"gap_margin" toml:"gap_margin"` // Distance kept between gap centre and field edge
	SpawnInterval float64 `yaml:"spawn_interval" toml:"spawn_interval"`
}

// DifficultyConfig defines the milestone ramp.
type DifficultyConfig struct {
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment" toml:"speed_increment"`
	MilestoneEvery int     `yaml:"milestone_every" toml:"milestone_every"`
}

// Preset is a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a CLI value to a Preset. The empty string means no preset.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "", PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// ApplyPreset adjusts the ramp for a difficulty preset.
// Normal keeps the configured values; fixed disables speed increases while
// milestones still toggle the theme.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Difficulty.BaseSpeed *= 0.75
		cfg.Difficulty.SpeedIncrement *= 0.5
	case PresetHard:
		cfg.Difficulty.BaseSpeed *= 1.3
		cfg.Difficulty.SpeedIncrement *= 1.5
	case PresetFixed:
		cfg.Difficulty.SpeedIncrement = 0
	}
}

// Validate reports the first setting that would make the game unplayable.
func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("config: gravity must not be negative, got %g", c.Physics.Gravity)
	case c.Physics.JumpCooldown < 0:
		return fmt.Errorf("config: jump_cooldown must not be negative, got %g", c.Physics.JumpCooldown)
	case c.Physics.AnimationInterval <= 0:
		return fmt.Errorf("config: animation_interval must be positive, got %g", c.Physics.AnimationInterval)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("config: obstacle width must be positive, got %g", c.Obstacles.Width)
	case c.Obstacles.GapSize <= 0:
		return fmt.Errorf("config: gap_size must be positive, got %g", c.Obstacles.GapSize)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("config: spawn_interval must be positive, got %g", c.Obstacles.SpawnInterval)
	case c.Obstacles.GapMargin < 0 || 2*c.Obstacles.GapMargin > c.Field.Height:
		return fmt.Errorf("config: gap_margin %g does not fit a field of height %g", c.Obstacles.GapMargin, c.Field.Height)
	case c.Difficulty.BaseSpeed <= 0:
		return fmt.Errorf("config: base_speed must be positive, got %g", c.Difficulty.BaseSpeed)
	case c.Difficulty.SpeedIncrement < 0:
		return fmt.Errorf("config: speed_increment must not be negative, got %g", c.Difficulty.SpeedIncrement)
	case c.Difficulty.MilestoneEvery <= 0:
		return fmt.Errorf("config: milestone_every must be positive, got %d", c.Difficulty.MilestoneEvery)
	}
	return nil
}
