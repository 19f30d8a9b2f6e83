package config

import (
	_ "embed"
)

//go:embed defaults/uffo.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:           800,
			JumpImpulse:       400,
			JumpCooldown:      0.5,
			AnimationInterval: 0.1,
		},
		Player: PlayerConfig{
			X:      200, // A quarter of the field
			Y:      300,
			Width:  50,
			Height: 30,
		},
		Obstacles: ObstacleConfig{
			Width:         80,
			GapSize:       200,
			GapMargin:     200,
			SpawnInterval: 2.0,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:      200,
			SpeedIncrement: 50,
			MilestoneEvery: 15,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
