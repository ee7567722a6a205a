package config

import (
	_ "embed"
)

//go:embed defaults/cubibird.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/cubibird.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Playfield: Playfield{
			Width:        1280,
			Height:       720,
			GroundMargin: 70,
		},
		Player: Player{
			StartX:      100,
			Size:        70,
			HitboxInset: 12,
			HitboxSize:  15,
		},
		Physics: Physics{
			Gravity: 1,
			Impulse: -10,
			TickMS:  23,
		},
		Obstacles: Obstacles{
			Width:      80,
			Gap:        270,
			Speed:      5,
			SpawnEvery: 60,
		},
		Countdown: Countdown{
			Seconds:   3,
			AutoStart: true,
		},
		HighScores: HighScores{
			Capacity: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
