// Package config provides YAML-based game configuration loading for Cubibird.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunable parameters of the game.
// Distances are in world units; the renderer scales them onto the terminal.
type Config struct {
	Playfield  Playfield  `yaml:"playfield"`
	Player     Player     `yaml:"player"`
	Physics    Physics    `yaml:"physics"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Countdown  Countdown  `yaml:"countdown"`
	HighScores HighScores `yaml:"highscores"`
}

// Playfield defines the world rectangle and its ground bands.
type Playfield struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundMargin int `yaml:"ground_margin"` // Height of the top and bottom bands
}

// Player defines the controlled body and its hitbox.
type Player struct {
	StartX      int `yaml:"start_x"`
	Size        int `yaml:"size"`         // Sprite width and height
	HitboxInset int `yaml:"hitbox_inset"` // Offset of the hitbox from the sprite corner
	HitboxSize  int `yaml:"hitbox_size"`
}

// Physics defines integration constants.
type Physics struct {
	Gravity int `yaml:"gravity"` // Added to vertical velocity each tick
	Impulse int `yaml:"impulse"` // Vertical velocity set by a press (negative = up)
	TickMS  int `yaml:"tick_ms"`
}

// Obstacles defines obstacle pair geometry and cadence.
type Obstacles struct {
	Width      int `yaml:"width"`
	Gap        int `yaml:"gap"`
	Speed      int `yaml:"speed"`
	SpawnEvery int `yaml:"spawn_every"` // Ticks between pairs
}

// Countdown defines the pre-run countdown.
type Countdown struct {
	Seconds   int  `yaml:"seconds"`
	AutoStart bool `yaml:"auto_start"` // Begin counting right after a restart
}

// HighScores defines the in-memory leaderboard.
type HighScores struct {
	Capacity int `yaml:"capacity"`
}

// TickInterval returns the simulation tick period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Physics.TickMS) * time.Millisecond
}

// SplitRange returns the exclusive upper bound for the random split point
// of an obstacle pair: the vertical space left after both ground bands and
// the gap.
func (c Config) SplitRange() int {
	return c.Playfield.Height - 2*c.Playfield.GroundMargin - c.Obstacles.Gap
}

// Validate reports configuration values the game loop cannot run with.
func (c Config) Validate() error {
	var errs []error

	positive := []struct {
		name string
		v    int
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"player.size", c.Player.Size},
		{"player.hitbox_size", c.Player.HitboxSize},
		{"physics.tick_ms", c.Physics.TickMS},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap", c.Obstacles.Gap},
		{"obstacles.speed", c.Obstacles.Speed},
		{"obstacles.spawn_every", c.Obstacles.SpawnEvery},
		{"highscores.capacity", c.HighScores.Capacity},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.v))
		}
	}

	if c.Playfield.GroundMargin < 0 {
		errs = append(errs, fmt.Errorf("playfield.ground_margin must not be negative, got %d", c.Playfield.GroundMargin))
	}
	if c.Countdown.Seconds < 0 {
		errs = append(errs, fmt.Errorf("countdown.seconds must not be negative, got %d", c.Countdown.Seconds))
	}
	if c.SplitRange() <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.gap %d leaves no room in a playfield of height %d with ground margin %d",
			c.Obstacles.Gap, c.Playfield.Height, c.Playfield.GroundMargin))
	}
	if c.Player.Size+2*c.Playfield.GroundMargin >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("player.size %d does not fit between the ground bands", c.Player.Size))
	}
	if c.Player.HitboxInset < 0 || c.Player.HitboxInset+c.Player.HitboxSize > c.Player.Size {
		errs = append(errs, fmt.Errorf("hitbox (inset %d, size %d) must lie within the sprite of size %d",
			c.Player.HitboxInset, c.Player.HitboxSize, c.Player.Size))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
