// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains all tunable parameters of the game.
type Config struct {
	Board           BoardConfig  `yaml:"board"`
	Timing          TimingConfig `yaml:"timing"`
	Snake           SnakeConfig  `yaml:"snake"`
	Food            FoodConfig   `yaml:"food"`
	AllowQuit       bool         `yaml:"allow_quit"`
	DebugInvariants bool         `yaml:"debug_invariants"`
}

// BoardConfig defines the playable grid.
type BoardConfig struct {
	Cells    int     `yaml:"cells"`     // Cells per side; odd so the grid centers on the origin
	NodeSize float64 `yaml:"node_size"` // Visual size of one cell, for renderers that need it
}

// HalfExtent returns the largest coordinate magnitude inside the board.
func (b BoardConfig) HalfExtent() int {
	return b.Cells / 2
}

// TimingConfig defines the fixed-step presets and the polling cadence.
type TimingConfig struct {
	Easy       Seconds `yaml:"easy"`
	Normal     Seconds `yaml:"normal"`
	Hard       Seconds `yaml:"hard"`
	FrameRate  int     `yaml:"frame_rate"`   // Input polling passes per second
	MaxCatchUp int     `yaml:"max_catch_up"` // Fixed steps allowed per polling pass
}

// SnakeConfig defines how a round's snake is created.
type SnakeConfig struct {
	// StartDirection is "up", "down", "left", "right" or "none".
	// "none" starts the head without a heading until the first steer.
	StartDirection string `yaml:"start_direction"`
}

// FoodConfig defines food placement limits.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random draws before falling back to a free-cell scan
}

// Seconds is a duration written as fractional seconds in YAML.
type Seconds float64

// Duration converts to time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Board.Cells < 3 || c.Board.Cells%2 == 0 {
		return fmt.Errorf("%w: board.cells must be odd and >= 3, got %d", ErrInvalidConfig, c.Board.Cells)
	}
	if c.Board.NodeSize <= 0 {
		return fmt.Errorf("%w: board.node_size must be positive", ErrInvalidConfig)
	}
	for _, d := range Difficulties() {
		if c.Timing.Interval(d) <= 0 {
			return fmt.Errorf("%w: timing.%s must be positive", ErrInvalidConfig, d)
		}
	}
	if c.Timing.FrameRate <= 0 {
		return fmt.Errorf("%w: timing.frame_rate must be positive", ErrInvalidConfig)
	}
	if c.Timing.MaxCatchUp <= 0 {
		return fmt.Errorf("%w: timing.max_catch_up must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Snake.StartDirection) {
	case "up", "down", "left", "right", "none":
	default:
		return fmt.Errorf("%w: snake.start_direction %q", ErrInvalidConfig, c.Snake.StartDirection)
	}
	if c.Food.MaxAttempts < 0 {
		return fmt.Errorf("%w: food.max_attempts must not be negative", ErrInvalidConfig)
	}
	return nil
}
