package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognized names.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty selects the fixed tick interval of a round.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all presets from slowest to fastest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a user-supplied name into a preset.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownDifficulty, s)
	}
}

// Interval returns the fixed tick interval for a preset.
// Unknown presets fall back to Normal.
func (t TimingConfig) Interval(d Difficulty) time.Duration {
	switch d {
	case DifficultyEasy:
		return t.Easy.Duration()
	case DifficultyHard:
		return t.Hard.Duration()
	default:
		return t.Normal.Duration()
	}
}
