package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Cells:    17,
			NodeSize: 36,
		},
		Timing: TimingConfig{
			Easy:       1.0,
			Normal:     0.6,
			Hard:       0.3,
			FrameRate:  60,
			MaxCatchUp: 5,
		},
		Snake: SnakeConfig{
			StartDirection: "down",
		},
		Food: FoodConfig{
			MaxAttempts: 256,
		},
		AllowQuit: true,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
