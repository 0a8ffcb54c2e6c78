package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game session in the terminal.

Controls:
  Arrows/WASD   - Steer
  Space         - Pause
  E / N / H     - Start at Easy / Normal / Hard (menu and game over)
  Tab           - Leaderboard (menu and game over)
  Q             - Quit (menu and game over)
  Ctrl+C        - Exit immediately

Losing window focus pauses the game.

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu and start at easy, normal or hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var start config.Difficulty
	if flagDifficulty != "" {
		if start, err = config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	logOut, err := openLogFile()
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger, err := newLogger(logOut, "snake")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without leaderboard", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Seed:      flagSeed,
		},
		Store:  store,
		Logger: logger,
		Start:  start,
	})
}
