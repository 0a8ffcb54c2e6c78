package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresDifficulty  string
	flagScoresInteractive bool
	flagScoresStats       bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 finished rounds.

Examples:
  snake scores
  snake scores --difficulty hard
  snake scores --stats
  snake scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one difficulty")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse the leaderboard in a TUI")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-difficulty statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete recorded rounds (respects --difficulty)")
}

func runScores(_ *cobra.Command, _ []string) error {
	difficulty := ""
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			return err
		}
		difficulty = string(d)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(difficulty); err != nil {
			return err
		}
		fmt.Println("Leaderboard cleared.")
		return nil

	case flagScoresInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)

	case flagScoresStats:
		return printStats(store)
	}

	scores, err := store.TopScores(difficulty, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-10s  %s\n", "Rank", "Score", "Length", "Level", "Ended", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "------", "-----", "-----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-8s  %-10s  %s\n",
			i+1, e.Score, e.Length, e.Difficulty, e.Reason, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(difficulty); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %-7s  %s\n", "Level", "Rounds", "Best", "Average", "Longest", "Last played")
	for _, k := range keys {
		s := stats[k]
		fmt.Printf("  %-8s  %-6d  %-6d  %-7.1f  %-7d  %s\n",
			s.Difficulty, s.RoundsCount, s.HighScore, s.AvgScore, s.LongestLen, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
