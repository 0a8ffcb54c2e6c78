package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets",
	Long:  `Shows each difficulty preset and the step interval it plays at.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "ID", "Step")
	fmt.Printf("  %-8s  %s\n", "--", "----")
	for _, d := range config.Difficulties() {
		fmt.Printf("  %-8s  %s\n", d, cfg.Timing.Interval(d))
	}

	fmt.Println()
	fmt.Printf("Board: %dx%d cells\n", cfg.Board.Cells, cfg.Board.Cells)
	fmt.Println("Run 'snake play --difficulty <id>' to skip the menu.")
	return nil
}
