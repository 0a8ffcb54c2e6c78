// Package tui provides the Bubble Tea host for the snake game.
// It polls input once per frame, feeds elapsed time to the simulation and
// renders the result.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per polling pass.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
