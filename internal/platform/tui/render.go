package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// cellWidth is how many terminal columns one grid cell occupies.
const cellWidth = 2

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// HUD carries host-side information drawn next to the board.
type HUD struct {
	HighScore int
	AllowQuit bool
}

// boardLayout places the grid on the screen.
type boardLayout struct {
	half int
	box  core.Rect // frame including the border
}

func layoutBoard(s *core.Screen, half int) boardLayout {
	side := 2*half + 1
	w := side*cellWidth + 2
	h := side + 2
	x := max((s.Width()-w)/2, 0)
	y := max((s.Height()-h)/2, 1) // row 0 holds the status line
	return boardLayout{half: half, box: core.NewRect(x, y, w, h)}
}

// cellPos returns the screen column and row of a grid cell. Up is +Y on the
// grid and toward row 0 on screen.
func (l boardLayout) cellPos(c snake.Cell) (col, row int) {
	col = l.box.X + 1 + (c.X+l.half)*cellWidth
	row = l.box.Y + 1 + (l.half - c.Y)
	return col, row
}

func (l boardLayout) centerRow() int {
	return l.box.Y + l.box.H/2
}

// DrawView draws one frame of the game into s.
func DrawView(s *core.Screen, v snake.View, hud HUD) {
	s.Clear()
	layout := layoutBoard(s, v.HalfExtent)

	drawStatus(s, v, hud)
	s.DrawBox(layout.box, core.ColorGray)

	if v.HasFood && v.State.App == snake.AppInGame {
		col, row := layout.cellPos(v.Food)
		s.SetColored(col, row, '●', core.ColorRed)
	}

	// Tail first so the head wins if a boundary breach left it on the frame.
	for i := len(v.Segments) - 1; i >= 0; i-- {
		seg := v.Segments[i]
		col, row := layout.cellPos(seg.Cell)
		if seg.Role.Leading() {
			s.DrawTextColored(col, row, "██", core.ColorBrightGreen)
		} else {
			s.DrawTextColored(col, row, "▓▓", core.ColorGreen)
		}
	}

	switch {
	case v.State.InMenu():
		drawMenu(s, layout, hud)
	case v.State.Over():
		drawGameOver(s, layout, v)
	case v.Paused:
		s.DrawTextCentered(layout.centerRow(), " PAUSED ", core.ColorYellow)
	}
}

func drawStatus(s *core.Screen, v snake.View, hud HUD) {
	status := fmt.Sprintf("Score: %d  Best: %d", v.Score, max(hud.HighScore, v.Score))
	if !v.State.InMenu() {
		status += fmt.Sprintf("  Difficulty: %s", v.Difficulty)
	}
	s.DrawTextCentered(0, status, core.ColorBrightWhite)
}

func drawMenu(s *core.Screen, l boardLayout, hud HUD) {
	row := l.centerRow() - 3
	s.DrawTextCentered(row, "S N A K E", core.ColorBrightGreen)
	s.DrawTextCentered(row+2, "[E] Easy  [N] Normal  [H] Hard", core.ColorBrightWhite)
	s.DrawTextCentered(row+4, "[Tab] Scores", core.ColorCyan)
	if hud.AllowQuit {
		s.DrawTextCentered(row+5, "[Q] Quit", core.ColorCyan)
	}
}

func drawGameOver(s *core.Screen, l boardLayout, v snake.View) {
	row := l.centerRow() - 2
	s.DrawTextCentered(row, " GAME OVER ", core.ColorRed)
	s.DrawTextCentered(row+1, fmt.Sprintf(" Score: %d ", v.Score), core.ColorBrightWhite)
	s.DrawTextCentered(row+2, " "+reasonText(v.Reason)+" ", core.ColorGray)
	s.DrawTextCentered(row+4, " [E/N/H] Play again  [Tab] Scores ", core.ColorCyan)
}

func reasonText(r snake.OverReason) string {
	switch r {
	case snake.ReasonBoundary:
		return "Hit the wall"
	case snake.ReasonSelf:
		return "Bit your own tail"
	case snake.ReasonBoardFull:
		return "Board full, you win!"
	default:
		return ""
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
