package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestCellPosUpIsTowardTop(t *testing.T) {
	s := core.NewScreen(80, 24)
	l := layoutBoard(s, 8)

	col, row := l.cellPos(snake.Cell{X: -8, Y: 8})
	if col != l.box.X+1 || row != l.box.Y+1 {
		t.Errorf("top-left cell at (%d,%d), want (%d,%d)", col, row, l.box.X+1, l.box.Y+1)
	}

	_, up := l.cellPos(snake.Cell{X: 0, Y: 1})
	_, down := l.cellPos(snake.Cell{X: 0, Y: -1})
	if up >= down {
		t.Errorf("cell above origin drawn at row %d, below at row %d", up, down)
	}

	right, _ := l.cellPos(snake.Cell{X: 1, Y: 0})
	left, _ := l.cellPos(snake.Cell{X: 0, Y: 0})
	if right-left != cellWidth {
		t.Errorf("adjacent cells %d columns apart, want %d", right-left, cellWidth)
	}
}

func TestDrawViewPlaysRound(t *testing.T) {
	g := snake.New(config.DefaultConfig(), 1)
	g.Start(config.DifficultyNormal)

	s := core.NewScreen(80, 24)
	DrawView(s, g.View(), HUD{HighScore: 7})

	if !strings.Contains(s.Row(0), "Best: 7") {
		t.Errorf("status line missing high score: %q", s.Row(0))
	}

	l := layoutBoard(s, g.Grid().HalfExtent())
	col, row := l.cellPos(snake.Cell{})
	if got := s.Get(col, row); got != '█' {
		t.Errorf("head cell = %q, want '█'", got)
	}

	food, _ := g.Food()
	col, row = l.cellPos(food)
	if got := s.Get(col, row); got != '●' {
		t.Errorf("food cell = %q, want '●'", got)
	}

	if s.Get(l.box.X, l.box.Y) != '┌' {
		t.Error("board frame not drawn")
	}
}

func TestDrawViewOverlays(t *testing.T) {
	g := snake.New(config.DefaultConfig(), 1)
	s := core.NewScreen(80, 24)

	DrawView(s, g.View(), HUD{AllowQuit: true})
	if !strings.Contains(s.String(), "[E] Easy") || !strings.Contains(s.String(), "[Q] Quit") {
		t.Error("menu overlay missing")
	}

	DrawView(s, g.View(), HUD{})
	if strings.Contains(s.String(), "[Q] Quit") {
		t.Error("quit hint shown while quitting is disabled")
	}

	g.Start(config.DifficultyNormal)
	g.TogglePause()
	DrawView(s, g.View(), HUD{})
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "snake", core.ColorGreen)
	s.DrawText(0, 1, "score")

	out := RenderScreen(s)
	if !strings.Contains(out, "snake") || !strings.Contains(out, "score") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
