package snake

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// View is everything a renderer needs to draw one frame.
type View struct {
	State      GameState
	Paused     bool
	Difficulty config.Difficulty
	Score      int
	Segments   []Segment // Head first; nil before the first round
	Food       Cell
	HasFood    bool
	HalfExtent int
	Reason     OverReason
}

// View returns the renderable state.
func (g *Game) View() View {
	return View{
		State:      g.state,
		Paused:     g.pause.Effective(),
		Difficulty: g.difficulty,
		Score:      g.score,
		Segments:   g.Segments(),
		Food:       g.food,
		HasFood:    g.hasFood,
		HalfExtent: g.grid.HalfExtent(),
		Reason:     g.reason,
	}
}

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick       uint64
	Round      uuid.UUID
	Difficulty config.Difficulty
	Interval   time.Duration
	State      string
	Paused     bool
	Score      int
	SnakeLen   int
	HeadX      int
	HeadY      int
	HeadRole   string
	FoodX      int
	FoodY      int
	HasFood    bool
	Reason     string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Round:      g.round,
		Difficulty: g.difficulty,
		Interval:   g.sched.Interval(),
		State:      g.state.String(),
		Paused:     g.pause.Effective(),
		Score:      g.score,
		FoodX:      g.food.X,
		FoodY:      g.food.Y,
		HasFood:    g.hasFood,
		Reason:     g.reason.String(),
	}
	if g.snake != nil {
		head := g.snake.Head()
		snap.SnakeLen = g.snake.Len()
		snap.HeadX = head.Cell.X
		snap.HeadY = head.Cell.Y
		snap.HeadRole = head.Role.String()
	}
	return snap
}
