package snake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// testConfig returns the default config with invariant checks on.
func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.DebugInvariants = true
	return cfg
}

// chain builds a snake from cells, head first, with the head facing d.
func chain(d Direction, cells ...Cell) *Snake {
	segs := make([]Segment, len(cells))
	for i, c := range cells {
		segs[i] = Segment{Cell: c, Role: BodyRole()}
	}
	segs[0].Role = HeadRole(d)
	return &Snake{segs: segs}
}

// startedGame returns a game in a running Normal round.
func startedGame(t *testing.T, cfg config.Config, seed int64) *Game {
	t.Helper()
	g := New(cfg, seed)
	events := g.Start(config.DifficultyNormal)
	require.Len(t, events, 1)
	require.Equal(t, EventRoundStarted, events[0].Kind)
	require.True(t, g.State().Playing())
	return g
}

// place replaces the round's snake and food.
func place(g *Game, s *Snake, food Cell) {
	g.snake = s
	g.score = s.Len() - 1
	g.food, g.hasFood = food, true
	g.hasPending = false
}

func requireSound(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.snake.Validate())
	if g.hasFood {
		require.False(t, g.snake.Occupies(g.food), "food %s on snake", g.food)
		require.True(t, g.grid.Contains(g.food), "food %s outside grid", g.food)
	}
	require.Equal(t, g.snake.Len()-1, g.Score())
}
