package snake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestCanSteer(t *testing.T) {
	// Travelling right with the body to the left.
	s := chain(DirRight, Cell{0, 0}, Cell{-1, 0}, Cell{-2, 0})

	require.False(t, CanSteer(s, DirLeft), "reversal onto the body")
	require.True(t, CanSteer(s, DirRight))
	require.True(t, CanSteer(s, DirUp))
	require.True(t, CanSteer(s, DirDown))
}

func TestCanSteerWithoutBody(t *testing.T) {
	for _, role := range []Role{UnknownRole(), HeadRole(DirRight)} {
		s := NewSnake(Cell{}, role)
		for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
			require.True(t, CanSteer(s, d), "role %s dir %s", role, d)
		}
	}
}

func TestCanSteerUsesNeckPosition(t *testing.T) {
	// Heading says up but the neck is below: only down is blocked.
	s := chain(DirUp, Cell{0, 0}, Cell{0, -1})
	require.False(t, CanSteer(s, DirDown))
	require.True(t, CanSteer(s, DirLeft))
}

func TestResolveIntentPriority(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    Direction
		found   bool
	}{
		{"none", nil, 0, false},
		{"pause only", []core.Action{core.ActionPause}, 0, false},
		{"left", []core.Action{core.ActionLeft}, DirLeft, true},
		{"left and right", []core.Action{core.ActionRight, core.ActionLeft}, DirRight, true},
		{"right and up", []core.Action{core.ActionRight, core.ActionUp}, DirUp, true},
		{"all four", []core.Action{core.ActionDown, core.ActionUp, core.ActionRight, core.ActionLeft}, DirDown, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			for _, a := range tc.actions {
				frame.Set(a)
			}
			d, ok := ResolveIntent(frame)
			require.Equal(t, tc.found, ok)
			if tc.found {
				require.Equal(t, tc.want, d)
			}
		})
	}
}

func TestDirectionHelpers(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		require.Equal(t, d, d.Opposite().Opposite())
		require.Equal(t, Cell{}, Cell{}.Add(d).Add(d.Opposite()))
		parsed, ok := ParseDirection(d.String())
		require.True(t, ok)
		require.Equal(t, d, parsed)
	}
	require.Equal(t, Cell{0, 1}, Cell{}.Add(DirUp), "up increases y")
	_, ok := ParseDirection("none")
	require.False(t, ok)
}
