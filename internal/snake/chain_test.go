package snake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(Cell{}, HeadRole(DirDown))
	require.Equal(t, 1, s.Len())
	require.Equal(t, HeadRole(DirDown), s.Head().Role)
	_, ok := s.Neck()
	require.False(t, ok)

	// A body role cannot lead the chain.
	s = NewSnake(Cell{X: 2}, BodyRole())
	require.Equal(t, RoleUnknown, s.Head().Role.Kind)
	require.NoError(t, s.Validate())
}

func TestAdvanceFollowsTheLeader(t *testing.T) {
	s := chain(DirRight, Cell{0, 0}, Cell{-1, 0}, Cell{-2, 0})

	prev := s.advance()
	require.Equal(t, []Cell{{0, 0}, {-1, 0}, {-2, 0}}, prev)
	require.Equal(t, []Cell{{1, 0}, {0, 0}, {-1, 0}}, s.Cells())
	require.NoError(t, s.Validate())
}

func TestAdvanceAroundCorner(t *testing.T) {
	// L-shaped snake turning up.
	s := chain(DirUp, Cell{0, 0}, Cell{-1, 0}, Cell{-1, -1}, Cell{-1, -2})

	s.advance()
	require.Equal(t, []Cell{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}}, s.Cells())
	require.NoError(t, s.Validate())
}

func TestAdvanceWithoutHeading(t *testing.T) {
	s := NewSnake(Cell{3, 3}, UnknownRole())
	require.Nil(t, s.advance())
	require.Equal(t, Cell{3, 3}, s.Head().Cell)
}

func TestGrowKeepsBodyInPlace(t *testing.T) {
	s := chain(DirLeft, Cell{0, 0}, Cell{1, 0})

	s.grow(Cell{-1, 0})

	require.Equal(t, 3, s.Len())
	require.Equal(t, []Cell{{-1, 0}, {0, 0}, {1, 0}}, s.Cells())
	require.Equal(t, HeadRole(DirLeft), s.Head().Role)
	require.Equal(t, BodyRole(), s.Segments()[1].Role)
	require.NoError(t, s.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		snake *Snake
		ok    bool
	}{
		{"single head", NewSnake(Cell{}, HeadRole(DirUp)), true},
		{"straight", chain(DirUp, Cell{0, 1}, Cell{0, 0}, Cell{0, -1}), true},
		{"duplicate cell", chain(DirUp, Cell{0, 0}, Cell{0, 1}, Cell{0, 0}), false},
		{"gap", chain(DirUp, Cell{0, 0}, Cell{0, 2}), false},
		{"diagonal", chain(DirUp, Cell{0, 0}, Cell{1, 1}), false},
		{"body leads", &Snake{segs: []Segment{{Cell{}, BodyRole()}}}, false},
		{"two heads", &Snake{segs: []Segment{{Cell{0, 0}, HeadRole(DirUp)}, {Cell{0, -1}, HeadRole(DirUp)}}}, false},
		{"empty", &Snake{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.snake.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestOccupancy(t *testing.T) {
	s := chain(DirUp, Cell{0, 1}, Cell{0, 0})

	require.True(t, s.Occupies(Cell{0, 1}))
	require.False(t, s.BodyHit(Cell{0, 1}), "head is not body")
	require.True(t, s.BodyHit(Cell{0, 0}))
	require.Len(t, s.Occupied(), 2)

	segs := s.Segments()
	segs[0].Cell = Cell{9, 9}
	require.Equal(t, Cell{0, 1}, s.Head().Cell, "Segments must return a copy")
}
