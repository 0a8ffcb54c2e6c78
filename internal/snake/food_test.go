package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnAvoidsOccupied(t *testing.T) {
	grid := NewGrid(5, 1)
	sp := NewSpawner(grid, rand.New(rand.NewSource(7)), 64)

	occupied := map[Cell]struct{}{}
	for y := -2; y <= 2; y++ {
		for x := -2; x <= 1; x++ {
			occupied[Cell{x, y}] = struct{}{}
		}
	}

	for range 200 {
		c, err := sp.Spawn(occupied)
		require.NoError(t, err)
		require.Equal(t, 2, c.X, "only the right column is free")
		require.True(t, grid.Contains(c))
	}
}

func TestSpawnCoversWholeGrid(t *testing.T) {
	grid := NewGrid(3, 1)
	sp := NewSpawner(grid, rand.New(rand.NewSource(1)), 16)

	seen := map[Cell]bool{}
	for range 2000 {
		c, err := sp.Spawn(nil)
		require.NoError(t, err)
		seen[c] = true
	}
	require.Len(t, seen, 9, "every cell including the edges must be reachable")
}

func TestSpawnFallsBackToScan(t *testing.T) {
	grid := NewGrid(3, 1)
	sp := NewSpawner(grid, rand.New(rand.NewSource(3)), 0)

	occupied := map[Cell]struct{}{}
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			occupied[Cell{x, y}] = struct{}{}
		}
	}
	delete(occupied, Cell{1, -1})

	c, err := sp.Spawn(occupied)
	require.NoError(t, err)
	require.Equal(t, Cell{1, -1}, c)
}

func TestSpawnBoardFull(t *testing.T) {
	grid := NewGrid(3, 1)
	sp := NewSpawner(grid, rand.New(rand.NewSource(3)), 10)

	occupied := map[Cell]struct{}{}
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			occupied[Cell{x, y}] = struct{}{}
		}
	}

	_, err := sp.Spawn(occupied)
	require.True(t, errors.Is(err, ErrBoardFull))
}

func TestSpawnDeterministic(t *testing.T) {
	grid := NewGrid(17, 36)
	a := NewSpawner(grid, rand.New(rand.NewSource(99)), 256)
	b := NewSpawner(grid, rand.New(rand.NewSource(99)), 256)

	for range 50 {
		ca, _ := a.Spawn(nil)
		cb, _ := b.Spawn(nil)
		require.Equal(t, ca, cb)
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid(17, 36)
	require.Equal(t, 8, g.HalfExtent())
	require.Equal(t, 17, g.Side())
	require.Equal(t, 289, g.Area())
	require.True(t, g.Contains(Cell{8, -8}))
	require.False(t, g.Contains(Cell{9, 0}))
	require.False(t, g.Contains(Cell{0, -9}))

	x, y := g.WorldPos(Cell{2, -3})
	require.Equal(t, 72.0, x)
	require.Equal(t, -108.0, y)
}
