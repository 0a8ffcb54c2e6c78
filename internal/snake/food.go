package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// Spawner places food on a random free cell.
type Spawner struct {
	grid        Grid
	rng         *rand.Rand
	maxAttempts int
}

// NewSpawner creates a spawner drawing from rng.
// maxAttempts bounds the rejection-sampling phase.
func NewSpawner(grid Grid, rng *rand.Rand, maxAttempts int) *Spawner {
	return &Spawner{grid: grid, rng: rng, maxAttempts: maxAttempts}
}

// Spawn returns a uniformly random cell that is not in occupied.
//
// It first draws up to maxAttempts random cells and accepts the first free
// one. If every draw hits the snake it scans the grid for free cells and
// picks one of them, so a crowded board still resolves. ErrBoardFull is
// returned only when every cell is occupied.
func (sp *Spawner) Spawn(occupied map[Cell]struct{}) (Cell, error) {
	half := sp.grid.HalfExtent()
	span := sp.grid.Side()

	for range sp.maxAttempts {
		c := Cell{
			X: sp.rng.Intn(span) - half,
			Y: sp.rng.Intn(span) - half,
		}
		if _, taken := occupied[c]; !taken {
			return c, nil
		}
	}

	free := make([]Cell, 0, max(sp.grid.Area()-len(occupied), 0))
	for y := -half; y <= half; y++ {
		for x := -half; x <= half; x++ {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrBoardFull
	}
	return free[sp.rng.Intn(len(free))], nil
}
