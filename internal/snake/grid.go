package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Grid is the square playable area. Valid cells satisfy |x| <= half and |y| <= half.
type Grid struct {
	half     int
	nodeSize float64
}

// NewGrid creates a grid with the given number of cells per side (odd) and
// the visual size of one cell.
func NewGrid(cells int, nodeSize float64) Grid {
	return Grid{half: cells / 2, nodeSize: nodeSize}
}

// HalfExtent returns the largest coordinate magnitude inside the grid.
func (g Grid) HalfExtent() int {
	return g.half
}

// Side returns the number of cells per side.
func (g Grid) Side() int {
	return 2*g.half + 1
}

// Bounds returns the grid as a rectangle in cell coordinates.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(-g.half, -g.half, g.Side(), g.Side())
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Bounds().Area()
}

// Contains reports whether the cell lies inside the boundary.
func (g Grid) Contains(c Cell) bool {
	return g.Bounds().Contains(c.X, c.Y)
}

// WorldPos returns the visual coordinates of a cell's center for renderers
// that work in continuous space.
func (g Grid) WorldPos(c Cell) (x, y float64) {
	return float64(c.X) * g.nodeSize, float64(c.Y) * g.nodeSize
}
