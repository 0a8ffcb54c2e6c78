package snake

import "fmt"

// Segment is one cell occupied by the snake.
type Segment struct {
	Cell Cell
	Role Role
}

// Snake is the ordered chain of segments, head first.
// It always holds at least one segment.
type Snake struct {
	segs []Segment
}

// NewSnake creates a one-segment snake at cell with the given leading role.
func NewSnake(at Cell, role Role) *Snake {
	if !role.Leading() {
		role = UnknownRole()
	}
	return &Snake{segs: []Segment{{Cell: at, Role: role}}}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segs)
}

// Head returns the leading segment.
func (s *Snake) Head() Segment {
	return s.segs[0]
}

// Neck returns the cell of the segment directly behind the head.
func (s *Snake) Neck() (Cell, bool) {
	if len(s.segs) < 2 {
		return Cell{}, false
	}
	return s.segs[1].Cell, true
}

// Segments returns a copy of the chain, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segs))
	copy(out, s.segs)
	return out
}

// Cells returns the occupied cells, head first.
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.segs))
	for i, seg := range s.segs {
		out[i] = seg.Cell
	}
	return out
}

// Occupied returns the set of occupied cells.
func (s *Snake) Occupied() map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(s.segs))
	for _, seg := range s.segs {
		set[seg.Cell] = struct{}{}
	}
	return set
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.segs {
		if seg.Cell == c {
			return true
		}
	}
	return false
}

// BodyHit reports whether a Body segment sits on c.
func (s *Snake) BodyHit(c Cell) bool {
	for _, seg := range s.segs[1:] {
		if seg.Cell == c {
			return true
		}
	}
	return false
}

// setHeading gives the head a direction. An Unknown head becomes Head(d).
func (s *Snake) setHeading(d Direction) {
	s.segs[0].Role = HeadRole(d)
}

// grow turns the current head into Body and puts a new head on cell at,
// keeping the heading. The rest of the chain does not move.
func (s *Snake) grow(at Cell) {
	d, _ := s.segs[0].Role.Direction()
	s.segs[0].Role = BodyRole()
	s.segs = append(s.segs, Segment{})
	copy(s.segs[1:], s.segs[:len(s.segs)-1])
	s.segs[0] = Segment{Cell: at, Role: HeadRole(d)}
}

// advance moves the head one cell along its heading and lets every body
// segment take the cell its predecessor held before the move. The shift reads
// from a snapshot of the chain, which advance returns for restore.
// It returns nil without moving when the head has no heading yet.
func (s *Snake) advance() []Cell {
	d, ok := s.segs[0].Role.Direction()
	if !ok {
		return nil
	}
	prev := s.Cells()
	s.segs[0].Cell = prev[0].Add(d)
	for i := 1; i < len(s.segs); i++ {
		s.segs[i].Cell = prev[i-1]
	}
	return prev
}

// restore puts every segment back on the cells returned by advance.
func (s *Snake) restore(prev []Cell) {
	for i := range s.segs {
		s.segs[i].Cell = prev[i]
	}
}

// Validate checks the chain invariants: a single leading segment at the front,
// no two segments on one cell, and grid-adjacent neighbours.
func (s *Snake) Validate() error {
	if len(s.segs) == 0 {
		return fmt.Errorf("snake: empty chain")
	}
	if !s.segs[0].Role.Leading() {
		return fmt.Errorf("snake: segment 0 has role %s", s.segs[0].Role)
	}
	seen := make(map[Cell]int, len(s.segs))
	for i, seg := range s.segs {
		if i > 0 && seg.Role.Kind != RoleBody {
			return fmt.Errorf("snake: segment %d has role %s", i, seg.Role)
		}
		if j, dup := seen[seg.Cell]; dup {
			return fmt.Errorf("snake: segments %d and %d share cell %s", j, i, seg.Cell)
		}
		seen[seg.Cell] = i
		if i > 0 {
			if d := seg.Cell.Manhattan(s.segs[i-1].Cell); d != 1 {
				return fmt.Errorf("snake: segments %d and %d are %d cells apart", i-1, i, d)
			}
		}
	}
	return nil
}
