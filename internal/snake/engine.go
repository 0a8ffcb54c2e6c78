package snake

// Collision describes why a move ended the round.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionBoundary
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionBoundary:
		return "boundary"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// FoodAhead reports whether food sits on the cell the head is about to enter.
// A head without a heading never eats.
func FoodAhead(s *Snake, food Cell) bool {
	d, ok := s.Head().Role.Direction()
	if !ok {
		return false
	}
	return s.Head().Cell.Add(d) == food
}

// Move advances the snake by one cell and checks the result.
// A boundary breach leaves the head on the outside cell. A self hit is
// reported with the chain left where it was, so no two segments ever share
// a cell. A head without a heading stays put.
func Move(s *Snake, grid Grid) Collision {
	prev := s.advance()
	if prev == nil {
		return CollisionNone
	}
	head := s.Head().Cell
	if !grid.Contains(head) {
		return CollisionBoundary
	}
	if s.BodyHit(head) {
		s.restore(prev)
		return CollisionSelf
	}
	return CollisionNone
}
