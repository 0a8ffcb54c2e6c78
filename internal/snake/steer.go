package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// CanSteer reports whether heading d is legal for s: the head may not turn
// onto the segment right behind it. A snake without body accepts any heading.
func CanSteer(s *Snake, d Direction) bool {
	neck, ok := s.Neck()
	if !ok {
		return true
	}
	return s.Head().Cell.Add(d) != neck
}

// intentOrder is the order held directions are evaluated in; later entries
// overwrite earlier ones.
var intentOrder = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
}

// ResolveIntent picks the requested direction from a frame. When several
// directions are held the last one in Left, Right, Up, Down order wins.
func ResolveIntent(frame core.InputFrame) (Direction, bool) {
	var (
		dir   Direction
		found bool
	)
	for _, in := range intentOrder {
		if frame.Has(in.action) {
			dir, found = in.dir, true
		}
	}
	return dir, found
}
