package snake

// RoleKind tags the variant held by a Role.
type RoleKind uint8

const (
	// RoleUnknown is the role of a lone head that has never been given a heading.
	RoleUnknown RoleKind = iota
	// RoleHead is the leading segment; it carries the travel direction.
	RoleHead
	// RoleBody is any trailing segment.
	RoleBody
)

// Role is the tagged variant Head(direction) | Body | Unknown.
// The direction is meaningful only for RoleHead.
type Role struct {
	Kind RoleKind
	dir  Direction
}

// HeadRole returns Head(d).
func HeadRole(d Direction) Role {
	return Role{Kind: RoleHead, dir: d}
}

// BodyRole returns Body.
func BodyRole() Role {
	return Role{Kind: RoleBody}
}

// UnknownRole returns Unknown.
func UnknownRole() Role {
	return Role{Kind: RoleUnknown}
}

// Direction returns the heading of a Head role.
func (r Role) Direction() (Direction, bool) {
	if r.Kind != RoleHead {
		return 0, false
	}
	return r.dir, true
}

// Leading reports whether the role belongs at the front of the chain.
func (r Role) Leading() bool {
	return r.Kind == RoleHead || r.Kind == RoleUnknown
}

func (r Role) String() string {
	switch r.Kind {
	case RoleHead:
		return "head(" + r.dir.String() + ")"
	case RoleBody:
		return "body"
	default:
		return "unknown"
	}
}
