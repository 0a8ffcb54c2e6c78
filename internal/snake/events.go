package snake

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// EventKind identifies what happened during a call into the game.
type EventKind int

const (
	EventRoundStarted EventKind = iota
	EventAte
	EventGameOver
	EventPaused
	EventResumed
)

func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "round_started"
	case EventAte:
		return "ate"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// OverReason explains why a round ended.
type OverReason int

const (
	ReasonNone OverReason = iota
	ReasonBoundary
	ReasonSelf
	ReasonBoardFull
)

func (r OverReason) String() string {
	switch r {
	case ReasonBoundary:
		return "boundary"
	case ReasonSelf:
		return "self"
	case ReasonBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

func reasonFor(c Collision) OverReason {
	switch c {
	case CollisionBoundary:
		return ReasonBoundary
	case CollisionSelf:
		return ReasonSelf
	default:
		return ReasonNone
	}
}

// Event reports a state change to the host.
type Event struct {
	Kind       EventKind
	Round      uuid.UUID
	Difficulty config.Difficulty
	Tick       uint64
	Score      int
	Length     int
	Cell       Cell       // Eaten food cell for EventAte
	Reason     OverReason // Set for EventGameOver
}
