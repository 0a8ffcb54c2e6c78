package core

// Action represents a logical intent, abstracted from physical key presses.
// Hosts translate their devices into actions; the simulation never sees keys.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow
	ActionDown               // S, Down arrow
	ActionLeft               // A, Left arrow
	ActionRight              // D, Right arrow
	ActionPause              // Space - toggle pause while playing
	ActionStartEasy          // E - start a round at Easy
	ActionStartNormal        // N - start a round at Normal
	ActionStartHard          // H - start a round at Hard
	ActionQuit               // Q - leave from the menu or game over screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionStartEasy:
		return "StartEasy"
	case ActionStartNormal:
		return "StartNormal"
	case ActionStartHard:
		return "StartHard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions observed during one polling pass.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
