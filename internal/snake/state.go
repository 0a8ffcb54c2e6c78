package snake

// AppState is the top-level screen the game is on.
type AppState int

const (
	AppMainMenu AppState = iota
	AppInGame
)

// InGameState is the phase of a round.
type InGameState int

const (
	// InGamePreparing exists only while a round is being rebuilt.
	InGamePreparing InGameState = iota
	InGamePlaying
	InGameGameOver
)

// GameState is the pair (AppState, InGameState).
type GameState struct {
	App    AppState
	InGame InGameState
}

// InMenu reports whether the main menu is showing.
func (s GameState) InMenu() bool {
	return s.App == AppMainMenu
}

// Playing reports whether a round is running.
func (s GameState) Playing() bool {
	return s.App == AppInGame && s.InGame == InGamePlaying
}

// Over reports whether the current round has ended.
func (s GameState) Over() bool {
	return s.App == AppInGame && s.InGame == InGameGameOver
}

// CanStart reports whether a start action is accepted in this state.
func (s GameState) CanStart() bool {
	return s.InMenu() || s.Over()
}

func (s GameState) String() string {
	if s.App == AppMainMenu {
		return "main_menu"
	}
	switch s.InGame {
	case InGamePlaying:
		return "playing"
	case InGameGameOver:
		return "game_over"
	default:
		return "preparing"
	}
}

// PauseState holds the two pause sources. Either one halts ticking.
type PauseState struct {
	User      bool // Toggled by the player
	FocusLost bool // Set while the host window is unfocused
}

// Effective returns the combined pause flag.
func (p PauseState) Effective() bool {
	return p.User || p.FocusLost
}
