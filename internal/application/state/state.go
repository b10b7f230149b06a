package state

// GameState represents the current state of a play session
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
	StatePaused
	StateWon
	StateLost
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Ended reports whether the session is over
func (s GameState) Ended() bool {
	return s == StateWon || s == StateLost
}

// TogglePause switches between playing and paused. Other states are kept.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
