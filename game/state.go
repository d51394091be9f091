package game

import "fmt"

// State is the controller's lifecycle state.
type State uint8

const (
	// Idle is the pre-game state, before the first Start.
	Idle State = iota
	// Running means gravity and input are live.
	Running
	// Ended follows a top-out. Only Restart leaves it.
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// MarshalText renders the state name, so reports encode it readably.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
