package core

// Action represents a semantic game command, abstracted from physical key presses.
// Every action is a discrete event: there is no held-key repeat in the game.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow - move one row towards the goal
	ActionDown         // S, J, Down arrow - move one row back
	ActionLeft         // A, H, Left arrow - move one column left
	ActionRight        // D, L, Right arrow - move one column right
	ActionStart        // Enter, Space - start a game
	ActionStop         // X - abort the running game
	ActionReset        // R - stop and start again
	ActionHelp         // ? - toggle the full help view
	ActionQuit         // Q, Ctrl+C - exit
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
	case ActionStart:
		return "Start"
	case ActionStop:
		return "Stop"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement returns true for the four directional actions.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// IsSessionCommand returns true for start, stop and reset.
func (a Action) IsSessionCommand() bool {
	return a == ActionStart || a == ActionStop || a == ActionReset
}
