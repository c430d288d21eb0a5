package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow - shift piece one column left
	ActionRight          // Right arrow - shift piece one column right
	ActionDown           // Down arrow - drop one row immediately
	ActionRotate         // Up arrow - rotate clockwise
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action is a piece intent handled by the game
// itself rather than by the host.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionDown, ActionRotate:
		return true
	default:
		return false
	}
}
