package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionSelect         // Enter, Space - select the cell under the cursor
	ActionRestart        // R - start over from level 1
	ActionNext           // N - skip the level-cleared banner
	ActionHelp           // ? - toggle the full help view
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionSelect:
		return "Select"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor offset of a direction action, or (0, 0).
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// IsDirection reports whether the action moves the cursor.
func (a Action) IsDirection() bool {
	dx, dy := a.Delta()
	return dx != 0 || dy != 0
}
