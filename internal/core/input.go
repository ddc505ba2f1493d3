package core

// Action is a discrete player intent, abstracted from physical key presses.
// Both engines consume the same vocabulary; each interprets it in its own way.
type Action int

const (
	ActionIdle      Action = iota
	ActionStart            // Enter - start, resume or restart
	ActionPause            // P - pause
	ActionTerminate        // Q - leave the game
	ActionLeft             // Left arrow
	ActionRight            // Right arrow
	ActionUp               // Up arrow - rotate (tetris) / turn up (snake)
	ActionDown             // Down arrow - soft drop (tetris) / turn down (snake)
	ActionAction           // X - hard drop (tetris) / speed-up hold (snake)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "Idle"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionTerminate:
		return "Terminate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Gameplay reports whether the action moves or transforms the playfield,
// as opposed to a control action (start/pause/terminate).
func (a Action) Gameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown, ActionAction:
		return true
	}
	return false
}

// Input is the single action delivered to an engine for one external tick.
// Hold qualifies ActionAction for the snake speed-up; other consumers ignore it.
type Input struct {
	Action Action
	Hold   bool
}

// Idle is the empty input.
var Idle = Input{Action: ActionIdle}

// Press builds an Input for a plain action.
func Press(a Action) Input {
	return Input{Action: a}
}
