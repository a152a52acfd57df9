package core

import "math"

// Action represents a discrete intent consumed by the game state machine,
// abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionStartGame          // Enter - leave the menu and start a run
	ActionPauseToggle        // P - pause/unpause
	ActionRestart            // R - full reset and play again
	ActionOpenHelp           // H - show controls from the menu
	ActionCloseHelp          // any key while help is shown
	ActionCycleTheme         // T - next floor theme
	ActionCycleCamera        // C - next camera mode
	ActionOpenMenu           // M, Esc - back to the title menu
	ActionQuit               // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStartGame:
		return "StartGame"
	case ActionPauseToggle:
		return "PauseToggle"
	case ActionRestart:
		return "Restart"
	case ActionOpenHelp:
		return "OpenHelp"
	case ActionCloseHelp:
		return "CloseHelp"
	case ActionCycleTheme:
		return "CycleTheme"
	case ActionCycleCamera:
		return "CycleCamera"
	case ActionOpenMenu:
		return "OpenMenu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the continuous input state sampled for one simulation tick.
// MoveX and MoveY are each -1, 0 or 1.
type InputFrame struct {
	MoveX    int
	MoveY    int
	JumpHeld bool
}

// NoInput is the idle input frame.
var NoInput = InputFrame{}

// Direction returns the movement intent as a unit vector in the XY plane.
// Diagonal input is normalized so it is not faster than straight movement.
func (f InputFrame) Direction() (float64, float64) {
	x := float64(Clamp(f.MoveX, -1, 1))
	y := float64(Clamp(f.MoveY, -1, 1))
	if x == 0 && y == 0 {
		return 0, 0
	}
	l := math.Hypot(x, y)
	return x / l, y / l
}
