package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rollball/internal/core"
)

// holdWindow is how long a movement key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const holdWindow = 250 * time.Millisecond

// KeyMap defines the key bindings for a rollball session.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Theme   key.Binding
	Camera  key.Binding
	Menu    key.Binding
	Capture key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Jump, k.Pause, k.Restart, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Jump},
		{k.Start, k.Pause, k.Restart, k.Menu},
		{k.Theme, k.Camera, k.Capture, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "roll north"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "roll south"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "roll west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "roll east"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Camera: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "camera"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "esc"),
			key.WithHelp("m/esc", "menu"),
		),
		Capture: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "capture state"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key to a discrete game action. Movement, jump and
// capture keys are not actions and map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStartGame
	case key.Matches(msg, k.Pause):
		return core.ActionPauseToggle
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionOpenHelp
	case key.Matches(msg, k.Theme):
		return core.ActionCycleTheme
	case key.Matches(msg, k.Camera):
		return core.ActionCycleCamera
	case key.Matches(msg, k.Menu):
		return core.ActionOpenMenu
	}
	return core.ActionNone
}

// HeldInput turns key presses into a continuous input frame by treating each
// key as held for a short window after its last press or repeat.
type HeldInput struct {
	window time.Duration

	up, down, left, right, jump time.Time
}

// NewHeldInput creates a tracker with the given hold window.
func NewHeldInput(window time.Duration) HeldInput {
	return HeldInput{window: window}
}

// Press records a movement or jump key. It reports whether the key was one.
func (h *HeldInput) Press(k KeyMap, msg tea.KeyMsg, now time.Time) bool {
	switch {
	case key.Matches(msg, k.Up):
		h.up = now
		h.down = time.Time{}
	case key.Matches(msg, k.Down):
		h.down = now
		h.up = time.Time{}
	case key.Matches(msg, k.Left):
		h.left = now
		h.right = time.Time{}
	case key.Matches(msg, k.Right):
		h.right = now
		h.left = time.Time{}
	case key.Matches(msg, k.Jump):
		h.jump = now
	default:
		return false
	}
	return true
}

// Release forgets every held key.
func (h *HeldInput) Release() {
	*h = HeldInput{window: h.window}
}

// Frame samples the input state at the given time. North is +Y.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	var f core.InputFrame
	if h.held(h.right, now) {
		f.MoveX++
	}
	if h.held(h.left, now) {
		f.MoveX--
	}
	if h.held(h.up, now) {
		f.MoveY++
	}
	if h.held(h.down, now) {
		f.MoveY--
	}
	f.JumpHeld = h.held(h.jump, now)
	return f
}

func (h *HeldInput) held(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) <= h.window
}
