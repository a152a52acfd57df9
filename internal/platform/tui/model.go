package tui

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rollball/internal/core"
	"github.com/vovakirdan/rollball/internal/games/rollball"
	"github.com/vovakirdan/rollball/internal/storage"
)

// messageTTL is how long an event message stays on the status line.
const messageTTL = 2 * time.Second

// ModelOptions configures a play session.
type ModelOptions struct {
	TickRate   int
	Player     string // recorded with finished runs
	CaptureDir string // where ctrl+s dumps go; empty uses DefaultCaptureDir
	Logger     *log.Logger
}

// Model is the Bubble Tea model for one rollball session.
type Model struct {
	game   *rollball.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	opts   ModelOptions

	keys KeyMap
	help help.Model
	held HeldInput

	snap         rollball.Snapshot
	last         time.Time
	width        int
	height       int
	message      string
	messageUntil time.Time
	quitting     bool
}

// NewModel creates a model driving game. store may be nil.
func NewModel(game *rollball.Game, store *storage.Store, width, height int, opts ModelOptions) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.CaptureDir == "" {
		opts.CaptureDir = DefaultCaptureDir()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if store != nil {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("cannot load high score", "error", err)
		}
		game.SeedHighScore(best)
	}

	h := help.New()
	h.Width = width

	return Model{
		game:   game,
		screen: core.NewScreen(width, max(height-1, 0)),
		store:  store,
		logger: logger,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		held:   NewHeldInput(holdWindow),
		snap:   game.Snapshot(),
		width:  width,
		height: height,
	}
}

// Snapshot returns the latest session snapshot.
func (m Model) Snapshot() rollball.Snapshot {
	return m.snap
}

// Init names the terminal window and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.opts.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Capture) {
		m.capture(now)
		return m, nil
	}

	if m.snap.Phase == rollball.PhaseHelp {
		if key.Matches(msg, m.keys.Quit) {
			return m.apply(core.ActionQuit)
		}
		return m.apply(core.ActionCloseHelp)
	}

	if m.held.Press(m.keys, msg, now) {
		return m, nil
	}
	return m.apply(m.keys.Action(msg))
}

func (m Model) apply(a core.Action) (tea.Model, tea.Cmd) {
	if a == core.ActionNone {
		return m, nil
	}

	prev := m.snap
	m.snap = m.game.Apply(a)

	if midRun(prev.Phase) && (a == core.ActionRestart || m.snap.Phase == rollball.PhaseMenu || m.snap.Quit) {
		m.recordRun(prev, storage.OutcomeQuit)
	}
	if a == core.ActionStartGame || a == core.ActionRestart {
		m.held.Release()
	}

	if m.snap.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	prev := m.snap
	m.snap = m.game.Tick(dt, m.held.Frame(now))

	for _, e := range m.snap.Events {
		m.setMessage(e.Message(), now)
	}
	if !m.messageUntil.IsZero() && now.After(m.messageUntil) {
		m.message = ""
		m.messageUntil = time.Time{}
	}

	if !finished(prev.Phase) && finished(m.snap.Phase) {
		outcome := storage.OutcomeGameOver
		if m.snap.Phase == rollball.PhaseWin {
			outcome = storage.OutcomeWin
		}
		m.recordRun(m.snap, outcome)
	}

	return m, tickCmd(m.opts.TickRate)
}

func (m *Model) setMessage(text string, now time.Time) {
	if text == "" {
		return
	}
	m.message = text
	m.messageUntil = now.Add(messageTTL)
}

// recordRun stores a finished run. Abandoned runs without points are skipped.
func (m *Model) recordRun(snap rollball.Snapshot, outcome storage.Outcome) {
	if m.store == nil || (outcome == storage.OutcomeQuit && snap.Score <= 0) {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Player:  m.opts.Player,
		Score:   snap.Score,
		Level:   snap.Level,
		Outcome: outcome,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "player", m.opts.Player, "score", snap.Score, "level", snap.Level, "outcome", outcome)
}

// capture dumps the current snapshot for offline inspection.
func (m *Model) capture(now time.Time) {
	path, err := SaveCapture(m.opts.CaptureDir, m.snap, now)
	if err != nil {
		m.logger.Warn("capture failed", "error", err)
		m.setMessage("capture failed", now)
		return
	}
	m.logger.Info("state captured", "path", path)
	m.setMessage("captured "+filepath.Base(path), now)
}

func midRun(p rollball.Phase) bool {
	return p == rollball.PhasePlaying || p == rollball.PhasePaused
}

func finished(p rollball.Phase) bool {
	return p == rollball.PhaseGameOver || p == rollball.PhaseWin
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snap.Phase == rollball.PhaseHelp {
		return m.helpView()
	}

	DrawSnapshot(m.screen, m.snap, m.message)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) helpView() string {
	h := m.help
	h.ShowAll = true

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("HOW TO PLAY")
	body := "Roll over every ◆ and ★ to clear the level.\n" +
		"Holes and ▲ obstacles cost a life; a shield absorbs one hit.\n" +
		"Staying on one tile too long also costs a life.\n" +
		"» speeds you up, « slows you down, ⌛ buys time, ♥ adds a life,\n" +
		"× doubles points, ◊ grants a shield, ◎ teleports."
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("press any key")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(title + "\n\n" + body + "\n\n" + h.View(m.keys) + "\n\n" + footer)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// Run starts a local Bubble Tea program for the given session.
func Run(game *rollball.Game, store *storage.Store, width, height int, opts ModelOptions) error {
	model := NewModel(game, store, width, height, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
