package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
	"github.com/vovakirdan/brickgame/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
// Key presses are buffered and delivered to the engine on the next tick,
// one input per tick; a later key replaces an earlier one.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	keys    GameKeyMap
	help    help.Model
	pending core.Input
	hold    bool // Speed-up toggle carried by ActionAction
	frame   core.Frame
	ended   bool // Last frame showed a finished round
	last    int  // Score of the last finished round
	rounds  int
	width   int
	height  int

	quitting bool
}

// NewModel creates a model for game. store may be nil, in which case
// round scores are not recorded in the history.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  NewBoardScreen(),
		store:   store,
		logger:  logger,
		keys:    DefaultGameKeyMap(game.ID()),
		help:    help.New(),
		pending: core.Idle,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.Cadence())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.Lookup(msg)
	if action == core.ActionIdle {
		return m, nil
	}

	in := core.Press(action)
	if action == core.ActionAction {
		m.hold = !m.hold
		in.Hold = m.hold
	}
	m.pending = in
	return m, nil
}

// handleTick steps the engine once with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame = m.game.Step(m.pending)
	m.pending = core.Idle

	ended := m.frame.Over || m.frame.Won
	if ended && !m.ended {
		m.recordRound()
	}
	m.ended = ended

	if m.frame.Exit {
		m.logger.Debug("game exited", "game", m.game.ID(), "rounds", m.rounds)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.game.Cadence())
}

// recordRound logs the finished round and appends it to the score history.
func (m *Model) recordRound() {
	m.rounds++
	m.last = m.frame.LastScore
	m.hold = false

	outcome := "game over"
	if m.frame.Won {
		outcome = "win"
	}
	m.logger.Info(outcome, "game", m.game.ID(), "score", m.last, "high", m.frame.HighScore)

	if m.store == nil || m.last <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.last); err != nil {
		m.logger.Warn("could not record score", "game", m.game.ID(), "error", err)
	}
}

// Frame returns the most recent engine frame.
func (m Model) Frame() core.Frame {
	return m.frame
}

// Rounds returns how many rounds have finished.
func (m Model) Rounds() int {
	return m.rounds
}

// View renders the current frame centered in the terminal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.frame, m.game.Title(), m.last)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	content := lipgloss.JoinVertical(lipgloss.Center,
		RenderScreen(m.screen),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
