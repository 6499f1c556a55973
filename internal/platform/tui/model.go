package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// maxFrameGap caps the elapsed time fed to one step, so a stalled
// terminal does not drain the countdown in a single frame.
const maxFrameGap = 250 * time.Millisecond

// helpRows is the height of the key help footer.
const helpRows = 1

// Game is the contract between the runner and a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	StepFrame(in core.InputFrame, elapsed time.Duration) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// EventSink receives every event a step emits.
type EventSink interface {
	Record(ev core.Event) error
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	sink       EventSink
	logger     *log.Logger
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	dwelling   bool // Game over; showing the final frame
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// sink and logger may be nil.
func NewModel(game Game, sink EventSink, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		sink:       sink,
		logger:     logger,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case DwellDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
// Keys only record actions; the next tick consumes them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit requested", "score", m.gameState.Score, "lives", m.gameState.Lives)
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone && !m.dwelling {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The playfield is in world units, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.dwelling || m.quitting {
		return m, nil
	}

	elapsed := m.config.TickInterval()
	if !m.lastTick.IsZero() {
		elapsed = min(max(now.Sub(m.lastTick), 0), maxFrameGap)
	}
	m.lastTick = now

	result := m.game.StepFrame(m.inputFrame, elapsed)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "cause", ev.Cause, "tick", ev.Tick,
			"score", ev.Score, "lives", ev.Lives, "round_time", ev.RoundTime)
		if m.sink == nil {
			continue
		}
		if err := m.sink.Record(ev); err != nil {
			m.logger.Warn("could not record event", "kind", ev.Kind, "error", err)
		}
	}

	if m.gameState.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score, "dwell", m.config.TerminalDwell)
		m.dwelling = true
		return m, dwellCmd(m.config.TerminalDwell)
	}

	return m, tickCmd(m.config.TickRate)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(game Game, sink EventSink, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, sink, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
