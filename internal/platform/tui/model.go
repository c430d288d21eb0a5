package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocks/internal/core"
)

// Game is what the host needs from a game: a restart entry point, a frame
// step driven by elapsed time, immediate input, and rendering.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig)
	Advance(dt time.Duration) core.StepResult
	Apply(a core.Action) bool
	Render(dst *core.Screen)
	State() core.GameState
}

// helpHeight is the number of lines reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	styles   Styles
	logger   *log.Logger
	state    core.GameState
	lastTick time.Time // zero until the first tick after a (re)start
	ticking  bool      // a TickMsg is scheduled
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, styles Styles, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Styles.ShortKey = styles.Help
	h.Styles.ShortDesc = styles.Help

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		styles:  styles,
		logger:  logger,
		ticking: true, // Init schedules the first tick
	}
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "seed", m.config.Seed)
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
	}

	return m, nil
}

// handleKey applies input immediately, independent of the frame tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		return m.restart()

	case core.ActionNone:
		return m, nil
	}

	m.game.Apply(action)
	m.observe(m.game.State())
	return m, nil
}

// restart resets the game and resumes the frame loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.state.GameOver {
		return m, nil
	}

	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.lastTick = time.Time{}
	m.observe(m.game.State())
	m.logger.Info("game restarted")

	// A tick may still be in flight if the game ended on a key press.
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. The game keeps running; only
// the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
// Once the game is over no further tick is scheduled.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Advance(dt)
	m.observe(result.State)

	if result.State.GameOver {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// observe records the game state and reports the transition to game over.
func (m *Model) observe(state core.GameState) {
	if state.GameOver && !m.state.GameOver {
		m.logger.Info("game over", "ticks", state.Ticks)
	}
	m.state = state
	m.keys.SetGameOver(state.GameOver)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.styles.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// GameOver reports whether the game has ended.
func (m Model) GameOver() bool {
	return m.state.GameOver
}

// Ticking reports whether a frame tick is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, DefaultStyles(), logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
