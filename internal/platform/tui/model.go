package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/console-shooter/internal/core"
)

// Outcome is how a run ended.
type Outcome struct {
	Phase core.Phase
	Score int
	Lives int
	Frame int
}

// Message returns the line printed after the game closes.
func (o Outcome) Message() string {
	if o.Phase == core.PhaseGameOver {
		return fmt.Sprintf("Game Over! Score: %d", o.Score)
	}
	return fmt.Sprintf("Quit selected. Final score: %d", o.Score)
}

// Model is the Bubble Tea model for one run of the game.
// It shows a title screen until any key is pressed, then ticks the game
// every FrameDelay until the run ends.
type Model struct {
	game    Game
	screen  *core.Screen
	queue   *core.KeyQueue
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	logger  *log.Logger
	report  func(Outcome)
	width   int
	height  int
	state   core.GameState
	started bool
	done    bool
	outcome Outcome
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = core.DefaultFrameDelay
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := game.Size()
	return Model{
		game:   game,
		screen: core.NewScreen(w, h),
		queue:  core.NewKeyQueue(core.DefaultKeyQueueSize),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		logger: logger,
	}
}

// OnFinish registers fn to be called once with the outcome of the run.
func (m Model) OnFinish(fn func(Outcome)) Model {
	m.report = fn
	return m
}

// Init resets the game. The first tick waits for a key on the title screen.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
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

// handleKey queues key codes for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		m.finish(core.PhaseQuit)
		return m, tea.Quit
	}

	// Any key leaves the title screen
	if !m.started {
		m.started = true
		m.state = m.game.State()
		m.logger.Info("run started",
			"game", m.game.ID(),
			"seed", m.config.Seed,
			"frame_delay", m.config.FrameDelay,
		)
		return m, tickCmd(m.config.FrameDelay)
	}

	codes := Codes(msg)
	if len(codes) > 0 && !m.queue.Push(codes...) {
		m.logger.Debug("input dropped", "key", msg.String(), "pending", m.queue.Len())
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done || !m.started {
		return m, nil
	}

	result := m.game.Step(m.queue)
	m.state = result.State

	if m.state.Phase.Terminal() {
		m.finish(m.state.Phase)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.FrameDelay)
}

// finish records the outcome and reports it once.
func (m *Model) finish(phase core.Phase) {
	m.state = m.game.State()
	m.done = true
	m.outcome = Outcome{
		Phase: phase,
		Score: m.state.Score,
		Lives: m.state.Lives,
		Frame: m.state.Frame,
	}

	m.logger.Info("run ended",
		"phase", phase,
		"score", m.outcome.Score,
		"lives", m.outcome.Lives,
		"frame", m.outcome.Frame,
	)
	if s, ok := m.game.(snapshotter); ok {
		m.logger.Debug("final state", "snapshot", fmt.Sprintf("%+v", s.Snapshot()))
	}
	m.game.Render(m.screen)
	m.logger.Debug("final frame", "screen", "\n"+m.screen.String())

	// Keys typed after the end are never read
	m.queue.Reset()

	if m.report != nil {
		m.report(m.outcome)
	}
}

// Outcome returns how the run ended. A run that never finished, for
// example because the program was interrupted, counts as a quit.
func (m Model) Outcome() Outcome {
	if m.done {
		return m.outcome
	}
	st := m.game.State()
	return Outcome{Phase: core.PhaseQuit, Score: st.Score, Lives: st.Lives, Frame: st.Frame}
}

// Done reports whether the run has ended.
func (m Model) Done() bool {
	return m.done
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// View renders the title screen or the current frame.
func (m Model) View() string {
	var body string
	if !m.started {
		body = m.titleView()
	} else {
		m.game.Render(m.screen)
		body = frameStyle.Render(RenderScreen(m.screen))
	}

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// titleView renders the start banner with controls.
func (m Model) titleView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Simple " + m.game.Title()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Press any key to start..."))
	return lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...)
}

// Run starts the Bubble Tea program with the given game and blocks until
// the run ends.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (Outcome, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("tui: run: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return model.Outcome(), nil
	}
	if !m.Done() {
		m.logger.Warn("run interrupted", "frame", m.game.State().Frame)
	}
	return m.Outcome(), nil
}
