package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes"
	cubescore "github.com/vovakirdan/tui-cubes/internal/games/cubes/core"
)

// footerHeight is the number of lines below the board: status and help.
const footerHeight = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// status is written by the session listener and read by View.
// It lives behind a pointer so value copies of Model share it.
type status struct {
	message string
}

// Model is the Bubble Tea model for a Cubes session.
type Model struct {
	game     *cubes.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	cursor   cubescore.Coord
	status   *status
	logger   *log.Logger
	delay    time.Duration
	quitting bool
}

// NewModel creates a new Bubble Tea model for a running game.
func NewModel(game *cubes.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := game.State()
	st := &status{message: describe(cubes.LevelStartedEvent{
		Level:     s.Level,
		Goal:      s.Goal,
		Moves:     s.Moves,
		HighScore: s.HighScore,
	})}
	game.Subscribe(func(e cubes.Event) {
		st.message = describe(e)
	})

	size := game.Board().Size()
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		cursor: cubescore.C(size/2, size/2),
		status: st,
		logger: logger,
		delay:  AdvanceDelay,
	}
}

// describe turns a session event into a status line.
func describe(e cubes.Event) string {
	switch e := e.(type) {
	case cubes.MatchResolvedEvent:
		return fmt.Sprintf("+%d points for %d %s cubes", e.Points, e.Outcome.Size(), e.Outcome.Region.Color())
	case cubes.LevelClearedEvent:
		return fmt.Sprintf("Level %d cleared with %d moves left", e.Level, e.MovesLeft)
	case cubes.GameOverEvent:
		if e.Stuck {
			return fmt.Sprintf("No playable group left at level %d", e.Level)
		}
		return fmt.Sprintf("Out of moves at level %d", e.Level)
	case cubes.BoardReshuffledEvent:
		return "No moves left, board reshuffled"
	case cubes.LevelStartedEvent:
		if e.NewRecord {
			return fmt.Sprintf("New high score %d! Level %d: reach %d in %d moves", e.HighScore, e.Level, e.Goal, e.Moves)
		}
		return fmt.Sprintf("Level %d: reach %d in %d moves", e.Level, e.Goal, e.Moves)
	default:
		return ""
	}
}

// Init implements tea.Model. The session is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.ActionFor(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case AdvanceMsg:
		return m.handleAdvance(msg)
	}

	return m, nil
}

// handleAction applies a semantic action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	phase := m.game.State().Phase

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case action.IsDirection():
		dx, dy := action.Delta()
		last := m.game.Board().Size() - 1
		m.cursor.X = core.Clamp(m.cursor.X+dx, 0, last)
		m.cursor.Y = core.Clamp(m.cursor.Y+dy, 0, last)

	case action == core.ActionSelect:
		return m.selectCell(m.cursor)

	case action == core.ActionNext && phase == cubescore.PhaseLevelCleared:
		return m.advance()

	case action == core.ActionRestart && phase == cubescore.PhaseGameOver:
		m.game.Restart()
	}

	return m, nil
}

// handleMouse selects the cell under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	layout := m.game.LayoutFor(m.screen.Width(), m.screen.Height())
	c, ok := layout.CellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = c
	return m.selectCell(c)
}

// selectCell plays c and schedules the next level when it was cleared.
func (m Model) selectCell(c cubescore.Coord) (tea.Model, tea.Cmd) {
	if m.game.State().Phase != cubescore.PhasePlaying {
		return m, nil
	}

	if _, err := m.game.Select(c.X, c.Y); err != nil {
		m.logger.Warn("select failed", "cell", c, "err", err)
		return m, nil
	}

	s := m.game.State()
	if s.Phase == cubescore.PhaseLevelCleared {
		return m, advanceCmd(s.Level, m.delay)
	}
	return m, nil
}

// handleAdvance leaves the banner unless N already did.
func (m Model) handleAdvance(msg AdvanceMsg) (tea.Model, tea.Cmd) {
	s := m.game.State()
	if s.Phase != cubescore.PhaseLevelCleared || s.Level != msg.Level {
		return m, nil
	}
	return m.advance()
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if err := m.game.AdvanceLevel(); err != nil {
		m.logger.Warn("advance failed", "err", err)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// Cursor returns the board cell under the keyboard cursor.
func (m Model) Cursor() cubescore.Coord {
	return m.cursor
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status.message
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.cursor)

	return RenderScreen(m.screen) + "\n" +
		statusStyle.Render(m.status.message) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game *cubes.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
