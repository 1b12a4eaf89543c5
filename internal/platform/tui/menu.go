package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
)

// difficultyOption is one row of the difficulty menu.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy    12 moves, gentle goals"},
	{config.DifficultyNormal, "Normal  10 moves"},
	{config.DifficultyHard, "Hard     8 moves, steep goals"},
	{config.DifficultyFixed, "Fixed   same goal every level"},
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	cursor   int
	width    int
	height   int
	keys     KeyMap
	selected config.DifficultyPreset
	choosing bool
	quitting bool
}

// NewDifficultyModel creates a menu with current preselected.
func NewDifficultyModel(current config.DifficultyPreset, width, height int) DifficultyModel {
	m := DifficultyModel{
		width:    width,
		height:   height,
		keys:     DefaultKeyMap(),
		choosing: true,
	}
	if current == "" {
		current = config.DifficultyNormal
	}
	for i, opt := range difficultyOptions {
		if opt.preset == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.ActionFor(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case core.ActionSelect:
		m.choosing = false
		m.selected = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C U B E S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-30s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" while still choosing.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	if m.choosing {
		return ""
	}
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// RunDifficultySelector shows the difficulty menu. It returns "" when the
// user quits.
func RunDifficultySelector(current config.DifficultyPreset, cfg core.RuntimeConfig) (config.DifficultyPreset, error) {
	model := NewDifficultyModel(current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() {
		return "", nil
	}
	return m.Selected(), nil
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
