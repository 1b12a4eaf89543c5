package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// highScoreTable builds a non-interactive table of stored high scores.
func highScoreTable(entries []storage.HighScoreEntry) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Mode", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		date := "-"
		if !e.UpdatedAt.IsZero() {
			date = e.UpdatedAt.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.GameID,
			fmt.Sprintf("%d", e.Score),
			date,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No row is focused in a printed table.
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// RenderHighScores renders the high-score table printed by `cubes score`.
func RenderHighScores(entries []storage.HighScoreEntry) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(emptyStyle.Render("No scores recorded yet.\nClear a level to set a high score!"))
		b.WriteString("\n")
		return b.String()
	}

	t := highScoreTable(entries)
	b.WriteString(tableStyle.Render(t.View()))
	b.WriteString("\n")
	return b.String()
}
