package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cubes/internal/config"
)

func updateMenu(t *testing.T, m DifficultyModel, msg tea.Msg) (DifficultyModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(DifficultyModel)
	if !ok {
		t.Fatalf("Update returned %T, want DifficultyModel", next)
	}
	return nm, cmd
}

func TestDifficultyMenuPreselects(t *testing.T) {
	tests := []struct {
		current config.DifficultyPreset
		want    int
	}{
		{"", 1},
		{config.DifficultyEasy, 0},
		{config.DifficultyNormal, 1},
		{config.DifficultyHard, 2},
		{config.DifficultyFixed, 3},
	}

	for _, tt := range tests {
		m := NewDifficultyModel(tt.current, 80, 24)
		if m.cursor != tt.want {
			t.Errorf("NewDifficultyModel(%q) cursor = %d, want %d", tt.current, m.cursor, tt.want)
		}
	}
}

func TestDifficultyMenuSelect(t *testing.T) {
	m := NewDifficultyModel(config.DifficultyNormal, 80, 24)

	if m.Selected() != "" {
		t.Error("Selected() should be empty while choosing")
	}

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 3 {
		t.Errorf("cursor = %d, want 3 (clamped)", m.cursor)
	}

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	if m.Selected() != config.DifficultyHard {
		t.Errorf("Selected() = %q, want hard", m.Selected())
	}
}

func TestDifficultyMenuQuit(t *testing.T) {
	m := NewDifficultyModel("", 80, 24)
	if !strings.Contains(m.View(), "> Normal") {
		t.Errorf("view should mark the current preset:\n%s", m.View())
	}

	m, _ = updateMenu(t, m, runeKey('q'))
	if !m.IsQuitting() || m.Selected() != "" {
		t.Error("q should quit without a selection")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
