// Package tui provides the Bubble Tea integration for Cubes.
// It handles the terminal UI loop, input mapping and the level banner timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AdvanceDelay is how long the level-cleared banner stays before the next level starts.
const AdvanceDelay = 1500 * time.Millisecond

// AdvanceMsg asks the model to leave the level-cleared banner of Level.
type AdvanceMsg struct {
	Level int
}

// advanceCmd returns a Bubble Tea command that sends an AdvanceMsg after delay.
func advanceCmd(level int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AdvanceMsg{Level: level}
	})
}
