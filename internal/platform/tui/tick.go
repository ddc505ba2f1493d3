// Package tui provides the Bubble Tea integration for brickgame.
// It owns the loop that drives an engine, maps keys to actions and draws
// engine frames in the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one engine step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
