// Package tui provides the Bubble Tea integration for the snake platform.
// It handles the terminal UI loop, input mapping, rendering, and score
// persistence around the pure game core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// the given interval. The game reschedules per tick because each level has
// its own movement interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
