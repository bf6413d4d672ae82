// Package tui runs games in a terminal with Bubble Tea, locally or over
// SSH, and hosts the deflection trace viewer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the simulation by one tick.
type TickMsg struct {
	At    time.Time
	Frame uint64 // Position in the tick sequence, starting at 0
}

// ticker schedules ticks at a fixed interval.
type ticker struct {
	interval time.Duration
}

// schedule sends tick number frame after one interval.
func (t ticker) schedule(frame uint64) tea.Cmd {
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return TickMsg{At: at, Frame: frame}
	})
}
