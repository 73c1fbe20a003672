// Package tui hosts the game in a terminal through Bubble Tea.
// It maps mouse and keys to game input, drives the frame loop and
// rasterizes the game's draw commands onto a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameSeconds returns the wall-clock time between two ticks. The first
// tick has no predecessor and counts as one nominal frame.
func frameSeconds(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() || !now.After(prev) {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	return now.Sub(prev).Seconds()
}
