// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, frame timing and
// the run journal browser, locally or over SSH.
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

// frameDelta returns the seconds elapsed between two ticks. The first tick,
// or a clock that went backwards, yields the nominal frame time.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	nominal := 1 / float64(tickRate)
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	return now.Sub(prev).Seconds()
}
