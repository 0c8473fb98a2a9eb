// Package tui runs snake boards in the terminal with Bubble Tea: the frame
// loop, key bindings, the board picker and the runs scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame with the frame time.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two frames. The first frame, or
// a clock that went backwards, counts as one nominal frame.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	if prev.IsZero() || !now.After(prev) {
		return 1 / float64(tickRate)
	}
	return now.Sub(prev).Seconds()
}
