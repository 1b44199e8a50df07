// Package tui runs the game in a terminal with Bubble Tea, locally or per
// SSH session, and hosts the mode menu and the scoreboard.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick of the game model with the same ID.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

// nextTickID returns a fresh tick loop ID.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd schedules the next tick of loop id at tickRate ticks per second.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
