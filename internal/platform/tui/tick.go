// Package tui hosts the Bubble Tea side of chomp: the fixed-rate game
// loop, key mapping, screen rendering, menus, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next simulation tick at the given rate. A
// non-positive rate falls back to 60, matching RuntimeConfig.Dt.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
