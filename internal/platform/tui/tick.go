// Package tui provides the Bubble Tea integration: the game loop, menus,
// the standings screen and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick. Loop identifies the game model
// that scheduled it, so ticks from a closed game are ignored.
type TickMsg struct {
	Loop string
	Time time.Time
}

// tickCmd returns a command that sends a tick after one interval at tickRate.
func tickCmd(loop string, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
