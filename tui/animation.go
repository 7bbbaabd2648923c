package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const placeholderInterval = 3 * time.Second

// PlaceholderTickMsg rotates the address field placeholder
type PlaceholderTickMsg time.Time

// placeholderTickCmd schedules the next placeholder rotation
func placeholderTickCmd() tea.Cmd {
	return tea.Tick(placeholderInterval, func(t time.Time) tea.Msg {
		return PlaceholderTickMsg(t)
	})
}
