package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI application
func Run(opts Options) error {
	m := NewModel(opts)

	// Alt screen keeps the analyzer isolated from the shell scrollback
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if finalModel, ok := finalModel.(Model); ok && finalModel.err != nil {
		return fmt.Errorf("application ended with error: %w", finalModel.err)
	}

	return nil
}
