package tui

import (
	"web3-risk-analyzer/client"
	"web3-risk-analyzer/utils"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case AnalysisDoneMsg:
		return m.handleAnalysisDone(msg)
	case ExportDoneMsg:
		return m.handleExportDone(msg)
	case PlaceholderTickMsg:
		return m.handlePlaceholderTick()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input internals
	return m.updateFocusedInput(msg)
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	inputWidth := m.mainPaneWidth() - 24
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 64 {
		inputWidth = 64
	}
	m.addressInput.Width = inputWidth

	return m, nil
}

// handleKeyMessage routes key input. An open alert swallows everything
// except dismissal and quit.
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.alert != "" {
		return m.updateAlert(msg)
	}

	switch msg.String() {
	case "pgup", "ctrl+u":
		m.scrollResults(-5)
		return m, nil
	case "pgdown", "pgdn", "ctrl+d":
		m.scrollResults(5)
		return m, nil
	case "ctrl+y":
		m.copyResultAddress()
		return m, nil
	case "tab":
		return m.moveFocus(1)
	case "shift+tab":
		return m.moveFocus(-1)
	case "enter":
		return m.submit()
	}

	if m.focus == focusSelector {
		return m.updateSelector(msg)
	}

	if msg.String() == "esc" {
		return m.setFocus(focusSelector)
	}

	return m.updateFocusedInput(msg)
}

// handleMouseMessage scrolls the result view with the wheel
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollResults(-2)
	case tea.MouseButtonWheelDown:
		m.scrollResults(2)
	}
	return m, nil
}

// handleAnalysisDone stores the outcome of a request. Loading always ends
// here, whatever the outcome.
func (m Model) handleAnalysisDone(msg AnalysisDoneMsg) (Model, tea.Cmd) {
	m.loading = false

	if msg.Err != nil {
		m.result = nil
		m.alert = client.AlertMessage(msg.Err)
		m.logger.Error("Error during analysis",
			zap.Stringer("type", msg.Request.Type),
			zap.String("address", msg.Request.Address),
			zap.Error(msg.Err))
		m.addSessionStatus("Failed", m.alert)
		return m, nil
	}

	result := msg.Result
	m.result = &result
	m.resultScrollOffset = 0
	m.addSessionStatus("Risk", riskSummary(result.RiskLevel()))

	if m.writer != nil {
		return m, exportResultCmd(m.writer, result, m.outputDir)
	}
	return m, nil
}

// handleExportDone records the export in the session log; export failures
// never interrupt the user with an alert.
func (m Model) handleExportDone(msg ExportDoneMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("Failed to export result", zap.Error(msg.Err))
		m.addSessionStatus("Export failed", msg.Err.Error())
		return m, nil
	}
	m.logger.Info("Result exported", zap.String("path", msg.Path))
	m.addSessionStatus("Saved", msg.Path)
	return m, nil
}

// handlePlaceholderTick cycles the address placeholder for the current type
func (m Model) handlePlaceholderTick() (Model, tea.Cmd) {
	m.placeholderIndex++
	m.applyPlaceholder()
	return m, placeholderTickCmd()
}

func (m *Model) copyResultAddress() {
	if m.result == nil || m.clipboard == nil {
		return
	}
	address := m.result.PrimaryAddress()
	if address == "" {
		return
	}
	if err := m.clipboard.Copy(address); err != nil {
		m.logger.Debug("Clipboard copy failed", zap.Error(err))
	}
	m.addSessionStatus("Copied", utils.TruncateAddress(address))
}

func (m *Model) scrollResults(delta int) {
	maxScroll := m.resultLineCount() - m.resultViewportHeight()
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.resultScrollOffset += delta
	if m.resultScrollOffset > maxScroll {
		m.resultScrollOffset = maxScroll
	}
	if m.resultScrollOffset < 0 {
		m.resultScrollOffset = 0
	}
}

func riskSummary(level string) string {
	if level == "" {
		return "unknown"
	}
	return level
}
