package tui

import (
	"strings"

	"web3-risk-analyzer/ui"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Web3 Risk Analyzer") + "\n")
	s.WriteString(subtitleStyle.Render("Analyze Ethereum wallets, NFT collections, and individual NFTs for security risks") + "\n")
	s.WriteString(m.viewSelector() + "\n\n")
	s.WriteString(m.viewForm() + "\n\n")

	if m.alert != "" {
		s.WriteString(m.viewAlert() + "\n\n")
	} else if m.result != nil {
		s.WriteString(m.viewResultWindow() + "\n\n")
	}

	s.WriteString(helpStyle.Render(m.helpText()))

	return m.renderWithDynamicWidth(s.String())
}

func (m Model) helpText() string {
	if m.alert != "" {
		return "Enter or Esc to dismiss, Ctrl+C to quit"
	}
	help := "Tab to switch field, ←/→ or 1-3 to pick type, Enter to analyze, Ctrl+C to quit"
	if m.result != nil {
		help += "\nCtrl+Y to copy address, PgUp/PgDn or mouse wheel to scroll"
	}
	return help
}

func (m Model) viewAlert() string {
	body := alertTitleStyle.Render("Analysis failed") + "\n" + m.alert
	return alertStyle.Render(body)
}

// viewResultWindow renders the visible slice of the result view
func (m Model) viewResultWindow() string {
	lines := m.resultLines()
	visible := m.resultViewportHeight()

	start := m.resultScrollOffset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	window := strings.Join(lines[start:end], "\n")
	if len(lines) > visible {
		window += "\n" + helpStyle.Render("── more ── PgUp/PgDn to scroll")
	}
	return window
}

func (m Model) resultLines() []string {
	if m.result == nil {
		return nil
	}
	rendered := ui.RenderResult(*m.result, ui.RenderOptions{CopyHint: "(ctrl+y copy)"})
	return strings.Split(rendered, "\n")
}

func (m Model) resultLineCount() int {
	return len(m.resultLines())
}

// resultViewportHeight approximates the rows left under the form
func (m Model) resultViewportHeight() int {
	rows := m.height - 22
	if m.analysisType.NeedsTokenID() {
		rows--
	}
	if rows < 8 {
		rows = 8
	}
	return rows
}

func (m Model) mainPaneWidth() int {
	if m.width <= 0 {
		return 80
	}
	width := m.width - sidebarWidth - 1
	if width < 50 {
		width = 50
	}
	return width
}

// renderWithDynamicWidth renders the layout shell: sidebar plus main pane
func (m Model) renderWithDynamicWidth(content string) string {
	if m.width > 0 && m.height > 0 {
		return m.renderTwoPaneLayout(content)
	}

	// Fallback until the first window size message arrives
	return boxStyle.Render(content)
}

// renderTwoPaneLayout renders the navigation sidebar next to the page
func (m Model) renderTwoPaneLayout(content string) string {
	marginVertical := 1
	contentHeight := m.height - (marginVertical * 2) - 2 // 2 for border
	if contentHeight < 10 {
		contentHeight = 10
	}

	sidebarPane := lipgloss.NewStyle().
		Width(sidebarWidth-4).
		Height(contentHeight).
		Padding(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Render(m.renderSidebar(contentHeight))

	mainPane := lipgloss.NewStyle().
		Width(m.mainPaneWidth()-4).
		Height(contentHeight).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Render(content)

	combinedPanes := lipgloss.JoinHorizontal(lipgloss.Top, sidebarPane, " ", mainPane)

	return lipgloss.NewStyle().
		Padding(marginVertical, 0).
		Render(combinedPanes)
}
