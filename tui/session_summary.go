package tui

import (
	"strings"

	"web3-risk-analyzer/models"

	"github.com/charmbracelet/lipgloss"
)

// renderSidebar generates the navigation sidebar with the session log
func (m Model) renderSidebar(height int) string {
	var s strings.Builder

	s.WriteString(sidebarTitleStyle.Render("Web3 Risk") + "\n")
	s.WriteString(navActiveStyle.Render("◉ Wallet Scanner") + "\n\n")
	s.WriteString(highlightStyle.Render("Session") + "\n")

	if len(m.sessionLog) == 0 {
		s.WriteString(helpStyle.Render("No analyses yet.\n\nSubmissions and their\noutcomes appear here."))
		return s.String()
	}

	// Show the newest entries that fit
	visibleLines := height - 8
	if visibleLines < 5 {
		visibleLines = 5
	}
	start := len(m.sessionLog) - visibleLines
	if start < 0 {
		start = 0
	}
	s.WriteString(strings.Join(m.sessionLog[start:], "\n"))

	return s.String()
}

// addToSessionLog appends an entry, dropping the oldest past the cap
func (m *Model) addToSessionLog(item string) {
	m.sessionLog = append(m.sessionLog, item)
	if len(m.sessionLog) > maxSessionRows {
		m.sessionLog = m.sessionLog[len(m.sessionLog)-maxSessionRows:]
	}
}

// addSessionAction adds an action heading, separated from the previous one
func (m *Model) addSessionAction(action string) {
	if len(m.sessionLog) > 0 {
		m.addToSessionLog("")
	}
	m.addToSessionLog(sessionActionStyle.Render(action))
}

// addSessionStatus adds an indented key: value line
func (m *Model) addSessionStatus(key, value string) {
	m.addToSessionLog(" " + formatSessionStatus(key, value))
}

// formatSessionStatus formats a status line with key: value and a value colour
func formatSessionStatus(key, value string) string {
	keyStyled := helpStyle.Render(key + ": ")
	return keyStyled + determineValueStyle(key, value).Render(value)
}

// determineValueStyle picks the value colour from the key and, for risk
// lines, from the risk level
func determineValueStyle(key, value string) lipgloss.Style {
	switch strings.ToLower(key) {
	case "failed", "export failed":
		return sessionErrorValueStyle
	case "saved", "copied":
		return sessionSuccessValueStyle
	case "risk":
		switch models.ClassifyRisk(value) {
		case models.RiskLow:
			return sessionSuccessValueStyle
		case models.RiskMedium:
			return sessionWarningValueStyle
		case models.RiskHigh:
			return sessionErrorValueStyle
		}
		return sessionMutedValueStyle
	case "address", "token":
		return sessionWarningValueStyle
	}
	return sessionMutedValueStyle
}
