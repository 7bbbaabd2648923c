package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Professional blue/purple theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	panelColor     = lipgloss.Color("#374151") // Dark gray

	// Box container used before the terminal size is known
	boxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Align(lipgloss.Left)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingBottom(1)

	// Analysis type selector
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(textColor).
			Background(panelColor)

	walletTabStyle     = tabStyle.Background(secondaryColor).Bold(true)
	collectionTabStyle = tabStyle.Background(primaryColor).Bold(true)
	nftTabStyle        = tabStyle.Background(successColor).Bold(true)

	focusMarkerStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	inputFieldStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(textColor).
			Background(primaryColor).
			Bold(true)

	buttonDisabledStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(textColor).
				Background(mutedColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Alert dialog
	alertStyle = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(errorColor)

	alertTitleStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			PaddingBottom(1)

	// Sidebar
	sidebarTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true).
				PaddingBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(secondaryColor).
			Bold(true).
			Padding(0, 1)

	highlightStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Session summary styles
	sessionActionStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Italic(true)

	sessionSuccessValueStyle = lipgloss.NewStyle().
					Foreground(successColor)

	sessionWarningValueStyle = lipgloss.NewStyle().
					Foreground(warningColor)

	sessionErrorValueStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	sessionMutedValueStyle = lipgloss.NewStyle().
				Foreground(mutedColor)
)
