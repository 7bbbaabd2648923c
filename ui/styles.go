package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - blue/purple theme, traffic-light risk colors
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#3B82F6") // Blue
	AccentColor    = lipgloss.Color("#06B6D4") // Cyan
	SuccessColor   = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	DangerColor    = lipgloss.Color("#EF4444") // Red
	RiskColor      = lipgloss.Color("#F97316") // Orange
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light gray

	badgeBase = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	lowBadgeStyle     = badgeBase.Foreground(lipgloss.Color("#052E16")).Background(SuccessColor)
	mediumBadgeStyle  = badgeBase.Foreground(lipgloss.Color("#422006")).Background(WarningColor)
	highBadgeStyle    = badgeBase.Foreground(TextColor).Background(DangerColor)
	neutralBadgeStyle = badgeBase.Foreground(TextColor).Background(MutedColor)

	// Section card around each result block
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor)

	riskCardStyle = cardStyle.BorderForeground(RiskColor)

	headingStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	monoStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	priceStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	factorStyle = lipgloss.NewStyle().
			Foreground(RiskColor)

	attributeLabelStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor)

	yesStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	noStyle  = lipgloss.NewStyle().Foreground(DangerColor).Bold(true)

	scoreLowStyle    = lipgloss.NewStyle().Foreground(SuccessColor)
	scoreMediumStyle = lipgloss.NewStyle().Foreground(WarningColor)
	scoreHighStyle   = lipgloss.NewStyle().Foreground(DangerColor)
	scoreTrackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))

	// Banner and section framing for line-based output
	titleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	frameStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(DangerColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)
)
