package ui

import (
	"strings"

	"web3-risk-analyzer/models"
)

// RiskBadge renders a risk level. Unrecognised levels keep their own
// text on a neutral badge.
func RiskBadge(level string) string {
	switch models.ClassifyRisk(level) {
	case models.RiskLow:
		return lowBadgeStyle.Render("✔ Low Risk")
	case models.RiskMedium:
		return mediumBadgeStyle.Render("◆ Medium Risk")
	case models.RiskHigh:
		return highBadgeStyle.Render("▲ High Risk")
	}
	return neutralBadgeStyle.Render("◇ " + level)
}

func AuditBadge(status string) string {
	switch models.ClassifyAudit(status) {
	case models.AuditVerified:
		return lowBadgeStyle.Render("✔ Verified")
	case models.AuditUnverified:
		return highBadgeStyle.Render("✘ Unverified")
	}
	return neutralBadgeStyle.Render(status)
}

const scoreBarWidth = 20

// ScoreBar draws a 0-100 score as a filled bar coloured by band
func ScoreBar(score float64) string {
	clamped := min(max(score, 0), 100)
	filled := int(clamped/100*scoreBarWidth + 0.5)

	style := scoreLowStyle
	switch models.ClassifyScore(score) {
	case models.ScoreBandMedium:
		style = scoreMediumStyle
	case models.ScoreBandHigh:
		style = scoreHighStyle
	}

	return style.Render(strings.Repeat("█", filled)) +
		scoreTrackStyle.Render(strings.Repeat("░", scoreBarWidth-filled))
}
