package models

import "strings"

// RiskLevel is the presentation bucket of a backend risk level string
type RiskLevel int

const (
	RiskUnknown RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
)

// ClassifyRisk matches case-insensitively against low, medium and high.
// Anything else is RiskUnknown and should be shown verbatim.
func ClassifyRisk(level string) RiskLevel {
	switch strings.ToLower(level) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	}
	return RiskUnknown
}

// AuditBucket groups the audit status strings the backend may return
type AuditBucket int

const (
	AuditOther AuditBucket = iota
	AuditVerified
	AuditUnverified
)

func ClassifyAudit(status string) AuditBucket {
	switch strings.ToLower(status) {
	case "verified", "audited":
		return AuditVerified
	case "unverified", "not audited":
		return AuditUnverified
	}
	return AuditOther
}

// ScoreBand buckets a 0-100 risk score for the score bar colour
type ScoreBand int

const (
	ScoreBandLow ScoreBand = iota
	ScoreBandMedium
	ScoreBandHigh
)

func ClassifyScore(score float64) ScoreBand {
	switch {
	case score < 30:
		return ScoreBandLow
	case score < 70:
		return ScoreBandMedium
	default:
		return ScoreBandHigh
	}
}

const (
	// MaxTopHolders caps the holder rows shown for a collection
	MaxTopHolders = 5
	// MaxAttributes caps the attribute tiles shown for an NFT
	MaxAttributes = 6
)
