package monitoring

import "time"

// AlertLevel is the clinical severity of an alert.
type AlertLevel string

const (
	AlertLow      AlertLevel = "low"
	AlertMedium   AlertLevel = "medium"
	AlertHigh     AlertLevel = "high"
	AlertCritical AlertLevel = "critical"
)

var alertRank = map[AlertLevel]int{
	AlertLow: 0, AlertMedium: 1, AlertHigh: 2, AlertCritical: 3,
}

// Rank orders severities low < medium < high < critical for aggregation.
func (l AlertLevel) Rank() int { return alertRank[l] }

// PatientAlert flags an out-of-range vital sign for clinical follow-up.
// Alerts are append-only and never mutated after creation.
type PatientAlert struct {
	PatientID         string     `json:"patient_id"`
	AlertType         string     `json:"alert_type"`
	Level             AlertLevel `json:"level"`
	Message           string     `json:"message"`
	Timestamp         time.Time  `json:"timestamp"`
	RecommendedAction string     `json:"recommended_action"`
}

// RiskReport is the result of a deterministic risk assessment.
type RiskReport struct {
	RiskScore           float64  `json:"risk_score"`
	RiskLevel           string   `json:"risk_level"`
	ContributingFactors []string `json:"contributing_factors"`
	Recommendations     []string `json:"recommendations"`
}
