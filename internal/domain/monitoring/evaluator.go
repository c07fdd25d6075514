package monitoring

import "time"

// Vital-sign thresholds and defaults. The defaults are chosen so that a
// missing reading never trips its rule.
const (
	defaultHeartRate = 70
	defaultSystolic  = 120

	heartRateThreshold = 100
	systolicThreshold  = 140
)

func vital(vitals map[string]float64, name string, def float64) float64 {
	if v, ok := vitals[name]; ok {
		return v
	}
	return def
}

// EvaluateVitals applies the fixed alerting rules to a set of vital-sign
// readings and returns the triggered alerts in rule order: heart rate
// first, then systolic blood pressure. Readings with no matching rule
// are ignored. Pure: no store access, no external calls.
func EvaluateVitals(patientID string, vitals map[string]float64, now time.Time) []PatientAlert {
	if patientID == "" {
		patientID = "unknown"
	}

	var alerts []PatientAlert
	if vital(vitals, "heart_rate", defaultHeartRate) > heartRateThreshold {
		alerts = append(alerts, PatientAlert{
			PatientID:         patientID,
			AlertType:         "Vital Signs",
			Level:             AlertMedium,
			Message:           "Elevated heart rate detected",
			Timestamp:         now,
			RecommendedAction: "Monitor closely, consider cardiology consultation",
		})
	}
	if vital(vitals, "blood_pressure_systolic", defaultSystolic) > systolicThreshold {
		alerts = append(alerts, PatientAlert{
			PatientID:         patientID,
			AlertType:         "Blood Pressure",
			Level:             AlertHigh,
			Message:           "Hypertension detected",
			Timestamp:         now,
			RecommendedAction: "Immediate medical evaluation required",
		})
	}
	return alerts
}

// Risk scoring: two points per risk factor plus a tenth of a point per
// year over 50. Level boundaries are half-open; a score of exactly 5
// is medium and exactly 10 is high.
const (
	defaultRiskAge = 50

	riskMediumThreshold = 5
	riskHighThreshold   = 10
)

// standard follow-up advice attached to every assessment
var riskRecommendations = []string{
	"Regular monitoring",
	"Lifestyle modifications",
	"Preventive care protocols",
}

// AssessRisk computes the deterministic risk score for a set of risk
// factors and an age. A nil factor list and zero age fall back to the
// neutral defaults (no factors, age 50).
func AssessRisk(riskFactors []string, age *int) RiskReport {
	a := defaultRiskAge
	if age != nil {
		a = *age
	}
	factors := riskFactors
	if factors == nil {
		factors = []string{}
	}

	score := float64(len(factors))*2 + float64(a-defaultRiskAge)*0.1

	level := "low"
	switch {
	case score >= riskHighThreshold:
		level = "high"
	case score >= riskMediumThreshold:
		level = "medium"
	}

	return RiskReport{
		RiskScore:           score,
		RiskLevel:           level,
		ContributingFactors: factors,
		Recommendations:     riskRecommendations,
	}
}
