package agent

import "strings"

// Intent is the action an agent derives from the request text. Intent
// detection is kept apart from the agents' side effects so the keyword
// rules are testable on their own.
type Intent string

const (
	IntentSchedule                Intent = "schedule"
	IntentReschedule              Intent = "reschedule"
	IntentCancel                  Intent = "cancel"
	IntentCompoundAnalysis        Intent = "compound_analysis"
	IntentTreatmentRecommendation Intent = "treatment_recommendation"
	IntentMonitorVitals           Intent = "monitor_vitals"
	IntentRiskAssessment          Intent = "risk_assessment"
	IntentConsultation            Intent = "consultation"
)

// SchedulingIntent matches scheduling keywords in the lowercased text.
// "reschedule" must be checked before "schedule": the latter is a
// substring of the former.
func SchedulingIntent(text string) Intent {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "reschedule"):
		return IntentReschedule
	case strings.Contains(text, "cancel"):
		return IntentCancel
	case strings.Contains(text, "schedule"):
		return IntentSchedule
	}
	return IntentConsultation
}

// DrugDiscoveryIntent distinguishes compound analysis and treatment
// recommendation requests from free-text consultation.
func DrugDiscoveryIntent(text string) Intent {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "analyze compound"):
		return IntentCompoundAnalysis
	case strings.Contains(text, "treatment recommendation"):
		return IntentTreatmentRecommendation
	}
	return IntentConsultation
}

// MonitoringIntent distinguishes vital-sign monitoring and risk
// assessment requests from free-text analysis.
func MonitoringIntent(text string) Intent {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "monitor patient"):
		return IntentMonitorVitals
	case strings.Contains(text, "risk assessment"):
		return IntentRiskAssessment
	}
	return IntentConsultation
}
