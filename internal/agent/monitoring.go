package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/agentcare/agentcare/internal/domain/monitoring"
	"github.com/agentcare/agentcare/internal/domain/patient"
	"github.com/agentcare/agentcare/internal/platform/llm"
)

// MonitoringAgent runs the deterministic vital-sign and risk evaluators.
// When the classifier did not extract readings it falls back to the
// patient registry, and for anything else it asks the completion
// service for an analysis.
type MonitoringAgent struct {
	llm        llm.Client
	monitoring *monitoring.Service
	patients   *patient.Service
}

func NewMonitoringAgent(client llm.Client, mon *monitoring.Service, patients *patient.Service) *MonitoringAgent {
	return &MonitoringAgent{llm: client, monitoring: mon, patients: patients}
}

func (a *MonitoringAgent) Handle(ctx context.Context, request string, params Params) Result {
	switch MonitoringIntent(request) {
	case IntentMonitorVitals:
		return a.monitorVitals(ctx, params)
	case IntentRiskAssessment:
		return a.assessRisk(ctx, params)
	}

	reply, err := a.llm.Complete(ctx, monitoringSystemPrompt, request, monitoringTemperature)
	if err != nil {
		return Failure(fmt.Errorf("monitoring analysis: %w", err))
	}
	return success("monitoring_analysis", map[string]interface{}{
		"analysis": reply,
	})
}

func (a *MonitoringAgent) monitorVitals(ctx context.Context, params Params) Result {
	patientID := params.String("patient_id")
	vitals := params.FloatMap("vital_signs")

	// the classifier usually emits readings as flat parameters rather
	// than a nested map; accept both
	for _, key := range []string{"heart_rate", "blood_pressure_systolic"} {
		if _, set := vitals[key]; set {
			continue
		}
		if v, ok := params.Float(key); ok {
			if vitals == nil {
				vitals = map[string]float64{}
			}
			vitals[key] = v
		}
	}

	if len(vitals) == 0 && patientID != "" {
		p, err := a.patients.GetPatient(ctx, patientID)
		if err != nil && !errors.Is(err, patient.ErrNotFound) {
			return Failure(fmt.Errorf("look up patient %q: %w", patientID, err))
		}
		if err == nil {
			vitals = p.VitalSigns
		}
	}

	alerts, err := a.monitoring.MonitorVitals(ctx, patientID, vitals)
	if err != nil {
		return Failure(fmt.Errorf("monitor vitals: %w", err))
	}
	return success("patient_monitoring", map[string]interface{}{
		"patient_id":  patientID,
		"alerts":      alerts,
		"alert_count": len(alerts),
	})
}

func (a *MonitoringAgent) assessRisk(ctx context.Context, params Params) Result {
	factors := params.StringList("risk_factors")
	var age *int
	if v, ok := params.Int("age"); ok {
		age = &v
	}

	// fall back to the registered record when the request names a
	// patient but the classifier extracted nothing
	if patientID := params.String("patient_id"); patientID != "" && factors == nil && age == nil {
		p, err := a.patients.GetPatient(ctx, patientID)
		if err != nil && !errors.Is(err, patient.ErrNotFound) {
			return Failure(fmt.Errorf("look up patient %q: %w", patientID, err))
		}
		if err == nil {
			factors = p.RiskFactors
			age = &p.Age
		}
	}

	report := a.monitoring.AssessRisk(ctx, factors, age)
	return success("risk_assessment", map[string]interface{}{
		"assessment": report,
	})
}
