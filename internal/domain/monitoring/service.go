package monitoring

import (
	"context"
	"time"
)

type Service struct {
	alerts AlertRepository
	now    func() time.Time
}

func NewService(repo AlertRepository) *Service {
	return &Service{alerts: repo, now: time.Now}
}

// MonitorVitals evaluates a patient's vital signs, records any triggered
// alerts in the registry, and returns them.
func (s *Service) MonitorVitals(ctx context.Context, patientID string, vitals map[string]float64) ([]PatientAlert, error) {
	alerts := EvaluateVitals(patientID, vitals, s.now())
	if len(alerts) > 0 {
		if err := s.alerts.Record(ctx, alerts...); err != nil {
			return nil, err
		}
	}
	return alerts, nil
}

// AssessRisk runs the deterministic risk scorer. No alert is recorded;
// a risk report is advisory.
func (s *Service) AssessRisk(_ context.Context, riskFactors []string, age *int) RiskReport {
	return AssessRisk(riskFactors, age)
}

// GetAlerts returns recorded alerts, optionally filtered to one patient,
// preserving insertion order.
func (s *Service) GetAlerts(ctx context.Context, patientID string) ([]PatientAlert, error) {
	return s.alerts.List(ctx, patientID)
}
