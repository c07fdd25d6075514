package monitoring

import (
	"context"
	"sync"
)

// AlertRepository is the append-only alert registry.
type AlertRepository interface {
	Record(ctx context.Context, alerts ...PatientAlert) error
	// List returns alerts in insertion order. An empty patientID
	// returns all alerts; otherwise the subsequence for that patient.
	List(ctx context.Context, patientID string) ([]PatientAlert, error)
}

// -- In-memory implementation --

type memoryAlertRepo struct {
	mu     sync.RWMutex
	alerts []PatientAlert
}

func NewMemoryAlertRepo() AlertRepository {
	return &memoryAlertRepo{}
}

func (r *memoryAlertRepo) Record(_ context.Context, alerts ...PatientAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts = append(r.alerts, alerts...)
	return nil
}

func (r *memoryAlertRepo) List(_ context.Context, patientID string) ([]PatientAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if patientID == "" {
		result := make([]PatientAlert, len(r.alerts))
		copy(result, r.alerts)
		return result, nil
	}
	var result []PatientAlert
	for _, a := range r.alerts {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result, nil
}
