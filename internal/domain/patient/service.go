package patient

import (
	"context"
	"fmt"
)

type Service struct {
	patients Repository
}

func NewService(repo Repository) *Service {
	return &Service{patients: repo}
}

// AddPatient registers or replaces a patient record. Re-adding an
// existing id is an idempotent upsert, not an error.
func (s *Service) AddPatient(ctx context.Context, p *Patient) error {
	if p.ID == "" {
		return fmt.Errorf("patient id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("patient name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("patient age must not be negative, got %d", p.Age)
	}
	return s.patients.Upsert(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}
