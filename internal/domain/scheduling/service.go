package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// Booking policy: new appointments land a week out, reschedules
	// push two weeks out from the time of the change.
	scheduleLeadTime   = 7 * 24 * time.Hour
	rescheduleLeadTime = 14 * 24 * time.Hour
)

// ScheduleParams carries the optional parameters extracted from a
// scheduling request. Zero values fall back to booking defaults.
type ScheduleParams struct {
	PatientID string
	DoctorID  string
	Type      string
	At        *time.Time
}

type Service struct {
	appointments Repository
	now          func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{appointments: repo, now: time.Now}
}

// newAppointmentID builds an id of the form apt_<timestamp>_<suffix>.
// The random suffix keeps ids collision-free even when two bookings
// land within the same second.
func (s *Service) newAppointmentID() string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("apt_%s_%s", s.now().Format("20060102_150405"), suffix)
}

// Schedule books a new appointment one week out unless an explicit time
// is supplied.
func (s *Service) Schedule(ctx context.Context, p ScheduleParams) (*Appointment, error) {
	if p.PatientID == "" {
		p.PatientID = "unknown"
	}
	if p.DoctorID == "" {
		p.DoctorID = "available"
	}
	if p.Type == "" {
		p.Type = "consultation"
	}
	at := s.now().Add(scheduleLeadTime)
	if p.At != nil {
		at = *p.At
	}

	a := &Appointment{
		ID:          s.newAppointmentID(),
		PatientID:   p.PatientID,
		DoctorID:    p.DoctorID,
		ScheduledAt: at,
		Type:        p.Type,
		Status:      StatusScheduled,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Reschedule moves an existing appointment two weeks out.
func (s *Service) Reschedule(ctx context.Context, id string) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.ScheduledAt = s.now().Add(rescheduleLeadTime)
	a.Status = StatusRescheduled
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Cancel marks an appointment cancelled. Cancelling an already-cancelled
// appointment is an idempotent success.
func (s *Service) Cancel(ctx context.Context, id string) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Status = StatusCancelled
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}
