package scheduling

import "time"

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
)

var validStatuses = map[Status]bool{
	StatusScheduled: true, StatusRescheduled: true, StatusCancelled: true,
}

// Appointment is a booked visit. Appointments are never removed; a
// cancelled appointment stays in the registry with status "cancelled".
type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Type        string    `json:"type"`
	Status      Status    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
}
