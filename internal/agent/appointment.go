package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/agentcare/agentcare/internal/domain/scheduling"
	"github.com/agentcare/agentcare/internal/platform/llm"
)

// AppointmentAgent books, moves and cancels appointments through the
// scheduling service and falls back to the completion service for
// free-text scheduling questions.
type AppointmentAgent struct {
	llm        llm.Client
	scheduling *scheduling.Service
}

func NewAppointmentAgent(client llm.Client, svc *scheduling.Service) *AppointmentAgent {
	return &AppointmentAgent{llm: client, scheduling: svc}
}

func (a *AppointmentAgent) Handle(ctx context.Context, request string, params Params) Result {
	switch SchedulingIntent(request) {
	case IntentReschedule:
		return a.reschedule(ctx, params)
	case IntentCancel:
		return a.cancel(ctx, params)
	case IntentSchedule:
		return a.schedule(ctx, params)
	}

	reply, err := a.llm.Complete(ctx, appointmentSystemPrompt, request, appointmentTemperature)
	if err != nil {
		return Failure(fmt.Errorf("appointment consultation: %w", err))
	}
	return success("appointment_consultation", map[string]interface{}{
		"recommendation": reply,
	})
}

func (a *AppointmentAgent) schedule(ctx context.Context, params Params) Result {
	p := scheduling.ScheduleParams{
		PatientID: params.String("patient_id"),
		DoctorID:  params.String("doctor_id"),
		Type:      params.String("appointment_type"),
	}
	if raw := params.String("datetime"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Failure(fmt.Errorf("parse requested datetime %q: %w", raw, err))
		}
		p.At = &at
	}

	appt, err := a.scheduling.Schedule(ctx, p)
	if err != nil {
		return Failure(fmt.Errorf("schedule appointment: %w", err))
	}
	return success("appointment_scheduled", map[string]interface{}{
		"appointment": appt,
	})
}

func (a *AppointmentAgent) reschedule(ctx context.Context, params Params) Result {
	id := params.String("appointment_id")
	appt, err := a.scheduling.Reschedule(ctx, id)
	if err != nil {
		return Failure(fmt.Errorf("reschedule appointment %q: %w", id, err))
	}
	return success("appointment_rescheduled", map[string]interface{}{
		"appointment": appt,
	})
}

func (a *AppointmentAgent) cancel(ctx context.Context, params Params) Result {
	id := params.String("appointment_id")
	appt, err := a.scheduling.Cancel(ctx, id)
	if err != nil {
		return Failure(fmt.Errorf("cancel appointment %q: %w", id, err))
	}
	return success("appointment_cancelled", map[string]interface{}{
		"appointment": appt,
	})
}
