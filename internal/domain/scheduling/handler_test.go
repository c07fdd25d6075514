package scheduling

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()
	svc := NewService(NewMemoryRepo())
	e := echo.New()
	NewHandler(svc).RegisterRoutes(e.Group("/api/v1"))
	return e, svc
}

func TestListAppointments(t *testing.T) {
	e, svc := newTestServer(t)
	svc.Schedule(context.Background(), ScheduleParams{PatientID: "P001"})
	svc.Schedule(context.Background(), ScheduleParams{PatientID: "P002"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Data  []Appointment `json:"data"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Total != 2 || len(body.Data) != 2 {
		t.Errorf("expected 2 appointments, got %+v", body)
	}
	if body.Data[0].PatientID != "P001" {
		t.Errorf("expected insertion order, got %+v", body.Data)
	}
}

func TestGetAppointment(t *testing.T) {
	e, svc := newTestServer(t)
	appt, _ := svc.Schedule(context.Background(), ScheduleParams{PatientID: "P001"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+appt.ID, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID != appt.ID || got.Status != StatusScheduled {
		t.Errorf("unexpected appointment: %+v", got)
	}
}

func TestGetAppointment_NotFound(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/apt_missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
