package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestListAlerts_FilterByPatient(t *testing.T) {
	svc := NewService(NewMemoryAlertRepo())
	svc.MonitorVitals(context.Background(), "P001", map[string]float64{"heart_rate": 110})
	svc.MonitorVitals(context.Background(), "P002", map[string]float64{"blood_pressure_systolic": 150})

	e := echo.New()
	NewHandler(svc).RegisterRoutes(e.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?patient_id=P001", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Data  []PatientAlert `json:"data"`
		Total int            `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Total != 1 || body.Data[0].PatientID != "P001" {
		t.Errorf("expected one P001 alert, got %+v", body)
	}
}

func TestListAlerts_EmptyRegistryReturnsEmptyList(t *testing.T) {
	svc := NewService(NewMemoryAlertRepo())
	e := echo.New()
	NewHandler(svc).RegisterRoutes(e.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Data  []PatientAlert `json:"data"`
		Total int            `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data == nil || body.Total != 0 {
		t.Errorf("expected empty list, got %+v", body)
	}
}
