package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer(client *fakeClient) *echo.Echo {
	fx := newFixture(client)
	e := echo.New()
	NewHandler(fx.coordinator, fx.metrics).RegisterRoutes(e.Group("/api/v1"))
	e.GET("/metrics", fx.metrics.Handler())
	return e
}

func TestProcessRequestEndpoint(t *testing.T) {
	client := &fakeClient{replies: []string{
		`{"agent_type": "general_query", "intent": "question", "parameters": {}, "priority": "low"}`,
		"Drink plenty of water.",
	}}
	e := newTestServer(client)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests",
		strings.NewReader(`{"request": "how do I stay hydrated?"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "success" || body["response"] != "Drink plenty of water." {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestProcessRequestEndpoint_EmptyRequest(t *testing.T) {
	e := newTestServer(&fakeClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests",
		strings.NewReader(`{"request": "  "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	// rejected bodies still show up in the request census
	metricsReq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	e.ServeHTTP(metricsRec, metricsReq)
	if !strings.Contains(metricsRec.Body.String(),
		`agentcare_requests_total{agent_type="unclassified",status="rejected"} 1`) {
		t.Errorf("expected rejected request counted, got:\n%s", metricsRec.Body.String())
	}
}

func TestProcessRequestEndpoint_FailureShapeStill200(t *testing.T) {
	e := newTestServer(&fakeClient{err: errors.New("completion unavailable")})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests",
		strings.NewReader(`{"request": "anything"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != "failed" {
		t.Errorf("expected failure-shaped body, got %+v", body)
	}
}
