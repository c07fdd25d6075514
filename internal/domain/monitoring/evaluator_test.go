package monitoring

import (
	"testing"
	"time"
)

func TestEvaluateVitals_NormalRangeNoAlerts(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		vitals map[string]float64
	}{
		{"empty readings", map[string]float64{}},
		{"nil readings", nil},
		{"both at threshold", map[string]float64{"heart_rate": 100, "blood_pressure_systolic": 140}},
		{"normal values", map[string]float64{"heart_rate": 72, "blood_pressure_systolic": 118}},
		{"unknown vitals ignored", map[string]float64{"temperature": 104, "spo2": 80}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alerts := EvaluateVitals("P001", tc.vitals, now)
			if len(alerts) != 0 {
				t.Errorf("expected no alerts, got %d: %+v", len(alerts), alerts)
			}
		})
	}
}

func TestEvaluateVitals_ElevatedHeartRate(t *testing.T) {
	alerts := EvaluateVitals("P001", map[string]float64{"heart_rate": 105}, time.Now())
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.AlertType != "Vital Signs" || a.Level != AlertMedium {
		t.Errorf("expected medium Vital Signs alert, got %+v", a)
	}
	if a.PatientID != "P001" {
		t.Errorf("expected patient P001, got %s", a.PatientID)
	}
}

func TestEvaluateVitals_BothAlertsInRuleOrder(t *testing.T) {
	now := time.Now()
	alerts := EvaluateVitals("P001", map[string]float64{
		"heart_rate":              105,
		"blood_pressure_systolic": 160,
	}, now)

	if len(alerts) != 2 {
		t.Fatalf("expected exactly 2 alerts, got %d", len(alerts))
	}
	if alerts[0].AlertType != "Vital Signs" || alerts[0].Level != AlertMedium {
		t.Errorf("expected first alert medium Vital Signs, got %+v", alerts[0])
	}
	if alerts[1].AlertType != "Blood Pressure" || alerts[1].Level != AlertHigh {
		t.Errorf("expected second alert high Blood Pressure, got %+v", alerts[1])
	}
	if !alerts[0].Timestamp.Equal(now) {
		t.Error("expected alert timestamp set from evaluation time")
	}
}

func TestEvaluateVitals_UnknownPatientDefault(t *testing.T) {
	alerts := EvaluateVitals("", map[string]float64{"heart_rate": 120}, time.Now())
	if len(alerts) != 1 || alerts[0].PatientID != "unknown" {
		t.Errorf("expected unknown patient fallback, got %+v", alerts)
	}
}

func TestAssessRisk_Boundaries(t *testing.T) {
	age60 := 60
	age50 := 50
	age150 := 150

	cases := []struct {
		name      string
		factors   []string
		age       *int
		wantScore float64
		wantLevel string
	}{
		{"no factors age 50", []string{}, &age50, 0, "low"},
		{"defaults when absent", nil, nil, 0, "low"},
		{"boundary score 5 is medium", []string{"a", "b"}, &age60, 5.0, "medium"},
		{"boundary score 10 is high", []string{"a", "b", "c", "d", "e"}, &age50, 10.0, "high"},
		{"age only", nil, &age150, 10.0, "high"},
		{"just under medium", []string{"a", "b"}, &age50, 4.0, "low"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := AssessRisk(tc.factors, tc.age)
			if report.RiskScore != tc.wantScore {
				t.Errorf("expected score %v, got %v", tc.wantScore, report.RiskScore)
			}
			if report.RiskLevel != tc.wantLevel {
				t.Errorf("expected level %s, got %s", tc.wantLevel, report.RiskLevel)
			}
		})
	}
}

func TestAssessRisk_EchoesFactorsAndRecommendations(t *testing.T) {
	factors := []string{"Smoking history", "Family history of heart disease"}
	report := AssessRisk(factors, nil)

	if len(report.ContributingFactors) != 2 || report.ContributingFactors[0] != "Smoking history" {
		t.Errorf("expected factors echoed, got %v", report.ContributingFactors)
	}
	if len(report.Recommendations) != 3 {
		t.Errorf("expected the 3 standard recommendations, got %v", report.Recommendations)
	}
}

func TestAlertLevel_Rank(t *testing.T) {
	order := []AlertLevel{AlertLow, AlertMedium, AlertHigh, AlertCritical}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("expected %s < %s", order[i-1], order[i])
		}
	}
}
