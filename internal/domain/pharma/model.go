package pharma

// DrugCandidate describes a compound under evaluation. Candidates are
// produced per query and never persisted. Scores run 0-10 by convention.
type DrugCandidate struct {
	Name             string  `json:"name"`
	Mechanism        string  `json:"mechanism"`
	TargetDisease    string  `json:"target_disease"`
	SafetyScore      float64 `json:"safety_score"`
	EfficacyScore    float64 `json:"efficacy_score"`
	DevelopmentStage string  `json:"development_stage"`
}

// TreatmentRecommendation is a structured treatment proposal.
type TreatmentRecommendation struct {
	PrimaryTreatment       string   `json:"primary_treatment"`
	AlternativeOptions     []string `json:"alternative_options"`
	MonitoringRequirements []string `json:"monitoring_requirements"`
	Contraindications      []string `json:"contraindications"`
	ExpectedOutcomes       string   `json:"expected_outcomes"`
}
