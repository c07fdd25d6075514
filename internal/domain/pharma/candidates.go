package pharma

// CandidateSource produces drug candidates for a target disease. The
// default source returns illustrative placeholder data; it exists as a
// seam so a real screening pipeline can replace it without touching the
// agents.
type CandidateSource interface {
	Candidates(targetDisease string) []DrugCandidate
	Recommend(contraindications []string) TreatmentRecommendation
}

type staticSource struct{}

// NewStaticSource returns the built-in demo candidate set.
func NewStaticSource() CandidateSource {
	return staticSource{}
}

func (staticSource) Candidates(targetDisease string) []DrugCandidate {
	if targetDisease == "" {
		targetDisease = "Unknown"
	}
	return []DrugCandidate{
		{
			Name:             "Compound-A123",
			Mechanism:        "Selective inhibitor",
			TargetDisease:    targetDisease,
			SafetyScore:      8.5,
			EfficacyScore:    7.2,
			DevelopmentStage: "Phase II",
		},
		{
			Name:             "BioMol-X456",
			Mechanism:        "Receptor agonist",
			TargetDisease:    targetDisease,
			SafetyScore:      7.8,
			EfficacyScore:    8.1,
			DevelopmentStage: "Preclinical",
		},
	}
}

func (staticSource) Recommend(contraindications []string) TreatmentRecommendation {
	if contraindications == nil {
		contraindications = []string{}
	}
	return TreatmentRecommendation{
		PrimaryTreatment:       "Evidence-based therapy protocol",
		AlternativeOptions:     []string{"Option A", "Option B"},
		MonitoringRequirements: []string{"Weekly lab work", "Monthly check-ups"},
		Contraindications:      contraindications,
		ExpectedOutcomes:       "Positive response expected in 4-6 weeks",
	}
}
