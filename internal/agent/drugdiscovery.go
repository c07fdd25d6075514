package agent

import (
	"context"
	"fmt"

	"github.com/agentcare/agentcare/internal/domain/pharma"
	"github.com/agentcare/agentcare/internal/platform/llm"
)

// DrugDiscoveryAgent always asks the completion service for a narrative
// analysis and augments it with candidate or treatment data when the
// request asks for them.
type DrugDiscoveryAgent struct {
	llm        llm.Client
	candidates pharma.CandidateSource
}

func NewDrugDiscoveryAgent(client llm.Client, src pharma.CandidateSource) *DrugDiscoveryAgent {
	return &DrugDiscoveryAgent{llm: client, candidates: src}
}

func (a *DrugDiscoveryAgent) Handle(ctx context.Context, request string, params Params) Result {
	analysis, err := a.llm.Complete(ctx, drugDiscoverySystemPrompt, request, drugDiscoveryTemperature)
	if err != nil {
		return Failure(fmt.Errorf("drug discovery analysis: %w", err))
	}

	switch DrugDiscoveryIntent(request) {
	case IntentCompoundAnalysis:
		return success("compound_analysis", map[string]interface{}{
			"analysis":   analysis,
			"candidates": a.candidates.Candidates(params.String("target_disease")),
		})
	case IntentTreatmentRecommendation:
		return success("treatment_recommendation", map[string]interface{}{
			"analysis":       analysis,
			"recommendation": a.candidates.Recommend(params.StringList("contraindications")),
		})
	}
	return success("drug_discovery_consultation", map[string]interface{}{
		"analysis": analysis,
	})
}
