package agent

import (
	"context"
	"fmt"

	"github.com/agentcare/agentcare/internal/platform/llm"
)

// GeneralAgent answers anything the other agents do not cover. It is
// also the fall-through for unrecognized classifications.
type GeneralAgent struct {
	llm llm.Client
}

func NewGeneralAgent(client llm.Client) *GeneralAgent {
	return &GeneralAgent{llm: client}
}

func (a *GeneralAgent) Handle(ctx context.Context, request string, _ Params) Result {
	reply, err := a.llm.Complete(ctx, generalSystemPrompt, request, generalTemperature)
	if err != nil {
		return Failure(fmt.Errorf("general consultation: %w", err))
	}
	return success("general_consultation", map[string]interface{}{
		"response": reply,
	})
}
