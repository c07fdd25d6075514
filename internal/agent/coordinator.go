package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentcare/agentcare/internal/platform/llm"
	"github.com/agentcare/agentcare/internal/platform/telemetry"
)

// Classification is the structured routing decision parsed from the
// classifier's JSON reply.
type Classification struct {
	AgentType  string `json:"agent_type"`
	Intent     string `json:"intent"`
	Parameters Params `json:"parameters"`
	Priority   string `json:"priority"`
}

// Coordinator classifies each request once and dispatches it to the
// matching agent. It is stateless between requests; all shared state
// lives in the domain registries.
type Coordinator struct {
	llm     llm.Client
	agents  map[Type]Agent
	metrics *telemetry.Metrics
	log     zerolog.Logger
}

func NewCoordinator(client llm.Client, agents map[Type]Agent, metrics *telemetry.Metrics, log zerolog.Logger) *Coordinator {
	return &Coordinator{llm: client, agents: agents, metrics: metrics, log: log}
}

// Classify sends the request and serialized context to the completion
// service and parses the routing decision from its reply.
func (c *Coordinator) Classify(ctx context.Context, request string, reqContext map[string]interface{}) (*Classification, error) {
	user := request
	if len(reqContext) > 0 {
		encoded, err := json.Marshal(reqContext)
		if err != nil {
			return nil, fmt.Errorf("encode request context: %w", err)
		}
		user = fmt.Sprintf("%s\n\nContext: %s", request, encoded)
	}

	reply, err := c.llm.Complete(ctx, classifySystemPrompt, user, classifyTemperature)
	if err != nil {
		return nil, fmt.Errorf("classify request: %w", err)
	}

	var cls Classification
	if err := json.Unmarshal([]byte(stripFences(reply)), &cls); err != nil {
		return nil, fmt.Errorf("parse classification reply: %w", err)
	}
	if cls.Parameters == nil {
		cls.Parameters = Params{}
	}
	return &cls, nil
}

// Dispatch routes a classified request. An unrecognized or missing
// agent type falls through to the general agent; it is not an error.
func (c *Coordinator) Dispatch(ctx context.Context, request string, cls *Classification) Result {
	target, ok := c.agents[Type(cls.AgentType)]
	if !ok {
		c.log.Debug().Str("agent_type", cls.AgentType).Msg("unrecognized agent type, using general agent")
		target = c.agents[TypeGeneral]
	}
	return target.Handle(ctx, request, cls.Parameters)
}

// ProcessRequest is the public entry point: classify, dispatch, and
// convert every fault into the failure-shaped result. No request is
// retried.
func (c *Coordinator) ProcessRequest(ctx context.Context, request string, reqContext map[string]interface{}) (result Result) {
	agentType := "unclassified"
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("agent panicked")
			result = Failure(fmt.Errorf("internal fault: %v", r))
		}
		status := statusSuccess
		if result.Failed() {
			status = statusFailed
		}
		c.metrics.ObserveRequest(agentType, status)
	}()

	cls, err := c.Classify(ctx, request, reqContext)
	if err != nil {
		c.log.Error().Err(err).Msg("request classification failed")
		return Failure(err)
	}
	if _, ok := c.agents[Type(cls.AgentType)]; ok {
		agentType = cls.AgentType
	} else {
		agentType = string(TypeGeneral)
	}
	c.log.Info().
		Str("agent_type", agentType).
		Str("intent", cls.Intent).
		Str("priority", cls.Priority).
		Msg("request classified")

	result = c.Dispatch(ctx, request, cls)
	result["agent_type"] = agentType
	return result
}

// stripFences removes a markdown code fence the model may wrap around
// its JSON reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
