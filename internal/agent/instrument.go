package agent

import (
	"context"
	"time"

	"github.com/agentcare/agentcare/internal/platform/llm"
	"github.com/agentcare/agentcare/internal/platform/telemetry"
)

type instrumentedClient struct {
	inner   llm.Client
	metrics *telemetry.Metrics
}

// InstrumentClient wraps a completion client so every call feeds the
// latency histogram.
func InstrumentClient(inner llm.Client, metrics *telemetry.Metrics) llm.Client {
	return &instrumentedClient{inner: inner, metrics: metrics}
}

func (c *instrumentedClient) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	start := time.Now()
	reply, err := c.inner.Complete(ctx, system, user, temperature)
	c.metrics.ObserveCompletion(time.Since(start))
	return reply, err
}
