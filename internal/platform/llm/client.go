// Package llm wraps the external text-completion service behind a narrow
// interface so agents can be tested with a deterministic stub instead of
// a live network call. The service is the only unbounded-latency
// collaborator in the system; every call carries a bounded timeout.
package llm

import "context"

// Client is the text-completion collaborator. Complete sends a system
// instruction and user content and returns the model's raw text reply.
type Client interface {
	Complete(ctx context.Context, system, user string, temperature float32) (string, error)
}
