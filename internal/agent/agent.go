// Package agent routes classified healthcare requests to specialized
// handlers. A coordinator classifies free text through the completion
// service and dispatches to one of four agents; each agent returns a
// tagged result and never lets a fault escape as a panic.
package agent

import "context"

// Type identifies an agent category as emitted by the classifier.
type Type string

const (
	TypeAppointment   Type = "appointment_scheduling"
	TypeDrugDiscovery Type = "drug_discovery"
	TypeMonitoring    Type = "patient_monitoring"
	TypeGeneral       Type = "general_query"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// Result is the tagged payload every agent returns. Successful results
// carry "action" and "status": "success" plus agent-specific fields;
// failures carry "error" and "status": "failed".
type Result map[string]interface{}

// Failed reports whether the result carries the failure shape.
func (r Result) Failed() bool {
	status, _ := r["status"].(string)
	return status == statusFailed
}

func success(action string, fields map[string]interface{}) Result {
	r := Result{"action": action, "status": statusSuccess}
	for k, v := range fields {
		r[k] = v
	}
	return r
}

// Failure converts an error into the failure-shaped result returned to
// callers. Faults never propagate past the agent boundary in any other
// form.
func Failure(err error) Result {
	return Result{"error": err.Error(), "status": statusFailed}
}

// Agent handles one classified request with its extracted parameters.
type Agent interface {
	Handle(ctx context.Context, request string, params Params) Result
}
