package models

import "time"

// BackendState is the hysteresis-guarded availability state of a backend.
type BackendState string

// Backend states. Transitions require consecutive observations so short
// blips don't flap the UI.
const (
	BackendUp       BackendState = "up"
	BackendDegraded BackendState = "degraded"
	BackendDown     BackendState = "down"
)

// BackendHealth is the per-backend slice of the HealthSnapshot.
type BackendHealth struct {
	State        BackendState `json:"state"`
	Up           bool         `json:"up"`
	LastOkAt     time.Time    `json:"last_ok_at"`
	LastError    string       `json:"last_error,omitempty"`
	P95LatencyMS int64        `json:"p95_latency_ms"`
	CooldownTill time.Time    `json:"cooldown_until,omitempty"`
	Degraded     bool         `json:"degraded"`
	DegradedWhy  string       `json:"degraded_reason,omitempty"`
}

// ResourceGauges carries local process resource readings.
type ResourceGauges struct {
	HeapBytes    uint64 `json:"heap_bytes"`
	NumGoroutine int    `json:"num_goroutine"`
}

// HealthSnapshot is the process-wide health picture owned by the Supervisor.
// Readers always receive a value copy.
type HealthSnapshot struct {
	Backends    map[string]BackendHealth `json:"backends"`
	Resources   ResourceGauges           `json:"resources"`
	RefreshedAt time.Time                `json:"refreshed_at"`
	NextAction  string                   `json:"recommended_next_action,omitempty"`
}

// Backend returns the health entry for a backend ID, zero value if unknown.
func (s HealthSnapshot) Backend(id string) BackendHealth {
	if s.Backends == nil {
		return BackendHealth{}
	}
	return s.Backends[id]
}
