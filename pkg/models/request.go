package models

import "time"

// Outcome is the terminal classification of one Attempt.
type Outcome string

// Attempt outcomes.
const (
	OutcomeOK        Outcome = "ok"
	OutcomeTransient Outcome = "transient"
	OutcomeFatal     Outcome = "fatal"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeLoop      Outcome = "loop"
	OutcomeCancelled Outcome = "cancelled"
)

// Terminal reports whether the outcome ends the Request (no fallback).
func (o Outcome) Terminal() bool {
	switch o {
	case OutcomeOK, OutcomeFatal, OutcomeLoop, OutcomeCancelled:
		return true
	default:
		return false
	}
}

// Attempt records one execution of a Plan against a backend.
// Appended to its Request on each tier try.
type Attempt struct {
	Plan        Plan      `json:"plan"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
	Outcome     Outcome   `json:"outcome"`
	BytesIn     int       `json:"bytes_in"`
	BytesOut    int       `json:"bytes_out"`
	ErrorCode   ErrorCode `json:"error_code,omitempty"`
	RouteReason string    `json:"route_reason,omitempty"`
}

// Request is the work item derived from one reply-worthy Event.
// Owned by exactly one ChatWorker for its entire life.
type Request struct {
	ID        string    `json:"id"`
	ChatID    ChatID    `json:"chat_id"`
	Event     Event     `json:"event"`
	Context   Context   `json:"context"`
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
	Attempts  []Attempt `json:"attempts"`
}

// CloudAttempts counts attempts executed on a cloud tier.
func (r *Request) CloudAttempts() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Plan.Tier.IsCloud() {
			n++
		}
	}
	return n
}

// LocalAttempts counts attempts executed on the local tier.
func (r *Request) LocalAttempts() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Plan.Tier == TierLocal {
			n++
		}
	}
	return n
}
