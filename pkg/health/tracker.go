package health

import (
	"sort"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// latencyWindow is how many probe latencies feed the p95 estimate.
const latencyWindow = 32

// tracker carries the hysteresis state for one backend.
type tracker struct {
	state       models.BackendState
	consecFails int
	consecOKs   int
	lastOkAt    time.Time
	lastErr     string
	latencies   []time.Duration
	healedAt    time.Time
}

func newTracker() *tracker {
	return &tracker{state: models.BackendUp}
}

// observe folds one probe result in and reports whether the state changed.
// Transitions need failThreshold consecutive failures to go down and
// okThreshold consecutive successes to come back, so single blips don't
// flap the surface.
func (t *tracker) observe(err error, latency time.Duration, at time.Time, failThreshold, okThreshold int) bool {
	prev := t.state
	if err != nil {
		t.consecFails++
		t.consecOKs = 0
		t.lastErr = err.Error()
		if t.consecFails >= failThreshold {
			t.state = models.BackendDown
		} else if t.state == models.BackendUp {
			t.state = models.BackendDegraded
		}
		return t.state != prev
	}

	t.consecOKs++
	t.consecFails = 0
	t.lastOkAt = at
	t.latencies = append(t.latencies, latency)
	if len(t.latencies) > latencyWindow {
		t.latencies = t.latencies[1:]
	}
	if t.state != models.BackendUp && t.consecOKs >= okThreshold {
		t.state = models.BackendUp
		t.lastErr = ""
	}
	return t.state != prev
}

// p95 estimates the 95th percentile probe latency in milliseconds.
func (t *tracker) p95() int64 {
	if len(t.latencies) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(t.latencies))
	copy(sorted, t.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := len(sorted) * 95 / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx].Milliseconds()
}

// health renders the tracker as the public per-backend view.
func (t *tracker) health(healCooldown time.Duration) models.BackendHealth {
	h := models.BackendHealth{
		State:        t.state,
		Up:           t.state == models.BackendUp,
		LastOkAt:     t.lastOkAt,
		LastError:    t.lastErr,
		P95LatencyMS: t.p95(),
	}
	if t.state == models.BackendDegraded {
		h.Degraded = true
		h.DegradedWhy = t.lastErr
	}
	if !t.healedAt.IsZero() {
		h.CooldownTill = t.healedAt.Add(healCooldown)
	}
	return h
}
