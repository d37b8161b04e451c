package ops

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the Prometheus mirror of the ops counters. The ledger stays
// the source of truth for budgets; metrics exist for dashboards.
type Metrics struct {
	AttemptsTotal   *prometheus.CounterVec
	AttemptDuration *prometheus.HistogramVec
	CostUSD         *prometheus.CounterVec
	AlertsRaised    *prometheus.CounterVec
	QueueDepth      prometheus.Gauge
	ActiveWorkers   prometheus.Gauge
}

// NewMetrics registers the metric set on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "krab_attempts_total",
			Help: "Model attempts by tier and outcome.",
		}, []string{"tier", "outcome"}),
		AttemptDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "krab_attempt_duration_seconds",
			Help:    "Attempt wall time by tier.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"tier"}),
		CostUSD: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "krab_estimated_cost_usd_total",
			Help: "Estimated spend by tier.",
		}, []string{"tier"}),
		AlertsRaised: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "krab_alerts_raised_total",
			Help: "Alert firings by code.",
		}, []string{"code"}),
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "krab_queue_depth",
			Help: "Queued requests across all chats.",
		}),
		ActiveWorkers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "krab_active_workers",
			Help: "Live per-chat workers.",
		}),
	}
}

// SetQueueDepth updates the queued-requests gauge.
func (m *Metrics) SetQueueDepth(n int) { m.QueueDepth.Set(float64(n)) }

// SetActiveWorkers updates the live-workers gauge.
func (m *Metrics) SetActiveWorkers(n int) { m.ActiveWorkers.Set(float64(n)) }
