package ops

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Alert is one de-duplicated operator alert.
type Alert struct {
	Code      string     `json:"code"`
	Severity  string     `json:"severity"`
	Message   string     `json:"message"`
	FirstSeen time.Time  `json:"first_seen"`
	LastSeen  time.Time  `json:"last_seen"`
	Count     int64      `json:"count"`
	Acked     bool       `json:"acked"`
	AckedAt   *time.Time `json:"acked_at,omitempty"`
}

// AlertStore persists alerts.
type AlertStore interface {
	UpsertAlert(ctx context.Context, code, severity, message string, at time.Time) error
	SetAlertAcked(ctx context.Context, code string, acked bool, at time.Time) error
}

// AlertManager de-duplicates alerts by code: repeated firings bump count and
// last_seen instead of multiplying rows. Ack and unack are idempotent.
type AlertManager struct {
	mu      sync.Mutex
	alerts  map[string]*Alert
	store   AlertStore
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewAlertManager builds an alert manager. store and metrics may be nil.
func NewAlertManager(store AlertStore, metrics *Metrics, logger *slog.Logger, now func() time.Time) *AlertManager {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &AlertManager{
		alerts:  make(map[string]*Alert),
		store:   store,
		metrics: metrics,
		logger:  logger.With("component", "alerts"),
		now:     now,
	}
}

// Raise fires an alert. Re-firing an existing code updates it in place; an
// acked alert stays acked until it is unacked explicitly.
func (m *AlertManager) Raise(code, severity, message string) {
	now := m.now()

	m.mu.Lock()
	a, ok := m.alerts[code]
	if ok {
		a.Count++
		a.LastSeen = now
		a.Severity = severity
		a.Message = message
	} else {
		a = &Alert{
			Code:      code,
			Severity:  severity,
			Message:   message,
			FirstSeen: now,
			LastSeen:  now,
			Count:     1,
		}
		m.alerts[code] = a
	}
	m.mu.Unlock()

	m.logger.Warn("alert raised", "code", code, "severity", severity, "message", message)
	if m.metrics != nil {
		m.metrics.AlertsRaised.WithLabelValues(code).Inc()
	}
	if m.store != nil {
		if err := m.store.UpsertAlert(context.Background(), code, severity, message, now); err != nil {
			m.logger.Error("alert persist failed", "code", code, "error", err)
		}
	}
}

// Ack marks an alert acknowledged. Returns false for unknown codes.
func (m *AlertManager) Ack(code string) bool {
	return m.setAcked(code, true)
}

// Unack returns an alert to the active list.
func (m *AlertManager) Unack(code string) bool {
	return m.setAcked(code, false)
}

func (m *AlertManager) setAcked(code string, acked bool) bool {
	now := m.now()

	m.mu.Lock()
	a, ok := m.alerts[code]
	if ok {
		a.Acked = acked
		if acked {
			t := now
			a.AckedAt = &t
		} else {
			a.AckedAt = nil
		}
	}
	m.mu.Unlock()
	if !ok {
		return false
	}

	if m.store != nil {
		if err := m.store.SetAlertAcked(context.Background(), code, acked, now); err != nil {
			m.logger.Error("alert ack persist failed", "code", code, "error", err)
		}
	}
	return true
}

// List returns alerts sorted by last_seen, newest first. Acked alerts are
// included only on request.
func (m *AlertManager) List(includeAcked bool) []Alert {
	m.mu.Lock()
	out := make([]Alert, 0, len(m.alerts))
	for _, a := range m.alerts {
		if a.Acked && !includeAcked {
			continue
		}
		out = append(out, *a)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].LastSeen.After(out[j].LastSeen) })
	return out
}

// Prune drops acked alerts whose last firing is older than the retention
// window.
func (m *AlertManager) Prune(retention time.Duration) int {
	cutoff := m.now().Add(-retention)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for code, a := range m.alerts {
		if a.Acked && a.LastSeen.Before(cutoff) {
			delete(m.alerts, code)
			n++
		}
	}
	return n
}
