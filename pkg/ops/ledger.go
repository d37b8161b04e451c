// Package ops carries the operational surface: the usage ledger and soft
// caps, de-duplicated alerts, the attempt log writer, Prometheus metrics
// and periodic ops reports.
package ops

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

// Bucket key formats.
const (
	monthFormat = "2006-01"
	dayFormat   = "2006-01-02"
)

// UsageDelta is one increment against a usage bucket.
type UsageDelta struct {
	Calls     int64   `json:"calls"`
	Failures  int64   `json:"failures"`
	CostUSD   float64 `json:"estimated_cost_usd"`
	TokensIn  int64   `json:"tokens_in"`
	TokensOut int64   `json:"tokens_out"`
}

// UsageStore persists usage buckets.
type UsageStore interface {
	AddUsage(ctx context.Context, month string, tier models.Tier, modelID string, delta UsageDelta) error
}

// BucketKey identifies one month-bucketed usage counter.
type BucketKey struct {
	Month   string      `json:"month"`
	Tier    models.Tier `json:"tier"`
	ModelID string      `json:"model_id"`
}

// UsageLedger is the authoritative month-bucketed usage accounting. Counters
// are monotonic within their bucket; the Prometheus metrics mirror them for
// dashboards. Soft caps warn at 80% and alert at 100%; they never block.
type UsageLedger struct {
	mu        sync.Mutex
	buckets   map[BucketKey]*UsageDelta
	freeByDay map[string]int

	caps    *config.RoutingConfig
	store   UsageStore
	alerts  *AlertManager
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewUsageLedger builds a ledger. store, alerts and metrics may be nil.
func NewUsageLedger(caps *config.RoutingConfig, store UsageStore, alerts *AlertManager, metrics *Metrics, logger *slog.Logger, now func() time.Time) *UsageLedger {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &UsageLedger{
		buckets:   make(map[BucketKey]*UsageDelta),
		freeByDay: make(map[string]int),
		caps:      caps,
		store:     store,
		alerts:    alerts,
		metrics:   metrics,
		logger:    logger.With("component", "ledger"),
		now:       now,
	}
}

// RecordAttempt folds one terminal attempt into the ledger.
func (l *UsageLedger) RecordAttempt(ctx context.Context, a models.Attempt) {
	now := l.now()
	month := now.Format(monthFormat)
	key := BucketKey{Month: month, Tier: a.Plan.Tier, ModelID: a.Plan.ModelID}

	delta := UsageDelta{
		Calls:    1,
		CostUSD:  a.Plan.CostEstimateUSD,
		TokensIn: int64(a.BytesIn / 4),
	}
	if a.Outcome != models.OutcomeOK {
		delta.Failures = 1
	}
	delta.TokensOut = int64(a.BytesOut / 4)

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &UsageDelta{}
		l.buckets[key] = b
	}
	b.Calls += delta.Calls
	b.Failures += delta.Failures
	b.CostUSD += delta.CostUSD
	b.TokensIn += delta.TokensIn
	b.TokensOut += delta.TokensOut

	if a.Plan.Tier == models.TierCloudFree {
		l.freeByDay[now.Format(dayFormat)]++
	}
	freeToday := l.freeByDay[now.Format(dayFormat)]
	paidSpend := l.paidSpendLocked(month)
	l.mu.Unlock()

	if l.metrics != nil {
		tier := string(a.Plan.Tier)
		l.metrics.AttemptsTotal.WithLabelValues(tier, string(a.Outcome)).Inc()
		l.metrics.CostUSD.WithLabelValues(tier).Add(delta.CostUSD)
		if !a.EndedAt.IsZero() && !a.StartedAt.IsZero() {
			l.metrics.AttemptDuration.WithLabelValues(tier).Observe(a.EndedAt.Sub(a.StartedAt).Seconds())
		}
	}

	if l.store != nil {
		if err := l.store.AddUsage(ctx, month, a.Plan.Tier, a.Plan.ModelID, delta); err != nil {
			l.logger.Error("usage persist failed", "month", month, "model", a.Plan.ModelID, "error", err)
		}
	}

	l.checkCaps(a.Plan.Tier, freeToday, paidSpend)
}

// checkCaps raises the soft-cap alerts. The alert manager de-duplicates, so
// firing on every attempt past the threshold is safe.
func (l *UsageLedger) checkCaps(tier models.Tier, freeToday int, paidSpend float64) {
	if l.alerts == nil {
		return
	}
	if tier == models.TierCloudFree && l.caps.FreeCloudDailyCallCap > 0 {
		cap := l.caps.FreeCloudDailyCallCap
		switch {
		case freeToday >= cap:
			l.alerts.Raise("free_tier_cap_reached", "high",
				fmt.Sprintf("free tier daily calls at %d of %d", freeToday, cap))
		case freeToday*10 >= cap*8:
			l.alerts.Raise("free_tier_cap_warn", "warn",
				fmt.Sprintf("free tier daily calls at %d of %d", freeToday, cap))
		}
	}
	if tier == models.TierCloudPaid && l.caps.PaidCloudMonthlyUSDCap > 0 {
		cap := l.caps.PaidCloudMonthlyUSDCap
		switch {
		case paidSpend >= cap:
			l.alerts.Raise("paid_budget_reached", "high",
				fmt.Sprintf("paid tier spend at $%.2f of $%.2f this month", paidSpend, cap))
		case paidSpend >= cap*0.8:
			l.alerts.Raise("paid_budget_warn", "warn",
				fmt.Sprintf("paid tier spend at $%.2f of $%.2f this month", paidSpend, cap))
		}
	}
}

// FreeCallsToday reports today's free-tier call count.
func (l *UsageLedger) FreeCallsToday() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.freeByDay[l.now().Format(dayFormat)]
}

// PaidSpendMonthUSD reports the current month's estimated paid spend.
func (l *UsageLedger) PaidSpendMonthUSD() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paidSpendLocked(l.now().Format(monthFormat))
}

func (l *UsageLedger) paidSpendLocked(month string) float64 {
	total := 0.0
	for key, b := range l.buckets {
		if key.Month == month && key.Tier == models.TierCloudPaid {
			total += b.CostUSD
		}
	}
	return total
}

// Summary returns a copy of the current month's buckets.
func (l *UsageLedger) Summary() map[BucketKey]UsageDelta {
	month := l.now().Format(monthFormat)

	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[BucketKey]UsageDelta)
	for key, b := range l.buckets {
		if key.Month == month {
			out[key] = *b
		}
	}
	return out
}
