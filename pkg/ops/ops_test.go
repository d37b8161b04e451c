package ops

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

func paidAttempt(cost float64) models.Attempt {
	return models.Attempt{
		Plan:      models.Plan{Tier: models.TierCloudPaid, ModelID: "claude-haiku", CostEstimateUSD: cost},
		Outcome:   models.OutcomeOK,
		StartedAt: time.Now(),
		EndedAt:   time.Now().Add(time.Second),
	}
}

func freeAttempt() models.Attempt {
	return models.Attempt{
		Plan:    models.Plan{Tier: models.TierCloudFree, ModelID: "glm-free"},
		Outcome: models.OutcomeOK,
	}
}

func TestLedgerBucketsByMonthTierModel(t *testing.T) {
	l := NewUsageLedger(config.DefaultRoutingConfig(), nil, nil, nil, nil, nil)
	ctx := context.Background()

	l.RecordAttempt(ctx, paidAttempt(0.01))
	l.RecordAttempt(ctx, paidAttempt(0.02))
	fail := paidAttempt(0.01)
	fail.Outcome = models.OutcomeTransient
	l.RecordAttempt(ctx, fail)

	summary := l.Summary()
	require.Len(t, summary, 1)
	for _, b := range summary {
		assert.Equal(t, int64(3), b.Calls)
		assert.Equal(t, int64(1), b.Failures)
		assert.InDelta(t, 0.04, b.CostUSD, 1e-9)
	}
	assert.InDelta(t, 0.04, l.PaidSpendMonthUSD(), 1e-9)
}

func TestLedgerFreeDailyCount(t *testing.T) {
	l := NewUsageLedger(config.DefaultRoutingConfig(), nil, nil, nil, nil, nil)
	ctx := context.Background()

	assert.Zero(t, l.FreeCallsToday())
	l.RecordAttempt(ctx, freeAttempt())
	l.RecordAttempt(ctx, freeAttempt())
	assert.Equal(t, 2, l.FreeCallsToday())
}

func TestLedgerSoftCapsRaiseAlerts(t *testing.T) {
	caps := config.DefaultRoutingConfig()
	caps.FreeCloudDailyCallCap = 5
	am := NewAlertManager(nil, nil, nil, nil)
	l := NewUsageLedger(caps, nil, am, nil, nil, nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		l.RecordAttempt(ctx, freeAttempt())
	}
	codes := alertCodes(am.List(true))
	assert.Contains(t, codes, "free_tier_cap_warn")
	assert.NotContains(t, codes, "free_tier_cap_reached")

	l.RecordAttempt(ctx, freeAttempt())
	codes = alertCodes(am.List(true))
	assert.Contains(t, codes, "free_tier_cap_reached")
}

func TestLedgerPaidBudgetAlerts(t *testing.T) {
	caps := config.DefaultRoutingConfig()
	caps.PaidCloudMonthlyUSDCap = 1.0
	am := NewAlertManager(nil, nil, nil, nil)
	l := NewUsageLedger(caps, nil, am, nil, nil, nil)
	ctx := context.Background()

	l.RecordAttempt(ctx, paidAttempt(0.85))
	codes := alertCodes(am.List(true))
	assert.Contains(t, codes, "paid_budget_warn")

	l.RecordAttempt(ctx, paidAttempt(0.20))
	codes = alertCodes(am.List(true))
	assert.Contains(t, codes, "paid_budget_reached")
}

func alertCodes(list []Alert) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Code)
	}
	return out
}

func TestAlertDedupAndAck(t *testing.T) {
	am := NewAlertManager(nil, nil, nil, nil)

	am.Raise("backend_down", "high", "backend lmstudio is down")
	am.Raise("backend_down", "high", "backend lmstudio is down")
	am.Raise("backend_down", "high", "backend lmstudio is down")

	list := am.List(false)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].Count)

	assert.True(t, am.Ack("backend_down"))
	assert.Empty(t, am.List(false))
	require.Len(t, am.List(true), 1)
	assert.True(t, am.List(true)[0].Acked)

	// Idempotent ack, and unack restores visibility.
	assert.True(t, am.Ack("backend_down"))
	assert.True(t, am.Unack("backend_down"))
	assert.Len(t, am.List(false), 1)

	assert.False(t, am.Ack("no_such_alert"))
}

func TestAlertPruneKeepsActive(t *testing.T) {
	now := time.Now()
	am := NewAlertManager(nil, nil, nil, func() time.Time { return now })

	am.Raise("old_acked", "info", "x")
	am.Raise("old_active", "info", "x")
	am.Ack("old_acked")

	now = now.Add(48 * time.Hour)
	n := am.Prune(24 * time.Hour)

	assert.Equal(t, 1, n)
	codes := alertCodes(am.List(true))
	assert.Contains(t, codes, "old_active")
	assert.NotContains(t, codes, "old_acked")
}

type memAttemptStore struct {
	mu   sync.Mutex
	rows []AttemptRow
}

func (m *memAttemptStore) InsertAttempt(_ context.Context, row AttemptRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, row)
	return nil
}

func (m *memAttemptStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func TestAttemptWriterDrains(t *testing.T) {
	store := &memAttemptStore{}
	w := NewAttemptWriter(store, nil)
	w.Start()

	for i := 0; i < 10; i++ {
		w.Enqueue(AttemptRow{RequestID: "r", ChatID: "c", Attempt: freeAttempt()})
	}
	w.Stop()

	assert.Equal(t, 10, store.Len())
	assert.Zero(t, w.Dropped())
}

func TestReporterCatalogAndLatest(t *testing.T) {
	l := NewUsageLedger(config.DefaultRoutingConfig(), nil, nil, nil, nil, nil)
	am := NewAlertManager(nil, nil, nil, nil)
	l.RecordAttempt(context.Background(), paidAttempt(0.01))
	am.Raise("test_alert", "info", "hello")

	r := NewReporter(l, am, nil, time.Minute, nil, nil)

	rep, ok := r.Latest(ReportUsage)
	require.True(t, ok)
	require.Len(t, rep.Usage, 1)
	assert.Equal(t, "claude-haiku", rep.Usage[0].ModelID)

	rep, ok = r.Latest(ReportAlerts)
	require.True(t, ok)
	require.Len(t, rep.Alerts, 1)

	_, ok = r.Latest("bogus")
	assert.False(t, ok)

	catalog := r.Catalog()
	assert.Len(t, catalog, 2)
}
