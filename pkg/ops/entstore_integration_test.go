package ops_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/ent/alert"
	"github.com/Pavua/krab/ent/usagecounter"
	"github.com/Pavua/krab/pkg/database"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/ops"
	"github.com/Pavua/krab/test/util"
)

func setupStore(t *testing.T) (*ops.EntStore, *database.Client) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	entClient, db := util.SetupTestDatabase(t)
	client := database.NewClientFromEnt(entClient, db)
	return ops.NewEntStore(client), client
}

func TestAddUsageUpsertsBucket(t *testing.T) {
	store, client := setupStore(t)
	ctx := context.Background()

	delta := ops.UsageDelta{Calls: 1, CostUSD: 0.02, TokensIn: 100, TokensOut: 400}
	require.NoError(t, store.AddUsage(ctx, "2026-08", models.TierCloudPaid, "claude-haiku", delta))
	delta.Failures = 1
	require.NoError(t, store.AddUsage(ctx, "2026-08", models.TierCloudPaid, "claude-haiku", delta))

	row, err := client.UsageCounter.Query().
		Where(usagecounter.Month("2026-08"), usagecounter.ModelID("claude-haiku")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), row.Calls)
	assert.Equal(t, int64(1), row.Failures)
	assert.InDelta(t, 0.04, row.EstimatedCostUsd, 1e-9)
	assert.Equal(t, int64(800), row.TokensOut)
}

func TestUpsertAlertDeduplicatesByCode(t *testing.T) {
	store, client := setupStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, store.UpsertAlert(ctx, "backend_down", "high", "lmstudio down", now))
	require.NoError(t, store.UpsertAlert(ctx, "backend_down", "high", "still down", now.Add(time.Minute)))

	row, err := client.Alert.Query().Where(alert.Code("backend_down")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), row.Count)
	assert.Equal(t, "still down", row.Message)

	require.NoError(t, store.SetAlertAcked(ctx, "backend_down", true, now.Add(2*time.Minute)))
	row, err = client.Alert.Query().Where(alert.Code("backend_down")).Only(ctx)
	require.NoError(t, err)
	assert.True(t, row.Acked)
	require.NotNil(t, row.AckedAt)
}

func TestInsertAndPruneAttempts(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	row := ops.AttemptRow{
		RequestID: "req-1",
		ChatID:    "c1",
		Attempt: models.Attempt{
			Plan:      models.Plan{Tier: models.TierLocal, ModelID: "qwen-7b"},
			Outcome:   models.OutcomeOK,
			StartedAt: time.Now().Add(-time.Second),
			EndedAt:   time.Now(),
		},
	}
	require.NoError(t, store.InsertAttempt(ctx, row))

	// Nothing is older than the far past.
	n, err := store.PruneAttempts(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = store.PruneAttempts(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
