package policy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/database"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/policy"
	"github.com/Pavua/krab/test/util"
)

func setupOverrideStore(t *testing.T) *policy.EntOverrideStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	entClient, db := util.SetupTestDatabase(t)
	return policy.NewEntOverrideStore(database.NewClientFromEnt(entClient, db))
}

func samplePolicy() models.Policy {
	return models.Policy{
		ForceMode:        models.ForceLocal,
		Persona:          "work",
		ReplyEnabled:     true,
		GroupReplyMode:   models.GroupReplyMention,
		RateLimitPerMin:  5,
		ConfirmExpensive: true,
		MaxOutputChars:   4000,
	}
}

func TestOverrideRoundTrip(t *testing.T) {
	store := setupOverrideStore(t)
	ctx := context.Background()

	_, _, found, err := store.LoadOverride(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, found)

	want := samplePolicy()
	expires := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond)
	require.NoError(t, store.SaveOverride(ctx, "c1", want, expires))

	got, gotExpires, found, err := store.LoadOverride(ctx, "c1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
	assert.WithinDuration(t, expires, gotExpires, time.Second)
}

func TestSaveOverrideReplacesExisting(t *testing.T) {
	store := setupOverrideStore(t)
	ctx := context.Background()

	first := samplePolicy()
	require.NoError(t, store.SaveOverride(ctx, "c1", first, time.Now().Add(time.Hour)))

	second := first
	second.ForceMode = models.ForceCloud
	second.RateLimitPerMin = 2
	require.NoError(t, store.SaveOverride(ctx, "c1", second, time.Now().Add(time.Hour)))

	got, _, found, err := store.LoadOverride(ctx, "c1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.ForceCloud, got.ForceMode)
	assert.Equal(t, 2, got.RateLimitPerMin)
}

func TestDeleteAndPruneOverrides(t *testing.T) {
	store := setupOverrideStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.SaveOverride(ctx, "gone", samplePolicy(), now.Add(time.Hour)))
	require.NoError(t, store.DeleteOverride(ctx, "gone"))
	_, _, found, err := store.LoadOverride(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SaveOverride(ctx, "stale", samplePolicy(), now.Add(-time.Minute)))
	require.NoError(t, store.SaveOverride(ctx, "fresh", samplePolicy(), now.Add(time.Hour)))

	pruned, err := store.PruneExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, _, found, err = store.LoadOverride(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, found)
}
