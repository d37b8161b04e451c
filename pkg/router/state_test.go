package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

func TestCloudTierStateAutoswitch(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	s := NewCloudTierState(config.DefaultRoutingConfig(), clock)

	assert.Equal(t, models.TierCloudFree, s.CloudTier())
	assert.True(t, s.NoteFreeExhausted())
	assert.Equal(t, models.TierCloudPaid, s.CloudTier())

	// Already on paid: further exhaustion reports are no-ops.
	assert.False(t, s.NoteFreeExhausted())
}

func TestCloudTierStateCooldownBlocksRapidSwitch(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	cfg := config.DefaultRoutingConfig()
	s := NewCloudTierState(cfg, clock)

	assert.True(t, s.NoteFreeExhausted())
	s.Reset()
	assert.Equal(t, models.TierCloudFree, s.CloudTier())

	// Within the cooldown the next exhaustion must not switch again.
	now = now.Add(cfg.AutoswitchCooldown / 2)
	assert.False(t, s.NoteFreeExhausted())
	assert.Equal(t, models.TierCloudFree, s.CloudTier())

	// After the cooldown it may.
	now = now.Add(cfg.AutoswitchCooldown)
	assert.True(t, s.NoteFreeExhausted())
	assert.Equal(t, models.TierCloudPaid, s.CloudTier())
}

func TestCloudTierStateStickyPaid(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	cfg := config.DefaultRoutingConfig()
	cfg.StickyOnPaid = true
	s := NewCloudTierState(cfg, clock)

	s.NoteFreeExhausted()
	now = now.Add(24 * time.Hour)
	assert.Equal(t, models.TierCloudPaid, s.CloudTier(), "sticky paid must not expire")

	s.Reset()
	assert.Equal(t, models.TierCloudFree, s.CloudTier())
}

func TestCloudTierStateNonStickyExpires(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	cfg := config.DefaultRoutingConfig()
	cfg.StickyOnPaid = false
	s := NewCloudTierState(cfg, clock)

	s.NoteFreeExhausted()
	assert.Equal(t, models.TierCloudPaid, s.CloudTier())

	now = now.Add(cfg.AutoswitchCooldown + time.Second)
	assert.Equal(t, models.TierCloudFree, s.CloudTier())
}
