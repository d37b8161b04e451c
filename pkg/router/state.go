package router

import (
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

// CloudTierState tracks which cloud tier is active. Quota exhaustion on the
// free tier switches to paid; the cooldown stops flapping and sticky mode
// keeps paid active until an explicit reset.
type CloudTierState struct {
	mu         sync.Mutex
	cfg        *config.RoutingConfig
	onPaid     bool
	lastSwitch time.Time
	now        func() time.Time
}

// NewCloudTierState returns tier state starting on the free tier.
func NewCloudTierState(cfg *config.RoutingConfig, now func() time.Time) *CloudTierState {
	if now == nil {
		now = time.Now
	}
	return &CloudTierState{cfg: cfg, now: now}
}

// CloudTier returns the currently active cloud tier. Without sticky mode the
// paid tier expires back to free after the cooldown.
func (s *CloudTierState) CloudTier() models.Tier {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onPaid && !s.cfg.StickyOnPaid && s.now().Sub(s.lastSwitch) >= s.cfg.AutoswitchCooldown {
		s.onPaid = false
	}
	if s.onPaid {
		return models.TierCloudPaid
	}
	return models.TierCloudFree
}

// NoteFreeExhausted records a quota rejection on the free tier and switches
// to paid unless a switch happened within the cooldown. Reports whether the
// switch took place.
func (s *CloudTierState) NoteFreeExhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onPaid {
		return false
	}
	if !s.lastSwitch.IsZero() && s.now().Sub(s.lastSwitch) < s.cfg.AutoswitchCooldown {
		return false
	}
	s.onPaid = true
	s.lastSwitch = s.now()
	return true
}

// OnPaid reports whether the paid tier is currently active.
func (s *CloudTierState) OnPaid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onPaid
}

// Reset returns to the free tier. Owner-initiated, so it ignores the
// cooldown but still records the switch time to gate the next autoswitch.
func (s *CloudTierState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.onPaid {
		return
	}
	s.onPaid = false
	s.lastSwitch = s.now()
}
