package config

import "time"

// RoutingConfig controls tier selection, fallback budgets and soft caps.
type RoutingConfig struct {
	// NCloudCandidates is the max cloud attempts per Request in cloud tier.
	NCloudCandidates int `yaml:"n_cloud_candidates"`

	// AutoswitchCooldown is the minimum gap between free↔paid tier switches.
	AutoswitchCooldown time.Duration `yaml:"autoswitch_cooldown"`

	// StickyOnPaid keeps the paid tier active until an explicit reset.
	StickyOnPaid bool `yaml:"sticky_on_paid"`

	// ConfirmCostThresholdUSD adds a cost warning to preflight when the
	// marginal call cost exceeds it.
	ConfirmCostThresholdUSD float64 `yaml:"confirm_cost_threshold_usd"`

	// FreeCloudDailyCallCap is the advisory daily call soft cap for the
	// free cloud tier.
	FreeCloudDailyCallCap int `yaml:"free_cloud_daily_call_cap"`

	// PaidCloudMonthlyUSDCap is the advisory monthly spend soft cap for
	// the paid cloud tier.
	PaidCloudMonthlyUSDCap float64 `yaml:"paid_cloud_monthly_usd_cap"`

	// FallbackStormWindow and FallbackStormThreshold tune the
	// cloud_fallback_storm alert: more than threshold fallbacks within the
	// window raises it.
	FallbackStormWindow    time.Duration `yaml:"fallback_storm_window"`
	FallbackStormThreshold int           `yaml:"fallback_storm_threshold"`
}

// DefaultRoutingConfig returns the built-in routing defaults.
func DefaultRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		NCloudCandidates:        2,
		AutoswitchCooldown:      60 * time.Second,
		StickyOnPaid:            true,
		ConfirmCostThresholdUSD: 0.05,
		FreeCloudDailyCallCap:   300,
		PaidCloudMonthlyUSDCap:  20,
		FallbackStormWindow:     5 * time.Minute,
		FallbackStormThreshold:  5,
	}
}
