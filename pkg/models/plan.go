package models

// Tier identifies where a Request runs.
type Tier string

// Routing tiers, cheapest first.
const (
	TierLocal     Tier = "local"
	TierCloudFree Tier = "cloud_free"
	TierCloudPaid Tier = "cloud_paid"
)

// IsCloud reports whether the tier is one of the cloud tiers.
func (t Tier) IsCloud() bool {
	return t == TierCloudFree || t == TierCloudPaid
}

// Plan is an immutable routing decision for one Attempt.
// Derived by the Router from Context + Policy + HealthSnapshot; recomputed
// on fallback.
type Plan struct {
	Tier            Tier     `json:"tier"`
	ModelID         string   `json:"model_id"`
	MaxTokens       int      `json:"max_tokens"`
	StopTokens      []string `json:"stop_tokens,omitempty"`
	ReasoningCap    int      `json:"reasoning_cap"`
	CostEstimateUSD float64  `json:"cost_estimate_usd"`
	ConfirmRequired bool     `json:"confirm_required"`
}

// TaskProfile is a coarse classification of what the Request asks for.
// It drives candidate ordering and the confirm-expensive gate.
type TaskProfile string

// Task profiles.
const (
	ProfileChat      TaskProfile = "chat"
	ProfileSecurity  TaskProfile = "security"
	ProfileInfra     TaskProfile = "infra"
	ProfileReview    TaskProfile = "review"
	ProfileReasoning TaskProfile = "reasoning"
)

// Expensive reports whether the profile requires an explicit confirm when
// the plan lands on a paid tier.
func (p TaskProfile) Expensive() bool {
	switch p {
	case ProfileSecurity, ProfileInfra, ProfileReview, ProfileReasoning:
		return true
	default:
		return false
	}
}

// Preflight is the Router's pre-execution verdict for a Request.
type Preflight struct {
	Plan                *Plan    `json:"plan,omitempty"`
	Blocked             bool     `json:"blocked"`
	BlockReason         string   `json:"block_reason,omitempty"`
	Reasons             []string `json:"reasons,omitempty"`
	Warnings            []string `json:"warnings,omitempty"`
	RequiresConfirm     bool     `json:"requires_confirm_expensive"`
	MarginalCallCostUSD float64  `json:"marginal_call_cost_usd"`
	CanRunNow           bool     `json:"can_run_now"`
}
