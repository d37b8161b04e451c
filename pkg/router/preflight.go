package router

import (
	"fmt"

	"github.com/Pavua/krab/pkg/models"
)

// Token budget bounds for a single attempt. MaxOutputChars drives the token
// budget at roughly three characters per token.
const (
	minAttemptTokens = 256
	maxAttemptTokens = 4096
)

// Preflight computes the routing verdict for a request without executing
// anything: the plan, the human-readable reasons behind it, soft-cap
// warnings and whether the confirm-expensive gate blocks it.
func (r *Router) Preflight(req *models.Request) models.Preflight {
	pf := models.Preflight{}
	policy := req.Context.Policy

	tier := r.pickTier(policy.ForceMode, &pf)

	cands := r.candidates(tier, req.Context.Profile)
	if len(cands) == 0 {
		pf.Blocked = true
		pf.BlockReason = fmt.Sprintf("no backend configured for tier %s", tier)
		return pf
	}
	chosen := cands[0]

	maxTokens := policy.MaxOutputChars / 3
	if maxTokens < minAttemptTokens {
		maxTokens = minAttemptTokens
	}
	if maxTokens > maxAttemptTokens {
		maxTokens = maxAttemptTokens
	}

	plan := &models.Plan{
		Tier:            tier,
		ModelID:         chosen.ModelID,
		MaxTokens:       maxTokens,
		ReasoningCap:    r.guardrails.ReasoningCapChars,
		CostEstimateUSD: chosen.CostPer1KTokensUSD * float64(maxTokens) / 1000,
	}
	pf.Plan = plan
	pf.MarginalCallCostUSD = plan.CostEstimateUSD
	pf.Reasons = append(pf.Reasons, fmt.Sprintf("candidate %s/%s", chosen.BackendID, chosen.ModelID))

	r.addBudgetWarnings(&pf, tier)

	if tier == models.TierCloudPaid && req.Context.Profile.Expensive() && req.Context.ConfirmExpensive {
		plan.ConfirmRequired = true
		pf.RequiresConfirm = true
		pf.Reasons = append(pf.Reasons,
			fmt.Sprintf("profile %s on paid tier requires confirmation", req.Context.Profile))
	}

	if bh := r.snapshotBackend(chosen.BackendID); bh.State == models.BackendDown {
		pf.Reasons = append(pf.Reasons, fmt.Sprintf("backend %s is down", chosen.BackendID))
		if policy.ForceMode == models.ForceLocal {
			pf.CanRunNow = false
			return pf
		}
	}

	pf.CanRunNow = !pf.Blocked && !pf.RequiresConfirm
	return pf
}

// pickTier resolves the starting tier from force mode, health and the
// fallback-storm breaker.
func (r *Router) pickTier(mode models.ForceMode, pf *models.Preflight) models.Tier {
	switch mode {
	case models.ForceLocal:
		pf.Reasons = append(pf.Reasons, "force_mode=local")
		return models.TierLocal
	case models.ForceCloud:
		tier := r.state.CloudTier()
		pf.Reasons = append(pf.Reasons, "force_mode=cloud")
		if tier == models.TierCloudPaid {
			pf.Reasons = append(pf.Reasons, "paid tier active")
		}
		return tier
	}

	if r.stormActive() {
		tier := r.state.CloudTier()
		pf.Reasons = append(pf.Reasons, "local fallback storm, routing cloud-first")
		return tier
	}

	local, ok := r.registry.Local()
	if !ok {
		pf.Reasons = append(pf.Reasons, "no local backend configured")
		return r.state.CloudTier()
	}
	if bh := r.snapshotBackend(local.ID()); bh.State == models.BackendDown {
		tier := r.state.CloudTier()
		pf.Reasons = append(pf.Reasons, "local backend down, routing to cloud")
		return tier
	}
	pf.Reasons = append(pf.Reasons, "local backend healthy")
	return models.TierLocal
}

// addBudgetWarnings appends soft-cap warnings. Caps never block; they warn
// at 80% and alert at 100% via the ops alert path.
func (r *Router) addBudgetWarnings(pf *models.Preflight, tier models.Tier) {
	if r.budget == nil {
		return
	}
	if tier == models.TierCloudFree && r.cfg.FreeCloudDailyCallCap > 0 {
		calls := r.budget.FreeCallsToday()
		if calls >= r.cfg.FreeCloudDailyCallCap {
			pf.Warnings = append(pf.Warnings,
				fmt.Sprintf("free tier daily call cap reached (%d/%d)", calls, r.cfg.FreeCloudDailyCallCap))
		} else if calls*10 >= r.cfg.FreeCloudDailyCallCap*8 {
			pf.Warnings = append(pf.Warnings,
				fmt.Sprintf("free tier at %d of %d daily calls", calls, r.cfg.FreeCloudDailyCallCap))
		}
	}
	if tier == models.TierCloudPaid && r.cfg.PaidCloudMonthlyUSDCap > 0 {
		spend := r.budget.PaidSpendMonthUSD()
		if spend >= r.cfg.PaidCloudMonthlyUSDCap {
			pf.Warnings = append(pf.Warnings,
				fmt.Sprintf("paid tier monthly cap reached ($%.2f of $%.2f)", spend, r.cfg.PaidCloudMonthlyUSDCap))
		} else if spend >= r.cfg.PaidCloudMonthlyUSDCap*0.8 {
			pf.Warnings = append(pf.Warnings,
				fmt.Sprintf("paid tier at $%.2f of $%.2f monthly", spend, r.cfg.PaidCloudMonthlyUSDCap))
		}
	}
	if pf.MarginalCallCostUSD > r.cfg.ConfirmCostThresholdUSD {
		pf.Warnings = append(pf.Warnings,
			fmt.Sprintf("marginal call cost $%.4f exceeds threshold $%.4f",
				pf.MarginalCallCostUSD, r.cfg.ConfirmCostThresholdUSD))
	}
}

func (r *Router) snapshotBackend(id string) models.BackendHealth {
	if r.health == nil {
		return models.BackendHealth{State: models.BackendUp, Up: true}
	}
	snap := r.health.Snapshot()
	return snap.Backend(id)
}
