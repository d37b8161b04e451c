package router

import (
	"sort"

	"github.com/Pavua/krab/pkg/models"
)

// feedbackInfluenceCap bounds how far feedback scores can move a candidate
// in the ordering. Configured preference order stays the dominant signal.
const feedbackInfluenceCap = 2.0

// Candidate is one (backend, model) pair eligible for an attempt.
type Candidate struct {
	BackendID          string
	ModelID            string
	Tier               models.Tier
	CostPer1KTokensUSD float64
}

// candidates builds the ordered candidate list for a tier: configured
// preference order, nudged by per-profile feedback scores, ties broken
// lexicographically by model id.
func (r *Router) candidates(tier models.Tier, profile models.TaskProfile) []Candidate {
	var out []Candidate
	for _, b := range r.registry.ByTier(tier) {
		cfg, ok := r.registry.Config(b.ID())
		if !ok {
			continue
		}
		for _, modelID := range cfg.Models {
			out = append(out, Candidate{
				BackendID:          b.ID(),
				ModelID:            modelID,
				Tier:               tier,
				CostPer1KTokensUSD: cfg.CostPer1KTokensUSD,
			})
		}
	}

	rank := make(map[string]float64, len(out))
	for i, c := range out {
		score := 0.0
		if r.feedback != nil {
			score = clamp(r.feedback.Score(profile, c.ModelID), -feedbackInfluenceCap, feedbackInfluenceCap)
		}
		rank[c.BackendID+"/"+c.ModelID] = float64(i) - score
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri := rank[out[i].BackendID+"/"+out[i].ModelID]
		rj := rank[out[j].BackendID+"/"+out[j].ModelID]
		if ri != rj {
			return ri < rj
		}
		return out[i].ModelID < out[j].ModelID
	})

	if len(out) > r.cfg.NCloudCandidates && tier.IsCloud() {
		out = out[:r.cfg.NCloudCandidates]
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
