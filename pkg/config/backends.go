package config

import (
	"fmt"
	"sort"

	"github.com/Pavua/krab/pkg/models"
)

// BackendConfig describes one inference backend endpoint.
type BackendConfig struct {
	// ID is the backend identifier used in health snapshots and plans.
	ID string `yaml:"id"`

	// Tier the backend belongs to.
	Tier models.Tier `yaml:"tier"`

	// BaseURL of the OpenAI-compatible API.
	BaseURL string `yaml:"base_url"`

	// APIKey for the backend; expanded from the environment via {{.VAR}}.
	APIKey string `yaml:"api_key,omitempty"`

	// Models available on this backend, preference order as configured.
	Models []string `yaml:"models"`

	// CostPer1KTokensUSD is the blended per-1k-token price used for cost
	// estimates. Zero for local and free tiers.
	CostPer1KTokensUSD float64 `yaml:"cost_per_1k_tokens_usd,omitempty"`

	// Local marks backends that support load/unload soft-heal actions.
	Local bool `yaml:"local,omitempty"`
}

// BackendRegistry holds all configured backends, keyed by ID.
type BackendRegistry struct {
	backends map[string]*BackendConfig
}

// NewBackendRegistry builds a registry from a list of backend configs.
func NewBackendRegistry(list []BackendConfig) *BackendRegistry {
	m := make(map[string]*BackendConfig, len(list))
	for i := range list {
		b := list[i]
		m[b.ID] = &b
	}
	return &BackendRegistry{backends: m}
}

// Get retrieves a backend configuration by ID.
func (r *BackendRegistry) Get(id string) (*BackendConfig, error) {
	b, ok := r.backends[id]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q", id)
	}
	return b, nil
}

// Len returns the number of configured backends.
func (r *BackendRegistry) Len() int {
	return len(r.backends)
}

// IDs returns all backend IDs, sorted for deterministic iteration.
func (r *BackendRegistry) IDs() []string {
	ids := make([]string, 0, len(r.backends))
	for id := range r.backends {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByTier returns the backends in a tier, sorted by ID.
func (r *BackendRegistry) ByTier(tier models.Tier) []*BackendConfig {
	var out []*BackendConfig
	for _, id := range r.IDs() {
		if r.backends[id].Tier == tier {
			out = append(out, r.backends[id])
		}
	}
	return out
}

// LocalBackend returns the first local-tier backend, or nil when none is
// configured.
func (r *BackendRegistry) LocalBackend() *BackendConfig {
	list := r.ByTier(models.TierLocal)
	if len(list) == 0 {
		return nil
	}
	return list[0]
}
