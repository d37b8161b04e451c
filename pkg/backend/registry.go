package backend

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

// Registry holds constructed backend clients keyed by id.
type Registry struct {
	backends map[string]Backend
	configs  map[string]config.BackendConfig
}

// NewRegistry constructs clients for every configured backend.
func NewRegistry(cfgs *config.BackendRegistry, quota QuotaClassifier, logger *slog.Logger) (*Registry, error) {
	r := &Registry{
		backends: make(map[string]Backend),
		configs:  make(map[string]config.BackendConfig),
	}
	for _, id := range cfgs.IDs() {
		bc, err := cfgs.Get(id)
		if err != nil {
			return nil, err
		}
		b, err := NewOpenAIBackend(Options{
			ID:      bc.ID,
			Tier:    bc.Tier,
			BaseURL: bc.BaseURL,
			APIKey:  bc.APIKey,
			Local:   bc.Local,
			Quota:   quota,
			Logger:  logger,
		})
		if err != nil {
			return nil, fmt.Errorf("construct backend %s: %w", id, err)
		}
		r.backends[id] = b
		r.configs[id] = *bc
	}
	return r, nil
}

// NewRegistryFromBackends wires pre-built backends, used by tests to inject
// fakes.
func NewRegistryFromBackends(backends map[string]Backend, cfgs map[string]config.BackendConfig) *Registry {
	if cfgs == nil {
		cfgs = make(map[string]config.BackendConfig)
	}
	return &Registry{backends: backends, configs: cfgs}
}

// Get returns the backend with the given id.
func (r *Registry) Get(id string) (Backend, bool) {
	b, ok := r.backends[id]
	return b, ok
}

// Config returns the configuration the backend was built from.
func (r *Registry) Config(id string) (config.BackendConfig, bool) {
	c, ok := r.configs[id]
	return c, ok
}

// IDs returns all backend ids in deterministic order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.backends))
	for id := range r.backends {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByTier returns backends on the given tier, ordered by id.
func (r *Registry) ByTier(tier models.Tier) []Backend {
	var out []Backend
	for _, id := range r.IDs() {
		b := r.backends[id]
		if b.Tier() == tier {
			out = append(out, b)
		}
	}
	return out
}

// Local returns the local backend, if one is configured.
func (r *Registry) Local() (Backend, bool) {
	for _, id := range r.IDs() {
		b := r.backends[id]
		if b.Tier() == models.TierLocal {
			return b, true
		}
	}
	return nil, false
}

// Len reports the number of registered backends.
func (r *Registry) Len() int { return len(r.backends) }
