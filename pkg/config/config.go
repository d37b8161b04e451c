// Package config loads and validates the orchestrator configuration:
// a settings.yaml config directory with Go-template env expansion, merged
// over built-in defaults, plus a small set of environment overrides.
package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// System-wide defaults (persona, owner principal, global policy).
	Defaults *Defaults

	// Dispatch controls the per-chat work queue and worker lifecycle.
	Dispatch *DispatchConfig

	// Routing controls tier selection, fallback and soft caps.
	Routing *RoutingConfig

	// Guardrails controls streaming caps, loop detection and sentinels.
	Guardrails *GuardrailConfig

	// Backends is the inference backend registry.
	Backends *BackendRegistry
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetBackend retrieves a backend configuration by ID.
// Convenience wrapper around BackendRegistry.Get().
func (c *Config) GetBackend(id string) (*BackendConfig, error) {
	return c.Backends.Get(id)
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Backends  int
	Sentinels int
	Personas  int
}

// Stats returns configuration statistics for logging.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Backends != nil {
		s.Backends = c.Backends.Len()
	}
	if c.Guardrails != nil {
		s.Sentinels = len(c.Guardrails.Sentinels)
	}
	if c.Defaults != nil {
		s.Personas = len(c.Defaults.Personas)
	}
	return s
}
