package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/Pavua/krab/pkg/models"
)

// settingsYAML mirrors the settings.yaml file structure.
type settingsYAML struct {
	Defaults   *Defaults        `yaml:"defaults"`
	Dispatch   *DispatchConfig  `yaml:"dispatch"`
	Routing    *RoutingConfig   `yaml:"routing"`
	Guardrails *GuardrailConfig `yaml:"guardrails"`
	Backends   []BackendConfig  `yaml:"backends"`
}

// Initialize loads configuration from configDir/settings.yaml, merges it over
// built-in defaults, applies environment overrides, and validates the result.
// A missing settings.yaml is not an error: env overrides plus defaults still
// form a usable configuration (minus backends).
func Initialize(configDir string) (*Config, error) {
	cfg := &Config{
		configDir:  configDir,
		Defaults:   builtinDefaults(),
		Dispatch:   DefaultDispatchConfig(),
		Routing:    DefaultRoutingConfig(),
		Guardrails: DefaultGuardrailConfig(),
		Backends:   NewBackendRegistry(nil),
	}

	path := filepath.Join(configDir, "settings.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Warn("No settings.yaml found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		var file settingsYAML
		if err := yaml.Unmarshal(ExpandEnv(data), &file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := mergeSettings(cfg, &file); err != nil {
			return nil, fmt.Errorf("merging %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"config_dir", configDir,
		"backends", stats.Backends,
		"sentinels", stats.Sentinels,
		"personas", stats.Personas)
	return cfg, nil
}

// mergeSettings overlays file values onto the built-in defaults.
// File values win; zero values in the file keep the defaults.
func mergeSettings(cfg *Config, file *settingsYAML) error {
	if file.Defaults != nil {
		if err := mergo.Merge(cfg.Defaults, file.Defaults, mergo.WithOverride); err != nil {
			return err
		}
	}
	if file.Dispatch != nil {
		if err := mergo.Merge(cfg.Dispatch, file.Dispatch, mergo.WithOverride); err != nil {
			return err
		}
	}
	if file.Routing != nil {
		if err := mergo.Merge(cfg.Routing, file.Routing, mergo.WithOverride); err != nil {
			return err
		}
	}
	if file.Guardrails != nil {
		// Sentinel lists replace rather than merge: a deployment that
		// names its own set owns the whole set.
		sentinels := cfg.Guardrails.Sentinels
		if err := mergo.Merge(cfg.Guardrails, file.Guardrails, mergo.WithOverride); err != nil {
			return err
		}
		if len(file.Guardrails.Sentinels) == 0 {
			cfg.Guardrails.Sentinels = sentinels
		}
	}
	if len(file.Backends) > 0 {
		cfg.Backends = NewBackendRegistry(file.Backends)
	}
	return nil
}

// applyEnvOverrides applies the documented environment knobs on top of the
// merged configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FORCE_MODE_DEFAULT"); v != "" {
		if mode := models.ForceMode(v); mode.Valid() {
			cfg.Defaults.ForceMode = mode
		} else {
			slog.Warn("Ignoring invalid FORCE_MODE_DEFAULT", "value", v)
		}
	}
	if n, ok := envInt("QUEUE_MAX"); ok {
		cfg.Dispatch.QueueMax = n
	}
	if n, ok := envInt("SLA_SEC"); ok {
		cfg.Dispatch.SLA = time.Duration(n) * time.Second
	}
	if n, ok := envInt("IDLE_TTL_SEC"); ok {
		cfg.Dispatch.IdleTTL = time.Duration(n) * time.Second
	}
	if n, ok := envInt("N_CLOUD_CANDIDATES"); ok {
		cfg.Routing.NCloudCandidates = n
	}
	if n, ok := envInt("CLOUD_TIER_AUTOSWITCH_COOLDOWN_SEC"); ok {
		cfg.Routing.AutoswitchCooldown = time.Duration(n) * time.Second
	}
	if v := os.Getenv("CLOUD_TIER_STICKY_ON_PAID"); v != "" {
		cfg.Routing.StickyOnPaid = v != "0"
	}
	if n, ok := envInt("IDLE_CHUNK_MS"); ok {
		cfg.Guardrails.IdleChunk = time.Duration(n) * time.Millisecond
	}
	if n, ok := envInt("REASONING_CAP_CHARS"); ok {
		cfg.Guardrails.ReasoningCapChars = n
	}
	if n, ok := envInt("MAX_OUTPUT_CHARS"); ok {
		cfg.Defaults.MaxOutputChars = n
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring non-integer environment override", "key", key, "value", v)
		return 0, false
	}
	return n, true
}
