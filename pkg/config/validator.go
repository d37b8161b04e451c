package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Pavua/krab/pkg/models"
)

// ValidationError aggregates all configuration problems found in one pass so
// operators fix them in a single round trip.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration (%d problems):\n  - %s",
		len(e.Problems), strings.Join(e.Problems, "\n  - "))
}

// Validate checks the merged configuration for internal consistency.
func Validate(cfg *Config) error {
	var problems []string

	if cfg.Dispatch.QueueMax <= 0 {
		problems = append(problems, "dispatch.queue_max must be positive")
	}
	if cfg.Dispatch.SLA <= 0 {
		problems = append(problems, "dispatch.sla must be positive")
	}
	if cfg.Routing.NCloudCandidates <= 0 {
		problems = append(problems, "routing.n_cloud_candidates must be positive")
	}
	if cfg.Guardrails.ReasoningCapChars <= 0 {
		problems = append(problems, "guardrails.reasoning_cap_chars must be positive")
	}
	if cfg.Guardrails.IdleChunk <= 0 {
		problems = append(problems, "guardrails.idle_chunk must be positive")
	}
	if !cfg.Defaults.ForceMode.Valid() {
		problems = append(problems, fmt.Sprintf("defaults.force_mode %q is not one of auto|local|cloud", cfg.Defaults.ForceMode))
	}
	if cfg.Defaults.Persona != "" {
		if _, ok := cfg.Defaults.Personas[cfg.Defaults.Persona]; !ok {
			problems = append(problems, fmt.Sprintf("defaults.persona %q has no entry in defaults.personas", cfg.Defaults.Persona))
		}
	}

	for _, id := range cfg.Backends.IDs() {
		b, _ := cfg.Backends.Get(id)
		if b.BaseURL == "" {
			problems = append(problems, fmt.Sprintf("backend %q: base_url is required", id))
		}
		if len(b.Models) == 0 {
			problems = append(problems, fmt.Sprintf("backend %q: at least one model is required", id))
		}
		switch b.Tier {
		case models.TierLocal, models.TierCloudFree, models.TierCloudPaid:
		default:
			problems = append(problems, fmt.Sprintf("backend %q: tier %q is not one of local|cloud_free|cloud_paid", id, b.Tier))
		}
		if b.Tier == models.TierCloudPaid && b.APIKey == "" {
			problems = append(problems, fmt.Sprintf("backend %q: paid tier requires api_key", id))
		}
	}

	// Sentinel patterns must compile; invalid ones are a config error rather
	// than a silent skip because a missing sentinel is a leak.
	for _, s := range cfg.Guardrails.Sentinels {
		if _, err := regexp.Compile(s.Pattern); err != nil {
			problems = append(problems, fmt.Sprintf("sentinel %q: %v", s.Name, err))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
