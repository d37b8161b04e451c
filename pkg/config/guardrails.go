package config

import "time"

// SentinelPattern is a forbidden marker scrubbed from model output before
// any emit. The exact set depends on the chosen backends, so it is
// configuration, not code.
type SentinelPattern struct {
	// Name identifies the pattern in logs.
	Name string `yaml:"name"`
	// Pattern is a regular expression matched against sanitized content.
	Pattern string `yaml:"pattern"`
	// Replacement substitutes the match; empty means remove.
	Replacement string `yaml:"replacement,omitempty"`
}

// GuardrailConfig controls streaming caps, loop detection and sentinel
// scrubbing.
type GuardrailConfig struct {
	// ReasoningCapChars bounds the reasoning buffer per Attempt.
	ReasoningCapChars int `yaml:"reasoning_cap_chars"`

	// IdleChunk aborts the Attempt when no chunk arrives for this long.
	IdleChunk time.Duration `yaml:"idle_chunk"`

	// ReasoningLoopRepeats is the R threshold: the same substring repeating
	// at least R times in reasoning aborts the Attempt.
	ReasoningLoopRepeats int `yaml:"reasoning_loop_repeats"`

	// ContentLoopRepeats is the P threshold: the same paragraph repeating
	// at least P times in content aborts the Attempt.
	ContentLoopRepeats int `yaml:"content_loop_repeats"`

	// Sentinels is the forbidden marker set.
	Sentinels []SentinelPattern `yaml:"sentinels,omitempty"`
}

// DefaultGuardrailConfig returns the built-in guardrail defaults.
// The sentinel list covers the common scaffold/tool-call leak markers;
// deployments extend it per backend in settings.yaml.
func DefaultGuardrailConfig() *GuardrailConfig {
	return &GuardrailConfig{
		ReasoningCapChars:    2000,
		IdleChunk:            20 * time.Second,
		ReasoningLoopRepeats: 3,
		ContentLoopRepeats:   3,
		Sentinels: []SentinelPattern{
			{Name: "im_tags", Pattern: `<\|im_(start|end)\|>`},
			{Name: "tool_call_preamble", Pattern: `(?s)<tool_call>.*?(</tool_call>|\z)`},
			{Name: "model_crashed", Pattern: `(?i)the model has crashed`},
			{Name: "no_models_loaded", Pattern: `(?i)no models? (are )?loaded`},
			{Name: "error_frame", Pattern: `(?s)\{"error":\{.*?\}\}`},
		},
	}
}
