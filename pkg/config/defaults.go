package config

import "github.com/Pavua/krab/pkg/models"

// Defaults contains system-wide default configuration.
// Per-chat Policy entries revert to these values when their TTL expires.
type Defaults struct {
	// OwnerPrincipal is the transport principal ID allowed to mutate policy.
	OwnerPrincipal string `yaml:"owner_principal"`

	// Persona is the default persona name for new chats.
	Persona string `yaml:"persona,omitempty"`

	// Personas maps persona name → system prompt text.
	Personas map[string]string `yaml:"personas,omitempty"`

	// ForceMode is the initial global routing mode (FORCE_MODE_DEFAULT).
	ForceMode models.ForceMode `yaml:"force_mode,omitempty"`

	// GroupReplyMode is the default group chat reply behavior.
	GroupReplyMode models.GroupReplyMode `yaml:"group_reply_mode,omitempty"`

	// MaxOutputChars caps user-visible reply length.
	MaxOutputChars int `yaml:"max_output_chars,omitempty"`

	// PolicyTTLHours is how long a per-chat policy override lives after
	// its last mutation.
	PolicyTTLHours int `yaml:"policy_ttl_hours,omitempty"`
}

// DefaultPolicy derives the global default Policy from the configured defaults.
func (d *Defaults) DefaultPolicy() models.Policy {
	return models.Policy{
		ForceMode:       d.ForceMode,
		Persona:         d.Persona,
		ReplyEnabled:    true,
		GroupReplyMode:  d.GroupReplyMode,
		RateLimitPerMin: 20,
		MaxOutputChars:  d.MaxOutputChars,
	}
}

func builtinDefaults() *Defaults {
	return &Defaults{
		Persona:        "default",
		Personas:       map[string]string{"default": "You are a concise, helpful personal assistant."},
		ForceMode:      models.ForceAuto,
		GroupReplyMode: models.GroupReplyMention,
		MaxOutputChars: 4000,
		PolicyTTLHours: 24,
	}
}
