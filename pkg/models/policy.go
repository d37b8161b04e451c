package models

import "time"

// ForceMode overrides tier selection for a chat.
type ForceMode string

// Force modes.
const (
	ForceAuto  ForceMode = "auto"
	ForceLocal ForceMode = "local"
	ForceCloud ForceMode = "cloud"
)

// Valid reports whether the mode is a recognized value.
func (m ForceMode) Valid() bool {
	switch m {
	case ForceAuto, ForceLocal, ForceCloud:
		return true
	}
	return false
}

// GroupReplyMode controls when the assistant replies in group chats.
type GroupReplyMode string

// Group reply modes.
const (
	GroupReplyMention GroupReplyMode = "mention" // reply only when addressed
	GroupReplyAll     GroupReplyMode = "all"
	GroupReplyOff     GroupReplyMode = "off"
)

// Policy is the per-chat behavior knob set. The zero value is not usable;
// start from DefaultPolicy and mutate via explicit owner commands.
type Policy struct {
	ForceMode        ForceMode      `json:"force_mode"`
	Persona          string         `json:"persona"`
	ReplyEnabled     bool           `json:"reply_enabled"`
	GroupReplyMode   GroupReplyMode `json:"group_reply_mode"`
	RateLimitPerMin  int            `json:"rate_limit_per_min"`
	ConfirmExpensive bool           `json:"confirm_expensive"`
	MaxOutputChars   int            `json:"max_output_chars"`
}

// PolicySnapshot is the frozen Policy handed to a Request at submit time.
// Mutations observed after the snapshot is taken never affect the Request.
type PolicySnapshot struct {
	Policy
	TakenAt time.Time `json:"taken_at"`
}

// Tone summarizes the recent emotional temperature of a chat.
type Tone string

// Mood tones.
const (
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
	ToneTense    Tone = "tense"
	ToneHostile  Tone = "hostile"
)

// MoodProfile is the advisory per-chat tone summary. It may influence
// persona tone only, never routing policy.
type MoodProfile struct {
	Tone       Tone      `json:"tone"`
	LastUpdate time.Time `json:"last_update"`
}

// Context is built per Event and is immutable for the lifetime of the
// Request it feeds.
type Context struct {
	Author           string         `json:"author"`
	IsOwner          bool           `json:"is_owner"`
	ReplyToAuthor    string         `json:"reply_to_author,omitempty"`
	ForwardFrom      string         `json:"forward_from,omitempty"`
	Mood             MoodProfile    `json:"mood"`
	Policy           PolicySnapshot `json:"policy"`
	Persona          string         `json:"persona"`
	Profile          TaskProfile    `json:"profile"`
	ConfirmExpensive bool           `json:"confirm_expensive"`
}
