// Package models contains the core value types shared across the orchestrator:
// events, requests, plans, attempts, policies and health snapshots.
package models

import "time"

// ChatID is the stable identifier of a conversation. It is the partition key
// for all per-chat state (queues, policies, mood profiles).
type ChatID string

// EventKind classifies an incoming transport event.
type EventKind string

// Event kinds delivered by the chat transport.
const (
	EventKindText     EventKind = "text"
	EventKindVoice    EventKind = "voice"
	EventKindPhoto    EventKind = "photo"
	EventKindCommand  EventKind = "command"
	EventKindReaction EventKind = "reaction"
)

// Event is a single incoming chat event. Immutable once created.
type Event struct {
	ChatID     ChatID    `json:"chat_id"`
	MessageID  string    `json:"message_id"`
	AuthorID   string    `json:"author_id"`
	Kind       EventKind `json:"kind"`
	Payload    string    `json:"payload"`
	ReceivedAt time.Time `json:"received_at"`

	// ReplyToMessageID is set when the event quotes a prior message.
	ReplyToMessageID string `json:"reply_to_message_id,omitempty"`
	// ReplyToAuthorID is the transport-resolved author of the quoted message.
	ReplyToAuthorID string `json:"reply_to_author_id,omitempty"`
	// ForwardFrom is the original author for forwarded messages.
	ForwardFrom string `json:"forward_from,omitempty"`
	// Emoji carries the reaction emoji for reaction events.
	Emoji string `json:"emoji,omitempty"`
	// IsGroup marks events originating from group chats.
	IsGroup bool `json:"is_group,omitempty"`
	// Mentioned is set by the transport when the assistant was addressed,
	// either by mention or by replying to one of its messages.
	Mentioned bool `json:"mentioned,omitempty"`
}

// NeedsReply reports whether the event should produce a Request.
// Commands and reactions are consumed by the policy/mood layers instead.
func (e *Event) NeedsReply() bool {
	switch e.Kind {
	case EventKindText, EventKindVoice, EventKindPhoto:
		return true
	default:
		return false
	}
}
