// Package transport bridges a chat surface to the orchestrator: it receives
// events, routes them through policy and dispatch, and sends replies and
// reactions back. The concrete transport is behind a small capability
// interface so the core never links a chat SDK.
package transport

import (
	"context"

	"github.com/Pavua/krab/pkg/models"
)

// Transport is the capability surface a chat integration must provide.
type Transport interface {
	// Events yields incoming events. The channel closes when the
	// transport shuts down.
	Events() <-chan models.Event

	// SendMessage delivers text to a chat and returns the transport
	// message ID of the sent message.
	SendMessage(ctx context.Context, chatID models.ChatID, text string) (string, error)

	// EditMessage replaces the text of a previously sent message.
	EditMessage(ctx context.Context, chatID models.ChatID, messageID, text string) error

	// AddReaction attaches an emoji reaction to a message.
	AddReaction(ctx context.Context, chatID models.ChatID, messageID, emoji string) error

	// ResolveAuthor turns a principal ID into a display name. Empty when
	// unknown.
	ResolveAuthor(ctx context.Context, authorID string) string
}
