package policy

import (
	"context"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

// MoodView supplies the advisory mood profile for a chat.
type MoodView interface {
	Profile(chatID models.ChatID) models.MoodProfile
}

// AuthorResolver turns transport principal IDs into display names. Nil
// resolvers fall back to the raw ID.
type AuthorResolver interface {
	ResolveAuthor(ctx context.Context, authorID string) string
}

// Builder assembles the immutable per-request Context from an event, the
// effective policy snapshot and the chat mood.
type Builder struct {
	defaults *config.Defaults
	store    *Store
	mood     MoodView
	resolver AuthorResolver
}

// NewBuilder wires a context builder. mood and resolver may be nil.
func NewBuilder(defaults *config.Defaults, store *Store, mood MoodView, resolver AuthorResolver) *Builder {
	return &Builder{defaults: defaults, store: store, mood: mood, resolver: resolver}
}

// Build constructs the Context for one event. The policy snapshot is frozen
// here; later mutations never affect this request.
func (b *Builder) Build(ctx context.Context, ev models.Event) models.Context {
	snap := b.store.Snapshot(ctx, ev.ChatID)

	mood := models.MoodProfile{Tone: models.ToneNeutral}
	if b.mood != nil {
		mood = b.mood.Profile(ev.ChatID)
	}

	return models.Context{
		Author:           b.resolve(ctx, ev.AuthorID),
		IsOwner:          b.IsOwner(ev.AuthorID),
		ReplyToAuthor:    b.resolve(ctx, ev.ReplyToAuthorID),
		ForwardFrom:      ev.ForwardFrom,
		Mood:             mood,
		Policy:           snap,
		Persona:          b.personaText(snap.Persona),
		Profile:          ClassifyProfile(ev.Payload),
		ConfirmExpensive: snap.ConfirmExpensive,
	}
}

// IsOwner reports whether the principal is the configured owner.
func (b *Builder) IsOwner(authorID string) bool {
	return authorID != "" && authorID == b.defaults.OwnerPrincipal
}

// ShouldReply applies reply_enabled and the group reply mode to decide
// whether the event produces a request. Returns the decision and a short
// reason for logs.
func (b *Builder) ShouldReply(ctx context.Context, ev models.Event) (bool, string) {
	if !ev.NeedsReply() {
		return false, "event kind does not need a reply"
	}
	p := b.store.Policy(ctx, ev.ChatID)
	if !p.ReplyEnabled {
		return false, "replies disabled for chat"
	}
	if !ev.IsGroup {
		return true, "direct chat"
	}
	switch p.GroupReplyMode {
	case models.GroupReplyOff:
		return false, "group replies off"
	case models.GroupReplyAll:
		return true, "group reply mode all"
	default:
		if ev.Mentioned {
			return true, "mentioned in group"
		}
		return false, "not addressed in group"
	}
}

func (b *Builder) resolve(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	if b.resolver == nil {
		return id
	}
	if name := b.resolver.ResolveAuthor(ctx, id); name != "" {
		return name
	}
	return id
}

// personaText resolves a persona name to its system prompt, falling back to
// the default persona.
func (b *Builder) personaText(name string) string {
	if text, ok := b.defaults.Personas[name]; ok {
		return text
	}
	if text, ok := b.defaults.Personas[b.defaults.Persona]; ok {
		return text
	}
	return ""
}
