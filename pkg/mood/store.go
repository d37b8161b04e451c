package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/Pavua/krab/pkg/database"
	"github.com/Pavua/krab/pkg/models"
)

// EntStore persists reactions to the append-only reaction log.
type EntStore struct {
	db *database.Client
}

// NewEntStore wraps the database client as a ReactionStore.
func NewEntStore(db *database.Client) *EntStore {
	return &EntStore{db: db}
}

// AppendReaction writes one reaction entry.
func (s *EntStore) AppendReaction(ctx context.Context, chatID models.ChatID, messageID, emoji string, fromOwner bool) error {
	err := s.db.ReactionEntry.Create().
		SetChatID(string(chatID)).
		SetMessageID(messageID).
		SetEmoji(emoji).
		SetFromOwner(fromOwner).
		SetCreatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append reaction: %w", err)
	}
	return nil
}
