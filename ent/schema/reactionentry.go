package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReactionEntry holds the schema definition for the append-only reaction log.
type ReactionEntry struct {
	ent.Schema
}

// Fields of the ReactionEntry.
func (ReactionEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("chat_id").
			Immutable(),
		field.String("message_id").
			Immutable(),
		field.String("emoji").
			Immutable(),
		field.Bool("from_owner").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ReactionEntry.
func (ReactionEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "created_at"),
	}
}
