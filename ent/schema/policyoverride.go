package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PolicyOverride holds the schema definition for per-chat policy overrides.
// One row per chat; rows past expires_at are ignored on load and pruned
// opportunistically.
type PolicyOverride struct {
	ent.Schema
}

// Fields of the PolicyOverride.
func (PolicyOverride) Fields() []ent.Field {
	return []ent.Field{
		field.String("chat_id").
			Unique().
			Immutable(),
		field.Enum("force_mode").
			Values("auto", "local", "cloud").
			Default("auto"),
		field.String("persona").
			Optional(),
		field.Bool("reply_enabled").
			Default(true),
		field.Enum("group_reply_mode").
			Values("mention", "all", "off").
			Default("mention"),
		field.Int("rate_limit_per_min").
			Default(20),
		field.Bool("confirm_expensive").
			Default(false),
		field.Int("max_output_chars").
			Default(4000),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at").
			Comment("Override reverts to global defaults past this time"),
	}
}

// Indexes of the PolicyOverride.
func (PolicyOverride) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
