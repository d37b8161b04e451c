package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert holds the schema definition for operator alerts, de-duplicated by
// code: repeated firings update last_seen and increment count.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			Unique().
			Immutable(),
		field.Enum("severity").
			Values("info", "warn", "high"),
		field.String("message"),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen").
			Default(time.Now),
		field.Int64("count").
			Default(1),
		field.Bool("acked").
			Default(false),
		field.Time("acked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("acked", "last_seen"),
	}
}
