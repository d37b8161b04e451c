package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptRecord holds the schema definition for the operator-facing attempt
// log. One row per terminal Attempt; raw backend payloads live only here,
// never in user-visible output.
type AttemptRecord struct {
	ent.Schema
}

// Fields of the AttemptRecord.
func (AttemptRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Immutable(),
		field.String("chat_id").
			Immutable(),
		field.Enum("tier").
			Values("local", "cloud_free", "cloud_paid").
			Immutable(),
		field.String("model_id").
			Immutable(),
		field.String("outcome").
			Immutable(),
		field.String("error_code").
			Optional().
			Immutable(),
		field.String("route_reason").
			Optional().
			Immutable(),
		field.Int("bytes_in").
			Default(0).
			Immutable(),
		field.Int("bytes_out").
			Default(0).
			Immutable(),
		field.Text("error_detail").
			Optional().
			Immutable().
			Comment("Raw backend error payload, ops-only"),
		field.Time("started_at").
			Immutable(),
		field.Time("ended_at").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AttemptRecord.
func (AttemptRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "created_at"),
		index.Fields("request_id"),
		index.Fields("outcome"),
	}
}
