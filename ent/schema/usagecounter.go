package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageCounter holds the schema definition for month-bucketed usage counters.
// Counters are monotonic within their bucket.
type UsageCounter struct {
	ent.Schema
}

// Fields of the UsageCounter.
func (UsageCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("month").
			Comment("Bucket key, formatted 2006-01").
			Immutable(),
		field.Enum("tier").
			Values("local", "cloud_free", "cloud_paid").
			Immutable(),
		field.String("model_id").
			Immutable(),
		field.Int64("calls").
			Default(0),
		field.Int64("failures").
			Default(0),
		field.Float("estimated_cost_usd").
			Default(0),
		field.Int64("tokens_in").
			Default(0),
		field.Int64("tokens_out").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UsageCounter.
func (UsageCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("month", "tier", "model_id").
			Unique(),
	}
}
