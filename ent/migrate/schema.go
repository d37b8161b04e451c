// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warn", "high"}},
		{Name: "message", Type: field.TypeString},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "count", Type: field.TypeInt64, Default: 1},
		{Name: "acked", Type: field.TypeBool, Default: false},
		{Name: "acked_at", Type: field.TypeTime, Nullable: true},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alert_acked_last_seen",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[7], AlertsColumns[5]},
			},
		},
	}
	// AttemptRecordsColumns holds the columns for the "attempt_records" table.
	AttemptRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"local", "cloud_free", "cloud_paid"}},
		{Name: "model_id", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "route_reason", Type: field.TypeString, Nullable: true},
		{Name: "bytes_in", Type: field.TypeInt, Default: 0},
		{Name: "bytes_out", Type: field.TypeInt, Default: 0},
		{Name: "error_detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptRecordsTable holds the schema information for the "attempt_records" table.
	AttemptRecordsTable = &schema.Table{
		Name:       "attempt_records",
		Columns:    AttemptRecordsColumns,
		PrimaryKey: []*schema.Column{AttemptRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptrecord_chat_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptRecordsColumns[2], AttemptRecordsColumns[13]},
			},
			{
				Name:    "attemptrecord_request_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptRecordsColumns[1]},
			},
			{
				Name:    "attemptrecord_outcome",
				Unique:  false,
				Columns: []*schema.Column{AttemptRecordsColumns[5]},
			},
		},
	}
	// PolicyOverridesColumns holds the columns for the "policy_overrides" table.
	PolicyOverridesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chat_id", Type: field.TypeString, Unique: true},
		{Name: "force_mode", Type: field.TypeEnum, Enums: []string{"auto", "local", "cloud"}, Default: "auto"},
		{Name: "persona", Type: field.TypeString, Nullable: true},
		{Name: "reply_enabled", Type: field.TypeBool, Default: true},
		{Name: "group_reply_mode", Type: field.TypeEnum, Enums: []string{"mention", "all", "off"}, Default: "mention"},
		{Name: "rate_limit_per_min", Type: field.TypeInt, Default: 20},
		{Name: "confirm_expensive", Type: field.TypeBool, Default: false},
		{Name: "max_output_chars", Type: field.TypeInt, Default: 4000},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// PolicyOverridesTable holds the schema information for the "policy_overrides" table.
	PolicyOverridesTable = &schema.Table{
		Name:       "policy_overrides",
		Columns:    PolicyOverridesColumns,
		PrimaryKey: []*schema.Column{PolicyOverridesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "policyoverride_expires_at",
				Unique:  false,
				Columns: []*schema.Column{PolicyOverridesColumns[10]},
			},
		},
	}
	// ReactionEntriesColumns holds the columns for the "reaction_entries" table.
	ReactionEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
		{Name: "emoji", Type: field.TypeString},
		{Name: "from_owner", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReactionEntriesTable holds the schema information for the "reaction_entries" table.
	ReactionEntriesTable = &schema.Table{
		Name:       "reaction_entries",
		Columns:    ReactionEntriesColumns,
		PrimaryKey: []*schema.Column{ReactionEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reactionentry_chat_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReactionEntriesColumns[1], ReactionEntriesColumns[5]},
			},
		},
	}
	// UsageCountersColumns holds the columns for the "usage_counters" table.
	UsageCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "month", Type: field.TypeString},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"local", "cloud_free", "cloud_paid"}},
		{Name: "model_id", Type: field.TypeString},
		{Name: "calls", Type: field.TypeInt64, Default: 0},
		{Name: "failures", Type: field.TypeInt64, Default: 0},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "tokens_in", Type: field.TypeInt64, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsageCountersTable holds the schema information for the "usage_counters" table.
	UsageCountersTable = &schema.Table{
		Name:       "usage_counters",
		Columns:    UsageCountersColumns,
		PrimaryKey: []*schema.Column{UsageCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagecounter_month_tier_model_id",
				Unique:  true,
				Columns: []*schema.Column{UsageCountersColumns[1], UsageCountersColumns[2], UsageCountersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		AttemptRecordsTable,
		PolicyOverridesTable,
		ReactionEntriesTable,
		UsageCountersTable,
	}
)

func init() {
}
