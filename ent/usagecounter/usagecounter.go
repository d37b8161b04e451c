// Code generated by ent, DO NOT EDIT.

package usagecounter

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usagecounter type in the database.
	Label = "usage_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMonth holds the string denoting the month field in the database.
	FieldMonth = "month"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldCalls holds the string denoting the calls field in the database.
	FieldCalls = "calls"
	// FieldFailures holds the string denoting the failures field in the database.
	FieldFailures = "failures"
	// FieldEstimatedCostUsd holds the string denoting the estimated_cost_usd field in the database.
	FieldEstimatedCostUsd = "estimated_cost_usd"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the usagecounter in the database.
	Table = "usage_counters"
)

// Columns holds all SQL columns for usagecounter fields.
var Columns = []string{
	FieldID,
	FieldMonth,
	FieldTier,
	FieldModelID,
	FieldCalls,
	FieldFailures,
	FieldEstimatedCostUsd,
	FieldTokensIn,
	FieldTokensOut,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCalls holds the default value on creation for the "calls" field.
	DefaultCalls int64
	// DefaultFailures holds the default value on creation for the "failures" field.
	DefaultFailures int64
	// DefaultEstimatedCostUsd holds the default value on creation for the "estimated_cost_usd" field.
	DefaultEstimatedCostUsd float64
	// DefaultTokensIn holds the default value on creation for the "tokens_in" field.
	DefaultTokensIn int64
	// DefaultTokensOut holds the default value on creation for the "tokens_out" field.
	DefaultTokensOut int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// Tier values.
const (
	TierLocal     Tier = "local"
	TierCloudFree Tier = "cloud_free"
	TierCloudPaid Tier = "cloud_paid"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierLocal, TierCloudFree, TierCloudPaid:
		return nil
	default:
		return fmt.Errorf("usagecounter: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the UsageCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMonth orders the results by the month field.
func ByMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonth, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByCalls orders the results by the calls field.
func ByCalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalls, opts...).ToFunc()
}

// ByFailures orders the results by the failures field.
func ByFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailures, opts...).ToFunc()
}

// ByEstimatedCostUsd orders the results by the estimated_cost_usd field.
func ByEstimatedCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostUsd, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
