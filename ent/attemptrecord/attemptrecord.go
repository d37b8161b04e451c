// Code generated by ent, DO NOT EDIT.

package attemptrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptrecord type in the database.
	Label = "attempt_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldRouteReason holds the string denoting the route_reason field in the database.
	FieldRouteReason = "route_reason"
	// FieldBytesIn holds the string denoting the bytes_in field in the database.
	FieldBytesIn = "bytes_in"
	// FieldBytesOut holds the string denoting the bytes_out field in the database.
	FieldBytesOut = "bytes_out"
	// FieldErrorDetail holds the string denoting the error_detail field in the database.
	FieldErrorDetail = "error_detail"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the attemptrecord in the database.
	Table = "attempt_records"
)

// Columns holds all SQL columns for attemptrecord fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldChatID,
	FieldTier,
	FieldModelID,
	FieldOutcome,
	FieldErrorCode,
	FieldRouteReason,
	FieldBytesIn,
	FieldBytesOut,
	FieldErrorDetail,
	FieldStartedAt,
	FieldEndedAt,
	FieldCreatedAt,
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
	// DefaultBytesIn holds the default value on creation for the "bytes_in" field.
	DefaultBytesIn int
	// DefaultBytesOut holds the default value on creation for the "bytes_out" field.
	DefaultBytesOut int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
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
		return fmt.Errorf("attemptrecord: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the AttemptRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByRouteReason orders the results by the route_reason field.
func ByRouteReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRouteReason, opts...).ToFunc()
}

// ByBytesIn orders the results by the bytes_in field.
func ByBytesIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBytesIn, opts...).ToFunc()
}

// ByBytesOut orders the results by the bytes_out field.
func ByBytesOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBytesOut, opts...).ToFunc()
}

// ByErrorDetail orders the results by the error_detail field.
func ByErrorDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorDetail, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
