// Code generated by ent, DO NOT EDIT.

package alert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the alert type in the database.
	Label = "alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// FieldAcked holds the string denoting the acked field in the database.
	FieldAcked = "acked"
	// FieldAckedAt holds the string denoting the acked_at field in the database.
	FieldAckedAt = "acked_at"
	// Table holds the table name of the alert in the database.
	Table = "alerts"
)

// Columns holds all SQL columns for alert fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldSeverity,
	FieldMessage,
	FieldFirstSeen,
	FieldLastSeen,
	FieldCount,
	FieldAcked,
	FieldAckedAt,
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
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// DefaultCount holds the default value on creation for the "count" field.
	DefaultCount int64
	// DefaultAcked holds the default value on creation for the "acked" field.
	DefaultAcked bool
)

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityInfo Severity = "info"
	SeverityWarn Severity = "warn"
	SeverityHigh Severity = "high"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityInfo, SeverityWarn, SeverityHigh:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the Alert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}

// ByAcked orders the results by the acked field.
func ByAcked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcked, opts...).ToFunc()
}

// ByAckedAt orders the results by the acked_at field.
func ByAckedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAckedAt, opts...).ToFunc()
}
