// Code generated by ent, DO NOT EDIT.

package policyoverride

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the policyoverride type in the database.
	Label = "policy_override"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldForceMode holds the string denoting the force_mode field in the database.
	FieldForceMode = "force_mode"
	// FieldPersona holds the string denoting the persona field in the database.
	FieldPersona = "persona"
	// FieldReplyEnabled holds the string denoting the reply_enabled field in the database.
	FieldReplyEnabled = "reply_enabled"
	// FieldGroupReplyMode holds the string denoting the group_reply_mode field in the database.
	FieldGroupReplyMode = "group_reply_mode"
	// FieldRateLimitPerMin holds the string denoting the rate_limit_per_min field in the database.
	FieldRateLimitPerMin = "rate_limit_per_min"
	// FieldConfirmExpensive holds the string denoting the confirm_expensive field in the database.
	FieldConfirmExpensive = "confirm_expensive"
	// FieldMaxOutputChars holds the string denoting the max_output_chars field in the database.
	FieldMaxOutputChars = "max_output_chars"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the policyoverride in the database.
	Table = "policy_overrides"
)

// Columns holds all SQL columns for policyoverride fields.
var Columns = []string{
	FieldID,
	FieldChatID,
	FieldForceMode,
	FieldPersona,
	FieldReplyEnabled,
	FieldGroupReplyMode,
	FieldRateLimitPerMin,
	FieldConfirmExpensive,
	FieldMaxOutputChars,
	FieldUpdatedAt,
	FieldExpiresAt,
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
	// DefaultReplyEnabled holds the default value on creation for the "reply_enabled" field.
	DefaultReplyEnabled bool
	// DefaultRateLimitPerMin holds the default value on creation for the "rate_limit_per_min" field.
	DefaultRateLimitPerMin int
	// DefaultConfirmExpensive holds the default value on creation for the "confirm_expensive" field.
	DefaultConfirmExpensive bool
	// DefaultMaxOutputChars holds the default value on creation for the "max_output_chars" field.
	DefaultMaxOutputChars int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ForceMode defines the type for the "force_mode" enum field.
type ForceMode string

// ForceModeAuto is the default value of the ForceMode enum.
const DefaultForceMode = ForceModeAuto

// ForceMode values.
const (
	ForceModeAuto  ForceMode = "auto"
	ForceModeLocal ForceMode = "local"
	ForceModeCloud ForceMode = "cloud"
)

func (fm ForceMode) String() string {
	return string(fm)
}

// ForceModeValidator is a validator for the "force_mode" field enum values. It is called by the builders before save.
func ForceModeValidator(fm ForceMode) error {
	switch fm {
	case ForceModeAuto, ForceModeLocal, ForceModeCloud:
		return nil
	default:
		return fmt.Errorf("policyoverride: invalid enum value for force_mode field: %q", fm)
	}
}

// GroupReplyMode defines the type for the "group_reply_mode" enum field.
type GroupReplyMode string

// GroupReplyModeMention is the default value of the GroupReplyMode enum.
const DefaultGroupReplyMode = GroupReplyModeMention

// GroupReplyMode values.
const (
	GroupReplyModeMention GroupReplyMode = "mention"
	GroupReplyModeAll     GroupReplyMode = "all"
	GroupReplyModeOff     GroupReplyMode = "off"
)

func (grm GroupReplyMode) String() string {
	return string(grm)
}

// GroupReplyModeValidator is a validator for the "group_reply_mode" field enum values. It is called by the builders before save.
func GroupReplyModeValidator(grm GroupReplyMode) error {
	switch grm {
	case GroupReplyModeMention, GroupReplyModeAll, GroupReplyModeOff:
		return nil
	default:
		return fmt.Errorf("policyoverride: invalid enum value for group_reply_mode field: %q", grm)
	}
}

// OrderOption defines the ordering options for the PolicyOverride queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByForceMode orders the results by the force_mode field.
func ByForceMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForceMode, opts...).ToFunc()
}

// ByPersona orders the results by the persona field.
func ByPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersona, opts...).ToFunc()
}

// ByReplyEnabled orders the results by the reply_enabled field.
func ByReplyEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplyEnabled, opts...).ToFunc()
}

// ByGroupReplyMode orders the results by the group_reply_mode field.
func ByGroupReplyMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupReplyMode, opts...).ToFunc()
}

// ByRateLimitPerMin orders the results by the rate_limit_per_min field.
func ByRateLimitPerMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateLimitPerMin, opts...).ToFunc()
}

// ByConfirmExpensive orders the results by the confirm_expensive field.
func ByConfirmExpensive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmExpensive, opts...).ToFunc()
}

// ByMaxOutputChars orders the results by the max_output_chars field.
func ByMaxOutputChars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxOutputChars, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
