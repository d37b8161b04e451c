// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Pavua/krab/ent/policyoverride"
)

// PolicyOverride is the model entity for the PolicyOverride schema.
type PolicyOverride struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// ForceMode holds the value of the "force_mode" field.
	ForceMode policyoverride.ForceMode `json:"force_mode,omitempty"`
	// Persona holds the value of the "persona" field.
	Persona string `json:"persona,omitempty"`
	// ReplyEnabled holds the value of the "reply_enabled" field.
	ReplyEnabled bool `json:"reply_enabled,omitempty"`
	// GroupReplyMode holds the value of the "group_reply_mode" field.
	GroupReplyMode policyoverride.GroupReplyMode `json:"group_reply_mode,omitempty"`
	// RateLimitPerMin holds the value of the "rate_limit_per_min" field.
	RateLimitPerMin int `json:"rate_limit_per_min,omitempty"`
	// ConfirmExpensive holds the value of the "confirm_expensive" field.
	ConfirmExpensive bool `json:"confirm_expensive,omitempty"`
	// MaxOutputChars holds the value of the "max_output_chars" field.
	MaxOutputChars int `json:"max_output_chars,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Override reverts to global defaults past this time
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PolicyOverride) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case policyoverride.FieldReplyEnabled, policyoverride.FieldConfirmExpensive:
			values[i] = new(sql.NullBool)
		case policyoverride.FieldID, policyoverride.FieldRateLimitPerMin, policyoverride.FieldMaxOutputChars:
			values[i] = new(sql.NullInt64)
		case policyoverride.FieldChatID, policyoverride.FieldForceMode, policyoverride.FieldPersona, policyoverride.FieldGroupReplyMode:
			values[i] = new(sql.NullString)
		case policyoverride.FieldUpdatedAt, policyoverride.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PolicyOverride fields.
func (_m *PolicyOverride) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case policyoverride.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case policyoverride.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case policyoverride.FieldForceMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field force_mode", values[i])
			} else if value.Valid {
				_m.ForceMode = policyoverride.ForceMode(value.String)
			}
		case policyoverride.FieldPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona", values[i])
			} else if value.Valid {
				_m.Persona = value.String
			}
		case policyoverride.FieldReplyEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reply_enabled", values[i])
			} else if value.Valid {
				_m.ReplyEnabled = value.Bool
			}
		case policyoverride.FieldGroupReplyMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_reply_mode", values[i])
			} else if value.Valid {
				_m.GroupReplyMode = policyoverride.GroupReplyMode(value.String)
			}
		case policyoverride.FieldRateLimitPerMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_limit_per_min", values[i])
			} else if value.Valid {
				_m.RateLimitPerMin = int(value.Int64)
			}
		case policyoverride.FieldConfirmExpensive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field confirm_expensive", values[i])
			} else if value.Valid {
				_m.ConfirmExpensive = value.Bool
			}
		case policyoverride.FieldMaxOutputChars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_output_chars", values[i])
			} else if value.Valid {
				_m.MaxOutputChars = int(value.Int64)
			}
		case policyoverride.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case policyoverride.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PolicyOverride.
// This includes values selected through modifiers, order, etc.
func (_m *PolicyOverride) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PolicyOverride.
// Note that you need to call PolicyOverride.Unwrap() before calling this method if this PolicyOverride
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PolicyOverride) Update() *PolicyOverrideUpdateOne {
	return NewPolicyOverrideClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PolicyOverride entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PolicyOverride) Unwrap() *PolicyOverride {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PolicyOverride is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PolicyOverride) String() string {
	var builder strings.Builder
	builder.WriteString("PolicyOverride(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("force_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ForceMode))
	builder.WriteString(", ")
	builder.WriteString("persona=")
	builder.WriteString(_m.Persona)
	builder.WriteString(", ")
	builder.WriteString("reply_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReplyEnabled))
	builder.WriteString(", ")
	builder.WriteString("group_reply_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupReplyMode))
	builder.WriteString(", ")
	builder.WriteString("rate_limit_per_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateLimitPerMin))
	builder.WriteString(", ")
	builder.WriteString("confirm_expensive=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfirmExpensive))
	builder.WriteString(", ")
	builder.WriteString("max_output_chars=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxOutputChars))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PolicyOverrides is a parsable slice of PolicyOverride.
type PolicyOverrides []*PolicyOverride
