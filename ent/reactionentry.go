// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Pavua/krab/ent/reactionentry"
)

// ReactionEntry is the model entity for the ReactionEntry schema.
type ReactionEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID string `json:"message_id,omitempty"`
	// Emoji holds the value of the "emoji" field.
	Emoji string `json:"emoji,omitempty"`
	// FromOwner holds the value of the "from_owner" field.
	FromOwner bool `json:"from_owner,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReactionEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reactionentry.FieldFromOwner:
			values[i] = new(sql.NullBool)
		case reactionentry.FieldID:
			values[i] = new(sql.NullInt64)
		case reactionentry.FieldChatID, reactionentry.FieldMessageID, reactionentry.FieldEmoji:
			values[i] = new(sql.NullString)
		case reactionentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReactionEntry fields.
func (_m *ReactionEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reactionentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reactionentry.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case reactionentry.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case reactionentry.FieldEmoji:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emoji", values[i])
			} else if value.Valid {
				_m.Emoji = value.String
			}
		case reactionentry.FieldFromOwner:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field from_owner", values[i])
			} else if value.Valid {
				_m.FromOwner = value.Bool
			}
		case reactionentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReactionEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ReactionEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReactionEntry.
// Note that you need to call ReactionEntry.Unwrap() before calling this method if this ReactionEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReactionEntry) Update() *ReactionEntryUpdateOne {
	return NewReactionEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReactionEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReactionEntry) Unwrap() *ReactionEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReactionEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReactionEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ReactionEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("emoji=")
	builder.WriteString(_m.Emoji)
	builder.WriteString(", ")
	builder.WriteString("from_owner=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromOwner))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReactionEntries is a parsable slice of ReactionEntry.
type ReactionEntries []*ReactionEntry
