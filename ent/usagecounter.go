// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Pavua/krab/ent/usagecounter"
)

// UsageCounter is the model entity for the UsageCounter schema.
type UsageCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Bucket key, formatted 2006-01
	Month string `json:"month,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier usagecounter.Tier `json:"tier,omitempty"`
	// ModelID holds the value of the "model_id" field.
	ModelID string `json:"model_id,omitempty"`
	// Calls holds the value of the "calls" field.
	Calls int64 `json:"calls,omitempty"`
	// Failures holds the value of the "failures" field.
	Failures int64 `json:"failures,omitempty"`
	// EstimatedCostUsd holds the value of the "estimated_cost_usd" field.
	EstimatedCostUsd float64 `json:"estimated_cost_usd,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int64 `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int64 `json:"tokens_out,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usagecounter.FieldEstimatedCostUsd:
			values[i] = new(sql.NullFloat64)
		case usagecounter.FieldID, usagecounter.FieldCalls, usagecounter.FieldFailures, usagecounter.FieldTokensIn, usagecounter.FieldTokensOut:
			values[i] = new(sql.NullInt64)
		case usagecounter.FieldMonth, usagecounter.FieldTier, usagecounter.FieldModelID:
			values[i] = new(sql.NullString)
		case usagecounter.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageCounter fields.
func (_m *UsageCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usagecounter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case usagecounter.FieldMonth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = value.String
			}
		case usagecounter.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = usagecounter.Tier(value.String)
			}
		case usagecounter.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case usagecounter.FieldCalls:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field calls", values[i])
			} else if value.Valid {
				_m.Calls = value.Int64
			}
		case usagecounter.FieldFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failures", values[i])
			} else if value.Valid {
				_m.Failures = value.Int64
			}
		case usagecounter.FieldEstimatedCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_usd", values[i])
			} else if value.Valid {
				_m.EstimatedCostUsd = value.Float64
			}
		case usagecounter.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = value.Int64
			}
		case usagecounter.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = value.Int64
			}
		case usagecounter.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageCounter.
// This includes values selected through modifiers, order, etc.
func (_m *UsageCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UsageCounter.
// Note that you need to call UsageCounter.Unwrap() before calling this method if this UsageCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageCounter) Update() *UsageCounterUpdateOne {
	return NewUsageCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageCounter) Unwrap() *UsageCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageCounter) String() string {
	var builder strings.Builder
	builder.WriteString("UsageCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("month=")
	builder.WriteString(_m.Month)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.Calls))
	builder.WriteString(", ")
	builder.WriteString("failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failures))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCostUsd))
	builder.WriteString(", ")
	builder.WriteString("tokens_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensIn))
	builder.WriteString(", ")
	builder.WriteString("tokens_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOut))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UsageCounters is a parsable slice of UsageCounter.
type UsageCounters []*UsageCounter
