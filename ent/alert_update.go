// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Pavua/krab/ent/alert"
	"github.com/Pavua/krab/ent/predicate"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdate) SetSeverity(v alert.Severity) *AlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSeverity(v *alert.Severity) *AlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AlertUpdate) SetMessage(v string) *AlertUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableMessage(v *string) *AlertUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *AlertUpdate) SetLastSeen(v time.Time) *AlertUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableLastSeen(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *AlertUpdate) SetCount(v int64) *AlertUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableCount(v *int64) *AlertUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *AlertUpdate) AddCount(v int64) *AlertUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetAcked sets the "acked" field.
func (_u *AlertUpdate) SetAcked(v bool) *AlertUpdate {
	_u.mutation.SetAcked(v)
	return _u
}

// SetNillableAcked sets the "acked" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableAcked(v *bool) *AlertUpdate {
	if v != nil {
		_u.SetAcked(*v)
	}
	return _u
}

// SetAckedAt sets the "acked_at" field.
func (_u *AlertUpdate) SetAckedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetAckedAt(v)
	return _u
}

// SetNillableAckedAt sets the "acked_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableAckedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetAckedAt(*v)
	}
	return _u
}

// ClearAckedAt clears the value of the "acked_at" field.
func (_u *AlertUpdate) ClearAckedAt() *AlertUpdate {
	_u.mutation.ClearAckedAt()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(alert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(alert.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(alert.FieldCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(alert.FieldCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Acked(); ok {
		_spec.SetField(alert.FieldAcked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AckedAt(); ok {
		_spec.SetField(alert.FieldAckedAt, field.TypeTime, value)
	}
	if _u.mutation.AckedAtCleared() {
		_spec.ClearField(alert.FieldAckedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdateOne) SetSeverity(v alert.Severity) *AlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSeverity(v *alert.Severity) *AlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AlertUpdateOne) SetMessage(v string) *AlertUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableMessage(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *AlertUpdateOne) SetLastSeen(v time.Time) *AlertUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableLastSeen(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *AlertUpdateOne) SetCount(v int64) *AlertUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableCount(v *int64) *AlertUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *AlertUpdateOne) AddCount(v int64) *AlertUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetAcked sets the "acked" field.
func (_u *AlertUpdateOne) SetAcked(v bool) *AlertUpdateOne {
	_u.mutation.SetAcked(v)
	return _u
}

// SetNillableAcked sets the "acked" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableAcked(v *bool) *AlertUpdateOne {
	if v != nil {
		_u.SetAcked(*v)
	}
	return _u
}

// SetAckedAt sets the "acked_at" field.
func (_u *AlertUpdateOne) SetAckedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetAckedAt(v)
	return _u
}

// SetNillableAckedAt sets the "acked_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableAckedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetAckedAt(*v)
	}
	return _u
}

// ClearAckedAt clears the value of the "acked_at" field.
func (_u *AlertUpdateOne) ClearAckedAt() *AlertUpdateOne {
	_u.mutation.ClearAckedAt()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(alert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(alert.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(alert.FieldCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(alert.FieldCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Acked(); ok {
		_spec.SetField(alert.FieldAcked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AckedAt(); ok {
		_spec.SetField(alert.FieldAckedAt, field.TypeTime, value)
	}
	if _u.mutation.AckedAtCleared() {
		_spec.ClearField(alert.FieldAckedAt, field.TypeTime)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
