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
	"github.com/Pavua/krab/ent/predicate"
	"github.com/Pavua/krab/ent/usagecounter"
)

// UsageCounterUpdate is the builder for updating UsageCounter entities.
type UsageCounterUpdate struct {
	config
	hooks    []Hook
	mutation *UsageCounterMutation
}

// Where appends a list predicates to the UsageCounterUpdate builder.
func (_u *UsageCounterUpdate) Where(ps ...predicate.UsageCounter) *UsageCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCalls sets the "calls" field.
func (_u *UsageCounterUpdate) SetCalls(v int64) *UsageCounterUpdate {
	_u.mutation.ResetCalls()
	_u.mutation.SetCalls(v)
	return _u
}

// SetNillableCalls sets the "calls" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableCalls(v *int64) *UsageCounterUpdate {
	if v != nil {
		_u.SetCalls(*v)
	}
	return _u
}

// AddCalls adds value to the "calls" field.
func (_u *UsageCounterUpdate) AddCalls(v int64) *UsageCounterUpdate {
	_u.mutation.AddCalls(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *UsageCounterUpdate) SetFailures(v int64) *UsageCounterUpdate {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableFailures(v *int64) *UsageCounterUpdate {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *UsageCounterUpdate) AddFailures(v int64) *UsageCounterUpdate {
	_u.mutation.AddFailures(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *UsageCounterUpdate) SetEstimatedCostUsd(v float64) *UsageCounterUpdate {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableEstimatedCostUsd(v *float64) *UsageCounterUpdate {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *UsageCounterUpdate) AddEstimatedCostUsd(v float64) *UsageCounterUpdate {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *UsageCounterUpdate) SetTokensIn(v int64) *UsageCounterUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableTokensIn(v *int64) *UsageCounterUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *UsageCounterUpdate) AddTokensIn(v int64) *UsageCounterUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *UsageCounterUpdate) SetTokensOut(v int64) *UsageCounterUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *UsageCounterUpdate) SetNillableTokensOut(v *int64) *UsageCounterUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *UsageCounterUpdate) AddTokensOut(v int64) *UsageCounterUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageCounterUpdate) SetUpdatedAt(v time.Time) *UsageCounterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UsageCounterMutation object of the builder.
func (_u *UsageCounterUpdate) Mutation() *UsageCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageCounterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageCounterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagecounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UsageCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagecounter.Table, usagecounter.Columns, sqlgraph.NewFieldSpec(usagecounter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Calls(); ok {
		_spec.SetField(usagecounter.FieldCalls, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCalls(); ok {
		_spec.AddField(usagecounter.FieldCalls, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(usagecounter.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(usagecounter.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(usagecounter.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(usagecounter.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(usagecounter.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(usagecounter.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(usagecounter.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(usagecounter.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagecounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageCounterUpdateOne is the builder for updating a single UsageCounter entity.
type UsageCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageCounterMutation
}

// SetCalls sets the "calls" field.
func (_u *UsageCounterUpdateOne) SetCalls(v int64) *UsageCounterUpdateOne {
	_u.mutation.ResetCalls()
	_u.mutation.SetCalls(v)
	return _u
}

// SetNillableCalls sets the "calls" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableCalls(v *int64) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetCalls(*v)
	}
	return _u
}

// AddCalls adds value to the "calls" field.
func (_u *UsageCounterUpdateOne) AddCalls(v int64) *UsageCounterUpdateOne {
	_u.mutation.AddCalls(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *UsageCounterUpdateOne) SetFailures(v int64) *UsageCounterUpdateOne {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableFailures(v *int64) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *UsageCounterUpdateOne) AddFailures(v int64) *UsageCounterUpdateOne {
	_u.mutation.AddFailures(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *UsageCounterUpdateOne) SetEstimatedCostUsd(v float64) *UsageCounterUpdateOne {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableEstimatedCostUsd(v *float64) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *UsageCounterUpdateOne) AddEstimatedCostUsd(v float64) *UsageCounterUpdateOne {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *UsageCounterUpdateOne) SetTokensIn(v int64) *UsageCounterUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableTokensIn(v *int64) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *UsageCounterUpdateOne) AddTokensIn(v int64) *UsageCounterUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *UsageCounterUpdateOne) SetTokensOut(v int64) *UsageCounterUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *UsageCounterUpdateOne) SetNillableTokensOut(v *int64) *UsageCounterUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *UsageCounterUpdateOne) AddTokensOut(v int64) *UsageCounterUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageCounterUpdateOne) SetUpdatedAt(v time.Time) *UsageCounterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UsageCounterMutation object of the builder.
func (_u *UsageCounterUpdateOne) Mutation() *UsageCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageCounterUpdate builder.
func (_u *UsageCounterUpdateOne) Where(ps ...predicate.UsageCounter) *UsageCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageCounterUpdateOne) Select(field string, fields ...string) *UsageCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageCounter entity.
func (_u *UsageCounterUpdateOne) Save(ctx context.Context) (*UsageCounter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageCounterUpdateOne) SaveX(ctx context.Context) *UsageCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageCounterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagecounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UsageCounterUpdateOne) sqlSave(ctx context.Context) (_node *UsageCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagecounter.Table, usagecounter.Columns, sqlgraph.NewFieldSpec(usagecounter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagecounter.FieldID)
		for _, f := range fields {
			if !usagecounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagecounter.FieldID {
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
	if value, ok := _u.mutation.Calls(); ok {
		_spec.SetField(usagecounter.FieldCalls, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCalls(); ok {
		_spec.AddField(usagecounter.FieldCalls, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(usagecounter.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(usagecounter.FieldFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(usagecounter.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(usagecounter.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(usagecounter.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(usagecounter.FieldTokensIn, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(usagecounter.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(usagecounter.FieldTokensOut, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagecounter.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UsageCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
