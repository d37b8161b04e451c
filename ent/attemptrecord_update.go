// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Pavua/krab/ent/attemptrecord"
	"github.com/Pavua/krab/ent/predicate"
)

// AttemptRecordUpdate is the builder for updating AttemptRecord entities.
type AttemptRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptRecordMutation
}

// Where appends a list predicates to the AttemptRecordUpdate builder.
func (_u *AttemptRecordUpdate) Where(ps ...predicate.AttemptRecord) *AttemptRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AttemptRecordMutation object of the builder.
func (_u *AttemptRecordUpdate) Mutation() *AttemptRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(attemptrecord.Table, attemptrecord.Columns, sqlgraph.NewFieldSpec(attemptrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(attemptrecord.FieldErrorCode, field.TypeString)
	}
	if _u.mutation.RouteReasonCleared() {
		_spec.ClearField(attemptrecord.FieldRouteReason, field.TypeString)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(attemptrecord.FieldErrorDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptRecordUpdateOne is the builder for updating a single AttemptRecord entity.
type AttemptRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptRecordMutation
}

// Mutation returns the AttemptRecordMutation object of the builder.
func (_u *AttemptRecordUpdateOne) Mutation() *AttemptRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptRecordUpdate builder.
func (_u *AttemptRecordUpdateOne) Where(ps ...predicate.AttemptRecord) *AttemptRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptRecordUpdateOne) Select(field string, fields ...string) *AttemptRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptRecord entity.
func (_u *AttemptRecordUpdateOne) Save(ctx context.Context) (*AttemptRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptRecordUpdateOne) SaveX(ctx context.Context) *AttemptRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptRecordUpdateOne) sqlSave(ctx context.Context) (_node *AttemptRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(attemptrecord.Table, attemptrecord.Columns, sqlgraph.NewFieldSpec(attemptrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptrecord.FieldID)
		for _, f := range fields {
			if !attemptrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptrecord.FieldID {
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
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(attemptrecord.FieldErrorCode, field.TypeString)
	}
	if _u.mutation.RouteReasonCleared() {
		_spec.ClearField(attemptrecord.FieldRouteReason, field.TypeString)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(attemptrecord.FieldErrorDetail, field.TypeString)
	}
	_node = &AttemptRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
