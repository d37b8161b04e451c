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
	"github.com/Pavua/krab/ent/policyoverride"
	"github.com/Pavua/krab/ent/predicate"
)

// PolicyOverrideUpdate is the builder for updating PolicyOverride entities.
type PolicyOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *PolicyOverrideMutation
}

// Where appends a list predicates to the PolicyOverrideUpdate builder.
func (_u *PolicyOverrideUpdate) Where(ps ...predicate.PolicyOverride) *PolicyOverrideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetForceMode sets the "force_mode" field.
func (_u *PolicyOverrideUpdate) SetForceMode(v policyoverride.ForceMode) *PolicyOverrideUpdate {
	_u.mutation.SetForceMode(v)
	return _u
}

// SetNillableForceMode sets the "force_mode" field if the given value is not nil.
func (_u *PolicyOverrideUpdate) SetNillableForceMode(v *policyoverride.ForceMode) *PolicyOverrideUpdate {
	if v != nil {
		_u.SetForceMode(*v)
	}
	return _u
}

// SetPersona sets the "persona" field.
func (_u *PolicyOverrideUpdate) SetPersona(v string) *PolicyOverrideUpdate {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *PolicyOverrideUpdate) SetNillablePersona(v *string) *PolicyOverrideUpdate {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// ClearPersona clears the value of the "persona" field.
func (_u *PolicyOverrideUpdate) ClearPersona() *PolicyOverrideUpdate {
	_u.mutation.ClearPersona()
	return _u
}

// SetReplyEnabled sets the "reply_enabled" field.
func (_u *PolicyOverrideUpdate) SetReplyEnabled(v bool) *PolicyOverrideUpdate {
	_u.mutation.SetReplyEnabled(v)
	return _u
}

// SetNillableReplyEnabled sets the "reply_enabled" field if the given value is not nil.
func (_u *PolicyOverrideUpdate) SetNillableReplyEnabled(v *bool) *PolicyOverrideUpdate {
	if v != nil {
		_u.SetReplyEnabled(*v)
	}
	return _u
}

// SetGroupReplyMode sets the "group_reply_mode" field.
func (_u *PolicyOverrideUpdate) SetGroupReplyMode(v policyoverride.GroupReplyMode) *PolicyOverrideUpdate {
	_u.mutation.SetGroupReplyMode(v)
	return _u
}

// SetNillableGroupReplyMode sets the "group_reply_mode" field if the given value is not nil.
func (_u *PolicyOverrideUpdate) SetNillableGroupReplyMode(v *policyoverride.GroupReplyMode) *PolicyOverrideUpdate {
	if v != nil {
		_u.SetGroupReplyMode(*v)
	}
	return _u
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (_u *PolicyOverrideUpdate) SetRateLimitPerMin(v int) *PolicyOverrideUpdate {
	_u.mutation.ResetRateLimitPerMin()
	_u.mutation.SetRateLimitPerMin(v)
	return _u
}

// SetNillableRateLimitPerMin sets the "rate_limit_per_min" field if the given value is not nil.
func (_u *PolicyOverrideUpdate) SetNillableRateLimitPerMin(v *int) *PolicyOverrideUpdate {
	if v != nil {
		_u.SetRateLimitPerMin(*v)
	}
	return _u
}

// AddRateLimitPerMin adds value to the "rate_limit_per_min" field.
func (_u *PolicyOverrideUpdate) AddRateLimitPerMin(v int) *PolicyOverrideUpdate {
	_u.mutation.AddRateLimitPerMin(v)
	return _u
}

// SetConfirmExpensive sets the "confirm_expensive" field.
func (_u *PolicyOverrideUpdate) SetConfirmExpensive(v bool) *PolicyOverrideUpdate {
	_u.mutation.SetConfirmExpensive(v)
	return _u
}

// SetNillableConfirmExpensive sets the "confirm_expensive" field if the given value is not nil.
func (_u *PolicyOverrideUpdate) SetNillableConfirmExpensive(v *bool) *PolicyOverrideUpdate {
	if v != nil {
		_u.SetConfirmExpensive(*v)
	}
	return _u
}

// SetMaxOutputChars sets the "max_output_chars" field.
func (_u *PolicyOverrideUpdate) SetMaxOutputChars(v int) *PolicyOverrideUpdate {
	_u.mutation.ResetMaxOutputChars()
	_u.mutation.SetMaxOutputChars(v)
	return _u
}

// SetNillableMaxOutputChars sets the "max_output_chars" field if the given value is not nil.
func (_u *PolicyOverrideUpdate) SetNillableMaxOutputChars(v *int) *PolicyOverrideUpdate {
	if v != nil {
		_u.SetMaxOutputChars(*v)
	}
	return _u
}

// AddMaxOutputChars adds value to the "max_output_chars" field.
func (_u *PolicyOverrideUpdate) AddMaxOutputChars(v int) *PolicyOverrideUpdate {
	_u.mutation.AddMaxOutputChars(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyOverrideUpdate) SetUpdatedAt(v time.Time) *PolicyOverrideUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PolicyOverrideUpdate) SetExpiresAt(v time.Time) *PolicyOverrideUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PolicyOverrideUpdate) SetNillableExpiresAt(v *time.Time) *PolicyOverrideUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the PolicyOverrideMutation object of the builder.
func (_u *PolicyOverrideUpdate) Mutation() *PolicyOverrideMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolicyOverrideUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolicyOverrideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyOverrideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyOverrideUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyOverrideUpdate) check() error {
	if v, ok := _u.mutation.ForceMode(); ok {
		if err := policyoverride.ForceModeValidator(v); err != nil {
			return &ValidationError{Name: "force_mode", err: fmt.Errorf(`ent: validator failed for field "PolicyOverride.force_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupReplyMode(); ok {
		if err := policyoverride.GroupReplyModeValidator(v); err != nil {
			return &ValidationError{Name: "group_reply_mode", err: fmt.Errorf(`ent: validator failed for field "PolicyOverride.group_reply_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *PolicyOverrideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyoverride.Table, policyoverride.Columns, sqlgraph.NewFieldSpec(policyoverride.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ForceMode(); ok {
		_spec.SetField(policyoverride.FieldForceMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(policyoverride.FieldPersona, field.TypeString, value)
	}
	if _u.mutation.PersonaCleared() {
		_spec.ClearField(policyoverride.FieldPersona, field.TypeString)
	}
	if value, ok := _u.mutation.ReplyEnabled(); ok {
		_spec.SetField(policyoverride.FieldReplyEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GroupReplyMode(); ok {
		_spec.SetField(policyoverride.FieldGroupReplyMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RateLimitPerMin(); ok {
		_spec.SetField(policyoverride.FieldRateLimitPerMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateLimitPerMin(); ok {
		_spec.AddField(policyoverride.FieldRateLimitPerMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfirmExpensive(); ok {
		_spec.SetField(policyoverride.FieldConfirmExpensive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxOutputChars(); ok {
		_spec.SetField(policyoverride.FieldMaxOutputChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxOutputChars(); ok {
		_spec.AddField(policyoverride.FieldMaxOutputChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(policyoverride.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolicyOverrideUpdateOne is the builder for updating a single PolicyOverride entity.
type PolicyOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolicyOverrideMutation
}

// SetForceMode sets the "force_mode" field.
func (_u *PolicyOverrideUpdateOne) SetForceMode(v policyoverride.ForceMode) *PolicyOverrideUpdateOne {
	_u.mutation.SetForceMode(v)
	return _u
}

// SetNillableForceMode sets the "force_mode" field if the given value is not nil.
func (_u *PolicyOverrideUpdateOne) SetNillableForceMode(v *policyoverride.ForceMode) *PolicyOverrideUpdateOne {
	if v != nil {
		_u.SetForceMode(*v)
	}
	return _u
}

// SetPersona sets the "persona" field.
func (_u *PolicyOverrideUpdateOne) SetPersona(v string) *PolicyOverrideUpdateOne {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *PolicyOverrideUpdateOne) SetNillablePersona(v *string) *PolicyOverrideUpdateOne {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// ClearPersona clears the value of the "persona" field.
func (_u *PolicyOverrideUpdateOne) ClearPersona() *PolicyOverrideUpdateOne {
	_u.mutation.ClearPersona()
	return _u
}

// SetReplyEnabled sets the "reply_enabled" field.
func (_u *PolicyOverrideUpdateOne) SetReplyEnabled(v bool) *PolicyOverrideUpdateOne {
	_u.mutation.SetReplyEnabled(v)
	return _u
}

// SetNillableReplyEnabled sets the "reply_enabled" field if the given value is not nil.
func (_u *PolicyOverrideUpdateOne) SetNillableReplyEnabled(v *bool) *PolicyOverrideUpdateOne {
	if v != nil {
		_u.SetReplyEnabled(*v)
	}
	return _u
}

// SetGroupReplyMode sets the "group_reply_mode" field.
func (_u *PolicyOverrideUpdateOne) SetGroupReplyMode(v policyoverride.GroupReplyMode) *PolicyOverrideUpdateOne {
	_u.mutation.SetGroupReplyMode(v)
	return _u
}

// SetNillableGroupReplyMode sets the "group_reply_mode" field if the given value is not nil.
func (_u *PolicyOverrideUpdateOne) SetNillableGroupReplyMode(v *policyoverride.GroupReplyMode) *PolicyOverrideUpdateOne {
	if v != nil {
		_u.SetGroupReplyMode(*v)
	}
	return _u
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (_u *PolicyOverrideUpdateOne) SetRateLimitPerMin(v int) *PolicyOverrideUpdateOne {
	_u.mutation.ResetRateLimitPerMin()
	_u.mutation.SetRateLimitPerMin(v)
	return _u
}

// SetNillableRateLimitPerMin sets the "rate_limit_per_min" field if the given value is not nil.
func (_u *PolicyOverrideUpdateOne) SetNillableRateLimitPerMin(v *int) *PolicyOverrideUpdateOne {
	if v != nil {
		_u.SetRateLimitPerMin(*v)
	}
	return _u
}

// AddRateLimitPerMin adds value to the "rate_limit_per_min" field.
func (_u *PolicyOverrideUpdateOne) AddRateLimitPerMin(v int) *PolicyOverrideUpdateOne {
	_u.mutation.AddRateLimitPerMin(v)
	return _u
}

// SetConfirmExpensive sets the "confirm_expensive" field.
func (_u *PolicyOverrideUpdateOne) SetConfirmExpensive(v bool) *PolicyOverrideUpdateOne {
	_u.mutation.SetConfirmExpensive(v)
	return _u
}

// SetNillableConfirmExpensive sets the "confirm_expensive" field if the given value is not nil.
func (_u *PolicyOverrideUpdateOne) SetNillableConfirmExpensive(v *bool) *PolicyOverrideUpdateOne {
	if v != nil {
		_u.SetConfirmExpensive(*v)
	}
	return _u
}

// SetMaxOutputChars sets the "max_output_chars" field.
func (_u *PolicyOverrideUpdateOne) SetMaxOutputChars(v int) *PolicyOverrideUpdateOne {
	_u.mutation.ResetMaxOutputChars()
	_u.mutation.SetMaxOutputChars(v)
	return _u
}

// SetNillableMaxOutputChars sets the "max_output_chars" field if the given value is not nil.
func (_u *PolicyOverrideUpdateOne) SetNillableMaxOutputChars(v *int) *PolicyOverrideUpdateOne {
	if v != nil {
		_u.SetMaxOutputChars(*v)
	}
	return _u
}

// AddMaxOutputChars adds value to the "max_output_chars" field.
func (_u *PolicyOverrideUpdateOne) AddMaxOutputChars(v int) *PolicyOverrideUpdateOne {
	_u.mutation.AddMaxOutputChars(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyOverrideUpdateOne) SetUpdatedAt(v time.Time) *PolicyOverrideUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PolicyOverrideUpdateOne) SetExpiresAt(v time.Time) *PolicyOverrideUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PolicyOverrideUpdateOne) SetNillableExpiresAt(v *time.Time) *PolicyOverrideUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the PolicyOverrideMutation object of the builder.
func (_u *PolicyOverrideUpdateOne) Mutation() *PolicyOverrideMutation {
	return _u.mutation
}

// Where appends a list predicates to the PolicyOverrideUpdate builder.
func (_u *PolicyOverrideUpdateOne) Where(ps ...predicate.PolicyOverride) *PolicyOverrideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolicyOverrideUpdateOne) Select(field string, fields ...string) *PolicyOverrideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PolicyOverride entity.
func (_u *PolicyOverrideUpdateOne) Save(ctx context.Context) (*PolicyOverride, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyOverrideUpdateOne) SaveX(ctx context.Context) *PolicyOverride {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolicyOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyOverrideUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyOverrideUpdateOne) check() error {
	if v, ok := _u.mutation.ForceMode(); ok {
		if err := policyoverride.ForceModeValidator(v); err != nil {
			return &ValidationError{Name: "force_mode", err: fmt.Errorf(`ent: validator failed for field "PolicyOverride.force_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupReplyMode(); ok {
		if err := policyoverride.GroupReplyModeValidator(v); err != nil {
			return &ValidationError{Name: "group_reply_mode", err: fmt.Errorf(`ent: validator failed for field "PolicyOverride.group_reply_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *PolicyOverrideUpdateOne) sqlSave(ctx context.Context) (_node *PolicyOverride, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyoverride.Table, policyoverride.Columns, sqlgraph.NewFieldSpec(policyoverride.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PolicyOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, policyoverride.FieldID)
		for _, f := range fields {
			if !policyoverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != policyoverride.FieldID {
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
	if value, ok := _u.mutation.ForceMode(); ok {
		_spec.SetField(policyoverride.FieldForceMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(policyoverride.FieldPersona, field.TypeString, value)
	}
	if _u.mutation.PersonaCleared() {
		_spec.ClearField(policyoverride.FieldPersona, field.TypeString)
	}
	if value, ok := _u.mutation.ReplyEnabled(); ok {
		_spec.SetField(policyoverride.FieldReplyEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GroupReplyMode(); ok {
		_spec.SetField(policyoverride.FieldGroupReplyMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RateLimitPerMin(); ok {
		_spec.SetField(policyoverride.FieldRateLimitPerMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateLimitPerMin(); ok {
		_spec.AddField(policyoverride.FieldRateLimitPerMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfirmExpensive(); ok {
		_spec.SetField(policyoverride.FieldConfirmExpensive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxOutputChars(); ok {
		_spec.SetField(policyoverride.FieldMaxOutputChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxOutputChars(); ok {
		_spec.AddField(policyoverride.FieldMaxOutputChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(policyoverride.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &PolicyOverride{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
