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
)

// PolicyOverrideCreate is the builder for creating a PolicyOverride entity.
type PolicyOverrideCreate struct {
	config
	mutation *PolicyOverrideMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *PolicyOverrideCreate) SetChatID(v string) *PolicyOverrideCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetForceMode sets the "force_mode" field.
func (_c *PolicyOverrideCreate) SetForceMode(v policyoverride.ForceMode) *PolicyOverrideCreate {
	_c.mutation.SetForceMode(v)
	return _c
}

// SetNillableForceMode sets the "force_mode" field if the given value is not nil.
func (_c *PolicyOverrideCreate) SetNillableForceMode(v *policyoverride.ForceMode) *PolicyOverrideCreate {
	if v != nil {
		_c.SetForceMode(*v)
	}
	return _c
}

// SetPersona sets the "persona" field.
func (_c *PolicyOverrideCreate) SetPersona(v string) *PolicyOverrideCreate {
	_c.mutation.SetPersona(v)
	return _c
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_c *PolicyOverrideCreate) SetNillablePersona(v *string) *PolicyOverrideCreate {
	if v != nil {
		_c.SetPersona(*v)
	}
	return _c
}

// SetReplyEnabled sets the "reply_enabled" field.
func (_c *PolicyOverrideCreate) SetReplyEnabled(v bool) *PolicyOverrideCreate {
	_c.mutation.SetReplyEnabled(v)
	return _c
}

// SetNillableReplyEnabled sets the "reply_enabled" field if the given value is not nil.
func (_c *PolicyOverrideCreate) SetNillableReplyEnabled(v *bool) *PolicyOverrideCreate {
	if v != nil {
		_c.SetReplyEnabled(*v)
	}
	return _c
}

// SetGroupReplyMode sets the "group_reply_mode" field.
func (_c *PolicyOverrideCreate) SetGroupReplyMode(v policyoverride.GroupReplyMode) *PolicyOverrideCreate {
	_c.mutation.SetGroupReplyMode(v)
	return _c
}

// SetNillableGroupReplyMode sets the "group_reply_mode" field if the given value is not nil.
func (_c *PolicyOverrideCreate) SetNillableGroupReplyMode(v *policyoverride.GroupReplyMode) *PolicyOverrideCreate {
	if v != nil {
		_c.SetGroupReplyMode(*v)
	}
	return _c
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (_c *PolicyOverrideCreate) SetRateLimitPerMin(v int) *PolicyOverrideCreate {
	_c.mutation.SetRateLimitPerMin(v)
	return _c
}

// SetNillableRateLimitPerMin sets the "rate_limit_per_min" field if the given value is not nil.
func (_c *PolicyOverrideCreate) SetNillableRateLimitPerMin(v *int) *PolicyOverrideCreate {
	if v != nil {
		_c.SetRateLimitPerMin(*v)
	}
	return _c
}

// SetConfirmExpensive sets the "confirm_expensive" field.
func (_c *PolicyOverrideCreate) SetConfirmExpensive(v bool) *PolicyOverrideCreate {
	_c.mutation.SetConfirmExpensive(v)
	return _c
}

// SetNillableConfirmExpensive sets the "confirm_expensive" field if the given value is not nil.
func (_c *PolicyOverrideCreate) SetNillableConfirmExpensive(v *bool) *PolicyOverrideCreate {
	if v != nil {
		_c.SetConfirmExpensive(*v)
	}
	return _c
}

// SetMaxOutputChars sets the "max_output_chars" field.
func (_c *PolicyOverrideCreate) SetMaxOutputChars(v int) *PolicyOverrideCreate {
	_c.mutation.SetMaxOutputChars(v)
	return _c
}

// SetNillableMaxOutputChars sets the "max_output_chars" field if the given value is not nil.
func (_c *PolicyOverrideCreate) SetNillableMaxOutputChars(v *int) *PolicyOverrideCreate {
	if v != nil {
		_c.SetMaxOutputChars(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PolicyOverrideCreate) SetUpdatedAt(v time.Time) *PolicyOverrideCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PolicyOverrideCreate) SetNillableUpdatedAt(v *time.Time) *PolicyOverrideCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PolicyOverrideCreate) SetExpiresAt(v time.Time) *PolicyOverrideCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// Mutation returns the PolicyOverrideMutation object of the builder.
func (_c *PolicyOverrideCreate) Mutation() *PolicyOverrideMutation {
	return _c.mutation
}

// Save creates the PolicyOverride in the database.
func (_c *PolicyOverrideCreate) Save(ctx context.Context) (*PolicyOverride, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolicyOverrideCreate) SaveX(ctx context.Context) *PolicyOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyOverrideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyOverrideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolicyOverrideCreate) defaults() {
	if _, ok := _c.mutation.ForceMode(); !ok {
		v := policyoverride.DefaultForceMode
		_c.mutation.SetForceMode(v)
	}
	if _, ok := _c.mutation.ReplyEnabled(); !ok {
		v := policyoverride.DefaultReplyEnabled
		_c.mutation.SetReplyEnabled(v)
	}
	if _, ok := _c.mutation.GroupReplyMode(); !ok {
		v := policyoverride.DefaultGroupReplyMode
		_c.mutation.SetGroupReplyMode(v)
	}
	if _, ok := _c.mutation.RateLimitPerMin(); !ok {
		v := policyoverride.DefaultRateLimitPerMin
		_c.mutation.SetRateLimitPerMin(v)
	}
	if _, ok := _c.mutation.ConfirmExpensive(); !ok {
		v := policyoverride.DefaultConfirmExpensive
		_c.mutation.SetConfirmExpensive(v)
	}
	if _, ok := _c.mutation.MaxOutputChars(); !ok {
		v := policyoverride.DefaultMaxOutputChars
		_c.mutation.SetMaxOutputChars(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := policyoverride.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolicyOverrideCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "PolicyOverride.chat_id"`)}
	}
	if _, ok := _c.mutation.ForceMode(); !ok {
		return &ValidationError{Name: "force_mode", err: errors.New(`ent: missing required field "PolicyOverride.force_mode"`)}
	}
	if v, ok := _c.mutation.ForceMode(); ok {
		if err := policyoverride.ForceModeValidator(v); err != nil {
			return &ValidationError{Name: "force_mode", err: fmt.Errorf(`ent: validator failed for field "PolicyOverride.force_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReplyEnabled(); !ok {
		return &ValidationError{Name: "reply_enabled", err: errors.New(`ent: missing required field "PolicyOverride.reply_enabled"`)}
	}
	if _, ok := _c.mutation.GroupReplyMode(); !ok {
		return &ValidationError{Name: "group_reply_mode", err: errors.New(`ent: missing required field "PolicyOverride.group_reply_mode"`)}
	}
	if v, ok := _c.mutation.GroupReplyMode(); ok {
		if err := policyoverride.GroupReplyModeValidator(v); err != nil {
			return &ValidationError{Name: "group_reply_mode", err: fmt.Errorf(`ent: validator failed for field "PolicyOverride.group_reply_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RateLimitPerMin(); !ok {
		return &ValidationError{Name: "rate_limit_per_min", err: errors.New(`ent: missing required field "PolicyOverride.rate_limit_per_min"`)}
	}
	if _, ok := _c.mutation.ConfirmExpensive(); !ok {
		return &ValidationError{Name: "confirm_expensive", err: errors.New(`ent: missing required field "PolicyOverride.confirm_expensive"`)}
	}
	if _, ok := _c.mutation.MaxOutputChars(); !ok {
		return &ValidationError{Name: "max_output_chars", err: errors.New(`ent: missing required field "PolicyOverride.max_output_chars"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PolicyOverride.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "PolicyOverride.expires_at"`)}
	}
	return nil
}

func (_c *PolicyOverrideCreate) sqlSave(ctx context.Context) (*PolicyOverride, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PolicyOverrideCreate) createSpec() (*PolicyOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &PolicyOverride{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(policyoverride.Table, sqlgraph.NewFieldSpec(policyoverride.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(policyoverride.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.ForceMode(); ok {
		_spec.SetField(policyoverride.FieldForceMode, field.TypeEnum, value)
		_node.ForceMode = value
	}
	if value, ok := _c.mutation.Persona(); ok {
		_spec.SetField(policyoverride.FieldPersona, field.TypeString, value)
		_node.Persona = value
	}
	if value, ok := _c.mutation.ReplyEnabled(); ok {
		_spec.SetField(policyoverride.FieldReplyEnabled, field.TypeBool, value)
		_node.ReplyEnabled = value
	}
	if value, ok := _c.mutation.GroupReplyMode(); ok {
		_spec.SetField(policyoverride.FieldGroupReplyMode, field.TypeEnum, value)
		_node.GroupReplyMode = value
	}
	if value, ok := _c.mutation.RateLimitPerMin(); ok {
		_spec.SetField(policyoverride.FieldRateLimitPerMin, field.TypeInt, value)
		_node.RateLimitPerMin = value
	}
	if value, ok := _c.mutation.ConfirmExpensive(); ok {
		_spec.SetField(policyoverride.FieldConfirmExpensive, field.TypeBool, value)
		_node.ConfirmExpensive = value
	}
	if value, ok := _c.mutation.MaxOutputChars(); ok {
		_spec.SetField(policyoverride.FieldMaxOutputChars, field.TypeInt, value)
		_node.MaxOutputChars = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(policyoverride.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(policyoverride.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PolicyOverride.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PolicyOverrideUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *PolicyOverrideCreate) OnConflict(opts ...sql.ConflictOption) *PolicyOverrideUpsertOne {
	_c.conflict = opts
	return &PolicyOverrideUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PolicyOverride.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PolicyOverrideCreate) OnConflictColumns(columns ...string) *PolicyOverrideUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PolicyOverrideUpsertOne{
		create: _c,
	}
}

type (
	// PolicyOverrideUpsertOne is the builder for "upsert"-ing
	//  one PolicyOverride node.
	PolicyOverrideUpsertOne struct {
		create *PolicyOverrideCreate
	}

	// PolicyOverrideUpsert is the "OnConflict" setter.
	PolicyOverrideUpsert struct {
		*sql.UpdateSet
	}
)

// SetForceMode sets the "force_mode" field.
func (u *PolicyOverrideUpsert) SetForceMode(v policyoverride.ForceMode) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldForceMode, v)
	return u
}

// UpdateForceMode sets the "force_mode" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdateForceMode() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldForceMode)
	return u
}

// SetPersona sets the "persona" field.
func (u *PolicyOverrideUpsert) SetPersona(v string) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldPersona, v)
	return u
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdatePersona() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldPersona)
	return u
}

// ClearPersona clears the value of the "persona" field.
func (u *PolicyOverrideUpsert) ClearPersona() *PolicyOverrideUpsert {
	u.SetNull(policyoverride.FieldPersona)
	return u
}

// SetReplyEnabled sets the "reply_enabled" field.
func (u *PolicyOverrideUpsert) SetReplyEnabled(v bool) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldReplyEnabled, v)
	return u
}

// UpdateReplyEnabled sets the "reply_enabled" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdateReplyEnabled() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldReplyEnabled)
	return u
}

// SetGroupReplyMode sets the "group_reply_mode" field.
func (u *PolicyOverrideUpsert) SetGroupReplyMode(v policyoverride.GroupReplyMode) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldGroupReplyMode, v)
	return u
}

// UpdateGroupReplyMode sets the "group_reply_mode" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdateGroupReplyMode() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldGroupReplyMode)
	return u
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (u *PolicyOverrideUpsert) SetRateLimitPerMin(v int) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldRateLimitPerMin, v)
	return u
}

// UpdateRateLimitPerMin sets the "rate_limit_per_min" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdateRateLimitPerMin() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldRateLimitPerMin)
	return u
}

// AddRateLimitPerMin adds v to the "rate_limit_per_min" field.
func (u *PolicyOverrideUpsert) AddRateLimitPerMin(v int) *PolicyOverrideUpsert {
	u.Add(policyoverride.FieldRateLimitPerMin, v)
	return u
}

// SetConfirmExpensive sets the "confirm_expensive" field.
func (u *PolicyOverrideUpsert) SetConfirmExpensive(v bool) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldConfirmExpensive, v)
	return u
}

// UpdateConfirmExpensive sets the "confirm_expensive" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdateConfirmExpensive() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldConfirmExpensive)
	return u
}

// SetMaxOutputChars sets the "max_output_chars" field.
func (u *PolicyOverrideUpsert) SetMaxOutputChars(v int) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldMaxOutputChars, v)
	return u
}

// UpdateMaxOutputChars sets the "max_output_chars" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdateMaxOutputChars() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldMaxOutputChars)
	return u
}

// AddMaxOutputChars adds v to the "max_output_chars" field.
func (u *PolicyOverrideUpsert) AddMaxOutputChars(v int) *PolicyOverrideUpsert {
	u.Add(policyoverride.FieldMaxOutputChars, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PolicyOverrideUpsert) SetUpdatedAt(v time.Time) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdateUpdatedAt() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldUpdatedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *PolicyOverrideUpsert) SetExpiresAt(v time.Time) *PolicyOverrideUpsert {
	u.Set(policyoverride.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PolicyOverrideUpsert) UpdateExpiresAt() *PolicyOverrideUpsert {
	u.SetExcluded(policyoverride.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PolicyOverride.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PolicyOverrideUpsertOne) UpdateNewValues() *PolicyOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ChatID(); exists {
			s.SetIgnore(policyoverride.FieldChatID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PolicyOverride.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PolicyOverrideUpsertOne) Ignore() *PolicyOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PolicyOverrideUpsertOne) DoNothing() *PolicyOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PolicyOverrideCreate.OnConflict
// documentation for more info.
func (u *PolicyOverrideUpsertOne) Update(set func(*PolicyOverrideUpsert)) *PolicyOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PolicyOverrideUpsert{UpdateSet: update})
	}))
	return u
}

// SetForceMode sets the "force_mode" field.
func (u *PolicyOverrideUpsertOne) SetForceMode(v policyoverride.ForceMode) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetForceMode(v)
	})
}

// UpdateForceMode sets the "force_mode" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdateForceMode() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateForceMode()
	})
}

// SetPersona sets the "persona" field.
func (u *PolicyOverrideUpsertOne) SetPersona(v string) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetPersona(v)
	})
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdatePersona() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdatePersona()
	})
}

// ClearPersona clears the value of the "persona" field.
func (u *PolicyOverrideUpsertOne) ClearPersona() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.ClearPersona()
	})
}

// SetReplyEnabled sets the "reply_enabled" field.
func (u *PolicyOverrideUpsertOne) SetReplyEnabled(v bool) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetReplyEnabled(v)
	})
}

// UpdateReplyEnabled sets the "reply_enabled" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdateReplyEnabled() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateReplyEnabled()
	})
}

// SetGroupReplyMode sets the "group_reply_mode" field.
func (u *PolicyOverrideUpsertOne) SetGroupReplyMode(v policyoverride.GroupReplyMode) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetGroupReplyMode(v)
	})
}

// UpdateGroupReplyMode sets the "group_reply_mode" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdateGroupReplyMode() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateGroupReplyMode()
	})
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (u *PolicyOverrideUpsertOne) SetRateLimitPerMin(v int) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetRateLimitPerMin(v)
	})
}

// AddRateLimitPerMin adds v to the "rate_limit_per_min" field.
func (u *PolicyOverrideUpsertOne) AddRateLimitPerMin(v int) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.AddRateLimitPerMin(v)
	})
}

// UpdateRateLimitPerMin sets the "rate_limit_per_min" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdateRateLimitPerMin() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateRateLimitPerMin()
	})
}

// SetConfirmExpensive sets the "confirm_expensive" field.
func (u *PolicyOverrideUpsertOne) SetConfirmExpensive(v bool) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetConfirmExpensive(v)
	})
}

// UpdateConfirmExpensive sets the "confirm_expensive" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdateConfirmExpensive() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateConfirmExpensive()
	})
}

// SetMaxOutputChars sets the "max_output_chars" field.
func (u *PolicyOverrideUpsertOne) SetMaxOutputChars(v int) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetMaxOutputChars(v)
	})
}

// AddMaxOutputChars adds v to the "max_output_chars" field.
func (u *PolicyOverrideUpsertOne) AddMaxOutputChars(v int) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.AddMaxOutputChars(v)
	})
}

// UpdateMaxOutputChars sets the "max_output_chars" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdateMaxOutputChars() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateMaxOutputChars()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PolicyOverrideUpsertOne) SetUpdatedAt(v time.Time) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdateUpdatedAt() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *PolicyOverrideUpsertOne) SetExpiresAt(v time.Time) *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PolicyOverrideUpsertOne) UpdateExpiresAt() *PolicyOverrideUpsertOne {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *PolicyOverrideUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PolicyOverrideCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PolicyOverrideUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PolicyOverrideUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PolicyOverrideUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PolicyOverrideCreateBulk is the builder for creating many PolicyOverride entities in bulk.
type PolicyOverrideCreateBulk struct {
	config
	err      error
	builders []*PolicyOverrideCreate
	conflict []sql.ConflictOption
}

// Save creates the PolicyOverride entities in the database.
func (_c *PolicyOverrideCreateBulk) Save(ctx context.Context) ([]*PolicyOverride, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolicyOverride, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolicyOverrideMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PolicyOverrideCreateBulk) SaveX(ctx context.Context) []*PolicyOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PolicyOverride.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PolicyOverrideUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *PolicyOverrideCreateBulk) OnConflict(opts ...sql.ConflictOption) *PolicyOverrideUpsertBulk {
	_c.conflict = opts
	return &PolicyOverrideUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PolicyOverride.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PolicyOverrideCreateBulk) OnConflictColumns(columns ...string) *PolicyOverrideUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PolicyOverrideUpsertBulk{
		create: _c,
	}
}

// PolicyOverrideUpsertBulk is the builder for "upsert"-ing
// a bulk of PolicyOverride nodes.
type PolicyOverrideUpsertBulk struct {
	create *PolicyOverrideCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PolicyOverride.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PolicyOverrideUpsertBulk) UpdateNewValues() *PolicyOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ChatID(); exists {
				s.SetIgnore(policyoverride.FieldChatID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PolicyOverride.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PolicyOverrideUpsertBulk) Ignore() *PolicyOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PolicyOverrideUpsertBulk) DoNothing() *PolicyOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PolicyOverrideCreateBulk.OnConflict
// documentation for more info.
func (u *PolicyOverrideUpsertBulk) Update(set func(*PolicyOverrideUpsert)) *PolicyOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PolicyOverrideUpsert{UpdateSet: update})
	}))
	return u
}

// SetForceMode sets the "force_mode" field.
func (u *PolicyOverrideUpsertBulk) SetForceMode(v policyoverride.ForceMode) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetForceMode(v)
	})
}

// UpdateForceMode sets the "force_mode" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdateForceMode() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateForceMode()
	})
}

// SetPersona sets the "persona" field.
func (u *PolicyOverrideUpsertBulk) SetPersona(v string) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetPersona(v)
	})
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdatePersona() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdatePersona()
	})
}

// ClearPersona clears the value of the "persona" field.
func (u *PolicyOverrideUpsertBulk) ClearPersona() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.ClearPersona()
	})
}

// SetReplyEnabled sets the "reply_enabled" field.
func (u *PolicyOverrideUpsertBulk) SetReplyEnabled(v bool) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetReplyEnabled(v)
	})
}

// UpdateReplyEnabled sets the "reply_enabled" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdateReplyEnabled() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateReplyEnabled()
	})
}

// SetGroupReplyMode sets the "group_reply_mode" field.
func (u *PolicyOverrideUpsertBulk) SetGroupReplyMode(v policyoverride.GroupReplyMode) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetGroupReplyMode(v)
	})
}

// UpdateGroupReplyMode sets the "group_reply_mode" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdateGroupReplyMode() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateGroupReplyMode()
	})
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (u *PolicyOverrideUpsertBulk) SetRateLimitPerMin(v int) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetRateLimitPerMin(v)
	})
}

// AddRateLimitPerMin adds v to the "rate_limit_per_min" field.
func (u *PolicyOverrideUpsertBulk) AddRateLimitPerMin(v int) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.AddRateLimitPerMin(v)
	})
}

// UpdateRateLimitPerMin sets the "rate_limit_per_min" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdateRateLimitPerMin() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateRateLimitPerMin()
	})
}

// SetConfirmExpensive sets the "confirm_expensive" field.
func (u *PolicyOverrideUpsertBulk) SetConfirmExpensive(v bool) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetConfirmExpensive(v)
	})
}

// UpdateConfirmExpensive sets the "confirm_expensive" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdateConfirmExpensive() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateConfirmExpensive()
	})
}

// SetMaxOutputChars sets the "max_output_chars" field.
func (u *PolicyOverrideUpsertBulk) SetMaxOutputChars(v int) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetMaxOutputChars(v)
	})
}

// AddMaxOutputChars adds v to the "max_output_chars" field.
func (u *PolicyOverrideUpsertBulk) AddMaxOutputChars(v int) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.AddMaxOutputChars(v)
	})
}

// UpdateMaxOutputChars sets the "max_output_chars" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdateMaxOutputChars() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateMaxOutputChars()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PolicyOverrideUpsertBulk) SetUpdatedAt(v time.Time) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdateUpdatedAt() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *PolicyOverrideUpsertBulk) SetExpiresAt(v time.Time) *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PolicyOverrideUpsertBulk) UpdateExpiresAt() *PolicyOverrideUpsertBulk {
	return u.Update(func(s *PolicyOverrideUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *PolicyOverrideUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PolicyOverrideCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PolicyOverrideCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PolicyOverrideUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
