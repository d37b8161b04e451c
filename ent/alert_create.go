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
)

// AlertCreate is the builder for creating a Alert entity.
type AlertCreate struct {
	config
	mutation *AlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCode sets the "code" field.
func (_c *AlertCreate) SetCode(v string) *AlertCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *AlertCreate) SetSeverity(v alert.Severity) *AlertCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *AlertCreate) SetMessage(v string) *AlertCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *AlertCreate) SetFirstSeen(v time.Time) *AlertCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *AlertCreate) SetNillableFirstSeen(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *AlertCreate) SetLastSeen(v time.Time) *AlertCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *AlertCreate) SetNillableLastSeen(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetCount sets the "count" field.
func (_c *AlertCreate) SetCount(v int64) *AlertCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *AlertCreate) SetNillableCount(v *int64) *AlertCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetAcked sets the "acked" field.
func (_c *AlertCreate) SetAcked(v bool) *AlertCreate {
	_c.mutation.SetAcked(v)
	return _c
}

// SetNillableAcked sets the "acked" field if the given value is not nil.
func (_c *AlertCreate) SetNillableAcked(v *bool) *AlertCreate {
	if v != nil {
		_c.SetAcked(*v)
	}
	return _c
}

// SetAckedAt sets the "acked_at" field.
func (_c *AlertCreate) SetAckedAt(v time.Time) *AlertCreate {
	_c.mutation.SetAckedAt(v)
	return _c
}

// SetNillableAckedAt sets the "acked_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableAckedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetAckedAt(*v)
	}
	return _c
}

// Mutation returns the AlertMutation object of the builder.
func (_c *AlertCreate) Mutation() *AlertMutation {
	return _c.mutation
}

// Save creates the Alert in the database.
func (_c *AlertCreate) Save(ctx context.Context) (*Alert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertCreate) SaveX(ctx context.Context) *Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertCreate) defaults() {
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := alert.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := alert.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.Count(); !ok {
		v := alert.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.Acked(); !ok {
		v := alert.DefaultAcked
		_c.mutation.SetAcked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Alert.code"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Alert.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Alert.message"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "Alert.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Alert.last_seen"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "Alert.count"`)}
	}
	if _, ok := _c.mutation.Acked(); !ok {
		return &ValidationError{Name: "acked", err: errors.New(`ent: missing required field "Alert.acked"`)}
	}
	return nil
}

func (_c *AlertCreate) sqlSave(ctx context.Context) (*Alert, error) {
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

func (_c *AlertCreate) createSpec() (*Alert, *sqlgraph.CreateSpec) {
	var (
		_node = &Alert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alert.Table, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(alert.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(alert.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(alert.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(alert.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(alert.FieldCount, field.TypeInt64, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.Acked(); ok {
		_spec.SetField(alert.FieldAcked, field.TypeBool, value)
		_node.Acked = value
	}
	if value, ok := _c.mutation.AckedAt(); ok {
		_spec.SetField(alert.FieldAckedAt, field.TypeTime, value)
		_node.AckedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.Create().
//		SetCode(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetCode(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreate) OnConflict(opts ...sql.ConflictOption) *AlertUpsertOne {
	_c.conflict = opts
	return &AlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreate) OnConflictColumns(columns ...string) *AlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertOne{
		create: _c,
	}
}

type (
	// AlertUpsertOne is the builder for "upsert"-ing
	//  one Alert node.
	AlertUpsertOne struct {
		create *AlertCreate
	}

	// AlertUpsert is the "OnConflict" setter.
	AlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetSeverity sets the "severity" field.
func (u *AlertUpsert) SetSeverity(v alert.Severity) *AlertUpsert {
	u.Set(alert.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AlertUpsert) UpdateSeverity() *AlertUpsert {
	u.SetExcluded(alert.FieldSeverity)
	return u
}

// SetMessage sets the "message" field.
func (u *AlertUpsert) SetMessage(v string) *AlertUpsert {
	u.Set(alert.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AlertUpsert) UpdateMessage() *AlertUpsert {
	u.SetExcluded(alert.FieldMessage)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *AlertUpsert) SetLastSeen(v time.Time) *AlertUpsert {
	u.Set(alert.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AlertUpsert) UpdateLastSeen() *AlertUpsert {
	u.SetExcluded(alert.FieldLastSeen)
	return u
}

// SetCount sets the "count" field.
func (u *AlertUpsert) SetCount(v int64) *AlertUpsert {
	u.Set(alert.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *AlertUpsert) UpdateCount() *AlertUpsert {
	u.SetExcluded(alert.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *AlertUpsert) AddCount(v int64) *AlertUpsert {
	u.Add(alert.FieldCount, v)
	return u
}

// SetAcked sets the "acked" field.
func (u *AlertUpsert) SetAcked(v bool) *AlertUpsert {
	u.Set(alert.FieldAcked, v)
	return u
}

// UpdateAcked sets the "acked" field to the value that was provided on create.
func (u *AlertUpsert) UpdateAcked() *AlertUpsert {
	u.SetExcluded(alert.FieldAcked)
	return u
}

// SetAckedAt sets the "acked_at" field.
func (u *AlertUpsert) SetAckedAt(v time.Time) *AlertUpsert {
	u.Set(alert.FieldAckedAt, v)
	return u
}

// UpdateAckedAt sets the "acked_at" field to the value that was provided on create.
func (u *AlertUpsert) UpdateAckedAt() *AlertUpsert {
	u.SetExcluded(alert.FieldAckedAt)
	return u
}

// ClearAckedAt clears the value of the "acked_at" field.
func (u *AlertUpsert) ClearAckedAt() *AlertUpsert {
	u.SetNull(alert.FieldAckedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AlertUpsertOne) UpdateNewValues() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Code(); exists {
			s.SetIgnore(alert.FieldCode)
		}
		if _, exists := u.create.mutation.FirstSeen(); exists {
			s.SetIgnore(alert.FieldFirstSeen)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlertUpsertOne) Ignore() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertOne) DoNothing() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreate.OnConflict
// documentation for more info.
func (u *AlertUpsertOne) Update(set func(*AlertUpsert)) *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetSeverity sets the "severity" field.
func (u *AlertUpsertOne) SetSeverity(v alert.Severity) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateSeverity() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSeverity()
	})
}

// SetMessage sets the "message" field.
func (u *AlertUpsertOne) SetMessage(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateMessage() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateMessage()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *AlertUpsertOne) SetLastSeen(v time.Time) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateLastSeen() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateLastSeen()
	})
}

// SetCount sets the "count" field.
func (u *AlertUpsertOne) SetCount(v int64) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *AlertUpsertOne) AddCount(v int64) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateCount() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateCount()
	})
}

// SetAcked sets the "acked" field.
func (u *AlertUpsertOne) SetAcked(v bool) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetAcked(v)
	})
}

// UpdateAcked sets the "acked" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateAcked() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateAcked()
	})
}

// SetAckedAt sets the "acked_at" field.
func (u *AlertUpsertOne) SetAckedAt(v time.Time) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetAckedAt(v)
	})
}

// UpdateAckedAt sets the "acked_at" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateAckedAt() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateAckedAt()
	})
}

// ClearAckedAt clears the value of the "acked_at" field.
func (u *AlertUpsertOne) ClearAckedAt() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearAckedAt()
	})
}

// Exec executes the query.
func (u *AlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlertUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlertUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlertCreateBulk is the builder for creating many Alert entities in bulk.
type AlertCreateBulk struct {
	config
	err      error
	builders []*AlertCreate
	conflict []sql.ConflictOption
}

// Save creates the Alert entities in the database.
func (_c *AlertCreateBulk) Save(ctx context.Context) ([]*Alert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Alert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertMutation)
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
func (_c *AlertCreateBulk) SaveX(ctx context.Context) []*Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetCode(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlertUpsertBulk {
	_c.conflict = opts
	return &AlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflictColumns(columns ...string) *AlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertBulk{
		create: _c,
	}
}

// AlertUpsertBulk is the builder for "upsert"-ing
// a bulk of Alert nodes.
type AlertUpsertBulk struct {
	create *AlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AlertUpsertBulk) UpdateNewValues() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Code(); exists {
				s.SetIgnore(alert.FieldCode)
			}
			if _, exists := b.mutation.FirstSeen(); exists {
				s.SetIgnore(alert.FieldFirstSeen)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlertUpsertBulk) Ignore() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertBulk) DoNothing() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreateBulk.OnConflict
// documentation for more info.
func (u *AlertUpsertBulk) Update(set func(*AlertUpsert)) *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetSeverity sets the "severity" field.
func (u *AlertUpsertBulk) SetSeverity(v alert.Severity) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateSeverity() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSeverity()
	})
}

// SetMessage sets the "message" field.
func (u *AlertUpsertBulk) SetMessage(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateMessage() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateMessage()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *AlertUpsertBulk) SetLastSeen(v time.Time) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateLastSeen() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateLastSeen()
	})
}

// SetCount sets the "count" field.
func (u *AlertUpsertBulk) SetCount(v int64) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *AlertUpsertBulk) AddCount(v int64) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateCount() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateCount()
	})
}

// SetAcked sets the "acked" field.
func (u *AlertUpsertBulk) SetAcked(v bool) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetAcked(v)
	})
}

// UpdateAcked sets the "acked" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateAcked() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateAcked()
	})
}

// SetAckedAt sets the "acked_at" field.
func (u *AlertUpsertBulk) SetAckedAt(v time.Time) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetAckedAt(v)
	})
}

// UpdateAckedAt sets the "acked_at" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateAckedAt() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateAckedAt()
	})
}

// ClearAckedAt clears the value of the "acked_at" field.
func (u *AlertUpsertBulk) ClearAckedAt() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearAckedAt()
	})
}

// Exec executes the query.
func (u *AlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
