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
	"github.com/Pavua/krab/ent/attemptrecord"
)

// AttemptRecordCreate is the builder for creating a AttemptRecord entity.
type AttemptRecordCreate struct {
	config
	mutation *AttemptRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRequestID sets the "request_id" field.
func (_c *AttemptRecordCreate) SetRequestID(v string) *AttemptRecordCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *AttemptRecordCreate) SetChatID(v string) *AttemptRecordCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *AttemptRecordCreate) SetTier(v attemptrecord.Tier) *AttemptRecordCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *AttemptRecordCreate) SetModelID(v string) *AttemptRecordCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *AttemptRecordCreate) SetOutcome(v string) *AttemptRecordCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *AttemptRecordCreate) SetErrorCode(v string) *AttemptRecordCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableErrorCode(v *string) *AttemptRecordCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetRouteReason sets the "route_reason" field.
func (_c *AttemptRecordCreate) SetRouteReason(v string) *AttemptRecordCreate {
	_c.mutation.SetRouteReason(v)
	return _c
}

// SetNillableRouteReason sets the "route_reason" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableRouteReason(v *string) *AttemptRecordCreate {
	if v != nil {
		_c.SetRouteReason(*v)
	}
	return _c
}

// SetBytesIn sets the "bytes_in" field.
func (_c *AttemptRecordCreate) SetBytesIn(v int) *AttemptRecordCreate {
	_c.mutation.SetBytesIn(v)
	return _c
}

// SetNillableBytesIn sets the "bytes_in" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableBytesIn(v *int) *AttemptRecordCreate {
	if v != nil {
		_c.SetBytesIn(*v)
	}
	return _c
}

// SetBytesOut sets the "bytes_out" field.
func (_c *AttemptRecordCreate) SetBytesOut(v int) *AttemptRecordCreate {
	_c.mutation.SetBytesOut(v)
	return _c
}

// SetNillableBytesOut sets the "bytes_out" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableBytesOut(v *int) *AttemptRecordCreate {
	if v != nil {
		_c.SetBytesOut(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *AttemptRecordCreate) SetErrorDetail(v string) *AttemptRecordCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableErrorDetail(v *string) *AttemptRecordCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AttemptRecordCreate) SetStartedAt(v time.Time) *AttemptRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *AttemptRecordCreate) SetEndedAt(v time.Time) *AttemptRecordCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptRecordCreate) SetCreatedAt(v time.Time) *AttemptRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableCreatedAt(v *time.Time) *AttemptRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AttemptRecordMutation object of the builder.
func (_c *AttemptRecordCreate) Mutation() *AttemptRecordMutation {
	return _c.mutation
}

// Save creates the AttemptRecord in the database.
func (_c *AttemptRecordCreate) Save(ctx context.Context) (*AttemptRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptRecordCreate) SaveX(ctx context.Context) *AttemptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptRecordCreate) defaults() {
	if _, ok := _c.mutation.BytesIn(); !ok {
		v := attemptrecord.DefaultBytesIn
		_c.mutation.SetBytesIn(v)
	}
	if _, ok := _c.mutation.BytesOut(); !ok {
		v := attemptrecord.DefaultBytesOut
		_c.mutation.SetBytesOut(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attemptrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptRecordCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "AttemptRecord.request_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "AttemptRecord.chat_id"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "AttemptRecord.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := attemptrecord.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "AttemptRecord.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "AttemptRecord.model_id"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "AttemptRecord.outcome"`)}
	}
	if _, ok := _c.mutation.BytesIn(); !ok {
		return &ValidationError{Name: "bytes_in", err: errors.New(`ent: missing required field "AttemptRecord.bytes_in"`)}
	}
	if _, ok := _c.mutation.BytesOut(); !ok {
		return &ValidationError{Name: "bytes_out", err: errors.New(`ent: missing required field "AttemptRecord.bytes_out"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AttemptRecord.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "AttemptRecord.ended_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AttemptRecord.created_at"`)}
	}
	return nil
}

func (_c *AttemptRecordCreate) sqlSave(ctx context.Context) (*AttemptRecord, error) {
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

func (_c *AttemptRecordCreate) createSpec() (*AttemptRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptrecord.Table, sqlgraph.NewFieldSpec(attemptrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(attemptrecord.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(attemptrecord.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(attemptrecord.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(attemptrecord.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(attemptrecord.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(attemptrecord.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = value
	}
	if value, ok := _c.mutation.RouteReason(); ok {
		_spec.SetField(attemptrecord.FieldRouteReason, field.TypeString, value)
		_node.RouteReason = value
	}
	if value, ok := _c.mutation.BytesIn(); ok {
		_spec.SetField(attemptrecord.FieldBytesIn, field.TypeInt, value)
		_node.BytesIn = value
	}
	if value, ok := _c.mutation.BytesOut(); ok {
		_spec.SetField(attemptrecord.FieldBytesOut, field.TypeInt, value)
		_node.BytesOut = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(attemptrecord.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(attemptrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(attemptrecord.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attemptrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptRecord.Create().
//		SetRequestID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptRecordUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptRecordCreate) OnConflict(opts ...sql.ConflictOption) *AttemptRecordUpsertOne {
	_c.conflict = opts
	return &AttemptRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptRecordCreate) OnConflictColumns(columns ...string) *AttemptRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptRecordUpsertOne{
		create: _c,
	}
}

type (
	// AttemptRecordUpsertOne is the builder for "upsert"-ing
	//  one AttemptRecord node.
	AttemptRecordUpsertOne struct {
		create *AttemptRecordCreate
	}

	// AttemptRecordUpsert is the "OnConflict" setter.
	AttemptRecordUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AttemptRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptRecordUpsertOne) UpdateNewValues() *AttemptRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RequestID(); exists {
			s.SetIgnore(attemptrecord.FieldRequestID)
		}
		if _, exists := u.create.mutation.ChatID(); exists {
			s.SetIgnore(attemptrecord.FieldChatID)
		}
		if _, exists := u.create.mutation.Tier(); exists {
			s.SetIgnore(attemptrecord.FieldTier)
		}
		if _, exists := u.create.mutation.ModelID(); exists {
			s.SetIgnore(attemptrecord.FieldModelID)
		}
		if _, exists := u.create.mutation.Outcome(); exists {
			s.SetIgnore(attemptrecord.FieldOutcome)
		}
		if _, exists := u.create.mutation.ErrorCode(); exists {
			s.SetIgnore(attemptrecord.FieldErrorCode)
		}
		if _, exists := u.create.mutation.RouteReason(); exists {
			s.SetIgnore(attemptrecord.FieldRouteReason)
		}
		if _, exists := u.create.mutation.BytesIn(); exists {
			s.SetIgnore(attemptrecord.FieldBytesIn)
		}
		if _, exists := u.create.mutation.BytesOut(); exists {
			s.SetIgnore(attemptrecord.FieldBytesOut)
		}
		if _, exists := u.create.mutation.ErrorDetail(); exists {
			s.SetIgnore(attemptrecord.FieldErrorDetail)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(attemptrecord.FieldStartedAt)
		}
		if _, exists := u.create.mutation.EndedAt(); exists {
			s.SetIgnore(attemptrecord.FieldEndedAt)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(attemptrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptRecordUpsertOne) Ignore() *AttemptRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptRecordUpsertOne) DoNothing() *AttemptRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptRecordCreate.OnConflict
// documentation for more info.
func (u *AttemptRecordUpsertOne) Update(set func(*AttemptRecordUpsert)) *AttemptRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptRecordUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AttemptRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptRecordCreateBulk is the builder for creating many AttemptRecord entities in bulk.
type AttemptRecordCreateBulk struct {
	config
	err      error
	builders []*AttemptRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the AttemptRecord entities in the database.
func (_c *AttemptRecordCreateBulk) Save(ctx context.Context) ([]*AttemptRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptRecordMutation)
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
func (_c *AttemptRecordCreateBulk) SaveX(ctx context.Context) []*AttemptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptRecordUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptRecordUpsertBulk {
	_c.conflict = opts
	return &AttemptRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptRecordCreateBulk) OnConflictColumns(columns ...string) *AttemptRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptRecordUpsertBulk{
		create: _c,
	}
}

// AttemptRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of AttemptRecord nodes.
type AttemptRecordUpsertBulk struct {
	create *AttemptRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttemptRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptRecordUpsertBulk) UpdateNewValues() *AttemptRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RequestID(); exists {
				s.SetIgnore(attemptrecord.FieldRequestID)
			}
			if _, exists := b.mutation.ChatID(); exists {
				s.SetIgnore(attemptrecord.FieldChatID)
			}
			if _, exists := b.mutation.Tier(); exists {
				s.SetIgnore(attemptrecord.FieldTier)
			}
			if _, exists := b.mutation.ModelID(); exists {
				s.SetIgnore(attemptrecord.FieldModelID)
			}
			if _, exists := b.mutation.Outcome(); exists {
				s.SetIgnore(attemptrecord.FieldOutcome)
			}
			if _, exists := b.mutation.ErrorCode(); exists {
				s.SetIgnore(attemptrecord.FieldErrorCode)
			}
			if _, exists := b.mutation.RouteReason(); exists {
				s.SetIgnore(attemptrecord.FieldRouteReason)
			}
			if _, exists := b.mutation.BytesIn(); exists {
				s.SetIgnore(attemptrecord.FieldBytesIn)
			}
			if _, exists := b.mutation.BytesOut(); exists {
				s.SetIgnore(attemptrecord.FieldBytesOut)
			}
			if _, exists := b.mutation.ErrorDetail(); exists {
				s.SetIgnore(attemptrecord.FieldErrorDetail)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(attemptrecord.FieldStartedAt)
			}
			if _, exists := b.mutation.EndedAt(); exists {
				s.SetIgnore(attemptrecord.FieldEndedAt)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(attemptrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptRecordUpsertBulk) Ignore() *AttemptRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptRecordUpsertBulk) DoNothing() *AttemptRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptRecordCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptRecordUpsertBulk) Update(set func(*AttemptRecordUpsert)) *AttemptRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptRecordUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AttemptRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
