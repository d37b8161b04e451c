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
	"github.com/Pavua/krab/ent/reactionentry"
)

// ReactionEntryCreate is the builder for creating a ReactionEntry entity.
type ReactionEntryCreate struct {
	config
	mutation *ReactionEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *ReactionEntryCreate) SetChatID(v string) *ReactionEntryCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *ReactionEntryCreate) SetMessageID(v string) *ReactionEntryCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetEmoji sets the "emoji" field.
func (_c *ReactionEntryCreate) SetEmoji(v string) *ReactionEntryCreate {
	_c.mutation.SetEmoji(v)
	return _c
}

// SetFromOwner sets the "from_owner" field.
func (_c *ReactionEntryCreate) SetFromOwner(v bool) *ReactionEntryCreate {
	_c.mutation.SetFromOwner(v)
	return _c
}

// SetNillableFromOwner sets the "from_owner" field if the given value is not nil.
func (_c *ReactionEntryCreate) SetNillableFromOwner(v *bool) *ReactionEntryCreate {
	if v != nil {
		_c.SetFromOwner(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReactionEntryCreate) SetCreatedAt(v time.Time) *ReactionEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReactionEntryCreate) SetNillableCreatedAt(v *time.Time) *ReactionEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReactionEntryMutation object of the builder.
func (_c *ReactionEntryCreate) Mutation() *ReactionEntryMutation {
	return _c.mutation
}

// Save creates the ReactionEntry in the database.
func (_c *ReactionEntryCreate) Save(ctx context.Context) (*ReactionEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReactionEntryCreate) SaveX(ctx context.Context) *ReactionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReactionEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReactionEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReactionEntryCreate) defaults() {
	if _, ok := _c.mutation.FromOwner(); !ok {
		v := reactionentry.DefaultFromOwner
		_c.mutation.SetFromOwner(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reactionentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReactionEntryCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ReactionEntry.chat_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "ReactionEntry.message_id"`)}
	}
	if _, ok := _c.mutation.Emoji(); !ok {
		return &ValidationError{Name: "emoji", err: errors.New(`ent: missing required field "ReactionEntry.emoji"`)}
	}
	if _, ok := _c.mutation.FromOwner(); !ok {
		return &ValidationError{Name: "from_owner", err: errors.New(`ent: missing required field "ReactionEntry.from_owner"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReactionEntry.created_at"`)}
	}
	return nil
}

func (_c *ReactionEntryCreate) sqlSave(ctx context.Context) (*ReactionEntry, error) {
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

func (_c *ReactionEntryCreate) createSpec() (*ReactionEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ReactionEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reactionentry.Table, sqlgraph.NewFieldSpec(reactionentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(reactionentry.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(reactionentry.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Emoji(); ok {
		_spec.SetField(reactionentry.FieldEmoji, field.TypeString, value)
		_node.Emoji = value
	}
	if value, ok := _c.mutation.FromOwner(); ok {
		_spec.SetField(reactionentry.FieldFromOwner, field.TypeBool, value)
		_node.FromOwner = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reactionentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReactionEntry.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReactionEntryUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReactionEntryCreate) OnConflict(opts ...sql.ConflictOption) *ReactionEntryUpsertOne {
	_c.conflict = opts
	return &ReactionEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReactionEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReactionEntryCreate) OnConflictColumns(columns ...string) *ReactionEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReactionEntryUpsertOne{
		create: _c,
	}
}

type (
	// ReactionEntryUpsertOne is the builder for "upsert"-ing
	//  one ReactionEntry node.
	ReactionEntryUpsertOne struct {
		create *ReactionEntryCreate
	}

	// ReactionEntryUpsert is the "OnConflict" setter.
	ReactionEntryUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReactionEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReactionEntryUpsertOne) UpdateNewValues() *ReactionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ChatID(); exists {
			s.SetIgnore(reactionentry.FieldChatID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(reactionentry.FieldMessageID)
		}
		if _, exists := u.create.mutation.Emoji(); exists {
			s.SetIgnore(reactionentry.FieldEmoji)
		}
		if _, exists := u.create.mutation.FromOwner(); exists {
			s.SetIgnore(reactionentry.FieldFromOwner)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(reactionentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReactionEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReactionEntryUpsertOne) Ignore() *ReactionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReactionEntryUpsertOne) DoNothing() *ReactionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReactionEntryCreate.OnConflict
// documentation for more info.
func (u *ReactionEntryUpsertOne) Update(set func(*ReactionEntryUpsert)) *ReactionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReactionEntryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ReactionEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReactionEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReactionEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReactionEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReactionEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReactionEntryCreateBulk is the builder for creating many ReactionEntry entities in bulk.
type ReactionEntryCreateBulk struct {
	config
	err      error
	builders []*ReactionEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the ReactionEntry entities in the database.
func (_c *ReactionEntryCreateBulk) Save(ctx context.Context) ([]*ReactionEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReactionEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReactionEntryMutation)
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
func (_c *ReactionEntryCreateBulk) SaveX(ctx context.Context) []*ReactionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReactionEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReactionEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReactionEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReactionEntryUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReactionEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReactionEntryUpsertBulk {
	_c.conflict = opts
	return &ReactionEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReactionEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReactionEntryCreateBulk) OnConflictColumns(columns ...string) *ReactionEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReactionEntryUpsertBulk{
		create: _c,
	}
}

// ReactionEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of ReactionEntry nodes.
type ReactionEntryUpsertBulk struct {
	create *ReactionEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReactionEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReactionEntryUpsertBulk) UpdateNewValues() *ReactionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ChatID(); exists {
				s.SetIgnore(reactionentry.FieldChatID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(reactionentry.FieldMessageID)
			}
			if _, exists := b.mutation.Emoji(); exists {
				s.SetIgnore(reactionentry.FieldEmoji)
			}
			if _, exists := b.mutation.FromOwner(); exists {
				s.SetIgnore(reactionentry.FieldFromOwner)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(reactionentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReactionEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReactionEntryUpsertBulk) Ignore() *ReactionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReactionEntryUpsertBulk) DoNothing() *ReactionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReactionEntryCreateBulk.OnConflict
// documentation for more info.
func (u *ReactionEntryUpsertBulk) Update(set func(*ReactionEntryUpsert)) *ReactionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReactionEntryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ReactionEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReactionEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReactionEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReactionEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
