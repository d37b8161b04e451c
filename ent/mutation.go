// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Pavua/krab/ent/alert"
	"github.com/Pavua/krab/ent/attemptrecord"
	"github.com/Pavua/krab/ent/policyoverride"
	"github.com/Pavua/krab/ent/predicate"
	"github.com/Pavua/krab/ent/reactionentry"
	"github.com/Pavua/krab/ent/usagecounter"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert          = "Alert"
	TypeAttemptRecord  = "AttemptRecord"
	TypePolicyOverride = "PolicyOverride"
	TypeReactionEntry  = "ReactionEntry"
	TypeUsageCounter   = "UsageCounter"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op            Op
	typ           string
	id            *int
	code          *string
	severity      *alert.Severity
	message       *string
	first_seen    *time.Time
	last_seen     *time.Time
	count         *int64
	addcount      *int64
	acked         *bool
	acked_at      *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Alert, error)
	predicates    []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id int) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *AlertMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *AlertMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *AlertMutation) ResetCode() {
	m.code = nil
}

// SetSeverity sets the "severity" field.
func (m *AlertMutation) SetSeverity(a alert.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AlertMutation) Severity() (r alert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSeverity(ctx context.Context) (v alert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetMessage sets the "message" field.
func (m *AlertMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AlertMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *AlertMutation) ResetMessage() {
	m.message = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *AlertMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *AlertMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *AlertMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *AlertMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *AlertMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *AlertMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetCount sets the "count" field.
func (m *AlertMutation) SetCount(i int64) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *AlertMutation) Count() (r int64, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *AlertMutation) AddCount(i int64) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *AlertMutation) AddedCount() (r int64, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *AlertMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetAcked sets the "acked" field.
func (m *AlertMutation) SetAcked(b bool) {
	m.acked = &b
}

// Acked returns the value of the "acked" field in the mutation.
func (m *AlertMutation) Acked() (r bool, exists bool) {
	v := m.acked
	if v == nil {
		return
	}
	return *v, true
}

// OldAcked returns the old "acked" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAcked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcked: %w", err)
	}
	return oldValue.Acked, nil
}

// ResetAcked resets all changes to the "acked" field.
func (m *AlertMutation) ResetAcked() {
	m.acked = nil
}

// SetAckedAt sets the "acked_at" field.
func (m *AlertMutation) SetAckedAt(t time.Time) {
	m.acked_at = &t
}

// AckedAt returns the value of the "acked_at" field in the mutation.
func (m *AlertMutation) AckedAt() (r time.Time, exists bool) {
	v := m.acked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAckedAt returns the old "acked_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAckedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAckedAt: %w", err)
	}
	return oldValue.AckedAt, nil
}

// ClearAckedAt clears the value of the "acked_at" field.
func (m *AlertMutation) ClearAckedAt() {
	m.acked_at = nil
	m.clearedFields[alert.FieldAckedAt] = struct{}{}
}

// AckedAtCleared returns if the "acked_at" field was cleared in this mutation.
func (m *AlertMutation) AckedAtCleared() bool {
	_, ok := m.clearedFields[alert.FieldAckedAt]
	return ok
}

// ResetAckedAt resets all changes to the "acked_at" field.
func (m *AlertMutation) ResetAckedAt() {
	m.acked_at = nil
	delete(m.clearedFields, alert.FieldAckedAt)
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.code != nil {
		fields = append(fields, alert.FieldCode)
	}
	if m.severity != nil {
		fields = append(fields, alert.FieldSeverity)
	}
	if m.message != nil {
		fields = append(fields, alert.FieldMessage)
	}
	if m.first_seen != nil {
		fields = append(fields, alert.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, alert.FieldLastSeen)
	}
	if m.count != nil {
		fields = append(fields, alert.FieldCount)
	}
	if m.acked != nil {
		fields = append(fields, alert.FieldAcked)
	}
	if m.acked_at != nil {
		fields = append(fields, alert.FieldAckedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldCode:
		return m.Code()
	case alert.FieldSeverity:
		return m.Severity()
	case alert.FieldMessage:
		return m.Message()
	case alert.FieldFirstSeen:
		return m.FirstSeen()
	case alert.FieldLastSeen:
		return m.LastSeen()
	case alert.FieldCount:
		return m.Count()
	case alert.FieldAcked:
		return m.Acked()
	case alert.FieldAckedAt:
		return m.AckedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldCode:
		return m.OldCode(ctx)
	case alert.FieldSeverity:
		return m.OldSeverity(ctx)
	case alert.FieldMessage:
		return m.OldMessage(ctx)
	case alert.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case alert.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case alert.FieldCount:
		return m.OldCount(ctx)
	case alert.FieldAcked:
		return m.OldAcked(ctx)
	case alert.FieldAckedAt:
		return m.OldAckedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case alert.FieldSeverity:
		v, ok := value.(alert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case alert.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case alert.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case alert.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case alert.FieldCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case alert.FieldAcked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcked(v)
		return nil
	case alert.FieldAckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAckedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, alert.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alert.FieldCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldAckedAt) {
		fields = append(fields, alert.FieldAckedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldAckedAt:
		m.ClearAckedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldCode:
		m.ResetCode()
		return nil
	case alert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case alert.FieldMessage:
		m.ResetMessage()
		return nil
	case alert.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case alert.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case alert.FieldCount:
		m.ResetCount()
		return nil
	case alert.FieldAcked:
		m.ResetAcked()
		return nil
	case alert.FieldAckedAt:
		m.ResetAckedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Alert edge %s", name)
}

// AttemptRecordMutation represents an operation that mutates the AttemptRecord nodes in the graph.
type AttemptRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	request_id    *string
	chat_id       *string
	tier          *attemptrecord.Tier
	model_id      *string
	outcome       *string
	error_code    *string
	route_reason  *string
	bytes_in      *int
	addbytes_in   *int
	bytes_out     *int
	addbytes_out  *int
	error_detail  *string
	started_at    *time.Time
	ended_at      *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AttemptRecord, error)
	predicates    []predicate.AttemptRecord
}

var _ ent.Mutation = (*AttemptRecordMutation)(nil)

// attemptrecordOption allows management of the mutation configuration using functional options.
type attemptrecordOption func(*AttemptRecordMutation)

// newAttemptRecordMutation creates new mutation for the AttemptRecord entity.
func newAttemptRecordMutation(c config, op Op, opts ...attemptrecordOption) *AttemptRecordMutation {
	m := &AttemptRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptRecordID sets the ID field of the mutation.
func withAttemptRecordID(id int) attemptrecordOption {
	return func(m *AttemptRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptRecord
		)
		m.oldValue = func(ctx context.Context) (*AttemptRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptRecord sets the old AttemptRecord of the mutation.
func withAttemptRecord(node *AttemptRecord) attemptrecordOption {
	return func(m *AttemptRecordMutation) {
		m.oldValue = func(context.Context) (*AttemptRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *AttemptRecordMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AttemptRecordMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AttemptRecordMutation) ResetRequestID() {
	m.request_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *AttemptRecordMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *AttemptRecordMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *AttemptRecordMutation) ResetChatID() {
	m.chat_id = nil
}

// SetTier sets the "tier" field.
func (m *AttemptRecordMutation) SetTier(a attemptrecord.Tier) {
	m.tier = &a
}

// Tier returns the value of the "tier" field in the mutation.
func (m *AttemptRecordMutation) Tier() (r attemptrecord.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldTier(ctx context.Context) (v attemptrecord.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *AttemptRecordMutation) ResetTier() {
	m.tier = nil
}

// SetModelID sets the "model_id" field.
func (m *AttemptRecordMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *AttemptRecordMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *AttemptRecordMutation) ResetModelID() {
	m.model_id = nil
}

// SetOutcome sets the "outcome" field.
func (m *AttemptRecordMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *AttemptRecordMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *AttemptRecordMutation) ResetOutcome() {
	m.outcome = nil
}

// SetErrorCode sets the "error_code" field.
func (m *AttemptRecordMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *AttemptRecordMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldErrorCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *AttemptRecordMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[attemptrecord.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *AttemptRecordMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[attemptrecord.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *AttemptRecordMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, attemptrecord.FieldErrorCode)
}

// SetRouteReason sets the "route_reason" field.
func (m *AttemptRecordMutation) SetRouteReason(s string) {
	m.route_reason = &s
}

// RouteReason returns the value of the "route_reason" field in the mutation.
func (m *AttemptRecordMutation) RouteReason() (r string, exists bool) {
	v := m.route_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRouteReason returns the old "route_reason" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldRouteReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRouteReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRouteReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRouteReason: %w", err)
	}
	return oldValue.RouteReason, nil
}

// ClearRouteReason clears the value of the "route_reason" field.
func (m *AttemptRecordMutation) ClearRouteReason() {
	m.route_reason = nil
	m.clearedFields[attemptrecord.FieldRouteReason] = struct{}{}
}

// RouteReasonCleared returns if the "route_reason" field was cleared in this mutation.
func (m *AttemptRecordMutation) RouteReasonCleared() bool {
	_, ok := m.clearedFields[attemptrecord.FieldRouteReason]
	return ok
}

// ResetRouteReason resets all changes to the "route_reason" field.
func (m *AttemptRecordMutation) ResetRouteReason() {
	m.route_reason = nil
	delete(m.clearedFields, attemptrecord.FieldRouteReason)
}

// SetBytesIn sets the "bytes_in" field.
func (m *AttemptRecordMutation) SetBytesIn(i int) {
	m.bytes_in = &i
	m.addbytes_in = nil
}

// BytesIn returns the value of the "bytes_in" field in the mutation.
func (m *AttemptRecordMutation) BytesIn() (r int, exists bool) {
	v := m.bytes_in
	if v == nil {
		return
	}
	return *v, true
}

// OldBytesIn returns the old "bytes_in" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldBytesIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBytesIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBytesIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBytesIn: %w", err)
	}
	return oldValue.BytesIn, nil
}

// AddBytesIn adds i to the "bytes_in" field.
func (m *AttemptRecordMutation) AddBytesIn(i int) {
	if m.addbytes_in != nil {
		*m.addbytes_in += i
	} else {
		m.addbytes_in = &i
	}
}

// AddedBytesIn returns the value that was added to the "bytes_in" field in this mutation.
func (m *AttemptRecordMutation) AddedBytesIn() (r int, exists bool) {
	v := m.addbytes_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetBytesIn resets all changes to the "bytes_in" field.
func (m *AttemptRecordMutation) ResetBytesIn() {
	m.bytes_in = nil
	m.addbytes_in = nil
}

// SetBytesOut sets the "bytes_out" field.
func (m *AttemptRecordMutation) SetBytesOut(i int) {
	m.bytes_out = &i
	m.addbytes_out = nil
}

// BytesOut returns the value of the "bytes_out" field in the mutation.
func (m *AttemptRecordMutation) BytesOut() (r int, exists bool) {
	v := m.bytes_out
	if v == nil {
		return
	}
	return *v, true
}

// OldBytesOut returns the old "bytes_out" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldBytesOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBytesOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBytesOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBytesOut: %w", err)
	}
	return oldValue.BytesOut, nil
}

// AddBytesOut adds i to the "bytes_out" field.
func (m *AttemptRecordMutation) AddBytesOut(i int) {
	if m.addbytes_out != nil {
		*m.addbytes_out += i
	} else {
		m.addbytes_out = &i
	}
}

// AddedBytesOut returns the value that was added to the "bytes_out" field in this mutation.
func (m *AttemptRecordMutation) AddedBytesOut() (r int, exists bool) {
	v := m.addbytes_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetBytesOut resets all changes to the "bytes_out" field.
func (m *AttemptRecordMutation) ResetBytesOut() {
	m.bytes_out = nil
	m.addbytes_out = nil
}

// SetErrorDetail sets the "error_detail" field.
func (m *AttemptRecordMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *AttemptRecordMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldErrorDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *AttemptRecordMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[attemptrecord.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *AttemptRecordMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[attemptrecord.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *AttemptRecordMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, attemptrecord.FieldErrorDetail)
}

// SetStartedAt sets the "started_at" field.
func (m *AttemptRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AttemptRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AttemptRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *AttemptRecordMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AttemptRecordMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AttemptRecordMutation) ResetEndedAt() {
	m.ended_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AttemptRecord entity.
// If the AttemptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AttemptRecordMutation builder.
func (m *AttemptRecordMutation) Where(ps ...predicate.AttemptRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptRecord).
func (m *AttemptRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.request_id != nil {
		fields = append(fields, attemptrecord.FieldRequestID)
	}
	if m.chat_id != nil {
		fields = append(fields, attemptrecord.FieldChatID)
	}
	if m.tier != nil {
		fields = append(fields, attemptrecord.FieldTier)
	}
	if m.model_id != nil {
		fields = append(fields, attemptrecord.FieldModelID)
	}
	if m.outcome != nil {
		fields = append(fields, attemptrecord.FieldOutcome)
	}
	if m.error_code != nil {
		fields = append(fields, attemptrecord.FieldErrorCode)
	}
	if m.route_reason != nil {
		fields = append(fields, attemptrecord.FieldRouteReason)
	}
	if m.bytes_in != nil {
		fields = append(fields, attemptrecord.FieldBytesIn)
	}
	if m.bytes_out != nil {
		fields = append(fields, attemptrecord.FieldBytesOut)
	}
	if m.error_detail != nil {
		fields = append(fields, attemptrecord.FieldErrorDetail)
	}
	if m.started_at != nil {
		fields = append(fields, attemptrecord.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, attemptrecord.FieldEndedAt)
	}
	if m.created_at != nil {
		fields = append(fields, attemptrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptrecord.FieldRequestID:
		return m.RequestID()
	case attemptrecord.FieldChatID:
		return m.ChatID()
	case attemptrecord.FieldTier:
		return m.Tier()
	case attemptrecord.FieldModelID:
		return m.ModelID()
	case attemptrecord.FieldOutcome:
		return m.Outcome()
	case attemptrecord.FieldErrorCode:
		return m.ErrorCode()
	case attemptrecord.FieldRouteReason:
		return m.RouteReason()
	case attemptrecord.FieldBytesIn:
		return m.BytesIn()
	case attemptrecord.FieldBytesOut:
		return m.BytesOut()
	case attemptrecord.FieldErrorDetail:
		return m.ErrorDetail()
	case attemptrecord.FieldStartedAt:
		return m.StartedAt()
	case attemptrecord.FieldEndedAt:
		return m.EndedAt()
	case attemptrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptrecord.FieldRequestID:
		return m.OldRequestID(ctx)
	case attemptrecord.FieldChatID:
		return m.OldChatID(ctx)
	case attemptrecord.FieldTier:
		return m.OldTier(ctx)
	case attemptrecord.FieldModelID:
		return m.OldModelID(ctx)
	case attemptrecord.FieldOutcome:
		return m.OldOutcome(ctx)
	case attemptrecord.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case attemptrecord.FieldRouteReason:
		return m.OldRouteReason(ctx)
	case attemptrecord.FieldBytesIn:
		return m.OldBytesIn(ctx)
	case attemptrecord.FieldBytesOut:
		return m.OldBytesOut(ctx)
	case attemptrecord.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	case attemptrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case attemptrecord.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case attemptrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptrecord.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case attemptrecord.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case attemptrecord.FieldTier:
		v, ok := value.(attemptrecord.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case attemptrecord.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case attemptrecord.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case attemptrecord.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case attemptrecord.FieldRouteReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRouteReason(v)
		return nil
	case attemptrecord.FieldBytesIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBytesIn(v)
		return nil
	case attemptrecord.FieldBytesOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBytesOut(v)
		return nil
	case attemptrecord.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	case attemptrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case attemptrecord.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case attemptrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptRecordMutation) AddedFields() []string {
	var fields []string
	if m.addbytes_in != nil {
		fields = append(fields, attemptrecord.FieldBytesIn)
	}
	if m.addbytes_out != nil {
		fields = append(fields, attemptrecord.FieldBytesOut)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptrecord.FieldBytesIn:
		return m.AddedBytesIn()
	case attemptrecord.FieldBytesOut:
		return m.AddedBytesOut()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptrecord.FieldBytesIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBytesIn(v)
		return nil
	case attemptrecord.FieldBytesOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBytesOut(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptrecord.FieldErrorCode) {
		fields = append(fields, attemptrecord.FieldErrorCode)
	}
	if m.FieldCleared(attemptrecord.FieldRouteReason) {
		fields = append(fields, attemptrecord.FieldRouteReason)
	}
	if m.FieldCleared(attemptrecord.FieldErrorDetail) {
		fields = append(fields, attemptrecord.FieldErrorDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptRecordMutation) ClearField(name string) error {
	switch name {
	case attemptrecord.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case attemptrecord.FieldRouteReason:
		m.ClearRouteReason()
		return nil
	case attemptrecord.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	}
	return fmt.Errorf("unknown AttemptRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptRecordMutation) ResetField(name string) error {
	switch name {
	case attemptrecord.FieldRequestID:
		m.ResetRequestID()
		return nil
	case attemptrecord.FieldChatID:
		m.ResetChatID()
		return nil
	case attemptrecord.FieldTier:
		m.ResetTier()
		return nil
	case attemptrecord.FieldModelID:
		m.ResetModelID()
		return nil
	case attemptrecord.FieldOutcome:
		m.ResetOutcome()
		return nil
	case attemptrecord.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case attemptrecord.FieldRouteReason:
		m.ResetRouteReason()
		return nil
	case attemptrecord.FieldBytesIn:
		m.ResetBytesIn()
		return nil
	case attemptrecord.FieldBytesOut:
		m.ResetBytesOut()
		return nil
	case attemptrecord.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	case attemptrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case attemptrecord.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case attemptrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AttemptRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptRecord edge %s", name)
}

// PolicyOverrideMutation represents an operation that mutates the PolicyOverride nodes in the graph.
type PolicyOverrideMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	chat_id               *string
	force_mode            *policyoverride.ForceMode
	persona               *string
	reply_enabled         *bool
	group_reply_mode      *policyoverride.GroupReplyMode
	rate_limit_per_min    *int
	addrate_limit_per_min *int
	confirm_expensive     *bool
	max_output_chars      *int
	addmax_output_chars   *int
	updated_at            *time.Time
	expires_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PolicyOverride, error)
	predicates            []predicate.PolicyOverride
}

var _ ent.Mutation = (*PolicyOverrideMutation)(nil)

// policyoverrideOption allows management of the mutation configuration using functional options.
type policyoverrideOption func(*PolicyOverrideMutation)

// newPolicyOverrideMutation creates new mutation for the PolicyOverride entity.
func newPolicyOverrideMutation(c config, op Op, opts ...policyoverrideOption) *PolicyOverrideMutation {
	m := &PolicyOverrideMutation{
		config:        c,
		op:            op,
		typ:           TypePolicyOverride,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPolicyOverrideID sets the ID field of the mutation.
func withPolicyOverrideID(id int) policyoverrideOption {
	return func(m *PolicyOverrideMutation) {
		var (
			err   error
			once  sync.Once
			value *PolicyOverride
		)
		m.oldValue = func(ctx context.Context) (*PolicyOverride, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PolicyOverride.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPolicyOverride sets the old PolicyOverride of the mutation.
func withPolicyOverride(node *PolicyOverride) policyoverrideOption {
	return func(m *PolicyOverrideMutation) {
		m.oldValue = func(context.Context) (*PolicyOverride, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PolicyOverrideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PolicyOverrideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PolicyOverrideMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PolicyOverrideMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PolicyOverride.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *PolicyOverrideMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *PolicyOverrideMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *PolicyOverrideMutation) ResetChatID() {
	m.chat_id = nil
}

// SetForceMode sets the "force_mode" field.
func (m *PolicyOverrideMutation) SetForceMode(pm policyoverride.ForceMode) {
	m.force_mode = &pm
}

// ForceMode returns the value of the "force_mode" field in the mutation.
func (m *PolicyOverrideMutation) ForceMode() (r policyoverride.ForceMode, exists bool) {
	v := m.force_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldForceMode returns the old "force_mode" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldForceMode(ctx context.Context) (v policyoverride.ForceMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForceMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForceMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForceMode: %w", err)
	}
	return oldValue.ForceMode, nil
}

// ResetForceMode resets all changes to the "force_mode" field.
func (m *PolicyOverrideMutation) ResetForceMode() {
	m.force_mode = nil
}

// SetPersona sets the "persona" field.
func (m *PolicyOverrideMutation) SetPersona(s string) {
	m.persona = &s
}

// Persona returns the value of the "persona" field in the mutation.
func (m *PolicyOverrideMutation) Persona() (r string, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldPersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ClearPersona clears the value of the "persona" field.
func (m *PolicyOverrideMutation) ClearPersona() {
	m.persona = nil
	m.clearedFields[policyoverride.FieldPersona] = struct{}{}
}

// PersonaCleared returns if the "persona" field was cleared in this mutation.
func (m *PolicyOverrideMutation) PersonaCleared() bool {
	_, ok := m.clearedFields[policyoverride.FieldPersona]
	return ok
}

// ResetPersona resets all changes to the "persona" field.
func (m *PolicyOverrideMutation) ResetPersona() {
	m.persona = nil
	delete(m.clearedFields, policyoverride.FieldPersona)
}

// SetReplyEnabled sets the "reply_enabled" field.
func (m *PolicyOverrideMutation) SetReplyEnabled(b bool) {
	m.reply_enabled = &b
}

// ReplyEnabled returns the value of the "reply_enabled" field in the mutation.
func (m *PolicyOverrideMutation) ReplyEnabled() (r bool, exists bool) {
	v := m.reply_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyEnabled returns the old "reply_enabled" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldReplyEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyEnabled: %w", err)
	}
	return oldValue.ReplyEnabled, nil
}

// ResetReplyEnabled resets all changes to the "reply_enabled" field.
func (m *PolicyOverrideMutation) ResetReplyEnabled() {
	m.reply_enabled = nil
}

// SetGroupReplyMode sets the "group_reply_mode" field.
func (m *PolicyOverrideMutation) SetGroupReplyMode(prm policyoverride.GroupReplyMode) {
	m.group_reply_mode = &prm
}

// GroupReplyMode returns the value of the "group_reply_mode" field in the mutation.
func (m *PolicyOverrideMutation) GroupReplyMode() (r policyoverride.GroupReplyMode, exists bool) {
	v := m.group_reply_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupReplyMode returns the old "group_reply_mode" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldGroupReplyMode(ctx context.Context) (v policyoverride.GroupReplyMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupReplyMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupReplyMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupReplyMode: %w", err)
	}
	return oldValue.GroupReplyMode, nil
}

// ResetGroupReplyMode resets all changes to the "group_reply_mode" field.
func (m *PolicyOverrideMutation) ResetGroupReplyMode() {
	m.group_reply_mode = nil
}

// SetRateLimitPerMin sets the "rate_limit_per_min" field.
func (m *PolicyOverrideMutation) SetRateLimitPerMin(i int) {
	m.rate_limit_per_min = &i
	m.addrate_limit_per_min = nil
}

// RateLimitPerMin returns the value of the "rate_limit_per_min" field in the mutation.
func (m *PolicyOverrideMutation) RateLimitPerMin() (r int, exists bool) {
	v := m.rate_limit_per_min
	if v == nil {
		return
	}
	return *v, true
}

// OldRateLimitPerMin returns the old "rate_limit_per_min" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldRateLimitPerMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateLimitPerMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateLimitPerMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateLimitPerMin: %w", err)
	}
	return oldValue.RateLimitPerMin, nil
}

// AddRateLimitPerMin adds i to the "rate_limit_per_min" field.
func (m *PolicyOverrideMutation) AddRateLimitPerMin(i int) {
	if m.addrate_limit_per_min != nil {
		*m.addrate_limit_per_min += i
	} else {
		m.addrate_limit_per_min = &i
	}
}

// AddedRateLimitPerMin returns the value that was added to the "rate_limit_per_min" field in this mutation.
func (m *PolicyOverrideMutation) AddedRateLimitPerMin() (r int, exists bool) {
	v := m.addrate_limit_per_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateLimitPerMin resets all changes to the "rate_limit_per_min" field.
func (m *PolicyOverrideMutation) ResetRateLimitPerMin() {
	m.rate_limit_per_min = nil
	m.addrate_limit_per_min = nil
}

// SetConfirmExpensive sets the "confirm_expensive" field.
func (m *PolicyOverrideMutation) SetConfirmExpensive(b bool) {
	m.confirm_expensive = &b
}

// ConfirmExpensive returns the value of the "confirm_expensive" field in the mutation.
func (m *PolicyOverrideMutation) ConfirmExpensive() (r bool, exists bool) {
	v := m.confirm_expensive
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmExpensive returns the old "confirm_expensive" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldConfirmExpensive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmExpensive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmExpensive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmExpensive: %w", err)
	}
	return oldValue.ConfirmExpensive, nil
}

// ResetConfirmExpensive resets all changes to the "confirm_expensive" field.
func (m *PolicyOverrideMutation) ResetConfirmExpensive() {
	m.confirm_expensive = nil
}

// SetMaxOutputChars sets the "max_output_chars" field.
func (m *PolicyOverrideMutation) SetMaxOutputChars(i int) {
	m.max_output_chars = &i
	m.addmax_output_chars = nil
}

// MaxOutputChars returns the value of the "max_output_chars" field in the mutation.
func (m *PolicyOverrideMutation) MaxOutputChars() (r int, exists bool) {
	v := m.max_output_chars
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxOutputChars returns the old "max_output_chars" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldMaxOutputChars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxOutputChars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxOutputChars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxOutputChars: %w", err)
	}
	return oldValue.MaxOutputChars, nil
}

// AddMaxOutputChars adds i to the "max_output_chars" field.
func (m *PolicyOverrideMutation) AddMaxOutputChars(i int) {
	if m.addmax_output_chars != nil {
		*m.addmax_output_chars += i
	} else {
		m.addmax_output_chars = &i
	}
}

// AddedMaxOutputChars returns the value that was added to the "max_output_chars" field in this mutation.
func (m *PolicyOverrideMutation) AddedMaxOutputChars() (r int, exists bool) {
	v := m.addmax_output_chars
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxOutputChars resets all changes to the "max_output_chars" field.
func (m *PolicyOverrideMutation) ResetMaxOutputChars() {
	m.max_output_chars = nil
	m.addmax_output_chars = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PolicyOverrideMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PolicyOverrideMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PolicyOverrideMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *PolicyOverrideMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *PolicyOverrideMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the PolicyOverride entity.
// If the PolicyOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicyOverrideMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *PolicyOverrideMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the PolicyOverrideMutation builder.
func (m *PolicyOverrideMutation) Where(ps ...predicate.PolicyOverride) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PolicyOverrideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PolicyOverrideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PolicyOverride, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PolicyOverrideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PolicyOverrideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PolicyOverride).
func (m *PolicyOverrideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PolicyOverrideMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.chat_id != nil {
		fields = append(fields, policyoverride.FieldChatID)
	}
	if m.force_mode != nil {
		fields = append(fields, policyoverride.FieldForceMode)
	}
	if m.persona != nil {
		fields = append(fields, policyoverride.FieldPersona)
	}
	if m.reply_enabled != nil {
		fields = append(fields, policyoverride.FieldReplyEnabled)
	}
	if m.group_reply_mode != nil {
		fields = append(fields, policyoverride.FieldGroupReplyMode)
	}
	if m.rate_limit_per_min != nil {
		fields = append(fields, policyoverride.FieldRateLimitPerMin)
	}
	if m.confirm_expensive != nil {
		fields = append(fields, policyoverride.FieldConfirmExpensive)
	}
	if m.max_output_chars != nil {
		fields = append(fields, policyoverride.FieldMaxOutputChars)
	}
	if m.updated_at != nil {
		fields = append(fields, policyoverride.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, policyoverride.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PolicyOverrideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case policyoverride.FieldChatID:
		return m.ChatID()
	case policyoverride.FieldForceMode:
		return m.ForceMode()
	case policyoverride.FieldPersona:
		return m.Persona()
	case policyoverride.FieldReplyEnabled:
		return m.ReplyEnabled()
	case policyoverride.FieldGroupReplyMode:
		return m.GroupReplyMode()
	case policyoverride.FieldRateLimitPerMin:
		return m.RateLimitPerMin()
	case policyoverride.FieldConfirmExpensive:
		return m.ConfirmExpensive()
	case policyoverride.FieldMaxOutputChars:
		return m.MaxOutputChars()
	case policyoverride.FieldUpdatedAt:
		return m.UpdatedAt()
	case policyoverride.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PolicyOverrideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case policyoverride.FieldChatID:
		return m.OldChatID(ctx)
	case policyoverride.FieldForceMode:
		return m.OldForceMode(ctx)
	case policyoverride.FieldPersona:
		return m.OldPersona(ctx)
	case policyoverride.FieldReplyEnabled:
		return m.OldReplyEnabled(ctx)
	case policyoverride.FieldGroupReplyMode:
		return m.OldGroupReplyMode(ctx)
	case policyoverride.FieldRateLimitPerMin:
		return m.OldRateLimitPerMin(ctx)
	case policyoverride.FieldConfirmExpensive:
		return m.OldConfirmExpensive(ctx)
	case policyoverride.FieldMaxOutputChars:
		return m.OldMaxOutputChars(ctx)
	case policyoverride.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case policyoverride.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown PolicyOverride field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyOverrideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case policyoverride.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case policyoverride.FieldForceMode:
		v, ok := value.(policyoverride.ForceMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForceMode(v)
		return nil
	case policyoverride.FieldPersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case policyoverride.FieldReplyEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyEnabled(v)
		return nil
	case policyoverride.FieldGroupReplyMode:
		v, ok := value.(policyoverride.GroupReplyMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupReplyMode(v)
		return nil
	case policyoverride.FieldRateLimitPerMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateLimitPerMin(v)
		return nil
	case policyoverride.FieldConfirmExpensive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmExpensive(v)
		return nil
	case policyoverride.FieldMaxOutputChars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxOutputChars(v)
		return nil
	case policyoverride.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case policyoverride.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyOverride field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PolicyOverrideMutation) AddedFields() []string {
	var fields []string
	if m.addrate_limit_per_min != nil {
		fields = append(fields, policyoverride.FieldRateLimitPerMin)
	}
	if m.addmax_output_chars != nil {
		fields = append(fields, policyoverride.FieldMaxOutputChars)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PolicyOverrideMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case policyoverride.FieldRateLimitPerMin:
		return m.AddedRateLimitPerMin()
	case policyoverride.FieldMaxOutputChars:
		return m.AddedMaxOutputChars()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicyOverrideMutation) AddField(name string, value ent.Value) error {
	switch name {
	case policyoverride.FieldRateLimitPerMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateLimitPerMin(v)
		return nil
	case policyoverride.FieldMaxOutputChars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxOutputChars(v)
		return nil
	}
	return fmt.Errorf("unknown PolicyOverride numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PolicyOverrideMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(policyoverride.FieldPersona) {
		fields = append(fields, policyoverride.FieldPersona)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PolicyOverrideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PolicyOverrideMutation) ClearField(name string) error {
	switch name {
	case policyoverride.FieldPersona:
		m.ClearPersona()
		return nil
	}
	return fmt.Errorf("unknown PolicyOverride nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PolicyOverrideMutation) ResetField(name string) error {
	switch name {
	case policyoverride.FieldChatID:
		m.ResetChatID()
		return nil
	case policyoverride.FieldForceMode:
		m.ResetForceMode()
		return nil
	case policyoverride.FieldPersona:
		m.ResetPersona()
		return nil
	case policyoverride.FieldReplyEnabled:
		m.ResetReplyEnabled()
		return nil
	case policyoverride.FieldGroupReplyMode:
		m.ResetGroupReplyMode()
		return nil
	case policyoverride.FieldRateLimitPerMin:
		m.ResetRateLimitPerMin()
		return nil
	case policyoverride.FieldConfirmExpensive:
		m.ResetConfirmExpensive()
		return nil
	case policyoverride.FieldMaxOutputChars:
		m.ResetMaxOutputChars()
		return nil
	case policyoverride.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case policyoverride.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown PolicyOverride field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PolicyOverrideMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PolicyOverrideMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PolicyOverrideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PolicyOverrideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PolicyOverrideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PolicyOverrideMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PolicyOverrideMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PolicyOverride unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PolicyOverrideMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PolicyOverride edge %s", name)
}

// ReactionEntryMutation represents an operation that mutates the ReactionEntry nodes in the graph.
type ReactionEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	chat_id       *string
	message_id    *string
	emoji         *string
	from_owner    *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ReactionEntry, error)
	predicates    []predicate.ReactionEntry
}

var _ ent.Mutation = (*ReactionEntryMutation)(nil)

// reactionentryOption allows management of the mutation configuration using functional options.
type reactionentryOption func(*ReactionEntryMutation)

// newReactionEntryMutation creates new mutation for the ReactionEntry entity.
func newReactionEntryMutation(c config, op Op, opts ...reactionentryOption) *ReactionEntryMutation {
	m := &ReactionEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeReactionEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReactionEntryID sets the ID field of the mutation.
func withReactionEntryID(id int) reactionentryOption {
	return func(m *ReactionEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ReactionEntry
		)
		m.oldValue = func(ctx context.Context) (*ReactionEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReactionEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReactionEntry sets the old ReactionEntry of the mutation.
func withReactionEntry(node *ReactionEntry) reactionentryOption {
	return func(m *ReactionEntryMutation) {
		m.oldValue = func(context.Context) (*ReactionEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReactionEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReactionEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReactionEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReactionEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReactionEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *ReactionEntryMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ReactionEntryMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ReactionEntry entity.
// If the ReactionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionEntryMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ReactionEntryMutation) ResetChatID() {
	m.chat_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *ReactionEntryMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *ReactionEntryMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the ReactionEntry entity.
// If the ReactionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionEntryMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *ReactionEntryMutation) ResetMessageID() {
	m.message_id = nil
}

// SetEmoji sets the "emoji" field.
func (m *ReactionEntryMutation) SetEmoji(s string) {
	m.emoji = &s
}

// Emoji returns the value of the "emoji" field in the mutation.
func (m *ReactionEntryMutation) Emoji() (r string, exists bool) {
	v := m.emoji
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoji returns the old "emoji" field's value of the ReactionEntry entity.
// If the ReactionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionEntryMutation) OldEmoji(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoji is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoji requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoji: %w", err)
	}
	return oldValue.Emoji, nil
}

// ResetEmoji resets all changes to the "emoji" field.
func (m *ReactionEntryMutation) ResetEmoji() {
	m.emoji = nil
}

// SetFromOwner sets the "from_owner" field.
func (m *ReactionEntryMutation) SetFromOwner(b bool) {
	m.from_owner = &b
}

// FromOwner returns the value of the "from_owner" field in the mutation.
func (m *ReactionEntryMutation) FromOwner() (r bool, exists bool) {
	v := m.from_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldFromOwner returns the old "from_owner" field's value of the ReactionEntry entity.
// If the ReactionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionEntryMutation) OldFromOwner(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromOwner: %w", err)
	}
	return oldValue.FromOwner, nil
}

// ResetFromOwner resets all changes to the "from_owner" field.
func (m *ReactionEntryMutation) ResetFromOwner() {
	m.from_owner = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReactionEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReactionEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReactionEntry entity.
// If the ReactionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReactionEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReactionEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReactionEntryMutation builder.
func (m *ReactionEntryMutation) Where(ps ...predicate.ReactionEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReactionEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReactionEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReactionEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReactionEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReactionEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReactionEntry).
func (m *ReactionEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReactionEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.chat_id != nil {
		fields = append(fields, reactionentry.FieldChatID)
	}
	if m.message_id != nil {
		fields = append(fields, reactionentry.FieldMessageID)
	}
	if m.emoji != nil {
		fields = append(fields, reactionentry.FieldEmoji)
	}
	if m.from_owner != nil {
		fields = append(fields, reactionentry.FieldFromOwner)
	}
	if m.created_at != nil {
		fields = append(fields, reactionentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReactionEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reactionentry.FieldChatID:
		return m.ChatID()
	case reactionentry.FieldMessageID:
		return m.MessageID()
	case reactionentry.FieldEmoji:
		return m.Emoji()
	case reactionentry.FieldFromOwner:
		return m.FromOwner()
	case reactionentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReactionEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reactionentry.FieldChatID:
		return m.OldChatID(ctx)
	case reactionentry.FieldMessageID:
		return m.OldMessageID(ctx)
	case reactionentry.FieldEmoji:
		return m.OldEmoji(ctx)
	case reactionentry.FieldFromOwner:
		return m.OldFromOwner(ctx)
	case reactionentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReactionEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReactionEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reactionentry.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case reactionentry.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case reactionentry.FieldEmoji:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoji(v)
		return nil
	case reactionentry.FieldFromOwner:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromOwner(v)
		return nil
	case reactionentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReactionEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReactionEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReactionEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReactionEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReactionEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReactionEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReactionEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReactionEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReactionEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReactionEntryMutation) ResetField(name string) error {
	switch name {
	case reactionentry.FieldChatID:
		m.ResetChatID()
		return nil
	case reactionentry.FieldMessageID:
		m.ResetMessageID()
		return nil
	case reactionentry.FieldEmoji:
		m.ResetEmoji()
		return nil
	case reactionentry.FieldFromOwner:
		m.ResetFromOwner()
		return nil
	case reactionentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReactionEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReactionEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReactionEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReactionEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReactionEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReactionEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReactionEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReactionEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReactionEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReactionEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReactionEntry edge %s", name)
}

// UsageCounterMutation represents an operation that mutates the UsageCounter nodes in the graph.
type UsageCounterMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	month                 *string
	tier                  *usagecounter.Tier
	model_id              *string
	calls                 *int64
	addcalls              *int64
	failures              *int64
	addfailures           *int64
	estimated_cost_usd    *float64
	addestimated_cost_usd *float64
	tokens_in             *int64
	addtokens_in          *int64
	tokens_out            *int64
	addtokens_out         *int64
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*UsageCounter, error)
	predicates            []predicate.UsageCounter
}

var _ ent.Mutation = (*UsageCounterMutation)(nil)

// usagecounterOption allows management of the mutation configuration using functional options.
type usagecounterOption func(*UsageCounterMutation)

// newUsageCounterMutation creates new mutation for the UsageCounter entity.
func newUsageCounterMutation(c config, op Op, opts ...usagecounterOption) *UsageCounterMutation {
	m := &UsageCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageCounterID sets the ID field of the mutation.
func withUsageCounterID(id int) usagecounterOption {
	return func(m *UsageCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageCounter
		)
		m.oldValue = func(ctx context.Context) (*UsageCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageCounter sets the old UsageCounter of the mutation.
func withUsageCounter(node *UsageCounter) usagecounterOption {
	return func(m *UsageCounterMutation) {
		m.oldValue = func(context.Context) (*UsageCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageCounterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageCounterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMonth sets the "month" field.
func (m *UsageCounterMutation) SetMonth(s string) {
	m.month = &s
}

// Month returns the value of the "month" field in the mutation.
func (m *UsageCounterMutation) Month() (r string, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldMonth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *UsageCounterMutation) ResetMonth() {
	m.month = nil
}

// SetTier sets the "tier" field.
func (m *UsageCounterMutation) SetTier(u usagecounter.Tier) {
	m.tier = &u
}

// Tier returns the value of the "tier" field in the mutation.
func (m *UsageCounterMutation) Tier() (r usagecounter.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldTier(ctx context.Context) (v usagecounter.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *UsageCounterMutation) ResetTier() {
	m.tier = nil
}

// SetModelID sets the "model_id" field.
func (m *UsageCounterMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *UsageCounterMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *UsageCounterMutation) ResetModelID() {
	m.model_id = nil
}

// SetCalls sets the "calls" field.
func (m *UsageCounterMutation) SetCalls(i int64) {
	m.calls = &i
	m.addcalls = nil
}

// Calls returns the value of the "calls" field in the mutation.
func (m *UsageCounterMutation) Calls() (r int64, exists bool) {
	v := m.calls
	if v == nil {
		return
	}
	return *v, true
}

// OldCalls returns the old "calls" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldCalls(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalls: %w", err)
	}
	return oldValue.Calls, nil
}

// AddCalls adds i to the "calls" field.
func (m *UsageCounterMutation) AddCalls(i int64) {
	if m.addcalls != nil {
		*m.addcalls += i
	} else {
		m.addcalls = &i
	}
}

// AddedCalls returns the value that was added to the "calls" field in this mutation.
func (m *UsageCounterMutation) AddedCalls() (r int64, exists bool) {
	v := m.addcalls
	if v == nil {
		return
	}
	return *v, true
}

// ResetCalls resets all changes to the "calls" field.
func (m *UsageCounterMutation) ResetCalls() {
	m.calls = nil
	m.addcalls = nil
}

// SetFailures sets the "failures" field.
func (m *UsageCounterMutation) SetFailures(i int64) {
	m.failures = &i
	m.addfailures = nil
}

// Failures returns the value of the "failures" field in the mutation.
func (m *UsageCounterMutation) Failures() (r int64, exists bool) {
	v := m.failures
	if v == nil {
		return
	}
	return *v, true
}

// OldFailures returns the old "failures" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldFailures(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailures: %w", err)
	}
	return oldValue.Failures, nil
}

// AddFailures adds i to the "failures" field.
func (m *UsageCounterMutation) AddFailures(i int64) {
	if m.addfailures != nil {
		*m.addfailures += i
	} else {
		m.addfailures = &i
	}
}

// AddedFailures returns the value that was added to the "failures" field in this mutation.
func (m *UsageCounterMutation) AddedFailures() (r int64, exists bool) {
	v := m.addfailures
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailures resets all changes to the "failures" field.
func (m *UsageCounterMutation) ResetFailures() {
	m.failures = nil
	m.addfailures = nil
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *UsageCounterMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *UsageCounterMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldEstimatedCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *UsageCounterMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *UsageCounterMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *UsageCounterMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
}

// SetTokensIn sets the "tokens_in" field.
func (m *UsageCounterMutation) SetTokensIn(i int64) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *UsageCounterMutation) TokensIn() (r int64, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldTokensIn(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *UsageCounterMutation) AddTokensIn(i int64) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *UsageCounterMutation) AddedTokensIn() (r int64, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *UsageCounterMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *UsageCounterMutation) SetTokensOut(i int64) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *UsageCounterMutation) TokensOut() (r int64, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldTokensOut(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *UsageCounterMutation) AddTokensOut(i int64) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *UsageCounterMutation) AddedTokensOut() (r int64, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *UsageCounterMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UsageCounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UsageCounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UsageCounter entity.
// If the UsageCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageCounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UsageCounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UsageCounterMutation builder.
func (m *UsageCounterMutation) Where(ps ...predicate.UsageCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageCounter).
func (m *UsageCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageCounterMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.month != nil {
		fields = append(fields, usagecounter.FieldMonth)
	}
	if m.tier != nil {
		fields = append(fields, usagecounter.FieldTier)
	}
	if m.model_id != nil {
		fields = append(fields, usagecounter.FieldModelID)
	}
	if m.calls != nil {
		fields = append(fields, usagecounter.FieldCalls)
	}
	if m.failures != nil {
		fields = append(fields, usagecounter.FieldFailures)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, usagecounter.FieldEstimatedCostUsd)
	}
	if m.tokens_in != nil {
		fields = append(fields, usagecounter.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, usagecounter.FieldTokensOut)
	}
	if m.updated_at != nil {
		fields = append(fields, usagecounter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagecounter.FieldMonth:
		return m.Month()
	case usagecounter.FieldTier:
		return m.Tier()
	case usagecounter.FieldModelID:
		return m.ModelID()
	case usagecounter.FieldCalls:
		return m.Calls()
	case usagecounter.FieldFailures:
		return m.Failures()
	case usagecounter.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case usagecounter.FieldTokensIn:
		return m.TokensIn()
	case usagecounter.FieldTokensOut:
		return m.TokensOut()
	case usagecounter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagecounter.FieldMonth:
		return m.OldMonth(ctx)
	case usagecounter.FieldTier:
		return m.OldTier(ctx)
	case usagecounter.FieldModelID:
		return m.OldModelID(ctx)
	case usagecounter.FieldCalls:
		return m.OldCalls(ctx)
	case usagecounter.FieldFailures:
		return m.OldFailures(ctx)
	case usagecounter.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case usagecounter.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case usagecounter.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case usagecounter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagecounter.FieldMonth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case usagecounter.FieldTier:
		v, ok := value.(usagecounter.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case usagecounter.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case usagecounter.FieldCalls:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalls(v)
		return nil
	case usagecounter.FieldFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailures(v)
		return nil
	case usagecounter.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case usagecounter.FieldTokensIn:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case usagecounter.FieldTokensOut:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case usagecounter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageCounterMutation) AddedFields() []string {
	var fields []string
	if m.addcalls != nil {
		fields = append(fields, usagecounter.FieldCalls)
	}
	if m.addfailures != nil {
		fields = append(fields, usagecounter.FieldFailures)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, usagecounter.FieldEstimatedCostUsd)
	}
	if m.addtokens_in != nil {
		fields = append(fields, usagecounter.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, usagecounter.FieldTokensOut)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagecounter.FieldCalls:
		return m.AddedCalls()
	case usagecounter.FieldFailures:
		return m.AddedFailures()
	case usagecounter.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	case usagecounter.FieldTokensIn:
		return m.AddedTokensIn()
	case usagecounter.FieldTokensOut:
		return m.AddedTokensOut()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagecounter.FieldCalls:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCalls(v)
		return nil
	case usagecounter.FieldFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailures(v)
		return nil
	case usagecounter.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	case usagecounter.FieldTokensIn:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case usagecounter.FieldTokensOut:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	}
	return fmt.Errorf("unknown UsageCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UsageCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageCounterMutation) ResetField(name string) error {
	switch name {
	case usagecounter.FieldMonth:
		m.ResetMonth()
		return nil
	case usagecounter.FieldTier:
		m.ResetTier()
		return nil
	case usagecounter.FieldModelID:
		m.ResetModelID()
		return nil
	case usagecounter.FieldCalls:
		m.ResetCalls()
		return nil
	case usagecounter.FieldFailures:
		m.ResetFailures()
		return nil
	case usagecounter.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case usagecounter.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case usagecounter.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case usagecounter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageCounter edge %s", name)
}
