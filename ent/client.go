// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Pavua/krab/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Pavua/krab/ent/alert"
	"github.com/Pavua/krab/ent/attemptrecord"
	"github.com/Pavua/krab/ent/policyoverride"
	"github.com/Pavua/krab/ent/reactionentry"
	"github.com/Pavua/krab/ent/usagecounter"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Alert is the client for interacting with the Alert builders.
	Alert *AlertClient
	// AttemptRecord is the client for interacting with the AttemptRecord builders.
	AttemptRecord *AttemptRecordClient
	// PolicyOverride is the client for interacting with the PolicyOverride builders.
	PolicyOverride *PolicyOverrideClient
	// ReactionEntry is the client for interacting with the ReactionEntry builders.
	ReactionEntry *ReactionEntryClient
	// UsageCounter is the client for interacting with the UsageCounter builders.
	UsageCounter *UsageCounterClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Alert = NewAlertClient(c.config)
	c.AttemptRecord = NewAttemptRecordClient(c.config)
	c.PolicyOverride = NewPolicyOverrideClient(c.config)
	c.ReactionEntry = NewReactionEntryClient(c.config)
	c.UsageCounter = NewUsageCounterClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Alert:          NewAlertClient(cfg),
		AttemptRecord:  NewAttemptRecordClient(cfg),
		PolicyOverride: NewPolicyOverrideClient(cfg),
		ReactionEntry:  NewReactionEntryClient(cfg),
		UsageCounter:   NewUsageCounterClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Alert:          NewAlertClient(cfg),
		AttemptRecord:  NewAttemptRecordClient(cfg),
		PolicyOverride: NewPolicyOverrideClient(cfg),
		ReactionEntry:  NewReactionEntryClient(cfg),
		UsageCounter:   NewUsageCounterClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Alert.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Alert.Use(hooks...)
	c.AttemptRecord.Use(hooks...)
	c.PolicyOverride.Use(hooks...)
	c.ReactionEntry.Use(hooks...)
	c.UsageCounter.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Alert.Intercept(interceptors...)
	c.AttemptRecord.Intercept(interceptors...)
	c.PolicyOverride.Intercept(interceptors...)
	c.ReactionEntry.Intercept(interceptors...)
	c.UsageCounter.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertMutation:
		return c.Alert.mutate(ctx, m)
	case *AttemptRecordMutation:
		return c.AttemptRecord.mutate(ctx, m)
	case *PolicyOverrideMutation:
		return c.PolicyOverride.mutate(ctx, m)
	case *ReactionEntryMutation:
		return c.ReactionEntry.mutate(ctx, m)
	case *UsageCounterMutation:
		return c.UsageCounter.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertClient is a client for the Alert schema.
type AlertClient struct {
	config
}

// NewAlertClient returns a client for the Alert from the given config.
func NewAlertClient(c config) *AlertClient {
	return &AlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alert.Hooks(f(g(h())))`.
func (c *AlertClient) Use(hooks ...Hook) {
	c.hooks.Alert = append(c.hooks.Alert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alert.Intercept(f(g(h())))`.
func (c *AlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.Alert = append(c.inters.Alert, interceptors...)
}

// Create returns a builder for creating a Alert entity.
func (c *AlertClient) Create() *AlertCreate {
	mutation := newAlertMutation(c.config, OpCreate)
	return &AlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Alert entities.
func (c *AlertClient) CreateBulk(builders ...*AlertCreate) *AlertCreateBulk {
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertClient) MapCreateBulk(slice any, setFunc func(*AlertCreate, int)) *AlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertCreateBulk{err: fmt.Errorf("calling to AlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Alert.
func (c *AlertClient) Update() *AlertUpdate {
	mutation := newAlertMutation(c.config, OpUpdate)
	return &AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertClient) UpdateOne(_m *Alert) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlert(_m))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertClient) UpdateOneID(id int) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlertID(id))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Alert.
func (c *AlertClient) Delete() *AlertDelete {
	mutation := newAlertMutation(c.config, OpDelete)
	return &AlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertClient) DeleteOne(_m *Alert) *AlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertClient) DeleteOneID(id int) *AlertDeleteOne {
	builder := c.Delete().Where(alert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertDeleteOne{builder}
}

// Query returns a query builder for Alert.
func (c *AlertClient) Query() *AlertQuery {
	return &AlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a Alert entity by its id.
func (c *AlertClient) Get(ctx context.Context, id int) (*Alert, error) {
	return c.Query().Where(alert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertClient) GetX(ctx context.Context, id int) *Alert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AlertClient) Hooks() []Hook {
	return c.hooks.Alert
}

// Interceptors returns the client interceptors.
func (c *AlertClient) Interceptors() []Interceptor {
	return c.inters.Alert
}

func (c *AlertClient) mutate(ctx context.Context, m *AlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Alert mutation op: %q", m.Op())
	}
}

// AttemptRecordClient is a client for the AttemptRecord schema.
type AttemptRecordClient struct {
	config
}

// NewAttemptRecordClient returns a client for the AttemptRecord from the given config.
func NewAttemptRecordClient(c config) *AttemptRecordClient {
	return &AttemptRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptrecord.Hooks(f(g(h())))`.
func (c *AttemptRecordClient) Use(hooks ...Hook) {
	c.hooks.AttemptRecord = append(c.hooks.AttemptRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptrecord.Intercept(f(g(h())))`.
func (c *AttemptRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptRecord = append(c.inters.AttemptRecord, interceptors...)
}

// Create returns a builder for creating a AttemptRecord entity.
func (c *AttemptRecordClient) Create() *AttemptRecordCreate {
	mutation := newAttemptRecordMutation(c.config, OpCreate)
	return &AttemptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptRecord entities.
func (c *AttemptRecordClient) CreateBulk(builders ...*AttemptRecordCreate) *AttemptRecordCreateBulk {
	return &AttemptRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptRecordClient) MapCreateBulk(slice any, setFunc func(*AttemptRecordCreate, int)) *AttemptRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptRecordCreateBulk{err: fmt.Errorf("calling to AttemptRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptRecord.
func (c *AttemptRecordClient) Update() *AttemptRecordUpdate {
	mutation := newAttemptRecordMutation(c.config, OpUpdate)
	return &AttemptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptRecordClient) UpdateOne(_m *AttemptRecord) *AttemptRecordUpdateOne {
	mutation := newAttemptRecordMutation(c.config, OpUpdateOne, withAttemptRecord(_m))
	return &AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptRecordClient) UpdateOneID(id int) *AttemptRecordUpdateOne {
	mutation := newAttemptRecordMutation(c.config, OpUpdateOne, withAttemptRecordID(id))
	return &AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptRecord.
func (c *AttemptRecordClient) Delete() *AttemptRecordDelete {
	mutation := newAttemptRecordMutation(c.config, OpDelete)
	return &AttemptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptRecordClient) DeleteOne(_m *AttemptRecord) *AttemptRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptRecordClient) DeleteOneID(id int) *AttemptRecordDeleteOne {
	builder := c.Delete().Where(attemptrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptRecordDeleteOne{builder}
}

// Query returns a query builder for AttemptRecord.
func (c *AttemptRecordClient) Query() *AttemptRecordQuery {
	return &AttemptRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptRecord entity by its id.
func (c *AttemptRecordClient) Get(ctx context.Context, id int) (*AttemptRecord, error) {
	return c.Query().Where(attemptrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptRecordClient) GetX(ctx context.Context, id int) *AttemptRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptRecordClient) Hooks() []Hook {
	return c.hooks.AttemptRecord
}

// Interceptors returns the client interceptors.
func (c *AttemptRecordClient) Interceptors() []Interceptor {
	return c.inters.AttemptRecord
}

func (c *AttemptRecordClient) mutate(ctx context.Context, m *AttemptRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptRecord mutation op: %q", m.Op())
	}
}

// PolicyOverrideClient is a client for the PolicyOverride schema.
type PolicyOverrideClient struct {
	config
}

// NewPolicyOverrideClient returns a client for the PolicyOverride from the given config.
func NewPolicyOverrideClient(c config) *PolicyOverrideClient {
	return &PolicyOverrideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `policyoverride.Hooks(f(g(h())))`.
func (c *PolicyOverrideClient) Use(hooks ...Hook) {
	c.hooks.PolicyOverride = append(c.hooks.PolicyOverride, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `policyoverride.Intercept(f(g(h())))`.
func (c *PolicyOverrideClient) Intercept(interceptors ...Interceptor) {
	c.inters.PolicyOverride = append(c.inters.PolicyOverride, interceptors...)
}

// Create returns a builder for creating a PolicyOverride entity.
func (c *PolicyOverrideClient) Create() *PolicyOverrideCreate {
	mutation := newPolicyOverrideMutation(c.config, OpCreate)
	return &PolicyOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PolicyOverride entities.
func (c *PolicyOverrideClient) CreateBulk(builders ...*PolicyOverrideCreate) *PolicyOverrideCreateBulk {
	return &PolicyOverrideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PolicyOverrideClient) MapCreateBulk(slice any, setFunc func(*PolicyOverrideCreate, int)) *PolicyOverrideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PolicyOverrideCreateBulk{err: fmt.Errorf("calling to PolicyOverrideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PolicyOverrideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PolicyOverrideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PolicyOverride.
func (c *PolicyOverrideClient) Update() *PolicyOverrideUpdate {
	mutation := newPolicyOverrideMutation(c.config, OpUpdate)
	return &PolicyOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PolicyOverrideClient) UpdateOne(_m *PolicyOverride) *PolicyOverrideUpdateOne {
	mutation := newPolicyOverrideMutation(c.config, OpUpdateOne, withPolicyOverride(_m))
	return &PolicyOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PolicyOverrideClient) UpdateOneID(id int) *PolicyOverrideUpdateOne {
	mutation := newPolicyOverrideMutation(c.config, OpUpdateOne, withPolicyOverrideID(id))
	return &PolicyOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PolicyOverride.
func (c *PolicyOverrideClient) Delete() *PolicyOverrideDelete {
	mutation := newPolicyOverrideMutation(c.config, OpDelete)
	return &PolicyOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PolicyOverrideClient) DeleteOne(_m *PolicyOverride) *PolicyOverrideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PolicyOverrideClient) DeleteOneID(id int) *PolicyOverrideDeleteOne {
	builder := c.Delete().Where(policyoverride.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PolicyOverrideDeleteOne{builder}
}

// Query returns a query builder for PolicyOverride.
func (c *PolicyOverrideClient) Query() *PolicyOverrideQuery {
	return &PolicyOverrideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePolicyOverride},
		inters: c.Interceptors(),
	}
}

// Get returns a PolicyOverride entity by its id.
func (c *PolicyOverrideClient) Get(ctx context.Context, id int) (*PolicyOverride, error) {
	return c.Query().Where(policyoverride.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PolicyOverrideClient) GetX(ctx context.Context, id int) *PolicyOverride {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PolicyOverrideClient) Hooks() []Hook {
	return c.hooks.PolicyOverride
}

// Interceptors returns the client interceptors.
func (c *PolicyOverrideClient) Interceptors() []Interceptor {
	return c.inters.PolicyOverride
}

func (c *PolicyOverrideClient) mutate(ctx context.Context, m *PolicyOverrideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PolicyOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PolicyOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PolicyOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PolicyOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PolicyOverride mutation op: %q", m.Op())
	}
}

// ReactionEntryClient is a client for the ReactionEntry schema.
type ReactionEntryClient struct {
	config
}

// NewReactionEntryClient returns a client for the ReactionEntry from the given config.
func NewReactionEntryClient(c config) *ReactionEntryClient {
	return &ReactionEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reactionentry.Hooks(f(g(h())))`.
func (c *ReactionEntryClient) Use(hooks ...Hook) {
	c.hooks.ReactionEntry = append(c.hooks.ReactionEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reactionentry.Intercept(f(g(h())))`.
func (c *ReactionEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReactionEntry = append(c.inters.ReactionEntry, interceptors...)
}

// Create returns a builder for creating a ReactionEntry entity.
func (c *ReactionEntryClient) Create() *ReactionEntryCreate {
	mutation := newReactionEntryMutation(c.config, OpCreate)
	return &ReactionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReactionEntry entities.
func (c *ReactionEntryClient) CreateBulk(builders ...*ReactionEntryCreate) *ReactionEntryCreateBulk {
	return &ReactionEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReactionEntryClient) MapCreateBulk(slice any, setFunc func(*ReactionEntryCreate, int)) *ReactionEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReactionEntryCreateBulk{err: fmt.Errorf("calling to ReactionEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReactionEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReactionEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReactionEntry.
func (c *ReactionEntryClient) Update() *ReactionEntryUpdate {
	mutation := newReactionEntryMutation(c.config, OpUpdate)
	return &ReactionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReactionEntryClient) UpdateOne(_m *ReactionEntry) *ReactionEntryUpdateOne {
	mutation := newReactionEntryMutation(c.config, OpUpdateOne, withReactionEntry(_m))
	return &ReactionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReactionEntryClient) UpdateOneID(id int) *ReactionEntryUpdateOne {
	mutation := newReactionEntryMutation(c.config, OpUpdateOne, withReactionEntryID(id))
	return &ReactionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReactionEntry.
func (c *ReactionEntryClient) Delete() *ReactionEntryDelete {
	mutation := newReactionEntryMutation(c.config, OpDelete)
	return &ReactionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReactionEntryClient) DeleteOne(_m *ReactionEntry) *ReactionEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReactionEntryClient) DeleteOneID(id int) *ReactionEntryDeleteOne {
	builder := c.Delete().Where(reactionentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReactionEntryDeleteOne{builder}
}

// Query returns a query builder for ReactionEntry.
func (c *ReactionEntryClient) Query() *ReactionEntryQuery {
	return &ReactionEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReactionEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ReactionEntry entity by its id.
func (c *ReactionEntryClient) Get(ctx context.Context, id int) (*ReactionEntry, error) {
	return c.Query().Where(reactionentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReactionEntryClient) GetX(ctx context.Context, id int) *ReactionEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReactionEntryClient) Hooks() []Hook {
	return c.hooks.ReactionEntry
}

// Interceptors returns the client interceptors.
func (c *ReactionEntryClient) Interceptors() []Interceptor {
	return c.inters.ReactionEntry
}

func (c *ReactionEntryClient) mutate(ctx context.Context, m *ReactionEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReactionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReactionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReactionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReactionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReactionEntry mutation op: %q", m.Op())
	}
}

// UsageCounterClient is a client for the UsageCounter schema.
type UsageCounterClient struct {
	config
}

// NewUsageCounterClient returns a client for the UsageCounter from the given config.
func NewUsageCounterClient(c config) *UsageCounterClient {
	return &UsageCounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagecounter.Hooks(f(g(h())))`.
func (c *UsageCounterClient) Use(hooks ...Hook) {
	c.hooks.UsageCounter = append(c.hooks.UsageCounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagecounter.Intercept(f(g(h())))`.
func (c *UsageCounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageCounter = append(c.inters.UsageCounter, interceptors...)
}

// Create returns a builder for creating a UsageCounter entity.
func (c *UsageCounterClient) Create() *UsageCounterCreate {
	mutation := newUsageCounterMutation(c.config, OpCreate)
	return &UsageCounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageCounter entities.
func (c *UsageCounterClient) CreateBulk(builders ...*UsageCounterCreate) *UsageCounterCreateBulk {
	return &UsageCounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageCounterClient) MapCreateBulk(slice any, setFunc func(*UsageCounterCreate, int)) *UsageCounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageCounterCreateBulk{err: fmt.Errorf("calling to UsageCounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageCounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageCounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageCounter.
func (c *UsageCounterClient) Update() *UsageCounterUpdate {
	mutation := newUsageCounterMutation(c.config, OpUpdate)
	return &UsageCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageCounterClient) UpdateOne(_m *UsageCounter) *UsageCounterUpdateOne {
	mutation := newUsageCounterMutation(c.config, OpUpdateOne, withUsageCounter(_m))
	return &UsageCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageCounterClient) UpdateOneID(id int) *UsageCounterUpdateOne {
	mutation := newUsageCounterMutation(c.config, OpUpdateOne, withUsageCounterID(id))
	return &UsageCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageCounter.
func (c *UsageCounterClient) Delete() *UsageCounterDelete {
	mutation := newUsageCounterMutation(c.config, OpDelete)
	return &UsageCounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageCounterClient) DeleteOne(_m *UsageCounter) *UsageCounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageCounterClient) DeleteOneID(id int) *UsageCounterDeleteOne {
	builder := c.Delete().Where(usagecounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageCounterDeleteOne{builder}
}

// Query returns a query builder for UsageCounter.
func (c *UsageCounterClient) Query() *UsageCounterQuery {
	return &UsageCounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageCounter},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageCounter entity by its id.
func (c *UsageCounterClient) Get(ctx context.Context, id int) (*UsageCounter, error) {
	return c.Query().Where(usagecounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageCounterClient) GetX(ctx context.Context, id int) *UsageCounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageCounterClient) Hooks() []Hook {
	return c.hooks.UsageCounter
}

// Interceptors returns the client interceptors.
func (c *UsageCounterClient) Interceptors() []Interceptor {
	return c.inters.UsageCounter
}

func (c *UsageCounterClient) mutate(ctx context.Context, m *UsageCounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageCounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageCounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageCounter mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Alert, AttemptRecord, PolicyOverride, ReactionEntry, UsageCounter []ent.Hook
	}
	inters struct {
		Alert, AttemptRecord, PolicyOverride, ReactionEntry,
		UsageCounter []ent.Interceptor
	}
)
