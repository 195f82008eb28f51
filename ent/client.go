// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codeready-toolchain/warden/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/warden/ent/auditentry"
	"github.com/codeready-toolchain/warden/ent/checkpoint"
	"github.com/codeready-toolchain/warden/ent/decisionrecord"
	"github.com/codeready-toolchain/warden/ent/decisionsignoff"
	"github.com/codeready-toolchain/warden/ent/inboxevent"
	"github.com/codeready-toolchain/warden/ent/lease"
	"github.com/codeready-toolchain/warden/ent/lineageentry"
	"github.com/codeready-toolchain/warden/ent/llmcacheentry"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/ent/toolcall"
	"github.com/codeready-toolchain/warden/ent/toolledgerentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// DecisionRecord is the client for interacting with the DecisionRecord builders.
	DecisionRecord *DecisionRecordClient
	// DecisionSignoff is the client for interacting with the DecisionSignoff builders.
	DecisionSignoff *DecisionSignoffClient
	// InboxEvent is the client for interacting with the InboxEvent builders.
	InboxEvent *InboxEventClient
	// LLMCacheEntry is the client for interacting with the LLMCacheEntry builders.
	LLMCacheEntry *LLMCacheEntryClient
	// Lease is the client for interacting with the Lease builders.
	Lease *LeaseClient
	// LineageEntry is the client for interacting with the LineageEntry builders.
	LineageEntry *LineageEntryClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// ToolCall is the client for interacting with the ToolCall builders.
	ToolCall *ToolCallClient
	// ToolLedgerEntry is the client for interacting with the ToolLedgerEntry builders.
	ToolLedgerEntry *ToolLedgerEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.DecisionRecord = NewDecisionRecordClient(c.config)
	c.DecisionSignoff = NewDecisionSignoffClient(c.config)
	c.InboxEvent = NewInboxEventClient(c.config)
	c.LLMCacheEntry = NewLLMCacheEntryClient(c.config)
	c.Lease = NewLeaseClient(c.config)
	c.LineageEntry = NewLineageEntryClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.ToolCall = NewToolCallClient(c.config)
	c.ToolLedgerEntry = NewToolLedgerEntryClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AuditEntry:      NewAuditEntryClient(cfg),
		Checkpoint:      NewCheckpointClient(cfg),
		DecisionRecord:  NewDecisionRecordClient(cfg),
		DecisionSignoff: NewDecisionSignoffClient(cfg),
		InboxEvent:      NewInboxEventClient(cfg),
		LLMCacheEntry:   NewLLMCacheEntryClient(cfg),
		Lease:           NewLeaseClient(cfg),
		LineageEntry:    NewLineageEntryClient(cfg),
		Task:            NewTaskClient(cfg),
		ToolCall:        NewToolCallClient(cfg),
		ToolLedgerEntry: NewToolLedgerEntryClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AuditEntry:      NewAuditEntryClient(cfg),
		Checkpoint:      NewCheckpointClient(cfg),
		DecisionRecord:  NewDecisionRecordClient(cfg),
		DecisionSignoff: NewDecisionSignoffClient(cfg),
		InboxEvent:      NewInboxEventClient(cfg),
		LLMCacheEntry:   NewLLMCacheEntryClient(cfg),
		Lease:           NewLeaseClient(cfg),
		LineageEntry:    NewLineageEntryClient(cfg),
		Task:            NewTaskClient(cfg),
		ToolCall:        NewToolCallClient(cfg),
		ToolLedgerEntry: NewToolLedgerEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditEntry.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditEntry, c.Checkpoint, c.DecisionRecord, c.DecisionSignoff, c.InboxEvent,
		c.LLMCacheEntry, c.Lease, c.LineageEntry, c.Task, c.ToolCall,
		c.ToolLedgerEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditEntry, c.Checkpoint, c.DecisionRecord, c.DecisionSignoff, c.InboxEvent,
		c.LLMCacheEntry, c.Lease, c.LineageEntry, c.Task, c.ToolCall,
		c.ToolLedgerEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *DecisionRecordMutation:
		return c.DecisionRecord.mutate(ctx, m)
	case *DecisionSignoffMutation:
		return c.DecisionSignoff.mutate(ctx, m)
	case *InboxEventMutation:
		return c.InboxEvent.mutate(ctx, m)
	case *LLMCacheEntryMutation:
		return c.LLMCacheEntry.mutate(ctx, m)
	case *LeaseMutation:
		return c.Lease.mutate(ctx, m)
	case *LineageEntryMutation:
		return c.LineageEntry.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *ToolCallMutation:
		return c.ToolCall.mutate(ctx, m)
	case *ToolLedgerEntryMutation:
		return c.ToolLedgerEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id int) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id int) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id int) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id int) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a AuditEntry.
func (c *AuditEntryClient) QueryTask(_m *AuditEntry) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditentry.Table, auditentry.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditentry.TaskTable, auditentry.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id string) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id string) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id string) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id string) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Checkpoint.
func (c *CheckpointClient) QueryTask(_m *Checkpoint) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkpoint.Table, checkpoint.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkpoint.TaskTable, checkpoint.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// DecisionRecordClient is a client for the DecisionRecord schema.
type DecisionRecordClient struct {
	config
}

// NewDecisionRecordClient returns a client for the DecisionRecord from the given config.
func NewDecisionRecordClient(c config) *DecisionRecordClient {
	return &DecisionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `decisionrecord.Hooks(f(g(h())))`.
func (c *DecisionRecordClient) Use(hooks ...Hook) {
	c.hooks.DecisionRecord = append(c.hooks.DecisionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `decisionrecord.Intercept(f(g(h())))`.
func (c *DecisionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.DecisionRecord = append(c.inters.DecisionRecord, interceptors...)
}

// Create returns a builder for creating a DecisionRecord entity.
func (c *DecisionRecordClient) Create() *DecisionRecordCreate {
	mutation := newDecisionRecordMutation(c.config, OpCreate)
	return &DecisionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DecisionRecord entities.
func (c *DecisionRecordClient) CreateBulk(builders ...*DecisionRecordCreate) *DecisionRecordCreateBulk {
	return &DecisionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DecisionRecordClient) MapCreateBulk(slice any, setFunc func(*DecisionRecordCreate, int)) *DecisionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DecisionRecordCreateBulk{err: fmt.Errorf("calling to DecisionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DecisionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DecisionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DecisionRecord.
func (c *DecisionRecordClient) Update() *DecisionRecordUpdate {
	mutation := newDecisionRecordMutation(c.config, OpUpdate)
	return &DecisionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DecisionRecordClient) UpdateOne(_m *DecisionRecord) *DecisionRecordUpdateOne {
	mutation := newDecisionRecordMutation(c.config, OpUpdateOne, withDecisionRecord(_m))
	return &DecisionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DecisionRecordClient) UpdateOneID(id string) *DecisionRecordUpdateOne {
	mutation := newDecisionRecordMutation(c.config, OpUpdateOne, withDecisionRecordID(id))
	return &DecisionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DecisionRecord.
func (c *DecisionRecordClient) Delete() *DecisionRecordDelete {
	mutation := newDecisionRecordMutation(c.config, OpDelete)
	return &DecisionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DecisionRecordClient) DeleteOne(_m *DecisionRecord) *DecisionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DecisionRecordClient) DeleteOneID(id string) *DecisionRecordDeleteOne {
	builder := c.Delete().Where(decisionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DecisionRecordDeleteOne{builder}
}

// Query returns a query builder for DecisionRecord.
func (c *DecisionRecordClient) Query() *DecisionRecordQuery {
	return &DecisionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDecisionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a DecisionRecord entity by its id.
func (c *DecisionRecordClient) Get(ctx context.Context, id string) (*DecisionRecord, error) {
	return c.Query().Where(decisionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DecisionRecordClient) GetX(ctx context.Context, id string) *DecisionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DecisionRecordClient) Hooks() []Hook {
	return c.hooks.DecisionRecord
}

// Interceptors returns the client interceptors.
func (c *DecisionRecordClient) Interceptors() []Interceptor {
	return c.inters.DecisionRecord
}

func (c *DecisionRecordClient) mutate(ctx context.Context, m *DecisionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DecisionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DecisionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DecisionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DecisionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DecisionRecord mutation op: %q", m.Op())
	}
}

// DecisionSignoffClient is a client for the DecisionSignoff schema.
type DecisionSignoffClient struct {
	config
}

// NewDecisionSignoffClient returns a client for the DecisionSignoff from the given config.
func NewDecisionSignoffClient(c config) *DecisionSignoffClient {
	return &DecisionSignoffClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `decisionsignoff.Hooks(f(g(h())))`.
func (c *DecisionSignoffClient) Use(hooks ...Hook) {
	c.hooks.DecisionSignoff = append(c.hooks.DecisionSignoff, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `decisionsignoff.Intercept(f(g(h())))`.
func (c *DecisionSignoffClient) Intercept(interceptors ...Interceptor) {
	c.inters.DecisionSignoff = append(c.inters.DecisionSignoff, interceptors...)
}

// Create returns a builder for creating a DecisionSignoff entity.
func (c *DecisionSignoffClient) Create() *DecisionSignoffCreate {
	mutation := newDecisionSignoffMutation(c.config, OpCreate)
	return &DecisionSignoffCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DecisionSignoff entities.
func (c *DecisionSignoffClient) CreateBulk(builders ...*DecisionSignoffCreate) *DecisionSignoffCreateBulk {
	return &DecisionSignoffCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DecisionSignoffClient) MapCreateBulk(slice any, setFunc func(*DecisionSignoffCreate, int)) *DecisionSignoffCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DecisionSignoffCreateBulk{err: fmt.Errorf("calling to DecisionSignoffClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DecisionSignoffCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DecisionSignoffCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DecisionSignoff.
func (c *DecisionSignoffClient) Update() *DecisionSignoffUpdate {
	mutation := newDecisionSignoffMutation(c.config, OpUpdate)
	return &DecisionSignoffUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DecisionSignoffClient) UpdateOne(_m *DecisionSignoff) *DecisionSignoffUpdateOne {
	mutation := newDecisionSignoffMutation(c.config, OpUpdateOne, withDecisionSignoff(_m))
	return &DecisionSignoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DecisionSignoffClient) UpdateOneID(id int) *DecisionSignoffUpdateOne {
	mutation := newDecisionSignoffMutation(c.config, OpUpdateOne, withDecisionSignoffID(id))
	return &DecisionSignoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DecisionSignoff.
func (c *DecisionSignoffClient) Delete() *DecisionSignoffDelete {
	mutation := newDecisionSignoffMutation(c.config, OpDelete)
	return &DecisionSignoffDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DecisionSignoffClient) DeleteOne(_m *DecisionSignoff) *DecisionSignoffDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DecisionSignoffClient) DeleteOneID(id int) *DecisionSignoffDeleteOne {
	builder := c.Delete().Where(decisionsignoff.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DecisionSignoffDeleteOne{builder}
}

// Query returns a query builder for DecisionSignoff.
func (c *DecisionSignoffClient) Query() *DecisionSignoffQuery {
	return &DecisionSignoffQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDecisionSignoff},
		inters: c.Interceptors(),
	}
}

// Get returns a DecisionSignoff entity by its id.
func (c *DecisionSignoffClient) Get(ctx context.Context, id int) (*DecisionSignoff, error) {
	return c.Query().Where(decisionsignoff.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DecisionSignoffClient) GetX(ctx context.Context, id int) *DecisionSignoff {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DecisionSignoffClient) Hooks() []Hook {
	return c.hooks.DecisionSignoff
}

// Interceptors returns the client interceptors.
func (c *DecisionSignoffClient) Interceptors() []Interceptor {
	return c.inters.DecisionSignoff
}

func (c *DecisionSignoffClient) mutate(ctx context.Context, m *DecisionSignoffMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DecisionSignoffCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DecisionSignoffUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DecisionSignoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DecisionSignoffDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DecisionSignoff mutation op: %q", m.Op())
	}
}

// InboxEventClient is a client for the InboxEvent schema.
type InboxEventClient struct {
	config
}

// NewInboxEventClient returns a client for the InboxEvent from the given config.
func NewInboxEventClient(c config) *InboxEventClient {
	return &InboxEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboxevent.Hooks(f(g(h())))`.
func (c *InboxEventClient) Use(hooks ...Hook) {
	c.hooks.InboxEvent = append(c.hooks.InboxEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboxevent.Intercept(f(g(h())))`.
func (c *InboxEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboxEvent = append(c.inters.InboxEvent, interceptors...)
}

// Create returns a builder for creating a InboxEvent entity.
func (c *InboxEventClient) Create() *InboxEventCreate {
	mutation := newInboxEventMutation(c.config, OpCreate)
	return &InboxEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboxEvent entities.
func (c *InboxEventClient) CreateBulk(builders ...*InboxEventCreate) *InboxEventCreateBulk {
	return &InboxEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboxEventClient) MapCreateBulk(slice any, setFunc func(*InboxEventCreate, int)) *InboxEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboxEventCreateBulk{err: fmt.Errorf("calling to InboxEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboxEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboxEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboxEvent.
func (c *InboxEventClient) Update() *InboxEventUpdate {
	mutation := newInboxEventMutation(c.config, OpUpdate)
	return &InboxEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboxEventClient) UpdateOne(_m *InboxEvent) *InboxEventUpdateOne {
	mutation := newInboxEventMutation(c.config, OpUpdateOne, withInboxEvent(_m))
	return &InboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboxEventClient) UpdateOneID(id int) *InboxEventUpdateOne {
	mutation := newInboxEventMutation(c.config, OpUpdateOne, withInboxEventID(id))
	return &InboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboxEvent.
func (c *InboxEventClient) Delete() *InboxEventDelete {
	mutation := newInboxEventMutation(c.config, OpDelete)
	return &InboxEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboxEventClient) DeleteOne(_m *InboxEvent) *InboxEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboxEventClient) DeleteOneID(id int) *InboxEventDeleteOne {
	builder := c.Delete().Where(inboxevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboxEventDeleteOne{builder}
}

// Query returns a query builder for InboxEvent.
func (c *InboxEventClient) Query() *InboxEventQuery {
	return &InboxEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboxEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InboxEvent entity by its id.
func (c *InboxEventClient) Get(ctx context.Context, id int) (*InboxEvent, error) {
	return c.Query().Where(inboxevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboxEventClient) GetX(ctx context.Context, id int) *InboxEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InboxEventClient) Hooks() []Hook {
	return c.hooks.InboxEvent
}

// Interceptors returns the client interceptors.
func (c *InboxEventClient) Interceptors() []Interceptor {
	return c.inters.InboxEvent
}

func (c *InboxEventClient) mutate(ctx context.Context, m *InboxEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboxEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboxEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboxEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboxEvent mutation op: %q", m.Op())
	}
}

// LLMCacheEntryClient is a client for the LLMCacheEntry schema.
type LLMCacheEntryClient struct {
	config
}

// NewLLMCacheEntryClient returns a client for the LLMCacheEntry from the given config.
func NewLLMCacheEntryClient(c config) *LLMCacheEntryClient {
	return &LLMCacheEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmcacheentry.Hooks(f(g(h())))`.
func (c *LLMCacheEntryClient) Use(hooks ...Hook) {
	c.hooks.LLMCacheEntry = append(c.hooks.LLMCacheEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmcacheentry.Intercept(f(g(h())))`.
func (c *LLMCacheEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMCacheEntry = append(c.inters.LLMCacheEntry, interceptors...)
}

// Create returns a builder for creating a LLMCacheEntry entity.
func (c *LLMCacheEntryClient) Create() *LLMCacheEntryCreate {
	mutation := newLLMCacheEntryMutation(c.config, OpCreate)
	return &LLMCacheEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMCacheEntry entities.
func (c *LLMCacheEntryClient) CreateBulk(builders ...*LLMCacheEntryCreate) *LLMCacheEntryCreateBulk {
	return &LLMCacheEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMCacheEntryClient) MapCreateBulk(slice any, setFunc func(*LLMCacheEntryCreate, int)) *LLMCacheEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMCacheEntryCreateBulk{err: fmt.Errorf("calling to LLMCacheEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMCacheEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMCacheEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMCacheEntry.
func (c *LLMCacheEntryClient) Update() *LLMCacheEntryUpdate {
	mutation := newLLMCacheEntryMutation(c.config, OpUpdate)
	return &LLMCacheEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMCacheEntryClient) UpdateOne(_m *LLMCacheEntry) *LLMCacheEntryUpdateOne {
	mutation := newLLMCacheEntryMutation(c.config, OpUpdateOne, withLLMCacheEntry(_m))
	return &LLMCacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMCacheEntryClient) UpdateOneID(id string) *LLMCacheEntryUpdateOne {
	mutation := newLLMCacheEntryMutation(c.config, OpUpdateOne, withLLMCacheEntryID(id))
	return &LLMCacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMCacheEntry.
func (c *LLMCacheEntryClient) Delete() *LLMCacheEntryDelete {
	mutation := newLLMCacheEntryMutation(c.config, OpDelete)
	return &LLMCacheEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMCacheEntryClient) DeleteOne(_m *LLMCacheEntry) *LLMCacheEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMCacheEntryClient) DeleteOneID(id string) *LLMCacheEntryDeleteOne {
	builder := c.Delete().Where(llmcacheentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMCacheEntryDeleteOne{builder}
}

// Query returns a query builder for LLMCacheEntry.
func (c *LLMCacheEntryClient) Query() *LLMCacheEntryQuery {
	return &LLMCacheEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMCacheEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMCacheEntry entity by its id.
func (c *LLMCacheEntryClient) Get(ctx context.Context, id string) (*LLMCacheEntry, error) {
	return c.Query().Where(llmcacheentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMCacheEntryClient) GetX(ctx context.Context, id string) *LLMCacheEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMCacheEntryClient) Hooks() []Hook {
	return c.hooks.LLMCacheEntry
}

// Interceptors returns the client interceptors.
func (c *LLMCacheEntryClient) Interceptors() []Interceptor {
	return c.inters.LLMCacheEntry
}

func (c *LLMCacheEntryClient) mutate(ctx context.Context, m *LLMCacheEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMCacheEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMCacheEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMCacheEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMCacheEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMCacheEntry mutation op: %q", m.Op())
	}
}

// LeaseClient is a client for the Lease schema.
type LeaseClient struct {
	config
}

// NewLeaseClient returns a client for the Lease from the given config.
func NewLeaseClient(c config) *LeaseClient {
	return &LeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lease.Hooks(f(g(h())))`.
func (c *LeaseClient) Use(hooks ...Hook) {
	c.hooks.Lease = append(c.hooks.Lease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lease.Intercept(f(g(h())))`.
func (c *LeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lease = append(c.inters.Lease, interceptors...)
}

// Create returns a builder for creating a Lease entity.
func (c *LeaseClient) Create() *LeaseCreate {
	mutation := newLeaseMutation(c.config, OpCreate)
	return &LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lease entities.
func (c *LeaseClient) CreateBulk(builders ...*LeaseCreate) *LeaseCreateBulk {
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaseClient) MapCreateBulk(slice any, setFunc func(*LeaseCreate, int)) *LeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaseCreateBulk{err: fmt.Errorf("calling to LeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lease.
func (c *LeaseClient) Update() *LeaseUpdate {
	mutation := newLeaseMutation(c.config, OpUpdate)
	return &LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaseClient) UpdateOne(_m *Lease) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLease(_m))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaseClient) UpdateOneID(id string) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLeaseID(id))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lease.
func (c *LeaseClient) Delete() *LeaseDelete {
	mutation := newLeaseMutation(c.config, OpDelete)
	return &LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaseClient) DeleteOne(_m *Lease) *LeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaseClient) DeleteOneID(id string) *LeaseDeleteOne {
	builder := c.Delete().Where(lease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaseDeleteOne{builder}
}

// Query returns a query builder for Lease.
func (c *LeaseClient) Query() *LeaseQuery {
	return &LeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLease},
		inters: c.Interceptors(),
	}
}

// Get returns a Lease entity by its id.
func (c *LeaseClient) Get(ctx context.Context, id string) (*Lease, error) {
	return c.Query().Where(lease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaseClient) GetX(ctx context.Context, id string) *Lease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LeaseClient) Hooks() []Hook {
	return c.hooks.Lease
}

// Interceptors returns the client interceptors.
func (c *LeaseClient) Interceptors() []Interceptor {
	return c.inters.Lease
}

func (c *LeaseClient) mutate(ctx context.Context, m *LeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lease mutation op: %q", m.Op())
	}
}

// LineageEntryClient is a client for the LineageEntry schema.
type LineageEntryClient struct {
	config
}

// NewLineageEntryClient returns a client for the LineageEntry from the given config.
func NewLineageEntryClient(c config) *LineageEntryClient {
	return &LineageEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lineageentry.Hooks(f(g(h())))`.
func (c *LineageEntryClient) Use(hooks ...Hook) {
	c.hooks.LineageEntry = append(c.hooks.LineageEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lineageentry.Intercept(f(g(h())))`.
func (c *LineageEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LineageEntry = append(c.inters.LineageEntry, interceptors...)
}

// Create returns a builder for creating a LineageEntry entity.
func (c *LineageEntryClient) Create() *LineageEntryCreate {
	mutation := newLineageEntryMutation(c.config, OpCreate)
	return &LineageEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LineageEntry entities.
func (c *LineageEntryClient) CreateBulk(builders ...*LineageEntryCreate) *LineageEntryCreateBulk {
	return &LineageEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LineageEntryClient) MapCreateBulk(slice any, setFunc func(*LineageEntryCreate, int)) *LineageEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LineageEntryCreateBulk{err: fmt.Errorf("calling to LineageEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LineageEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LineageEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LineageEntry.
func (c *LineageEntryClient) Update() *LineageEntryUpdate {
	mutation := newLineageEntryMutation(c.config, OpUpdate)
	return &LineageEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LineageEntryClient) UpdateOne(_m *LineageEntry) *LineageEntryUpdateOne {
	mutation := newLineageEntryMutation(c.config, OpUpdateOne, withLineageEntry(_m))
	return &LineageEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LineageEntryClient) UpdateOneID(id int) *LineageEntryUpdateOne {
	mutation := newLineageEntryMutation(c.config, OpUpdateOne, withLineageEntryID(id))
	return &LineageEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LineageEntry.
func (c *LineageEntryClient) Delete() *LineageEntryDelete {
	mutation := newLineageEntryMutation(c.config, OpDelete)
	return &LineageEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LineageEntryClient) DeleteOne(_m *LineageEntry) *LineageEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LineageEntryClient) DeleteOneID(id int) *LineageEntryDeleteOne {
	builder := c.Delete().Where(lineageentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LineageEntryDeleteOne{builder}
}

// Query returns a query builder for LineageEntry.
func (c *LineageEntryClient) Query() *LineageEntryQuery {
	return &LineageEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLineageEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a LineageEntry entity by its id.
func (c *LineageEntryClient) Get(ctx context.Context, id int) (*LineageEntry, error) {
	return c.Query().Where(lineageentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LineageEntryClient) GetX(ctx context.Context, id int) *LineageEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a LineageEntry.
func (c *LineageEntryClient) QueryTask(_m *LineageEntry) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lineageentry.Table, lineageentry.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lineageentry.TaskTable, lineageentry.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LineageEntryClient) Hooks() []Hook {
	return c.hooks.LineageEntry
}

// Interceptors returns the client interceptors.
func (c *LineageEntryClient) Interceptors() []Interceptor {
	return c.inters.LineageEntry
}

func (c *LineageEntryClient) mutate(ctx context.Context, m *LineageEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LineageEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LineageEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LineageEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LineageEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LineageEntry mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuditEntries queries the audit_entries edge of a Task.
func (c *TaskClient) QueryAuditEntries(_m *Task) *AuditEntryQuery {
	query := (&AuditEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(auditentry.Table, auditentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.AuditEntriesTable, task.AuditEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLineageEntries queries the lineage_entries edge of a Task.
func (c *TaskClient) QueryLineageEntries(_m *Task) *LineageEntryQuery {
	query := (&LineageEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(lineageentry.Table, lineageentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.LineageEntriesTable, task.LineageEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckpoints queries the checkpoints edge of a Task.
func (c *TaskClient) QueryCheckpoints(_m *Task) *CheckpointQuery {
	query := (&CheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.CheckpointsTable, task.CheckpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolCalls queries the tool_calls edge of a Task.
func (c *TaskClient) QueryToolCalls(_m *Task) *ToolCallQuery {
	query := (&ToolCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(toolcall.Table, toolcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ToolCallsTable, task.ToolCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// ToolCallClient is a client for the ToolCall schema.
type ToolCallClient struct {
	config
}

// NewToolCallClient returns a client for the ToolCall from the given config.
func NewToolCallClient(c config) *ToolCallClient {
	return &ToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolcall.Hooks(f(g(h())))`.
func (c *ToolCallClient) Use(hooks ...Hook) {
	c.hooks.ToolCall = append(c.hooks.ToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolcall.Intercept(f(g(h())))`.
func (c *ToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolCall = append(c.inters.ToolCall, interceptors...)
}

// Create returns a builder for creating a ToolCall entity.
func (c *ToolCallClient) Create() *ToolCallCreate {
	mutation := newToolCallMutation(c.config, OpCreate)
	return &ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolCall entities.
func (c *ToolCallClient) CreateBulk(builders ...*ToolCallCreate) *ToolCallCreateBulk {
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolCallClient) MapCreateBulk(slice any, setFunc func(*ToolCallCreate, int)) *ToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCallCreateBulk{err: fmt.Errorf("calling to ToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolCall.
func (c *ToolCallClient) Update() *ToolCallUpdate {
	mutation := newToolCallMutation(c.config, OpUpdate)
	return &ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolCallClient) UpdateOne(_m *ToolCall) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCall(_m))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolCallClient) UpdateOneID(id string) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCallID(id))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolCall.
func (c *ToolCallClient) Delete() *ToolCallDelete {
	mutation := newToolCallMutation(c.config, OpDelete)
	return &ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolCallClient) DeleteOne(_m *ToolCall) *ToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolCallClient) DeleteOneID(id string) *ToolCallDeleteOne {
	builder := c.Delete().Where(toolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolCallDeleteOne{builder}
}

// Query returns a query builder for ToolCall.
func (c *ToolCallClient) Query() *ToolCallQuery {
	return &ToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolCall entity by its id.
func (c *ToolCallClient) Get(ctx context.Context, id string) (*ToolCall, error) {
	return c.Query().Where(toolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolCallClient) GetX(ctx context.Context, id string) *ToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a ToolCall.
func (c *ToolCallClient) QueryTask(_m *ToolCall) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolcall.Table, toolcall.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolcall.TaskTable, toolcall.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolCallClient) Hooks() []Hook {
	return c.hooks.ToolCall
}

// Interceptors returns the client interceptors.
func (c *ToolCallClient) Interceptors() []Interceptor {
	return c.inters.ToolCall
}

func (c *ToolCallClient) mutate(ctx context.Context, m *ToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolCall mutation op: %q", m.Op())
	}
}

// ToolLedgerEntryClient is a client for the ToolLedgerEntry schema.
type ToolLedgerEntryClient struct {
	config
}

// NewToolLedgerEntryClient returns a client for the ToolLedgerEntry from the given config.
func NewToolLedgerEntryClient(c config) *ToolLedgerEntryClient {
	return &ToolLedgerEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolledgerentry.Hooks(f(g(h())))`.
func (c *ToolLedgerEntryClient) Use(hooks ...Hook) {
	c.hooks.ToolLedgerEntry = append(c.hooks.ToolLedgerEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolledgerentry.Intercept(f(g(h())))`.
func (c *ToolLedgerEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolLedgerEntry = append(c.inters.ToolLedgerEntry, interceptors...)
}

// Create returns a builder for creating a ToolLedgerEntry entity.
func (c *ToolLedgerEntryClient) Create() *ToolLedgerEntryCreate {
	mutation := newToolLedgerEntryMutation(c.config, OpCreate)
	return &ToolLedgerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolLedgerEntry entities.
func (c *ToolLedgerEntryClient) CreateBulk(builders ...*ToolLedgerEntryCreate) *ToolLedgerEntryCreateBulk {
	return &ToolLedgerEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolLedgerEntryClient) MapCreateBulk(slice any, setFunc func(*ToolLedgerEntryCreate, int)) *ToolLedgerEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolLedgerEntryCreateBulk{err: fmt.Errorf("calling to ToolLedgerEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolLedgerEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolLedgerEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolLedgerEntry.
func (c *ToolLedgerEntryClient) Update() *ToolLedgerEntryUpdate {
	mutation := newToolLedgerEntryMutation(c.config, OpUpdate)
	return &ToolLedgerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolLedgerEntryClient) UpdateOne(_m *ToolLedgerEntry) *ToolLedgerEntryUpdateOne {
	mutation := newToolLedgerEntryMutation(c.config, OpUpdateOne, withToolLedgerEntry(_m))
	return &ToolLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolLedgerEntryClient) UpdateOneID(id int) *ToolLedgerEntryUpdateOne {
	mutation := newToolLedgerEntryMutation(c.config, OpUpdateOne, withToolLedgerEntryID(id))
	return &ToolLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolLedgerEntry.
func (c *ToolLedgerEntryClient) Delete() *ToolLedgerEntryDelete {
	mutation := newToolLedgerEntryMutation(c.config, OpDelete)
	return &ToolLedgerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolLedgerEntryClient) DeleteOne(_m *ToolLedgerEntry) *ToolLedgerEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolLedgerEntryClient) DeleteOneID(id int) *ToolLedgerEntryDeleteOne {
	builder := c.Delete().Where(toolledgerentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolLedgerEntryDeleteOne{builder}
}

// Query returns a query builder for ToolLedgerEntry.
func (c *ToolLedgerEntryClient) Query() *ToolLedgerEntryQuery {
	return &ToolLedgerEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolLedgerEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolLedgerEntry entity by its id.
func (c *ToolLedgerEntryClient) Get(ctx context.Context, id int) (*ToolLedgerEntry, error) {
	return c.Query().Where(toolledgerentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolLedgerEntryClient) GetX(ctx context.Context, id int) *ToolLedgerEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolLedgerEntryClient) Hooks() []Hook {
	return c.hooks.ToolLedgerEntry
}

// Interceptors returns the client interceptors.
func (c *ToolLedgerEntryClient) Interceptors() []Interceptor {
	return c.inters.ToolLedgerEntry
}

func (c *ToolLedgerEntryClient) mutate(ctx context.Context, m *ToolLedgerEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolLedgerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolLedgerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolLedgerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolLedgerEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditEntry, Checkpoint, DecisionRecord, DecisionSignoff, InboxEvent,
		LLMCacheEntry, Lease, LineageEntry, Task, ToolCall, ToolLedgerEntry []ent.Hook
	}
	inters struct {
		AuditEntry, Checkpoint, DecisionRecord, DecisionSignoff, InboxEvent,
		LLMCacheEntry, Lease, LineageEntry, Task, ToolCall,
		ToolLedgerEntry []ent.Interceptor
	}
)
