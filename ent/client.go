// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hooklinehq/hookline/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/hooklinehq/hookline/ent/idempotencykey"
	"github.com/hooklinehq/hookline/ent/outboxentry"
	"github.com/hooklinehq/hookline/ent/pluginevent"
	"github.com/hooklinehq/hookline/ent/plugininstance"
	"github.com/hooklinehq/hookline/ent/queuelane"
	"github.com/hooklinehq/hookline/ent/queuemessage"
	"github.com/hooklinehq/hookline/ent/routine"
	"github.com/hooklinehq/hookline/ent/routineevent"
	"github.com/hooklinehq/hookline/ent/routinerun"
	"github.com/hooklinehq/hookline/ent/rundispatch"
	"github.com/hooklinehq/hookline/ent/runtimecontrol"
	"github.com/hooklinehq/hookline/ent/scheduleditem"
	"github.com/hooklinehq/hookline/ent/workitem"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IdempotencyKey is the client for interacting with the IdempotencyKey builders.
	IdempotencyKey *IdempotencyKeyClient
	// OutboxEntry is the client for interacting with the OutboxEntry builders.
	OutboxEntry *OutboxEntryClient
	// PluginEvent is the client for interacting with the PluginEvent builders.
	PluginEvent *PluginEventClient
	// PluginInstance is the client for interacting with the PluginInstance builders.
	PluginInstance *PluginInstanceClient
	// QueueLane is the client for interacting with the QueueLane builders.
	QueueLane *QueueLaneClient
	// QueueMessage is the client for interacting with the QueueMessage builders.
	QueueMessage *QueueMessageClient
	// Routine is the client for interacting with the Routine builders.
	Routine *RoutineClient
	// RoutineEvent is the client for interacting with the RoutineEvent builders.
	RoutineEvent *RoutineEventClient
	// RoutineRun is the client for interacting with the RoutineRun builders.
	RoutineRun *RoutineRunClient
	// RunDispatch is the client for interacting with the RunDispatch builders.
	RunDispatch *RunDispatchClient
	// RuntimeControl is the client for interacting with the RuntimeControl builders.
	RuntimeControl *RuntimeControlClient
	// ScheduledItem is the client for interacting with the ScheduledItem builders.
	ScheduledItem *ScheduledItemClient
	// WorkItem is the client for interacting with the WorkItem builders.
	WorkItem *WorkItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IdempotencyKey = NewIdempotencyKeyClient(c.config)
	c.OutboxEntry = NewOutboxEntryClient(c.config)
	c.PluginEvent = NewPluginEventClient(c.config)
	c.PluginInstance = NewPluginInstanceClient(c.config)
	c.QueueLane = NewQueueLaneClient(c.config)
	c.QueueMessage = NewQueueMessageClient(c.config)
	c.Routine = NewRoutineClient(c.config)
	c.RoutineEvent = NewRoutineEventClient(c.config)
	c.RoutineRun = NewRoutineRunClient(c.config)
	c.RunDispatch = NewRunDispatchClient(c.config)
	c.RuntimeControl = NewRuntimeControlClient(c.config)
	c.ScheduledItem = NewScheduledItemClient(c.config)
	c.WorkItem = NewWorkItemClient(c.config)
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
		IdempotencyKey: NewIdempotencyKeyClient(cfg),
		OutboxEntry:    NewOutboxEntryClient(cfg),
		PluginEvent:    NewPluginEventClient(cfg),
		PluginInstance: NewPluginInstanceClient(cfg),
		QueueLane:      NewQueueLaneClient(cfg),
		QueueMessage:   NewQueueMessageClient(cfg),
		Routine:        NewRoutineClient(cfg),
		RoutineEvent:   NewRoutineEventClient(cfg),
		RoutineRun:     NewRoutineRunClient(cfg),
		RunDispatch:    NewRunDispatchClient(cfg),
		RuntimeControl: NewRuntimeControlClient(cfg),
		ScheduledItem:  NewScheduledItemClient(cfg),
		WorkItem:       NewWorkItemClient(cfg),
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
		IdempotencyKey: NewIdempotencyKeyClient(cfg),
		OutboxEntry:    NewOutboxEntryClient(cfg),
		PluginEvent:    NewPluginEventClient(cfg),
		PluginInstance: NewPluginInstanceClient(cfg),
		QueueLane:      NewQueueLaneClient(cfg),
		QueueMessage:   NewQueueMessageClient(cfg),
		Routine:        NewRoutineClient(cfg),
		RoutineEvent:   NewRoutineEventClient(cfg),
		RoutineRun:     NewRoutineRunClient(cfg),
		RunDispatch:    NewRunDispatchClient(cfg),
		RuntimeControl: NewRuntimeControlClient(cfg),
		ScheduledItem:  NewScheduledItemClient(cfg),
		WorkItem:       NewWorkItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IdempotencyKey.
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
		c.IdempotencyKey, c.OutboxEntry, c.PluginEvent, c.PluginInstance, c.QueueLane,
		c.QueueMessage, c.Routine, c.RoutineEvent, c.RoutineRun, c.RunDispatch,
		c.RuntimeControl, c.ScheduledItem, c.WorkItem,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.IdempotencyKey, c.OutboxEntry, c.PluginEvent, c.PluginInstance, c.QueueLane,
		c.QueueMessage, c.Routine, c.RoutineEvent, c.RoutineRun, c.RunDispatch,
		c.RuntimeControl, c.ScheduledItem, c.WorkItem,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IdempotencyKeyMutation:
		return c.IdempotencyKey.mutate(ctx, m)
	case *OutboxEntryMutation:
		return c.OutboxEntry.mutate(ctx, m)
	case *PluginEventMutation:
		return c.PluginEvent.mutate(ctx, m)
	case *PluginInstanceMutation:
		return c.PluginInstance.mutate(ctx, m)
	case *QueueLaneMutation:
		return c.QueueLane.mutate(ctx, m)
	case *QueueMessageMutation:
		return c.QueueMessage.mutate(ctx, m)
	case *RoutineMutation:
		return c.Routine.mutate(ctx, m)
	case *RoutineEventMutation:
		return c.RoutineEvent.mutate(ctx, m)
	case *RoutineRunMutation:
		return c.RoutineRun.mutate(ctx, m)
	case *RunDispatchMutation:
		return c.RunDispatch.mutate(ctx, m)
	case *RuntimeControlMutation:
		return c.RuntimeControl.mutate(ctx, m)
	case *ScheduledItemMutation:
		return c.ScheduledItem.mutate(ctx, m)
	case *WorkItemMutation:
		return c.WorkItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IdempotencyKeyClient is a client for the IdempotencyKey schema.
type IdempotencyKeyClient struct {
	config
}

// NewIdempotencyKeyClient returns a client for the IdempotencyKey from the given config.
func NewIdempotencyKeyClient(c config) *IdempotencyKeyClient {
	return &IdempotencyKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `idempotencykey.Hooks(f(g(h())))`.
func (c *IdempotencyKeyClient) Use(hooks ...Hook) {
	c.hooks.IdempotencyKey = append(c.hooks.IdempotencyKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `idempotencykey.Intercept(f(g(h())))`.
func (c *IdempotencyKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.IdempotencyKey = append(c.inters.IdempotencyKey, interceptors...)
}

// Create returns a builder for creating a IdempotencyKey entity.
func (c *IdempotencyKeyClient) Create() *IdempotencyKeyCreate {
	mutation := newIdempotencyKeyMutation(c.config, OpCreate)
	return &IdempotencyKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IdempotencyKey entities.
func (c *IdempotencyKeyClient) CreateBulk(builders ...*IdempotencyKeyCreate) *IdempotencyKeyCreateBulk {
	return &IdempotencyKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdempotencyKeyClient) MapCreateBulk(slice any, setFunc func(*IdempotencyKeyCreate, int)) *IdempotencyKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdempotencyKeyCreateBulk{err: fmt.Errorf("calling to IdempotencyKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdempotencyKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdempotencyKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Update() *IdempotencyKeyUpdate {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdate)
	return &IdempotencyKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdempotencyKeyClient) UpdateOne(_m *IdempotencyKey) *IdempotencyKeyUpdateOne {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdateOne, withIdempotencyKey(_m))
	return &IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdempotencyKeyClient) UpdateOneID(id string) *IdempotencyKeyUpdateOne {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdateOne, withIdempotencyKeyID(id))
	return &IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Delete() *IdempotencyKeyDelete {
	mutation := newIdempotencyKeyMutation(c.config, OpDelete)
	return &IdempotencyKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdempotencyKeyClient) DeleteOne(_m *IdempotencyKey) *IdempotencyKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdempotencyKeyClient) DeleteOneID(id string) *IdempotencyKeyDeleteOne {
	builder := c.Delete().Where(idempotencykey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdempotencyKeyDeleteOne{builder}
}

// Query returns a query builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Query() *IdempotencyKeyQuery {
	return &IdempotencyKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdempotencyKey},
		inters: c.Interceptors(),
	}
}

// Get returns a IdempotencyKey entity by its id.
func (c *IdempotencyKeyClient) Get(ctx context.Context, id string) (*IdempotencyKey, error) {
	return c.Query().Where(idempotencykey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdempotencyKeyClient) GetX(ctx context.Context, id string) *IdempotencyKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IdempotencyKeyClient) Hooks() []Hook {
	return c.hooks.IdempotencyKey
}

// Interceptors returns the client interceptors.
func (c *IdempotencyKeyClient) Interceptors() []Interceptor {
	return c.inters.IdempotencyKey
}

func (c *IdempotencyKeyClient) mutate(ctx context.Context, m *IdempotencyKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdempotencyKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdempotencyKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdempotencyKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IdempotencyKey mutation op: %q", m.Op())
	}
}

// OutboxEntryClient is a client for the OutboxEntry schema.
type OutboxEntryClient struct {
	config
}

// NewOutboxEntryClient returns a client for the OutboxEntry from the given config.
func NewOutboxEntryClient(c config) *OutboxEntryClient {
	return &OutboxEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxentry.Hooks(f(g(h())))`.
func (c *OutboxEntryClient) Use(hooks ...Hook) {
	c.hooks.OutboxEntry = append(c.hooks.OutboxEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxentry.Intercept(f(g(h())))`.
func (c *OutboxEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxEntry = append(c.inters.OutboxEntry, interceptors...)
}

// Create returns a builder for creating a OutboxEntry entity.
func (c *OutboxEntryClient) Create() *OutboxEntryCreate {
	mutation := newOutboxEntryMutation(c.config, OpCreate)
	return &OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxEntry entities.
func (c *OutboxEntryClient) CreateBulk(builders ...*OutboxEntryCreate) *OutboxEntryCreateBulk {
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxEntryClient) MapCreateBulk(slice any, setFunc func(*OutboxEntryCreate, int)) *OutboxEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxEntryCreateBulk{err: fmt.Errorf("calling to OutboxEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxEntry.
func (c *OutboxEntryClient) Update() *OutboxEntryUpdate {
	mutation := newOutboxEntryMutation(c.config, OpUpdate)
	return &OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxEntryClient) UpdateOne(_m *OutboxEntry) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntry(_m))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxEntryClient) UpdateOneID(id string) *OutboxEntryUpdateOne {
	mutation := newOutboxEntryMutation(c.config, OpUpdateOne, withOutboxEntryID(id))
	return &OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxEntry.
func (c *OutboxEntryClient) Delete() *OutboxEntryDelete {
	mutation := newOutboxEntryMutation(c.config, OpDelete)
	return &OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxEntryClient) DeleteOne(_m *OutboxEntry) *OutboxEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxEntryClient) DeleteOneID(id string) *OutboxEntryDeleteOne {
	builder := c.Delete().Where(outboxentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxEntryDeleteOne{builder}
}

// Query returns a query builder for OutboxEntry.
func (c *OutboxEntryClient) Query() *OutboxEntryQuery {
	return &OutboxEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxEntry entity by its id.
func (c *OutboxEntryClient) Get(ctx context.Context, id string) (*OutboxEntry, error) {
	return c.Query().Where(outboxentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxEntryClient) GetX(ctx context.Context, id string) *OutboxEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutboxEntryClient) Hooks() []Hook {
	return c.hooks.OutboxEntry
}

// Interceptors returns the client interceptors.
func (c *OutboxEntryClient) Interceptors() []Interceptor {
	return c.inters.OutboxEntry
}

func (c *OutboxEntryClient) mutate(ctx context.Context, m *OutboxEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboxEntry mutation op: %q", m.Op())
	}
}

// PluginEventClient is a client for the PluginEvent schema.
type PluginEventClient struct {
	config
}

// NewPluginEventClient returns a client for the PluginEvent from the given config.
func NewPluginEventClient(c config) *PluginEventClient {
	return &PluginEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pluginevent.Hooks(f(g(h())))`.
func (c *PluginEventClient) Use(hooks ...Hook) {
	c.hooks.PluginEvent = append(c.hooks.PluginEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pluginevent.Intercept(f(g(h())))`.
func (c *PluginEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PluginEvent = append(c.inters.PluginEvent, interceptors...)
}

// Create returns a builder for creating a PluginEvent entity.
func (c *PluginEventClient) Create() *PluginEventCreate {
	mutation := newPluginEventMutation(c.config, OpCreate)
	return &PluginEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PluginEvent entities.
func (c *PluginEventClient) CreateBulk(builders ...*PluginEventCreate) *PluginEventCreateBulk {
	return &PluginEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PluginEventClient) MapCreateBulk(slice any, setFunc func(*PluginEventCreate, int)) *PluginEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PluginEventCreateBulk{err: fmt.Errorf("calling to PluginEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PluginEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PluginEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PluginEvent.
func (c *PluginEventClient) Update() *PluginEventUpdate {
	mutation := newPluginEventMutation(c.config, OpUpdate)
	return &PluginEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PluginEventClient) UpdateOne(_m *PluginEvent) *PluginEventUpdateOne {
	mutation := newPluginEventMutation(c.config, OpUpdateOne, withPluginEvent(_m))
	return &PluginEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PluginEventClient) UpdateOneID(id string) *PluginEventUpdateOne {
	mutation := newPluginEventMutation(c.config, OpUpdateOne, withPluginEventID(id))
	return &PluginEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PluginEvent.
func (c *PluginEventClient) Delete() *PluginEventDelete {
	mutation := newPluginEventMutation(c.config, OpDelete)
	return &PluginEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PluginEventClient) DeleteOne(_m *PluginEvent) *PluginEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PluginEventClient) DeleteOneID(id string) *PluginEventDeleteOne {
	builder := c.Delete().Where(pluginevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PluginEventDeleteOne{builder}
}

// Query returns a query builder for PluginEvent.
func (c *PluginEventClient) Query() *PluginEventQuery {
	return &PluginEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePluginEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PluginEvent entity by its id.
func (c *PluginEventClient) Get(ctx context.Context, id string) (*PluginEvent, error) {
	return c.Query().Where(pluginevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PluginEventClient) GetX(ctx context.Context, id string) *PluginEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PluginEventClient) Hooks() []Hook {
	return c.hooks.PluginEvent
}

// Interceptors returns the client interceptors.
func (c *PluginEventClient) Interceptors() []Interceptor {
	return c.inters.PluginEvent
}

func (c *PluginEventClient) mutate(ctx context.Context, m *PluginEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PluginEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PluginEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PluginEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PluginEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PluginEvent mutation op: %q", m.Op())
	}
}

// PluginInstanceClient is a client for the PluginInstance schema.
type PluginInstanceClient struct {
	config
}

// NewPluginInstanceClient returns a client for the PluginInstance from the given config.
func NewPluginInstanceClient(c config) *PluginInstanceClient {
	return &PluginInstanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plugininstance.Hooks(f(g(h())))`.
func (c *PluginInstanceClient) Use(hooks ...Hook) {
	c.hooks.PluginInstance = append(c.hooks.PluginInstance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plugininstance.Intercept(f(g(h())))`.
func (c *PluginInstanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.PluginInstance = append(c.inters.PluginInstance, interceptors...)
}

// Create returns a builder for creating a PluginInstance entity.
func (c *PluginInstanceClient) Create() *PluginInstanceCreate {
	mutation := newPluginInstanceMutation(c.config, OpCreate)
	return &PluginInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PluginInstance entities.
func (c *PluginInstanceClient) CreateBulk(builders ...*PluginInstanceCreate) *PluginInstanceCreateBulk {
	return &PluginInstanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PluginInstanceClient) MapCreateBulk(slice any, setFunc func(*PluginInstanceCreate, int)) *PluginInstanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PluginInstanceCreateBulk{err: fmt.Errorf("calling to PluginInstanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PluginInstanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PluginInstanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PluginInstance.
func (c *PluginInstanceClient) Update() *PluginInstanceUpdate {
	mutation := newPluginInstanceMutation(c.config, OpUpdate)
	return &PluginInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PluginInstanceClient) UpdateOne(_m *PluginInstance) *PluginInstanceUpdateOne {
	mutation := newPluginInstanceMutation(c.config, OpUpdateOne, withPluginInstance(_m))
	return &PluginInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PluginInstanceClient) UpdateOneID(id string) *PluginInstanceUpdateOne {
	mutation := newPluginInstanceMutation(c.config, OpUpdateOne, withPluginInstanceID(id))
	return &PluginInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PluginInstance.
func (c *PluginInstanceClient) Delete() *PluginInstanceDelete {
	mutation := newPluginInstanceMutation(c.config, OpDelete)
	return &PluginInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PluginInstanceClient) DeleteOne(_m *PluginInstance) *PluginInstanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PluginInstanceClient) DeleteOneID(id string) *PluginInstanceDeleteOne {
	builder := c.Delete().Where(plugininstance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PluginInstanceDeleteOne{builder}
}

// Query returns a query builder for PluginInstance.
func (c *PluginInstanceClient) Query() *PluginInstanceQuery {
	return &PluginInstanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePluginInstance},
		inters: c.Interceptors(),
	}
}

// Get returns a PluginInstance entity by its id.
func (c *PluginInstanceClient) Get(ctx context.Context, id string) (*PluginInstance, error) {
	return c.Query().Where(plugininstance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PluginInstanceClient) GetX(ctx context.Context, id string) *PluginInstance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PluginInstanceClient) Hooks() []Hook {
	return c.hooks.PluginInstance
}

// Interceptors returns the client interceptors.
func (c *PluginInstanceClient) Interceptors() []Interceptor {
	return c.inters.PluginInstance
}

func (c *PluginInstanceClient) mutate(ctx context.Context, m *PluginInstanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PluginInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PluginInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PluginInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PluginInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PluginInstance mutation op: %q", m.Op())
	}
}

// QueueLaneClient is a client for the QueueLane schema.
type QueueLaneClient struct {
	config
}

// NewQueueLaneClient returns a client for the QueueLane from the given config.
func NewQueueLaneClient(c config) *QueueLaneClient {
	return &QueueLaneClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuelane.Hooks(f(g(h())))`.
func (c *QueueLaneClient) Use(hooks ...Hook) {
	c.hooks.QueueLane = append(c.hooks.QueueLane, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuelane.Intercept(f(g(h())))`.
func (c *QueueLaneClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueLane = append(c.inters.QueueLane, interceptors...)
}

// Create returns a builder for creating a QueueLane entity.
func (c *QueueLaneClient) Create() *QueueLaneCreate {
	mutation := newQueueLaneMutation(c.config, OpCreate)
	return &QueueLaneCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueLane entities.
func (c *QueueLaneClient) CreateBulk(builders ...*QueueLaneCreate) *QueueLaneCreateBulk {
	return &QueueLaneCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueLaneClient) MapCreateBulk(slice any, setFunc func(*QueueLaneCreate, int)) *QueueLaneCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueLaneCreateBulk{err: fmt.Errorf("calling to QueueLaneClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueLaneCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueLaneCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueLane.
func (c *QueueLaneClient) Update() *QueueLaneUpdate {
	mutation := newQueueLaneMutation(c.config, OpUpdate)
	return &QueueLaneUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueLaneClient) UpdateOne(_m *QueueLane) *QueueLaneUpdateOne {
	mutation := newQueueLaneMutation(c.config, OpUpdateOne, withQueueLane(_m))
	return &QueueLaneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueLaneClient) UpdateOneID(id string) *QueueLaneUpdateOne {
	mutation := newQueueLaneMutation(c.config, OpUpdateOne, withQueueLaneID(id))
	return &QueueLaneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueLane.
func (c *QueueLaneClient) Delete() *QueueLaneDelete {
	mutation := newQueueLaneMutation(c.config, OpDelete)
	return &QueueLaneDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueLaneClient) DeleteOne(_m *QueueLane) *QueueLaneDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueLaneClient) DeleteOneID(id string) *QueueLaneDeleteOne {
	builder := c.Delete().Where(queuelane.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueLaneDeleteOne{builder}
}

// Query returns a query builder for QueueLane.
func (c *QueueLaneClient) Query() *QueueLaneQuery {
	return &QueueLaneQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueLane},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueLane entity by its id.
func (c *QueueLaneClient) Get(ctx context.Context, id string) (*QueueLane, error) {
	return c.Query().Where(queuelane.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueLaneClient) GetX(ctx context.Context, id string) *QueueLane {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueLaneClient) Hooks() []Hook {
	return c.hooks.QueueLane
}

// Interceptors returns the client interceptors.
func (c *QueueLaneClient) Interceptors() []Interceptor {
	return c.inters.QueueLane
}

func (c *QueueLaneClient) mutate(ctx context.Context, m *QueueLaneMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueLaneCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueLaneUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueLaneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueLaneDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueLane mutation op: %q", m.Op())
	}
}

// QueueMessageClient is a client for the QueueMessage schema.
type QueueMessageClient struct {
	config
}

// NewQueueMessageClient returns a client for the QueueMessage from the given config.
func NewQueueMessageClient(c config) *QueueMessageClient {
	return &QueueMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuemessage.Hooks(f(g(h())))`.
func (c *QueueMessageClient) Use(hooks ...Hook) {
	c.hooks.QueueMessage = append(c.hooks.QueueMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuemessage.Intercept(f(g(h())))`.
func (c *QueueMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueMessage = append(c.inters.QueueMessage, interceptors...)
}

// Create returns a builder for creating a QueueMessage entity.
func (c *QueueMessageClient) Create() *QueueMessageCreate {
	mutation := newQueueMessageMutation(c.config, OpCreate)
	return &QueueMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueMessage entities.
func (c *QueueMessageClient) CreateBulk(builders ...*QueueMessageCreate) *QueueMessageCreateBulk {
	return &QueueMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueMessageClient) MapCreateBulk(slice any, setFunc func(*QueueMessageCreate, int)) *QueueMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueMessageCreateBulk{err: fmt.Errorf("calling to QueueMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueMessage.
func (c *QueueMessageClient) Update() *QueueMessageUpdate {
	mutation := newQueueMessageMutation(c.config, OpUpdate)
	return &QueueMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueMessageClient) UpdateOne(_m *QueueMessage) *QueueMessageUpdateOne {
	mutation := newQueueMessageMutation(c.config, OpUpdateOne, withQueueMessage(_m))
	return &QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueMessageClient) UpdateOneID(id string) *QueueMessageUpdateOne {
	mutation := newQueueMessageMutation(c.config, OpUpdateOne, withQueueMessageID(id))
	return &QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueMessage.
func (c *QueueMessageClient) Delete() *QueueMessageDelete {
	mutation := newQueueMessageMutation(c.config, OpDelete)
	return &QueueMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueMessageClient) DeleteOne(_m *QueueMessage) *QueueMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueMessageClient) DeleteOneID(id string) *QueueMessageDeleteOne {
	builder := c.Delete().Where(queuemessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueMessageDeleteOne{builder}
}

// Query returns a query builder for QueueMessage.
func (c *QueueMessageClient) Query() *QueueMessageQuery {
	return &QueueMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueMessage entity by its id.
func (c *QueueMessageClient) Get(ctx context.Context, id string) (*QueueMessage, error) {
	return c.Query().Where(queuemessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueMessageClient) GetX(ctx context.Context, id string) *QueueMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueMessageClient) Hooks() []Hook {
	return c.hooks.QueueMessage
}

// Interceptors returns the client interceptors.
func (c *QueueMessageClient) Interceptors() []Interceptor {
	return c.inters.QueueMessage
}

func (c *QueueMessageClient) mutate(ctx context.Context, m *QueueMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueMessage mutation op: %q", m.Op())
	}
}

// RoutineClient is a client for the Routine schema.
type RoutineClient struct {
	config
}

// NewRoutineClient returns a client for the Routine from the given config.
func NewRoutineClient(c config) *RoutineClient {
	return &RoutineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `routine.Hooks(f(g(h())))`.
func (c *RoutineClient) Use(hooks ...Hook) {
	c.hooks.Routine = append(c.hooks.Routine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `routine.Intercept(f(g(h())))`.
func (c *RoutineClient) Intercept(interceptors ...Interceptor) {
	c.inters.Routine = append(c.inters.Routine, interceptors...)
}

// Create returns a builder for creating a Routine entity.
func (c *RoutineClient) Create() *RoutineCreate {
	mutation := newRoutineMutation(c.config, OpCreate)
	return &RoutineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Routine entities.
func (c *RoutineClient) CreateBulk(builders ...*RoutineCreate) *RoutineCreateBulk {
	return &RoutineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoutineClient) MapCreateBulk(slice any, setFunc func(*RoutineCreate, int)) *RoutineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoutineCreateBulk{err: fmt.Errorf("calling to RoutineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoutineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoutineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Routine.
func (c *RoutineClient) Update() *RoutineUpdate {
	mutation := newRoutineMutation(c.config, OpUpdate)
	return &RoutineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoutineClient) UpdateOne(_m *Routine) *RoutineUpdateOne {
	mutation := newRoutineMutation(c.config, OpUpdateOne, withRoutine(_m))
	return &RoutineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoutineClient) UpdateOneID(id string) *RoutineUpdateOne {
	mutation := newRoutineMutation(c.config, OpUpdateOne, withRoutineID(id))
	return &RoutineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Routine.
func (c *RoutineClient) Delete() *RoutineDelete {
	mutation := newRoutineMutation(c.config, OpDelete)
	return &RoutineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoutineClient) DeleteOne(_m *Routine) *RoutineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoutineClient) DeleteOneID(id string) *RoutineDeleteOne {
	builder := c.Delete().Where(routine.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoutineDeleteOne{builder}
}

// Query returns a query builder for Routine.
func (c *RoutineClient) Query() *RoutineQuery {
	return &RoutineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoutine},
		inters: c.Interceptors(),
	}
}

// Get returns a Routine entity by its id.
func (c *RoutineClient) Get(ctx context.Context, id string) (*Routine, error) {
	return c.Query().Where(routine.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoutineClient) GetX(ctx context.Context, id string) *Routine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoutineClient) Hooks() []Hook {
	return c.hooks.Routine
}

// Interceptors returns the client interceptors.
func (c *RoutineClient) Interceptors() []Interceptor {
	return c.inters.Routine
}

func (c *RoutineClient) mutate(ctx context.Context, m *RoutineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoutineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoutineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoutineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoutineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Routine mutation op: %q", m.Op())
	}
}

// RoutineEventClient is a client for the RoutineEvent schema.
type RoutineEventClient struct {
	config
}

// NewRoutineEventClient returns a client for the RoutineEvent from the given config.
func NewRoutineEventClient(c config) *RoutineEventClient {
	return &RoutineEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `routineevent.Hooks(f(g(h())))`.
func (c *RoutineEventClient) Use(hooks ...Hook) {
	c.hooks.RoutineEvent = append(c.hooks.RoutineEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `routineevent.Intercept(f(g(h())))`.
func (c *RoutineEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoutineEvent = append(c.inters.RoutineEvent, interceptors...)
}

// Create returns a builder for creating a RoutineEvent entity.
func (c *RoutineEventClient) Create() *RoutineEventCreate {
	mutation := newRoutineEventMutation(c.config, OpCreate)
	return &RoutineEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoutineEvent entities.
func (c *RoutineEventClient) CreateBulk(builders ...*RoutineEventCreate) *RoutineEventCreateBulk {
	return &RoutineEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoutineEventClient) MapCreateBulk(slice any, setFunc func(*RoutineEventCreate, int)) *RoutineEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoutineEventCreateBulk{err: fmt.Errorf("calling to RoutineEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoutineEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoutineEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoutineEvent.
func (c *RoutineEventClient) Update() *RoutineEventUpdate {
	mutation := newRoutineEventMutation(c.config, OpUpdate)
	return &RoutineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoutineEventClient) UpdateOne(_m *RoutineEvent) *RoutineEventUpdateOne {
	mutation := newRoutineEventMutation(c.config, OpUpdateOne, withRoutineEvent(_m))
	return &RoutineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoutineEventClient) UpdateOneID(id string) *RoutineEventUpdateOne {
	mutation := newRoutineEventMutation(c.config, OpUpdateOne, withRoutineEventID(id))
	return &RoutineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoutineEvent.
func (c *RoutineEventClient) Delete() *RoutineEventDelete {
	mutation := newRoutineEventMutation(c.config, OpDelete)
	return &RoutineEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoutineEventClient) DeleteOne(_m *RoutineEvent) *RoutineEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoutineEventClient) DeleteOneID(id string) *RoutineEventDeleteOne {
	builder := c.Delete().Where(routineevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoutineEventDeleteOne{builder}
}

// Query returns a query builder for RoutineEvent.
func (c *RoutineEventClient) Query() *RoutineEventQuery {
	return &RoutineEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoutineEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RoutineEvent entity by its id.
func (c *RoutineEventClient) Get(ctx context.Context, id string) (*RoutineEvent, error) {
	return c.Query().Where(routineevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoutineEventClient) GetX(ctx context.Context, id string) *RoutineEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoutineEventClient) Hooks() []Hook {
	return c.hooks.RoutineEvent
}

// Interceptors returns the client interceptors.
func (c *RoutineEventClient) Interceptors() []Interceptor {
	return c.inters.RoutineEvent
}

func (c *RoutineEventClient) mutate(ctx context.Context, m *RoutineEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoutineEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoutineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoutineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoutineEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoutineEvent mutation op: %q", m.Op())
	}
}

// RoutineRunClient is a client for the RoutineRun schema.
type RoutineRunClient struct {
	config
}

// NewRoutineRunClient returns a client for the RoutineRun from the given config.
func NewRoutineRunClient(c config) *RoutineRunClient {
	return &RoutineRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `routinerun.Hooks(f(g(h())))`.
func (c *RoutineRunClient) Use(hooks ...Hook) {
	c.hooks.RoutineRun = append(c.hooks.RoutineRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `routinerun.Intercept(f(g(h())))`.
func (c *RoutineRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoutineRun = append(c.inters.RoutineRun, interceptors...)
}

// Create returns a builder for creating a RoutineRun entity.
func (c *RoutineRunClient) Create() *RoutineRunCreate {
	mutation := newRoutineRunMutation(c.config, OpCreate)
	return &RoutineRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoutineRun entities.
func (c *RoutineRunClient) CreateBulk(builders ...*RoutineRunCreate) *RoutineRunCreateBulk {
	return &RoutineRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoutineRunClient) MapCreateBulk(slice any, setFunc func(*RoutineRunCreate, int)) *RoutineRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoutineRunCreateBulk{err: fmt.Errorf("calling to RoutineRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoutineRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoutineRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoutineRun.
func (c *RoutineRunClient) Update() *RoutineRunUpdate {
	mutation := newRoutineRunMutation(c.config, OpUpdate)
	return &RoutineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoutineRunClient) UpdateOne(_m *RoutineRun) *RoutineRunUpdateOne {
	mutation := newRoutineRunMutation(c.config, OpUpdateOne, withRoutineRun(_m))
	return &RoutineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoutineRunClient) UpdateOneID(id string) *RoutineRunUpdateOne {
	mutation := newRoutineRunMutation(c.config, OpUpdateOne, withRoutineRunID(id))
	return &RoutineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoutineRun.
func (c *RoutineRunClient) Delete() *RoutineRunDelete {
	mutation := newRoutineRunMutation(c.config, OpDelete)
	return &RoutineRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoutineRunClient) DeleteOne(_m *RoutineRun) *RoutineRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoutineRunClient) DeleteOneID(id string) *RoutineRunDeleteOne {
	builder := c.Delete().Where(routinerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoutineRunDeleteOne{builder}
}

// Query returns a query builder for RoutineRun.
func (c *RoutineRunClient) Query() *RoutineRunQuery {
	return &RoutineRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoutineRun},
		inters: c.Interceptors(),
	}
}

// Get returns a RoutineRun entity by its id.
func (c *RoutineRunClient) Get(ctx context.Context, id string) (*RoutineRun, error) {
	return c.Query().Where(routinerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoutineRunClient) GetX(ctx context.Context, id string) *RoutineRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoutineRunClient) Hooks() []Hook {
	return c.hooks.RoutineRun
}

// Interceptors returns the client interceptors.
func (c *RoutineRunClient) Interceptors() []Interceptor {
	return c.inters.RoutineRun
}

func (c *RoutineRunClient) mutate(ctx context.Context, m *RoutineRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoutineRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoutineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoutineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoutineRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoutineRun mutation op: %q", m.Op())
	}
}

// RunDispatchClient is a client for the RunDispatch schema.
type RunDispatchClient struct {
	config
}

// NewRunDispatchClient returns a client for the RunDispatch from the given config.
func NewRunDispatchClient(c config) *RunDispatchClient {
	return &RunDispatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rundispatch.Hooks(f(g(h())))`.
func (c *RunDispatchClient) Use(hooks ...Hook) {
	c.hooks.RunDispatch = append(c.hooks.RunDispatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rundispatch.Intercept(f(g(h())))`.
func (c *RunDispatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunDispatch = append(c.inters.RunDispatch, interceptors...)
}

// Create returns a builder for creating a RunDispatch entity.
func (c *RunDispatchClient) Create() *RunDispatchCreate {
	mutation := newRunDispatchMutation(c.config, OpCreate)
	return &RunDispatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunDispatch entities.
func (c *RunDispatchClient) CreateBulk(builders ...*RunDispatchCreate) *RunDispatchCreateBulk {
	return &RunDispatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunDispatchClient) MapCreateBulk(slice any, setFunc func(*RunDispatchCreate, int)) *RunDispatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunDispatchCreateBulk{err: fmt.Errorf("calling to RunDispatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunDispatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunDispatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunDispatch.
func (c *RunDispatchClient) Update() *RunDispatchUpdate {
	mutation := newRunDispatchMutation(c.config, OpUpdate)
	return &RunDispatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunDispatchClient) UpdateOne(_m *RunDispatch) *RunDispatchUpdateOne {
	mutation := newRunDispatchMutation(c.config, OpUpdateOne, withRunDispatch(_m))
	return &RunDispatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunDispatchClient) UpdateOneID(id string) *RunDispatchUpdateOne {
	mutation := newRunDispatchMutation(c.config, OpUpdateOne, withRunDispatchID(id))
	return &RunDispatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunDispatch.
func (c *RunDispatchClient) Delete() *RunDispatchDelete {
	mutation := newRunDispatchMutation(c.config, OpDelete)
	return &RunDispatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunDispatchClient) DeleteOne(_m *RunDispatch) *RunDispatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunDispatchClient) DeleteOneID(id string) *RunDispatchDeleteOne {
	builder := c.Delete().Where(rundispatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDispatchDeleteOne{builder}
}

// Query returns a query builder for RunDispatch.
func (c *RunDispatchClient) Query() *RunDispatchQuery {
	return &RunDispatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunDispatch},
		inters: c.Interceptors(),
	}
}

// Get returns a RunDispatch entity by its id.
func (c *RunDispatchClient) Get(ctx context.Context, id string) (*RunDispatch, error) {
	return c.Query().Where(rundispatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunDispatchClient) GetX(ctx context.Context, id string) *RunDispatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunDispatchClient) Hooks() []Hook {
	return c.hooks.RunDispatch
}

// Interceptors returns the client interceptors.
func (c *RunDispatchClient) Interceptors() []Interceptor {
	return c.inters.RunDispatch
}

func (c *RunDispatchClient) mutate(ctx context.Context, m *RunDispatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunDispatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunDispatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunDispatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDispatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunDispatch mutation op: %q", m.Op())
	}
}

// RuntimeControlClient is a client for the RuntimeControl schema.
type RuntimeControlClient struct {
	config
}

// NewRuntimeControlClient returns a client for the RuntimeControl from the given config.
func NewRuntimeControlClient(c config) *RuntimeControlClient {
	return &RuntimeControlClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runtimecontrol.Hooks(f(g(h())))`.
func (c *RuntimeControlClient) Use(hooks ...Hook) {
	c.hooks.RuntimeControl = append(c.hooks.RuntimeControl, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runtimecontrol.Intercept(f(g(h())))`.
func (c *RuntimeControlClient) Intercept(interceptors ...Interceptor) {
	c.inters.RuntimeControl = append(c.inters.RuntimeControl, interceptors...)
}

// Create returns a builder for creating a RuntimeControl entity.
func (c *RuntimeControlClient) Create() *RuntimeControlCreate {
	mutation := newRuntimeControlMutation(c.config, OpCreate)
	return &RuntimeControlCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RuntimeControl entities.
func (c *RuntimeControlClient) CreateBulk(builders ...*RuntimeControlCreate) *RuntimeControlCreateBulk {
	return &RuntimeControlCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuntimeControlClient) MapCreateBulk(slice any, setFunc func(*RuntimeControlCreate, int)) *RuntimeControlCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuntimeControlCreateBulk{err: fmt.Errorf("calling to RuntimeControlClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuntimeControlCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuntimeControlCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RuntimeControl.
func (c *RuntimeControlClient) Update() *RuntimeControlUpdate {
	mutation := newRuntimeControlMutation(c.config, OpUpdate)
	return &RuntimeControlUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuntimeControlClient) UpdateOne(_m *RuntimeControl) *RuntimeControlUpdateOne {
	mutation := newRuntimeControlMutation(c.config, OpUpdateOne, withRuntimeControl(_m))
	return &RuntimeControlUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuntimeControlClient) UpdateOneID(id string) *RuntimeControlUpdateOne {
	mutation := newRuntimeControlMutation(c.config, OpUpdateOne, withRuntimeControlID(id))
	return &RuntimeControlUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RuntimeControl.
func (c *RuntimeControlClient) Delete() *RuntimeControlDelete {
	mutation := newRuntimeControlMutation(c.config, OpDelete)
	return &RuntimeControlDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuntimeControlClient) DeleteOne(_m *RuntimeControl) *RuntimeControlDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuntimeControlClient) DeleteOneID(id string) *RuntimeControlDeleteOne {
	builder := c.Delete().Where(runtimecontrol.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuntimeControlDeleteOne{builder}
}

// Query returns a query builder for RuntimeControl.
func (c *RuntimeControlClient) Query() *RuntimeControlQuery {
	return &RuntimeControlQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRuntimeControl},
		inters: c.Interceptors(),
	}
}

// Get returns a RuntimeControl entity by its id.
func (c *RuntimeControlClient) Get(ctx context.Context, id string) (*RuntimeControl, error) {
	return c.Query().Where(runtimecontrol.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuntimeControlClient) GetX(ctx context.Context, id string) *RuntimeControl {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RuntimeControlClient) Hooks() []Hook {
	return c.hooks.RuntimeControl
}

// Interceptors returns the client interceptors.
func (c *RuntimeControlClient) Interceptors() []Interceptor {
	return c.inters.RuntimeControl
}

func (c *RuntimeControlClient) mutate(ctx context.Context, m *RuntimeControlMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuntimeControlCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuntimeControlUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuntimeControlUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuntimeControlDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RuntimeControl mutation op: %q", m.Op())
	}
}

// ScheduledItemClient is a client for the ScheduledItem schema.
type ScheduledItemClient struct {
	config
}

// NewScheduledItemClient returns a client for the ScheduledItem from the given config.
func NewScheduledItemClient(c config) *ScheduledItemClient {
	return &ScheduledItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduleditem.Hooks(f(g(h())))`.
func (c *ScheduledItemClient) Use(hooks ...Hook) {
	c.hooks.ScheduledItem = append(c.hooks.ScheduledItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduleditem.Intercept(f(g(h())))`.
func (c *ScheduledItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledItem = append(c.inters.ScheduledItem, interceptors...)
}

// Create returns a builder for creating a ScheduledItem entity.
func (c *ScheduledItemClient) Create() *ScheduledItemCreate {
	mutation := newScheduledItemMutation(c.config, OpCreate)
	return &ScheduledItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledItem entities.
func (c *ScheduledItemClient) CreateBulk(builders ...*ScheduledItemCreate) *ScheduledItemCreateBulk {
	return &ScheduledItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledItemClient) MapCreateBulk(slice any, setFunc func(*ScheduledItemCreate, int)) *ScheduledItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledItemCreateBulk{err: fmt.Errorf("calling to ScheduledItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledItem.
func (c *ScheduledItemClient) Update() *ScheduledItemUpdate {
	mutation := newScheduledItemMutation(c.config, OpUpdate)
	return &ScheduledItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledItemClient) UpdateOne(_m *ScheduledItem) *ScheduledItemUpdateOne {
	mutation := newScheduledItemMutation(c.config, OpUpdateOne, withScheduledItem(_m))
	return &ScheduledItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledItemClient) UpdateOneID(id string) *ScheduledItemUpdateOne {
	mutation := newScheduledItemMutation(c.config, OpUpdateOne, withScheduledItemID(id))
	return &ScheduledItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledItem.
func (c *ScheduledItemClient) Delete() *ScheduledItemDelete {
	mutation := newScheduledItemMutation(c.config, OpDelete)
	return &ScheduledItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledItemClient) DeleteOne(_m *ScheduledItem) *ScheduledItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledItemClient) DeleteOneID(id string) *ScheduledItemDeleteOne {
	builder := c.Delete().Where(scheduleditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledItemDeleteOne{builder}
}

// Query returns a query builder for ScheduledItem.
func (c *ScheduledItemClient) Query() *ScheduledItemQuery {
	return &ScheduledItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledItem entity by its id.
func (c *ScheduledItemClient) Get(ctx context.Context, id string) (*ScheduledItem, error) {
	return c.Query().Where(scheduleditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledItemClient) GetX(ctx context.Context, id string) *ScheduledItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduledItemClient) Hooks() []Hook {
	return c.hooks.ScheduledItem
}

// Interceptors returns the client interceptors.
func (c *ScheduledItemClient) Interceptors() []Interceptor {
	return c.inters.ScheduledItem
}

func (c *ScheduledItemClient) mutate(ctx context.Context, m *ScheduledItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledItem mutation op: %q", m.Op())
	}
}

// WorkItemClient is a client for the WorkItem schema.
type WorkItemClient struct {
	config
}

// NewWorkItemClient returns a client for the WorkItem from the given config.
func NewWorkItemClient(c config) *WorkItemClient {
	return &WorkItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workitem.Hooks(f(g(h())))`.
func (c *WorkItemClient) Use(hooks ...Hook) {
	c.hooks.WorkItem = append(c.hooks.WorkItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workitem.Intercept(f(g(h())))`.
func (c *WorkItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkItem = append(c.inters.WorkItem, interceptors...)
}

// Create returns a builder for creating a WorkItem entity.
func (c *WorkItemClient) Create() *WorkItemCreate {
	mutation := newWorkItemMutation(c.config, OpCreate)
	return &WorkItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkItem entities.
func (c *WorkItemClient) CreateBulk(builders ...*WorkItemCreate) *WorkItemCreateBulk {
	return &WorkItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkItemClient) MapCreateBulk(slice any, setFunc func(*WorkItemCreate, int)) *WorkItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkItemCreateBulk{err: fmt.Errorf("calling to WorkItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkItem.
func (c *WorkItemClient) Update() *WorkItemUpdate {
	mutation := newWorkItemMutation(c.config, OpUpdate)
	return &WorkItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkItemClient) UpdateOne(_m *WorkItem) *WorkItemUpdateOne {
	mutation := newWorkItemMutation(c.config, OpUpdateOne, withWorkItem(_m))
	return &WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkItemClient) UpdateOneID(id string) *WorkItemUpdateOne {
	mutation := newWorkItemMutation(c.config, OpUpdateOne, withWorkItemID(id))
	return &WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkItem.
func (c *WorkItemClient) Delete() *WorkItemDelete {
	mutation := newWorkItemMutation(c.config, OpDelete)
	return &WorkItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkItemClient) DeleteOne(_m *WorkItem) *WorkItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkItemClient) DeleteOneID(id string) *WorkItemDeleteOne {
	builder := c.Delete().Where(workitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkItemDeleteOne{builder}
}

// Query returns a query builder for WorkItem.
func (c *WorkItemClient) Query() *WorkItemQuery {
	return &WorkItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkItem},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkItem entity by its id.
func (c *WorkItemClient) Get(ctx context.Context, id string) (*WorkItem, error) {
	return c.Query().Where(workitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkItemClient) GetX(ctx context.Context, id string) *WorkItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkItemClient) Hooks() []Hook {
	return c.hooks.WorkItem
}

// Interceptors returns the client interceptors.
func (c *WorkItemClient) Interceptors() []Interceptor {
	return c.inters.WorkItem
}

func (c *WorkItemClient) mutate(ctx context.Context, m *WorkItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IdempotencyKey, OutboxEntry, PluginEvent, PluginInstance, QueueLane,
		QueueMessage, Routine, RoutineEvent, RoutineRun, RunDispatch, RuntimeControl,
		ScheduledItem, WorkItem []ent.Hook
	}
	inters struct {
		IdempotencyKey, OutboxEntry, PluginEvent, PluginInstance, QueueLane,
		QueueMessage, Routine, RoutineEvent, RoutineRun, RunDispatch, RuntimeControl,
		ScheduledItem, WorkItem []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
