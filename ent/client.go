// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/civiclens/civiclens/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/actorusername"
	"github.com/civiclens/civiclens/ent/dynamicslug"
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventactorlink"
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/locationcoordinate"
	"github.com/civiclens/civiclens/ent/pipelinerun"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postactor"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Actor is the client for interacting with the Actor builders.
	Actor *ActorClient
	// ActorUsername is the client for interacting with the ActorUsername builders.
	ActorUsername *ActorUsernameClient
	// DynamicSlug is the client for interacting with the DynamicSlug builders.
	DynamicSlug *DynamicSlugClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// EventActorLink is the client for interacting with the EventActorLink builders.
	EventActorLink *EventActorLinkClient
	// EventPostLink is the client for interacting with the EventPostLink builders.
	EventPostLink *EventPostLinkClient
	// LocationCoordinate is the client for interacting with the LocationCoordinate builders.
	LocationCoordinate *LocationCoordinateClient
	// PipelineRun is the client for interacting with the PipelineRun builders.
	PipelineRun *PipelineRunClient
	// Post is the client for interacting with the Post builders.
	Post *PostClient
	// PostActor is the client for interacting with the PostActor builders.
	PostActor *PostActorClient
	// PostUnknownActor is the client for interacting with the PostUnknownActor builders.
	PostUnknownActor *PostUnknownActorClient
	// UnknownActor is the client for interacting with the UnknownActor builders.
	UnknownActor *UnknownActorClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Actor = NewActorClient(c.config)
	c.ActorUsername = NewActorUsernameClient(c.config)
	c.DynamicSlug = NewDynamicSlugClient(c.config)
	c.Event = NewEventClient(c.config)
	c.EventActorLink = NewEventActorLinkClient(c.config)
	c.EventPostLink = NewEventPostLinkClient(c.config)
	c.LocationCoordinate = NewLocationCoordinateClient(c.config)
	c.PipelineRun = NewPipelineRunClient(c.config)
	c.Post = NewPostClient(c.config)
	c.PostActor = NewPostActorClient(c.config)
	c.PostUnknownActor = NewPostUnknownActorClient(c.config)
	c.UnknownActor = NewUnknownActorClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Actor:              NewActorClient(cfg),
		ActorUsername:      NewActorUsernameClient(cfg),
		DynamicSlug:        NewDynamicSlugClient(cfg),
		Event:              NewEventClient(cfg),
		EventActorLink:     NewEventActorLinkClient(cfg),
		EventPostLink:      NewEventPostLinkClient(cfg),
		LocationCoordinate: NewLocationCoordinateClient(cfg),
		PipelineRun:        NewPipelineRunClient(cfg),
		Post:               NewPostClient(cfg),
		PostActor:          NewPostActorClient(cfg),
		PostUnknownActor:   NewPostUnknownActorClient(cfg),
		UnknownActor:       NewUnknownActorClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Actor:              NewActorClient(cfg),
		ActorUsername:      NewActorUsernameClient(cfg),
		DynamicSlug:        NewDynamicSlugClient(cfg),
		Event:              NewEventClient(cfg),
		EventActorLink:     NewEventActorLinkClient(cfg),
		EventPostLink:      NewEventPostLinkClient(cfg),
		LocationCoordinate: NewLocationCoordinateClient(cfg),
		PipelineRun:        NewPipelineRunClient(cfg),
		Post:               NewPostClient(cfg),
		PostActor:          NewPostActorClient(cfg),
		PostUnknownActor:   NewPostUnknownActorClient(cfg),
		UnknownActor:       NewUnknownActorClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Actor.
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
		c.Actor, c.ActorUsername, c.DynamicSlug, c.Event, c.EventActorLink,
		c.EventPostLink, c.LocationCoordinate, c.PipelineRun, c.Post, c.PostActor,
		c.PostUnknownActor, c.UnknownActor,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Actor, c.ActorUsername, c.DynamicSlug, c.Event, c.EventActorLink,
		c.EventPostLink, c.LocationCoordinate, c.PipelineRun, c.Post, c.PostActor,
		c.PostUnknownActor, c.UnknownActor,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActorMutation:
		return c.Actor.mutate(ctx, m)
	case *ActorUsernameMutation:
		return c.ActorUsername.mutate(ctx, m)
	case *DynamicSlugMutation:
		return c.DynamicSlug.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *EventActorLinkMutation:
		return c.EventActorLink.mutate(ctx, m)
	case *EventPostLinkMutation:
		return c.EventPostLink.mutate(ctx, m)
	case *LocationCoordinateMutation:
		return c.LocationCoordinate.mutate(ctx, m)
	case *PipelineRunMutation:
		return c.PipelineRun.mutate(ctx, m)
	case *PostMutation:
		return c.Post.mutate(ctx, m)
	case *PostActorMutation:
		return c.PostActor.mutate(ctx, m)
	case *PostUnknownActorMutation:
		return c.PostUnknownActor.mutate(ctx, m)
	case *UnknownActorMutation:
		return c.UnknownActor.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActorClient is a client for the Actor schema.
type ActorClient struct {
	config
}

// NewActorClient returns a client for the Actor from the given config.
func NewActorClient(c config) *ActorClient {
	return &ActorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actor.Hooks(f(g(h())))`.
func (c *ActorClient) Use(hooks ...Hook) {
	c.hooks.Actor = append(c.hooks.Actor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actor.Intercept(f(g(h())))`.
func (c *ActorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Actor = append(c.inters.Actor, interceptors...)
}

// Create returns a builder for creating a Actor entity.
func (c *ActorClient) Create() *ActorCreate {
	mutation := newActorMutation(c.config, OpCreate)
	return &ActorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Actor entities.
func (c *ActorClient) CreateBulk(builders ...*ActorCreate) *ActorCreateBulk {
	return &ActorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActorClient) MapCreateBulk(slice any, setFunc func(*ActorCreate, int)) *ActorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActorCreateBulk{err: fmt.Errorf("calling to ActorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Actor.
func (c *ActorClient) Update() *ActorUpdate {
	mutation := newActorMutation(c.config, OpUpdate)
	return &ActorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActorClient) UpdateOne(_m *Actor) *ActorUpdateOne {
	mutation := newActorMutation(c.config, OpUpdateOne, withActor(_m))
	return &ActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActorClient) UpdateOneID(id string) *ActorUpdateOne {
	mutation := newActorMutation(c.config, OpUpdateOne, withActorID(id))
	return &ActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Actor.
func (c *ActorClient) Delete() *ActorDelete {
	mutation := newActorMutation(c.config, OpDelete)
	return &ActorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActorClient) DeleteOne(_m *Actor) *ActorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActorClient) DeleteOneID(id string) *ActorDeleteOne {
	builder := c.Delete().Where(actor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActorDeleteOne{builder}
}

// Query returns a query builder for Actor.
func (c *ActorClient) Query() *ActorQuery {
	return &ActorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActor},
		inters: c.Interceptors(),
	}
}

// Get returns a Actor entity by its id.
func (c *ActorClient) Get(ctx context.Context, id string) (*Actor, error) {
	return c.Query().Where(actor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActorClient) GetX(ctx context.Context, id string) *Actor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsernames queries the usernames edge of a Actor.
func (c *ActorClient) QueryUsernames(_m *Actor) *ActorUsernameQuery {
	query := (&ActorUsernameClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(actor.Table, actor.FieldID, id),
			sqlgraph.To(actorusername.Table, actorusername.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, actor.UsernamesTable, actor.UsernamesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPostLinks queries the post_links edge of a Actor.
func (c *ActorClient) QueryPostLinks(_m *Actor) *PostActorQuery {
	query := (&PostActorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(actor.Table, actor.FieldID, id),
			sqlgraph.To(postactor.Table, postactor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, actor.PostLinksTable, actor.PostLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActorClient) Hooks() []Hook {
	return c.hooks.Actor
}

// Interceptors returns the client interceptors.
func (c *ActorClient) Interceptors() []Interceptor {
	return c.inters.Actor
}

func (c *ActorClient) mutate(ctx context.Context, m *ActorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Actor mutation op: %q", m.Op())
	}
}

// ActorUsernameClient is a client for the ActorUsername schema.
type ActorUsernameClient struct {
	config
}

// NewActorUsernameClient returns a client for the ActorUsername from the given config.
func NewActorUsernameClient(c config) *ActorUsernameClient {
	return &ActorUsernameClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actorusername.Hooks(f(g(h())))`.
func (c *ActorUsernameClient) Use(hooks ...Hook) {
	c.hooks.ActorUsername = append(c.hooks.ActorUsername, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actorusername.Intercept(f(g(h())))`.
func (c *ActorUsernameClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActorUsername = append(c.inters.ActorUsername, interceptors...)
}

// Create returns a builder for creating a ActorUsername entity.
func (c *ActorUsernameClient) Create() *ActorUsernameCreate {
	mutation := newActorUsernameMutation(c.config, OpCreate)
	return &ActorUsernameCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActorUsername entities.
func (c *ActorUsernameClient) CreateBulk(builders ...*ActorUsernameCreate) *ActorUsernameCreateBulk {
	return &ActorUsernameCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActorUsernameClient) MapCreateBulk(slice any, setFunc func(*ActorUsernameCreate, int)) *ActorUsernameCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActorUsernameCreateBulk{err: fmt.Errorf("calling to ActorUsernameClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActorUsernameCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActorUsernameCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActorUsername.
func (c *ActorUsernameClient) Update() *ActorUsernameUpdate {
	mutation := newActorUsernameMutation(c.config, OpUpdate)
	return &ActorUsernameUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActorUsernameClient) UpdateOne(_m *ActorUsername) *ActorUsernameUpdateOne {
	mutation := newActorUsernameMutation(c.config, OpUpdateOne, withActorUsername(_m))
	return &ActorUsernameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActorUsernameClient) UpdateOneID(id string) *ActorUsernameUpdateOne {
	mutation := newActorUsernameMutation(c.config, OpUpdateOne, withActorUsernameID(id))
	return &ActorUsernameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActorUsername.
func (c *ActorUsernameClient) Delete() *ActorUsernameDelete {
	mutation := newActorUsernameMutation(c.config, OpDelete)
	return &ActorUsernameDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActorUsernameClient) DeleteOne(_m *ActorUsername) *ActorUsernameDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActorUsernameClient) DeleteOneID(id string) *ActorUsernameDeleteOne {
	builder := c.Delete().Where(actorusername.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActorUsernameDeleteOne{builder}
}

// Query returns a query builder for ActorUsername.
func (c *ActorUsernameClient) Query() *ActorUsernameQuery {
	return &ActorUsernameQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActorUsername},
		inters: c.Interceptors(),
	}
}

// Get returns a ActorUsername entity by its id.
func (c *ActorUsernameClient) Get(ctx context.Context, id string) (*ActorUsername, error) {
	return c.Query().Where(actorusername.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActorUsernameClient) GetX(ctx context.Context, id string) *ActorUsername {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryActor queries the actor edge of a ActorUsername.
func (c *ActorUsernameClient) QueryActor(_m *ActorUsername) *ActorQuery {
	query := (&ActorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(actorusername.Table, actorusername.FieldID, id),
			sqlgraph.To(actor.Table, actor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, actorusername.ActorTable, actorusername.ActorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActorUsernameClient) Hooks() []Hook {
	return c.hooks.ActorUsername
}

// Interceptors returns the client interceptors.
func (c *ActorUsernameClient) Interceptors() []Interceptor {
	return c.inters.ActorUsername
}

func (c *ActorUsernameClient) mutate(ctx context.Context, m *ActorUsernameMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActorUsernameCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActorUsernameUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActorUsernameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActorUsernameDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActorUsername mutation op: %q", m.Op())
	}
}

// DynamicSlugClient is a client for the DynamicSlug schema.
type DynamicSlugClient struct {
	config
}

// NewDynamicSlugClient returns a client for the DynamicSlug from the given config.
func NewDynamicSlugClient(c config) *DynamicSlugClient {
	return &DynamicSlugClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dynamicslug.Hooks(f(g(h())))`.
func (c *DynamicSlugClient) Use(hooks ...Hook) {
	c.hooks.DynamicSlug = append(c.hooks.DynamicSlug, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dynamicslug.Intercept(f(g(h())))`.
func (c *DynamicSlugClient) Intercept(interceptors ...Interceptor) {
	c.inters.DynamicSlug = append(c.inters.DynamicSlug, interceptors...)
}

// Create returns a builder for creating a DynamicSlug entity.
func (c *DynamicSlugClient) Create() *DynamicSlugCreate {
	mutation := newDynamicSlugMutation(c.config, OpCreate)
	return &DynamicSlugCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DynamicSlug entities.
func (c *DynamicSlugClient) CreateBulk(builders ...*DynamicSlugCreate) *DynamicSlugCreateBulk {
	return &DynamicSlugCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DynamicSlugClient) MapCreateBulk(slice any, setFunc func(*DynamicSlugCreate, int)) *DynamicSlugCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DynamicSlugCreateBulk{err: fmt.Errorf("calling to DynamicSlugClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DynamicSlugCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DynamicSlugCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DynamicSlug.
func (c *DynamicSlugClient) Update() *DynamicSlugUpdate {
	mutation := newDynamicSlugMutation(c.config, OpUpdate)
	return &DynamicSlugUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DynamicSlugClient) UpdateOne(_m *DynamicSlug) *DynamicSlugUpdateOne {
	mutation := newDynamicSlugMutation(c.config, OpUpdateOne, withDynamicSlug(_m))
	return &DynamicSlugUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DynamicSlugClient) UpdateOneID(id string) *DynamicSlugUpdateOne {
	mutation := newDynamicSlugMutation(c.config, OpUpdateOne, withDynamicSlugID(id))
	return &DynamicSlugUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DynamicSlug.
func (c *DynamicSlugClient) Delete() *DynamicSlugDelete {
	mutation := newDynamicSlugMutation(c.config, OpDelete)
	return &DynamicSlugDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DynamicSlugClient) DeleteOne(_m *DynamicSlug) *DynamicSlugDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DynamicSlugClient) DeleteOneID(id string) *DynamicSlugDeleteOne {
	builder := c.Delete().Where(dynamicslug.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DynamicSlugDeleteOne{builder}
}

// Query returns a query builder for DynamicSlug.
func (c *DynamicSlugClient) Query() *DynamicSlugQuery {
	return &DynamicSlugQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDynamicSlug},
		inters: c.Interceptors(),
	}
}

// Get returns a DynamicSlug entity by its id.
func (c *DynamicSlugClient) Get(ctx context.Context, id string) (*DynamicSlug, error) {
	return c.Query().Where(dynamicslug.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DynamicSlugClient) GetX(ctx context.Context, id string) *DynamicSlug {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DynamicSlugClient) Hooks() []Hook {
	return c.hooks.DynamicSlug
}

// Interceptors returns the client interceptors.
func (c *DynamicSlugClient) Interceptors() []Interceptor {
	return c.inters.DynamicSlug
}

func (c *DynamicSlugClient) mutate(ctx context.Context, m *DynamicSlugMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DynamicSlugCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DynamicSlugUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DynamicSlugUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DynamicSlugDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DynamicSlug mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPostLinks queries the post_links edge of a Event.
func (c *EventClient) QueryPostLinks(_m *Event) *EventPostLinkQuery {
	query := (&EventPostLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(eventpostlink.Table, eventpostlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.PostLinksTable, event.PostLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActorLinks queries the actor_links edge of a Event.
func (c *EventClient) QueryActorLinks(_m *Event) *EventActorLinkQuery {
	query := (&EventActorLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(eventactorlink.Table, eventactorlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.ActorLinksTable, event.ActorLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// EventActorLinkClient is a client for the EventActorLink schema.
type EventActorLinkClient struct {
	config
}

// NewEventActorLinkClient returns a client for the EventActorLink from the given config.
func NewEventActorLinkClient(c config) *EventActorLinkClient {
	return &EventActorLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventactorlink.Hooks(f(g(h())))`.
func (c *EventActorLinkClient) Use(hooks ...Hook) {
	c.hooks.EventActorLink = append(c.hooks.EventActorLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventactorlink.Intercept(f(g(h())))`.
func (c *EventActorLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventActorLink = append(c.inters.EventActorLink, interceptors...)
}

// Create returns a builder for creating a EventActorLink entity.
func (c *EventActorLinkClient) Create() *EventActorLinkCreate {
	mutation := newEventActorLinkMutation(c.config, OpCreate)
	return &EventActorLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventActorLink entities.
func (c *EventActorLinkClient) CreateBulk(builders ...*EventActorLinkCreate) *EventActorLinkCreateBulk {
	return &EventActorLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventActorLinkClient) MapCreateBulk(slice any, setFunc func(*EventActorLinkCreate, int)) *EventActorLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventActorLinkCreateBulk{err: fmt.Errorf("calling to EventActorLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventActorLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventActorLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventActorLink.
func (c *EventActorLinkClient) Update() *EventActorLinkUpdate {
	mutation := newEventActorLinkMutation(c.config, OpUpdate)
	return &EventActorLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventActorLinkClient) UpdateOne(_m *EventActorLink) *EventActorLinkUpdateOne {
	mutation := newEventActorLinkMutation(c.config, OpUpdateOne, withEventActorLink(_m))
	return &EventActorLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventActorLinkClient) UpdateOneID(id string) *EventActorLinkUpdateOne {
	mutation := newEventActorLinkMutation(c.config, OpUpdateOne, withEventActorLinkID(id))
	return &EventActorLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventActorLink.
func (c *EventActorLinkClient) Delete() *EventActorLinkDelete {
	mutation := newEventActorLinkMutation(c.config, OpDelete)
	return &EventActorLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventActorLinkClient) DeleteOne(_m *EventActorLink) *EventActorLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventActorLinkClient) DeleteOneID(id string) *EventActorLinkDeleteOne {
	builder := c.Delete().Where(eventactorlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventActorLinkDeleteOne{builder}
}

// Query returns a query builder for EventActorLink.
func (c *EventActorLinkClient) Query() *EventActorLinkQuery {
	return &EventActorLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventActorLink},
		inters: c.Interceptors(),
	}
}

// Get returns a EventActorLink entity by its id.
func (c *EventActorLinkClient) Get(ctx context.Context, id string) (*EventActorLink, error) {
	return c.Query().Where(eventactorlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventActorLinkClient) GetX(ctx context.Context, id string) *EventActorLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a EventActorLink.
func (c *EventActorLinkClient) QueryEvent(_m *EventActorLink) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventactorlink.Table, eventactorlink.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventactorlink.EventTable, eventactorlink.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventActorLinkClient) Hooks() []Hook {
	return c.hooks.EventActorLink
}

// Interceptors returns the client interceptors.
func (c *EventActorLinkClient) Interceptors() []Interceptor {
	return c.inters.EventActorLink
}

func (c *EventActorLinkClient) mutate(ctx context.Context, m *EventActorLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventActorLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventActorLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventActorLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventActorLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventActorLink mutation op: %q", m.Op())
	}
}

// EventPostLinkClient is a client for the EventPostLink schema.
type EventPostLinkClient struct {
	config
}

// NewEventPostLinkClient returns a client for the EventPostLink from the given config.
func NewEventPostLinkClient(c config) *EventPostLinkClient {
	return &EventPostLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventpostlink.Hooks(f(g(h())))`.
func (c *EventPostLinkClient) Use(hooks ...Hook) {
	c.hooks.EventPostLink = append(c.hooks.EventPostLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventpostlink.Intercept(f(g(h())))`.
func (c *EventPostLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventPostLink = append(c.inters.EventPostLink, interceptors...)
}

// Create returns a builder for creating a EventPostLink entity.
func (c *EventPostLinkClient) Create() *EventPostLinkCreate {
	mutation := newEventPostLinkMutation(c.config, OpCreate)
	return &EventPostLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventPostLink entities.
func (c *EventPostLinkClient) CreateBulk(builders ...*EventPostLinkCreate) *EventPostLinkCreateBulk {
	return &EventPostLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventPostLinkClient) MapCreateBulk(slice any, setFunc func(*EventPostLinkCreate, int)) *EventPostLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventPostLinkCreateBulk{err: fmt.Errorf("calling to EventPostLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventPostLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventPostLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventPostLink.
func (c *EventPostLinkClient) Update() *EventPostLinkUpdate {
	mutation := newEventPostLinkMutation(c.config, OpUpdate)
	return &EventPostLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventPostLinkClient) UpdateOne(_m *EventPostLink) *EventPostLinkUpdateOne {
	mutation := newEventPostLinkMutation(c.config, OpUpdateOne, withEventPostLink(_m))
	return &EventPostLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventPostLinkClient) UpdateOneID(id string) *EventPostLinkUpdateOne {
	mutation := newEventPostLinkMutation(c.config, OpUpdateOne, withEventPostLinkID(id))
	return &EventPostLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventPostLink.
func (c *EventPostLinkClient) Delete() *EventPostLinkDelete {
	mutation := newEventPostLinkMutation(c.config, OpDelete)
	return &EventPostLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventPostLinkClient) DeleteOne(_m *EventPostLink) *EventPostLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventPostLinkClient) DeleteOneID(id string) *EventPostLinkDeleteOne {
	builder := c.Delete().Where(eventpostlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventPostLinkDeleteOne{builder}
}

// Query returns a query builder for EventPostLink.
func (c *EventPostLinkClient) Query() *EventPostLinkQuery {
	return &EventPostLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventPostLink},
		inters: c.Interceptors(),
	}
}

// Get returns a EventPostLink entity by its id.
func (c *EventPostLinkClient) Get(ctx context.Context, id string) (*EventPostLink, error) {
	return c.Query().Where(eventpostlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventPostLinkClient) GetX(ctx context.Context, id string) *EventPostLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a EventPostLink.
func (c *EventPostLinkClient) QueryEvent(_m *EventPostLink) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventpostlink.Table, eventpostlink.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventpostlink.EventTable, eventpostlink.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPost queries the post edge of a EventPostLink.
func (c *EventPostLinkClient) QueryPost(_m *EventPostLink) *PostQuery {
	query := (&PostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventpostlink.Table, eventpostlink.FieldID, id),
			sqlgraph.To(post.Table, post.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventpostlink.PostTable, eventpostlink.PostColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventPostLinkClient) Hooks() []Hook {
	return c.hooks.EventPostLink
}

// Interceptors returns the client interceptors.
func (c *EventPostLinkClient) Interceptors() []Interceptor {
	return c.inters.EventPostLink
}

func (c *EventPostLinkClient) mutate(ctx context.Context, m *EventPostLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventPostLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventPostLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventPostLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventPostLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventPostLink mutation op: %q", m.Op())
	}
}

// LocationCoordinateClient is a client for the LocationCoordinate schema.
type LocationCoordinateClient struct {
	config
}

// NewLocationCoordinateClient returns a client for the LocationCoordinate from the given config.
func NewLocationCoordinateClient(c config) *LocationCoordinateClient {
	return &LocationCoordinateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `locationcoordinate.Hooks(f(g(h())))`.
func (c *LocationCoordinateClient) Use(hooks ...Hook) {
	c.hooks.LocationCoordinate = append(c.hooks.LocationCoordinate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `locationcoordinate.Intercept(f(g(h())))`.
func (c *LocationCoordinateClient) Intercept(interceptors ...Interceptor) {
	c.inters.LocationCoordinate = append(c.inters.LocationCoordinate, interceptors...)
}

// Create returns a builder for creating a LocationCoordinate entity.
func (c *LocationCoordinateClient) Create() *LocationCoordinateCreate {
	mutation := newLocationCoordinateMutation(c.config, OpCreate)
	return &LocationCoordinateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LocationCoordinate entities.
func (c *LocationCoordinateClient) CreateBulk(builders ...*LocationCoordinateCreate) *LocationCoordinateCreateBulk {
	return &LocationCoordinateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LocationCoordinateClient) MapCreateBulk(slice any, setFunc func(*LocationCoordinateCreate, int)) *LocationCoordinateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LocationCoordinateCreateBulk{err: fmt.Errorf("calling to LocationCoordinateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LocationCoordinateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LocationCoordinateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LocationCoordinate.
func (c *LocationCoordinateClient) Update() *LocationCoordinateUpdate {
	mutation := newLocationCoordinateMutation(c.config, OpUpdate)
	return &LocationCoordinateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LocationCoordinateClient) UpdateOne(_m *LocationCoordinate) *LocationCoordinateUpdateOne {
	mutation := newLocationCoordinateMutation(c.config, OpUpdateOne, withLocationCoordinate(_m))
	return &LocationCoordinateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LocationCoordinateClient) UpdateOneID(id string) *LocationCoordinateUpdateOne {
	mutation := newLocationCoordinateMutation(c.config, OpUpdateOne, withLocationCoordinateID(id))
	return &LocationCoordinateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LocationCoordinate.
func (c *LocationCoordinateClient) Delete() *LocationCoordinateDelete {
	mutation := newLocationCoordinateMutation(c.config, OpDelete)
	return &LocationCoordinateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LocationCoordinateClient) DeleteOne(_m *LocationCoordinate) *LocationCoordinateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LocationCoordinateClient) DeleteOneID(id string) *LocationCoordinateDeleteOne {
	builder := c.Delete().Where(locationcoordinate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LocationCoordinateDeleteOne{builder}
}

// Query returns a query builder for LocationCoordinate.
func (c *LocationCoordinateClient) Query() *LocationCoordinateQuery {
	return &LocationCoordinateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLocationCoordinate},
		inters: c.Interceptors(),
	}
}

// Get returns a LocationCoordinate entity by its id.
func (c *LocationCoordinateClient) Get(ctx context.Context, id string) (*LocationCoordinate, error) {
	return c.Query().Where(locationcoordinate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LocationCoordinateClient) GetX(ctx context.Context, id string) *LocationCoordinate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LocationCoordinateClient) Hooks() []Hook {
	return c.hooks.LocationCoordinate
}

// Interceptors returns the client interceptors.
func (c *LocationCoordinateClient) Interceptors() []Interceptor {
	return c.inters.LocationCoordinate
}

func (c *LocationCoordinateClient) mutate(ctx context.Context, m *LocationCoordinateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LocationCoordinateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LocationCoordinateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LocationCoordinateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LocationCoordinateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LocationCoordinate mutation op: %q", m.Op())
	}
}

// PipelineRunClient is a client for the PipelineRun schema.
type PipelineRunClient struct {
	config
}

// NewPipelineRunClient returns a client for the PipelineRun from the given config.
func NewPipelineRunClient(c config) *PipelineRunClient {
	return &PipelineRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinerun.Hooks(f(g(h())))`.
func (c *PipelineRunClient) Use(hooks ...Hook) {
	c.hooks.PipelineRun = append(c.hooks.PipelineRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinerun.Intercept(f(g(h())))`.
func (c *PipelineRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineRun = append(c.inters.PipelineRun, interceptors...)
}

// Create returns a builder for creating a PipelineRun entity.
func (c *PipelineRunClient) Create() *PipelineRunCreate {
	mutation := newPipelineRunMutation(c.config, OpCreate)
	return &PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineRun entities.
func (c *PipelineRunClient) CreateBulk(builders ...*PipelineRunCreate) *PipelineRunCreateBulk {
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineRunClient) MapCreateBulk(slice any, setFunc func(*PipelineRunCreate, int)) *PipelineRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineRunCreateBulk{err: fmt.Errorf("calling to PipelineRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineRun.
func (c *PipelineRunClient) Update() *PipelineRunUpdate {
	mutation := newPipelineRunMutation(c.config, OpUpdate)
	return &PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineRunClient) UpdateOne(_m *PipelineRun) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRun(_m))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineRunClient) UpdateOneID(id string) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRunID(id))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineRun.
func (c *PipelineRunClient) Delete() *PipelineRunDelete {
	mutation := newPipelineRunMutation(c.config, OpDelete)
	return &PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineRunClient) DeleteOne(_m *PipelineRun) *PipelineRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineRunClient) DeleteOneID(id string) *PipelineRunDeleteOne {
	builder := c.Delete().Where(pipelinerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineRunDeleteOne{builder}
}

// Query returns a query builder for PipelineRun.
func (c *PipelineRunClient) Query() *PipelineRunQuery {
	return &PipelineRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineRun entity by its id.
func (c *PipelineRunClient) Get(ctx context.Context, id string) (*PipelineRun, error) {
	return c.Query().Where(pipelinerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineRunClient) GetX(ctx context.Context, id string) *PipelineRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineRunClient) Hooks() []Hook {
	return c.hooks.PipelineRun
}

// Interceptors returns the client interceptors.
func (c *PipelineRunClient) Interceptors() []Interceptor {
	return c.inters.PipelineRun
}

func (c *PipelineRunClient) mutate(ctx context.Context, m *PipelineRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineRun mutation op: %q", m.Op())
	}
}

// PostClient is a client for the Post schema.
type PostClient struct {
	config
}

// NewPostClient returns a client for the Post from the given config.
func NewPostClient(c config) *PostClient {
	return &PostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `post.Hooks(f(g(h())))`.
func (c *PostClient) Use(hooks ...Hook) {
	c.hooks.Post = append(c.hooks.Post, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `post.Intercept(f(g(h())))`.
func (c *PostClient) Intercept(interceptors ...Interceptor) {
	c.inters.Post = append(c.inters.Post, interceptors...)
}

// Create returns a builder for creating a Post entity.
func (c *PostClient) Create() *PostCreate {
	mutation := newPostMutation(c.config, OpCreate)
	return &PostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Post entities.
func (c *PostClient) CreateBulk(builders ...*PostCreate) *PostCreateBulk {
	return &PostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PostClient) MapCreateBulk(slice any, setFunc func(*PostCreate, int)) *PostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PostCreateBulk{err: fmt.Errorf("calling to PostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Post.
func (c *PostClient) Update() *PostUpdate {
	mutation := newPostMutation(c.config, OpUpdate)
	return &PostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PostClient) UpdateOne(_m *Post) *PostUpdateOne {
	mutation := newPostMutation(c.config, OpUpdateOne, withPost(_m))
	return &PostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PostClient) UpdateOneID(id string) *PostUpdateOne {
	mutation := newPostMutation(c.config, OpUpdateOne, withPostID(id))
	return &PostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Post.
func (c *PostClient) Delete() *PostDelete {
	mutation := newPostMutation(c.config, OpDelete)
	return &PostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PostClient) DeleteOne(_m *Post) *PostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PostClient) DeleteOneID(id string) *PostDeleteOne {
	builder := c.Delete().Where(post.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PostDeleteOne{builder}
}

// Query returns a query builder for Post.
func (c *PostClient) Query() *PostQuery {
	return &PostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePost},
		inters: c.Interceptors(),
	}
}

// Get returns a Post entity by its id.
func (c *PostClient) Get(ctx context.Context, id string) (*Post, error) {
	return c.Query().Where(post.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PostClient) GetX(ctx context.Context, id string) *Post {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryActorLinks queries the actor_links edge of a Post.
func (c *PostClient) QueryActorLinks(_m *Post) *PostActorQuery {
	query := (&PostActorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(post.Table, post.FieldID, id),
			sqlgraph.To(postactor.Table, postactor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, post.ActorLinksTable, post.ActorLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUnknownActorLinks queries the unknown_actor_links edge of a Post.
func (c *PostClient) QueryUnknownActorLinks(_m *Post) *PostUnknownActorQuery {
	query := (&PostUnknownActorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(post.Table, post.FieldID, id),
			sqlgraph.To(postunknownactor.Table, postunknownactor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, post.UnknownActorLinksTable, post.UnknownActorLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEventLinks queries the event_links edge of a Post.
func (c *PostClient) QueryEventLinks(_m *Post) *EventPostLinkQuery {
	query := (&EventPostLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(post.Table, post.FieldID, id),
			sqlgraph.To(eventpostlink.Table, eventpostlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, post.EventLinksTable, post.EventLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PostClient) Hooks() []Hook {
	return c.hooks.Post
}

// Interceptors returns the client interceptors.
func (c *PostClient) Interceptors() []Interceptor {
	return c.inters.Post
}

func (c *PostClient) mutate(ctx context.Context, m *PostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Post mutation op: %q", m.Op())
	}
}

// PostActorClient is a client for the PostActor schema.
type PostActorClient struct {
	config
}

// NewPostActorClient returns a client for the PostActor from the given config.
func NewPostActorClient(c config) *PostActorClient {
	return &PostActorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `postactor.Hooks(f(g(h())))`.
func (c *PostActorClient) Use(hooks ...Hook) {
	c.hooks.PostActor = append(c.hooks.PostActor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `postactor.Intercept(f(g(h())))`.
func (c *PostActorClient) Intercept(interceptors ...Interceptor) {
	c.inters.PostActor = append(c.inters.PostActor, interceptors...)
}

// Create returns a builder for creating a PostActor entity.
func (c *PostActorClient) Create() *PostActorCreate {
	mutation := newPostActorMutation(c.config, OpCreate)
	return &PostActorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PostActor entities.
func (c *PostActorClient) CreateBulk(builders ...*PostActorCreate) *PostActorCreateBulk {
	return &PostActorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PostActorClient) MapCreateBulk(slice any, setFunc func(*PostActorCreate, int)) *PostActorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PostActorCreateBulk{err: fmt.Errorf("calling to PostActorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PostActorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PostActorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PostActor.
func (c *PostActorClient) Update() *PostActorUpdate {
	mutation := newPostActorMutation(c.config, OpUpdate)
	return &PostActorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PostActorClient) UpdateOne(_m *PostActor) *PostActorUpdateOne {
	mutation := newPostActorMutation(c.config, OpUpdateOne, withPostActor(_m))
	return &PostActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PostActorClient) UpdateOneID(id string) *PostActorUpdateOne {
	mutation := newPostActorMutation(c.config, OpUpdateOne, withPostActorID(id))
	return &PostActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PostActor.
func (c *PostActorClient) Delete() *PostActorDelete {
	mutation := newPostActorMutation(c.config, OpDelete)
	return &PostActorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PostActorClient) DeleteOne(_m *PostActor) *PostActorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PostActorClient) DeleteOneID(id string) *PostActorDeleteOne {
	builder := c.Delete().Where(postactor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PostActorDeleteOne{builder}
}

// Query returns a query builder for PostActor.
func (c *PostActorClient) Query() *PostActorQuery {
	return &PostActorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePostActor},
		inters: c.Interceptors(),
	}
}

// Get returns a PostActor entity by its id.
func (c *PostActorClient) Get(ctx context.Context, id string) (*PostActor, error) {
	return c.Query().Where(postactor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PostActorClient) GetX(ctx context.Context, id string) *PostActor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPost queries the post edge of a PostActor.
func (c *PostActorClient) QueryPost(_m *PostActor) *PostQuery {
	query := (&PostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(postactor.Table, postactor.FieldID, id),
			sqlgraph.To(post.Table, post.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postactor.PostTable, postactor.PostColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActor queries the actor edge of a PostActor.
func (c *PostActorClient) QueryActor(_m *PostActor) *ActorQuery {
	query := (&ActorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(postactor.Table, postactor.FieldID, id),
			sqlgraph.To(actor.Table, actor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postactor.ActorTable, postactor.ActorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PostActorClient) Hooks() []Hook {
	return c.hooks.PostActor
}

// Interceptors returns the client interceptors.
func (c *PostActorClient) Interceptors() []Interceptor {
	return c.inters.PostActor
}

func (c *PostActorClient) mutate(ctx context.Context, m *PostActorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PostActorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PostActorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PostActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PostActorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PostActor mutation op: %q", m.Op())
	}
}

// PostUnknownActorClient is a client for the PostUnknownActor schema.
type PostUnknownActorClient struct {
	config
}

// NewPostUnknownActorClient returns a client for the PostUnknownActor from the given config.
func NewPostUnknownActorClient(c config) *PostUnknownActorClient {
	return &PostUnknownActorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `postunknownactor.Hooks(f(g(h())))`.
func (c *PostUnknownActorClient) Use(hooks ...Hook) {
	c.hooks.PostUnknownActor = append(c.hooks.PostUnknownActor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `postunknownactor.Intercept(f(g(h())))`.
func (c *PostUnknownActorClient) Intercept(interceptors ...Interceptor) {
	c.inters.PostUnknownActor = append(c.inters.PostUnknownActor, interceptors...)
}

// Create returns a builder for creating a PostUnknownActor entity.
func (c *PostUnknownActorClient) Create() *PostUnknownActorCreate {
	mutation := newPostUnknownActorMutation(c.config, OpCreate)
	return &PostUnknownActorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PostUnknownActor entities.
func (c *PostUnknownActorClient) CreateBulk(builders ...*PostUnknownActorCreate) *PostUnknownActorCreateBulk {
	return &PostUnknownActorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PostUnknownActorClient) MapCreateBulk(slice any, setFunc func(*PostUnknownActorCreate, int)) *PostUnknownActorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PostUnknownActorCreateBulk{err: fmt.Errorf("calling to PostUnknownActorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PostUnknownActorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PostUnknownActorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PostUnknownActor.
func (c *PostUnknownActorClient) Update() *PostUnknownActorUpdate {
	mutation := newPostUnknownActorMutation(c.config, OpUpdate)
	return &PostUnknownActorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PostUnknownActorClient) UpdateOne(_m *PostUnknownActor) *PostUnknownActorUpdateOne {
	mutation := newPostUnknownActorMutation(c.config, OpUpdateOne, withPostUnknownActor(_m))
	return &PostUnknownActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PostUnknownActorClient) UpdateOneID(id string) *PostUnknownActorUpdateOne {
	mutation := newPostUnknownActorMutation(c.config, OpUpdateOne, withPostUnknownActorID(id))
	return &PostUnknownActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PostUnknownActor.
func (c *PostUnknownActorClient) Delete() *PostUnknownActorDelete {
	mutation := newPostUnknownActorMutation(c.config, OpDelete)
	return &PostUnknownActorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PostUnknownActorClient) DeleteOne(_m *PostUnknownActor) *PostUnknownActorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PostUnknownActorClient) DeleteOneID(id string) *PostUnknownActorDeleteOne {
	builder := c.Delete().Where(postunknownactor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PostUnknownActorDeleteOne{builder}
}

// Query returns a query builder for PostUnknownActor.
func (c *PostUnknownActorClient) Query() *PostUnknownActorQuery {
	return &PostUnknownActorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePostUnknownActor},
		inters: c.Interceptors(),
	}
}

// Get returns a PostUnknownActor entity by its id.
func (c *PostUnknownActorClient) Get(ctx context.Context, id string) (*PostUnknownActor, error) {
	return c.Query().Where(postunknownactor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PostUnknownActorClient) GetX(ctx context.Context, id string) *PostUnknownActor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPost queries the post edge of a PostUnknownActor.
func (c *PostUnknownActorClient) QueryPost(_m *PostUnknownActor) *PostQuery {
	query := (&PostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(postunknownactor.Table, postunknownactor.FieldID, id),
			sqlgraph.To(post.Table, post.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postunknownactor.PostTable, postunknownactor.PostColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUnknownActor queries the unknown_actor edge of a PostUnknownActor.
func (c *PostUnknownActorClient) QueryUnknownActor(_m *PostUnknownActor) *UnknownActorQuery {
	query := (&UnknownActorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(postunknownactor.Table, postunknownactor.FieldID, id),
			sqlgraph.To(unknownactor.Table, unknownactor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postunknownactor.UnknownActorTable, postunknownactor.UnknownActorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PostUnknownActorClient) Hooks() []Hook {
	return c.hooks.PostUnknownActor
}

// Interceptors returns the client interceptors.
func (c *PostUnknownActorClient) Interceptors() []Interceptor {
	return c.inters.PostUnknownActor
}

func (c *PostUnknownActorClient) mutate(ctx context.Context, m *PostUnknownActorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PostUnknownActorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PostUnknownActorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PostUnknownActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PostUnknownActorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PostUnknownActor mutation op: %q", m.Op())
	}
}

// UnknownActorClient is a client for the UnknownActor schema.
type UnknownActorClient struct {
	config
}

// NewUnknownActorClient returns a client for the UnknownActor from the given config.
func NewUnknownActorClient(c config) *UnknownActorClient {
	return &UnknownActorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unknownactor.Hooks(f(g(h())))`.
func (c *UnknownActorClient) Use(hooks ...Hook) {
	c.hooks.UnknownActor = append(c.hooks.UnknownActor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unknownactor.Intercept(f(g(h())))`.
func (c *UnknownActorClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnknownActor = append(c.inters.UnknownActor, interceptors...)
}

// Create returns a builder for creating a UnknownActor entity.
func (c *UnknownActorClient) Create() *UnknownActorCreate {
	mutation := newUnknownActorMutation(c.config, OpCreate)
	return &UnknownActorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnknownActor entities.
func (c *UnknownActorClient) CreateBulk(builders ...*UnknownActorCreate) *UnknownActorCreateBulk {
	return &UnknownActorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnknownActorClient) MapCreateBulk(slice any, setFunc func(*UnknownActorCreate, int)) *UnknownActorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnknownActorCreateBulk{err: fmt.Errorf("calling to UnknownActorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnknownActorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnknownActorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnknownActor.
func (c *UnknownActorClient) Update() *UnknownActorUpdate {
	mutation := newUnknownActorMutation(c.config, OpUpdate)
	return &UnknownActorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnknownActorClient) UpdateOne(_m *UnknownActor) *UnknownActorUpdateOne {
	mutation := newUnknownActorMutation(c.config, OpUpdateOne, withUnknownActor(_m))
	return &UnknownActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnknownActorClient) UpdateOneID(id string) *UnknownActorUpdateOne {
	mutation := newUnknownActorMutation(c.config, OpUpdateOne, withUnknownActorID(id))
	return &UnknownActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnknownActor.
func (c *UnknownActorClient) Delete() *UnknownActorDelete {
	mutation := newUnknownActorMutation(c.config, OpDelete)
	return &UnknownActorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnknownActorClient) DeleteOne(_m *UnknownActor) *UnknownActorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnknownActorClient) DeleteOneID(id string) *UnknownActorDeleteOne {
	builder := c.Delete().Where(unknownactor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnknownActorDeleteOne{builder}
}

// Query returns a query builder for UnknownActor.
func (c *UnknownActorClient) Query() *UnknownActorQuery {
	return &UnknownActorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnknownActor},
		inters: c.Interceptors(),
	}
}

// Get returns a UnknownActor entity by its id.
func (c *UnknownActorClient) Get(ctx context.Context, id string) (*UnknownActor, error) {
	return c.Query().Where(unknownactor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnknownActorClient) GetX(ctx context.Context, id string) *UnknownActor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPostLinks queries the post_links edge of a UnknownActor.
func (c *UnknownActorClient) QueryPostLinks(_m *UnknownActor) *PostUnknownActorQuery {
	query := (&PostUnknownActorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(unknownactor.Table, unknownactor.FieldID, id),
			sqlgraph.To(postunknownactor.Table, postunknownactor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, unknownactor.PostLinksTable, unknownactor.PostLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UnknownActorClient) Hooks() []Hook {
	return c.hooks.UnknownActor
}

// Interceptors returns the client interceptors.
func (c *UnknownActorClient) Interceptors() []Interceptor {
	return c.inters.UnknownActor
}

func (c *UnknownActorClient) mutate(ctx context.Context, m *UnknownActorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnknownActorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnknownActorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnknownActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnknownActorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnknownActor mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Actor, ActorUsername, DynamicSlug, Event, EventActorLink, EventPostLink,
		LocationCoordinate, PipelineRun, Post, PostActor, PostUnknownActor,
		UnknownActor []ent.Hook
	}
	inters struct {
		Actor, ActorUsername, DynamicSlug, Event, EventActorLink, EventPostLink,
		LocationCoordinate, PipelineRun, Post, PostActor, PostUnknownActor,
		UnknownActor []ent.Interceptor
	}
)
