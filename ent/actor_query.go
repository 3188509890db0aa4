// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/actorusername"
	"github.com/civiclens/civiclens/ent/postactor"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ActorQuery is the builder for querying Actor entities.
type ActorQuery struct {
	config
	ctx           *QueryContext
	order         []actor.OrderOption
	inters        []Interceptor
	predicates    []predicate.Actor
	withUsernames *ActorUsernameQuery
	withPostLinks *PostActorQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ActorQuery builder.
func (_q *ActorQuery) Where(ps ...predicate.Actor) *ActorQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ActorQuery) Limit(limit int) *ActorQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ActorQuery) Offset(offset int) *ActorQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ActorQuery) Unique(unique bool) *ActorQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ActorQuery) Order(o ...actor.OrderOption) *ActorQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUsernames chains the current query on the "usernames" edge.
func (_q *ActorQuery) QueryUsernames() *ActorUsernameQuery {
	query := (&ActorUsernameClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(actor.Table, actor.FieldID, selector),
			sqlgraph.To(actorusername.Table, actorusername.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, actor.UsernamesTable, actor.UsernamesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPostLinks chains the current query on the "post_links" edge.
func (_q *ActorQuery) QueryPostLinks() *PostActorQuery {
	query := (&PostActorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(actor.Table, actor.FieldID, selector),
			sqlgraph.To(postactor.Table, postactor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, actor.PostLinksTable, actor.PostLinksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Actor entity from the query.
// Returns a *NotFoundError when no Actor was found.
func (_q *ActorQuery) First(ctx context.Context) (*Actor, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{actor.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ActorQuery) FirstX(ctx context.Context) *Actor {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Actor ID from the query.
// Returns a *NotFoundError when no Actor ID was found.
func (_q *ActorQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{actor.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ActorQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Actor entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Actor entity is found.
// Returns a *NotFoundError when no Actor entities are found.
func (_q *ActorQuery) Only(ctx context.Context) (*Actor, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{actor.Label}
	default:
		return nil, &NotSingularError{actor.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ActorQuery) OnlyX(ctx context.Context) *Actor {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Actor ID in the query.
// Returns a *NotSingularError when more than one Actor ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ActorQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{actor.Label}
	default:
		err = &NotSingularError{actor.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ActorQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Actors.
func (_q *ActorQuery) All(ctx context.Context) ([]*Actor, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Actor, *ActorQuery]()
	return withInterceptors[[]*Actor](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ActorQuery) AllX(ctx context.Context) []*Actor {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Actor IDs.
func (_q *ActorQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(actor.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ActorQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ActorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ActorQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ActorQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ActorQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ActorQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ActorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ActorQuery) Clone() *ActorQuery {
	if _q == nil {
		return nil
	}
	return &ActorQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]actor.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Actor{}, _q.predicates...),
		withUsernames: _q.withUsernames.Clone(),
		withPostLinks: _q.withPostLinks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUsernames tells the query-builder to eager-load the nodes that are connected to
// the "usernames" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ActorQuery) WithUsernames(opts ...func(*ActorUsernameQuery)) *ActorQuery {
	query := (&ActorUsernameClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUsernames = query
	return _q
}

// WithPostLinks tells the query-builder to eager-load the nodes that are connected to
// the "post_links" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ActorQuery) WithPostLinks(opts ...func(*PostActorQuery)) *ActorQuery {
	query := (&PostActorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPostLinks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ActorType actor.ActorType `json:"actor_type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Actor.Query().
//		GroupBy(actor.FieldActorType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ActorQuery) GroupBy(field string, fields ...string) *ActorGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ActorGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = actor.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ActorType actor.ActorType `json:"actor_type,omitempty"`
//	}
//
//	client.Actor.Query().
//		Select(actor.FieldActorType).
//		Scan(ctx, &v)
func (_q *ActorQuery) Select(fields ...string) *ActorSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ActorSelect{ActorQuery: _q}
	sbuild.label = actor.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ActorSelect configured with the given aggregations.
func (_q *ActorQuery) Aggregate(fns ...AggregateFunc) *ActorSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ActorQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !actor.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ActorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Actor, error) {
	var (
		nodes       = []*Actor{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withUsernames != nil,
			_q.withPostLinks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Actor).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Actor{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUsernames; query != nil {
		if err := _q.loadUsernames(ctx, query, nodes,
			func(n *Actor) { n.Edges.Usernames = []*ActorUsername{} },
			func(n *Actor, e *ActorUsername) { n.Edges.Usernames = append(n.Edges.Usernames, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPostLinks; query != nil {
		if err := _q.loadPostLinks(ctx, query, nodes,
			func(n *Actor) { n.Edges.PostLinks = []*PostActor{} },
			func(n *Actor, e *PostActor) { n.Edges.PostLinks = append(n.Edges.PostLinks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ActorQuery) loadUsernames(ctx context.Context, query *ActorUsernameQuery, nodes []*Actor, init func(*Actor), assign func(*Actor, *ActorUsername)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Actor)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(actorusername.FieldActorID)
	}
	query.Where(predicate.ActorUsername(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(actor.UsernamesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ActorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "actor_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ActorQuery) loadPostLinks(ctx context.Context, query *PostActorQuery, nodes []*Actor, init func(*Actor), assign func(*Actor, *PostActor)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Actor)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(postactor.FieldActorID)
	}
	query.Where(predicate.PostActor(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(actor.PostLinksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ActorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "actor_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ActorQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ActorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(actor.Table, actor.Columns, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actor.FieldID)
		for i := range fields {
			if fields[i] != actor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ActorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(actor.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = actor.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ActorQuery) ForUpdate(opts ...sql.LockOption) *ActorQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ActorQuery) ForShare(opts ...sql.LockOption) *ActorQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ActorGroupBy is the group-by builder for Actor entities.
type ActorGroupBy struct {
	selector
	build *ActorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ActorGroupBy) Aggregate(fns ...AggregateFunc) *ActorGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ActorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ActorQuery, *ActorGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ActorGroupBy) sqlScan(ctx context.Context, root *ActorQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ActorSelect is the builder for selecting fields of Actor entities.
type ActorSelect struct {
	*ActorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ActorSelect) Aggregate(fns ...AggregateFunc) *ActorSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ActorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ActorQuery, *ActorSelect](ctx, _s.ActorQuery, _s, _s.inters, v)
}

func (_s *ActorSelect) sqlScan(ctx context.Context, root *ActorQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
