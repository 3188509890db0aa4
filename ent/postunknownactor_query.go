// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/predicate"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// PostUnknownActorQuery is the builder for querying PostUnknownActor entities.
type PostUnknownActorQuery struct {
	config
	ctx              *QueryContext
	order            []postunknownactor.OrderOption
	inters           []Interceptor
	predicates       []predicate.PostUnknownActor
	withPost         *PostQuery
	withUnknownActor *UnknownActorQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PostUnknownActorQuery builder.
func (_q *PostUnknownActorQuery) Where(ps ...predicate.PostUnknownActor) *PostUnknownActorQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PostUnknownActorQuery) Limit(limit int) *PostUnknownActorQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PostUnknownActorQuery) Offset(offset int) *PostUnknownActorQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PostUnknownActorQuery) Unique(unique bool) *PostUnknownActorQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PostUnknownActorQuery) Order(o ...postunknownactor.OrderOption) *PostUnknownActorQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPost chains the current query on the "post" edge.
func (_q *PostUnknownActorQuery) QueryPost() *PostQuery {
	query := (&PostClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(postunknownactor.Table, postunknownactor.FieldID, selector),
			sqlgraph.To(post.Table, post.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postunknownactor.PostTable, postunknownactor.PostColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUnknownActor chains the current query on the "unknown_actor" edge.
func (_q *PostUnknownActorQuery) QueryUnknownActor() *UnknownActorQuery {
	query := (&UnknownActorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(postunknownactor.Table, postunknownactor.FieldID, selector),
			sqlgraph.To(unknownactor.Table, unknownactor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, postunknownactor.UnknownActorTable, postunknownactor.UnknownActorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PostUnknownActor entity from the query.
// Returns a *NotFoundError when no PostUnknownActor was found.
func (_q *PostUnknownActorQuery) First(ctx context.Context) (*PostUnknownActor, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{postunknownactor.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PostUnknownActorQuery) FirstX(ctx context.Context) *PostUnknownActor {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PostUnknownActor ID from the query.
// Returns a *NotFoundError when no PostUnknownActor ID was found.
func (_q *PostUnknownActorQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{postunknownactor.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PostUnknownActorQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PostUnknownActor entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PostUnknownActor entity is found.
// Returns a *NotFoundError when no PostUnknownActor entities are found.
func (_q *PostUnknownActorQuery) Only(ctx context.Context) (*PostUnknownActor, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{postunknownactor.Label}
	default:
		return nil, &NotSingularError{postunknownactor.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PostUnknownActorQuery) OnlyX(ctx context.Context) *PostUnknownActor {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PostUnknownActor ID in the query.
// Returns a *NotSingularError when more than one PostUnknownActor ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PostUnknownActorQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{postunknownactor.Label}
	default:
		err = &NotSingularError{postunknownactor.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PostUnknownActorQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PostUnknownActors.
func (_q *PostUnknownActorQuery) All(ctx context.Context) ([]*PostUnknownActor, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PostUnknownActor, *PostUnknownActorQuery]()
	return withInterceptors[[]*PostUnknownActor](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PostUnknownActorQuery) AllX(ctx context.Context) []*PostUnknownActor {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PostUnknownActor IDs.
func (_q *PostUnknownActorQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(postunknownactor.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PostUnknownActorQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PostUnknownActorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PostUnknownActorQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PostUnknownActorQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PostUnknownActorQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PostUnknownActorQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PostUnknownActorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PostUnknownActorQuery) Clone() *PostUnknownActorQuery {
	if _q == nil {
		return nil
	}
	return &PostUnknownActorQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]postunknownactor.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.PostUnknownActor{}, _q.predicates...),
		withPost:         _q.withPost.Clone(),
		withUnknownActor: _q.withUnknownActor.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPost tells the query-builder to eager-load the nodes that are connected to
// the "post" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PostUnknownActorQuery) WithPost(opts ...func(*PostQuery)) *PostUnknownActorQuery {
	query := (&PostClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPost = query
	return _q
}

// WithUnknownActor tells the query-builder to eager-load the nodes that are connected to
// the "unknown_actor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PostUnknownActorQuery) WithUnknownActor(opts ...func(*UnknownActorQuery)) *PostUnknownActorQuery {
	query := (&UnknownActorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUnknownActor = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PostID string `json:"post_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PostUnknownActor.Query().
//		GroupBy(postunknownactor.FieldPostID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PostUnknownActorQuery) GroupBy(field string, fields ...string) *PostUnknownActorGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PostUnknownActorGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = postunknownactor.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PostID string `json:"post_id,omitempty"`
//	}
//
//	client.PostUnknownActor.Query().
//		Select(postunknownactor.FieldPostID).
//		Scan(ctx, &v)
func (_q *PostUnknownActorQuery) Select(fields ...string) *PostUnknownActorSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PostUnknownActorSelect{PostUnknownActorQuery: _q}
	sbuild.label = postunknownactor.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PostUnknownActorSelect configured with the given aggregations.
func (_q *PostUnknownActorQuery) Aggregate(fns ...AggregateFunc) *PostUnknownActorSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PostUnknownActorQuery) prepareQuery(ctx context.Context) error {
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
		if !postunknownactor.ValidColumn(f) {
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

func (_q *PostUnknownActorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PostUnknownActor, error) {
	var (
		nodes       = []*PostUnknownActor{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPost != nil,
			_q.withUnknownActor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PostUnknownActor).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PostUnknownActor{config: _q.config}
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
	if query := _q.withPost; query != nil {
		if err := _q.loadPost(ctx, query, nodes, nil,
			func(n *PostUnknownActor, e *Post) { n.Edges.Post = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUnknownActor; query != nil {
		if err := _q.loadUnknownActor(ctx, query, nodes, nil,
			func(n *PostUnknownActor, e *UnknownActor) { n.Edges.UnknownActor = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PostUnknownActorQuery) loadPost(ctx context.Context, query *PostQuery, nodes []*PostUnknownActor, init func(*PostUnknownActor), assign func(*PostUnknownActor, *Post)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PostUnknownActor)
	for i := range nodes {
		fk := nodes[i].PostID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(post.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "post_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PostUnknownActorQuery) loadUnknownActor(ctx context.Context, query *UnknownActorQuery, nodes []*PostUnknownActor, init func(*PostUnknownActor), assign func(*PostUnknownActor, *UnknownActor)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PostUnknownActor)
	for i := range nodes {
		fk := nodes[i].UnknownActorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(unknownactor.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "unknown_actor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PostUnknownActorQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *PostUnknownActorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(postunknownactor.Table, postunknownactor.Columns, sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, postunknownactor.FieldID)
		for i := range fields {
			if fields[i] != postunknownactor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPost != nil {
			_spec.Node.AddColumnOnce(postunknownactor.FieldPostID)
		}
		if _q.withUnknownActor != nil {
			_spec.Node.AddColumnOnce(postunknownactor.FieldUnknownActorID)
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

func (_q *PostUnknownActorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(postunknownactor.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = postunknownactor.Columns
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
func (_q *PostUnknownActorQuery) ForUpdate(opts ...sql.LockOption) *PostUnknownActorQuery {
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
func (_q *PostUnknownActorQuery) ForShare(opts ...sql.LockOption) *PostUnknownActorQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PostUnknownActorGroupBy is the group-by builder for PostUnknownActor entities.
type PostUnknownActorGroupBy struct {
	selector
	build *PostUnknownActorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PostUnknownActorGroupBy) Aggregate(fns ...AggregateFunc) *PostUnknownActorGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PostUnknownActorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PostUnknownActorQuery, *PostUnknownActorGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PostUnknownActorGroupBy) sqlScan(ctx context.Context, root *PostUnknownActorQuery, v any) error {
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

// PostUnknownActorSelect is the builder for selecting fields of PostUnknownActor entities.
type PostUnknownActorSelect struct {
	*PostUnknownActorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PostUnknownActorSelect) Aggregate(fns ...AggregateFunc) *PostUnknownActorSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PostUnknownActorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PostUnknownActorQuery, *PostUnknownActorSelect](ctx, _s.PostUnknownActorQuery, _s, _s.inters, v)
}

func (_s *PostUnknownActorSelect) sqlScan(ctx context.Context, root *PostUnknownActorQuery, v any) error {
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
