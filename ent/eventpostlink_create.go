// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/post"
)

// EventPostLinkCreate is the builder for creating a EventPostLink entity.
type EventPostLinkCreate struct {
	config
	mutation *EventPostLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *EventPostLinkCreate) SetEventID(v string) *EventPostLinkCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetPostID sets the "post_id" field.
func (_c *EventPostLinkCreate) SetPostID(v string) *EventPostLinkCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventPostLinkCreate) SetCreatedAt(v time.Time) *EventPostLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventPostLinkCreate) SetNillableCreatedAt(v *time.Time) *EventPostLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventPostLinkCreate) SetID(v string) *EventPostLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EventPostLinkCreate) SetNillableID(v *string) *EventPostLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *EventPostLinkCreate) SetEvent(v *Event) *EventPostLinkCreate {
	return _c.SetEventID(v.ID)
}

// SetPost sets the "post" edge to the Post entity.
func (_c *EventPostLinkCreate) SetPost(v *Post) *EventPostLinkCreate {
	return _c.SetPostID(v.ID)
}

// Mutation returns the EventPostLinkMutation object of the builder.
func (_c *EventPostLinkCreate) Mutation() *EventPostLinkMutation {
	return _c.mutation
}

// Save creates the EventPostLink in the database.
func (_c *EventPostLinkCreate) Save(ctx context.Context) (*EventPostLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventPostLinkCreate) SaveX(ctx context.Context) *EventPostLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventPostLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventPostLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventPostLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eventpostlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := eventpostlink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventPostLinkCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventPostLink.event_id"`)}
	}
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`ent: missing required field "EventPostLink.post_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EventPostLink.created_at"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "EventPostLink.event"`)}
	}
	if len(_c.mutation.PostIDs()) == 0 {
		return &ValidationError{Name: "post", err: errors.New(`ent: missing required edge "EventPostLink.post"`)}
	}
	return nil
}

func (_c *EventPostLinkCreate) sqlSave(ctx context.Context) (*EventPostLink, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EventPostLink.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventPostLinkCreate) createSpec() (*EventPostLink, *sqlgraph.CreateSpec) {
	var (
		_node = &EventPostLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventpostlink.Table, sqlgraph.NewFieldSpec(eventpostlink.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eventpostlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventpostlink.EventTable,
			Columns: []string{eventpostlink.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventpostlink.PostTable,
			Columns: []string{eventpostlink.PostColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(post.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PostID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventPostLink.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventPostLinkUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventPostLinkCreate) OnConflict(opts ...sql.ConflictOption) *EventPostLinkUpsertOne {
	_c.conflict = opts
	return &EventPostLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventPostLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventPostLinkCreate) OnConflictColumns(columns ...string) *EventPostLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventPostLinkUpsertOne{
		create: _c,
	}
}

type (
	// EventPostLinkUpsertOne is the builder for "upsert"-ing
	//  one EventPostLink node.
	EventPostLinkUpsertOne struct {
		create *EventPostLinkCreate
	}

	// EventPostLinkUpsert is the "OnConflict" setter.
	EventPostLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *EventPostLinkUpsert) SetEventID(v string) *EventPostLinkUpsert {
	u.Set(eventpostlink.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventPostLinkUpsert) UpdateEventID() *EventPostLinkUpsert {
	u.SetExcluded(eventpostlink.FieldEventID)
	return u
}

// SetPostID sets the "post_id" field.
func (u *EventPostLinkUpsert) SetPostID(v string) *EventPostLinkUpsert {
	u.Set(eventpostlink.FieldPostID, v)
	return u
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *EventPostLinkUpsert) UpdatePostID() *EventPostLinkUpsert {
	u.SetExcluded(eventpostlink.FieldPostID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EventPostLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventpostlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventPostLinkUpsertOne) UpdateNewValues() *EventPostLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(eventpostlink.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(eventpostlink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventPostLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventPostLinkUpsertOne) Ignore() *EventPostLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventPostLinkUpsertOne) DoNothing() *EventPostLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventPostLinkCreate.OnConflict
// documentation for more info.
func (u *EventPostLinkUpsertOne) Update(set func(*EventPostLinkUpsert)) *EventPostLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventPostLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventPostLinkUpsertOne) SetEventID(v string) *EventPostLinkUpsertOne {
	return u.Update(func(s *EventPostLinkUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventPostLinkUpsertOne) UpdateEventID() *EventPostLinkUpsertOne {
	return u.Update(func(s *EventPostLinkUpsert) {
		s.UpdateEventID()
	})
}

// SetPostID sets the "post_id" field.
func (u *EventPostLinkUpsertOne) SetPostID(v string) *EventPostLinkUpsertOne {
	return u.Update(func(s *EventPostLinkUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *EventPostLinkUpsertOne) UpdatePostID() *EventPostLinkUpsertOne {
	return u.Update(func(s *EventPostLinkUpsert) {
		s.UpdatePostID()
	})
}

// Exec executes the query.
func (u *EventPostLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventPostLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventPostLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventPostLinkUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventPostLinkUpsertOne.ID is not supported by MySQL driver. Use EventPostLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventPostLinkUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventPostLinkCreateBulk is the builder for creating many EventPostLink entities in bulk.
type EventPostLinkCreateBulk struct {
	config
	err      error
	builders []*EventPostLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the EventPostLink entities in the database.
func (_c *EventPostLinkCreateBulk) Save(ctx context.Context) ([]*EventPostLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventPostLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventPostLinkMutation)
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
func (_c *EventPostLinkCreateBulk) SaveX(ctx context.Context) []*EventPostLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventPostLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventPostLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventPostLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventPostLinkUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventPostLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventPostLinkUpsertBulk {
	_c.conflict = opts
	return &EventPostLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventPostLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventPostLinkCreateBulk) OnConflictColumns(columns ...string) *EventPostLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventPostLinkUpsertBulk{
		create: _c,
	}
}

// EventPostLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of EventPostLink nodes.
type EventPostLinkUpsertBulk struct {
	create *EventPostLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventPostLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventpostlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventPostLinkUpsertBulk) UpdateNewValues() *EventPostLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(eventpostlink.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(eventpostlink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventPostLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventPostLinkUpsertBulk) Ignore() *EventPostLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventPostLinkUpsertBulk) DoNothing() *EventPostLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventPostLinkCreateBulk.OnConflict
// documentation for more info.
func (u *EventPostLinkUpsertBulk) Update(set func(*EventPostLinkUpsert)) *EventPostLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventPostLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventPostLinkUpsertBulk) SetEventID(v string) *EventPostLinkUpsertBulk {
	return u.Update(func(s *EventPostLinkUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventPostLinkUpsertBulk) UpdateEventID() *EventPostLinkUpsertBulk {
	return u.Update(func(s *EventPostLinkUpsert) {
		s.UpdateEventID()
	})
}

// SetPostID sets the "post_id" field.
func (u *EventPostLinkUpsertBulk) SetPostID(v string) *EventPostLinkUpsertBulk {
	return u.Update(func(s *EventPostLinkUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *EventPostLinkUpsertBulk) UpdatePostID() *EventPostLinkUpsertBulk {
	return u.Update(func(s *EventPostLinkUpsert) {
		s.UpdatePostID()
	})
}

// Exec executes the query.
func (u *EventPostLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventPostLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventPostLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventPostLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
