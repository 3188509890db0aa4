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
	"github.com/civiclens/civiclens/ent/eventactorlink"
)

// EventActorLinkCreate is the builder for creating a EventActorLink entity.
type EventActorLinkCreate struct {
	config
	mutation *EventActorLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *EventActorLinkCreate) SetEventID(v string) *EventActorLinkCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetActorHandle sets the "actor_handle" field.
func (_c *EventActorLinkCreate) SetActorHandle(v string) *EventActorLinkCreate {
	_c.mutation.SetActorHandle(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *EventActorLinkCreate) SetPlatform(v string) *EventActorLinkCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetActorType sets the "actor_type" field.
func (_c *EventActorLinkCreate) SetActorType(v string) *EventActorLinkCreate {
	_c.mutation.SetActorType(v)
	return _c
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_c *EventActorLinkCreate) SetNillableActorType(v *string) *EventActorLinkCreate {
	if v != nil {
		_c.SetActorType(*v)
	}
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *EventActorLinkCreate) SetActorID(v string) *EventActorLinkCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_c *EventActorLinkCreate) SetNillableActorID(v *string) *EventActorLinkCreate {
	if v != nil {
		_c.SetActorID(*v)
	}
	return _c
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (_c *EventActorLinkCreate) SetUnknownActorID(v string) *EventActorLinkCreate {
	_c.mutation.SetUnknownActorID(v)
	return _c
}

// SetNillableUnknownActorID sets the "unknown_actor_id" field if the given value is not nil.
func (_c *EventActorLinkCreate) SetNillableUnknownActorID(v *string) *EventActorLinkCreate {
	if v != nil {
		_c.SetUnknownActorID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventActorLinkCreate) SetCreatedAt(v time.Time) *EventActorLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventActorLinkCreate) SetNillableCreatedAt(v *time.Time) *EventActorLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventActorLinkCreate) SetID(v string) *EventActorLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EventActorLinkCreate) SetNillableID(v *string) *EventActorLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *EventActorLinkCreate) SetEvent(v *Event) *EventActorLinkCreate {
	return _c.SetEventID(v.ID)
}

// Mutation returns the EventActorLinkMutation object of the builder.
func (_c *EventActorLinkCreate) Mutation() *EventActorLinkMutation {
	return _c.mutation
}

// Save creates the EventActorLink in the database.
func (_c *EventActorLinkCreate) Save(ctx context.Context) (*EventActorLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventActorLinkCreate) SaveX(ctx context.Context) *EventActorLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventActorLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventActorLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventActorLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eventactorlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := eventactorlink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventActorLinkCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventActorLink.event_id"`)}
	}
	if _, ok := _c.mutation.ActorHandle(); !ok {
		return &ValidationError{Name: "actor_handle", err: errors.New(`ent: missing required field "EventActorLink.actor_handle"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "EventActorLink.platform"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EventActorLink.created_at"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "EventActorLink.event"`)}
	}
	return nil
}

func (_c *EventActorLinkCreate) sqlSave(ctx context.Context) (*EventActorLink, error) {
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
			return nil, fmt.Errorf("unexpected EventActorLink.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventActorLinkCreate) createSpec() (*EventActorLink, *sqlgraph.CreateSpec) {
	var (
		_node = &EventActorLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventactorlink.Table, sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActorHandle(); ok {
		_spec.SetField(eventactorlink.FieldActorHandle, field.TypeString, value)
		_node.ActorHandle = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(eventactorlink.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.ActorType(); ok {
		_spec.SetField(eventactorlink.FieldActorType, field.TypeString, value)
		_node.ActorType = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(eventactorlink.FieldActorID, field.TypeString, value)
		_node.ActorID = &value
	}
	if value, ok := _c.mutation.UnknownActorID(); ok {
		_spec.SetField(eventactorlink.FieldUnknownActorID, field.TypeString, value)
		_node.UnknownActorID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eventactorlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventactorlink.EventTable,
			Columns: []string{eventactorlink.EventColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventActorLink.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventActorLinkUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventActorLinkCreate) OnConflict(opts ...sql.ConflictOption) *EventActorLinkUpsertOne {
	_c.conflict = opts
	return &EventActorLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventActorLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventActorLinkCreate) OnConflictColumns(columns ...string) *EventActorLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventActorLinkUpsertOne{
		create: _c,
	}
}

type (
	// EventActorLinkUpsertOne is the builder for "upsert"-ing
	//  one EventActorLink node.
	EventActorLinkUpsertOne struct {
		create *EventActorLinkCreate
	}

	// EventActorLinkUpsert is the "OnConflict" setter.
	EventActorLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *EventActorLinkUpsert) SetEventID(v string) *EventActorLinkUpsert {
	u.Set(eventactorlink.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventActorLinkUpsert) UpdateEventID() *EventActorLinkUpsert {
	u.SetExcluded(eventactorlink.FieldEventID)
	return u
}

// SetActorHandle sets the "actor_handle" field.
func (u *EventActorLinkUpsert) SetActorHandle(v string) *EventActorLinkUpsert {
	u.Set(eventactorlink.FieldActorHandle, v)
	return u
}

// UpdateActorHandle sets the "actor_handle" field to the value that was provided on create.
func (u *EventActorLinkUpsert) UpdateActorHandle() *EventActorLinkUpsert {
	u.SetExcluded(eventactorlink.FieldActorHandle)
	return u
}

// SetPlatform sets the "platform" field.
func (u *EventActorLinkUpsert) SetPlatform(v string) *EventActorLinkUpsert {
	u.Set(eventactorlink.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *EventActorLinkUpsert) UpdatePlatform() *EventActorLinkUpsert {
	u.SetExcluded(eventactorlink.FieldPlatform)
	return u
}

// SetActorType sets the "actor_type" field.
func (u *EventActorLinkUpsert) SetActorType(v string) *EventActorLinkUpsert {
	u.Set(eventactorlink.FieldActorType, v)
	return u
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *EventActorLinkUpsert) UpdateActorType() *EventActorLinkUpsert {
	u.SetExcluded(eventactorlink.FieldActorType)
	return u
}

// ClearActorType clears the value of the "actor_type" field.
func (u *EventActorLinkUpsert) ClearActorType() *EventActorLinkUpsert {
	u.SetNull(eventactorlink.FieldActorType)
	return u
}

// SetActorID sets the "actor_id" field.
func (u *EventActorLinkUpsert) SetActorID(v string) *EventActorLinkUpsert {
	u.Set(eventactorlink.FieldActorID, v)
	return u
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *EventActorLinkUpsert) UpdateActorID() *EventActorLinkUpsert {
	u.SetExcluded(eventactorlink.FieldActorID)
	return u
}

// ClearActorID clears the value of the "actor_id" field.
func (u *EventActorLinkUpsert) ClearActorID() *EventActorLinkUpsert {
	u.SetNull(eventactorlink.FieldActorID)
	return u
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (u *EventActorLinkUpsert) SetUnknownActorID(v string) *EventActorLinkUpsert {
	u.Set(eventactorlink.FieldUnknownActorID, v)
	return u
}

// UpdateUnknownActorID sets the "unknown_actor_id" field to the value that was provided on create.
func (u *EventActorLinkUpsert) UpdateUnknownActorID() *EventActorLinkUpsert {
	u.SetExcluded(eventactorlink.FieldUnknownActorID)
	return u
}

// ClearUnknownActorID clears the value of the "unknown_actor_id" field.
func (u *EventActorLinkUpsert) ClearUnknownActorID() *EventActorLinkUpsert {
	u.SetNull(eventactorlink.FieldUnknownActorID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EventActorLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventactorlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventActorLinkUpsertOne) UpdateNewValues() *EventActorLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(eventactorlink.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(eventactorlink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventActorLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventActorLinkUpsertOne) Ignore() *EventActorLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventActorLinkUpsertOne) DoNothing() *EventActorLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventActorLinkCreate.OnConflict
// documentation for more info.
func (u *EventActorLinkUpsertOne) Update(set func(*EventActorLinkUpsert)) *EventActorLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventActorLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventActorLinkUpsertOne) SetEventID(v string) *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventActorLinkUpsertOne) UpdateEventID() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateEventID()
	})
}

// SetActorHandle sets the "actor_handle" field.
func (u *EventActorLinkUpsertOne) SetActorHandle(v string) *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetActorHandle(v)
	})
}

// UpdateActorHandle sets the "actor_handle" field to the value that was provided on create.
func (u *EventActorLinkUpsertOne) UpdateActorHandle() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateActorHandle()
	})
}

// SetPlatform sets the "platform" field.
func (u *EventActorLinkUpsertOne) SetPlatform(v string) *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *EventActorLinkUpsertOne) UpdatePlatform() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdatePlatform()
	})
}

// SetActorType sets the "actor_type" field.
func (u *EventActorLinkUpsertOne) SetActorType(v string) *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *EventActorLinkUpsertOne) UpdateActorType() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateActorType()
	})
}

// ClearActorType clears the value of the "actor_type" field.
func (u *EventActorLinkUpsertOne) ClearActorType() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.ClearActorType()
	})
}

// SetActorID sets the "actor_id" field.
func (u *EventActorLinkUpsertOne) SetActorID(v string) *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *EventActorLinkUpsertOne) UpdateActorID() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateActorID()
	})
}

// ClearActorID clears the value of the "actor_id" field.
func (u *EventActorLinkUpsertOne) ClearActorID() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.ClearActorID()
	})
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (u *EventActorLinkUpsertOne) SetUnknownActorID(v string) *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetUnknownActorID(v)
	})
}

// UpdateUnknownActorID sets the "unknown_actor_id" field to the value that was provided on create.
func (u *EventActorLinkUpsertOne) UpdateUnknownActorID() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateUnknownActorID()
	})
}

// ClearUnknownActorID clears the value of the "unknown_actor_id" field.
func (u *EventActorLinkUpsertOne) ClearUnknownActorID() *EventActorLinkUpsertOne {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.ClearUnknownActorID()
	})
}

// Exec executes the query.
func (u *EventActorLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventActorLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventActorLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventActorLinkUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventActorLinkUpsertOne.ID is not supported by MySQL driver. Use EventActorLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventActorLinkUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventActorLinkCreateBulk is the builder for creating many EventActorLink entities in bulk.
type EventActorLinkCreateBulk struct {
	config
	err      error
	builders []*EventActorLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the EventActorLink entities in the database.
func (_c *EventActorLinkCreateBulk) Save(ctx context.Context) ([]*EventActorLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventActorLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventActorLinkMutation)
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
func (_c *EventActorLinkCreateBulk) SaveX(ctx context.Context) []*EventActorLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventActorLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventActorLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventActorLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventActorLinkUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventActorLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventActorLinkUpsertBulk {
	_c.conflict = opts
	return &EventActorLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventActorLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventActorLinkCreateBulk) OnConflictColumns(columns ...string) *EventActorLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventActorLinkUpsertBulk{
		create: _c,
	}
}

// EventActorLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of EventActorLink nodes.
type EventActorLinkUpsertBulk struct {
	create *EventActorLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventActorLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventactorlink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventActorLinkUpsertBulk) UpdateNewValues() *EventActorLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(eventactorlink.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(eventactorlink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventActorLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventActorLinkUpsertBulk) Ignore() *EventActorLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventActorLinkUpsertBulk) DoNothing() *EventActorLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventActorLinkCreateBulk.OnConflict
// documentation for more info.
func (u *EventActorLinkUpsertBulk) Update(set func(*EventActorLinkUpsert)) *EventActorLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventActorLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventActorLinkUpsertBulk) SetEventID(v string) *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventActorLinkUpsertBulk) UpdateEventID() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateEventID()
	})
}

// SetActorHandle sets the "actor_handle" field.
func (u *EventActorLinkUpsertBulk) SetActorHandle(v string) *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetActorHandle(v)
	})
}

// UpdateActorHandle sets the "actor_handle" field to the value that was provided on create.
func (u *EventActorLinkUpsertBulk) UpdateActorHandle() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateActorHandle()
	})
}

// SetPlatform sets the "platform" field.
func (u *EventActorLinkUpsertBulk) SetPlatform(v string) *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *EventActorLinkUpsertBulk) UpdatePlatform() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdatePlatform()
	})
}

// SetActorType sets the "actor_type" field.
func (u *EventActorLinkUpsertBulk) SetActorType(v string) *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *EventActorLinkUpsertBulk) UpdateActorType() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateActorType()
	})
}

// ClearActorType clears the value of the "actor_type" field.
func (u *EventActorLinkUpsertBulk) ClearActorType() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.ClearActorType()
	})
}

// SetActorID sets the "actor_id" field.
func (u *EventActorLinkUpsertBulk) SetActorID(v string) *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *EventActorLinkUpsertBulk) UpdateActorID() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateActorID()
	})
}

// ClearActorID clears the value of the "actor_id" field.
func (u *EventActorLinkUpsertBulk) ClearActorID() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.ClearActorID()
	})
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (u *EventActorLinkUpsertBulk) SetUnknownActorID(v string) *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.SetUnknownActorID(v)
	})
}

// UpdateUnknownActorID sets the "unknown_actor_id" field to the value that was provided on create.
func (u *EventActorLinkUpsertBulk) UpdateUnknownActorID() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.UpdateUnknownActorID()
	})
}

// ClearUnknownActorID clears the value of the "unknown_actor_id" field.
func (u *EventActorLinkUpsertBulk) ClearUnknownActorID() *EventActorLinkUpsertBulk {
	return u.Update(func(s *EventActorLinkUpsert) {
		s.ClearUnknownActorID()
	})
}

// Exec executes the query.
func (u *EventActorLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventActorLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventActorLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventActorLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
