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
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/actorusername"
)

// ActorUsernameCreate is the builder for creating a ActorUsername entity.
type ActorUsernameCreate struct {
	config
	mutation *ActorUsernameMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetActorID sets the "actor_id" field.
func (_c *ActorUsernameCreate) SetActorID(v string) *ActorUsernameCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *ActorUsernameCreate) SetUsername(v string) *ActorUsernameCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *ActorUsernameCreate) SetPlatform(v string) *ActorUsernameCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetShouldScrape sets the "should_scrape" field.
func (_c *ActorUsernameCreate) SetShouldScrape(v bool) *ActorUsernameCreate {
	_c.mutation.SetShouldScrape(v)
	return _c
}

// SetNillableShouldScrape sets the "should_scrape" field if the given value is not nil.
func (_c *ActorUsernameCreate) SetNillableShouldScrape(v *bool) *ActorUsernameCreate {
	if v != nil {
		_c.SetShouldScrape(*v)
	}
	return _c
}

// SetLastScrape sets the "last_scrape" field.
func (_c *ActorUsernameCreate) SetLastScrape(v time.Time) *ActorUsernameCreate {
	_c.mutation.SetLastScrape(v)
	return _c
}

// SetNillableLastScrape sets the "last_scrape" field if the given value is not nil.
func (_c *ActorUsernameCreate) SetNillableLastScrape(v *time.Time) *ActorUsernameCreate {
	if v != nil {
		_c.SetLastScrape(*v)
	}
	return _c
}

// SetLastProfileUpdate sets the "last_profile_update" field.
func (_c *ActorUsernameCreate) SetLastProfileUpdate(v time.Time) *ActorUsernameCreate {
	_c.mutation.SetLastProfileUpdate(v)
	return _c
}

// SetNillableLastProfileUpdate sets the "last_profile_update" field if the given value is not nil.
func (_c *ActorUsernameCreate) SetNillableLastProfileUpdate(v *time.Time) *ActorUsernameCreate {
	if v != nil {
		_c.SetLastProfileUpdate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActorUsernameCreate) SetID(v string) *ActorUsernameCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActorUsernameCreate) SetNillableID(v *string) *ActorUsernameCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetActor sets the "actor" edge to the Actor entity.
func (_c *ActorUsernameCreate) SetActor(v *Actor) *ActorUsernameCreate {
	return _c.SetActorID(v.ID)
}

// Mutation returns the ActorUsernameMutation object of the builder.
func (_c *ActorUsernameCreate) Mutation() *ActorUsernameMutation {
	return _c.mutation
}

// Save creates the ActorUsername in the database.
func (_c *ActorUsernameCreate) Save(ctx context.Context) (*ActorUsername, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActorUsernameCreate) SaveX(ctx context.Context) *ActorUsername {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActorUsernameCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActorUsernameCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActorUsernameCreate) defaults() {
	if _, ok := _c.mutation.ShouldScrape(); !ok {
		v := actorusername.DefaultShouldScrape
		_c.mutation.SetShouldScrape(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := actorusername.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActorUsernameCreate) check() error {
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "ActorUsername.actor_id"`)}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "ActorUsername.username"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "ActorUsername.platform"`)}
	}
	if _, ok := _c.mutation.ShouldScrape(); !ok {
		return &ValidationError{Name: "should_scrape", err: errors.New(`ent: missing required field "ActorUsername.should_scrape"`)}
	}
	if len(_c.mutation.ActorIDs()) == 0 {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required edge "ActorUsername.actor"`)}
	}
	return nil
}

func (_c *ActorUsernameCreate) sqlSave(ctx context.Context) (*ActorUsername, error) {
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
			return nil, fmt.Errorf("unexpected ActorUsername.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActorUsernameCreate) createSpec() (*ActorUsername, *sqlgraph.CreateSpec) {
	var (
		_node = &ActorUsername{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actorusername.Table, sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(actorusername.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(actorusername.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.ShouldScrape(); ok {
		_spec.SetField(actorusername.FieldShouldScrape, field.TypeBool, value)
		_node.ShouldScrape = value
	}
	if value, ok := _c.mutation.LastScrape(); ok {
		_spec.SetField(actorusername.FieldLastScrape, field.TypeTime, value)
		_node.LastScrape = &value
	}
	if value, ok := _c.mutation.LastProfileUpdate(); ok {
		_spec.SetField(actorusername.FieldLastProfileUpdate, field.TypeTime, value)
		_node.LastProfileUpdate = &value
	}
	if nodes := _c.mutation.ActorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actorusername.ActorTable,
			Columns: []string{actorusername.ActorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ActorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActorUsername.Create().
//		SetActorID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActorUsernameUpsert) {
//			SetActorID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActorUsernameCreate) OnConflict(opts ...sql.ConflictOption) *ActorUsernameUpsertOne {
	_c.conflict = opts
	return &ActorUsernameUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActorUsername.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActorUsernameCreate) OnConflictColumns(columns ...string) *ActorUsernameUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActorUsernameUpsertOne{
		create: _c,
	}
}

type (
	// ActorUsernameUpsertOne is the builder for "upsert"-ing
	//  one ActorUsername node.
	ActorUsernameUpsertOne struct {
		create *ActorUsernameCreate
	}

	// ActorUsernameUpsert is the "OnConflict" setter.
	ActorUsernameUpsert struct {
		*sql.UpdateSet
	}
)

// SetActorID sets the "actor_id" field.
func (u *ActorUsernameUpsert) SetActorID(v string) *ActorUsernameUpsert {
	u.Set(actorusername.FieldActorID, v)
	return u
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *ActorUsernameUpsert) UpdateActorID() *ActorUsernameUpsert {
	u.SetExcluded(actorusername.FieldActorID)
	return u
}

// SetUsername sets the "username" field.
func (u *ActorUsernameUpsert) SetUsername(v string) *ActorUsernameUpsert {
	u.Set(actorusername.FieldUsername, v)
	return u
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *ActorUsernameUpsert) UpdateUsername() *ActorUsernameUpsert {
	u.SetExcluded(actorusername.FieldUsername)
	return u
}

// SetPlatform sets the "platform" field.
func (u *ActorUsernameUpsert) SetPlatform(v string) *ActorUsernameUpsert {
	u.Set(actorusername.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *ActorUsernameUpsert) UpdatePlatform() *ActorUsernameUpsert {
	u.SetExcluded(actorusername.FieldPlatform)
	return u
}

// SetShouldScrape sets the "should_scrape" field.
func (u *ActorUsernameUpsert) SetShouldScrape(v bool) *ActorUsernameUpsert {
	u.Set(actorusername.FieldShouldScrape, v)
	return u
}

// UpdateShouldScrape sets the "should_scrape" field to the value that was provided on create.
func (u *ActorUsernameUpsert) UpdateShouldScrape() *ActorUsernameUpsert {
	u.SetExcluded(actorusername.FieldShouldScrape)
	return u
}

// SetLastScrape sets the "last_scrape" field.
func (u *ActorUsernameUpsert) SetLastScrape(v time.Time) *ActorUsernameUpsert {
	u.Set(actorusername.FieldLastScrape, v)
	return u
}

// UpdateLastScrape sets the "last_scrape" field to the value that was provided on create.
func (u *ActorUsernameUpsert) UpdateLastScrape() *ActorUsernameUpsert {
	u.SetExcluded(actorusername.FieldLastScrape)
	return u
}

// ClearLastScrape clears the value of the "last_scrape" field.
func (u *ActorUsernameUpsert) ClearLastScrape() *ActorUsernameUpsert {
	u.SetNull(actorusername.FieldLastScrape)
	return u
}

// SetLastProfileUpdate sets the "last_profile_update" field.
func (u *ActorUsernameUpsert) SetLastProfileUpdate(v time.Time) *ActorUsernameUpsert {
	u.Set(actorusername.FieldLastProfileUpdate, v)
	return u
}

// UpdateLastProfileUpdate sets the "last_profile_update" field to the value that was provided on create.
func (u *ActorUsernameUpsert) UpdateLastProfileUpdate() *ActorUsernameUpsert {
	u.SetExcluded(actorusername.FieldLastProfileUpdate)
	return u
}

// ClearLastProfileUpdate clears the value of the "last_profile_update" field.
func (u *ActorUsernameUpsert) ClearLastProfileUpdate() *ActorUsernameUpsert {
	u.SetNull(actorusername.FieldLastProfileUpdate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActorUsername.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actorusername.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActorUsernameUpsertOne) UpdateNewValues() *ActorUsernameUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(actorusername.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActorUsername.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActorUsernameUpsertOne) Ignore() *ActorUsernameUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActorUsernameUpsertOne) DoNothing() *ActorUsernameUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActorUsernameCreate.OnConflict
// documentation for more info.
func (u *ActorUsernameUpsertOne) Update(set func(*ActorUsernameUpsert)) *ActorUsernameUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActorUsernameUpsert{UpdateSet: update})
	}))
	return u
}

// SetActorID sets the "actor_id" field.
func (u *ActorUsernameUpsertOne) SetActorID(v string) *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *ActorUsernameUpsertOne) UpdateActorID() *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateActorID()
	})
}

// SetUsername sets the "username" field.
func (u *ActorUsernameUpsertOne) SetUsername(v string) *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *ActorUsernameUpsertOne) UpdateUsername() *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateUsername()
	})
}

// SetPlatform sets the "platform" field.
func (u *ActorUsernameUpsertOne) SetPlatform(v string) *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *ActorUsernameUpsertOne) UpdatePlatform() *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdatePlatform()
	})
}

// SetShouldScrape sets the "should_scrape" field.
func (u *ActorUsernameUpsertOne) SetShouldScrape(v bool) *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetShouldScrape(v)
	})
}

// UpdateShouldScrape sets the "should_scrape" field to the value that was provided on create.
func (u *ActorUsernameUpsertOne) UpdateShouldScrape() *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateShouldScrape()
	})
}

// SetLastScrape sets the "last_scrape" field.
func (u *ActorUsernameUpsertOne) SetLastScrape(v time.Time) *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetLastScrape(v)
	})
}

// UpdateLastScrape sets the "last_scrape" field to the value that was provided on create.
func (u *ActorUsernameUpsertOne) UpdateLastScrape() *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateLastScrape()
	})
}

// ClearLastScrape clears the value of the "last_scrape" field.
func (u *ActorUsernameUpsertOne) ClearLastScrape() *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.ClearLastScrape()
	})
}

// SetLastProfileUpdate sets the "last_profile_update" field.
func (u *ActorUsernameUpsertOne) SetLastProfileUpdate(v time.Time) *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetLastProfileUpdate(v)
	})
}

// UpdateLastProfileUpdate sets the "last_profile_update" field to the value that was provided on create.
func (u *ActorUsernameUpsertOne) UpdateLastProfileUpdate() *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateLastProfileUpdate()
	})
}

// ClearLastProfileUpdate clears the value of the "last_profile_update" field.
func (u *ActorUsernameUpsertOne) ClearLastProfileUpdate() *ActorUsernameUpsertOne {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.ClearLastProfileUpdate()
	})
}

// Exec executes the query.
func (u *ActorUsernameUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActorUsernameCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActorUsernameUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActorUsernameUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ActorUsernameUpsertOne.ID is not supported by MySQL driver. Use ActorUsernameUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActorUsernameUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActorUsernameCreateBulk is the builder for creating many ActorUsername entities in bulk.
type ActorUsernameCreateBulk struct {
	config
	err      error
	builders []*ActorUsernameCreate
	conflict []sql.ConflictOption
}

// Save creates the ActorUsername entities in the database.
func (_c *ActorUsernameCreateBulk) Save(ctx context.Context) ([]*ActorUsername, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActorUsername, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActorUsernameMutation)
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
func (_c *ActorUsernameCreateBulk) SaveX(ctx context.Context) []*ActorUsername {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActorUsernameCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActorUsernameCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActorUsername.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActorUsernameUpsert) {
//			SetActorID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActorUsernameCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActorUsernameUpsertBulk {
	_c.conflict = opts
	return &ActorUsernameUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActorUsername.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActorUsernameCreateBulk) OnConflictColumns(columns ...string) *ActorUsernameUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActorUsernameUpsertBulk{
		create: _c,
	}
}

// ActorUsernameUpsertBulk is the builder for "upsert"-ing
// a bulk of ActorUsername nodes.
type ActorUsernameUpsertBulk struct {
	create *ActorUsernameCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActorUsername.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actorusername.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActorUsernameUpsertBulk) UpdateNewValues() *ActorUsernameUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(actorusername.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActorUsername.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActorUsernameUpsertBulk) Ignore() *ActorUsernameUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActorUsernameUpsertBulk) DoNothing() *ActorUsernameUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActorUsernameCreateBulk.OnConflict
// documentation for more info.
func (u *ActorUsernameUpsertBulk) Update(set func(*ActorUsernameUpsert)) *ActorUsernameUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActorUsernameUpsert{UpdateSet: update})
	}))
	return u
}

// SetActorID sets the "actor_id" field.
func (u *ActorUsernameUpsertBulk) SetActorID(v string) *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *ActorUsernameUpsertBulk) UpdateActorID() *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateActorID()
	})
}

// SetUsername sets the "username" field.
func (u *ActorUsernameUpsertBulk) SetUsername(v string) *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *ActorUsernameUpsertBulk) UpdateUsername() *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateUsername()
	})
}

// SetPlatform sets the "platform" field.
func (u *ActorUsernameUpsertBulk) SetPlatform(v string) *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *ActorUsernameUpsertBulk) UpdatePlatform() *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdatePlatform()
	})
}

// SetShouldScrape sets the "should_scrape" field.
func (u *ActorUsernameUpsertBulk) SetShouldScrape(v bool) *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetShouldScrape(v)
	})
}

// UpdateShouldScrape sets the "should_scrape" field to the value that was provided on create.
func (u *ActorUsernameUpsertBulk) UpdateShouldScrape() *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateShouldScrape()
	})
}

// SetLastScrape sets the "last_scrape" field.
func (u *ActorUsernameUpsertBulk) SetLastScrape(v time.Time) *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetLastScrape(v)
	})
}

// UpdateLastScrape sets the "last_scrape" field to the value that was provided on create.
func (u *ActorUsernameUpsertBulk) UpdateLastScrape() *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateLastScrape()
	})
}

// ClearLastScrape clears the value of the "last_scrape" field.
func (u *ActorUsernameUpsertBulk) ClearLastScrape() *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.ClearLastScrape()
	})
}

// SetLastProfileUpdate sets the "last_profile_update" field.
func (u *ActorUsernameUpsertBulk) SetLastProfileUpdate(v time.Time) *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.SetLastProfileUpdate(v)
	})
}

// UpdateLastProfileUpdate sets the "last_profile_update" field to the value that was provided on create.
func (u *ActorUsernameUpsertBulk) UpdateLastProfileUpdate() *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.UpdateLastProfileUpdate()
	})
}

// ClearLastProfileUpdate clears the value of the "last_profile_update" field.
func (u *ActorUsernameUpsertBulk) ClearLastProfileUpdate() *ActorUsernameUpsertBulk {
	return u.Update(func(s *ActorUsernameUpsert) {
		s.ClearLastProfileUpdate()
	})
}

// Exec executes the query.
func (u *ActorUsernameUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActorUsernameCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActorUsernameCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActorUsernameUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
