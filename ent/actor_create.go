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
	"github.com/civiclens/civiclens/ent/postactor"
)

// ActorCreate is the builder for creating a Actor entity.
type ActorCreate struct {
	config
	mutation *ActorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetActorType sets the "actor_type" field.
func (_c *ActorCreate) SetActorType(v actor.ActorType) *ActorCreate {
	_c.mutation.SetActorType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ActorCreate) SetName(v string) *ActorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAbout sets the "about" field.
func (_c *ActorCreate) SetAbout(v string) *ActorCreate {
	_c.mutation.SetAbout(v)
	return _c
}

// SetNillableAbout sets the "about" field if the given value is not nil.
func (_c *ActorCreate) SetNillableAbout(v *string) *ActorCreate {
	if v != nil {
		_c.SetAbout(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ActorCreate) SetCity(v string) *ActorCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ActorCreate) SetNillableCity(v *string) *ActorCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ActorCreate) SetState(v string) *ActorCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ActorCreate) SetNillableState(v *string) *ActorCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetProfileData sets the "profile_data" field.
func (_c *ActorCreate) SetProfileData(v map[string]interface{}) *ActorCreate {
	_c.mutation.SetProfileData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActorCreate) SetCreatedAt(v time.Time) *ActorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActorCreate) SetNillableCreatedAt(v *time.Time) *ActorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActorCreate) SetID(v string) *ActorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActorCreate) SetNillableID(v *string) *ActorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddUsernameIDs adds the "usernames" edge to the ActorUsername entity by IDs.
func (_c *ActorCreate) AddUsernameIDs(ids ...string) *ActorCreate {
	_c.mutation.AddUsernameIDs(ids...)
	return _c
}

// AddUsernames adds the "usernames" edges to the ActorUsername entity.
func (_c *ActorCreate) AddUsernames(v ...*ActorUsername) *ActorCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUsernameIDs(ids...)
}

// AddPostLinkIDs adds the "post_links" edge to the PostActor entity by IDs.
func (_c *ActorCreate) AddPostLinkIDs(ids ...string) *ActorCreate {
	_c.mutation.AddPostLinkIDs(ids...)
	return _c
}

// AddPostLinks adds the "post_links" edges to the PostActor entity.
func (_c *ActorCreate) AddPostLinks(v ...*PostActor) *ActorCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPostLinkIDs(ids...)
}

// Mutation returns the ActorMutation object of the builder.
func (_c *ActorCreate) Mutation() *ActorMutation {
	return _c.mutation
}

// Save creates the Actor in the database.
func (_c *ActorCreate) Save(ctx context.Context) (*Actor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActorCreate) SaveX(ctx context.Context) *Actor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := actor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := actor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActorCreate) check() error {
	if _, ok := _c.mutation.ActorType(); !ok {
		return &ValidationError{Name: "actor_type", err: errors.New(`ent: missing required field "Actor.actor_type"`)}
	}
	if v, ok := _c.mutation.ActorType(); ok {
		if err := actor.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Actor.actor_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Actor.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Actor.created_at"`)}
	}
	return nil
}

func (_c *ActorCreate) sqlSave(ctx context.Context) (*Actor, error) {
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
			return nil, fmt.Errorf("unexpected Actor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActorCreate) createSpec() (*Actor, *sqlgraph.CreateSpec) {
	var (
		_node = &Actor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actor.Table, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActorType(); ok {
		_spec.SetField(actor.FieldActorType, field.TypeEnum, value)
		_node.ActorType = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(actor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.About(); ok {
		_spec.SetField(actor.FieldAbout, field.TypeString, value)
		_node.About = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(actor.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(actor.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ProfileData(); ok {
		_spec.SetField(actor.FieldProfileData, field.TypeJSON, value)
		_node.ProfileData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(actor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UsernamesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.UsernamesTable,
			Columns: []string{actor.UsernamesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PostLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.PostLinksTable,
			Columns: []string{actor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Actor.Create().
//		SetActorType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActorUpsert) {
//			SetActorType(v+v).
//		}).
//		Exec(ctx)
func (_c *ActorCreate) OnConflict(opts ...sql.ConflictOption) *ActorUpsertOne {
	_c.conflict = opts
	return &ActorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Actor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActorCreate) OnConflictColumns(columns ...string) *ActorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActorUpsertOne{
		create: _c,
	}
}

type (
	// ActorUpsertOne is the builder for "upsert"-ing
	//  one Actor node.
	ActorUpsertOne struct {
		create *ActorCreate
	}

	// ActorUpsert is the "OnConflict" setter.
	ActorUpsert struct {
		*sql.UpdateSet
	}
)

// SetActorType sets the "actor_type" field.
func (u *ActorUpsert) SetActorType(v actor.ActorType) *ActorUpsert {
	u.Set(actor.FieldActorType, v)
	return u
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *ActorUpsert) UpdateActorType() *ActorUpsert {
	u.SetExcluded(actor.FieldActorType)
	return u
}

// SetName sets the "name" field.
func (u *ActorUpsert) SetName(v string) *ActorUpsert {
	u.Set(actor.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActorUpsert) UpdateName() *ActorUpsert {
	u.SetExcluded(actor.FieldName)
	return u
}

// SetAbout sets the "about" field.
func (u *ActorUpsert) SetAbout(v string) *ActorUpsert {
	u.Set(actor.FieldAbout, v)
	return u
}

// UpdateAbout sets the "about" field to the value that was provided on create.
func (u *ActorUpsert) UpdateAbout() *ActorUpsert {
	u.SetExcluded(actor.FieldAbout)
	return u
}

// ClearAbout clears the value of the "about" field.
func (u *ActorUpsert) ClearAbout() *ActorUpsert {
	u.SetNull(actor.FieldAbout)
	return u
}

// SetCity sets the "city" field.
func (u *ActorUpsert) SetCity(v string) *ActorUpsert {
	u.Set(actor.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ActorUpsert) UpdateCity() *ActorUpsert {
	u.SetExcluded(actor.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *ActorUpsert) ClearCity() *ActorUpsert {
	u.SetNull(actor.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *ActorUpsert) SetState(v string) *ActorUpsert {
	u.Set(actor.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ActorUpsert) UpdateState() *ActorUpsert {
	u.SetExcluded(actor.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *ActorUpsert) ClearState() *ActorUpsert {
	u.SetNull(actor.FieldState)
	return u
}

// SetProfileData sets the "profile_data" field.
func (u *ActorUpsert) SetProfileData(v map[string]interface{}) *ActorUpsert {
	u.Set(actor.FieldProfileData, v)
	return u
}

// UpdateProfileData sets the "profile_data" field to the value that was provided on create.
func (u *ActorUpsert) UpdateProfileData() *ActorUpsert {
	u.SetExcluded(actor.FieldProfileData)
	return u
}

// ClearProfileData clears the value of the "profile_data" field.
func (u *ActorUpsert) ClearProfileData() *ActorUpsert {
	u.SetNull(actor.FieldProfileData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Actor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActorUpsertOne) UpdateNewValues() *ActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(actor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(actor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Actor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActorUpsertOne) Ignore() *ActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActorUpsertOne) DoNothing() *ActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActorCreate.OnConflict
// documentation for more info.
func (u *ActorUpsertOne) Update(set func(*ActorUpsert)) *ActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActorUpsert{UpdateSet: update})
	}))
	return u
}

// SetActorType sets the "actor_type" field.
func (u *ActorUpsertOne) SetActorType(v actor.ActorType) *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *ActorUpsertOne) UpdateActorType() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateActorType()
	})
}

// SetName sets the "name" field.
func (u *ActorUpsertOne) SetName(v string) *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActorUpsertOne) UpdateName() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateName()
	})
}

// SetAbout sets the "about" field.
func (u *ActorUpsertOne) SetAbout(v string) *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.SetAbout(v)
	})
}

// UpdateAbout sets the "about" field to the value that was provided on create.
func (u *ActorUpsertOne) UpdateAbout() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateAbout()
	})
}

// ClearAbout clears the value of the "about" field.
func (u *ActorUpsertOne) ClearAbout() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.ClearAbout()
	})
}

// SetCity sets the "city" field.
func (u *ActorUpsertOne) SetCity(v string) *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ActorUpsertOne) UpdateCity() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ActorUpsertOne) ClearCity() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *ActorUpsertOne) SetState(v string) *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ActorUpsertOne) UpdateState() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *ActorUpsertOne) ClearState() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.ClearState()
	})
}

// SetProfileData sets the "profile_data" field.
func (u *ActorUpsertOne) SetProfileData(v map[string]interface{}) *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.SetProfileData(v)
	})
}

// UpdateProfileData sets the "profile_data" field to the value that was provided on create.
func (u *ActorUpsertOne) UpdateProfileData() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateProfileData()
	})
}

// ClearProfileData clears the value of the "profile_data" field.
func (u *ActorUpsertOne) ClearProfileData() *ActorUpsertOne {
	return u.Update(func(s *ActorUpsert) {
		s.ClearProfileData()
	})
}

// Exec executes the query.
func (u *ActorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ActorUpsertOne.ID is not supported by MySQL driver. Use ActorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActorCreateBulk is the builder for creating many Actor entities in bulk.
type ActorCreateBulk struct {
	config
	err      error
	builders []*ActorCreate
	conflict []sql.ConflictOption
}

// Save creates the Actor entities in the database.
func (_c *ActorCreateBulk) Save(ctx context.Context) ([]*Actor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Actor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActorMutation)
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
func (_c *ActorCreateBulk) SaveX(ctx context.Context) []*Actor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Actor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActorUpsert) {
//			SetActorType(v+v).
//		}).
//		Exec(ctx)
func (_c *ActorCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActorUpsertBulk {
	_c.conflict = opts
	return &ActorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Actor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActorCreateBulk) OnConflictColumns(columns ...string) *ActorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActorUpsertBulk{
		create: _c,
	}
}

// ActorUpsertBulk is the builder for "upsert"-ing
// a bulk of Actor nodes.
type ActorUpsertBulk struct {
	create *ActorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Actor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActorUpsertBulk) UpdateNewValues() *ActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(actor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(actor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Actor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActorUpsertBulk) Ignore() *ActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActorUpsertBulk) DoNothing() *ActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActorCreateBulk.OnConflict
// documentation for more info.
func (u *ActorUpsertBulk) Update(set func(*ActorUpsert)) *ActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActorUpsert{UpdateSet: update})
	}))
	return u
}

// SetActorType sets the "actor_type" field.
func (u *ActorUpsertBulk) SetActorType(v actor.ActorType) *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *ActorUpsertBulk) UpdateActorType() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateActorType()
	})
}

// SetName sets the "name" field.
func (u *ActorUpsertBulk) SetName(v string) *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActorUpsertBulk) UpdateName() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateName()
	})
}

// SetAbout sets the "about" field.
func (u *ActorUpsertBulk) SetAbout(v string) *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.SetAbout(v)
	})
}

// UpdateAbout sets the "about" field to the value that was provided on create.
func (u *ActorUpsertBulk) UpdateAbout() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateAbout()
	})
}

// ClearAbout clears the value of the "about" field.
func (u *ActorUpsertBulk) ClearAbout() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.ClearAbout()
	})
}

// SetCity sets the "city" field.
func (u *ActorUpsertBulk) SetCity(v string) *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ActorUpsertBulk) UpdateCity() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ActorUpsertBulk) ClearCity() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *ActorUpsertBulk) SetState(v string) *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ActorUpsertBulk) UpdateState() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *ActorUpsertBulk) ClearState() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.ClearState()
	})
}

// SetProfileData sets the "profile_data" field.
func (u *ActorUpsertBulk) SetProfileData(v map[string]interface{}) *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.SetProfileData(v)
	})
}

// UpdateProfileData sets the "profile_data" field to the value that was provided on create.
func (u *ActorUpsertBulk) UpdateProfileData() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.UpdateProfileData()
	})
}

// ClearProfileData clears the value of the "profile_data" field.
func (u *ActorUpsertBulk) ClearProfileData() *ActorUpsertBulk {
	return u.Update(func(s *ActorUpsert) {
		s.ClearProfileData()
	})
}

// Exec executes the query.
func (u *ActorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
