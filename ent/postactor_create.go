// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postactor"
)

// PostActorCreate is the builder for creating a PostActor entity.
type PostActorCreate struct {
	config
	mutation *PostActorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPostID sets the "post_id" field.
func (_c *PostActorCreate) SetPostID(v string) *PostActorCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *PostActorCreate) SetActorID(v string) *PostActorCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetRelationshipType sets the "relationship_type" field.
func (_c *PostActorCreate) SetRelationshipType(v postactor.RelationshipType) *PostActorCreate {
	_c.mutation.SetRelationshipType(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PostActorCreate) SetID(v string) *PostActorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PostActorCreate) SetNillableID(v *string) *PostActorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPost sets the "post" edge to the Post entity.
func (_c *PostActorCreate) SetPost(v *Post) *PostActorCreate {
	return _c.SetPostID(v.ID)
}

// SetActor sets the "actor" edge to the Actor entity.
func (_c *PostActorCreate) SetActor(v *Actor) *PostActorCreate {
	return _c.SetActorID(v.ID)
}

// Mutation returns the PostActorMutation object of the builder.
func (_c *PostActorCreate) Mutation() *PostActorMutation {
	return _c.mutation
}

// Save creates the PostActor in the database.
func (_c *PostActorCreate) Save(ctx context.Context) (*PostActor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PostActorCreate) SaveX(ctx context.Context) *PostActor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostActorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostActorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PostActorCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := postactor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PostActorCreate) check() error {
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`ent: missing required field "PostActor.post_id"`)}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "PostActor.actor_id"`)}
	}
	if _, ok := _c.mutation.RelationshipType(); !ok {
		return &ValidationError{Name: "relationship_type", err: errors.New(`ent: missing required field "PostActor.relationship_type"`)}
	}
	if v, ok := _c.mutation.RelationshipType(); ok {
		if err := postactor.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "PostActor.relationship_type": %w`, err)}
		}
	}
	if len(_c.mutation.PostIDs()) == 0 {
		return &ValidationError{Name: "post", err: errors.New(`ent: missing required edge "PostActor.post"`)}
	}
	if len(_c.mutation.ActorIDs()) == 0 {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required edge "PostActor.actor"`)}
	}
	return nil
}

func (_c *PostActorCreate) sqlSave(ctx context.Context) (*PostActor, error) {
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
			return nil, fmt.Errorf("unexpected PostActor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PostActorCreate) createSpec() (*PostActor, *sqlgraph.CreateSpec) {
	var (
		_node = &PostActor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(postactor.Table, sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RelationshipType(); ok {
		_spec.SetField(postactor.FieldRelationshipType, field.TypeEnum, value)
		_node.RelationshipType = value
	}
	if nodes := _c.mutation.PostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   postactor.PostTable,
			Columns: []string{postactor.PostColumn},
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
	if nodes := _c.mutation.ActorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   postactor.ActorTable,
			Columns: []string{postactor.ActorColumn},
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
//	client.PostActor.Create().
//		SetPostID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PostActorUpsert) {
//			SetPostID(v+v).
//		}).
//		Exec(ctx)
func (_c *PostActorCreate) OnConflict(opts ...sql.ConflictOption) *PostActorUpsertOne {
	_c.conflict = opts
	return &PostActorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PostActor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PostActorCreate) OnConflictColumns(columns ...string) *PostActorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PostActorUpsertOne{
		create: _c,
	}
}

type (
	// PostActorUpsertOne is the builder for "upsert"-ing
	//  one PostActor node.
	PostActorUpsertOne struct {
		create *PostActorCreate
	}

	// PostActorUpsert is the "OnConflict" setter.
	PostActorUpsert struct {
		*sql.UpdateSet
	}
)

// SetPostID sets the "post_id" field.
func (u *PostActorUpsert) SetPostID(v string) *PostActorUpsert {
	u.Set(postactor.FieldPostID, v)
	return u
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PostActorUpsert) UpdatePostID() *PostActorUpsert {
	u.SetExcluded(postactor.FieldPostID)
	return u
}

// SetActorID sets the "actor_id" field.
func (u *PostActorUpsert) SetActorID(v string) *PostActorUpsert {
	u.Set(postactor.FieldActorID, v)
	return u
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *PostActorUpsert) UpdateActorID() *PostActorUpsert {
	u.SetExcluded(postactor.FieldActorID)
	return u
}

// SetRelationshipType sets the "relationship_type" field.
func (u *PostActorUpsert) SetRelationshipType(v postactor.RelationshipType) *PostActorUpsert {
	u.Set(postactor.FieldRelationshipType, v)
	return u
}

// UpdateRelationshipType sets the "relationship_type" field to the value that was provided on create.
func (u *PostActorUpsert) UpdateRelationshipType() *PostActorUpsert {
	u.SetExcluded(postactor.FieldRelationshipType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PostActor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(postactor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PostActorUpsertOne) UpdateNewValues() *PostActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(postactor.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PostActor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PostActorUpsertOne) Ignore() *PostActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PostActorUpsertOne) DoNothing() *PostActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PostActorCreate.OnConflict
// documentation for more info.
func (u *PostActorUpsertOne) Update(set func(*PostActorUpsert)) *PostActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PostActorUpsert{UpdateSet: update})
	}))
	return u
}

// SetPostID sets the "post_id" field.
func (u *PostActorUpsertOne) SetPostID(v string) *PostActorUpsertOne {
	return u.Update(func(s *PostActorUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PostActorUpsertOne) UpdatePostID() *PostActorUpsertOne {
	return u.Update(func(s *PostActorUpsert) {
		s.UpdatePostID()
	})
}

// SetActorID sets the "actor_id" field.
func (u *PostActorUpsertOne) SetActorID(v string) *PostActorUpsertOne {
	return u.Update(func(s *PostActorUpsert) {
		s.SetActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *PostActorUpsertOne) UpdateActorID() *PostActorUpsertOne {
	return u.Update(func(s *PostActorUpsert) {
		s.UpdateActorID()
	})
}

// SetRelationshipType sets the "relationship_type" field.
func (u *PostActorUpsertOne) SetRelationshipType(v postactor.RelationshipType) *PostActorUpsertOne {
	return u.Update(func(s *PostActorUpsert) {
		s.SetRelationshipType(v)
	})
}

// UpdateRelationshipType sets the "relationship_type" field to the value that was provided on create.
func (u *PostActorUpsertOne) UpdateRelationshipType() *PostActorUpsertOne {
	return u.Update(func(s *PostActorUpsert) {
		s.UpdateRelationshipType()
	})
}

// Exec executes the query.
func (u *PostActorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PostActorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PostActorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PostActorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PostActorUpsertOne.ID is not supported by MySQL driver. Use PostActorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PostActorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PostActorCreateBulk is the builder for creating many PostActor entities in bulk.
type PostActorCreateBulk struct {
	config
	err      error
	builders []*PostActorCreate
	conflict []sql.ConflictOption
}

// Save creates the PostActor entities in the database.
func (_c *PostActorCreateBulk) Save(ctx context.Context) ([]*PostActor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PostActor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostActorMutation)
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
func (_c *PostActorCreateBulk) SaveX(ctx context.Context) []*PostActor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostActorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostActorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PostActor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PostActorUpsert) {
//			SetPostID(v+v).
//		}).
//		Exec(ctx)
func (_c *PostActorCreateBulk) OnConflict(opts ...sql.ConflictOption) *PostActorUpsertBulk {
	_c.conflict = opts
	return &PostActorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PostActor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PostActorCreateBulk) OnConflictColumns(columns ...string) *PostActorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PostActorUpsertBulk{
		create: _c,
	}
}

// PostActorUpsertBulk is the builder for "upsert"-ing
// a bulk of PostActor nodes.
type PostActorUpsertBulk struct {
	create *PostActorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PostActor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(postactor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PostActorUpsertBulk) UpdateNewValues() *PostActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(postactor.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PostActor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PostActorUpsertBulk) Ignore() *PostActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PostActorUpsertBulk) DoNothing() *PostActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PostActorCreateBulk.OnConflict
// documentation for more info.
func (u *PostActorUpsertBulk) Update(set func(*PostActorUpsert)) *PostActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PostActorUpsert{UpdateSet: update})
	}))
	return u
}

// SetPostID sets the "post_id" field.
func (u *PostActorUpsertBulk) SetPostID(v string) *PostActorUpsertBulk {
	return u.Update(func(s *PostActorUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PostActorUpsertBulk) UpdatePostID() *PostActorUpsertBulk {
	return u.Update(func(s *PostActorUpsert) {
		s.UpdatePostID()
	})
}

// SetActorID sets the "actor_id" field.
func (u *PostActorUpsertBulk) SetActorID(v string) *PostActorUpsertBulk {
	return u.Update(func(s *PostActorUpsert) {
		s.SetActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *PostActorUpsertBulk) UpdateActorID() *PostActorUpsertBulk {
	return u.Update(func(s *PostActorUpsert) {
		s.UpdateActorID()
	})
}

// SetRelationshipType sets the "relationship_type" field.
func (u *PostActorUpsertBulk) SetRelationshipType(v postactor.RelationshipType) *PostActorUpsertBulk {
	return u.Update(func(s *PostActorUpsert) {
		s.SetRelationshipType(v)
	})
}

// UpdateRelationshipType sets the "relationship_type" field to the value that was provided on create.
func (u *PostActorUpsertBulk) UpdateRelationshipType() *PostActorUpsertBulk {
	return u.Update(func(s *PostActorUpsert) {
		s.UpdateRelationshipType()
	})
}

// Exec executes the query.
func (u *PostActorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PostActorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PostActorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PostActorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
