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
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// PostUnknownActorCreate is the builder for creating a PostUnknownActor entity.
type PostUnknownActorCreate struct {
	config
	mutation *PostUnknownActorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPostID sets the "post_id" field.
func (_c *PostUnknownActorCreate) SetPostID(v string) *PostUnknownActorCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (_c *PostUnknownActorCreate) SetUnknownActorID(v string) *PostUnknownActorCreate {
	_c.mutation.SetUnknownActorID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PostUnknownActorCreate) SetID(v string) *PostUnknownActorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PostUnknownActorCreate) SetNillableID(v *string) *PostUnknownActorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPost sets the "post" edge to the Post entity.
func (_c *PostUnknownActorCreate) SetPost(v *Post) *PostUnknownActorCreate {
	return _c.SetPostID(v.ID)
}

// SetUnknownActor sets the "unknown_actor" edge to the UnknownActor entity.
func (_c *PostUnknownActorCreate) SetUnknownActor(v *UnknownActor) *PostUnknownActorCreate {
	return _c.SetUnknownActorID(v.ID)
}

// Mutation returns the PostUnknownActorMutation object of the builder.
func (_c *PostUnknownActorCreate) Mutation() *PostUnknownActorMutation {
	return _c.mutation
}

// Save creates the PostUnknownActor in the database.
func (_c *PostUnknownActorCreate) Save(ctx context.Context) (*PostUnknownActor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PostUnknownActorCreate) SaveX(ctx context.Context) *PostUnknownActor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostUnknownActorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostUnknownActorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PostUnknownActorCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := postunknownactor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PostUnknownActorCreate) check() error {
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`ent: missing required field "PostUnknownActor.post_id"`)}
	}
	if _, ok := _c.mutation.UnknownActorID(); !ok {
		return &ValidationError{Name: "unknown_actor_id", err: errors.New(`ent: missing required field "PostUnknownActor.unknown_actor_id"`)}
	}
	if len(_c.mutation.PostIDs()) == 0 {
		return &ValidationError{Name: "post", err: errors.New(`ent: missing required edge "PostUnknownActor.post"`)}
	}
	if len(_c.mutation.UnknownActorIDs()) == 0 {
		return &ValidationError{Name: "unknown_actor", err: errors.New(`ent: missing required edge "PostUnknownActor.unknown_actor"`)}
	}
	return nil
}

func (_c *PostUnknownActorCreate) sqlSave(ctx context.Context) (*PostUnknownActor, error) {
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
			return nil, fmt.Errorf("unexpected PostUnknownActor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PostUnknownActorCreate) createSpec() (*PostUnknownActor, *sqlgraph.CreateSpec) {
	var (
		_node = &PostUnknownActor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(postunknownactor.Table, sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if nodes := _c.mutation.PostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   postunknownactor.PostTable,
			Columns: []string{postunknownactor.PostColumn},
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
	if nodes := _c.mutation.UnknownActorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   postunknownactor.UnknownActorTable,
			Columns: []string{postunknownactor.UnknownActorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unknownactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UnknownActorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PostUnknownActor.Create().
//		SetPostID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PostUnknownActorUpsert) {
//			SetPostID(v+v).
//		}).
//		Exec(ctx)
func (_c *PostUnknownActorCreate) OnConflict(opts ...sql.ConflictOption) *PostUnknownActorUpsertOne {
	_c.conflict = opts
	return &PostUnknownActorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PostUnknownActor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PostUnknownActorCreate) OnConflictColumns(columns ...string) *PostUnknownActorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PostUnknownActorUpsertOne{
		create: _c,
	}
}

type (
	// PostUnknownActorUpsertOne is the builder for "upsert"-ing
	//  one PostUnknownActor node.
	PostUnknownActorUpsertOne struct {
		create *PostUnknownActorCreate
	}

	// PostUnknownActorUpsert is the "OnConflict" setter.
	PostUnknownActorUpsert struct {
		*sql.UpdateSet
	}
)

// SetPostID sets the "post_id" field.
func (u *PostUnknownActorUpsert) SetPostID(v string) *PostUnknownActorUpsert {
	u.Set(postunknownactor.FieldPostID, v)
	return u
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PostUnknownActorUpsert) UpdatePostID() *PostUnknownActorUpsert {
	u.SetExcluded(postunknownactor.FieldPostID)
	return u
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (u *PostUnknownActorUpsert) SetUnknownActorID(v string) *PostUnknownActorUpsert {
	u.Set(postunknownactor.FieldUnknownActorID, v)
	return u
}

// UpdateUnknownActorID sets the "unknown_actor_id" field to the value that was provided on create.
func (u *PostUnknownActorUpsert) UpdateUnknownActorID() *PostUnknownActorUpsert {
	u.SetExcluded(postunknownactor.FieldUnknownActorID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PostUnknownActor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(postunknownactor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PostUnknownActorUpsertOne) UpdateNewValues() *PostUnknownActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(postunknownactor.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PostUnknownActor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PostUnknownActorUpsertOne) Ignore() *PostUnknownActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PostUnknownActorUpsertOne) DoNothing() *PostUnknownActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PostUnknownActorCreate.OnConflict
// documentation for more info.
func (u *PostUnknownActorUpsertOne) Update(set func(*PostUnknownActorUpsert)) *PostUnknownActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PostUnknownActorUpsert{UpdateSet: update})
	}))
	return u
}

// SetPostID sets the "post_id" field.
func (u *PostUnknownActorUpsertOne) SetPostID(v string) *PostUnknownActorUpsertOne {
	return u.Update(func(s *PostUnknownActorUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PostUnknownActorUpsertOne) UpdatePostID() *PostUnknownActorUpsertOne {
	return u.Update(func(s *PostUnknownActorUpsert) {
		s.UpdatePostID()
	})
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (u *PostUnknownActorUpsertOne) SetUnknownActorID(v string) *PostUnknownActorUpsertOne {
	return u.Update(func(s *PostUnknownActorUpsert) {
		s.SetUnknownActorID(v)
	})
}

// UpdateUnknownActorID sets the "unknown_actor_id" field to the value that was provided on create.
func (u *PostUnknownActorUpsertOne) UpdateUnknownActorID() *PostUnknownActorUpsertOne {
	return u.Update(func(s *PostUnknownActorUpsert) {
		s.UpdateUnknownActorID()
	})
}

// Exec executes the query.
func (u *PostUnknownActorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PostUnknownActorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PostUnknownActorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PostUnknownActorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PostUnknownActorUpsertOne.ID is not supported by MySQL driver. Use PostUnknownActorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PostUnknownActorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PostUnknownActorCreateBulk is the builder for creating many PostUnknownActor entities in bulk.
type PostUnknownActorCreateBulk struct {
	config
	err      error
	builders []*PostUnknownActorCreate
	conflict []sql.ConflictOption
}

// Save creates the PostUnknownActor entities in the database.
func (_c *PostUnknownActorCreateBulk) Save(ctx context.Context) ([]*PostUnknownActor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PostUnknownActor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostUnknownActorMutation)
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
func (_c *PostUnknownActorCreateBulk) SaveX(ctx context.Context) []*PostUnknownActor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostUnknownActorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostUnknownActorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PostUnknownActor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PostUnknownActorUpsert) {
//			SetPostID(v+v).
//		}).
//		Exec(ctx)
func (_c *PostUnknownActorCreateBulk) OnConflict(opts ...sql.ConflictOption) *PostUnknownActorUpsertBulk {
	_c.conflict = opts
	return &PostUnknownActorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PostUnknownActor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PostUnknownActorCreateBulk) OnConflictColumns(columns ...string) *PostUnknownActorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PostUnknownActorUpsertBulk{
		create: _c,
	}
}

// PostUnknownActorUpsertBulk is the builder for "upsert"-ing
// a bulk of PostUnknownActor nodes.
type PostUnknownActorUpsertBulk struct {
	create *PostUnknownActorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PostUnknownActor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(postunknownactor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PostUnknownActorUpsertBulk) UpdateNewValues() *PostUnknownActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(postunknownactor.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PostUnknownActor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PostUnknownActorUpsertBulk) Ignore() *PostUnknownActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PostUnknownActorUpsertBulk) DoNothing() *PostUnknownActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PostUnknownActorCreateBulk.OnConflict
// documentation for more info.
func (u *PostUnknownActorUpsertBulk) Update(set func(*PostUnknownActorUpsert)) *PostUnknownActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PostUnknownActorUpsert{UpdateSet: update})
	}))
	return u
}

// SetPostID sets the "post_id" field.
func (u *PostUnknownActorUpsertBulk) SetPostID(v string) *PostUnknownActorUpsertBulk {
	return u.Update(func(s *PostUnknownActorUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *PostUnknownActorUpsertBulk) UpdatePostID() *PostUnknownActorUpsertBulk {
	return u.Update(func(s *PostUnknownActorUpsert) {
		s.UpdatePostID()
	})
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (u *PostUnknownActorUpsertBulk) SetUnknownActorID(v string) *PostUnknownActorUpsertBulk {
	return u.Update(func(s *PostUnknownActorUpsert) {
		s.SetUnknownActorID(v)
	})
}

// UpdateUnknownActorID sets the "unknown_actor_id" field to the value that was provided on create.
func (u *PostUnknownActorUpsertBulk) UpdateUnknownActorID() *PostUnknownActorUpsertBulk {
	return u.Update(func(s *PostUnknownActorUpsert) {
		s.UpdateUnknownActorID()
	})
}

// Exec executes the query.
func (u *PostUnknownActorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PostUnknownActorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PostUnknownActorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PostUnknownActorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
