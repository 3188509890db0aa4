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
	"github.com/civiclens/civiclens/ent/dynamicslug"
)

// DynamicSlugCreate is the builder for creating a DynamicSlug entity.
type DynamicSlugCreate struct {
	config
	mutation *DynamicSlugMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetParentTag sets the "parent_tag" field.
func (_c *DynamicSlugCreate) SetParentTag(v string) *DynamicSlugCreate {
	_c.mutation.SetParentTag(v)
	return _c
}

// SetSlugIdentifier sets the "slug_identifier" field.
func (_c *DynamicSlugCreate) SetSlugIdentifier(v string) *DynamicSlugCreate {
	_c.mutation.SetSlugIdentifier(v)
	return _c
}

// SetFullSlug sets the "full_slug" field.
func (_c *DynamicSlugCreate) SetFullSlug(v string) *DynamicSlugCreate {
	_c.mutation.SetFullSlug(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DynamicSlugCreate) SetCreatedAt(v time.Time) *DynamicSlugCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DynamicSlugCreate) SetNillableCreatedAt(v *time.Time) *DynamicSlugCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DynamicSlugCreate) SetID(v string) *DynamicSlugCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DynamicSlugCreate) SetNillableID(v *string) *DynamicSlugCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DynamicSlugMutation object of the builder.
func (_c *DynamicSlugCreate) Mutation() *DynamicSlugMutation {
	return _c.mutation
}

// Save creates the DynamicSlug in the database.
func (_c *DynamicSlugCreate) Save(ctx context.Context) (*DynamicSlug, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DynamicSlugCreate) SaveX(ctx context.Context) *DynamicSlug {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DynamicSlugCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DynamicSlugCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DynamicSlugCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dynamicslug.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dynamicslug.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DynamicSlugCreate) check() error {
	if _, ok := _c.mutation.ParentTag(); !ok {
		return &ValidationError{Name: "parent_tag", err: errors.New(`ent: missing required field "DynamicSlug.parent_tag"`)}
	}
	if _, ok := _c.mutation.SlugIdentifier(); !ok {
		return &ValidationError{Name: "slug_identifier", err: errors.New(`ent: missing required field "DynamicSlug.slug_identifier"`)}
	}
	if _, ok := _c.mutation.FullSlug(); !ok {
		return &ValidationError{Name: "full_slug", err: errors.New(`ent: missing required field "DynamicSlug.full_slug"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DynamicSlug.created_at"`)}
	}
	return nil
}

func (_c *DynamicSlugCreate) sqlSave(ctx context.Context) (*DynamicSlug, error) {
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
			return nil, fmt.Errorf("unexpected DynamicSlug.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DynamicSlugCreate) createSpec() (*DynamicSlug, *sqlgraph.CreateSpec) {
	var (
		_node = &DynamicSlug{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dynamicslug.Table, sqlgraph.NewFieldSpec(dynamicslug.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentTag(); ok {
		_spec.SetField(dynamicslug.FieldParentTag, field.TypeString, value)
		_node.ParentTag = value
	}
	if value, ok := _c.mutation.SlugIdentifier(); ok {
		_spec.SetField(dynamicslug.FieldSlugIdentifier, field.TypeString, value)
		_node.SlugIdentifier = value
	}
	if value, ok := _c.mutation.FullSlug(); ok {
		_spec.SetField(dynamicslug.FieldFullSlug, field.TypeString, value)
		_node.FullSlug = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dynamicslug.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DynamicSlug.Create().
//		SetParentTag(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DynamicSlugUpsert) {
//			SetParentTag(v+v).
//		}).
//		Exec(ctx)
func (_c *DynamicSlugCreate) OnConflict(opts ...sql.ConflictOption) *DynamicSlugUpsertOne {
	_c.conflict = opts
	return &DynamicSlugUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DynamicSlug.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DynamicSlugCreate) OnConflictColumns(columns ...string) *DynamicSlugUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DynamicSlugUpsertOne{
		create: _c,
	}
}

type (
	// DynamicSlugUpsertOne is the builder for "upsert"-ing
	//  one DynamicSlug node.
	DynamicSlugUpsertOne struct {
		create *DynamicSlugCreate
	}

	// DynamicSlugUpsert is the "OnConflict" setter.
	DynamicSlugUpsert struct {
		*sql.UpdateSet
	}
)

// SetParentTag sets the "parent_tag" field.
func (u *DynamicSlugUpsert) SetParentTag(v string) *DynamicSlugUpsert {
	u.Set(dynamicslug.FieldParentTag, v)
	return u
}

// UpdateParentTag sets the "parent_tag" field to the value that was provided on create.
func (u *DynamicSlugUpsert) UpdateParentTag() *DynamicSlugUpsert {
	u.SetExcluded(dynamicslug.FieldParentTag)
	return u
}

// SetSlugIdentifier sets the "slug_identifier" field.
func (u *DynamicSlugUpsert) SetSlugIdentifier(v string) *DynamicSlugUpsert {
	u.Set(dynamicslug.FieldSlugIdentifier, v)
	return u
}

// UpdateSlugIdentifier sets the "slug_identifier" field to the value that was provided on create.
func (u *DynamicSlugUpsert) UpdateSlugIdentifier() *DynamicSlugUpsert {
	u.SetExcluded(dynamicslug.FieldSlugIdentifier)
	return u
}

// SetFullSlug sets the "full_slug" field.
func (u *DynamicSlugUpsert) SetFullSlug(v string) *DynamicSlugUpsert {
	u.Set(dynamicslug.FieldFullSlug, v)
	return u
}

// UpdateFullSlug sets the "full_slug" field to the value that was provided on create.
func (u *DynamicSlugUpsert) UpdateFullSlug() *DynamicSlugUpsert {
	u.SetExcluded(dynamicslug.FieldFullSlug)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DynamicSlug.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dynamicslug.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DynamicSlugUpsertOne) UpdateNewValues() *DynamicSlugUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dynamicslug.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dynamicslug.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DynamicSlug.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DynamicSlugUpsertOne) Ignore() *DynamicSlugUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DynamicSlugUpsertOne) DoNothing() *DynamicSlugUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DynamicSlugCreate.OnConflict
// documentation for more info.
func (u *DynamicSlugUpsertOne) Update(set func(*DynamicSlugUpsert)) *DynamicSlugUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DynamicSlugUpsert{UpdateSet: update})
	}))
	return u
}

// SetParentTag sets the "parent_tag" field.
func (u *DynamicSlugUpsertOne) SetParentTag(v string) *DynamicSlugUpsertOne {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.SetParentTag(v)
	})
}

// UpdateParentTag sets the "parent_tag" field to the value that was provided on create.
func (u *DynamicSlugUpsertOne) UpdateParentTag() *DynamicSlugUpsertOne {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.UpdateParentTag()
	})
}

// SetSlugIdentifier sets the "slug_identifier" field.
func (u *DynamicSlugUpsertOne) SetSlugIdentifier(v string) *DynamicSlugUpsertOne {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.SetSlugIdentifier(v)
	})
}

// UpdateSlugIdentifier sets the "slug_identifier" field to the value that was provided on create.
func (u *DynamicSlugUpsertOne) UpdateSlugIdentifier() *DynamicSlugUpsertOne {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.UpdateSlugIdentifier()
	})
}

// SetFullSlug sets the "full_slug" field.
func (u *DynamicSlugUpsertOne) SetFullSlug(v string) *DynamicSlugUpsertOne {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.SetFullSlug(v)
	})
}

// UpdateFullSlug sets the "full_slug" field to the value that was provided on create.
func (u *DynamicSlugUpsertOne) UpdateFullSlug() *DynamicSlugUpsertOne {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.UpdateFullSlug()
	})
}

// Exec executes the query.
func (u *DynamicSlugUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DynamicSlugCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DynamicSlugUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DynamicSlugUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DynamicSlugUpsertOne.ID is not supported by MySQL driver. Use DynamicSlugUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DynamicSlugUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DynamicSlugCreateBulk is the builder for creating many DynamicSlug entities in bulk.
type DynamicSlugCreateBulk struct {
	config
	err      error
	builders []*DynamicSlugCreate
	conflict []sql.ConflictOption
}

// Save creates the DynamicSlug entities in the database.
func (_c *DynamicSlugCreateBulk) Save(ctx context.Context) ([]*DynamicSlug, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DynamicSlug, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DynamicSlugMutation)
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
func (_c *DynamicSlugCreateBulk) SaveX(ctx context.Context) []*DynamicSlug {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DynamicSlugCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DynamicSlugCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DynamicSlug.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DynamicSlugUpsert) {
//			SetParentTag(v+v).
//		}).
//		Exec(ctx)
func (_c *DynamicSlugCreateBulk) OnConflict(opts ...sql.ConflictOption) *DynamicSlugUpsertBulk {
	_c.conflict = opts
	return &DynamicSlugUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DynamicSlug.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DynamicSlugCreateBulk) OnConflictColumns(columns ...string) *DynamicSlugUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DynamicSlugUpsertBulk{
		create: _c,
	}
}

// DynamicSlugUpsertBulk is the builder for "upsert"-ing
// a bulk of DynamicSlug nodes.
type DynamicSlugUpsertBulk struct {
	create *DynamicSlugCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DynamicSlug.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dynamicslug.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DynamicSlugUpsertBulk) UpdateNewValues() *DynamicSlugUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dynamicslug.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dynamicslug.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DynamicSlug.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DynamicSlugUpsertBulk) Ignore() *DynamicSlugUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DynamicSlugUpsertBulk) DoNothing() *DynamicSlugUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DynamicSlugCreateBulk.OnConflict
// documentation for more info.
func (u *DynamicSlugUpsertBulk) Update(set func(*DynamicSlugUpsert)) *DynamicSlugUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DynamicSlugUpsert{UpdateSet: update})
	}))
	return u
}

// SetParentTag sets the "parent_tag" field.
func (u *DynamicSlugUpsertBulk) SetParentTag(v string) *DynamicSlugUpsertBulk {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.SetParentTag(v)
	})
}

// UpdateParentTag sets the "parent_tag" field to the value that was provided on create.
func (u *DynamicSlugUpsertBulk) UpdateParentTag() *DynamicSlugUpsertBulk {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.UpdateParentTag()
	})
}

// SetSlugIdentifier sets the "slug_identifier" field.
func (u *DynamicSlugUpsertBulk) SetSlugIdentifier(v string) *DynamicSlugUpsertBulk {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.SetSlugIdentifier(v)
	})
}

// UpdateSlugIdentifier sets the "slug_identifier" field to the value that was provided on create.
func (u *DynamicSlugUpsertBulk) UpdateSlugIdentifier() *DynamicSlugUpsertBulk {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.UpdateSlugIdentifier()
	})
}

// SetFullSlug sets the "full_slug" field.
func (u *DynamicSlugUpsertBulk) SetFullSlug(v string) *DynamicSlugUpsertBulk {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.SetFullSlug(v)
	})
}

// UpdateFullSlug sets the "full_slug" field to the value that was provided on create.
func (u *DynamicSlugUpsertBulk) UpdateFullSlug() *DynamicSlugUpsertBulk {
	return u.Update(func(s *DynamicSlugUpsert) {
		s.UpdateFullSlug()
	})
}

// Exec executes the query.
func (u *DynamicSlugUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DynamicSlugCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DynamicSlugCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DynamicSlugUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
