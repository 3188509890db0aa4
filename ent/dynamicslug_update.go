// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/dynamicslug"
	"github.com/civiclens/civiclens/ent/predicate"
)

// DynamicSlugUpdate is the builder for updating DynamicSlug entities.
type DynamicSlugUpdate struct {
	config
	hooks    []Hook
	mutation *DynamicSlugMutation
}

// Where appends a list predicates to the DynamicSlugUpdate builder.
func (_u *DynamicSlugUpdate) Where(ps ...predicate.DynamicSlug) *DynamicSlugUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentTag sets the "parent_tag" field.
func (_u *DynamicSlugUpdate) SetParentTag(v string) *DynamicSlugUpdate {
	_u.mutation.SetParentTag(v)
	return _u
}

// SetNillableParentTag sets the "parent_tag" field if the given value is not nil.
func (_u *DynamicSlugUpdate) SetNillableParentTag(v *string) *DynamicSlugUpdate {
	if v != nil {
		_u.SetParentTag(*v)
	}
	return _u
}

// SetSlugIdentifier sets the "slug_identifier" field.
func (_u *DynamicSlugUpdate) SetSlugIdentifier(v string) *DynamicSlugUpdate {
	_u.mutation.SetSlugIdentifier(v)
	return _u
}

// SetNillableSlugIdentifier sets the "slug_identifier" field if the given value is not nil.
func (_u *DynamicSlugUpdate) SetNillableSlugIdentifier(v *string) *DynamicSlugUpdate {
	if v != nil {
		_u.SetSlugIdentifier(*v)
	}
	return _u
}

// SetFullSlug sets the "full_slug" field.
func (_u *DynamicSlugUpdate) SetFullSlug(v string) *DynamicSlugUpdate {
	_u.mutation.SetFullSlug(v)
	return _u
}

// SetNillableFullSlug sets the "full_slug" field if the given value is not nil.
func (_u *DynamicSlugUpdate) SetNillableFullSlug(v *string) *DynamicSlugUpdate {
	if v != nil {
		_u.SetFullSlug(*v)
	}
	return _u
}

// Mutation returns the DynamicSlugMutation object of the builder.
func (_u *DynamicSlugUpdate) Mutation() *DynamicSlugMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DynamicSlugUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DynamicSlugUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DynamicSlugUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DynamicSlugUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DynamicSlugUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dynamicslug.Table, dynamicslug.Columns, sqlgraph.NewFieldSpec(dynamicslug.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentTag(); ok {
		_spec.SetField(dynamicslug.FieldParentTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlugIdentifier(); ok {
		_spec.SetField(dynamicslug.FieldSlugIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullSlug(); ok {
		_spec.SetField(dynamicslug.FieldFullSlug, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dynamicslug.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DynamicSlugUpdateOne is the builder for updating a single DynamicSlug entity.
type DynamicSlugUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DynamicSlugMutation
}

// SetParentTag sets the "parent_tag" field.
func (_u *DynamicSlugUpdateOne) SetParentTag(v string) *DynamicSlugUpdateOne {
	_u.mutation.SetParentTag(v)
	return _u
}

// SetNillableParentTag sets the "parent_tag" field if the given value is not nil.
func (_u *DynamicSlugUpdateOne) SetNillableParentTag(v *string) *DynamicSlugUpdateOne {
	if v != nil {
		_u.SetParentTag(*v)
	}
	return _u
}

// SetSlugIdentifier sets the "slug_identifier" field.
func (_u *DynamicSlugUpdateOne) SetSlugIdentifier(v string) *DynamicSlugUpdateOne {
	_u.mutation.SetSlugIdentifier(v)
	return _u
}

// SetNillableSlugIdentifier sets the "slug_identifier" field if the given value is not nil.
func (_u *DynamicSlugUpdateOne) SetNillableSlugIdentifier(v *string) *DynamicSlugUpdateOne {
	if v != nil {
		_u.SetSlugIdentifier(*v)
	}
	return _u
}

// SetFullSlug sets the "full_slug" field.
func (_u *DynamicSlugUpdateOne) SetFullSlug(v string) *DynamicSlugUpdateOne {
	_u.mutation.SetFullSlug(v)
	return _u
}

// SetNillableFullSlug sets the "full_slug" field if the given value is not nil.
func (_u *DynamicSlugUpdateOne) SetNillableFullSlug(v *string) *DynamicSlugUpdateOne {
	if v != nil {
		_u.SetFullSlug(*v)
	}
	return _u
}

// Mutation returns the DynamicSlugMutation object of the builder.
func (_u *DynamicSlugUpdateOne) Mutation() *DynamicSlugMutation {
	return _u.mutation
}

// Where appends a list predicates to the DynamicSlugUpdate builder.
func (_u *DynamicSlugUpdateOne) Where(ps ...predicate.DynamicSlug) *DynamicSlugUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DynamicSlugUpdateOne) Select(field string, fields ...string) *DynamicSlugUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DynamicSlug entity.
func (_u *DynamicSlugUpdateOne) Save(ctx context.Context) (*DynamicSlug, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DynamicSlugUpdateOne) SaveX(ctx context.Context) *DynamicSlug {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DynamicSlugUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DynamicSlugUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DynamicSlugUpdateOne) sqlSave(ctx context.Context) (_node *DynamicSlug, err error) {
	_spec := sqlgraph.NewUpdateSpec(dynamicslug.Table, dynamicslug.Columns, sqlgraph.NewFieldSpec(dynamicslug.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DynamicSlug.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dynamicslug.FieldID)
		for _, f := range fields {
			if !dynamicslug.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dynamicslug.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentTag(); ok {
		_spec.SetField(dynamicslug.FieldParentTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlugIdentifier(); ok {
		_spec.SetField(dynamicslug.FieldSlugIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullSlug(); ok {
		_spec.SetField(dynamicslug.FieldFullSlug, field.TypeString, value)
	}
	_node = &DynamicSlug{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dynamicslug.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
