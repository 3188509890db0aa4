// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/dynamicslug"
	"github.com/civiclens/civiclens/ent/predicate"
)

// DynamicSlugDelete is the builder for deleting a DynamicSlug entity.
type DynamicSlugDelete struct {
	config
	hooks    []Hook
	mutation *DynamicSlugMutation
}

// Where appends a list predicates to the DynamicSlugDelete builder.
func (_d *DynamicSlugDelete) Where(ps ...predicate.DynamicSlug) *DynamicSlugDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DynamicSlugDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DynamicSlugDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DynamicSlugDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dynamicslug.Table, sqlgraph.NewFieldSpec(dynamicslug.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DynamicSlugDeleteOne is the builder for deleting a single DynamicSlug entity.
type DynamicSlugDeleteOne struct {
	_d *DynamicSlugDelete
}

// Where appends a list predicates to the DynamicSlugDelete builder.
func (_d *DynamicSlugDeleteOne) Where(ps ...predicate.DynamicSlug) *DynamicSlugDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DynamicSlugDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dynamicslug.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DynamicSlugDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
