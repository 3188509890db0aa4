// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/locationcoordinate"
	"github.com/civiclens/civiclens/ent/predicate"
)

// LocationCoordinateDelete is the builder for deleting a LocationCoordinate entity.
type LocationCoordinateDelete struct {
	config
	hooks    []Hook
	mutation *LocationCoordinateMutation
}

// Where appends a list predicates to the LocationCoordinateDelete builder.
func (_d *LocationCoordinateDelete) Where(ps ...predicate.LocationCoordinate) *LocationCoordinateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LocationCoordinateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LocationCoordinateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LocationCoordinateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(locationcoordinate.Table, sqlgraph.NewFieldSpec(locationcoordinate.FieldID, field.TypeString))
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

// LocationCoordinateDeleteOne is the builder for deleting a single LocationCoordinate entity.
type LocationCoordinateDeleteOne struct {
	_d *LocationCoordinateDelete
}

// Where appends a list predicates to the LocationCoordinateDelete builder.
func (_d *LocationCoordinateDeleteOne) Where(ps ...predicate.LocationCoordinate) *LocationCoordinateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LocationCoordinateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{locationcoordinate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LocationCoordinateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
