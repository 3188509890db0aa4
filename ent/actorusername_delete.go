// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/actorusername"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ActorUsernameDelete is the builder for deleting a ActorUsername entity.
type ActorUsernameDelete struct {
	config
	hooks    []Hook
	mutation *ActorUsernameMutation
}

// Where appends a list predicates to the ActorUsernameDelete builder.
func (_d *ActorUsernameDelete) Where(ps ...predicate.ActorUsername) *ActorUsernameDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ActorUsernameDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActorUsernameDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ActorUsernameDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(actorusername.Table, sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString))
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

// ActorUsernameDeleteOne is the builder for deleting a single ActorUsername entity.
type ActorUsernameDeleteOne struct {
	_d *ActorUsernameDelete
}

// Where appends a list predicates to the ActorUsernameDelete builder.
func (_d *ActorUsernameDeleteOne) Where(ps ...predicate.ActorUsername) *ActorUsernameDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ActorUsernameDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{actorusername.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActorUsernameDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
