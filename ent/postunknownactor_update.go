// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/predicate"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// PostUnknownActorUpdate is the builder for updating PostUnknownActor entities.
type PostUnknownActorUpdate struct {
	config
	hooks    []Hook
	mutation *PostUnknownActorMutation
}

// Where appends a list predicates to the PostUnknownActorUpdate builder.
func (_u *PostUnknownActorUpdate) Where(ps ...predicate.PostUnknownActor) *PostUnknownActorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *PostUnknownActorUpdate) SetPostID(v string) *PostUnknownActorUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *PostUnknownActorUpdate) SetNillablePostID(v *string) *PostUnknownActorUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (_u *PostUnknownActorUpdate) SetUnknownActorID(v string) *PostUnknownActorUpdate {
	_u.mutation.SetUnknownActorID(v)
	return _u
}

// SetNillableUnknownActorID sets the "unknown_actor_id" field if the given value is not nil.
func (_u *PostUnknownActorUpdate) SetNillableUnknownActorID(v *string) *PostUnknownActorUpdate {
	if v != nil {
		_u.SetUnknownActorID(*v)
	}
	return _u
}

// SetPost sets the "post" edge to the Post entity.
func (_u *PostUnknownActorUpdate) SetPost(v *Post) *PostUnknownActorUpdate {
	return _u.SetPostID(v.ID)
}

// SetUnknownActor sets the "unknown_actor" edge to the UnknownActor entity.
func (_u *PostUnknownActorUpdate) SetUnknownActor(v *UnknownActor) *PostUnknownActorUpdate {
	return _u.SetUnknownActorID(v.ID)
}

// Mutation returns the PostUnknownActorMutation object of the builder.
func (_u *PostUnknownActorUpdate) Mutation() *PostUnknownActorMutation {
	return _u.mutation
}

// ClearPost clears the "post" edge to the Post entity.
func (_u *PostUnknownActorUpdate) ClearPost() *PostUnknownActorUpdate {
	_u.mutation.ClearPost()
	return _u
}

// ClearUnknownActor clears the "unknown_actor" edge to the UnknownActor entity.
func (_u *PostUnknownActorUpdate) ClearUnknownActor() *PostUnknownActorUpdate {
	_u.mutation.ClearUnknownActor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostUnknownActorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUnknownActorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostUnknownActorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUnknownActorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostUnknownActorUpdate) check() error {
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostUnknownActor.post"`)
	}
	if _u.mutation.UnknownActorCleared() && len(_u.mutation.UnknownActorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostUnknownActor.unknown_actor"`)
	}
	return nil
}

func (_u *PostUnknownActorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postunknownactor.Table, postunknownactor.Columns, sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PostCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UnknownActorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnknownActorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postunknownactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostUnknownActorUpdateOne is the builder for updating a single PostUnknownActor entity.
type PostUnknownActorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostUnknownActorMutation
}

// SetPostID sets the "post_id" field.
func (_u *PostUnknownActorUpdateOne) SetPostID(v string) *PostUnknownActorUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *PostUnknownActorUpdateOne) SetNillablePostID(v *string) *PostUnknownActorUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (_u *PostUnknownActorUpdateOne) SetUnknownActorID(v string) *PostUnknownActorUpdateOne {
	_u.mutation.SetUnknownActorID(v)
	return _u
}

// SetNillableUnknownActorID sets the "unknown_actor_id" field if the given value is not nil.
func (_u *PostUnknownActorUpdateOne) SetNillableUnknownActorID(v *string) *PostUnknownActorUpdateOne {
	if v != nil {
		_u.SetUnknownActorID(*v)
	}
	return _u
}

// SetPost sets the "post" edge to the Post entity.
func (_u *PostUnknownActorUpdateOne) SetPost(v *Post) *PostUnknownActorUpdateOne {
	return _u.SetPostID(v.ID)
}

// SetUnknownActor sets the "unknown_actor" edge to the UnknownActor entity.
func (_u *PostUnknownActorUpdateOne) SetUnknownActor(v *UnknownActor) *PostUnknownActorUpdateOne {
	return _u.SetUnknownActorID(v.ID)
}

// Mutation returns the PostUnknownActorMutation object of the builder.
func (_u *PostUnknownActorUpdateOne) Mutation() *PostUnknownActorMutation {
	return _u.mutation
}

// ClearPost clears the "post" edge to the Post entity.
func (_u *PostUnknownActorUpdateOne) ClearPost() *PostUnknownActorUpdateOne {
	_u.mutation.ClearPost()
	return _u
}

// ClearUnknownActor clears the "unknown_actor" edge to the UnknownActor entity.
func (_u *PostUnknownActorUpdateOne) ClearUnknownActor() *PostUnknownActorUpdateOne {
	_u.mutation.ClearUnknownActor()
	return _u
}

// Where appends a list predicates to the PostUnknownActorUpdate builder.
func (_u *PostUnknownActorUpdateOne) Where(ps ...predicate.PostUnknownActor) *PostUnknownActorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostUnknownActorUpdateOne) Select(field string, fields ...string) *PostUnknownActorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PostUnknownActor entity.
func (_u *PostUnknownActorUpdateOne) Save(ctx context.Context) (*PostUnknownActor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUnknownActorUpdateOne) SaveX(ctx context.Context) *PostUnknownActor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostUnknownActorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUnknownActorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostUnknownActorUpdateOne) check() error {
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostUnknownActor.post"`)
	}
	if _u.mutation.UnknownActorCleared() && len(_u.mutation.UnknownActorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostUnknownActor.unknown_actor"`)
	}
	return nil
}

func (_u *PostUnknownActorUpdateOne) sqlSave(ctx context.Context) (_node *PostUnknownActor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postunknownactor.Table, postunknownactor.Columns, sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PostUnknownActor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, postunknownactor.FieldID)
		for _, f := range fields {
			if !postunknownactor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != postunknownactor.FieldID {
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
	if _u.mutation.PostCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UnknownActorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnknownActorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PostUnknownActor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postunknownactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
