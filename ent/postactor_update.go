// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postactor"
	"github.com/civiclens/civiclens/ent/predicate"
)

// PostActorUpdate is the builder for updating PostActor entities.
type PostActorUpdate struct {
	config
	hooks    []Hook
	mutation *PostActorMutation
}

// Where appends a list predicates to the PostActorUpdate builder.
func (_u *PostActorUpdate) Where(ps ...predicate.PostActor) *PostActorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *PostActorUpdate) SetPostID(v string) *PostActorUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *PostActorUpdate) SetNillablePostID(v *string) *PostActorUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *PostActorUpdate) SetActorID(v string) *PostActorUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *PostActorUpdate) SetNillableActorID(v *string) *PostActorUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *PostActorUpdate) SetRelationshipType(v postactor.RelationshipType) *PostActorUpdate {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *PostActorUpdate) SetNillableRelationshipType(v *postactor.RelationshipType) *PostActorUpdate {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// SetPost sets the "post" edge to the Post entity.
func (_u *PostActorUpdate) SetPost(v *Post) *PostActorUpdate {
	return _u.SetPostID(v.ID)
}

// SetActor sets the "actor" edge to the Actor entity.
func (_u *PostActorUpdate) SetActor(v *Actor) *PostActorUpdate {
	return _u.SetActorID(v.ID)
}

// Mutation returns the PostActorMutation object of the builder.
func (_u *PostActorUpdate) Mutation() *PostActorMutation {
	return _u.mutation
}

// ClearPost clears the "post" edge to the Post entity.
func (_u *PostActorUpdate) ClearPost() *PostActorUpdate {
	_u.mutation.ClearPost()
	return _u
}

// ClearActor clears the "actor" edge to the Actor entity.
func (_u *PostActorUpdate) ClearActor() *PostActorUpdate {
	_u.mutation.ClearActor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostActorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostActorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostActorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostActorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostActorUpdate) check() error {
	if v, ok := _u.mutation.RelationshipType(); ok {
		if err := postactor.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "PostActor.relationship_type": %w`, err)}
		}
	}
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostActor.post"`)
	}
	if _u.mutation.ActorCleared() && len(_u.mutation.ActorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostActor.actor"`)
	}
	return nil
}

func (_u *PostActorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postactor.Table, postactor.Columns, sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(postactor.FieldRelationshipType, field.TypeEnum, value)
	}
	if _u.mutation.PostCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostActorUpdateOne is the builder for updating a single PostActor entity.
type PostActorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostActorMutation
}

// SetPostID sets the "post_id" field.
func (_u *PostActorUpdateOne) SetPostID(v string) *PostActorUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *PostActorUpdateOne) SetNillablePostID(v *string) *PostActorUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *PostActorUpdateOne) SetActorID(v string) *PostActorUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *PostActorUpdateOne) SetNillableActorID(v *string) *PostActorUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *PostActorUpdateOne) SetRelationshipType(v postactor.RelationshipType) *PostActorUpdateOne {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *PostActorUpdateOne) SetNillableRelationshipType(v *postactor.RelationshipType) *PostActorUpdateOne {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// SetPost sets the "post" edge to the Post entity.
func (_u *PostActorUpdateOne) SetPost(v *Post) *PostActorUpdateOne {
	return _u.SetPostID(v.ID)
}

// SetActor sets the "actor" edge to the Actor entity.
func (_u *PostActorUpdateOne) SetActor(v *Actor) *PostActorUpdateOne {
	return _u.SetActorID(v.ID)
}

// Mutation returns the PostActorMutation object of the builder.
func (_u *PostActorUpdateOne) Mutation() *PostActorMutation {
	return _u.mutation
}

// ClearPost clears the "post" edge to the Post entity.
func (_u *PostActorUpdateOne) ClearPost() *PostActorUpdateOne {
	_u.mutation.ClearPost()
	return _u
}

// ClearActor clears the "actor" edge to the Actor entity.
func (_u *PostActorUpdateOne) ClearActor() *PostActorUpdateOne {
	_u.mutation.ClearActor()
	return _u
}

// Where appends a list predicates to the PostActorUpdate builder.
func (_u *PostActorUpdateOne) Where(ps ...predicate.PostActor) *PostActorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostActorUpdateOne) Select(field string, fields ...string) *PostActorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PostActor entity.
func (_u *PostActorUpdateOne) Save(ctx context.Context) (*PostActor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostActorUpdateOne) SaveX(ctx context.Context) *PostActor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostActorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostActorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostActorUpdateOne) check() error {
	if v, ok := _u.mutation.RelationshipType(); ok {
		if err := postactor.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "PostActor.relationship_type": %w`, err)}
		}
	}
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostActor.post"`)
	}
	if _u.mutation.ActorCleared() && len(_u.mutation.ActorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostActor.actor"`)
	}
	return nil
}

func (_u *PostActorUpdateOne) sqlSave(ctx context.Context) (_node *PostActor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postactor.Table, postactor.Columns, sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PostActor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, postactor.FieldID)
		for _, f := range fields {
			if !postactor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != postactor.FieldID {
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
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(postactor.FieldRelationshipType, field.TypeEnum, value)
	}
	if _u.mutation.PostCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PostActor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
