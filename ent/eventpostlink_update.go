// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/predicate"
)

// EventPostLinkUpdate is the builder for updating EventPostLink entities.
type EventPostLinkUpdate struct {
	config
	hooks    []Hook
	mutation *EventPostLinkMutation
}

// Where appends a list predicates to the EventPostLinkUpdate builder.
func (_u *EventPostLinkUpdate) Where(ps ...predicate.EventPostLink) *EventPostLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventPostLinkUpdate) SetEventID(v string) *EventPostLinkUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventPostLinkUpdate) SetNillableEventID(v *string) *EventPostLinkUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *EventPostLinkUpdate) SetPostID(v string) *EventPostLinkUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *EventPostLinkUpdate) SetNillablePostID(v *string) *EventPostLinkUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *EventPostLinkUpdate) SetEvent(v *Event) *EventPostLinkUpdate {
	return _u.SetEventID(v.ID)
}

// SetPost sets the "post" edge to the Post entity.
func (_u *EventPostLinkUpdate) SetPost(v *Post) *EventPostLinkUpdate {
	return _u.SetPostID(v.ID)
}

// Mutation returns the EventPostLinkMutation object of the builder.
func (_u *EventPostLinkUpdate) Mutation() *EventPostLinkMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *EventPostLinkUpdate) ClearEvent() *EventPostLinkUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// ClearPost clears the "post" edge to the Post entity.
func (_u *EventPostLinkUpdate) ClearPost() *EventPostLinkUpdate {
	_u.mutation.ClearPost()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventPostLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventPostLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventPostLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventPostLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventPostLinkUpdate) check() error {
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventPostLink.event"`)
	}
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventPostLink.post"`)
	}
	return nil
}

func (_u *EventPostLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventpostlink.Table, eventpostlink.Columns, sqlgraph.NewFieldSpec(eventpostlink.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventpostlink.EventTable,
			Columns: []string{eventpostlink.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventpostlink.EventTable,
			Columns: []string{eventpostlink.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PostCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventpostlink.PostTable,
			Columns: []string{eventpostlink.PostColumn},
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
			Table:   eventpostlink.PostTable,
			Columns: []string{eventpostlink.PostColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventpostlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventPostLinkUpdateOne is the builder for updating a single EventPostLink entity.
type EventPostLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventPostLinkMutation
}

// SetEventID sets the "event_id" field.
func (_u *EventPostLinkUpdateOne) SetEventID(v string) *EventPostLinkUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventPostLinkUpdateOne) SetNillableEventID(v *string) *EventPostLinkUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *EventPostLinkUpdateOne) SetPostID(v string) *EventPostLinkUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *EventPostLinkUpdateOne) SetNillablePostID(v *string) *EventPostLinkUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *EventPostLinkUpdateOne) SetEvent(v *Event) *EventPostLinkUpdateOne {
	return _u.SetEventID(v.ID)
}

// SetPost sets the "post" edge to the Post entity.
func (_u *EventPostLinkUpdateOne) SetPost(v *Post) *EventPostLinkUpdateOne {
	return _u.SetPostID(v.ID)
}

// Mutation returns the EventPostLinkMutation object of the builder.
func (_u *EventPostLinkUpdateOne) Mutation() *EventPostLinkMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *EventPostLinkUpdateOne) ClearEvent() *EventPostLinkUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// ClearPost clears the "post" edge to the Post entity.
func (_u *EventPostLinkUpdateOne) ClearPost() *EventPostLinkUpdateOne {
	_u.mutation.ClearPost()
	return _u
}

// Where appends a list predicates to the EventPostLinkUpdate builder.
func (_u *EventPostLinkUpdateOne) Where(ps ...predicate.EventPostLink) *EventPostLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventPostLinkUpdateOne) Select(field string, fields ...string) *EventPostLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventPostLink entity.
func (_u *EventPostLinkUpdateOne) Save(ctx context.Context) (*EventPostLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventPostLinkUpdateOne) SaveX(ctx context.Context) *EventPostLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventPostLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventPostLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventPostLinkUpdateOne) check() error {
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventPostLink.event"`)
	}
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventPostLink.post"`)
	}
	return nil
}

func (_u *EventPostLinkUpdateOne) sqlSave(ctx context.Context) (_node *EventPostLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventpostlink.Table, eventpostlink.Columns, sqlgraph.NewFieldSpec(eventpostlink.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventPostLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventpostlink.FieldID)
		for _, f := range fields {
			if !eventpostlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventpostlink.FieldID {
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
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventpostlink.EventTable,
			Columns: []string{eventpostlink.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventpostlink.EventTable,
			Columns: []string{eventpostlink.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PostCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventpostlink.PostTable,
			Columns: []string{eventpostlink.PostColumn},
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
			Table:   eventpostlink.PostTable,
			Columns: []string{eventpostlink.PostColumn},
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
	_node = &EventPostLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventpostlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
