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
	"github.com/civiclens/civiclens/ent/eventactorlink"
	"github.com/civiclens/civiclens/ent/predicate"
)

// EventActorLinkUpdate is the builder for updating EventActorLink entities.
type EventActorLinkUpdate struct {
	config
	hooks    []Hook
	mutation *EventActorLinkMutation
}

// Where appends a list predicates to the EventActorLinkUpdate builder.
func (_u *EventActorLinkUpdate) Where(ps ...predicate.EventActorLink) *EventActorLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventActorLinkUpdate) SetEventID(v string) *EventActorLinkUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventActorLinkUpdate) SetNillableEventID(v *string) *EventActorLinkUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetActorHandle sets the "actor_handle" field.
func (_u *EventActorLinkUpdate) SetActorHandle(v string) *EventActorLinkUpdate {
	_u.mutation.SetActorHandle(v)
	return _u
}

// SetNillableActorHandle sets the "actor_handle" field if the given value is not nil.
func (_u *EventActorLinkUpdate) SetNillableActorHandle(v *string) *EventActorLinkUpdate {
	if v != nil {
		_u.SetActorHandle(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *EventActorLinkUpdate) SetPlatform(v string) *EventActorLinkUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *EventActorLinkUpdate) SetNillablePlatform(v *string) *EventActorLinkUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetActorType sets the "actor_type" field.
func (_u *EventActorLinkUpdate) SetActorType(v string) *EventActorLinkUpdate {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *EventActorLinkUpdate) SetNillableActorType(v *string) *EventActorLinkUpdate {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// ClearActorType clears the value of the "actor_type" field.
func (_u *EventActorLinkUpdate) ClearActorType() *EventActorLinkUpdate {
	_u.mutation.ClearActorType()
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *EventActorLinkUpdate) SetActorID(v string) *EventActorLinkUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *EventActorLinkUpdate) SetNillableActorID(v *string) *EventActorLinkUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// ClearActorID clears the value of the "actor_id" field.
func (_u *EventActorLinkUpdate) ClearActorID() *EventActorLinkUpdate {
	_u.mutation.ClearActorID()
	return _u
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (_u *EventActorLinkUpdate) SetUnknownActorID(v string) *EventActorLinkUpdate {
	_u.mutation.SetUnknownActorID(v)
	return _u
}

// SetNillableUnknownActorID sets the "unknown_actor_id" field if the given value is not nil.
func (_u *EventActorLinkUpdate) SetNillableUnknownActorID(v *string) *EventActorLinkUpdate {
	if v != nil {
		_u.SetUnknownActorID(*v)
	}
	return _u
}

// ClearUnknownActorID clears the value of the "unknown_actor_id" field.
func (_u *EventActorLinkUpdate) ClearUnknownActorID() *EventActorLinkUpdate {
	_u.mutation.ClearUnknownActorID()
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *EventActorLinkUpdate) SetEvent(v *Event) *EventActorLinkUpdate {
	return _u.SetEventID(v.ID)
}

// Mutation returns the EventActorLinkMutation object of the builder.
func (_u *EventActorLinkUpdate) Mutation() *EventActorLinkMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *EventActorLinkUpdate) ClearEvent() *EventActorLinkUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventActorLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventActorLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventActorLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventActorLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventActorLinkUpdate) check() error {
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventActorLink.event"`)
	}
	return nil
}

func (_u *EventActorLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventactorlink.Table, eventactorlink.Columns, sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActorHandle(); ok {
		_spec.SetField(eventactorlink.FieldActorHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(eventactorlink.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(eventactorlink.FieldActorType, field.TypeString, value)
	}
	if _u.mutation.ActorTypeCleared() {
		_spec.ClearField(eventactorlink.FieldActorType, field.TypeString)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(eventactorlink.FieldActorID, field.TypeString, value)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(eventactorlink.FieldActorID, field.TypeString)
	}
	if value, ok := _u.mutation.UnknownActorID(); ok {
		_spec.SetField(eventactorlink.FieldUnknownActorID, field.TypeString, value)
	}
	if _u.mutation.UnknownActorIDCleared() {
		_spec.ClearField(eventactorlink.FieldUnknownActorID, field.TypeString)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventactorlink.EventTable,
			Columns: []string{eventactorlink.EventColumn},
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
			Table:   eventactorlink.EventTable,
			Columns: []string{eventactorlink.EventColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventactorlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventActorLinkUpdateOne is the builder for updating a single EventActorLink entity.
type EventActorLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventActorLinkMutation
}

// SetEventID sets the "event_id" field.
func (_u *EventActorLinkUpdateOne) SetEventID(v string) *EventActorLinkUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventActorLinkUpdateOne) SetNillableEventID(v *string) *EventActorLinkUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetActorHandle sets the "actor_handle" field.
func (_u *EventActorLinkUpdateOne) SetActorHandle(v string) *EventActorLinkUpdateOne {
	_u.mutation.SetActorHandle(v)
	return _u
}

// SetNillableActorHandle sets the "actor_handle" field if the given value is not nil.
func (_u *EventActorLinkUpdateOne) SetNillableActorHandle(v *string) *EventActorLinkUpdateOne {
	if v != nil {
		_u.SetActorHandle(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *EventActorLinkUpdateOne) SetPlatform(v string) *EventActorLinkUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *EventActorLinkUpdateOne) SetNillablePlatform(v *string) *EventActorLinkUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetActorType sets the "actor_type" field.
func (_u *EventActorLinkUpdateOne) SetActorType(v string) *EventActorLinkUpdateOne {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *EventActorLinkUpdateOne) SetNillableActorType(v *string) *EventActorLinkUpdateOne {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// ClearActorType clears the value of the "actor_type" field.
func (_u *EventActorLinkUpdateOne) ClearActorType() *EventActorLinkUpdateOne {
	_u.mutation.ClearActorType()
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *EventActorLinkUpdateOne) SetActorID(v string) *EventActorLinkUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *EventActorLinkUpdateOne) SetNillableActorID(v *string) *EventActorLinkUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// ClearActorID clears the value of the "actor_id" field.
func (_u *EventActorLinkUpdateOne) ClearActorID() *EventActorLinkUpdateOne {
	_u.mutation.ClearActorID()
	return _u
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (_u *EventActorLinkUpdateOne) SetUnknownActorID(v string) *EventActorLinkUpdateOne {
	_u.mutation.SetUnknownActorID(v)
	return _u
}

// SetNillableUnknownActorID sets the "unknown_actor_id" field if the given value is not nil.
func (_u *EventActorLinkUpdateOne) SetNillableUnknownActorID(v *string) *EventActorLinkUpdateOne {
	if v != nil {
		_u.SetUnknownActorID(*v)
	}
	return _u
}

// ClearUnknownActorID clears the value of the "unknown_actor_id" field.
func (_u *EventActorLinkUpdateOne) ClearUnknownActorID() *EventActorLinkUpdateOne {
	_u.mutation.ClearUnknownActorID()
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *EventActorLinkUpdateOne) SetEvent(v *Event) *EventActorLinkUpdateOne {
	return _u.SetEventID(v.ID)
}

// Mutation returns the EventActorLinkMutation object of the builder.
func (_u *EventActorLinkUpdateOne) Mutation() *EventActorLinkMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *EventActorLinkUpdateOne) ClearEvent() *EventActorLinkUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// Where appends a list predicates to the EventActorLinkUpdate builder.
func (_u *EventActorLinkUpdateOne) Where(ps ...predicate.EventActorLink) *EventActorLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventActorLinkUpdateOne) Select(field string, fields ...string) *EventActorLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventActorLink entity.
func (_u *EventActorLinkUpdateOne) Save(ctx context.Context) (*EventActorLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventActorLinkUpdateOne) SaveX(ctx context.Context) *EventActorLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventActorLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventActorLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventActorLinkUpdateOne) check() error {
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EventActorLink.event"`)
	}
	return nil
}

func (_u *EventActorLinkUpdateOne) sqlSave(ctx context.Context) (_node *EventActorLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventactorlink.Table, eventactorlink.Columns, sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventActorLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventactorlink.FieldID)
		for _, f := range fields {
			if !eventactorlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventactorlink.FieldID {
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
	if value, ok := _u.mutation.ActorHandle(); ok {
		_spec.SetField(eventactorlink.FieldActorHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(eventactorlink.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(eventactorlink.FieldActorType, field.TypeString, value)
	}
	if _u.mutation.ActorTypeCleared() {
		_spec.ClearField(eventactorlink.FieldActorType, field.TypeString)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(eventactorlink.FieldActorID, field.TypeString, value)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(eventactorlink.FieldActorID, field.TypeString)
	}
	if value, ok := _u.mutation.UnknownActorID(); ok {
		_spec.SetField(eventactorlink.FieldUnknownActorID, field.TypeString, value)
	}
	if _u.mutation.UnknownActorIDCleared() {
		_spec.ClearField(eventactorlink.FieldUnknownActorID, field.TypeString)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventactorlink.EventTable,
			Columns: []string{eventactorlink.EventColumn},
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
			Table:   eventactorlink.EventTable,
			Columns: []string{eventactorlink.EventColumn},
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
	_node = &EventActorLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventactorlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
