// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/actorusername"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ActorUsernameUpdate is the builder for updating ActorUsername entities.
type ActorUsernameUpdate struct {
	config
	hooks    []Hook
	mutation *ActorUsernameMutation
}

// Where appends a list predicates to the ActorUsernameUpdate builder.
func (_u *ActorUsernameUpdate) Where(ps ...predicate.ActorUsername) *ActorUsernameUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *ActorUsernameUpdate) SetActorID(v string) *ActorUsernameUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *ActorUsernameUpdate) SetNillableActorID(v *string) *ActorUsernameUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *ActorUsernameUpdate) SetUsername(v string) *ActorUsernameUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ActorUsernameUpdate) SetNillableUsername(v *string) *ActorUsernameUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *ActorUsernameUpdate) SetPlatform(v string) *ActorUsernameUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *ActorUsernameUpdate) SetNillablePlatform(v *string) *ActorUsernameUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetShouldScrape sets the "should_scrape" field.
func (_u *ActorUsernameUpdate) SetShouldScrape(v bool) *ActorUsernameUpdate {
	_u.mutation.SetShouldScrape(v)
	return _u
}

// SetNillableShouldScrape sets the "should_scrape" field if the given value is not nil.
func (_u *ActorUsernameUpdate) SetNillableShouldScrape(v *bool) *ActorUsernameUpdate {
	if v != nil {
		_u.SetShouldScrape(*v)
	}
	return _u
}

// SetLastScrape sets the "last_scrape" field.
func (_u *ActorUsernameUpdate) SetLastScrape(v time.Time) *ActorUsernameUpdate {
	_u.mutation.SetLastScrape(v)
	return _u
}

// SetNillableLastScrape sets the "last_scrape" field if the given value is not nil.
func (_u *ActorUsernameUpdate) SetNillableLastScrape(v *time.Time) *ActorUsernameUpdate {
	if v != nil {
		_u.SetLastScrape(*v)
	}
	return _u
}

// ClearLastScrape clears the value of the "last_scrape" field.
func (_u *ActorUsernameUpdate) ClearLastScrape() *ActorUsernameUpdate {
	_u.mutation.ClearLastScrape()
	return _u
}

// SetLastProfileUpdate sets the "last_profile_update" field.
func (_u *ActorUsernameUpdate) SetLastProfileUpdate(v time.Time) *ActorUsernameUpdate {
	_u.mutation.SetLastProfileUpdate(v)
	return _u
}

// SetNillableLastProfileUpdate sets the "last_profile_update" field if the given value is not nil.
func (_u *ActorUsernameUpdate) SetNillableLastProfileUpdate(v *time.Time) *ActorUsernameUpdate {
	if v != nil {
		_u.SetLastProfileUpdate(*v)
	}
	return _u
}

// ClearLastProfileUpdate clears the value of the "last_profile_update" field.
func (_u *ActorUsernameUpdate) ClearLastProfileUpdate() *ActorUsernameUpdate {
	_u.mutation.ClearLastProfileUpdate()
	return _u
}

// SetActor sets the "actor" edge to the Actor entity.
func (_u *ActorUsernameUpdate) SetActor(v *Actor) *ActorUsernameUpdate {
	return _u.SetActorID(v.ID)
}

// Mutation returns the ActorUsernameMutation object of the builder.
func (_u *ActorUsernameUpdate) Mutation() *ActorUsernameMutation {
	return _u.mutation
}

// ClearActor clears the "actor" edge to the Actor entity.
func (_u *ActorUsernameUpdate) ClearActor() *ActorUsernameUpdate {
	_u.mutation.ClearActor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActorUsernameUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActorUsernameUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActorUsernameUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActorUsernameUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActorUsernameUpdate) check() error {
	if _u.mutation.ActorCleared() && len(_u.mutation.ActorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActorUsername.actor"`)
	}
	return nil
}

func (_u *ActorUsernameUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actorusername.Table, actorusername.Columns, sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(actorusername.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(actorusername.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShouldScrape(); ok {
		_spec.SetField(actorusername.FieldShouldScrape, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastScrape(); ok {
		_spec.SetField(actorusername.FieldLastScrape, field.TypeTime, value)
	}
	if _u.mutation.LastScrapeCleared() {
		_spec.ClearField(actorusername.FieldLastScrape, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProfileUpdate(); ok {
		_spec.SetField(actorusername.FieldLastProfileUpdate, field.TypeTime, value)
	}
	if _u.mutation.LastProfileUpdateCleared() {
		_spec.ClearField(actorusername.FieldLastProfileUpdate, field.TypeTime)
	}
	if _u.mutation.ActorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actorusername.ActorTable,
			Columns: []string{actorusername.ActorColumn},
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
			Table:   actorusername.ActorTable,
			Columns: []string{actorusername.ActorColumn},
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
			err = &NotFoundError{actorusername.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActorUsernameUpdateOne is the builder for updating a single ActorUsername entity.
type ActorUsernameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActorUsernameMutation
}

// SetActorID sets the "actor_id" field.
func (_u *ActorUsernameUpdateOne) SetActorID(v string) *ActorUsernameUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *ActorUsernameUpdateOne) SetNillableActorID(v *string) *ActorUsernameUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *ActorUsernameUpdateOne) SetUsername(v string) *ActorUsernameUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ActorUsernameUpdateOne) SetNillableUsername(v *string) *ActorUsernameUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *ActorUsernameUpdateOne) SetPlatform(v string) *ActorUsernameUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *ActorUsernameUpdateOne) SetNillablePlatform(v *string) *ActorUsernameUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetShouldScrape sets the "should_scrape" field.
func (_u *ActorUsernameUpdateOne) SetShouldScrape(v bool) *ActorUsernameUpdateOne {
	_u.mutation.SetShouldScrape(v)
	return _u
}

// SetNillableShouldScrape sets the "should_scrape" field if the given value is not nil.
func (_u *ActorUsernameUpdateOne) SetNillableShouldScrape(v *bool) *ActorUsernameUpdateOne {
	if v != nil {
		_u.SetShouldScrape(*v)
	}
	return _u
}

// SetLastScrape sets the "last_scrape" field.
func (_u *ActorUsernameUpdateOne) SetLastScrape(v time.Time) *ActorUsernameUpdateOne {
	_u.mutation.SetLastScrape(v)
	return _u
}

// SetNillableLastScrape sets the "last_scrape" field if the given value is not nil.
func (_u *ActorUsernameUpdateOne) SetNillableLastScrape(v *time.Time) *ActorUsernameUpdateOne {
	if v != nil {
		_u.SetLastScrape(*v)
	}
	return _u
}

// ClearLastScrape clears the value of the "last_scrape" field.
func (_u *ActorUsernameUpdateOne) ClearLastScrape() *ActorUsernameUpdateOne {
	_u.mutation.ClearLastScrape()
	return _u
}

// SetLastProfileUpdate sets the "last_profile_update" field.
func (_u *ActorUsernameUpdateOne) SetLastProfileUpdate(v time.Time) *ActorUsernameUpdateOne {
	_u.mutation.SetLastProfileUpdate(v)
	return _u
}

// SetNillableLastProfileUpdate sets the "last_profile_update" field if the given value is not nil.
func (_u *ActorUsernameUpdateOne) SetNillableLastProfileUpdate(v *time.Time) *ActorUsernameUpdateOne {
	if v != nil {
		_u.SetLastProfileUpdate(*v)
	}
	return _u
}

// ClearLastProfileUpdate clears the value of the "last_profile_update" field.
func (_u *ActorUsernameUpdateOne) ClearLastProfileUpdate() *ActorUsernameUpdateOne {
	_u.mutation.ClearLastProfileUpdate()
	return _u
}

// SetActor sets the "actor" edge to the Actor entity.
func (_u *ActorUsernameUpdateOne) SetActor(v *Actor) *ActorUsernameUpdateOne {
	return _u.SetActorID(v.ID)
}

// Mutation returns the ActorUsernameMutation object of the builder.
func (_u *ActorUsernameUpdateOne) Mutation() *ActorUsernameMutation {
	return _u.mutation
}

// ClearActor clears the "actor" edge to the Actor entity.
func (_u *ActorUsernameUpdateOne) ClearActor() *ActorUsernameUpdateOne {
	_u.mutation.ClearActor()
	return _u
}

// Where appends a list predicates to the ActorUsernameUpdate builder.
func (_u *ActorUsernameUpdateOne) Where(ps ...predicate.ActorUsername) *ActorUsernameUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActorUsernameUpdateOne) Select(field string, fields ...string) *ActorUsernameUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActorUsername entity.
func (_u *ActorUsernameUpdateOne) Save(ctx context.Context) (*ActorUsername, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActorUsernameUpdateOne) SaveX(ctx context.Context) *ActorUsername {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActorUsernameUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActorUsernameUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActorUsernameUpdateOne) check() error {
	if _u.mutation.ActorCleared() && len(_u.mutation.ActorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActorUsername.actor"`)
	}
	return nil
}

func (_u *ActorUsernameUpdateOne) sqlSave(ctx context.Context) (_node *ActorUsername, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actorusername.Table, actorusername.Columns, sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActorUsername.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actorusername.FieldID)
		for _, f := range fields {
			if !actorusername.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actorusername.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(actorusername.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(actorusername.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShouldScrape(); ok {
		_spec.SetField(actorusername.FieldShouldScrape, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastScrape(); ok {
		_spec.SetField(actorusername.FieldLastScrape, field.TypeTime, value)
	}
	if _u.mutation.LastScrapeCleared() {
		_spec.ClearField(actorusername.FieldLastScrape, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProfileUpdate(); ok {
		_spec.SetField(actorusername.FieldLastProfileUpdate, field.TypeTime, value)
	}
	if _u.mutation.LastProfileUpdateCleared() {
		_spec.ClearField(actorusername.FieldLastProfileUpdate, field.TypeTime)
	}
	if _u.mutation.ActorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actorusername.ActorTable,
			Columns: []string{actorusername.ActorColumn},
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
			Table:   actorusername.ActorTable,
			Columns: []string{actorusername.ActorColumn},
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
	_node = &ActorUsername{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actorusername.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
