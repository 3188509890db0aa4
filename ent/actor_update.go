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
	"github.com/civiclens/civiclens/ent/actorusername"
	"github.com/civiclens/civiclens/ent/postactor"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ActorUpdate is the builder for updating Actor entities.
type ActorUpdate struct {
	config
	hooks    []Hook
	mutation *ActorMutation
}

// Where appends a list predicates to the ActorUpdate builder.
func (_u *ActorUpdate) Where(ps ...predicate.Actor) *ActorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActorType sets the "actor_type" field.
func (_u *ActorUpdate) SetActorType(v actor.ActorType) *ActorUpdate {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableActorType(v *actor.ActorType) *ActorUpdate {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ActorUpdate) SetName(v string) *ActorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableName(v *string) *ActorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAbout sets the "about" field.
func (_u *ActorUpdate) SetAbout(v string) *ActorUpdate {
	_u.mutation.SetAbout(v)
	return _u
}

// SetNillableAbout sets the "about" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableAbout(v *string) *ActorUpdate {
	if v != nil {
		_u.SetAbout(*v)
	}
	return _u
}

// ClearAbout clears the value of the "about" field.
func (_u *ActorUpdate) ClearAbout() *ActorUpdate {
	_u.mutation.ClearAbout()
	return _u
}

// SetCity sets the "city" field.
func (_u *ActorUpdate) SetCity(v string) *ActorUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableCity(v *string) *ActorUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ActorUpdate) ClearCity() *ActorUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *ActorUpdate) SetState(v string) *ActorUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableState(v *string) *ActorUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ActorUpdate) ClearState() *ActorUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetProfileData sets the "profile_data" field.
func (_u *ActorUpdate) SetProfileData(v map[string]interface{}) *ActorUpdate {
	_u.mutation.SetProfileData(v)
	return _u
}

// ClearProfileData clears the value of the "profile_data" field.
func (_u *ActorUpdate) ClearProfileData() *ActorUpdate {
	_u.mutation.ClearProfileData()
	return _u
}

// AddUsernameIDs adds the "usernames" edge to the ActorUsername entity by IDs.
func (_u *ActorUpdate) AddUsernameIDs(ids ...string) *ActorUpdate {
	_u.mutation.AddUsernameIDs(ids...)
	return _u
}

// AddUsernames adds the "usernames" edges to the ActorUsername entity.
func (_u *ActorUpdate) AddUsernames(v ...*ActorUsername) *ActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsernameIDs(ids...)
}

// AddPostLinkIDs adds the "post_links" edge to the PostActor entity by IDs.
func (_u *ActorUpdate) AddPostLinkIDs(ids ...string) *ActorUpdate {
	_u.mutation.AddPostLinkIDs(ids...)
	return _u
}

// AddPostLinks adds the "post_links" edges to the PostActor entity.
func (_u *ActorUpdate) AddPostLinks(v ...*PostActor) *ActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostLinkIDs(ids...)
}

// Mutation returns the ActorMutation object of the builder.
func (_u *ActorUpdate) Mutation() *ActorMutation {
	return _u.mutation
}

// ClearUsernames clears all "usernames" edges to the ActorUsername entity.
func (_u *ActorUpdate) ClearUsernames() *ActorUpdate {
	_u.mutation.ClearUsernames()
	return _u
}

// RemoveUsernameIDs removes the "usernames" edge to ActorUsername entities by IDs.
func (_u *ActorUpdate) RemoveUsernameIDs(ids ...string) *ActorUpdate {
	_u.mutation.RemoveUsernameIDs(ids...)
	return _u
}

// RemoveUsernames removes "usernames" edges to ActorUsername entities.
func (_u *ActorUpdate) RemoveUsernames(v ...*ActorUsername) *ActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsernameIDs(ids...)
}

// ClearPostLinks clears all "post_links" edges to the PostActor entity.
func (_u *ActorUpdate) ClearPostLinks() *ActorUpdate {
	_u.mutation.ClearPostLinks()
	return _u
}

// RemovePostLinkIDs removes the "post_links" edge to PostActor entities by IDs.
func (_u *ActorUpdate) RemovePostLinkIDs(ids ...string) *ActorUpdate {
	_u.mutation.RemovePostLinkIDs(ids...)
	return _u
}

// RemovePostLinks removes "post_links" edges to PostActor entities.
func (_u *ActorUpdate) RemovePostLinks(v ...*PostActor) *ActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActorUpdate) check() error {
	if v, ok := _u.mutation.ActorType(); ok {
		if err := actor.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Actor.actor_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actor.Table, actor.Columns, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(actor.FieldActorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(actor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.About(); ok {
		_spec.SetField(actor.FieldAbout, field.TypeString, value)
	}
	if _u.mutation.AboutCleared() {
		_spec.ClearField(actor.FieldAbout, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(actor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(actor.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(actor.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(actor.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileData(); ok {
		_spec.SetField(actor.FieldProfileData, field.TypeJSON, value)
	}
	if _u.mutation.ProfileDataCleared() {
		_spec.ClearField(actor.FieldProfileData, field.TypeJSON)
	}
	if _u.mutation.UsernamesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.UsernamesTable,
			Columns: []string{actor.UsernamesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsernamesIDs(); len(nodes) > 0 && !_u.mutation.UsernamesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.UsernamesTable,
			Columns: []string{actor.UsernamesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsernamesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.UsernamesTable,
			Columns: []string{actor.UsernamesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.PostLinksTable,
			Columns: []string{actor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostLinksIDs(); len(nodes) > 0 && !_u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.PostLinksTable,
			Columns: []string{actor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.PostLinksTable,
			Columns: []string{actor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActorUpdateOne is the builder for updating a single Actor entity.
type ActorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActorMutation
}

// SetActorType sets the "actor_type" field.
func (_u *ActorUpdateOne) SetActorType(v actor.ActorType) *ActorUpdateOne {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableActorType(v *actor.ActorType) *ActorUpdateOne {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ActorUpdateOne) SetName(v string) *ActorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableName(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAbout sets the "about" field.
func (_u *ActorUpdateOne) SetAbout(v string) *ActorUpdateOne {
	_u.mutation.SetAbout(v)
	return _u
}

// SetNillableAbout sets the "about" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableAbout(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetAbout(*v)
	}
	return _u
}

// ClearAbout clears the value of the "about" field.
func (_u *ActorUpdateOne) ClearAbout() *ActorUpdateOne {
	_u.mutation.ClearAbout()
	return _u
}

// SetCity sets the "city" field.
func (_u *ActorUpdateOne) SetCity(v string) *ActorUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableCity(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ActorUpdateOne) ClearCity() *ActorUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *ActorUpdateOne) SetState(v string) *ActorUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableState(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ActorUpdateOne) ClearState() *ActorUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetProfileData sets the "profile_data" field.
func (_u *ActorUpdateOne) SetProfileData(v map[string]interface{}) *ActorUpdateOne {
	_u.mutation.SetProfileData(v)
	return _u
}

// ClearProfileData clears the value of the "profile_data" field.
func (_u *ActorUpdateOne) ClearProfileData() *ActorUpdateOne {
	_u.mutation.ClearProfileData()
	return _u
}

// AddUsernameIDs adds the "usernames" edge to the ActorUsername entity by IDs.
func (_u *ActorUpdateOne) AddUsernameIDs(ids ...string) *ActorUpdateOne {
	_u.mutation.AddUsernameIDs(ids...)
	return _u
}

// AddUsernames adds the "usernames" edges to the ActorUsername entity.
func (_u *ActorUpdateOne) AddUsernames(v ...*ActorUsername) *ActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsernameIDs(ids...)
}

// AddPostLinkIDs adds the "post_links" edge to the PostActor entity by IDs.
func (_u *ActorUpdateOne) AddPostLinkIDs(ids ...string) *ActorUpdateOne {
	_u.mutation.AddPostLinkIDs(ids...)
	return _u
}

// AddPostLinks adds the "post_links" edges to the PostActor entity.
func (_u *ActorUpdateOne) AddPostLinks(v ...*PostActor) *ActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostLinkIDs(ids...)
}

// Mutation returns the ActorMutation object of the builder.
func (_u *ActorUpdateOne) Mutation() *ActorMutation {
	return _u.mutation
}

// ClearUsernames clears all "usernames" edges to the ActorUsername entity.
func (_u *ActorUpdateOne) ClearUsernames() *ActorUpdateOne {
	_u.mutation.ClearUsernames()
	return _u
}

// RemoveUsernameIDs removes the "usernames" edge to ActorUsername entities by IDs.
func (_u *ActorUpdateOne) RemoveUsernameIDs(ids ...string) *ActorUpdateOne {
	_u.mutation.RemoveUsernameIDs(ids...)
	return _u
}

// RemoveUsernames removes "usernames" edges to ActorUsername entities.
func (_u *ActorUpdateOne) RemoveUsernames(v ...*ActorUsername) *ActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsernameIDs(ids...)
}

// ClearPostLinks clears all "post_links" edges to the PostActor entity.
func (_u *ActorUpdateOne) ClearPostLinks() *ActorUpdateOne {
	_u.mutation.ClearPostLinks()
	return _u
}

// RemovePostLinkIDs removes the "post_links" edge to PostActor entities by IDs.
func (_u *ActorUpdateOne) RemovePostLinkIDs(ids ...string) *ActorUpdateOne {
	_u.mutation.RemovePostLinkIDs(ids...)
	return _u
}

// RemovePostLinks removes "post_links" edges to PostActor entities.
func (_u *ActorUpdateOne) RemovePostLinks(v ...*PostActor) *ActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostLinkIDs(ids...)
}

// Where appends a list predicates to the ActorUpdate builder.
func (_u *ActorUpdateOne) Where(ps ...predicate.Actor) *ActorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActorUpdateOne) Select(field string, fields ...string) *ActorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Actor entity.
func (_u *ActorUpdateOne) Save(ctx context.Context) (*Actor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActorUpdateOne) SaveX(ctx context.Context) *Actor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActorUpdateOne) check() error {
	if v, ok := _u.mutation.ActorType(); ok {
		if err := actor.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Actor.actor_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActorUpdateOne) sqlSave(ctx context.Context) (_node *Actor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actor.Table, actor.Columns, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Actor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actor.FieldID)
		for _, f := range fields {
			if !actor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actor.FieldID {
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
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(actor.FieldActorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(actor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.About(); ok {
		_spec.SetField(actor.FieldAbout, field.TypeString, value)
	}
	if _u.mutation.AboutCleared() {
		_spec.ClearField(actor.FieldAbout, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(actor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(actor.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(actor.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(actor.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileData(); ok {
		_spec.SetField(actor.FieldProfileData, field.TypeJSON, value)
	}
	if _u.mutation.ProfileDataCleared() {
		_spec.ClearField(actor.FieldProfileData, field.TypeJSON)
	}
	if _u.mutation.UsernamesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.UsernamesTable,
			Columns: []string{actor.UsernamesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsernamesIDs(); len(nodes) > 0 && !_u.mutation.UsernamesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.UsernamesTable,
			Columns: []string{actor.UsernamesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsernamesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.UsernamesTable,
			Columns: []string{actor.UsernamesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actorusername.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.PostLinksTable,
			Columns: []string{actor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostLinksIDs(); len(nodes) > 0 && !_u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.PostLinksTable,
			Columns: []string{actor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actor.PostLinksTable,
			Columns: []string{actor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Actor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
