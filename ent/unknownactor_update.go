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
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/predicate"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// UnknownActorUpdate is the builder for updating UnknownActor entities.
type UnknownActorUpdate struct {
	config
	hooks    []Hook
	mutation *UnknownActorMutation
}

// Where appends a list predicates to the UnknownActorUpdate builder.
func (_u *UnknownActorUpdate) Where(ps ...predicate.UnknownActor) *UnknownActorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *UnknownActorUpdate) SetPlatform(v string) *UnknownActorUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillablePlatform(v *string) *UnknownActorUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetDetectedUsername sets the "detected_username" field.
func (_u *UnknownActorUpdate) SetDetectedUsername(v string) *UnknownActorUpdate {
	_u.mutation.SetDetectedUsername(v)
	return _u
}

// SetNillableDetectedUsername sets the "detected_username" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableDetectedUsername(v *string) *UnknownActorUpdate {
	if v != nil {
		_u.SetDetectedUsername(*v)
	}
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *UnknownActorUpdate) SetFirstSeen(v time.Time) *UnknownActorUpdate {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableFirstSeen(v *time.Time) *UnknownActorUpdate {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *UnknownActorUpdate) SetLastSeen(v time.Time) *UnknownActorUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableLastSeen(v *time.Time) *UnknownActorUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *UnknownActorUpdate) SetMentionCount(v int) *UnknownActorUpdate {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableMentionCount(v *int) *UnknownActorUpdate {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *UnknownActorUpdate) AddMentionCount(v int) *UnknownActorUpdate {
	_u.mutation.AddMentionCount(v)
	return _u
}

// SetAuthorCount sets the "author_count" field.
func (_u *UnknownActorUpdate) SetAuthorCount(v int) *UnknownActorUpdate {
	_u.mutation.ResetAuthorCount()
	_u.mutation.SetAuthorCount(v)
	return _u
}

// SetNillableAuthorCount sets the "author_count" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableAuthorCount(v *int) *UnknownActorUpdate {
	if v != nil {
		_u.SetAuthorCount(*v)
	}
	return _u
}

// AddAuthorCount adds value to the "author_count" field.
func (_u *UnknownActorUpdate) AddAuthorCount(v int) *UnknownActorUpdate {
	_u.mutation.AddAuthorCount(v)
	return _u
}

// SetMentionContext sets the "mention_context" field.
func (_u *UnknownActorUpdate) SetMentionContext(v string) *UnknownActorUpdate {
	_u.mutation.SetMentionContext(v)
	return _u
}

// SetNillableMentionContext sets the "mention_context" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableMentionContext(v *string) *UnknownActorUpdate {
	if v != nil {
		_u.SetMentionContext(*v)
	}
	return _u
}

// ClearMentionContext clears the value of the "mention_context" field.
func (_u *UnknownActorUpdate) ClearMentionContext() *UnknownActorUpdate {
	_u.mutation.ClearMentionContext()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UnknownActorUpdate) SetDisplayName(v string) *UnknownActorUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableDisplayName(v *string) *UnknownActorUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UnknownActorUpdate) ClearDisplayName() *UnknownActorUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetBio sets the "bio" field.
func (_u *UnknownActorUpdate) SetBio(v string) *UnknownActorUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableBio(v *string) *UnknownActorUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *UnknownActorUpdate) ClearBio() *UnknownActorUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *UnknownActorUpdate) SetReviewStatus(v unknownactor.ReviewStatus) *UnknownActorUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *UnknownActorUpdate) SetNillableReviewStatus(v *unknownactor.ReviewStatus) *UnknownActorUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// AddPostLinkIDs adds the "post_links" edge to the PostUnknownActor entity by IDs.
func (_u *UnknownActorUpdate) AddPostLinkIDs(ids ...string) *UnknownActorUpdate {
	_u.mutation.AddPostLinkIDs(ids...)
	return _u
}

// AddPostLinks adds the "post_links" edges to the PostUnknownActor entity.
func (_u *UnknownActorUpdate) AddPostLinks(v ...*PostUnknownActor) *UnknownActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostLinkIDs(ids...)
}

// Mutation returns the UnknownActorMutation object of the builder.
func (_u *UnknownActorUpdate) Mutation() *UnknownActorMutation {
	return _u.mutation
}

// ClearPostLinks clears all "post_links" edges to the PostUnknownActor entity.
func (_u *UnknownActorUpdate) ClearPostLinks() *UnknownActorUpdate {
	_u.mutation.ClearPostLinks()
	return _u
}

// RemovePostLinkIDs removes the "post_links" edge to PostUnknownActor entities by IDs.
func (_u *UnknownActorUpdate) RemovePostLinkIDs(ids ...string) *UnknownActorUpdate {
	_u.mutation.RemovePostLinkIDs(ids...)
	return _u
}

// RemovePostLinks removes "post_links" edges to PostUnknownActor entities.
func (_u *UnknownActorUpdate) RemovePostLinks(v ...*PostUnknownActor) *UnknownActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnknownActorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnknownActorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnknownActorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnknownActorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnknownActorUpdate) check() error {
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := unknownactor.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "UnknownActor.review_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UnknownActorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unknownactor.Table, unknownactor.Columns, sqlgraph.NewFieldSpec(unknownactor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(unknownactor.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetectedUsername(); ok {
		_spec.SetField(unknownactor.FieldDetectedUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(unknownactor.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(unknownactor.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(unknownactor.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(unknownactor.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuthorCount(); ok {
		_spec.SetField(unknownactor.FieldAuthorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAuthorCount(); ok {
		_spec.AddField(unknownactor.FieldAuthorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MentionContext(); ok {
		_spec.SetField(unknownactor.FieldMentionContext, field.TypeString, value)
	}
	if _u.mutation.MentionContextCleared() {
		_spec.ClearField(unknownactor.FieldMentionContext, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(unknownactor.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(unknownactor.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(unknownactor.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(unknownactor.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(unknownactor.FieldReviewStatus, field.TypeEnum, value)
	}
	if _u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   unknownactor.PostLinksTable,
			Columns: []string{unknownactor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostLinksIDs(); len(nodes) > 0 && !_u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   unknownactor.PostLinksTable,
			Columns: []string{unknownactor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString),
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
			Table:   unknownactor.PostLinksTable,
			Columns: []string{unknownactor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unknownactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnknownActorUpdateOne is the builder for updating a single UnknownActor entity.
type UnknownActorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnknownActorMutation
}

// SetPlatform sets the "platform" field.
func (_u *UnknownActorUpdateOne) SetPlatform(v string) *UnknownActorUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillablePlatform(v *string) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetDetectedUsername sets the "detected_username" field.
func (_u *UnknownActorUpdateOne) SetDetectedUsername(v string) *UnknownActorUpdateOne {
	_u.mutation.SetDetectedUsername(v)
	return _u
}

// SetNillableDetectedUsername sets the "detected_username" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableDetectedUsername(v *string) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetDetectedUsername(*v)
	}
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *UnknownActorUpdateOne) SetFirstSeen(v time.Time) *UnknownActorUpdateOne {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableFirstSeen(v *time.Time) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *UnknownActorUpdateOne) SetLastSeen(v time.Time) *UnknownActorUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableLastSeen(v *time.Time) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *UnknownActorUpdateOne) SetMentionCount(v int) *UnknownActorUpdateOne {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableMentionCount(v *int) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *UnknownActorUpdateOne) AddMentionCount(v int) *UnknownActorUpdateOne {
	_u.mutation.AddMentionCount(v)
	return _u
}

// SetAuthorCount sets the "author_count" field.
func (_u *UnknownActorUpdateOne) SetAuthorCount(v int) *UnknownActorUpdateOne {
	_u.mutation.ResetAuthorCount()
	_u.mutation.SetAuthorCount(v)
	return _u
}

// SetNillableAuthorCount sets the "author_count" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableAuthorCount(v *int) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetAuthorCount(*v)
	}
	return _u
}

// AddAuthorCount adds value to the "author_count" field.
func (_u *UnknownActorUpdateOne) AddAuthorCount(v int) *UnknownActorUpdateOne {
	_u.mutation.AddAuthorCount(v)
	return _u
}

// SetMentionContext sets the "mention_context" field.
func (_u *UnknownActorUpdateOne) SetMentionContext(v string) *UnknownActorUpdateOne {
	_u.mutation.SetMentionContext(v)
	return _u
}

// SetNillableMentionContext sets the "mention_context" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableMentionContext(v *string) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetMentionContext(*v)
	}
	return _u
}

// ClearMentionContext clears the value of the "mention_context" field.
func (_u *UnknownActorUpdateOne) ClearMentionContext() *UnknownActorUpdateOne {
	_u.mutation.ClearMentionContext()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UnknownActorUpdateOne) SetDisplayName(v string) *UnknownActorUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableDisplayName(v *string) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UnknownActorUpdateOne) ClearDisplayName() *UnknownActorUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetBio sets the "bio" field.
func (_u *UnknownActorUpdateOne) SetBio(v string) *UnknownActorUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableBio(v *string) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *UnknownActorUpdateOne) ClearBio() *UnknownActorUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *UnknownActorUpdateOne) SetReviewStatus(v unknownactor.ReviewStatus) *UnknownActorUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *UnknownActorUpdateOne) SetNillableReviewStatus(v *unknownactor.ReviewStatus) *UnknownActorUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// AddPostLinkIDs adds the "post_links" edge to the PostUnknownActor entity by IDs.
func (_u *UnknownActorUpdateOne) AddPostLinkIDs(ids ...string) *UnknownActorUpdateOne {
	_u.mutation.AddPostLinkIDs(ids...)
	return _u
}

// AddPostLinks adds the "post_links" edges to the PostUnknownActor entity.
func (_u *UnknownActorUpdateOne) AddPostLinks(v ...*PostUnknownActor) *UnknownActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostLinkIDs(ids...)
}

// Mutation returns the UnknownActorMutation object of the builder.
func (_u *UnknownActorUpdateOne) Mutation() *UnknownActorMutation {
	return _u.mutation
}

// ClearPostLinks clears all "post_links" edges to the PostUnknownActor entity.
func (_u *UnknownActorUpdateOne) ClearPostLinks() *UnknownActorUpdateOne {
	_u.mutation.ClearPostLinks()
	return _u
}

// RemovePostLinkIDs removes the "post_links" edge to PostUnknownActor entities by IDs.
func (_u *UnknownActorUpdateOne) RemovePostLinkIDs(ids ...string) *UnknownActorUpdateOne {
	_u.mutation.RemovePostLinkIDs(ids...)
	return _u
}

// RemovePostLinks removes "post_links" edges to PostUnknownActor entities.
func (_u *UnknownActorUpdateOne) RemovePostLinks(v ...*PostUnknownActor) *UnknownActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostLinkIDs(ids...)
}

// Where appends a list predicates to the UnknownActorUpdate builder.
func (_u *UnknownActorUpdateOne) Where(ps ...predicate.UnknownActor) *UnknownActorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnknownActorUpdateOne) Select(field string, fields ...string) *UnknownActorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnknownActor entity.
func (_u *UnknownActorUpdateOne) Save(ctx context.Context) (*UnknownActor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnknownActorUpdateOne) SaveX(ctx context.Context) *UnknownActor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnknownActorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnknownActorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnknownActorUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := unknownactor.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "UnknownActor.review_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UnknownActorUpdateOne) sqlSave(ctx context.Context) (_node *UnknownActor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unknownactor.Table, unknownactor.Columns, sqlgraph.NewFieldSpec(unknownactor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnknownActor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unknownactor.FieldID)
		for _, f := range fields {
			if !unknownactor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unknownactor.FieldID {
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
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(unknownactor.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetectedUsername(); ok {
		_spec.SetField(unknownactor.FieldDetectedUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(unknownactor.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(unknownactor.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(unknownactor.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(unknownactor.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuthorCount(); ok {
		_spec.SetField(unknownactor.FieldAuthorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAuthorCount(); ok {
		_spec.AddField(unknownactor.FieldAuthorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MentionContext(); ok {
		_spec.SetField(unknownactor.FieldMentionContext, field.TypeString, value)
	}
	if _u.mutation.MentionContextCleared() {
		_spec.ClearField(unknownactor.FieldMentionContext, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(unknownactor.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(unknownactor.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(unknownactor.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(unknownactor.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(unknownactor.FieldReviewStatus, field.TypeEnum, value)
	}
	if _u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   unknownactor.PostLinksTable,
			Columns: []string{unknownactor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostLinksIDs(); len(nodes) > 0 && !_u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   unknownactor.PostLinksTable,
			Columns: []string{unknownactor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString),
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
			Table:   unknownactor.PostLinksTable,
			Columns: []string{unknownactor.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postunknownactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UnknownActor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unknownactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
