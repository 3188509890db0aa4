// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// UnknownActorCreate is the builder for creating a UnknownActor entity.
type UnknownActorCreate struct {
	config
	mutation *UnknownActorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlatform sets the "platform" field.
func (_c *UnknownActorCreate) SetPlatform(v string) *UnknownActorCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetDetectedUsername sets the "detected_username" field.
func (_c *UnknownActorCreate) SetDetectedUsername(v string) *UnknownActorCreate {
	_c.mutation.SetDetectedUsername(v)
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *UnknownActorCreate) SetFirstSeen(v time.Time) *UnknownActorCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableFirstSeen(v *time.Time) *UnknownActorCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *UnknownActorCreate) SetLastSeen(v time.Time) *UnknownActorCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableLastSeen(v *time.Time) *UnknownActorCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetMentionCount sets the "mention_count" field.
func (_c *UnknownActorCreate) SetMentionCount(v int) *UnknownActorCreate {
	_c.mutation.SetMentionCount(v)
	return _c
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableMentionCount(v *int) *UnknownActorCreate {
	if v != nil {
		_c.SetMentionCount(*v)
	}
	return _c
}

// SetAuthorCount sets the "author_count" field.
func (_c *UnknownActorCreate) SetAuthorCount(v int) *UnknownActorCreate {
	_c.mutation.SetAuthorCount(v)
	return _c
}

// SetNillableAuthorCount sets the "author_count" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableAuthorCount(v *int) *UnknownActorCreate {
	if v != nil {
		_c.SetAuthorCount(*v)
	}
	return _c
}

// SetMentionContext sets the "mention_context" field.
func (_c *UnknownActorCreate) SetMentionContext(v string) *UnknownActorCreate {
	_c.mutation.SetMentionContext(v)
	return _c
}

// SetNillableMentionContext sets the "mention_context" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableMentionContext(v *string) *UnknownActorCreate {
	if v != nil {
		_c.SetMentionContext(*v)
	}
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *UnknownActorCreate) SetDisplayName(v string) *UnknownActorCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableDisplayName(v *string) *UnknownActorCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *UnknownActorCreate) SetBio(v string) *UnknownActorCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableBio(v *string) *UnknownActorCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *UnknownActorCreate) SetReviewStatus(v unknownactor.ReviewStatus) *UnknownActorCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableReviewStatus(v *unknownactor.ReviewStatus) *UnknownActorCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnknownActorCreate) SetID(v string) *UnknownActorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UnknownActorCreate) SetNillableID(v *string) *UnknownActorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPostLinkIDs adds the "post_links" edge to the PostUnknownActor entity by IDs.
func (_c *UnknownActorCreate) AddPostLinkIDs(ids ...string) *UnknownActorCreate {
	_c.mutation.AddPostLinkIDs(ids...)
	return _c
}

// AddPostLinks adds the "post_links" edges to the PostUnknownActor entity.
func (_c *UnknownActorCreate) AddPostLinks(v ...*PostUnknownActor) *UnknownActorCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPostLinkIDs(ids...)
}

// Mutation returns the UnknownActorMutation object of the builder.
func (_c *UnknownActorCreate) Mutation() *UnknownActorMutation {
	return _c.mutation
}

// Save creates the UnknownActor in the database.
func (_c *UnknownActorCreate) Save(ctx context.Context) (*UnknownActor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnknownActorCreate) SaveX(ctx context.Context) *UnknownActor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnknownActorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnknownActorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnknownActorCreate) defaults() {
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := unknownactor.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := unknownactor.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.MentionCount(); !ok {
		v := unknownactor.DefaultMentionCount
		_c.mutation.SetMentionCount(v)
	}
	if _, ok := _c.mutation.AuthorCount(); !ok {
		v := unknownactor.DefaultAuthorCount
		_c.mutation.SetAuthorCount(v)
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := unknownactor.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := unknownactor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnknownActorCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "UnknownActor.platform"`)}
	}
	if _, ok := _c.mutation.DetectedUsername(); !ok {
		return &ValidationError{Name: "detected_username", err: errors.New(`ent: missing required field "UnknownActor.detected_username"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "UnknownActor.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "UnknownActor.last_seen"`)}
	}
	if _, ok := _c.mutation.MentionCount(); !ok {
		return &ValidationError{Name: "mention_count", err: errors.New(`ent: missing required field "UnknownActor.mention_count"`)}
	}
	if _, ok := _c.mutation.AuthorCount(); !ok {
		return &ValidationError{Name: "author_count", err: errors.New(`ent: missing required field "UnknownActor.author_count"`)}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "UnknownActor.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := unknownactor.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "UnknownActor.review_status": %w`, err)}
		}
	}
	return nil
}

func (_c *UnknownActorCreate) sqlSave(ctx context.Context) (*UnknownActor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected UnknownActor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UnknownActorCreate) createSpec() (*UnknownActor, *sqlgraph.CreateSpec) {
	var (
		_node = &UnknownActor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unknownactor.Table, sqlgraph.NewFieldSpec(unknownactor.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(unknownactor.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.DetectedUsername(); ok {
		_spec.SetField(unknownactor.FieldDetectedUsername, field.TypeString, value)
		_node.DetectedUsername = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(unknownactor.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(unknownactor.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.MentionCount(); ok {
		_spec.SetField(unknownactor.FieldMentionCount, field.TypeInt, value)
		_node.MentionCount = value
	}
	if value, ok := _c.mutation.AuthorCount(); ok {
		_spec.SetField(unknownactor.FieldAuthorCount, field.TypeInt, value)
		_node.AuthorCount = value
	}
	if value, ok := _c.mutation.MentionContext(); ok {
		_spec.SetField(unknownactor.FieldMentionContext, field.TypeString, value)
		_node.MentionContext = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(unknownactor.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(unknownactor.FieldBio, field.TypeString, value)
		_node.Bio = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(unknownactor.FieldReviewStatus, field.TypeEnum, value)
		_node.ReviewStatus = value
	}
	if nodes := _c.mutation.PostLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UnknownActor.Create().
//		SetPlatform(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnknownActorUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *UnknownActorCreate) OnConflict(opts ...sql.ConflictOption) *UnknownActorUpsertOne {
	_c.conflict = opts
	return &UnknownActorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UnknownActor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnknownActorCreate) OnConflictColumns(columns ...string) *UnknownActorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnknownActorUpsertOne{
		create: _c,
	}
}

type (
	// UnknownActorUpsertOne is the builder for "upsert"-ing
	//  one UnknownActor node.
	UnknownActorUpsertOne struct {
		create *UnknownActorCreate
	}

	// UnknownActorUpsert is the "OnConflict" setter.
	UnknownActorUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlatform sets the "platform" field.
func (u *UnknownActorUpsert) SetPlatform(v string) *UnknownActorUpsert {
	u.Set(unknownactor.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdatePlatform() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldPlatform)
	return u
}

// SetDetectedUsername sets the "detected_username" field.
func (u *UnknownActorUpsert) SetDetectedUsername(v string) *UnknownActorUpsert {
	u.Set(unknownactor.FieldDetectedUsername, v)
	return u
}

// UpdateDetectedUsername sets the "detected_username" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateDetectedUsername() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldDetectedUsername)
	return u
}

// SetFirstSeen sets the "first_seen" field.
func (u *UnknownActorUpsert) SetFirstSeen(v time.Time) *UnknownActorUpsert {
	u.Set(unknownactor.FieldFirstSeen, v)
	return u
}

// UpdateFirstSeen sets the "first_seen" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateFirstSeen() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldFirstSeen)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *UnknownActorUpsert) SetLastSeen(v time.Time) *UnknownActorUpsert {
	u.Set(unknownactor.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateLastSeen() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldLastSeen)
	return u
}

// SetMentionCount sets the "mention_count" field.
func (u *UnknownActorUpsert) SetMentionCount(v int) *UnknownActorUpsert {
	u.Set(unknownactor.FieldMentionCount, v)
	return u
}

// UpdateMentionCount sets the "mention_count" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateMentionCount() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldMentionCount)
	return u
}

// AddMentionCount adds v to the "mention_count" field.
func (u *UnknownActorUpsert) AddMentionCount(v int) *UnknownActorUpsert {
	u.Add(unknownactor.FieldMentionCount, v)
	return u
}

// SetAuthorCount sets the "author_count" field.
func (u *UnknownActorUpsert) SetAuthorCount(v int) *UnknownActorUpsert {
	u.Set(unknownactor.FieldAuthorCount, v)
	return u
}

// UpdateAuthorCount sets the "author_count" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateAuthorCount() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldAuthorCount)
	return u
}

// AddAuthorCount adds v to the "author_count" field.
func (u *UnknownActorUpsert) AddAuthorCount(v int) *UnknownActorUpsert {
	u.Add(unknownactor.FieldAuthorCount, v)
	return u
}

// SetMentionContext sets the "mention_context" field.
func (u *UnknownActorUpsert) SetMentionContext(v string) *UnknownActorUpsert {
	u.Set(unknownactor.FieldMentionContext, v)
	return u
}

// UpdateMentionContext sets the "mention_context" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateMentionContext() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldMentionContext)
	return u
}

// ClearMentionContext clears the value of the "mention_context" field.
func (u *UnknownActorUpsert) ClearMentionContext() *UnknownActorUpsert {
	u.SetNull(unknownactor.FieldMentionContext)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *UnknownActorUpsert) SetDisplayName(v string) *UnknownActorUpsert {
	u.Set(unknownactor.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateDisplayName() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldDisplayName)
	return u
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *UnknownActorUpsert) ClearDisplayName() *UnknownActorUpsert {
	u.SetNull(unknownactor.FieldDisplayName)
	return u
}

// SetBio sets the "bio" field.
func (u *UnknownActorUpsert) SetBio(v string) *UnknownActorUpsert {
	u.Set(unknownactor.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateBio() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldBio)
	return u
}

// ClearBio clears the value of the "bio" field.
func (u *UnknownActorUpsert) ClearBio() *UnknownActorUpsert {
	u.SetNull(unknownactor.FieldBio)
	return u
}

// SetReviewStatus sets the "review_status" field.
func (u *UnknownActorUpsert) SetReviewStatus(v unknownactor.ReviewStatus) *UnknownActorUpsert {
	u.Set(unknownactor.FieldReviewStatus, v)
	return u
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *UnknownActorUpsert) UpdateReviewStatus() *UnknownActorUpsert {
	u.SetExcluded(unknownactor.FieldReviewStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UnknownActor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unknownactor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnknownActorUpsertOne) UpdateNewValues() *UnknownActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(unknownactor.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UnknownActor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UnknownActorUpsertOne) Ignore() *UnknownActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnknownActorUpsertOne) DoNothing() *UnknownActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnknownActorCreate.OnConflict
// documentation for more info.
func (u *UnknownActorUpsertOne) Update(set func(*UnknownActorUpsert)) *UnknownActorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnknownActorUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *UnknownActorUpsertOne) SetPlatform(v string) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdatePlatform() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdatePlatform()
	})
}

// SetDetectedUsername sets the "detected_username" field.
func (u *UnknownActorUpsertOne) SetDetectedUsername(v string) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetDetectedUsername(v)
	})
}

// UpdateDetectedUsername sets the "detected_username" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateDetectedUsername() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateDetectedUsername()
	})
}

// SetFirstSeen sets the "first_seen" field.
func (u *UnknownActorUpsertOne) SetFirstSeen(v time.Time) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetFirstSeen(v)
	})
}

// UpdateFirstSeen sets the "first_seen" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateFirstSeen() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateFirstSeen()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *UnknownActorUpsertOne) SetLastSeen(v time.Time) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateLastSeen() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateLastSeen()
	})
}

// SetMentionCount sets the "mention_count" field.
func (u *UnknownActorUpsertOne) SetMentionCount(v int) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetMentionCount(v)
	})
}

// AddMentionCount adds v to the "mention_count" field.
func (u *UnknownActorUpsertOne) AddMentionCount(v int) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.AddMentionCount(v)
	})
}

// UpdateMentionCount sets the "mention_count" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateMentionCount() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateMentionCount()
	})
}

// SetAuthorCount sets the "author_count" field.
func (u *UnknownActorUpsertOne) SetAuthorCount(v int) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetAuthorCount(v)
	})
}

// AddAuthorCount adds v to the "author_count" field.
func (u *UnknownActorUpsertOne) AddAuthorCount(v int) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.AddAuthorCount(v)
	})
}

// UpdateAuthorCount sets the "author_count" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateAuthorCount() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateAuthorCount()
	})
}

// SetMentionContext sets the "mention_context" field.
func (u *UnknownActorUpsertOne) SetMentionContext(v string) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetMentionContext(v)
	})
}

// UpdateMentionContext sets the "mention_context" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateMentionContext() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateMentionContext()
	})
}

// ClearMentionContext clears the value of the "mention_context" field.
func (u *UnknownActorUpsertOne) ClearMentionContext() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.ClearMentionContext()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *UnknownActorUpsertOne) SetDisplayName(v string) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateDisplayName() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *UnknownActorUpsertOne) ClearDisplayName() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.ClearDisplayName()
	})
}

// SetBio sets the "bio" field.
func (u *UnknownActorUpsertOne) SetBio(v string) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateBio() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *UnknownActorUpsertOne) ClearBio() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.ClearBio()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *UnknownActorUpsertOne) SetReviewStatus(v unknownactor.ReviewStatus) *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *UnknownActorUpsertOne) UpdateReviewStatus() *UnknownActorUpsertOne {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateReviewStatus()
	})
}

// Exec executes the query.
func (u *UnknownActorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnknownActorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnknownActorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UnknownActorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UnknownActorUpsertOne.ID is not supported by MySQL driver. Use UnknownActorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UnknownActorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UnknownActorCreateBulk is the builder for creating many UnknownActor entities in bulk.
type UnknownActorCreateBulk struct {
	config
	err      error
	builders []*UnknownActorCreate
	conflict []sql.ConflictOption
}

// Save creates the UnknownActor entities in the database.
func (_c *UnknownActorCreateBulk) Save(ctx context.Context) ([]*UnknownActor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnknownActor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnknownActorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UnknownActorCreateBulk) SaveX(ctx context.Context) []*UnknownActor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnknownActorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnknownActorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UnknownActor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnknownActorUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *UnknownActorCreateBulk) OnConflict(opts ...sql.ConflictOption) *UnknownActorUpsertBulk {
	_c.conflict = opts
	return &UnknownActorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UnknownActor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnknownActorCreateBulk) OnConflictColumns(columns ...string) *UnknownActorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnknownActorUpsertBulk{
		create: _c,
	}
}

// UnknownActorUpsertBulk is the builder for "upsert"-ing
// a bulk of UnknownActor nodes.
type UnknownActorUpsertBulk struct {
	create *UnknownActorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UnknownActor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unknownactor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnknownActorUpsertBulk) UpdateNewValues() *UnknownActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(unknownactor.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UnknownActor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UnknownActorUpsertBulk) Ignore() *UnknownActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnknownActorUpsertBulk) DoNothing() *UnknownActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnknownActorCreateBulk.OnConflict
// documentation for more info.
func (u *UnknownActorUpsertBulk) Update(set func(*UnknownActorUpsert)) *UnknownActorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnknownActorUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *UnknownActorUpsertBulk) SetPlatform(v string) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdatePlatform() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdatePlatform()
	})
}

// SetDetectedUsername sets the "detected_username" field.
func (u *UnknownActorUpsertBulk) SetDetectedUsername(v string) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetDetectedUsername(v)
	})
}

// UpdateDetectedUsername sets the "detected_username" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateDetectedUsername() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateDetectedUsername()
	})
}

// SetFirstSeen sets the "first_seen" field.
func (u *UnknownActorUpsertBulk) SetFirstSeen(v time.Time) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetFirstSeen(v)
	})
}

// UpdateFirstSeen sets the "first_seen" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateFirstSeen() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateFirstSeen()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *UnknownActorUpsertBulk) SetLastSeen(v time.Time) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateLastSeen() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateLastSeen()
	})
}

// SetMentionCount sets the "mention_count" field.
func (u *UnknownActorUpsertBulk) SetMentionCount(v int) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetMentionCount(v)
	})
}

// AddMentionCount adds v to the "mention_count" field.
func (u *UnknownActorUpsertBulk) AddMentionCount(v int) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.AddMentionCount(v)
	})
}

// UpdateMentionCount sets the "mention_count" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateMentionCount() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateMentionCount()
	})
}

// SetAuthorCount sets the "author_count" field.
func (u *UnknownActorUpsertBulk) SetAuthorCount(v int) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetAuthorCount(v)
	})
}

// AddAuthorCount adds v to the "author_count" field.
func (u *UnknownActorUpsertBulk) AddAuthorCount(v int) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.AddAuthorCount(v)
	})
}

// UpdateAuthorCount sets the "author_count" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateAuthorCount() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateAuthorCount()
	})
}

// SetMentionContext sets the "mention_context" field.
func (u *UnknownActorUpsertBulk) SetMentionContext(v string) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetMentionContext(v)
	})
}

// UpdateMentionContext sets the "mention_context" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateMentionContext() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateMentionContext()
	})
}

// ClearMentionContext clears the value of the "mention_context" field.
func (u *UnknownActorUpsertBulk) ClearMentionContext() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.ClearMentionContext()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *UnknownActorUpsertBulk) SetDisplayName(v string) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateDisplayName() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *UnknownActorUpsertBulk) ClearDisplayName() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.ClearDisplayName()
	})
}

// SetBio sets the "bio" field.
func (u *UnknownActorUpsertBulk) SetBio(v string) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateBio() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *UnknownActorUpsertBulk) ClearBio() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.ClearBio()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *UnknownActorUpsertBulk) SetReviewStatus(v unknownactor.ReviewStatus) *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *UnknownActorUpsertBulk) UpdateReviewStatus() *UnknownActorUpsertBulk {
	return u.Update(func(s *UnknownActorUpsert) {
		s.UpdateReviewStatus()
	})
}

// Exec executes the query.
func (u *UnknownActorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UnknownActorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnknownActorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnknownActorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
