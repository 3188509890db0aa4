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
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postactor"
	"github.com/civiclens/civiclens/ent/postunknownactor"
)

// PostCreate is the builder for creating a Post entity.
type PostCreate struct {
	config
	mutation *PostMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlatform sets the "platform" field.
func (_c *PostCreate) SetPlatform(v string) *PostCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetExternalPostID sets the "external_post_id" field.
func (_c *PostCreate) SetExternalPostID(v string) *PostCreate {
	_c.mutation.SetExternalPostID(v)
	return _c
}

// SetAuthorHandle sets the "author_handle" field.
func (_c *PostCreate) SetAuthorHandle(v string) *PostCreate {
	_c.mutation.SetAuthorHandle(v)
	return _c
}

// SetAuthorDisplayName sets the "author_display_name" field.
func (_c *PostCreate) SetAuthorDisplayName(v string) *PostCreate {
	_c.mutation.SetAuthorDisplayName(v)
	return _c
}

// SetNillableAuthorDisplayName sets the "author_display_name" field if the given value is not nil.
func (_c *PostCreate) SetNillableAuthorDisplayName(v *string) *PostCreate {
	if v != nil {
		_c.SetAuthorDisplayName(*v)
	}
	return _c
}

// SetContentText sets the "content_text" field.
func (_c *PostCreate) SetContentText(v string) *PostCreate {
	_c.mutation.SetContentText(v)
	return _c
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_c *PostCreate) SetNillableContentText(v *string) *PostCreate {
	if v != nil {
		_c.SetContentText(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PostCreate) SetTimestamp(v time.Time) *PostCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PostCreate) SetNillableTimestamp(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMediaUrls sets the "media_urls" field.
func (_c *PostCreate) SetMediaUrls(v []string) *PostCreate {
	_c.mutation.SetMediaUrls(v)
	return _c
}

// SetMentionedHandles sets the "mentioned_handles" field.
func (_c *PostCreate) SetMentionedHandles(v []string) *PostCreate {
	_c.mutation.SetMentionedHandles(v)
	return _c
}

// SetHashtags sets the "hashtags" field.
func (_c *PostCreate) SetHashtags(v []string) *PostCreate {
	_c.mutation.SetHashtags(v)
	return _c
}

// SetLikeCount sets the "like_count" field.
func (_c *PostCreate) SetLikeCount(v int) *PostCreate {
	_c.mutation.SetLikeCount(v)
	return _c
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_c *PostCreate) SetNillableLikeCount(v *int) *PostCreate {
	if v != nil {
		_c.SetLikeCount(*v)
	}
	return _c
}

// SetReplyCount sets the "reply_count" field.
func (_c *PostCreate) SetReplyCount(v int) *PostCreate {
	_c.mutation.SetReplyCount(v)
	return _c
}

// SetNillableReplyCount sets the "reply_count" field if the given value is not nil.
func (_c *PostCreate) SetNillableReplyCount(v *int) *PostCreate {
	if v != nil {
		_c.SetReplyCount(*v)
	}
	return _c
}

// SetRetweetCount sets the "retweet_count" field.
func (_c *PostCreate) SetRetweetCount(v int) *PostCreate {
	_c.mutation.SetRetweetCount(v)
	return _c
}

// SetNillableRetweetCount sets the "retweet_count" field if the given value is not nil.
func (_c *PostCreate) SetNillableRetweetCount(v *int) *PostCreate {
	if v != nil {
		_c.SetRetweetCount(*v)
	}
	return _c
}

// SetCommentCount sets the "comment_count" field.
func (_c *PostCreate) SetCommentCount(v int) *PostCreate {
	_c.mutation.SetCommentCount(v)
	return _c
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_c *PostCreate) SetNillableCommentCount(v *int) *PostCreate {
	if v != nil {
		_c.SetCommentCount(*v)
	}
	return _c
}

// SetLocationText sets the "location_text" field.
func (_c *PostCreate) SetLocationText(v string) *PostCreate {
	_c.mutation.SetLocationText(v)
	return _c
}

// SetNillableLocationText sets the "location_text" field if the given value is not nil.
func (_c *PostCreate) SetNillableLocationText(v *string) *PostCreate {
	if v != nil {
		_c.SetLocationText(*v)
	}
	return _c
}

// SetOfflineMediaURL sets the "offline_media_url" field.
func (_c *PostCreate) SetOfflineMediaURL(v string) *PostCreate {
	_c.mutation.SetOfflineMediaURL(v)
	return _c
}

// SetNillableOfflineMediaURL sets the "offline_media_url" field if the given value is not nil.
func (_c *PostCreate) SetNillableOfflineMediaURL(v *string) *PostCreate {
	if v != nil {
		_c.SetOfflineMediaURL(*v)
	}
	return _c
}

// SetProcessedForEvents sets the "processed_for_events" field.
func (_c *PostCreate) SetProcessedForEvents(v bool) *PostCreate {
	_c.mutation.SetProcessedForEvents(v)
	return _c
}

// SetNillableProcessedForEvents sets the "processed_for_events" field if the given value is not nil.
func (_c *PostCreate) SetNillableProcessedForEvents(v *bool) *PostCreate {
	if v != nil {
		_c.SetProcessedForEvents(*v)
	}
	return _c
}

// SetEventProcessedAt sets the "event_processed_at" field.
func (_c *PostCreate) SetEventProcessedAt(v time.Time) *PostCreate {
	_c.mutation.SetEventProcessedAt(v)
	return _c
}

// SetNillableEventProcessedAt sets the "event_processed_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableEventProcessedAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetEventProcessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PostCreate) SetCreatedAt(v time.Time) *PostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableCreatedAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PostCreate) SetID(v string) *PostCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PostCreate) SetNillableID(v *string) *PostCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddActorLinkIDs adds the "actor_links" edge to the PostActor entity by IDs.
func (_c *PostCreate) AddActorLinkIDs(ids ...string) *PostCreate {
	_c.mutation.AddActorLinkIDs(ids...)
	return _c
}

// AddActorLinks adds the "actor_links" edges to the PostActor entity.
func (_c *PostCreate) AddActorLinks(v ...*PostActor) *PostCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActorLinkIDs(ids...)
}

// AddUnknownActorLinkIDs adds the "unknown_actor_links" edge to the PostUnknownActor entity by IDs.
func (_c *PostCreate) AddUnknownActorLinkIDs(ids ...string) *PostCreate {
	_c.mutation.AddUnknownActorLinkIDs(ids...)
	return _c
}

// AddUnknownActorLinks adds the "unknown_actor_links" edges to the PostUnknownActor entity.
func (_c *PostCreate) AddUnknownActorLinks(v ...*PostUnknownActor) *PostCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUnknownActorLinkIDs(ids...)
}

// AddEventLinkIDs adds the "event_links" edge to the EventPostLink entity by IDs.
func (_c *PostCreate) AddEventLinkIDs(ids ...string) *PostCreate {
	_c.mutation.AddEventLinkIDs(ids...)
	return _c
}

// AddEventLinks adds the "event_links" edges to the EventPostLink entity.
func (_c *PostCreate) AddEventLinks(v ...*EventPostLink) *PostCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventLinkIDs(ids...)
}

// Mutation returns the PostMutation object of the builder.
func (_c *PostCreate) Mutation() *PostMutation {
	return _c.mutation
}

// Save creates the Post in the database.
func (_c *PostCreate) Save(ctx context.Context) (*Post, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PostCreate) SaveX(ctx context.Context) *Post {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PostCreate) defaults() {
	if _, ok := _c.mutation.LikeCount(); !ok {
		v := post.DefaultLikeCount
		_c.mutation.SetLikeCount(v)
	}
	if _, ok := _c.mutation.ReplyCount(); !ok {
		v := post.DefaultReplyCount
		_c.mutation.SetReplyCount(v)
	}
	if _, ok := _c.mutation.RetweetCount(); !ok {
		v := post.DefaultRetweetCount
		_c.mutation.SetRetweetCount(v)
	}
	if _, ok := _c.mutation.CommentCount(); !ok {
		v := post.DefaultCommentCount
		_c.mutation.SetCommentCount(v)
	}
	if _, ok := _c.mutation.ProcessedForEvents(); !ok {
		v := post.DefaultProcessedForEvents
		_c.mutation.SetProcessedForEvents(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := post.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := post.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PostCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Post.platform"`)}
	}
	if _, ok := _c.mutation.ExternalPostID(); !ok {
		return &ValidationError{Name: "external_post_id", err: errors.New(`ent: missing required field "Post.external_post_id"`)}
	}
	if _, ok := _c.mutation.AuthorHandle(); !ok {
		return &ValidationError{Name: "author_handle", err: errors.New(`ent: missing required field "Post.author_handle"`)}
	}
	if _, ok := _c.mutation.LikeCount(); !ok {
		return &ValidationError{Name: "like_count", err: errors.New(`ent: missing required field "Post.like_count"`)}
	}
	if _, ok := _c.mutation.ReplyCount(); !ok {
		return &ValidationError{Name: "reply_count", err: errors.New(`ent: missing required field "Post.reply_count"`)}
	}
	if _, ok := _c.mutation.RetweetCount(); !ok {
		return &ValidationError{Name: "retweet_count", err: errors.New(`ent: missing required field "Post.retweet_count"`)}
	}
	if _, ok := _c.mutation.CommentCount(); !ok {
		return &ValidationError{Name: "comment_count", err: errors.New(`ent: missing required field "Post.comment_count"`)}
	}
	if _, ok := _c.mutation.ProcessedForEvents(); !ok {
		return &ValidationError{Name: "processed_for_events", err: errors.New(`ent: missing required field "Post.processed_for_events"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Post.created_at"`)}
	}
	return nil
}

func (_c *PostCreate) sqlSave(ctx context.Context) (*Post, error) {
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
			return nil, fmt.Errorf("unexpected Post.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PostCreate) createSpec() (*Post, *sqlgraph.CreateSpec) {
	var (
		_node = &Post{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(post.Table, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(post.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.ExternalPostID(); ok {
		_spec.SetField(post.FieldExternalPostID, field.TypeString, value)
		_node.ExternalPostID = value
	}
	if value, ok := _c.mutation.AuthorHandle(); ok {
		_spec.SetField(post.FieldAuthorHandle, field.TypeString, value)
		_node.AuthorHandle = value
	}
	if value, ok := _c.mutation.AuthorDisplayName(); ok {
		_spec.SetField(post.FieldAuthorDisplayName, field.TypeString, value)
		_node.AuthorDisplayName = value
	}
	if value, ok := _c.mutation.ContentText(); ok {
		_spec.SetField(post.FieldContentText, field.TypeString, value)
		_node.ContentText = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(post.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = &value
	}
	if value, ok := _c.mutation.MediaUrls(); ok {
		_spec.SetField(post.FieldMediaUrls, field.TypeJSON, value)
		_node.MediaUrls = value
	}
	if value, ok := _c.mutation.MentionedHandles(); ok {
		_spec.SetField(post.FieldMentionedHandles, field.TypeJSON, value)
		_node.MentionedHandles = value
	}
	if value, ok := _c.mutation.Hashtags(); ok {
		_spec.SetField(post.FieldHashtags, field.TypeJSON, value)
		_node.Hashtags = value
	}
	if value, ok := _c.mutation.LikeCount(); ok {
		_spec.SetField(post.FieldLikeCount, field.TypeInt, value)
		_node.LikeCount = value
	}
	if value, ok := _c.mutation.ReplyCount(); ok {
		_spec.SetField(post.FieldReplyCount, field.TypeInt, value)
		_node.ReplyCount = value
	}
	if value, ok := _c.mutation.RetweetCount(); ok {
		_spec.SetField(post.FieldRetweetCount, field.TypeInt, value)
		_node.RetweetCount = value
	}
	if value, ok := _c.mutation.CommentCount(); ok {
		_spec.SetField(post.FieldCommentCount, field.TypeInt, value)
		_node.CommentCount = value
	}
	if value, ok := _c.mutation.LocationText(); ok {
		_spec.SetField(post.FieldLocationText, field.TypeString, value)
		_node.LocationText = value
	}
	if value, ok := _c.mutation.OfflineMediaURL(); ok {
		_spec.SetField(post.FieldOfflineMediaURL, field.TypeString, value)
		_node.OfflineMediaURL = &value
	}
	if value, ok := _c.mutation.ProcessedForEvents(); ok {
		_spec.SetField(post.FieldProcessedForEvents, field.TypeBool, value)
		_node.ProcessedForEvents = value
	}
	if value, ok := _c.mutation.EventProcessedAt(); ok {
		_spec.SetField(post.FieldEventProcessedAt, field.TypeTime, value)
		_node.EventProcessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(post.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ActorLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   post.ActorLinksTable,
			Columns: []string{post.ActorLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UnknownActorLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   post.UnknownActorLinksTable,
			Columns: []string{post.UnknownActorLinksColumn},
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
	if nodes := _c.mutation.EventLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   post.EventLinksTable,
			Columns: []string{post.EventLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventpostlink.FieldID, field.TypeString),
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
//	client.Post.Create().
//		SetPlatform(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PostUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *PostCreate) OnConflict(opts ...sql.ConflictOption) *PostUpsertOne {
	_c.conflict = opts
	return &PostUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PostCreate) OnConflictColumns(columns ...string) *PostUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PostUpsertOne{
		create: _c,
	}
}

type (
	// PostUpsertOne is the builder for "upsert"-ing
	//  one Post node.
	PostUpsertOne struct {
		create *PostCreate
	}

	// PostUpsert is the "OnConflict" setter.
	PostUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlatform sets the "platform" field.
func (u *PostUpsert) SetPlatform(v string) *PostUpsert {
	u.Set(post.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *PostUpsert) UpdatePlatform() *PostUpsert {
	u.SetExcluded(post.FieldPlatform)
	return u
}

// SetExternalPostID sets the "external_post_id" field.
func (u *PostUpsert) SetExternalPostID(v string) *PostUpsert {
	u.Set(post.FieldExternalPostID, v)
	return u
}

// UpdateExternalPostID sets the "external_post_id" field to the value that was provided on create.
func (u *PostUpsert) UpdateExternalPostID() *PostUpsert {
	u.SetExcluded(post.FieldExternalPostID)
	return u
}

// SetAuthorHandle sets the "author_handle" field.
func (u *PostUpsert) SetAuthorHandle(v string) *PostUpsert {
	u.Set(post.FieldAuthorHandle, v)
	return u
}

// UpdateAuthorHandle sets the "author_handle" field to the value that was provided on create.
func (u *PostUpsert) UpdateAuthorHandle() *PostUpsert {
	u.SetExcluded(post.FieldAuthorHandle)
	return u
}

// SetAuthorDisplayName sets the "author_display_name" field.
func (u *PostUpsert) SetAuthorDisplayName(v string) *PostUpsert {
	u.Set(post.FieldAuthorDisplayName, v)
	return u
}

// UpdateAuthorDisplayName sets the "author_display_name" field to the value that was provided on create.
func (u *PostUpsert) UpdateAuthorDisplayName() *PostUpsert {
	u.SetExcluded(post.FieldAuthorDisplayName)
	return u
}

// ClearAuthorDisplayName clears the value of the "author_display_name" field.
func (u *PostUpsert) ClearAuthorDisplayName() *PostUpsert {
	u.SetNull(post.FieldAuthorDisplayName)
	return u
}

// SetContentText sets the "content_text" field.
func (u *PostUpsert) SetContentText(v string) *PostUpsert {
	u.Set(post.FieldContentText, v)
	return u
}

// UpdateContentText sets the "content_text" field to the value that was provided on create.
func (u *PostUpsert) UpdateContentText() *PostUpsert {
	u.SetExcluded(post.FieldContentText)
	return u
}

// ClearContentText clears the value of the "content_text" field.
func (u *PostUpsert) ClearContentText() *PostUpsert {
	u.SetNull(post.FieldContentText)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *PostUpsert) SetTimestamp(v time.Time) *PostUpsert {
	u.Set(post.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *PostUpsert) UpdateTimestamp() *PostUpsert {
	u.SetExcluded(post.FieldTimestamp)
	return u
}

// ClearTimestamp clears the value of the "timestamp" field.
func (u *PostUpsert) ClearTimestamp() *PostUpsert {
	u.SetNull(post.FieldTimestamp)
	return u
}

// SetMediaUrls sets the "media_urls" field.
func (u *PostUpsert) SetMediaUrls(v []string) *PostUpsert {
	u.Set(post.FieldMediaUrls, v)
	return u
}

// UpdateMediaUrls sets the "media_urls" field to the value that was provided on create.
func (u *PostUpsert) UpdateMediaUrls() *PostUpsert {
	u.SetExcluded(post.FieldMediaUrls)
	return u
}

// ClearMediaUrls clears the value of the "media_urls" field.
func (u *PostUpsert) ClearMediaUrls() *PostUpsert {
	u.SetNull(post.FieldMediaUrls)
	return u
}

// SetMentionedHandles sets the "mentioned_handles" field.
func (u *PostUpsert) SetMentionedHandles(v []string) *PostUpsert {
	u.Set(post.FieldMentionedHandles, v)
	return u
}

// UpdateMentionedHandles sets the "mentioned_handles" field to the value that was provided on create.
func (u *PostUpsert) UpdateMentionedHandles() *PostUpsert {
	u.SetExcluded(post.FieldMentionedHandles)
	return u
}

// ClearMentionedHandles clears the value of the "mentioned_handles" field.
func (u *PostUpsert) ClearMentionedHandles() *PostUpsert {
	u.SetNull(post.FieldMentionedHandles)
	return u
}

// SetHashtags sets the "hashtags" field.
func (u *PostUpsert) SetHashtags(v []string) *PostUpsert {
	u.Set(post.FieldHashtags, v)
	return u
}

// UpdateHashtags sets the "hashtags" field to the value that was provided on create.
func (u *PostUpsert) UpdateHashtags() *PostUpsert {
	u.SetExcluded(post.FieldHashtags)
	return u
}

// ClearHashtags clears the value of the "hashtags" field.
func (u *PostUpsert) ClearHashtags() *PostUpsert {
	u.SetNull(post.FieldHashtags)
	return u
}

// SetLikeCount sets the "like_count" field.
func (u *PostUpsert) SetLikeCount(v int) *PostUpsert {
	u.Set(post.FieldLikeCount, v)
	return u
}

// UpdateLikeCount sets the "like_count" field to the value that was provided on create.
func (u *PostUpsert) UpdateLikeCount() *PostUpsert {
	u.SetExcluded(post.FieldLikeCount)
	return u
}

// AddLikeCount adds v to the "like_count" field.
func (u *PostUpsert) AddLikeCount(v int) *PostUpsert {
	u.Add(post.FieldLikeCount, v)
	return u
}

// SetReplyCount sets the "reply_count" field.
func (u *PostUpsert) SetReplyCount(v int) *PostUpsert {
	u.Set(post.FieldReplyCount, v)
	return u
}

// UpdateReplyCount sets the "reply_count" field to the value that was provided on create.
func (u *PostUpsert) UpdateReplyCount() *PostUpsert {
	u.SetExcluded(post.FieldReplyCount)
	return u
}

// AddReplyCount adds v to the "reply_count" field.
func (u *PostUpsert) AddReplyCount(v int) *PostUpsert {
	u.Add(post.FieldReplyCount, v)
	return u
}

// SetRetweetCount sets the "retweet_count" field.
func (u *PostUpsert) SetRetweetCount(v int) *PostUpsert {
	u.Set(post.FieldRetweetCount, v)
	return u
}

// UpdateRetweetCount sets the "retweet_count" field to the value that was provided on create.
func (u *PostUpsert) UpdateRetweetCount() *PostUpsert {
	u.SetExcluded(post.FieldRetweetCount)
	return u
}

// AddRetweetCount adds v to the "retweet_count" field.
func (u *PostUpsert) AddRetweetCount(v int) *PostUpsert {
	u.Add(post.FieldRetweetCount, v)
	return u
}

// SetCommentCount sets the "comment_count" field.
func (u *PostUpsert) SetCommentCount(v int) *PostUpsert {
	u.Set(post.FieldCommentCount, v)
	return u
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *PostUpsert) UpdateCommentCount() *PostUpsert {
	u.SetExcluded(post.FieldCommentCount)
	return u
}

// AddCommentCount adds v to the "comment_count" field.
func (u *PostUpsert) AddCommentCount(v int) *PostUpsert {
	u.Add(post.FieldCommentCount, v)
	return u
}

// SetLocationText sets the "location_text" field.
func (u *PostUpsert) SetLocationText(v string) *PostUpsert {
	u.Set(post.FieldLocationText, v)
	return u
}

// UpdateLocationText sets the "location_text" field to the value that was provided on create.
func (u *PostUpsert) UpdateLocationText() *PostUpsert {
	u.SetExcluded(post.FieldLocationText)
	return u
}

// ClearLocationText clears the value of the "location_text" field.
func (u *PostUpsert) ClearLocationText() *PostUpsert {
	u.SetNull(post.FieldLocationText)
	return u
}

// SetOfflineMediaURL sets the "offline_media_url" field.
func (u *PostUpsert) SetOfflineMediaURL(v string) *PostUpsert {
	u.Set(post.FieldOfflineMediaURL, v)
	return u
}

// UpdateOfflineMediaURL sets the "offline_media_url" field to the value that was provided on create.
func (u *PostUpsert) UpdateOfflineMediaURL() *PostUpsert {
	u.SetExcluded(post.FieldOfflineMediaURL)
	return u
}

// ClearOfflineMediaURL clears the value of the "offline_media_url" field.
func (u *PostUpsert) ClearOfflineMediaURL() *PostUpsert {
	u.SetNull(post.FieldOfflineMediaURL)
	return u
}

// SetProcessedForEvents sets the "processed_for_events" field.
func (u *PostUpsert) SetProcessedForEvents(v bool) *PostUpsert {
	u.Set(post.FieldProcessedForEvents, v)
	return u
}

// UpdateProcessedForEvents sets the "processed_for_events" field to the value that was provided on create.
func (u *PostUpsert) UpdateProcessedForEvents() *PostUpsert {
	u.SetExcluded(post.FieldProcessedForEvents)
	return u
}

// SetEventProcessedAt sets the "event_processed_at" field.
func (u *PostUpsert) SetEventProcessedAt(v time.Time) *PostUpsert {
	u.Set(post.FieldEventProcessedAt, v)
	return u
}

// UpdateEventProcessedAt sets the "event_processed_at" field to the value that was provided on create.
func (u *PostUpsert) UpdateEventProcessedAt() *PostUpsert {
	u.SetExcluded(post.FieldEventProcessedAt)
	return u
}

// ClearEventProcessedAt clears the value of the "event_processed_at" field.
func (u *PostUpsert) ClearEventProcessedAt() *PostUpsert {
	u.SetNull(post.FieldEventProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(post.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PostUpsertOne) UpdateNewValues() *PostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(post.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(post.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Post.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PostUpsertOne) Ignore() *PostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PostUpsertOne) DoNothing() *PostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PostCreate.OnConflict
// documentation for more info.
func (u *PostUpsertOne) Update(set func(*PostUpsert)) *PostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PostUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *PostUpsertOne) SetPlatform(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *PostUpsertOne) UpdatePlatform() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdatePlatform()
	})
}

// SetExternalPostID sets the "external_post_id" field.
func (u *PostUpsertOne) SetExternalPostID(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetExternalPostID(v)
	})
}

// UpdateExternalPostID sets the "external_post_id" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateExternalPostID() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateExternalPostID()
	})
}

// SetAuthorHandle sets the "author_handle" field.
func (u *PostUpsertOne) SetAuthorHandle(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetAuthorHandle(v)
	})
}

// UpdateAuthorHandle sets the "author_handle" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateAuthorHandle() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateAuthorHandle()
	})
}

// SetAuthorDisplayName sets the "author_display_name" field.
func (u *PostUpsertOne) SetAuthorDisplayName(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetAuthorDisplayName(v)
	})
}

// UpdateAuthorDisplayName sets the "author_display_name" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateAuthorDisplayName() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateAuthorDisplayName()
	})
}

// ClearAuthorDisplayName clears the value of the "author_display_name" field.
func (u *PostUpsertOne) ClearAuthorDisplayName() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearAuthorDisplayName()
	})
}

// SetContentText sets the "content_text" field.
func (u *PostUpsertOne) SetContentText(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetContentText(v)
	})
}

// UpdateContentText sets the "content_text" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateContentText() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateContentText()
	})
}

// ClearContentText clears the value of the "content_text" field.
func (u *PostUpsertOne) ClearContentText() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearContentText()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *PostUpsertOne) SetTimestamp(v time.Time) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateTimestamp() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateTimestamp()
	})
}

// ClearTimestamp clears the value of the "timestamp" field.
func (u *PostUpsertOne) ClearTimestamp() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearTimestamp()
	})
}

// SetMediaUrls sets the "media_urls" field.
func (u *PostUpsertOne) SetMediaUrls(v []string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetMediaUrls(v)
	})
}

// UpdateMediaUrls sets the "media_urls" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateMediaUrls() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateMediaUrls()
	})
}

// ClearMediaUrls clears the value of the "media_urls" field.
func (u *PostUpsertOne) ClearMediaUrls() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearMediaUrls()
	})
}

// SetMentionedHandles sets the "mentioned_handles" field.
func (u *PostUpsertOne) SetMentionedHandles(v []string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetMentionedHandles(v)
	})
}

// UpdateMentionedHandles sets the "mentioned_handles" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateMentionedHandles() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateMentionedHandles()
	})
}

// ClearMentionedHandles clears the value of the "mentioned_handles" field.
func (u *PostUpsertOne) ClearMentionedHandles() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearMentionedHandles()
	})
}

// SetHashtags sets the "hashtags" field.
func (u *PostUpsertOne) SetHashtags(v []string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetHashtags(v)
	})
}

// UpdateHashtags sets the "hashtags" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateHashtags() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateHashtags()
	})
}

// ClearHashtags clears the value of the "hashtags" field.
func (u *PostUpsertOne) ClearHashtags() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearHashtags()
	})
}

// SetLikeCount sets the "like_count" field.
func (u *PostUpsertOne) SetLikeCount(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetLikeCount(v)
	})
}

// AddLikeCount adds v to the "like_count" field.
func (u *PostUpsertOne) AddLikeCount(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddLikeCount(v)
	})
}

// UpdateLikeCount sets the "like_count" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateLikeCount() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateLikeCount()
	})
}

// SetReplyCount sets the "reply_count" field.
func (u *PostUpsertOne) SetReplyCount(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetReplyCount(v)
	})
}

// AddReplyCount adds v to the "reply_count" field.
func (u *PostUpsertOne) AddReplyCount(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddReplyCount(v)
	})
}

// UpdateReplyCount sets the "reply_count" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateReplyCount() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateReplyCount()
	})
}

// SetRetweetCount sets the "retweet_count" field.
func (u *PostUpsertOne) SetRetweetCount(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetRetweetCount(v)
	})
}

// AddRetweetCount adds v to the "retweet_count" field.
func (u *PostUpsertOne) AddRetweetCount(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddRetweetCount(v)
	})
}

// UpdateRetweetCount sets the "retweet_count" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateRetweetCount() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateRetweetCount()
	})
}

// SetCommentCount sets the "comment_count" field.
func (u *PostUpsertOne) SetCommentCount(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetCommentCount(v)
	})
}

// AddCommentCount adds v to the "comment_count" field.
func (u *PostUpsertOne) AddCommentCount(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddCommentCount(v)
	})
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateCommentCount() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateCommentCount()
	})
}

// SetLocationText sets the "location_text" field.
func (u *PostUpsertOne) SetLocationText(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetLocationText(v)
	})
}

// UpdateLocationText sets the "location_text" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateLocationText() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateLocationText()
	})
}

// ClearLocationText clears the value of the "location_text" field.
func (u *PostUpsertOne) ClearLocationText() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearLocationText()
	})
}

// SetOfflineMediaURL sets the "offline_media_url" field.
func (u *PostUpsertOne) SetOfflineMediaURL(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetOfflineMediaURL(v)
	})
}

// UpdateOfflineMediaURL sets the "offline_media_url" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateOfflineMediaURL() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateOfflineMediaURL()
	})
}

// ClearOfflineMediaURL clears the value of the "offline_media_url" field.
func (u *PostUpsertOne) ClearOfflineMediaURL() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearOfflineMediaURL()
	})
}

// SetProcessedForEvents sets the "processed_for_events" field.
func (u *PostUpsertOne) SetProcessedForEvents(v bool) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetProcessedForEvents(v)
	})
}

// UpdateProcessedForEvents sets the "processed_for_events" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateProcessedForEvents() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateProcessedForEvents()
	})
}

// SetEventProcessedAt sets the "event_processed_at" field.
func (u *PostUpsertOne) SetEventProcessedAt(v time.Time) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetEventProcessedAt(v)
	})
}

// UpdateEventProcessedAt sets the "event_processed_at" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateEventProcessedAt() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateEventProcessedAt()
	})
}

// ClearEventProcessedAt clears the value of the "event_processed_at" field.
func (u *PostUpsertOne) ClearEventProcessedAt() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearEventProcessedAt()
	})
}

// Exec executes the query.
func (u *PostUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PostCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PostUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PostUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PostUpsertOne.ID is not supported by MySQL driver. Use PostUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PostUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PostCreateBulk is the builder for creating many Post entities in bulk.
type PostCreateBulk struct {
	config
	err      error
	builders []*PostCreate
	conflict []sql.ConflictOption
}

// Save creates the Post entities in the database.
func (_c *PostCreateBulk) Save(ctx context.Context) ([]*Post, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Post, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostMutation)
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
func (_c *PostCreateBulk) SaveX(ctx context.Context) []*Post {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Post.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PostUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *PostCreateBulk) OnConflict(opts ...sql.ConflictOption) *PostUpsertBulk {
	_c.conflict = opts
	return &PostUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PostCreateBulk) OnConflictColumns(columns ...string) *PostUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PostUpsertBulk{
		create: _c,
	}
}

// PostUpsertBulk is the builder for "upsert"-ing
// a bulk of Post nodes.
type PostUpsertBulk struct {
	create *PostCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(post.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PostUpsertBulk) UpdateNewValues() *PostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(post.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(post.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PostUpsertBulk) Ignore() *PostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PostUpsertBulk) DoNothing() *PostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PostCreateBulk.OnConflict
// documentation for more info.
func (u *PostUpsertBulk) Update(set func(*PostUpsert)) *PostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PostUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *PostUpsertBulk) SetPlatform(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdatePlatform() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdatePlatform()
	})
}

// SetExternalPostID sets the "external_post_id" field.
func (u *PostUpsertBulk) SetExternalPostID(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetExternalPostID(v)
	})
}

// UpdateExternalPostID sets the "external_post_id" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateExternalPostID() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateExternalPostID()
	})
}

// SetAuthorHandle sets the "author_handle" field.
func (u *PostUpsertBulk) SetAuthorHandle(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetAuthorHandle(v)
	})
}

// UpdateAuthorHandle sets the "author_handle" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateAuthorHandle() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateAuthorHandle()
	})
}

// SetAuthorDisplayName sets the "author_display_name" field.
func (u *PostUpsertBulk) SetAuthorDisplayName(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetAuthorDisplayName(v)
	})
}

// UpdateAuthorDisplayName sets the "author_display_name" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateAuthorDisplayName() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateAuthorDisplayName()
	})
}

// ClearAuthorDisplayName clears the value of the "author_display_name" field.
func (u *PostUpsertBulk) ClearAuthorDisplayName() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearAuthorDisplayName()
	})
}

// SetContentText sets the "content_text" field.
func (u *PostUpsertBulk) SetContentText(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetContentText(v)
	})
}

// UpdateContentText sets the "content_text" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateContentText() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateContentText()
	})
}

// ClearContentText clears the value of the "content_text" field.
func (u *PostUpsertBulk) ClearContentText() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearContentText()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *PostUpsertBulk) SetTimestamp(v time.Time) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateTimestamp() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateTimestamp()
	})
}

// ClearTimestamp clears the value of the "timestamp" field.
func (u *PostUpsertBulk) ClearTimestamp() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearTimestamp()
	})
}

// SetMediaUrls sets the "media_urls" field.
func (u *PostUpsertBulk) SetMediaUrls(v []string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetMediaUrls(v)
	})
}

// UpdateMediaUrls sets the "media_urls" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateMediaUrls() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateMediaUrls()
	})
}

// ClearMediaUrls clears the value of the "media_urls" field.
func (u *PostUpsertBulk) ClearMediaUrls() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearMediaUrls()
	})
}

// SetMentionedHandles sets the "mentioned_handles" field.
func (u *PostUpsertBulk) SetMentionedHandles(v []string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetMentionedHandles(v)
	})
}

// UpdateMentionedHandles sets the "mentioned_handles" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateMentionedHandles() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateMentionedHandles()
	})
}

// ClearMentionedHandles clears the value of the "mentioned_handles" field.
func (u *PostUpsertBulk) ClearMentionedHandles() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearMentionedHandles()
	})
}

// SetHashtags sets the "hashtags" field.
func (u *PostUpsertBulk) SetHashtags(v []string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetHashtags(v)
	})
}

// UpdateHashtags sets the "hashtags" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateHashtags() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateHashtags()
	})
}

// ClearHashtags clears the value of the "hashtags" field.
func (u *PostUpsertBulk) ClearHashtags() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearHashtags()
	})
}

// SetLikeCount sets the "like_count" field.
func (u *PostUpsertBulk) SetLikeCount(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetLikeCount(v)
	})
}

// AddLikeCount adds v to the "like_count" field.
func (u *PostUpsertBulk) AddLikeCount(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddLikeCount(v)
	})
}

// UpdateLikeCount sets the "like_count" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateLikeCount() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateLikeCount()
	})
}

// SetReplyCount sets the "reply_count" field.
func (u *PostUpsertBulk) SetReplyCount(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetReplyCount(v)
	})
}

// AddReplyCount adds v to the "reply_count" field.
func (u *PostUpsertBulk) AddReplyCount(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddReplyCount(v)
	})
}

// UpdateReplyCount sets the "reply_count" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateReplyCount() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateReplyCount()
	})
}

// SetRetweetCount sets the "retweet_count" field.
func (u *PostUpsertBulk) SetRetweetCount(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetRetweetCount(v)
	})
}

// AddRetweetCount adds v to the "retweet_count" field.
func (u *PostUpsertBulk) AddRetweetCount(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddRetweetCount(v)
	})
}

// UpdateRetweetCount sets the "retweet_count" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateRetweetCount() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateRetweetCount()
	})
}

// SetCommentCount sets the "comment_count" field.
func (u *PostUpsertBulk) SetCommentCount(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetCommentCount(v)
	})
}

// AddCommentCount adds v to the "comment_count" field.
func (u *PostUpsertBulk) AddCommentCount(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddCommentCount(v)
	})
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateCommentCount() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateCommentCount()
	})
}

// SetLocationText sets the "location_text" field.
func (u *PostUpsertBulk) SetLocationText(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetLocationText(v)
	})
}

// UpdateLocationText sets the "location_text" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateLocationText() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateLocationText()
	})
}

// ClearLocationText clears the value of the "location_text" field.
func (u *PostUpsertBulk) ClearLocationText() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearLocationText()
	})
}

// SetOfflineMediaURL sets the "offline_media_url" field.
func (u *PostUpsertBulk) SetOfflineMediaURL(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetOfflineMediaURL(v)
	})
}

// UpdateOfflineMediaURL sets the "offline_media_url" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateOfflineMediaURL() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateOfflineMediaURL()
	})
}

// ClearOfflineMediaURL clears the value of the "offline_media_url" field.
func (u *PostUpsertBulk) ClearOfflineMediaURL() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearOfflineMediaURL()
	})
}

// SetProcessedForEvents sets the "processed_for_events" field.
func (u *PostUpsertBulk) SetProcessedForEvents(v bool) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetProcessedForEvents(v)
	})
}

// UpdateProcessedForEvents sets the "processed_for_events" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateProcessedForEvents() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateProcessedForEvents()
	})
}

// SetEventProcessedAt sets the "event_processed_at" field.
func (u *PostUpsertBulk) SetEventProcessedAt(v time.Time) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetEventProcessedAt(v)
	})
}

// UpdateEventProcessedAt sets the "event_processed_at" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateEventProcessedAt() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateEventProcessedAt()
	})
}

// ClearEventProcessedAt clears the value of the "event_processed_at" field.
func (u *PostUpsertBulk) ClearEventProcessedAt() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearEventProcessedAt()
	})
}

// Exec executes the query.
func (u *PostUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PostCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PostCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PostUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
