// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postactor"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/predicate"
)

// PostUpdate is the builder for updating Post entities.
type PostUpdate struct {
	config
	hooks    []Hook
	mutation *PostMutation
}

// Where appends a list predicates to the PostUpdate builder.
func (_u *PostUpdate) Where(ps ...predicate.Post) *PostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *PostUpdate) SetPlatform(v string) *PostUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *PostUpdate) SetNillablePlatform(v *string) *PostUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetExternalPostID sets the "external_post_id" field.
func (_u *PostUpdate) SetExternalPostID(v string) *PostUpdate {
	_u.mutation.SetExternalPostID(v)
	return _u
}

// SetNillableExternalPostID sets the "external_post_id" field if the given value is not nil.
func (_u *PostUpdate) SetNillableExternalPostID(v *string) *PostUpdate {
	if v != nil {
		_u.SetExternalPostID(*v)
	}
	return _u
}

// SetAuthorHandle sets the "author_handle" field.
func (_u *PostUpdate) SetAuthorHandle(v string) *PostUpdate {
	_u.mutation.SetAuthorHandle(v)
	return _u
}

// SetNillableAuthorHandle sets the "author_handle" field if the given value is not nil.
func (_u *PostUpdate) SetNillableAuthorHandle(v *string) *PostUpdate {
	if v != nil {
		_u.SetAuthorHandle(*v)
	}
	return _u
}

// SetAuthorDisplayName sets the "author_display_name" field.
func (_u *PostUpdate) SetAuthorDisplayName(v string) *PostUpdate {
	_u.mutation.SetAuthorDisplayName(v)
	return _u
}

// SetNillableAuthorDisplayName sets the "author_display_name" field if the given value is not nil.
func (_u *PostUpdate) SetNillableAuthorDisplayName(v *string) *PostUpdate {
	if v != nil {
		_u.SetAuthorDisplayName(*v)
	}
	return _u
}

// ClearAuthorDisplayName clears the value of the "author_display_name" field.
func (_u *PostUpdate) ClearAuthorDisplayName() *PostUpdate {
	_u.mutation.ClearAuthorDisplayName()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *PostUpdate) SetContentText(v string) *PostUpdate {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *PostUpdate) SetNillableContentText(v *string) *PostUpdate {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// ClearContentText clears the value of the "content_text" field.
func (_u *PostUpdate) ClearContentText() *PostUpdate {
	_u.mutation.ClearContentText()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PostUpdate) SetTimestamp(v time.Time) *PostUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PostUpdate) SetNillableTimestamp(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// ClearTimestamp clears the value of the "timestamp" field.
func (_u *PostUpdate) ClearTimestamp() *PostUpdate {
	_u.mutation.ClearTimestamp()
	return _u
}

// SetMediaUrls sets the "media_urls" field.
func (_u *PostUpdate) SetMediaUrls(v []string) *PostUpdate {
	_u.mutation.SetMediaUrls(v)
	return _u
}

// AppendMediaUrls appends value to the "media_urls" field.
func (_u *PostUpdate) AppendMediaUrls(v []string) *PostUpdate {
	_u.mutation.AppendMediaUrls(v)
	return _u
}

// ClearMediaUrls clears the value of the "media_urls" field.
func (_u *PostUpdate) ClearMediaUrls() *PostUpdate {
	_u.mutation.ClearMediaUrls()
	return _u
}

// SetMentionedHandles sets the "mentioned_handles" field.
func (_u *PostUpdate) SetMentionedHandles(v []string) *PostUpdate {
	_u.mutation.SetMentionedHandles(v)
	return _u
}

// AppendMentionedHandles appends value to the "mentioned_handles" field.
func (_u *PostUpdate) AppendMentionedHandles(v []string) *PostUpdate {
	_u.mutation.AppendMentionedHandles(v)
	return _u
}

// ClearMentionedHandles clears the value of the "mentioned_handles" field.
func (_u *PostUpdate) ClearMentionedHandles() *PostUpdate {
	_u.mutation.ClearMentionedHandles()
	return _u
}

// SetHashtags sets the "hashtags" field.
func (_u *PostUpdate) SetHashtags(v []string) *PostUpdate {
	_u.mutation.SetHashtags(v)
	return _u
}

// AppendHashtags appends value to the "hashtags" field.
func (_u *PostUpdate) AppendHashtags(v []string) *PostUpdate {
	_u.mutation.AppendHashtags(v)
	return _u
}

// ClearHashtags clears the value of the "hashtags" field.
func (_u *PostUpdate) ClearHashtags() *PostUpdate {
	_u.mutation.ClearHashtags()
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *PostUpdate) SetLikeCount(v int) *PostUpdate {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *PostUpdate) SetNillableLikeCount(v *int) *PostUpdate {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *PostUpdate) AddLikeCount(v int) *PostUpdate {
	_u.mutation.AddLikeCount(v)
	return _u
}

// SetReplyCount sets the "reply_count" field.
func (_u *PostUpdate) SetReplyCount(v int) *PostUpdate {
	_u.mutation.ResetReplyCount()
	_u.mutation.SetReplyCount(v)
	return _u
}

// SetNillableReplyCount sets the "reply_count" field if the given value is not nil.
func (_u *PostUpdate) SetNillableReplyCount(v *int) *PostUpdate {
	if v != nil {
		_u.SetReplyCount(*v)
	}
	return _u
}

// AddReplyCount adds value to the "reply_count" field.
func (_u *PostUpdate) AddReplyCount(v int) *PostUpdate {
	_u.mutation.AddReplyCount(v)
	return _u
}

// SetRetweetCount sets the "retweet_count" field.
func (_u *PostUpdate) SetRetweetCount(v int) *PostUpdate {
	_u.mutation.ResetRetweetCount()
	_u.mutation.SetRetweetCount(v)
	return _u
}

// SetNillableRetweetCount sets the "retweet_count" field if the given value is not nil.
func (_u *PostUpdate) SetNillableRetweetCount(v *int) *PostUpdate {
	if v != nil {
		_u.SetRetweetCount(*v)
	}
	return _u
}

// AddRetweetCount adds value to the "retweet_count" field.
func (_u *PostUpdate) AddRetweetCount(v int) *PostUpdate {
	_u.mutation.AddRetweetCount(v)
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *PostUpdate) SetCommentCount(v int) *PostUpdate {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *PostUpdate) SetNillableCommentCount(v *int) *PostUpdate {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *PostUpdate) AddCommentCount(v int) *PostUpdate {
	_u.mutation.AddCommentCount(v)
	return _u
}

// SetLocationText sets the "location_text" field.
func (_u *PostUpdate) SetLocationText(v string) *PostUpdate {
	_u.mutation.SetLocationText(v)
	return _u
}

// SetNillableLocationText sets the "location_text" field if the given value is not nil.
func (_u *PostUpdate) SetNillableLocationText(v *string) *PostUpdate {
	if v != nil {
		_u.SetLocationText(*v)
	}
	return _u
}

// ClearLocationText clears the value of the "location_text" field.
func (_u *PostUpdate) ClearLocationText() *PostUpdate {
	_u.mutation.ClearLocationText()
	return _u
}

// SetOfflineMediaURL sets the "offline_media_url" field.
func (_u *PostUpdate) SetOfflineMediaURL(v string) *PostUpdate {
	_u.mutation.SetOfflineMediaURL(v)
	return _u
}

// SetNillableOfflineMediaURL sets the "offline_media_url" field if the given value is not nil.
func (_u *PostUpdate) SetNillableOfflineMediaURL(v *string) *PostUpdate {
	if v != nil {
		_u.SetOfflineMediaURL(*v)
	}
	return _u
}

// ClearOfflineMediaURL clears the value of the "offline_media_url" field.
func (_u *PostUpdate) ClearOfflineMediaURL() *PostUpdate {
	_u.mutation.ClearOfflineMediaURL()
	return _u
}

// SetProcessedForEvents sets the "processed_for_events" field.
func (_u *PostUpdate) SetProcessedForEvents(v bool) *PostUpdate {
	_u.mutation.SetProcessedForEvents(v)
	return _u
}

// SetNillableProcessedForEvents sets the "processed_for_events" field if the given value is not nil.
func (_u *PostUpdate) SetNillableProcessedForEvents(v *bool) *PostUpdate {
	if v != nil {
		_u.SetProcessedForEvents(*v)
	}
	return _u
}

// SetEventProcessedAt sets the "event_processed_at" field.
func (_u *PostUpdate) SetEventProcessedAt(v time.Time) *PostUpdate {
	_u.mutation.SetEventProcessedAt(v)
	return _u
}

// SetNillableEventProcessedAt sets the "event_processed_at" field if the given value is not nil.
func (_u *PostUpdate) SetNillableEventProcessedAt(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetEventProcessedAt(*v)
	}
	return _u
}

// ClearEventProcessedAt clears the value of the "event_processed_at" field.
func (_u *PostUpdate) ClearEventProcessedAt() *PostUpdate {
	_u.mutation.ClearEventProcessedAt()
	return _u
}

// AddActorLinkIDs adds the "actor_links" edge to the PostActor entity by IDs.
func (_u *PostUpdate) AddActorLinkIDs(ids ...string) *PostUpdate {
	_u.mutation.AddActorLinkIDs(ids...)
	return _u
}

// AddActorLinks adds the "actor_links" edges to the PostActor entity.
func (_u *PostUpdate) AddActorLinks(v ...*PostActor) *PostUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActorLinkIDs(ids...)
}

// AddUnknownActorLinkIDs adds the "unknown_actor_links" edge to the PostUnknownActor entity by IDs.
func (_u *PostUpdate) AddUnknownActorLinkIDs(ids ...string) *PostUpdate {
	_u.mutation.AddUnknownActorLinkIDs(ids...)
	return _u
}

// AddUnknownActorLinks adds the "unknown_actor_links" edges to the PostUnknownActor entity.
func (_u *PostUpdate) AddUnknownActorLinks(v ...*PostUnknownActor) *PostUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUnknownActorLinkIDs(ids...)
}

// AddEventLinkIDs adds the "event_links" edge to the EventPostLink entity by IDs.
func (_u *PostUpdate) AddEventLinkIDs(ids ...string) *PostUpdate {
	_u.mutation.AddEventLinkIDs(ids...)
	return _u
}

// AddEventLinks adds the "event_links" edges to the EventPostLink entity.
func (_u *PostUpdate) AddEventLinks(v ...*EventPostLink) *PostUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLinkIDs(ids...)
}

// Mutation returns the PostMutation object of the builder.
func (_u *PostUpdate) Mutation() *PostMutation {
	return _u.mutation
}

// ClearActorLinks clears all "actor_links" edges to the PostActor entity.
func (_u *PostUpdate) ClearActorLinks() *PostUpdate {
	_u.mutation.ClearActorLinks()
	return _u
}

// RemoveActorLinkIDs removes the "actor_links" edge to PostActor entities by IDs.
func (_u *PostUpdate) RemoveActorLinkIDs(ids ...string) *PostUpdate {
	_u.mutation.RemoveActorLinkIDs(ids...)
	return _u
}

// RemoveActorLinks removes "actor_links" edges to PostActor entities.
func (_u *PostUpdate) RemoveActorLinks(v ...*PostActor) *PostUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActorLinkIDs(ids...)
}

// ClearUnknownActorLinks clears all "unknown_actor_links" edges to the PostUnknownActor entity.
func (_u *PostUpdate) ClearUnknownActorLinks() *PostUpdate {
	_u.mutation.ClearUnknownActorLinks()
	return _u
}

// RemoveUnknownActorLinkIDs removes the "unknown_actor_links" edge to PostUnknownActor entities by IDs.
func (_u *PostUpdate) RemoveUnknownActorLinkIDs(ids ...string) *PostUpdate {
	_u.mutation.RemoveUnknownActorLinkIDs(ids...)
	return _u
}

// RemoveUnknownActorLinks removes "unknown_actor_links" edges to PostUnknownActor entities.
func (_u *PostUpdate) RemoveUnknownActorLinks(v ...*PostUnknownActor) *PostUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUnknownActorLinkIDs(ids...)
}

// ClearEventLinks clears all "event_links" edges to the EventPostLink entity.
func (_u *PostUpdate) ClearEventLinks() *PostUpdate {
	_u.mutation.ClearEventLinks()
	return _u
}

// RemoveEventLinkIDs removes the "event_links" edge to EventPostLink entities by IDs.
func (_u *PostUpdate) RemoveEventLinkIDs(ids ...string) *PostUpdate {
	_u.mutation.RemoveEventLinkIDs(ids...)
	return _u
}

// RemoveEventLinks removes "event_links" edges to EventPostLink entities.
func (_u *PostUpdate) RemoveEventLinks(v ...*EventPostLink) *PostUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(post.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalPostID(); ok {
		_spec.SetField(post.FieldExternalPostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorHandle(); ok {
		_spec.SetField(post.FieldAuthorHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorDisplayName(); ok {
		_spec.SetField(post.FieldAuthorDisplayName, field.TypeString, value)
	}
	if _u.mutation.AuthorDisplayNameCleared() {
		_spec.ClearField(post.FieldAuthorDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(post.FieldContentText, field.TypeString, value)
	}
	if _u.mutation.ContentTextCleared() {
		_spec.ClearField(post.FieldContentText, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(post.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.TimestampCleared() {
		_spec.ClearField(post.FieldTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.MediaUrls(); ok {
		_spec.SetField(post.FieldMediaUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMediaUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, post.FieldMediaUrls, value)
		})
	}
	if _u.mutation.MediaUrlsCleared() {
		_spec.ClearField(post.FieldMediaUrls, field.TypeJSON)
	}
	if value, ok := _u.mutation.MentionedHandles(); ok {
		_spec.SetField(post.FieldMentionedHandles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMentionedHandles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, post.FieldMentionedHandles, value)
		})
	}
	if _u.mutation.MentionedHandlesCleared() {
		_spec.ClearField(post.FieldMentionedHandles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hashtags(); ok {
		_spec.SetField(post.FieldHashtags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHashtags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, post.FieldHashtags, value)
		})
	}
	if _u.mutation.HashtagsCleared() {
		_spec.ClearField(post.FieldHashtags, field.TypeJSON)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(post.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(post.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplyCount(); ok {
		_spec.SetField(post.FieldReplyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplyCount(); ok {
		_spec.AddField(post.FieldReplyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetweetCount(); ok {
		_spec.SetField(post.FieldRetweetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetweetCount(); ok {
		_spec.AddField(post.FieldRetweetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(post.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(post.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LocationText(); ok {
		_spec.SetField(post.FieldLocationText, field.TypeString, value)
	}
	if _u.mutation.LocationTextCleared() {
		_spec.ClearField(post.FieldLocationText, field.TypeString)
	}
	if value, ok := _u.mutation.OfflineMediaURL(); ok {
		_spec.SetField(post.FieldOfflineMediaURL, field.TypeString, value)
	}
	if _u.mutation.OfflineMediaURLCleared() {
		_spec.ClearField(post.FieldOfflineMediaURL, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedForEvents(); ok {
		_spec.SetField(post.FieldProcessedForEvents, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventProcessedAt(); ok {
		_spec.SetField(post.FieldEventProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.EventProcessedAtCleared() {
		_spec.ClearField(post.FieldEventProcessedAt, field.TypeTime)
	}
	if _u.mutation.ActorLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActorLinksIDs(); len(nodes) > 0 && !_u.mutation.ActorLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActorLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UnknownActorLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUnknownActorLinksIDs(); len(nodes) > 0 && !_u.mutation.UnknownActorLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnknownActorLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLinksIDs(); len(nodes) > 0 && !_u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostUpdateOne is the builder for updating a single Post entity.
type PostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostMutation
}

// SetPlatform sets the "platform" field.
func (_u *PostUpdateOne) SetPlatform(v string) *PostUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillablePlatform(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetExternalPostID sets the "external_post_id" field.
func (_u *PostUpdateOne) SetExternalPostID(v string) *PostUpdateOne {
	_u.mutation.SetExternalPostID(v)
	return _u
}

// SetNillableExternalPostID sets the "external_post_id" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableExternalPostID(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetExternalPostID(*v)
	}
	return _u
}

// SetAuthorHandle sets the "author_handle" field.
func (_u *PostUpdateOne) SetAuthorHandle(v string) *PostUpdateOne {
	_u.mutation.SetAuthorHandle(v)
	return _u
}

// SetNillableAuthorHandle sets the "author_handle" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableAuthorHandle(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetAuthorHandle(*v)
	}
	return _u
}

// SetAuthorDisplayName sets the "author_display_name" field.
func (_u *PostUpdateOne) SetAuthorDisplayName(v string) *PostUpdateOne {
	_u.mutation.SetAuthorDisplayName(v)
	return _u
}

// SetNillableAuthorDisplayName sets the "author_display_name" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableAuthorDisplayName(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetAuthorDisplayName(*v)
	}
	return _u
}

// ClearAuthorDisplayName clears the value of the "author_display_name" field.
func (_u *PostUpdateOne) ClearAuthorDisplayName() *PostUpdateOne {
	_u.mutation.ClearAuthorDisplayName()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *PostUpdateOne) SetContentText(v string) *PostUpdateOne {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableContentText(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// ClearContentText clears the value of the "content_text" field.
func (_u *PostUpdateOne) ClearContentText() *PostUpdateOne {
	_u.mutation.ClearContentText()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PostUpdateOne) SetTimestamp(v time.Time) *PostUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableTimestamp(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// ClearTimestamp clears the value of the "timestamp" field.
func (_u *PostUpdateOne) ClearTimestamp() *PostUpdateOne {
	_u.mutation.ClearTimestamp()
	return _u
}

// SetMediaUrls sets the "media_urls" field.
func (_u *PostUpdateOne) SetMediaUrls(v []string) *PostUpdateOne {
	_u.mutation.SetMediaUrls(v)
	return _u
}

// AppendMediaUrls appends value to the "media_urls" field.
func (_u *PostUpdateOne) AppendMediaUrls(v []string) *PostUpdateOne {
	_u.mutation.AppendMediaUrls(v)
	return _u
}

// ClearMediaUrls clears the value of the "media_urls" field.
func (_u *PostUpdateOne) ClearMediaUrls() *PostUpdateOne {
	_u.mutation.ClearMediaUrls()
	return _u
}

// SetMentionedHandles sets the "mentioned_handles" field.
func (_u *PostUpdateOne) SetMentionedHandles(v []string) *PostUpdateOne {
	_u.mutation.SetMentionedHandles(v)
	return _u
}

// AppendMentionedHandles appends value to the "mentioned_handles" field.
func (_u *PostUpdateOne) AppendMentionedHandles(v []string) *PostUpdateOne {
	_u.mutation.AppendMentionedHandles(v)
	return _u
}

// ClearMentionedHandles clears the value of the "mentioned_handles" field.
func (_u *PostUpdateOne) ClearMentionedHandles() *PostUpdateOne {
	_u.mutation.ClearMentionedHandles()
	return _u
}

// SetHashtags sets the "hashtags" field.
func (_u *PostUpdateOne) SetHashtags(v []string) *PostUpdateOne {
	_u.mutation.SetHashtags(v)
	return _u
}

// AppendHashtags appends value to the "hashtags" field.
func (_u *PostUpdateOne) AppendHashtags(v []string) *PostUpdateOne {
	_u.mutation.AppendHashtags(v)
	return _u
}

// ClearHashtags clears the value of the "hashtags" field.
func (_u *PostUpdateOne) ClearHashtags() *PostUpdateOne {
	_u.mutation.ClearHashtags()
	return _u
}

// SetLikeCount sets the "like_count" field.
func (_u *PostUpdateOne) SetLikeCount(v int) *PostUpdateOne {
	_u.mutation.ResetLikeCount()
	_u.mutation.SetLikeCount(v)
	return _u
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableLikeCount(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetLikeCount(*v)
	}
	return _u
}

// AddLikeCount adds value to the "like_count" field.
func (_u *PostUpdateOne) AddLikeCount(v int) *PostUpdateOne {
	_u.mutation.AddLikeCount(v)
	return _u
}

// SetReplyCount sets the "reply_count" field.
func (_u *PostUpdateOne) SetReplyCount(v int) *PostUpdateOne {
	_u.mutation.ResetReplyCount()
	_u.mutation.SetReplyCount(v)
	return _u
}

// SetNillableReplyCount sets the "reply_count" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableReplyCount(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetReplyCount(*v)
	}
	return _u
}

// AddReplyCount adds value to the "reply_count" field.
func (_u *PostUpdateOne) AddReplyCount(v int) *PostUpdateOne {
	_u.mutation.AddReplyCount(v)
	return _u
}

// SetRetweetCount sets the "retweet_count" field.
func (_u *PostUpdateOne) SetRetweetCount(v int) *PostUpdateOne {
	_u.mutation.ResetRetweetCount()
	_u.mutation.SetRetweetCount(v)
	return _u
}

// SetNillableRetweetCount sets the "retweet_count" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableRetweetCount(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetRetweetCount(*v)
	}
	return _u
}

// AddRetweetCount adds value to the "retweet_count" field.
func (_u *PostUpdateOne) AddRetweetCount(v int) *PostUpdateOne {
	_u.mutation.AddRetweetCount(v)
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *PostUpdateOne) SetCommentCount(v int) *PostUpdateOne {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableCommentCount(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *PostUpdateOne) AddCommentCount(v int) *PostUpdateOne {
	_u.mutation.AddCommentCount(v)
	return _u
}

// SetLocationText sets the "location_text" field.
func (_u *PostUpdateOne) SetLocationText(v string) *PostUpdateOne {
	_u.mutation.SetLocationText(v)
	return _u
}

// SetNillableLocationText sets the "location_text" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableLocationText(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetLocationText(*v)
	}
	return _u
}

// ClearLocationText clears the value of the "location_text" field.
func (_u *PostUpdateOne) ClearLocationText() *PostUpdateOne {
	_u.mutation.ClearLocationText()
	return _u
}

// SetOfflineMediaURL sets the "offline_media_url" field.
func (_u *PostUpdateOne) SetOfflineMediaURL(v string) *PostUpdateOne {
	_u.mutation.SetOfflineMediaURL(v)
	return _u
}

// SetNillableOfflineMediaURL sets the "offline_media_url" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableOfflineMediaURL(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetOfflineMediaURL(*v)
	}
	return _u
}

// ClearOfflineMediaURL clears the value of the "offline_media_url" field.
func (_u *PostUpdateOne) ClearOfflineMediaURL() *PostUpdateOne {
	_u.mutation.ClearOfflineMediaURL()
	return _u
}

// SetProcessedForEvents sets the "processed_for_events" field.
func (_u *PostUpdateOne) SetProcessedForEvents(v bool) *PostUpdateOne {
	_u.mutation.SetProcessedForEvents(v)
	return _u
}

// SetNillableProcessedForEvents sets the "processed_for_events" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableProcessedForEvents(v *bool) *PostUpdateOne {
	if v != nil {
		_u.SetProcessedForEvents(*v)
	}
	return _u
}

// SetEventProcessedAt sets the "event_processed_at" field.
func (_u *PostUpdateOne) SetEventProcessedAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetEventProcessedAt(v)
	return _u
}

// SetNillableEventProcessedAt sets the "event_processed_at" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableEventProcessedAt(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetEventProcessedAt(*v)
	}
	return _u
}

// ClearEventProcessedAt clears the value of the "event_processed_at" field.
func (_u *PostUpdateOne) ClearEventProcessedAt() *PostUpdateOne {
	_u.mutation.ClearEventProcessedAt()
	return _u
}

// AddActorLinkIDs adds the "actor_links" edge to the PostActor entity by IDs.
func (_u *PostUpdateOne) AddActorLinkIDs(ids ...string) *PostUpdateOne {
	_u.mutation.AddActorLinkIDs(ids...)
	return _u
}

// AddActorLinks adds the "actor_links" edges to the PostActor entity.
func (_u *PostUpdateOne) AddActorLinks(v ...*PostActor) *PostUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActorLinkIDs(ids...)
}

// AddUnknownActorLinkIDs adds the "unknown_actor_links" edge to the PostUnknownActor entity by IDs.
func (_u *PostUpdateOne) AddUnknownActorLinkIDs(ids ...string) *PostUpdateOne {
	_u.mutation.AddUnknownActorLinkIDs(ids...)
	return _u
}

// AddUnknownActorLinks adds the "unknown_actor_links" edges to the PostUnknownActor entity.
func (_u *PostUpdateOne) AddUnknownActorLinks(v ...*PostUnknownActor) *PostUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUnknownActorLinkIDs(ids...)
}

// AddEventLinkIDs adds the "event_links" edge to the EventPostLink entity by IDs.
func (_u *PostUpdateOne) AddEventLinkIDs(ids ...string) *PostUpdateOne {
	_u.mutation.AddEventLinkIDs(ids...)
	return _u
}

// AddEventLinks adds the "event_links" edges to the EventPostLink entity.
func (_u *PostUpdateOne) AddEventLinks(v ...*EventPostLink) *PostUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLinkIDs(ids...)
}

// Mutation returns the PostMutation object of the builder.
func (_u *PostUpdateOne) Mutation() *PostMutation {
	return _u.mutation
}

// ClearActorLinks clears all "actor_links" edges to the PostActor entity.
func (_u *PostUpdateOne) ClearActorLinks() *PostUpdateOne {
	_u.mutation.ClearActorLinks()
	return _u
}

// RemoveActorLinkIDs removes the "actor_links" edge to PostActor entities by IDs.
func (_u *PostUpdateOne) RemoveActorLinkIDs(ids ...string) *PostUpdateOne {
	_u.mutation.RemoveActorLinkIDs(ids...)
	return _u
}

// RemoveActorLinks removes "actor_links" edges to PostActor entities.
func (_u *PostUpdateOne) RemoveActorLinks(v ...*PostActor) *PostUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActorLinkIDs(ids...)
}

// ClearUnknownActorLinks clears all "unknown_actor_links" edges to the PostUnknownActor entity.
func (_u *PostUpdateOne) ClearUnknownActorLinks() *PostUpdateOne {
	_u.mutation.ClearUnknownActorLinks()
	return _u
}

// RemoveUnknownActorLinkIDs removes the "unknown_actor_links" edge to PostUnknownActor entities by IDs.
func (_u *PostUpdateOne) RemoveUnknownActorLinkIDs(ids ...string) *PostUpdateOne {
	_u.mutation.RemoveUnknownActorLinkIDs(ids...)
	return _u
}

// RemoveUnknownActorLinks removes "unknown_actor_links" edges to PostUnknownActor entities.
func (_u *PostUpdateOne) RemoveUnknownActorLinks(v ...*PostUnknownActor) *PostUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUnknownActorLinkIDs(ids...)
}

// ClearEventLinks clears all "event_links" edges to the EventPostLink entity.
func (_u *PostUpdateOne) ClearEventLinks() *PostUpdateOne {
	_u.mutation.ClearEventLinks()
	return _u
}

// RemoveEventLinkIDs removes the "event_links" edge to EventPostLink entities by IDs.
func (_u *PostUpdateOne) RemoveEventLinkIDs(ids ...string) *PostUpdateOne {
	_u.mutation.RemoveEventLinkIDs(ids...)
	return _u
}

// RemoveEventLinks removes "event_links" edges to EventPostLink entities.
func (_u *PostUpdateOne) RemoveEventLinks(v ...*EventPostLink) *PostUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLinkIDs(ids...)
}

// Where appends a list predicates to the PostUpdate builder.
func (_u *PostUpdateOne) Where(ps ...predicate.Post) *PostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostUpdateOne) Select(field string, fields ...string) *PostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Post entity.
func (_u *PostUpdateOne) Save(ctx context.Context) (*Post, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUpdateOne) SaveX(ctx context.Context) *Post {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PostUpdateOne) sqlSave(ctx context.Context) (_node *Post, err error) {
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Post.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, post.FieldID)
		for _, f := range fields {
			if !post.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != post.FieldID {
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
		_spec.SetField(post.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalPostID(); ok {
		_spec.SetField(post.FieldExternalPostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorHandle(); ok {
		_spec.SetField(post.FieldAuthorHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorDisplayName(); ok {
		_spec.SetField(post.FieldAuthorDisplayName, field.TypeString, value)
	}
	if _u.mutation.AuthorDisplayNameCleared() {
		_spec.ClearField(post.FieldAuthorDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(post.FieldContentText, field.TypeString, value)
	}
	if _u.mutation.ContentTextCleared() {
		_spec.ClearField(post.FieldContentText, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(post.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.TimestampCleared() {
		_spec.ClearField(post.FieldTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.MediaUrls(); ok {
		_spec.SetField(post.FieldMediaUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMediaUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, post.FieldMediaUrls, value)
		})
	}
	if _u.mutation.MediaUrlsCleared() {
		_spec.ClearField(post.FieldMediaUrls, field.TypeJSON)
	}
	if value, ok := _u.mutation.MentionedHandles(); ok {
		_spec.SetField(post.FieldMentionedHandles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMentionedHandles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, post.FieldMentionedHandles, value)
		})
	}
	if _u.mutation.MentionedHandlesCleared() {
		_spec.ClearField(post.FieldMentionedHandles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hashtags(); ok {
		_spec.SetField(post.FieldHashtags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHashtags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, post.FieldHashtags, value)
		})
	}
	if _u.mutation.HashtagsCleared() {
		_spec.ClearField(post.FieldHashtags, field.TypeJSON)
	}
	if value, ok := _u.mutation.LikeCount(); ok {
		_spec.SetField(post.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLikeCount(); ok {
		_spec.AddField(post.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplyCount(); ok {
		_spec.SetField(post.FieldReplyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplyCount(); ok {
		_spec.AddField(post.FieldReplyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetweetCount(); ok {
		_spec.SetField(post.FieldRetweetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetweetCount(); ok {
		_spec.AddField(post.FieldRetweetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(post.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(post.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LocationText(); ok {
		_spec.SetField(post.FieldLocationText, field.TypeString, value)
	}
	if _u.mutation.LocationTextCleared() {
		_spec.ClearField(post.FieldLocationText, field.TypeString)
	}
	if value, ok := _u.mutation.OfflineMediaURL(); ok {
		_spec.SetField(post.FieldOfflineMediaURL, field.TypeString, value)
	}
	if _u.mutation.OfflineMediaURLCleared() {
		_spec.ClearField(post.FieldOfflineMediaURL, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedForEvents(); ok {
		_spec.SetField(post.FieldProcessedForEvents, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventProcessedAt(); ok {
		_spec.SetField(post.FieldEventProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.EventProcessedAtCleared() {
		_spec.ClearField(post.FieldEventProcessedAt, field.TypeTime)
	}
	if _u.mutation.ActorLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActorLinksIDs(); len(nodes) > 0 && !_u.mutation.ActorLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActorLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UnknownActorLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUnknownActorLinksIDs(); len(nodes) > 0 && !_u.mutation.UnknownActorLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnknownActorLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLinksIDs(); len(nodes) > 0 && !_u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Post{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
