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
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventactorlink"
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventName sets the "event_name" field.
func (_u *EventUpdate) SetEventName(v string) *EventUpdate {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventName(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *EventUpdate) SetEventDate(v string) *EventUpdate {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventDate(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// ClearEventDate clears the value of the "event_date" field.
func (_u *EventUpdate) ClearEventDate() *EventUpdate {
	_u.mutation.ClearEventDate()
	return _u
}

// SetEventDescription sets the "event_description" field.
func (_u *EventUpdate) SetEventDescription(v string) *EventUpdate {
	_u.mutation.SetEventDescription(v)
	return _u
}

// SetNillableEventDescription sets the "event_description" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventDescription(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventDescription(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *EventUpdate) SetLocation(v string) *EventUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLocation(v *string) *EventUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *EventUpdate) ClearLocation() *EventUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetCity sets the "city" field.
func (_u *EventUpdate) SetCity(v string) *EventUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCity(v *string) *EventUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *EventUpdate) ClearCity() *EventUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *EventUpdate) SetState(v string) *EventUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *EventUpdate) SetNillableState(v *string) *EventUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *EventUpdate) ClearState() *EventUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *EventUpdate) SetParticipants(v string) *EventUpdate {
	_u.mutation.SetParticipants(v)
	return _u
}

// SetNillableParticipants sets the "participants" field if the given value is not nil.
func (_u *EventUpdate) SetNillableParticipants(v *string) *EventUpdate {
	if v != nil {
		_u.SetParticipants(*v)
	}
	return _u
}

// ClearParticipants clears the value of the "participants" field.
func (_u *EventUpdate) ClearParticipants() *EventUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// SetCategoryTags sets the "category_tags" field.
func (_u *EventUpdate) SetCategoryTags(v []string) *EventUpdate {
	_u.mutation.SetCategoryTags(v)
	return _u
}

// AppendCategoryTags appends value to the "category_tags" field.
func (_u *EventUpdate) AppendCategoryTags(v []string) *EventUpdate {
	_u.mutation.AppendCategoryTags(v)
	return _u
}

// SetSourcePostIds sets the "source_post_ids" field.
func (_u *EventUpdate) SetSourcePostIds(v []string) *EventUpdate {
	_u.mutation.SetSourcePostIds(v)
	return _u
}

// AppendSourcePostIds appends value to the "source_post_ids" field.
func (_u *EventUpdate) AppendSourcePostIds(v []string) *EventUpdate {
	_u.mutation.AppendSourcePostIds(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EventUpdate) SetConfidenceScore(v float64) *EventUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EventUpdate) SetNillableConfidenceScore(v *float64) *EventUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EventUpdate) AddConfidenceScore(v float64) *EventUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetExtractedBy sets the "extracted_by" field.
func (_u *EventUpdate) SetExtractedBy(v string) *EventUpdate {
	_u.mutation.SetExtractedBy(v)
	return _u
}

// SetNillableExtractedBy sets the "extracted_by" field if the given value is not nil.
func (_u *EventUpdate) SetNillableExtractedBy(v *string) *EventUpdate {
	if v != nil {
		_u.SetExtractedBy(*v)
	}
	return _u
}

// ClearExtractedBy clears the value of the "extracted_by" field.
func (_u *EventUpdate) ClearExtractedBy() *EventUpdate {
	_u.mutation.ClearExtractedBy()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *EventUpdate) SetExtractedAt(v time.Time) *EventUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableExtractedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *EventUpdate) SetVerified(v bool) *EventUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *EventUpdate) SetNillableVerified(v *bool) *EventUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *EventUpdate) SetContentHash(v string) *EventUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *EventUpdate) SetNillableContentHash(v *string) *EventUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *EventUpdate) SetProjectID(v string) *EventUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableProjectID(v *string) *EventUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *EventUpdate) ClearProjectID() *EventUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *EventUpdate) SetEmbedding(v []float64) *EventUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *EventUpdate) AppendEmbedding(v []float64) *EventUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *EventUpdate) ClearEmbedding() *EventUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *EventUpdate) SetLatitude(v float64) *EventUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLatitude(v *float64) *EventUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *EventUpdate) AddLatitude(v float64) *EventUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *EventUpdate) ClearLatitude() *EventUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *EventUpdate) SetLongitude(v float64) *EventUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLongitude(v *float64) *EventUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *EventUpdate) AddLongitude(v float64) *EventUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *EventUpdate) ClearLongitude() *EventUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableUpdatedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddPostLinkIDs adds the "post_links" edge to the EventPostLink entity by IDs.
func (_u *EventUpdate) AddPostLinkIDs(ids ...string) *EventUpdate {
	_u.mutation.AddPostLinkIDs(ids...)
	return _u
}

// AddPostLinks adds the "post_links" edges to the EventPostLink entity.
func (_u *EventUpdate) AddPostLinks(v ...*EventPostLink) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostLinkIDs(ids...)
}

// AddActorLinkIDs adds the "actor_links" edge to the EventActorLink entity by IDs.
func (_u *EventUpdate) AddActorLinkIDs(ids ...string) *EventUpdate {
	_u.mutation.AddActorLinkIDs(ids...)
	return _u
}

// AddActorLinks adds the "actor_links" edges to the EventActorLink entity.
func (_u *EventUpdate) AddActorLinks(v ...*EventActorLink) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActorLinkIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearPostLinks clears all "post_links" edges to the EventPostLink entity.
func (_u *EventUpdate) ClearPostLinks() *EventUpdate {
	_u.mutation.ClearPostLinks()
	return _u
}

// RemovePostLinkIDs removes the "post_links" edge to EventPostLink entities by IDs.
func (_u *EventUpdate) RemovePostLinkIDs(ids ...string) *EventUpdate {
	_u.mutation.RemovePostLinkIDs(ids...)
	return _u
}

// RemovePostLinks removes "post_links" edges to EventPostLink entities.
func (_u *EventUpdate) RemovePostLinks(v ...*EventPostLink) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostLinkIDs(ids...)
}

// ClearActorLinks clears all "actor_links" edges to the EventActorLink entity.
func (_u *EventUpdate) ClearActorLinks() *EventUpdate {
	_u.mutation.ClearActorLinks()
	return _u
}

// RemoveActorLinkIDs removes the "actor_links" edge to EventActorLink entities by IDs.
func (_u *EventUpdate) RemoveActorLinkIDs(ids ...string) *EventUpdate {
	_u.mutation.RemoveActorLinkIDs(ids...)
	return _u
}

// RemoveActorLinks removes "actor_links" edges to EventActorLink entities.
func (_u *EventUpdate) RemoveActorLinks(v ...*EventActorLink) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActorLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(event.FieldEventName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeString, value)
	}
	if _u.mutation.EventDateCleared() {
		_spec.ClearField(event.FieldEventDate, field.TypeString)
	}
	if value, ok := _u.mutation.EventDescription(); ok {
		_spec.SetField(event.FieldEventDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(event.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(event.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(event.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(event.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(event.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(event.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(event.FieldParticipants, field.TypeString, value)
	}
	if _u.mutation.ParticipantsCleared() {
		_spec.ClearField(event.FieldParticipants, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryTags(); ok {
		_spec.SetField(event.FieldCategoryTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoryTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldCategoryTags, value)
		})
	}
	if value, ok := _u.mutation.SourcePostIds(); ok {
		_spec.SetField(event.FieldSourcePostIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourcePostIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldSourcePostIds, value)
		})
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(event.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(event.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExtractedBy(); ok {
		_spec.SetField(event.FieldExtractedBy, field.TypeString, value)
	}
	if _u.mutation.ExtractedByCleared() {
		_spec.ClearField(event.FieldExtractedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(event.FieldExtractedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(event.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(event.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(event.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(event.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(event.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(event.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(event.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(event.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(event.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(event.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(event.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(event.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.PostLinksTable,
			Columns: []string{event.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventpostlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostLinksIDs(); len(nodes) > 0 && !_u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.PostLinksTable,
			Columns: []string{event.PostLinksColumn},
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
	if nodes := _u.mutation.PostLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.PostLinksTable,
			Columns: []string{event.PostLinksColumn},
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
	if _u.mutation.ActorLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ActorLinksTable,
			Columns: []string{event.ActorLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActorLinksIDs(); len(nodes) > 0 && !_u.mutation.ActorLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ActorLinksTable,
			Columns: []string{event.ActorLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString),
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
			Table:   event.ActorLinksTable,
			Columns: []string{event.ActorLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetEventName sets the "event_name" field.
func (_u *EventUpdateOne) SetEventName(v string) *EventUpdateOne {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventName(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *EventUpdateOne) SetEventDate(v string) *EventUpdateOne {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventDate(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// ClearEventDate clears the value of the "event_date" field.
func (_u *EventUpdateOne) ClearEventDate() *EventUpdateOne {
	_u.mutation.ClearEventDate()
	return _u
}

// SetEventDescription sets the "event_description" field.
func (_u *EventUpdateOne) SetEventDescription(v string) *EventUpdateOne {
	_u.mutation.SetEventDescription(v)
	return _u
}

// SetNillableEventDescription sets the "event_description" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventDescription(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventDescription(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *EventUpdateOne) SetLocation(v string) *EventUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLocation(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *EventUpdateOne) ClearLocation() *EventUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetCity sets the "city" field.
func (_u *EventUpdateOne) SetCity(v string) *EventUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCity(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *EventUpdateOne) ClearCity() *EventUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *EventUpdateOne) SetState(v string) *EventUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableState(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *EventUpdateOne) ClearState() *EventUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *EventUpdateOne) SetParticipants(v string) *EventUpdateOne {
	_u.mutation.SetParticipants(v)
	return _u
}

// SetNillableParticipants sets the "participants" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableParticipants(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetParticipants(*v)
	}
	return _u
}

// ClearParticipants clears the value of the "participants" field.
func (_u *EventUpdateOne) ClearParticipants() *EventUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// SetCategoryTags sets the "category_tags" field.
func (_u *EventUpdateOne) SetCategoryTags(v []string) *EventUpdateOne {
	_u.mutation.SetCategoryTags(v)
	return _u
}

// AppendCategoryTags appends value to the "category_tags" field.
func (_u *EventUpdateOne) AppendCategoryTags(v []string) *EventUpdateOne {
	_u.mutation.AppendCategoryTags(v)
	return _u
}

// SetSourcePostIds sets the "source_post_ids" field.
func (_u *EventUpdateOne) SetSourcePostIds(v []string) *EventUpdateOne {
	_u.mutation.SetSourcePostIds(v)
	return _u
}

// AppendSourcePostIds appends value to the "source_post_ids" field.
func (_u *EventUpdateOne) AppendSourcePostIds(v []string) *EventUpdateOne {
	_u.mutation.AppendSourcePostIds(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EventUpdateOne) SetConfidenceScore(v float64) *EventUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableConfidenceScore(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EventUpdateOne) AddConfidenceScore(v float64) *EventUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetExtractedBy sets the "extracted_by" field.
func (_u *EventUpdateOne) SetExtractedBy(v string) *EventUpdateOne {
	_u.mutation.SetExtractedBy(v)
	return _u
}

// SetNillableExtractedBy sets the "extracted_by" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableExtractedBy(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetExtractedBy(*v)
	}
	return _u
}

// ClearExtractedBy clears the value of the "extracted_by" field.
func (_u *EventUpdateOne) ClearExtractedBy() *EventUpdateOne {
	_u.mutation.ClearExtractedBy()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *EventUpdateOne) SetExtractedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableExtractedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *EventUpdateOne) SetVerified(v bool) *EventUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableVerified(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *EventUpdateOne) SetContentHash(v string) *EventUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableContentHash(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *EventUpdateOne) SetProjectID(v string) *EventUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableProjectID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *EventUpdateOne) ClearProjectID() *EventUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *EventUpdateOne) SetEmbedding(v []float64) *EventUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *EventUpdateOne) AppendEmbedding(v []float64) *EventUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *EventUpdateOne) ClearEmbedding() *EventUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *EventUpdateOne) SetLatitude(v float64) *EventUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLatitude(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *EventUpdateOne) AddLatitude(v float64) *EventUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *EventUpdateOne) ClearLatitude() *EventUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *EventUpdateOne) SetLongitude(v float64) *EventUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLongitude(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *EventUpdateOne) AddLongitude(v float64) *EventUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *EventUpdateOne) ClearLongitude() *EventUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableUpdatedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddPostLinkIDs adds the "post_links" edge to the EventPostLink entity by IDs.
func (_u *EventUpdateOne) AddPostLinkIDs(ids ...string) *EventUpdateOne {
	_u.mutation.AddPostLinkIDs(ids...)
	return _u
}

// AddPostLinks adds the "post_links" edges to the EventPostLink entity.
func (_u *EventUpdateOne) AddPostLinks(v ...*EventPostLink) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostLinkIDs(ids...)
}

// AddActorLinkIDs adds the "actor_links" edge to the EventActorLink entity by IDs.
func (_u *EventUpdateOne) AddActorLinkIDs(ids ...string) *EventUpdateOne {
	_u.mutation.AddActorLinkIDs(ids...)
	return _u
}

// AddActorLinks adds the "actor_links" edges to the EventActorLink entity.
func (_u *EventUpdateOne) AddActorLinks(v ...*EventActorLink) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActorLinkIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearPostLinks clears all "post_links" edges to the EventPostLink entity.
func (_u *EventUpdateOne) ClearPostLinks() *EventUpdateOne {
	_u.mutation.ClearPostLinks()
	return _u
}

// RemovePostLinkIDs removes the "post_links" edge to EventPostLink entities by IDs.
func (_u *EventUpdateOne) RemovePostLinkIDs(ids ...string) *EventUpdateOne {
	_u.mutation.RemovePostLinkIDs(ids...)
	return _u
}

// RemovePostLinks removes "post_links" edges to EventPostLink entities.
func (_u *EventUpdateOne) RemovePostLinks(v ...*EventPostLink) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostLinkIDs(ids...)
}

// ClearActorLinks clears all "actor_links" edges to the EventActorLink entity.
func (_u *EventUpdateOne) ClearActorLinks() *EventUpdateOne {
	_u.mutation.ClearActorLinks()
	return _u
}

// RemoveActorLinkIDs removes the "actor_links" edge to EventActorLink entities by IDs.
func (_u *EventUpdateOne) RemoveActorLinkIDs(ids ...string) *EventUpdateOne {
	_u.mutation.RemoveActorLinkIDs(ids...)
	return _u
}

// RemoveActorLinks removes "actor_links" edges to EventActorLink entities.
func (_u *EventUpdateOne) RemoveActorLinks(v ...*EventActorLink) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActorLinkIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(event.FieldEventName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeString, value)
	}
	if _u.mutation.EventDateCleared() {
		_spec.ClearField(event.FieldEventDate, field.TypeString)
	}
	if value, ok := _u.mutation.EventDescription(); ok {
		_spec.SetField(event.FieldEventDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(event.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(event.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(event.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(event.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(event.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(event.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(event.FieldParticipants, field.TypeString, value)
	}
	if _u.mutation.ParticipantsCleared() {
		_spec.ClearField(event.FieldParticipants, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryTags(); ok {
		_spec.SetField(event.FieldCategoryTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoryTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldCategoryTags, value)
		})
	}
	if value, ok := _u.mutation.SourcePostIds(); ok {
		_spec.SetField(event.FieldSourcePostIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourcePostIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldSourcePostIds, value)
		})
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(event.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(event.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExtractedBy(); ok {
		_spec.SetField(event.FieldExtractedBy, field.TypeString, value)
	}
	if _u.mutation.ExtractedByCleared() {
		_spec.ClearField(event.FieldExtractedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(event.FieldExtractedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(event.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(event.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(event.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(event.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(event.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(event.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(event.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(event.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(event.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(event.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(event.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(event.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.PostLinksTable,
			Columns: []string{event.PostLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventpostlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostLinksIDs(); len(nodes) > 0 && !_u.mutation.PostLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.PostLinksTable,
			Columns: []string{event.PostLinksColumn},
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
	if nodes := _u.mutation.PostLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.PostLinksTable,
			Columns: []string{event.PostLinksColumn},
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
	if _u.mutation.ActorLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ActorLinksTable,
			Columns: []string{event.ActorLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActorLinksIDs(); len(nodes) > 0 && !_u.mutation.ActorLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ActorLinksTable,
			Columns: []string{event.ActorLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString),
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
			Table:   event.ActorLinksTable,
			Columns: []string{event.ActorLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventactorlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
