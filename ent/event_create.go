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
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventactorlink"
	"github.com/civiclens/civiclens/ent/eventpostlink"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventName sets the "event_name" field.
func (_c *EventCreate) SetEventName(v string) *EventCreate {
	_c.mutation.SetEventName(v)
	return _c
}

// SetEventDate sets the "event_date" field.
func (_c *EventCreate) SetEventDate(v string) *EventCreate {
	_c.mutation.SetEventDate(v)
	return _c
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_c *EventCreate) SetNillableEventDate(v *string) *EventCreate {
	if v != nil {
		_c.SetEventDate(*v)
	}
	return _c
}

// SetEventDescription sets the "event_description" field.
func (_c *EventCreate) SetEventDescription(v string) *EventCreate {
	_c.mutation.SetEventDescription(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *EventCreate) SetLocation(v string) *EventCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *EventCreate) SetNillableLocation(v *string) *EventCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *EventCreate) SetCity(v string) *EventCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *EventCreate) SetNillableCity(v *string) *EventCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *EventCreate) SetState(v string) *EventCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *EventCreate) SetNillableState(v *string) *EventCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetParticipants sets the "participants" field.
func (_c *EventCreate) SetParticipants(v string) *EventCreate {
	_c.mutation.SetParticipants(v)
	return _c
}

// SetNillableParticipants sets the "participants" field if the given value is not nil.
func (_c *EventCreate) SetNillableParticipants(v *string) *EventCreate {
	if v != nil {
		_c.SetParticipants(*v)
	}
	return _c
}

// SetCategoryTags sets the "category_tags" field.
func (_c *EventCreate) SetCategoryTags(v []string) *EventCreate {
	_c.mutation.SetCategoryTags(v)
	return _c
}

// SetSourcePostIds sets the "source_post_ids" field.
func (_c *EventCreate) SetSourcePostIds(v []string) *EventCreate {
	_c.mutation.SetSourcePostIds(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *EventCreate) SetConfidenceScore(v float64) *EventCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetExtractedBy sets the "extracted_by" field.
func (_c *EventCreate) SetExtractedBy(v string) *EventCreate {
	_c.mutation.SetExtractedBy(v)
	return _c
}

// SetNillableExtractedBy sets the "extracted_by" field if the given value is not nil.
func (_c *EventCreate) SetNillableExtractedBy(v *string) *EventCreate {
	if v != nil {
		_c.SetExtractedBy(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *EventCreate) SetExtractedAt(v time.Time) *EventCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableExtractedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *EventCreate) SetVerified(v bool) *EventCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *EventCreate) SetNillableVerified(v *bool) *EventCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *EventCreate) SetContentHash(v string) *EventCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *EventCreate) SetProjectID(v string) *EventCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableProjectID(v *string) *EventCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *EventCreate) SetEmbedding(v []float64) *EventCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *EventCreate) SetLatitude(v float64) *EventCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *EventCreate) SetNillableLatitude(v *float64) *EventCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *EventCreate) SetLongitude(v float64) *EventCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *EventCreate) SetNillableLongitude(v *float64) *EventCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v string) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EventCreate) SetNillableID(v *string) *EventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPostLinkIDs adds the "post_links" edge to the EventPostLink entity by IDs.
func (_c *EventCreate) AddPostLinkIDs(ids ...string) *EventCreate {
	_c.mutation.AddPostLinkIDs(ids...)
	return _c
}

// AddPostLinks adds the "post_links" edges to the EventPostLink entity.
func (_c *EventCreate) AddPostLinks(v ...*EventPostLink) *EventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPostLinkIDs(ids...)
}

// AddActorLinkIDs adds the "actor_links" edge to the EventActorLink entity by IDs.
func (_c *EventCreate) AddActorLinkIDs(ids ...string) *EventCreate {
	_c.mutation.AddActorLinkIDs(ids...)
	return _c
}

// AddActorLinks adds the "actor_links" edges to the EventActorLink entity.
func (_c *EventCreate) AddActorLinks(v ...*EventActorLink) *EventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActorLinkIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := event.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := event.DefaultVerified
		_c.mutation.SetVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := event.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.EventName(); !ok {
		return &ValidationError{Name: "event_name", err: errors.New(`ent: missing required field "Event.event_name"`)}
	}
	if _, ok := _c.mutation.EventDescription(); !ok {
		return &ValidationError{Name: "event_description", err: errors.New(`ent: missing required field "Event.event_description"`)}
	}
	if _, ok := _c.mutation.CategoryTags(); !ok {
		return &ValidationError{Name: "category_tags", err: errors.New(`ent: missing required field "Event.category_tags"`)}
	}
	if _, ok := _c.mutation.SourcePostIds(); !ok {
		return &ValidationError{Name: "source_post_ids", err: errors.New(`ent: missing required field "Event.source_post_ids"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "Event.confidence_score"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "Event.extracted_at"`)}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "Event.verified"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Event.content_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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
			return nil, fmt.Errorf("unexpected Event.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventName(); ok {
		_spec.SetField(event.FieldEventName, field.TypeString, value)
		_node.EventName = value
	}
	if value, ok := _c.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeString, value)
		_node.EventDate = value
	}
	if value, ok := _c.mutation.EventDescription(); ok {
		_spec.SetField(event.FieldEventDescription, field.TypeString, value)
		_node.EventDescription = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(event.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(event.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(event.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Participants(); ok {
		_spec.SetField(event.FieldParticipants, field.TypeString, value)
		_node.Participants = value
	}
	if value, ok := _c.mutation.CategoryTags(); ok {
		_spec.SetField(event.FieldCategoryTags, field.TypeJSON, value)
		_node.CategoryTags = value
	}
	if value, ok := _c.mutation.SourcePostIds(); ok {
		_spec.SetField(event.FieldSourcePostIds, field.TypeJSON, value)
		_node.SourcePostIds = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(event.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.ExtractedBy(); ok {
		_spec.SetField(event.FieldExtractedBy, field.TypeString, value)
		_node.ExtractedBy = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(event.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(event.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(event.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(event.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(event.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(event.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = &value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(event.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PostLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActorLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetEventName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetEventName(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventName sets the "event_name" field.
func (u *EventUpsert) SetEventName(v string) *EventUpsert {
	u.Set(event.FieldEventName, v)
	return u
}

// UpdateEventName sets the "event_name" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventName() *EventUpsert {
	u.SetExcluded(event.FieldEventName)
	return u
}

// SetEventDate sets the "event_date" field.
func (u *EventUpsert) SetEventDate(v string) *EventUpsert {
	u.Set(event.FieldEventDate, v)
	return u
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventDate() *EventUpsert {
	u.SetExcluded(event.FieldEventDate)
	return u
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventUpsert) ClearEventDate() *EventUpsert {
	u.SetNull(event.FieldEventDate)
	return u
}

// SetEventDescription sets the "event_description" field.
func (u *EventUpsert) SetEventDescription(v string) *EventUpsert {
	u.Set(event.FieldEventDescription, v)
	return u
}

// UpdateEventDescription sets the "event_description" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventDescription() *EventUpsert {
	u.SetExcluded(event.FieldEventDescription)
	return u
}

// SetLocation sets the "location" field.
func (u *EventUpsert) SetLocation(v string) *EventUpsert {
	u.Set(event.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EventUpsert) UpdateLocation() *EventUpsert {
	u.SetExcluded(event.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *EventUpsert) ClearLocation() *EventUpsert {
	u.SetNull(event.FieldLocation)
	return u
}

// SetCity sets the "city" field.
func (u *EventUpsert) SetCity(v string) *EventUpsert {
	u.Set(event.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *EventUpsert) UpdateCity() *EventUpsert {
	u.SetExcluded(event.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *EventUpsert) ClearCity() *EventUpsert {
	u.SetNull(event.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *EventUpsert) SetState(v string) *EventUpsert {
	u.Set(event.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *EventUpsert) UpdateState() *EventUpsert {
	u.SetExcluded(event.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *EventUpsert) ClearState() *EventUpsert {
	u.SetNull(event.FieldState)
	return u
}

// SetParticipants sets the "participants" field.
func (u *EventUpsert) SetParticipants(v string) *EventUpsert {
	u.Set(event.FieldParticipants, v)
	return u
}

// UpdateParticipants sets the "participants" field to the value that was provided on create.
func (u *EventUpsert) UpdateParticipants() *EventUpsert {
	u.SetExcluded(event.FieldParticipants)
	return u
}

// ClearParticipants clears the value of the "participants" field.
func (u *EventUpsert) ClearParticipants() *EventUpsert {
	u.SetNull(event.FieldParticipants)
	return u
}

// SetCategoryTags sets the "category_tags" field.
func (u *EventUpsert) SetCategoryTags(v []string) *EventUpsert {
	u.Set(event.FieldCategoryTags, v)
	return u
}

// UpdateCategoryTags sets the "category_tags" field to the value that was provided on create.
func (u *EventUpsert) UpdateCategoryTags() *EventUpsert {
	u.SetExcluded(event.FieldCategoryTags)
	return u
}

// SetSourcePostIds sets the "source_post_ids" field.
func (u *EventUpsert) SetSourcePostIds(v []string) *EventUpsert {
	u.Set(event.FieldSourcePostIds, v)
	return u
}

// UpdateSourcePostIds sets the "source_post_ids" field to the value that was provided on create.
func (u *EventUpsert) UpdateSourcePostIds() *EventUpsert {
	u.SetExcluded(event.FieldSourcePostIds)
	return u
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *EventUpsert) SetConfidenceScore(v float64) *EventUpsert {
	u.Set(event.FieldConfidenceScore, v)
	return u
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *EventUpsert) UpdateConfidenceScore() *EventUpsert {
	u.SetExcluded(event.FieldConfidenceScore)
	return u
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *EventUpsert) AddConfidenceScore(v float64) *EventUpsert {
	u.Add(event.FieldConfidenceScore, v)
	return u
}

// SetExtractedBy sets the "extracted_by" field.
func (u *EventUpsert) SetExtractedBy(v string) *EventUpsert {
	u.Set(event.FieldExtractedBy, v)
	return u
}

// UpdateExtractedBy sets the "extracted_by" field to the value that was provided on create.
func (u *EventUpsert) UpdateExtractedBy() *EventUpsert {
	u.SetExcluded(event.FieldExtractedBy)
	return u
}

// ClearExtractedBy clears the value of the "extracted_by" field.
func (u *EventUpsert) ClearExtractedBy() *EventUpsert {
	u.SetNull(event.FieldExtractedBy)
	return u
}

// SetExtractedAt sets the "extracted_at" field.
func (u *EventUpsert) SetExtractedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldExtractedAt, v)
	return u
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateExtractedAt() *EventUpsert {
	u.SetExcluded(event.FieldExtractedAt)
	return u
}

// SetVerified sets the "verified" field.
func (u *EventUpsert) SetVerified(v bool) *EventUpsert {
	u.Set(event.FieldVerified, v)
	return u
}

// UpdateVerified sets the "verified" field to the value that was provided on create.
func (u *EventUpsert) UpdateVerified() *EventUpsert {
	u.SetExcluded(event.FieldVerified)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *EventUpsert) SetContentHash(v string) *EventUpsert {
	u.Set(event.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *EventUpsert) UpdateContentHash() *EventUpsert {
	u.SetExcluded(event.FieldContentHash)
	return u
}

// SetProjectID sets the "project_id" field.
func (u *EventUpsert) SetProjectID(v string) *EventUpsert {
	u.Set(event.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateProjectID() *EventUpsert {
	u.SetExcluded(event.FieldProjectID)
	return u
}

// ClearProjectID clears the value of the "project_id" field.
func (u *EventUpsert) ClearProjectID() *EventUpsert {
	u.SetNull(event.FieldProjectID)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *EventUpsert) SetEmbedding(v []float64) *EventUpsert {
	u.Set(event.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EventUpsert) UpdateEmbedding() *EventUpsert {
	u.SetExcluded(event.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EventUpsert) ClearEmbedding() *EventUpsert {
	u.SetNull(event.FieldEmbedding)
	return u
}

// SetLatitude sets the "latitude" field.
func (u *EventUpsert) SetLatitude(v float64) *EventUpsert {
	u.Set(event.FieldLatitude, v)
	return u
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *EventUpsert) UpdateLatitude() *EventUpsert {
	u.SetExcluded(event.FieldLatitude)
	return u
}

// AddLatitude adds v to the "latitude" field.
func (u *EventUpsert) AddLatitude(v float64) *EventUpsert {
	u.Add(event.FieldLatitude, v)
	return u
}

// ClearLatitude clears the value of the "latitude" field.
func (u *EventUpsert) ClearLatitude() *EventUpsert {
	u.SetNull(event.FieldLatitude)
	return u
}

// SetLongitude sets the "longitude" field.
func (u *EventUpsert) SetLongitude(v float64) *EventUpsert {
	u.Set(event.FieldLongitude, v)
	return u
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *EventUpsert) UpdateLongitude() *EventUpsert {
	u.SetExcluded(event.FieldLongitude)
	return u
}

// AddLongitude adds v to the "longitude" field.
func (u *EventUpsert) AddLongitude(v float64) *EventUpsert {
	u.Add(event.FieldLongitude, v)
	return u
}

// ClearLongitude clears the value of the "longitude" field.
func (u *EventUpsert) ClearLongitude() *EventUpsert {
	u.SetNull(event.FieldLongitude)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsert) SetUpdatedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateUpdatedAt() *EventUpsert {
	u.SetExcluded(event.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(event.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(event.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventName sets the "event_name" field.
func (u *EventUpsertOne) SetEventName(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventName(v)
	})
}

// UpdateEventName sets the "event_name" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventName() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventName()
	})
}

// SetEventDate sets the "event_date" field.
func (u *EventUpsertOne) SetEventDate(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventDate(v)
	})
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventDate() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventDate()
	})
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventUpsertOne) ClearEventDate() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearEventDate()
	})
}

// SetEventDescription sets the "event_description" field.
func (u *EventUpsertOne) SetEventDescription(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventDescription(v)
	})
}

// UpdateEventDescription sets the "event_description" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventDescription() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventDescription()
	})
}

// SetLocation sets the "location" field.
func (u *EventUpsertOne) SetLocation(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLocation() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *EventUpsertOne) ClearLocation() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearLocation()
	})
}

// SetCity sets the "city" field.
func (u *EventUpsertOne) SetCity(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateCity() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *EventUpsertOne) ClearCity() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *EventUpsertOne) SetState(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateState() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *EventUpsertOne) ClearState() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearState()
	})
}

// SetParticipants sets the "participants" field.
func (u *EventUpsertOne) SetParticipants(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetParticipants(v)
	})
}

// UpdateParticipants sets the "participants" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateParticipants() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateParticipants()
	})
}

// ClearParticipants clears the value of the "participants" field.
func (u *EventUpsertOne) ClearParticipants() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearParticipants()
	})
}

// SetCategoryTags sets the "category_tags" field.
func (u *EventUpsertOne) SetCategoryTags(v []string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetCategoryTags(v)
	})
}

// UpdateCategoryTags sets the "category_tags" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateCategoryTags() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCategoryTags()
	})
}

// SetSourcePostIds sets the "source_post_ids" field.
func (u *EventUpsertOne) SetSourcePostIds(v []string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSourcePostIds(v)
	})
}

// UpdateSourcePostIds sets the "source_post_ids" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSourcePostIds() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSourcePostIds()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *EventUpsertOne) SetConfidenceScore(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *EventUpsertOne) AddConfidenceScore(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateConfidenceScore() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetExtractedBy sets the "extracted_by" field.
func (u *EventUpsertOne) SetExtractedBy(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetExtractedBy(v)
	})
}

// UpdateExtractedBy sets the "extracted_by" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateExtractedBy() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateExtractedBy()
	})
}

// ClearExtractedBy clears the value of the "extracted_by" field.
func (u *EventUpsertOne) ClearExtractedBy() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearExtractedBy()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *EventUpsertOne) SetExtractedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateExtractedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateExtractedAt()
	})
}

// SetVerified sets the "verified" field.
func (u *EventUpsertOne) SetVerified(v bool) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetVerified(v)
	})
}

// UpdateVerified sets the "verified" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateVerified() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateVerified()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *EventUpsertOne) SetContentHash(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateContentHash() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateContentHash()
	})
}

// SetProjectID sets the "project_id" field.
func (u *EventUpsertOne) SetProjectID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateProjectID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *EventUpsertOne) ClearProjectID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearProjectID()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *EventUpsertOne) SetEmbedding(v []float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEmbedding() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EventUpsertOne) ClearEmbedding() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearEmbedding()
	})
}

// SetLatitude sets the "latitude" field.
func (u *EventUpsertOne) SetLatitude(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *EventUpsertOne) AddLatitude(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLatitude() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *EventUpsertOne) ClearLatitude() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *EventUpsertOne) SetLongitude(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *EventUpsertOne) AddLongitude(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLongitude() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *EventUpsertOne) ClearLongitude() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearLongitude()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertOne) SetUpdatedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateUpdatedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventUpsertOne.ID is not supported by MySQL driver. Use EventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetEventName(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(event.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(event.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventName sets the "event_name" field.
func (u *EventUpsertBulk) SetEventName(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventName(v)
	})
}

// UpdateEventName sets the "event_name" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventName() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventName()
	})
}

// SetEventDate sets the "event_date" field.
func (u *EventUpsertBulk) SetEventDate(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventDate(v)
	})
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventDate() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventDate()
	})
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventUpsertBulk) ClearEventDate() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearEventDate()
	})
}

// SetEventDescription sets the "event_description" field.
func (u *EventUpsertBulk) SetEventDescription(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventDescription(v)
	})
}

// UpdateEventDescription sets the "event_description" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventDescription() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventDescription()
	})
}

// SetLocation sets the "location" field.
func (u *EventUpsertBulk) SetLocation(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLocation() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *EventUpsertBulk) ClearLocation() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearLocation()
	})
}

// SetCity sets the "city" field.
func (u *EventUpsertBulk) SetCity(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateCity() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *EventUpsertBulk) ClearCity() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *EventUpsertBulk) SetState(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateState() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *EventUpsertBulk) ClearState() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearState()
	})
}

// SetParticipants sets the "participants" field.
func (u *EventUpsertBulk) SetParticipants(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetParticipants(v)
	})
}

// UpdateParticipants sets the "participants" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateParticipants() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateParticipants()
	})
}

// ClearParticipants clears the value of the "participants" field.
func (u *EventUpsertBulk) ClearParticipants() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearParticipants()
	})
}

// SetCategoryTags sets the "category_tags" field.
func (u *EventUpsertBulk) SetCategoryTags(v []string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetCategoryTags(v)
	})
}

// UpdateCategoryTags sets the "category_tags" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateCategoryTags() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCategoryTags()
	})
}

// SetSourcePostIds sets the "source_post_ids" field.
func (u *EventUpsertBulk) SetSourcePostIds(v []string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSourcePostIds(v)
	})
}

// UpdateSourcePostIds sets the "source_post_ids" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSourcePostIds() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSourcePostIds()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *EventUpsertBulk) SetConfidenceScore(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *EventUpsertBulk) AddConfidenceScore(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateConfidenceScore() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetExtractedBy sets the "extracted_by" field.
func (u *EventUpsertBulk) SetExtractedBy(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetExtractedBy(v)
	})
}

// UpdateExtractedBy sets the "extracted_by" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateExtractedBy() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateExtractedBy()
	})
}

// ClearExtractedBy clears the value of the "extracted_by" field.
func (u *EventUpsertBulk) ClearExtractedBy() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearExtractedBy()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *EventUpsertBulk) SetExtractedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateExtractedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateExtractedAt()
	})
}

// SetVerified sets the "verified" field.
func (u *EventUpsertBulk) SetVerified(v bool) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetVerified(v)
	})
}

// UpdateVerified sets the "verified" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateVerified() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateVerified()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *EventUpsertBulk) SetContentHash(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateContentHash() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateContentHash()
	})
}

// SetProjectID sets the "project_id" field.
func (u *EventUpsertBulk) SetProjectID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateProjectID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *EventUpsertBulk) ClearProjectID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearProjectID()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *EventUpsertBulk) SetEmbedding(v []float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEmbedding() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *EventUpsertBulk) ClearEmbedding() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearEmbedding()
	})
}

// SetLatitude sets the "latitude" field.
func (u *EventUpsertBulk) SetLatitude(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *EventUpsertBulk) AddLatitude(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLatitude() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *EventUpsertBulk) ClearLatitude() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *EventUpsertBulk) SetLongitude(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *EventUpsertBulk) AddLongitude(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLongitude() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *EventUpsertBulk) ClearLongitude() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearLongitude()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertBulk) SetUpdatedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateUpdatedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
