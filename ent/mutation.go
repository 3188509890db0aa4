// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/actorusername"
	"github.com/civiclens/civiclens/ent/dynamicslug"
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventactorlink"
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/locationcoordinate"
	"github.com/civiclens/civiclens/ent/pipelinerun"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postactor"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/predicate"
	"github.com/civiclens/civiclens/ent/unknownactor"
	"github.com/civiclens/civiclens/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActor              = "Actor"
	TypeActorUsername      = "ActorUsername"
	TypeDynamicSlug        = "DynamicSlug"
	TypeEvent              = "Event"
	TypeEventActorLink     = "EventActorLink"
	TypeEventPostLink      = "EventPostLink"
	TypeLocationCoordinate = "LocationCoordinate"
	TypePipelineRun        = "PipelineRun"
	TypePost               = "Post"
	TypePostActor          = "PostActor"
	TypePostUnknownActor   = "PostUnknownActor"
	TypeUnknownActor       = "UnknownActor"
)

// ActorMutation represents an operation that mutates the Actor nodes in the graph.
type ActorMutation struct {
	config
	op                Op
	typ               string
	id                *string
	actor_type        *actor.ActorType
	name              *string
	about             *string
	city              *string
	state             *string
	profile_data      *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	usernames         map[string]struct{}
	removedusernames  map[string]struct{}
	clearedusernames  bool
	post_links        map[string]struct{}
	removedpost_links map[string]struct{}
	clearedpost_links bool
	done              bool
	oldValue          func(context.Context) (*Actor, error)
	predicates        []predicate.Actor
}

var _ ent.Mutation = (*ActorMutation)(nil)

// actorOption allows management of the mutation configuration using functional options.
type actorOption func(*ActorMutation)

// newActorMutation creates new mutation for the Actor entity.
func newActorMutation(c config, op Op, opts ...actorOption) *ActorMutation {
	m := &ActorMutation{
		config:        c,
		op:            op,
		typ:           TypeActor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActorID sets the ID field of the mutation.
func withActorID(id string) actorOption {
	return func(m *ActorMutation) {
		var (
			err   error
			once  sync.Once
			value *Actor
		)
		m.oldValue = func(ctx context.Context) (*Actor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Actor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActor sets the old Actor of the mutation.
func withActor(node *Actor) actorOption {
	return func(m *ActorMutation) {
		m.oldValue = func(context.Context) (*Actor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Actor entities.
func (m *ActorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Actor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorType sets the "actor_type" field.
func (m *ActorMutation) SetActorType(at actor.ActorType) {
	m.actor_type = &at
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *ActorMutation) ActorType() (r actor.ActorType, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldActorType(ctx context.Context) (v actor.ActorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *ActorMutation) ResetActorType() {
	m.actor_type = nil
}

// SetName sets the "name" field.
func (m *ActorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ActorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ActorMutation) ResetName() {
	m.name = nil
}

// SetAbout sets the "about" field.
func (m *ActorMutation) SetAbout(s string) {
	m.about = &s
}

// About returns the value of the "about" field in the mutation.
func (m *ActorMutation) About() (r string, exists bool) {
	v := m.about
	if v == nil {
		return
	}
	return *v, true
}

// OldAbout returns the old "about" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldAbout(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbout: %w", err)
	}
	return oldValue.About, nil
}

// ClearAbout clears the value of the "about" field.
func (m *ActorMutation) ClearAbout() {
	m.about = nil
	m.clearedFields[actor.FieldAbout] = struct{}{}
}

// AboutCleared returns if the "about" field was cleared in this mutation.
func (m *ActorMutation) AboutCleared() bool {
	_, ok := m.clearedFields[actor.FieldAbout]
	return ok
}

// ResetAbout resets all changes to the "about" field.
func (m *ActorMutation) ResetAbout() {
	m.about = nil
	delete(m.clearedFields, actor.FieldAbout)
}

// SetCity sets the "city" field.
func (m *ActorMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ActorMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ActorMutation) ClearCity() {
	m.city = nil
	m.clearedFields[actor.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ActorMutation) CityCleared() bool {
	_, ok := m.clearedFields[actor.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ActorMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, actor.FieldCity)
}

// SetState sets the "state" field.
func (m *ActorMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ActorMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *ActorMutation) ClearState() {
	m.state = nil
	m.clearedFields[actor.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *ActorMutation) StateCleared() bool {
	_, ok := m.clearedFields[actor.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *ActorMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, actor.FieldState)
}

// SetProfileData sets the "profile_data" field.
func (m *ActorMutation) SetProfileData(value map[string]interface{}) {
	m.profile_data = &value
}

// ProfileData returns the value of the "profile_data" field in the mutation.
func (m *ActorMutation) ProfileData() (r map[string]interface{}, exists bool) {
	v := m.profile_data
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileData returns the old "profile_data" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldProfileData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileData: %w", err)
	}
	return oldValue.ProfileData, nil
}

// ClearProfileData clears the value of the "profile_data" field.
func (m *ActorMutation) ClearProfileData() {
	m.profile_data = nil
	m.clearedFields[actor.FieldProfileData] = struct{}{}
}

// ProfileDataCleared returns if the "profile_data" field was cleared in this mutation.
func (m *ActorMutation) ProfileDataCleared() bool {
	_, ok := m.clearedFields[actor.FieldProfileData]
	return ok
}

// ResetProfileData resets all changes to the "profile_data" field.
func (m *ActorMutation) ResetProfileData() {
	m.profile_data = nil
	delete(m.clearedFields, actor.FieldProfileData)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddUsernameIDs adds the "usernames" edge to the ActorUsername entity by ids.
func (m *ActorMutation) AddUsernameIDs(ids ...string) {
	if m.usernames == nil {
		m.usernames = make(map[string]struct{})
	}
	for i := range ids {
		m.usernames[ids[i]] = struct{}{}
	}
}

// ClearUsernames clears the "usernames" edge to the ActorUsername entity.
func (m *ActorMutation) ClearUsernames() {
	m.clearedusernames = true
}

// UsernamesCleared reports if the "usernames" edge to the ActorUsername entity was cleared.
func (m *ActorMutation) UsernamesCleared() bool {
	return m.clearedusernames
}

// RemoveUsernameIDs removes the "usernames" edge to the ActorUsername entity by IDs.
func (m *ActorMutation) RemoveUsernameIDs(ids ...string) {
	if m.removedusernames == nil {
		m.removedusernames = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.usernames, ids[i])
		m.removedusernames[ids[i]] = struct{}{}
	}
}

// RemovedUsernames returns the removed IDs of the "usernames" edge to the ActorUsername entity.
func (m *ActorMutation) RemovedUsernamesIDs() (ids []string) {
	for id := range m.removedusernames {
		ids = append(ids, id)
	}
	return
}

// UsernamesIDs returns the "usernames" edge IDs in the mutation.
func (m *ActorMutation) UsernamesIDs() (ids []string) {
	for id := range m.usernames {
		ids = append(ids, id)
	}
	return
}

// ResetUsernames resets all changes to the "usernames" edge.
func (m *ActorMutation) ResetUsernames() {
	m.usernames = nil
	m.clearedusernames = false
	m.removedusernames = nil
}

// AddPostLinkIDs adds the "post_links" edge to the PostActor entity by ids.
func (m *ActorMutation) AddPostLinkIDs(ids ...string) {
	if m.post_links == nil {
		m.post_links = make(map[string]struct{})
	}
	for i := range ids {
		m.post_links[ids[i]] = struct{}{}
	}
}

// ClearPostLinks clears the "post_links" edge to the PostActor entity.
func (m *ActorMutation) ClearPostLinks() {
	m.clearedpost_links = true
}

// PostLinksCleared reports if the "post_links" edge to the PostActor entity was cleared.
func (m *ActorMutation) PostLinksCleared() bool {
	return m.clearedpost_links
}

// RemovePostLinkIDs removes the "post_links" edge to the PostActor entity by IDs.
func (m *ActorMutation) RemovePostLinkIDs(ids ...string) {
	if m.removedpost_links == nil {
		m.removedpost_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.post_links, ids[i])
		m.removedpost_links[ids[i]] = struct{}{}
	}
}

// RemovedPostLinks returns the removed IDs of the "post_links" edge to the PostActor entity.
func (m *ActorMutation) RemovedPostLinksIDs() (ids []string) {
	for id := range m.removedpost_links {
		ids = append(ids, id)
	}
	return
}

// PostLinksIDs returns the "post_links" edge IDs in the mutation.
func (m *ActorMutation) PostLinksIDs() (ids []string) {
	for id := range m.post_links {
		ids = append(ids, id)
	}
	return
}

// ResetPostLinks resets all changes to the "post_links" edge.
func (m *ActorMutation) ResetPostLinks() {
	m.post_links = nil
	m.clearedpost_links = false
	m.removedpost_links = nil
}

// Where appends a list predicates to the ActorMutation builder.
func (m *ActorMutation) Where(ps ...predicate.Actor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Actor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Actor).
func (m *ActorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActorMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.actor_type != nil {
		fields = append(fields, actor.FieldActorType)
	}
	if m.name != nil {
		fields = append(fields, actor.FieldName)
	}
	if m.about != nil {
		fields = append(fields, actor.FieldAbout)
	}
	if m.city != nil {
		fields = append(fields, actor.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, actor.FieldState)
	}
	if m.profile_data != nil {
		fields = append(fields, actor.FieldProfileData)
	}
	if m.created_at != nil {
		fields = append(fields, actor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actor.FieldActorType:
		return m.ActorType()
	case actor.FieldName:
		return m.Name()
	case actor.FieldAbout:
		return m.About()
	case actor.FieldCity:
		return m.City()
	case actor.FieldState:
		return m.State()
	case actor.FieldProfileData:
		return m.ProfileData()
	case actor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actor.FieldActorType:
		return m.OldActorType(ctx)
	case actor.FieldName:
		return m.OldName(ctx)
	case actor.FieldAbout:
		return m.OldAbout(ctx)
	case actor.FieldCity:
		return m.OldCity(ctx)
	case actor.FieldState:
		return m.OldState(ctx)
	case actor.FieldProfileData:
		return m.OldProfileData(ctx)
	case actor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Actor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actor.FieldActorType:
		v, ok := value.(actor.ActorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case actor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case actor.FieldAbout:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbout(v)
		return nil
	case actor.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case actor.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case actor.FieldProfileData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileData(v)
		return nil
	case actor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Actor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Actor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actor.FieldAbout) {
		fields = append(fields, actor.FieldAbout)
	}
	if m.FieldCleared(actor.FieldCity) {
		fields = append(fields, actor.FieldCity)
	}
	if m.FieldCleared(actor.FieldState) {
		fields = append(fields, actor.FieldState)
	}
	if m.FieldCleared(actor.FieldProfileData) {
		fields = append(fields, actor.FieldProfileData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActorMutation) ClearField(name string) error {
	switch name {
	case actor.FieldAbout:
		m.ClearAbout()
		return nil
	case actor.FieldCity:
		m.ClearCity()
		return nil
	case actor.FieldState:
		m.ClearState()
		return nil
	case actor.FieldProfileData:
		m.ClearProfileData()
		return nil
	}
	return fmt.Errorf("unknown Actor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActorMutation) ResetField(name string) error {
	switch name {
	case actor.FieldActorType:
		m.ResetActorType()
		return nil
	case actor.FieldName:
		m.ResetName()
		return nil
	case actor.FieldAbout:
		m.ResetAbout()
		return nil
	case actor.FieldCity:
		m.ResetCity()
		return nil
	case actor.FieldState:
		m.ResetState()
		return nil
	case actor.FieldProfileData:
		m.ResetProfileData()
		return nil
	case actor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Actor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActorMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.usernames != nil {
		edges = append(edges, actor.EdgeUsernames)
	}
	if m.post_links != nil {
		edges = append(edges, actor.EdgePostLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case actor.EdgeUsernames:
		ids := make([]ent.Value, 0, len(m.usernames))
		for id := range m.usernames {
			ids = append(ids, id)
		}
		return ids
	case actor.EdgePostLinks:
		ids := make([]ent.Value, 0, len(m.post_links))
		for id := range m.post_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedusernames != nil {
		edges = append(edges, actor.EdgeUsernames)
	}
	if m.removedpost_links != nil {
		edges = append(edges, actor.EdgePostLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case actor.EdgeUsernames:
		ids := make([]ent.Value, 0, len(m.removedusernames))
		for id := range m.removedusernames {
			ids = append(ids, id)
		}
		return ids
	case actor.EdgePostLinks:
		ids := make([]ent.Value, 0, len(m.removedpost_links))
		for id := range m.removedpost_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedusernames {
		edges = append(edges, actor.EdgeUsernames)
	}
	if m.clearedpost_links {
		edges = append(edges, actor.EdgePostLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActorMutation) EdgeCleared(name string) bool {
	switch name {
	case actor.EdgeUsernames:
		return m.clearedusernames
	case actor.EdgePostLinks:
		return m.clearedpost_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Actor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActorMutation) ResetEdge(name string) error {
	switch name {
	case actor.EdgeUsernames:
		m.ResetUsernames()
		return nil
	case actor.EdgePostLinks:
		m.ResetPostLinks()
		return nil
	}
	return fmt.Errorf("unknown Actor edge %s", name)
}

// ActorUsernameMutation represents an operation that mutates the ActorUsername nodes in the graph.
type ActorUsernameMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	username            *string
	platform            *string
	should_scrape       *bool
	last_scrape         *time.Time
	last_profile_update *time.Time
	clearedFields       map[string]struct{}
	actor               *string
	clearedactor        bool
	done                bool
	oldValue            func(context.Context) (*ActorUsername, error)
	predicates          []predicate.ActorUsername
}

var _ ent.Mutation = (*ActorUsernameMutation)(nil)

// actorusernameOption allows management of the mutation configuration using functional options.
type actorusernameOption func(*ActorUsernameMutation)

// newActorUsernameMutation creates new mutation for the ActorUsername entity.
func newActorUsernameMutation(c config, op Op, opts ...actorusernameOption) *ActorUsernameMutation {
	m := &ActorUsernameMutation{
		config:        c,
		op:            op,
		typ:           TypeActorUsername,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActorUsernameID sets the ID field of the mutation.
func withActorUsernameID(id string) actorusernameOption {
	return func(m *ActorUsernameMutation) {
		var (
			err   error
			once  sync.Once
			value *ActorUsername
		)
		m.oldValue = func(ctx context.Context) (*ActorUsername, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActorUsername.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActorUsername sets the old ActorUsername of the mutation.
func withActorUsername(node *ActorUsername) actorusernameOption {
	return func(m *ActorUsernameMutation) {
		m.oldValue = func(context.Context) (*ActorUsername, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActorUsernameMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActorUsernameMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActorUsername entities.
func (m *ActorUsernameMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActorUsernameMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActorUsernameMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActorUsername.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorID sets the "actor_id" field.
func (m *ActorUsernameMutation) SetActorID(s string) {
	m.actor = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *ActorUsernameMutation) ActorID() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the ActorUsername entity.
// If the ActorUsername object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorUsernameMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *ActorUsernameMutation) ResetActorID() {
	m.actor = nil
}

// SetUsername sets the "username" field.
func (m *ActorUsernameMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ActorUsernameMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the ActorUsername entity.
// If the ActorUsername object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorUsernameMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *ActorUsernameMutation) ResetUsername() {
	m.username = nil
}

// SetPlatform sets the "platform" field.
func (m *ActorUsernameMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *ActorUsernameMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the ActorUsername entity.
// If the ActorUsername object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorUsernameMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *ActorUsernameMutation) ResetPlatform() {
	m.platform = nil
}

// SetShouldScrape sets the "should_scrape" field.
func (m *ActorUsernameMutation) SetShouldScrape(b bool) {
	m.should_scrape = &b
}

// ShouldScrape returns the value of the "should_scrape" field in the mutation.
func (m *ActorUsernameMutation) ShouldScrape() (r bool, exists bool) {
	v := m.should_scrape
	if v == nil {
		return
	}
	return *v, true
}

// OldShouldScrape returns the old "should_scrape" field's value of the ActorUsername entity.
// If the ActorUsername object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorUsernameMutation) OldShouldScrape(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShouldScrape is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShouldScrape requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShouldScrape: %w", err)
	}
	return oldValue.ShouldScrape, nil
}

// ResetShouldScrape resets all changes to the "should_scrape" field.
func (m *ActorUsernameMutation) ResetShouldScrape() {
	m.should_scrape = nil
}

// SetLastScrape sets the "last_scrape" field.
func (m *ActorUsernameMutation) SetLastScrape(t time.Time) {
	m.last_scrape = &t
}

// LastScrape returns the value of the "last_scrape" field in the mutation.
func (m *ActorUsernameMutation) LastScrape() (r time.Time, exists bool) {
	v := m.last_scrape
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScrape returns the old "last_scrape" field's value of the ActorUsername entity.
// If the ActorUsername object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorUsernameMutation) OldLastScrape(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScrape is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScrape requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScrape: %w", err)
	}
	return oldValue.LastScrape, nil
}

// ClearLastScrape clears the value of the "last_scrape" field.
func (m *ActorUsernameMutation) ClearLastScrape() {
	m.last_scrape = nil
	m.clearedFields[actorusername.FieldLastScrape] = struct{}{}
}

// LastScrapeCleared returns if the "last_scrape" field was cleared in this mutation.
func (m *ActorUsernameMutation) LastScrapeCleared() bool {
	_, ok := m.clearedFields[actorusername.FieldLastScrape]
	return ok
}

// ResetLastScrape resets all changes to the "last_scrape" field.
func (m *ActorUsernameMutation) ResetLastScrape() {
	m.last_scrape = nil
	delete(m.clearedFields, actorusername.FieldLastScrape)
}

// SetLastProfileUpdate sets the "last_profile_update" field.
func (m *ActorUsernameMutation) SetLastProfileUpdate(t time.Time) {
	m.last_profile_update = &t
}

// LastProfileUpdate returns the value of the "last_profile_update" field in the mutation.
func (m *ActorUsernameMutation) LastProfileUpdate() (r time.Time, exists bool) {
	v := m.last_profile_update
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProfileUpdate returns the old "last_profile_update" field's value of the ActorUsername entity.
// If the ActorUsername object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorUsernameMutation) OldLastProfileUpdate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProfileUpdate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProfileUpdate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProfileUpdate: %w", err)
	}
	return oldValue.LastProfileUpdate, nil
}

// ClearLastProfileUpdate clears the value of the "last_profile_update" field.
func (m *ActorUsernameMutation) ClearLastProfileUpdate() {
	m.last_profile_update = nil
	m.clearedFields[actorusername.FieldLastProfileUpdate] = struct{}{}
}

// LastProfileUpdateCleared returns if the "last_profile_update" field was cleared in this mutation.
func (m *ActorUsernameMutation) LastProfileUpdateCleared() bool {
	_, ok := m.clearedFields[actorusername.FieldLastProfileUpdate]
	return ok
}

// ResetLastProfileUpdate resets all changes to the "last_profile_update" field.
func (m *ActorUsernameMutation) ResetLastProfileUpdate() {
	m.last_profile_update = nil
	delete(m.clearedFields, actorusername.FieldLastProfileUpdate)
}

// ClearActor clears the "actor" edge to the Actor entity.
func (m *ActorUsernameMutation) ClearActor() {
	m.clearedactor = true
	m.clearedFields[actorusername.FieldActorID] = struct{}{}
}

// ActorCleared reports if the "actor" edge to the Actor entity was cleared.
func (m *ActorUsernameMutation) ActorCleared() bool {
	return m.clearedactor
}

// ActorIDs returns the "actor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ActorID instead. It exists only for internal usage by the builders.
func (m *ActorUsernameMutation) ActorIDs() (ids []string) {
	if id := m.actor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetActor resets all changes to the "actor" edge.
func (m *ActorUsernameMutation) ResetActor() {
	m.actor = nil
	m.clearedactor = false
}

// Where appends a list predicates to the ActorUsernameMutation builder.
func (m *ActorUsernameMutation) Where(ps ...predicate.ActorUsername) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActorUsernameMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActorUsernameMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActorUsername, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActorUsernameMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActorUsernameMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActorUsername).
func (m *ActorUsernameMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActorUsernameMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.actor != nil {
		fields = append(fields, actorusername.FieldActorID)
	}
	if m.username != nil {
		fields = append(fields, actorusername.FieldUsername)
	}
	if m.platform != nil {
		fields = append(fields, actorusername.FieldPlatform)
	}
	if m.should_scrape != nil {
		fields = append(fields, actorusername.FieldShouldScrape)
	}
	if m.last_scrape != nil {
		fields = append(fields, actorusername.FieldLastScrape)
	}
	if m.last_profile_update != nil {
		fields = append(fields, actorusername.FieldLastProfileUpdate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActorUsernameMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actorusername.FieldActorID:
		return m.ActorID()
	case actorusername.FieldUsername:
		return m.Username()
	case actorusername.FieldPlatform:
		return m.Platform()
	case actorusername.FieldShouldScrape:
		return m.ShouldScrape()
	case actorusername.FieldLastScrape:
		return m.LastScrape()
	case actorusername.FieldLastProfileUpdate:
		return m.LastProfileUpdate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActorUsernameMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actorusername.FieldActorID:
		return m.OldActorID(ctx)
	case actorusername.FieldUsername:
		return m.OldUsername(ctx)
	case actorusername.FieldPlatform:
		return m.OldPlatform(ctx)
	case actorusername.FieldShouldScrape:
		return m.OldShouldScrape(ctx)
	case actorusername.FieldLastScrape:
		return m.OldLastScrape(ctx)
	case actorusername.FieldLastProfileUpdate:
		return m.OldLastProfileUpdate(ctx)
	}
	return nil, fmt.Errorf("unknown ActorUsername field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActorUsernameMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actorusername.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case actorusername.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case actorusername.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case actorusername.FieldShouldScrape:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShouldScrape(v)
		return nil
	case actorusername.FieldLastScrape:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScrape(v)
		return nil
	case actorusername.FieldLastProfileUpdate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProfileUpdate(v)
		return nil
	}
	return fmt.Errorf("unknown ActorUsername field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActorUsernameMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActorUsernameMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActorUsernameMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActorUsername numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActorUsernameMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actorusername.FieldLastScrape) {
		fields = append(fields, actorusername.FieldLastScrape)
	}
	if m.FieldCleared(actorusername.FieldLastProfileUpdate) {
		fields = append(fields, actorusername.FieldLastProfileUpdate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActorUsernameMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActorUsernameMutation) ClearField(name string) error {
	switch name {
	case actorusername.FieldLastScrape:
		m.ClearLastScrape()
		return nil
	case actorusername.FieldLastProfileUpdate:
		m.ClearLastProfileUpdate()
		return nil
	}
	return fmt.Errorf("unknown ActorUsername nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActorUsernameMutation) ResetField(name string) error {
	switch name {
	case actorusername.FieldActorID:
		m.ResetActorID()
		return nil
	case actorusername.FieldUsername:
		m.ResetUsername()
		return nil
	case actorusername.FieldPlatform:
		m.ResetPlatform()
		return nil
	case actorusername.FieldShouldScrape:
		m.ResetShouldScrape()
		return nil
	case actorusername.FieldLastScrape:
		m.ResetLastScrape()
		return nil
	case actorusername.FieldLastProfileUpdate:
		m.ResetLastProfileUpdate()
		return nil
	}
	return fmt.Errorf("unknown ActorUsername field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActorUsernameMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.actor != nil {
		edges = append(edges, actorusername.EdgeActor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActorUsernameMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case actorusername.EdgeActor:
		if id := m.actor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActorUsernameMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActorUsernameMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActorUsernameMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedactor {
		edges = append(edges, actorusername.EdgeActor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActorUsernameMutation) EdgeCleared(name string) bool {
	switch name {
	case actorusername.EdgeActor:
		return m.clearedactor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActorUsernameMutation) ClearEdge(name string) error {
	switch name {
	case actorusername.EdgeActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown ActorUsername unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActorUsernameMutation) ResetEdge(name string) error {
	switch name {
	case actorusername.EdgeActor:
		m.ResetActor()
		return nil
	}
	return fmt.Errorf("unknown ActorUsername edge %s", name)
}

// DynamicSlugMutation represents an operation that mutates the DynamicSlug nodes in the graph.
type DynamicSlugMutation struct {
	config
	op              Op
	typ             string
	id              *string
	parent_tag      *string
	slug_identifier *string
	full_slug       *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*DynamicSlug, error)
	predicates      []predicate.DynamicSlug
}

var _ ent.Mutation = (*DynamicSlugMutation)(nil)

// dynamicslugOption allows management of the mutation configuration using functional options.
type dynamicslugOption func(*DynamicSlugMutation)

// newDynamicSlugMutation creates new mutation for the DynamicSlug entity.
func newDynamicSlugMutation(c config, op Op, opts ...dynamicslugOption) *DynamicSlugMutation {
	m := &DynamicSlugMutation{
		config:        c,
		op:            op,
		typ:           TypeDynamicSlug,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDynamicSlugID sets the ID field of the mutation.
func withDynamicSlugID(id string) dynamicslugOption {
	return func(m *DynamicSlugMutation) {
		var (
			err   error
			once  sync.Once
			value *DynamicSlug
		)
		m.oldValue = func(ctx context.Context) (*DynamicSlug, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DynamicSlug.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDynamicSlug sets the old DynamicSlug of the mutation.
func withDynamicSlug(node *DynamicSlug) dynamicslugOption {
	return func(m *DynamicSlugMutation) {
		m.oldValue = func(context.Context) (*DynamicSlug, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DynamicSlugMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DynamicSlugMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DynamicSlug entities.
func (m *DynamicSlugMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DynamicSlugMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DynamicSlugMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DynamicSlug.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentTag sets the "parent_tag" field.
func (m *DynamicSlugMutation) SetParentTag(s string) {
	m.parent_tag = &s
}

// ParentTag returns the value of the "parent_tag" field in the mutation.
func (m *DynamicSlugMutation) ParentTag() (r string, exists bool) {
	v := m.parent_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTag returns the old "parent_tag" field's value of the DynamicSlug entity.
// If the DynamicSlug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DynamicSlugMutation) OldParentTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTag: %w", err)
	}
	return oldValue.ParentTag, nil
}

// ResetParentTag resets all changes to the "parent_tag" field.
func (m *DynamicSlugMutation) ResetParentTag() {
	m.parent_tag = nil
}

// SetSlugIdentifier sets the "slug_identifier" field.
func (m *DynamicSlugMutation) SetSlugIdentifier(s string) {
	m.slug_identifier = &s
}

// SlugIdentifier returns the value of the "slug_identifier" field in the mutation.
func (m *DynamicSlugMutation) SlugIdentifier() (r string, exists bool) {
	v := m.slug_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldSlugIdentifier returns the old "slug_identifier" field's value of the DynamicSlug entity.
// If the DynamicSlug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DynamicSlugMutation) OldSlugIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlugIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlugIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlugIdentifier: %w", err)
	}
	return oldValue.SlugIdentifier, nil
}

// ResetSlugIdentifier resets all changes to the "slug_identifier" field.
func (m *DynamicSlugMutation) ResetSlugIdentifier() {
	m.slug_identifier = nil
}

// SetFullSlug sets the "full_slug" field.
func (m *DynamicSlugMutation) SetFullSlug(s string) {
	m.full_slug = &s
}

// FullSlug returns the value of the "full_slug" field in the mutation.
func (m *DynamicSlugMutation) FullSlug() (r string, exists bool) {
	v := m.full_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldFullSlug returns the old "full_slug" field's value of the DynamicSlug entity.
// If the DynamicSlug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DynamicSlugMutation) OldFullSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullSlug: %w", err)
	}
	return oldValue.FullSlug, nil
}

// ResetFullSlug resets all changes to the "full_slug" field.
func (m *DynamicSlugMutation) ResetFullSlug() {
	m.full_slug = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DynamicSlugMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DynamicSlugMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DynamicSlug entity.
// If the DynamicSlug object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DynamicSlugMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DynamicSlugMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DynamicSlugMutation builder.
func (m *DynamicSlugMutation) Where(ps ...predicate.DynamicSlug) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DynamicSlugMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DynamicSlugMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DynamicSlug, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DynamicSlugMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DynamicSlugMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DynamicSlug).
func (m *DynamicSlugMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DynamicSlugMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.parent_tag != nil {
		fields = append(fields, dynamicslug.FieldParentTag)
	}
	if m.slug_identifier != nil {
		fields = append(fields, dynamicslug.FieldSlugIdentifier)
	}
	if m.full_slug != nil {
		fields = append(fields, dynamicslug.FieldFullSlug)
	}
	if m.created_at != nil {
		fields = append(fields, dynamicslug.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DynamicSlugMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dynamicslug.FieldParentTag:
		return m.ParentTag()
	case dynamicslug.FieldSlugIdentifier:
		return m.SlugIdentifier()
	case dynamicslug.FieldFullSlug:
		return m.FullSlug()
	case dynamicslug.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DynamicSlugMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dynamicslug.FieldParentTag:
		return m.OldParentTag(ctx)
	case dynamicslug.FieldSlugIdentifier:
		return m.OldSlugIdentifier(ctx)
	case dynamicslug.FieldFullSlug:
		return m.OldFullSlug(ctx)
	case dynamicslug.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DynamicSlug field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DynamicSlugMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dynamicslug.FieldParentTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTag(v)
		return nil
	case dynamicslug.FieldSlugIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlugIdentifier(v)
		return nil
	case dynamicslug.FieldFullSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullSlug(v)
		return nil
	case dynamicslug.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DynamicSlug field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DynamicSlugMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DynamicSlugMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DynamicSlugMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DynamicSlug numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DynamicSlugMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DynamicSlugMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DynamicSlugMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DynamicSlug nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DynamicSlugMutation) ResetField(name string) error {
	switch name {
	case dynamicslug.FieldParentTag:
		m.ResetParentTag()
		return nil
	case dynamicslug.FieldSlugIdentifier:
		m.ResetSlugIdentifier()
		return nil
	case dynamicslug.FieldFullSlug:
		m.ResetFullSlug()
		return nil
	case dynamicslug.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DynamicSlug field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DynamicSlugMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DynamicSlugMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DynamicSlugMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DynamicSlugMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DynamicSlugMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DynamicSlugMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DynamicSlugMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DynamicSlug unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DynamicSlugMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DynamicSlug edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	event_name            *string
	event_date            *string
	event_description     *string
	location              *string
	city                  *string
	state                 *string
	participants          *string
	category_tags         *[]string
	appendcategory_tags   []string
	source_post_ids       *[]string
	appendsource_post_ids []string
	confidence_score      *float64
	addconfidence_score   *float64
	extracted_by          *string
	extracted_at          *time.Time
	verified              *bool
	content_hash          *string
	project_id            *string
	embedding             *[]float64
	appendembedding       []float64
	latitude              *float64
	addlatitude           *float64
	longitude             *float64
	addlongitude          *float64
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	post_links            map[string]struct{}
	removedpost_links     map[string]struct{}
	clearedpost_links     bool
	actor_links           map[string]struct{}
	removedactor_links    map[string]struct{}
	clearedactor_links    bool
	done                  bool
	oldValue              func(context.Context) (*Event, error)
	predicates            []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventName sets the "event_name" field.
func (m *EventMutation) SetEventName(s string) {
	m.event_name = &s
}

// EventName returns the value of the "event_name" field in the mutation.
func (m *EventMutation) EventName() (r string, exists bool) {
	v := m.event_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEventName returns the old "event_name" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventName: %w", err)
	}
	return oldValue.EventName, nil
}

// ResetEventName resets all changes to the "event_name" field.
func (m *EventMutation) ResetEventName() {
	m.event_name = nil
}

// SetEventDate sets the "event_date" field.
func (m *EventMutation) SetEventDate(s string) {
	m.event_date = &s
}

// EventDate returns the value of the "event_date" field in the mutation.
func (m *EventMutation) EventDate() (r string, exists bool) {
	v := m.event_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEventDate returns the old "event_date" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventDate: %w", err)
	}
	return oldValue.EventDate, nil
}

// ClearEventDate clears the value of the "event_date" field.
func (m *EventMutation) ClearEventDate() {
	m.event_date = nil
	m.clearedFields[event.FieldEventDate] = struct{}{}
}

// EventDateCleared returns if the "event_date" field was cleared in this mutation.
func (m *EventMutation) EventDateCleared() bool {
	_, ok := m.clearedFields[event.FieldEventDate]
	return ok
}

// ResetEventDate resets all changes to the "event_date" field.
func (m *EventMutation) ResetEventDate() {
	m.event_date = nil
	delete(m.clearedFields, event.FieldEventDate)
}

// SetEventDescription sets the "event_description" field.
func (m *EventMutation) SetEventDescription(s string) {
	m.event_description = &s
}

// EventDescription returns the value of the "event_description" field in the mutation.
func (m *EventMutation) EventDescription() (r string, exists bool) {
	v := m.event_description
	if v == nil {
		return
	}
	return *v, true
}

// OldEventDescription returns the old "event_description" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventDescription: %w", err)
	}
	return oldValue.EventDescription, nil
}

// ResetEventDescription resets all changes to the "event_description" field.
func (m *EventMutation) ResetEventDescription() {
	m.event_description = nil
}

// SetLocation sets the "location" field.
func (m *EventMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *EventMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *EventMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[event.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *EventMutation) LocationCleared() bool {
	_, ok := m.clearedFields[event.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *EventMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, event.FieldLocation)
}

// SetCity sets the "city" field.
func (m *EventMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *EventMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *EventMutation) ClearCity() {
	m.city = nil
	m.clearedFields[event.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *EventMutation) CityCleared() bool {
	_, ok := m.clearedFields[event.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *EventMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, event.FieldCity)
}

// SetState sets the "state" field.
func (m *EventMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *EventMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *EventMutation) ClearState() {
	m.state = nil
	m.clearedFields[event.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *EventMutation) StateCleared() bool {
	_, ok := m.clearedFields[event.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *EventMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, event.FieldState)
}

// SetParticipants sets the "participants" field.
func (m *EventMutation) SetParticipants(s string) {
	m.participants = &s
}

// Participants returns the value of the "participants" field in the mutation.
func (m *EventMutation) Participants() (r string, exists bool) {
	v := m.participants
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipants returns the old "participants" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldParticipants(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipants: %w", err)
	}
	return oldValue.Participants, nil
}

// ClearParticipants clears the value of the "participants" field.
func (m *EventMutation) ClearParticipants() {
	m.participants = nil
	m.clearedFields[event.FieldParticipants] = struct{}{}
}

// ParticipantsCleared returns if the "participants" field was cleared in this mutation.
func (m *EventMutation) ParticipantsCleared() bool {
	_, ok := m.clearedFields[event.FieldParticipants]
	return ok
}

// ResetParticipants resets all changes to the "participants" field.
func (m *EventMutation) ResetParticipants() {
	m.participants = nil
	delete(m.clearedFields, event.FieldParticipants)
}

// SetCategoryTags sets the "category_tags" field.
func (m *EventMutation) SetCategoryTags(s []string) {
	m.category_tags = &s
	m.appendcategory_tags = nil
}

// CategoryTags returns the value of the "category_tags" field in the mutation.
func (m *EventMutation) CategoryTags() (r []string, exists bool) {
	v := m.category_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryTags returns the old "category_tags" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCategoryTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryTags: %w", err)
	}
	return oldValue.CategoryTags, nil
}

// AppendCategoryTags adds s to the "category_tags" field.
func (m *EventMutation) AppendCategoryTags(s []string) {
	m.appendcategory_tags = append(m.appendcategory_tags, s...)
}

// AppendedCategoryTags returns the list of values that were appended to the "category_tags" field in this mutation.
func (m *EventMutation) AppendedCategoryTags() ([]string, bool) {
	if len(m.appendcategory_tags) == 0 {
		return nil, false
	}
	return m.appendcategory_tags, true
}

// ResetCategoryTags resets all changes to the "category_tags" field.
func (m *EventMutation) ResetCategoryTags() {
	m.category_tags = nil
	m.appendcategory_tags = nil
}

// SetSourcePostIds sets the "source_post_ids" field.
func (m *EventMutation) SetSourcePostIds(s []string) {
	m.source_post_ids = &s
	m.appendsource_post_ids = nil
}

// SourcePostIds returns the value of the "source_post_ids" field in the mutation.
func (m *EventMutation) SourcePostIds() (r []string, exists bool) {
	v := m.source_post_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePostIds returns the old "source_post_ids" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSourcePostIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePostIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePostIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePostIds: %w", err)
	}
	return oldValue.SourcePostIds, nil
}

// AppendSourcePostIds adds s to the "source_post_ids" field.
func (m *EventMutation) AppendSourcePostIds(s []string) {
	m.appendsource_post_ids = append(m.appendsource_post_ids, s...)
}

// AppendedSourcePostIds returns the list of values that were appended to the "source_post_ids" field in this mutation.
func (m *EventMutation) AppendedSourcePostIds() ([]string, bool) {
	if len(m.appendsource_post_ids) == 0 {
		return nil, false
	}
	return m.appendsource_post_ids, true
}

// ResetSourcePostIds resets all changes to the "source_post_ids" field.
func (m *EventMutation) ResetSourcePostIds() {
	m.source_post_ids = nil
	m.appendsource_post_ids = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *EventMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *EventMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *EventMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *EventMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *EventMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetExtractedBy sets the "extracted_by" field.
func (m *EventMutation) SetExtractedBy(s string) {
	m.extracted_by = &s
}

// ExtractedBy returns the value of the "extracted_by" field in the mutation.
func (m *EventMutation) ExtractedBy() (r string, exists bool) {
	v := m.extracted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedBy returns the old "extracted_by" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldExtractedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedBy: %w", err)
	}
	return oldValue.ExtractedBy, nil
}

// ClearExtractedBy clears the value of the "extracted_by" field.
func (m *EventMutation) ClearExtractedBy() {
	m.extracted_by = nil
	m.clearedFields[event.FieldExtractedBy] = struct{}{}
}

// ExtractedByCleared returns if the "extracted_by" field was cleared in this mutation.
func (m *EventMutation) ExtractedByCleared() bool {
	_, ok := m.clearedFields[event.FieldExtractedBy]
	return ok
}

// ResetExtractedBy resets all changes to the "extracted_by" field.
func (m *EventMutation) ResetExtractedBy() {
	m.extracted_by = nil
	delete(m.clearedFields, event.FieldExtractedBy)
}

// SetExtractedAt sets the "extracted_at" field.
func (m *EventMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *EventMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *EventMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// SetVerified sets the "verified" field.
func (m *EventMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *EventMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *EventMutation) ResetVerified() {
	m.verified = nil
}

// SetContentHash sets the "content_hash" field.
func (m *EventMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *EventMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *EventMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetProjectID sets the "project_id" field.
func (m *EventMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EventMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *EventMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[event.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *EventMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[event.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EventMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, event.FieldProjectID)
}

// SetEmbedding sets the "embedding" field.
func (m *EventMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *EventMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *EventMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *EventMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *EventMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[event.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *EventMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[event.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *EventMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, event.FieldEmbedding)
}

// SetLatitude sets the "latitude" field.
func (m *EventMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *EventMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLatitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *EventMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *EventMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *EventMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[event.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *EventMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[event.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *EventMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, event.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *EventMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *EventMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLongitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *EventMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *EventMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *EventMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[event.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *EventMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[event.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *EventMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, event.FieldLongitude)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPostLinkIDs adds the "post_links" edge to the EventPostLink entity by ids.
func (m *EventMutation) AddPostLinkIDs(ids ...string) {
	if m.post_links == nil {
		m.post_links = make(map[string]struct{})
	}
	for i := range ids {
		m.post_links[ids[i]] = struct{}{}
	}
}

// ClearPostLinks clears the "post_links" edge to the EventPostLink entity.
func (m *EventMutation) ClearPostLinks() {
	m.clearedpost_links = true
}

// PostLinksCleared reports if the "post_links" edge to the EventPostLink entity was cleared.
func (m *EventMutation) PostLinksCleared() bool {
	return m.clearedpost_links
}

// RemovePostLinkIDs removes the "post_links" edge to the EventPostLink entity by IDs.
func (m *EventMutation) RemovePostLinkIDs(ids ...string) {
	if m.removedpost_links == nil {
		m.removedpost_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.post_links, ids[i])
		m.removedpost_links[ids[i]] = struct{}{}
	}
}

// RemovedPostLinks returns the removed IDs of the "post_links" edge to the EventPostLink entity.
func (m *EventMutation) RemovedPostLinksIDs() (ids []string) {
	for id := range m.removedpost_links {
		ids = append(ids, id)
	}
	return
}

// PostLinksIDs returns the "post_links" edge IDs in the mutation.
func (m *EventMutation) PostLinksIDs() (ids []string) {
	for id := range m.post_links {
		ids = append(ids, id)
	}
	return
}

// ResetPostLinks resets all changes to the "post_links" edge.
func (m *EventMutation) ResetPostLinks() {
	m.post_links = nil
	m.clearedpost_links = false
	m.removedpost_links = nil
}

// AddActorLinkIDs adds the "actor_links" edge to the EventActorLink entity by ids.
func (m *EventMutation) AddActorLinkIDs(ids ...string) {
	if m.actor_links == nil {
		m.actor_links = make(map[string]struct{})
	}
	for i := range ids {
		m.actor_links[ids[i]] = struct{}{}
	}
}

// ClearActorLinks clears the "actor_links" edge to the EventActorLink entity.
func (m *EventMutation) ClearActorLinks() {
	m.clearedactor_links = true
}

// ActorLinksCleared reports if the "actor_links" edge to the EventActorLink entity was cleared.
func (m *EventMutation) ActorLinksCleared() bool {
	return m.clearedactor_links
}

// RemoveActorLinkIDs removes the "actor_links" edge to the EventActorLink entity by IDs.
func (m *EventMutation) RemoveActorLinkIDs(ids ...string) {
	if m.removedactor_links == nil {
		m.removedactor_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.actor_links, ids[i])
		m.removedactor_links[ids[i]] = struct{}{}
	}
}

// RemovedActorLinks returns the removed IDs of the "actor_links" edge to the EventActorLink entity.
func (m *EventMutation) RemovedActorLinksIDs() (ids []string) {
	for id := range m.removedactor_links {
		ids = append(ids, id)
	}
	return
}

// ActorLinksIDs returns the "actor_links" edge IDs in the mutation.
func (m *EventMutation) ActorLinksIDs() (ids []string) {
	for id := range m.actor_links {
		ids = append(ids, id)
	}
	return
}

// ResetActorLinks resets all changes to the "actor_links" edge.
func (m *EventMutation) ResetActorLinks() {
	m.actor_links = nil
	m.clearedactor_links = false
	m.removedactor_links = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.event_name != nil {
		fields = append(fields, event.FieldEventName)
	}
	if m.event_date != nil {
		fields = append(fields, event.FieldEventDate)
	}
	if m.event_description != nil {
		fields = append(fields, event.FieldEventDescription)
	}
	if m.location != nil {
		fields = append(fields, event.FieldLocation)
	}
	if m.city != nil {
		fields = append(fields, event.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, event.FieldState)
	}
	if m.participants != nil {
		fields = append(fields, event.FieldParticipants)
	}
	if m.category_tags != nil {
		fields = append(fields, event.FieldCategoryTags)
	}
	if m.source_post_ids != nil {
		fields = append(fields, event.FieldSourcePostIds)
	}
	if m.confidence_score != nil {
		fields = append(fields, event.FieldConfidenceScore)
	}
	if m.extracted_by != nil {
		fields = append(fields, event.FieldExtractedBy)
	}
	if m.extracted_at != nil {
		fields = append(fields, event.FieldExtractedAt)
	}
	if m.verified != nil {
		fields = append(fields, event.FieldVerified)
	}
	if m.content_hash != nil {
		fields = append(fields, event.FieldContentHash)
	}
	if m.project_id != nil {
		fields = append(fields, event.FieldProjectID)
	}
	if m.embedding != nil {
		fields = append(fields, event.FieldEmbedding)
	}
	if m.latitude != nil {
		fields = append(fields, event.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, event.FieldLongitude)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventName:
		return m.EventName()
	case event.FieldEventDate:
		return m.EventDate()
	case event.FieldEventDescription:
		return m.EventDescription()
	case event.FieldLocation:
		return m.Location()
	case event.FieldCity:
		return m.City()
	case event.FieldState:
		return m.State()
	case event.FieldParticipants:
		return m.Participants()
	case event.FieldCategoryTags:
		return m.CategoryTags()
	case event.FieldSourcePostIds:
		return m.SourcePostIds()
	case event.FieldConfidenceScore:
		return m.ConfidenceScore()
	case event.FieldExtractedBy:
		return m.ExtractedBy()
	case event.FieldExtractedAt:
		return m.ExtractedAt()
	case event.FieldVerified:
		return m.Verified()
	case event.FieldContentHash:
		return m.ContentHash()
	case event.FieldProjectID:
		return m.ProjectID()
	case event.FieldEmbedding:
		return m.Embedding()
	case event.FieldLatitude:
		return m.Latitude()
	case event.FieldLongitude:
		return m.Longitude()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventName:
		return m.OldEventName(ctx)
	case event.FieldEventDate:
		return m.OldEventDate(ctx)
	case event.FieldEventDescription:
		return m.OldEventDescription(ctx)
	case event.FieldLocation:
		return m.OldLocation(ctx)
	case event.FieldCity:
		return m.OldCity(ctx)
	case event.FieldState:
		return m.OldState(ctx)
	case event.FieldParticipants:
		return m.OldParticipants(ctx)
	case event.FieldCategoryTags:
		return m.OldCategoryTags(ctx)
	case event.FieldSourcePostIds:
		return m.OldSourcePostIds(ctx)
	case event.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case event.FieldExtractedBy:
		return m.OldExtractedBy(ctx)
	case event.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	case event.FieldVerified:
		return m.OldVerified(ctx)
	case event.FieldContentHash:
		return m.OldContentHash(ctx)
	case event.FieldProjectID:
		return m.OldProjectID(ctx)
	case event.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case event.FieldLatitude:
		return m.OldLatitude(ctx)
	case event.FieldLongitude:
		return m.OldLongitude(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventName(v)
		return nil
	case event.FieldEventDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventDate(v)
		return nil
	case event.FieldEventDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventDescription(v)
		return nil
	case event.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case event.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case event.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case event.FieldParticipants:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipants(v)
		return nil
	case event.FieldCategoryTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryTags(v)
		return nil
	case event.FieldSourcePostIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePostIds(v)
		return nil
	case event.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case event.FieldExtractedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedBy(v)
		return nil
	case event.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	case event.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case event.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case event.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case event.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case event.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case event.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, event.FieldConfidenceScore)
	}
	if m.addlatitude != nil {
		fields = append(fields, event.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, event.FieldLongitude)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case event.FieldLatitude:
		return m.AddedLatitude()
	case event.FieldLongitude:
		return m.AddedLongitude()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case event.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case event.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldEventDate) {
		fields = append(fields, event.FieldEventDate)
	}
	if m.FieldCleared(event.FieldLocation) {
		fields = append(fields, event.FieldLocation)
	}
	if m.FieldCleared(event.FieldCity) {
		fields = append(fields, event.FieldCity)
	}
	if m.FieldCleared(event.FieldState) {
		fields = append(fields, event.FieldState)
	}
	if m.FieldCleared(event.FieldParticipants) {
		fields = append(fields, event.FieldParticipants)
	}
	if m.FieldCleared(event.FieldExtractedBy) {
		fields = append(fields, event.FieldExtractedBy)
	}
	if m.FieldCleared(event.FieldProjectID) {
		fields = append(fields, event.FieldProjectID)
	}
	if m.FieldCleared(event.FieldEmbedding) {
		fields = append(fields, event.FieldEmbedding)
	}
	if m.FieldCleared(event.FieldLatitude) {
		fields = append(fields, event.FieldLatitude)
	}
	if m.FieldCleared(event.FieldLongitude) {
		fields = append(fields, event.FieldLongitude)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldEventDate:
		m.ClearEventDate()
		return nil
	case event.FieldLocation:
		m.ClearLocation()
		return nil
	case event.FieldCity:
		m.ClearCity()
		return nil
	case event.FieldState:
		m.ClearState()
		return nil
	case event.FieldParticipants:
		m.ClearParticipants()
		return nil
	case event.FieldExtractedBy:
		m.ClearExtractedBy()
		return nil
	case event.FieldProjectID:
		m.ClearProjectID()
		return nil
	case event.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case event.FieldLatitude:
		m.ClearLatitude()
		return nil
	case event.FieldLongitude:
		m.ClearLongitude()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventName:
		m.ResetEventName()
		return nil
	case event.FieldEventDate:
		m.ResetEventDate()
		return nil
	case event.FieldEventDescription:
		m.ResetEventDescription()
		return nil
	case event.FieldLocation:
		m.ResetLocation()
		return nil
	case event.FieldCity:
		m.ResetCity()
		return nil
	case event.FieldState:
		m.ResetState()
		return nil
	case event.FieldParticipants:
		m.ResetParticipants()
		return nil
	case event.FieldCategoryTags:
		m.ResetCategoryTags()
		return nil
	case event.FieldSourcePostIds:
		m.ResetSourcePostIds()
		return nil
	case event.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case event.FieldExtractedBy:
		m.ResetExtractedBy()
		return nil
	case event.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	case event.FieldVerified:
		m.ResetVerified()
		return nil
	case event.FieldContentHash:
		m.ResetContentHash()
		return nil
	case event.FieldProjectID:
		m.ResetProjectID()
		return nil
	case event.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case event.FieldLatitude:
		m.ResetLatitude()
		return nil
	case event.FieldLongitude:
		m.ResetLongitude()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.post_links != nil {
		edges = append(edges, event.EdgePostLinks)
	}
	if m.actor_links != nil {
		edges = append(edges, event.EdgeActorLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgePostLinks:
		ids := make([]ent.Value, 0, len(m.post_links))
		for id := range m.post_links {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeActorLinks:
		ids := make([]ent.Value, 0, len(m.actor_links))
		for id := range m.actor_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpost_links != nil {
		edges = append(edges, event.EdgePostLinks)
	}
	if m.removedactor_links != nil {
		edges = append(edges, event.EdgeActorLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgePostLinks:
		ids := make([]ent.Value, 0, len(m.removedpost_links))
		for id := range m.removedpost_links {
			ids = append(ids, id)
		}
		return ids
	case event.EdgeActorLinks:
		ids := make([]ent.Value, 0, len(m.removedactor_links))
		for id := range m.removedactor_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpost_links {
		edges = append(edges, event.EdgePostLinks)
	}
	if m.clearedactor_links {
		edges = append(edges, event.EdgeActorLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgePostLinks:
		return m.clearedpost_links
	case event.EdgeActorLinks:
		return m.clearedactor_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgePostLinks:
		m.ResetPostLinks()
		return nil
	case event.EdgeActorLinks:
		m.ResetActorLinks()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// EventActorLinkMutation represents an operation that mutates the EventActorLink nodes in the graph.
type EventActorLinkMutation struct {
	config
	op               Op
	typ              string
	id               *string
	actor_handle     *string
	platform         *string
	actor_type       *string
	actor_id         *string
	unknown_actor_id *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	event            *string
	clearedevent     bool
	done             bool
	oldValue         func(context.Context) (*EventActorLink, error)
	predicates       []predicate.EventActorLink
}

var _ ent.Mutation = (*EventActorLinkMutation)(nil)

// eventactorlinkOption allows management of the mutation configuration using functional options.
type eventactorlinkOption func(*EventActorLinkMutation)

// newEventActorLinkMutation creates new mutation for the EventActorLink entity.
func newEventActorLinkMutation(c config, op Op, opts ...eventactorlinkOption) *EventActorLinkMutation {
	m := &EventActorLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeEventActorLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventActorLinkID sets the ID field of the mutation.
func withEventActorLinkID(id string) eventactorlinkOption {
	return func(m *EventActorLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *EventActorLink
		)
		m.oldValue = func(ctx context.Context) (*EventActorLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventActorLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventActorLink sets the old EventActorLink of the mutation.
func withEventActorLink(node *EventActorLink) eventactorlinkOption {
	return func(m *EventActorLinkMutation) {
		m.oldValue = func(context.Context) (*EventActorLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventActorLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventActorLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EventActorLink entities.
func (m *EventActorLinkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventActorLinkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventActorLinkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventActorLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventActorLinkMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventActorLinkMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventActorLink entity.
// If the EventActorLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventActorLinkMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventActorLinkMutation) ResetEventID() {
	m.event = nil
}

// SetActorHandle sets the "actor_handle" field.
func (m *EventActorLinkMutation) SetActorHandle(s string) {
	m.actor_handle = &s
}

// ActorHandle returns the value of the "actor_handle" field in the mutation.
func (m *EventActorLinkMutation) ActorHandle() (r string, exists bool) {
	v := m.actor_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldActorHandle returns the old "actor_handle" field's value of the EventActorLink entity.
// If the EventActorLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventActorLinkMutation) OldActorHandle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorHandle: %w", err)
	}
	return oldValue.ActorHandle, nil
}

// ResetActorHandle resets all changes to the "actor_handle" field.
func (m *EventActorLinkMutation) ResetActorHandle() {
	m.actor_handle = nil
}

// SetPlatform sets the "platform" field.
func (m *EventActorLinkMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *EventActorLinkMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the EventActorLink entity.
// If the EventActorLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventActorLinkMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *EventActorLinkMutation) ResetPlatform() {
	m.platform = nil
}

// SetActorType sets the "actor_type" field.
func (m *EventActorLinkMutation) SetActorType(s string) {
	m.actor_type = &s
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *EventActorLinkMutation) ActorType() (r string, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the EventActorLink entity.
// If the EventActorLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventActorLinkMutation) OldActorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ClearActorType clears the value of the "actor_type" field.
func (m *EventActorLinkMutation) ClearActorType() {
	m.actor_type = nil
	m.clearedFields[eventactorlink.FieldActorType] = struct{}{}
}

// ActorTypeCleared returns if the "actor_type" field was cleared in this mutation.
func (m *EventActorLinkMutation) ActorTypeCleared() bool {
	_, ok := m.clearedFields[eventactorlink.FieldActorType]
	return ok
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *EventActorLinkMutation) ResetActorType() {
	m.actor_type = nil
	delete(m.clearedFields, eventactorlink.FieldActorType)
}

// SetActorID sets the "actor_id" field.
func (m *EventActorLinkMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *EventActorLinkMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the EventActorLink entity.
// If the EventActorLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventActorLinkMutation) OldActorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *EventActorLinkMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[eventactorlink.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *EventActorLinkMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[eventactorlink.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *EventActorLinkMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, eventactorlink.FieldActorID)
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (m *EventActorLinkMutation) SetUnknownActorID(s string) {
	m.unknown_actor_id = &s
}

// UnknownActorID returns the value of the "unknown_actor_id" field in the mutation.
func (m *EventActorLinkMutation) UnknownActorID() (r string, exists bool) {
	v := m.unknown_actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnknownActorID returns the old "unknown_actor_id" field's value of the EventActorLink entity.
// If the EventActorLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventActorLinkMutation) OldUnknownActorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnknownActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnknownActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnknownActorID: %w", err)
	}
	return oldValue.UnknownActorID, nil
}

// ClearUnknownActorID clears the value of the "unknown_actor_id" field.
func (m *EventActorLinkMutation) ClearUnknownActorID() {
	m.unknown_actor_id = nil
	m.clearedFields[eventactorlink.FieldUnknownActorID] = struct{}{}
}

// UnknownActorIDCleared returns if the "unknown_actor_id" field was cleared in this mutation.
func (m *EventActorLinkMutation) UnknownActorIDCleared() bool {
	_, ok := m.clearedFields[eventactorlink.FieldUnknownActorID]
	return ok
}

// ResetUnknownActorID resets all changes to the "unknown_actor_id" field.
func (m *EventActorLinkMutation) ResetUnknownActorID() {
	m.unknown_actor_id = nil
	delete(m.clearedFields, eventactorlink.FieldUnknownActorID)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventActorLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventActorLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventActorLink entity.
// If the EventActorLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventActorLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventActorLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *EventActorLinkMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[eventactorlink.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *EventActorLinkMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *EventActorLinkMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *EventActorLinkMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// Where appends a list predicates to the EventActorLinkMutation builder.
func (m *EventActorLinkMutation) Where(ps ...predicate.EventActorLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventActorLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventActorLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventActorLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventActorLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventActorLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventActorLink).
func (m *EventActorLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventActorLinkMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.event != nil {
		fields = append(fields, eventactorlink.FieldEventID)
	}
	if m.actor_handle != nil {
		fields = append(fields, eventactorlink.FieldActorHandle)
	}
	if m.platform != nil {
		fields = append(fields, eventactorlink.FieldPlatform)
	}
	if m.actor_type != nil {
		fields = append(fields, eventactorlink.FieldActorType)
	}
	if m.actor_id != nil {
		fields = append(fields, eventactorlink.FieldActorID)
	}
	if m.unknown_actor_id != nil {
		fields = append(fields, eventactorlink.FieldUnknownActorID)
	}
	if m.created_at != nil {
		fields = append(fields, eventactorlink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventActorLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventactorlink.FieldEventID:
		return m.EventID()
	case eventactorlink.FieldActorHandle:
		return m.ActorHandle()
	case eventactorlink.FieldPlatform:
		return m.Platform()
	case eventactorlink.FieldActorType:
		return m.ActorType()
	case eventactorlink.FieldActorID:
		return m.ActorID()
	case eventactorlink.FieldUnknownActorID:
		return m.UnknownActorID()
	case eventactorlink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventActorLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventactorlink.FieldEventID:
		return m.OldEventID(ctx)
	case eventactorlink.FieldActorHandle:
		return m.OldActorHandle(ctx)
	case eventactorlink.FieldPlatform:
		return m.OldPlatform(ctx)
	case eventactorlink.FieldActorType:
		return m.OldActorType(ctx)
	case eventactorlink.FieldActorID:
		return m.OldActorID(ctx)
	case eventactorlink.FieldUnknownActorID:
		return m.OldUnknownActorID(ctx)
	case eventactorlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventActorLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventActorLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventactorlink.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventactorlink.FieldActorHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorHandle(v)
		return nil
	case eventactorlink.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case eventactorlink.FieldActorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case eventactorlink.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case eventactorlink.FieldUnknownActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnknownActorID(v)
		return nil
	case eventactorlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventActorLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventActorLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventActorLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventActorLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EventActorLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventActorLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventactorlink.FieldActorType) {
		fields = append(fields, eventactorlink.FieldActorType)
	}
	if m.FieldCleared(eventactorlink.FieldActorID) {
		fields = append(fields, eventactorlink.FieldActorID)
	}
	if m.FieldCleared(eventactorlink.FieldUnknownActorID) {
		fields = append(fields, eventactorlink.FieldUnknownActorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventActorLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventActorLinkMutation) ClearField(name string) error {
	switch name {
	case eventactorlink.FieldActorType:
		m.ClearActorType()
		return nil
	case eventactorlink.FieldActorID:
		m.ClearActorID()
		return nil
	case eventactorlink.FieldUnknownActorID:
		m.ClearUnknownActorID()
		return nil
	}
	return fmt.Errorf("unknown EventActorLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventActorLinkMutation) ResetField(name string) error {
	switch name {
	case eventactorlink.FieldEventID:
		m.ResetEventID()
		return nil
	case eventactorlink.FieldActorHandle:
		m.ResetActorHandle()
		return nil
	case eventactorlink.FieldPlatform:
		m.ResetPlatform()
		return nil
	case eventactorlink.FieldActorType:
		m.ResetActorType()
		return nil
	case eventactorlink.FieldActorID:
		m.ResetActorID()
		return nil
	case eventactorlink.FieldUnknownActorID:
		m.ResetUnknownActorID()
		return nil
	case eventactorlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventActorLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventActorLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.event != nil {
		edges = append(edges, eventactorlink.EdgeEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventActorLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case eventactorlink.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventActorLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventActorLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventActorLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevent {
		edges = append(edges, eventactorlink.EdgeEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventActorLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case eventactorlink.EdgeEvent:
		return m.clearedevent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventActorLinkMutation) ClearEdge(name string) error {
	switch name {
	case eventactorlink.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown EventActorLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventActorLinkMutation) ResetEdge(name string) error {
	switch name {
	case eventactorlink.EdgeEvent:
		m.ResetEvent()
		return nil
	}
	return fmt.Errorf("unknown EventActorLink edge %s", name)
}

// EventPostLinkMutation represents an operation that mutates the EventPostLink nodes in the graph.
type EventPostLinkMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	event         *string
	clearedevent  bool
	post          *string
	clearedpost   bool
	done          bool
	oldValue      func(context.Context) (*EventPostLink, error)
	predicates    []predicate.EventPostLink
}

var _ ent.Mutation = (*EventPostLinkMutation)(nil)

// eventpostlinkOption allows management of the mutation configuration using functional options.
type eventpostlinkOption func(*EventPostLinkMutation)

// newEventPostLinkMutation creates new mutation for the EventPostLink entity.
func newEventPostLinkMutation(c config, op Op, opts ...eventpostlinkOption) *EventPostLinkMutation {
	m := &EventPostLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeEventPostLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventPostLinkID sets the ID field of the mutation.
func withEventPostLinkID(id string) eventpostlinkOption {
	return func(m *EventPostLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *EventPostLink
		)
		m.oldValue = func(ctx context.Context) (*EventPostLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventPostLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventPostLink sets the old EventPostLink of the mutation.
func withEventPostLink(node *EventPostLink) eventpostlinkOption {
	return func(m *EventPostLinkMutation) {
		m.oldValue = func(context.Context) (*EventPostLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventPostLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventPostLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EventPostLink entities.
func (m *EventPostLinkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventPostLinkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventPostLinkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventPostLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventPostLinkMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventPostLinkMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventPostLink entity.
// If the EventPostLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventPostLinkMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventPostLinkMutation) ResetEventID() {
	m.event = nil
}

// SetPostID sets the "post_id" field.
func (m *EventPostLinkMutation) SetPostID(s string) {
	m.post = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *EventPostLinkMutation) PostID() (r string, exists bool) {
	v := m.post
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the EventPostLink entity.
// If the EventPostLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventPostLinkMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ResetPostID resets all changes to the "post_id" field.
func (m *EventPostLinkMutation) ResetPostID() {
	m.post = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventPostLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventPostLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventPostLink entity.
// If the EventPostLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventPostLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventPostLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *EventPostLinkMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[eventpostlink.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *EventPostLinkMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *EventPostLinkMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *EventPostLinkMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// ClearPost clears the "post" edge to the Post entity.
func (m *EventPostLinkMutation) ClearPost() {
	m.clearedpost = true
	m.clearedFields[eventpostlink.FieldPostID] = struct{}{}
}

// PostCleared reports if the "post" edge to the Post entity was cleared.
func (m *EventPostLinkMutation) PostCleared() bool {
	return m.clearedpost
}

// PostIDs returns the "post" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PostID instead. It exists only for internal usage by the builders.
func (m *EventPostLinkMutation) PostIDs() (ids []string) {
	if id := m.post; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPost resets all changes to the "post" edge.
func (m *EventPostLinkMutation) ResetPost() {
	m.post = nil
	m.clearedpost = false
}

// Where appends a list predicates to the EventPostLinkMutation builder.
func (m *EventPostLinkMutation) Where(ps ...predicate.EventPostLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventPostLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventPostLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventPostLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventPostLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventPostLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventPostLink).
func (m *EventPostLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventPostLinkMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.event != nil {
		fields = append(fields, eventpostlink.FieldEventID)
	}
	if m.post != nil {
		fields = append(fields, eventpostlink.FieldPostID)
	}
	if m.created_at != nil {
		fields = append(fields, eventpostlink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventPostLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventpostlink.FieldEventID:
		return m.EventID()
	case eventpostlink.FieldPostID:
		return m.PostID()
	case eventpostlink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventPostLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventpostlink.FieldEventID:
		return m.OldEventID(ctx)
	case eventpostlink.FieldPostID:
		return m.OldPostID(ctx)
	case eventpostlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventPostLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventPostLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventpostlink.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventpostlink.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case eventpostlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventPostLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventPostLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventPostLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventPostLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EventPostLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventPostLinkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventPostLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventPostLinkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EventPostLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventPostLinkMutation) ResetField(name string) error {
	switch name {
	case eventpostlink.FieldEventID:
		m.ResetEventID()
		return nil
	case eventpostlink.FieldPostID:
		m.ResetPostID()
		return nil
	case eventpostlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventPostLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventPostLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.event != nil {
		edges = append(edges, eventpostlink.EdgeEvent)
	}
	if m.post != nil {
		edges = append(edges, eventpostlink.EdgePost)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventPostLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case eventpostlink.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case eventpostlink.EdgePost:
		if id := m.post; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventPostLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventPostLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventPostLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevent {
		edges = append(edges, eventpostlink.EdgeEvent)
	}
	if m.clearedpost {
		edges = append(edges, eventpostlink.EdgePost)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventPostLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case eventpostlink.EdgeEvent:
		return m.clearedevent
	case eventpostlink.EdgePost:
		return m.clearedpost
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventPostLinkMutation) ClearEdge(name string) error {
	switch name {
	case eventpostlink.EdgeEvent:
		m.ClearEvent()
		return nil
	case eventpostlink.EdgePost:
		m.ClearPost()
		return nil
	}
	return fmt.Errorf("unknown EventPostLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventPostLinkMutation) ResetEdge(name string) error {
	switch name {
	case eventpostlink.EdgeEvent:
		m.ResetEvent()
		return nil
	case eventpostlink.EdgePost:
		m.ResetPost()
		return nil
	}
	return fmt.Errorf("unknown EventPostLink edge %s", name)
}

// LocationCoordinateMutation represents an operation that mutates the LocationCoordinate nodes in the graph.
type LocationCoordinateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	city          *string
	state         *string
	location_type *locationcoordinate.LocationType
	latitude      *float64
	addlatitude   *float64
	longitude     *float64
	addlongitude  *float64
	source        *string
	confidence    *float64
	addconfidence *float64
	last_verified *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LocationCoordinate, error)
	predicates    []predicate.LocationCoordinate
}

var _ ent.Mutation = (*LocationCoordinateMutation)(nil)

// locationcoordinateOption allows management of the mutation configuration using functional options.
type locationcoordinateOption func(*LocationCoordinateMutation)

// newLocationCoordinateMutation creates new mutation for the LocationCoordinate entity.
func newLocationCoordinateMutation(c config, op Op, opts ...locationcoordinateOption) *LocationCoordinateMutation {
	m := &LocationCoordinateMutation{
		config:        c,
		op:            op,
		typ:           TypeLocationCoordinate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLocationCoordinateID sets the ID field of the mutation.
func withLocationCoordinateID(id string) locationcoordinateOption {
	return func(m *LocationCoordinateMutation) {
		var (
			err   error
			once  sync.Once
			value *LocationCoordinate
		)
		m.oldValue = func(ctx context.Context) (*LocationCoordinate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LocationCoordinate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLocationCoordinate sets the old LocationCoordinate of the mutation.
func withLocationCoordinate(node *LocationCoordinate) locationcoordinateOption {
	return func(m *LocationCoordinateMutation) {
		m.oldValue = func(context.Context) (*LocationCoordinate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LocationCoordinateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LocationCoordinateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LocationCoordinate entities.
func (m *LocationCoordinateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LocationCoordinateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LocationCoordinateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LocationCoordinate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCity sets the "city" field.
func (m *LocationCoordinateMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *LocationCoordinateMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the LocationCoordinate entity.
// If the LocationCoordinate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationCoordinateMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *LocationCoordinateMutation) ClearCity() {
	m.city = nil
	m.clearedFields[locationcoordinate.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *LocationCoordinateMutation) CityCleared() bool {
	_, ok := m.clearedFields[locationcoordinate.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *LocationCoordinateMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, locationcoordinate.FieldCity)
}

// SetState sets the "state" field.
func (m *LocationCoordinateMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *LocationCoordinateMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the LocationCoordinate entity.
// If the LocationCoordinate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationCoordinateMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *LocationCoordinateMutation) ResetState() {
	m.state = nil
}

// SetLocationType sets the "location_type" field.
func (m *LocationCoordinateMutation) SetLocationType(lt locationcoordinate.LocationType) {
	m.location_type = &lt
}

// LocationType returns the value of the "location_type" field in the mutation.
func (m *LocationCoordinateMutation) LocationType() (r locationcoordinate.LocationType, exists bool) {
	v := m.location_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationType returns the old "location_type" field's value of the LocationCoordinate entity.
// If the LocationCoordinate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationCoordinateMutation) OldLocationType(ctx context.Context) (v locationcoordinate.LocationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationType: %w", err)
	}
	return oldValue.LocationType, nil
}

// ResetLocationType resets all changes to the "location_type" field.
func (m *LocationCoordinateMutation) ResetLocationType() {
	m.location_type = nil
}

// SetLatitude sets the "latitude" field.
func (m *LocationCoordinateMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *LocationCoordinateMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the LocationCoordinate entity.
// If the LocationCoordinate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationCoordinateMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *LocationCoordinateMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *LocationCoordinateMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *LocationCoordinateMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
}

// SetLongitude sets the "longitude" field.
func (m *LocationCoordinateMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *LocationCoordinateMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the LocationCoordinate entity.
// If the LocationCoordinate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationCoordinateMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *LocationCoordinateMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *LocationCoordinateMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *LocationCoordinateMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
}

// SetSource sets the "source" field.
func (m *LocationCoordinateMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LocationCoordinateMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the LocationCoordinate entity.
// If the LocationCoordinate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationCoordinateMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *LocationCoordinateMutation) ClearSource() {
	m.source = nil
	m.clearedFields[locationcoordinate.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *LocationCoordinateMutation) SourceCleared() bool {
	_, ok := m.clearedFields[locationcoordinate.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *LocationCoordinateMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, locationcoordinate.FieldSource)
}

// SetConfidence sets the "confidence" field.
func (m *LocationCoordinateMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *LocationCoordinateMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the LocationCoordinate entity.
// If the LocationCoordinate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationCoordinateMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *LocationCoordinateMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *LocationCoordinateMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *LocationCoordinateMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetLastVerified sets the "last_verified" field.
func (m *LocationCoordinateMutation) SetLastVerified(t time.Time) {
	m.last_verified = &t
}

// LastVerified returns the value of the "last_verified" field in the mutation.
func (m *LocationCoordinateMutation) LastVerified() (r time.Time, exists bool) {
	v := m.last_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldLastVerified returns the old "last_verified" field's value of the LocationCoordinate entity.
// If the LocationCoordinate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationCoordinateMutation) OldLastVerified(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastVerified: %w", err)
	}
	return oldValue.LastVerified, nil
}

// ResetLastVerified resets all changes to the "last_verified" field.
func (m *LocationCoordinateMutation) ResetLastVerified() {
	m.last_verified = nil
}

// Where appends a list predicates to the LocationCoordinateMutation builder.
func (m *LocationCoordinateMutation) Where(ps ...predicate.LocationCoordinate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LocationCoordinateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LocationCoordinateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LocationCoordinate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LocationCoordinateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LocationCoordinateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LocationCoordinate).
func (m *LocationCoordinateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LocationCoordinateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.city != nil {
		fields = append(fields, locationcoordinate.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, locationcoordinate.FieldState)
	}
	if m.location_type != nil {
		fields = append(fields, locationcoordinate.FieldLocationType)
	}
	if m.latitude != nil {
		fields = append(fields, locationcoordinate.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, locationcoordinate.FieldLongitude)
	}
	if m.source != nil {
		fields = append(fields, locationcoordinate.FieldSource)
	}
	if m.confidence != nil {
		fields = append(fields, locationcoordinate.FieldConfidence)
	}
	if m.last_verified != nil {
		fields = append(fields, locationcoordinate.FieldLastVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LocationCoordinateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case locationcoordinate.FieldCity:
		return m.City()
	case locationcoordinate.FieldState:
		return m.State()
	case locationcoordinate.FieldLocationType:
		return m.LocationType()
	case locationcoordinate.FieldLatitude:
		return m.Latitude()
	case locationcoordinate.FieldLongitude:
		return m.Longitude()
	case locationcoordinate.FieldSource:
		return m.Source()
	case locationcoordinate.FieldConfidence:
		return m.Confidence()
	case locationcoordinate.FieldLastVerified:
		return m.LastVerified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LocationCoordinateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case locationcoordinate.FieldCity:
		return m.OldCity(ctx)
	case locationcoordinate.FieldState:
		return m.OldState(ctx)
	case locationcoordinate.FieldLocationType:
		return m.OldLocationType(ctx)
	case locationcoordinate.FieldLatitude:
		return m.OldLatitude(ctx)
	case locationcoordinate.FieldLongitude:
		return m.OldLongitude(ctx)
	case locationcoordinate.FieldSource:
		return m.OldSource(ctx)
	case locationcoordinate.FieldConfidence:
		return m.OldConfidence(ctx)
	case locationcoordinate.FieldLastVerified:
		return m.OldLastVerified(ctx)
	}
	return nil, fmt.Errorf("unknown LocationCoordinate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocationCoordinateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case locationcoordinate.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case locationcoordinate.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case locationcoordinate.FieldLocationType:
		v, ok := value.(locationcoordinate.LocationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationType(v)
		return nil
	case locationcoordinate.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case locationcoordinate.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case locationcoordinate.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case locationcoordinate.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case locationcoordinate.FieldLastVerified:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastVerified(v)
		return nil
	}
	return fmt.Errorf("unknown LocationCoordinate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LocationCoordinateMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, locationcoordinate.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, locationcoordinate.FieldLongitude)
	}
	if m.addconfidence != nil {
		fields = append(fields, locationcoordinate.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LocationCoordinateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case locationcoordinate.FieldLatitude:
		return m.AddedLatitude()
	case locationcoordinate.FieldLongitude:
		return m.AddedLongitude()
	case locationcoordinate.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocationCoordinateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case locationcoordinate.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case locationcoordinate.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case locationcoordinate.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown LocationCoordinate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LocationCoordinateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(locationcoordinate.FieldCity) {
		fields = append(fields, locationcoordinate.FieldCity)
	}
	if m.FieldCleared(locationcoordinate.FieldSource) {
		fields = append(fields, locationcoordinate.FieldSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LocationCoordinateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LocationCoordinateMutation) ClearField(name string) error {
	switch name {
	case locationcoordinate.FieldCity:
		m.ClearCity()
		return nil
	case locationcoordinate.FieldSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown LocationCoordinate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LocationCoordinateMutation) ResetField(name string) error {
	switch name {
	case locationcoordinate.FieldCity:
		m.ResetCity()
		return nil
	case locationcoordinate.FieldState:
		m.ResetState()
		return nil
	case locationcoordinate.FieldLocationType:
		m.ResetLocationType()
		return nil
	case locationcoordinate.FieldLatitude:
		m.ResetLatitude()
		return nil
	case locationcoordinate.FieldLongitude:
		m.ResetLongitude()
		return nil
	case locationcoordinate.FieldSource:
		m.ResetSource()
		return nil
	case locationcoordinate.FieldConfidence:
		m.ResetConfidence()
		return nil
	case locationcoordinate.FieldLastVerified:
		m.ResetLastVerified()
		return nil
	}
	return fmt.Errorf("unknown LocationCoordinate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LocationCoordinateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LocationCoordinateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LocationCoordinateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LocationCoordinateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LocationCoordinateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LocationCoordinateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LocationCoordinateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LocationCoordinate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LocationCoordinateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LocationCoordinate edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                Op
	typ               string
	id                *string
	status            *pipelinerun.Status
	include_instagram *bool
	step_states       *map[string]models.StepState
	current_step      *string
	cancel_requested  *bool
	pod_id            *string
	pipeline_version  *string
	created_at        *time.Time
	started_at        *time.Time
	completed_at      *time.Time
	error_message     *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PipelineRun, error)
	predicates        []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetIncludeInstagram sets the "include_instagram" field.
func (m *PipelineRunMutation) SetIncludeInstagram(b bool) {
	m.include_instagram = &b
}

// IncludeInstagram returns the value of the "include_instagram" field in the mutation.
func (m *PipelineRunMutation) IncludeInstagram() (r bool, exists bool) {
	v := m.include_instagram
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludeInstagram returns the old "include_instagram" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldIncludeInstagram(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludeInstagram is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludeInstagram requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludeInstagram: %w", err)
	}
	return oldValue.IncludeInstagram, nil
}

// ResetIncludeInstagram resets all changes to the "include_instagram" field.
func (m *PipelineRunMutation) ResetIncludeInstagram() {
	m.include_instagram = nil
}

// SetStepStates sets the "step_states" field.
func (m *PipelineRunMutation) SetStepStates(ms map[string]models.StepState) {
	m.step_states = &ms
}

// StepStates returns the value of the "step_states" field in the mutation.
func (m *PipelineRunMutation) StepStates() (r map[string]models.StepState, exists bool) {
	v := m.step_states
	if v == nil {
		return
	}
	return *v, true
}

// OldStepStates returns the old "step_states" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStepStates(ctx context.Context) (v map[string]models.StepState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepStates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepStates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepStates: %w", err)
	}
	return oldValue.StepStates, nil
}

// ClearStepStates clears the value of the "step_states" field.
func (m *PipelineRunMutation) ClearStepStates() {
	m.step_states = nil
	m.clearedFields[pipelinerun.FieldStepStates] = struct{}{}
}

// StepStatesCleared returns if the "step_states" field was cleared in this mutation.
func (m *PipelineRunMutation) StepStatesCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStepStates]
	return ok
}

// ResetStepStates resets all changes to the "step_states" field.
func (m *PipelineRunMutation) ResetStepStates() {
	m.step_states = nil
	delete(m.clearedFields, pipelinerun.FieldStepStates)
}

// SetCurrentStep sets the "current_step" field.
func (m *PipelineRunMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *PipelineRunMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCurrentStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *PipelineRunMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[pipelinerun.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *PipelineRunMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *PipelineRunMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, pipelinerun.FieldCurrentStep)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *PipelineRunMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *PipelineRunMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *PipelineRunMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetPodID sets the "pod_id" field.
func (m *PipelineRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *PipelineRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *PipelineRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[pipelinerun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *PipelineRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *PipelineRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, pipelinerun.FieldPodID)
}

// SetPipelineVersion sets the "pipeline_version" field.
func (m *PipelineRunMutation) SetPipelineVersion(s string) {
	m.pipeline_version = &s
}

// PipelineVersion returns the value of the "pipeline_version" field in the mutation.
func (m *PipelineRunMutation) PipelineVersion() (r string, exists bool) {
	v := m.pipeline_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineVersion returns the old "pipeline_version" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPipelineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineVersion: %w", err)
	}
	return oldValue.PipelineVersion, nil
}

// ClearPipelineVersion clears the value of the "pipeline_version" field.
func (m *PipelineRunMutation) ClearPipelineVersion() {
	m.pipeline_version = nil
	m.clearedFields[pipelinerun.FieldPipelineVersion] = struct{}{}
}

// PipelineVersionCleared returns if the "pipeline_version" field was cleared in this mutation.
func (m *PipelineRunMutation) PipelineVersionCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldPipelineVersion]
	return ok
}

// ResetPipelineVersion resets all changes to the "pipeline_version" field.
func (m *PipelineRunMutation) ResetPipelineVersion() {
	m.pipeline_version = nil
	delete(m.clearedFields, pipelinerun.FieldPipelineVersion)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinerun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinerun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinerun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinerun.FieldErrorMessage)
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.include_instagram != nil {
		fields = append(fields, pipelinerun.FieldIncludeInstagram)
	}
	if m.step_states != nil {
		fields = append(fields, pipelinerun.FieldStepStates)
	}
	if m.current_step != nil {
		fields = append(fields, pipelinerun.FieldCurrentStep)
	}
	if m.cancel_requested != nil {
		fields = append(fields, pipelinerun.FieldCancelRequested)
	}
	if m.pod_id != nil {
		fields = append(fields, pipelinerun.FieldPodID)
	}
	if m.pipeline_version != nil {
		fields = append(fields, pipelinerun.FieldPipelineVersion)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinerun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldIncludeInstagram:
		return m.IncludeInstagram()
	case pipelinerun.FieldStepStates:
		return m.StepStates()
	case pipelinerun.FieldCurrentStep:
		return m.CurrentStep()
	case pipelinerun.FieldCancelRequested:
		return m.CancelRequested()
	case pipelinerun.FieldPodID:
		return m.PodID()
	case pipelinerun.FieldPipelineVersion:
		return m.PipelineVersion()
	case pipelinerun.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinerun.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldIncludeInstagram:
		return m.OldIncludeInstagram(ctx)
	case pipelinerun.FieldStepStates:
		return m.OldStepStates(ctx)
	case pipelinerun.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case pipelinerun.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case pipelinerun.FieldPodID:
		return m.OldPodID(ctx)
	case pipelinerun.FieldPipelineVersion:
		return m.OldPipelineVersion(ctx)
	case pipelinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinerun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldIncludeInstagram:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludeInstagram(v)
		return nil
	case pipelinerun.FieldStepStates:
		v, ok := value.(map[string]models.StepState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepStates(v)
		return nil
	case pipelinerun.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case pipelinerun.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case pipelinerun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case pipelinerun.FieldPipelineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineVersion(v)
		return nil
	case pipelinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinerun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldStepStates) {
		fields = append(fields, pipelinerun.FieldStepStates)
	}
	if m.FieldCleared(pipelinerun.FieldCurrentStep) {
		fields = append(fields, pipelinerun.FieldCurrentStep)
	}
	if m.FieldCleared(pipelinerun.FieldPodID) {
		fields = append(fields, pipelinerun.FieldPodID)
	}
	if m.FieldCleared(pipelinerun.FieldPipelineVersion) {
		fields = append(fields, pipelinerun.FieldPipelineVersion)
	}
	if m.FieldCleared(pipelinerun.FieldStartedAt) {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinerun.FieldErrorMessage) {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldStepStates:
		m.ClearStepStates()
		return nil
	case pipelinerun.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case pipelinerun.FieldPodID:
		m.ClearPodID()
		return nil
	case pipelinerun.FieldPipelineVersion:
		m.ClearPipelineVersion()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldIncludeInstagram:
		m.ResetIncludeInstagram()
		return nil
	case pipelinerun.FieldStepStates:
		m.ResetStepStates()
		return nil
	case pipelinerun.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case pipelinerun.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case pipelinerun.FieldPodID:
		m.ResetPodID()
		return nil
	case pipelinerun.FieldPipelineVersion:
		m.ResetPipelineVersion()
		return nil
	case pipelinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// PostMutation represents an operation that mutates the Post nodes in the graph.
type PostMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	platform                   *string
	external_post_id           *string
	author_handle              *string
	author_display_name        *string
	content_text               *string
	timestamp                  *time.Time
	media_urls                 *[]string
	appendmedia_urls           []string
	mentioned_handles          *[]string
	appendmentioned_handles    []string
	hashtags                   *[]string
	appendhashtags             []string
	like_count                 *int
	addlike_count              *int
	reply_count                *int
	addreply_count             *int
	retweet_count              *int
	addretweet_count           *int
	comment_count              *int
	addcomment_count           *int
	location_text              *string
	offline_media_url          *string
	processed_for_events       *bool
	event_processed_at         *time.Time
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	actor_links                map[string]struct{}
	removedactor_links         map[string]struct{}
	clearedactor_links         bool
	unknown_actor_links        map[string]struct{}
	removedunknown_actor_links map[string]struct{}
	clearedunknown_actor_links bool
	event_links                map[string]struct{}
	removedevent_links         map[string]struct{}
	clearedevent_links         bool
	done                       bool
	oldValue                   func(context.Context) (*Post, error)
	predicates                 []predicate.Post
}

var _ ent.Mutation = (*PostMutation)(nil)

// postOption allows management of the mutation configuration using functional options.
type postOption func(*PostMutation)

// newPostMutation creates new mutation for the Post entity.
func newPostMutation(c config, op Op, opts ...postOption) *PostMutation {
	m := &PostMutation{
		config:        c,
		op:            op,
		typ:           TypePost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPostID sets the ID field of the mutation.
func withPostID(id string) postOption {
	return func(m *PostMutation) {
		var (
			err   error
			once  sync.Once
			value *Post
		)
		m.oldValue = func(ctx context.Context) (*Post, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Post.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPost sets the old Post of the mutation.
func withPost(node *Post) postOption {
	return func(m *PostMutation) {
		m.oldValue = func(context.Context) (*Post, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Post entities.
func (m *PostMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PostMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PostMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Post.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *PostMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *PostMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *PostMutation) ResetPlatform() {
	m.platform = nil
}

// SetExternalPostID sets the "external_post_id" field.
func (m *PostMutation) SetExternalPostID(s string) {
	m.external_post_id = &s
}

// ExternalPostID returns the value of the "external_post_id" field in the mutation.
func (m *PostMutation) ExternalPostID() (r string, exists bool) {
	v := m.external_post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalPostID returns the old "external_post_id" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldExternalPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalPostID: %w", err)
	}
	return oldValue.ExternalPostID, nil
}

// ResetExternalPostID resets all changes to the "external_post_id" field.
func (m *PostMutation) ResetExternalPostID() {
	m.external_post_id = nil
}

// SetAuthorHandle sets the "author_handle" field.
func (m *PostMutation) SetAuthorHandle(s string) {
	m.author_handle = &s
}

// AuthorHandle returns the value of the "author_handle" field in the mutation.
func (m *PostMutation) AuthorHandle() (r string, exists bool) {
	v := m.author_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorHandle returns the old "author_handle" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldAuthorHandle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorHandle: %w", err)
	}
	return oldValue.AuthorHandle, nil
}

// ResetAuthorHandle resets all changes to the "author_handle" field.
func (m *PostMutation) ResetAuthorHandle() {
	m.author_handle = nil
}

// SetAuthorDisplayName sets the "author_display_name" field.
func (m *PostMutation) SetAuthorDisplayName(s string) {
	m.author_display_name = &s
}

// AuthorDisplayName returns the value of the "author_display_name" field in the mutation.
func (m *PostMutation) AuthorDisplayName() (r string, exists bool) {
	v := m.author_display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorDisplayName returns the old "author_display_name" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldAuthorDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorDisplayName: %w", err)
	}
	return oldValue.AuthorDisplayName, nil
}

// ClearAuthorDisplayName clears the value of the "author_display_name" field.
func (m *PostMutation) ClearAuthorDisplayName() {
	m.author_display_name = nil
	m.clearedFields[post.FieldAuthorDisplayName] = struct{}{}
}

// AuthorDisplayNameCleared returns if the "author_display_name" field was cleared in this mutation.
func (m *PostMutation) AuthorDisplayNameCleared() bool {
	_, ok := m.clearedFields[post.FieldAuthorDisplayName]
	return ok
}

// ResetAuthorDisplayName resets all changes to the "author_display_name" field.
func (m *PostMutation) ResetAuthorDisplayName() {
	m.author_display_name = nil
	delete(m.clearedFields, post.FieldAuthorDisplayName)
}

// SetContentText sets the "content_text" field.
func (m *PostMutation) SetContentText(s string) {
	m.content_text = &s
}

// ContentText returns the value of the "content_text" field in the mutation.
func (m *PostMutation) ContentText() (r string, exists bool) {
	v := m.content_text
	if v == nil {
		return
	}
	return *v, true
}

// OldContentText returns the old "content_text" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldContentText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentText: %w", err)
	}
	return oldValue.ContentText, nil
}

// ClearContentText clears the value of the "content_text" field.
func (m *PostMutation) ClearContentText() {
	m.content_text = nil
	m.clearedFields[post.FieldContentText] = struct{}{}
}

// ContentTextCleared returns if the "content_text" field was cleared in this mutation.
func (m *PostMutation) ContentTextCleared() bool {
	_, ok := m.clearedFields[post.FieldContentText]
	return ok
}

// ResetContentText resets all changes to the "content_text" field.
func (m *PostMutation) ResetContentText() {
	m.content_text = nil
	delete(m.clearedFields, post.FieldContentText)
}

// SetTimestamp sets the "timestamp" field.
func (m *PostMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PostMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldTimestamp(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ClearTimestamp clears the value of the "timestamp" field.
func (m *PostMutation) ClearTimestamp() {
	m.timestamp = nil
	m.clearedFields[post.FieldTimestamp] = struct{}{}
}

// TimestampCleared returns if the "timestamp" field was cleared in this mutation.
func (m *PostMutation) TimestampCleared() bool {
	_, ok := m.clearedFields[post.FieldTimestamp]
	return ok
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PostMutation) ResetTimestamp() {
	m.timestamp = nil
	delete(m.clearedFields, post.FieldTimestamp)
}

// SetMediaUrls sets the "media_urls" field.
func (m *PostMutation) SetMediaUrls(s []string) {
	m.media_urls = &s
	m.appendmedia_urls = nil
}

// MediaUrls returns the value of the "media_urls" field in the mutation.
func (m *PostMutation) MediaUrls() (r []string, exists bool) {
	v := m.media_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaUrls returns the old "media_urls" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldMediaUrls(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaUrls: %w", err)
	}
	return oldValue.MediaUrls, nil
}

// AppendMediaUrls adds s to the "media_urls" field.
func (m *PostMutation) AppendMediaUrls(s []string) {
	m.appendmedia_urls = append(m.appendmedia_urls, s...)
}

// AppendedMediaUrls returns the list of values that were appended to the "media_urls" field in this mutation.
func (m *PostMutation) AppendedMediaUrls() ([]string, bool) {
	if len(m.appendmedia_urls) == 0 {
		return nil, false
	}
	return m.appendmedia_urls, true
}

// ClearMediaUrls clears the value of the "media_urls" field.
func (m *PostMutation) ClearMediaUrls() {
	m.media_urls = nil
	m.appendmedia_urls = nil
	m.clearedFields[post.FieldMediaUrls] = struct{}{}
}

// MediaUrlsCleared returns if the "media_urls" field was cleared in this mutation.
func (m *PostMutation) MediaUrlsCleared() bool {
	_, ok := m.clearedFields[post.FieldMediaUrls]
	return ok
}

// ResetMediaUrls resets all changes to the "media_urls" field.
func (m *PostMutation) ResetMediaUrls() {
	m.media_urls = nil
	m.appendmedia_urls = nil
	delete(m.clearedFields, post.FieldMediaUrls)
}

// SetMentionedHandles sets the "mentioned_handles" field.
func (m *PostMutation) SetMentionedHandles(s []string) {
	m.mentioned_handles = &s
	m.appendmentioned_handles = nil
}

// MentionedHandles returns the value of the "mentioned_handles" field in the mutation.
func (m *PostMutation) MentionedHandles() (r []string, exists bool) {
	v := m.mentioned_handles
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionedHandles returns the old "mentioned_handles" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldMentionedHandles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionedHandles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionedHandles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionedHandles: %w", err)
	}
	return oldValue.MentionedHandles, nil
}

// AppendMentionedHandles adds s to the "mentioned_handles" field.
func (m *PostMutation) AppendMentionedHandles(s []string) {
	m.appendmentioned_handles = append(m.appendmentioned_handles, s...)
}

// AppendedMentionedHandles returns the list of values that were appended to the "mentioned_handles" field in this mutation.
func (m *PostMutation) AppendedMentionedHandles() ([]string, bool) {
	if len(m.appendmentioned_handles) == 0 {
		return nil, false
	}
	return m.appendmentioned_handles, true
}

// ClearMentionedHandles clears the value of the "mentioned_handles" field.
func (m *PostMutation) ClearMentionedHandles() {
	m.mentioned_handles = nil
	m.appendmentioned_handles = nil
	m.clearedFields[post.FieldMentionedHandles] = struct{}{}
}

// MentionedHandlesCleared returns if the "mentioned_handles" field was cleared in this mutation.
func (m *PostMutation) MentionedHandlesCleared() bool {
	_, ok := m.clearedFields[post.FieldMentionedHandles]
	return ok
}

// ResetMentionedHandles resets all changes to the "mentioned_handles" field.
func (m *PostMutation) ResetMentionedHandles() {
	m.mentioned_handles = nil
	m.appendmentioned_handles = nil
	delete(m.clearedFields, post.FieldMentionedHandles)
}

// SetHashtags sets the "hashtags" field.
func (m *PostMutation) SetHashtags(s []string) {
	m.hashtags = &s
	m.appendhashtags = nil
}

// Hashtags returns the value of the "hashtags" field in the mutation.
func (m *PostMutation) Hashtags() (r []string, exists bool) {
	v := m.hashtags
	if v == nil {
		return
	}
	return *v, true
}

// OldHashtags returns the old "hashtags" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldHashtags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashtags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashtags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashtags: %w", err)
	}
	return oldValue.Hashtags, nil
}

// AppendHashtags adds s to the "hashtags" field.
func (m *PostMutation) AppendHashtags(s []string) {
	m.appendhashtags = append(m.appendhashtags, s...)
}

// AppendedHashtags returns the list of values that were appended to the "hashtags" field in this mutation.
func (m *PostMutation) AppendedHashtags() ([]string, bool) {
	if len(m.appendhashtags) == 0 {
		return nil, false
	}
	return m.appendhashtags, true
}

// ClearHashtags clears the value of the "hashtags" field.
func (m *PostMutation) ClearHashtags() {
	m.hashtags = nil
	m.appendhashtags = nil
	m.clearedFields[post.FieldHashtags] = struct{}{}
}

// HashtagsCleared returns if the "hashtags" field was cleared in this mutation.
func (m *PostMutation) HashtagsCleared() bool {
	_, ok := m.clearedFields[post.FieldHashtags]
	return ok
}

// ResetHashtags resets all changes to the "hashtags" field.
func (m *PostMutation) ResetHashtags() {
	m.hashtags = nil
	m.appendhashtags = nil
	delete(m.clearedFields, post.FieldHashtags)
}

// SetLikeCount sets the "like_count" field.
func (m *PostMutation) SetLikeCount(i int) {
	m.like_count = &i
	m.addlike_count = nil
}

// LikeCount returns the value of the "like_count" field in the mutation.
func (m *PostMutation) LikeCount() (r int, exists bool) {
	v := m.like_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLikeCount returns the old "like_count" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldLikeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikeCount: %w", err)
	}
	return oldValue.LikeCount, nil
}

// AddLikeCount adds i to the "like_count" field.
func (m *PostMutation) AddLikeCount(i int) {
	if m.addlike_count != nil {
		*m.addlike_count += i
	} else {
		m.addlike_count = &i
	}
}

// AddedLikeCount returns the value that was added to the "like_count" field in this mutation.
func (m *PostMutation) AddedLikeCount() (r int, exists bool) {
	v := m.addlike_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLikeCount resets all changes to the "like_count" field.
func (m *PostMutation) ResetLikeCount() {
	m.like_count = nil
	m.addlike_count = nil
}

// SetReplyCount sets the "reply_count" field.
func (m *PostMutation) SetReplyCount(i int) {
	m.reply_count = &i
	m.addreply_count = nil
}

// ReplyCount returns the value of the "reply_count" field in the mutation.
func (m *PostMutation) ReplyCount() (r int, exists bool) {
	v := m.reply_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyCount returns the old "reply_count" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldReplyCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyCount: %w", err)
	}
	return oldValue.ReplyCount, nil
}

// AddReplyCount adds i to the "reply_count" field.
func (m *PostMutation) AddReplyCount(i int) {
	if m.addreply_count != nil {
		*m.addreply_count += i
	} else {
		m.addreply_count = &i
	}
}

// AddedReplyCount returns the value that was added to the "reply_count" field in this mutation.
func (m *PostMutation) AddedReplyCount() (r int, exists bool) {
	v := m.addreply_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReplyCount resets all changes to the "reply_count" field.
func (m *PostMutation) ResetReplyCount() {
	m.reply_count = nil
	m.addreply_count = nil
}

// SetRetweetCount sets the "retweet_count" field.
func (m *PostMutation) SetRetweetCount(i int) {
	m.retweet_count = &i
	m.addretweet_count = nil
}

// RetweetCount returns the value of the "retweet_count" field in the mutation.
func (m *PostMutation) RetweetCount() (r int, exists bool) {
	v := m.retweet_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetweetCount returns the old "retweet_count" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldRetweetCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetweetCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetweetCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetweetCount: %w", err)
	}
	return oldValue.RetweetCount, nil
}

// AddRetweetCount adds i to the "retweet_count" field.
func (m *PostMutation) AddRetweetCount(i int) {
	if m.addretweet_count != nil {
		*m.addretweet_count += i
	} else {
		m.addretweet_count = &i
	}
}

// AddedRetweetCount returns the value that was added to the "retweet_count" field in this mutation.
func (m *PostMutation) AddedRetweetCount() (r int, exists bool) {
	v := m.addretweet_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetweetCount resets all changes to the "retweet_count" field.
func (m *PostMutation) ResetRetweetCount() {
	m.retweet_count = nil
	m.addretweet_count = nil
}

// SetCommentCount sets the "comment_count" field.
func (m *PostMutation) SetCommentCount(i int) {
	m.comment_count = &i
	m.addcomment_count = nil
}

// CommentCount returns the value of the "comment_count" field in the mutation.
func (m *PostMutation) CommentCount() (r int, exists bool) {
	v := m.comment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentCount returns the old "comment_count" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldCommentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentCount: %w", err)
	}
	return oldValue.CommentCount, nil
}

// AddCommentCount adds i to the "comment_count" field.
func (m *PostMutation) AddCommentCount(i int) {
	if m.addcomment_count != nil {
		*m.addcomment_count += i
	} else {
		m.addcomment_count = &i
	}
}

// AddedCommentCount returns the value that was added to the "comment_count" field in this mutation.
func (m *PostMutation) AddedCommentCount() (r int, exists bool) {
	v := m.addcomment_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommentCount resets all changes to the "comment_count" field.
func (m *PostMutation) ResetCommentCount() {
	m.comment_count = nil
	m.addcomment_count = nil
}

// SetLocationText sets the "location_text" field.
func (m *PostMutation) SetLocationText(s string) {
	m.location_text = &s
}

// LocationText returns the value of the "location_text" field in the mutation.
func (m *PostMutation) LocationText() (r string, exists bool) {
	v := m.location_text
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationText returns the old "location_text" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldLocationText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationText: %w", err)
	}
	return oldValue.LocationText, nil
}

// ClearLocationText clears the value of the "location_text" field.
func (m *PostMutation) ClearLocationText() {
	m.location_text = nil
	m.clearedFields[post.FieldLocationText] = struct{}{}
}

// LocationTextCleared returns if the "location_text" field was cleared in this mutation.
func (m *PostMutation) LocationTextCleared() bool {
	_, ok := m.clearedFields[post.FieldLocationText]
	return ok
}

// ResetLocationText resets all changes to the "location_text" field.
func (m *PostMutation) ResetLocationText() {
	m.location_text = nil
	delete(m.clearedFields, post.FieldLocationText)
}

// SetOfflineMediaURL sets the "offline_media_url" field.
func (m *PostMutation) SetOfflineMediaURL(s string) {
	m.offline_media_url = &s
}

// OfflineMediaURL returns the value of the "offline_media_url" field in the mutation.
func (m *PostMutation) OfflineMediaURL() (r string, exists bool) {
	v := m.offline_media_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOfflineMediaURL returns the old "offline_media_url" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldOfflineMediaURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfflineMediaURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfflineMediaURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfflineMediaURL: %w", err)
	}
	return oldValue.OfflineMediaURL, nil
}

// ClearOfflineMediaURL clears the value of the "offline_media_url" field.
func (m *PostMutation) ClearOfflineMediaURL() {
	m.offline_media_url = nil
	m.clearedFields[post.FieldOfflineMediaURL] = struct{}{}
}

// OfflineMediaURLCleared returns if the "offline_media_url" field was cleared in this mutation.
func (m *PostMutation) OfflineMediaURLCleared() bool {
	_, ok := m.clearedFields[post.FieldOfflineMediaURL]
	return ok
}

// ResetOfflineMediaURL resets all changes to the "offline_media_url" field.
func (m *PostMutation) ResetOfflineMediaURL() {
	m.offline_media_url = nil
	delete(m.clearedFields, post.FieldOfflineMediaURL)
}

// SetProcessedForEvents sets the "processed_for_events" field.
func (m *PostMutation) SetProcessedForEvents(b bool) {
	m.processed_for_events = &b
}

// ProcessedForEvents returns the value of the "processed_for_events" field in the mutation.
func (m *PostMutation) ProcessedForEvents() (r bool, exists bool) {
	v := m.processed_for_events
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedForEvents returns the old "processed_for_events" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldProcessedForEvents(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedForEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedForEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedForEvents: %w", err)
	}
	return oldValue.ProcessedForEvents, nil
}

// ResetProcessedForEvents resets all changes to the "processed_for_events" field.
func (m *PostMutation) ResetProcessedForEvents() {
	m.processed_for_events = nil
}

// SetEventProcessedAt sets the "event_processed_at" field.
func (m *PostMutation) SetEventProcessedAt(t time.Time) {
	m.event_processed_at = &t
}

// EventProcessedAt returns the value of the "event_processed_at" field in the mutation.
func (m *PostMutation) EventProcessedAt() (r time.Time, exists bool) {
	v := m.event_processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEventProcessedAt returns the old "event_processed_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldEventProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventProcessedAt: %w", err)
	}
	return oldValue.EventProcessedAt, nil
}

// ClearEventProcessedAt clears the value of the "event_processed_at" field.
func (m *PostMutation) ClearEventProcessedAt() {
	m.event_processed_at = nil
	m.clearedFields[post.FieldEventProcessedAt] = struct{}{}
}

// EventProcessedAtCleared returns if the "event_processed_at" field was cleared in this mutation.
func (m *PostMutation) EventProcessedAtCleared() bool {
	_, ok := m.clearedFields[post.FieldEventProcessedAt]
	return ok
}

// ResetEventProcessedAt resets all changes to the "event_processed_at" field.
func (m *PostMutation) ResetEventProcessedAt() {
	m.event_processed_at = nil
	delete(m.clearedFields, post.FieldEventProcessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PostMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PostMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PostMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddActorLinkIDs adds the "actor_links" edge to the PostActor entity by ids.
func (m *PostMutation) AddActorLinkIDs(ids ...string) {
	if m.actor_links == nil {
		m.actor_links = make(map[string]struct{})
	}
	for i := range ids {
		m.actor_links[ids[i]] = struct{}{}
	}
}

// ClearActorLinks clears the "actor_links" edge to the PostActor entity.
func (m *PostMutation) ClearActorLinks() {
	m.clearedactor_links = true
}

// ActorLinksCleared reports if the "actor_links" edge to the PostActor entity was cleared.
func (m *PostMutation) ActorLinksCleared() bool {
	return m.clearedactor_links
}

// RemoveActorLinkIDs removes the "actor_links" edge to the PostActor entity by IDs.
func (m *PostMutation) RemoveActorLinkIDs(ids ...string) {
	if m.removedactor_links == nil {
		m.removedactor_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.actor_links, ids[i])
		m.removedactor_links[ids[i]] = struct{}{}
	}
}

// RemovedActorLinks returns the removed IDs of the "actor_links" edge to the PostActor entity.
func (m *PostMutation) RemovedActorLinksIDs() (ids []string) {
	for id := range m.removedactor_links {
		ids = append(ids, id)
	}
	return
}

// ActorLinksIDs returns the "actor_links" edge IDs in the mutation.
func (m *PostMutation) ActorLinksIDs() (ids []string) {
	for id := range m.actor_links {
		ids = append(ids, id)
	}
	return
}

// ResetActorLinks resets all changes to the "actor_links" edge.
func (m *PostMutation) ResetActorLinks() {
	m.actor_links = nil
	m.clearedactor_links = false
	m.removedactor_links = nil
}

// AddUnknownActorLinkIDs adds the "unknown_actor_links" edge to the PostUnknownActor entity by ids.
func (m *PostMutation) AddUnknownActorLinkIDs(ids ...string) {
	if m.unknown_actor_links == nil {
		m.unknown_actor_links = make(map[string]struct{})
	}
	for i := range ids {
		m.unknown_actor_links[ids[i]] = struct{}{}
	}
}

// ClearUnknownActorLinks clears the "unknown_actor_links" edge to the PostUnknownActor entity.
func (m *PostMutation) ClearUnknownActorLinks() {
	m.clearedunknown_actor_links = true
}

// UnknownActorLinksCleared reports if the "unknown_actor_links" edge to the PostUnknownActor entity was cleared.
func (m *PostMutation) UnknownActorLinksCleared() bool {
	return m.clearedunknown_actor_links
}

// RemoveUnknownActorLinkIDs removes the "unknown_actor_links" edge to the PostUnknownActor entity by IDs.
func (m *PostMutation) RemoveUnknownActorLinkIDs(ids ...string) {
	if m.removedunknown_actor_links == nil {
		m.removedunknown_actor_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.unknown_actor_links, ids[i])
		m.removedunknown_actor_links[ids[i]] = struct{}{}
	}
}

// RemovedUnknownActorLinks returns the removed IDs of the "unknown_actor_links" edge to the PostUnknownActor entity.
func (m *PostMutation) RemovedUnknownActorLinksIDs() (ids []string) {
	for id := range m.removedunknown_actor_links {
		ids = append(ids, id)
	}
	return
}

// UnknownActorLinksIDs returns the "unknown_actor_links" edge IDs in the mutation.
func (m *PostMutation) UnknownActorLinksIDs() (ids []string) {
	for id := range m.unknown_actor_links {
		ids = append(ids, id)
	}
	return
}

// ResetUnknownActorLinks resets all changes to the "unknown_actor_links" edge.
func (m *PostMutation) ResetUnknownActorLinks() {
	m.unknown_actor_links = nil
	m.clearedunknown_actor_links = false
	m.removedunknown_actor_links = nil
}

// AddEventLinkIDs adds the "event_links" edge to the EventPostLink entity by ids.
func (m *PostMutation) AddEventLinkIDs(ids ...string) {
	if m.event_links == nil {
		m.event_links = make(map[string]struct{})
	}
	for i := range ids {
		m.event_links[ids[i]] = struct{}{}
	}
}

// ClearEventLinks clears the "event_links" edge to the EventPostLink entity.
func (m *PostMutation) ClearEventLinks() {
	m.clearedevent_links = true
}

// EventLinksCleared reports if the "event_links" edge to the EventPostLink entity was cleared.
func (m *PostMutation) EventLinksCleared() bool {
	return m.clearedevent_links
}

// RemoveEventLinkIDs removes the "event_links" edge to the EventPostLink entity by IDs.
func (m *PostMutation) RemoveEventLinkIDs(ids ...string) {
	if m.removedevent_links == nil {
		m.removedevent_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.event_links, ids[i])
		m.removedevent_links[ids[i]] = struct{}{}
	}
}

// RemovedEventLinks returns the removed IDs of the "event_links" edge to the EventPostLink entity.
func (m *PostMutation) RemovedEventLinksIDs() (ids []string) {
	for id := range m.removedevent_links {
		ids = append(ids, id)
	}
	return
}

// EventLinksIDs returns the "event_links" edge IDs in the mutation.
func (m *PostMutation) EventLinksIDs() (ids []string) {
	for id := range m.event_links {
		ids = append(ids, id)
	}
	return
}

// ResetEventLinks resets all changes to the "event_links" edge.
func (m *PostMutation) ResetEventLinks() {
	m.event_links = nil
	m.clearedevent_links = false
	m.removedevent_links = nil
}

// Where appends a list predicates to the PostMutation builder.
func (m *PostMutation) Where(ps ...predicate.Post) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Post, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Post).
func (m *PostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PostMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.platform != nil {
		fields = append(fields, post.FieldPlatform)
	}
	if m.external_post_id != nil {
		fields = append(fields, post.FieldExternalPostID)
	}
	if m.author_handle != nil {
		fields = append(fields, post.FieldAuthorHandle)
	}
	if m.author_display_name != nil {
		fields = append(fields, post.FieldAuthorDisplayName)
	}
	if m.content_text != nil {
		fields = append(fields, post.FieldContentText)
	}
	if m.timestamp != nil {
		fields = append(fields, post.FieldTimestamp)
	}
	if m.media_urls != nil {
		fields = append(fields, post.FieldMediaUrls)
	}
	if m.mentioned_handles != nil {
		fields = append(fields, post.FieldMentionedHandles)
	}
	if m.hashtags != nil {
		fields = append(fields, post.FieldHashtags)
	}
	if m.like_count != nil {
		fields = append(fields, post.FieldLikeCount)
	}
	if m.reply_count != nil {
		fields = append(fields, post.FieldReplyCount)
	}
	if m.retweet_count != nil {
		fields = append(fields, post.FieldRetweetCount)
	}
	if m.comment_count != nil {
		fields = append(fields, post.FieldCommentCount)
	}
	if m.location_text != nil {
		fields = append(fields, post.FieldLocationText)
	}
	if m.offline_media_url != nil {
		fields = append(fields, post.FieldOfflineMediaURL)
	}
	if m.processed_for_events != nil {
		fields = append(fields, post.FieldProcessedForEvents)
	}
	if m.event_processed_at != nil {
		fields = append(fields, post.FieldEventProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, post.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case post.FieldPlatform:
		return m.Platform()
	case post.FieldExternalPostID:
		return m.ExternalPostID()
	case post.FieldAuthorHandle:
		return m.AuthorHandle()
	case post.FieldAuthorDisplayName:
		return m.AuthorDisplayName()
	case post.FieldContentText:
		return m.ContentText()
	case post.FieldTimestamp:
		return m.Timestamp()
	case post.FieldMediaUrls:
		return m.MediaUrls()
	case post.FieldMentionedHandles:
		return m.MentionedHandles()
	case post.FieldHashtags:
		return m.Hashtags()
	case post.FieldLikeCount:
		return m.LikeCount()
	case post.FieldReplyCount:
		return m.ReplyCount()
	case post.FieldRetweetCount:
		return m.RetweetCount()
	case post.FieldCommentCount:
		return m.CommentCount()
	case post.FieldLocationText:
		return m.LocationText()
	case post.FieldOfflineMediaURL:
		return m.OfflineMediaURL()
	case post.FieldProcessedForEvents:
		return m.ProcessedForEvents()
	case post.FieldEventProcessedAt:
		return m.EventProcessedAt()
	case post.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case post.FieldPlatform:
		return m.OldPlatform(ctx)
	case post.FieldExternalPostID:
		return m.OldExternalPostID(ctx)
	case post.FieldAuthorHandle:
		return m.OldAuthorHandle(ctx)
	case post.FieldAuthorDisplayName:
		return m.OldAuthorDisplayName(ctx)
	case post.FieldContentText:
		return m.OldContentText(ctx)
	case post.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case post.FieldMediaUrls:
		return m.OldMediaUrls(ctx)
	case post.FieldMentionedHandles:
		return m.OldMentionedHandles(ctx)
	case post.FieldHashtags:
		return m.OldHashtags(ctx)
	case post.FieldLikeCount:
		return m.OldLikeCount(ctx)
	case post.FieldReplyCount:
		return m.OldReplyCount(ctx)
	case post.FieldRetweetCount:
		return m.OldRetweetCount(ctx)
	case post.FieldCommentCount:
		return m.OldCommentCount(ctx)
	case post.FieldLocationText:
		return m.OldLocationText(ctx)
	case post.FieldOfflineMediaURL:
		return m.OldOfflineMediaURL(ctx)
	case post.FieldProcessedForEvents:
		return m.OldProcessedForEvents(ctx)
	case post.FieldEventProcessedAt:
		return m.OldEventProcessedAt(ctx)
	case post.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Post field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case post.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case post.FieldExternalPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalPostID(v)
		return nil
	case post.FieldAuthorHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorHandle(v)
		return nil
	case post.FieldAuthorDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorDisplayName(v)
		return nil
	case post.FieldContentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentText(v)
		return nil
	case post.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case post.FieldMediaUrls:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaUrls(v)
		return nil
	case post.FieldMentionedHandles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionedHandles(v)
		return nil
	case post.FieldHashtags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashtags(v)
		return nil
	case post.FieldLikeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikeCount(v)
		return nil
	case post.FieldReplyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyCount(v)
		return nil
	case post.FieldRetweetCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetweetCount(v)
		return nil
	case post.FieldCommentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentCount(v)
		return nil
	case post.FieldLocationText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationText(v)
		return nil
	case post.FieldOfflineMediaURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfflineMediaURL(v)
		return nil
	case post.FieldProcessedForEvents:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedForEvents(v)
		return nil
	case post.FieldEventProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventProcessedAt(v)
		return nil
	case post.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Post field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PostMutation) AddedFields() []string {
	var fields []string
	if m.addlike_count != nil {
		fields = append(fields, post.FieldLikeCount)
	}
	if m.addreply_count != nil {
		fields = append(fields, post.FieldReplyCount)
	}
	if m.addretweet_count != nil {
		fields = append(fields, post.FieldRetweetCount)
	}
	if m.addcomment_count != nil {
		fields = append(fields, post.FieldCommentCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case post.FieldLikeCount:
		return m.AddedLikeCount()
	case post.FieldReplyCount:
		return m.AddedReplyCount()
	case post.FieldRetweetCount:
		return m.AddedRetweetCount()
	case post.FieldCommentCount:
		return m.AddedCommentCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case post.FieldLikeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikeCount(v)
		return nil
	case post.FieldReplyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReplyCount(v)
		return nil
	case post.FieldRetweetCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetweetCount(v)
		return nil
	case post.FieldCommentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentCount(v)
		return nil
	}
	return fmt.Errorf("unknown Post numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(post.FieldAuthorDisplayName) {
		fields = append(fields, post.FieldAuthorDisplayName)
	}
	if m.FieldCleared(post.FieldContentText) {
		fields = append(fields, post.FieldContentText)
	}
	if m.FieldCleared(post.FieldTimestamp) {
		fields = append(fields, post.FieldTimestamp)
	}
	if m.FieldCleared(post.FieldMediaUrls) {
		fields = append(fields, post.FieldMediaUrls)
	}
	if m.FieldCleared(post.FieldMentionedHandles) {
		fields = append(fields, post.FieldMentionedHandles)
	}
	if m.FieldCleared(post.FieldHashtags) {
		fields = append(fields, post.FieldHashtags)
	}
	if m.FieldCleared(post.FieldLocationText) {
		fields = append(fields, post.FieldLocationText)
	}
	if m.FieldCleared(post.FieldOfflineMediaURL) {
		fields = append(fields, post.FieldOfflineMediaURL)
	}
	if m.FieldCleared(post.FieldEventProcessedAt) {
		fields = append(fields, post.FieldEventProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PostMutation) ClearField(name string) error {
	switch name {
	case post.FieldAuthorDisplayName:
		m.ClearAuthorDisplayName()
		return nil
	case post.FieldContentText:
		m.ClearContentText()
		return nil
	case post.FieldTimestamp:
		m.ClearTimestamp()
		return nil
	case post.FieldMediaUrls:
		m.ClearMediaUrls()
		return nil
	case post.FieldMentionedHandles:
		m.ClearMentionedHandles()
		return nil
	case post.FieldHashtags:
		m.ClearHashtags()
		return nil
	case post.FieldLocationText:
		m.ClearLocationText()
		return nil
	case post.FieldOfflineMediaURL:
		m.ClearOfflineMediaURL()
		return nil
	case post.FieldEventProcessedAt:
		m.ClearEventProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Post nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PostMutation) ResetField(name string) error {
	switch name {
	case post.FieldPlatform:
		m.ResetPlatform()
		return nil
	case post.FieldExternalPostID:
		m.ResetExternalPostID()
		return nil
	case post.FieldAuthorHandle:
		m.ResetAuthorHandle()
		return nil
	case post.FieldAuthorDisplayName:
		m.ResetAuthorDisplayName()
		return nil
	case post.FieldContentText:
		m.ResetContentText()
		return nil
	case post.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case post.FieldMediaUrls:
		m.ResetMediaUrls()
		return nil
	case post.FieldMentionedHandles:
		m.ResetMentionedHandles()
		return nil
	case post.FieldHashtags:
		m.ResetHashtags()
		return nil
	case post.FieldLikeCount:
		m.ResetLikeCount()
		return nil
	case post.FieldReplyCount:
		m.ResetReplyCount()
		return nil
	case post.FieldRetweetCount:
		m.ResetRetweetCount()
		return nil
	case post.FieldCommentCount:
		m.ResetCommentCount()
		return nil
	case post.FieldLocationText:
		m.ResetLocationText()
		return nil
	case post.FieldOfflineMediaURL:
		m.ResetOfflineMediaURL()
		return nil
	case post.FieldProcessedForEvents:
		m.ResetProcessedForEvents()
		return nil
	case post.FieldEventProcessedAt:
		m.ResetEventProcessedAt()
		return nil
	case post.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Post field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PostMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.actor_links != nil {
		edges = append(edges, post.EdgeActorLinks)
	}
	if m.unknown_actor_links != nil {
		edges = append(edges, post.EdgeUnknownActorLinks)
	}
	if m.event_links != nil {
		edges = append(edges, post.EdgeEventLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PostMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case post.EdgeActorLinks:
		ids := make([]ent.Value, 0, len(m.actor_links))
		for id := range m.actor_links {
			ids = append(ids, id)
		}
		return ids
	case post.EdgeUnknownActorLinks:
		ids := make([]ent.Value, 0, len(m.unknown_actor_links))
		for id := range m.unknown_actor_links {
			ids = append(ids, id)
		}
		return ids
	case post.EdgeEventLinks:
		ids := make([]ent.Value, 0, len(m.event_links))
		for id := range m.event_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedactor_links != nil {
		edges = append(edges, post.EdgeActorLinks)
	}
	if m.removedunknown_actor_links != nil {
		edges = append(edges, post.EdgeUnknownActorLinks)
	}
	if m.removedevent_links != nil {
		edges = append(edges, post.EdgeEventLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PostMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case post.EdgeActorLinks:
		ids := make([]ent.Value, 0, len(m.removedactor_links))
		for id := range m.removedactor_links {
			ids = append(ids, id)
		}
		return ids
	case post.EdgeUnknownActorLinks:
		ids := make([]ent.Value, 0, len(m.removedunknown_actor_links))
		for id := range m.removedunknown_actor_links {
			ids = append(ids, id)
		}
		return ids
	case post.EdgeEventLinks:
		ids := make([]ent.Value, 0, len(m.removedevent_links))
		for id := range m.removedevent_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedactor_links {
		edges = append(edges, post.EdgeActorLinks)
	}
	if m.clearedunknown_actor_links {
		edges = append(edges, post.EdgeUnknownActorLinks)
	}
	if m.clearedevent_links {
		edges = append(edges, post.EdgeEventLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PostMutation) EdgeCleared(name string) bool {
	switch name {
	case post.EdgeActorLinks:
		return m.clearedactor_links
	case post.EdgeUnknownActorLinks:
		return m.clearedunknown_actor_links
	case post.EdgeEventLinks:
		return m.clearedevent_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PostMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Post unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PostMutation) ResetEdge(name string) error {
	switch name {
	case post.EdgeActorLinks:
		m.ResetActorLinks()
		return nil
	case post.EdgeUnknownActorLinks:
		m.ResetUnknownActorLinks()
		return nil
	case post.EdgeEventLinks:
		m.ResetEventLinks()
		return nil
	}
	return fmt.Errorf("unknown Post edge %s", name)
}

// PostActorMutation represents an operation that mutates the PostActor nodes in the graph.
type PostActorMutation struct {
	config
	op                Op
	typ               string
	id                *string
	relationship_type *postactor.RelationshipType
	clearedFields     map[string]struct{}
	post              *string
	clearedpost       bool
	actor             *string
	clearedactor      bool
	done              bool
	oldValue          func(context.Context) (*PostActor, error)
	predicates        []predicate.PostActor
}

var _ ent.Mutation = (*PostActorMutation)(nil)

// postactorOption allows management of the mutation configuration using functional options.
type postactorOption func(*PostActorMutation)

// newPostActorMutation creates new mutation for the PostActor entity.
func newPostActorMutation(c config, op Op, opts ...postactorOption) *PostActorMutation {
	m := &PostActorMutation{
		config:        c,
		op:            op,
		typ:           TypePostActor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPostActorID sets the ID field of the mutation.
func withPostActorID(id string) postactorOption {
	return func(m *PostActorMutation) {
		var (
			err   error
			once  sync.Once
			value *PostActor
		)
		m.oldValue = func(ctx context.Context) (*PostActor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PostActor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPostActor sets the old PostActor of the mutation.
func withPostActor(node *PostActor) postactorOption {
	return func(m *PostActorMutation) {
		m.oldValue = func(context.Context) (*PostActor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PostActorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PostActorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PostActor entities.
func (m *PostActorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PostActorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PostActorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PostActor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPostID sets the "post_id" field.
func (m *PostActorMutation) SetPostID(s string) {
	m.post = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *PostActorMutation) PostID() (r string, exists bool) {
	v := m.post
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the PostActor entity.
// If the PostActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostActorMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ResetPostID resets all changes to the "post_id" field.
func (m *PostActorMutation) ResetPostID() {
	m.post = nil
}

// SetActorID sets the "actor_id" field.
func (m *PostActorMutation) SetActorID(s string) {
	m.actor = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *PostActorMutation) ActorID() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the PostActor entity.
// If the PostActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostActorMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *PostActorMutation) ResetActorID() {
	m.actor = nil
}

// SetRelationshipType sets the "relationship_type" field.
func (m *PostActorMutation) SetRelationshipType(pt postactor.RelationshipType) {
	m.relationship_type = &pt
}

// RelationshipType returns the value of the "relationship_type" field in the mutation.
func (m *PostActorMutation) RelationshipType() (r postactor.RelationshipType, exists bool) {
	v := m.relationship_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationshipType returns the old "relationship_type" field's value of the PostActor entity.
// If the PostActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostActorMutation) OldRelationshipType(ctx context.Context) (v postactor.RelationshipType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationshipType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationshipType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationshipType: %w", err)
	}
	return oldValue.RelationshipType, nil
}

// ResetRelationshipType resets all changes to the "relationship_type" field.
func (m *PostActorMutation) ResetRelationshipType() {
	m.relationship_type = nil
}

// ClearPost clears the "post" edge to the Post entity.
func (m *PostActorMutation) ClearPost() {
	m.clearedpost = true
	m.clearedFields[postactor.FieldPostID] = struct{}{}
}

// PostCleared reports if the "post" edge to the Post entity was cleared.
func (m *PostActorMutation) PostCleared() bool {
	return m.clearedpost
}

// PostIDs returns the "post" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PostID instead. It exists only for internal usage by the builders.
func (m *PostActorMutation) PostIDs() (ids []string) {
	if id := m.post; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPost resets all changes to the "post" edge.
func (m *PostActorMutation) ResetPost() {
	m.post = nil
	m.clearedpost = false
}

// ClearActor clears the "actor" edge to the Actor entity.
func (m *PostActorMutation) ClearActor() {
	m.clearedactor = true
	m.clearedFields[postactor.FieldActorID] = struct{}{}
}

// ActorCleared reports if the "actor" edge to the Actor entity was cleared.
func (m *PostActorMutation) ActorCleared() bool {
	return m.clearedactor
}

// ActorIDs returns the "actor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ActorID instead. It exists only for internal usage by the builders.
func (m *PostActorMutation) ActorIDs() (ids []string) {
	if id := m.actor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetActor resets all changes to the "actor" edge.
func (m *PostActorMutation) ResetActor() {
	m.actor = nil
	m.clearedactor = false
}

// Where appends a list predicates to the PostActorMutation builder.
func (m *PostActorMutation) Where(ps ...predicate.PostActor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PostActorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PostActorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PostActor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PostActorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PostActorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PostActor).
func (m *PostActorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PostActorMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.post != nil {
		fields = append(fields, postactor.FieldPostID)
	}
	if m.actor != nil {
		fields = append(fields, postactor.FieldActorID)
	}
	if m.relationship_type != nil {
		fields = append(fields, postactor.FieldRelationshipType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PostActorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case postactor.FieldPostID:
		return m.PostID()
	case postactor.FieldActorID:
		return m.ActorID()
	case postactor.FieldRelationshipType:
		return m.RelationshipType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PostActorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case postactor.FieldPostID:
		return m.OldPostID(ctx)
	case postactor.FieldActorID:
		return m.OldActorID(ctx)
	case postactor.FieldRelationshipType:
		return m.OldRelationshipType(ctx)
	}
	return nil, fmt.Errorf("unknown PostActor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostActorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case postactor.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case postactor.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case postactor.FieldRelationshipType:
		v, ok := value.(postactor.RelationshipType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationshipType(v)
		return nil
	}
	return fmt.Errorf("unknown PostActor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PostActorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PostActorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostActorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PostActor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PostActorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PostActorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PostActorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PostActor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PostActorMutation) ResetField(name string) error {
	switch name {
	case postactor.FieldPostID:
		m.ResetPostID()
		return nil
	case postactor.FieldActorID:
		m.ResetActorID()
		return nil
	case postactor.FieldRelationshipType:
		m.ResetRelationshipType()
		return nil
	}
	return fmt.Errorf("unknown PostActor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PostActorMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.post != nil {
		edges = append(edges, postactor.EdgePost)
	}
	if m.actor != nil {
		edges = append(edges, postactor.EdgeActor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PostActorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case postactor.EdgePost:
		if id := m.post; id != nil {
			return []ent.Value{*id}
		}
	case postactor.EdgeActor:
		if id := m.actor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PostActorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PostActorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PostActorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpost {
		edges = append(edges, postactor.EdgePost)
	}
	if m.clearedactor {
		edges = append(edges, postactor.EdgeActor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PostActorMutation) EdgeCleared(name string) bool {
	switch name {
	case postactor.EdgePost:
		return m.clearedpost
	case postactor.EdgeActor:
		return m.clearedactor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PostActorMutation) ClearEdge(name string) error {
	switch name {
	case postactor.EdgePost:
		m.ClearPost()
		return nil
	case postactor.EdgeActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown PostActor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PostActorMutation) ResetEdge(name string) error {
	switch name {
	case postactor.EdgePost:
		m.ResetPost()
		return nil
	case postactor.EdgeActor:
		m.ResetActor()
		return nil
	}
	return fmt.Errorf("unknown PostActor edge %s", name)
}

// PostUnknownActorMutation represents an operation that mutates the PostUnknownActor nodes in the graph.
type PostUnknownActorMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	clearedFields        map[string]struct{}
	post                 *string
	clearedpost          bool
	unknown_actor        *string
	clearedunknown_actor bool
	done                 bool
	oldValue             func(context.Context) (*PostUnknownActor, error)
	predicates           []predicate.PostUnknownActor
}

var _ ent.Mutation = (*PostUnknownActorMutation)(nil)

// postunknownactorOption allows management of the mutation configuration using functional options.
type postunknownactorOption func(*PostUnknownActorMutation)

// newPostUnknownActorMutation creates new mutation for the PostUnknownActor entity.
func newPostUnknownActorMutation(c config, op Op, opts ...postunknownactorOption) *PostUnknownActorMutation {
	m := &PostUnknownActorMutation{
		config:        c,
		op:            op,
		typ:           TypePostUnknownActor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPostUnknownActorID sets the ID field of the mutation.
func withPostUnknownActorID(id string) postunknownactorOption {
	return func(m *PostUnknownActorMutation) {
		var (
			err   error
			once  sync.Once
			value *PostUnknownActor
		)
		m.oldValue = func(ctx context.Context) (*PostUnknownActor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PostUnknownActor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPostUnknownActor sets the old PostUnknownActor of the mutation.
func withPostUnknownActor(node *PostUnknownActor) postunknownactorOption {
	return func(m *PostUnknownActorMutation) {
		m.oldValue = func(context.Context) (*PostUnknownActor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PostUnknownActorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PostUnknownActorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PostUnknownActor entities.
func (m *PostUnknownActorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PostUnknownActorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PostUnknownActorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PostUnknownActor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPostID sets the "post_id" field.
func (m *PostUnknownActorMutation) SetPostID(s string) {
	m.post = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *PostUnknownActorMutation) PostID() (r string, exists bool) {
	v := m.post
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the PostUnknownActor entity.
// If the PostUnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostUnknownActorMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ResetPostID resets all changes to the "post_id" field.
func (m *PostUnknownActorMutation) ResetPostID() {
	m.post = nil
}

// SetUnknownActorID sets the "unknown_actor_id" field.
func (m *PostUnknownActorMutation) SetUnknownActorID(s string) {
	m.unknown_actor = &s
}

// UnknownActorID returns the value of the "unknown_actor_id" field in the mutation.
func (m *PostUnknownActorMutation) UnknownActorID() (r string, exists bool) {
	v := m.unknown_actor
	if v == nil {
		return
	}
	return *v, true
}

// OldUnknownActorID returns the old "unknown_actor_id" field's value of the PostUnknownActor entity.
// If the PostUnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostUnknownActorMutation) OldUnknownActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnknownActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnknownActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnknownActorID: %w", err)
	}
	return oldValue.UnknownActorID, nil
}

// ResetUnknownActorID resets all changes to the "unknown_actor_id" field.
func (m *PostUnknownActorMutation) ResetUnknownActorID() {
	m.unknown_actor = nil
}

// ClearPost clears the "post" edge to the Post entity.
func (m *PostUnknownActorMutation) ClearPost() {
	m.clearedpost = true
	m.clearedFields[postunknownactor.FieldPostID] = struct{}{}
}

// PostCleared reports if the "post" edge to the Post entity was cleared.
func (m *PostUnknownActorMutation) PostCleared() bool {
	return m.clearedpost
}

// PostIDs returns the "post" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PostID instead. It exists only for internal usage by the builders.
func (m *PostUnknownActorMutation) PostIDs() (ids []string) {
	if id := m.post; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPost resets all changes to the "post" edge.
func (m *PostUnknownActorMutation) ResetPost() {
	m.post = nil
	m.clearedpost = false
}

// ClearUnknownActor clears the "unknown_actor" edge to the UnknownActor entity.
func (m *PostUnknownActorMutation) ClearUnknownActor() {
	m.clearedunknown_actor = true
	m.clearedFields[postunknownactor.FieldUnknownActorID] = struct{}{}
}

// UnknownActorCleared reports if the "unknown_actor" edge to the UnknownActor entity was cleared.
func (m *PostUnknownActorMutation) UnknownActorCleared() bool {
	return m.clearedunknown_actor
}

// UnknownActorIDs returns the "unknown_actor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UnknownActorID instead. It exists only for internal usage by the builders.
func (m *PostUnknownActorMutation) UnknownActorIDs() (ids []string) {
	if id := m.unknown_actor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUnknownActor resets all changes to the "unknown_actor" edge.
func (m *PostUnknownActorMutation) ResetUnknownActor() {
	m.unknown_actor = nil
	m.clearedunknown_actor = false
}

// Where appends a list predicates to the PostUnknownActorMutation builder.
func (m *PostUnknownActorMutation) Where(ps ...predicate.PostUnknownActor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PostUnknownActorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PostUnknownActorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PostUnknownActor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PostUnknownActorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PostUnknownActorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PostUnknownActor).
func (m *PostUnknownActorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PostUnknownActorMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.post != nil {
		fields = append(fields, postunknownactor.FieldPostID)
	}
	if m.unknown_actor != nil {
		fields = append(fields, postunknownactor.FieldUnknownActorID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PostUnknownActorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case postunknownactor.FieldPostID:
		return m.PostID()
	case postunknownactor.FieldUnknownActorID:
		return m.UnknownActorID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PostUnknownActorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case postunknownactor.FieldPostID:
		return m.OldPostID(ctx)
	case postunknownactor.FieldUnknownActorID:
		return m.OldUnknownActorID(ctx)
	}
	return nil, fmt.Errorf("unknown PostUnknownActor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostUnknownActorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case postunknownactor.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case postunknownactor.FieldUnknownActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnknownActorID(v)
		return nil
	}
	return fmt.Errorf("unknown PostUnknownActor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PostUnknownActorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PostUnknownActorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostUnknownActorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PostUnknownActor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PostUnknownActorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PostUnknownActorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PostUnknownActorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PostUnknownActor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PostUnknownActorMutation) ResetField(name string) error {
	switch name {
	case postunknownactor.FieldPostID:
		m.ResetPostID()
		return nil
	case postunknownactor.FieldUnknownActorID:
		m.ResetUnknownActorID()
		return nil
	}
	return fmt.Errorf("unknown PostUnknownActor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PostUnknownActorMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.post != nil {
		edges = append(edges, postunknownactor.EdgePost)
	}
	if m.unknown_actor != nil {
		edges = append(edges, postunknownactor.EdgeUnknownActor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PostUnknownActorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case postunknownactor.EdgePost:
		if id := m.post; id != nil {
			return []ent.Value{*id}
		}
	case postunknownactor.EdgeUnknownActor:
		if id := m.unknown_actor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PostUnknownActorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PostUnknownActorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PostUnknownActorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpost {
		edges = append(edges, postunknownactor.EdgePost)
	}
	if m.clearedunknown_actor {
		edges = append(edges, postunknownactor.EdgeUnknownActor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PostUnknownActorMutation) EdgeCleared(name string) bool {
	switch name {
	case postunknownactor.EdgePost:
		return m.clearedpost
	case postunknownactor.EdgeUnknownActor:
		return m.clearedunknown_actor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PostUnknownActorMutation) ClearEdge(name string) error {
	switch name {
	case postunknownactor.EdgePost:
		m.ClearPost()
		return nil
	case postunknownactor.EdgeUnknownActor:
		m.ClearUnknownActor()
		return nil
	}
	return fmt.Errorf("unknown PostUnknownActor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PostUnknownActorMutation) ResetEdge(name string) error {
	switch name {
	case postunknownactor.EdgePost:
		m.ResetPost()
		return nil
	case postunknownactor.EdgeUnknownActor:
		m.ResetUnknownActor()
		return nil
	}
	return fmt.Errorf("unknown PostUnknownActor edge %s", name)
}

// UnknownActorMutation represents an operation that mutates the UnknownActor nodes in the graph.
type UnknownActorMutation struct {
	config
	op                Op
	typ               string
	id                *string
	platform          *string
	detected_username *string
	first_seen        *time.Time
	last_seen         *time.Time
	mention_count     *int
	addmention_count  *int
	author_count      *int
	addauthor_count   *int
	mention_context   *string
	display_name      *string
	bio               *string
	review_status     *unknownactor.ReviewStatus
	clearedFields     map[string]struct{}
	post_links        map[string]struct{}
	removedpost_links map[string]struct{}
	clearedpost_links bool
	done              bool
	oldValue          func(context.Context) (*UnknownActor, error)
	predicates        []predicate.UnknownActor
}

var _ ent.Mutation = (*UnknownActorMutation)(nil)

// unknownactorOption allows management of the mutation configuration using functional options.
type unknownactorOption func(*UnknownActorMutation)

// newUnknownActorMutation creates new mutation for the UnknownActor entity.
func newUnknownActorMutation(c config, op Op, opts ...unknownactorOption) *UnknownActorMutation {
	m := &UnknownActorMutation{
		config:        c,
		op:            op,
		typ:           TypeUnknownActor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnknownActorID sets the ID field of the mutation.
func withUnknownActorID(id string) unknownactorOption {
	return func(m *UnknownActorMutation) {
		var (
			err   error
			once  sync.Once
			value *UnknownActor
		)
		m.oldValue = func(ctx context.Context) (*UnknownActor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnknownActor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnknownActor sets the old UnknownActor of the mutation.
func withUnknownActor(node *UnknownActor) unknownactorOption {
	return func(m *UnknownActorMutation) {
		m.oldValue = func(context.Context) (*UnknownActor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnknownActorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnknownActorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UnknownActor entities.
func (m *UnknownActorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnknownActorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnknownActorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnknownActor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *UnknownActorMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *UnknownActorMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *UnknownActorMutation) ResetPlatform() {
	m.platform = nil
}

// SetDetectedUsername sets the "detected_username" field.
func (m *UnknownActorMutation) SetDetectedUsername(s string) {
	m.detected_username = &s
}

// DetectedUsername returns the value of the "detected_username" field in the mutation.
func (m *UnknownActorMutation) DetectedUsername() (r string, exists bool) {
	v := m.detected_username
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedUsername returns the old "detected_username" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldDetectedUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedUsername: %w", err)
	}
	return oldValue.DetectedUsername, nil
}

// ResetDetectedUsername resets all changes to the "detected_username" field.
func (m *UnknownActorMutation) ResetDetectedUsername() {
	m.detected_username = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *UnknownActorMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *UnknownActorMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *UnknownActorMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *UnknownActorMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *UnknownActorMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *UnknownActorMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetMentionCount sets the "mention_count" field.
func (m *UnknownActorMutation) SetMentionCount(i int) {
	m.mention_count = &i
	m.addmention_count = nil
}

// MentionCount returns the value of the "mention_count" field in the mutation.
func (m *UnknownActorMutation) MentionCount() (r int, exists bool) {
	v := m.mention_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionCount returns the old "mention_count" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldMentionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionCount: %w", err)
	}
	return oldValue.MentionCount, nil
}

// AddMentionCount adds i to the "mention_count" field.
func (m *UnknownActorMutation) AddMentionCount(i int) {
	if m.addmention_count != nil {
		*m.addmention_count += i
	} else {
		m.addmention_count = &i
	}
}

// AddedMentionCount returns the value that was added to the "mention_count" field in this mutation.
func (m *UnknownActorMutation) AddedMentionCount() (r int, exists bool) {
	v := m.addmention_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMentionCount resets all changes to the "mention_count" field.
func (m *UnknownActorMutation) ResetMentionCount() {
	m.mention_count = nil
	m.addmention_count = nil
}

// SetAuthorCount sets the "author_count" field.
func (m *UnknownActorMutation) SetAuthorCount(i int) {
	m.author_count = &i
	m.addauthor_count = nil
}

// AuthorCount returns the value of the "author_count" field in the mutation.
func (m *UnknownActorMutation) AuthorCount() (r int, exists bool) {
	v := m.author_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorCount returns the old "author_count" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldAuthorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorCount: %w", err)
	}
	return oldValue.AuthorCount, nil
}

// AddAuthorCount adds i to the "author_count" field.
func (m *UnknownActorMutation) AddAuthorCount(i int) {
	if m.addauthor_count != nil {
		*m.addauthor_count += i
	} else {
		m.addauthor_count = &i
	}
}

// AddedAuthorCount returns the value that was added to the "author_count" field in this mutation.
func (m *UnknownActorMutation) AddedAuthorCount() (r int, exists bool) {
	v := m.addauthor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAuthorCount resets all changes to the "author_count" field.
func (m *UnknownActorMutation) ResetAuthorCount() {
	m.author_count = nil
	m.addauthor_count = nil
}

// SetMentionContext sets the "mention_context" field.
func (m *UnknownActorMutation) SetMentionContext(s string) {
	m.mention_context = &s
}

// MentionContext returns the value of the "mention_context" field in the mutation.
func (m *UnknownActorMutation) MentionContext() (r string, exists bool) {
	v := m.mention_context
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionContext returns the old "mention_context" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldMentionContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionContext: %w", err)
	}
	return oldValue.MentionContext, nil
}

// ClearMentionContext clears the value of the "mention_context" field.
func (m *UnknownActorMutation) ClearMentionContext() {
	m.mention_context = nil
	m.clearedFields[unknownactor.FieldMentionContext] = struct{}{}
}

// MentionContextCleared returns if the "mention_context" field was cleared in this mutation.
func (m *UnknownActorMutation) MentionContextCleared() bool {
	_, ok := m.clearedFields[unknownactor.FieldMentionContext]
	return ok
}

// ResetMentionContext resets all changes to the "mention_context" field.
func (m *UnknownActorMutation) ResetMentionContext() {
	m.mention_context = nil
	delete(m.clearedFields, unknownactor.FieldMentionContext)
}

// SetDisplayName sets the "display_name" field.
func (m *UnknownActorMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UnknownActorMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UnknownActorMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[unknownactor.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UnknownActorMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[unknownactor.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UnknownActorMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, unknownactor.FieldDisplayName)
}

// SetBio sets the "bio" field.
func (m *UnknownActorMutation) SetBio(s string) {
	m.bio = &s
}

// Bio returns the value of the "bio" field in the mutation.
func (m *UnknownActorMutation) Bio() (r string, exists bool) {
	v := m.bio
	if v == nil {
		return
	}
	return *v, true
}

// OldBio returns the old "bio" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldBio(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBio: %w", err)
	}
	return oldValue.Bio, nil
}

// ClearBio clears the value of the "bio" field.
func (m *UnknownActorMutation) ClearBio() {
	m.bio = nil
	m.clearedFields[unknownactor.FieldBio] = struct{}{}
}

// BioCleared returns if the "bio" field was cleared in this mutation.
func (m *UnknownActorMutation) BioCleared() bool {
	_, ok := m.clearedFields[unknownactor.FieldBio]
	return ok
}

// ResetBio resets all changes to the "bio" field.
func (m *UnknownActorMutation) ResetBio() {
	m.bio = nil
	delete(m.clearedFields, unknownactor.FieldBio)
}

// SetReviewStatus sets the "review_status" field.
func (m *UnknownActorMutation) SetReviewStatus(us unknownactor.ReviewStatus) {
	m.review_status = &us
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *UnknownActorMutation) ReviewStatus() (r unknownactor.ReviewStatus, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the UnknownActor entity.
// If the UnknownActor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnknownActorMutation) OldReviewStatus(ctx context.Context) (v unknownactor.ReviewStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *UnknownActorMutation) ResetReviewStatus() {
	m.review_status = nil
}

// AddPostLinkIDs adds the "post_links" edge to the PostUnknownActor entity by ids.
func (m *UnknownActorMutation) AddPostLinkIDs(ids ...string) {
	if m.post_links == nil {
		m.post_links = make(map[string]struct{})
	}
	for i := range ids {
		m.post_links[ids[i]] = struct{}{}
	}
}

// ClearPostLinks clears the "post_links" edge to the PostUnknownActor entity.
func (m *UnknownActorMutation) ClearPostLinks() {
	m.clearedpost_links = true
}

// PostLinksCleared reports if the "post_links" edge to the PostUnknownActor entity was cleared.
func (m *UnknownActorMutation) PostLinksCleared() bool {
	return m.clearedpost_links
}

// RemovePostLinkIDs removes the "post_links" edge to the PostUnknownActor entity by IDs.
func (m *UnknownActorMutation) RemovePostLinkIDs(ids ...string) {
	if m.removedpost_links == nil {
		m.removedpost_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.post_links, ids[i])
		m.removedpost_links[ids[i]] = struct{}{}
	}
}

// RemovedPostLinks returns the removed IDs of the "post_links" edge to the PostUnknownActor entity.
func (m *UnknownActorMutation) RemovedPostLinksIDs() (ids []string) {
	for id := range m.removedpost_links {
		ids = append(ids, id)
	}
	return
}

// PostLinksIDs returns the "post_links" edge IDs in the mutation.
func (m *UnknownActorMutation) PostLinksIDs() (ids []string) {
	for id := range m.post_links {
		ids = append(ids, id)
	}
	return
}

// ResetPostLinks resets all changes to the "post_links" edge.
func (m *UnknownActorMutation) ResetPostLinks() {
	m.post_links = nil
	m.clearedpost_links = false
	m.removedpost_links = nil
}

// Where appends a list predicates to the UnknownActorMutation builder.
func (m *UnknownActorMutation) Where(ps ...predicate.UnknownActor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnknownActorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnknownActorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnknownActor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnknownActorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnknownActorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnknownActor).
func (m *UnknownActorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnknownActorMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.platform != nil {
		fields = append(fields, unknownactor.FieldPlatform)
	}
	if m.detected_username != nil {
		fields = append(fields, unknownactor.FieldDetectedUsername)
	}
	if m.first_seen != nil {
		fields = append(fields, unknownactor.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, unknownactor.FieldLastSeen)
	}
	if m.mention_count != nil {
		fields = append(fields, unknownactor.FieldMentionCount)
	}
	if m.author_count != nil {
		fields = append(fields, unknownactor.FieldAuthorCount)
	}
	if m.mention_context != nil {
		fields = append(fields, unknownactor.FieldMentionContext)
	}
	if m.display_name != nil {
		fields = append(fields, unknownactor.FieldDisplayName)
	}
	if m.bio != nil {
		fields = append(fields, unknownactor.FieldBio)
	}
	if m.review_status != nil {
		fields = append(fields, unknownactor.FieldReviewStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnknownActorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unknownactor.FieldPlatform:
		return m.Platform()
	case unknownactor.FieldDetectedUsername:
		return m.DetectedUsername()
	case unknownactor.FieldFirstSeen:
		return m.FirstSeen()
	case unknownactor.FieldLastSeen:
		return m.LastSeen()
	case unknownactor.FieldMentionCount:
		return m.MentionCount()
	case unknownactor.FieldAuthorCount:
		return m.AuthorCount()
	case unknownactor.FieldMentionContext:
		return m.MentionContext()
	case unknownactor.FieldDisplayName:
		return m.DisplayName()
	case unknownactor.FieldBio:
		return m.Bio()
	case unknownactor.FieldReviewStatus:
		return m.ReviewStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnknownActorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unknownactor.FieldPlatform:
		return m.OldPlatform(ctx)
	case unknownactor.FieldDetectedUsername:
		return m.OldDetectedUsername(ctx)
	case unknownactor.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case unknownactor.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case unknownactor.FieldMentionCount:
		return m.OldMentionCount(ctx)
	case unknownactor.FieldAuthorCount:
		return m.OldAuthorCount(ctx)
	case unknownactor.FieldMentionContext:
		return m.OldMentionContext(ctx)
	case unknownactor.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case unknownactor.FieldBio:
		return m.OldBio(ctx)
	case unknownactor.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	}
	return nil, fmt.Errorf("unknown UnknownActor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnknownActorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unknownactor.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case unknownactor.FieldDetectedUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedUsername(v)
		return nil
	case unknownactor.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case unknownactor.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case unknownactor.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionCount(v)
		return nil
	case unknownactor.FieldAuthorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorCount(v)
		return nil
	case unknownactor.FieldMentionContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionContext(v)
		return nil
	case unknownactor.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case unknownactor.FieldBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBio(v)
		return nil
	case unknownactor.FieldReviewStatus:
		v, ok := value.(unknownactor.ReviewStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	}
	return fmt.Errorf("unknown UnknownActor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnknownActorMutation) AddedFields() []string {
	var fields []string
	if m.addmention_count != nil {
		fields = append(fields, unknownactor.FieldMentionCount)
	}
	if m.addauthor_count != nil {
		fields = append(fields, unknownactor.FieldAuthorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnknownActorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case unknownactor.FieldMentionCount:
		return m.AddedMentionCount()
	case unknownactor.FieldAuthorCount:
		return m.AddedAuthorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnknownActorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case unknownactor.FieldMentionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMentionCount(v)
		return nil
	case unknownactor.FieldAuthorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAuthorCount(v)
		return nil
	}
	return fmt.Errorf("unknown UnknownActor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnknownActorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unknownactor.FieldMentionContext) {
		fields = append(fields, unknownactor.FieldMentionContext)
	}
	if m.FieldCleared(unknownactor.FieldDisplayName) {
		fields = append(fields, unknownactor.FieldDisplayName)
	}
	if m.FieldCleared(unknownactor.FieldBio) {
		fields = append(fields, unknownactor.FieldBio)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnknownActorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnknownActorMutation) ClearField(name string) error {
	switch name {
	case unknownactor.FieldMentionContext:
		m.ClearMentionContext()
		return nil
	case unknownactor.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case unknownactor.FieldBio:
		m.ClearBio()
		return nil
	}
	return fmt.Errorf("unknown UnknownActor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnknownActorMutation) ResetField(name string) error {
	switch name {
	case unknownactor.FieldPlatform:
		m.ResetPlatform()
		return nil
	case unknownactor.FieldDetectedUsername:
		m.ResetDetectedUsername()
		return nil
	case unknownactor.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case unknownactor.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case unknownactor.FieldMentionCount:
		m.ResetMentionCount()
		return nil
	case unknownactor.FieldAuthorCount:
		m.ResetAuthorCount()
		return nil
	case unknownactor.FieldMentionContext:
		m.ResetMentionContext()
		return nil
	case unknownactor.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case unknownactor.FieldBio:
		m.ResetBio()
		return nil
	case unknownactor.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	}
	return fmt.Errorf("unknown UnknownActor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnknownActorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.post_links != nil {
		edges = append(edges, unknownactor.EdgePostLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnknownActorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case unknownactor.EdgePostLinks:
		ids := make([]ent.Value, 0, len(m.post_links))
		for id := range m.post_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnknownActorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpost_links != nil {
		edges = append(edges, unknownactor.EdgePostLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnknownActorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case unknownactor.EdgePostLinks:
		ids := make([]ent.Value, 0, len(m.removedpost_links))
		for id := range m.removedpost_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnknownActorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpost_links {
		edges = append(edges, unknownactor.EdgePostLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnknownActorMutation) EdgeCleared(name string) bool {
	switch name {
	case unknownactor.EdgePostLinks:
		return m.clearedpost_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnknownActorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UnknownActor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnknownActorMutation) ResetEdge(name string) error {
	switch name {
	case unknownactor.EdgePostLinks:
		m.ResetPostLinks()
		return nil
	}
	return fmt.Errorf("unknown UnknownActor edge %s", name)
}
