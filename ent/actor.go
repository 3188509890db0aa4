// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/actor"
)

// Actor is the model entity for the Actor schema.
type Actor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ActorType holds the value of the "actor_type" field.
	ActorType actor.ActorType `json:"actor_type,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// About holds the value of the "about" field.
	About string `json:"about,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Per-platform profile blobs keyed by platform
	ProfileData map[string]interface{} `json:"profile_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ActorQuery when eager-loading is set.
	Edges        ActorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ActorEdges holds the relations/edges for other nodes in the graph.
type ActorEdges struct {
	// Usernames holds the value of the usernames edge.
	Usernames []*ActorUsername `json:"usernames,omitempty"`
	// PostLinks holds the value of the post_links edge.
	PostLinks []*PostActor `json:"post_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UsernamesOrErr returns the Usernames value or an error if the edge
// was not loaded in eager-loading.
func (e ActorEdges) UsernamesOrErr() ([]*ActorUsername, error) {
	if e.loadedTypes[0] {
		return e.Usernames, nil
	}
	return nil, &NotLoadedError{edge: "usernames"}
}

// PostLinksOrErr returns the PostLinks value or an error if the edge
// was not loaded in eager-loading.
func (e ActorEdges) PostLinksOrErr() ([]*PostActor, error) {
	if e.loadedTypes[1] {
		return e.PostLinks, nil
	}
	return nil, &NotLoadedError{edge: "post_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Actor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actor.FieldProfileData:
			values[i] = new([]byte)
		case actor.FieldID, actor.FieldActorType, actor.FieldName, actor.FieldAbout, actor.FieldCity, actor.FieldState:
			values[i] = new(sql.NullString)
		case actor.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Actor fields.
func (_m *Actor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case actor.FieldActorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_type", values[i])
			} else if value.Valid {
				_m.ActorType = actor.ActorType(value.String)
			}
		case actor.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case actor.FieldAbout:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field about", values[i])
			} else if value.Valid {
				_m.About = value.String
			}
		case actor.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case actor.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case actor.FieldProfileData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field profile_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProfileData); err != nil {
					return fmt.Errorf("unmarshal field profile_data: %w", err)
				}
			}
		case actor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Actor.
// This includes values selected through modifiers, order, etc.
func (_m *Actor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsernames queries the "usernames" edge of the Actor entity.
func (_m *Actor) QueryUsernames() *ActorUsernameQuery {
	return NewActorClient(_m.config).QueryUsernames(_m)
}

// QueryPostLinks queries the "post_links" edge of the Actor entity.
func (_m *Actor) QueryPostLinks() *PostActorQuery {
	return NewActorClient(_m.config).QueryPostLinks(_m)
}

// Update returns a builder for updating this Actor.
// Note that you need to call Actor.Unwrap() before calling this method if this Actor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Actor) Update() *ActorUpdateOne {
	return NewActorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Actor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Actor) Unwrap() *Actor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Actor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Actor) String() string {
	var builder strings.Builder
	builder.WriteString("Actor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("actor_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorType))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("about=")
	builder.WriteString(_m.About)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("profile_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Actors is a parsable slice of Actor.
type Actors []*Actor
