// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postactor"
)

// PostActor is the model entity for the PostActor schema.
type PostActor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PostID holds the value of the "post_id" field.
	PostID string `json:"post_id,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID string `json:"actor_id,omitempty"`
	// RelationshipType holds the value of the "relationship_type" field.
	RelationshipType postactor.RelationshipType `json:"relationship_type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PostActorQuery when eager-loading is set.
	Edges        PostActorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PostActorEdges holds the relations/edges for other nodes in the graph.
type PostActorEdges struct {
	// Post holds the value of the post edge.
	Post *Post `json:"post,omitempty"`
	// Actor holds the value of the actor edge.
	Actor *Actor `json:"actor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PostOrErr returns the Post value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostActorEdges) PostOrErr() (*Post, error) {
	if e.Post != nil {
		return e.Post, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: post.Label}
	}
	return nil, &NotLoadedError{edge: "post"}
}

// ActorOrErr returns the Actor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostActorEdges) ActorOrErr() (*Actor, error) {
	if e.Actor != nil {
		return e.Actor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: actor.Label}
	}
	return nil, &NotLoadedError{edge: "actor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PostActor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case postactor.FieldID, postactor.FieldPostID, postactor.FieldActorID, postactor.FieldRelationshipType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PostActor fields.
func (_m *PostActor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case postactor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case postactor.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = value.String
			}
		case postactor.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.String
			}
		case postactor.FieldRelationshipType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship_type", values[i])
			} else if value.Valid {
				_m.RelationshipType = postactor.RelationshipType(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PostActor.
// This includes values selected through modifiers, order, etc.
func (_m *PostActor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPost queries the "post" edge of the PostActor entity.
func (_m *PostActor) QueryPost() *PostQuery {
	return NewPostActorClient(_m.config).QueryPost(_m)
}

// QueryActor queries the "actor" edge of the PostActor entity.
func (_m *PostActor) QueryActor() *ActorQuery {
	return NewPostActorClient(_m.config).QueryActor(_m)
}

// Update returns a builder for updating this PostActor.
// Note that you need to call PostActor.Unwrap() before calling this method if this PostActor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PostActor) Update() *PostActorUpdateOne {
	return NewPostActorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PostActor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PostActor) Unwrap() *PostActor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PostActor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PostActor) String() string {
	var builder strings.Builder
	builder.WriteString("PostActor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("post_id=")
	builder.WriteString(_m.PostID)
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(_m.ActorID)
	builder.WriteString(", ")
	builder.WriteString("relationship_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelationshipType))
	builder.WriteByte(')')
	return builder.String()
}

// PostActors is a parsable slice of PostActor.
type PostActors []*PostActor
