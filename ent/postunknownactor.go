// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// PostUnknownActor is the model entity for the PostUnknownActor schema.
type PostUnknownActor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PostID holds the value of the "post_id" field.
	PostID string `json:"post_id,omitempty"`
	// UnknownActorID holds the value of the "unknown_actor_id" field.
	UnknownActorID string `json:"unknown_actor_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PostUnknownActorQuery when eager-loading is set.
	Edges        PostUnknownActorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PostUnknownActorEdges holds the relations/edges for other nodes in the graph.
type PostUnknownActorEdges struct {
	// Post holds the value of the post edge.
	Post *Post `json:"post,omitempty"`
	// UnknownActor holds the value of the unknown_actor edge.
	UnknownActor *UnknownActor `json:"unknown_actor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PostOrErr returns the Post value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostUnknownActorEdges) PostOrErr() (*Post, error) {
	if e.Post != nil {
		return e.Post, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: post.Label}
	}
	return nil, &NotLoadedError{edge: "post"}
}

// UnknownActorOrErr returns the UnknownActor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostUnknownActorEdges) UnknownActorOrErr() (*UnknownActor, error) {
	if e.UnknownActor != nil {
		return e.UnknownActor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: unknownactor.Label}
	}
	return nil, &NotLoadedError{edge: "unknown_actor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PostUnknownActor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case postunknownactor.FieldID, postunknownactor.FieldPostID, postunknownactor.FieldUnknownActorID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PostUnknownActor fields.
func (_m *PostUnknownActor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case postunknownactor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case postunknownactor.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = value.String
			}
		case postunknownactor.FieldUnknownActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unknown_actor_id", values[i])
			} else if value.Valid {
				_m.UnknownActorID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PostUnknownActor.
// This includes values selected through modifiers, order, etc.
func (_m *PostUnknownActor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPost queries the "post" edge of the PostUnknownActor entity.
func (_m *PostUnknownActor) QueryPost() *PostQuery {
	return NewPostUnknownActorClient(_m.config).QueryPost(_m)
}

// QueryUnknownActor queries the "unknown_actor" edge of the PostUnknownActor entity.
func (_m *PostUnknownActor) QueryUnknownActor() *UnknownActorQuery {
	return NewPostUnknownActorClient(_m.config).QueryUnknownActor(_m)
}

// Update returns a builder for updating this PostUnknownActor.
// Note that you need to call PostUnknownActor.Unwrap() before calling this method if this PostUnknownActor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PostUnknownActor) Update() *PostUnknownActorUpdateOne {
	return NewPostUnknownActorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PostUnknownActor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PostUnknownActor) Unwrap() *PostUnknownActor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PostUnknownActor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PostUnknownActor) String() string {
	var builder strings.Builder
	builder.WriteString("PostUnknownActor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("post_id=")
	builder.WriteString(_m.PostID)
	builder.WriteString(", ")
	builder.WriteString("unknown_actor_id=")
	builder.WriteString(_m.UnknownActorID)
	builder.WriteByte(')')
	return builder.String()
}

// PostUnknownActors is a parsable slice of PostUnknownActor.
type PostUnknownActors []*PostUnknownActor
