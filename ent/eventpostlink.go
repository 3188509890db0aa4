// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/post"
)

// EventPostLink is the model entity for the EventPostLink schema.
type EventPostLink struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// PostID holds the value of the "post_id" field.
	PostID string `json:"post_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EventPostLinkQuery when eager-loading is set.
	Edges        EventPostLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EventPostLinkEdges holds the relations/edges for other nodes in the graph.
type EventPostLinkEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// Post holds the value of the post edge.
	Post *Post `json:"post,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventPostLinkEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// PostOrErr returns the Post value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventPostLinkEdges) PostOrErr() (*Post, error) {
	if e.Post != nil {
		return e.Post, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: post.Label}
	}
	return nil, &NotLoadedError{edge: "post"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventPostLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventpostlink.FieldID, eventpostlink.FieldEventID, eventpostlink.FieldPostID:
			values[i] = new(sql.NullString)
		case eventpostlink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventPostLink fields.
func (_m *EventPostLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventpostlink.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case eventpostlink.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case eventpostlink.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = value.String
			}
		case eventpostlink.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EventPostLink.
// This includes values selected through modifiers, order, etc.
func (_m *EventPostLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the EventPostLink entity.
func (_m *EventPostLink) QueryEvent() *EventQuery {
	return NewEventPostLinkClient(_m.config).QueryEvent(_m)
}

// QueryPost queries the "post" edge of the EventPostLink entity.
func (_m *EventPostLink) QueryPost() *PostQuery {
	return NewEventPostLinkClient(_m.config).QueryPost(_m)
}

// Update returns a builder for updating this EventPostLink.
// Note that you need to call EventPostLink.Unwrap() before calling this method if this EventPostLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventPostLink) Update() *EventPostLinkUpdateOne {
	return NewEventPostLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventPostLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventPostLink) Unwrap() *EventPostLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventPostLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventPostLink) String() string {
	var builder strings.Builder
	builder.WriteString("EventPostLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("post_id=")
	builder.WriteString(_m.PostID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventPostLinks is a parsable slice of EventPostLink.
type EventPostLinks []*EventPostLink
