// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventactorlink"
)

// EventActorLink is the model entity for the EventActorLink schema.
type EventActorLink struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// Lowercased handle, or unknown_<uuid> sentinel
	ActorHandle string `json:"actor_handle,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// ActorType holds the value of the "actor_type" field.
	ActorType string `json:"actor_type,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID *string `json:"actor_id,omitempty"`
	// UnknownActorID holds the value of the "unknown_actor_id" field.
	UnknownActorID *string `json:"unknown_actor_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EventActorLinkQuery when eager-loading is set.
	Edges        EventActorLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EventActorLinkEdges holds the relations/edges for other nodes in the graph.
type EventActorLinkEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventActorLinkEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventActorLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventactorlink.FieldID, eventactorlink.FieldEventID, eventactorlink.FieldActorHandle, eventactorlink.FieldPlatform, eventactorlink.FieldActorType, eventactorlink.FieldActorID, eventactorlink.FieldUnknownActorID:
			values[i] = new(sql.NullString)
		case eventactorlink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventActorLink fields.
func (_m *EventActorLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventactorlink.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case eventactorlink.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case eventactorlink.FieldActorHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_handle", values[i])
			} else if value.Valid {
				_m.ActorHandle = value.String
			}
		case eventactorlink.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case eventactorlink.FieldActorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_type", values[i])
			} else if value.Valid {
				_m.ActorType = value.String
			}
		case eventactorlink.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = new(string)
				*_m.ActorID = value.String
			}
		case eventactorlink.FieldUnknownActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unknown_actor_id", values[i])
			} else if value.Valid {
				_m.UnknownActorID = new(string)
				*_m.UnknownActorID = value.String
			}
		case eventactorlink.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EventActorLink.
// This includes values selected through modifiers, order, etc.
func (_m *EventActorLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the EventActorLink entity.
func (_m *EventActorLink) QueryEvent() *EventQuery {
	return NewEventActorLinkClient(_m.config).QueryEvent(_m)
}

// Update returns a builder for updating this EventActorLink.
// Note that you need to call EventActorLink.Unwrap() before calling this method if this EventActorLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventActorLink) Update() *EventActorLinkUpdateOne {
	return NewEventActorLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventActorLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventActorLink) Unwrap() *EventActorLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventActorLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventActorLink) String() string {
	var builder strings.Builder
	builder.WriteString("EventActorLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("actor_handle=")
	builder.WriteString(_m.ActorHandle)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("actor_type=")
	builder.WriteString(_m.ActorType)
	builder.WriteString(", ")
	if v := _m.ActorID; v != nil {
		builder.WriteString("actor_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UnknownActorID; v != nil {
		builder.WriteString("unknown_actor_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventActorLinks is a parsable slice of EventActorLink.
type EventActorLinks []*EventActorLink
