// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/actorusername"
)

// ActorUsername is the model entity for the ActorUsername schema.
type ActorUsername struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID string `json:"actor_id,omitempty"`
	// Always lowercased
	Username string `json:"username,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// ShouldScrape holds the value of the "should_scrape" field.
	ShouldScrape bool `json:"should_scrape,omitempty"`
	// LastScrape holds the value of the "last_scrape" field.
	LastScrape *time.Time `json:"last_scrape,omitempty"`
	// LastProfileUpdate holds the value of the "last_profile_update" field.
	LastProfileUpdate *time.Time `json:"last_profile_update,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ActorUsernameQuery when eager-loading is set.
	Edges        ActorUsernameEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ActorUsernameEdges holds the relations/edges for other nodes in the graph.
type ActorUsernameEdges struct {
	// Actor holds the value of the actor edge.
	Actor *Actor `json:"actor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ActorOrErr returns the Actor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ActorUsernameEdges) ActorOrErr() (*Actor, error) {
	if e.Actor != nil {
		return e.Actor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: actor.Label}
	}
	return nil, &NotLoadedError{edge: "actor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActorUsername) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actorusername.FieldShouldScrape:
			values[i] = new(sql.NullBool)
		case actorusername.FieldID, actorusername.FieldActorID, actorusername.FieldUsername, actorusername.FieldPlatform:
			values[i] = new(sql.NullString)
		case actorusername.FieldLastScrape, actorusername.FieldLastProfileUpdate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActorUsername fields.
func (_m *ActorUsername) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actorusername.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case actorusername.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.String
			}
		case actorusername.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case actorusername.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case actorusername.FieldShouldScrape:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field should_scrape", values[i])
			} else if value.Valid {
				_m.ShouldScrape = value.Bool
			}
		case actorusername.FieldLastScrape:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_scrape", values[i])
			} else if value.Valid {
				_m.LastScrape = new(time.Time)
				*_m.LastScrape = value.Time
			}
		case actorusername.FieldLastProfileUpdate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_profile_update", values[i])
			} else if value.Valid {
				_m.LastProfileUpdate = new(time.Time)
				*_m.LastProfileUpdate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActorUsername.
// This includes values selected through modifiers, order, etc.
func (_m *ActorUsername) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryActor queries the "actor" edge of the ActorUsername entity.
func (_m *ActorUsername) QueryActor() *ActorQuery {
	return NewActorUsernameClient(_m.config).QueryActor(_m)
}

// Update returns a builder for updating this ActorUsername.
// Note that you need to call ActorUsername.Unwrap() before calling this method if this ActorUsername
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActorUsername) Update() *ActorUsernameUpdateOne {
	return NewActorUsernameClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActorUsername entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActorUsername) Unwrap() *ActorUsername {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActorUsername is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActorUsername) String() string {
	var builder strings.Builder
	builder.WriteString("ActorUsername(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("actor_id=")
	builder.WriteString(_m.ActorID)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("should_scrape=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShouldScrape))
	builder.WriteString(", ")
	if v := _m.LastScrape; v != nil {
		builder.WriteString("last_scrape=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastProfileUpdate; v != nil {
		builder.WriteString("last_profile_update=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ActorUsernames is a parsable slice of ActorUsername.
type ActorUsernames []*ActorUsername
