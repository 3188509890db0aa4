// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// UnknownActor is the model entity for the UnknownActor schema.
type UnknownActor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Always lowercased
	DetectedUsername string `json:"detected_username,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// MentionCount holds the value of the "mention_count" field.
	MentionCount int `json:"mention_count,omitempty"`
	// AuthorCount holds the value of the "author_count" field.
	AuthorCount int `json:"author_count,omitempty"`
	// First non-empty content snippet, <=500 chars
	MentionContext string `json:"mention_context,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Bio holds the value of the "bio" field.
	Bio string `json:"bio,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus unknownactor.ReviewStatus `json:"review_status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UnknownActorQuery when eager-loading is set.
	Edges        UnknownActorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UnknownActorEdges holds the relations/edges for other nodes in the graph.
type UnknownActorEdges struct {
	// PostLinks holds the value of the post_links edge.
	PostLinks []*PostUnknownActor `json:"post_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PostLinksOrErr returns the PostLinks value or an error if the edge
// was not loaded in eager-loading.
func (e UnknownActorEdges) PostLinksOrErr() ([]*PostUnknownActor, error) {
	if e.loadedTypes[0] {
		return e.PostLinks, nil
	}
	return nil, &NotLoadedError{edge: "post_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnknownActor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unknownactor.FieldMentionCount, unknownactor.FieldAuthorCount:
			values[i] = new(sql.NullInt64)
		case unknownactor.FieldID, unknownactor.FieldPlatform, unknownactor.FieldDetectedUsername, unknownactor.FieldMentionContext, unknownactor.FieldDisplayName, unknownactor.FieldBio, unknownactor.FieldReviewStatus:
			values[i] = new(sql.NullString)
		case unknownactor.FieldFirstSeen, unknownactor.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnknownActor fields.
func (_m *UnknownActor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unknownactor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case unknownactor.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case unknownactor.FieldDetectedUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detected_username", values[i])
			} else if value.Valid {
				_m.DetectedUsername = value.String
			}
		case unknownactor.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case unknownactor.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case unknownactor.FieldMentionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mention_count", values[i])
			} else if value.Valid {
				_m.MentionCount = int(value.Int64)
			}
		case unknownactor.FieldAuthorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_count", values[i])
			} else if value.Valid {
				_m.AuthorCount = int(value.Int64)
			}
		case unknownactor.FieldMentionContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mention_context", values[i])
			} else if value.Valid {
				_m.MentionContext = value.String
			}
		case unknownactor.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case unknownactor.FieldBio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio", values[i])
			} else if value.Valid {
				_m.Bio = value.String
			}
		case unknownactor.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = unknownactor.ReviewStatus(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UnknownActor.
// This includes values selected through modifiers, order, etc.
func (_m *UnknownActor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPostLinks queries the "post_links" edge of the UnknownActor entity.
func (_m *UnknownActor) QueryPostLinks() *PostUnknownActorQuery {
	return NewUnknownActorClient(_m.config).QueryPostLinks(_m)
}

// Update returns a builder for updating this UnknownActor.
// Note that you need to call UnknownActor.Unwrap() before calling this method if this UnknownActor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnknownActor) Update() *UnknownActorUpdateOne {
	return NewUnknownActorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnknownActor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnknownActor) Unwrap() *UnknownActor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnknownActor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnknownActor) String() string {
	var builder strings.Builder
	builder.WriteString("UnknownActor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("detected_username=")
	builder.WriteString(_m.DetectedUsername)
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mention_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionCount))
	builder.WriteString(", ")
	builder.WriteString("author_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthorCount))
	builder.WriteString(", ")
	builder.WriteString("mention_context=")
	builder.WriteString(_m.MentionContext)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("bio=")
	builder.WriteString(_m.Bio)
	builder.WriteString(", ")
	builder.WriteString("review_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewStatus))
	builder.WriteByte(')')
	return builder.String()
}

// UnknownActors is a parsable slice of UnknownActor.
type UnknownActors []*UnknownActor
