// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/dynamicslug"
)

// DynamicSlug is the model entity for the DynamicSlug schema.
type DynamicSlug struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ParentTag holds the value of the "parent_tag" field.
	ParentTag string `json:"parent_tag,omitempty"`
	// Normalized: lowercase, underscore-separated, collapsed repeats
	SlugIdentifier string `json:"slug_identifier,omitempty"`
	// FullSlug holds the value of the "full_slug" field.
	FullSlug string `json:"full_slug,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DynamicSlug) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dynamicslug.FieldID, dynamicslug.FieldParentTag, dynamicslug.FieldSlugIdentifier, dynamicslug.FieldFullSlug:
			values[i] = new(sql.NullString)
		case dynamicslug.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DynamicSlug fields.
func (_m *DynamicSlug) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dynamicslug.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dynamicslug.FieldParentTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_tag", values[i])
			} else if value.Valid {
				_m.ParentTag = value.String
			}
		case dynamicslug.FieldSlugIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug_identifier", values[i])
			} else if value.Valid {
				_m.SlugIdentifier = value.String
			}
		case dynamicslug.FieldFullSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_slug", values[i])
			} else if value.Valid {
				_m.FullSlug = value.String
			}
		case dynamicslug.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DynamicSlug.
// This includes values selected through modifiers, order, etc.
func (_m *DynamicSlug) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DynamicSlug.
// Note that you need to call DynamicSlug.Unwrap() before calling this method if this DynamicSlug
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DynamicSlug) Update() *DynamicSlugUpdateOne {
	return NewDynamicSlugClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DynamicSlug entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DynamicSlug) Unwrap() *DynamicSlug {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DynamicSlug is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DynamicSlug) String() string {
	var builder strings.Builder
	builder.WriteString("DynamicSlug(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("parent_tag=")
	builder.WriteString(_m.ParentTag)
	builder.WriteString(", ")
	builder.WriteString("slug_identifier=")
	builder.WriteString(_m.SlugIdentifier)
	builder.WriteString(", ")
	builder.WriteString("full_slug=")
	builder.WriteString(_m.FullSlug)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DynamicSlugs is a parsable slice of DynamicSlug.
type DynamicSlugs []*DynamicSlug
