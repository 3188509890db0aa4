// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/locationcoordinate"
)

// LocationCoordinate is the model entity for the LocationCoordinate schema.
type LocationCoordinate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// City holds the value of the "city" field.
	City *string `json:"city,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// LocationType holds the value of the "location_type" field.
	LocationType locationcoordinate.LocationType `json:"location_type,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude float64 `json:"longitude,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// LastVerified holds the value of the "last_verified" field.
	LastVerified time.Time `json:"last_verified,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LocationCoordinate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case locationcoordinate.FieldLatitude, locationcoordinate.FieldLongitude, locationcoordinate.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case locationcoordinate.FieldID, locationcoordinate.FieldCity, locationcoordinate.FieldState, locationcoordinate.FieldLocationType, locationcoordinate.FieldSource:
			values[i] = new(sql.NullString)
		case locationcoordinate.FieldLastVerified:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LocationCoordinate fields.
func (_m *LocationCoordinate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case locationcoordinate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case locationcoordinate.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = new(string)
				*_m.City = value.String
			}
		case locationcoordinate.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case locationcoordinate.FieldLocationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_type", values[i])
			} else if value.Valid {
				_m.LocationType = locationcoordinate.LocationType(value.String)
			}
		case locationcoordinate.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case locationcoordinate.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		case locationcoordinate.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case locationcoordinate.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case locationcoordinate.FieldLastVerified:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_verified", values[i])
			} else if value.Valid {
				_m.LastVerified = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LocationCoordinate.
// This includes values selected through modifiers, order, etc.
func (_m *LocationCoordinate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LocationCoordinate.
// Note that you need to call LocationCoordinate.Unwrap() before calling this method if this LocationCoordinate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LocationCoordinate) Update() *LocationCoordinateUpdateOne {
	return NewLocationCoordinateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LocationCoordinate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LocationCoordinate) Unwrap() *LocationCoordinate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LocationCoordinate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LocationCoordinate) String() string {
	var builder strings.Builder
	builder.WriteString("LocationCoordinate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.City; v != nil {
		builder.WriteString("city=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("location_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationType))
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("last_verified=")
	builder.WriteString(_m.LastVerified.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LocationCoordinates is a parsable slice of LocationCoordinate.
type LocationCoordinates []*LocationCoordinate
