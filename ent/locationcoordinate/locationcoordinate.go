// Code generated by ent, DO NOT EDIT.

package locationcoordinate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the locationcoordinate type in the database.
	Label = "location_coordinate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldLocationType holds the string denoting the location_type field in the database.
	FieldLocationType = "location_type"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldLastVerified holds the string denoting the last_verified field in the database.
	FieldLastVerified = "last_verified"
	// Table holds the table name of the locationcoordinate in the database.
	Table = "location_coordinates"
)

// Columns holds all SQL columns for locationcoordinate fields.
var Columns = []string{
	FieldID,
	FieldCity,
	FieldState,
	FieldLocationType,
	FieldLatitude,
	FieldLongitude,
	FieldSource,
	FieldConfidence,
	FieldLastVerified,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultLastVerified holds the default value on creation for the "last_verified" field.
	DefaultLastVerified func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// LocationType defines the type for the "location_type" enum field.
type LocationType string

// LocationType values.
const (
	LocationTypeCity  LocationType = "city"
	LocationTypeState LocationType = "state"
)

func (lt LocationType) String() string {
	return string(lt)
}

// LocationTypeValidator is a validator for the "location_type" field enum values. It is called by the builders before save.
func LocationTypeValidator(lt LocationType) error {
	switch lt {
	case LocationTypeCity, LocationTypeState:
		return nil
	default:
		return fmt.Errorf("locationcoordinate: invalid enum value for location_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the LocationCoordinate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByLocationType orders the results by the location_type field.
func ByLocationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationType, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByLastVerified orders the results by the last_verified field.
func ByLastVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastVerified, opts...).ToFunc()
}
