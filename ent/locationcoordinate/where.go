// Code generated by ent, DO NOT EDIT.

package locationcoordinate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldContainsFold(FieldID, id))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldState, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldLongitude, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldSource, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldConfidence, v))
}

// LastVerified applies equality check predicate on the "last_verified" field. It's identical to LastVerifiedEQ.
func LastVerified(v time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldLastVerified, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldContainsFold(FieldState, v))
}

// LocationTypeEQ applies the EQ predicate on the "location_type" field.
func LocationTypeEQ(v LocationType) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldLocationType, v))
}

// LocationTypeNEQ applies the NEQ predicate on the "location_type" field.
func LocationTypeNEQ(v LocationType) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldLocationType, v))
}

// LocationTypeIn applies the In predicate on the "location_type" field.
func LocationTypeIn(vs ...LocationType) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldLocationType, vs...))
}

// LocationTypeNotIn applies the NotIn predicate on the "location_type" field.
func LocationTypeNotIn(vs ...LocationType) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldLocationType, vs...))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLTE(FieldLatitude, v))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLTE(FieldLongitude, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldContainsFold(FieldSource, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLTE(FieldConfidence, v))
}

// LastVerifiedEQ applies the EQ predicate on the "last_verified" field.
func LastVerifiedEQ(v time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldEQ(FieldLastVerified, v))
}

// LastVerifiedNEQ applies the NEQ predicate on the "last_verified" field.
func LastVerifiedNEQ(v time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNEQ(FieldLastVerified, v))
}

// LastVerifiedIn applies the In predicate on the "last_verified" field.
func LastVerifiedIn(vs ...time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldIn(FieldLastVerified, vs...))
}

// LastVerifiedNotIn applies the NotIn predicate on the "last_verified" field.
func LastVerifiedNotIn(vs ...time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldNotIn(FieldLastVerified, vs...))
}

// LastVerifiedGT applies the GT predicate on the "last_verified" field.
func LastVerifiedGT(v time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGT(FieldLastVerified, v))
}

// LastVerifiedGTE applies the GTE predicate on the "last_verified" field.
func LastVerifiedGTE(v time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldGTE(FieldLastVerified, v))
}

// LastVerifiedLT applies the LT predicate on the "last_verified" field.
func LastVerifiedLT(v time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLT(FieldLastVerified, v))
}

// LastVerifiedLTE applies the LTE predicate on the "last_verified" field.
func LastVerifiedLTE(v time.Time) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.FieldLTE(FieldLastVerified, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LocationCoordinate) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LocationCoordinate) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LocationCoordinate) predicate.LocationCoordinate {
	return predicate.LocationCoordinate(sql.NotPredicates(p))
}
