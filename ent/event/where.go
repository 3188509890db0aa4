// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldID, id))
}

// EventName applies equality check predicate on the "event_name" field. It's identical to EventNameEQ.
func EventName(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventName, v))
}

// EventDate applies equality check predicate on the "event_date" field. It's identical to EventDateEQ.
func EventDate(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventDate, v))
}

// EventDescription applies equality check predicate on the "event_description" field. It's identical to EventDescriptionEQ.
func EventDescription(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventDescription, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLocation, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldState, v))
}

// Participants applies equality check predicate on the "participants" field. It's identical to ParticipantsEQ.
func Participants(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldParticipants, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldConfidenceScore, v))
}

// ExtractedBy applies equality check predicate on the "extracted_by" field. It's identical to ExtractedByEQ.
func ExtractedBy(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldExtractedBy, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldExtractedAt, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldVerified, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContentHash, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProjectID, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLongitude, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// EventNameEQ applies the EQ predicate on the "event_name" field.
func EventNameEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventName, v))
}

// EventNameNEQ applies the NEQ predicate on the "event_name" field.
func EventNameNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventName, v))
}

// EventNameIn applies the In predicate on the "event_name" field.
func EventNameIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventName, vs...))
}

// EventNameNotIn applies the NotIn predicate on the "event_name" field.
func EventNameNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventName, vs...))
}

// EventNameGT applies the GT predicate on the "event_name" field.
func EventNameGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventName, v))
}

// EventNameGTE applies the GTE predicate on the "event_name" field.
func EventNameGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventName, v))
}

// EventNameLT applies the LT predicate on the "event_name" field.
func EventNameLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventName, v))
}

// EventNameLTE applies the LTE predicate on the "event_name" field.
func EventNameLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventName, v))
}

// EventNameContains applies the Contains predicate on the "event_name" field.
func EventNameContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventName, v))
}

// EventNameHasPrefix applies the HasPrefix predicate on the "event_name" field.
func EventNameHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventName, v))
}

// EventNameHasSuffix applies the HasSuffix predicate on the "event_name" field.
func EventNameHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventName, v))
}

// EventNameEqualFold applies the EqualFold predicate on the "event_name" field.
func EventNameEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventName, v))
}

// EventNameContainsFold applies the ContainsFold predicate on the "event_name" field.
func EventNameContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventName, v))
}

// EventDateEQ applies the EQ predicate on the "event_date" field.
func EventDateEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventDate, v))
}

// EventDateNEQ applies the NEQ predicate on the "event_date" field.
func EventDateNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventDate, v))
}

// EventDateIn applies the In predicate on the "event_date" field.
func EventDateIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventDate, vs...))
}

// EventDateNotIn applies the NotIn predicate on the "event_date" field.
func EventDateNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventDate, vs...))
}

// EventDateGT applies the GT predicate on the "event_date" field.
func EventDateGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventDate, v))
}

// EventDateGTE applies the GTE predicate on the "event_date" field.
func EventDateGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventDate, v))
}

// EventDateLT applies the LT predicate on the "event_date" field.
func EventDateLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventDate, v))
}

// EventDateLTE applies the LTE predicate on the "event_date" field.
func EventDateLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventDate, v))
}

// EventDateContains applies the Contains predicate on the "event_date" field.
func EventDateContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventDate, v))
}

// EventDateHasPrefix applies the HasPrefix predicate on the "event_date" field.
func EventDateHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventDate, v))
}

// EventDateHasSuffix applies the HasSuffix predicate on the "event_date" field.
func EventDateHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventDate, v))
}

// EventDateIsNil applies the IsNil predicate on the "event_date" field.
func EventDateIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldEventDate))
}

// EventDateNotNil applies the NotNil predicate on the "event_date" field.
func EventDateNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldEventDate))
}

// EventDateEqualFold applies the EqualFold predicate on the "event_date" field.
func EventDateEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventDate, v))
}

// EventDateContainsFold applies the ContainsFold predicate on the "event_date" field.
func EventDateContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventDate, v))
}

// EventDescriptionEQ applies the EQ predicate on the "event_description" field.
func EventDescriptionEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventDescription, v))
}

// EventDescriptionNEQ applies the NEQ predicate on the "event_description" field.
func EventDescriptionNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventDescription, v))
}

// EventDescriptionIn applies the In predicate on the "event_description" field.
func EventDescriptionIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventDescription, vs...))
}

// EventDescriptionNotIn applies the NotIn predicate on the "event_description" field.
func EventDescriptionNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventDescription, vs...))
}

// EventDescriptionGT applies the GT predicate on the "event_description" field.
func EventDescriptionGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventDescription, v))
}

// EventDescriptionGTE applies the GTE predicate on the "event_description" field.
func EventDescriptionGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventDescription, v))
}

// EventDescriptionLT applies the LT predicate on the "event_description" field.
func EventDescriptionLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventDescription, v))
}

// EventDescriptionLTE applies the LTE predicate on the "event_description" field.
func EventDescriptionLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventDescription, v))
}

// EventDescriptionContains applies the Contains predicate on the "event_description" field.
func EventDescriptionContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventDescription, v))
}

// EventDescriptionHasPrefix applies the HasPrefix predicate on the "event_description" field.
func EventDescriptionHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventDescription, v))
}

// EventDescriptionHasSuffix applies the HasSuffix predicate on the "event_description" field.
func EventDescriptionHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventDescription, v))
}

// EventDescriptionEqualFold applies the EqualFold predicate on the "event_description" field.
func EventDescriptionEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventDescription, v))
}

// EventDescriptionContainsFold applies the ContainsFold predicate on the "event_description" field.
func EventDescriptionContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventDescription, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldLocation, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldState, v))
}

// ParticipantsEQ applies the EQ predicate on the "participants" field.
func ParticipantsEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldParticipants, v))
}

// ParticipantsNEQ applies the NEQ predicate on the "participants" field.
func ParticipantsNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldParticipants, v))
}

// ParticipantsIn applies the In predicate on the "participants" field.
func ParticipantsIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldParticipants, vs...))
}

// ParticipantsNotIn applies the NotIn predicate on the "participants" field.
func ParticipantsNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldParticipants, vs...))
}

// ParticipantsGT applies the GT predicate on the "participants" field.
func ParticipantsGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldParticipants, v))
}

// ParticipantsGTE applies the GTE predicate on the "participants" field.
func ParticipantsGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldParticipants, v))
}

// ParticipantsLT applies the LT predicate on the "participants" field.
func ParticipantsLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldParticipants, v))
}

// ParticipantsLTE applies the LTE predicate on the "participants" field.
func ParticipantsLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldParticipants, v))
}

// ParticipantsContains applies the Contains predicate on the "participants" field.
func ParticipantsContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldParticipants, v))
}

// ParticipantsHasPrefix applies the HasPrefix predicate on the "participants" field.
func ParticipantsHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldParticipants, v))
}

// ParticipantsHasSuffix applies the HasSuffix predicate on the "participants" field.
func ParticipantsHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldParticipants, v))
}

// ParticipantsIsNil applies the IsNil predicate on the "participants" field.
func ParticipantsIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldParticipants))
}

// ParticipantsNotNil applies the NotNil predicate on the "participants" field.
func ParticipantsNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldParticipants))
}

// ParticipantsEqualFold applies the EqualFold predicate on the "participants" field.
func ParticipantsEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldParticipants, v))
}

// ParticipantsContainsFold applies the ContainsFold predicate on the "participants" field.
func ParticipantsContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldParticipants, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldConfidenceScore, v))
}

// ExtractedByEQ applies the EQ predicate on the "extracted_by" field.
func ExtractedByEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldExtractedBy, v))
}

// ExtractedByNEQ applies the NEQ predicate on the "extracted_by" field.
func ExtractedByNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldExtractedBy, v))
}

// ExtractedByIn applies the In predicate on the "extracted_by" field.
func ExtractedByIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldExtractedBy, vs...))
}

// ExtractedByNotIn applies the NotIn predicate on the "extracted_by" field.
func ExtractedByNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldExtractedBy, vs...))
}

// ExtractedByGT applies the GT predicate on the "extracted_by" field.
func ExtractedByGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldExtractedBy, v))
}

// ExtractedByGTE applies the GTE predicate on the "extracted_by" field.
func ExtractedByGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldExtractedBy, v))
}

// ExtractedByLT applies the LT predicate on the "extracted_by" field.
func ExtractedByLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldExtractedBy, v))
}

// ExtractedByLTE applies the LTE predicate on the "extracted_by" field.
func ExtractedByLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldExtractedBy, v))
}

// ExtractedByContains applies the Contains predicate on the "extracted_by" field.
func ExtractedByContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldExtractedBy, v))
}

// ExtractedByHasPrefix applies the HasPrefix predicate on the "extracted_by" field.
func ExtractedByHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldExtractedBy, v))
}

// ExtractedByHasSuffix applies the HasSuffix predicate on the "extracted_by" field.
func ExtractedByHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldExtractedBy, v))
}

// ExtractedByIsNil applies the IsNil predicate on the "extracted_by" field.
func ExtractedByIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldExtractedBy))
}

// ExtractedByNotNil applies the NotNil predicate on the "extracted_by" field.
func ExtractedByNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldExtractedBy))
}

// ExtractedByEqualFold applies the EqualFold predicate on the "extracted_by" field.
func ExtractedByEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldExtractedBy, v))
}

// ExtractedByContainsFold applies the ContainsFold predicate on the "extracted_by" field.
func ExtractedByContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldExtractedBy, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldExtractedAt, v))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldVerified, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldContentHash, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldProjectID, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldEmbedding))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLatitude, v))
}

// LatitudeIsNil applies the IsNil predicate on the "latitude" field.
func LatitudeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldLatitude))
}

// LatitudeNotNil applies the NotNil predicate on the "latitude" field.
func LatitudeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldLatitude))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLongitude, v))
}

// LongitudeIsNil applies the IsNil predicate on the "longitude" field.
func LongitudeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldLongitude))
}

// LongitudeNotNil applies the NotNil predicate on the "longitude" field.
func LongitudeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldLongitude))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPostLinks applies the HasEdge predicate on the "post_links" edge.
func HasPostLinks() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PostLinksTable, PostLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPostLinksWith applies the HasEdge predicate on the "post_links" edge with a given conditions (other predicates).
func HasPostLinksWith(preds ...predicate.EventPostLink) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newPostLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActorLinks applies the HasEdge predicate on the "actor_links" edge.
func HasActorLinks() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActorLinksTable, ActorLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActorLinksWith applies the HasEdge predicate on the "actor_links" edge with a given conditions (other predicates).
func HasActorLinksWith(preds ...predicate.EventActorLink) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newActorLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
