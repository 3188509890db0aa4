// Code generated by ent, DO NOT EDIT.

package eventactorlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContainsFold(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldEventID, v))
}

// ActorHandle applies equality check predicate on the "actor_handle" field. It's identical to ActorHandleEQ.
func ActorHandle(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldActorHandle, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldPlatform, v))
}

// ActorType applies equality check predicate on the "actor_type" field. It's identical to ActorTypeEQ.
func ActorType(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldActorType, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldActorID, v))
}

// UnknownActorID applies equality check predicate on the "unknown_actor_id" field. It's identical to UnknownActorIDEQ.
func UnknownActorID(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldUnknownActorID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldCreatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContainsFold(FieldEventID, v))
}

// ActorHandleEQ applies the EQ predicate on the "actor_handle" field.
func ActorHandleEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldActorHandle, v))
}

// ActorHandleNEQ applies the NEQ predicate on the "actor_handle" field.
func ActorHandleNEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNEQ(FieldActorHandle, v))
}

// ActorHandleIn applies the In predicate on the "actor_handle" field.
func ActorHandleIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIn(FieldActorHandle, vs...))
}

// ActorHandleNotIn applies the NotIn predicate on the "actor_handle" field.
func ActorHandleNotIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotIn(FieldActorHandle, vs...))
}

// ActorHandleGT applies the GT predicate on the "actor_handle" field.
func ActorHandleGT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGT(FieldActorHandle, v))
}

// ActorHandleGTE applies the GTE predicate on the "actor_handle" field.
func ActorHandleGTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGTE(FieldActorHandle, v))
}

// ActorHandleLT applies the LT predicate on the "actor_handle" field.
func ActorHandleLT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLT(FieldActorHandle, v))
}

// ActorHandleLTE applies the LTE predicate on the "actor_handle" field.
func ActorHandleLTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLTE(FieldActorHandle, v))
}

// ActorHandleContains applies the Contains predicate on the "actor_handle" field.
func ActorHandleContains(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContains(FieldActorHandle, v))
}

// ActorHandleHasPrefix applies the HasPrefix predicate on the "actor_handle" field.
func ActorHandleHasPrefix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasPrefix(FieldActorHandle, v))
}

// ActorHandleHasSuffix applies the HasSuffix predicate on the "actor_handle" field.
func ActorHandleHasSuffix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasSuffix(FieldActorHandle, v))
}

// ActorHandleEqualFold applies the EqualFold predicate on the "actor_handle" field.
func ActorHandleEqualFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEqualFold(FieldActorHandle, v))
}

// ActorHandleContainsFold applies the ContainsFold predicate on the "actor_handle" field.
func ActorHandleContainsFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContainsFold(FieldActorHandle, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContainsFold(FieldPlatform, v))
}

// ActorTypeEQ applies the EQ predicate on the "actor_type" field.
func ActorTypeEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldActorType, v))
}

// ActorTypeNEQ applies the NEQ predicate on the "actor_type" field.
func ActorTypeNEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNEQ(FieldActorType, v))
}

// ActorTypeIn applies the In predicate on the "actor_type" field.
func ActorTypeIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIn(FieldActorType, vs...))
}

// ActorTypeNotIn applies the NotIn predicate on the "actor_type" field.
func ActorTypeNotIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotIn(FieldActorType, vs...))
}

// ActorTypeGT applies the GT predicate on the "actor_type" field.
func ActorTypeGT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGT(FieldActorType, v))
}

// ActorTypeGTE applies the GTE predicate on the "actor_type" field.
func ActorTypeGTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGTE(FieldActorType, v))
}

// ActorTypeLT applies the LT predicate on the "actor_type" field.
func ActorTypeLT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLT(FieldActorType, v))
}

// ActorTypeLTE applies the LTE predicate on the "actor_type" field.
func ActorTypeLTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLTE(FieldActorType, v))
}

// ActorTypeContains applies the Contains predicate on the "actor_type" field.
func ActorTypeContains(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContains(FieldActorType, v))
}

// ActorTypeHasPrefix applies the HasPrefix predicate on the "actor_type" field.
func ActorTypeHasPrefix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasPrefix(FieldActorType, v))
}

// ActorTypeHasSuffix applies the HasSuffix predicate on the "actor_type" field.
func ActorTypeHasSuffix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasSuffix(FieldActorType, v))
}

// ActorTypeIsNil applies the IsNil predicate on the "actor_type" field.
func ActorTypeIsNil() predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIsNull(FieldActorType))
}

// ActorTypeNotNil applies the NotNil predicate on the "actor_type" field.
func ActorTypeNotNil() predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotNull(FieldActorType))
}

// ActorTypeEqualFold applies the EqualFold predicate on the "actor_type" field.
func ActorTypeEqualFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEqualFold(FieldActorType, v))
}

// ActorTypeContainsFold applies the ContainsFold predicate on the "actor_type" field.
func ActorTypeContainsFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContainsFold(FieldActorType, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDIsNil applies the IsNil predicate on the "actor_id" field.
func ActorIDIsNil() predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIsNull(FieldActorID))
}

// ActorIDNotNil applies the NotNil predicate on the "actor_id" field.
func ActorIDNotNil() predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotNull(FieldActorID))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContainsFold(FieldActorID, v))
}

// UnknownActorIDEQ applies the EQ predicate on the "unknown_actor_id" field.
func UnknownActorIDEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldUnknownActorID, v))
}

// UnknownActorIDNEQ applies the NEQ predicate on the "unknown_actor_id" field.
func UnknownActorIDNEQ(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNEQ(FieldUnknownActorID, v))
}

// UnknownActorIDIn applies the In predicate on the "unknown_actor_id" field.
func UnknownActorIDIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIn(FieldUnknownActorID, vs...))
}

// UnknownActorIDNotIn applies the NotIn predicate on the "unknown_actor_id" field.
func UnknownActorIDNotIn(vs ...string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotIn(FieldUnknownActorID, vs...))
}

// UnknownActorIDGT applies the GT predicate on the "unknown_actor_id" field.
func UnknownActorIDGT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGT(FieldUnknownActorID, v))
}

// UnknownActorIDGTE applies the GTE predicate on the "unknown_actor_id" field.
func UnknownActorIDGTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGTE(FieldUnknownActorID, v))
}

// UnknownActorIDLT applies the LT predicate on the "unknown_actor_id" field.
func UnknownActorIDLT(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLT(FieldUnknownActorID, v))
}

// UnknownActorIDLTE applies the LTE predicate on the "unknown_actor_id" field.
func UnknownActorIDLTE(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLTE(FieldUnknownActorID, v))
}

// UnknownActorIDContains applies the Contains predicate on the "unknown_actor_id" field.
func UnknownActorIDContains(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContains(FieldUnknownActorID, v))
}

// UnknownActorIDHasPrefix applies the HasPrefix predicate on the "unknown_actor_id" field.
func UnknownActorIDHasPrefix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasPrefix(FieldUnknownActorID, v))
}

// UnknownActorIDHasSuffix applies the HasSuffix predicate on the "unknown_actor_id" field.
func UnknownActorIDHasSuffix(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldHasSuffix(FieldUnknownActorID, v))
}

// UnknownActorIDIsNil applies the IsNil predicate on the "unknown_actor_id" field.
func UnknownActorIDIsNil() predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIsNull(FieldUnknownActorID))
}

// UnknownActorIDNotNil applies the NotNil predicate on the "unknown_actor_id" field.
func UnknownActorIDNotNil() predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotNull(FieldUnknownActorID))
}

// UnknownActorIDEqualFold applies the EqualFold predicate on the "unknown_actor_id" field.
func UnknownActorIDEqualFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEqualFold(FieldUnknownActorID, v))
}

// UnknownActorIDContainsFold applies the ContainsFold predicate on the "unknown_actor_id" field.
func UnknownActorIDContainsFold(v string) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldContainsFold(FieldUnknownActorID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EventActorLink {
	return predicate.EventActorLink(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.EventActorLink {
	return predicate.EventActorLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.EventActorLink {
	return predicate.EventActorLink(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventActorLink) predicate.EventActorLink {
	return predicate.EventActorLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventActorLink) predicate.EventActorLink {
	return predicate.EventActorLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventActorLink) predicate.EventActorLink {
	return predicate.EventActorLink(sql.NotPredicates(p))
}
