// Code generated by ent, DO NOT EDIT.

package postunknownactor

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldContainsFold(FieldID, id))
}

// PostID applies equality check predicate on the "post_id" field. It's identical to PostIDEQ.
func PostID(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEQ(FieldPostID, v))
}

// UnknownActorID applies equality check predicate on the "unknown_actor_id" field. It's identical to UnknownActorIDEQ.
func UnknownActorID(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEQ(FieldUnknownActorID, v))
}

// PostIDEQ applies the EQ predicate on the "post_id" field.
func PostIDEQ(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEQ(FieldPostID, v))
}

// PostIDNEQ applies the NEQ predicate on the "post_id" field.
func PostIDNEQ(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldNEQ(FieldPostID, v))
}

// PostIDIn applies the In predicate on the "post_id" field.
func PostIDIn(vs ...string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldIn(FieldPostID, vs...))
}

// PostIDNotIn applies the NotIn predicate on the "post_id" field.
func PostIDNotIn(vs ...string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldNotIn(FieldPostID, vs...))
}

// PostIDGT applies the GT predicate on the "post_id" field.
func PostIDGT(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldGT(FieldPostID, v))
}

// PostIDGTE applies the GTE predicate on the "post_id" field.
func PostIDGTE(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldGTE(FieldPostID, v))
}

// PostIDLT applies the LT predicate on the "post_id" field.
func PostIDLT(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldLT(FieldPostID, v))
}

// PostIDLTE applies the LTE predicate on the "post_id" field.
func PostIDLTE(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldLTE(FieldPostID, v))
}

// PostIDContains applies the Contains predicate on the "post_id" field.
func PostIDContains(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldContains(FieldPostID, v))
}

// PostIDHasPrefix applies the HasPrefix predicate on the "post_id" field.
func PostIDHasPrefix(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldHasPrefix(FieldPostID, v))
}

// PostIDHasSuffix applies the HasSuffix predicate on the "post_id" field.
func PostIDHasSuffix(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldHasSuffix(FieldPostID, v))
}

// PostIDEqualFold applies the EqualFold predicate on the "post_id" field.
func PostIDEqualFold(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEqualFold(FieldPostID, v))
}

// PostIDContainsFold applies the ContainsFold predicate on the "post_id" field.
func PostIDContainsFold(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldContainsFold(FieldPostID, v))
}

// UnknownActorIDEQ applies the EQ predicate on the "unknown_actor_id" field.
func UnknownActorIDEQ(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEQ(FieldUnknownActorID, v))
}

// UnknownActorIDNEQ applies the NEQ predicate on the "unknown_actor_id" field.
func UnknownActorIDNEQ(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldNEQ(FieldUnknownActorID, v))
}

// UnknownActorIDIn applies the In predicate on the "unknown_actor_id" field.
func UnknownActorIDIn(vs ...string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldIn(FieldUnknownActorID, vs...))
}

// UnknownActorIDNotIn applies the NotIn predicate on the "unknown_actor_id" field.
func UnknownActorIDNotIn(vs ...string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldNotIn(FieldUnknownActorID, vs...))
}

// UnknownActorIDGT applies the GT predicate on the "unknown_actor_id" field.
func UnknownActorIDGT(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldGT(FieldUnknownActorID, v))
}

// UnknownActorIDGTE applies the GTE predicate on the "unknown_actor_id" field.
func UnknownActorIDGTE(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldGTE(FieldUnknownActorID, v))
}

// UnknownActorIDLT applies the LT predicate on the "unknown_actor_id" field.
func UnknownActorIDLT(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldLT(FieldUnknownActorID, v))
}

// UnknownActorIDLTE applies the LTE predicate on the "unknown_actor_id" field.
func UnknownActorIDLTE(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldLTE(FieldUnknownActorID, v))
}

// UnknownActorIDContains applies the Contains predicate on the "unknown_actor_id" field.
func UnknownActorIDContains(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldContains(FieldUnknownActorID, v))
}

// UnknownActorIDHasPrefix applies the HasPrefix predicate on the "unknown_actor_id" field.
func UnknownActorIDHasPrefix(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldHasPrefix(FieldUnknownActorID, v))
}

// UnknownActorIDHasSuffix applies the HasSuffix predicate on the "unknown_actor_id" field.
func UnknownActorIDHasSuffix(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldHasSuffix(FieldUnknownActorID, v))
}

// UnknownActorIDEqualFold applies the EqualFold predicate on the "unknown_actor_id" field.
func UnknownActorIDEqualFold(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldEqualFold(FieldUnknownActorID, v))
}

// UnknownActorIDContainsFold applies the ContainsFold predicate on the "unknown_actor_id" field.
func UnknownActorIDContainsFold(v string) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.FieldContainsFold(FieldUnknownActorID, v))
}

// HasPost applies the HasEdge predicate on the "post" edge.
func HasPost() predicate.PostUnknownActor {
	return predicate.PostUnknownActor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PostTable, PostColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPostWith applies the HasEdge predicate on the "post" edge with a given conditions (other predicates).
func HasPostWith(preds ...predicate.Post) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(func(s *sql.Selector) {
		step := newPostStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUnknownActor applies the HasEdge predicate on the "unknown_actor" edge.
func HasUnknownActor() predicate.PostUnknownActor {
	return predicate.PostUnknownActor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UnknownActorTable, UnknownActorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUnknownActorWith applies the HasEdge predicate on the "unknown_actor" edge with a given conditions (other predicates).
func HasUnknownActorWith(preds ...predicate.UnknownActor) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(func(s *sql.Selector) {
		step := newUnknownActorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PostUnknownActor) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PostUnknownActor) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PostUnknownActor) predicate.PostUnknownActor {
	return predicate.PostUnknownActor(sql.NotPredicates(p))
}
