// Code generated by ent, DO NOT EDIT.

package actorusername

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldContainsFold(FieldID, id))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldActorID, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldUsername, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldPlatform, v))
}

// ShouldScrape applies equality check predicate on the "should_scrape" field. It's identical to ShouldScrapeEQ.
func ShouldScrape(v bool) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldShouldScrape, v))
}

// LastScrape applies equality check predicate on the "last_scrape" field. It's identical to LastScrapeEQ.
func LastScrape(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldLastScrape, v))
}

// LastProfileUpdate applies equality check predicate on the "last_profile_update" field. It's identical to LastProfileUpdateEQ.
func LastProfileUpdate(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldLastProfileUpdate, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldContainsFold(FieldActorID, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldContainsFold(FieldUsername, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldContainsFold(FieldPlatform, v))
}

// ShouldScrapeEQ applies the EQ predicate on the "should_scrape" field.
func ShouldScrapeEQ(v bool) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldShouldScrape, v))
}

// ShouldScrapeNEQ applies the NEQ predicate on the "should_scrape" field.
func ShouldScrapeNEQ(v bool) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNEQ(FieldShouldScrape, v))
}

// LastScrapeEQ applies the EQ predicate on the "last_scrape" field.
func LastScrapeEQ(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldLastScrape, v))
}

// LastScrapeNEQ applies the NEQ predicate on the "last_scrape" field.
func LastScrapeNEQ(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNEQ(FieldLastScrape, v))
}

// LastScrapeIn applies the In predicate on the "last_scrape" field.
func LastScrapeIn(vs ...time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldIn(FieldLastScrape, vs...))
}

// LastScrapeNotIn applies the NotIn predicate on the "last_scrape" field.
func LastScrapeNotIn(vs ...time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNotIn(FieldLastScrape, vs...))
}

// LastScrapeGT applies the GT predicate on the "last_scrape" field.
func LastScrapeGT(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGT(FieldLastScrape, v))
}

// LastScrapeGTE applies the GTE predicate on the "last_scrape" field.
func LastScrapeGTE(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGTE(FieldLastScrape, v))
}

// LastScrapeLT applies the LT predicate on the "last_scrape" field.
func LastScrapeLT(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLT(FieldLastScrape, v))
}

// LastScrapeLTE applies the LTE predicate on the "last_scrape" field.
func LastScrapeLTE(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLTE(FieldLastScrape, v))
}

// LastScrapeIsNil applies the IsNil predicate on the "last_scrape" field.
func LastScrapeIsNil() predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldIsNull(FieldLastScrape))
}

// LastScrapeNotNil applies the NotNil predicate on the "last_scrape" field.
func LastScrapeNotNil() predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNotNull(FieldLastScrape))
}

// LastProfileUpdateEQ applies the EQ predicate on the "last_profile_update" field.
func LastProfileUpdateEQ(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldEQ(FieldLastProfileUpdate, v))
}

// LastProfileUpdateNEQ applies the NEQ predicate on the "last_profile_update" field.
func LastProfileUpdateNEQ(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNEQ(FieldLastProfileUpdate, v))
}

// LastProfileUpdateIn applies the In predicate on the "last_profile_update" field.
func LastProfileUpdateIn(vs ...time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldIn(FieldLastProfileUpdate, vs...))
}

// LastProfileUpdateNotIn applies the NotIn predicate on the "last_profile_update" field.
func LastProfileUpdateNotIn(vs ...time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNotIn(FieldLastProfileUpdate, vs...))
}

// LastProfileUpdateGT applies the GT predicate on the "last_profile_update" field.
func LastProfileUpdateGT(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGT(FieldLastProfileUpdate, v))
}

// LastProfileUpdateGTE applies the GTE predicate on the "last_profile_update" field.
func LastProfileUpdateGTE(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldGTE(FieldLastProfileUpdate, v))
}

// LastProfileUpdateLT applies the LT predicate on the "last_profile_update" field.
func LastProfileUpdateLT(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLT(FieldLastProfileUpdate, v))
}

// LastProfileUpdateLTE applies the LTE predicate on the "last_profile_update" field.
func LastProfileUpdateLTE(v time.Time) predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldLTE(FieldLastProfileUpdate, v))
}

// LastProfileUpdateIsNil applies the IsNil predicate on the "last_profile_update" field.
func LastProfileUpdateIsNil() predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldIsNull(FieldLastProfileUpdate))
}

// LastProfileUpdateNotNil applies the NotNil predicate on the "last_profile_update" field.
func LastProfileUpdateNotNil() predicate.ActorUsername {
	return predicate.ActorUsername(sql.FieldNotNull(FieldLastProfileUpdate))
}

// HasActor applies the HasEdge predicate on the "actor" edge.
func HasActor() predicate.ActorUsername {
	return predicate.ActorUsername(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ActorTable, ActorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActorWith applies the HasEdge predicate on the "actor" edge with a given conditions (other predicates).
func HasActorWith(preds ...predicate.Actor) predicate.ActorUsername {
	return predicate.ActorUsername(func(s *sql.Selector) {
		step := newActorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActorUsername) predicate.ActorUsername {
	return predicate.ActorUsername(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActorUsername) predicate.ActorUsername {
	return predicate.ActorUsername(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActorUsername) predicate.ActorUsername {
	return predicate.ActorUsername(sql.NotPredicates(p))
}
