// Code generated by ent, DO NOT EDIT.

package dynamicslug

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldContainsFold(FieldID, id))
}

// ParentTag applies equality check predicate on the "parent_tag" field. It's identical to ParentTagEQ.
func ParentTag(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldParentTag, v))
}

// SlugIdentifier applies equality check predicate on the "slug_identifier" field. It's identical to SlugIdentifierEQ.
func SlugIdentifier(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldSlugIdentifier, v))
}

// FullSlug applies equality check predicate on the "full_slug" field. It's identical to FullSlugEQ.
func FullSlug(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldFullSlug, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldCreatedAt, v))
}

// ParentTagEQ applies the EQ predicate on the "parent_tag" field.
func ParentTagEQ(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldParentTag, v))
}

// ParentTagNEQ applies the NEQ predicate on the "parent_tag" field.
func ParentTagNEQ(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNEQ(FieldParentTag, v))
}

// ParentTagIn applies the In predicate on the "parent_tag" field.
func ParentTagIn(vs ...string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldIn(FieldParentTag, vs...))
}

// ParentTagNotIn applies the NotIn predicate on the "parent_tag" field.
func ParentTagNotIn(vs ...string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNotIn(FieldParentTag, vs...))
}

// ParentTagGT applies the GT predicate on the "parent_tag" field.
func ParentTagGT(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGT(FieldParentTag, v))
}

// ParentTagGTE applies the GTE predicate on the "parent_tag" field.
func ParentTagGTE(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGTE(FieldParentTag, v))
}

// ParentTagLT applies the LT predicate on the "parent_tag" field.
func ParentTagLT(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLT(FieldParentTag, v))
}

// ParentTagLTE applies the LTE predicate on the "parent_tag" field.
func ParentTagLTE(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLTE(FieldParentTag, v))
}

// ParentTagContains applies the Contains predicate on the "parent_tag" field.
func ParentTagContains(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldContains(FieldParentTag, v))
}

// ParentTagHasPrefix applies the HasPrefix predicate on the "parent_tag" field.
func ParentTagHasPrefix(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldHasPrefix(FieldParentTag, v))
}

// ParentTagHasSuffix applies the HasSuffix predicate on the "parent_tag" field.
func ParentTagHasSuffix(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldHasSuffix(FieldParentTag, v))
}

// ParentTagEqualFold applies the EqualFold predicate on the "parent_tag" field.
func ParentTagEqualFold(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEqualFold(FieldParentTag, v))
}

// ParentTagContainsFold applies the ContainsFold predicate on the "parent_tag" field.
func ParentTagContainsFold(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldContainsFold(FieldParentTag, v))
}

// SlugIdentifierEQ applies the EQ predicate on the "slug_identifier" field.
func SlugIdentifierEQ(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldSlugIdentifier, v))
}

// SlugIdentifierNEQ applies the NEQ predicate on the "slug_identifier" field.
func SlugIdentifierNEQ(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNEQ(FieldSlugIdentifier, v))
}

// SlugIdentifierIn applies the In predicate on the "slug_identifier" field.
func SlugIdentifierIn(vs ...string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldIn(FieldSlugIdentifier, vs...))
}

// SlugIdentifierNotIn applies the NotIn predicate on the "slug_identifier" field.
func SlugIdentifierNotIn(vs ...string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNotIn(FieldSlugIdentifier, vs...))
}

// SlugIdentifierGT applies the GT predicate on the "slug_identifier" field.
func SlugIdentifierGT(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGT(FieldSlugIdentifier, v))
}

// SlugIdentifierGTE applies the GTE predicate on the "slug_identifier" field.
func SlugIdentifierGTE(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGTE(FieldSlugIdentifier, v))
}

// SlugIdentifierLT applies the LT predicate on the "slug_identifier" field.
func SlugIdentifierLT(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLT(FieldSlugIdentifier, v))
}

// SlugIdentifierLTE applies the LTE predicate on the "slug_identifier" field.
func SlugIdentifierLTE(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLTE(FieldSlugIdentifier, v))
}

// SlugIdentifierContains applies the Contains predicate on the "slug_identifier" field.
func SlugIdentifierContains(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldContains(FieldSlugIdentifier, v))
}

// SlugIdentifierHasPrefix applies the HasPrefix predicate on the "slug_identifier" field.
func SlugIdentifierHasPrefix(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldHasPrefix(FieldSlugIdentifier, v))
}

// SlugIdentifierHasSuffix applies the HasSuffix predicate on the "slug_identifier" field.
func SlugIdentifierHasSuffix(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldHasSuffix(FieldSlugIdentifier, v))
}

// SlugIdentifierEqualFold applies the EqualFold predicate on the "slug_identifier" field.
func SlugIdentifierEqualFold(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEqualFold(FieldSlugIdentifier, v))
}

// SlugIdentifierContainsFold applies the ContainsFold predicate on the "slug_identifier" field.
func SlugIdentifierContainsFold(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldContainsFold(FieldSlugIdentifier, v))
}

// FullSlugEQ applies the EQ predicate on the "full_slug" field.
func FullSlugEQ(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldFullSlug, v))
}

// FullSlugNEQ applies the NEQ predicate on the "full_slug" field.
func FullSlugNEQ(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNEQ(FieldFullSlug, v))
}

// FullSlugIn applies the In predicate on the "full_slug" field.
func FullSlugIn(vs ...string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldIn(FieldFullSlug, vs...))
}

// FullSlugNotIn applies the NotIn predicate on the "full_slug" field.
func FullSlugNotIn(vs ...string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNotIn(FieldFullSlug, vs...))
}

// FullSlugGT applies the GT predicate on the "full_slug" field.
func FullSlugGT(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGT(FieldFullSlug, v))
}

// FullSlugGTE applies the GTE predicate on the "full_slug" field.
func FullSlugGTE(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGTE(FieldFullSlug, v))
}

// FullSlugLT applies the LT predicate on the "full_slug" field.
func FullSlugLT(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLT(FieldFullSlug, v))
}

// FullSlugLTE applies the LTE predicate on the "full_slug" field.
func FullSlugLTE(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLTE(FieldFullSlug, v))
}

// FullSlugContains applies the Contains predicate on the "full_slug" field.
func FullSlugContains(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldContains(FieldFullSlug, v))
}

// FullSlugHasPrefix applies the HasPrefix predicate on the "full_slug" field.
func FullSlugHasPrefix(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldHasPrefix(FieldFullSlug, v))
}

// FullSlugHasSuffix applies the HasSuffix predicate on the "full_slug" field.
func FullSlugHasSuffix(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldHasSuffix(FieldFullSlug, v))
}

// FullSlugEqualFold applies the EqualFold predicate on the "full_slug" field.
func FullSlugEqualFold(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEqualFold(FieldFullSlug, v))
}

// FullSlugContainsFold applies the ContainsFold predicate on the "full_slug" field.
func FullSlugContainsFold(v string) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldContainsFold(FieldFullSlug, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DynamicSlug) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DynamicSlug) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DynamicSlug) predicate.DynamicSlug {
	return predicate.DynamicSlug(sql.NotPredicates(p))
}
