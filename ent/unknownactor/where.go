// Code generated by ent, DO NOT EDIT.

package unknownactor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContainsFold(FieldID, id))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldPlatform, v))
}

// DetectedUsername applies equality check predicate on the "detected_username" field. It's identical to DetectedUsernameEQ.
func DetectedUsername(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldDetectedUsername, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldLastSeen, v))
}

// MentionCount applies equality check predicate on the "mention_count" field. It's identical to MentionCountEQ.
func MentionCount(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldMentionCount, v))
}

// AuthorCount applies equality check predicate on the "author_count" field. It's identical to AuthorCountEQ.
func AuthorCount(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldAuthorCount, v))
}

// MentionContext applies equality check predicate on the "mention_context" field. It's identical to MentionContextEQ.
func MentionContext(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldMentionContext, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldDisplayName, v))
}

// Bio applies equality check predicate on the "bio" field. It's identical to BioEQ.
func Bio(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldBio, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContainsFold(FieldPlatform, v))
}

// DetectedUsernameEQ applies the EQ predicate on the "detected_username" field.
func DetectedUsernameEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldDetectedUsername, v))
}

// DetectedUsernameNEQ applies the NEQ predicate on the "detected_username" field.
func DetectedUsernameNEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldDetectedUsername, v))
}

// DetectedUsernameIn applies the In predicate on the "detected_username" field.
func DetectedUsernameIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldDetectedUsername, vs...))
}

// DetectedUsernameNotIn applies the NotIn predicate on the "detected_username" field.
func DetectedUsernameNotIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldDetectedUsername, vs...))
}

// DetectedUsernameGT applies the GT predicate on the "detected_username" field.
func DetectedUsernameGT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldDetectedUsername, v))
}

// DetectedUsernameGTE applies the GTE predicate on the "detected_username" field.
func DetectedUsernameGTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldDetectedUsername, v))
}

// DetectedUsernameLT applies the LT predicate on the "detected_username" field.
func DetectedUsernameLT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldDetectedUsername, v))
}

// DetectedUsernameLTE applies the LTE predicate on the "detected_username" field.
func DetectedUsernameLTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldDetectedUsername, v))
}

// DetectedUsernameContains applies the Contains predicate on the "detected_username" field.
func DetectedUsernameContains(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContains(FieldDetectedUsername, v))
}

// DetectedUsernameHasPrefix applies the HasPrefix predicate on the "detected_username" field.
func DetectedUsernameHasPrefix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasPrefix(FieldDetectedUsername, v))
}

// DetectedUsernameHasSuffix applies the HasSuffix predicate on the "detected_username" field.
func DetectedUsernameHasSuffix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasSuffix(FieldDetectedUsername, v))
}

// DetectedUsernameEqualFold applies the EqualFold predicate on the "detected_username" field.
func DetectedUsernameEqualFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEqualFold(FieldDetectedUsername, v))
}

// DetectedUsernameContainsFold applies the ContainsFold predicate on the "detected_username" field.
func DetectedUsernameContainsFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContainsFold(FieldDetectedUsername, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldLastSeen, v))
}

// MentionCountEQ applies the EQ predicate on the "mention_count" field.
func MentionCountEQ(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldMentionCount, v))
}

// MentionCountNEQ applies the NEQ predicate on the "mention_count" field.
func MentionCountNEQ(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldMentionCount, v))
}

// MentionCountIn applies the In predicate on the "mention_count" field.
func MentionCountIn(vs ...int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldMentionCount, vs...))
}

// MentionCountNotIn applies the NotIn predicate on the "mention_count" field.
func MentionCountNotIn(vs ...int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldMentionCount, vs...))
}

// MentionCountGT applies the GT predicate on the "mention_count" field.
func MentionCountGT(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldMentionCount, v))
}

// MentionCountGTE applies the GTE predicate on the "mention_count" field.
func MentionCountGTE(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldMentionCount, v))
}

// MentionCountLT applies the LT predicate on the "mention_count" field.
func MentionCountLT(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldMentionCount, v))
}

// MentionCountLTE applies the LTE predicate on the "mention_count" field.
func MentionCountLTE(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldMentionCount, v))
}

// AuthorCountEQ applies the EQ predicate on the "author_count" field.
func AuthorCountEQ(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldAuthorCount, v))
}

// AuthorCountNEQ applies the NEQ predicate on the "author_count" field.
func AuthorCountNEQ(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldAuthorCount, v))
}

// AuthorCountIn applies the In predicate on the "author_count" field.
func AuthorCountIn(vs ...int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldAuthorCount, vs...))
}

// AuthorCountNotIn applies the NotIn predicate on the "author_count" field.
func AuthorCountNotIn(vs ...int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldAuthorCount, vs...))
}

// AuthorCountGT applies the GT predicate on the "author_count" field.
func AuthorCountGT(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldAuthorCount, v))
}

// AuthorCountGTE applies the GTE predicate on the "author_count" field.
func AuthorCountGTE(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldAuthorCount, v))
}

// AuthorCountLT applies the LT predicate on the "author_count" field.
func AuthorCountLT(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldAuthorCount, v))
}

// AuthorCountLTE applies the LTE predicate on the "author_count" field.
func AuthorCountLTE(v int) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldAuthorCount, v))
}

// MentionContextEQ applies the EQ predicate on the "mention_context" field.
func MentionContextEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldMentionContext, v))
}

// MentionContextNEQ applies the NEQ predicate on the "mention_context" field.
func MentionContextNEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldMentionContext, v))
}

// MentionContextIn applies the In predicate on the "mention_context" field.
func MentionContextIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldMentionContext, vs...))
}

// MentionContextNotIn applies the NotIn predicate on the "mention_context" field.
func MentionContextNotIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldMentionContext, vs...))
}

// MentionContextGT applies the GT predicate on the "mention_context" field.
func MentionContextGT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldMentionContext, v))
}

// MentionContextGTE applies the GTE predicate on the "mention_context" field.
func MentionContextGTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldMentionContext, v))
}

// MentionContextLT applies the LT predicate on the "mention_context" field.
func MentionContextLT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldMentionContext, v))
}

// MentionContextLTE applies the LTE predicate on the "mention_context" field.
func MentionContextLTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldMentionContext, v))
}

// MentionContextContains applies the Contains predicate on the "mention_context" field.
func MentionContextContains(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContains(FieldMentionContext, v))
}

// MentionContextHasPrefix applies the HasPrefix predicate on the "mention_context" field.
func MentionContextHasPrefix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasPrefix(FieldMentionContext, v))
}

// MentionContextHasSuffix applies the HasSuffix predicate on the "mention_context" field.
func MentionContextHasSuffix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasSuffix(FieldMentionContext, v))
}

// MentionContextIsNil applies the IsNil predicate on the "mention_context" field.
func MentionContextIsNil() predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIsNull(FieldMentionContext))
}

// MentionContextNotNil applies the NotNil predicate on the "mention_context" field.
func MentionContextNotNil() predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotNull(FieldMentionContext))
}

// MentionContextEqualFold applies the EqualFold predicate on the "mention_context" field.
func MentionContextEqualFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEqualFold(FieldMentionContext, v))
}

// MentionContextContainsFold applies the ContainsFold predicate on the "mention_context" field.
func MentionContextContainsFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContainsFold(FieldMentionContext, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContainsFold(FieldDisplayName, v))
}

// BioEQ applies the EQ predicate on the "bio" field.
func BioEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldBio, v))
}

// BioNEQ applies the NEQ predicate on the "bio" field.
func BioNEQ(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldBio, v))
}

// BioIn applies the In predicate on the "bio" field.
func BioIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldBio, vs...))
}

// BioNotIn applies the NotIn predicate on the "bio" field.
func BioNotIn(vs ...string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldBio, vs...))
}

// BioGT applies the GT predicate on the "bio" field.
func BioGT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGT(FieldBio, v))
}

// BioGTE applies the GTE predicate on the "bio" field.
func BioGTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldGTE(FieldBio, v))
}

// BioLT applies the LT predicate on the "bio" field.
func BioLT(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLT(FieldBio, v))
}

// BioLTE applies the LTE predicate on the "bio" field.
func BioLTE(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldLTE(FieldBio, v))
}

// BioContains applies the Contains predicate on the "bio" field.
func BioContains(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContains(FieldBio, v))
}

// BioHasPrefix applies the HasPrefix predicate on the "bio" field.
func BioHasPrefix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasPrefix(FieldBio, v))
}

// BioHasSuffix applies the HasSuffix predicate on the "bio" field.
func BioHasSuffix(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldHasSuffix(FieldBio, v))
}

// BioIsNil applies the IsNil predicate on the "bio" field.
func BioIsNil() predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIsNull(FieldBio))
}

// BioNotNil applies the NotNil predicate on the "bio" field.
func BioNotNil() predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotNull(FieldBio))
}

// BioEqualFold applies the EqualFold predicate on the "bio" field.
func BioEqualFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEqualFold(FieldBio, v))
}

// BioContainsFold applies the ContainsFold predicate on the "bio" field.
func BioContainsFold(v string) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldContainsFold(FieldBio, v))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v ReviewStatus) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v ReviewStatus) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...ReviewStatus) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...ReviewStatus) predicate.UnknownActor {
	return predicate.UnknownActor(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// HasPostLinks applies the HasEdge predicate on the "post_links" edge.
func HasPostLinks() predicate.UnknownActor {
	return predicate.UnknownActor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PostLinksTable, PostLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPostLinksWith applies the HasEdge predicate on the "post_links" edge with a given conditions (other predicates).
func HasPostLinksWith(preds ...predicate.PostUnknownActor) predicate.UnknownActor {
	return predicate.UnknownActor(func(s *sql.Selector) {
		step := newPostLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnknownActor) predicate.UnknownActor {
	return predicate.UnknownActor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnknownActor) predicate.UnknownActor {
	return predicate.UnknownActor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnknownActor) predicate.UnknownActor {
	return predicate.UnknownActor(sql.NotPredicates(p))
}
