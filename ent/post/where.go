// Code generated by ent, DO NOT EDIT.

package post

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civiclens/civiclens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldID, id))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPlatform, v))
}

// ExternalPostID applies equality check predicate on the "external_post_id" field. It's identical to ExternalPostIDEQ.
func ExternalPostID(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldExternalPostID, v))
}

// AuthorHandle applies equality check predicate on the "author_handle" field. It's identical to AuthorHandleEQ.
func AuthorHandle(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAuthorHandle, v))
}

// AuthorDisplayName applies equality check predicate on the "author_display_name" field. It's identical to AuthorDisplayNameEQ.
func AuthorDisplayName(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAuthorDisplayName, v))
}

// ContentText applies equality check predicate on the "content_text" field. It's identical to ContentTextEQ.
func ContentText(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldContentText, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldTimestamp, v))
}

// LikeCount applies equality check predicate on the "like_count" field. It's identical to LikeCountEQ.
func LikeCount(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLikeCount, v))
}

// ReplyCount applies equality check predicate on the "reply_count" field. It's identical to ReplyCountEQ.
func ReplyCount(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldReplyCount, v))
}

// RetweetCount applies equality check predicate on the "retweet_count" field. It's identical to RetweetCountEQ.
func RetweetCount(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldRetweetCount, v))
}

// CommentCount applies equality check predicate on the "comment_count" field. It's identical to CommentCountEQ.
func CommentCount(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCommentCount, v))
}

// LocationText applies equality check predicate on the "location_text" field. It's identical to LocationTextEQ.
func LocationText(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLocationText, v))
}

// OfflineMediaURL applies equality check predicate on the "offline_media_url" field. It's identical to OfflineMediaURLEQ.
func OfflineMediaURL(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldOfflineMediaURL, v))
}

// ProcessedForEvents applies equality check predicate on the "processed_for_events" field. It's identical to ProcessedForEventsEQ.
func ProcessedForEvents(v bool) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldProcessedForEvents, v))
}

// EventProcessedAt applies equality check predicate on the "event_processed_at" field. It's identical to EventProcessedAtEQ.
func EventProcessedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldEventProcessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCreatedAt, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldPlatform, v))
}

// ExternalPostIDEQ applies the EQ predicate on the "external_post_id" field.
func ExternalPostIDEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldExternalPostID, v))
}

// ExternalPostIDNEQ applies the NEQ predicate on the "external_post_id" field.
func ExternalPostIDNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldExternalPostID, v))
}

// ExternalPostIDIn applies the In predicate on the "external_post_id" field.
func ExternalPostIDIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldExternalPostID, vs...))
}

// ExternalPostIDNotIn applies the NotIn predicate on the "external_post_id" field.
func ExternalPostIDNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldExternalPostID, vs...))
}

// ExternalPostIDGT applies the GT predicate on the "external_post_id" field.
func ExternalPostIDGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldExternalPostID, v))
}

// ExternalPostIDGTE applies the GTE predicate on the "external_post_id" field.
func ExternalPostIDGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldExternalPostID, v))
}

// ExternalPostIDLT applies the LT predicate on the "external_post_id" field.
func ExternalPostIDLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldExternalPostID, v))
}

// ExternalPostIDLTE applies the LTE predicate on the "external_post_id" field.
func ExternalPostIDLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldExternalPostID, v))
}

// ExternalPostIDContains applies the Contains predicate on the "external_post_id" field.
func ExternalPostIDContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldExternalPostID, v))
}

// ExternalPostIDHasPrefix applies the HasPrefix predicate on the "external_post_id" field.
func ExternalPostIDHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldExternalPostID, v))
}

// ExternalPostIDHasSuffix applies the HasSuffix predicate on the "external_post_id" field.
func ExternalPostIDHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldExternalPostID, v))
}

// ExternalPostIDEqualFold applies the EqualFold predicate on the "external_post_id" field.
func ExternalPostIDEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldExternalPostID, v))
}

// ExternalPostIDContainsFold applies the ContainsFold predicate on the "external_post_id" field.
func ExternalPostIDContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldExternalPostID, v))
}

// AuthorHandleEQ applies the EQ predicate on the "author_handle" field.
func AuthorHandleEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAuthorHandle, v))
}

// AuthorHandleNEQ applies the NEQ predicate on the "author_handle" field.
func AuthorHandleNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldAuthorHandle, v))
}

// AuthorHandleIn applies the In predicate on the "author_handle" field.
func AuthorHandleIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldAuthorHandle, vs...))
}

// AuthorHandleNotIn applies the NotIn predicate on the "author_handle" field.
func AuthorHandleNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldAuthorHandle, vs...))
}

// AuthorHandleGT applies the GT predicate on the "author_handle" field.
func AuthorHandleGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldAuthorHandle, v))
}

// AuthorHandleGTE applies the GTE predicate on the "author_handle" field.
func AuthorHandleGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldAuthorHandle, v))
}

// AuthorHandleLT applies the LT predicate on the "author_handle" field.
func AuthorHandleLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldAuthorHandle, v))
}

// AuthorHandleLTE applies the LTE predicate on the "author_handle" field.
func AuthorHandleLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldAuthorHandle, v))
}

// AuthorHandleContains applies the Contains predicate on the "author_handle" field.
func AuthorHandleContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldAuthorHandle, v))
}

// AuthorHandleHasPrefix applies the HasPrefix predicate on the "author_handle" field.
func AuthorHandleHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldAuthorHandle, v))
}

// AuthorHandleHasSuffix applies the HasSuffix predicate on the "author_handle" field.
func AuthorHandleHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldAuthorHandle, v))
}

// AuthorHandleEqualFold applies the EqualFold predicate on the "author_handle" field.
func AuthorHandleEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldAuthorHandle, v))
}

// AuthorHandleContainsFold applies the ContainsFold predicate on the "author_handle" field.
func AuthorHandleContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldAuthorHandle, v))
}

// AuthorDisplayNameEQ applies the EQ predicate on the "author_display_name" field.
func AuthorDisplayNameEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameNEQ applies the NEQ predicate on the "author_display_name" field.
func AuthorDisplayNameNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameIn applies the In predicate on the "author_display_name" field.
func AuthorDisplayNameIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldAuthorDisplayName, vs...))
}

// AuthorDisplayNameNotIn applies the NotIn predicate on the "author_display_name" field.
func AuthorDisplayNameNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldAuthorDisplayName, vs...))
}

// AuthorDisplayNameGT applies the GT predicate on the "author_display_name" field.
func AuthorDisplayNameGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameGTE applies the GTE predicate on the "author_display_name" field.
func AuthorDisplayNameGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameLT applies the LT predicate on the "author_display_name" field.
func AuthorDisplayNameLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameLTE applies the LTE predicate on the "author_display_name" field.
func AuthorDisplayNameLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameContains applies the Contains predicate on the "author_display_name" field.
func AuthorDisplayNameContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameHasPrefix applies the HasPrefix predicate on the "author_display_name" field.
func AuthorDisplayNameHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameHasSuffix applies the HasSuffix predicate on the "author_display_name" field.
func AuthorDisplayNameHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameIsNil applies the IsNil predicate on the "author_display_name" field.
func AuthorDisplayNameIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldAuthorDisplayName))
}

// AuthorDisplayNameNotNil applies the NotNil predicate on the "author_display_name" field.
func AuthorDisplayNameNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldAuthorDisplayName))
}

// AuthorDisplayNameEqualFold applies the EqualFold predicate on the "author_display_name" field.
func AuthorDisplayNameEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldAuthorDisplayName, v))
}

// AuthorDisplayNameContainsFold applies the ContainsFold predicate on the "author_display_name" field.
func AuthorDisplayNameContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldAuthorDisplayName, v))
}

// ContentTextEQ applies the EQ predicate on the "content_text" field.
func ContentTextEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldContentText, v))
}

// ContentTextNEQ applies the NEQ predicate on the "content_text" field.
func ContentTextNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldContentText, v))
}

// ContentTextIn applies the In predicate on the "content_text" field.
func ContentTextIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldContentText, vs...))
}

// ContentTextNotIn applies the NotIn predicate on the "content_text" field.
func ContentTextNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldContentText, vs...))
}

// ContentTextGT applies the GT predicate on the "content_text" field.
func ContentTextGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldContentText, v))
}

// ContentTextGTE applies the GTE predicate on the "content_text" field.
func ContentTextGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldContentText, v))
}

// ContentTextLT applies the LT predicate on the "content_text" field.
func ContentTextLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldContentText, v))
}

// ContentTextLTE applies the LTE predicate on the "content_text" field.
func ContentTextLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldContentText, v))
}

// ContentTextContains applies the Contains predicate on the "content_text" field.
func ContentTextContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldContentText, v))
}

// ContentTextHasPrefix applies the HasPrefix predicate on the "content_text" field.
func ContentTextHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldContentText, v))
}

// ContentTextHasSuffix applies the HasSuffix predicate on the "content_text" field.
func ContentTextHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldContentText, v))
}

// ContentTextIsNil applies the IsNil predicate on the "content_text" field.
func ContentTextIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldContentText))
}

// ContentTextNotNil applies the NotNil predicate on the "content_text" field.
func ContentTextNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldContentText))
}

// ContentTextEqualFold applies the EqualFold predicate on the "content_text" field.
func ContentTextEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldContentText, v))
}

// ContentTextContainsFold applies the ContainsFold predicate on the "content_text" field.
func ContentTextContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldContentText, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampIsNil applies the IsNil predicate on the "timestamp" field.
func TimestampIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldTimestamp))
}

// TimestampNotNil applies the NotNil predicate on the "timestamp" field.
func TimestampNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldTimestamp))
}

// MediaUrlsIsNil applies the IsNil predicate on the "media_urls" field.
func MediaUrlsIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldMediaUrls))
}

// MediaUrlsNotNil applies the NotNil predicate on the "media_urls" field.
func MediaUrlsNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldMediaUrls))
}

// MentionedHandlesIsNil applies the IsNil predicate on the "mentioned_handles" field.
func MentionedHandlesIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldMentionedHandles))
}

// MentionedHandlesNotNil applies the NotNil predicate on the "mentioned_handles" field.
func MentionedHandlesNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldMentionedHandles))
}

// HashtagsIsNil applies the IsNil predicate on the "hashtags" field.
func HashtagsIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldHashtags))
}

// HashtagsNotNil applies the NotNil predicate on the "hashtags" field.
func HashtagsNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldHashtags))
}

// LikeCountEQ applies the EQ predicate on the "like_count" field.
func LikeCountEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLikeCount, v))
}

// LikeCountNEQ applies the NEQ predicate on the "like_count" field.
func LikeCountNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldLikeCount, v))
}

// LikeCountIn applies the In predicate on the "like_count" field.
func LikeCountIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldLikeCount, vs...))
}

// LikeCountNotIn applies the NotIn predicate on the "like_count" field.
func LikeCountNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldLikeCount, vs...))
}

// LikeCountGT applies the GT predicate on the "like_count" field.
func LikeCountGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldLikeCount, v))
}

// LikeCountGTE applies the GTE predicate on the "like_count" field.
func LikeCountGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldLikeCount, v))
}

// LikeCountLT applies the LT predicate on the "like_count" field.
func LikeCountLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldLikeCount, v))
}

// LikeCountLTE applies the LTE predicate on the "like_count" field.
func LikeCountLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldLikeCount, v))
}

// ReplyCountEQ applies the EQ predicate on the "reply_count" field.
func ReplyCountEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldReplyCount, v))
}

// ReplyCountNEQ applies the NEQ predicate on the "reply_count" field.
func ReplyCountNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldReplyCount, v))
}

// ReplyCountIn applies the In predicate on the "reply_count" field.
func ReplyCountIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldReplyCount, vs...))
}

// ReplyCountNotIn applies the NotIn predicate on the "reply_count" field.
func ReplyCountNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldReplyCount, vs...))
}

// ReplyCountGT applies the GT predicate on the "reply_count" field.
func ReplyCountGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldReplyCount, v))
}

// ReplyCountGTE applies the GTE predicate on the "reply_count" field.
func ReplyCountGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldReplyCount, v))
}

// ReplyCountLT applies the LT predicate on the "reply_count" field.
func ReplyCountLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldReplyCount, v))
}

// ReplyCountLTE applies the LTE predicate on the "reply_count" field.
func ReplyCountLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldReplyCount, v))
}

// RetweetCountEQ applies the EQ predicate on the "retweet_count" field.
func RetweetCountEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldRetweetCount, v))
}

// RetweetCountNEQ applies the NEQ predicate on the "retweet_count" field.
func RetweetCountNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldRetweetCount, v))
}

// RetweetCountIn applies the In predicate on the "retweet_count" field.
func RetweetCountIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldRetweetCount, vs...))
}

// RetweetCountNotIn applies the NotIn predicate on the "retweet_count" field.
func RetweetCountNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldRetweetCount, vs...))
}

// RetweetCountGT applies the GT predicate on the "retweet_count" field.
func RetweetCountGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldRetweetCount, v))
}

// RetweetCountGTE applies the GTE predicate on the "retweet_count" field.
func RetweetCountGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldRetweetCount, v))
}

// RetweetCountLT applies the LT predicate on the "retweet_count" field.
func RetweetCountLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldRetweetCount, v))
}

// RetweetCountLTE applies the LTE predicate on the "retweet_count" field.
func RetweetCountLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldRetweetCount, v))
}

// CommentCountEQ applies the EQ predicate on the "comment_count" field.
func CommentCountEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCommentCount, v))
}

// CommentCountNEQ applies the NEQ predicate on the "comment_count" field.
func CommentCountNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldCommentCount, v))
}

// CommentCountIn applies the In predicate on the "comment_count" field.
func CommentCountIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldCommentCount, vs...))
}

// CommentCountNotIn applies the NotIn predicate on the "comment_count" field.
func CommentCountNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldCommentCount, vs...))
}

// CommentCountGT applies the GT predicate on the "comment_count" field.
func CommentCountGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldCommentCount, v))
}

// CommentCountGTE applies the GTE predicate on the "comment_count" field.
func CommentCountGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldCommentCount, v))
}

// CommentCountLT applies the LT predicate on the "comment_count" field.
func CommentCountLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldCommentCount, v))
}

// CommentCountLTE applies the LTE predicate on the "comment_count" field.
func CommentCountLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldCommentCount, v))
}

// LocationTextEQ applies the EQ predicate on the "location_text" field.
func LocationTextEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLocationText, v))
}

// LocationTextNEQ applies the NEQ predicate on the "location_text" field.
func LocationTextNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldLocationText, v))
}

// LocationTextIn applies the In predicate on the "location_text" field.
func LocationTextIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldLocationText, vs...))
}

// LocationTextNotIn applies the NotIn predicate on the "location_text" field.
func LocationTextNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldLocationText, vs...))
}

// LocationTextGT applies the GT predicate on the "location_text" field.
func LocationTextGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldLocationText, v))
}

// LocationTextGTE applies the GTE predicate on the "location_text" field.
func LocationTextGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldLocationText, v))
}

// LocationTextLT applies the LT predicate on the "location_text" field.
func LocationTextLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldLocationText, v))
}

// LocationTextLTE applies the LTE predicate on the "location_text" field.
func LocationTextLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldLocationText, v))
}

// LocationTextContains applies the Contains predicate on the "location_text" field.
func LocationTextContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldLocationText, v))
}

// LocationTextHasPrefix applies the HasPrefix predicate on the "location_text" field.
func LocationTextHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldLocationText, v))
}

// LocationTextHasSuffix applies the HasSuffix predicate on the "location_text" field.
func LocationTextHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldLocationText, v))
}

// LocationTextIsNil applies the IsNil predicate on the "location_text" field.
func LocationTextIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldLocationText))
}

// LocationTextNotNil applies the NotNil predicate on the "location_text" field.
func LocationTextNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldLocationText))
}

// LocationTextEqualFold applies the EqualFold predicate on the "location_text" field.
func LocationTextEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldLocationText, v))
}

// LocationTextContainsFold applies the ContainsFold predicate on the "location_text" field.
func LocationTextContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldLocationText, v))
}

// OfflineMediaURLEQ applies the EQ predicate on the "offline_media_url" field.
func OfflineMediaURLEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldOfflineMediaURL, v))
}

// OfflineMediaURLNEQ applies the NEQ predicate on the "offline_media_url" field.
func OfflineMediaURLNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldOfflineMediaURL, v))
}

// OfflineMediaURLIn applies the In predicate on the "offline_media_url" field.
func OfflineMediaURLIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldOfflineMediaURL, vs...))
}

// OfflineMediaURLNotIn applies the NotIn predicate on the "offline_media_url" field.
func OfflineMediaURLNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldOfflineMediaURL, vs...))
}

// OfflineMediaURLGT applies the GT predicate on the "offline_media_url" field.
func OfflineMediaURLGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldOfflineMediaURL, v))
}

// OfflineMediaURLGTE applies the GTE predicate on the "offline_media_url" field.
func OfflineMediaURLGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldOfflineMediaURL, v))
}

// OfflineMediaURLLT applies the LT predicate on the "offline_media_url" field.
func OfflineMediaURLLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldOfflineMediaURL, v))
}

// OfflineMediaURLLTE applies the LTE predicate on the "offline_media_url" field.
func OfflineMediaURLLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldOfflineMediaURL, v))
}

// OfflineMediaURLContains applies the Contains predicate on the "offline_media_url" field.
func OfflineMediaURLContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldOfflineMediaURL, v))
}

// OfflineMediaURLHasPrefix applies the HasPrefix predicate on the "offline_media_url" field.
func OfflineMediaURLHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldOfflineMediaURL, v))
}

// OfflineMediaURLHasSuffix applies the HasSuffix predicate on the "offline_media_url" field.
func OfflineMediaURLHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldOfflineMediaURL, v))
}

// OfflineMediaURLIsNil applies the IsNil predicate on the "offline_media_url" field.
func OfflineMediaURLIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldOfflineMediaURL))
}

// OfflineMediaURLNotNil applies the NotNil predicate on the "offline_media_url" field.
func OfflineMediaURLNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldOfflineMediaURL))
}

// OfflineMediaURLEqualFold applies the EqualFold predicate on the "offline_media_url" field.
func OfflineMediaURLEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldOfflineMediaURL, v))
}

// OfflineMediaURLContainsFold applies the ContainsFold predicate on the "offline_media_url" field.
func OfflineMediaURLContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldOfflineMediaURL, v))
}

// ProcessedForEventsEQ applies the EQ predicate on the "processed_for_events" field.
func ProcessedForEventsEQ(v bool) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldProcessedForEvents, v))
}

// ProcessedForEventsNEQ applies the NEQ predicate on the "processed_for_events" field.
func ProcessedForEventsNEQ(v bool) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldProcessedForEvents, v))
}

// EventProcessedAtEQ applies the EQ predicate on the "event_processed_at" field.
func EventProcessedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldEventProcessedAt, v))
}

// EventProcessedAtNEQ applies the NEQ predicate on the "event_processed_at" field.
func EventProcessedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldEventProcessedAt, v))
}

// EventProcessedAtIn applies the In predicate on the "event_processed_at" field.
func EventProcessedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldEventProcessedAt, vs...))
}

// EventProcessedAtNotIn applies the NotIn predicate on the "event_processed_at" field.
func EventProcessedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldEventProcessedAt, vs...))
}

// EventProcessedAtGT applies the GT predicate on the "event_processed_at" field.
func EventProcessedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldEventProcessedAt, v))
}

// EventProcessedAtGTE applies the GTE predicate on the "event_processed_at" field.
func EventProcessedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldEventProcessedAt, v))
}

// EventProcessedAtLT applies the LT predicate on the "event_processed_at" field.
func EventProcessedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldEventProcessedAt, v))
}

// EventProcessedAtLTE applies the LTE predicate on the "event_processed_at" field.
func EventProcessedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldEventProcessedAt, v))
}

// EventProcessedAtIsNil applies the IsNil predicate on the "event_processed_at" field.
func EventProcessedAtIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldEventProcessedAt))
}

// EventProcessedAtNotNil applies the NotNil predicate on the "event_processed_at" field.
func EventProcessedAtNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldEventProcessedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldCreatedAt, v))
}

// HasActorLinks applies the HasEdge predicate on the "actor_links" edge.
func HasActorLinks() predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActorLinksTable, ActorLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActorLinksWith applies the HasEdge predicate on the "actor_links" edge with a given conditions (other predicates).
func HasActorLinksWith(preds ...predicate.PostActor) predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := newActorLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUnknownActorLinks applies the HasEdge predicate on the "unknown_actor_links" edge.
func HasUnknownActorLinks() predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UnknownActorLinksTable, UnknownActorLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUnknownActorLinksWith applies the HasEdge predicate on the "unknown_actor_links" edge with a given conditions (other predicates).
func HasUnknownActorLinksWith(preds ...predicate.PostUnknownActor) predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := newUnknownActorLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEventLinks applies the HasEdge predicate on the "event_links" edge.
func HasEventLinks() predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventLinksTable, EventLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventLinksWith applies the HasEdge predicate on the "event_links" edge with a given conditions (other predicates).
func HasEventLinksWith(preds ...predicate.EventPostLink) predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := newEventLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Post) predicate.Post {
	return predicate.Post(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Post) predicate.Post {
	return predicate.Post(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Post) predicate.Post {
	return predicate.Post(sql.NotPredicates(p))
}
