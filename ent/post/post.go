// Code generated by ent, DO NOT EDIT.

package post

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the post type in the database.
	Label = "post"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldExternalPostID holds the string denoting the external_post_id field in the database.
	FieldExternalPostID = "external_post_id"
	// FieldAuthorHandle holds the string denoting the author_handle field in the database.
	FieldAuthorHandle = "author_handle"
	// FieldAuthorDisplayName holds the string denoting the author_display_name field in the database.
	FieldAuthorDisplayName = "author_display_name"
	// FieldContentText holds the string denoting the content_text field in the database.
	FieldContentText = "content_text"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldMediaUrls holds the string denoting the media_urls field in the database.
	FieldMediaUrls = "media_urls"
	// FieldMentionedHandles holds the string denoting the mentioned_handles field in the database.
	FieldMentionedHandles = "mentioned_handles"
	// FieldHashtags holds the string denoting the hashtags field in the database.
	FieldHashtags = "hashtags"
	// FieldLikeCount holds the string denoting the like_count field in the database.
	FieldLikeCount = "like_count"
	// FieldReplyCount holds the string denoting the reply_count field in the database.
	FieldReplyCount = "reply_count"
	// FieldRetweetCount holds the string denoting the retweet_count field in the database.
	FieldRetweetCount = "retweet_count"
	// FieldCommentCount holds the string denoting the comment_count field in the database.
	FieldCommentCount = "comment_count"
	// FieldLocationText holds the string denoting the location_text field in the database.
	FieldLocationText = "location_text"
	// FieldOfflineMediaURL holds the string denoting the offline_media_url field in the database.
	FieldOfflineMediaURL = "offline_media_url"
	// FieldProcessedForEvents holds the string denoting the processed_for_events field in the database.
	FieldProcessedForEvents = "processed_for_events"
	// FieldEventProcessedAt holds the string denoting the event_processed_at field in the database.
	FieldEventProcessedAt = "event_processed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeActorLinks holds the string denoting the actor_links edge name in mutations.
	EdgeActorLinks = "actor_links"
	// EdgeUnknownActorLinks holds the string denoting the unknown_actor_links edge name in mutations.
	EdgeUnknownActorLinks = "unknown_actor_links"
	// EdgeEventLinks holds the string denoting the event_links edge name in mutations.
	EdgeEventLinks = "event_links"
	// Table holds the table name of the post in the database.
	Table = "posts"
	// ActorLinksTable is the table that holds the actor_links relation/edge.
	ActorLinksTable = "post_actors"
	// ActorLinksInverseTable is the table name for the PostActor entity.
	// It exists in this package in order to avoid circular dependency with the "postactor" package.
	ActorLinksInverseTable = "post_actors"
	// ActorLinksColumn is the table column denoting the actor_links relation/edge.
	ActorLinksColumn = "post_id"
	// UnknownActorLinksTable is the table that holds the unknown_actor_links relation/edge.
	UnknownActorLinksTable = "post_unknown_actors"
	// UnknownActorLinksInverseTable is the table name for the PostUnknownActor entity.
	// It exists in this package in order to avoid circular dependency with the "postunknownactor" package.
	UnknownActorLinksInverseTable = "post_unknown_actors"
	// UnknownActorLinksColumn is the table column denoting the unknown_actor_links relation/edge.
	UnknownActorLinksColumn = "post_id"
	// EventLinksTable is the table that holds the event_links relation/edge.
	EventLinksTable = "event_post_links"
	// EventLinksInverseTable is the table name for the EventPostLink entity.
	// It exists in this package in order to avoid circular dependency with the "eventpostlink" package.
	EventLinksInverseTable = "event_post_links"
	// EventLinksColumn is the table column denoting the event_links relation/edge.
	EventLinksColumn = "post_id"
)

// Columns holds all SQL columns for post fields.
var Columns = []string{
	FieldID,
	FieldPlatform,
	FieldExternalPostID,
	FieldAuthorHandle,
	FieldAuthorDisplayName,
	FieldContentText,
	FieldTimestamp,
	FieldMediaUrls,
	FieldMentionedHandles,
	FieldHashtags,
	FieldLikeCount,
	FieldReplyCount,
	FieldRetweetCount,
	FieldCommentCount,
	FieldLocationText,
	FieldOfflineMediaURL,
	FieldProcessedForEvents,
	FieldEventProcessedAt,
	FieldCreatedAt,
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
	// DefaultLikeCount holds the default value on creation for the "like_count" field.
	DefaultLikeCount int
	// DefaultReplyCount holds the default value on creation for the "reply_count" field.
	DefaultReplyCount int
	// DefaultRetweetCount holds the default value on creation for the "retweet_count" field.
	DefaultRetweetCount int
	// DefaultCommentCount holds the default value on creation for the "comment_count" field.
	DefaultCommentCount int
	// DefaultProcessedForEvents holds the default value on creation for the "processed_for_events" field.
	DefaultProcessedForEvents bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Post queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByExternalPostID orders the results by the external_post_id field.
func ByExternalPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalPostID, opts...).ToFunc()
}

// ByAuthorHandle orders the results by the author_handle field.
func ByAuthorHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorHandle, opts...).ToFunc()
}

// ByAuthorDisplayName orders the results by the author_display_name field.
func ByAuthorDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorDisplayName, opts...).ToFunc()
}

// ByContentText orders the results by the content_text field.
func ByContentText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentText, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLikeCount orders the results by the like_count field.
func ByLikeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikeCount, opts...).ToFunc()
}

// ByReplyCount orders the results by the reply_count field.
func ByReplyCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplyCount, opts...).ToFunc()
}

// ByRetweetCount orders the results by the retweet_count field.
func ByRetweetCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetweetCount, opts...).ToFunc()
}

// ByCommentCount orders the results by the comment_count field.
func ByCommentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentCount, opts...).ToFunc()
}

// ByLocationText orders the results by the location_text field.
func ByLocationText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationText, opts...).ToFunc()
}

// ByOfflineMediaURL orders the results by the offline_media_url field.
func ByOfflineMediaURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfflineMediaURL, opts...).ToFunc()
}

// ByProcessedForEvents orders the results by the processed_for_events field.
func ByProcessedForEvents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedForEvents, opts...).ToFunc()
}

// ByEventProcessedAt orders the results by the event_processed_at field.
func ByEventProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventProcessedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByActorLinksCount orders the results by actor_links count.
func ByActorLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActorLinksStep(), opts...)
	}
}

// ByActorLinks orders the results by actor_links terms.
func ByActorLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActorLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByUnknownActorLinksCount orders the results by unknown_actor_links count.
func ByUnknownActorLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUnknownActorLinksStep(), opts...)
	}
}

// ByUnknownActorLinks orders the results by unknown_actor_links terms.
func ByUnknownActorLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUnknownActorLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventLinksCount orders the results by event_links count.
func ByEventLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventLinksStep(), opts...)
	}
}

// ByEventLinks orders the results by event_links terms.
func ByEventLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newActorLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActorLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActorLinksTable, ActorLinksColumn),
	)
}
func newUnknownActorLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UnknownActorLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UnknownActorLinksTable, UnknownActorLinksColumn),
	)
}
func newEventLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventLinksTable, EventLinksColumn),
	)
}
