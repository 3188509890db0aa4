// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventName holds the string denoting the event_name field in the database.
	FieldEventName = "event_name"
	// FieldEventDate holds the string denoting the event_date field in the database.
	FieldEventDate = "event_date"
	// FieldEventDescription holds the string denoting the event_description field in the database.
	FieldEventDescription = "event_description"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldParticipants holds the string denoting the participants field in the database.
	FieldParticipants = "participants"
	// FieldCategoryTags holds the string denoting the category_tags field in the database.
	FieldCategoryTags = "category_tags"
	// FieldSourcePostIds holds the string denoting the source_post_ids field in the database.
	FieldSourcePostIds = "source_post_ids"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldExtractedBy holds the string denoting the extracted_by field in the database.
	FieldExtractedBy = "extracted_by"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// FieldVerified holds the string denoting the verified field in the database.
	FieldVerified = "verified"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePostLinks holds the string denoting the post_links edge name in mutations.
	EdgePostLinks = "post_links"
	// EdgeActorLinks holds the string denoting the actor_links edge name in mutations.
	EdgeActorLinks = "actor_links"
	// Table holds the table name of the event in the database.
	Table = "events"
	// PostLinksTable is the table that holds the post_links relation/edge.
	PostLinksTable = "event_post_links"
	// PostLinksInverseTable is the table name for the EventPostLink entity.
	// It exists in this package in order to avoid circular dependency with the "eventpostlink" package.
	PostLinksInverseTable = "event_post_links"
	// PostLinksColumn is the table column denoting the post_links relation/edge.
	PostLinksColumn = "event_id"
	// ActorLinksTable is the table that holds the actor_links relation/edge.
	ActorLinksTable = "event_actor_links"
	// ActorLinksInverseTable is the table name for the EventActorLink entity.
	// It exists in this package in order to avoid circular dependency with the "eventactorlink" package.
	ActorLinksInverseTable = "event_actor_links"
	// ActorLinksColumn is the table column denoting the actor_links relation/edge.
	ActorLinksColumn = "event_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldEventName,
	FieldEventDate,
	FieldEventDescription,
	FieldLocation,
	FieldCity,
	FieldState,
	FieldParticipants,
	FieldCategoryTags,
	FieldSourcePostIds,
	FieldConfidenceScore,
	FieldExtractedBy,
	FieldExtractedAt,
	FieldVerified,
	FieldContentHash,
	FieldProjectID,
	FieldEmbedding,
	FieldLatitude,
	FieldLongitude,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultExtractedAt holds the default value on creation for the "extracted_at" field.
	DefaultExtractedAt func() time.Time
	// DefaultVerified holds the default value on creation for the "verified" field.
	DefaultVerified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventName orders the results by the event_name field.
func ByEventName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventName, opts...).ToFunc()
}

// ByEventDate orders the results by the event_date field.
func ByEventDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventDate, opts...).ToFunc()
}

// ByEventDescription orders the results by the event_description field.
func ByEventDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventDescription, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByParticipants orders the results by the participants field.
func ByParticipants(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipants, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByExtractedBy orders the results by the extracted_by field.
func ByExtractedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedBy, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
}

// ByVerified orders the results by the verified field.
func ByVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerified, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPostLinksCount orders the results by post_links count.
func ByPostLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPostLinksStep(), opts...)
	}
}

// ByPostLinks orders the results by post_links terms.
func ByPostLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPostLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
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
func newPostLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PostLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PostLinksTable, PostLinksColumn),
	)
}
func newActorLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActorLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActorLinksTable, ActorLinksColumn),
	)
}
