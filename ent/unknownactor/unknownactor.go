// Code generated by ent, DO NOT EDIT.

package unknownactor

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the unknownactor type in the database.
	Label = "unknown_actor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldDetectedUsername holds the string denoting the detected_username field in the database.
	FieldDetectedUsername = "detected_username"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldMentionCount holds the string denoting the mention_count field in the database.
	FieldMentionCount = "mention_count"
	// FieldAuthorCount holds the string denoting the author_count field in the database.
	FieldAuthorCount = "author_count"
	// FieldMentionContext holds the string denoting the mention_context field in the database.
	FieldMentionContext = "mention_context"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldBio holds the string denoting the bio field in the database.
	FieldBio = "bio"
	// FieldReviewStatus holds the string denoting the review_status field in the database.
	FieldReviewStatus = "review_status"
	// EdgePostLinks holds the string denoting the post_links edge name in mutations.
	EdgePostLinks = "post_links"
	// Table holds the table name of the unknownactor in the database.
	Table = "unknown_actors"
	// PostLinksTable is the table that holds the post_links relation/edge.
	PostLinksTable = "post_unknown_actors"
	// PostLinksInverseTable is the table name for the PostUnknownActor entity.
	// It exists in this package in order to avoid circular dependency with the "postunknownactor" package.
	PostLinksInverseTable = "post_unknown_actors"
	// PostLinksColumn is the table column denoting the post_links relation/edge.
	PostLinksColumn = "unknown_actor_id"
)

// Columns holds all SQL columns for unknownactor fields.
var Columns = []string{
	FieldID,
	FieldPlatform,
	FieldDetectedUsername,
	FieldFirstSeen,
	FieldLastSeen,
	FieldMentionCount,
	FieldAuthorCount,
	FieldMentionContext,
	FieldDisplayName,
	FieldBio,
	FieldReviewStatus,
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
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// DefaultMentionCount holds the default value on creation for the "mention_count" field.
	DefaultMentionCount int
	// DefaultAuthorCount holds the default value on creation for the "author_count" field.
	DefaultAuthorCount int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// ReviewStatus defines the type for the "review_status" enum field.
type ReviewStatus string

// ReviewStatusPending is the default value of the ReviewStatus enum.
const DefaultReviewStatus = ReviewStatusPending

// ReviewStatus values.
const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusAttached ReviewStatus = "attached"
	ReviewStatusIgnored  ReviewStatus = "ignored"
)

func (rs ReviewStatus) String() string {
	return string(rs)
}

// ReviewStatusValidator is a validator for the "review_status" field enum values. It is called by the builders before save.
func ReviewStatusValidator(rs ReviewStatus) error {
	switch rs {
	case ReviewStatusPending, ReviewStatusAttached, ReviewStatusIgnored:
		return nil
	default:
		return fmt.Errorf("unknownactor: invalid enum value for review_status field: %q", rs)
	}
}

// OrderOption defines the ordering options for the UnknownActor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByDetectedUsername orders the results by the detected_username field.
func ByDetectedUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedUsername, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByMentionCount orders the results by the mention_count field.
func ByMentionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionCount, opts...).ToFunc()
}

// ByAuthorCount orders the results by the author_count field.
func ByAuthorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorCount, opts...).ToFunc()
}

// ByMentionContext orders the results by the mention_context field.
func ByMentionContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionContext, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByBio orders the results by the bio field.
func ByBio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBio, opts...).ToFunc()
}

// ByReviewStatus orders the results by the review_status field.
func ByReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStatus, opts...).ToFunc()
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
func newPostLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PostLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PostLinksTable, PostLinksColumn),
	)
}
