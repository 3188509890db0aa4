// Code generated by ent, DO NOT EDIT.

package postactor

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the postactor type in the database.
	Label = "post_actor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPostID holds the string denoting the post_id field in the database.
	FieldPostID = "post_id"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldRelationshipType holds the string denoting the relationship_type field in the database.
	FieldRelationshipType = "relationship_type"
	// EdgePost holds the string denoting the post edge name in mutations.
	EdgePost = "post"
	// EdgeActor holds the string denoting the actor edge name in mutations.
	EdgeActor = "actor"
	// Table holds the table name of the postactor in the database.
	Table = "post_actors"
	// PostTable is the table that holds the post relation/edge.
	PostTable = "post_actors"
	// PostInverseTable is the table name for the Post entity.
	// It exists in this package in order to avoid circular dependency with the "post" package.
	PostInverseTable = "posts"
	// PostColumn is the table column denoting the post relation/edge.
	PostColumn = "post_id"
	// ActorTable is the table that holds the actor relation/edge.
	ActorTable = "post_actors"
	// ActorInverseTable is the table name for the Actor entity.
	// It exists in this package in order to avoid circular dependency with the "actor" package.
	ActorInverseTable = "actors"
	// ActorColumn is the table column denoting the actor relation/edge.
	ActorColumn = "actor_id"
)

// Columns holds all SQL columns for postactor fields.
var Columns = []string{
	FieldID,
	FieldPostID,
	FieldActorID,
	FieldRelationshipType,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// RelationshipType defines the type for the "relationship_type" enum field.
type RelationshipType string

// RelationshipType values.
const (
	RelationshipTypeAuthor    RelationshipType = "author"
	RelationshipTypeMentioned RelationshipType = "mentioned"
	RelationshipTypeTagged    RelationshipType = "tagged"
)

func (rt RelationshipType) String() string {
	return string(rt)
}

// RelationshipTypeValidator is a validator for the "relationship_type" field enum values. It is called by the builders before save.
func RelationshipTypeValidator(rt RelationshipType) error {
	switch rt {
	case RelationshipTypeAuthor, RelationshipTypeMentioned, RelationshipTypeTagged:
		return nil
	default:
		return fmt.Errorf("postactor: invalid enum value for relationship_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the PostActor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPostID orders the results by the post_id field.
func ByPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostID, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByRelationshipType orders the results by the relationship_type field.
func ByRelationshipType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationshipType, opts...).ToFunc()
}

// ByPostField orders the results by post field.
func ByPostField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPostStep(), sql.OrderByField(field, opts...))
	}
}

// ByActorField orders the results by actor field.
func ByActorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActorStep(), sql.OrderByField(field, opts...))
	}
}
func newPostStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PostInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PostTable, PostColumn),
	)
}
func newActorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ActorTable, ActorColumn),
	)
}
