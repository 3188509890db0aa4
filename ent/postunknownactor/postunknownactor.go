// Code generated by ent, DO NOT EDIT.

package postunknownactor

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the postunknownactor type in the database.
	Label = "post_unknown_actor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPostID holds the string denoting the post_id field in the database.
	FieldPostID = "post_id"
	// FieldUnknownActorID holds the string denoting the unknown_actor_id field in the database.
	FieldUnknownActorID = "unknown_actor_id"
	// EdgePost holds the string denoting the post edge name in mutations.
	EdgePost = "post"
	// EdgeUnknownActor holds the string denoting the unknown_actor edge name in mutations.
	EdgeUnknownActor = "unknown_actor"
	// Table holds the table name of the postunknownactor in the database.
	Table = "post_unknown_actors"
	// PostTable is the table that holds the post relation/edge.
	PostTable = "post_unknown_actors"
	// PostInverseTable is the table name for the Post entity.
	// It exists in this package in order to avoid circular dependency with the "post" package.
	PostInverseTable = "posts"
	// PostColumn is the table column denoting the post relation/edge.
	PostColumn = "post_id"
	// UnknownActorTable is the table that holds the unknown_actor relation/edge.
	UnknownActorTable = "post_unknown_actors"
	// UnknownActorInverseTable is the table name for the UnknownActor entity.
	// It exists in this package in order to avoid circular dependency with the "unknownactor" package.
	UnknownActorInverseTable = "unknown_actors"
	// UnknownActorColumn is the table column denoting the unknown_actor relation/edge.
	UnknownActorColumn = "unknown_actor_id"
)

// Columns holds all SQL columns for postunknownactor fields.
var Columns = []string{
	FieldID,
	FieldPostID,
	FieldUnknownActorID,
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

// OrderOption defines the ordering options for the PostUnknownActor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPostID orders the results by the post_id field.
func ByPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostID, opts...).ToFunc()
}

// ByUnknownActorID orders the results by the unknown_actor_id field.
func ByUnknownActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnknownActorID, opts...).ToFunc()
}

// ByPostField orders the results by post field.
func ByPostField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPostStep(), sql.OrderByField(field, opts...))
	}
}

// ByUnknownActorField orders the results by unknown_actor field.
func ByUnknownActorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUnknownActorStep(), sql.OrderByField(field, opts...))
	}
}
func newPostStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PostInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PostTable, PostColumn),
	)
}
func newUnknownActorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UnknownActorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UnknownActorTable, UnknownActorColumn),
	)
}
