// Code generated by ent, DO NOT EDIT.

package actorusername

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the actorusername type in the database.
	Label = "actor_username"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldShouldScrape holds the string denoting the should_scrape field in the database.
	FieldShouldScrape = "should_scrape"
	// FieldLastScrape holds the string denoting the last_scrape field in the database.
	FieldLastScrape = "last_scrape"
	// FieldLastProfileUpdate holds the string denoting the last_profile_update field in the database.
	FieldLastProfileUpdate = "last_profile_update"
	// EdgeActor holds the string denoting the actor edge name in mutations.
	EdgeActor = "actor"
	// Table holds the table name of the actorusername in the database.
	Table = "actor_usernames"
	// ActorTable is the table that holds the actor relation/edge.
	ActorTable = "actor_usernames"
	// ActorInverseTable is the table name for the Actor entity.
	// It exists in this package in order to avoid circular dependency with the "actor" package.
	ActorInverseTable = "actors"
	// ActorColumn is the table column denoting the actor relation/edge.
	ActorColumn = "actor_id"
)

// Columns holds all SQL columns for actorusername fields.
var Columns = []string{
	FieldID,
	FieldActorID,
	FieldUsername,
	FieldPlatform,
	FieldShouldScrape,
	FieldLastScrape,
	FieldLastProfileUpdate,
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
	// DefaultShouldScrape holds the default value on creation for the "should_scrape" field.
	DefaultShouldScrape bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the ActorUsername queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByShouldScrape orders the results by the should_scrape field.
func ByShouldScrape(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShouldScrape, opts...).ToFunc()
}

// ByLastScrape orders the results by the last_scrape field.
func ByLastScrape(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScrape, opts...).ToFunc()
}

// ByLastProfileUpdate orders the results by the last_profile_update field.
func ByLastProfileUpdate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProfileUpdate, opts...).ToFunc()
}

// ByActorField orders the results by actor field.
func ByActorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActorStep(), sql.OrderByField(field, opts...))
	}
}
func newActorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ActorTable, ActorColumn),
	)
}
