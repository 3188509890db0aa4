// Code generated by ent, DO NOT EDIT.

package actor

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the actor type in the database.
	Label = "actor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldActorType holds the string denoting the actor_type field in the database.
	FieldActorType = "actor_type"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAbout holds the string denoting the about field in the database.
	FieldAbout = "about"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldProfileData holds the string denoting the profile_data field in the database.
	FieldProfileData = "profile_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUsernames holds the string denoting the usernames edge name in mutations.
	EdgeUsernames = "usernames"
	// EdgePostLinks holds the string denoting the post_links edge name in mutations.
	EdgePostLinks = "post_links"
	// Table holds the table name of the actor in the database.
	Table = "actors"
	// UsernamesTable is the table that holds the usernames relation/edge.
	UsernamesTable = "actor_usernames"
	// UsernamesInverseTable is the table name for the ActorUsername entity.
	// It exists in this package in order to avoid circular dependency with the "actorusername" package.
	UsernamesInverseTable = "actor_usernames"
	// UsernamesColumn is the table column denoting the usernames relation/edge.
	UsernamesColumn = "actor_id"
	// PostLinksTable is the table that holds the post_links relation/edge.
	PostLinksTable = "post_actors"
	// PostLinksInverseTable is the table name for the PostActor entity.
	// It exists in this package in order to avoid circular dependency with the "postactor" package.
	PostLinksInverseTable = "post_actors"
	// PostLinksColumn is the table column denoting the post_links relation/edge.
	PostLinksColumn = "actor_id"
)

// Columns holds all SQL columns for actor fields.
var Columns = []string{
	FieldID,
	FieldActorType,
	FieldName,
	FieldAbout,
	FieldCity,
	FieldState,
	FieldProfileData,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// ActorType defines the type for the "actor_type" enum field.
type ActorType string

// ActorType values.
const (
	ActorTypePerson       ActorType = "person"
	ActorTypeChapter      ActorType = "chapter"
	ActorTypeOrganization ActorType = "organization"
)

func (at ActorType) String() string {
	return string(at)
}

// ActorTypeValidator is a validator for the "actor_type" field enum values. It is called by the builders before save.
func ActorTypeValidator(at ActorType) error {
	switch at {
	case ActorTypePerson, ActorTypeChapter, ActorTypeOrganization:
		return nil
	default:
		return fmt.Errorf("actor: invalid enum value for actor_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the Actor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActorType orders the results by the actor_type field.
func ByActorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorType, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAbout orders the results by the about field.
func ByAbout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbout, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUsernamesCount orders the results by usernames count.
func ByUsernamesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsernamesStep(), opts...)
	}
}

// ByUsernames orders the results by usernames terms.
func ByUsernames(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsernamesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
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
func newUsernamesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsernamesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsernamesTable, UsernamesColumn),
	)
}
func newPostLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PostLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PostLinksTable, PostLinksColumn),
	)
}
