// Code generated by ent, DO NOT EDIT.

package dynamicslug

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dynamicslug type in the database.
	Label = "dynamic_slug"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParentTag holds the string denoting the parent_tag field in the database.
	FieldParentTag = "parent_tag"
	// FieldSlugIdentifier holds the string denoting the slug_identifier field in the database.
	FieldSlugIdentifier = "slug_identifier"
	// FieldFullSlug holds the string denoting the full_slug field in the database.
	FieldFullSlug = "full_slug"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the dynamicslug in the database.
	Table = "dynamic_slugs"
)

// Columns holds all SQL columns for dynamicslug fields.
var Columns = []string{
	FieldID,
	FieldParentTag,
	FieldSlugIdentifier,
	FieldFullSlug,
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

// OrderOption defines the ordering options for the DynamicSlug queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParentTag orders the results by the parent_tag field.
func ByParentTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTag, opts...).ToFunc()
}

// BySlugIdentifier orders the results by the slug_identifier field.
func BySlugIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlugIdentifier, opts...).ToFunc()
}

// ByFullSlug orders the results by the full_slug field.
func ByFullSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullSlug, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
