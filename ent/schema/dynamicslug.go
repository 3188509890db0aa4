package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DynamicSlug is a structured category tag of the form ParentTag:identifier.
// Identifiers are stored normalized (lowercase, underscore-separated); the
// full_slug column keeps the display form and is unique.
type DynamicSlug struct {
	ent.Schema
}

// Fields of the DynamicSlug.
func (DynamicSlug) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("parent_tag"),
		field.String("slug_identifier").
			Comment("Normalized: lowercase, underscore-separated, collapsed repeats"),
		field.String("full_slug").
			Unique(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DynamicSlug.
func (DynamicSlug) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_tag", "slug_identifier").
			Unique(),
		index.Fields("slug_identifier"),
	}
}
