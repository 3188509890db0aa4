package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Event holds the schema definition for a structured real-world event record
// emitted by the extraction engine. The content_hash column is the primary
// deduplication key: SHA-256 over the normalized (name, date, location, city,
// state, sorted source post IDs) tuple.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("event_name"),
		field.String("event_date").
			Optional().
			Comment("YYYY-MM-DD; YYYY-MM-01 when the day was inferred; empty when unknown"),
		field.Text("event_description"),
		field.String("location").
			Optional(),
		field.String("city").
			Optional(),
		field.String("state").
			Optional(),
		field.Text("participants").
			Optional().
			Comment("Free-form list rendered as a comma-joined string"),
		field.JSON("category_tags", []string{}).
			Comment("Ordered tags including ParentTag:identifier dynamic slugs"),
		field.JSON("source_post_ids", []string{}).
			Comment("Post UUIDs, persisted sorted to match content_hash"),
		field.Float("confidence_score"),
		field.String("extracted_by").
			Optional().
			Comment("Provenance: model handle and worker that produced the event"),
		field.Time("extracted_at").
			Default(time.Now),
		field.Bool("verified").
			Default(false),
		field.String("content_hash").
			Unique(),
		field.String("project_id").
			Optional(),
		field.JSON("embedding", []float64{}).
			Optional().
			Comment("Best-effort 768-dim embedding; nil when embedding failed"),
		field.Float("latitude").
			Optional().
			Nillable(),
		field.Float("longitude").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("post_links", EventPostLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("actor_links", EventActorLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_date"),
		index.Fields("city", "state"),
		index.Fields("latitude").
			Annotations(entsql.IndexWhere("latitude IS NULL")),
	}
}
