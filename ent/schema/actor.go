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

// Actor holds the schema definition for a curated known entity.
// Actors are created out-of-band; the pipeline only reads and links to them.
type Actor struct {
	ent.Schema
}

// Fields of the Actor.
func (Actor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.Enum("actor_type").
			Values("person", "chapter", "organization"),
		field.String("name"),
		field.Text("about").
			Optional(),
		field.String("city").
			Optional(),
		field.String("state").
			Optional(),
		field.JSON("profile_data", map[string]interface{}{}).
			Optional().
			Comment("Per-platform profile blobs keyed by platform"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Actor.
func (Actor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("usernames", ActorUsername.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("post_links", PostActor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Actor.
func (Actor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_type"),
		index.Fields("state"),
	}
}
