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

// UnknownActor is a handle observed in posts that is not yet a curated actor.
// Counters and timestamps are monotonically merged on re-observation.
type UnknownActor struct {
	ent.Schema
}

// Fields of the UnknownActor.
func (UnknownActor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("platform"),
		field.String("detected_username").
			Comment("Always lowercased"),
		field.Time("first_seen").
			Default(time.Now),
		field.Time("last_seen").
			Default(time.Now),
		field.Int("mention_count").
			Default(0),
		field.Int("author_count").
			Default(0),
		field.Text("mention_context").
			Optional().
			Comment("First non-empty content snippet, <=500 chars"),
		field.String("display_name").
			Optional(),
		field.Text("bio").
			Optional(),
		field.Enum("review_status").
			Values("pending", "attached", "ignored").
			Default("pending"),
	}
}

// Edges of the UnknownActor.
func (UnknownActor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("post_links", PostUnknownActor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the UnknownActor.
func (UnknownActor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "detected_username").
			Unique(),
		index.Fields("review_status"),
	}
}
