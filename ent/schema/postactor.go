package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PostActor is an edge between a post and a curated actor.
type PostActor struct {
	ent.Schema
}

// Fields of the PostActor.
func (PostActor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("post_id"),
		field.String("actor_id"),
		field.Enum("relationship_type").
			Values("author", "mentioned", "tagged"),
	}
}

// Edges of the PostActor.
func (PostActor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("post", Post.Type).
			Ref("actor_links").
			Field("post_id").
			Unique().
			Required(),
		edge.From("actor", Actor.Type).
			Ref("post_links").
			Field("actor_id").
			Unique().
			Required(),
	}
}

// Indexes of the PostActor.
func (PostActor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("post_id", "actor_id", "relationship_type").
			Unique(),
		index.Fields("actor_id"),
	}
}
