package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PostUnknownActor is an edge between a post and an unknown actor.
type PostUnknownActor struct {
	ent.Schema
}

// Fields of the PostUnknownActor.
func (PostUnknownActor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("post_id"),
		field.String("unknown_actor_id"),
	}
}

// Edges of the PostUnknownActor.
func (PostUnknownActor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("post", Post.Type).
			Ref("unknown_actor_links").
			Field("post_id").
			Unique().
			Required(),
		edge.From("unknown_actor", UnknownActor.Type).
			Ref("post_links").
			Field("unknown_actor_id").
			Unique().
			Required(),
	}
}

// Indexes of the PostUnknownActor.
func (PostUnknownActor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("post_id", "unknown_actor_id").
			Unique(),
		index.Fields("unknown_actor_id"),
	}
}
