package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ActorUsername maps a per-platform handle to a curated actor.
type ActorUsername struct {
	ent.Schema
}

// Fields of the ActorUsername.
func (ActorUsername) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("actor_id"),
		field.String("username").
			Comment("Always lowercased"),
		field.String("platform"),
		field.Bool("should_scrape").
			Default(true),
		field.Time("last_scrape").
			Optional().
			Nillable(),
		field.Time("last_profile_update").
			Optional().
			Nillable(),
	}
}

// Edges of the ActorUsername.
func (ActorUsername) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("actor", Actor.Type).
			Ref("usernames").
			Field("actor_id").
			Unique().
			Required(),
	}
}

// Indexes of the ActorUsername.
func (ActorUsername) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username", "platform").
			Unique(),
		index.Fields("platform", "should_scrape"),
	}
}
