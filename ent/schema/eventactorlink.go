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

// EventActorLink connects an event to an actor. Known and unknown actors
// share the table: exactly one of actor_id / unknown_actor_id is non-null,
// and unknown rows store actor_handle = "unknown_<uuid>" with platform
// "unknown" so the (event_id, actor_handle, platform) key spans both.
type EventActorLink struct {
	ent.Schema
}

// Fields of the EventActorLink.
func (EventActorLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("event_id"),
		field.String("actor_handle").
			Comment("Lowercased handle, or unknown_<uuid> sentinel"),
		field.String("platform"),
		field.String("actor_type").
			Optional(),
		field.String("actor_id").
			Optional().
			Nillable(),
		field.String("unknown_actor_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EventActorLink.
func (EventActorLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("actor_links").
			Field("event_id").
			Unique().
			Required(),
	}
}

// Indexes of the EventActorLink.
func (EventActorLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "actor_handle", "platform").
			Unique(),
		index.Fields("event_id", "unknown_actor_id").
			Unique().
			Annotations(entsql.IndexWhere("unknown_actor_id IS NOT NULL")),
		index.Fields("actor_id"),
	}
}
