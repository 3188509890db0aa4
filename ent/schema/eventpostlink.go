package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// EventPostLink connects an event to one of its source posts.
type EventPostLink struct {
	ent.Schema
}

// Fields of the EventPostLink.
func (EventPostLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("event_id"),
		field.String("post_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EventPostLink.
func (EventPostLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("post_links").
			Field("event_id").
			Unique().
			Required(),
		edge.From("post", Post.Type).
			Ref("event_links").
			Field("post_id").
			Unique().
			Required(),
	}
}

// Indexes of the EventPostLink.
func (EventPostLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "post_id").
			Unique(),
		index.Fields("post_id"),
	}
}
