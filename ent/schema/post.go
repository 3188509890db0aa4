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

// Post holds the schema definition for one harvested social-media item.
type Post struct {
	ent.Schema
}

// Fields of the Post.
func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("platform").
			Comment("Canonical platform name (twitter, instagram, truth_social, ...)"),
		field.String("external_post_id").
			Comment("Platform-native post identifier"),
		field.String("author_handle").
			Comment("Always lowercased"),
		field.String("author_display_name").
			Optional(),
		field.Text("content_text").
			Optional(),
		field.Time("timestamp").
			Optional().
			Nillable().
			Comment("UTC; nil when the source value could not be parsed"),
		field.JSON("media_urls", []string{}).
			Optional(),
		field.JSON("mentioned_handles", []string{}).
			Optional().
			Comment("Lowercased, first-seen order, deduplicated"),
		field.JSON("hashtags", []string{}).
			Optional(),
		field.Int("like_count").
			Default(0),
		field.Int("reply_count").
			Default(0),
		field.Int("retweet_count").
			Default(0),
		field.Int("comment_count").
			Default(0),
		field.String("location_text").
			Optional(),
		field.String("offline_media_url").
			Optional().
			Nillable().
			Comment("Object-store public URL, or EXPIRED / PERMANENTLY_EXPIRED sentinel"),
		field.Bool("processed_for_events").
			Default(false),
		field.Time("event_processed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Post.
func (Post) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("actor_links", PostActor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("unknown_actor_links", PostUnknownActor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("event_links", EventPostLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Post.
func (Post) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "external_post_id").
			Unique(),
		index.Fields("processed_for_events", "timestamp"),
		index.Fields("author_handle"),
	}
}
