// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActorsColumns holds the columns for the "actors" table.
	ActorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "actor_type", Type: field.TypeEnum, Enums: []string{"person", "chapter", "organization"}},
		{Name: "name", Type: field.TypeString},
		{Name: "about", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "profile_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActorsTable holds the schema information for the "actors" table.
	ActorsTable = &schema.Table{
		Name:       "actors",
		Columns:    ActorsColumns,
		PrimaryKey: []*schema.Column{ActorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actor_actor_type",
				Unique:  false,
				Columns: []*schema.Column{ActorsColumns[1]},
			},
			{
				Name:    "actor_state",
				Unique:  false,
				Columns: []*schema.Column{ActorsColumns[5]},
			},
		},
	}
	// ActorUsernamesColumns holds the columns for the "actor_usernames" table.
	ActorUsernamesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "should_scrape", Type: field.TypeBool, Default: true},
		{Name: "last_scrape", Type: field.TypeTime, Nullable: true},
		{Name: "last_profile_update", Type: field.TypeTime, Nullable: true},
		{Name: "actor_id", Type: field.TypeString},
	}
	// ActorUsernamesTable holds the schema information for the "actor_usernames" table.
	ActorUsernamesTable = &schema.Table{
		Name:       "actor_usernames",
		Columns:    ActorUsernamesColumns,
		PrimaryKey: []*schema.Column{ActorUsernamesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "actor_usernames_actors_usernames",
				Columns:    []*schema.Column{ActorUsernamesColumns[6]},
				RefColumns: []*schema.Column{ActorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "actorusername_username_platform",
				Unique:  true,
				Columns: []*schema.Column{ActorUsernamesColumns[1], ActorUsernamesColumns[2]},
			},
			{
				Name:    "actorusername_platform_should_scrape",
				Unique:  false,
				Columns: []*schema.Column{ActorUsernamesColumns[2], ActorUsernamesColumns[3]},
			},
		},
	}
	// DynamicSlugsColumns holds the columns for the "dynamic_slugs" table.
	DynamicSlugsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "parent_tag", Type: field.TypeString},
		{Name: "slug_identifier", Type: field.TypeString},
		{Name: "full_slug", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DynamicSlugsTable holds the schema information for the "dynamic_slugs" table.
	DynamicSlugsTable = &schema.Table{
		Name:       "dynamic_slugs",
		Columns:    DynamicSlugsColumns,
		PrimaryKey: []*schema.Column{DynamicSlugsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dynamicslug_parent_tag_slug_identifier",
				Unique:  true,
				Columns: []*schema.Column{DynamicSlugsColumns[1], DynamicSlugsColumns[2]},
			},
			{
				Name:    "dynamicslug_slug_identifier",
				Unique:  false,
				Columns: []*schema.Column{DynamicSlugsColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "event_name", Type: field.TypeString},
		{Name: "event_date", Type: field.TypeString, Nullable: true},
		{Name: "event_description", Type: field.TypeString, Size: 2147483647},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "participants", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category_tags", Type: field.TypeJSON},
		{Name: "source_post_ids", Type: field.TypeJSON},
		{Name: "confidence_score", Type: field.TypeFloat64},
		{Name: "extracted_by", Type: field.TypeString, Nullable: true},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_event_date",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_city_state",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[6]},
			},
			{
				Name:    "event_latitude",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[17]},
				Annotation: &entsql.IndexAnnotation{
					Where: "latitude IS NULL",
				},
			},
		},
	}
	// EventActorLinksColumns holds the columns for the "event_actor_links" table.
	EventActorLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "actor_handle", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "actor_type", Type: field.TypeString, Nullable: true},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "unknown_actor_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString},
	}
	// EventActorLinksTable holds the schema information for the "event_actor_links" table.
	EventActorLinksTable = &schema.Table{
		Name:       "event_actor_links",
		Columns:    EventActorLinksColumns,
		PrimaryKey: []*schema.Column{EventActorLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "event_actor_links_events_actor_links",
				Columns:    []*schema.Column{EventActorLinksColumns[7]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eventactorlink_event_id_actor_handle_platform",
				Unique:  true,
				Columns: []*schema.Column{EventActorLinksColumns[7], EventActorLinksColumns[1], EventActorLinksColumns[2]},
			},
			{
				Name:    "eventactorlink_event_id_unknown_actor_id",
				Unique:  true,
				Columns: []*schema.Column{EventActorLinksColumns[7], EventActorLinksColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "unknown_actor_id IS NOT NULL",
				},
			},
			{
				Name:    "eventactorlink_actor_id",
				Unique:  false,
				Columns: []*schema.Column{EventActorLinksColumns[4]},
			},
		},
	}
	// EventPostLinksColumns holds the columns for the "event_post_links" table.
	EventPostLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString},
		{Name: "post_id", Type: field.TypeString},
	}
	// EventPostLinksTable holds the schema information for the "event_post_links" table.
	EventPostLinksTable = &schema.Table{
		Name:       "event_post_links",
		Columns:    EventPostLinksColumns,
		PrimaryKey: []*schema.Column{EventPostLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "event_post_links_events_post_links",
				Columns:    []*schema.Column{EventPostLinksColumns[2]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "event_post_links_posts_event_links",
				Columns:    []*schema.Column{EventPostLinksColumns[3]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eventpostlink_event_id_post_id",
				Unique:  true,
				Columns: []*schema.Column{EventPostLinksColumns[2], EventPostLinksColumns[3]},
			},
			{
				Name:    "eventpostlink_post_id",
				Unique:  false,
				Columns: []*schema.Column{EventPostLinksColumns[3]},
			},
		},
	}
	// LocationCoordinatesColumns holds the columns for the "location_coordinates" table.
	LocationCoordinatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString},
		{Name: "location_type", Type: field.TypeEnum, Enums: []string{"city", "state"}},
		{Name: "latitude", Type: field.TypeFloat64},
		{Name: "longitude", Type: field.TypeFloat64},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "last_verified", Type: field.TypeTime},
	}
	// LocationCoordinatesTable holds the schema information for the "location_coordinates" table.
	LocationCoordinatesTable = &schema.Table{
		Name:       "location_coordinates",
		Columns:    LocationCoordinatesColumns,
		PrimaryKey: []*schema.Column{LocationCoordinatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "locationcoordinate_city_state_location_type",
				Unique:  true,
				Columns: []*schema.Column{LocationCoordinatesColumns[1], LocationCoordinatesColumns[2], LocationCoordinatesColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "city IS NOT NULL",
				},
			},
			{
				Name:    "locationcoordinate_state_location_type",
				Unique:  true,
				Columns: []*schema.Column{LocationCoordinatesColumns[2], LocationCoordinatesColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "city IS NULL",
				},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "succeeded", "failed", "cancelled"}, Default: "queued"},
		{Name: "include_instagram", Type: field.TypeBool, Default: true},
		{Name: "step_states", Type: field.TypeJSON, Nullable: true},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "pipeline_version", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1], PipelineRunsColumns[8]},
			},
		},
	}
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "external_post_id", Type: field.TypeString},
		{Name: "author_handle", Type: field.TypeString},
		{Name: "author_display_name", Type: field.TypeString, Nullable: true},
		{Name: "content_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime, Nullable: true},
		{Name: "media_urls", Type: field.TypeJSON, Nullable: true},
		{Name: "mentioned_handles", Type: field.TypeJSON, Nullable: true},
		{Name: "hashtags", Type: field.TypeJSON, Nullable: true},
		{Name: "like_count", Type: field.TypeInt, Default: 0},
		{Name: "reply_count", Type: field.TypeInt, Default: 0},
		{Name: "retweet_count", Type: field.TypeInt, Default: 0},
		{Name: "comment_count", Type: field.TypeInt, Default: 0},
		{Name: "location_text", Type: field.TypeString, Nullable: true},
		{Name: "offline_media_url", Type: field.TypeString, Nullable: true},
		{Name: "processed_for_events", Type: field.TypeBool, Default: false},
		{Name: "event_processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "post_platform_external_post_id",
				Unique:  true,
				Columns: []*schema.Column{PostsColumns[1], PostsColumns[2]},
			},
			{
				Name:    "post_processed_for_events_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[16], PostsColumns[6]},
			},
			{
				Name:    "post_author_handle",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[3]},
			},
		},
	}
	// PostActorsColumns holds the columns for the "post_actors" table.
	PostActorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "relationship_type", Type: field.TypeEnum, Enums: []string{"author", "mentioned", "tagged"}},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "post_id", Type: field.TypeString},
	}
	// PostActorsTable holds the schema information for the "post_actors" table.
	PostActorsTable = &schema.Table{
		Name:       "post_actors",
		Columns:    PostActorsColumns,
		PrimaryKey: []*schema.Column{PostActorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "post_actors_actors_post_links",
				Columns:    []*schema.Column{PostActorsColumns[2]},
				RefColumns: []*schema.Column{ActorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "post_actors_posts_actor_links",
				Columns:    []*schema.Column{PostActorsColumns[3]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "postactor_post_id_actor_id_relationship_type",
				Unique:  true,
				Columns: []*schema.Column{PostActorsColumns[3], PostActorsColumns[2], PostActorsColumns[1]},
			},
			{
				Name:    "postactor_actor_id",
				Unique:  false,
				Columns: []*schema.Column{PostActorsColumns[2]},
			},
		},
	}
	// PostUnknownActorsColumns holds the columns for the "post_unknown_actors" table.
	PostUnknownActorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "post_id", Type: field.TypeString},
		{Name: "unknown_actor_id", Type: field.TypeString},
	}
	// PostUnknownActorsTable holds the schema information for the "post_unknown_actors" table.
	PostUnknownActorsTable = &schema.Table{
		Name:       "post_unknown_actors",
		Columns:    PostUnknownActorsColumns,
		PrimaryKey: []*schema.Column{PostUnknownActorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "post_unknown_actors_posts_unknown_actor_links",
				Columns:    []*schema.Column{PostUnknownActorsColumns[1]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "post_unknown_actors_unknown_actors_post_links",
				Columns:    []*schema.Column{PostUnknownActorsColumns[2]},
				RefColumns: []*schema.Column{UnknownActorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "postunknownactor_post_id_unknown_actor_id",
				Unique:  true,
				Columns: []*schema.Column{PostUnknownActorsColumns[1], PostUnknownActorsColumns[2]},
			},
			{
				Name:    "postunknownactor_unknown_actor_id",
				Unique:  false,
				Columns: []*schema.Column{PostUnknownActorsColumns[2]},
			},
		},
	}
	// UnknownActorsColumns holds the columns for the "unknown_actors" table.
	UnknownActorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "platform", Type: field.TypeString},
		{Name: "detected_username", Type: field.TypeString},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "mention_count", Type: field.TypeInt, Default: 0},
		{Name: "author_count", Type: field.TypeInt, Default: 0},
		{Name: "mention_context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "review_status", Type: field.TypeEnum, Enums: []string{"pending", "attached", "ignored"}, Default: "pending"},
	}
	// UnknownActorsTable holds the schema information for the "unknown_actors" table.
	UnknownActorsTable = &schema.Table{
		Name:       "unknown_actors",
		Columns:    UnknownActorsColumns,
		PrimaryKey: []*schema.Column{UnknownActorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unknownactor_platform_detected_username",
				Unique:  true,
				Columns: []*schema.Column{UnknownActorsColumns[1], UnknownActorsColumns[2]},
			},
			{
				Name:    "unknownactor_review_status",
				Unique:  false,
				Columns: []*schema.Column{UnknownActorsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActorsTable,
		ActorUsernamesTable,
		DynamicSlugsTable,
		EventsTable,
		EventActorLinksTable,
		EventPostLinksTable,
		LocationCoordinatesTable,
		PipelineRunsTable,
		PostsTable,
		PostActorsTable,
		PostUnknownActorsTable,
		UnknownActorsTable,
	}
)

func init() {
	ActorUsernamesTable.ForeignKeys[0].RefTable = ActorsTable
	EventActorLinksTable.ForeignKeys[0].RefTable = EventsTable
	EventPostLinksTable.ForeignKeys[0].RefTable = EventsTable
	EventPostLinksTable.ForeignKeys[1].RefTable = PostsTable
	PostActorsTable.ForeignKeys[0].RefTable = ActorsTable
	PostActorsTable.ForeignKeys[1].RefTable = PostsTable
	PostUnknownActorsTable.ForeignKeys[0].RefTable = PostsTable
	PostUnknownActorsTable.ForeignKeys[1].RefTable = UnknownActorsTable
}
