// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civiclens/civiclens/ent/post"
)

// Post is the model entity for the Post schema.
type Post struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Canonical platform name (twitter, instagram, truth_social, ...)
	Platform string `json:"platform,omitempty"`
	// Platform-native post identifier
	ExternalPostID string `json:"external_post_id,omitempty"`
	// Always lowercased
	AuthorHandle string `json:"author_handle,omitempty"`
	// AuthorDisplayName holds the value of the "author_display_name" field.
	AuthorDisplayName string `json:"author_display_name,omitempty"`
	// ContentText holds the value of the "content_text" field.
	ContentText string `json:"content_text,omitempty"`
	// UTC; nil when the source value could not be parsed
	Timestamp *time.Time `json:"timestamp,omitempty"`
	// MediaUrls holds the value of the "media_urls" field.
	MediaUrls []string `json:"media_urls,omitempty"`
	// Lowercased, first-seen order, deduplicated
	MentionedHandles []string `json:"mentioned_handles,omitempty"`
	// Hashtags holds the value of the "hashtags" field.
	Hashtags []string `json:"hashtags,omitempty"`
	// LikeCount holds the value of the "like_count" field.
	LikeCount int `json:"like_count,omitempty"`
	// ReplyCount holds the value of the "reply_count" field.
	ReplyCount int `json:"reply_count,omitempty"`
	// RetweetCount holds the value of the "retweet_count" field.
	RetweetCount int `json:"retweet_count,omitempty"`
	// CommentCount holds the value of the "comment_count" field.
	CommentCount int `json:"comment_count,omitempty"`
	// LocationText holds the value of the "location_text" field.
	LocationText string `json:"location_text,omitempty"`
	// Object-store public URL, or EXPIRED / PERMANENTLY_EXPIRED sentinel
	OfflineMediaURL *string `json:"offline_media_url,omitempty"`
	// ProcessedForEvents holds the value of the "processed_for_events" field.
	ProcessedForEvents bool `json:"processed_for_events,omitempty"`
	// EventProcessedAt holds the value of the "event_processed_at" field.
	EventProcessedAt *time.Time `json:"event_processed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PostQuery when eager-loading is set.
	Edges        PostEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PostEdges holds the relations/edges for other nodes in the graph.
type PostEdges struct {
	// ActorLinks holds the value of the actor_links edge.
	ActorLinks []*PostActor `json:"actor_links,omitempty"`
	// UnknownActorLinks holds the value of the unknown_actor_links edge.
	UnknownActorLinks []*PostUnknownActor `json:"unknown_actor_links,omitempty"`
	// EventLinks holds the value of the event_links edge.
	EventLinks []*EventPostLink `json:"event_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ActorLinksOrErr returns the ActorLinks value or an error if the edge
// was not loaded in eager-loading.
func (e PostEdges) ActorLinksOrErr() ([]*PostActor, error) {
	if e.loadedTypes[0] {
		return e.ActorLinks, nil
	}
	return nil, &NotLoadedError{edge: "actor_links"}
}

// UnknownActorLinksOrErr returns the UnknownActorLinks value or an error if the edge
// was not loaded in eager-loading.
func (e PostEdges) UnknownActorLinksOrErr() ([]*PostUnknownActor, error) {
	if e.loadedTypes[1] {
		return e.UnknownActorLinks, nil
	}
	return nil, &NotLoadedError{edge: "unknown_actor_links"}
}

// EventLinksOrErr returns the EventLinks value or an error if the edge
// was not loaded in eager-loading.
func (e PostEdges) EventLinksOrErr() ([]*EventPostLink, error) {
	if e.loadedTypes[2] {
		return e.EventLinks, nil
	}
	return nil, &NotLoadedError{edge: "event_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Post) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case post.FieldMediaUrls, post.FieldMentionedHandles, post.FieldHashtags:
			values[i] = new([]byte)
		case post.FieldProcessedForEvents:
			values[i] = new(sql.NullBool)
		case post.FieldLikeCount, post.FieldReplyCount, post.FieldRetweetCount, post.FieldCommentCount:
			values[i] = new(sql.NullInt64)
		case post.FieldID, post.FieldPlatform, post.FieldExternalPostID, post.FieldAuthorHandle, post.FieldAuthorDisplayName, post.FieldContentText, post.FieldLocationText, post.FieldOfflineMediaURL:
			values[i] = new(sql.NullString)
		case post.FieldTimestamp, post.FieldEventProcessedAt, post.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Post fields.
func (_m *Post) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case post.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case post.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case post.FieldExternalPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_post_id", values[i])
			} else if value.Valid {
				_m.ExternalPostID = value.String
			}
		case post.FieldAuthorHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_handle", values[i])
			} else if value.Valid {
				_m.AuthorHandle = value.String
			}
		case post.FieldAuthorDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_display_name", values[i])
			} else if value.Valid {
				_m.AuthorDisplayName = value.String
			}
		case post.FieldContentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_text", values[i])
			} else if value.Valid {
				_m.ContentText = value.String
			}
		case post.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = new(time.Time)
				*_m.Timestamp = value.Time
			}
		case post.FieldMediaUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field media_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MediaUrls); err != nil {
					return fmt.Errorf("unmarshal field media_urls: %w", err)
				}
			}
		case post.FieldMentionedHandles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mentioned_handles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MentionedHandles); err != nil {
					return fmt.Errorf("unmarshal field mentioned_handles: %w", err)
				}
			}
		case post.FieldHashtags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hashtags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Hashtags); err != nil {
					return fmt.Errorf("unmarshal field hashtags: %w", err)
				}
			}
		case post.FieldLikeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field like_count", values[i])
			} else if value.Valid {
				_m.LikeCount = int(value.Int64)
			}
		case post.FieldReplyCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reply_count", values[i])
			} else if value.Valid {
				_m.ReplyCount = int(value.Int64)
			}
		case post.FieldRetweetCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retweet_count", values[i])
			} else if value.Valid {
				_m.RetweetCount = int(value.Int64)
			}
		case post.FieldCommentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field comment_count", values[i])
			} else if value.Valid {
				_m.CommentCount = int(value.Int64)
			}
		case post.FieldLocationText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_text", values[i])
			} else if value.Valid {
				_m.LocationText = value.String
			}
		case post.FieldOfflineMediaURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offline_media_url", values[i])
			} else if value.Valid {
				_m.OfflineMediaURL = new(string)
				*_m.OfflineMediaURL = value.String
			}
		case post.FieldProcessedForEvents:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field processed_for_events", values[i])
			} else if value.Valid {
				_m.ProcessedForEvents = value.Bool
			}
		case post.FieldEventProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_processed_at", values[i])
			} else if value.Valid {
				_m.EventProcessedAt = new(time.Time)
				*_m.EventProcessedAt = value.Time
			}
		case post.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Post.
// This includes values selected through modifiers, order, etc.
func (_m *Post) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryActorLinks queries the "actor_links" edge of the Post entity.
func (_m *Post) QueryActorLinks() *PostActorQuery {
	return NewPostClient(_m.config).QueryActorLinks(_m)
}

// QueryUnknownActorLinks queries the "unknown_actor_links" edge of the Post entity.
func (_m *Post) QueryUnknownActorLinks() *PostUnknownActorQuery {
	return NewPostClient(_m.config).QueryUnknownActorLinks(_m)
}

// QueryEventLinks queries the "event_links" edge of the Post entity.
func (_m *Post) QueryEventLinks() *EventPostLinkQuery {
	return NewPostClient(_m.config).QueryEventLinks(_m)
}

// Update returns a builder for updating this Post.
// Note that you need to call Post.Unwrap() before calling this method if this Post
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Post) Update() *PostUpdateOne {
	return NewPostClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Post entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Post) Unwrap() *Post {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Post is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Post) String() string {
	var builder strings.Builder
	builder.WriteString("Post(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("external_post_id=")
	builder.WriteString(_m.ExternalPostID)
	builder.WriteString(", ")
	builder.WriteString("author_handle=")
	builder.WriteString(_m.AuthorHandle)
	builder.WriteString(", ")
	builder.WriteString("author_display_name=")
	builder.WriteString(_m.AuthorDisplayName)
	builder.WriteString(", ")
	builder.WriteString("content_text=")
	builder.WriteString(_m.ContentText)
	builder.WriteString(", ")
	if v := _m.Timestamp; v != nil {
		builder.WriteString("timestamp=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("media_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediaUrls))
	builder.WriteString(", ")
	builder.WriteString("mentioned_handles=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionedHandles))
	builder.WriteString(", ")
	builder.WriteString("hashtags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hashtags))
	builder.WriteString(", ")
	builder.WriteString("like_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LikeCount))
	builder.WriteString(", ")
	builder.WriteString("reply_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReplyCount))
	builder.WriteString(", ")
	builder.WriteString("retweet_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetweetCount))
	builder.WriteString(", ")
	builder.WriteString("comment_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommentCount))
	builder.WriteString(", ")
	builder.WriteString("location_text=")
	builder.WriteString(_m.LocationText)
	builder.WriteString(", ")
	if v := _m.OfflineMediaURL; v != nil {
		builder.WriteString("offline_media_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processed_for_events=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedForEvents))
	builder.WriteString(", ")
	if v := _m.EventProcessedAt; v != nil {
		builder.WriteString("event_processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Posts is a parsable slice of Post.
type Posts []*Post
