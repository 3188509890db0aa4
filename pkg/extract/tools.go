package extract

import (
	"context"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"

	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/storage"
)

// Tool names exposed to the model.
const (
	toolSearchActors       = "search_actors"
	toolSearchDynamicSlugs = "search_dynamic_slugs"
	toolLinkPostsToEvent   = "link_posts_to_existing_event"
)

// toolPalette declares the three function tools.
func toolPalette() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        toolSearchActors,
				Description: "Look up social media handles to find out whether they belong to known people, chapters, or organizations.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"actors": {
							"type": "array",
							"items": {
								"type": "object",
								"properties": {
									"platform": {"type": "string", "enum": ["twitter", "instagram"]},
									"handle": {"type": "string"}
								},
								"required": ["platform", "handle"]
							}
						}
					},
					"required": ["actors"]
				}`),
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        toolSearchDynamicSlugs,
				Description: "Search existing dynamic category slugs so an event reuses an established slug instead of inventing a duplicate.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"search_term": {"type": "string"},
						"parent_tag_filter": {"type": "string"}
					},
					"required": ["search_term"]
				}`),
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        toolLinkPostsToEvent,
				Description: "Link posts from this batch to an event that already exists instead of emitting a duplicate event.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"event_id": {"type": "string"},
						"post_ids": {"type": "array", "items": {"type": "string"}},
						"reason": {"type": "string"}
					},
					"required": ["event_id", "post_ids"]
				}`),
			},
		},
	}
}

// toolRunner dispatches tool calls against batch-local state. postIDMap
// translates external post IDs to UUIDs for link_posts_to_existing_event.
type toolRunner struct {
	gateway   *storage.Gateway
	slugs     *SlugCache
	postIDMap map[string]string
}

// Dispatch runs one tool call and returns its JSON response body.
func (t *toolRunner) Dispatch(ctx context.Context, call openai.ToolCall) string {
	var result any
	var err error
	switch call.Function.Name {
	case toolSearchActors:
		result, err = t.searchActors(ctx, call.Function.Arguments)
	case toolSearchDynamicSlugs:
		result, err = t.searchDynamicSlugs(call.Function.Arguments)
	case toolLinkPostsToEvent:
		result, err = t.linkPostsToEvent(ctx, call.Function.Arguments)
	default:
		err = fmt.Errorf("unknown tool %q", call.Function.Name)
	}
	if err != nil {
		slog.Warn("Tool call failed", "tool", call.Function.Name, "error", err)
		result = map[string]string{"error": err.Error()}
	}
	body, marshalErr := json.Marshal(result)
	if marshalErr != nil {
		return `{"error": "failed to encode tool response"}`
	}
	return string(body)
}

func (t *toolRunner) searchActors(ctx context.Context, args string) (any, error) {
	var req struct {
		Actors []struct {
			Platform string `json:"platform"`
			Handle   string `json:"handle"`
		} `json:"actors"`
	}
	if err := json.Unmarshal([]byte(args), &req); err != nil {
		return nil, fmt.Errorf("decode search_actors args: %w", err)
	}

	directory, err := t.gateway.KnownActorDirectory(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.ActorLookup, 0, len(req.Actors))
	for _, a := range req.Actors {
		key := storage.NewActorKey(a.Platform, a.Handle)
		if lookup, ok := directory[key]; ok {
			results = append(results, lookup)
			continue
		}
		results = append(results, models.ActorLookup{
			Handle:   key.Handle,
			Platform: key.Platform,
			Kind:     models.ActorKindNotFound,
		})
	}
	return results, nil
}

func (t *toolRunner) searchDynamicSlugs(args string) (any, error) {
	var req struct {
		SearchTerm      string `json:"search_term"`
		ParentTagFilter string `json:"parent_tag_filter"`
	}
	if err := json.Unmarshal([]byte(args), &req); err != nil {
		return nil, fmt.Errorf("decode search_dynamic_slugs args: %w", err)
	}

	// Escalate wildcard -> prefix -> exact until the result set is small
	// enough to be useful.
	type slugHit struct {
		ParentTag string `json:"parent_tag"`
		FullSlug  string `json:"full_slug"`
	}
	grouped := make(map[string][]slugHit)
	for _, mode := range []string{"wildcard", "prefix", "exact"} {
		grouped = make(map[string][]slugHit)
		count := 0
		for parent, identifiers := range t.slugs.Search(req.SearchTerm, req.ParentTagFilter, mode) {
			for _, id := range identifiers {
				grouped[id] = append(grouped[id], slugHit{
					ParentTag: parent,
					FullSlug:  parent + ":" + id,
				})
				count++
			}
		}
		if count <= 50 {
			break
		}
	}
	return grouped, nil
}

func (t *toolRunner) linkPostsToEvent(ctx context.Context, args string) (any, error) {
	var req struct {
		EventID string   `json:"event_id"`
		PostIDs []string `json:"post_ids"`
		Reason  string   `json:"reason"`
	}
	if err := json.Unmarshal([]byte(args), &req); err != nil {
		return nil, fmt.Errorf("decode link args: %w", err)
	}

	events, err := t.gateway.EventsByIDs(ctx, []string{req.EventID})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("event %s not found", req.EventID)
	}

	// Accept UUIDs directly; translate external post IDs via the batch map.
	var postUUIDs []string
	for _, id := range req.PostIDs {
		if uuid, ok := t.postIDMap[id]; ok {
			postUUIDs = append(postUUIDs, uuid)
		} else {
			postUUIDs = append(postUUIDs, id)
		}
	}
	stored, err := t.gateway.PostsByIDs(ctx, postUUIDs)
	if err != nil {
		return nil, err
	}
	verified := make([]string, 0, len(stored))
	for _, p := range stored {
		verified = append(verified, p.ID)
	}
	if len(verified) == 0 {
		return nil, fmt.Errorf("no valid posts to link")
	}

	if err := t.gateway.LinkEventPosts(ctx, req.EventID, verified); err != nil {
		return nil, err
	}

	// Migrate the posts' actor edges onto the event, preserving the
	// known/unknown distinction.
	linker := newActorLinker(t.gateway)
	links, covered, err := linker.LinksFromPosts(ctx, req.EventID, verified)
	if err != nil {
		return nil, err
	}
	if err := t.gateway.LinkEventActors(ctx, links); err != nil {
		return nil, err
	}

	migrated := make([]string, 0, len(covered))
	for handle := range covered {
		migrated = append(migrated, handle)
	}
	slog.Info("Linked posts to existing event",
		"event_id", req.EventID, "posts", len(verified), "reason", req.Reason)
	return map[string]any{
		"success":         true,
		"linked_posts":    verified,
		"migrated_actors": migrated,
	}, nil
}

