package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/batch"
	"github.com/civiclens/civiclens/pkg/llm"
	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/queue"
	"github.com/civiclens/civiclens/pkg/storage"
)

// Engine runs the extraction loop for one batch at a time. It satisfies the
// worker pool's BatchExecutor contract: a returned error leaves the batch's
// posts unprocessed for the next run.
type Engine struct {
	gateway *storage.Gateway
	slugs   *SlugCache
	images  *imageFetcher

	useFunctionTools bool
}

// NewEngine builds an engine sharing one slug cache across workers.
func NewEngine(gateway *storage.Gateway, slugs *SlugCache, useFunctionTools bool) *Engine {
	return &Engine{
		gateway:          gateway,
		slugs:            slugs,
		images:           newImageFetcher(),
		useFunctionTools: useFunctionTools,
	}
}

// ExecuteBatch processes one batch end to end and returns the number of
// events persisted.
func (e *Engine) ExecuteBatch(ctx context.Context, workerID string, client queue.LLMClient, b batch.Batch) (int, error) {
	if err := e.slugs.Reload(ctx); err != nil {
		slog.Warn("Slug cache reload failed, using stale cache", "error", err)
	}

	postIDMap := make(map[string]string, len(b.Posts))
	postUUIDs := make(map[string]struct{}, len(b.Posts))
	for _, p := range b.Posts {
		postIDMap[p.ExternalPostID] = p.ID
		postUUIDs[p.ID] = struct{}{}
	}

	reply, err := e.converse(ctx, client, b.Posts)
	if err != nil {
		return 0, fmt.Errorf("LLM conversation: %w", err)
	}

	events, err := e.decodeEvents(reply)
	if err != nil {
		return 0, fmt.Errorf("decode events (response tail: %s): %w", tail(reply, 500), err)
	}

	valid, err := e.validateEvents(events, postIDMap, postUUIDs)
	if err != nil {
		return 0, err
	}

	persisted, err := e.persist(ctx, workerID, client, valid, b.Posts)
	if err != nil {
		return 0, err
	}

	var batchPostIDs []string
	for _, p := range b.Posts {
		batchPostIDs = append(batchPostIDs, p.ID)
	}
	if err := e.gateway.MarkPostsProcessed(ctx, batchPostIDs); err != nil {
		return 0, fmt.Errorf("mark posts processed: %w", err)
	}
	return persisted, nil
}

// converse runs the bounded two-step exchange: one call offering tools, and
// when any tool was used, one JSON-only follow-up carrying the tool results.
func (e *Engine) converse(ctx context.Context, client queue.LLMClient, posts []*ent.Post) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt()},
		e.userMessage(ctx, posts),
	}

	if !e.useFunctionTools {
		msg, err := client.Chat(ctx, messages, llm.ChatOptions{ForceJSON: true})
		if err != nil {
			return "", err
		}
		return msg.Content, nil
	}

	first, err := client.Chat(ctx, messages, llm.ChatOptions{Tools: toolPalette()})
	if err != nil {
		return "", err
	}
	if len(first.ToolCalls) == 0 {
		return first.Content, nil
	}

	runner := &toolRunner{
		gateway:   e.gateway,
		slugs:     e.slugs,
		postIDMap: e.postIDMapOf(posts),
	}
	messages = append(messages, *first)
	for _, call := range first.ToolCalls {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			ToolCallID: call.ID,
			Content:    runner.Dispatch(ctx, call),
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: "Using the tool results above, produce the final JSON now.",
	})

	second, err := client.Chat(ctx, messages, llm.ChatOptions{ForceJSON: true})
	if err != nil {
		return "", err
	}
	return second.Content, nil
}

// userMessage serializes the batch, attaching at most one normalized image
// per post. Image failures degrade to text-only.
func (e *Engine) userMessage(ctx context.Context, posts []*ent.Post) openai.ChatCompletionMessage {
	text := SerializeBatch(posts)

	var parts []openai.ChatMessagePart
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: text,
	})
	for _, p := range posts {
		dataURL, err := e.images.FetchDataURL(ctx, p)
		if err != nil {
			slog.Debug("Skipping post image", "post", p.ID, "error", err)
			continue
		}
		if dataURL == "" {
			continue
		}
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    dataURL,
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}

	if len(parts) == 1 {
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text}
	}
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, MultiContent: parts}
}

func (e *Engine) postIDMapOf(posts []*ent.Post) map[string]string {
	m := make(map[string]string, len(posts))
	for _, p := range posts {
		m[p.ExternalPostID] = p.ID
	}
	return m
}

// decodeEvents accepts {events:[...]}, a bare array, or a single object.
func (e *Engine) decodeEvents(reply string) ([]models.ExtractedEvent, error) {
	var envelope models.ExtractionResponse
	if err := llm.DecodeJSON(reply, &envelope); err == nil && envelope.Events != nil {
		return envelope.Events, nil
	}
	var bare []models.ExtractedEvent
	if err := llm.DecodeJSON(reply, &bare); err == nil {
		return bare, nil
	}
	var single models.ExtractedEvent
	if err := llm.DecodeJSON(reply, &single); err == nil && single.EventName != "" {
		return []models.ExtractedEvent{single}, nil
	}
	return nil, fmt.Errorf("reply matches no known events shape")
}

// validateEvents translates source IDs to UUIDs and filters invalid events.
// A missing-source-ID violation fails the whole batch.
func (e *Engine) validateEvents(events []models.ExtractedEvent, postIDMap map[string]string, postUUIDs map[string]struct{}) ([]models.ExtractedEvent, error) {
	var valid []models.ExtractedEvent
	for i := range events {
		ev := events[i]

		translated := make([]string, 0, len(ev.SourceIDs))
		for _, id := range ev.SourceIDs {
			if uuid, ok := postIDMap[id]; ok {
				translated = append(translated, uuid)
				continue
			}
			translated = append(translated, id)
		}
		ev.SourceIDs = translated
		ev.EventDate = NormalizeEventDate(ev.ResolvedDate())
		ev.Date = ""

		reason, err := ValidateEvent(&ev, postUUIDs)
		if err != nil {
			return nil, err
		}
		if reason != "" {
			slog.Warn("Discarding invalid event",
				"event", ev.EventName, "reason", reason)
			continue
		}
		valid = append(valid, ev)
	}
	return valid, nil
}

// persist writes events in order: event upsert, post links, actor links,
// dynamic slugs. Links are created for newly inserted events only.
func (e *Engine) persist(ctx context.Context, workerID string, client queue.LLMClient, events []models.ExtractedEvent, posts []*ent.Post) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	provenance := fmt.Sprintf("%s/%s", client.Model(), workerID)
	rows := make([]storage.EventRow, 0, len(events))
	byHash := make(map[string]*models.ExtractedEvent, len(events))
	for i := range events {
		ev := &events[i]
		sorted := SortedPostIDs(ev.SourceIDs)
		hash := ContentHash(ev.EventName, ev.EventDate, ev.Location, ev.City, ev.State, sorted)
		byHash[hash] = ev
		rows = append(rows, storage.EventRow{
			EventName:        ev.EventName,
			EventDate:        ev.EventDate,
			EventDescription: ev.EventDescription,
			Location:         ev.Location,
			City:             ev.City,
			State:            ev.State,
			Participants:     ev.Participants,
			CategoryTags:     ev.CategoryTags,
			SourcePostIDs:    sorted,
			ConfidenceScore:  ev.ConfidenceScore,
			ExtractedBy:      provenance,
			ContentHash:      hash,
			Embedding:        e.embed(ctx, client, ev),
		})
	}

	results, err := e.gateway.UpsertEvents(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("upsert events: %w", err)
	}

	linker := newActorLinker(e.gateway)
	persisted := 0
	for _, res := range results {
		ev, ok := byHash[res.ContentHash]
		if !ok {
			continue
		}
		persisted++
		if !res.IsNew {
			// A prior run already materialized this event's links.
			continue
		}

		verified, err := e.verifiedPostIDs(ctx, ev.SourceIDs)
		if err != nil {
			return 0, err
		}
		if err := e.gateway.LinkEventPosts(ctx, res.ID, verified); err != nil {
			return 0, fmt.Errorf("link event posts: %w", err)
		}

		links, err := linker.LinksForEvent(ctx, res.ID, ev, verified)
		if err != nil {
			return 0, fmt.Errorf("compute actor links: %w", err)
		}
		if err := e.gateway.LinkEventActors(ctx, links); err != nil {
			return 0, fmt.Errorf("link event actors: %w", err)
		}

		if err := e.registerSlugs(ctx, ev.CategoryTags); err != nil {
			slog.Warn("Dynamic slug registration failed", "event", ev.EventName, "error", err)
		}
	}
	return persisted, nil
}

// verifiedPostIDs keeps only IDs that exist in storage, guarding the link
// writes against foreign-key failures.
func (e *Engine) verifiedPostIDs(ctx context.Context, ids []string) ([]string, error) {
	stored, err := e.gateway.PostsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("verify source posts: %w", err)
	}
	out := make([]string, 0, len(stored))
	for _, p := range stored {
		out = append(out, p.ID)
	}
	return out, nil
}

// embed produces the best-effort event embedding; failure yields nil.
func (e *Engine) embed(ctx context.Context, client queue.LLMClient, ev *models.ExtractedEvent) []float64 {
	text := strings.TrimSpace(fmt.Sprintf("%s\n%s\n%s %s", ev.EventName, ev.EventDescription, ev.City, ev.State))
	vector, err := client.Embed(ctx, text)
	if err != nil {
		slog.Warn("Event embedding failed, persisting without vector",
			"event", ev.EventName, "error", err)
		return nil
	}
	return vector
}

// registerSlugs persists new ParentTag:identifier tags for cacheable
// namespaces.
func (e *Engine) registerSlugs(ctx context.Context, tags []string) error {
	for _, tag := range tags {
		parent, identifier, found := strings.Cut(tag, ":")
		if !found {
			continue
		}
		if !Cacheable(parent) {
			continue
		}
		if err := e.slugs.Register(ctx, parent, identifier); err != nil {
			return err
		}
	}
	return nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
