package ingest

import (
	"time"
	"unicode/utf8"

	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/storage"
)

const mentionContextMax = 500

// unknownAggregator accumulates unknown-handle observations across one
// ingestion run so each (platform, handle) produces a single merged upsert.
type unknownAggregator struct {
	byKey map[storage.ActorKey]*storage.UnknownActorObservation
	// postKeys records which handles each post referenced so edges can be
	// written once IDs are known.
	postKeys map[string][]storage.ActorKey
}

func newUnknownAggregator() *unknownAggregator {
	return &unknownAggregator{
		byKey:    make(map[storage.ActorKey]*storage.UnknownActorObservation),
		postKeys: make(map[string][]storage.ActorKey),
	}
}

// observe records one sighting of an unknown handle on a post. asAuthor
// bumps author_count; every sighting bumps mention_count.
func (a *unknownAggregator) observe(postID string, post *models.RawPost, handle string, asAuthor bool) {
	key := storage.NewActorKey(post.Platform, handle)
	if key.Handle == "" {
		return
	}

	obs, ok := a.byKey[key]
	if !ok {
		obs = &storage.UnknownActorObservation{
			Platform: key.Platform,
			Handle:   key.Handle,
		}
		a.byKey[key] = obs
	}

	ts := time.Now().UTC()
	if post.HasTimestamp() {
		ts = *post.Timestamp
	}
	if obs.FirstSeen.IsZero() || ts.Before(obs.FirstSeen) {
		obs.FirstSeen = ts
	}
	if ts.After(obs.LastSeen) {
		obs.LastSeen = ts
	}
	obs.MentionCount++
	if asAuthor {
		obs.AuthorCount++
	}
	if obs.MentionContext == "" && post.ContentText != "" {
		obs.MentionContext = truncate(post.ContentText, mentionContextMax)
	}

	a.postKeys[postID] = append(a.postKeys[postID], key)
}

// observations returns the merged set ready for upsert.
func (a *unknownAggregator) observations() []storage.UnknownActorObservation {
	out := make([]storage.UnknownActorObservation, 0, len(a.byKey))
	for _, obs := range a.byKey {
		out = append(out, *obs)
	}
	return out
}

// edges resolves post-to-unknown-actor edges using the ID map returned by
// the upsert, deduplicating per (post, unknown actor).
func (a *unknownAggregator) edges(ids map[storage.ActorKey]string) []storage.PostUnknownActorEdge {
	var out []storage.PostUnknownActorEdge
	seen := make(map[storage.PostUnknownActorEdge]struct{})
	for postID, keys := range a.postKeys {
		for _, key := range keys {
			id, ok := ids[key]
			if !ok {
				continue
			}
			edge := storage.PostUnknownActorEdge{PostID: postID, UnknownActorID: id}
			if _, dup := seen[edge]; dup {
				continue
			}
			seen[edge] = struct{}{}
			out = append(out, edge)
		}
	}
	return out
}

// truncate cuts s to at most limit bytes without splitting a UTF-8 rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
