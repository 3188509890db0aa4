// Package extract implements the LLM extraction engine: prompt assembly,
// the bounded tool-calling loop, event validation, and persistence.
package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/civiclens/civiclens/pkg/storage"
)

// cacheableParentTags are the dynamic-slug namespaces persisted when the
// model emits a new ParentTag:identifier tag.
var cacheableParentTags = map[string]struct{}{
	"Institution":     {},
	"School":          {},
	"Church":          {},
	"BallotMeasure":   {},
	"Recall":          {},
	"Conference":      {},
	"LobbyingTopic":   {},
	"Primary":         {},
	"GeneralElection": {},
	"Election":        {},
	"Candidate":       {},
}

// slugReloadInterval is the minimum gap between two cache reloads.
const slugReloadInterval = 30 * time.Second

var slugSeparators = regexp.MustCompile(`[\s\-]+`)
var repeatedUnderscores = regexp.MustCompile(`_+`)

// NormalizeSlugIdentifier lowercases, converts separators to underscores,
// and collapses repeats. Lookups against the cache are case-insensitive by
// construction.
func NormalizeSlugIdentifier(identifier string) string {
	s := strings.ToLower(strings.TrimSpace(identifier))
	s = slugSeparators.ReplaceAllString(s, "_")
	s = repeatedUnderscores.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// SlugCache is the process-wide dynamic-slug directory behind an RW-lock,
// reloaded on a time threshold rather than per batch.
type SlugCache struct {
	gateway *storage.Gateway

	mu         sync.RWMutex
	byParent   map[string]map[string]struct{}
	lastReload time.Time
}

// NewSlugCache builds an empty cache; the first Reload populates it.
func NewSlugCache(gateway *storage.Gateway) *SlugCache {
	return &SlugCache{
		gateway:  gateway,
		byParent: make(map[string]map[string]struct{}),
	}
}

// Reload refreshes the cache from storage, no-op when reloaded within the
// last 30 seconds.
func (c *SlugCache) Reload(ctx context.Context) error {
	c.mu.RLock()
	recent := time.Since(c.lastReload) < slugReloadInterval
	c.mu.RUnlock()
	if recent {
		return nil
	}

	slugs, err := c.gateway.LoadDynamicSlugs(ctx)
	if err != nil {
		return err
	}

	byParent := make(map[string]map[string]struct{}, len(slugs))
	total := 0
	for parent, identifiers := range slugs {
		set := make(map[string]struct{}, len(identifiers))
		for _, id := range identifiers {
			set[NormalizeSlugIdentifier(id)] = struct{}{}
			total++
		}
		byParent[parent] = set
	}

	c.mu.Lock()
	c.byParent = byParent
	c.lastReload = time.Now()
	c.mu.Unlock()

	slog.Debug("Reloaded dynamic slug cache", "parents", len(byParent), "slugs", total)
	return nil
}

// Has reports whether (parentTag, identifier) is already registered.
func (c *SlugCache) Has(parentTag, identifier string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.byParent[parentTag]
	if !ok {
		return false
	}
	_, ok = set[NormalizeSlugIdentifier(identifier)]
	return ok
}

// Search returns, for each parent tag, the identifiers matching term. mode
// escalates from wildcard to prefix to exact across retries.
func (c *SlugCache) Search(term, parentFilter, mode string) map[string][]string {
	normalized := NormalizeSlugIdentifier(term)
	match := func(id string) bool {
		switch mode {
		case "prefix":
			return strings.HasPrefix(id, normalized)
		case "exact":
			return id == normalized
		default:
			return strings.Contains(id, normalized)
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	results := make(map[string][]string)
	for parent, set := range c.byParent {
		if parentFilter != "" && parent != parentFilter {
			continue
		}
		for id := range set {
			if match(id) {
				results[parent] = append(results[parent], id)
			}
		}
	}
	return results
}

// Register persists a new slug and inserts it into the cache immediately.
func (c *SlugCache) Register(ctx context.Context, parentTag, identifier string) error {
	normalized := NormalizeSlugIdentifier(identifier)
	if normalized == "" {
		return nil
	}
	if c.Has(parentTag, normalized) {
		return nil
	}
	fullSlug := parentTag + ":" + normalized
	if err := c.gateway.RegisterDynamicSlug(ctx, parentTag, normalized, fullSlug); err != nil {
		return err
	}

	c.mu.Lock()
	if c.byParent[parentTag] == nil {
		c.byParent[parentTag] = make(map[string]struct{})
	}
	c.byParent[parentTag][normalized] = struct{}{}
	c.mu.Unlock()
	return nil
}

// Cacheable reports whether a parent tag belongs to the persisted slug
// namespaces.
func Cacheable(parentTag string) bool {
	_, ok := cacheableParentTags[parentTag]
	return ok
}
