package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/storage"
)

// processedPrefix marks archived files inside a raw bucket.
const processedPrefix = "processed/"

// Stats summarizes one ingestion run.
type Stats struct {
	FilesProcessed  int
	FilesFailed     int
	PostsParsed     int
	PostsInserted   int
	PostsDuplicate  int
	RowsSkipped     int
	UnknownActors   int
	KnownActorEdges int
}

// Ingestor reads raw scrape files from a bucket, normalizes them into posts,
// and materializes actor edges. Migration runs skip the archive step so the
// source files stay put.
type Ingestor struct {
	gateway *storage.Gateway

	// dedupCache holds (platform, external_post_id) pairs known to exist,
	// populated lazily from batched existence lookups.
	dedupCache map[string]struct{}

	// knownActors is the curated (platform, username) directory loaded once
	// per run.
	knownActors map[storage.ActorKey]models.ActorLookup

	migrationRun bool
}

// NewIngestor builds an ingestor over the storage gateway. migrationRun
// disables post-ingest file archiving.
func NewIngestor(gateway *storage.Gateway, migrationRun bool) *Ingestor {
	return &Ingestor{
		gateway:      gateway,
		dedupCache:   make(map[string]struct{}),
		migrationRun: migrationRun,
	}
}

// Run ingests every unarchived file in the bucket. platform selects the
// parser: "twitter" for CSV files, "instagram" for JSON. Per-file errors are
// counted and logged, never fatal.
func (ing *Ingestor) Run(ctx context.Context, bucket, platform string) (*Stats, error) {
	stats := &Stats{}

	known, err := ing.gateway.KnownActorDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load actor directory: %w", err)
	}
	ing.knownActors = known

	keys, err := ing.gateway.Store().List(ctx, bucket, "")
	if err != nil {
		return nil, fmt.Errorf("list bucket %s: %w", bucket, err)
	}

	for _, key := range keys {
		if strings.HasPrefix(key, processedPrefix) || strings.HasSuffix(key, "/") {
			continue
		}
		if err := ing.processFile(ctx, bucket, key, platform, stats); err != nil {
			stats.FilesFailed++
			slog.Error("File ingestion failed", "bucket", bucket, "key", key, "error", err)
			continue
		}
		stats.FilesProcessed++
	}

	slog.Info("Ingestion run complete",
		"bucket", bucket, "platform", platform,
		"files", stats.FilesProcessed, "failed", stats.FilesFailed,
		"parsed", stats.PostsParsed, "inserted", stats.PostsInserted,
		"duplicates", stats.PostsDuplicate, "unknown_actors", stats.UnknownActors)
	return stats, nil
}

func (ing *Ingestor) processFile(ctx context.Context, bucket, key, platform string, stats *Stats) error {
	data, err := ing.gateway.Store().Get(ctx, bucket, key)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", key, err)
	}

	var posts []*models.RawPost
	var skipped int
	switch platform {
	case "instagram":
		posts, skipped, err = ParseInstagramJSON(data)
	default:
		posts, skipped, err = ParseTwitterCSV(data)
	}
	if err != nil {
		return err
	}
	stats.PostsParsed += len(posts)
	stats.RowsSkipped += skipped

	fresh, err := ing.filterDuplicates(ctx, posts)
	if err != nil {
		return err
	}
	stats.PostsDuplicate += len(posts) - len(fresh)

	if len(fresh) > 0 {
		if err := ing.persistPosts(ctx, fresh, stats); err != nil {
			return err
		}
	}

	if !ing.migrationRun {
		if err := ing.archiveFile(ctx, bucket, key); err != nil {
			// Posts are already stored; a failed archive only risks
			// re-reading a file whose rows will dedup away.
			slog.Warn("Failed to archive ingested file",
				"bucket", bucket, "key", key, "error", err)
		}
	}
	return nil
}

// filterDuplicates drops posts whose (platform, external_post_id) already
// exists, consulting the session cache first and filling misses with batched
// IN queries.
func (ing *Ingestor) filterDuplicates(ctx context.Context, posts []*models.RawPost) ([]*models.RawPost, error) {
	byPlatform := make(map[string][]string)
	for _, p := range posts {
		cacheKey := p.Platform + "|" + p.ExternalPostID
		if _, hit := ing.dedupCache[cacheKey]; hit {
			continue
		}
		byPlatform[p.Platform] = append(byPlatform[p.Platform], p.ExternalPostID)
	}

	for platform, extIDs := range byPlatform {
		existing, err := ing.gateway.ExistingExternalIDs(ctx, platform, extIDs)
		if err != nil {
			return nil, fmt.Errorf("existence lookup: %w", err)
		}
		for id := range existing {
			ing.dedupCache[platform+"|"+id] = struct{}{}
		}
	}

	var fresh []*models.RawPost
	seenInFile := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		cacheKey := p.Platform + "|" + p.ExternalPostID
		if _, dup := ing.dedupCache[cacheKey]; dup {
			continue
		}
		if _, dup := seenInFile[cacheKey]; dup {
			continue
		}
		seenInFile[cacheKey] = struct{}{}
		fresh = append(fresh, p)
	}
	return fresh, nil
}

// persistPosts inserts posts, then derives and writes actor and
// unknown-actor edges for the inserted rows.
func (ing *Ingestor) persistPosts(ctx context.Context, posts []*models.RawPost, stats *Stats) error {
	ids, inserted, err := ing.gateway.InsertPosts(ctx, posts)
	if err != nil {
		return fmt.Errorf("insert posts: %w", err)
	}
	stats.PostsInserted += inserted
	for _, p := range posts {
		ing.dedupCache[p.Platform+"|"+p.ExternalPostID] = struct{}{}
	}

	agg := newUnknownAggregator()
	var knownEdges []storage.PostActorEdge

	for _, p := range posts {
		postID, ok := ids[p.ExternalPostID]
		if !ok {
			continue
		}
		ing.classifyHandle(postID, p, p.AuthorHandle, "author", agg, &knownEdges)
		for _, mention := range p.MentionedHandles {
			ing.classifyHandle(postID, p, mention, "mentioned", agg, &knownEdges)
		}
		for _, tag := range p.Hashtags {
			// A hashtag that exactly matches a curated handle counts as a
			// tagged relationship.
			handle := strings.ToLower(strings.TrimPrefix(tag, "#"))
			if lookup, hit := ing.knownActors[storage.NewActorKey(p.Platform, handle)]; hit {
				knownEdges = append(knownEdges, storage.PostActorEdge{
					PostID:           postID,
					ActorID:          lookup.ActorID,
					RelationshipType: "tagged",
				})
			}
		}
	}

	observations := agg.observations()
	if len(observations) > 0 {
		unknownIDs, err := ing.gateway.UpsertUnknownActors(ctx, observations)
		if err != nil {
			return fmt.Errorf("upsert unknown actors: %w", err)
		}
		stats.UnknownActors += len(observations)
		if err := ing.gateway.LinkPostUnknownActors(ctx, agg.edges(unknownIDs)); err != nil {
			return fmt.Errorf("link unknown actors: %w", err)
		}
	}

	if len(knownEdges) > 0 {
		if err := ing.gateway.LinkPostActors(ctx, knownEdges); err != nil {
			return fmt.Errorf("link known actors: %w", err)
		}
		stats.KnownActorEdges += len(knownEdges)
	}
	return nil
}

// classifyHandle routes one handle to either a curated-actor edge or the
// unknown-actor aggregator.
func (ing *Ingestor) classifyHandle(postID string, p *models.RawPost, handle, relationship string, agg *unknownAggregator, knownEdges *[]storage.PostActorEdge) {
	if handle == "" {
		return
	}
	if lookup, hit := ing.knownActors[storage.NewActorKey(p.Platform, handle)]; hit {
		*knownEdges = append(*knownEdges, storage.PostActorEdge{
			PostID:           postID,
			ActorID:          lookup.ActorID,
			RelationshipType: relationship,
		})
		return
	}
	agg.observe(postID, p, handle, relationship == "author")
}

// archiveFile moves a consumed file to processed/YYYY-MM-DD/ in the same
// bucket.
func (ing *Ingestor) archiveFile(ctx context.Context, bucket, key string) error {
	dst := processedPrefix + time.Now().UTC().Format("2006-01-02") + "/" + path.Base(key)
	return ing.gateway.Store().Move(ctx, bucket, key, dst)
}
