package storage

import (
	"context"
	"time"

	"github.com/civiclens/civiclens/ent"
	entpost "github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/pkg/models"
)

const (
	// existsChunkSize bounds the IN-list of existence probes.
	existsChunkSize = 50
	// markChunkSize bounds processed-flag and media-URL update batches.
	markChunkSize = 100
)

// ExistingExternalIDs returns the subset of externalIDs already stored for a
// platform. Probes run in chunks of at most 50 IDs.
func (g *Gateway) ExistingExternalIDs(ctx context.Context, platform string, externalIDs []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(externalIDs))
	for _, chunk := range Chunk(externalIDs, existsChunkSize) {
		var found []string
		err := g.Do(ctx, "posts.existing_ids", func(ctx context.Context) error {
			var queryErr error
			found, queryErr = g.db.Post.Query().
				Where(entpost.PlatformEQ(platform), entpost.ExternalPostIDIn(chunk...)).
				Select(entpost.FieldExternalPostID).
				Strings(ctx)
			return queryErr
		})
		if err != nil {
			return nil, err
		}
		for _, id := range found {
			existing[id] = struct{}{}
		}
	}
	return existing, nil
}

// InsertPosts upserts normalized posts in chunks, ignoring rows whose
// (platform, external_post_id) already exists. It returns the mapping from
// external post ID to stored post UUID covering both new and pre-existing
// rows, plus the count of newly inserted posts. Upserts with DO NOTHING
// return no rows, so the mapping comes from a read-back query per chunk.
func (g *Gateway) InsertPosts(ctx context.Context, posts []*models.RawPost) (map[string]string, int, error) {
	ids := make(map[string]string, len(posts))
	inserted := 0

	for _, chunk := range Chunk(posts, g.chunkSize) {
		before, err := g.countExisting(ctx, chunk)
		if err != nil {
			return nil, 0, err
		}

		builders := make([]*ent.PostCreate, len(chunk))
		for i, p := range chunk {
			builders[i] = g.postCreate(p)
		}

		err = g.Do(ctx, "posts.insert", func(ctx context.Context) error {
			return g.db.Post.CreateBulk(builders...).
				OnConflictColumns(entpost.FieldPlatform, entpost.FieldExternalPostID).
				Ignore().
				Exec(ctx)
		})
		if err != nil {
			// Bulk statement failed as a whole; fall back to one row at a
			// time so a single bad row cannot sink the chunk.
			for _, p := range chunk {
				rowErr := g.Do(ctx, "posts.insert_row", func(ctx context.Context) error {
					return g.postCreate(p).
						OnConflictColumns(entpost.FieldPlatform, entpost.FieldExternalPostID).
						Ignore().
						Exec(ctx)
				})
				if rowErr != nil && SwallowDuplicate(rowErr) != nil {
					return nil, 0, rowErr
				}
			}
		}

		mapping, err := g.externalIDMapping(ctx, chunk)
		if err != nil {
			return nil, 0, err
		}
		for extID, id := range mapping {
			ids[extID] = id
		}
		inserted += len(chunk) - before
	}
	return ids, inserted, nil
}

// externalIDMapping reads back external_post_id -> id for a chunk just
// upserted, covering new and pre-existing rows alike.
func (g *Gateway) externalIDMapping(ctx context.Context, chunk []*models.RawPost) (map[string]string, error) {
	mapping := make(map[string]string, len(chunk))
	for platform, extIDs := range groupExternalIDs(chunk) {
		for _, idChunk := range Chunk(extIDs, existsChunkSize) {
			var rows []*ent.Post
			err := g.Do(ctx, "posts.id_mapping", func(ctx context.Context) error {
				var queryErr error
				rows, queryErr = g.db.Post.Query().
					Where(entpost.PlatformEQ(platform), entpost.ExternalPostIDIn(idChunk...)).
					Select(entpost.FieldID, entpost.FieldExternalPostID).
					All(ctx)
				return queryErr
			})
			if err != nil {
				return nil, err
			}
			for _, row := range rows {
				mapping[row.ExternalPostID] = row.ID
			}
		}
	}
	return mapping, nil
}

func (g *Gateway) countExisting(ctx context.Context, chunk []*models.RawPost) (int, error) {
	total := 0
	for platform, extIDs := range groupExternalIDs(chunk) {
		existing, err := g.ExistingExternalIDs(ctx, platform, extIDs)
		if err != nil {
			return 0, err
		}
		total += len(existing)
	}
	return total, nil
}

// groupExternalIDs buckets a chunk's external post IDs by platform for
// existence probes and the post-upsert read-back.
func groupExternalIDs(chunk []*models.RawPost) map[string][]string {
	byPlatform := make(map[string][]string)
	for _, p := range chunk {
		byPlatform[p.Platform] = append(byPlatform[p.Platform], p.ExternalPostID)
	}
	return byPlatform
}

func (g *Gateway) postCreate(p *models.RawPost) *ent.PostCreate {
	create := g.db.Post.Create().
		SetPlatform(p.Platform).
		SetExternalPostID(p.ExternalPostID).
		SetAuthorHandle(p.AuthorHandle).
		SetAuthorDisplayName(p.AuthorDisplayName).
		SetContentText(p.ContentText).
		SetMediaUrls(p.MediaURLs).
		SetMentionedHandles(p.MentionedHandles).
		SetHashtags(p.Hashtags).
		SetLikeCount(p.LikeCount).
		SetReplyCount(p.ReplyCount).
		SetRetweetCount(p.RetweetCount).
		SetCommentCount(p.CommentCount).
		SetLocationText(p.LocationText)
	if p.HasTimestamp() {
		create.SetTimestamp(*p.Timestamp)
	}
	return create
}

// UnprocessedPostsPage returns one page of posts awaiting extraction, newest
// first so batches bias toward recent events. Posts without a timestamp never
// enter a batch.
func (g *Gateway) UnprocessedPostsPage(ctx context.Context, offset, limit int) ([]*ent.Post, error) {
	var rows []*ent.Post
	err := g.Do(ctx, "posts.unprocessed_page", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.Post.Query().
			Where(
				entpost.ProcessedForEvents(false),
				entpost.EventProcessedAtIsNil(),
				entpost.TimestampNotNil(),
			).
			Order(ent.Desc(entpost.FieldTimestamp)).
			Offset(offset).
			Limit(limit).
			All(ctx)
		return queryErr
	})
	return rows, err
}

// PostsByIDs fetches posts by UUID in one query.
func (g *Gateway) PostsByIDs(ctx context.Context, ids []string) ([]*ent.Post, error) {
	var rows []*ent.Post
	err := g.Do(ctx, "posts.by_ids", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.Post.Query().
			Where(entpost.IDIn(ids...)).
			All(ctx)
		return queryErr
	})
	return rows, err
}

// PostsNeedingMedia pages through posts whose media has not been fetched yet:
// offline_media_url is null and media_urls is non-empty. The JSON emptiness
// check happens client-side; empty-media rows are filtered out of the result.
func (g *Gateway) PostsNeedingMedia(ctx context.Context, platform string, offset, limit int) ([]*ent.Post, error) {
	var rows []*ent.Post
	err := g.Do(ctx, "posts.needing_media", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.Post.Query().
			Where(
				entpost.PlatformEQ(platform),
				entpost.OfflineMediaURLIsNil(),
			).
			Order(ent.Asc(entpost.FieldCreatedAt)).
			Offset(offset).
			Limit(limit).
			All(ctx)
		return queryErr
	})
	if err != nil {
		return nil, err
	}
	withMedia := rows[:0]
	for _, row := range rows {
		if len(row.MediaUrls) > 0 {
			withMedia = append(withMedia, row)
		}
	}
	return withMedia, nil
}

// MarkPostsProcessed flips processed_for_events and stamps event_processed_at
// for the given post IDs, in chunks of at most 100.
func (g *Gateway) MarkPostsProcessed(ctx context.Context, ids []string) error {
	now := time.Now().UTC()
	for _, chunk := range Chunk(ids, markChunkSize) {
		err := g.Do(ctx, "posts.mark_processed", func(ctx context.Context) error {
			return g.db.Post.Update().
				Where(entpost.IDIn(chunk...)).
				SetProcessedForEvents(true).
				SetEventProcessedAt(now).
				Exec(ctx)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// UpdateOfflineMediaURLs writes offline media URLs (or the EXPIRED /
// PERMANENTLY_EXPIRED sentinels) keyed by post ID, in chunks of at most 100.
func (g *Gateway) UpdateOfflineMediaURLs(ctx context.Context, urls map[string]string) error {
	ids := make([]string, 0, len(urls))
	for id := range urls {
		ids = append(ids, id)
	}
	for _, chunk := range Chunk(ids, markChunkSize) {
		err := g.Do(ctx, "posts.update_media_urls", func(ctx context.Context) error {
			for _, id := range chunk {
				if err := g.db.Post.UpdateOneID(id).
					SetOfflineMediaURL(urls[id]).
					Exec(ctx); err != nil && !ent.IsNotFound(err) {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
