package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/civiclens/civiclens/ent"
	entevent "github.com/civiclens/civiclens/ent/event"
	entlink "github.com/civiclens/civiclens/ent/eventactorlink"
	entpostlink "github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/pkg/models"
)

// EventRow is a fully assembled event ready for upsert. ContentHash is the
// conflict key; SourcePostIDs must already be sorted to match it.
type EventRow struct {
	EventName        string
	EventDate        string
	EventDescription string
	Location         string
	City             string
	State            string
	Participants     string
	CategoryTags     []string
	SourcePostIDs    []string
	ConfidenceScore  float64
	ExtractedBy      string
	ContentHash      string
	Embedding        []float64
}

// UpsertedEvent reports the outcome of one event upsert. IsNew distinguishes
// a fresh insert from a content-hash collision with an existing record.
type UpsertedEvent struct {
	ID          string
	ContentHash string
	IsNew       bool
}

// UpsertEvents writes events keyed on content_hash. Existing rows only have
// updated_at touched; new rows get created_at == updated_at, which is how
// IsNew is derived after the write.
func (g *Gateway) UpsertEvents(ctx context.Context, rows []EventRow) ([]UpsertedEvent, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	now := time.Now().UTC()
	hashes := make([]string, 0, len(rows))

	for _, row := range rows {
		row := row
		hashes = append(hashes, row.ContentHash)
		err := g.Do(ctx, "events.upsert", func(ctx context.Context) error {
			create := g.db.Event.Create().
				SetEventName(row.EventName).
				SetEventDescription(row.EventDescription).
				SetLocation(row.Location).
				SetCity(row.City).
				SetState(row.State).
				SetParticipants(row.Participants).
				SetCategoryTags(row.CategoryTags).
				SetSourcePostIds(row.SourcePostIDs).
				SetConfidenceScore(row.ConfidenceScore).
				SetExtractedBy(row.ExtractedBy).
				SetContentHash(row.ContentHash).
				SetCreatedAt(now).
				SetUpdatedAt(now)
			if row.EventDate != "" {
				create.SetEventDate(row.EventDate)
			}
			if len(row.Embedding) > 0 {
				create.SetEmbedding(row.Embedding)
			}
			return create.
				OnConflictColumns(entevent.FieldContentHash).
				UpdateUpdatedAt().
				Exec(ctx)
		})
		if err != nil {
			return nil, err
		}
	}

	var stored []*ent.Event
	err := g.Do(ctx, "events.read_back", func(ctx context.Context) error {
		var queryErr error
		stored, queryErr = g.db.Event.Query().
			Where(entevent.ContentHashIn(hashes...)).
			All(ctx)
		return queryErr
	})
	if err != nil {
		return nil, err
	}

	results := make([]UpsertedEvent, 0, len(stored))
	for _, ev := range stored {
		results = append(results, UpsertedEvent{
			ID:          ev.ID,
			ContentHash: ev.ContentHash,
			IsNew:       ev.CreatedAt.Equal(ev.UpdatedAt),
		})
	}
	return results, nil
}

// LinkEventPosts connects an event to its source posts, ignoring links that
// already exist.
func (g *Gateway) LinkEventPosts(ctx context.Context, eventID string, postIDs []string) error {
	if len(postIDs) == 0 {
		return nil
	}
	builders := make([]*ent.EventPostLinkCreate, len(postIDs))
	for i, postID := range postIDs {
		builders[i] = g.db.EventPostLink.Create().
			SetEventID(eventID).
			SetPostID(postID)
	}
	return g.Do(ctx, "events.link_posts", func(ctx context.Context) error {
		return g.db.EventPostLink.CreateBulk(builders...).
			OnConflictColumns(entpostlink.FieldEventID, entpostlink.FieldPostID).
			Ignore().
			Exec(ctx)
	})
}

// LinkEventActors writes actor links in chunks of at most 100. Rows colliding
// on either uniqueness key, the (event, handle, platform) triple or the
// partial (event, unknown_actor) pair, are skipped one at a time so the rest
// of the chunk still lands.
func (g *Gateway) LinkEventActors(ctx context.Context, links []models.ActorLinkRow) error {
	for _, chunk := range Chunk(links, markChunkSize) {
		builders := make([]*ent.EventActorLinkCreate, len(chunk))
		for i, link := range chunk {
			builders[i] = g.actorLinkCreate(link)
		}
		err := g.Do(ctx, "events.link_actors", func(ctx context.Context) error {
			return g.db.EventActorLink.CreateBulk(builders...).
				OnConflictColumns(entlink.FieldEventID, entlink.FieldActorHandle, entlink.FieldPlatform).
				Ignore().
				Exec(ctx)
		})
		if err == nil {
			continue
		}
		if !IsDuplicateKey(err) {
			return err
		}
		// The partial unknown-actor index fired; retry row by row.
		for _, link := range chunk {
			link := link
			rowErr := g.Do(ctx, "events.link_actor_row", func(ctx context.Context) error {
				return g.actorLinkCreate(link).
					OnConflictColumns(entlink.FieldEventID, entlink.FieldActorHandle, entlink.FieldPlatform).
					Ignore().
					Exec(ctx)
			})
			if rowErr != nil && SwallowDuplicate(rowErr) != nil {
				return rowErr
			}
		}
	}
	return nil
}

func (g *Gateway) actorLinkCreate(link models.ActorLinkRow) *ent.EventActorLinkCreate {
	create := g.db.EventActorLink.Create().
		SetEventID(link.EventID).
		SetActorHandle(link.ActorHandle).
		SetPlatform(link.Platform).
		SetActorType(link.ActorType)
	if link.ActorID != "" {
		create.SetActorID(link.ActorID)
	}
	if link.UnknownActorID != "" {
		create.SetUnknownActorID(link.UnknownActorID)
	}
	return create
}

// EventsByIDs fetches events by UUID.
func (g *Gateway) EventsByIDs(ctx context.Context, ids []string) ([]*ent.Event, error) {
	var rows []*ent.Event
	err := g.Do(ctx, "events.by_ids", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.Event.Query().
			Where(entevent.IDIn(ids...)).
			All(ctx)
		return queryErr
	})
	return rows, err
}

// DuplicateGroups reads the precomputed duplicate-group materialized view,
// largest and highest-confidence groups first. minSize filters out pairs when
// set above 2.
func (g *Gateway) DuplicateGroups(ctx context.Context, minSize int) ([]models.DuplicateGroup, error) {
	var groups []models.DuplicateGroup
	err := g.Do(ctx, "events.duplicate_groups", func(ctx context.Context) error {
		rows, queryErr := g.db.DB().QueryContext(ctx, `
			SELECT group_id, event_ids, max_similarity_score,
			       avg_similarity_score, confidence_level, group_size
			FROM event_duplicate_groups
			WHERE group_size >= $1
			ORDER BY group_size DESC, max_similarity_score DESC`, minSize)
		if queryErr != nil {
			return queryErr
		}
		defer func() { _ = rows.Close() }()

		groups = groups[:0]
		for rows.Next() {
			var grp models.DuplicateGroup
			var eventIDs string
			if scanErr := rows.Scan(&grp.GroupID, &eventIDs, &grp.MaxSimilarityScore,
				&grp.AvgSimilarityScore, &grp.ConfidenceLevel, &grp.GroupSize); scanErr != nil {
				return scanErr
			}
			grp.EventIDs = strings.Split(eventIDs, ",")
			groups = append(groups, grp)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("load duplicate groups: %w", err)
	}
	return groups, nil
}

// DuplicatePairs reads the pairwise similarity rows for one group's events.
func (g *Gateway) DuplicatePairs(ctx context.Context, eventIDs []string) ([]models.DuplicatePair, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(eventIDs))
	args := make([]any, len(eventIDs))
	for i, id := range eventIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	inList := strings.Join(placeholders, ", ")

	var pairs []models.DuplicatePair
	err := g.Do(ctx, "events.duplicate_pairs", func(ctx context.Context) error {
		rows, queryErr := g.db.DB().QueryContext(ctx, `
			SELECT event_id_1, event_id_2, similarity_score
			FROM event_duplicate_pairs
			WHERE event_id_1 IN (`+inList+`) AND event_id_2 IN (`+inList+`)`,
			args...)
		if queryErr != nil {
			return queryErr
		}
		defer func() { _ = rows.Close() }()

		pairs = pairs[:0]
		for rows.Next() {
			var p models.DuplicatePair
			if scanErr := rows.Scan(&p.EventID1, &p.EventID2, &p.Similarity); scanErr != nil {
				return scanErr
			}
			pairs = append(pairs, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("load duplicate pairs: %w", err)
	}
	return pairs, nil
}

// DeleteEvents removes events by ID. Post and actor links go with them via
// cascading foreign keys, but callers should clear links explicitly first so
// a mid-merge failure cannot leave a master event missing its history.
func (g *Gateway) DeleteEvents(ctx context.Context, ids []string) error {
	return g.Do(ctx, "events.delete", func(ctx context.Context) error {
		_, err := g.db.Event.Delete().
			Where(entevent.IDIn(ids...)).
			Exec(ctx)
		return err
	})
}
