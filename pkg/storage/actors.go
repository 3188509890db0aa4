package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/civiclens/civiclens/ent"
	entusername "github.com/civiclens/civiclens/ent/actorusername"
	entpostactor "github.com/civiclens/civiclens/ent/postactor"
	entpostunknown "github.com/civiclens/civiclens/ent/postunknownactor"
	entunknown "github.com/civiclens/civiclens/ent/unknownactor"
	"github.com/civiclens/civiclens/pkg/models"
)

// ErrActorNotFound is returned when a handle cannot be resolved to any actor
// row even after an upsert attempt.
var ErrActorNotFound = errors.New("actor not found")

// ActorKey identifies a handle observation. Platform and Handle are always
// lowercased before use as a key.
type ActorKey struct {
	Platform string
	Handle   string
}

// NewActorKey normalizes a (platform, handle) pair into a lookup key.
func NewActorKey(platform, handle string) ActorKey {
	return ActorKey{
		Platform: strings.ToLower(platform),
		Handle:   strings.ToLower(strings.TrimPrefix(handle, "@")),
	}
}

// KnownActorDirectory loads every curated actor username with its actor
// record into an in-memory map. The directory is small relative to post
// volume, so components load it once per run.
func (g *Gateway) KnownActorDirectory(ctx context.Context) (map[ActorKey]models.ActorLookup, error) {
	var usernames []*ent.ActorUsername
	err := g.Do(ctx, "actors.directory", func(ctx context.Context) error {
		var queryErr error
		usernames, queryErr = g.db.ActorUsername.Query().
			WithActor().
			All(ctx)
		return queryErr
	})
	if err != nil {
		return nil, err
	}

	dir := make(map[ActorKey]models.ActorLookup, len(usernames))
	for _, u := range usernames {
		actor := u.Edges.Actor
		if actor == nil {
			continue
		}
		dir[NewActorKey(u.Platform, u.Username)] = models.ActorLookup{
			Handle:   strings.ToLower(u.Username),
			Platform: strings.ToLower(u.Platform),
			Kind:     models.ActorKind(actor.ActorType),
			ActorID:  actor.ID,
			Name:     actor.Name,
			About:    actor.About,
			City:     actor.City,
			State:    actor.State,
		}
	}
	return dir, nil
}

// UnknownActorObservation aggregates every sighting of one handle within an
// ingestion run before it is merged into the unknown_actors table.
type UnknownActorObservation struct {
	Platform       string
	Handle         string
	FirstSeen      time.Time
	LastSeen       time.Time
	MentionCount   int
	AuthorCount    int
	MentionContext string
	DisplayName    string
	Bio            string
}

// UpsertUnknownActors merges handle observations into unknown_actors:
// counters accumulate, last_seen advances, and first_seen plus the original
// mention context stick with the first row. Returns the (platform, handle) to
// unknown-actor-ID mapping for edge writes.
func (g *Gateway) UpsertUnknownActors(ctx context.Context, observations []UnknownActorObservation) (map[ActorKey]string, error) {
	for _, chunk := range Chunk(observations, markChunkSize) {
		for _, obs := range chunk {
			obs := obs
			err := g.Do(ctx, "actors.upsert_unknown", func(ctx context.Context) error {
				create := g.db.UnknownActor.Create().
					SetPlatform(strings.ToLower(obs.Platform)).
					SetDetectedUsername(strings.ToLower(obs.Handle)).
					SetMentionCount(obs.MentionCount).
					SetAuthorCount(obs.AuthorCount).
					SetMentionContext(obs.MentionContext).
					SetDisplayName(obs.DisplayName).
					SetBio(obs.Bio)
				if !obs.FirstSeen.IsZero() {
					create.SetFirstSeen(obs.FirstSeen)
				}
				if !obs.LastSeen.IsZero() {
					create.SetLastSeen(obs.LastSeen)
				}
				return create.
					OnConflictColumns(entunknown.FieldPlatform, entunknown.FieldDetectedUsername).
					Update(func(u *ent.UnknownActorUpsert) {
						u.AddMentionCount(obs.MentionCount)
						u.AddAuthorCount(obs.AuthorCount)
						if !obs.LastSeen.IsZero() {
							u.SetLastSeen(obs.LastSeen)
						}
					}).
					Exec(ctx)
			})
			if err != nil {
				return nil, err
			}
		}
	}
	return g.unknownActorIDs(ctx, observations)
}

func (g *Gateway) unknownActorIDs(ctx context.Context, observations []UnknownActorObservation) (map[ActorKey]string, error) {
	byPlatform := make(map[string][]string)
	for _, obs := range observations {
		platform := strings.ToLower(obs.Platform)
		byPlatform[platform] = append(byPlatform[platform], strings.ToLower(obs.Handle))
	}

	ids := make(map[ActorKey]string, len(observations))
	for platform, handles := range byPlatform {
		for _, chunk := range Chunk(handles, markChunkSize) {
			var rows []*ent.UnknownActor
			err := g.Do(ctx, "actors.unknown_ids", func(ctx context.Context) error {
				var queryErr error
				rows, queryErr = g.db.UnknownActor.Query().
					Where(
						entunknown.PlatformEQ(platform),
						entunknown.DetectedUsernameIn(chunk...),
					).
					All(ctx)
				return queryErr
			})
			if err != nil {
				return nil, err
			}
			for _, row := range rows {
				ids[NewActorKey(row.Platform, row.DetectedUsername)] = row.ID
			}
		}
	}
	return ids, nil
}

// GetOrCreateUnknownActor resolves one handle to an unknown-actor ID,
// creating the row on first sight. Used by the extraction-time actor linker
// for handles the LLM surfaced that ingestion never saw.
func (g *Gateway) GetOrCreateUnknownActor(ctx context.Context, platform, handle, snippet string) (string, error) {
	now := time.Now().UTC()
	results, err := g.UpsertUnknownActors(ctx, []UnknownActorObservation{{
		Platform:       platform,
		Handle:         handle,
		FirstSeen:      now,
		LastSeen:       now,
		MentionCount:   1,
		MentionContext: snippet,
	}})
	if err != nil {
		return "", err
	}
	id, ok := results[NewActorKey(platform, handle)]
	if !ok {
		return "", ErrActorNotFound
	}
	return id, nil
}

// PostActorEdge is a resolved (post, actor) relationship ready for insert.
type PostActorEdge struct {
	PostID           string
	ActorID          string
	RelationshipType string
}

// LinkPostActors writes post-to-curated-actor edges, ignoring duplicates.
func (g *Gateway) LinkPostActors(ctx context.Context, edges []PostActorEdge) error {
	for _, chunk := range Chunk(edges, markChunkSize) {
		builders := make([]*ent.PostActorCreate, len(chunk))
		for i, e := range chunk {
			builders[i] = g.db.PostActor.Create().
				SetPostID(e.PostID).
				SetActorID(e.ActorID).
				SetRelationshipType(entpostactor.RelationshipType(e.RelationshipType))
		}
		err := g.Do(ctx, "actors.link_posts", func(ctx context.Context) error {
			return g.db.PostActor.CreateBulk(builders...).
				OnConflictColumns(entpostactor.FieldPostID, entpostactor.FieldActorID, entpostactor.FieldRelationshipType).
				Ignore().
				Exec(ctx)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// PostUnknownActorEdge is a resolved (post, unknown actor) pair.
type PostUnknownActorEdge struct {
	PostID         string
	UnknownActorID string
}

// LinkPostUnknownActors writes post-to-unknown-actor edges, ignoring
// duplicates.
func (g *Gateway) LinkPostUnknownActors(ctx context.Context, edges []PostUnknownActorEdge) error {
	for _, chunk := range Chunk(edges, markChunkSize) {
		builders := make([]*ent.PostUnknownActorCreate, len(chunk))
		for i, e := range chunk {
			builders[i] = g.db.PostUnknownActor.Create().
				SetPostID(e.PostID).
				SetUnknownActorID(e.UnknownActorID)
		}
		err := g.Do(ctx, "actors.link_unknown_posts", func(ctx context.Context) error {
			return g.db.PostUnknownActor.CreateBulk(builders...).
				OnConflictColumns(entpostunknown.FieldPostID, entpostunknown.FieldUnknownActorID).
				Ignore().
				Exec(ctx)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// KnownActorsByHandles resolves handles (any platform) against the curated
// directory in chunks of at most 100, keyed by (platform, username).
func (g *Gateway) KnownActorsByHandles(ctx context.Context, handles []string) (map[ActorKey]models.ActorLookup, error) {
	dir := make(map[ActorKey]models.ActorLookup)
	for _, chunk := range Chunk(handles, markChunkSize) {
		var rows []*ent.ActorUsername
		err := g.Do(ctx, "actors.by_handles", func(ctx context.Context) error {
			var queryErr error
			rows, queryErr = g.db.ActorUsername.Query().
				Where(entusername.UsernameIn(chunk...)).
				WithActor().
				All(ctx)
			return queryErr
		})
		if err != nil {
			return nil, err
		}
		for _, u := range rows {
			actor := u.Edges.Actor
			if actor == nil {
				continue
			}
			dir[NewActorKey(u.Platform, u.Username)] = models.ActorLookup{
				Handle:   strings.ToLower(u.Username),
				Platform: strings.ToLower(u.Platform),
				Kind:     models.ActorKind(actor.ActorType),
				ActorID:  actor.ID,
				Name:     actor.Name,
			}
		}
	}
	return dir, nil
}

// UnknownActorsByHandles resolves handles against unknown_actors in chunks
// of at most 100, keyed by (platform, detected_username).
func (g *Gateway) UnknownActorsByHandles(ctx context.Context, handles []string) (map[ActorKey]string, error) {
	ids := make(map[ActorKey]string)
	for _, chunk := range Chunk(handles, markChunkSize) {
		var rows []*ent.UnknownActor
		err := g.Do(ctx, "actors.unknown_by_handles", func(ctx context.Context) error {
			var queryErr error
			rows, queryErr = g.db.UnknownActor.Query().
				Where(entunknown.DetectedUsernameIn(chunk...)).
				All(ctx)
			return queryErr
		})
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			ids[NewActorKey(row.Platform, row.DetectedUsername)] = row.ID
		}
	}
	return ids, nil
}

// PostActorEdges returns curated-actor edges for a set of posts.
func (g *Gateway) PostActorEdges(ctx context.Context, postIDs []string) ([]*ent.PostActor, error) {
	var rows []*ent.PostActor
	err := g.Do(ctx, "actors.post_edges", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.PostActor.Query().
			Where(entpostactor.PostIDIn(postIDs...)).
			All(ctx)
		return queryErr
	})
	return rows, err
}

// PostUnknownActorEdges returns unknown-actor edges for a set of posts.
func (g *Gateway) PostUnknownActorEdges(ctx context.Context, postIDs []string) ([]*ent.PostUnknownActor, error) {
	var rows []*ent.PostUnknownActor
	err := g.Do(ctx, "actors.post_unknown_edges", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.PostUnknownActor.Query().
			Where(entpostunknown.PostIDIn(postIDs...)).
			All(ctx)
		return queryErr
	})
	return rows, err
}

// ActorUsernamesByActorIDs maps actor IDs back to their per-platform
// handles.
func (g *Gateway) ActorUsernamesByActorIDs(ctx context.Context, actorIDs []string) (map[string][]*ent.ActorUsername, error) {
	byActor := make(map[string][]*ent.ActorUsername)
	for _, chunk := range Chunk(actorIDs, markChunkSize) {
		var rows []*ent.ActorUsername
		err := g.Do(ctx, "actors.usernames_by_ids", func(ctx context.Context) error {
			var queryErr error
			rows, queryErr = g.db.ActorUsername.Query().
				Where(entusername.ActorIDIn(chunk...)).
				WithActor().
				All(ctx)
			return queryErr
		})
		if err != nil {
			return nil, err
		}
		for _, u := range rows {
			byActor[u.ActorID] = append(byActor[u.ActorID], u)
		}
	}
	return byActor, nil
}

// UsernamesForActor returns the per-platform handles of one curated actor,
// used when a merged event needs its links re-keyed.
func (g *Gateway) UsernamesForActor(ctx context.Context, actorID string) ([]*ent.ActorUsername, error) {
	var rows []*ent.ActorUsername
	err := g.Do(ctx, "actors.usernames", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.ActorUsername.Query().
			Where(entusername.ActorIDEQ(actorID)).
			All(ctx)
		return queryErr
	})
	return rows, err
}
