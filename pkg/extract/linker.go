package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/storage"
)

// handlePattern finds @handle mentions inside event prose.
var handlePattern = regexp.MustCompile(`@([a-z0-9_.]{2,32})`)

// actorLinker computes the de-duplicated EventActorLink set for an event:
// edges inherited from its source posts plus handles surfaced in the event's
// own text. The same logical actor never appears twice, known or unknown.
type actorLinker struct {
	gateway *storage.Gateway
}

func newActorLinker(gateway *storage.Gateway) *actorLinker {
	return &actorLinker{gateway: gateway}
}

// LinksForEvent resolves the full link set for one extracted event.
func (l *actorLinker) LinksForEvent(ctx context.Context, eventID string, ev *models.ExtractedEvent, postIDs []string) ([]models.ActorLinkRow, error) {
	links, covered, err := l.LinksFromPosts(ctx, eventID, postIDs)
	if err != nil {
		return nil, err
	}

	handles := extractHandles(ev)
	extra, err := l.linksFromHandles(ctx, eventID, handles, covered)
	if err != nil {
		return nil, err
	}
	return append(links, extra...), nil
}

// LinksFromPosts derives links from the posts' existing actor and
// unknown-actor edges. The returned handle list names every covered handle
// for reporting and dedup.
func (l *actorLinker) LinksFromPosts(ctx context.Context, eventID string, postIDs []string) ([]models.ActorLinkRow, map[string]struct{}, error) {
	covered := make(map[string]struct{})
	var links []models.ActorLinkRow
	seenActor := make(map[string]struct{})
	seenUnknown := make(map[string]struct{})

	knownEdges, err := l.gateway.PostActorEdges(ctx, postIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(knownEdges) > 0 {
		actorIDs := make([]string, 0, len(knownEdges))
		for _, e := range knownEdges {
			actorIDs = append(actorIDs, e.ActorID)
		}
		usernames, err := l.gateway.ActorUsernamesByActorIDs(ctx, actorIDs)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range knownEdges {
			if _, dup := seenActor[e.ActorID]; dup {
				continue
			}
			seenActor[e.ActorID] = struct{}{}
			for _, u := range usernames[e.ActorID] {
				handle := strings.ToLower(u.Username)
				platform := strings.ToLower(u.Platform)
				covered[handle] = struct{}{}
				actorType := ""
				if u.Edges.Actor != nil {
					actorType = string(u.Edges.Actor.ActorType)
				}
				links = append(links, models.ActorLinkRow{
					EventID:     eventID,
					ActorHandle: handle,
					Platform:    platform,
					ActorType:   actorType,
					ActorID:     e.ActorID,
				})
			}
		}
	}

	unknownEdges, err := l.gateway.PostUnknownActorEdges(ctx, postIDs)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range unknownEdges {
		if _, dup := seenUnknown[e.UnknownActorID]; dup {
			continue
		}
		seenUnknown[e.UnknownActorID] = struct{}{}
		links = append(links, unknownLinkRow(eventID, e.UnknownActorID))
	}
	return links, covered, nil
}

// linksFromHandles resolves text-surfaced handles not already covered by
// post edges: known directory first (both platforms), unknown directory as
// fallback.
func (l *actorLinker) linksFromHandles(ctx context.Context, eventID string, handles []string, covered map[string]struct{}) ([]models.ActorLinkRow, error) {
	var candidates []string
	for _, h := range handles {
		if _, done := covered[h]; !done {
			candidates = append(candidates, h)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	known, err := l.gateway.KnownActorsByHandles(ctx, candidates)
	if err != nil {
		return nil, err
	}
	unknown, err := l.gateway.UnknownActorsByHandles(ctx, candidates)
	if err != nil {
		return nil, err
	}

	var links []models.ActorLinkRow
	seenActor := make(map[string]struct{})
	seenUnknown := make(map[string]struct{})
	for _, h := range candidates {
		matched := false
		for _, platform := range []string{"instagram", "twitter"} {
			if lookup, ok := known[storage.ActorKey{Platform: platform, Handle: h}]; ok {
				if _, dup := seenActor[lookup.ActorID]; dup {
					matched = true
					continue
				}
				seenActor[lookup.ActorID] = struct{}{}
				links = append(links, models.ActorLinkRow{
					EventID:     eventID,
					ActorHandle: h,
					Platform:    platform,
					ActorType:   string(lookup.Kind),
					ActorID:     lookup.ActorID,
				})
				matched = true
			}
		}
		if matched {
			continue
		}
		for _, platform := range []string{"instagram", "twitter"} {
			if id, ok := unknown[storage.ActorKey{Platform: platform, Handle: h}]; ok {
				if _, dup := seenUnknown[id]; dup {
					continue
				}
				seenUnknown[id] = struct{}{}
				links = append(links, unknownLinkRow(eventID, id))
				break
			}
		}
	}
	return links, nil
}

// unknownLinkRow encodes an unknown-actor link with the synthetic handle so
// the (event_id, actor_handle, platform) key covers both variants.
func unknownLinkRow(eventID, unknownActorID string) models.ActorLinkRow {
	return models.ActorLinkRow{
		EventID:        eventID,
		ActorHandle:    models.UnknownHandlePrefix + unknownActorID,
		Platform:       models.UnknownPlatform,
		ActorType:      string(models.ActorKindUnknown),
		UnknownActorID: unknownActorID,
	}
}

// extractHandles pulls candidate handles from the event's prose fields and
// handle arrays, lowercased and deduplicated preserving order.
func extractHandles(ev *models.ExtractedEvent) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(h string) {
		h = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "@"))
		if h == "" {
			return
		}
		if _, dup := seen[h]; dup {
			return
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}

	for _, text := range []string{ev.Participants, ev.EventDescription, ev.Justification} {
		for _, m := range handlePattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
			add(m[1])
		}
	}
	for _, h := range ev.InstagramHandles {
		add(h)
	}
	for _, h := range ev.TwitterHandles {
		add(h)
	}
	return out
}
