package storage

import (
	"context"
	"fmt"

	"github.com/civiclens/civiclens/ent"
	entlink "github.com/civiclens/civiclens/ent/eventactorlink"
	entpostlink "github.com/civiclens/civiclens/ent/eventpostlink"
)

// RefreshDuplicateViews recomputes the pairwise similarity view and the
// group view derived from it, in that order.
func (g *Gateway) RefreshDuplicateViews(ctx context.Context) error {
	for _, view := range []string{"event_duplicate_pairs", "event_duplicate_groups"} {
		view := view
		err := g.Do(ctx, "events.refresh_"+view, func(ctx context.Context) error {
			_, execErr := g.db.DB().ExecContext(ctx, "REFRESH MATERIALIZED VIEW "+view)
			return execErr
		})
		if err != nil {
			return fmt.Errorf("refresh %s: %w", view, err)
		}
	}
	return nil
}

// EventPostLinks loads an event's post links.
func (g *Gateway) EventPostLinks(ctx context.Context, eventID string) ([]*ent.EventPostLink, error) {
	var links []*ent.EventPostLink
	err := g.Do(ctx, "events.post_links", func(ctx context.Context) error {
		var queryErr error
		links, queryErr = g.db.EventPostLink.Query().
			Where(entpostlink.EventID(eventID)).
			All(ctx)
		return queryErr
	})
	return links, err
}

// EventActorLinks loads an event's actor links.
func (g *Gateway) EventActorLinks(ctx context.Context, eventID string) ([]*ent.EventActorLink, error) {
	var links []*ent.EventActorLink
	err := g.Do(ctx, "events.actor_links", func(ctx context.Context) error {
		var queryErr error
		links, queryErr = g.db.EventActorLink.Query().
			Where(entlink.EventID(eventID)).
			All(ctx)
		return queryErr
	})
	return links, err
}

// DeleteEventPostLinks removes all post links of one event.
func (g *Gateway) DeleteEventPostLinks(ctx context.Context, eventID string) error {
	return g.Do(ctx, "events.delete_post_links", func(ctx context.Context) error {
		_, err := g.db.EventPostLink.Delete().
			Where(entpostlink.EventID(eventID)).
			Exec(ctx)
		return err
	})
}

// DeleteEventActorLinks removes all actor links of one event.
func (g *Gateway) DeleteEventActorLinks(ctx context.Context, eventID string) error {
	return g.Do(ctx, "events.delete_actor_links", func(ctx context.Context) error {
		_, err := g.db.EventActorLink.Delete().
			Where(entlink.EventID(eventID)).
			Exec(ctx)
		return err
	})
}

// UpdateEventMergedFields rewrites the master event's merged tag set and
// fills description and city when the merge supplied them.
func (g *Gateway) UpdateEventMergedFields(ctx context.Context, eventID string, tags []string, description, city string) error {
	return g.Do(ctx, "events.update_merged", func(ctx context.Context) error {
		update := g.db.Event.UpdateOneID(eventID).
			SetCategoryTags(tags)
		if description != "" {
			update.SetEventDescription(description)
		}
		if city != "" {
			update.SetCity(city)
		}
		return update.Exec(ctx)
	})
}
