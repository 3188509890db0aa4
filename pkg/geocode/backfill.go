package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/storage"
)

// virtualCityNames are placeholder city values that can never be geocoded.
var virtualCityNames = map[string]struct{}{
	"unknown":    {},
	"nationwide": {},
	"statewide":  {},
	"online":     {},
	"virtual":    {},
	"remote":     {},
	"tbd":        {},
	"various":    {},
	"multiple":   {},
	"n/a":        {},
	"none":       {},
}

// IsVirtualCity reports whether a city value is a placeholder rather than a
// real municipality.
func IsVirtualCity(city string) bool {
	normalized := strings.ToLower(strings.TrimSpace(city))
	if normalized == "" {
		return false
	}
	if _, ok := virtualCityNames[normalized]; ok {
		return true
	}
	return strings.HasPrefix(normalized, "multiple ") || strings.HasPrefix(normalized, "various ")
}

// IsUsableState reports whether state resolves to a US state, either as a
// USPS code or a full name.
func IsUsableState(state string) bool {
	_, ok := NormalizeState(state)
	return ok
}

// Stats summarizes one backfill run.
type Stats struct {
	VirtualCleared int
	CacheHits      int
	ProviderCalls  int
	EventsUpdated  int
	Unresolved     int
}

// Backfiller fills missing event coordinates from the location cache,
// falling back to the geocoding provider.
type Backfiller struct {
	gateway  *storage.Gateway
	provider Provider
	pageSize int
	dryRun   bool
}

// NewBackfiller builds a backfiller; pageSize <= 0 defaults to 500. In dry-run
// mode nothing is written and the provider is never called.
func NewBackfiller(gateway *storage.Gateway, provider Provider, pageSize int, dryRun bool) *Backfiller {
	if pageSize <= 0 {
		pageSize = 500
	}
	return &Backfiller{gateway: gateway, provider: provider, pageSize: pageSize, dryRun: dryRun}
}

// Run executes the virtual-city pre-pass and then resolves coordinates for
// every remaining (city, state) pair, updating all events per pair at once.
func (b *Backfiller) Run(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	events, err := b.collectMissing(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("Events missing coordinates", "count", len(events))

	remaining, err := b.clearVirtualCities(ctx, events, stats)
	if err != nil {
		return nil, err
	}

	groups := groupByLocality(remaining)
	for key, group := range groups {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		if err := b.resolveGroup(ctx, key, group, stats); err != nil {
			slog.Warn("Locality unresolved",
				"city", key.city, "state", key.state, "error", err)
			stats.Unresolved += len(group)
		}
	}
	slog.Info("Coordinate backfill finished",
		"virtual_cleared", stats.VirtualCleared,
		"cache_hits", stats.CacheHits,
		"provider_calls", stats.ProviderCalls,
		"events_updated", stats.EventsUpdated,
		"unresolved", stats.Unresolved)
	return stats, nil
}

func (b *Backfiller) collectMissing(ctx context.Context) ([]*ent.Event, error) {
	events, err := storage.FetchAll(ctx, b.pageSize, b.gateway.EventsMissingCoordinates)
	if err != nil {
		return nil, fmt.Errorf("load events missing coordinates: %w", err)
	}
	return events, nil
}

// clearVirtualCities blanks placeholder localities so they never reach the
// provider, and returns the events still worth geocoding. An event keeping a
// usable state stays in the result with its city blanked so it picks up
// state-level coordinates in the same run.
func (b *Backfiller) clearVirtualCities(ctx context.Context, events []*ent.Event, stats *Stats) ([]*ent.Event, error) {
	var clearCityOnly, clearBoth []string
	var remaining []*ent.Event
	for _, ev := range events {
		if !IsVirtualCity(ev.City) {
			remaining = append(remaining, ev)
			continue
		}
		if IsUsableState(ev.State) {
			clearCityOnly = append(clearCityOnly, ev.ID)
			ev.City = ""
			remaining = append(remaining, ev)
		} else {
			clearBoth = append(clearBoth, ev.ID)
		}
	}

	if b.dryRun {
		slog.Info("DRY RUN: would clear virtual localities",
			"city_only", len(clearCityOnly), "city_and_state", len(clearBoth))
	} else {
		if len(clearCityOnly) > 0 {
			if err := b.gateway.ClearEventLocality(ctx, clearCityOnly, false); err != nil {
				return nil, fmt.Errorf("clear virtual cities: %w", err)
			}
		}
		if len(clearBoth) > 0 {
			if err := b.gateway.ClearEventLocality(ctx, clearBoth, true); err != nil {
				return nil, fmt.Errorf("clear virtual localities: %w", err)
			}
		}
	}
	stats.VirtualCleared = len(clearCityOnly) + len(clearBoth)
	return remaining, nil
}

type localityKey struct {
	city  string
	state string
}

// groupByLocality buckets events sharing a (city, state) pair, keyed on the
// USPS code so "Arizona" and "AZ" land in one group. Events whose state does
// not resolve are dropped here.
func groupByLocality(events []*ent.Event) map[localityKey][]*ent.Event {
	groups := make(map[localityKey][]*ent.Event)
	for _, ev := range events {
		code, ok := NormalizeState(ev.State)
		if !ok {
			continue
		}
		key := localityKey{
			city:  strings.TrimSpace(ev.City),
			state: code,
		}
		groups[key] = append(groups[key], ev)
	}
	return groups
}

// resolveGroup finds coordinates for one locality, cache first, and stamps
// every event in the group.
func (b *Backfiller) resolveGroup(ctx context.Context, key localityKey, group []*ent.Event, stats *Stats) error {
	coord, err := b.gateway.LookupCoordinate(ctx, key.city, key.state)
	if err != nil {
		return fmt.Errorf("coordinate cache lookup: %w", err)
	}
	if coord != nil {
		stats.CacheHits++
	} else if b.dryRun {
		slog.Info("DRY RUN: would geocode locality",
			"city", key.city, "state", key.state, "events", len(group))
		stats.Unresolved += len(group)
		return nil
	} else {
		stats.ProviderCalls++
		coord, err = b.provider.Geocode(ctx, key.city, key.state)
		if errors.Is(err, ErrNotFound) && key.city != "" {
			// Fall back to the state centroid for unmappable city names.
			stats.ProviderCalls++
			coord, err = b.provider.Geocode(ctx, "", key.state)
		}
		if err != nil {
			return err
		}
		if saveErr := b.gateway.SaveCoordinate(ctx, key.city, key.state, *coord); saveErr != nil {
			slog.Warn("Coordinate cache write failed",
				"city", key.city, "state", key.state, "error", saveErr)
		}
	}

	ids := make([]string, 0, len(group))
	for _, ev := range group {
		ids = append(ids, ev.ID)
	}
	if b.dryRun {
		slog.Info("DRY RUN: would update event coordinates",
			"city", key.city, "state", key.state, "events", len(ids))
		return nil
	}
	if err := b.gateway.UpdateEventCoordinates(ctx, ids, coord.Latitude, coord.Longitude); err != nil {
		return fmt.Errorf("update event coordinates: %w", err)
	}
	stats.EventsUpdated += len(ids)
	return nil
}
