package storage

import (
	"context"
	"time"

	"github.com/civiclens/civiclens/ent"
	entevent "github.com/civiclens/civiclens/ent/event"
	entcoord "github.com/civiclens/civiclens/ent/locationcoordinate"
)

// Coordinate is a resolved latitude/longitude with provenance.
type Coordinate struct {
	Latitude   float64
	Longitude  float64
	Source     string
	Confidence float64
}

// LookupCoordinate reads the geocoding cache for a (city, state) pair. A
// city-level entry wins; pass city == "" for a state-level lookup. Returns
// (nil, nil) on a cache miss.
func (g *Gateway) LookupCoordinate(ctx context.Context, city, state string) (*Coordinate, error) {
	var row *ent.LocationCoordinate
	err := g.Do(ctx, "coords.lookup", func(ctx context.Context) error {
		query := g.db.LocationCoordinate.Query().
			Where(entcoord.StateEQ(state))
		if city != "" {
			query = query.Where(
				entcoord.CityEQ(city),
				entcoord.LocationTypeEQ(entcoord.LocationTypeCity),
			)
		} else {
			query = query.Where(
				entcoord.CityIsNil(),
				entcoord.LocationTypeEQ(entcoord.LocationTypeState),
			)
		}
		var queryErr error
		row, queryErr = query.Only(ctx)
		if ent.IsNotFound(queryErr) {
			row = nil
			return nil
		}
		return queryErr
	})
	if err != nil || row == nil {
		return nil, err
	}
	return &Coordinate{
		Latitude:   row.Latitude,
		Longitude:  row.Longitude,
		Source:     row.Source,
		Confidence: row.Confidence,
	}, nil
}

// SaveCoordinate caches a geocoding result. City-level when city is set,
// state-level otherwise.
func (g *Gateway) SaveCoordinate(ctx context.Context, city, state string, coord Coordinate) error {
	return g.Do(ctx, "coords.save", func(ctx context.Context) error {
		create := g.db.LocationCoordinate.Create().
			SetState(state).
			SetLatitude(coord.Latitude).
			SetLongitude(coord.Longitude).
			SetSource(coord.Source).
			SetConfidence(coord.Confidence).
			SetLastVerified(time.Now().UTC())
		if city != "" {
			create.SetCity(city).SetLocationType(entcoord.LocationTypeCity)
		} else {
			create.SetLocationType(entcoord.LocationTypeState)
		}
		err := create.Exec(ctx)
		return SwallowDuplicate(err)
	})
}

// EventsMissingCoordinates pages through events that have a state but no
// latitude yet.
func (g *Gateway) EventsMissingCoordinates(ctx context.Context, offset, limit int) ([]*ent.Event, error) {
	var rows []*ent.Event
	err := g.Do(ctx, "coords.events_missing", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.Event.Query().
			Where(
				entevent.LatitudeIsNil(),
				entevent.StateNEQ(""),
			).
			Order(ent.Asc(entevent.FieldCreatedAt)).
			Offset(offset).
			Limit(limit).
			All(ctx)
		return queryErr
	})
	return rows, err
}

// ClearEventLocality blanks a virtual city name on events, and the state too
// when it is not a usable code. Used by the backfill pre-pass so placeholder
// locations never reach the geocoder.
func (g *Gateway) ClearEventLocality(ctx context.Context, eventIDs []string, clearState bool) error {
	for _, chunk := range Chunk(eventIDs, markChunkSize) {
		err := g.Do(ctx, "coords.clear_locality", func(ctx context.Context) error {
			update := g.db.Event.Update().
				Where(entevent.IDIn(chunk...)).
				SetCity("").
				SetUpdatedAt(time.Now().UTC())
			if clearState {
				update.SetState("")
			}
			return update.Exec(ctx)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// UpdateEventCoordinates stamps latitude/longitude on events, chunked.
func (g *Gateway) UpdateEventCoordinates(ctx context.Context, eventIDs []string, lat, lon float64) error {
	for _, chunk := range Chunk(eventIDs, markChunkSize) {
		err := g.Do(ctx, "coords.update_events", func(ctx context.Context) error {
			return g.db.Event.Update().
				Where(entevent.IDIn(chunk...)).
				SetLatitude(lat).
				SetLongitude(lon).
				SetUpdatedAt(time.Now().UTC()).
				Exec(ctx)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
