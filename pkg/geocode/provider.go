// Package geocode resolves (city, state) pairs to coordinates, caching
// results so each distinct location is geocoded at most once.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/civiclens/civiclens/pkg/storage"
)

// ErrNotFound means the provider had no result for the location.
var ErrNotFound = errors.New("location not found")

// Provider resolves one location to coordinates.
type Provider interface {
	Geocode(ctx context.Context, city, state string) (*storage.Coordinate, error)
}

const (
	nominatimBaseURL   = "https://nominatim.openstreetmap.org/search"
	nominatimUserAgent = "civiclens-coordbackfill/1.0"
	nominatimTimeout   = 15 * time.Second
)

// NominatimProvider queries the OpenStreetMap Nominatim search API. Requests
// are throttled to one per second per the service's usage policy.
type NominatimProvider struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewNominatimProvider builds a provider; baseURL == "" uses the public
// endpoint.
func NewNominatimProvider(baseURL string) *NominatimProvider {
	if baseURL == "" {
		baseURL = nominatimBaseURL
	}
	return &NominatimProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: nominatimTimeout},
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

// Geocode resolves a US (city, state) pair; city may be empty for a
// state-level lookup.
func (p *NominatimProvider) Geocode(ctx context.Context, city, state string) (*storage.Coordinate, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("country", "USA")
	params.Set("state", state)
	if city != "" {
		params.Set("city", city)
	}
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	var hits []struct {
		Lat        string  `json:"lat"`
		Lon        string  `json:"lon"`
		Importance float64 `json:"importance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(hits) == 0 {
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", hits[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", hits[0].Lon, err)
	}
	return &storage.Coordinate{
		Latitude:   lat,
		Longitude:  lon,
		Source:     "nominatim",
		Confidence: hits[0].Importance,
	}, nil
}
