package geocode

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civiclens/civiclens/ent"
)

func TestIsVirtualCity(t *testing.T) {
	tests := []struct {
		city    string
		virtual bool
	}{
		{city: "Springfield", virtual: false},
		{city: "unknown", virtual: true},
		{city: "Unknown", virtual: true},
		{city: "NATIONWIDE", virtual: true},
		{city: "online", virtual: true},
		{city: "Virtual", virtual: true},
		{city: "TBD", virtual: true},
		{city: "N/A", virtual: true},
		{city: "Multiple cities", virtual: true},
		{city: "Various locations", virtual: true},
		{city: "", virtual: false},
		{city: "  ", virtual: false},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			assert.Equal(t, tt.virtual, IsVirtualCity(tt.city))
		})
	}
}

func TestIsUsableState(t *testing.T) {
	assert.True(t, IsUsableState("IL"))
	assert.True(t, IsUsableState("il"))
	assert.True(t, IsUsableState(" mo "))
	assert.True(t, IsUsableState("Illinois"))
	assert.True(t, IsUsableState("Arizona"))
	assert.True(t, IsUsableState("new york"))
	assert.False(t, IsUsableState(""))
	assert.False(t, IsUsableState("U"))
	assert.False(t, IsUsableState("XX"))
	assert.False(t, IsUsableState("Atlantis"))
}

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		input string
		code  string
		ok    bool
	}{
		{input: "AZ", code: "AZ", ok: true},
		{input: "az", code: "AZ", ok: true},
		{input: "Arizona", code: "AZ", ok: true},
		{input: "ARIZONA", code: "AZ", ok: true},
		{input: " district of columbia ", code: "DC", ok: true},
		{input: "Puerto Rico", code: "PR", ok: true},
		{input: "XX", ok: false},
		{input: "Narnia", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, ok := NormalizeState(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestGroupByLocality(t *testing.T) {
	now := time.Now()
	events := []*ent.Event{
		{ID: "e1", City: "Springfield", State: "IL", CreatedAt: now},
		{ID: "e2", City: "Springfield", State: "il", CreatedAt: now},
		{ID: "e3", City: "Chicago", State: "IL", CreatedAt: now},
		{ID: "e4", City: "Somewhere", State: "Illinois", CreatedAt: now},
		{ID: "e5", City: "", State: "MO", CreatedAt: now},
		{ID: "e6", City: "Nowhere", State: "Atlantis", CreatedAt: now},
	}

	groups := groupByLocality(events)

	assert.Len(t, groups, 4)
	assert.Len(t, groups[localityKey{city: "Springfield", state: "IL"}], 2)
	assert.Len(t, groups[localityKey{city: "Chicago", state: "IL"}], 1)
	assert.Len(t, groups[localityKey{city: "Somewhere", state: "IL"}], 1)
	assert.Len(t, groups[localityKey{city: "", state: "MO"}], 1)
}

// A nationwide placeholder with a full state name keeps the state and gets
// state-level coordinates in the same run instead of losing its locality.
func TestVirtualCityWithFullStateNameKeepsState(t *testing.T) {
	b := &Backfiller{dryRun: true}
	stats := &Stats{}
	events := []*ent.Event{
		{ID: "e1", City: "Nationwide", State: "Arizona"},
		{ID: "e2", City: "Unknown", State: "everywhere"},
		{ID: "e3", City: "Phoenix", State: "AZ"},
	}

	remaining, err := b.clearVirtualCities(context.Background(), events, stats)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.VirtualCleared)
	require.Len(t, remaining, 2)
	assert.Equal(t, "e1", remaining[0].ID)
	assert.Empty(t, remaining[0].City)
	assert.Equal(t, "e3", remaining[1].ID)

	groups := groupByLocality(remaining)
	assert.Len(t, groups[localityKey{city: "", state: "AZ"}], 1)
	assert.Len(t, groups[localityKey{city: "Phoenix", state: "AZ"}], 1)
}
