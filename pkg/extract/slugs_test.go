package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlugIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "SpringfieldHigh", expected: "springfieldhigh"},
		{name: "spaces to underscores", input: "Springfield High School", expected: "springfield_high_school"},
		{name: "hyphens to underscores", input: "first-baptist-church", expected: "first_baptist_church"},
		{name: "repeats collapsed", input: "a  -  b", expected: "a_b"},
		{name: "edges trimmed", input: " _padded_ ", expected: "padded"},
		{name: "empty stays empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSlugIdentifier(tt.input))
		})
	}
}

func TestSlugCacheSearch(t *testing.T) {
	cache := NewSlugCache(nil)
	cache.byParent = map[string]map[string]struct{}{
		"School": {
			"il_springfield_high": {},
			"il_lincoln_middle":   {},
		},
		"Church": {
			"first_baptist_springfield": {},
		},
	}

	t.Run("wildcard matches substrings", func(t *testing.T) {
		got := cache.Search("springfield", "", "wildcard")
		assert.Len(t, got["School"], 1)
		assert.Len(t, got["Church"], 1)
	})

	t.Run("prefix mode", func(t *testing.T) {
		got := cache.Search("il_", "", "prefix")
		assert.Len(t, got["School"], 2)
		assert.Empty(t, got["Church"])
	})

	t.Run("exact mode", func(t *testing.T) {
		got := cache.Search("IL Lincoln Middle", "", "exact")
		assert.Equal(t, []string{"il_lincoln_middle"}, got["School"])
	})

	t.Run("parent filter", func(t *testing.T) {
		got := cache.Search("springfield", "Church", "wildcard")
		assert.Len(t, got, 1)
		assert.Contains(t, got, "Church")
	})
}

func TestCacheable(t *testing.T) {
	assert.True(t, Cacheable("School"))
	assert.True(t, Cacheable("BallotMeasure"))
	assert.False(t, Cacheable("Rally"))
	assert.False(t, Cacheable(""))
}

func TestSlugCacheHas(t *testing.T) {
	cache := NewSlugCache(nil)
	cache.byParent = map[string]map[string]struct{}{
		"School": {"il_springfield_high": {}},
	}
	assert.True(t, cache.Has("School", "IL Springfield High"))
	assert.False(t, cache.Has("School", "mo_other_school"))
	assert.False(t, cache.Has("Church", "il_springfield_high"))
}
