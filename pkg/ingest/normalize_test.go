package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "Rally at the capitol tomorrow",
			expected: "Rally at the capitol tomorrow",
		},
		{
			name:     "control characters stripped",
			input:    "before\x00\x07after",
			expected: "beforeafter",
		},
		{
			name:     "newlines and tabs survive",
			input:    "line one\n\tline two",
			expected: "line one\n\tline two",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  padded  ",
			expected: "padded",
		},
		{
			name:     "nan sentinel becomes empty",
			input:    "NaN",
			expected: "",
		},
		{
			name:     "whitespace-only becomes empty",
			input:    "   \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanContent(tt.input))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("RFC3339 with offset converts to UTC", func(t *testing.T) {
		ts := ParseTimestamp("2024-05-01T10:30:00-04:00")
		require.NotNil(t, ts)
		assert.Equal(t, time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC), *ts)
	})

	t.Run("space-separated layout", func(t *testing.T) {
		ts := ParseTimestamp("2024-05-01 10:30:00")
		require.NotNil(t, ts)
		assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), *ts)
	})

	t.Run("date only", func(t *testing.T) {
		ts := ParseTimestamp("2024-05-01")
		require.NotNil(t, ts)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *ts)
	})

	t.Run("unix seconds", func(t *testing.T) {
		ts := ParseTimestamp("1714561800")
		require.NotNil(t, ts)
		assert.Equal(t, int64(1714561800), ts.Unix())
	})

	t.Run("unix seconds with fraction", func(t *testing.T) {
		ts := ParseTimestamp("1714561800.5")
		require.NotNil(t, ts)
		assert.Equal(t, int64(1714561800), ts.Unix())
	})

	t.Run("garbage yields nil", func(t *testing.T) {
		assert.Nil(t, ParseTimestamp("yesterday"))
		assert.Nil(t, ParseTimestamp("nan"))
		assert.Nil(t, ParseTimestamp(""))
	})
}

func TestCleanExternalID(t *testing.T) {
	assert.Equal(t, "12345", CleanExternalID("12345"))
	assert.Equal(t, "event123", CleanExternalID("event123@calendar.google.com"))
	assert.Equal(t, "", CleanExternalID("@orphan"))
}

func TestCanonicalPlatform(t *testing.T) {
	assert.Equal(t, "twitter", CanonicalPlatform("X"))
	assert.Equal(t, "twitter", CanonicalPlatform("twitter"))
	assert.Equal(t, "truth_social", CanonicalPlatform("TruthSocial"))
	assert.Equal(t, "truth_social", CanonicalPlatform("truth"))
	assert.Equal(t, "instagram", CanonicalPlatform(" Instagram "))
}

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		name     string
		handle   string
		platform string
		expected string
	}{
		{
			name:     "at prefix and case",
			handle:   "@SomeUser",
			platform: "instagram",
			expected: "someuser",
		},
		{
			name:     "illegal characters stripped",
			handle:   "user name!#",
			platform: "instagram",
			expected: "username",
		},
		{
			name:     "dots survive",
			handle:   "some.account",
			platform: "instagram",
			expected: "some.account",
		},
		{
			name:     "twitter handles truncate at 15",
			handle:   "a_very_long_twitter_handle",
			platform: "twitter",
			expected: "a_very_long_twi",
		},
		{
			name:     "instagram handles are not truncated",
			handle:   "a_very_long_instagram_name",
			platform: "instagram",
			expected: "a_very_long_instagram_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHandle(tt.handle, tt.platform))
		})
	}
}

func TestParseMentionedUsers(t *testing.T) {
	t.Run("JSON array", func(t *testing.T) {
		got := ParseMentionedUsers(`["@Alice", "bob", "@alice"]`, "twitter")
		assert.Equal(t, []string{"alice", "bob"}, got)
	})

	t.Run("semicolon delimited", func(t *testing.T) {
		got := ParseMentionedUsers("@Alice;bob; @Carol", "twitter")
		assert.Equal(t, []string{"alice", "bob", "carol"}, got)
	})

	t.Run("single handle", func(t *testing.T) {
		got := ParseMentionedUsers("@OnlyOne", "twitter")
		assert.Equal(t, []string{"onlyone"}, got)
	})

	t.Run("nan yields nil", func(t *testing.T) {
		assert.Nil(t, ParseMentionedUsers("nan", "twitter"))
		assert.Nil(t, ParseMentionedUsers("", "twitter"))
	})
}

func TestParseHashtags(t *testing.T) {
	t.Run("field and content union", func(t *testing.T) {
		got := ParseHashtags("protest;rally", "Join us! #Rally #capitol")
		assert.Equal(t, []string{"#protest", "#rally", "#capitol"}, got)
	})

	t.Run("dedup is case-insensitive, first casing wins", func(t *testing.T) {
		got := ParseHashtags("#Vote", "go #VOTE now #vote")
		assert.Equal(t, []string{"#Vote"}, got)
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, ParseHashtags("", "no tags here"))
		assert.Empty(t, ParseHashtags("nan", ""))
	})
}

func TestParseMediaURLs(t *testing.T) {
	t.Run("JSON array", func(t *testing.T) {
		got := ParseMediaURLs(`["https://a.example/1.jpg", "https://a.example/2.jpg"]`)
		assert.Len(t, got, 2)
	})

	t.Run("single URL", func(t *testing.T) {
		got := ParseMediaURLs("https://a.example/1.jpg")
		assert.Equal(t, []string{"https://a.example/1.jpg"}, got)
	})

	t.Run("nan yields nil", func(t *testing.T) {
		assert.Nil(t, ParseMediaURLs("nan"))
	})
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 42, ParseCount("42"))
	assert.Equal(t, 42, ParseCount("42.0"))
	assert.Equal(t, 0, ParseCount("nan"))
	assert.Equal(t, 0, ParseCount(""))
}
