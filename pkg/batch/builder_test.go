package batch

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/config"
)

func testConfig() config.BatchConfig {
	return config.BatchConfig{
		Strategy:           config.StrategyTokenBounded,
		MaxTokensPerBatch:  1000,
		MaxPostsPerBatch:   10,
		PostsPerBatch:      2,
		MaxDateRangeDays:   3,
		SystemPromptTokens: 100,
		MetadataBaseTokens: 50,
		AvgTokensPerPost:   200,
		AvgTokensPerImage:  258,
		PageSize:           500,
	}
}

func post(id, author string, ts time.Time, contentLen int) *ent.Post {
	return &ent.Post{
		ID:           id,
		AuthorHandle: author,
		Timestamp:    &ts,
		ContentText:  strings.Repeat("x", contentLen),
	}
}

func testBuilder(cfg config.BatchConfig) *Builder {
	return &Builder{cfg: cfg, estimator: NewEstimator(cfg)}
}

func TestPostTokens(t *testing.T) {
	est := NewEstimator(testConfig())

	t.Run("base plus content", func(t *testing.T) {
		p := post("p1", "a", time.Now(), 400)
		// 50 base + 400/4 content
		assert.Equal(t, 150, est.PostTokens(p))
	})

	t.Run("clamped at average", func(t *testing.T) {
		p := post("p1", "a", time.Now(), 100_000)
		assert.Equal(t, 200, est.PostTokens(p))
	})

	t.Run("image adds cost after clamp", func(t *testing.T) {
		url := "https://media.example/p1.jpg"
		p := post("p1", "a", time.Now(), 100_000)
		p.OfflineMediaURL = &url
		assert.Equal(t, 200+258, est.PostTokens(p))
	})

	t.Run("expired sentinel has no image cost", func(t *testing.T) {
		sentinel := "EXPIRED"
		p := post("p1", "a", time.Now(), 400)
		p.OfflineMediaURL = &sentinel
		assert.Equal(t, 150, est.PostTokens(p))
	})
}

func TestPackTokenBounded(t *testing.T) {
	cfg := testConfig()
	b := testBuilder(cfg)
	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("splits on token budget", func(t *testing.T) {
		// Each post costs 200 (clamped); budget 1000 with 100 system prompt
		// fits four posts (100 + 4*200 = 900; a fifth would hit 1100).
		var posts []*ent.Post
		for i := 0; i < 9; i++ {
			posts = append(posts, post("p", "a", day, 100_000))
		}
		batches := b.packTokenBounded(posts)
		require.Len(t, batches, 3)
		assert.Len(t, batches[0].Posts, 4)
		assert.Len(t, batches[1].Posts, 4)
		assert.Len(t, batches[2].Posts, 1)
		assert.Equal(t, 900, batches[0].EstimatedTokens)
	})

	t.Run("exact fill is admitted", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxTokensPerBatch = 900
		b := testBuilder(cfg)
		var posts []*ent.Post
		for i := 0; i < 4; i++ {
			posts = append(posts, post("p", "a", day, 100_000))
		}
		batches := b.packTokenBounded(posts)
		require.Len(t, batches, 1)
		assert.Equal(t, 900, batches[0].EstimatedTokens)
	})

	t.Run("splits on post cap", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxPostsPerBatch = 3
		b := testBuilder(cfg)
		var posts []*ent.Post
		for i := 0; i < 7; i++ {
			posts = append(posts, post("p", "a", day, 4))
		}
		batches := b.packTokenBounded(posts)
		require.Len(t, batches, 3)
		assert.Len(t, batches[2].Posts, 1)
	})
}

func TestPackDateClustered(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = config.StrategyDateClustered
	b := testBuilder(cfg)

	newest := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	posts := []*ent.Post{
		post("p1", "a", newest, 4),
		post("p2", "a", newest.AddDate(0, 0, -2), 4),
		// 5 days before the anchor: outside the 3-day window.
		post("p3", "a", newest.AddDate(0, 0, -5), 4),
		post("p4", "a", newest.AddDate(0, 0, -6), 4),
	}

	batches := b.packDateClustered(posts)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0].Posts, 2)
	assert.Len(t, batches[1].Posts, 2)
}

func TestPackDayPacked(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = config.StrategyDayPacked
	b := testBuilder(cfg)

	day1 := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 9, 8, 0, 0, 0, time.UTC)

	t.Run("days pack newest first", func(t *testing.T) {
		posts := []*ent.Post{
			post("old", "a", day2, 4),
			post("new1", "a", day1, 4),
			post("new2", "b", day1.Add(time.Hour), 4),
		}
		batches := b.packDayPacked(posts)
		require.Len(t, batches, 1)
		require.Len(t, batches[0].Posts, 3)
		// Newest day's posts come before the older day's.
		assert.Equal(t, "old", batches[0].Posts[2].ID)
	})

	t.Run("oversized day splits by author", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxPostsPerBatch = 3
		b := testBuilder(cfg)

		var posts []*ent.Post
		for i := 0; i < 3; i++ {
			posts = append(posts, post("a-post", "author_a", day1, 4))
		}
		for i := 0; i < 2; i++ {
			posts = append(posts, post("b-post", "author_b", day1, 4))
		}
		batches := b.packDayPacked(posts)
		require.True(t, len(batches) >= 2)
		// PostsPerBatch=2 is the soft target inside an oversized day.
		for _, batch := range batches {
			assert.LessOrEqual(t, len(batch.Posts), 2)
		}
	})
}

func TestPostDay(t *testing.T) {
	ts := time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)
	p := post("p", "a", ts, 0)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), postDay(p))

	p.Timestamp = nil
	assert.True(t, postDay(p).IsZero())
}
