package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/storage"
)

// Batch is an ordered list of posts handed to a single worker, with its
// estimated token cost.
type Batch struct {
	Posts           []*ent.Post
	EstimatedTokens int
}

// Builder selects unprocessed posts and groups them using the configured
// strategy. It never mutates posts.
type Builder struct {
	gateway   *storage.Gateway
	cfg       config.BatchConfig
	estimator *Estimator
}

// NewBuilder returns a builder over the storage gateway.
func NewBuilder(gateway *storage.Gateway, cfg config.BatchConfig) *Builder {
	return &Builder{
		gateway:   gateway,
		cfg:       cfg,
		estimator: NewEstimator(cfg),
	}
}

// Build selects all unprocessed posts (up to jobLimit when positive) and
// packs them into batches. The page loop tolerates query timeouts via the
// gateway's retry policy.
func (b *Builder) Build(ctx context.Context, jobLimit int) ([]Batch, error) {
	posts, err := b.selectPosts(ctx, jobLimit)
	if err != nil {
		return nil, fmt.Errorf("select unprocessed posts: %w", err)
	}
	if len(posts) == 0 {
		return nil, nil
	}

	var batches []Batch
	switch b.cfg.Strategy {
	case config.StrategyDateClustered:
		batches = b.packDateClustered(posts)
	case config.StrategyDayPacked:
		batches = b.packDayPacked(posts)
	default:
		batches = b.packTokenBounded(posts)
	}

	slog.Info("Built extraction batches",
		"strategy", b.cfg.Strategy, "posts", len(posts), "batches", len(batches))
	return batches, nil
}

func (b *Builder) selectPosts(ctx context.Context, jobLimit int) ([]*ent.Post, error) {
	var posts []*ent.Post
	for offset := 0; ; offset += b.cfg.PageSize {
		page, err := b.gateway.UnprocessedPostsPage(ctx, offset, b.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		posts = append(posts, page...)
		if jobLimit > 0 && len(posts) >= jobLimit {
			return posts[:jobLimit], nil
		}
		if len(page) < b.cfg.PageSize {
			return posts, nil
		}
	}
}

// packTokenBounded fills batches greedily: a post joins the current batch
// unless it would push tokens past the budget or posts past the cap. A batch
// that exactly fills the budget is still admitted.
func (b *Builder) packTokenBounded(posts []*ent.Post) []Batch {
	var batches []Batch
	current := Batch{EstimatedTokens: b.cfg.SystemPromptTokens}

	for _, p := range posts {
		cost := b.estimator.PostTokens(p)
		overBudget := len(current.Posts) > 0 &&
			(current.EstimatedTokens+cost > b.cfg.MaxTokensPerBatch ||
				len(current.Posts) >= b.cfg.MaxPostsPerBatch)
		if overBudget {
			batches = append(batches, current)
			current = Batch{EstimatedTokens: b.cfg.SystemPromptTokens}
		}
		current.Posts = append(current.Posts, p)
		current.EstimatedTokens += cost
	}
	if len(current.Posts) > 0 {
		batches = append(batches, current)
	}
	return batches
}

// packDateClustered applies the token-bounded policy plus a window rule: all
// posts in a batch fall within MaxDateRangeDays of the batch's first post.
func (b *Builder) packDateClustered(posts []*ent.Post) []Batch {
	window := time.Duration(b.cfg.MaxDateRangeDays) * 24 * time.Hour

	var batches []Batch
	current := Batch{EstimatedTokens: b.cfg.SystemPromptTokens}
	var anchor time.Time

	for _, p := range posts {
		cost := b.estimator.PostTokens(p)
		ts := postDay(p)
		split := len(current.Posts) > 0 &&
			(current.EstimatedTokens+cost > b.cfg.MaxTokensPerBatch ||
				len(current.Posts) >= b.cfg.MaxPostsPerBatch ||
				absDuration(anchor.Sub(ts)) > window)
		if split {
			batches = append(batches, current)
			current = Batch{EstimatedTokens: b.cfg.SystemPromptTokens}
		}
		if len(current.Posts) == 0 {
			anchor = ts
		}
		current.Posts = append(current.Posts, p)
		current.EstimatedTokens += cost
	}
	if len(current.Posts) > 0 {
		batches = append(batches, current)
	}
	return batches
}

// packDayPacked groups posts by calendar date, packs whole days until the
// token ceiling is approached, and sub-partitions oversized days by author.
func (b *Builder) packDayPacked(posts []*ent.Post) []Batch {
	type day struct {
		date  time.Time
		posts []*ent.Post
	}
	byDate := make(map[time.Time][]*ent.Post)
	for _, p := range posts {
		d := postDay(p)
		byDate[d] = append(byDate[d], p)
	}
	days := make([]day, 0, len(byDate))
	for d, ps := range byDate {
		days = append(days, day{date: d, posts: ps})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.After(days[j].date) })

	var batches []Batch
	current := Batch{EstimatedTokens: b.cfg.SystemPromptTokens}

	flush := func() {
		if len(current.Posts) > 0 {
			batches = append(batches, current)
			current = Batch{EstimatedTokens: b.cfg.SystemPromptTokens}
		}
	}

	for _, d := range days {
		dayTokens := b.estimator.BatchTokens(d.posts) - b.cfg.SystemPromptTokens
		fitsBudget := current.EstimatedTokens+dayTokens <= b.cfg.MaxTokensPerBatch &&
			len(current.Posts)+len(d.posts) <= b.cfg.MaxPostsPerBatch

		switch {
		case fitsBudget:
			current.Posts = append(current.Posts, d.posts...)
			current.EstimatedTokens += dayTokens
		case dayTokens+b.cfg.SystemPromptTokens <= b.cfg.MaxTokensPerBatch &&
			len(d.posts) <= b.cfg.MaxPostsPerBatch:
			// Whole day fits on its own; start a fresh batch for it.
			flush()
			current.Posts = append(current.Posts, d.posts...)
			current.EstimatedTokens += dayTokens
		default:
			// Oversized day: close the running batch and split the day by
			// author so related posts stay together.
			flush()
			for _, part := range b.splitDayByAuthor(d.posts) {
				batches = append(batches, part)
			}
		}
	}
	flush()
	return batches
}

// splitDayByAuthor partitions one oversized day into author groups, then
// packs the groups token-bounded with PostsPerBatch as the soft post target.
func (b *Builder) splitDayByAuthor(posts []*ent.Post) []Batch {
	byAuthor := make(map[string][]*ent.Post)
	var authors []string
	for _, p := range posts {
		if _, seen := byAuthor[p.AuthorHandle]; !seen {
			authors = append(authors, p.AuthorHandle)
		}
		byAuthor[p.AuthorHandle] = append(byAuthor[p.AuthorHandle], p)
	}

	var batches []Batch
	current := Batch{EstimatedTokens: b.cfg.SystemPromptTokens}
	for _, author := range authors {
		for _, p := range byAuthor[author] {
			cost := b.estimator.PostTokens(p)
			split := len(current.Posts) > 0 &&
				(current.EstimatedTokens+cost > b.cfg.MaxTokensPerBatch ||
					len(current.Posts) >= b.cfg.PostsPerBatch)
			if split {
				batches = append(batches, current)
				current = Batch{EstimatedTokens: b.cfg.SystemPromptTokens}
			}
			current.Posts = append(current.Posts, p)
			current.EstimatedTokens += cost
		}
	}
	if len(current.Posts) > 0 {
		batches = append(batches, current)
	}
	return batches
}

func postDay(p *ent.Post) time.Time {
	if p.Timestamp == nil {
		return time.Time{}
	}
	ts := p.Timestamp.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
