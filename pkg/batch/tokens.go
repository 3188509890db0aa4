// Package batch selects unprocessed posts and packs them into extractor
// batches bounded by token budget, post count, and optional date clustering.
package batch

import (
	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/models"
)

// Estimator approximates token costs without a tokenizer round trip. The
// constants come from configuration so they can be tuned against observed
// usage.
type Estimator struct {
	cfg config.BatchConfig
}

// NewEstimator builds an estimator from batch configuration.
func NewEstimator(cfg config.BatchConfig) *Estimator {
	return &Estimator{cfg: cfg}
}

// PostTokens estimates one post's prompt cost: metadata base plus roughly one
// token per four content characters plus supplemental field overhead, clamped
// at the configured per-post average, plus image cost when the post carries a
// fetched image.
func (e *Estimator) PostTokens(p *ent.Post) int {
	tokens := e.cfg.MetadataBaseTokens + len(p.ContentText)/4
	for _, h := range p.MentionedHandles {
		tokens += len(h)/4 + 2
	}
	for _, h := range p.Hashtags {
		tokens += len(h)/4 + 2
	}
	tokens += len(p.LocationText) / 4
	if tokens > e.cfg.AvgTokensPerPost {
		tokens = e.cfg.AvgTokensPerPost
	}
	if hasUsableImage(p) {
		tokens += e.cfg.AvgTokensPerImage
	}
	return tokens
}

// BatchTokens is the full batch cost including the system prompt.
func (e *Estimator) BatchTokens(posts []*ent.Post) int {
	total := e.cfg.SystemPromptTokens
	for _, p := range posts {
		total += e.PostTokens(p)
	}
	return total
}

// hasUsableImage reports whether the post has a fetched, non-sentinel image
// URL that the extractor will attach.
func hasUsableImage(p *ent.Post) bool {
	if p.OfflineMediaURL == nil {
		return false
	}
	url := *p.OfflineMediaURL
	return url != "" && url != models.MediaExpired && url != models.MediaPermanentlyExpired
}
