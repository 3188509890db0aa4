// Package media downloads post media and stores it under deterministic
// object-store keys, writing back stable public URLs or terminal sentinels.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/config"
	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/storage"
)

// Stats summarizes one fetch run.
type Stats struct {
	PostsSeen     int
	Downloaded    int
	AlreadyStored int
	Expired       int
	PermExpired   int
	Failed        int
}

// Fetcher downloads one representative media item per post with bounded
// concurrency and writes the resulting URL back in buffered bulk updates.
type Fetcher struct {
	gateway *storage.Gateway
	cfg     config.MediaConfig
	bucket  string

	httpClient *http.Client
	downloads  *semaphore.Weighted
	uploads    *semaphore.Weighted

	mu sync.Mutex
	// existing is the media bucket's key listing, preloaded at start so repeat
	// runs short-circuit without HTTP traffic. Guarded by mu: uploads add keys
	// while download goroutines check them.
	existing map[string]struct{}
	pending  map[string]string
	stats    Stats
}

// NewFetcher builds a fetcher over the storage gateway's object store.
func NewFetcher(gateway *storage.Gateway, cfg config.MediaConfig, bucket string) *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxConns,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		MaxIdleConnsPerHost: cfg.MaxConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Fetcher{
		gateway: gateway,
		cfg:     cfg,
		bucket:  bucket,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.DownloadTimeout,
		},
		downloads: semaphore.NewWeighted(int64(cfg.DownloadConcurrency)),
		uploads:   semaphore.NewWeighted(int64(cfg.UploadConcurrency)),
		pending:   make(map[string]string),
	}
}

// Run fetches media for every post on the platform that still needs it.
// Network failures are per-post; the run aggregates statistics and never
// aborts on a single failure.
func (f *Fetcher) Run(ctx context.Context, platform string, pageSize int) (*Stats, error) {
	listing, err := f.gateway.Store().List(ctx, f.bucket, "")
	if err != nil {
		return nil, fmt.Errorf("preload media listing: %w", err)
	}
	f.existing = make(map[string]struct{}, len(listing))
	for _, key := range listing {
		f.existing[key] = struct{}{}
	}

	for offset := 0; ; offset += pageSize {
		posts, err := f.gateway.PostsNeedingMedia(ctx, platform, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("select posts needing media: %w", err)
		}
		if len(posts) == 0 {
			break
		}
		if err := f.processPage(ctx, posts); err != nil {
			return nil, err
		}
		if len(posts) < pageSize {
			break
		}
	}

	if err := f.flush(ctx); err != nil {
		return nil, err
	}

	f.mu.Lock()
	stats := f.stats
	f.mu.Unlock()
	slog.Info("Media fetch complete",
		"platform", platform, "seen", stats.PostsSeen,
		"downloaded", stats.Downloaded, "cached", stats.AlreadyStored,
		"expired", stats.Expired, "perm_expired", stats.PermExpired,
		"failed", stats.Failed)
	return &stats, nil
}

// processPage runs one page through the semaphores, pausing between
// sub-batches to smooth outbound rate.
func (f *Fetcher) processPage(ctx context.Context, posts []*ent.Post) error {
	var wg sync.WaitGroup
	for i, post := range posts {
		if i > 0 && i%f.cfg.SubBatchSize == 0 {
			select {
			case <-time.After(f.cfg.SubBatchPause):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := f.downloads.Acquire(ctx, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func(p *ent.Post) {
			defer wg.Done()
			defer f.downloads.Release(1)
			f.fetchPost(ctx, p)
		}(post)
	}
	wg.Wait()
	return f.maybeFlush(ctx)
}

// fetchPost tries each media URL in order until one succeeds. All-terminal
// failure transitions the post to EXPIRED, or PERMANENTLY_EXPIRED when it
// was EXPIRED already.
func (f *Fetcher) fetchPost(ctx context.Context, post *ent.Post) {
	f.mu.Lock()
	f.stats.PostsSeen++
	f.mu.Unlock()

	allTerminal := true
	for index, rawURL := range post.MediaUrls {
		key := MediaKey(post.ExternalPostID, index, rawURL)
		if f.hasExisting(key) {
			f.record(post.ID, f.gateway.Store().PublicURL(f.bucket, key), &f.stats.AlreadyStored)
			return
		}

		body, contentType, status, err := f.download(ctx, rawURL)
		if err != nil {
			allTerminal = false
			slog.Debug("Media download failed", "post", post.ID, "url", rawURL, "error", err)
			continue
		}
		if status != 0 {
			if !isTerminalStatus(status) {
				allTerminal = false
			}
			continue
		}

		publicURL, err := f.upload(ctx, key, body, contentType)
		if err != nil {
			allTerminal = false
			slog.Warn("Media upload failed", "post", post.ID, "key", key, "error", err)
			continue
		}
		f.record(post.ID, publicURL, &f.stats.Downloaded)
		return
	}

	if allTerminal && len(post.MediaUrls) > 0 {
		f.recordExpired(post)
		return
	}
	f.mu.Lock()
	f.stats.Failed++
	f.mu.Unlock()
}

// download returns (body, contentType, 0, nil) on success, or a non-zero
// HTTP status for rejections, or an error for transport failures.
func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", 0, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, "", 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, "", resp.StatusCode, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", 0, err
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return body, contentType, 0, nil
}

func (f *Fetcher) upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if err := f.uploads.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer f.uploads.Release(1)

	url, err := f.gateway.Store().Put(ctx, f.bucket, key, body, contentType)
	if err != nil {
		return "", err
	}
	f.markExisting(key)
	return url, nil
}

func (f *Fetcher) hasExisting(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.existing[key]
	return ok
}

func (f *Fetcher) markExisting(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existing == nil {
		f.existing = make(map[string]struct{})
	}
	f.existing[key] = struct{}{}
}

func (f *Fetcher) record(postID, url string, counter *int) {
	f.mu.Lock()
	f.pending[postID] = url
	*counter++
	f.mu.Unlock()
}

func (f *Fetcher) recordExpired(post *ent.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if post.OfflineMediaURL != nil && *post.OfflineMediaURL == models.MediaExpired {
		f.pending[post.ID] = models.MediaPermanentlyExpired
		f.stats.PermExpired++
		return
	}
	f.pending[post.ID] = models.MediaExpired
	f.stats.Expired++
}

// maybeFlush writes buffered URL updates once the buffer reaches FlushEvery.
func (f *Fetcher) maybeFlush(ctx context.Context) error {
	f.mu.Lock()
	size := len(f.pending)
	f.mu.Unlock()
	if size < f.cfg.FlushEvery {
		return nil
	}
	return f.flush(ctx)
}

func (f *Fetcher) flush(ctx context.Context) error {
	f.mu.Lock()
	batch := f.pending
	f.pending = make(map[string]string)
	f.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	if err := f.gateway.UpdateOfflineMediaURLs(ctx, batch); err != nil {
		return fmt.Errorf("flush media URLs: %w", err)
	}
	slog.Debug("Flushed media URL updates", "count", len(batch))
	return nil
}

// isTerminalStatus reports whether an HTTP status means the media is gone
// for good.
func isTerminalStatus(status int) bool {
	switch status {
	case http.StatusForbidden, http.StatusNotFound, http.StatusGone:
		return true
	}
	return false
}

// MediaKey derives the deterministic object key
// {external_post_id}[_{index}].{ext}. Index 0 omits the suffix; URLs with an
// unrecognized extension default to jpg.
func MediaKey(externalPostID string, index int, rawURL string) string {
	ext := urlExtension(rawURL)
	if ext == "" {
		ext = "jpg"
	}
	if index == 0 {
		return externalPostID + "." + ext
	}
	return fmt.Sprintf("%s_%d.%s", externalPostID, index, ext)
}

var knownExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {}, "mp4": {}, "mov": {},
}

func urlExtension(rawURL string) string {
	trimmed := rawURL
	if q := strings.IndexByte(trimmed, '?'); q >= 0 {
		trimmed = trimmed[:q]
	}
	dot := strings.LastIndexByte(trimmed, '.')
	if dot < 0 || dot == len(trimmed)-1 {
		return ""
	}
	ext := strings.ToLower(trimmed[dot+1:])
	if _, ok := knownExtensions[ext]; !ok {
		return ""
	}
	return ext
}
