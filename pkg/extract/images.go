package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/models"
)

const (
	imageMaxDimension   = 1024
	imageJPEGQuality    = 85
	imageFetchTimeout   = 10 * time.Second
	imageMaxSourceBytes = 20 << 20
)

// imageFetcher downloads and normalizes post images for the prompt: JPEG
// re-encoded, bounded to 1024x1024, quality 85.
type imageFetcher struct {
	client *http.Client
}

func newImageFetcher() *imageFetcher {
	return &imageFetcher{
		client: &http.Client{Timeout: imageFetchTimeout},
	}
}

// FetchDataURL returns a base64 data URL for the post's stored image, or ""
// when the post has no usable image. Failures are soft; extraction proceeds
// text-only.
func (f *imageFetcher) FetchDataURL(ctx context.Context, p *ent.Post) (string, error) {
	url := usableImageURL(p)
	if url == "" {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, imageMaxSourceBytes))
	if err != nil {
		return "", err
	}
	normalized, err := NormalizeImage(raw)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(normalized), nil
}

// NormalizeImage decodes any supported format and re-encodes as JPEG bounded
// to 1024x1024 at quality 85. Video bytes fail the decode and are skipped.
func NormalizeImage(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > imageMaxDimension || h > imageMaxDimension {
		scale := float64(imageMaxDimension) / float64(max(w, h))
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: imageJPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// usableImageURL returns the post's fetched media URL unless it is missing,
// a terminal sentinel, or an obvious video.
func usableImageURL(p *ent.Post) string {
	if p.OfflineMediaURL == nil {
		return ""
	}
	url := *p.OfflineMediaURL
	switch url {
	case "", models.MediaExpired, models.MediaPermanentlyExpired:
		return ""
	}
	for _, ext := range []string{".mp4", ".mov"} {
		if len(url) >= len(ext) && url[len(url)-len(ext):] == ext {
			return ""
		}
	}
	return url
}
