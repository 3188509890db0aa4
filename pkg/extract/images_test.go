package extract

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/models"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestNormalizeImage_ResizesOversized(t *testing.T) {
	raw := encodePNG(t, 2048, 512)

	out, err := NormalizeImage(raw)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	bounds := decoded.Bounds()
	assert.Equal(t, 1024, bounds.Dx())
	assert.Equal(t, 256, bounds.Dy())
}

func TestNormalizeImage_SmallImageKeepsSize(t *testing.T) {
	raw := encodePNG(t, 300, 200)

	out, err := NormalizeImage(raw)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestNormalizeImage_RejectsGarbage(t *testing.T) {
	_, err := NormalizeImage([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestUsableImageURL(t *testing.T) {
	withURL := func(u string) *ent.Post {
		return &ent.Post{OfflineMediaURL: &u}
	}

	assert.Equal(t, "https://m.example/a.jpg", usableImageURL(withURL("https://m.example/a.jpg")))
	assert.Empty(t, usableImageURL(&ent.Post{}))
	assert.Empty(t, usableImageURL(withURL("")))
	assert.Empty(t, usableImageURL(withURL(models.MediaExpired)))
	assert.Empty(t, usableImageURL(withURL(models.MediaPermanentlyExpired)))
	assert.Empty(t, usableImageURL(withURL("https://m.example/v.mp4")))
	assert.Empty(t, usableImageURL(withURL("https://m.example/v.mov")))
}
