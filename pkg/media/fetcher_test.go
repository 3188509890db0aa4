package media

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaKey(t *testing.T) {
	tests := []struct {
		name     string
		postID   string
		index    int
		url      string
		expected string
	}{
		{
			name:     "first media uses bare post ID",
			postID:   "3112233",
			index:    0,
			url:      "https://cdn.example/media/abc.jpg",
			expected: "3112233.jpg",
		},
		{
			name:     "later media carries index suffix",
			postID:   "3112233",
			index:    2,
			url:      "https://cdn.example/media/abc.png",
			expected: "3112233_2.png",
		},
		{
			name:     "query string ignored",
			postID:   "p1",
			index:    0,
			url:      "https://cdn.example/v.mp4?token=xyz&sig=123",
			expected: "p1.mp4",
		},
		{
			name:     "unknown extension defaults to jpg",
			postID:   "p1",
			index:    0,
			url:      "https://cdn.example/media/abc.tiff",
			expected: "p1.jpg",
		},
		{
			name:     "no extension defaults to jpg",
			postID:   "p1",
			index:    1,
			url:      "https://cdn.example/media/abc",
			expected: "p1_1.jpg",
		},
		{
			name:     "uppercase extension lowered",
			postID:   "p1",
			index:    0,
			url:      "https://cdn.example/media/abc.JPG",
			expected: "p1.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MediaKey(tt.postID, tt.index, tt.url))
		})
	}
}

func TestMediaKeyDeterministic(t *testing.T) {
	a := MediaKey("post", 1, "https://cdn.example/x.webp")
	b := MediaKey("post", 1, "https://cdn.example/x.webp")
	assert.Equal(t, a, b)
}

// Exercises the existing-key index from concurrent readers and writers the
// way download goroutines and uploads do; fails under -race if either side
// bypasses the lock.
func TestExistingKeyIndexConcurrent(t *testing.T) {
	f := &Fetcher{existing: map[string]struct{}{"seed.jpg": {}}}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		key := fmt.Sprintf("post_%d.jpg", i)
		go func() {
			defer wg.Done()
			f.markExisting(key)
		}()
		go func() {
			defer wg.Done()
			_ = f.hasExisting(key)
			_ = f.hasExisting("seed.jpg")
		}()
	}
	wg.Wait()

	assert.True(t, f.hasExisting("seed.jpg"))
	assert.True(t, f.hasExisting("post_42.jpg"))
}
