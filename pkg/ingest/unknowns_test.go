package ingest

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("short string unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncate("hello", 500))
	})

	t.Run("ascii cut at limit", func(t *testing.T) {
		assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	})

	t.Run("never splits a multibyte rune", func(t *testing.T) {
		s := strings.Repeat("é", 10) // 2 bytes each
		got := truncate(s, 5)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, "éé", got)
	})

	t.Run("emoji boundary", func(t *testing.T) {
		s := "ab\U0001F5F3\U0001F5F3" // 4-byte runes
		got := truncate(s, 4)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, "ab", got)
	})

	t.Run("zero limit", func(t *testing.T) {
		assert.Empty(t, truncate("abc", 0))
	})
}
