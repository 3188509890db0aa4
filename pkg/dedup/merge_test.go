package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionTags(t *testing.T) {
	t.Run("appends new tags after master order", func(t *testing.T) {
		got := unionTags(
			[]string{"Rally", "School:il_springfield_high"},
			[]string{"Rally", "Protest"},
		)
		assert.Equal(t, []string{"Rally", "School:il_springfield_high", "Protest"}, got)
	})

	t.Run("case-insensitive dedup keeps master casing", func(t *testing.T) {
		got := unionTags([]string{"Rally"}, []string{"RALLY", "rally"})
		assert.Equal(t, []string{"Rally"}, got)
	})

	t.Run("empty master", func(t *testing.T) {
		got := unionTags(nil, []string{"Protest"})
		assert.Equal(t, []string{"Protest"}, got)
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Empty(t, unionTags(nil, nil))
	})
}
