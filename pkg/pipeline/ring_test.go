package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogRing_UnderCapacity(t *testing.T) {
	ring := NewLogRing(5)
	ring.Append("one")
	ring.Append("two")

	assert.Equal(t, 2, ring.Len())
	assert.Equal(t, []string{"one", "two"}, ring.Tail())
}

func TestLogRing_EvictsOldest(t *testing.T) {
	ring := NewLogRing(3)
	for i := 1; i <= 5; i++ {
		ring.Append(fmt.Sprintf("line-%d", i))
	}

	assert.Equal(t, 3, ring.Len())
	assert.Equal(t, []string{"line-3", "line-4", "line-5"}, ring.Tail())
}

func TestLogRing_ExactCapacity(t *testing.T) {
	ring := NewLogRing(2)
	ring.Append("a")
	ring.Append("b")

	assert.Equal(t, []string{"a", "b"}, ring.Tail())
}

func TestLogRing_MinimumCapacity(t *testing.T) {
	ring := NewLogRing(0)
	ring.Append("only")
	ring.Append("last")

	assert.Equal(t, []string{"last"}, ring.Tail())
}

func TestLogRing_Empty(t *testing.T) {
	ring := NewLogRing(4)
	assert.Equal(t, 0, ring.Len())
	assert.Empty(t, ring.Tail())
}
