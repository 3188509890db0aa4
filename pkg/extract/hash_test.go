package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHash_Deterministic(t *testing.T) {
	a := ContentHash("Town Hall", "2024-05-01", "City Hall", "Springfield", "IL", []string{"p1", "p2"})
	b := ContentHash("Town Hall", "2024-05-01", "City Hall", "Springfield", "IL", []string{"p1", "p2"})
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestContentHash_SourceOrderIrrelevant(t *testing.T) {
	a := ContentHash("Town Hall", "2024-05-01", "", "Springfield", "IL", []string{"p2", "p1", "p3"})
	b := ContentHash("Town Hall", "2024-05-01", "", "Springfield", "IL", []string{"p1", "p3", "p2"})
	assert.Equal(t, a, b)
}

func TestContentHash_CaseNormalization(t *testing.T) {
	a := ContentHash("TOWN HALL", "2024-05-01", "City Hall", "SPRINGFIELD", "il", []string{"p1"})
	b := ContentHash("town hall", "2024-05-01", "city hall", "springfield", "IL", []string{"p1"})
	assert.Equal(t, a, b)
}

func TestContentHash_DistinguishesFields(t *testing.T) {
	base := ContentHash("Town Hall", "2024-05-01", "", "Springfield", "IL", []string{"p1"})
	assert.NotEqual(t, base, ContentHash("Town Hall", "2024-05-02", "", "Springfield", "IL", []string{"p1"}))
	assert.NotEqual(t, base, ContentHash("Town Hall", "2024-05-01", "", "Springfield", "MO", []string{"p1"}))
	assert.NotEqual(t, base, ContentHash("Town Hall", "2024-05-01", "", "Springfield", "IL", []string{"p1", "p2"}))
}

func TestSortedPostIDs_CopiesInput(t *testing.T) {
	ids := []string{"c", "a", "b"}
	sorted := SortedPostIDs(ids)
	assert.Equal(t, []string{"a", "b", "c"}, sorted)
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}
