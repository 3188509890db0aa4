package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civiclens/civiclens/pkg/models"
)

func TestDecodeEvents(t *testing.T) {
	e := &Engine{}

	t.Run("envelope", func(t *testing.T) {
		events, err := e.decodeEvents(`{"events": [{"EventName": "Rally", "SourceIDs": ["a"]}]}`)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Rally", events[0].EventName)
	})

	t.Run("empty envelope", func(t *testing.T) {
		events, err := e.decodeEvents(`{"events": []}`)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("bare array", func(t *testing.T) {
		events, err := e.decodeEvents(`[{"EventName": "Rally"}, {"EventName": "March"}]`)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("single object", func(t *testing.T) {
		events, err := e.decodeEvents(`{"EventName": "Rally", "SourceIDs": ["a"]}`)
		require.NoError(t, err)
		require.Len(t, events, 1)
	})

	t.Run("fenced envelope", func(t *testing.T) {
		events, err := e.decodeEvents("```json\n{\"events\": [{\"EventName\": \"Rally\"}]}\n```")
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("prose only fails", func(t *testing.T) {
		_, err := e.decodeEvents("No events were found in this batch.")
		assert.Error(t, err)
	})
}

func TestValidateEvents_TranslatesAndFilters(t *testing.T) {
	e := &Engine{}
	postIDMap := map[string]string{"ext-1": "uuid-1"}
	postUUIDs := map[string]struct{}{"uuid-1": {}}

	t.Run("external IDs translate to UUIDs", func(t *testing.T) {
		events, err := e.validateEvents([]models.ExtractedEvent{
			{
				EventName:        "Rally",
				EventDescription: "desc",
				CategoryTags:     []string{"Rally"},
				ConfidenceScore:  0.8,
				SourceIDs:        []string{"ext-1"},
				Date:             "2024-05-00",
			},
		}, postIDMap, postUUIDs)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, []string{"uuid-1"}, events[0].SourceIDs)
		assert.Equal(t, "2024-05-01", events[0].EventDate)
	})

	t.Run("invalid event discarded silently", func(t *testing.T) {
		events, err := e.validateEvents([]models.ExtractedEvent{
			{
				EventName:       "",
				CategoryTags:    []string{"Rally"},
				ConfidenceScore: 0.8,
				SourceIDs:       []string{"uuid-1"},
			},
		}, postIDMap, postUUIDs)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("unknown source ID fails batch", func(t *testing.T) {
		_, err := e.validateEvents([]models.ExtractedEvent{
			{
				EventName: "Rally",
				SourceIDs: []string{"never-seen"},
			},
		}, postIDMap, postUUIDs)
		var missing *ErrMissingSourceIDs
		require.ErrorAs(t, err, &missing)
	})
}

func TestTail(t *testing.T) {
	assert.Equal(t, "short", tail("short", 10))
	assert.Equal(t, "cdef", tail("abcdef", 4))
}
