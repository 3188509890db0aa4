package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civiclens/civiclens/pkg/models"
)

func TestNormalizeEventDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "full date unchanged", input: "2024-05-01", expected: "2024-05-01"},
		{name: "month-only day coerced", input: "2024-05-00", expected: "2024-05-01"},
		{name: "unknown placeholder", input: "Unknown", expected: ""},
		{name: "null placeholder", input: "null", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace trimmed", input: " 2024-05-01 ", expected: "2024-05-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEventDate(tt.input))
		})
	}
}

func TestValidateEvent(t *testing.T) {
	postIDs := map[string]struct{}{
		"uuid-1": {},
		"uuid-2": {},
	}

	valid := func() models.ExtractedEvent {
		return models.ExtractedEvent{
			EventName:        "Capitol Rally",
			EventDescription: "A rally at the state capitol.",
			CategoryTags:     []string{"Rally"},
			ConfidenceScore:  0.9,
			SourceIDs:        []string{"uuid-1"},
		}
	}

	t.Run("valid event passes", func(t *testing.T) {
		ev := valid()
		reason, err := ValidateEvent(&ev, postIDs)
		require.NoError(t, err)
		assert.Empty(t, reason)
	})

	t.Run("no source IDs fails the batch", func(t *testing.T) {
		ev := valid()
		ev.SourceIDs = nil
		_, err := ValidateEvent(&ev, postIDs)
		require.Error(t, err)
		var missing *ErrMissingSourceIDs
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Capitol Rally", missing.EventName)
	})

	t.Run("unresolvable source ID fails the batch", func(t *testing.T) {
		ev := valid()
		ev.SourceIDs = []string{"uuid-1", "not-in-batch"}
		_, err := ValidateEvent(&ev, postIDs)
		var missing *ErrMissingSourceIDs
		require.ErrorAs(t, err, &missing)
	})

	t.Run("missing name discards", func(t *testing.T) {
		ev := valid()
		ev.EventName = "  "
		reason, err := ValidateEvent(&ev, postIDs)
		require.NoError(t, err)
		assert.Equal(t, "missing event name", reason)
	})

	t.Run("missing description discards", func(t *testing.T) {
		ev := valid()
		ev.EventDescription = ""
		reason, err := ValidateEvent(&ev, postIDs)
		require.NoError(t, err)
		assert.Equal(t, "missing event description", reason)
	})

	t.Run("missing tags discards", func(t *testing.T) {
		ev := valid()
		ev.CategoryTags = nil
		reason, err := ValidateEvent(&ev, postIDs)
		require.NoError(t, err)
		assert.Equal(t, "missing category tags", reason)
	})

	t.Run("confidence out of range discards", func(t *testing.T) {
		ev := valid()
		ev.ConfidenceScore = 1.5
		reason, err := ValidateEvent(&ev, postIDs)
		require.NoError(t, err)
		assert.Contains(t, reason, "confidence score")
	})
}
