package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civiclens/civiclens/pkg/models"
)

func TestExtractHandles(t *testing.T) {
	t.Run("handles from prose and arrays, deduplicated", func(t *testing.T) {
		ev := models.ExtractedEvent{
			Participants:     "Organized by @grassroots_il with @jane.doe",
			EventDescription: "See @grassroots_il for details",
			Justification:    "Posts from @observer99",
			InstagramHandles: []string{"@Jane.Doe", "fresh_account"},
			TwitterHandles:   []string{"observer99"},
		}
		got := extractHandles(&ev)
		assert.Equal(t, []string{"grassroots_il", "jane.doe", "observer99", "fresh_account"}, got)
	})

	t.Run("case folded", func(t *testing.T) {
		ev := models.ExtractedEvent{
			TwitterHandles: []string{"@MixedCase"},
		}
		assert.Equal(t, []string{"mixedcase"}, extractHandles(&ev))
	})

	t.Run("no handles", func(t *testing.T) {
		ev := models.ExtractedEvent{EventDescription: "No mentions here"}
		assert.Empty(t, extractHandles(&ev))
	})
}

func TestUnknownLinkRow(t *testing.T) {
	row := unknownLinkRow("event-1", "ua-42")
	assert.Equal(t, "event-1", row.EventID)
	assert.Equal(t, models.UnknownHandlePrefix+"ua-42", row.ActorHandle)
	assert.Equal(t, models.UnknownPlatform, row.Platform)
	assert.Equal(t, "ua-42", row.UnknownActorID)
	assert.Empty(t, row.ActorID)
}
