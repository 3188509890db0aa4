package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/models"
)

func TestHasElectioneering(t *testing.T) {
	assert.True(t, hasElectioneering([]*ent.Event{
		{CategoryTags: []string{"Electioneering", "Canvassing"}},
	}))
	assert.True(t, hasElectioneering([]*ent.Event{
		{CategoryTags: []string{"Rally"}},
		{CategoryTags: []string{"phone_banking"}},
	}))
	assert.False(t, hasElectioneering([]*ent.Event{
		{CategoryTags: []string{"Rally", "Protest"}},
	}))
	assert.False(t, hasElectioneering(nil))
}

func TestBuildGroupMessage(t *testing.T) {
	group := models.DuplicateGroup{
		GroupID:            "g1",
		MaxSimilarityScore: 0.91,
		Pairs: []models.DuplicatePair{
			{EventID1: "e1", EventID2: "e2", Similarity: 0.91},
		},
	}
	events := []*ent.Event{
		{
			ID:               "e1",
			EventName:        "Capitol Rally",
			EventDate:        "2024-05-01",
			City:             "Springfield",
			State:            "IL",
			CategoryTags:     []string{"Rally"},
			EventDescription: "A rally.",
		},
		{
			ID:               "e2",
			EventName:        "Rally at the Capitol",
			EventDate:        "2024-05-01",
			City:             "Springfield",
			State:            "IL",
			CategoryTags:     []string{"Rally"},
			EventDescription: "Another record of the same rally.",
		},
	}

	msg := buildGroupMessage(group, events)

	assert.Contains(t, msg, "Event e1")
	assert.Contains(t, msg, "Event e2")
	assert.Contains(t, msg, "Capitol Rally")
	assert.Contains(t, msg, "e1 <-> e2: 0.91")
	assert.NotContains(t, msg, "electioneering")
}

func TestBuildGroupMessage_ElectioneeringWarning(t *testing.T) {
	group := models.DuplicateGroup{GroupID: "g1"}
	events := []*ent.Event{
		{ID: "e1", EventName: "Canvass", CategoryTags: []string{"Electioneering"}},
	}
	msg := buildGroupMessage(group, events)
	assert.Contains(t, msg, "NEVER merge electioneering")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdefgh", 3))
}
