package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeDecisionActionable(t *testing.T) {
	assert.True(t, (&MergeDecision{Confidence: "high"}).Actionable())
	assert.True(t, (&MergeDecision{Confidence: "medium"}).Actionable())
	assert.False(t, (&MergeDecision{Confidence: "low"}).Actionable())
	assert.False(t, (&MergeDecision{}).Actionable())
}

func TestExtractedEventResolvedDate(t *testing.T) {
	assert.Equal(t, "2024-05-01", (&ExtractedEvent{EventDate: "2024-05-01", Date: "2024-04-01"}).ResolvedDate())
	assert.Equal(t, "2024-04-01", (&ExtractedEvent{Date: "2024-04-01"}).ResolvedDate())
	assert.Empty(t, (&ExtractedEvent{}).ResolvedDate())
}
