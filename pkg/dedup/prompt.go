// Package dedup collapses logical duplicate events that survived
// content-hash deduplication, using LLM adjudication over precomputed
// similarity groups.
package dedup

import (
	"fmt"
	"strings"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/models"
)

const adjudicationSystemPrompt = `You are a data quality reviewer for a database of political events extracted from social media.

You will receive a group of event records that an automated similarity pass flagged as potential duplicates, plus their pairwise similarity scores. Decide which records describe the SAME real-world occurrence and should be merged, and which are genuinely distinct events that merely look similar.

Rules:
- Merge only when the records clearly describe one occurrence: same activity, same date (or one date missing), same place.
- Different dates mean different events unless one record's date is missing.
- Similar names at different cities are different events.
- When merging, pick as master_event_id the record with the richest description and most complete location.
- When in doubt, keep records separate. A wrong merge destroys data; a missed merge is harmless.

Respond with JSON only:
{
  "merge_groups": [
    {"master_event_id": "<uuid>", "duplicate_event_ids": ["<uuid>", ...], "reason": "<short>"}
  ],
  "keep_separate": ["<uuid>", ...],
  "confidence": "high" | "medium" | "low",
  "reasoning": "<short overall rationale>"
}`

const electioneeringInstruction = `IMPORTANT: this group contains electioneering events (canvassing, phone banking, poll greeting). These recur on many dates with near-identical names. NEVER merge electioneering records whose dates differ, even by one day.`

// buildGroupMessage serializes one duplicate group for adjudication.
func buildGroupMessage(group models.DuplicateGroup, events []*ent.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Potential duplicate group (%d events, max similarity %.2f):\n\n",
		len(events), group.MaxSimilarityScore)

	for _, ev := range events {
		fmt.Fprintf(&b, "Event %s\n", ev.ID)
		fmt.Fprintf(&b, "  Name: %s\n", ev.EventName)
		fmt.Fprintf(&b, "  Date: %s\n", orNone(ev.EventDate))
		fmt.Fprintf(&b, "  Location: %s | City: %s | State: %s\n",
			orNone(ev.Location), orNone(ev.City), orNone(ev.State))
		fmt.Fprintf(&b, "  Tags: %s\n", strings.Join(ev.CategoryTags, ", "))
		fmt.Fprintf(&b, "  Description: %s\n\n", truncate(ev.EventDescription, 400))
	}

	b.WriteString("Pairwise similarity scores:\n")
	for _, p := range group.Pairs {
		fmt.Fprintf(&b, "  %s <-> %s: %.2f\n", p.EventID1, p.EventID2, p.Similarity)
	}

	if hasElectioneering(events) {
		b.WriteString("\n")
		b.WriteString(electioneeringInstruction)
		b.WriteString("\n")
	}
	return b.String()
}

// hasElectioneering reports whether any event in the group carries an
// electioneering-family tag.
func hasElectioneering(events []*ent.Event) bool {
	for _, ev := range events {
		for _, tag := range ev.CategoryTags {
			lower := strings.ToLower(tag)
			if strings.Contains(lower, "electioneering") ||
				strings.Contains(lower, "canvassing") ||
				strings.Contains(lower, "phone_bank") {
				return true
			}
		}
	}
	return false
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
