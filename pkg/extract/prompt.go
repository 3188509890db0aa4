package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/civiclens/civiclens/ent"
)

// systemPrompt carries the static extraction rules: what counts as an event,
// how to score confidence, mandatory tag combinations, slug conventions, and
// the output schema.
const systemPrompt = `You are an analyst extracting real-world political events from social media posts.

ACTIVITY GATE - only emit an event when the posts describe a concrete real-world activity:
- canvassing, door-knocking, or literature drops (HIGHEST priority - always extract these)
- rallies, protests, marches, town halls
- meetings, conferences, trainings, summits
- electioneering: campaign launches, endorsements, fundraisers, debates
- lobbying visits, testimony, petition deliveries
Do NOT emit events for: pure commentary, news sharing, fundraising links with no
gathering, or anniversary/remembrance posts with no activity.

CONFIDENCE SCORE rubric (0.0 - 1.0):
- 0.9+: explicit activity with date and place stated in the post
- 0.7-0.9: clear activity, partial date or place inference
- 0.5-0.7: activity implied by strong context
- below 0.5: speculative; avoid emitting unless corroborated by multiple posts

CATEGORY TAGS:
- Always include at least one activity tag (Canvassing, Rally, Meeting, Conference,
  Electioneering, Lobbying, Training, Protest).
- Electioneering events MUST also carry an Election/Primary/GeneralElection dynamic slug.
- School-related events MUST carry a School:{STATE}_{Name} slug.
- Church events MUST carry Church:{Name}_{City}_{STATE}.
- Ballot measure events MUST carry BallotMeasure:{STATE}_Prop{N}_{Topic}_{Year}.
- Conferences carry Conference:{Name}_{Year}_{Location}.
- Lobbying events carry LobbyingTopic:{Topic}.
Use search_dynamic_slugs before inventing a new slug; reuse an existing slug when one
matches. New slug identifiers are lowercase with underscores.

ACTOR RESEARCH: use search_actors to resolve author and mentioned handles before
filling Participants. Use link_posts_to_existing_event when posts clearly describe an
event you have already emitted or that already exists.

DATES: use YYYY-MM-DD. When only the month is known use YYYY-MM-01. When the date is
genuinely unknown leave EventDate empty.

OUTPUT: after any tool use, reply with a single JSON object inside a fenced json code
block, shaped exactly like:

` + "```json" + `
{
  "events": [
    {
      "EventName": "Mesa Canvass Launch",
      "EventDate": "2025-03-15",
      "EventDescription": "Door-knocking kickoff ...",
      "CategoryTags": ["Canvassing", "Election:AZ_Mayor_2025"],
      "Location": "Pioneer Park",
      "City": "Mesa",
      "State": "AZ",
      "Participants": "jane_doe, az_action",
      "ConfidenceScore": 0.92,
      "Justification": "Post states date, place, and activity.",
      "SourceIDs": ["<post UUID>"],
      "InstagramHandles": ["az_action"],
      "TwitterHandles": ["jane_doe"]
    }
  ]
}
` + "```" + `

SourceIDs MUST contain the post UUIDs exactly as given in each post header. Emit
{"events": []} when no post passes the activity gate.`

// SystemPrompt returns the static rules message.
func SystemPrompt() string {
	return systemPrompt
}

// SerializePost renders one post for the prompt. The UUID line carries the
// value the model must echo in SourceIDs.
func SerializePost(p *ent.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- POST UUID: %s ---\n", p.ID)
	fmt.Fprintf(&b, "external_id: %s\n", p.ExternalPostID)
	fmt.Fprintf(&b, "platform: %s\n", p.Platform)
	fmt.Fprintf(&b, "author: @%s\n", p.AuthorHandle)
	if p.Timestamp != nil {
		fmt.Fprintf(&b, "timestamp: %s\n", p.Timestamp.UTC().Format(time.RFC3339))
	}
	if p.LocationText != "" {
		fmt.Fprintf(&b, "location: %s\n", p.LocationText)
	}
	if len(p.MentionedHandles) > 0 {
		fmt.Fprintf(&b, "mentions: %s\n", strings.Join(p.MentionedHandles, ", "))
	}
	if len(p.Hashtags) > 0 {
		fmt.Fprintf(&b, "hashtags: %s\n", strings.Join(p.Hashtags, " "))
	}
	fmt.Fprintf(&b, "content: %s\n", p.ContentText)
	return b.String()
}

// SerializeBatch renders every post plus the closing directive.
func SerializeBatch(posts []*ent.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following %d posts.\n\n", len(posts))
	for _, p := range posts {
		b.WriteString(SerializePost(p))
		b.WriteString("\n")
	}
	b.WriteString("Call a tool if you need actor or slug information; otherwise produce the final JSON now.")
	return b.String()
}
