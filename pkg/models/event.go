package models

// ExtractedEvent is one structured event candidate decoded from the LLM's
// final JSON message. Field names follow the wire schema; Date is a legacy
// alias for EventDate accepted on decode.
type ExtractedEvent struct {
	EventName        string   `json:"EventName"`
	EventDate        string   `json:"EventDate,omitempty"`
	Date             string   `json:"Date,omitempty"`
	EventDescription string   `json:"EventDescription"`
	CategoryTags     []string `json:"CategoryTags"`
	Location         string   `json:"Location,omitempty"`
	City             string   `json:"City,omitempty"`
	State            string   `json:"State,omitempty"`
	Participants     string   `json:"Participants,omitempty"`
	ConfidenceScore  float64  `json:"ConfidenceScore"`
	Justification    string   `json:"Justification,omitempty"`
	SourceIDs        []string `json:"SourceIDs"`
	InstagramHandles []string `json:"InstagramHandles,omitempty"`
	TwitterHandles   []string `json:"TwitterHandles,omitempty"`
}

// ResolvedDate returns EventDate, falling back to the legacy Date alias.
func (e *ExtractedEvent) ResolvedDate() string {
	if e.EventDate != "" {
		return e.EventDate
	}
	return e.Date
}

// ExtractionResponse is the envelope of the LLM's final JSON message.
type ExtractionResponse struct {
	Events []ExtractedEvent `json:"events"`
}
