package extract

import (
	"fmt"
	"strings"

	"github.com/civiclens/civiclens/pkg/models"
)

// ErrMissingSourceIDs fails an entire batch: when the model omits source IDs
// on any event, all of its output is suspect.
type ErrMissingSourceIDs struct {
	EventName string
}

func (e *ErrMissingSourceIDs) Error() string {
	return fmt.Sprintf("event %q has no resolvable source IDs", e.EventName)
}

// NormalizeEventDate coerces a day of "-00" to "-01" (month-only dates) and
// maps empty or placeholder values to "".
func NormalizeEventDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" || strings.EqualFold(date, "unknown") || strings.EqualFold(date, "null") {
		return ""
	}
	if strings.HasSuffix(date, "-00") {
		return date[:len(date)-3] + "-01"
	}
	return date
}

// ValidateEvent checks one decoded event against the output contract.
// postIDs is the batch's UUID set; SourceIDs must all resolve into it (the
// engine pre-translates external IDs before calling this). Returns a reason
// string for discards; an empty reason means the event is valid.
func ValidateEvent(ev *models.ExtractedEvent, postIDs map[string]struct{}) (string, error) {
	if len(ev.SourceIDs) == 0 {
		return "", &ErrMissingSourceIDs{EventName: ev.EventName}
	}
	for _, id := range ev.SourceIDs {
		if _, ok := postIDs[id]; !ok {
			return "", &ErrMissingSourceIDs{EventName: ev.EventName}
		}
	}
	if strings.TrimSpace(ev.EventName) == "" {
		return "missing event name", nil
	}
	if strings.TrimSpace(ev.EventDescription) == "" {
		return "missing event description", nil
	}
	if len(ev.CategoryTags) == 0 {
		return "missing category tags", nil
	}
	if ev.ConfidenceScore < 0 || ev.ConfidenceScore > 1 {
		return fmt.Sprintf("confidence score %v out of range", ev.ConfidenceScore), nil
	}
	return "", nil
}
