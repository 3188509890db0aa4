package extract

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ContentHash fingerprints an event's canonical identity: SHA-256 over the
// pipe-joined normalized tuple. Source post IDs are sorted first so the same
// post set always produces the same hash.
func ContentHash(name, date, location, city, state string, sourcePostIDs []string) string {
	sorted := make([]string, len(sourcePostIDs))
	copy(sorted, sourcePostIDs)
	sort.Strings(sorted)

	tuple := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(name)),
		strings.TrimSpace(date),
		strings.ToLower(strings.TrimSpace(location)),
		strings.ToLower(strings.TrimSpace(city)),
		strings.ToUpper(strings.TrimSpace(state)),
		strings.Join(sorted, "|"),
	}, "|")

	sum := sha256.Sum256([]byte(tuple))
	return hex.EncodeToString(sum[:])
}

// SortedPostIDs returns a sorted copy so the persisted source_post_ids array
// matches the hash input ordering.
func SortedPostIDs(ids []string) []string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return sorted
}
