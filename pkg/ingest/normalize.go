// Package ingest converts raw scraper output files into canonical posts,
// discovers unknown actors, and writes post-to-actor link edges.
package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	json "github.com/goccy/go-json"
)

// nonUsernameChars matches everything that cannot appear in a handle.
var nonUsernameChars = regexp.MustCompile(`[^a-z0-9_.]`)

// hashtagPattern finds #tokens inside content text.
var hashtagPattern = regexp.MustCompile(`#\w+`)

const twitterHandleMax = 15

// CleanContent strips control characters from content text. Returns "" for
// blank or "nan" content, which callers treat as a discard signal.
func CleanContent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" || strings.EqualFold(cleaned, "nan") {
		return ""
	}
	return cleaned
}

// ParseTimestamp accepts ISO 8601 strings and Unix-second values, always
// returning UTC. Unparsable input yields nil; such posts are stored but
// never batched.
func ParseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05-07:00",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if ts, err := time.Parse(layout, raw); err == nil {
			utc := ts.UTC()
			return &utc
		}
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 {
		utc := time.Unix(int64(secs), 0).UTC()
		return &utc
	}
	return nil
}

// UnixTimestamp converts Unix seconds to a UTC time, nil for non-positive
// values.
func UnixTimestamp(secs int64) *time.Time {
	if secs <= 0 {
		return nil
	}
	utc := time.Unix(secs, 0).UTC()
	return &utc
}

// CleanExternalID handles calendar-style composite IDs: anything after an
// "@" is dropped.
func CleanExternalID(id string) string {
	id = strings.TrimSpace(id)
	if at := strings.IndexByte(id, '@'); at >= 0 {
		return id[:at]
	}
	return id
}

// CanonicalPlatform maps scraper platform names onto canonical ones.
func CanonicalPlatform(platform string) string {
	switch p := strings.ToLower(strings.TrimSpace(platform)); p {
	case "x":
		return "twitter"
	case "truthsocial", "truth":
		return "truth_social"
	default:
		return p
	}
}

// NormalizeHandle strips a leading @, lowercases, and removes non-username
// characters. Twitter handles are truncated to the platform's 15-char limit.
func NormalizeHandle(handle, platform string) string {
	h := strings.ToLower(strings.TrimSpace(handle))
	h = strings.TrimPrefix(h, "@")
	h = nonUsernameChars.ReplaceAllString(h, "")
	if CanonicalPlatform(platform) == "twitter" && len(h) > twitterHandleMax {
		h = h[:twitterHandleMax]
	}
	return h
}

// ParseMentionedUsers accepts a JSON-array string, a ";"-delimited string, or
// a plain handle, normalizes each entry, and deduplicates preserving
// first-seen order.
func ParseMentionedUsers(raw, platform string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}

	var parts []string
	if strings.HasPrefix(raw, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			parts = arr
		}
	}
	if parts == nil {
		parts = strings.Split(raw, ";")
	}
	return NormalizeHandles(parts, platform)
}

// NormalizeHandles normalizes a handle list, dropping empties and duplicates
// while preserving first-seen order.
func NormalizeHandles(handles []string, platform string) []string {
	seen := make(map[string]struct{}, len(handles))
	var out []string
	for _, h := range handles {
		normalized := NormalizeHandle(h, platform)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// ParseHashtags unions the explicit hashtag field (";"-separated) with
// #tokens found in content, preserving order and deduplicating. Tags keep
// their leading #.
func ParseHashtags(field, content string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}

	if field != "" && !strings.EqualFold(field, "nan") {
		for _, tag := range strings.Split(field, ";") {
			add(tag)
		}
	}
	for _, tag := range hashtagPattern.FindAllString(content, -1) {
		add(tag)
	}
	return out
}

// ParseMediaURLs accepts a JSON-array string or a single URL.
func ParseMediaURLs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			var out []string
			for _, u := range arr {
				if u = strings.TrimSpace(u); u != "" {
					out = append(out, u)
				}
			}
			return out
		}
	}
	return []string{raw}
}

// ParseCount converts engagement counter strings, tolerating floats and
// garbage ("nan" → 0).
func ParseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}
