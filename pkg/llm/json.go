package llm

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// DecodeJSON extracts and decodes the JSON payload from a model reply.
// Models wrap JSON in prose or markdown fences more often than not, so the
// decode tries, in order: the raw text, a fenced ```json block, the first
// balanced object, and the first balanced array.
func DecodeJSON(reply string, out any) error {
	candidates := []string{strings.TrimSpace(reply)}
	if fenced := fencedBlock(reply); fenced != "" {
		candidates = append(candidates, fenced)
	}
	if obj := balancedSpan(reply, '{', '}'); obj != "" {
		candidates = append(candidates, obj)
	}
	if arr := balancedSpan(reply, '[', ']'); arr != "" {
		candidates = append(candidates, arr)
	}

	var lastErr error
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), out); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	if lastErr == nil {
		return fmt.Errorf("no JSON payload in reply")
	}
	return fmt.Errorf("decode model reply: %w", lastErr)
}

// fencedBlock returns the contents of the first ``` fence, tolerating an
// optional language tag.
func fencedBlock(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return ""
	}
	rest := s[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "json" || firstLine == "JSON" || firstLine == "" {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// balancedSpan returns the first balanced open..close span, respecting JSON
// string quoting so braces inside strings do not end the span early.
func balancedSpan(s string, open, closing byte) string {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
