// Package pipeline implements the orchestrator daemon: it claims queued
// runs, executes the fixed stage sequence as child processes, and records
// resumable per-step progress.
package pipeline

// LogRing keeps the last N lines written to it.
type LogRing struct {
	lines []string
	limit int
	next  int
	full  bool
}

// NewLogRing builds a ring holding at most limit lines; limit < 1 becomes 1.
func NewLogRing(limit int) *LogRing {
	if limit < 1 {
		limit = 1
	}
	return &LogRing{
		lines: make([]string, limit),
		limit: limit,
	}
}

// Append adds one line, evicting the oldest when full.
func (r *LogRing) Append(line string) {
	r.lines[r.next] = line
	r.next = (r.next + 1) % r.limit
	if r.next == 0 {
		r.full = true
	}
}

// Tail returns the retained lines, oldest first.
func (r *LogRing) Tail() []string {
	if !r.full {
		return append([]string(nil), r.lines[:r.next]...)
	}
	out := make([]string, 0, r.limit)
	out = append(out, r.lines[r.next:]...)
	out = append(out, r.lines[:r.next]...)
	return out
}

// Len reports how many lines are retained.
func (r *LogRing) Len() int {
	if r.full {
		return r.limit
	}
	return r.next
}
