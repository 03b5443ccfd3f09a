package core

import (
	"strings"
	"time"
)

// emailDateLayouts covers the Date header formats seen in the wild plus the
// ISO forms used by stored fixtures. Tried in order.
var emailDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC3339,
	"2006-01-02",
}

// ParseEmailDate parses an email Date header. The boolean reports whether the
// value was parseable; callers exclude unparseable dates from aggregates
// rather than zero-filling them.
func ParseEmailDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	// Some providers append a parenthesized zone name, e.g. "(UTC)"
	if idx := strings.Index(trimmed, " ("); idx > 0 {
		trimmed = trimmed[:idx]
	}

	for _, layout := range emailDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateKey formats a time as the UTC calendar-day key used for grouping
// and for scan-rate reset boundaries.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
