package feed

import (
	"log/slog"
	"time"

	"github.com/araddon/dateparse"
)

// ResolveTime produces the canonical UTC publication instant for one
// entry, or reports that the entry has no usable date.
//
// Priority: the parser's pre-parsed time wins; otherwise the raw
// "published" then "updated" strings are attempted in that order. The
// first field that parses decides. A field that fails to parse is logged
// at debug level and skipped; it never aborts the remaining fields or
// the remaining entries.
func ResolveTime(e Entry) (time.Time, bool) {
	if t, ok := e.GetTime(); ok {
		return civilUTC(t), true
	}

	for _, field := range []string{FieldPublished, FieldUpdated} {
		raw, ok := e.GetString(field)
		if !ok || raw == "" {
			continue
		}
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			slog.Debug("Date field did not parse", "field", field, "value", raw, "error", err)
			continue
		}
		return civilUTC(t), true
	}

	return time.Time{}, false
}

// civilUTC rebuilds the instant from its six civil components tagged
// UTC, dropping sub-second precision. Feed timestamps are already
// UTC-normalized by the parser; this keeps equal wall-clock entries
// comparable regardless of their source encoding.
func civilUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), 0, time.UTC)
}
