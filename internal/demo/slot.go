package demo

import (
	"strings"
	"time"

	"github.com/nalin-pixel/cliqo-receptionist/internal/ai"
)

var slotLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15",
	"2006-01-02",

	// basic format
	"20060102T150405Z07:00",
	"20060102T150405Z0700",
	"20060102T150405",
	"20060102T1504Z07:00",
	"20060102T1504",
	"20060102",
}

// ParseSlot parses an ISO-8601 date-time. A trailing Z means +00:00, the
// date/time separator may be "T" or a space, seconds and the offset are
// optional and a bare date means midnight. Offsets may be written with or
// without the colon, and the compact basic format (20060102T150405) is
// accepted too. The offset is kept as given.
func ParseSlot(s string) (time.Time, error) {
	v := strings.ReplaceAll(s, "Z", "+00:00")
	if len(v) > 10 && v[10] == ' ' {
		v = v[:10] + "T" + v[11:]
	}
	for _, layout := range slotLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidSlot
}

// FormatSlot renders the slot wall clock the way each language expects.
func FormatSlot(t time.Time, lang ai.Lang) string {
	if lang == ai.LangFR {
		return t.Format("02/01/2006") + " à " + t.Format("15:04")
	}
	return t.Format("2006-01-02") + " at " + t.Format("15:04")
}
