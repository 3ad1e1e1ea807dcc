package gpx

import (
	"fmt"
	"strings"
	"time"
)

// isoLayout accepts ISO-8601 timestamps with a numeric UTC offset and
// optional fractional seconds (up to nanosecond precision).
const isoLayout = "2006-01-02T15:04:05.999999999-07:00"

// ParseTime normalizes the timestamp text found in GPX time elements
// into a UTC instant. A trailing "Z" is rewritten to an explicit
// "+00:00" offset before parsing. When the first parse fails (devices
// occasionally emit fractional seconds the generic layout cannot
// digest), the fraction is dropped at the first "." and the parse is
// retried with a "+00:00" offset. A failure of both attempts is fatal
// for the record: a corrupted timestamp indicates a structurally
// suspect input, so callers must not recover per-point.
func ParseTime(raw string) (time.Time, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), "Z", "+00:00")

	t, err := time.Parse(isoLayout, normalized)
	if err == nil {
		return t.UTC(), nil
	}

	if idx := strings.Index(normalized, "."); idx >= 0 {
		normalized = normalized[:idx] + "+00:00"
	}

	t, err = time.Parse(isoLayout, normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", raw, err)
	}

	return t.UTC(), nil
}
