package util

import (
	"strconv"
	"time"
)

// DateLayout is the calendar-day format used in assembled records.
const DateLayout = "2006-01-02"

// FormatDate renders an epoch-seconds timestamp as a UTC calendar date.
// Daily bars arrive with UTC-anchored timestamps, so the whole history
// uses one consistent calendar.
func FormatDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(DateLayout)
}

// ParseTime tries RFC3339 and unix seconds. Returns (t, true) if either worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}
