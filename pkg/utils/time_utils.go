package utils

import "time"

// Trip documents store full timestamps but the planner works in whole days.
// TruncateToDay drops the clock portion in UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayCount is the inclusive number of days between start and end.
func DayCount(start, end time.Time) int {
	s, e := TruncateToDay(start), TruncateToDay(end)
	return int(e.Sub(s).Hours()/24) + 1
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
