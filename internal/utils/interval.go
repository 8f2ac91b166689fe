package utils

import "time"

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share at least one instant: s1 < e2 && e1 > s2. Adjacent intervals
// (e1 == s2) do not overlap, so a rental ending exactly when the next one
// starts is not a conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// HoursBetween returns the duration from start to end in fractional hours.
func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats a calendar day the way availability calendars key their
// entries.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
