package datetime

import "time"

const secondsPerDay = int64(day / time.Second)

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysBetween returns the number of whole days from a to b, negative when b
// is before a. Partial days are truncated toward zero.
func DaysBetween(a, b time.Time) int {
	// time.Duration saturates after about 292 years, so count in seconds.
	secs := b.Unix() - a.Unix()
	nanos := b.Nanosecond() - a.Nanosecond()
	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}
	return int(secs / secondsPerDay)
}

// AddDays moves t by n calendar days, keeping its wall-clock time. Negative
// n moves backwards.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// StartOfWeek returns midnight on the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-sinceMonday, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns 23:59:59 on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location()).Add(-time.Second)
}
