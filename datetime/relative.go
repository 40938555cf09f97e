package datetime

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// relMagnitudes buckets an elapsed duration. Each entry applies to
// durations below D; %d is the duration divided by DivBy.
var relMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "just now", DivBy: 1},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * day, Format: "1 day %s", DivBy: 1},
	{D: month, Format: "%d days %s", DivBy: day},
	{D: 2 * month, Format: "1 month %s", DivBy: 1},
	{D: year, Format: "%d months %s", DivBy: month},
	{D: 2 * year, Format: "1 year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: year},
}

// TimeAgo describes how long ago t was, relative to the current time.
func TimeAgo(t time.Time) string {
	return TimeAgoFrom(t, time.Now())
}

// TimeAgoFrom describes how long before now t was: "just now" under a
// minute, then minutes, hours, days, 30-day months and 365-day years.
// Times after now yield "in the future".
func TimeAgoFrom(t, now time.Time) string {
	if t.After(now) {
		return "in the future"
	}
	return humanize.CustomRelTime(t, now, "ago", "from now", relMagnitudes)
}
