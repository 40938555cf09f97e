package datetime

import (
	"strconv"
	"strings"
	"time"

	"github.com/hako/durafmt"
)

// FormatDuration renders a number of seconds as "1h 1m 1s", leaving out zero
// parts. Hours do not roll over into days. Zero renders as "0s".
func FormatDuration(seconds uint64) string {
	if seconds == 0 {
		return "0s"
	}

	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, strconv.FormatUint(hours, 10)+"h")
	}
	if minutes > 0 {
		parts = append(parts, strconv.FormatUint(minutes, 10)+"m")
	}
	if secs > 0 {
		parts = append(parts, strconv.FormatUint(secs, 10)+"s")
	}
	return strings.Join(parts, " ")
}

// FormatDurationLong renders a number of seconds in words, for example
// "1 day 1 hour 1 minute 1 second".
func FormatDurationLong(seconds uint64) string {
	if seconds == 0 {
		return "0 seconds"
	}
	return durafmt.Parse(time.Duration(seconds) * time.Second).String()
}
