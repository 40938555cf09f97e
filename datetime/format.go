package datetime

import (
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/kbukum/reddish/errors"
)

const (
	humanPattern = "%B %d, %Y at %l:%M %p"
	isoLayout    = "2006-01-02T15:04:05Z"
)

// parseLayouts are tried in order after RFC 3339. Day-first layouts come
// before month-first ones.
var parseLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2/1/2006",
	"1/2/2006",
	"2-1-2006",
	"2006/1/2",
}

// ParseDate parses s as RFC 3339 or one of the common layouts listed in
// parseLayouts. Results are in UTC. It returns false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate formats t with a strftime pattern such as "%Y-%m-%d %H:%M:%S".
func FormatDate(t time.Time, pattern string) (string, error) {
	s, err := strftime.Format(pattern, t)
	if err != nil {
		return "", errors.InvalidFormat("pattern", "strftime pattern").WithCause(err).WithDetail("pattern", pattern)
	}
	return s, nil
}

// FormatDateHuman formats t like "December 25, 2023 at  3:30 PM".
func FormatDateHuman(t time.Time) string {
	s, _ := FormatDate(t, humanPattern)
	return s
}

// FormatDateISO formats t in UTC as "2023-12-25T15:30:45Z".
func FormatDateISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
