// Package datetime provides duration formatting, relative time strings,
// calendar arithmetic, and date parsing and formatting.
//
// Calendar helpers keep the location of their input. Parsed dates without
// an explicit offset are interpreted as UTC. FormatDate takes strftime
// patterns:
//
//	s, err := datetime.FormatDate(t, "%B %d, %Y") // "December 25, 2023"
package datetime
