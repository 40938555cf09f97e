package str

import (
	"strings"
	"unicode/utf8"
)

// Pad adds n spaces to both ends of s.
func Pad(s string, n int) string {
	return PadWith(s, n, ' ')
}

// PadWith adds n copies of c to both ends of s. n <= 0 returns s unchanged.
func PadWith(s string, n int, c rune) string {
	if n <= 0 {
		return s
	}
	fill := strings.Repeat(string(c), n)
	return fill + s + fill
}

// PadEnd appends n spaces to s.
func PadEnd(s string, n int) string {
	return PadEndWith(s, n, ' ')
}

// PadEndWith appends n copies of c to s. n <= 0 returns s unchanged.
func PadEndWith(s string, n int, c rune) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(c), n)
}

// Truncate removes the last n runes of s. It returns "" when n is at least
// the rune length of s.
//
//	str.Truncate("Foo", 1) // "Fo"
//	str.Truncate("Foo", 4) // ""
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := utf8.RuneCountInString(s)
	if n >= count {
		return ""
	}

	keep := count - n
	for i := range s {
		if keep == 0 {
			return s[:i]
		}
		keep--
	}
	return s
}
