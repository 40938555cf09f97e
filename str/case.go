package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CamelCase converts a snake_case string to upper camel case. An underscore
// marks the start of a new word; the first rune of every word is uppercased
// and the underscores are dropped. Runes inside a word keep their case.
func CamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upperNext := true
	for _, r := range s {
		switch {
		case r == '_':
			upperNext = true
		case upperNext:
			b.WriteRune(asciiUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Capitalize uppercases the first rune of s and lowercases the rest. The
// first rune uses the single-rune mapping, so "ß" and ligatures such as "ﬁ"
// are left alone rather than expanded.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	// Casers carry state; never share them across calls.
	return string(unicode.ToUpper(r)) + cases.Lower(language.Und).String(s[size:])
}

// TitleCase uppercases the first rune of s and lowercases the rest. Only the
// first word is titled: "FOO BAR" becomes "Foo bar".
func TitleCase(s string) string {
	return Capitalize(s)
}

// KebabCase ASCII-lowercases s and joins its words with '-'. Any rune that is
// not a letter or digit separates words, as does a lower-to-upper case
// transition. Leading, trailing and repeated separators are collapsed. Non-ASCII
// letters keep their case.
func KebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	lastLower := false
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			pendingSep = true
			continue
		}
		if pendingSep {
			if b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
		} else if lastLower && unicode.IsUpper(r) && b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteRune(asciiLower(r))
		lastLower = unicode.IsLower(r)
	}
	return b.String()
}

// SnakeCase lowercases ASCII letters and inserts '_' wherever an uppercase
// ASCII letter follows a lowercase letter. Existing separators are kept.
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	lastLower := false
	for _, r := range s {
		if lastLower && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(asciiLower(r))
		lastLower = unicode.IsLower(r)
	}
	return b.String()
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
