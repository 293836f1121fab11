package trimothy

import (
	"github.com/iostrovok/trimothy/internal/text"
)

// TrimString returns s without leading and trailing Unicode whitespace.
func TrimString(s string) string {
	return trimString(s, text.IsSpace, true, true)
}

// TrimStringStart returns s without leading Unicode whitespace.
func TrimStringStart(s string) string {
	return trimString(s, text.IsSpace, true, false)
}

// TrimStringEnd returns s without trailing Unicode whitespace.
func TrimStringEnd(s string) string {
	return trimString(s, text.IsSpace, false, true)
}

// TrimStringMatches returns s without the leading and trailing runes m
// matches. Runes are compared whole; the result always starts and ends on a
// rune boundary.
func TrimStringMatches(s string, m Matcher[rune]) string {
	return trimString(s, matchFunc(m), true, true)
}

// TrimStringStartMatches returns s without the leading runes m matches.
func TrimStringStartMatches(s string, m Matcher[rune]) string {
	return trimString(s, matchFunc(m), true, false)
}

// TrimStringEndMatches returns s without the trailing runes m matches.
func TrimStringEndMatches(s string, m Matcher[rune]) string {
	return trimString(s, matchFunc(m), false, true)
}

func trimString(s string, match func(rune) bool, start, end bool) string {
	i, j := text.RuneBounds(s, match, start, end)
	if i > 0 || j != len(s) {
		return s[i:j]
	}

	return s
}
