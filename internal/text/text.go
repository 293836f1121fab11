package text

import (
	"unicode"
	"unicode/utf8"
)

// asciiSpace holds the bytes treated as whitespace in byte sequences:
// space, horizontal tab, line feed, form feed and carriage return.
// Vertical tab is deliberately absent.
var asciiSpace = [256]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\f': true,
	'\r': true,
}

// IsASCIISpace reports whether b is ASCII whitespace.
func IsASCIISpace(b byte) bool {
	return asciiSpace[b]
}

// IsASCIIControl reports whether b is an ASCII control code (C0 or DEL).
func IsASCIIControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// IsASCIISpaceOrControl is the byte classifier of the control-aware normalizer.
func IsASCIISpaceOrControl(b byte) bool {
	return asciiSpace[b] || IsASCIIControl(b)
}

// IsSpace reports whether r is Unicode whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsControl reports whether r is a C0 or C1 control code or DEL. Nothing
// outside the Latin-1 range is a control here.
func IsControl(r rune) bool {
	return r <= 0x9f && unicode.IsControl(r)
}

// IsSpaceOrControl is the rune classifier of the control-aware normalizer.
func IsSpaceOrControl(r rune) bool {
	return IsSpace(r) || IsControl(r)
}

// Bounds returns the [i, j) range of b left after dropping the leading
// (when start is set) and trailing (when end is set) bytes for which
// match returns true. i never exceeds j.
func Bounds(b []byte, match func(byte) bool, start, end bool) (int, int) {
	i := 0
	j := len(b)

	if start {
		for i < j && match(b[i]) {
			i++
		}
	}

	if end {
		for j > i && match(b[j-1]) {
			j--
		}
	}

	return i, j
}

// RuneBounds is Bounds for UTF-8 text: it steps over whole runes, so both
// offsets always sit on rune boundaries.
func RuneBounds(s string, match func(rune) bool, start, end bool) (int, int) {
	i := 0
	j := len(s)

	if start {
		for i < j {
			r, size := utf8.DecodeRuneInString(s[i:])
			if !match(r) {
				break
			}
			i += size
		}
	}

	if end {
		for j > i {
			r, size := utf8.DecodeLastRuneInString(s[i:j])
			if !match(r) {
				break
			}
			j -= size
		}
	}

	return i, j
}

// RuneBoundsBytes is RuneBounds over a byte slice holding UTF-8 text.
func RuneBoundsBytes(b []byte, match func(rune) bool, start, end bool) (int, int) {
	i := 0
	j := len(b)

	if start {
		for i < j {
			r, size := utf8.DecodeRune(b[i:])
			if !match(r) {
				break
			}
			i += size
		}
	}

	if end {
		for j > i {
			r, size := utf8.DecodeLastRune(b[i:j])
			if !match(r) {
				break
			}
			j -= size
		}
	}

	return i, j
}
