package trimothy

import (
	"github.com/iostrovok/trimothy/internal/text"
)

// TrimBytes returns b without leading and trailing ASCII whitespace. The
// result shares b's backing array.
func TrimBytes(b []byte) []byte {
	return trimBytes(b, text.IsASCIISpace, true, true)
}

// TrimBytesStart returns b without leading ASCII whitespace.
func TrimBytesStart(b []byte) []byte {
	return trimBytes(b, text.IsASCIISpace, true, false)
}

// TrimBytesEnd returns b without trailing ASCII whitespace.
func TrimBytesEnd(b []byte) []byte {
	return trimBytes(b, text.IsASCIISpace, false, true)
}

// TrimBytesMatches returns b without the leading and trailing bytes m
// matches. When every byte matches the result is empty.
func TrimBytesMatches(b []byte, m Matcher[byte]) []byte {
	return trimBytes(b, matchFunc(m), true, true)
}

// TrimBytesStartMatches returns b without the leading bytes m matches.
func TrimBytesStartMatches(b []byte, m Matcher[byte]) []byte {
	return trimBytes(b, matchFunc(m), true, false)
}

// TrimBytesEndMatches returns b without the trailing bytes m matches.
func TrimBytesEndMatches(b []byte, m Matcher[byte]) []byte {
	return trimBytes(b, matchFunc(m), false, true)
}

func trimBytes(b []byte, match func(byte) bool, start, end bool) []byte {
	i, j := text.Bounds(b, match, start, end)
	if i > 0 || j != len(b) {
		return b[i:j]
	}

	return b
}
