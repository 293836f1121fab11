package trimothy

import (
	"github.com/iostrovok/trimothy/internal/text"
)

// The *Mut functions trim a caller-owned buffer in place: the kept range is
// moved to the front with a single copy and the slice is shortened. The
// capacity is left untouched. The caller must hold the only reference to the
// buffer for the duration of the call; use ByteBuffer or TextBuffer when that
// cannot be guaranteed.

// TrimMut drops leading and trailing ASCII whitespace from *buf.
func TrimMut(buf *[]byte) {
	trimMut(buf, text.IsASCIISpace, true, true)
}

// TrimStartMut drops leading ASCII whitespace from *buf.
func TrimStartMut(buf *[]byte) {
	trimMut(buf, text.IsASCIISpace, true, false)
}

// TrimEndMut drops trailing ASCII whitespace from *buf.
func TrimEndMut(buf *[]byte) {
	trimMut(buf, text.IsASCIISpace, false, true)
}

// TrimMatchesMut drops the leading and trailing bytes m matches from *buf.
func TrimMatchesMut(buf *[]byte, m Matcher[byte]) {
	trimMut(buf, matchFunc(m), true, true)
}

// TrimStartMatchesMut drops the leading bytes m matches from *buf.
func TrimStartMatchesMut(buf *[]byte, m Matcher[byte]) {
	trimMut(buf, matchFunc(m), true, false)
}

// TrimEndMatchesMut drops the trailing bytes m matches from *buf.
func TrimEndMatchesMut(buf *[]byte, m Matcher[byte]) {
	trimMut(buf, matchFunc(m), false, true)
}

// TrimTextMut drops leading and trailing Unicode whitespace from *buf, which
// holds UTF-8 text.
func TrimTextMut(buf *[]byte) {
	trimTextMut(buf, text.IsSpace, true, true)
}

// TrimTextStartMut drops leading Unicode whitespace from *buf.
func TrimTextStartMut(buf *[]byte) {
	trimTextMut(buf, text.IsSpace, true, false)
}

// TrimTextEndMut drops trailing Unicode whitespace from *buf.
func TrimTextEndMut(buf *[]byte) {
	trimTextMut(buf, text.IsSpace, false, true)
}

// TrimTextMatchesMut drops the leading and trailing runes m matches from
// *buf, which holds UTF-8 text.
func TrimTextMatchesMut(buf *[]byte, m Matcher[rune]) {
	trimTextMut(buf, matchFunc(m), true, true)
}

// TrimTextStartMatchesMut drops the leading runes m matches from *buf.
func TrimTextStartMatchesMut(buf *[]byte, m Matcher[rune]) {
	trimTextMut(buf, matchFunc(m), true, false)
}

// TrimTextEndMatchesMut drops the trailing runes m matches from *buf.
func TrimTextEndMatchesMut(buf *[]byte, m Matcher[rune]) {
	trimTextMut(buf, matchFunc(m), false, true)
}

func trimMut(buf *[]byte, match func(byte) bool, start, end bool) {
	if buf == nil {
		return
	}

	i, j := text.Bounds(*buf, match, start, end)
	shift(buf, i, j)
}

func trimTextMut(buf *[]byte, match func(rune) bool, start, end bool) {
	if buf == nil {
		return
	}

	i, j := text.RuneBoundsBytes(*buf, match, start, end)
	shift(buf, i, j)
}

// shift keeps (*buf)[i:j] at offset 0.
func shift(buf *[]byte, i, j int) {
	b := *buf
	if i == 0 && j == len(b) {
		return
	}

	if i > 0 {
		copy(b, b[i:j])
	}

	*buf = b[:j-i]
}
