package trimothy

import (
	"strings"
	"unicode/utf8"

	"github.com/iostrovok/trimothy/internal/text"
)

// TrimAndNormalizeString trims s and collapses each inner run of Unicode
// whitespace to a single space. When nothing but the edges has to change the
// result is a substring of s and nothing is allocated.
func TrimAndNormalizeString(s string) string {
	src := TrimString(s)

	ws := false
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if text.IsSpace(r) {
			if ws || r != ' ' {
				return rebuildString(src, i, ws)
			}
			ws = true
		} else {
			ws = false
		}
		i += size
	}

	return src
}

// rebuildString copies src[:i] verbatim and normalizes the rest. ws tells
// whether src[:i] ends with a separator.
func rebuildString(src string, i int, ws bool) string {
	var sb strings.Builder
	sb.Grow(len(src))
	sb.WriteString(src[:i])

	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if text.IsSpace(r) {
			if !ws {
				ws = true
				sb.WriteByte(' ')
			}
		} else {
			ws = false
			sb.WriteString(src[i : i+size])
		}
		i += size
	}

	return sb.String()
}

// TrimAndNormalizeBytes is TrimAndNormalizeString for ASCII whitespace in a
// byte slice. A clean input comes back as a sub-slice of b; otherwise the
// result is a new slice and b is left alone.
func TrimAndNormalizeBytes(b []byte) []byte {
	src := TrimBytes(b)

	ws := false
	for i, c := range src {
		if text.IsASCIISpace(c) {
			if ws || c != ' ' {
				return rebuildBytes(src, i, ws)
			}
			ws = true
		} else {
			ws = false
		}
	}

	return src
}

func rebuildBytes(src []byte, i int, ws bool) []byte {
	out := make([]byte, i, len(src))
	copy(out, src[:i])

	for _, c := range src[i:] {
		if text.IsASCIISpace(c) {
			if !ws {
				ws = true
				out = append(out, ' ')
			}
			continue
		}

		ws = false
		out = append(out, c)
	}

	return out
}

// TrimAndNormalizeMut trims and normalizes ASCII whitespace in *buf in place,
// keeping its capacity.
func TrimAndNormalizeMut(buf *[]byte) {
	if buf == nil {
		return
	}

	b := *buf
	w := 0
	ws := true
	for _, c := range b {
		if text.IsASCIISpace(c) {
			if ws {
				continue
			}
			ws = true
			c = ' '
		} else {
			ws = false
		}

		b[w] = c
		w++
	}

	// at most one separator can trail
	if ws && w > 0 {
		w--
	}

	*buf = b[:w]
}

// TrimAndNormalizeTextMut trims and normalizes Unicode whitespace in *buf,
// which holds UTF-8 text, in place.
func TrimAndNormalizeTextMut(buf *[]byte) {
	if buf == nil {
		return
	}

	b := *buf
	w := 0
	ws := true
	for r := 0; r < len(b); {
		c, size := utf8.DecodeRune(b[r:])
		if text.IsSpace(c) {
			if !ws {
				ws = true
				b[w] = ' '
				w++
			}
		} else {
			ws = false
			w += copy(b[w:], b[r:r+size])
		}
		r += size
	}

	if ws && w > 0 {
		w--
	}

	*buf = b[:w]
}
