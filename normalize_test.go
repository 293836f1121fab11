package trimothy

import (
	"slices"
	"strings"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var normalData = map[string]string{
	"":                            "",
	"  ":                          "",
	"\t\n  ":                      "",
	"  a   b\tc  ":                "a b c",
	" Hello   World!\n":           "Hello World!",
	"\n\r\x0C  H E L L O\t\t":     "H E L L O",
	"H\tE  L\n\rL\x0CO ":          "H E L L O",
	"H  I":                        "H I",
	"clean input":                 "clean input",
	"\vv\v":                       "\vv\v",
	" été  à ":                    "été à",
	"x\x00y":                      "x\x00y",
	"a\r\n\r\nb\r\n":              "a b",
	"one two  three   four    \t": "one two three four",
}

func TestNormalizedWhitespace(t *testing.T) {
	for in, want := range normalData {
		got := CollectBytes(NormalizedWhitespace([]byte(in)))
		if diff := cmp.Diff(want, string(got)); diff != "" {
			t.Errorf("bytes %q (-want +got):\n%s", in, diff)
		}

		gotS := CollectString(NormalizedWhitespaceString(in))
		if in == "\vv\v" {
			// \v is whitespace for runes but not for ASCII bytes
			want = "v"
		}
		if diff := cmp.Diff(want, gotS); diff != "" {
			t.Errorf("string %q (-want +got):\n%s", in, diff)
		}
	}
}

func TestNormalizedWhitespaceUnicode(t *testing.T) {
	data := map[string]string{
		"\u2003":                                  "",
		"\u2003\u2003HEL LO\r\u2003":              "HEL LO",
		"H\u2003I":                                "H I",
		"\u2003\u2003HEL\u2003 LO\r\u2003":        "HEL LO",
		" H\r\nE\u2001L  \u3000\u205fL\tO  ":      "H E L L O",
		"\u200bzero\u200bwidth\u200b":             "\u200bzero\u200bwidth\u200b",
		"\u00a0non\u00a0breaking \u00a0x\n\u00a0": "non breaking x",
	}

	for in, want := range data {
		got := CollectString(NormalizedWhitespaceString(in))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", in, diff)
		}
	}
}

func TestNormalizedWhitespaceSandwich(t *testing.T) {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(']')

	assert.Equal(t, "[ ]", CollectString(NormalizedWhitespaceString(sb.String())))
	assert.Equal(t, "[ ]", TrimAndNormalizeString(sb.String()))
}

func TestNormalizedControlAndWhitespace(t *testing.T) {
	bytesData := map[string]string{
		"a\x00\x01b\x7f":   "a b",
		"\x1b[0m hi\x07":   "[0m hi",
		"\x00\x00":         "",
		"tab\tand\vvt":     "tab and vt",
		"  \x85 high \xff": "\x85 high \xff",
	}

	for in, want := range bytesData {
		got := CollectBytes(NormalizedControlAndWhitespace([]byte(in)))
		assert.Equal(t, want, string(got), "bytes %q", in)
	}

	stringData := map[string]string{
		"a\x00\x01b\x7f":         "a b",
		"a\u0085\u009fb":         "a b",
		"\u009f\u0080x\u0090":    "x",
		"bidi\u200emark":         "bidi\u200emark",
		"\x1b[1mbold\x1b[0m end": "[1mbold [0m end",
	}

	for in, want := range stringData {
		got := CollectString(NormalizedControlAndWhitespaceString(in))
		assert.Equal(t, want, got, "string %q", in)
	}

	// without the control variant C1 codes other than NEL are kept
	assert.Equal(t, "a \u009fb", CollectString(NormalizedWhitespaceString("a\u0085\u009fb")))
}

func TestNormalizerInvariants(t *testing.T) {
	inputs := []string{
		"", " ", "a", " a ", "a  b", "\ta\tb\t", "  x\n\ny\r\rz  ",
		"\u3000\u3000a\u3000\u3000b", "no-spaces", "a b c d",
	}

	for _, in := range inputs {
		out := CollectString(NormalizedWhitespaceString(in))

		assert.False(t, strings.HasPrefix(out, " "), "%q starts with separator", in)
		assert.False(t, strings.HasSuffix(out, " "), "%q ends with separator", in)
		assert.NotContains(t, out, "  ", "%q has two separators", in)

		again := CollectString(NormalizedWhitespaceString(out))
		assert.Equal(t, out, again, "%q is idempotent", in)

		outB := CollectBytes(NormalizedWhitespace([]byte(in)))
		assert.Equal(t, string(outB), string(CollectBytes(NormalizedWhitespace(outB))), "%q bytes idempotent", in)
	}

	// clean input round-trips untouched
	for _, in := range []string{"a", "a b", "Hello World!", "x y z"} {
		assert.Equal(t, in, CollectString(NormalizedWhitespaceString(in)))
		assert.Equal(t, in, string(CollectBytes(NormalizedWhitespace([]byte(in)))))
	}
}

type countingSource struct {
	src   Source[byte]
	pulls int
}

func (c *countingSource) Next() (byte, bool) {
	c.pulls++
	return c.src.Next()
}

func TestNormalizerIsLazy(t *testing.T) {
	src := &countingSource{src: BytesSource([]byte("  a  b "))}
	n := NormalizeBytes(src)
	assert.Equal(t, 0, src.pulls, "nothing is read up front")
	assert.Equal(t, "leading-skip", n.state.String())

	v, ok := n.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), v)
	assert.Equal(t, 3, src.pulls)
	assert.Equal(t, stateInRun, n.state)

	// the separator needs exactly one element of look-ahead
	v, ok = n.Next()
	require.True(t, ok)
	assert.Equal(t, byte(' '), v)
	assert.Equal(t, 6, src.pulls)
	assert.Equal(t, stateEmitting, n.state)

	v, ok = n.Next()
	require.True(t, ok)
	assert.Equal(t, byte('b'), v)
	assert.Equal(t, 6, src.pulls)

	// trailing whitespace is swallowed
	_, ok = n.Next()
	assert.False(t, ok)
	assert.Equal(t, 8, src.pulls)
	assert.Equal(t, "done", n.state.String())

	// not restartable
	_, ok = n.Next()
	assert.False(t, ok)
	assert.Equal(t, 8, src.pulls)
}

func TestNormalizerNilSource(t *testing.T) {
	_, ok := NormalizeBytes(nil).Next()
	assert.False(t, ok)

	_, ok = NormalizeRunes(nil).Next()
	assert.False(t, ok)

	assert.Equal(t, "unknown", state(42).String())
}

func TestNormalizerSeqSource(t *testing.T) {
	defer goleak.VerifyNone(t)

	seq := slices.Values([]rune(" H E  L\r\nL O\n"))
	assert.Equal(t, "H E L L O", CollectString(NormalizeRunes(SeqSource(seq))))

	bseq := slices.Values([]byte(" H E  L\r\nL O\n"))
	assert.Equal(t, "H E L L O", string(CollectBytes(NormalizeBytes(SeqSource(bseq)))))

	// stopping early releases the iterator
	n := NormalizeRunesControl(SeqSource(slices.Values([]rune("a b c d"))))
	for r := range n.All() {
		if r == 'b' {
			break
		}
	}

	_, ok := n.Next()
	assert.False(t, ok)

	n = NormalizeRunes(SeqSource(slices.Values([]rune("x y"))))
	v, ok := n.Next()
	require.True(t, ok)
	assert.Equal(t, 'x', v)
	n.Close()
	n.Close()
}
