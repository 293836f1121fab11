package trimothy

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tEmpty   = ""
	tHello   = "hello"
	tHelloE  = "hello\t"
	tHelloS  = "\thello"
	tHelloSE = "\n  hello \t"
)

func TestTrimBytes(t *testing.T) {
	data := map[string][3]string{
		// in: {trim, trim start, trim end}
		tEmpty:       {"", "", ""},
		tHello:       {tHello, tHello, tHello},
		tHelloS:      {tHello, tHello, tHelloS},
		tHelloE:      {tHello, tHelloE, tHello},
		tHelloSE:     {tHello, "hello \t", "\n  hello"},
		" \f\r\n\t ": {"", "", ""},
		"\vhello\v":  {"\vhello\v", "\vhello\v", "\vhello\v"},
		"  hi":       {"hi", "hi", "  hi"},
		"hi  ":       {"hi", "hi  ", "hi"},
	}

	for in, out := range data {
		assert.Equal(t, out[0], string(TrimBytes([]byte(in))), "trim %q", in)
		assert.Equal(t, out[1], string(TrimBytesStart([]byte(in))), "trim start %q", in)
		assert.Equal(t, out[2], string(TrimBytesEnd([]byte(in))), "trim end %q", in)
	}
}

func TestTrimBytesMatches(t *testing.T) {
	isH := Func(func(b byte) bool { return b == 'h' })

	assert.Equal(t, "ello\t", string(TrimBytesMatches([]byte(tHelloE), isH)))
	assert.Equal(t, "ello\t", string(TrimBytesStartMatches([]byte(tHelloE), isH)))
	assert.Equal(t, tHelloE, string(TrimBytesEndMatches([]byte(tHelloE), isH)))
	assert.Equal(t, tHello, string(TrimBytesMatches([]byte(tHelloE), Is[byte]('\t'))))

	assert.Equal(t, "hello", string(TrimBytesMatches([]byte("xxhelloxx"), Is[byte]('x'))))
	assert.Equal(t, "helloxx", string(TrimBytesStartMatches([]byte("xxhelloxx"), Is[byte]('x'))))
	assert.Equal(t, "xxhello", string(TrimBytesEndMatches([]byte("xxhelloxx"), Is[byte]('x'))))

	assert.Equal(t, "X", string(TrimBytesMatches([]byte("abXba"), SetOf[byte]('a', 'b'))))
	assert.Equal(t, "X", string(TrimBytesMatches([]byte("abXba"), AnyOf[byte]('b', 'a'))))

	// interior matches survive
	assert.Equal(t, "hexlo", string(TrimBytesMatches([]byte("xhexlox"), Is[byte]('x'))))

	// nil matcher trims nothing
	assert.Equal(t, "xx", string(TrimBytesMatches([]byte("xx"), nil)))
}

func TestTrimBytesAllMatching(t *testing.T) {
	for _, f := range []func([]byte) []byte{TrimBytes, TrimBytesStart, TrimBytesEnd} {
		out := f([]byte(" \t \n"))
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}

	x := Is[byte]('x')
	assert.Empty(t, TrimBytesMatches([]byte("xxxx"), x))
	assert.Empty(t, TrimBytesStartMatches([]byte("xxxx"), x))
	assert.Empty(t, TrimBytesEndMatches([]byte("xxxx"), x))
	assert.Empty(t, TrimBytesMatches(nil, x))
}

func TestTrimBytesSharesStorage(t *testing.T) {
	b := []byte("  hello  ")
	out := TrimBytes(b)
	require.Len(t, out, 5)

	out[0] = 'H'
	assert.Equal(t, "  Hello  ", string(b))

	// untouched input comes back as is
	clean := []byte("hello")
	assert.Same(t, &clean[0], &TrimBytes(clean)[0])
}

func TestTrimString(t *testing.T) {
	data := map[string][3]string{
		tEmpty:                       {"", "", ""},
		tHello:                       {tHello, tHello, tHello},
		tHelloSE:                     {tHello, "hello \t", "\n  hello"},
		"\u3000 hi \u2003":           {"hi", "hi \u2003", "\u3000 hi"},
		"\vhi\v":                     {"hi", "hi\v", "\vhi"},
		"\u2003\u2003":               {"", "", ""},
		"\u200bhi\u200b":             {"\u200bhi\u200b", "\u200bhi\u200b", "\u200bhi\u200b"},
		" \u00e9t\u00e9 ":            {"\u00e9t\u00e9", "\u00e9t\u00e9 ", " \u00e9t\u00e9"},
		"\x85\x85 x \xff":            {"\x85\x85 x \xff", "\x85\x85 x \xff", "\x85\x85 x \xff"},
		" \u0085x\u0085 ":            {"x", "x\u0085 ", " \u0085x"},
		"\n\r\x0C  H E L L O\t\t":    {"H E L L O", "H E L L O\t\t", "\n\r\x0C  H E L L O"},
		"\u2003\u2003HEL LO\r\u2003": {"HEL LO", "HEL LO\r\u2003", "\u2003\u2003HEL LO"},
		"\u00a0a b  \n":              {"a b", "a b  \n", "\u00a0a b"},
	}

	for in, out := range data {
		assert.Equal(t, out[0], TrimString(in), "trim %q", in)
		assert.Equal(t, out[1], TrimStringStart(in), "trim start %q", in)
		assert.Equal(t, out[2], TrimStringEnd(in), "trim end %q", in)
	}
}

func TestTrimStringMatches(t *testing.T) {
	assert.Equal(t, "X", TrimStringMatches("abXba", SetOf('a', 'b')))
	assert.Equal(t, "Xba", TrimStringStartMatches("abXba", SetOf('a', 'b')))
	assert.Equal(t, "abX", TrimStringEndMatches("abXba", SetOf('a', 'b')))

	// whole runes only: 'é' is never split into its two bytes
	assert.Equal(t, "caf", TrimStringEndMatches("café", Is('é')))
	assert.Equal(t, "café", TrimStringEndMatches("café", Is('e')))
	assert.Equal(t, "b", TrimStringMatches("éébéé", Cutset("é")))

	assert.Equal(t, "¡Hola", TrimStringEndMatches("¡Hola!!", Is('!')))
	punct := Func(unicode.IsPunct)
	assert.Equal(t, "Hola", TrimStringMatches("¡Hola!!", punct))
	assert.Equal(t, "", TrimStringMatches("!?!", punct))
	assert.Equal(t, "abc", TrimStringMatches("abc", nil))
}

func TestTrimIdempotent(t *testing.T) {
	inputs := []string{"", " ", "  a  ", "\t\nx y\r\n", "xxhixx", "\u3000a\u3000", "abXba"}
	x := Is('x')

	for _, in := range inputs {
		once := TrimString(in)
		assert.Equal(t, once, TrimString(once), "%q", in)

		onceB := TrimBytes([]byte(in))
		assert.Equal(t, string(onceB), string(TrimBytes(onceB)), "%q", in)

		onceM := TrimStringMatches(in, x)
		assert.Equal(t, onceM, TrimStringMatches(onceM, x), "%q", in)
	}
}
