package op

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	for _, o := range All {
		got, err := ParseOp(string(o))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	got, err := ParseOp(" Trim-Normalize\n")
	require.NoError(t, err)
	assert.Equal(t, TrimNormalize, got)

	for _, bad := range []string{"", "trimm", "trim_start", "squash"} {
		_, err := ParseOp(bad)
		assert.True(t, errors.Is(err, ErrUnknownOp), bad)
	}
}

func TestIsMatching(t *testing.T) {
	matching := map[Op]bool{
		TrimMatches:      true,
		TrimStartMatches: true,
		TrimEndMatches:   true,
	}

	for _, o := range All {
		assert.Equal(t, matching[o], o.IsMatching(), o.String())
	}
}

func TestApplyBytes(t *testing.T) {
	data := map[string]struct {
		req  Request
		in   string
		want string
	}{
		"trim":               {Request{Op: Trim}, " \t ab c\r\n", "ab c"},
		"trim-start":         {Request{Op: TrimStart}, "  ab  ", "ab  "},
		"trim-end":           {Request{Op: TrimEnd}, "  ab  ", "  ab"},
		"trim-vt":            {Request{Op: Trim}, "\vab\v", "\vab\v"},
		"trim-matches":       {Request{Op: TrimMatches, Cutset: "-="}, "=-ab-=", "ab"},
		"trim-start-matches": {Request{Op: TrimStartMatches, Cutset: "-"}, "--ab--", "ab--"},
		"trim-end-matches":   {Request{Op: TrimEndMatches, Cutset: "-"}, "--ab--", "--ab"},
		"normalize":          {Request{Op: Normalize}, "  a \t b\n", "a b"},
		"normalize-control":  {Request{Op: NormalizeControl}, "\x1b[1ma\x00\x01b", "[1ma b"},
		"trim-normalize":     {Request{Op: TrimNormalize}, " a  b ", "a b"},
		"empty":              {Request{Op: TrimNormalize}, "", ""},
	}

	for name, d := range data {
		got, err := Apply(d.req, []byte(d.in))
		require.NoError(t, err, name)
		assert.Equal(t, d.want, string(got), name)
	}
}

func TestApplyText(t *testing.T) {
	data := map[string]struct {
		req  Request
		in   string
		want string
	}{
		"trim":              {Request{Op: Trim, Text: true}, "\u3000ab\u00a0", "ab"},
		"trim-start":        {Request{Op: TrimStart, Text: true}, "\u2003ab\u2003", "ab\u2003"},
		"trim-end":          {Request{Op: TrimEnd, Text: true}, "\u2003ab\u2003", "\u2003ab"},
		"trim-matches":      {Request{Op: TrimMatches, Text: true, Cutset: "«»"}, "«ab»", "ab"},
		"normalize":         {Request{Op: Normalize, Text: true}, "a\u2028\u2029b", "a b"},
		"normalize-control": {Request{Op: NormalizeControl, Text: true}, "a\u0085\u009bb", "a b"},
		"trim-normalize":    {Request{Op: TrimNormalize, Text: true}, "\u3000a\u00a0 b ", "a b"},
	}

	for name, d := range data {
		got, err := Apply(d.req, []byte(d.in))
		require.NoError(t, err, name)
		assert.Equal(t, d.want, string(got), name)
	}
}

func TestApplyRejects(t *testing.T) {
	_, err := Apply(Request{Op: "squash"}, []byte("x"))
	assert.True(t, errors.Is(err, ErrUnknownOp))

	for _, o := range []Op{TrimMatches, TrimStartMatches, TrimEndMatches} {
		_, err := Apply(Request{Op: o}, []byte("x"))
		assert.True(t, errors.Is(err, ErrEmptyCutset), o.String())
	}

	_, err = Apply(Request{Op: Trim, Cutset: "ignored"}, []byte("x"))
	assert.NoError(t, err)
}

func TestApplyCanonicalName(t *testing.T) {
	got, err := Apply(Request{Op: "TRIM-START"}, []byte("  x  "))
	require.NoError(t, err)
	assert.Equal(t, "x  ", string(got))
}
