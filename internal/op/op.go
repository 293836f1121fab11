package op

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/iostrovok/trimothy"
)

type Op string

const (
	Trim             Op = "trim"
	TrimStart        Op = "trim-start"
	TrimEnd          Op = "trim-end"
	TrimMatches      Op = "trim-matches"
	TrimStartMatches Op = "trim-start-matches"
	TrimEndMatches   Op = "trim-end-matches"
	Normalize        Op = "normalize"
	NormalizeControl Op = "normalize-control"
	TrimNormalize    Op = "trim-normalize"
)

// All lists every operation in a stable order.
var All = []Op{
	Trim,
	TrimStart,
	TrimEnd,
	TrimMatches,
	TrimStartMatches,
	TrimEndMatches,
	Normalize,
	NormalizeControl,
	TrimNormalize,
}

var (
	ErrUnknownOp   = errors.New("unknown operation")
	ErrEmptyCutset = errors.New("matching operation needs a non-empty cutset")
)

func ParseOp(s string) (Op, error) {
	o := Op(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if o == known {
			return o, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownOp, "%q", s)
}

// IsMatching reports whether o takes a cutset.
func (o Op) IsMatching() bool {
	switch o {
	case TrimMatches, TrimStartMatches, TrimEndMatches:
		return true
	}

	return false
}

func (o Op) String() string {
	return string(o)
}

// Request describes one operation run.
type Request struct {
	Op Op

	// Text switches from byte elements with ASCII whitespace to runes of
	// UTF-8 text with Unicode whitespace.
	Text bool

	// Cutset holds the elements trimmed by the matching operations: its
	// bytes in byte mode, its runes in text mode.
	Cutset string
}

// Validate returns r with its operation name in canonical form.
func (r Request) Validate() (Request, error) {
	o, err := ParseOp(string(r.Op))
	if err != nil {
		return r, err
	}
	r.Op = o

	if r.Op.IsMatching() && r.Cutset == "" {
		return r, errors.Wrapf(ErrEmptyCutset, "operation %s", r.Op)
	}

	return r, nil
}

// Apply runs r on in. The result may share storage with in.
func Apply(r Request, in []byte) ([]byte, error) {
	r, err := r.Validate()
	if err != nil {
		return nil, err
	}

	if r.Text {
		return applyText(r, in), nil
	}

	return applyBytes(r, in), nil
}

func applyBytes(r Request, in []byte) []byte {
	m := trimothy.SetOf([]byte(r.Cutset)...)

	switch r.Op {
	case Trim:
		return trimothy.TrimBytes(in)
	case TrimStart:
		return trimothy.TrimBytesStart(in)
	case TrimEnd:
		return trimothy.TrimBytesEnd(in)
	case TrimMatches:
		return trimothy.TrimBytesMatches(in, m)
	case TrimStartMatches:
		return trimothy.TrimBytesStartMatches(in, m)
	case TrimEndMatches:
		return trimothy.TrimBytesEndMatches(in, m)
	case Normalize:
		return trimothy.CollectBytes(trimothy.NormalizedWhitespace(in))
	case NormalizeControl:
		return trimothy.CollectBytes(trimothy.NormalizedControlAndWhitespace(in))
	default:
		return trimothy.TrimAndNormalizeBytes(in)
	}
}

func applyText(r Request, in []byte) []byte {
	s := string(in)
	m := trimothy.SetOf([]rune(r.Cutset)...)

	var out string
	switch r.Op {
	case Trim:
		out = trimothy.TrimString(s)
	case TrimStart:
		out = trimothy.TrimStringStart(s)
	case TrimEnd:
		out = trimothy.TrimStringEnd(s)
	case TrimMatches:
		out = trimothy.TrimStringMatches(s, m)
	case TrimStartMatches:
		out = trimothy.TrimStringStartMatches(s, m)
	case TrimEndMatches:
		out = trimothy.TrimStringEndMatches(s, m)
	case Normalize:
		out = trimothy.CollectString(trimothy.NormalizedWhitespaceString(s))
	case NormalizeControl:
		out = trimothy.CollectString(trimothy.NormalizedControlAndWhitespaceString(s))
	default:
		out = trimothy.TrimAndNormalizeString(s)
	}

	return []byte(out)
}
