package trimothy

import (
	"iter"
	"unicode/utf8"

	"github.com/iostrovok/trimothy/internal/text"
)

// Source yields elements one at a time; ok is false once it is exhausted.
type Source[T Element] interface {
	Next() (v T, ok bool)
}

// stopper is implemented by sources holding resources that must be released
// when iteration ends early.
type stopper interface {
	Stop()
}

type state uint8

const (
	stateLeadingSkip state = iota
	stateInRun
	statePendingSeparator
	stateEmitting
	stateDone
)

var stateNames = [...]string{
	stateLeadingSkip:      "leading-skip",
	stateInRun:            "in-run",
	statePendingSeparator: "pending-separator",
	stateEmitting:         "emitting",
	stateDone:             "done",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "unknown"
}

// Normalizer lazily yields the elements of its source with leading and
// trailing whitespace dropped and every inner whitespace run replaced by a
// single space. It is single-pass: once exhausted or closed it stays empty.
// A Normalizer is not safe for concurrent use.
type Normalizer[T Element] struct {
	src       Source[T]
	qualifies func(T) bool

	state   state
	pending T
}

func newNormalizer[T Element](src Source[T], qualifies func(T) bool) *Normalizer[T] {
	n := &Normalizer[T]{
		src:       src,
		qualifies: qualifies,
	}

	if src == nil {
		n.state = stateDone
	}

	return n
}

// NormalizeBytes normalizes ASCII whitespace in src.
func NormalizeBytes(src Source[byte]) *Normalizer[byte] {
	return newNormalizer(src, text.IsASCIISpace)
}

// NormalizeBytesControl treats ASCII control codes like whitespace.
func NormalizeBytesControl(src Source[byte]) *Normalizer[byte] {
	return newNormalizer(src, text.IsASCIISpaceOrControl)
}

// NormalizeRunes normalizes Unicode whitespace in src.
func NormalizeRunes(src Source[rune]) *Normalizer[rune] {
	return newNormalizer(src, text.IsSpace)
}

// NormalizeRunesControl treats C0 and C1 control codes and DEL like
// whitespace.
func NormalizeRunesControl(src Source[rune]) *Normalizer[rune] {
	return newNormalizer(src, text.IsSpaceOrControl)
}

// NormalizedWhitespace is NormalizeBytes over b.
func NormalizedWhitespace(b []byte) *Normalizer[byte] {
	return NormalizeBytes(BytesSource(b))
}

// NormalizedControlAndWhitespace is NormalizeBytesControl over b.
func NormalizedControlAndWhitespace(b []byte) *Normalizer[byte] {
	return NormalizeBytesControl(BytesSource(b))
}

// NormalizedWhitespaceString is NormalizeRunes over the runes of s.
func NormalizedWhitespaceString(s string) *Normalizer[rune] {
	return NormalizeRunes(StringSource(s))
}

// NormalizedControlAndWhitespaceString is NormalizeRunesControl over the
// runes of s.
func NormalizedControlAndWhitespaceString(s string) *Normalizer[rune] {
	return NormalizeRunesControl(StringSource(s))
}

// Next returns the next normalized element.
func (n *Normalizer[T]) Next() (T, bool) {
	for {
		switch n.state {
		case stateLeadingSkip:
			v, ok := n.pull()
			if !ok || n.qualifies(v) {
				continue
			}

			n.state = stateInRun
			return v, true

		case stateInRun:
			v, ok := n.pull()
			if !ok {
				continue
			}

			if n.qualifies(v) {
				n.state = statePendingSeparator
				continue
			}

			return v, true

		case statePendingSeparator:
			v, ok := n.pull()
			if !ok || n.qualifies(v) {
				continue
			}

			// v is held back until the separator is out.
			n.pending = v
			n.state = stateEmitting
			return T(' '), true

		case stateEmitting:
			n.state = stateInRun
			return n.pending, true

		default:
			var zero T
			return zero, false
		}
	}
}

// pull reads from the source, switching to stateDone on exhaustion.
func (n *Normalizer[T]) pull() (T, bool) {
	v, ok := n.src.Next()
	if !ok {
		n.Close()
	}

	return v, ok
}

// Close ends the iteration and releases the source.
func (n *Normalizer[T]) Close() {
	if n.state == stateDone {
		return
	}

	n.state = stateDone
	if s, ok := n.src.(stopper); ok {
		s.Stop()
	}
}

// All returns the remaining elements as a range-over-func sequence. Leaving
// the loop early closes the Normalizer.
func (n *Normalizer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer n.Close()

		for {
			v, ok := n.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// CollectBytes drains n into a new slice.
func CollectBytes(n *Normalizer[byte]) []byte {
	out := make([]byte, 0)
	for v := range n.All() {
		out = append(out, v)
	}

	return out
}

// CollectString drains n into a string.
func CollectString(n *Normalizer[rune]) string {
	out := make([]byte, 0)
	for r := range n.All() {
		out = utf8.AppendRune(out, r)
	}

	return string(out)
}

type bytesSource struct {
	b []byte
	i int
}

// BytesSource yields the bytes of b.
func BytesSource(b []byte) Source[byte] {
	return &bytesSource{b: b}
}

func (s *bytesSource) Next() (byte, bool) {
	if s.i >= len(s.b) {
		return 0, false
	}

	v := s.b[s.i]
	s.i++
	return v, true
}

type stringSource struct {
	s string
	i int
}

// StringSource yields the runes of s. Invalid UTF-8 decodes to
// utf8.RuneError one byte at a time.
func StringSource(s string) Source[rune] {
	return &stringSource{s: s}
}

func (s *stringSource) Next() (rune, bool) {
	if s.i >= len(s.s) {
		return 0, false
	}

	r, size := utf8.DecodeRuneInString(s.s[s.i:])
	s.i += size
	return r, true
}

type seqSource[T Element] struct {
	next func() (T, bool)
	stop func()
}

// SeqSource pulls from an iterator. The iterator is stopped when the
// Normalizer reading it is exhausted or closed.
func SeqSource[T Element](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return &seqSource[T]{next: next, stop: stop}
}

func (s *seqSource[T]) Next() (T, bool) { return s.next() }
func (s *seqSource[T]) Stop()           { s.stop() }
