// Package trimothy trims and whitespace-normalizes byte slices and strings.
package trimothy

import (
	"golang.org/x/text/runes"
)

// Element is a unit a sequence is trimmed by: a byte, or a rune decoded
// from UTF-8 text.
type Element interface {
	~byte | ~rune
}

// Matcher decides whether an element on the edge of a sequence is trimmed.
type Matcher[T Element] interface {
	Match(v T) bool
}

// Single matches one value.
type Single[T Element] struct {
	Value T
}

func (m Single[T]) Match(v T) bool { return v == m.Value }

// Many matches any of the listed values. Lookup is a linear scan, which is
// the fastest choice for short lists.
type Many[T Element] []T

func (m Many[T]) Match(v T) bool {
	for i := range m {
		if m[i] == v {
			return true
		}
	}

	return false
}

// Set matches its members.
type Set[T Element] map[T]struct{}

func (m Set[T]) Match(v T) bool {
	_, find := m[v]
	return find
}

// Predicate matches when the callback returns true. A nil Predicate
// matches nothing.
type Predicate[T Element] func(v T) bool

func (m Predicate[T]) Match(v T) bool {
	if m == nil {
		return false
	}

	return m(v)
}

// Is matches exactly v.
func Is[T Element](v T) Single[T] {
	return Single[T]{Value: v}
}

// AnyOf matches any of vs by linear scan; best for a handful of elements.
func AnyOf[T Element](vs ...T) Many[T] {
	return Many[T](vs)
}

// SetOf matches any of vs by map lookup.
func SetOf[T Element](vs ...T) Set[T] {
	out := make(Set[T], len(vs))
	for _, v := range vs {
		out[v] = struct{}{}
	}

	return out
}

// Func matches whatever f reports true for.
func Func[T Element](f func(T) bool) Predicate[T] {
	return Predicate[T](f)
}

// Cutset matches every rune of s.
func Cutset(s string) Many[rune] {
	return Many[rune]([]rune(s))
}

// RuneSet adapts a golang.org/x/text/runes set, so Unicode range tables can
// be used as matchers:
//
//	trimothy.TrimStringMatches(s, trimothy.RuneSet(runes.In(unicode.Punct)))
func RuneSet(set runes.Set) Predicate[rune] {
	if set == nil {
		return nil
	}

	return set.Contains
}

func never[T Element](T) bool { return false }

// matchFunc turns m into the callback the scanners run. A nil Matcher
// matches nothing.
func matchFunc[T Element](m Matcher[T]) func(T) bool {
	if m == nil {
		return never[T]
	}

	return m.Match
}
