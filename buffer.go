package trimothy

import (
	"sync"
)

// ByteBuffer is an owned byte buffer trimmed in place. Every mutation holds
// the write lock, so no reader can observe a half-shifted buffer. Nothing
// outside the buffer ever aliases its storage.
type ByteBuffer struct {
	sync.RWMutex

	buf []byte
}

// NewByteBuffer copies b into a new buffer.
func NewByteBuffer(b []byte) *ByteBuffer {
	return &ByteBuffer{buf: append([]byte(nil), b...)}
}

// NewByteBufferSize returns an empty buffer with the given capacity.
func NewByteBufferSize(capacity int) *ByteBuffer {
	return &ByteBuffer{buf: make([]byte, 0, capacity)}
}

func (bb *ByteBuffer) Write(p []byte) (int, error) {
	bb.Lock()
	defer bb.Unlock()

	bb.buf = append(bb.buf, p...)
	return len(p), nil
}

func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.Lock()
	defer bb.Unlock()

	bb.buf = append(bb.buf, s...)
	return len(s), nil
}

// Bytes returns a copy of the contents.
func (bb *ByteBuffer) Bytes() []byte {
	bb.RLock()
	defer bb.RUnlock()

	return append([]byte{}, bb.buf...)
}

func (bb *ByteBuffer) String() string {
	bb.RLock()
	defer bb.RUnlock()

	return string(bb.buf)
}

func (bb *ByteBuffer) Len() int {
	bb.RLock()
	defer bb.RUnlock()

	return len(bb.buf)
}

func (bb *ByteBuffer) Cap() int {
	bb.RLock()
	defer bb.RUnlock()

	return cap(bb.buf)
}

func (bb *ByteBuffer) Reset() *ByteBuffer {
	bb.Lock()
	defer bb.Unlock()

	bb.buf = bb.buf[:0]
	return bb
}

func (bb *ByteBuffer) with(f func(*[]byte)) *ByteBuffer {
	bb.Lock()
	defer bb.Unlock()

	f(&bb.buf)
	return bb
}

func (bb *ByteBuffer) Trim() *ByteBuffer      { return bb.with(TrimMut) }
func (bb *ByteBuffer) TrimStart() *ByteBuffer { return bb.with(TrimStartMut) }
func (bb *ByteBuffer) TrimEnd() *ByteBuffer   { return bb.with(TrimEndMut) }

func (bb *ByteBuffer) TrimMatches(m Matcher[byte]) *ByteBuffer {
	return bb.with(func(b *[]byte) { TrimMatchesMut(b, m) })
}

func (bb *ByteBuffer) TrimStartMatches(m Matcher[byte]) *ByteBuffer {
	return bb.with(func(b *[]byte) { TrimStartMatchesMut(b, m) })
}

func (bb *ByteBuffer) TrimEndMatches(m Matcher[byte]) *ByteBuffer {
	return bb.with(func(b *[]byte) { TrimEndMatchesMut(b, m) })
}

func (bb *ByteBuffer) TrimAndNormalize() *ByteBuffer {
	return bb.with(TrimAndNormalizeMut)
}

// TextBuffer is ByteBuffer for UTF-8 text: it trims whole runes and uses
// Unicode whitespace.
type TextBuffer struct {
	sync.RWMutex

	buf []byte
}

// NewTextBuffer returns a TextBuffer holding a copy of s.
func NewTextBuffer(s string) *TextBuffer {
	return &TextBuffer{buf: []byte(s)}
}

func (tb *TextBuffer) WriteString(s string) (int, error) {
	tb.Lock()
	defer tb.Unlock()

	tb.buf = append(tb.buf, s...)
	return len(s), nil
}

func (tb *TextBuffer) String() string {
	tb.RLock()
	defer tb.RUnlock()

	return string(tb.buf)
}

func (tb *TextBuffer) Len() int {
	tb.RLock()
	defer tb.RUnlock()

	return len(tb.buf)
}

func (tb *TextBuffer) Cap() int {
	tb.RLock()
	defer tb.RUnlock()

	return cap(tb.buf)
}

func (tb *TextBuffer) with(f func(*[]byte)) *TextBuffer {
	tb.Lock()
	defer tb.Unlock()

	f(&tb.buf)
	return tb
}

func (tb *TextBuffer) Trim() *TextBuffer      { return tb.with(TrimTextMut) }
func (tb *TextBuffer) TrimStart() *TextBuffer { return tb.with(TrimTextStartMut) }
func (tb *TextBuffer) TrimEnd() *TextBuffer   { return tb.with(TrimTextEndMut) }

func (tb *TextBuffer) TrimMatches(m Matcher[rune]) *TextBuffer {
	return tb.with(func(b *[]byte) { TrimTextMatchesMut(b, m) })
}

func (tb *TextBuffer) TrimStartMatches(m Matcher[rune]) *TextBuffer {
	return tb.with(func(b *[]byte) { TrimTextStartMatchesMut(b, m) })
}

func (tb *TextBuffer) TrimEndMatches(m Matcher[rune]) *TextBuffer {
	return tb.with(func(b *[]byte) { TrimTextEndMatchesMut(b, m) })
}

func (tb *TextBuffer) TrimAndNormalize() *TextBuffer {
	return tb.with(TrimAndNormalizeTextMut)
}
