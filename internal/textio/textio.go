package textio

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16BE = []byte{0xfe, 0xff}
	bomUTF16LE = []byte{0xff, 0xfe}
)

func hasBOM(b []byte) bool {
	return bytes.HasPrefix(b, bomUTF8) ||
		bytes.HasPrefix(b, bomUTF16BE) ||
		bytes.HasPrefix(b, bomUTF16LE)
}

// Decode turns b into UTF-8 text. A leading UTF-8 byte order mark is
// dropped and UTF-16 input marked with a BOM is converted. Anything else must
// already be valid UTF-8. Input without a BOM is returned as is.
func Decode(b []byte) ([]byte, error) {
	if hasBOM(b) {
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), b)
		if err != nil {
			return nil, errors.Wrap(err, "decode")
		}
		b = out
	}

	if !utf8.Valid(b) {
		return nil, errors.WithStack(ErrInvalidUTF8)
	}

	return b, nil
}

// Repair is the lenient Decode: invalid UTF-8 sequences become U+FFFD
// instead of failing the whole input.
func Repair(b []byte) ([]byte, error) {
	if !hasBOM(b) && utf8.Valid(b) {
		return b, nil
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), b)
	if err != nil {
		return nil, errors.Wrap(err, "repair")
	}

	return out, nil
}
