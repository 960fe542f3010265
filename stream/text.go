package stream

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// EncodeUTF16 returns s as big-endian UTF-16 code units, two bytes per unit
// and no byte order mark. Invalid UTF-8 sequences become U+FFFD.
func EncodeUTF16(s string) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	out, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// the UTF-16 encoder replaces rather than rejects bad input
		panic(err)
	}
	return out
}

// DecodeUTF16 is the inverse of EncodeUTF16. Unpaired surrogates decode to
// U+FFFD.
func DecodeUTF16(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errors.Wrapf(ErrOddLength, "%d bytes", len(b))
	}
	if len(b) == 0 {
		return "", nil
	}
	out, err := utf16BE.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrap(err, "error decoding utf-16 text")
	}
	return string(out), nil
}
