package stream

import (
	"io"

	"coderkit/varint"

	"github.com/pkg/errors"
)

const DefaultMaxPayloadLen = 256 * 1024

var (
	ErrNotASCII        = errors.New("text is not ascii")
	ErrOddLength       = errors.New("utf-16 payload has odd length")
	ErrPayloadTooLarge = errors.New("payload length too large")
)

// Reader reads fields written by Writer from an underlying io.Reader. It never
// reads past the end of the field being decoded.
type Reader struct {
	// MaxPayloadLen is the largest length prefix Reader will accept before
	// allocating a payload buffer.
	MaxPayloadLen uint32

	r  *CountingReader
	br io.ByteReader
}

func NewReader(r io.Reader) *Reader {
	cr := NewCountingReader(r)
	return &Reader{
		MaxPayloadLen: DefaultMaxPayloadLen,
		r:             cr,
		br:            newByteReader(cr),
	}
}

// Count returns the number of bytes consumed so far.
func (r *Reader) Count() uint64 {
	return r.r.Count()
}

// ReadInt returns io.EOF only when the source is exhausted at a field
// boundary.
func (r *Reader) ReadInt() (uint32, error) {
	return varint.Read(r.br)
}

func (r *Reader) ReadASCII() (string, error) {
	buf, err := r.readFramed()
	if err != nil {
		return "", err
	}
	for i, c := range buf {
		if c > 0x7f {
			return "", errors.Wrapf(ErrNotASCII, "byte 0x%02x at index %d", c, i)
		}
	}
	return string(buf), nil
}

func (r *Reader) ReadString() (string, error) {
	buf, err := r.readFramed()
	if err != nil {
		return "", err
	}
	return DecodeUTF16(buf)
}

func (r *Reader) ReadBytes() ([]byte, error) {
	return r.readFramed()
}

func (r *Reader) readFramed() ([]byte, error) {
	l, err := varint.Read(r.br)
	if err != nil {
		return nil, err
	}
	if l > r.MaxPayloadLen {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "%d bytes, max %d", l, r.MaxPayloadLen)
	}
	buf := make([]byte, l)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
