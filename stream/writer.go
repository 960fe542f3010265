package stream

import (
	"io"
	"math"

	"coderkit/varint"

	"github.com/pkg/errors"
)

// Writer writes VarInt-framed fields to an underlying io.Writer. Flushing and
// closing the underlying writer is the caller's job.
type Writer struct {
	w *CountingWriter
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: NewCountingWriter(w),
	}
}

// Count returns the number of bytes written so far.
func (w *Writer) Count() uint64 {
	return w.w.Count()
}

func (w *Writer) WriteInt(v uint32) error {
	return varint.Write(w.w, v)
}

// WriteASCII writes the length of s followed by one byte per character.
// Characters above 0x7f are rejected.
func (w *Writer) WriteASCII(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return errors.Wrapf(ErrNotASCII, "byte 0x%02x at index %d", s[i], i)
		}
	}
	return w.writeFramed([]byte(s))
}

// WriteString writes 2*units followed by s as big-endian UTF-16 code units.
func (w *Writer) WriteString(s string) error {
	return w.writeFramed(EncodeUTF16(s))
}

func (w *Writer) WriteBytes(b []byte) error {
	return w.writeFramed(b)
}

func (w *Writer) writeFramed(p []byte) error {
	if uint64(len(p)) > math.MaxUint32 {
		return errors.Wrapf(ErrPayloadTooLarge, "%d bytes", len(p))
	}
	buf := varint.Append(make([]byte, 0, varint.MaxLen+len(p)), uint32(len(p)))
	buf = append(buf, p...)
	n, err := w.w.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return nil
}
