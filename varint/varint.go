package varint

import (
	"io"

	"github.com/pkg/errors"
)

const (
	// MaxLen is the longest encoding of a uint32.
	MaxLen = 5

	groupBits    = 7
	groupMask    = 0x7f
	terminalMask = 0x80
)

var (
	ErrTruncated = errors.New("varint: input ends before terminal byte")
	ErrOverflow  = errors.New("varint: no terminal byte within 5 bytes")
	ErrOffset    = errors.New("varint: offset out of range")
)

// EncodedLength returns the number of bytes Encode produces for v.
func EncodedLength(v uint32) int {
	switch {
	case v <= 0x7f:
		return 1
	case v <= 0x3fff:
		return 2
	case v <= 0x1fffff:
		return 3
	case v <= 0xfffffff:
		return 4
	default:
		return 5
	}
}

// Encode returns the variable-length encoding of v.
func Encode(v uint32) []byte {
	return Append(make([]byte, 0, EncodedLength(v)), v)
}

// Append appends the variable-length encoding of v to dst and returns the
// extended slice.
func Append(dst []byte, v uint32) []byte {
	n := EncodedLength(v)
	for i := 0; i < n-1; i++ {
		dst = append(dst, byte(v>>(groupBits*uint(i)))&groupMask)
	}
	return append(dst, byte(v>>(groupBits*uint(n-1)))&groupMask|terminalMask)
}

// Write writes the variable-length encoding of v to w.
func Write(w io.Writer, v uint32) error {
	var buf [MaxLen]byte
	_, err := w.Write(Append(buf[:0], v))
	return err
}

// Decode reads one value from buf starting at offset. It returns the value and
// the number of bytes consumed. Bytes following the terminal byte are never
// inspected.
func Decode(buf []byte, offset int) (uint32, int, error) {
	if offset < 0 || offset > len(buf) {
		return 0, 0, errors.Wrapf(ErrOffset, "offset %d, length %d", offset, len(buf))
	}

	var s state
	for i, b := range buf[offset:] {
		done, err := s.feed(b)
		if err != nil {
			return 0, 0, err
		}
		if done {
			return s.acc, i + 1, nil
		}
	}
	return 0, 0, ErrTruncated
}

// Read reads one value from r. It returns io.EOF if r is exhausted before the
// first byte and ErrTruncated if r ends in the middle of a value.
func Read(r io.ByteReader) (uint32, error) {
	var s state
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			if s.n == 0 {
				return 0, io.EOF
			}
			return 0, ErrTruncated
		}
		if err != nil {
			return 0, err
		}

		done, err := s.feed(b)
		if err != nil {
			return 0, err
		}
		if done {
			return s.acc, nil
		}
	}
}

// state folds bytes into an accumulator until the terminal byte arrives.
type state struct {
	acc   uint32
	shift uint
	n     int
}

// Bits of a fifth byte that do not fit in 32 bits are dropped.
func (s *state) feed(b byte) (bool, error) {
	s.acc |= uint32(b&groupMask) << s.shift
	s.shift += groupBits
	s.n++
	if b&terminalMask != 0 {
		return true, nil
	}
	if s.n == MaxLen {
		return false, ErrOverflow
	}
	return false, nil
}
