package marshal

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Encoder is implemented by types that can write themselves to a stream.
type Encoder interface {
	Encode(w io.Writer) error
}

// Decoder is implemented by types that can read themselves from a stream.
type Decoder interface {
	Decode(r io.Reader) error
}

type EncodeDecoder interface {
	Encoder
	Decoder
}

// Wire marshals types with their own Encode/Decode methods, such as the
// fields built with stream.Writer. PT is the pointer type of T, so
//
//	marshal.Wire[Point, *Point]{}
//
// marshals Point values through (*Point).Encode and (*Point).Decode.
type Wire[T any, PT interface {
	*T
	EncodeDecoder
}] struct{}

func (Wire[T, PT]) Marshal(v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := PT(&v).Encode(&buf); err != nil {
		return nil, errors.Wrap(err, "error encoding value")
	}
	return buf.Bytes(), nil
}

func (Wire[T, PT]) Unmarshal(b []byte) (T, error) {
	var v T
	rd := bytes.NewReader(b)
	if err := PT(&v).Decode(rd); err != nil {
		return v, errors.Wrap(err, "error decoding value")
	}
	if rd.Len() != 0 {
		return v, errors.Errorf("error decoding value: %d trailing bytes", rd.Len())
	}
	return v, nil
}
