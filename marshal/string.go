package marshal

import (
	"bytes"

	"coderkit/stream"

	"github.com/pkg/errors"
)

// String marshals text as a length-framed UTF-16 string, the same framing
// stream.Writer.WriteString produces. A non-zero MaxPayloadLen bounds the
// length prefix Unmarshal accepts.
type String struct {
	MaxPayloadLen uint32
}

var _ Marshaller[string] = String{}

func (String) Marshal(v string) ([]byte, error) {
	var buf bytes.Buffer
	if err := stream.NewWriter(&buf).WriteString(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m String) Unmarshal(b []byte) (string, error) {
	r := stream.NewReader(bytes.NewReader(b))
	r.MaxPayloadLen = uint32(len(b))
	if m.MaxPayloadLen != 0 && m.MaxPayloadLen < r.MaxPayloadLen {
		r.MaxPayloadLen = m.MaxPayloadLen
	}
	s, err := r.ReadString()
	if err != nil {
		return "", errors.Wrap(err, "error unmarshalling string")
	}
	if r.Count() != uint64(len(b)) {
		return "", errors.Errorf("error unmarshalling string: %d trailing bytes", uint64(len(b))-r.Count())
	}
	return s, nil
}
