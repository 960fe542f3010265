package marshal

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// Proto marshals protobuf messages. New must return an empty message to
// unmarshal into.
type Proto[T proto.Message] struct {
	New           func() T
	Deterministic bool
}

func NewProto[T proto.Message](newFn func() T) *Proto[T] {
	return &Proto[T]{
		New:           newFn,
		Deterministic: true,
	}
}

func (p *Proto[T]) Marshal(v T) ([]byte, error) {
	b, err := proto.MarshalOptions{Deterministic: p.Deterministic}.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "error marshalling protobuf message")
	}
	return b, nil
}

func (p *Proto[T]) Unmarshal(b []byte) (T, error) {
	msg := p.New()
	if err := proto.Unmarshal(b, msg); err != nil {
		var zero T
		return zero, errors.Wrap(err, "error unmarshalling protobuf message")
	}
	return msg, nil
}
