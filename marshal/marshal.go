// Package marshal provides object marshallers: capabilities that turn a value
// of some type into bytes and back. Coders that carry arbitrary values accept
// any Marshaller; the formats here cover the common cases.
package marshal

// Marshaller converts values of T to and from bytes. Implementations must be
// safe for concurrent use.
type Marshaller[T any] interface {
	Marshal(v T) ([]byte, error)
	// Unmarshal fails if b is corrupt or structurally incompatible with T.
	Unmarshal(b []byte) (T, error)
}

// Funcs adapts a pair of functions to Marshaller.
type Funcs[T any] struct {
	MarshalFunc   func(v T) ([]byte, error)
	UnmarshalFunc func(b []byte) (T, error)
}

var _ Marshaller[int] = Funcs[int]{}

func (f Funcs[T]) Marshal(v T) ([]byte, error) {
	return f.MarshalFunc(v)
}

func (f Funcs[T]) Unmarshal(b []byte) (T, error) {
	return f.UnmarshalFunc(b)
}
