package coder

import (
	"coderkit/marshal"
	"coderkit/stream"

	"github.com/pkg/errors"
)

const (
	NameByteArray    = "byte_array"
	NameSimpleString = "simple_string"
	NameSerializable = "serializable"
)

var ErrNilMarshaller = errors.New("serializable coder needs a marshaller")

// Names lists the coder names, which are also their configuration keys.
func Names() []string {
	return []string{NameByteArray, NameSimpleString, NameSerializable}
}

// ByteArrayCoder passes byte slices through unchanged apart from the optional
// compression. Without compression, encoded output aliases the input slice.
type ByteArrayCoder struct {
	*layered[[]byte]
}

var _ Coder[[]byte] = (*ByteArrayCoder)(nil)

func NewByteArrayCoder(cfg Config, opts ...Option) (*ByteArrayCoder, error) {
	l, err := newLayered(NameByteArray, cfg, identity, identity, opts)
	if err != nil {
		return nil, err
	}
	return &ByteArrayCoder{l}, nil
}

func identity(b []byte) ([]byte, error) {
	return b, nil
}

// SimpleStringCoder encodes text as big-endian UTF-16 code units without a
// length prefix.
type SimpleStringCoder struct {
	*layered[string]
}

var _ Coder[string] = (*SimpleStringCoder)(nil)

func NewSimpleStringCoder(cfg Config, opts ...Option) (*SimpleStringCoder, error) {
	l, err := newLayered(NameSimpleString, cfg, encodeUTF16, stream.DecodeUTF16, opts)
	if err != nil {
		return nil, err
	}
	return &SimpleStringCoder{l}, nil
}

func encodeUTF16(s string) ([]byte, error) {
	return stream.EncodeUTF16(s), nil
}

// SerializableCoder encodes arbitrary values through a marshal.Marshaller.
// Marshalling errors are returned unchanged.
type SerializableCoder[T any] struct {
	*layered[T]
	m marshal.Marshaller[T]
}

func NewSerializableCoder[T any](cfg Config, m marshal.Marshaller[T], opts ...Option) (*SerializableCoder[T], error) {
	if m == nil {
		return nil, ErrNilMarshaller
	}
	l, err := newLayered(NameSerializable, cfg, m.Marshal, m.Unmarshal, opts)
	if err != nil {
		return nil, err
	}
	return &SerializableCoder[T]{layered: l, m: m}, nil
}

// Marshaller returns the marshaller the coder was built with.
func (c *SerializableCoder[T]) Marshaller() marshal.Marshaller[T] {
	return c.m
}
