package coder

import (
	"coderkit/compress"
	"coderkit/log"
	"coderkit/metrics"

	"github.com/pkg/errors"
)

// Encoder converts a value of T into bytes.
type Encoder[T any] interface {
	Encode(v T) ([]byte, error)
}

// Decoder converts bytes produced by a matching Encoder back into T.
type Decoder[T any] interface {
	Decode(b []byte) (T, error)
}

// Coder produces Encoders and Decoders for T sharing one Config.
type Coder[T any] interface {
	Name() string
	Config() Config
	NewEncoder() Encoder[T]
	NewDecoder() Decoder[T]
}

// layered is the base encoding of a coder wrapped in the optional
// compression pass. It is immutable after construction.
type layered[T any] struct {
	name      string
	cfg       Config
	comp      compress.Compressor
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	metrics   *metrics.Collector
	lgr       log.Logger
}

func newLayered[T any](
	name string,
	cfg Config,
	marshal func(T) ([]byte, error),
	unmarshal func([]byte) (T, error),
	opts []Option,
) (*layered[T], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.lgr == nil {
		o.lgr = log.WithModule("coder")
	}

	l := &layered[T]{
		name:      name,
		cfg:       cfg,
		marshal:   marshal,
		unmarshal: unmarshal,
		metrics:   o.metrics,
		lgr:       o.lgr.Sub("coder", name),
	}
	if cfg.CompressEnabled {
		comp, err := compress.ByName(cfg.Algorithm)
		if err != nil {
			return nil, err
		}
		if err := comp.ValidateLevel(cfg.CompressLevel); err != nil {
			return nil, err
		}
		l.comp = comp
		l.lgr.Debug("created coder", "algorithm", comp.Name(), "compress_level", cfg.CompressLevel)
	} else {
		l.lgr.Debug("created coder", "algorithm", "none")
	}
	return l, nil
}

func (l *layered[T]) Name() string {
	return l.name
}

func (l *layered[T]) Config() Config {
	return l.cfg
}

func (l *layered[T]) NewEncoder() Encoder[T] {
	return encoder[T]{l}
}

func (l *layered[T]) NewDecoder() Decoder[T] {
	return decoder[T]{l}
}

type encoder[T any] struct {
	l *layered[T]
}

func (e encoder[T]) Encode(v T) ([]byte, error) {
	l := e.l
	plain, err := l.marshal(v)
	if err != nil {
		l.metrics.RecordError(l.name, metrics.OpEncode)
		return nil, err
	}
	if l.comp == nil {
		l.metrics.RecordCall(l.name, metrics.OpEncode, len(plain), len(plain))
		return plain, nil
	}
	out, err := l.comp.Compress(plain, l.cfg.CompressLevel)
	if err != nil {
		l.metrics.RecordError(l.name, metrics.OpEncode)
		return nil, errors.Wrap(err, "error compressing encoded value")
	}
	l.metrics.RecordCall(l.name, metrics.OpEncode, len(plain), len(out))
	return out, nil
}

type decoder[T any] struct {
	l *layered[T]
}

func (d decoder[T]) Decode(b []byte) (T, error) {
	l := d.l
	plain := b
	if l.comp != nil {
		var err error
		plain, err = l.comp.Decompress(b, l.cfg.MaxDecompressedLen)
		if err != nil {
			l.metrics.RecordError(l.name, metrics.OpDecode)
			l.lgr.Trace("decompression failed", "size", len(b), "err", err)
			var zero T
			return zero, err
		}
	}
	v, err := l.unmarshal(plain)
	if err != nil {
		l.metrics.RecordError(l.name, metrics.OpDecode)
		l.lgr.Trace("base decoding failed", "size", len(plain), "err", err)
		return v, err
	}
	l.metrics.RecordCall(l.name, metrics.OpDecode, len(plain), len(b))
	return v, nil
}
