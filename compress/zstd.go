package compress

import (
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Zstd compresses single zstd frames. Levels follow the zstd command line
// scale and are mapped onto the encoder's speed settings.
type Zstd struct{}

var _ Compressor = Zstd{}

const zstdMaxLevel = 22

var (
	zstdEncoders sync.Map // zstd.EncoderLevel -> *zstd.Encoder
	zstdDecoders sync.Map // uint64 memory limit -> *zstd.Decoder
)

func (Zstd) Name() string {
	return NameZstd
}

func (Zstd) ValidateLevel(level int) error {
	if level != DefaultLevel && (level < 1 || level > zstdMaxLevel) {
		return errors.Wrapf(ErrInvalidLevel, "zstd level %d", level)
	}
	return nil
}

func (z Zstd) Compress(src []byte, level int) ([]byte, error) {
	if err := z.ValidateLevel(level); err != nil {
		return nil, err
	}
	enc, err := zstdEncoder(level)
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(src, nil), nil
}

func (Zstd) Decompress(src []byte, maxLen int) ([]byte, error) {
	maxLen = decompressLimit(maxLen)
	dec, err := zstdDecoder(maxLen)
	if err != nil {
		return nil, err
	}
	out, err := dec.DecodeAll(src, nil)
	tooLarge := errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded)
	if tooLarge || (err == nil && len(out) > maxLen) {
		return nil, errors.Wrapf(ErrTooLarge, "zstd payload exceeds %d bytes", maxLen)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error decompressing zstd payload")
	}
	return out, nil
}

// zstdDecoder returns a shared decoder whose memory limit is maxLen, raised to
// the minimum zstd window. Limits below that are enforced on the output.
func zstdDecoder(maxLen int) (*zstd.Decoder, error) {
	mem := uint64(maxLen)
	if mem < zstd.MinWindowSize {
		mem = zstd.MinWindowSize
	}
	if dec, ok := zstdDecoders.Load(mem); ok {
		return dec.(*zstd.Decoder), nil
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0), zstd.WithDecoderMaxMemory(mem))
	if err != nil {
		return nil, errors.Wrap(err, "error creating zstd decoder")
	}
	actual, loaded := zstdDecoders.LoadOrStore(mem, dec)
	if loaded {
		dec.Close()
	}
	return actual.(*zstd.Decoder), nil
}

// zstdEncoder returns a shared encoder for level. EncodeAll is safe for
// concurrent use.
func zstdEncoder(level int) (*zstd.Encoder, error) {
	el := zstd.SpeedDefault
	if level != DefaultLevel {
		el = zstd.EncoderLevelFromZstd(level)
	}
	if enc, ok := zstdEncoders.Load(el); ok {
		return enc.(*zstd.Encoder), nil
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(el))
	if err != nil {
		return nil, errors.Wrap(err, "error creating zstd encoder")
	}
	actual, loaded := zstdEncoders.LoadOrStore(el, enc)
	if loaded {
		enc.Close()
	}
	return actual.(*zstd.Encoder), nil
}
