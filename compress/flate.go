package compress

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
)

// Flate is raw DEFLATE with levels from flate.HuffmanOnly to
// flate.BestCompression.
type Flate struct{}

// The fast levels write inputs shorter than this as stored or Huffman-only
// blocks without searching for matches.
const flateSmallInput = 128

var _ Compressor = Flate{}

func (Flate) Name() string {
	return NameFlate
}

func (Flate) ValidateLevel(level int) error {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return errors.Wrapf(ErrInvalidLevel, "flate level %d", level)
	}
	return nil
}

func (f Flate) Compress(src []byte, level int) ([]byte, error) {
	if err := f.ValidateLevel(level); err != nil {
		return nil, err
	}
	if len(src) < flateSmallInput && (level == DefaultLevel || level >= flate.BestSpeed) {
		level = flate.BestCompression
	}
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, errors.Wrap(err, "error creating flate writer")
	}
	if _, err := w.Write(src); err != nil {
		return nil, errors.Wrap(err, "error compressing")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "error compressing")
	}
	return buf.Bytes(), nil
}

func (Flate) Decompress(src []byte, maxLen int) ([]byte, error) {
	maxLen = decompressLimit(maxLen)
	r := flate.NewReader(bytes.NewReader(src))
	defer r.Close()
	out, err := ioutil.ReadAll(io.LimitReader(r, int64(maxLen)+1))
	if err != nil {
		return nil, errors.Wrap(err, "error decompressing flate payload")
	}
	if len(out) > maxLen {
		return nil, errors.Wrapf(ErrTooLarge, "flate payload exceeds %d bytes", maxLen)
	}
	return out, nil
}
