package compress

import (
	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Snappy uses the snappy block format. It has no levels; any level is
// accepted and ignored.
type Snappy struct{}

var _ Compressor = Snappy{}

func (Snappy) Name() string {
	return NameSnappy
}

func (Snappy) ValidateLevel(int) error {
	return nil
}

func (Snappy) Compress(src []byte, _ int) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

func (Snappy) Decompress(src []byte, maxLen int) ([]byte, error) {
	maxLen = decompressLimit(maxLen)
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return nil, errors.Wrap(err, "error decompressing snappy payload")
	}
	if n > maxLen {
		return nil, errors.Wrapf(ErrTooLarge, "snappy payload declares %d bytes, max %d", n, maxLen)
	}
	out, err := snappy.Decode(nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "error decompressing snappy payload")
	}
	return out, nil
}
