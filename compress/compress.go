package compress

import (
	"github.com/pkg/errors"
)

const (
	// DefaultLevel selects the algorithm's own default level.
	DefaultLevel = -1
	// DefaultMaxDecompressedLen bounds Decompress output when no limit is
	// given.
	DefaultMaxDecompressedLen = 64 << 20

	NameFlate  = "flate"
	NameZstd   = "zstd"
	NameSnappy = "snappy"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown compression algorithm")
	ErrInvalidLevel     = errors.New("invalid compression level")
	ErrTooLarge         = errors.New("decompressed payload too large")
)

// Compressor is a general-purpose compression transform. Output carries no
// marker of the algorithm or level used, so Decompress must be called on a
// Compressor of the same algorithm.
type Compressor interface {
	Name() string
	// ValidateLevel reports whether level is usable with Compress.
	ValidateLevel(level int) error
	Compress(src []byte, level int) ([]byte, error)
	// Decompress fails if src is malformed or was produced by another
	// algorithm, and with ErrTooLarge if the output would exceed maxLen
	// bytes. A maxLen of zero or less means DefaultMaxDecompressedLen.
	Decompress(src []byte, maxLen int) ([]byte, error)
}

// ByName returns the Compressor registered under name.
func ByName(name string) (Compressor, error) {
	switch name {
	case NameFlate, "":
		return Flate{}, nil
	case NameZstd:
		return Zstd{}, nil
	case NameSnappy:
		return Snappy{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
}

// Names lists the available algorithms.
func Names() []string {
	return []string{NameFlate, NameZstd, NameSnappy}
}

func decompressLimit(maxLen int) int {
	if maxLen <= 0 {
		return DefaultMaxDecompressedLen
	}
	return maxLen
}
