package coder

import (
	"coderkit/compress"
	"coderkit/log"
	"coderkit/metrics"
)

// Config controls the compression pass of a coder. It is fixed when the coder
// is constructed.
type Config struct {
	CompressEnabled bool
	// CompressLevel is passed to the compressor; compress.DefaultLevel
	// selects the algorithm's default.
	CompressLevel int
	// Algorithm names a compressor known to compress.ByName. Empty means
	// flate.
	Algorithm string
	// MaxDecompressedLen bounds the output of decompression. Zero means
	// compress.DefaultMaxDecompressedLen.
	MaxDecompressedLen int
}

func DefaultConfig() Config {
	return Config{
		CompressEnabled:    false,
		CompressLevel:      compress.DefaultLevel,
		Algorithm:          compress.NameFlate,
		MaxDecompressedLen: compress.DefaultMaxDecompressedLen,
	}
}

// Compressed returns DefaultConfig with compression enabled at level.
func Compressed(level int) Config {
	cfg := DefaultConfig()
	cfg.CompressEnabled = true
	cfg.CompressLevel = level
	return cfg
}

type Option func(*options)

type options struct {
	metrics *metrics.Collector
	lgr     log.Logger
}

// WithMetrics records every encode and decode call in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

func WithLogger(lgr log.Logger) Option {
	return func(o *options) {
		o.lgr = lgr
	}
}
