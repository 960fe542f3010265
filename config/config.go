package config

import (
	"io"
	"io/ioutil"

	"coderkit/coder"
	"coderkit/compress"
	"coderkit/log"
	"coderkit/stream"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

var ErrUnknownCoder = errors.New("unknown coder")

type Config struct {
	LogLevel string         `toml:"log_level"`
	LogJSON  bool           `toml:"log_json"`
	Stream   StreamConfig   `toml:"stream"`
	Compress CompressConfig `toml:"compress"`
	Coders   CodersConfig   `toml:"coders"`
}

type StreamConfig struct {
	MaxPayloadLen int `toml:"max_payload_len"`
}

type CompressConfig struct {
	MaxDecompressedLen int `toml:"max_decompressed_len"`
}

// CodersConfig holds one table per coder, keyed by the coder's name.
type CodersConfig struct {
	ByteArray    CoderConfig `toml:"byte_array"`
	SimpleString CoderConfig `toml:"simple_string"`
	Serializable CoderConfig `toml:"serializable"`
}

type CoderConfig struct {
	CompressEnabled bool   `toml:"compress_enabled"`
	CompressLevel   int    `toml:"compress_level"`
	Algorithm       string `toml:"algorithm"`
}

func (c CoderConfig) Coder() coder.Config {
	return coder.Config{
		CompressEnabled: c.CompressEnabled,
		CompressLevel:   c.CompressLevel,
		Algorithm:       c.Algorithm,
	}
}

// Coder resolves the settings of the coder called name.
func (c *Config) Coder(name string) (coder.Config, error) {
	var cc coder.Config
	switch name {
	case coder.NameByteArray:
		cc = c.Coders.ByteArray.Coder()
	case coder.NameSimpleString:
		cc = c.Coders.SimpleString.Coder()
	case coder.NameSerializable:
		cc = c.Coders.Serializable.Coder()
	default:
		return coder.Config{}, errors.Wrapf(ErrUnknownCoder, "%q", name)
	}
	cc.MaxDecompressedLen = c.Compress.MaxDecompressedLen
	return cc, nil
}

// ReadConfig decodes a TOML config. Keys absent from the document take their
// values from DefaultConfig.
func ReadConfig(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config")
	}
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	config := &Config{}
	if err := tree.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	applyDefaults(tree, config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyDefaults(tree *toml.Tree, config *Config) {
	if !tree.Has("log_level") {
		config.LogLevel = DefaultConfig.LogLevel
	}
	if !tree.Has("stream.max_payload_len") {
		config.Stream.MaxPayloadLen = DefaultConfig.Stream.MaxPayloadLen
	}
	if !tree.Has("compress.max_decompressed_len") {
		config.Compress.MaxDecompressedLen = DefaultConfig.Compress.MaxDecompressedLen
	}
	coders := map[string]*CoderConfig{
		coder.NameByteArray:    &config.Coders.ByteArray,
		coder.NameSimpleString: &config.Coders.SimpleString,
		coder.NameSerializable: &config.Coders.Serializable,
	}
	for name, cc := range coders {
		prefix := "coders." + name + "."
		if !tree.Has(prefix + "compress_level") {
			cc.CompressLevel = compress.DefaultLevel
		}
		if !tree.Has(prefix + "algorithm") {
			cc.Algorithm = compress.NameFlate
		}
	}
}

// Validate checks the values a coder or stream would otherwise reject on
// first use.
func (c *Config) Validate() error {
	if _, err := log.NewLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Stream.MaxPayloadLen <= 0 || int64(c.Stream.MaxPayloadLen) > int64(^uint32(0)) {
		return errors.Errorf("invalid stream.max_payload_len %d", c.Stream.MaxPayloadLen)
	}
	if c.Compress.MaxDecompressedLen <= 0 {
		return errors.Errorf("invalid compress.max_decompressed_len %d", c.Compress.MaxDecompressedLen)
	}
	for _, name := range coder.Names() {
		cc, _ := c.Coder(name)
		comp, err := compress.ByName(cc.Algorithm)
		if err != nil {
			return errors.Wrapf(err, "coders.%s", name)
		}
		if err := comp.ValidateLevel(cc.CompressLevel); err != nil {
			return errors.Wrapf(err, "coders.%s", name)
		}
	}
	return nil
}

// MaxPayloadLen returns the stream payload limit as a reader expects it.
func (c *Config) MaxPayloadLen() uint32 {
	if c.Stream.MaxPayloadLen <= 0 {
		return stream.DefaultMaxPayloadLen
	}
	return uint32(c.Stream.MaxPayloadLen)
}
