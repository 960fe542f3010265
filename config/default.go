package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"coderkit/coder"
	"coderkit/compress"
	"coderkit/log"
	"coderkit/stream"

	"github.com/pkg/errors"
)

const ConfigFile = "config.toml"

var defaultCoderConfig = CoderConfig{
	CompressEnabled: false,
	CompressLevel:   compress.DefaultLevel,
	Algorithm:       compress.NameFlate,
}

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	LogJSON:  false,
	Stream: StreamConfig{
		MaxPayloadLen: stream.DefaultMaxPayloadLen,
	},
	Compress: CompressConfig{
		MaxDecompressedLen: compress.DefaultMaxDecompressedLen,
	},
	Coders: CodersConfig{
		ByteArray:    defaultCoderConfig,
		SimpleString: defaultCoderConfig,
		Serializable: defaultCoderConfig,
	},
}

const defaultConfigTemplateText = `# coderctl Config File

# Sets the log level. Can be one of trace, debug, info, warn, error, or fatal.
log_level = "{{.LogLevel}}"
# Emits logs as JSON instead of text.
log_json = {{.LogJSON}}

# Configures VarInt-framed streams.
[stream]
  # Sets the largest length prefix a stream reader will accept.
  max_payload_len = {{.Stream.MaxPayloadLen}}

# Configures decompression for every coder.
[compress]
  # Sets the largest output decompression may produce.
  max_decompressed_len = {{.Compress.MaxDecompressedLen}}

# Configures each coder. Encoded bytes do not say whether they were
# compressed, so data must be decoded with the same settings it was
# encoded with.
[coders]
{{- range $name, $c := coders .}}

  [coders.{{$name}}]
    # Compresses the coder's output.
    compress_enabled = {{$c.CompressEnabled}}
    # Sets the compression level. -1 selects the algorithm's default.
    compress_level = {{$c.CompressLevel}}
    # Sets the compression algorithm. Can be one of flate, zstd, or snappy.
    algorithm = "{{$c.Algorithm}}"
{{- end}}
`

var defaultConfigTemplate *template.Template

func codersByName(c Config) map[string]CoderConfig {
	return map[string]CoderConfig{
		coder.NameByteArray:    c.Coders.ByteArray,
		coder.NameSimpleString: c.Coders.SimpleString,
		coder.NameSerializable: c.Coders.Serializable,
	}
}

func GenerateConfigFile(c Config) []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, c); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func GenerateDefaultConfigFile() []byte {
	return GenerateConfigFile(DefaultConfig)
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFile), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFile), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig").Funcs(template.FuncMap{
		"coders": codersByName,
	})
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
