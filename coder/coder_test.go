package coder

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"coderkit/compress"
	"coderkit/log"
	"coderkit/marshal"
	"coderkit/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func sequence(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

func redundant(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 8)
	}
	return out
}

func TestByteArrayCoder_Uncompressed(t *testing.T) {
	c, err := NewByteArrayCoder(DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, NameByteArray, c.Name())

	in := sequence(256)
	enc, err := c.NewEncoder().Encode(in)
	require.NoError(t, err)
	require.Equal(t, in, enc)

	out, err := c.NewDecoder().Decode(enc)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestByteArrayCoder_Compressed(t *testing.T) {
	plain, err := NewByteArrayCoder(DefaultConfig())
	require.NoError(t, err)

	for _, algo := range compress.Names() {
		cfg := Compressed(compress.DefaultLevel)
		cfg.Algorithm = algo
		c, err := NewByteArrayCoder(cfg)
		require.NoError(t, err)

		in := redundant(512)
		plainEnc, err := plain.NewEncoder().Encode(in)
		require.NoError(t, err)
		enc, err := c.NewEncoder().Encode(in)
		require.NoError(t, err)
		require.Less(t, len(enc), len(plainEnc), algo)

		out, err := c.NewDecoder().Decode(enc)
		require.NoError(t, err)
		require.Equal(t, in, out, algo)
	}
}

func TestSerializableCoder_CompressedString(t *testing.T) {
	plain, err := NewSerializableCoder[string](DefaultConfig(), marshal.String{})
	require.NoError(t, err)
	c, err := NewSerializableCoder[string](Compressed(compress.DefaultLevel), marshal.String{})
	require.NoError(t, err)
	require.Equal(t, NameSerializable, c.Name())

	in := strings.Repeat("0", 32)
	plainEnc, err := plain.NewEncoder().Encode(in)
	require.NoError(t, err)
	enc, err := c.NewEncoder().Encode(in)
	require.NoError(t, err)
	require.Less(t, len(enc), len(plainEnc))

	out, err := c.NewDecoder().Decode(enc)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSerializableCoder_MarshalErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	m := marshal.Funcs[int]{
		MarshalFunc: func(int) ([]byte, error) {
			return nil, boom
		},
		UnmarshalFunc: func([]byte) (int, error) {
			return 0, boom
		},
	}
	c, err := NewSerializableCoder[int](DefaultConfig(), m)
	require.NoError(t, err)
	_, err = c.NewEncoder().Encode(1)
	require.Equal(t, boom, err)
	_, err = c.NewDecoder().Decode([]byte{1})
	require.Equal(t, boom, err)

	_, err = NewSerializableCoder[int](DefaultConfig(), nil)
	require.Equal(t, ErrNilMarshaller, err)
}

func TestSimpleStringCoder(t *testing.T) {
	texts := []string{
		"",
		"plain",
		"mixed ascii and ünïcödé, 日本語 \U0001F600",
	}
	for _, cfg := range []Config{DefaultConfig(), Compressed(9)} {
		c, err := NewSimpleStringCoder(cfg)
		require.NoError(t, err)
		enc := c.NewEncoder()
		dec := c.NewDecoder()
		for _, s := range texts {
			b, err := enc.Encode(s)
			require.NoError(t, err)
			out, err := dec.Decode(b)
			require.NoError(t, err)
			require.Equal(t, s, out)
		}
	}

	c, err := NewSimpleStringCoder(DefaultConfig())
	require.NoError(t, err)
	b, err := c.NewEncoder().Encode("hi")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 'h', 0x00, 'i'}, b)
}

func TestCoder_InvalidConfig(t *testing.T) {
	cfg := Compressed(compress.DefaultLevel)
	cfg.Algorithm = "lzma"
	_, err := NewByteArrayCoder(cfg)
	require.Equal(t, compress.ErrUnknownAlgorithm, errors.Cause(err))

	_, err = NewByteArrayCoder(Compressed(42))
	require.Equal(t, compress.ErrInvalidLevel, errors.Cause(err))

	// level is not consulted when compression is off
	cfg = DefaultConfig()
	cfg.CompressLevel = 42
	_, err = NewByteArrayCoder(cfg)
	require.NoError(t, err)
}

// The encoded bytes carry no compression flag. Decoding with a mismatched
// Config is the caller's error and is not detected.
func TestCoder_MismatchedConfig(t *testing.T) {
	compressed, err := NewByteArrayCoder(Compressed(compress.DefaultLevel))
	require.NoError(t, err)
	plain, err := NewByteArrayCoder(DefaultConfig())
	require.NoError(t, err)

	in := redundant(512)
	enc, err := compressed.NewEncoder().Encode(in)
	require.NoError(t, err)

	out, err := plain.NewDecoder().Decode(enc)
	require.NoError(t, err)
	require.False(t, bytes.Equal(in, out))

	_, err = compressed.NewDecoder().Decode([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}

func TestCoder_Concurrent(t *testing.T) {
	c, err := NewSimpleStringCoder(Compressed(compress.DefaultLevel))
	require.NoError(t, err)
	enc := c.NewEncoder()
	dec := c.NewDecoder()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		s := strings.Repeat("täst ", i+1)
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				b, err := enc.Encode(s)
				if err != nil {
					return err
				}
				out, err := dec.Decode(b)
				if err != nil {
					return err
				}
				if out != s {
					return errors.Errorf("got %q, want %q", out, s)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestCoder_Metrics(t *testing.T) {
	col := metrics.NewCollector(prometheus.NewRegistry())
	c, err := NewByteArrayCoder(Compressed(compress.DefaultLevel), WithMetrics(col))
	require.NoError(t, err)

	enc, err := c.NewEncoder().Encode(redundant(512))
	require.NoError(t, err)
	_, err = c.NewDecoder().Decode(enc)
	require.NoError(t, err)
	_, err = c.NewDecoder().Decode([]byte{0xff})
	require.Error(t, err)

	assert.EqualValues(t, 1, testutil.ToFloat64(col.Calls.WithLabelValues(NameByteArray, metrics.OpEncode)))
	assert.EqualValues(t, 512, testutil.ToFloat64(col.PlainBytes.WithLabelValues(NameByteArray, metrics.OpEncode)))
	assert.EqualValues(t, len(enc), testutil.ToFloat64(col.EncodedBytes.WithLabelValues(NameByteArray, metrics.OpEncode)))
	assert.EqualValues(t, 2, testutil.ToFloat64(col.Calls.WithLabelValues(NameByteArray, metrics.OpDecode)))
	assert.EqualValues(t, 1, testutil.ToFloat64(col.Errors.WithLabelValues(NameByteArray, metrics.OpDecode)))
}

func TestCoder_ConstructionLogFields(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetJSON(true)
	log.SetLevel(log.LevelDebug)
	defer func() {
		log.SetJSON(false)
		log.SetOutput(os.Stderr)
		log.SetLevel(log.LevelTrace)
	}()

	_, err := NewByteArrayCoder(Compressed(compress.DefaultLevel))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "created coder", entry["msg"])
	require.Equal(t, "debug", entry["level"])
	require.EqualValues(t, compress.DefaultLevel, entry["compress_level"])
	require.Equal(t, compress.NameFlate, entry["algorithm"])
	require.NotContains(t, entry, "fields.level")
}

func TestCoder_DecompressLimit(t *testing.T) {
	cfg := Compressed(compress.DefaultLevel)
	cfg.MaxDecompressedLen = 256
	c, err := NewByteArrayCoder(cfg)
	require.NoError(t, err)

	enc, err := c.NewEncoder().Encode(redundant(512))
	require.NoError(t, err)
	_, err = c.NewDecoder().Decode(enc)
	require.Equal(t, compress.ErrTooLarge, errors.Cause(err))

	enc, err = c.NewEncoder().Encode(redundant(256))
	require.NoError(t, err)
	out, err := c.NewDecoder().Decode(enc)
	require.NoError(t, err)
	require.Equal(t, redundant(256), out)
}
