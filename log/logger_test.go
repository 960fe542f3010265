package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	for _, l := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		parsed, err := NewLevel(l.String())
		require.NoError(t, err)
		require.Equal(t, l, parsed)
	}

	parsed, err := NewLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, parsed)

	_, err = NewLevel("loud")
	require.Error(t, err)
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetJSON(true)
	defer func() {
		SetJSON(false)
		SetOutput(os.Stderr)
		SetLevel(LevelTrace)
	}()
	SetLevel(LevelDebug)

	lgr := WithModule("test").Sub("coder", "byte_array")
	lgr.Trace("hidden")
	require.Equal(t, 0, buf.Len())

	lgr.Info("encoded", "size", 12)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "encoded", entry["msg"])
	require.Equal(t, "test", entry["module"])
	require.Equal(t, "byte_array", entry["coder"])
	require.EqualValues(t, 12, entry["size"])

	require.Panics(t, func() {
		lgr.Info("odd", "key")
	})
}
