package cmd

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"coderkit/testutil/testfs"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(ioutil.Discard)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), strings.Join(args, " "))
	return out.String()
}

func TestVarintCommands(t *testing.T) {
	require.Equal(t, "00817f7f7f7f8f\n", run(t, "varint", "encode", "128", "0xffffffff"))

	out := run(t, "varint", "decode", "0081 ffff")
	require.Contains(t, out, "128\t(0x80, 2 bytes)")
	require.Contains(t, out, "127\t(0x7f, 1 bytes)")

	out = run(t, "varint", "inspect", "0081")
	require.Contains(t, out, "0000001")
	require.NotContains(t, out, "terminal byte")
	out = run(t, "varint", "inspect", "00")
	require.Contains(t, out, "input ends before a terminal byte")
}

func TestCoderCommands(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()
	home := filepath.Join(dir, "home")

	require.Contains(t, run(t, "--home", home, "init"), "Successfully initialized")

	out := run(t, "--home", home, "encode", "--coder", "simple_string", "hi")
	lines := strings.Split(out, "\n")
	require.Equal(t, "00680069", lines[0])
	require.Contains(t, lines[1], "coder=simple_string compressed=false input=2 encoded=4")

	out = run(t, "--home", home, "decode", "--coder", "simple_string", "00680069")
	require.Equal(t, "hi\n", out)

	out = run(t, "--home", home, "encode", "--coder", "serializable", "héllo")
	hexOut := strings.Split(out, "\n")[0]
	out = run(t, "--home", home, "decode", "--coder", "serializable", hexOut)
	require.Equal(t, "héllo\n", out)

	require.Contains(t, run(t, "--home", home, "put", "--coder", "byte_array", "greeting", "hello"), "Stored 5 bytes")
	require.Equal(t, "hello\n", run(t, "--home", home, "get", "--coder", "byte_array", "greeting"))
	require.Equal(t, "greeting\n", run(t, "--home", home, "keys", "--coder", "byte_array"))

	out = run(t, "--home", home, "bench", "--coder", "simple_string", "--rounds", "20", "--workers", "3", "bench input")
	require.Contains(t, out, "coderkit_calls_total")
	require.Contains(t, out, "20 round trips")
}

func TestVersionCommand(t *testing.T) {
	require.True(t, strings.HasPrefix(run(t, "version"), "coderctl/"))
}
