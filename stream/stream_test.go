package stream

import (
	"bytes"
	"io"
	"testing"

	"coderkit/varint"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteASCII(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteASCII("test"))
	require.Equal(t, []byte{0x84, 't', 'e', 's', 't'}, buf.Bytes())
	require.EqualValues(t, 5, w.Count())

	err := w.WriteASCII("tést")
	require.Error(t, err)
	require.Equal(t, ErrNotASCII, errors.Cause(err))
	require.EqualValues(t, 5, w.Count())
}

func TestWriter_WriteString(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteString("hi"))
	require.Equal(t, []byte{0x84, 0x00, 'h', 0x00, 'i'}, buf.Bytes())

	buf.Reset()
	// U+1F389 is a surrogate pair: two units, four bytes.
	require.NoError(t, w.WriteString("\U0001F389"))
	require.Equal(t, []byte{0x84, 0xd8, 0x3c, 0xdf, 0x89}, buf.Bytes())
}

func TestWriter_WriteInt(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInt(0x80))
	require.NoError(t, w.WriteInt(0xffffffff))
	require.Equal(t, []byte{0x00, 0x81, 0x7f, 0x7f, 0x7f, 0x7f, 0x8f}, buf.Bytes())
}

func TestReadWrite_RoundTrip(t *testing.T) {
	texts := []string{
		"",
		"plain ascii",
		"héllo, 世界 \U0001F389",
		"\uFEFFleading bom is kept",
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInt(300))
	require.NoError(t, w.WriteASCII("test"))
	for _, s := range texts {
		require.NoError(t, w.WriteString(s))
	}
	require.NoError(t, w.WriteBytes([]byte{0xca, 0xfe}))
	written := w.Count()

	r := NewReader(bytes.NewReader(buf.Bytes()))
	v, err := r.ReadInt()
	require.NoError(t, err)
	assert.EqualValues(t, 300, v)
	s, err := r.ReadASCII()
	require.NoError(t, err)
	assert.Equal(t, "test", s)
	for _, exp := range texts {
		s, err := r.ReadString()
		require.NoError(t, err)
		assert.Equal(t, exp, s)
	}
	b, err := r.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, b)
	assert.Equal(t, written, r.Count())

	_, err = r.ReadInt()
	require.Equal(t, io.EOF, err)
}

func TestReader_DoesNotOverread(t *testing.T) {
	src := bytes.NewReader([]byte{0x82, 'o', 'k', 0xaa, 0xbb})
	r := NewReader(src)
	s, err := r.ReadASCII()
	require.NoError(t, err)
	require.Equal(t, "ok", s)
	require.Equal(t, 2, src.Len())
}

func TestReader_Errors(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x84, 't', 'e'}))
	_, err := r.ReadASCII()
	require.Equal(t, io.ErrUnexpectedEOF, err)

	r = NewReader(bytes.NewReader([]byte{0x7f}))
	_, err = r.ReadString()
	require.Equal(t, varint.ErrTruncated, err)

	r = NewReader(bytes.NewReader([]byte{0x83, 0x00, 'a', 0x00}))
	_, err = r.ReadString()
	require.Equal(t, ErrOddLength, errors.Cause(err))

	r = NewReader(bytes.NewReader([]byte{0x81, 0xe9}))
	_, err = r.ReadASCII()
	require.Equal(t, ErrNotASCII, errors.Cause(err))

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteInt(DefaultMaxPayloadLen+1))
	r = NewReader(bytes.NewReader(buf.Bytes()))
	_, err = r.ReadBytes()
	require.Equal(t, ErrPayloadTooLarge, errors.Cause(err))

	r = NewReader(bytes.NewReader([]byte{0x85, 1, 2, 3, 4, 5}))
	r.MaxPayloadLen = 4
	_, err = r.ReadBytes()
	require.Equal(t, ErrPayloadTooLarge, errors.Cause(err))
}

func TestUTF16(t *testing.T) {
	enc := EncodeUTF16("Aé")
	require.Equal(t, []byte{0x00, 0x41, 0x00, 0xe9}, enc)
	dec, err := DecodeUTF16(enc)
	require.NoError(t, err)
	require.Equal(t, "Aé", dec)

	require.Equal(t, []byte{}, EncodeUTF16(""))

	// lone high surrogate
	dec, err = DecodeUTF16([]byte{0xd8, 0x3c, 0x00, 0x41})
	require.NoError(t, err)
	require.Equal(t, "\uFFFDA", dec)
}

func TestCountingReader(t *testing.T) {
	cr := NewCountingReader(bytes.NewReader(make([]byte, 32)))
	b := make([]byte, 16)
	_, err := cr.Read(b)
	require.NoError(t, err)
	assert.EqualValues(t, 16, cr.Count())
	cr.Reset()
	assert.EqualValues(t, 0, cr.Count())
}

func TestCountingWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCountingWriter(&buf)
	_, err := cw.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.EqualValues(t, 3, cw.Count())
	cw.Reset()
	assert.EqualValues(t, 0, cw.Count())
}
