package stream

import (
	"io"
	"sync/atomic"
)

// CountingReader counts the bytes read through it.
type CountingReader struct {
	r     io.Reader
	count uint64
}

func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{
		r: r,
	}
}

func (c *CountingReader) Count() uint64 {
	return atomic.LoadUint64(&c.count)
}

func (c *CountingReader) Reset() {
	atomic.StoreUint64(&c.count, 0)
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	atomic.AddUint64(&c.count, uint64(n))
	return n, err
}

// CountingWriter counts the bytes written through it.
type CountingWriter struct {
	w     io.Writer
	count uint64
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{
		w: w,
	}
}

func (c *CountingWriter) Count() uint64 {
	return atomic.LoadUint64(&c.count)
}

func (c *CountingWriter) Reset() {
	atomic.StoreUint64(&c.count, 0)
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	atomic.AddUint64(&c.count, uint64(n))
	return n, err
}

// byteReader reads one byte at a time so that nothing past the current field
// is pulled from the source.
type byteReader struct {
	r   io.Reader
	buf []byte
}

func newByteReader(r io.Reader) *byteReader {
	return &byteReader{
		r:   r,
		buf: make([]byte, 1, 1),
	}
}

func (r *byteReader) ReadByte() (byte, error) {
	_, err := io.ReadFull(r.r, r.buf)
	if err != nil {
		return 0, err
	}
	return r.buf[0], nil
}
