/*
Package varint implements the self-terminating variable-length encoding used
for unsigned 32-bit integers throughout coderkit.

A value is split into 7-bit groups, least-significant group first. Each group
is written as one byte holding the group in its low seven bits. The high bit
of a byte is the terminal marker: it is clear on every byte except the last
one of the value, where it is set. A value therefore occupies between one and
five bytes:

	0x00000000 - 0x0000007f  1 byte
	0x00000080 - 0x00003fff  2 bytes
	0x00004000 - 0x001fffff  3 bytes
	0x00200000 - 0x0fffffff  4 bytes
	0x10000000 - 0xffffffff  5 bytes

Note that this is the inverse of the usual protobuf-style continuation bit,
so binary.Uvarint cannot read these bytes. For example:

	Encode(0x80)       == []byte{0x00, 0x81}
	Encode(0xffffffff) == []byte{0x7f, 0x7f, 0x7f, 0x7f, 0x8f}

Decoding stops right after the first byte with the marker set, so a buffer may
hold several values back to back:

	v, n, err := varint.Decode(buf, 0)
	w, m, err := varint.Decode(buf, n)

Input that ends before a byte with the marker set fails with ErrTruncated.
Since no value needs more than five bytes, five bytes without the marker fail
with ErrOverflow instead of reading further. Bits of a fifth byte above bit
31 are dropped.
*/
package varint
