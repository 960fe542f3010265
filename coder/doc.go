/*
Package coder turns typed values into byte buffers and back.

A coder is built once from a Config and then hands out any number of Encoder
and Decoder values. Encoding runs the coder's base encoding and, when
Config.CompressEnabled is set, passes the result through the configured
compression algorithm:

	value -> base encoding -> [compress] -> bytes
	bytes -> [decompress] -> base decoding -> value

Three coders are provided:

	- ByteArrayCoder: the base encoding is the identity on []byte.
	- SimpleStringCoder: text as big-endian UTF-16 code units, two bytes per
	  unit, with no length prefix; the buffer boundary ends the value.
	- SerializableCoder: any T, through a caller supplied marshal.Marshaller.

The encoded bytes do not record whether compression was applied or with which
algorithm. A Decoder must therefore come from a coder whose Config matches the
one used to encode. This is the caller's responsibility and is not detected:
decoding compressed bytes without decompression returns the compressed bytes
to the base decoding, and decompressing plain bytes usually, but not always,
fails inside the compressor.

Encoders and Decoders hold no mutable state and are safe for concurrent use.
*/
package coder
