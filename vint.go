// Package vint encodes sequences of uint32 values with variable-length integer codecs.
//
// Three schemes are available:
//   - format.SchemeUvarint: continuation-bit encoding, 1-5 bytes per value, most
//     significant group first
//   - format.SchemeQuad: four values behind one header byte, 1-4 bytes per value
//   - format.SchemeCompactQuad: like SchemeQuad, but zero takes no bytes and values are
//     limited to 0xFFFFFF
//
// The codecs themselves live in the encoding package and work on caller-provided
// buffers. This package wraps them into self-describing blocks (package block) that
// record the scheme, an optional compression stage and an xxHash64 checksum.
//
// # Basic Usage
//
//	data, err := vint.EncodeValues([]uint32{1, 300, 70000, 0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := vint.DecodeValues(data)
//
// Using the codecs directly:
//
//	buf := make([]byte, encoding.MaxQuadLen)
//	n, err := encoding.FixedQuad.Put(buf, 1235, 123456, 1234567, 12345678)
//	quad, _, err := encoding.FixedQuad.Decode(buf[:n])
package vint

import (
	"github.com/arloliu/vint/block"
	"github.com/arloliu/vint/format"
	"github.com/arloliu/vint/internal/options"
)

var defaultEncoderOptions = options.Group(
	block.WithScheme(format.SchemeCompactQuad),
	block.WithCompression(format.CompressionNone),
	block.WithLittleEndian(),
	block.WithChecksum(true),
)

// NewEncoder creates a block encoder with custom options.
//
// Available options:
//   - block.WithScheme(format.SchemeUvarint|SchemeQuad|SchemeCompactQuad)
//   - block.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - block.WithLittleEndian() / block.WithBigEndian() / block.WithNativeEndian()
//   - block.WithChecksum(true|false)
//
// Example:
//
//	encoder, err := vint.NewEncoder(
//	    block.WithScheme(format.SchemeQuad),
//	    block.WithCompression(format.CompressionZstd),
//	)
func NewEncoder(opts ...block.EncoderOption) (*block.Encoder, error) {
	return block.NewEncoder(opts...)
}

// NewDefaultEncoder creates a block encoder with the recommended settings:
//   - Compact quad scheme (values up to 0xFFFFFF, zero costs nothing)
//   - No compression
//   - Little-endian header fields
//   - xxHash64 payload checksum
//
// Use NewEncoder with block.WithScheme(format.SchemeQuad) when values may exceed
// 0xFFFFFF.
func NewDefaultEncoder() (*block.Encoder, error) {
	return block.NewEncoder(defaultEncoderOptions)
}

// NewDecoder creates a decoder for a serialized block.
//
// The scheme, compression and byte order are read from the block header.
func NewDecoder(data []byte) (*block.Decoder, error) {
	return block.NewDecoder(data)
}

// EncodeValues encodes values into a serialized block.
//
// Without options the default settings of NewDefaultEncoder apply; options given here
// override them.
func EncodeValues(values []uint32, opts ...block.EncoderOption) ([]byte, error) {
	all := make([]block.EncoderOption, 0, len(opts)+1)
	all = append(all, defaultEncoderOptions)
	all = append(all, opts...)

	encoder, err := block.NewEncoder(all...)
	if err != nil {
		return nil, err
	}

	if err := encoder.WriteSlice(values); err != nil {
		_, _ = encoder.Finish()
		return nil, err
	}

	blk, err := encoder.Finish()
	if err != nil {
		return nil, err
	}

	return blk.Bytes(), nil
}

// DecodeValues decodes all values of a serialized block.
func DecodeValues(data []byte) ([]uint32, error) {
	decoder, err := block.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Values()
}
