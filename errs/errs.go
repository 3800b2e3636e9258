// Package errs defines the sentinel errors returned by vint packages.
//
// Callers compare against these values with errors.Is; packages may wrap them
// with additional context using fmt.Errorf and the %w verb.
package errs

import "errors"

// Codec errors.
var (
	// ErrValueOutOfRange is returned when a value cannot be represented by the
	// selected scheme, e.g. a value above 0xFFFFFF for the compact quad scheme.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrTruncatedInput is returned when the source buffer ends before an encoded
	// value or quad is complete.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInsufficientBuffer is returned when an empty source is decoded or the
	// destination is too small to hold the encoded bytes.
	ErrInsufficientBuffer = errors.New("insufficient buffer")

	// ErrOverflow is returned when a continuation-bit sequence encodes more than 32 bits.
	ErrOverflow = errors.New("varint overflows uint32")
)

// Block errors.
var (
	// ErrInvalidHeaderSize is returned when fewer than section.HeaderSize bytes are
	// available for a block header.
	ErrInvalidHeaderSize = errors.New("invalid block header size")

	// ErrInvalidMagic is returned when the header options do not carry the block magic.
	ErrInvalidMagic = errors.New("invalid block magic number")

	// ErrInvalidScheme is returned for an unknown encoding scheme byte or option.
	ErrInvalidScheme = errors.New("invalid encoding scheme")

	// ErrInvalidCompression is returned for an unknown compression byte or option.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrInvalidFlag is returned when reserved header option bits are set.
	ErrInvalidFlag = errors.New("invalid block flag")

	// ErrChecksumMismatch is returned when the stored payload does not match the
	// header checksum.
	ErrChecksumMismatch = errors.New("block checksum mismatch")

	// ErrInvalidPayloadSize is returned when the payload length, raw size or value
	// count in the header disagree with the payload.
	ErrInvalidPayloadSize = errors.New("invalid block payload size")

	// ErrPayloadTooLarge is returned when a payload would decompress to more bytes
	// than allowed. It is reported before the output is allocated where the
	// compressed format announces its size.
	ErrPayloadTooLarge = errors.New("payload exceeds size limit")

	// ErrEncoderFinished is returned when an encoder is used after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")
)
