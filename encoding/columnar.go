package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/format"
)

// ColumnarEncoder appends a sequence of uint32 values to an internal buffer using one
// of the codec schemes.
type ColumnarEncoder interface {
	// Write encodes a single value.
	//
	// Returns errs.ErrValueOutOfRange if the scheme cannot hold the value, or
	// errs.ErrEncoderFinished after Finish.
	Write(v uint32) error

	// WriteSlice encodes values in order. The slice is validated before anything is
	// written, so a failing call leaves the encoder unchanged.
	WriteSlice(values []uint32) error

	// Bytes returns the encoded bytes written so far.
	// The returned slice is valid until the next call to Write, WriteSlice, Flush or Reset.
	// Values still pending in a partial quad are not included until Flush.
	Bytes() []byte

	// Len returns the number of values written, including pending ones.
	Len() int

	// Size returns the number of encoded bytes in the buffer.
	Size() int

	// Flush writes any pending values. Quad encoders pad a trailing partial quad with
	// zeros; count-based decoding ignores the padding. Flush must only be called once
	// the sequence is complete.
	Flush() error

	// Reset discards all encoded data and pending values and keeps the buffer.
	Reset()

	// Finish returns the buffer to the pool. The encoder must not be used afterwards;
	// writes return errs.ErrEncoderFinished and Bytes returns nil.
	Finish()
}

// ColumnarDecoder reads values produced by the matching ColumnarEncoder.
// Decoders hold no mutable state and are safe for concurrent use.
type ColumnarDecoder interface {
	// All yields up to count values decoded from data. Iteration stops early if
	// data is malformed or shorter than count values.
	All(data []byte, count int) iter.Seq[uint32]

	// At returns the value at index, skipping the values before it without decoding.
	// The second result is false if index is outside [0, count) or data is malformed.
	At(data []byte, index int, count int) (uint32, bool)

	// Decode appends count values to dst. Errors are wrapped with the index of the
	// value that failed.
	Decode(dst []uint32, data []byte, count int) ([]uint32, error)

	// Span returns the number of bytes the first count values occupy in data,
	// including quad padding, without decoding them.
	Span(data []byte, count int) (int, error)
}

// QuadCodecFor returns the quad codec of scheme, or nil for non-quad schemes.
func QuadCodecFor(scheme format.SchemeType) *QuadCodec {
	switch scheme { //nolint:exhaustive
	case format.SchemeQuad:
		return FixedQuad
	case format.SchemeCompactQuad:
		return CompactQuad
	default:
		return nil
	}
}

// NewColumnarEncoder creates a stream encoder for scheme.
func NewColumnarEncoder(scheme format.SchemeType) (ColumnarEncoder, error) {
	if scheme == format.SchemeUvarint {
		return NewUvarintEncoder(), nil
	}
	if codec := QuadCodecFor(scheme); codec != nil {
		return NewQuadEncoder(codec), nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, scheme)
}

// NewColumnarDecoder creates a stream decoder for scheme.
func NewColumnarDecoder(scheme format.SchemeType) (ColumnarDecoder, error) {
	if scheme == format.SchemeUvarint {
		return NewUvarintDecoder(), nil
	}
	if codec := QuadCodecFor(scheme); codec != nil {
		return NewQuadDecoder(codec), nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, scheme)
}
