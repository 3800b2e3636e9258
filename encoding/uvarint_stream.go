package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/internal/pool"
)

// UvarintEncoder writes values back to back with the continuation-bit codec.
// It is not safe for concurrent use.
type UvarintEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder = (*UvarintEncoder)(nil)

// NewUvarintEncoder creates an encoder backed by a pooled buffer.
func NewUvarintEncoder() *UvarintEncoder {
	return &UvarintEncoder{buf: pool.GetStreamBuffer()}
}

// Write encodes a single value.
func (e *UvarintEncoder) Write(v uint32) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}

	e.buf.Grow(MaxUvarintLen32)
	e.put(v)
	e.count++

	return nil
}

// WriteSlice encodes values in order, growing the buffer once for the worst case.
func (e *UvarintEncoder) WriteSlice(values []uint32) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}

	e.buf.Grow(len(values) * MaxUvarintLen32)
	for _, v := range values {
		e.put(v)
	}
	e.count += len(values)

	return nil
}

// Bytes returns the encoded bytes, or nil after Finish.
func (e *UvarintEncoder) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *UvarintEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
func (e *UvarintEncoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Flush is a no-op: continuation-bit values are written immediately.
func (e *UvarintEncoder) Flush() error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}

	return nil
}

// Reset discards the encoded values and keeps the buffer.
func (e *UvarintEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *UvarintEncoder) Finish() {
	if e.buf != nil {
		pool.PutStreamBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// put writes v into spare capacity reserved by the caller.
func (e *UvarintEncoder) put(v uint32) {
	start := e.buf.Len()
	n, _ := PutUvarint32(e.buf.Tail(MaxUvarintLen32), v)
	e.buf.SetLength(start + n)
}

// UvarintDecoder decodes continuation-bit streams.
type UvarintDecoder struct{}

var _ ColumnarDecoder = UvarintDecoder{}

// NewUvarintDecoder creates a continuation-bit stream decoder.
func NewUvarintDecoder() UvarintDecoder {
	return UvarintDecoder{}
}

// All yields up to count values, stopping at the first malformed value.
func (d UvarintDecoder) All(data []byte, count int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		pos := 0
		for range count {
			v, n, err := Uvarint32(data[pos:])
			if err != nil {
				return
			}
			pos += n
			if !yield(v) {
				return
			}
		}
	}
}

// At skips index values and decodes the next one.
func (d UvarintDecoder) At(data []byte, index int, count int) (uint32, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	pos := 0
	for range index {
		n, err := SkipUvarint32(data[pos:])
		if err != nil {
			return 0, false
		}
		pos += n
	}

	v, _, err := Uvarint32(data[pos:])
	if err != nil {
		return 0, false
	}

	return v, true
}

// Decode appends count values to dst.
func (d UvarintDecoder) Decode(dst []uint32, data []byte, count int) ([]uint32, error) {
	pos := 0
	for i := range count {
		v, n, err := Uvarint32(data[pos:])
		if err != nil {
			return dst, fmt.Errorf("uvarint value %d: %w", i, err)
		}
		pos += n
		dst = append(dst, v)
	}

	return dst, nil
}

// Span returns the number of bytes occupied by count values.
func (d UvarintDecoder) Span(data []byte, count int) (int, error) {
	pos := 0
	for i := range count {
		n, err := SkipUvarint32(data[pos:])
		if err != nil {
			return pos, fmt.Errorf("uvarint value %d: %w", i, err)
		}
		pos += n
	}

	return pos, nil
}
