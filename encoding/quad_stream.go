package encoding

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/internal/pool"
)

// QuadEncoder groups values into quads and writes them with a QuadCodec.
//
// Values are held until four are available. Flush writes the remainder as a quad
// padded with zeros, which costs one byte per padded slot with FixedQuad and nothing
// with CompactQuad. It is not safe for concurrent use.
type QuadEncoder struct {
	codec    *QuadCodec
	buf      *pool.ByteBuffer
	pending  [4]uint32
	npending int
	count    int
}

var _ ColumnarEncoder = (*QuadEncoder)(nil)

// NewQuadEncoder creates an encoder for codec backed by a pooled buffer.
func NewQuadEncoder(codec *QuadCodec) *QuadEncoder {
	return &QuadEncoder{
		codec: codec,
		buf:   pool.GetStreamBuffer(),
	}
}

// Write range-checks v and queues it; a quad is written once four values are queued.
func (e *QuadEncoder) Write(v uint32) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}
	if _, err := e.codec.ByteLen(v); err != nil {
		return fmt.Errorf("%s value %d: %w", e.codec.Scheme(), v, err)
	}

	e.push(v)

	return nil
}

// WriteSlice range-checks every value before queuing any of them.
func (e *QuadEncoder) WriteSlice(values []uint32) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}
	for i, v := range values {
		if _, err := e.codec.ByteLen(v); err != nil {
			return fmt.Errorf("%s value %d at index %d: %w", e.codec.Scheme(), v, i, err)
		}
	}

	e.buf.Grow((len(values)/4 + 1) * MaxQuadLen)
	for _, v := range values {
		e.push(v)
	}

	return nil
}

// Bytes returns the complete quads written so far, or nil after Finish.
func (e *QuadEncoder) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Len returns the number of values written, including queued ones.
func (e *QuadEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes, excluding queued values.
func (e *QuadEncoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Flush writes queued values as a zero-padded quad.
func (e *QuadEncoder) Flush() error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}
	if e.npending == 0 {
		return nil
	}

	clear(e.pending[e.npending:])
	e.writeQuad()

	return nil
}

// Reset discards encoded and queued values and keeps the buffer.
func (e *QuadEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.npending = 0
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *QuadEncoder) Finish() {
	if e.buf != nil {
		pool.PutStreamBuffer(e.buf)
		e.buf = nil
	}
	e.npending = 0
	e.count = 0
}

func (e *QuadEncoder) push(v uint32) {
	e.pending[e.npending] = v
	e.npending++
	e.count++

	if e.npending == len(e.pending) {
		e.writeQuad()
	}
}

// writeQuad encodes the pending values, which were range-checked on Write.
func (e *QuadEncoder) writeQuad() {
	e.buf.Grow(MaxQuadLen)
	start := e.buf.Len()
	p := &e.pending
	n, err := e.codec.Put(e.buf.Tail(MaxQuadLen), p[0], p[1], p[2], p[3])
	if err != nil {
		panic(fmt.Sprintf("quad encoder: validated values failed to encode: %v", err))
	}
	e.buf.SetLength(start + n)
	e.npending = 0
}

// QuadDecoder decodes quad streams produced by QuadEncoder.
type QuadDecoder struct {
	codec *QuadCodec
}

var _ ColumnarDecoder = QuadDecoder{}

// NewQuadDecoder creates a decoder for codec.
func NewQuadDecoder(codec *QuadCodec) QuadDecoder {
	return QuadDecoder{codec: codec}
}

// All yields up to count values quad by quad, dropping the padding of the last quad.
func (d QuadDecoder) All(data []byte, count int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		pos := 0
		for remaining := count; remaining > 0; remaining -= 4 {
			values, n, err := d.codec.Decode(data[pos:])
			if err != nil {
				return
			}
			pos += n

			for _, v := range values[:min(remaining, 4)] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// At skips whole quads using the header table and decodes the quad holding index.
func (d QuadDecoder) At(data []byte, index int, count int) (uint32, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	pos := 0
	for range index / 4 {
		n, err := d.codec.Skip(data[pos:])
		if err != nil {
			return 0, false
		}
		pos += n
	}

	values, _, err := d.codec.Decode(data[pos:])
	if err != nil {
		return 0, false
	}

	return values[index%4], true
}

// Decode appends count values to dst.
func (d QuadDecoder) Decode(dst []uint32, data []byte, count int) ([]uint32, error) {
	dst = slices.Grow(dst, max(count, 0))

	pos := 0
	for quad := 0; quad*4 < count; quad++ {
		values, n, err := d.codec.Decode(data[pos:])
		if err != nil {
			return dst, fmt.Errorf("%s quad %d: %w", d.codec.Scheme(), quad, err)
		}
		pos += n
		dst = append(dst, values[:min(count-quad*4, 4)]...)
	}

	return dst, nil
}

// Span returns the number of bytes occupied by the quads holding count values.
func (d QuadDecoder) Span(data []byte, count int) (int, error) {
	pos := 0
	for quad := 0; quad*4 < count; quad++ {
		n, err := d.codec.Skip(data[pos:])
		if err != nil {
			return pos, fmt.Errorf("%s quad %d: %w", d.codec.Scheme(), quad, err)
		}
		pos += n
	}

	return pos, nil
}
