package encoding

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/format"
)

// QuadCodec encodes four uint32 values behind one shared header byte.
//
// Layout:
//
//	[header][slot 1 bytes][slot 2 bytes][slot 3 bytes][slot 4 bytes]
//
// The header holds four 2-bit length fields, slot 1 in bits 7-6 and slot 4 in bits
// 1-0. Each slot is the value's low bytes in little-endian order, truncated to the
// minimum length for the value.
//
// Two codecs are provided:
//   - FixedQuad: fields store length-1, every value takes 1-4 bytes.
//   - CompactQuad: fields store the length, zero takes no bytes, values are capped at
//     MaxCompactValue.
//
// Decoding looks the header up in a 256-entry table generated once at startup, so the
// hot path never shifts or masks the header. Both codecs are immutable and safe for
// concurrent use.
type QuadCodec struct {
	scheme format.SchemeType
	rule   slotRule
	tables *quadTables
}

var (
	// FixedQuad is the fixed-slot quad codec: 1-4 bytes per value, full uint32 range.
	FixedQuad = newQuadCodec(format.SchemeQuad, fixedRule)

	// CompactQuad is the compact quad codec: 0-3 bytes per value, values up to 0xFFFFFF.
	CompactQuad = newQuadCodec(format.SchemeCompactQuad, compactRule)
)

func newQuadCodec(scheme format.SchemeType, rule slotRule) *QuadCodec {
	return &QuadCodec{
		scheme: scheme,
		rule:   rule,
		tables: newQuadTables(rule),
	}
}

// Scheme returns the scheme implemented by the codec.
func (c *QuadCodec) Scheme() format.SchemeType {
	return c.scheme
}

// MaxValue returns the largest value the codec accepts.
func (c *QuadCodec) MaxValue() uint32 {
	return c.rule.maxValue
}

// ByteLen returns the slot length for v, or errs.ErrValueOutOfRange.
func (c *QuadCodec) ByteLen(v uint32) (int, error) {
	return c.rule.byteLen(v)
}

// Lengths returns the four slot lengths described by header.
func (c *QuadCodec) Lengths(header byte) [4]uint8 {
	return c.tables.lengths[header]
}

// PayloadLen returns the number of bytes following header.
func (c *QuadCodec) PayloadLen(header byte) int {
	return int(c.tables.payload[header])
}

// Header builds the header byte for four values without encoding them.
func (c *QuadCodec) Header(v1, v2, v3, v4 uint32) (byte, error) {
	lens, _, err := c.slotLengths(v1, v2, v3, v4)
	if err != nil {
		return 0, err
	}

	var header byte
	for _, l := range lens {
		header = header<<quadFieldBits | c.rule.field(l)
	}

	return header, nil
}

// Size returns the encoded size of the quad: the header byte plus each value's length.
func (c *QuadCodec) Size(v1, v2, v3, v4 uint32) (int, error) {
	_, size, err := c.slotLengths(v1, v2, v3, v4)

	return size, err
}

// Put encodes the quad into dst and returns the number of bytes written.
//
// All values are validated and the size is checked before anything is written:
//   - errs.ErrValueOutOfRange: a value exceeds MaxValue
//   - errs.ErrInsufficientBuffer: dst is shorter than Size
func (c *QuadCodec) Put(dst []byte, v1, v2, v3, v4 uint32) (int, error) {
	lens, size, err := c.slotLengths(v1, v2, v3, v4)
	if err != nil {
		return 0, err
	}
	if len(dst) < size {
		return 0, errs.ErrInsufficientBuffer
	}

	values := [4]uint32{v1, v2, v3, v4}
	pos := QuadHeaderSize

	var header byte
	for i, v := range values {
		header = header<<quadFieldBits | c.rule.field(lens[i])
		putSlot(dst[pos:], v, lens[i])
		pos += lens[i]
	}
	dst[0] = header

	return pos, nil
}

// Append encodes the quad at the end of dst and returns the extended slice.
// On error dst is returned unchanged.
func (c *QuadCodec) Append(dst []byte, v1, v2, v3, v4 uint32) ([]byte, error) {
	size, err := c.Size(v1, v2, v3, v4)
	if err != nil {
		return dst, err
	}

	start := len(dst)
	dst = slices.Grow(dst, size)[:start+size]
	if _, err := c.Put(dst[start:], v1, v2, v3, v4); err != nil {
		return dst[:start], err
	}

	return dst, nil
}

// Decode decodes one quad from the start of src and returns the values and the number
// of bytes consumed.
//
// Slots are read with a single masked 4-byte load while at least four bytes remain and
// byte by byte near the end of src, so Decode never reads past len(src) and the caller
// does not need to over-allocate:
//   - errs.ErrInsufficientBuffer: src is empty
//   - errs.ErrTruncatedInput: src is shorter than the header announces
func (c *QuadCodec) Decode(src []byte) ([4]uint32, int, error) {
	var values [4]uint32
	if len(src) == 0 {
		return values, 0, errs.ErrInsufficientBuffer
	}

	header := src[0]
	end := QuadHeaderSize + int(c.tables.payload[header])
	if len(src) < end {
		return values, 0, errs.ErrTruncatedInput
	}

	lens := &c.tables.lengths[header]
	pos := QuadHeaderSize
	for i := range values {
		l := int(lens[i])
		values[i] = readSlot(src, pos, l)
		pos += l
	}

	return values, end, nil
}

// Skip returns the encoded size of the quad at the start of src without decoding it.
func (c *QuadCodec) Skip(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, errs.ErrInsufficientBuffer
	}

	end := QuadHeaderSize + int(c.tables.payload[src[0]])
	if len(src) < end {
		return 0, errs.ErrTruncatedInput
	}

	return end, nil
}

func (c *QuadCodec) slotLengths(v1, v2, v3, v4 uint32) ([4]int, int, error) {
	var lens [4]int
	size := QuadHeaderSize
	for i, v := range [4]uint32{v1, v2, v3, v4} {
		l, err := c.rule.byteLen(v)
		if err != nil {
			return lens, 0, fmt.Errorf("%s slot %d value %d: %w", c.scheme, i+1, v, err)
		}
		lens[i] = l
		size += l
	}

	return lens, size, nil
}

// putSlot writes the low n bytes of v to dst in little-endian order.
func putSlot(dst []byte, v uint32, n int) {
	switch n {
	case 4:
		binary.LittleEndian.PutUint32(dst, v)
	case 3:
		_ = dst[2]
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v)) //nolint:gosec
	case 1:
		dst[0] = byte(v)
	}
}

// readSlot reads an n-byte little-endian slot at src[pos:].
func readSlot(src []byte, pos, n int) uint32 {
	if n == 0 {
		return 0
	}
	if len(src)-pos >= 4 {
		return binary.LittleEndian.Uint32(src[pos:]) & slotMasks[n]
	}

	return readSlotExact(src, pos, n)
}

// readSlotExact reads exactly n bytes. It serves the tail of a buffer where a 4-byte
// load would run past the end.
func readSlotExact(src []byte, pos, n int) uint32 {
	switch n {
	case 1:
		return uint32(src[pos])
	case 2:
		return uint32(binary.LittleEndian.Uint16(src[pos:]))
	case 3:
		return uint32(src[pos]) | uint32(src[pos+1])<<8 | uint32(src[pos+2])<<16
	case 4:
		return binary.LittleEndian.Uint32(src[pos:])
	default:
		return 0
	}
}
