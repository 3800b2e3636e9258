package section

import (
	"encoding/binary"

	"github.com/arloliu/vint/errs"
)

// BlockHeader represents the fixed-size header at the start of a block.
type BlockHeader struct {
	// Flag is a packed field for options, magic number, scheme and compression.
	// The two Options bytes are always little-endian so the endianness bit can be
	// read before the byte order is known.
	Flag BlockFlag // byte offset 0-3
	// Count is the number of values stored in the block.
	Count uint32 // byte offset 4-7
	// RawSize is the size of the encoded payload before compression.
	RawSize uint32 // byte offset 8-11
	// PayloadSize is the size of the payload as stored after the header.
	PayloadSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the stored payload, zero when the checksum flag is off.
	Checksum uint64 // byte offset 16-23
}

// NewBlockHeader creates a header with the default flag.
// Count and sizes are set when the encoder finishes.
func NewBlockHeader() *BlockHeader {
	return &BlockHeader{
		Flag: NewBlockFlag(),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 24 bytes, or flag validation errors
func (h *BlockHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.SchemeType = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.RawSize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h *BlockHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *BlockHeader) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.SchemeType, h.Flag.CompressionType)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.RawSize)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseBlockHeader parses a BlockHeader from the start of data.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 24 bytes)
//
// Returns:
//   - BlockHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseBlockHeader(data []byte) (BlockHeader, error) {
	if len(data) < HeaderSize {
		return BlockHeader{}, errs.ErrInvalidHeaderSize
	}

	h := BlockHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return BlockHeader{}, err
	}

	return h, nil
}
