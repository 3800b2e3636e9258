package section

import (
	"github.com/arloliu/vint/endian"
	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/format"
)

// BlockFlag represents the packed flag bytes at the start of a block header.
type BlockFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is checksum flag, 1 means the header carries an xxHash64 of the payload.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the block format:
	//   - 0xB510 (0b1011_0101_0001_0000): block format v1
	Options uint16

	// SchemeType is the format.SchemeType used to encode the payload.
	SchemeType uint8
	// CompressionType is the format.CompressionType applied to the encoded payload.
	CompressionType uint8
}

// NewBlockFlag creates a little-endian flag for compact quad payloads without
// compression or checksum.
func NewBlockFlag() BlockFlag {
	flag := BlockFlag{
		Options:         MagicBlockV1,
		SchemeType:      uint8(format.SchemeCompactQuad),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f BlockFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f BlockFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *BlockFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *BlockFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// WithEndianEngine sets the byte order matching engine.
func (f *BlockFlag) WithEndianEngine(engine endian.EndianEngine) {
	if endian.IsLittleEndian(engine) {
		f.WithLittleEndian()
	} else {
		f.WithBigEndian()
	}
}

// HasChecksum returns whether the header carries a payload checksum.
func (f BlockFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetHasChecksum enables or disables the payload checksum.
func (f *BlockFlag) SetHasChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f BlockFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Scheme returns the payload encoding scheme.
func (f BlockFlag) Scheme() format.SchemeType {
	return format.SchemeType(f.SchemeType)
}

// SetScheme sets the payload encoding scheme.
func (f *BlockFlag) SetScheme(scheme format.SchemeType) {
	f.SchemeType = uint8(scheme)
}

// Compression returns the payload compression type.
func (f BlockFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *BlockFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f BlockFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicBlockV1
}

// Validate checks if the flag contains valid values.
//
// Returns:
//   - errs.ErrInvalidMagic: magic number is not MagicBlockV1
//   - errs.ErrInvalidFlag: a reserved bit is set
//   - errs.ErrInvalidScheme: unknown encoding scheme
//   - errs.ErrInvalidCompression: unknown compression type
func (f BlockFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagic
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidFlag
	}

	if !f.Scheme().Valid() {
		return errs.ErrInvalidScheme
	}

	if !f.Compression().Valid() {
		return errs.ErrInvalidCompression
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f BlockFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
