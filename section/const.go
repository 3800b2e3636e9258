package section

import "math"

const (
	// Bit masks of BlockFlag.Options
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ChecksumMask     = 0x0002 // Mask for payload checksum bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicBlockV1 is the version 1 magic number of the block format (bits 4-15).
	MagicBlockV1 = 0xB510
)

// offsets and sizes in the block layout
const (
	HeaderSize     = 24             // fixed header size in bytes
	PayloadOffset  = HeaderSize     // byte offset where the payload starts
	MaxPayloadSize = math.MaxUint32 // maximum raw or stored payload size
)
