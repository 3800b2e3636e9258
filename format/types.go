// Package format defines the enumerations shared by the codec, compression and
// block packages.
package format

type (
	SchemeType      uint8
	CompressionType uint8
)

const (
	SchemeUvarint     SchemeType = 0x1 // SchemeUvarint is the continuation-bit (base-128) scheme.
	SchemeQuad        SchemeType = 0x2 // SchemeQuad is the fixed-slot quad scheme, 1-4 bytes per value.
	SchemeCompactQuad SchemeType = 0x3 // SchemeCompactQuad is the compact quad scheme, 0-3 bytes per value.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s SchemeType) String() string {
	switch s {
	case SchemeUvarint:
		return "Uvarint"
	case SchemeQuad:
		return "Quad"
	case SchemeCompactQuad:
		return "CompactQuad"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a known scheme.
func (s SchemeType) Valid() bool {
	return s >= SchemeUvarint && s <= SchemeCompactQuad
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
