package compress

import (
	"fmt"

	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/format"
)

// MaxRawSize bounds the uncompressed size of a payload handled by the built-in
// compressing codecs.
const MaxRawSize = 128 * 1024 * 1024 // 128MiB

// Compressor compresses an encoded block payload.
//
// Block payloads are runs of continuation-bit or quad-encoded values. Small values
// encode to one or two bytes that repeat often, so a general-purpose compressor on
// top of the varint encoding still pays off for large blocks.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The input slice is not modified. Implementations other than NoOpCompressor
	// return a newly allocated slice owned by the caller.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload.
	//
	// An error is returned if data is corrupted or was produced by a different
	// algorithm.
	Decompress(data []byte) ([]byte, error)
}

// LimitedDecompressor is a Decompressor that can refuse oversized output.
//
// Where the compressed format announces its decompressed size, implementations
// check it against limit before allocating the output.
type LimitedDecompressor interface {
	// DecompressLimit is Decompress with an upper bound of limit output bytes.
	// It returns an error wrapping errs.ErrPayloadTooLarge when the bound is exceeded.
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// DecompressLimit decompresses data with d and fails if the output would exceed
// limit bytes.
//
// Decompressors that do not implement LimitedDecompressor are checked after
// decompression.
func DecompressLimit(d Decompressor, data []byte, limit int) ([]byte, error) {
	if ld, ok := d.(LimitedDecompressor); ok {
		return ld.DecompressLimit(data, limit)
	}

	out, err := d.Decompress(data)
	if err != nil {
		return nil, err
	}
	if err := checkLimit(len(out), limit); err != nil {
		return nil, err
	}

	return out, nil
}

func checkLimit(size, limit int) error {
	if size > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", errs.ErrPayloadTooLarge, size, limit)
	}

	return nil
}

// clampLimit applies MaxRawSize to a caller supplied limit.
func clampLimit(limit int) int {
	if limit < 0 || limit > MaxRawSize {
		return MaxRawSize
	}

	return limit
}

// CompressionStats describes the effect of compressing one payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// Measure compresses data with the built-in codec for compressionType and reports the
// sizes.
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    compressionType,
		OriginalSize: int64(len(data)),
	}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return stats, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return stats, err
	}
	stats.CompressedSize = int64(len(compressed))

	return stats, nil
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Returns 0.0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for compressionType.
//
// target describes what the codec is for and only appears in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
