package compress

import (
	"fmt"

	"github.com/arloliu/vint/errs"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor provides Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits blocks that are written
// once and read rarely. The default build uses klauspost/compress with pooled encoders
// and decoders; building with the gozstd tag switches to the cgo binding of the
// reference library.
type ZstdCompressor struct{}

var (
	_ Codec               = (*ZstdCompressor)(nil)
	_ LimitedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Compress compresses the input data using Zstandard compression.
// Payloads above MaxRawSize are rejected.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if err := checkLimit(len(data), MaxRawSize); err != nil {
		return nil, fmt.Errorf("zstd compression failed: %w", err)
	}

	return c.compress(data), nil
}

// Decompress decompresses Zstd-compressed data of at most MaxRawSize bytes.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, MaxRawSize)
}

// DecompressLimit decompresses Zstd-compressed data of at most limit bytes.
//
// A frame that announces a larger content size is rejected before decoding.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	limit = clampLimit(limit)

	var header zstd.Header
	if err := header.Decode(data); err == nil && header.HasFCS && header.FrameContentSize > uint64(limit) {
		return nil, fmt.Errorf("zstd decompression failed: %w: frame announces %d bytes, limit %d",
			errs.ErrPayloadTooLarge, header.FrameContentSize, limit)
	}

	out, err := c.decompress(data, limit)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkLimit(len(out), limit); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
