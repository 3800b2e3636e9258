package compress

import (
	"fmt"

	"github.com/arloliu/vint/errs"
	"github.com/klauspost/compress/s2"
)

type S2Compressor struct{}

var (
	_ Codec               = (*S2Compressor)(nil)
	_ LimitedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 block compression.
// Payloads above MaxRawSize are rejected.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if err := checkLimit(len(data), MaxRawSize); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2 block data of at most MaxRawSize bytes.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, MaxRawSize)
}

// DecompressLimit decompresses S2 block data of at most limit bytes.
// The decoded length stored in the block is checked before allocating.
func (c S2Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	limit = clampLimit(limit)

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > limit {
		return nil, fmt.Errorf("s2 decompression failed: %w: block announces %d bytes, limit %d",
			errs.ErrPayloadTooLarge, n, limit)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
