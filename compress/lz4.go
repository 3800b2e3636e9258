package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/vint/errs"
	"github.com/pierrec/lz4/v4"
)

// lz4SizePrefixLen is the size of the little-endian raw length stored in front of
// every LZ4 block, so decompression can allocate the exact output size.
const lz4SizePrefixLen = 4

var errLZ4InvalidSize = errors.New("lz4: invalid raw size prefix")

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

type LZ4Compressor struct{}

var (
	_ Codec               = (*LZ4Compressor)(nil)
	_ LimitedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using the LZ4 block format.
//
// Layout:
//
//	[raw size: uint32 LE][lz4 block]
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if err := checkLimit(len(data), MaxRawSize); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	dst := make([]byte, lz4SizePrefixLen+lz4.CompressBlockBound(len(data)))
	binary.LittleEndian.PutUint32(dst, uint32(len(data))) //nolint:gosec

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[lz4SizePrefixLen:])
	if err != nil {
		return nil, err
	}

	return dst[:lz4SizePrefixLen+n], nil
}

// Decompress decompresses data produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, MaxRawSize)
}

// DecompressLimit decompresses data produced by Compress if its raw size prefix is at
// most limit.
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < lz4SizePrefixLen {
		return nil, errLZ4InvalidSize
	}
	limit = clampLimit(limit)

	rawSize := int(binary.LittleEndian.Uint32(data))
	if rawSize == 0 {
		return nil, fmt.Errorf("%w: %d bytes", errLZ4InvalidSize, rawSize)
	}
	if rawSize > limit {
		return nil, fmt.Errorf("lz4 decompression failed: %w: prefix announces %d bytes, limit %d",
			errs.ErrPayloadTooLarge, rawSize, limit)
	}

	buf := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(data[lz4SizePrefixLen:], buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if n != rawSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errLZ4InvalidSize, n, rawSize)
	}

	return buf, nil
}
