//go:build gozstd && cgo

package compress

import (
	"bytes"
	"io"

	"github.com/valyala/gozstd"
)

// zstdLevel matches zstd.SpeedDefault of the pure Go build.
const zstdLevel = 3

func (c ZstdCompressor) compress(data []byte) []byte {
	return gozstd.CompressLevel(nil, data, zstdLevel)
}

// decompress streams data through a gozstd reader and stops one byte past limit,
// so frames without a content size cannot grow the output without bound.
func (c ZstdCompressor) decompress(data []byte, limit int) ([]byte, error) {
	reader := gozstd.NewReader(bytes.NewReader(data))
	defer reader.Release()

	return io.ReadAll(io.LimitReader(reader, int64(limit)+1))
}
