//go:build !gozstd || !cgo

package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/vint/errs"
	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders. A decoder runs without allocations once warmed
// up, so it is kept rather than recreated per block. Decoded output is capped at
// MaxRawSize, which also covers frames that do not announce their content size.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecoderMaxMemory(MaxRawSize),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPool pools zstd encoders.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // blocks carry their own xxHash64 checksum
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

func (c ZstdCompressor) compress(data []byte) []byte {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil)
}

// decompress decodes data; the caller checks the output against limit.
func (c ZstdCompressor) decompress(data []byte, _ int) ([]byte, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
		return nil, fmt.Errorf("%w: %w", errs.ErrPayloadTooLarge, err)
	}

	return out, err
}
