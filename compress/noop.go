package compress

// NoOpCompressor passes payloads through unchanged.
//
// It backs format.CompressionNone, which is the default for blocks: quad-encoded
// payloads are already dense and often gain little from a second stage.
type NoOpCompressor struct{}

var (
	_ Codec               = (*NoOpCompressor)(nil)
	_ LimitedDecompressor = (*NoOpCompressor)(nil)
)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimit returns data as-is if it is at most limit bytes long.
//
// MaxRawSize does not apply: the payload is already in memory.
func (c NoOpCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if err := checkLimit(len(data), limit); err != nil {
		return nil, err
	}

	return data, nil
}
