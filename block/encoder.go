package block

import (
	"fmt"
	"math"

	"github.com/arloliu/vint/compress"
	"github.com/arloliu/vint/encoding"
	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/internal/hash"
	"github.com/arloliu/vint/internal/options"
	"github.com/arloliu/vint/section"
)

// Encoder collects uint32 values and produces a Block.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After calling Finish, a new
// encoder must be created.
type Encoder struct {
	*EncoderConfig
	stream encoding.ColumnarEncoder
	codec  compress.Codec
}

// NewEncoder creates a block encoder.
//
// Parameters:
//   - opts: Optional configuration (scheme, compression, endianness, checksum)
//
// Returns:
//   - *Encoder: New encoder
//   - error: ErrInvalidScheme or ErrInvalidCompression from the options
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(config.Compression(), "payload")
	if err != nil {
		return nil, err
	}

	stream, err := encoding.NewColumnarEncoder(config.Scheme())
	if err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig: config,
		stream:        stream,
		codec:         codec,
	}, nil
}

// Write adds a single value.
//
// Returns errs.ErrValueOutOfRange if the scheme cannot hold v (compact quad above
// 0xFFFFFF), or errs.ErrEncoderFinished after Finish.
func (e *Encoder) Write(v uint32) error {
	return e.stream.Write(v)
}

// WriteSlice adds values in order. The whole slice is rejected if any value is out of
// range for the scheme.
func (e *Encoder) WriteSlice(values []uint32) error {
	return e.stream.WriteSlice(values)
}

// Len returns the number of values written.
func (e *Encoder) Len() int {
	return e.stream.Len()
}

// Finish encodes the pending values, compresses the payload and returns the Block.
//
// The encoder releases its buffers; further calls return errs.ErrEncoderFinished.
func (e *Encoder) Finish() (Block, error) {
	defer e.stream.Finish()

	if err := e.stream.Flush(); err != nil {
		return Block{}, err
	}

	count := e.stream.Len()
	raw := e.stream.Bytes()
	if uint64(count) > math.MaxUint32 || uint64(len(raw)) > section.MaxPayloadSize {
		return Block{}, fmt.Errorf("%w: %d values in %d bytes", errs.ErrInvalidPayloadSize, count, len(raw))
	}

	payload, err := e.codec.Compress(raw)
	if err != nil {
		return Block{}, fmt.Errorf("failed to compress payload: %w", err)
	}
	if uint64(len(payload)) > section.MaxPayloadSize {
		return Block{}, fmt.Errorf("%w: compressed payload of %d bytes", errs.ErrInvalidPayloadSize, len(payload))
	}

	header := *e.header
	header.Count = uint32(count)              //nolint:gosec
	header.RawSize = uint32(len(raw))         //nolint:gosec
	header.PayloadSize = uint32(len(payload)) //nolint:gosec
	if header.Flag.HasChecksum() {
		header.Checksum = hash.Checksum(payload)
	}

	data := make([]byte, 0, section.HeaderSize+len(payload))
	data = header.AppendTo(data)
	data = append(data, payload...)

	return Block{data: data, header: header}, nil
}
