package block

import (
	"errors"
	"fmt"
	"iter"

	"github.com/arloliu/vint/compress"
	"github.com/arloliu/vint/encoding"
	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/format"
	"github.com/arloliu/vint/internal/hash"
	"github.com/arloliu/vint/section"
)

// Decoder reads the values of a Block.
//
// All validation happens in NewDecoder, so the read methods never fail on a decoder
// that was created successfully. A Decoder is safe for concurrent reads.
type Decoder struct {
	header  section.BlockHeader
	payload []byte
	stream  encoding.ColumnarDecoder
}

// NewDecoder parses and validates a serialized block.
//
// Bytes after the payload are ignored, so blocks can be read from a larger buffer.
//
// Returns:
//   - *Decoder: Decoder over the decompressed payload
//   - error: header errors from section.ParseBlockHeader, ErrInvalidPayloadSize when
//     the payload is shorter than announced or does not hold Count values,
//     ErrChecksumMismatch, decompression errors, or ErrPayloadTooLarge when the
//     payload would decompress past RawSize
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseBlockHeader(data)
	if err != nil {
		return nil, err
	}

	end := section.HeaderSize + int(header.PayloadSize)
	if len(data) < end {
		return nil, fmt.Errorf("%w: header announces %d payload bytes, %d available",
			errs.ErrInvalidPayloadSize, header.PayloadSize, len(data)-section.HeaderSize)
	}
	stored := data[section.PayloadOffset:end]

	if header.Flag.HasChecksum() && !hash.Verify(stored, header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	compression := header.Flag.Compression()
	if compression != format.CompressionNone && header.RawSize > compress.MaxRawSize {
		return nil, fmt.Errorf("%w: raw size %d exceeds %d: %w",
			errs.ErrInvalidPayloadSize, header.RawSize, compress.MaxRawSize, errs.ErrPayloadTooLarge)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	payload, err := compress.DecompressLimit(codec, stored, int(header.RawSize))
	if errors.Is(err, errs.ErrPayloadTooLarge) {
		return nil, fmt.Errorf("%w: raw size %d: %w", errs.ErrInvalidPayloadSize, header.RawSize, err)
	}
	if err != nil {
		return nil, err
	}
	if len(payload) != int(header.RawSize) {
		return nil, fmt.Errorf("%w: raw size %d, decompressed %d",
			errs.ErrInvalidPayloadSize, header.RawSize, len(payload))
	}

	stream, err := encoding.NewColumnarDecoder(header.Flag.Scheme())
	if err != nil {
		return nil, err
	}

	span, err := stream.Span(payload, int(header.Count))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayloadSize, err)
	}
	if span != len(payload) {
		return nil, fmt.Errorf("%w: %d values end at byte %d of %d",
			errs.ErrInvalidPayloadSize, header.Count, span, len(payload))
	}

	return &Decoder{
		header:  header,
		payload: payload,
		stream:  stream,
	}, nil
}

// Len returns the number of values in the block.
func (d *Decoder) Len() int {
	return int(d.header.Count)
}

// Scheme returns the encoding scheme of the payload.
func (d *Decoder) Scheme() format.SchemeType {
	return d.header.Flag.Scheme()
}

// Compression returns the compression applied to the payload.
func (d *Decoder) Compression() format.CompressionType {
	return d.header.Flag.Compression()
}

// Header returns a copy of the parsed block header.
func (d *Decoder) Header() section.BlockHeader {
	return d.header
}

// All returns an iterator over the values in order.
func (d *Decoder) All() iter.Seq[uint32] {
	return d.stream.All(d.payload, d.Len())
}

// At returns the value at index. The second result is false if index is out of range.
func (d *Decoder) At(index int) (uint32, bool) {
	return d.stream.At(d.payload, index, d.Len())
}

// Values decodes all values into a new slice.
func (d *Decoder) Values() ([]uint32, error) {
	return d.stream.Decode(make([]uint32, 0, d.Len()), d.payload, d.Len())
}
