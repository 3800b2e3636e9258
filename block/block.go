package block

import (
	"github.com/arloliu/vint/format"
	"github.com/arloliu/vint/section"
)

// Block is an encoded, self-describing sequence of uint32 values.
type Block struct {
	data   []byte
	header section.BlockHeader
}

// Bytes returns the serialized block: header followed by payload.
func (b Block) Bytes() []byte {
	return b.data
}

// Len returns the number of values in the block.
func (b Block) Len() int {
	return int(b.header.Count)
}

// Size returns the serialized size in bytes.
func (b Block) Size() int {
	return len(b.data)
}

// Scheme returns the encoding scheme of the payload.
func (b Block) Scheme() format.SchemeType {
	return b.header.Flag.Scheme()
}

// Compression returns the compression applied to the payload.
func (b Block) Compression() format.CompressionType {
	return b.header.Flag.Compression()
}

// Header returns a copy of the block header.
func (b Block) Header() section.BlockHeader {
	return b.header
}
