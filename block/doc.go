// Package block stores a sequence of uint32 values as a self-describing byte slice.
//
// A block records which varint scheme encoded its payload, which compression was
// applied on top and how many values it holds, so a reader needs nothing but the bytes:
//
//	encoder, err := block.NewEncoder(
//	    block.WithScheme(format.SchemeQuad),
//	    block.WithCompression(format.CompressionS2),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = encoder.WriteSlice(values)
//	blk, err := encoder.Finish()
//
//	decoder, err := block.NewDecoder(blk.Bytes())
//	for v := range decoder.All() {
//	    ...
//	}
//
// The header layout is defined in the section package. Quad schemes pad a trailing
// partial quad with zeros; the value count in the header lets the decoder ignore the
// padding.
package block
