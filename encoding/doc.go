// Package encoding implements the vint codecs for unsigned 32-bit integers.
//
// Three schemes are provided. All of them work on caller-supplied byte slices, never
// retain a buffer, and never read past the end of the slice they are given.
//
// # Continuation-Bit Codec
//
// A base-128 varint written most significant group first. Every byte but the last has
// its high bit set, so the encoding is self-delimiting:
//
//	n, err := encoding.PutUvarint32(buf, 300)   // buf[:n] = 0x82 0x2C
//	v, n, err := encoding.Uvarint32(buf)        // v = 300, n = 2
//	n, err = encoding.SkipUvarint32(buf)        // n = 2, nothing decoded
//
// Values take 1-5 bytes (UvarintLen32).
//
// # Quad Codecs
//
// Four values share one header byte holding a 2-bit length field per value, slot 1 in
// the two most significant bits. Each value follows as its low bytes in little-endian
// order:
//
//	[header][v1 bytes][v2 bytes][v3 bytes][v4 bytes]
//
// FixedQuad stores length-1 in each field, so every value takes 1-4 bytes. CompactQuad
// stores the length itself: zero takes no bytes at all, and values are limited to
// MaxCompactValue (0xFFFFFF).
//
//	n, err := encoding.FixedQuad.Put(buf, 1235, 123456, 1234567, 12345678)
//	// buf[0] = 0b01_10_10_10 (lengths 2, 3, 3, 3), n = 12
//	values, n, err := encoding.FixedQuad.Decode(buf)
//
//	n, err = encoding.CompactQuad.Put(buf, 0, 0, 0, 0)
//	// n = 1, only the header is written
//
// Decoding looks the header up in a table built once at startup that maps each of the
// 256 header values to its four slot lengths and their total. Slots are read with a
// masked 4-byte load while at least four bytes remain in the source and byte by byte
// at its tail.
//
// # Streams
//
// UvarintEncoder and QuadEncoder append long sequences of values to pooled buffers and
// implement ColumnarEncoder. UvarintDecoder and QuadDecoder iterate, index and bulk
// decode them given the value count:
//
//	enc := encoding.NewQuadEncoder(encoding.CompactQuad)
//	defer enc.Finish()
//	_ = enc.WriteSlice(values)
//	_ = enc.Flush()
//
//	dec := encoding.NewQuadDecoder(encoding.CompactQuad)
//	for v := range dec.All(enc.Bytes(), enc.Len()) {
//	    // ...
//	}
//
// # Errors
//
// Failures are reported with the sentinels of package errs:
//   - ErrValueOutOfRange: the value does not fit the scheme
//   - ErrInsufficientBuffer: empty source, or destination too small
//   - ErrTruncatedInput: the source ends inside a value or quad
//   - ErrOverflow: a continuation-bit sequence holds more than 32 bits
//
// # Thread Safety
//
// The codec functions and the FixedQuad and CompactQuad values are safe for concurrent
// use. Encoders are not; decoders are.
package encoding
