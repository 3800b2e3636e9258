// Package compress provides the optional second compression stage for block payloads.
//
// Values are first varint-encoded by the encoding package. A block may then compress
// the whole encoded payload with one of:
//   - None: payload stored as encoded (default)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// Built-in codecs returned by GetCodec are stateless values and safe for concurrent
// use. Zstd and LZ4 keep their heavy encoder state in sync.Pools.
//
// # LZ4 framing
//
// LZ4 uses the raw block format, which does not record the uncompressed size. The LZ4
// codec therefore prefixes each block with the raw size as a little-endian uint32.
//
// # Zstd builds
//
// The default build uses github.com/klauspost/compress/zstd. Building with
// `-tags gozstd` (and cgo enabled) uses github.com/valyala/gozstd instead. Both produce
// standard zstd frames and can read each other's output.
package compress
