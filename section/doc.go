// Package section defines the binary layout of a block header.
//
// A block is a fixed 24-byte header followed by the (optionally compressed) encoded
// payload:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                                │
//	│  - Options (2 bytes, always LE): magic, endian, checksum│
//	│  - Scheme (1 byte)                                      │
//	│  - Compression (1 byte)                                 │
//	│  - Count (4 bytes)                                      │
//	│  - RawSize (4 bytes)                                    │
//	│  - PayloadSize (4 bytes)                                │
//	│  - Checksum (8 bytes, xxHash64 of the stored payload)   │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                             │
//	└─────────────────────────────────────────────────────────┘
//
// Integer fields after the Options word use the byte order selected by the endianness
// bit. The payload bytes themselves are produced by the encoding package and have a
// fixed layout regardless of that bit.
package section
