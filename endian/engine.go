// Package endian provides the byte order used for block header fields.
//
// Codec payloads (quad slots, continuation-bit groups) have a fixed byte layout and
// never consult an EndianEngine. Only the integer fields of a block header are written
// through one, so a block can be produced in either byte order.
//
// # Thread Safety
//
// All functions are safe for concurrent use. The returned engines are stateless.
package endian

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a single value
// can both put and append fixed-width integers.
//
// binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// NativeEngine returns the engine matching the host byte order.
func NativeEngine() EndianEngine {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return !cpu.IsBigEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return cpu.IsBigEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == NativeEngine()
}

// IsLittleEndian reports whether engine writes little-endian.
func IsLittleEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x02
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
