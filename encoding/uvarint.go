package encoding

import "github.com/arloliu/vint/errs"

// Continuation-bit layout. Groups are written most significant first and every byte
// except the last carries the continuation bit:
//
//	Value 0-127:       0xxxxxxx                    (1 byte)
//	Value 128-16383:   1xxxxxxx 0xxxxxxx           (2 bytes)
//	Value 16384+:      1xxxxxxx 1xxxxxxx 0xxxxxxx  (3+ bytes)
//
// Unlike encoding/binary's Uvarint, which emits the least significant group first,
// the first byte here holds the highest bits.
const (
	continuationBit = 0x80
	groupMask       = 0x7F
	groupBits       = 7

	// overflowGuard is the largest accumulator that can still take another group
	// without losing bits of a uint32.
	overflowGuard = 1<<(32-groupBits) - 1
)

// PutUvarint32 encodes v into dst and returns the number of bytes written.
//
// Returns errs.ErrInsufficientBuffer if dst is shorter than UvarintLen32(v); nothing
// is written in that case.
func PutUvarint32(dst []byte, v uint32) (int, error) {
	n := UvarintLen32(v)
	if len(dst) < n {
		return 0, errs.ErrInsufficientBuffer
	}

	last := n - 1
	for i := last; i >= 0; i-- {
		b := byte(v & groupMask)
		if i != last {
			b |= continuationBit
		}
		dst[i] = b
		v >>= groupBits
	}

	return n, nil
}

// AppendUvarint32 appends the encoding of v to dst and returns the extended slice.
func AppendUvarint32(dst []byte, v uint32) []byte {
	var tmp [MaxUvarintLen32]byte
	n, _ := PutUvarint32(tmp[:], v)

	return append(dst, tmp[:n]...)
}

// Uvarint32 decodes one value from the start of src.
//
// It returns the value and the number of bytes consumed. Reading stops at the first
// byte without the continuation bit and never goes past len(src):
//   - errs.ErrInsufficientBuffer: src is empty
//   - errs.ErrTruncatedInput: src ends while the continuation bit is still set
//   - errs.ErrOverflow: the sequence holds more than 32 bits
func Uvarint32(src []byte) (uint32, int, error) {
	if len(src) == 0 {
		return 0, 0, errs.ErrInsufficientBuffer
	}

	var v uint32
	for i, b := range src {
		if i == MaxUvarintLen32 || v > overflowGuard {
			return 0, 0, errs.ErrOverflow
		}
		v = v<<groupBits | uint32(b&groupMask)
		if b&continuationBit == 0 {
			return v, i + 1, nil
		}
	}

	return 0, 0, errs.ErrTruncatedInput
}

// SkipUvarint32 returns the length of the value at the start of src without decoding it.
// It reports the same errors as Uvarint32, except that overflow is only detected
// by length.
func SkipUvarint32(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, errs.ErrInsufficientBuffer
	}

	for i, b := range src {
		if i == MaxUvarintLen32 {
			return 0, errs.ErrOverflow
		}
		if b&continuationBit == 0 {
			return i + 1, nil
		}
	}

	return 0, errs.ErrTruncatedInput
}
