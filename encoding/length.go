package encoding

import (
	"math"

	"github.com/arloliu/vint/errs"
)

const (
	// MaxUvarintLen32 is the maximum number of bytes of a continuation-bit encoded uint32.
	MaxUvarintLen32 = 5

	// MaxCompactValue is the largest value the compact quad scheme can hold.
	MaxCompactValue = 0xFFFFFF

	// QuadHeaderSize is the size of the shared header byte in front of every quad.
	QuadHeaderSize = 1

	// MaxQuadLen is the largest encoded size of a single quad.
	MaxQuadLen = QuadHeaderSize + 4*4
)

// UvarintLen32 returns the number of bytes PutUvarint32 writes for v.
func UvarintLen32(v uint32) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	default:
		return 5
	}
}

// QuadByteLen returns the number of bytes the fixed-slot quad scheme uses for v (1-4).
//
// Values sitting exactly on a threshold use the smaller length, so 0xFF takes one
// byte and 0x100 takes two.
func QuadByteLen(v uint32) int {
	switch {
	case v <= 0xFF:
		return 1
	case v <= 0xFFFF:
		return 2
	case v <= 0xFFFFFF:
		return 3
	default:
		return 4
	}
}

// QuadByteLen64 is QuadByteLen for callers holding 64-bit values.
// It returns errs.ErrValueOutOfRange for values above math.MaxUint32.
func QuadByteLen64(v uint64) (int, error) {
	if v > math.MaxUint32 {
		return 0, errs.ErrValueOutOfRange
	}

	return QuadByteLen(uint32(v)), nil
}

// CompactByteLen returns the number of bytes the compact quad scheme uses for v (0-3).
// Zero needs no bytes at all. Values above MaxCompactValue return errs.ErrValueOutOfRange.
func CompactByteLen(v uint32) (int, error) {
	switch {
	case v == 0:
		return 0, nil
	case v <= 0xFF:
		return 1, nil
	case v <= 0xFFFF:
		return 2, nil
	case v <= MaxCompactValue:
		return 3, nil
	default:
		return 0, errs.ErrValueOutOfRange
	}
}
