package encoding

import (
	"math"

	"github.com/arloliu/vint/errs"
)

// quadFieldBits is the width of one slot length field in a quad header.
const quadFieldBits = 2

// slotMasks[n] keeps the low n bytes of a wide little-endian read.
var slotMasks = [5]uint32{0x0, 0xFF, 0xFFFF, 0xFFFFFF, 0xFFFFFFFF}

// slotRule maps between a slot's byte length and the 2-bit field stored in the header.
//
// The fixed-slot scheme stores length-1 (bias 1), so a field can describe 1-4 bytes.
// The compact scheme stores the length itself (bias 0), so it describes 0-3 bytes and
// tops out at three-byte values.
type slotRule struct {
	bias     uint8
	maxValue uint32
}

var (
	fixedRule   = slotRule{bias: 1, maxValue: math.MaxUint32}
	compactRule = slotRule{bias: 0, maxValue: MaxCompactValue}
)

// byteLen returns the slot length for v under the rule.
func (r slotRule) byteLen(v uint32) (int, error) {
	if r.bias == 0 {
		return CompactByteLen(v)
	}
	if v > r.maxValue {
		return 0, errs.ErrValueOutOfRange
	}

	return QuadByteLen(v), nil
}

// field returns the header field for a slot length.
func (r slotRule) field(length int) byte {
	return byte(length - int(r.bias)) //nolint:gosec
}

// quadTables holds the decode tables of one quad scheme.
//
// lengths is indexed directly by the header byte so decoding never shifts or masks the
// header. payload holds the sum of the four lengths for the same header, which lets a
// quad be bounds-checked or skipped with one lookup.
type quadTables struct {
	lengths [256][4]uint8
	payload [256]uint8
}

// newQuadTables generates the tables for rule. Slot 1 lives in the two most
// significant bits of the header.
func newQuadTables(rule slotRule) *quadTables {
	t := &quadTables{}
	for header := range 256 {
		var total uint8
		for slot := range 4 {
			shift := quadFieldBits * (3 - slot)
			length := uint8(header>>shift)&0x3 + rule.bias //nolint:gosec
			t.lengths[header][slot] = length
			total += length
		}
		t.payload[header] = total
	}

	return t
}
