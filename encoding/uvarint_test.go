package encoding

import (
	"math"
	"testing"

	"github.com/arloliu/vint/errs"
	"github.com/stretchr/testify/require"
)

func TestPutUvarint32_KnownEncodings(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"max one byte", 127, []byte{0x7F}},
		{"min two bytes", 128, []byte{0x81, 0x00}},
		{"300", 300, []byte{0x82, 0x2C}},
		{"max two bytes", 16383, []byte{0xFF, 0x7F}},
		{"min three bytes", 16384, []byte{0x81, 0x80, 0x00}},
		{"max uint32", math.MaxUint32, []byte{0x8F, 0xFF, 0xFF, 0xFF, 0x7F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, MaxUvarintLen32)
			n, err := PutUvarint32(buf, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, buf[:n])

			v, consumed, err := Uvarint32(buf[:n])
			require.NoError(t, err)
			require.Equal(t, tt.value, v)
			require.Equal(t, n, consumed)
		})
	}
}

func TestUvarint32_RoundTrip(t *testing.T) {
	buf := make([]byte, MaxUvarintLen32)

	check := func(v uint32) {
		n, err := PutUvarint32(buf, v)
		require.NoError(t, err)
		require.Equal(t, UvarintLen32(v), n, "value %d", v)

		got, consumed, err := Uvarint32(buf[:n])
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, n, consumed)
	}

	for v := range uint32(70000) {
		check(v)
	}
	for v := uint64(70000); v <= math.MaxUint32; v += 104729 {
		check(uint32(v))
	}
	for shift := range 32 {
		check(1 << shift)
		check(1<<shift - 1)
	}
	check(math.MaxUint32)
}

func TestPutUvarint32_InsufficientBuffer(t *testing.T) {
	buf := make([]byte, 2)
	n, err := PutUvarint32(buf, 1<<14)
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)
	require.Zero(t, n)
	require.Equal(t, []byte{0, 0}, buf, "nothing is written on failure")

	_, err = PutUvarint32(nil, 0)
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)
}

func TestAppendUvarint32(t *testing.T) {
	buf := []byte{0xEE}
	buf = AppendUvarint32(buf, 300)
	buf = AppendUvarint32(buf, 0)

	require.Equal(t, []byte{0xEE, 0x82, 0x2C, 0x00}, buf)
}

func TestUvarint32_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"empty", nil, errs.ErrInsufficientBuffer},
		{"continuation at end", []byte{0x81}, errs.ErrTruncatedInput},
		{"continuation at end of long value", []byte{0x81, 0x80, 0x80}, errs.ErrTruncatedInput},
		{"six bytes", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, errs.ErrOverflow},
		{"33 bits", []byte{0x90, 0x80, 0x80, 0x80, 0x00}, errs.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, err := Uvarint32(tt.src)
			require.ErrorIs(t, err, tt.want)
			require.Zero(t, n)
		})
	}
}

func TestUvarint32_ReadsOnlyOneValue(t *testing.T) {
	src := []byte{0x82, 0x2C, 0x7F}
	v, n, err := Uvarint32(src)
	require.NoError(t, err)
	require.Equal(t, uint32(300), v)
	require.Equal(t, 2, n)
}

func TestSkipUvarint32_ThenDecodeNext(t *testing.T) {
	values := []uint32{5, 300, 70000, math.MaxUint32, 0, 1 << 21}

	var buf []byte
	for _, v := range values {
		buf = AppendUvarint32(buf, v)
	}

	for i := 1; i < len(values); i++ {
		pos := 0
		for range i {
			n, err := SkipUvarint32(buf[pos:])
			require.NoError(t, err)
			pos += n
		}

		v, _, err := Uvarint32(buf[pos:])
		require.NoError(t, err)
		require.Equal(t, values[i], v, "value after skipping %d", i)
	}
}

func TestSkipUvarint32_Errors(t *testing.T) {
	_, err := SkipUvarint32(nil)
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)

	_, err = SkipUvarint32([]byte{0x80, 0x80})
	require.ErrorIs(t, err, errs.ErrTruncatedInput)

	_, err = SkipUvarint32([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	require.ErrorIs(t, err, errs.ErrOverflow)
}
