package encoding

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/format"
	"github.com/stretchr/testify/require"
)

func TestFixedQuad_SampleValues(t *testing.T) {
	require := require.New(t)

	header, err := FixedQuad.Header(1235, 123456, 1234567, 12345678)
	require.NoError(err)
	require.Equal(byte(0b01_10_10_10), header)
	require.Equal([4]uint8{2, 3, 3, 3}, FixedQuad.Lengths(header))

	size, err := FixedQuad.Size(1235, 123456, 1234567, 12345678)
	require.NoError(err)
	require.Equal(12, size)

	buf := make([]byte, MaxQuadLen)
	n, err := FixedQuad.Put(buf, 1235, 123456, 1234567, 12345678)
	require.NoError(err)
	require.Equal(size, n)
	require.Equal([]byte{
		0x6A,
		0xD3, 0x04,
		0x40, 0xE2, 0x01,
		0x87, 0xD6, 0x12,
		0x4E, 0x61, 0xBC,
	}, buf[:n])

	values, consumed, err := FixedQuad.Decode(buf[:n])
	require.NoError(err)
	require.Equal(n, consumed)
	require.Equal([4]uint32{1235, 123456, 1234567, 12345678}, values)
}

func TestFixedQuad_AllLengths(t *testing.T) {
	buf := make([]byte, MaxQuadLen)
	n, err := FixedQuad.Put(buf, 1, 0x100, 0x10000, 0x1000000)
	require.NoError(t, err)
	require.Equal(t, 11, n)
	require.Equal(t, byte(0b00_01_10_11), buf[0])

	values, _, err := FixedQuad.Decode(buf[:n])
	require.NoError(t, err)
	require.Equal(t, [4]uint32{1, 0x100, 0x10000, 0x1000000}, values)
}

func TestFixedQuad_ZeroStillTakesOneByte(t *testing.T) {
	buf := make([]byte, MaxQuadLen)
	n, err := FixedQuad.Put(buf, 0, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte{0, 0, 0, 0, 0}, buf[:n])
}

func TestFixedQuad_MaxValues(t *testing.T) {
	buf := make([]byte, MaxQuadLen)
	n, err := FixedQuad.Put(buf, math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32)
	require.NoError(t, err)
	require.Equal(t, MaxQuadLen, n)
	require.Equal(t, byte(0xFF), buf[0])

	values, consumed, err := FixedQuad.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, MaxQuadLen, consumed)
	for _, v := range values {
		require.Equal(t, uint32(math.MaxUint32), v)
	}
}

func TestCompactQuad_Zeros(t *testing.T) {
	size, err := CompactQuad.Size(0, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, size)

	buf := []byte{0xFF, 0xFF}
	n, err := CompactQuad.Put(buf, 0, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0), buf[0])
	require.Equal(t, byte(0xFF), buf[1], "no payload bytes are written")

	values, consumed, err := CompactQuad.Decode(buf[:1])
	require.NoError(t, err)
	require.Equal(t, 1, consumed)
	require.Equal(t, [4]uint32{}, values)
}

func TestCompactQuad_AllLengths(t *testing.T) {
	buf := make([]byte, MaxQuadLen)
	n, err := CompactQuad.Put(buf, 0, 1, 0x100, MaxCompactValue)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, []byte{0b00_01_10_11, 0x01, 0x00, 0x01, 0xFF, 0xFF, 0xFF}, buf[:n])

	values, consumed, err := CompactQuad.Decode(buf[:n])
	require.NoError(t, err)
	require.Equal(t, 7, consumed)
	require.Equal(t, [4]uint32{0, 1, 0x100, MaxCompactValue}, values)
}

func TestCompactQuad_OutOfRange(t *testing.T) {
	buf := make([]byte, MaxQuadLen)

	_, err := CompactQuad.Size(1, 2, 3, MaxCompactValue+1)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)

	n, err := CompactQuad.Put(buf, 1, 2, 3, MaxCompactValue+1)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
	require.Contains(t, err.Error(), "slot 4")
	require.Zero(t, n)
	require.Equal(t, make([]byte, MaxQuadLen), buf, "nothing is written on failure")

	_, err = CompactQuad.Header(math.MaxUint32, 0, 0, 0)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
}

func TestQuadCodec_Accessors(t *testing.T) {
	require.Equal(t, format.SchemeQuad, FixedQuad.Scheme())
	require.Equal(t, format.SchemeCompactQuad, CompactQuad.Scheme())
	require.Equal(t, uint32(math.MaxUint32), FixedQuad.MaxValue())
	require.Equal(t, uint32(MaxCompactValue), CompactQuad.MaxValue())

	n, err := FixedQuad.ByteLen(0)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = CompactQuad.ByteLen(0)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestQuadCodec_Minimality(t *testing.T) {
	tests := []struct {
		codec *QuadCodec
		value uint32
		want  int
	}{
		{FixedQuad, 255, 1},
		{FixedQuad, 256, 2},
		{FixedQuad, 0xFFFF, 2},
		{FixedQuad, 0x10000, 3},
		{FixedQuad, 0xFFFFFF, 3},
		{FixedQuad, 0x1000000, 4},
		{CompactQuad, 0, 0},
		{CompactQuad, 255, 1},
		{CompactQuad, 256, 2},
		{CompactQuad, 0xFFFFFF, 3},
	}

	for _, tt := range tests {
		size, err := tt.codec.Size(tt.value, tt.value, tt.value, tt.value)
		require.NoError(t, err)
		require.Equal(t, QuadHeaderSize+4*tt.want, size, "%s value %#x", tt.codec.Scheme(), tt.value)
	}
}

func randomValue(rng *rand.Rand, limit uint32) uint32 {
	v := rng.Uint32() >> rng.IntN(33)
	if rng.IntN(8) == 0 {
		v = 0
	}

	return min(v, limit)
}

func TestQuadCodec_RoundTrip(t *testing.T) {
	for _, codec := range []*QuadCodec{FixedQuad, CompactQuad} {
		t.Run(codec.Scheme().String(), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			buf := make([]byte, MaxQuadLen)

			for range 20000 {
				var in [4]uint32
				for i := range in {
					in[i] = randomValue(rng, codec.MaxValue())
				}

				size, err := codec.Size(in[0], in[1], in[2], in[3])
				require.NoError(t, err)

				n, err := codec.Put(buf, in[0], in[1], in[2], in[3])
				require.NoError(t, err)
				require.Equal(t, size, n)

				out, consumed, err := codec.Decode(buf[:n])
				require.NoError(t, err)
				require.Equal(t, n, consumed)
				require.Equal(t, in, out)
			}
		})
	}
}

func TestQuadCodec_SequentialRoundTrip(t *testing.T) {
	for _, codec := range []*QuadCodec{FixedQuad, CompactQuad} {
		t.Run(codec.Scheme().String(), func(t *testing.T) {
			buf := make([]byte, MaxQuadLen)
			for i := uint32(0); i < 1<<18; i += 3 {
				n, err := codec.Put(buf, i, i+1, i+2, i+3)
				require.NoError(t, err)

				out, _, err := codec.Decode(buf[:n])
				require.NoError(t, err)
				require.Equal(t, [4]uint32{i, i + 1, i + 2, i + 3}, out)
			}
		})
	}
}

func TestQuadCodec_InsufficientBuffer(t *testing.T) {
	buf := make([]byte, 4)
	n, err := FixedQuad.Put(buf, 1, 2, 3, 0x100)
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)
	require.Zero(t, n)
	require.Equal(t, make([]byte, 4), buf)

	_, err = CompactQuad.Put(nil, 0, 0, 0, 0)
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)
}

func TestQuadCodec_DecodeErrors(t *testing.T) {
	for _, codec := range []*QuadCodec{FixedQuad, CompactQuad} {
		t.Run(codec.Scheme().String(), func(t *testing.T) {
			_, _, err := codec.Decode(nil)
			require.ErrorIs(t, err, errs.ErrInsufficientBuffer)

			_, err = codec.Skip(nil)
			require.ErrorIs(t, err, errs.ErrInsufficientBuffer)

			buf := make([]byte, MaxQuadLen)
			n, err := codec.Put(buf, 7, 0x1234, 0x12345, 0xABCDEF)
			require.NoError(t, err)

			for cut := 1; cut < n; cut++ {
				_, consumed, err := codec.Decode(buf[:cut])
				require.ErrorIs(t, err, errs.ErrTruncatedInput, "cut at %d", cut)
				require.Zero(t, consumed)

				_, err = codec.Skip(buf[:cut])
				require.ErrorIs(t, err, errs.ErrTruncatedInput, "cut at %d", cut)
			}
		})
	}
}

func TestQuadCodec_DecodeExactlySizedBuffer(t *testing.T) {
	// Slots at the end of an exactly sized buffer take the byte-by-byte path.
	for _, codec := range []*QuadCodec{FixedQuad, CompactQuad} {
		size, err := codec.Size(0x11, 0x2233, 0x445566, 0x778899)
		require.NoError(t, err)

		buf := make([]byte, size)
		_, err = codec.Put(buf, 0x11, 0x2233, 0x445566, 0x778899)
		require.NoError(t, err)

		out, n, err := codec.Decode(buf)
		require.NoError(t, err)
		require.Equal(t, size, n)
		require.Equal(t, [4]uint32{0x11, 0x2233, 0x445566, 0x778899}, out)
	}
}

func TestReadSlot_WideAndExactAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(rng.Uint32())
	}

	for pos := 0; pos+4 <= len(buf); pos++ {
		for n := 0; n <= 4; n++ {
			require.Equal(t, readSlotExact(buf, pos, n), readSlot(buf, pos, n), "pos %d len %d", pos, n)
		}
	}
}

func TestQuadCodec_SkipThenDecode(t *testing.T) {
	for _, codec := range []*QuadCodec{FixedQuad, CompactQuad} {
		t.Run(codec.Scheme().String(), func(t *testing.T) {
			var buf []byte
			var err error
			buf, err = codec.Append(buf, 1, 2, 3, 4)
			require.NoError(t, err)
			buf, err = codec.Append(buf, 0, 0x300, 0x40000, 0x500000)
			require.NoError(t, err)

			n, err := codec.Skip(buf)
			require.NoError(t, err)

			out, consumed, err := codec.Decode(buf[n:])
			require.NoError(t, err)
			require.Equal(t, len(buf)-n, consumed)
			require.Equal(t, [4]uint32{0, 0x300, 0x40000, 0x500000}, out)
		})
	}
}

func TestQuadCodec_Append(t *testing.T) {
	prefix := []byte{0xAB}
	buf, err := FixedQuad.Append(prefix, 1, 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0x00, 1, 2, 3, 4}, buf)

	unchanged, err := CompactQuad.Append(buf, 1, 2, 3, math.MaxUint32)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
	require.Equal(t, buf, unchanged)
}
