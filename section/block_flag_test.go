package section

import (
	"testing"

	"github.com/arloliu/vint/endian"
	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/format"
	"github.com/stretchr/testify/require"
)

func TestNewBlockFlag(t *testing.T) {
	flag := NewBlockFlag()

	require.True(t, flag.IsValidMagicNumber())
	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.HasChecksum())
	require.Equal(t, format.SchemeCompactQuad, flag.Scheme())
	require.Equal(t, format.CompressionNone, flag.Compression())
	require.NoError(t, flag.Validate())
}

func TestBlockFlag_Endianness(t *testing.T) {
	flag := NewBlockFlag()

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.False(t, flag.IsLittleEndian())
	require.Equal(t, endian.GetBigEndianEngine(), flag.GetEndianEngine())
	require.Equal(t, uint16(MagicBlockV1), flag.GetMagicNumber(), "endianness bit does not touch the magic")

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, endian.GetLittleEndianEngine(), flag.GetEndianEngine())

	flag.WithEndianEngine(endian.GetBigEndianEngine())
	require.True(t, flag.IsBigEndian())
	flag.WithEndianEngine(endian.GetLittleEndianEngine())
	require.True(t, flag.IsLittleEndian())
}

func TestBlockFlag_Checksum(t *testing.T) {
	flag := NewBlockFlag()

	flag.SetHasChecksum(true)
	require.True(t, flag.HasChecksum())
	require.NoError(t, flag.Validate())

	flag.SetHasChecksum(false)
	require.False(t, flag.HasChecksum())
}

func TestBlockFlag_SchemeAndCompression(t *testing.T) {
	flag := NewBlockFlag()

	flag.SetScheme(format.SchemeUvarint)
	flag.SetCompression(format.CompressionLZ4)
	require.Equal(t, format.SchemeUvarint, flag.Scheme())
	require.Equal(t, format.CompressionLZ4, flag.Compression())
	require.Equal(t, uint8(format.SchemeUvarint), flag.SchemeType)
	require.Equal(t, uint8(format.CompressionLZ4), flag.CompressionType)
}

func TestBlockFlag_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *BlockFlag)
		want   error
	}{
		{"bad magic", func(f *BlockFlag) { f.Options = 0xEA10 }, errs.ErrInvalidMagic},
		{"reserved bit", func(f *BlockFlag) { f.Options |= 0x0004 }, errs.ErrInvalidFlag},
		{"zero scheme", func(f *BlockFlag) { f.SchemeType = 0 }, errs.ErrInvalidScheme},
		{"unknown scheme", func(f *BlockFlag) { f.SchemeType = 9 }, errs.ErrInvalidScheme},
		{"zero compression", func(f *BlockFlag) { f.CompressionType = 0 }, errs.ErrInvalidCompression},
		{"unknown compression", func(f *BlockFlag) { f.CompressionType = 5 }, errs.ErrInvalidCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := NewBlockFlag()
			tt.modify(&flag)
			require.ErrorIs(t, flag.Validate(), tt.want)
		})
	}
}
