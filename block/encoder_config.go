package block

import (
	"fmt"

	"github.com/arloliu/vint/endian"
	"github.com/arloliu/vint/errs"
	"github.com/arloliu/vint/format"
	"github.com/arloliu/vint/internal/options"
	"github.com/arloliu/vint/section"
)

// EncoderConfig holds the block settings chosen through EncoderOptions.
type EncoderConfig struct {
	header *section.BlockHeader
	engine endian.EndianEngine
}

// NewEncoderConfig creates a config with the default settings: compact quad scheme,
// no compression, little-endian header fields, payload checksum enabled.
func NewEncoderConfig() *EncoderConfig {
	header := section.NewBlockHeader()
	header.Flag.SetHasChecksum(true)

	return &EncoderConfig{
		header: header,
		engine: header.Flag.GetEndianEngine(),
	}
}

// Scheme returns the configured encoding scheme.
func (c *EncoderConfig) Scheme() format.SchemeType {
	return c.header.Flag.Scheme()
}

// Compression returns the configured compression type.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.header.Flag.Compression()
}

// Checksum returns whether the block carries a payload checksum.
func (c *EncoderConfig) Checksum() bool {
	return c.header.Flag.HasChecksum()
}

// Engine returns the byte order used for header fields.
func (c *EncoderConfig) Engine() endian.EndianEngine {
	return c.engine
}

func (c *EncoderConfig) setScheme(scheme format.SchemeType) error {
	if !scheme.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidScheme, scheme)
	}
	c.header.Flag.SetScheme(scheme)

	return nil
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, comp)
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

func (c *EncoderConfig) setEngine(engine endian.EndianEngine) {
	c.header.Flag.WithEndianEngine(engine)
	c.engine = c.header.Flag.GetEndianEngine()
}

// EncoderOption represents a functional option for configuring a block Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithScheme sets the encoding scheme of the payload.
// Default is format.SchemeCompactQuad.
func WithScheme(scheme format.SchemeType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setScheme(scheme)
	})
}

// WithCompression sets the compression applied to the encoded payload.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes header fields in little-endian byte order. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEngine(endian.GetLittleEndianEngine())
	})
}

// WithBigEndian writes header fields in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEngine(endian.GetBigEndianEngine())
	})
}

// WithNativeEndian writes header fields in the byte order of the host.
func WithNativeEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEngine(endian.NativeEngine())
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum. Default is enabled.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.SetHasChecksum(enabled)
	})
}
