package compress

import (
	"testing"
)

func BenchmarkCodecs(b *testing.B) {
	sizes := []struct {
		name  string
		count int
	}{
		{"1K", 1024},
		{"64K", 64 * 1024},
	}

	for _, ct := range allCompressionTypes {
		codec, _ := GetCodec(ct)
		for _, size := range sizes {
			payload := quadPayload(b, size.count)
			compressed, _ := codec.Compress(payload)

			b.Run(ct.String()+"/Compress/"+size.name, func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Compress(payload)
				}
			})

			b.Run(ct.String()+"/Decompress/"+size.name, func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Decompress(compressed)
				}
			})
		}
	}
}
