package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/geotime/format"
	"github.com/stretchr/testify/require"
)

// samplePayload resembles a delta-encoded offset run: long stretches of
// small repeated varint bytes, which every codec should shrink.
func samplePayload() []byte {
	payload := make([]byte, 0, 4096)
	for i := 0; i < 1024; i++ {
		payload = append(payload, 0x80, 0xe8, 0x07, 0x00)
	}

	return payload
}

func TestGetCodec_Builtin(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xff))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := samplePayload()
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))

			if ct != format.CompressionNone {
				require.Less(t, len(compressed), len(payload), "repetitive payload should shrink")
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{
		NewNoOpCompressor(),
		NewZstdCompressor(),
		NewS2Compressor(),
		NewLZ4Compressor(),
	} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCodecs_DecompressRejectsGarbage(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}

	zstdCodec := NewZstdCompressor()
	_, err := zstdCodec.Decompress(garbage)
	require.Error(t, err)

	s2Codec := NewS2Compressor()
	_, err = s2Codec.Decompress(garbage)
	require.Error(t, err)
}
