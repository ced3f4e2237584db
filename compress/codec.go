// Package compress provides the payload compression codecs used by geotime
// persistence blocks.
//
// Block payloads are small runs of delta- or raw-encoded offsets, so the
// codecs favor low per-call overhead: encoders and decoders are pooled or
// stateless, and every implementation is safe for concurrent use.
package compress

import (
	"fmt"

	"github.com/arloliu/geotime/format"
)

// Compressor compresses a block payload.
//
// The returned slice is newly allocated and owned by the caller (except for
// the no-op codec, which passes the input through); the input slice is never
// modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the same
// algorithm. It validates the compressed framing and returns an error for
// corrupted or mismatched input rather than producing wrong bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
