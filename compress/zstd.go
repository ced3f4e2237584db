package compress

// ZstdCompressor compresses block payloads with Zstandard, the best ratio of
// the built-in codecs. It suits cold storage of long offset runs where
// decompression is infrequent.
//
// Two implementations are provided: a cgo build uses valyala/gozstd (libzstd
// bindings), and a pure-Go build uses klauspost/compress/zstd. The wire
// format is identical either way.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
