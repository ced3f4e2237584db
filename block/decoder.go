package block

import (
	"fmt"
	"iter"

	"github.com/arloliu/geotime/compress"
	"github.com/arloliu/geotime/endian"
	"github.com/arloliu/geotime/format"
	"github.com/arloliu/geotime/internal/hash"
	"github.com/arloliu/geotime/num128"
)

// Block is a decoded, checksum-verified block with its payload decompressed
// but not yet parsed.
type Block struct {
	payload     []byte
	count       int
	encoding    format.EncodingType
	compression format.CompressionType
}

// Decode validates the framing of data (magic, version, lengths, checksum)
// and decompresses the payload. Offset parsing happens in Values or All.
func Decode(data []byte) (*Block, error) {
	engine := endian.GetLittleEndianEngine()
	if len(data) < headerSize+checksumSize {
		return nil, fmt.Errorf("block: %d bytes is too short for a block frame", len(data))
	}
	if engine.Uint32(data[0:4]) != blockMagic {
		return nil, fmt.Errorf("block: bad magic %#x", engine.Uint32(data[0:4]))
	}
	if data[4] != blockVersion {
		return nil, fmt.Errorf("block: unsupported version %d", data[4])
	}

	encoding := format.EncodingType(data[5])
	if encoding != format.TypeRaw && encoding != format.TypeDelta {
		return nil, fmt.Errorf("block: invalid payload encoding: %s", encoding)
	}
	compression := format.CompressionType(data[6])
	count := int(engine.Uint32(data[8:12]))
	payloadLen := int(engine.Uint32(data[12:16]))
	if count > maxBlockCount {
		return nil, fmt.Errorf("block: count %d exceeds the per-block maximum %d", count, maxBlockCount)
	}
	if len(data) != headerSize+payloadLen+checksumSize {
		return nil, fmt.Errorf("block: frame is %d bytes, header describes %d",
			len(data), headerSize+payloadLen+checksumSize)
	}

	stored := data[headerSize : headerSize+payloadLen]
	wantSum := engine.Uint64(data[headerSize+payloadLen:])
	if got := hash.Checksum(stored); got != wantSum {
		return nil, fmt.Errorf("block: checksum mismatch: got %#x, want %#x", got, wantSum)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("block: decompressing payload: %w", err)
	}
	if compression == format.CompressionNone {
		// The no-op codec passes its input through, which would leave the
		// block aliasing the caller's frame.
		payload = append([]byte(nil), payload...)
	}

	return &Block{
		payload:     payload,
		count:       count,
		encoding:    encoding,
		compression: compression,
	}, nil
}

// Len returns the number of offsets in the block.
func (b *Block) Len() int {
	return b.count
}

// Encoding returns the payload encoding type.
func (b *Block) Encoding() format.EncodingType {
	return b.encoding
}

// Compression returns the payload compression type.
func (b *Block) Compression() format.CompressionType {
	return b.compression
}

// Values parses the payload into the original run of offsets. It returns an
// error when the payload is truncated or holds a different number of offsets
// than the header declares.
func (b *Block) Values() ([]num128.Int128, error) {
	values := make([]num128.Int128, 0, b.count)

	switch b.encoding {
	case format.TypeRaw:
		if len(b.payload) != b.count*16 {
			return nil, fmt.Errorf("block: raw payload is %d bytes, want %d", len(b.payload), b.count*16)
		}
		engine := endian.GetLittleEndianEngine()
		for i := 0; i < b.count; i++ {
			hi, lo := endian.Uint128(engine, b.payload[i*16:])
			values = append(values, num128.FromBits(hi, lo))
		}
	default:
		rest := b.payload
		prev := num128.FromInt64(0)
		for i := 0; i < b.count; i++ {
			hi, lo, n := uvarint128(rest)
			if n == 0 {
				return nil, fmt.Errorf("block: delta payload truncated at offset %d of %d", i, b.count)
			}
			rest = rest[n:]
			prev = prev.Add(unzigzag(hi, lo))
			values = append(values, prev)
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("block: %d trailing bytes after %d offsets", len(rest), b.count)
		}
	}

	return values, nil
}

// All returns an iterator over the block's offsets in order. Iteration stops
// early on a malformed payload; use Values to distinguish that case.
func (b *Block) All() iter.Seq[num128.Int128] {
	return func(yield func(num128.Int128) bool) {
		values, err := b.Values()
		if err != nil {
			return
		}
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
