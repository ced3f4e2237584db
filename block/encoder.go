// Package block packs runs of 128-bit millisecond offsets into
// self-describing binary blocks for persistence.
//
// A block is a 16-byte little-endian header (magic, version, payload
// encoding, compression, count, payload length), the payload, and an
// xxHash64 checksum of the stored payload. Two payload encodings are
// available:
//
//   - Raw: 16 fixed bytes per offset, for random access patterns.
//   - Delta: each offset as a zigzag varint difference from its predecessor,
//     which collapses regularly spaced runs to one or two bytes per step.
//
// Payloads may additionally be compressed with any codec from the compress
// package. Lexically encoded strings (see the lexical package) index
// individual values; blocks carry bulk runs.
//
// Typical usage:
//
//	encoder := block.NewEncoder(block.WithCompression(format.CompressionZstd))
//	for _, v := range offsets {
//		encoder.Write(v)
//	}
//	data, err := encoder.Finish()
//
//	blk, err := block.Decode(data)
//	values, err := blk.Values()
package block

import (
	"fmt"

	"github.com/arloliu/geotime/compress"
	"github.com/arloliu/geotime/endian"
	"github.com/arloliu/geotime/format"
	"github.com/arloliu/geotime/internal/hash"
	"github.com/arloliu/geotime/internal/pool"
	"github.com/arloliu/geotime/num128"
)

const (
	// blockMagic is "GTB1" in little-endian byte order.
	blockMagic = 0x31425447

	blockVersion = 1

	headerSize   = 16
	checksumSize = 8

	// maxBlockCount bounds the offsets per block so the header count field
	// and decode allocations stay trivially safe.
	maxBlockCount = 1 << 24
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithEncoding selects the payload encoding. The default is TypeDelta.
func WithEncoding(encoding format.EncodingType) Option {
	return func(e *Encoder) {
		e.encoding = encoding
	}
}

// WithCompression selects the payload compression. The default is
// CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return func(e *Encoder) {
		e.compression = compression
	}
}

// Encoder accumulates offsets and packs them into one block.
//
// An Encoder is a single-use accumulator: Write offsets, call Finish once,
// then discard it. It is not safe for concurrent mutation, matching the
// usual build-then-publish lifecycle of block construction.
type Encoder struct {
	buf         *pool.ByteBuffer
	engine      endian.EndianEngine
	prev        num128.Int128
	count       int
	encoding    format.EncodingType
	compression format.CompressionType
}

// NewEncoder creates a block encoder. Without options it produces
// delta-encoded, uncompressed blocks.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		buf:         pool.GetBlockBuffer(),
		engine:      endian.GetLittleEndianEngine(),
		encoding:    format.TypeDelta,
		compression: format.CompressionNone,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Write appends one offset to the block payload.
func (e *Encoder) Write(v num128.Int128) {
	switch e.encoding {
	case format.TypeRaw:
		hi, lo := v.Bits()
		e.buf.B = endian.AppendUint128(e.engine, e.buf.B, hi, lo)
	default:
		// Delta from the previous offset; the first offset is a delta from
		// zero, so a lone value costs the same as its own varint.
		hi, lo := zigzag(v.Sub(e.prev))
		e.buf.B = appendUvarint128(e.buf.B, hi, lo)
		e.prev = v
	}
	e.count++
}

// WriteSlice appends each offset in order.
func (e *Encoder) WriteSlice(vs []num128.Int128) {
	for _, v := range vs {
		e.Write(v)
	}
}

// Len returns the number of offsets written so far.
func (e *Encoder) Len() int {
	return e.count
}

// Finish compresses the payload, assembles the framed block and releases the
// encoder's buffer. The encoder must not be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	defer func() {
		pool.PutBlockBuffer(e.buf)
		e.buf = nil
	}()

	if e.encoding != format.TypeRaw && e.encoding != format.TypeDelta {
		return nil, fmt.Errorf("block: invalid payload encoding: %s", e.encoding)
	}
	if e.count > maxBlockCount {
		return nil, fmt.Errorf("block: %d offsets exceed the per-block maximum %d", e.count, maxBlockCount)
	}

	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	payload, err := codec.Compress(e.buf.B)
	if err != nil {
		return nil, fmt.Errorf("block: compressing payload: %w", err)
	}
	if len(payload) == 0 && e.buf.Len() > 0 {
		// LZ4 block compression reports incompressible input as an empty
		// result; store such payloads verbatim.
		payload = e.buf.B
		e.compression = format.CompressionNone
	}

	out := make([]byte, 0, headerSize+len(payload)+checksumSize)
	out = e.engine.AppendUint32(out, blockMagic)
	out = append(out, blockVersion, byte(e.encoding), byte(e.compression), 0)
	out = e.engine.AppendUint32(out, uint32(e.count))
	out = e.engine.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	out = e.engine.AppendUint64(out, hash.Checksum(payload))

	return out, nil
}
