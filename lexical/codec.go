// Package lexical provides order-preserving fixed-width string encodings of
// 128-bit signed millisecond offsets.
//
// Each codec maps a value to a string of fixed width such that comparing two
// encoded strings byte-by-byte gives the same result as comparing the values
// numerically, for every pair of representable values. This makes the
// encodings directly usable as sort keys in ordered stores (LSM trees,
// B-trees, object-store listings) without a custom comparator.
//
// The mapping first biases the signed value into unsigned space by flipping
// its sign bit (adding 2^127), then emits the 128 bits most-significant
// first in fixed-size groups, one alphabet symbol per group, with zero bits
// padding the final group. Because the alphabet symbols are themselves in
// ascending byte order, unsigned magnitude order carries through to string
// order.
//
// Four stock codecs are provided:
//
//	Hex        lowercase hex, width 32
//	Base32Hex  RFC 4648 base32hex without padding, width 26
//	Geohash32  geohash-style base32, width 26
//	Base64     64-symbol ASCII-ordered alphabet, width 22
//
// The epoch offset 0 encodes to the midpoint of each keyspace, e.g.
// "80000000000000000000000000000000" in hex and
// "G0000000000000000000000000" in base32hex; negative offsets sort below it
// and positive offsets above.
package lexical

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/geotime/num128"
)

// valueBits is the size of the encoded value. Every codec emits exactly
// ceil(valueBits / symbolBits) symbols.
const valueBits = 128

// Stock codecs, one per stock alphabet.
var (
	Hex       = NewCodec(MustAlphabet(HexSymbols))
	Base32Hex = NewCodec(MustAlphabet(Base32HexSymbols))
	Geohash32 = NewCodec(MustAlphabet(GeohashSymbols))
	Base64    = NewCodec(MustAlphabet(Base64Symbols))
)

// Codec is a bidirectional fixed-width lexical encoding over one alphabet.
// Codecs are immutable and safe for concurrent use.
type Codec struct {
	alpha *Alphabet
	width int
}

// NewCodec creates a codec for the given alphabet. The width is derived from
// the alphabet radix: the smallest symbol count that covers 128 bits.
func NewCodec(alpha *Alphabet) *Codec {
	return &Codec{
		alpha: alpha,
		width: int((valueBits + alpha.bits - 1) / alpha.bits),
	}
}

// Width returns the exact length of every encoded string.
func (c *Codec) Width() int {
	return c.width
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *Alphabet {
	return c.alpha
}

// Encode returns the fixed-width lexical encoding of v.
//
// The result always has length Width, and for any two values v1 < v2 the
// encoded strings satisfy Encode(v1) < Encode(v2) in byte order. This holds
// across the full range, including the minimum and maximum 128-bit values.
func (c *Codec) Encode(v num128.Int128) string {
	hi, lo := v.Bits()
	hi ^= 1 << 63 // bias by 2^127: signed order becomes unsigned order

	var src [16]byte
	binary.BigEndian.PutUint64(src[0:8], hi)
	binary.BigEndian.PutUint64(src[8:16], lo)

	b := c.alpha.bits
	mask := uint64(1)<<b - 1
	out := make([]byte, c.width)

	var acc uint64
	var nbits uint
	next := 0
	for i := range out {
		for nbits < b {
			var by byte
			if next < len(src) {
				by = src[next]
				next++
			}
			acc = acc<<8 | uint64(by)
			nbits += 8
		}
		nbits -= b
		out[i] = c.alpha.symbols[(acc>>nbits)&mask]
	}

	return string(out)
}

// Decode parses a string produced by Encode back into its value.
//
// It returns an error for malformed input: wrong length, a byte outside the
// alphabet, or non-zero padding bits in the final symbol (which would make
// the representation non-canonical). Decode never fails on an Encode output,
// and Encode(Decode(s)) reproduces s exactly for every accepted s.
func (c *Codec) Decode(s string) (num128.Int128, error) {
	if len(s) != c.width {
		return num128.Int128{}, fmt.Errorf("lexical: invalid length %d, want %d", len(s), c.width)
	}

	b := c.alpha.bits
	var dst [16]byte
	var acc uint64
	var nbits uint
	di := 0
	for i := 0; i < len(s); i++ {
		d := c.alpha.index[s[i]]
		if d < 0 {
			return num128.Int128{}, fmt.Errorf("lexical: byte %q at position %d is not in the alphabet", s[i], i)
		}
		acc = acc<<b | uint64(d)
		nbits += b
		for nbits >= 8 && di < len(dst) {
			nbits -= 8
			dst[di] = byte(acc >> nbits)
			di++
		}
	}
	if acc&(uint64(1)<<nbits-1) != 0 {
		return num128.Int128{}, fmt.Errorf("lexical: non-canonical padding bits in %q", s)
	}

	hi := binary.BigEndian.Uint64(dst[0:8]) ^ 1<<63
	lo := binary.BigEndian.Uint64(dst[8:16])

	return num128.FromBits(hi, lo), nil
}
