package block

import (
	"github.com/arloliu/geotime/num128"
)

// maxVarint128Len is the largest encoded size of a 128-bit varint:
// ceil(128 / 7) bytes.
const maxVarint128Len = 19

// zigzag maps a signed 128-bit value to an unsigned word pair so that small
// magnitudes of either sign produce short varints: (v << 1) ^ (v >> 127).
func zigzag(v num128.Int128) (hi, lo uint64) {
	h, l := v.Bits()
	sh := h<<1 | l>>63
	sl := l << 1
	mask := uint64(int64(h) >> 63) // all ones when v is negative

	return sh ^ mask, sl ^ mask
}

// unzigzag inverts zigzag.
func unzigzag(hi, lo uint64) num128.Int128 {
	mask := -(lo & 1)
	h := hi >> 1
	l := lo>>1 | hi<<63

	return num128.FromBits(h^mask, l^mask)
}

// appendUvarint128 appends the unsigned word pair in base-128 varint form,
// least significant group first, continuation bit on all but the last byte.
func appendUvarint128(dst []byte, hi, lo uint64) []byte {
	for hi != 0 || lo > 0x7f {
		dst = append(dst, byte(lo)|0x80)
		lo = lo>>7 | hi<<57
		hi >>= 7
	}

	return append(dst, byte(lo))
}

// uvarint128 decodes a 128-bit varint from the start of buf, returning the
// word pair and the number of bytes consumed. It returns n == 0 when buf
// holds no terminated varint within maxVarint128Len bytes.
func uvarint128(buf []byte) (hi, lo uint64, n int) {
	var shift uint
	for i, b := range buf {
		if i == maxVarint128Len {
			return 0, 0, 0
		}
		group := uint64(b & 0x7f)
		if shift == 126 && group > 3 {
			// The 19th byte may only carry the top two bits of the value;
			// anything above bit 127 makes the varint non-canonical.
			return 0, 0, 0
		}
		switch {
		case shift < 64:
			lo |= group << shift
			if shift > 57 {
				hi |= group >> (64 - shift)
			}
		default:
			hi |= group << (shift - 64)
		}
		if b < 0x80 {
			return hi, lo, i + 1
		}
		shift += 7
	}

	return 0, 0, 0
}
