// Package num128 provides a two's-complement 128-bit signed integer.
//
// Int128 is the value representation behind geotime offsets: every bit
// pattern is a valid value, arithmetic wraps like native integers, and the
// zero value is the number zero. The type is immutable and safe for
// concurrent use.
package num128

import (
	"math/bits"
	"strconv"
)

const signBit = uint64(1) << 63

// Int128 is a signed 128-bit integer in two's-complement form, stored as a
// high and a low 64-bit word.
type Int128 struct {
	hi uint64
	lo uint64
}

// FromInt64 converts v to an Int128 with sign extension.
func FromInt64(v int64) Int128 {
	return Int128{hi: uint64(v >> 63), lo: uint64(v)}
}

// FromBits assembles an Int128 from its raw high and low words.
// The high word carries the sign bit of the two's-complement form.
func FromBits(hi, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// Bits returns the raw high and low words of the two's-complement form.
func (x Int128) Bits() (hi, lo uint64) {
	return x.hi, x.lo
}

// Int64 narrows x to an int64. The second result reports whether the value
// fits; when it is false the first result is meaningless.
func (x Int128) Int64() (int64, bool) {
	if x.hi != uint64(int64(x.lo)>>63) {
		return 0, false
	}

	return int64(x.lo), true
}

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (x Int128) Sign() int {
	if x.hi&signBit != 0 {
		return -1
	}
	if x.hi == 0 && x.lo == 0 {
		return 0
	}

	return 1
}

// Compare returns -1, 0, or 1 depending on whether x is less than, equal to,
// or greater than y in signed order.
func (x Int128) Compare(y Int128) int {
	// Flipping the sign bit maps signed order onto unsigned word order.
	xh, yh := x.hi^signBit, y.hi^signBit
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	default:
		return 0
	}
}

// Add returns x + y with wrap-around on overflow.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)

	return Int128{hi: hi, lo: lo}
}

// Sub returns x - y with wrap-around on overflow.
func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)

	return Int128{hi: hi, lo: lo}
}

// Mul returns x * y with wrap-around on overflow. Two's-complement
// multiplication modulo 2^128 is sign-correct, so the result is exact
// whenever the mathematical product fits in 128 bits.
func (x Int128) Mul(y Int128) Int128 {
	hi, lo := bits.Mul64(x.lo, y.lo)
	hi += x.hi*y.lo + x.lo*y.hi

	return Int128{hi: hi, lo: lo}
}

// Neg returns -x. Negating the minimum value wraps back to itself, as with
// native integers.
func (x Int128) Neg() Int128 {
	lo, borrow := bits.Sub64(0, x.lo, 0)
	hi, _ := bits.Sub64(0, x.hi, borrow)

	return Int128{hi: hi, lo: lo}
}

// Float64 returns the nearest float64 to x. Values of large magnitude lose
// precision but never overflow, since the full 128-bit range is far inside
// the float64 exponent range.
func (x Int128) Float64() float64 {
	hi, lo := x.hi, x.lo
	neg := hi&signBit != 0
	if neg {
		// Unsigned magnitude; the minimum value maps to exactly 2^127.
		lo, hi = negBits(hi, lo)
	}

	f := float64(hi)*(1<<64) + float64(lo)
	if neg {
		return -f
	}

	return f
}

// String returns the exact signed decimal representation of x.
func (x Int128) String() string {
	return string(x.AppendDecimal(make([]byte, 0, 40)))
}

// AppendDecimal appends the exact signed decimal representation of x to dst
// and returns the extended slice.
func (x Int128) AppendDecimal(dst []byte) []byte {
	hi, lo := x.hi, x.lo
	neg := hi&signBit != 0
	if neg {
		lo, hi = negBits(hi, lo)
		dst = append(dst, '-')
	}
	if hi == 0 {
		return strconv.AppendUint(dst, lo, 10)
	}

	// Peel 18-digit groups from the low end until the head fits in a word.
	const group = 1_000_000_000_000_000_000
	var tail [2]uint64
	n := 0
	for hi != 0 {
		var rem uint64
		hi, lo, rem = quoRem64(hi, lo, group)
		tail[n] = rem
		n++
	}
	dst = strconv.AppendUint(dst, lo, 10)
	for i := n - 1; i >= 0; i-- {
		s := strconv.FormatUint(tail[i], 10)
		for pad := 18 - len(s); pad > 0; pad-- {
			dst = append(dst, '0')
		}
		dst = append(dst, s...)
	}

	return dst
}

// negBits returns the two's-complement negation of the (hi, lo) pair.
func negBits(hi, lo uint64) (nlo, nhi uint64) {
	nlo, borrow := bits.Sub64(0, lo, 0)
	nhi, _ = bits.Sub64(0, hi, borrow)

	return nlo, nhi
}

// quoRem64 divides the unsigned 128-bit value (hi, lo) by d, returning the
// 128-bit quotient and the remainder. d must be non-zero.
func quoRem64(hi, lo, d uint64) (qhi, qlo, rem uint64) {
	qhi = hi / d
	qlo, rem = bits.Div64(hi%d, lo, d)

	return qhi, qlo, rem
}
