package num128

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromInt64_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 100, -100, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		x := FromInt64(v)
		got, ok := x.Int64()
		require.True(t, ok, "value %d should fit in int64", v)
		require.Equal(t, v, got)
	}
}

func TestInt64_OutOfRange(t *testing.T) {
	tooBig := FromInt64(math.MaxInt64).Add(FromInt64(1))
	_, ok := tooBig.Int64()
	require.False(t, ok)

	tooSmall := FromInt64(math.MinInt64).Sub(FromInt64(1))
	_, ok = tooSmall.Int64()
	require.False(t, ok)
}

func TestFromBits_RoundTrip(t *testing.T) {
	x := FromBits(0x0123456789abcdef, 0xfedcba9876543210)
	hi, lo := x.Bits()
	require.Equal(t, uint64(0x0123456789abcdef), hi)
	require.Equal(t, uint64(0xfedcba9876543210), lo)
}

func TestSign(t *testing.T) {
	require.Equal(t, 0, FromInt64(0).Sign())
	require.Equal(t, 1, FromInt64(1).Sign())
	require.Equal(t, -1, FromInt64(-1).Sign())
	require.Equal(t, 1, FromBits(0x7fffffffffffffff, 0xffffffffffffffff).Sign())
	require.Equal(t, -1, FromBits(0x8000000000000000, 0).Sign())
}

func TestCompare_Ordering(t *testing.T) {
	// Ascending across both word boundaries and the sign boundary.
	ordered := []Int128{
		FromBits(0x8000000000000000, 0), // minimum
		FromBits(0x8000000000000000, 1),
		FromInt64(math.MinInt64),
		FromInt64(-1_000_000),
		FromInt64(-1),
		FromInt64(0),
		FromInt64(1),
		FromInt64(math.MaxInt64),
		FromBits(0, 1<<63), // 2^63
		FromBits(1, 0),     // 2^64
		FromBits(0x7fffffffffffffff, 0xffffffffffffffff), // maximum
	}
	for i, a := range ordered {
		for j, b := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			require.Equal(t, want, a.Compare(b), "Compare(%s, %s)", a, b)
		}
	}
}

func TestAddSubNeg(t *testing.T) {
	a := FromInt64(math.MaxInt64)
	one := FromInt64(1)

	sum := a.Add(one) // 2^63, crosses the low word boundary
	hi, lo := sum.Bits()
	require.Equal(t, uint64(0), hi)
	require.Equal(t, uint64(1)<<63, lo)

	require.Equal(t, a, sum.Sub(one))
	require.Equal(t, FromInt64(-5), FromInt64(5).Neg())
	require.Equal(t, FromInt64(0), FromInt64(0).Neg())

	// The minimum value negates to itself, like native integers.
	minVal := FromBits(0x8000000000000000, 0)
	require.Equal(t, minVal, minVal.Neg())
}

func TestMul(t *testing.T) {
	require.Equal(t, FromInt64(6), FromInt64(2).Mul(FromInt64(3)))
	require.Equal(t, FromInt64(-6), FromInt64(2).Mul(FromInt64(-3)))
	require.Equal(t, FromInt64(6), FromInt64(-2).Mul(FromInt64(-3)))
	require.Equal(t, FromInt64(0), FromBits(0x7fffffffffffffff, 0xffffffffffffffff).Mul(FromInt64(0)))

	// Products wider than 64 bits.
	require.Equal(t, FromBits(0x40, 0), FromBits(0, 1<<35).Mul(FromBits(0, 1<<35))) // 2^70
	require.Equal(t, FromBits(0x1f3, 0xfffffffffffffc18), FromInt64(math.MaxInt64).Mul(FromInt64(1000)))
	require.Equal(t, FromBits(0xfffffffffffffe0c, 0), FromInt64(math.MinInt64).Mul(FromInt64(1000)))
	require.Equal(t, FromBits(0xfffffffffffffffb, 0x8e38e38e38e39268),
		FromInt64(0x123456789abcdef).Mul(FromInt64(-1000)))
}

func TestFloat64(t *testing.T) {
	require.Equal(t, 0.0, FromInt64(0).Float64())
	require.Equal(t, 1.0, FromInt64(1).Float64())
	require.Equal(t, -1.0, FromInt64(-1).Float64())
	require.Equal(t, math.Ldexp(1, 63), FromBits(0, 1<<63).Float64())
	require.Equal(t, math.Ldexp(1, 64), FromBits(1, 0).Float64())
	require.Equal(t, -math.Ldexp(1, 127), FromBits(0x8000000000000000, 0).Float64())
	require.InEpsilon(t, 1e21, FromBits(0, 0).Sub(FromBits(0xffffffffffffffc9, 0xca36523a21600000)).Float64(), 1e-12)
}

func TestString(t *testing.T) {
	tests := []struct {
		value Int128
		want  string
	}{
		{FromInt64(0), "0"},
		{FromInt64(1), "1"},
		{FromInt64(-1), "-1"},
		{FromInt64(math.MaxInt64), "9223372036854775807"},
		{FromInt64(math.MinInt64), "-9223372036854775808"},
		{FromBits(0, 1<<63), "9223372036854775808"},
		{FromBits(0xffffffffffffffc9, 0xca36523a21600000), "-1000000000000000000000"},
		{FromBits(0x7fffffffffffffff, 0xffffffffffffffff), "170141183460469231731687303715884105727"},
		{FromBits(0x8000000000000000, 0), "-170141183460469231731687303715884105728"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.value.String())
	}
}

func TestAppendDecimal(t *testing.T) {
	buf := []byte("ms=")
	buf = FromBits(0x8000000000000000, 0).AppendDecimal(buf)
	require.Equal(t, "ms=-170141183460469231731687303715884105728", string(buf))
}
