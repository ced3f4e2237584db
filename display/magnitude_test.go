package display

import (
	"testing"

	"github.com/arloliu/geotime/num128"
	"github.com/stretchr/testify/require"
)

func fromYears(years int64) num128.Int128 {
	v := num128.FromInt64(0)
	step := num128.FromInt64(millisPerYear)
	if years < 0 {
		step = step.Neg()
		years = -years
	}
	for i := int64(0); i < years; i++ {
		v = v.Add(step)
	}

	return v
}

func TestMagnitude_Direction(t *testing.T) {
	s, err := Magnitude(num128.FromInt64(0))
	require.NoError(t, err)
	require.Equal(t, "0.00 years from now", s)

	s, err = Magnitude(num128.FromInt64(-millisPerYear))
	require.NoError(t, err)
	require.Equal(t, "1.00 years ago", s)

	s, err = Magnitude(num128.FromInt64(millisPerYear))
	require.NoError(t, err)
	require.Equal(t, "1.00 years from now", s)
}

func TestMagnitude_UnitScaling(t *testing.T) {
	tests := []struct {
		years int64
		want  string
	}{
		{2, "2.00 years from now"},
		{999, "999.00 years from now"},
		{1000, "1.00 K years from now"},
		{1500, "1.50 K years from now"},
		{-2500, "2.50 K years ago"},
	}
	for _, tt := range tests {
		s, err := Magnitude(fromYears(tt.years))
		require.NoError(t, err)
		require.Equal(t, tt.want, s)
	}
}

func TestMagnitude_LiteralScenarios(t *testing.T) {
	s, err := Magnitude(num128.FromBits(0, 1<<63)) // 2^63 ms
	require.NoError(t, err)
	require.Equal(t, "299.87 M years from now", s)

	s, err = Magnitude(num128.FromBits(0xffffffffffffffce, 0x64)) // -(2^63-1)*100 ms
	require.NoError(t, err)
	require.Equal(t, "29.99 B years ago", s)
}

func TestMagnitude_UnsafeAtExtremes(t *testing.T) {
	_, err := Magnitude(num128.FromBits(0x8000000000000000, 0))
	require.ErrorIs(t, err, ErrMagnitudeUnsafe)

	_, err = Magnitude(num128.FromBits(0x7fffffffffffffff, 0xffffffffffffffff))
	require.ErrorIs(t, err, ErrMagnitudeUnsafe)
}
