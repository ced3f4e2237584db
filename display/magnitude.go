package display

import (
	"errors"
	"fmt"

	"github.com/arloliu/geotime/num128"
)

// millisPerYear is the fixed year length used by the magnitude tier:
// 356 × 86,400,000 ms. The constant is part of the output contract; the
// rendered magnitudes are order-of-magnitude approximations, so calendar
// exactness is not a goal, but the constant must never change or previously
// rendered strings stop reproducing.
const millisPerYear = 30_758_400_000

// maxMagnitudeYears bounds the magnitude tier. At 10^18 years the scaled
// value would exceed the largest unit suffix, so larger magnitudes are
// reported unsafe and the caller falls back to the exact raw rendering.
const maxMagnitudeYears = 1e18

// ErrMagnitudeUnsafe reports that an offset is too large for the magnitude
// approximation. The render pipeline consumes it to select the raw tier.
var ErrMagnitudeUnsafe = errors.New("display: magnitude exceeds representable years")

// unitScales maps magnitudes to conventional thousands-based suffixes,
// largest first.
var unitScales = []struct {
	suffix string
	factor float64
}{
	{"Q", 1e15},
	{"T", 1e12},
	{"B", 1e9},
	{"M", 1e6},
	{"K", 1e3},
}

// Magnitude renders a millisecond offset as an approximate year count with a
// direction, e.g. "299.87 M years from now" or "29.99 B years ago".
//
// Non-negative offsets render "from now", negative offsets "ago" with the
// absolute magnitude. The scaled value carries two decimals and is below
// 1000 in its unit. Offsets of maxMagnitudeYears or more return
// ErrMagnitudeUnsafe instead of a string.
func Magnitude(v num128.Int128) (string, error) {
	years := v.Float64() / millisPerYear
	direction := "from now"
	if v.Sign() < 0 {
		direction = "ago"
		years = -years
	}
	if years >= maxMagnitudeYears {
		return "", ErrMagnitudeUnsafe
	}

	for _, unit := range unitScales {
		if years >= unit.factor {
			return fmt.Sprintf("%.2f %s years %s", years/unit.factor, unit.suffix, direction), nil
		}
	}

	return fmt.Sprintf("%.2f years %s", years, direction), nil
}
