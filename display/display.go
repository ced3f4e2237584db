// Package display renders 128-bit millisecond offsets as human-readable
// strings through a three-tier fallback chain.
//
// The calendar tier delegates to a Calendar backend and produces an exact
// date/time for offsets the backend can represent. Outside that range the
// magnitude tier produces an order-of-magnitude approximation such as
// "299.87 M years from now". When even the approximation is numerically
// meaningless the raw tier embeds the exact value, e.g.
// "Geotime(-170141183460469231731687303715884105728) ms ago".
//
// Render is total: the raw tier performs no floating-point or backend work
// and cannot fail, so every input produces a string.
package display

import (
	"github.com/arloliu/geotime/num128"
)

// Tier identifies which stage of the fallback chain produced a rendering.
type Tier uint8

const (
	// TierCalendar is an exact calendar rendering from the backend.
	TierCalendar Tier = iota

	// TierMagnitude is a scaled approximate year count with a direction.
	TierMagnitude

	// TierRaw is the non-failing fallback embedding the exact offset.
	TierRaw
)

func (t Tier) String() string {
	switch t {
	case TierCalendar:
		return "Calendar"
	case TierMagnitude:
		return "Magnitude"
	case TierRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Render formats the offset with the stock StdCalendar backend.
// See RenderWith.
func Render(v num128.Int128, pattern string) string {
	s, _ := RenderWith(StdCalendar{}, v, pattern)

	return s
}

// RenderWith formats the offset through the tier chain using the given
// backend, reporting which tier produced the result. It never fails: the
// calendar tier is skipped when the offset exceeds int64 milliseconds or the
// backend reports an error, the magnitude tier is skipped when the
// approximation is unsafe, and the raw tier always succeeds.
func RenderWith(cal Calendar, v num128.Int128, pattern string) (string, Tier) {
	if millis, ok := v.Int64(); ok {
		if s, err := cal.Format(millis, pattern); err == nil {
			return s, TierCalendar
		}
	}

	if s, err := Magnitude(v); err == nil {
		return s, TierMagnitude
	}

	return Raw(v), TierRaw
}

// Raw returns the debug-style rendering embedding the exact offset with no
// precision loss. It is the terminal tier of the chain and cannot fail.
func Raw(v num128.Int128) string {
	buf := make([]byte, 0, 64)
	buf = append(buf, "Geotime("...)
	buf = v.AppendDecimal(buf)
	buf = append(buf, ") ms ago"...)

	return string(buf)
}
