package display

import (
	"errors"
	"time"

	"github.com/lestrrat-go/strftime"
)

// ErrOutOfRange reports that a value lies outside the range a Calendar can
// represent. Backends must return it (or wrap it) instead of producing an
// approximate or wrong string; the render pipeline consumes it to fall back
// to the magnitude tier.
var ErrOutOfRange = errors.New("display: offset outside calendar range")

// Calendar formats a millisecond offset from the Unix epoch using a
// strftime-style pattern such as "%Y-%m-%d".
//
// A backend is free to support any range it likes but must report
// ErrOutOfRange for values it cannot represent exactly. Implementations must
// be safe for concurrent use.
type Calendar interface {
	Format(millis int64, pattern string) (string, error)
}

// StdCalendar is the stock Calendar backend, built on the standard library
// time package and strftime patterns. It renders in UTC and supports every
// offset representable as int64 milliseconds.
type StdCalendar struct{}

var _ Calendar = StdCalendar{}

// Format renders the offset with the given strftime pattern in UTC.
// It returns an error for patterns strftime cannot parse.
func (StdCalendar) Format(millis int64, pattern string) (string, error) {
	return strftime.Format(pattern, time.UnixMilli(millis).UTC())
}
