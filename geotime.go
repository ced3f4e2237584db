// Package geotime represents instants on geological and cosmological time
// scales as a signed 128-bit count of milliseconds relative to the Unix
// epoch.
//
// A Geotime covers roughly ±5.4×10^27 years around 1970-01-01T00:00:00Z,
// which comfortably spans the age of the universe in either direction while
// staying millisecond-exact everywhere. Every 128-bit value is valid; there
// are no reserved or invalid states.
//
// # Sortable encodings
//
// For persistence and indexing, a Geotime encodes to fixed-width strings
// whose byte order matches numeric order, in four alphabets (hex, base32hex,
// geohash base32, and a 64-symbol base):
//
//	ts := geotime.FromMillis(0)
//	ts.LexicalHex()       // "80000000000000000000000000000000"
//	ts.LexicalBase32Hex() // "G0000000000000000000000000"
//
//	earlier, _ := geotime.ParseLexicalHex("7fffffffffffffffffffffffffffffff")
//	earlier.Before(ts) // true
//
// The encodings are produced by the lexical package; bulk runs of offsets
// pack into compressed binary blocks via the block package.
//
// # Display
//
// Display renders a Geotime for humans and never fails. Offsets within the
// calendar backend's range format as dates; offsets beyond it degrade to an
// order-of-magnitude approximation, then to an exact raw form:
//
//	geotime.FromMillis(0).Display("%Y-%m-%d") // "1970-01-01"
//	geotime.FromBits(0, 1<<63).Display("%Y")  // "299.87 M years from now"
//
// See the display package for the tier machinery and custom calendar
// backends.
package geotime

import (
	"errors"
	"time"

	"github.com/arloliu/geotime/display"
	"github.com/arloliu/geotime/lexical"
	"github.com/arloliu/geotime/num128"
)

// ErrMillisRange reports that an offset cannot be narrowed to int64
// milliseconds.
var ErrMillisRange = errors.New("geotime: offset outside int64 millisecond range")

// Geotime is an instant expressed as signed 128-bit milliseconds since the
// Unix epoch. The zero value is the epoch itself. Geotime values are
// immutable and safe for concurrent use.
type Geotime struct {
	ms num128.Int128
}

// FromMillis creates a Geotime from an int64 millisecond offset.
func FromMillis(ms int64) Geotime {
	return Geotime{ms: num128.FromInt64(ms)}
}

// FromInt128 creates a Geotime from a full 128-bit millisecond offset.
// The conversion is lossless and total in both directions; see Int128.
func FromInt128(v num128.Int128) Geotime {
	return Geotime{ms: v}
}

// FromBits creates a Geotime from the raw two's-complement words of its
// millisecond offset.
func FromBits(hi, lo uint64) Geotime {
	return Geotime{ms: num128.FromBits(hi, lo)}
}

// FromTime creates a Geotime from a time.Time, truncating to millisecond
// precision.
func FromTime(t time.Time) Geotime {
	return FromMillis(t.UnixMilli())
}

// Unix creates a Geotime from seconds and nanoseconds since the epoch,
// truncating to millisecond precision. Like time.Unix, nsec may lie outside
// [0, 999999999]; the pair is normalized first. The widening happens before
// the millisecond conversion, so sec values near the int64 bounds do not
// overflow.
func Unix(sec, nsec int64) Geotime {
	s := num128.FromInt64(sec).Add(num128.FromInt64(nsec / 1e9))
	rem := nsec % 1e9
	if rem < 0 {
		rem += 1e9
		s = s.Sub(num128.FromInt64(1))
	}
	ms := s.Mul(num128.FromInt64(1000)).Add(num128.FromInt64(rem / 1e6))

	return Geotime{ms: ms}
}

// Int128 returns the exact millisecond offset.
func (g Geotime) Int128() num128.Int128 {
	return g.ms
}

// Millis narrows the offset to int64 milliseconds, or returns ErrMillisRange
// when the instant lies outside that range.
func (g Geotime) Millis() (int64, error) {
	ms, ok := g.ms.Int64()
	if !ok {
		return 0, ErrMillisRange
	}

	return ms, nil
}

// Time converts the instant to a time.Time in UTC, or returns ErrMillisRange
// when it is not representable as int64 milliseconds.
func (g Geotime) Time() (time.Time, error) {
	ms, err := g.Millis()
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMilli(ms).UTC(), nil
}

// Compare returns -1, 0, or 1 depending on whether g is before, equal to, or
// after o.
func (g Geotime) Compare(o Geotime) int {
	return g.ms.Compare(o.ms)
}

// Before reports whether g is earlier than o.
func (g Geotime) Before(o Geotime) bool {
	return g.ms.Compare(o.ms) < 0
}

// After reports whether g is later than o.
func (g Geotime) After(o Geotime) bool {
	return g.ms.Compare(o.ms) > 0
}

// Equal reports whether g and o are the same instant.
func (g Geotime) Equal(o Geotime) bool {
	return g.ms.Compare(o.ms) == 0
}

// String returns the exact decimal millisecond offset.
func (g Geotime) String() string {
	return g.ms.String()
}

// Display renders the instant for humans with the given strftime pattern,
// e.g. "%Y-%m-%d". It never fails: offsets outside the calendar range fall
// back to an approximate magnitude, then to an exact raw rendering.
func (g Geotime) Display(pattern string) string {
	return display.Render(g.ms, pattern)
}

// LexicalHex encodes the instant as a 32-byte sortable hex string.
func (g Geotime) LexicalHex() string {
	return lexical.Hex.Encode(g.ms)
}

// LexicalBase32Hex encodes the instant as a 26-byte sortable base32hex
// string.
func (g Geotime) LexicalBase32Hex() string {
	return lexical.Base32Hex.Encode(g.ms)
}

// LexicalGeohash encodes the instant as a 26-byte sortable string over the
// geohash alphabet.
func (g Geotime) LexicalGeohash() string {
	return lexical.Geohash32.Encode(g.ms)
}

// LexicalBase64 encodes the instant as a 22-byte sortable string over a
// 64-symbol ASCII-ordered alphabet.
func (g Geotime) LexicalBase64() string {
	return lexical.Base64.Encode(g.ms)
}

// ParseLexicalHex decodes a string produced by LexicalHex.
func ParseLexicalHex(s string) (Geotime, error) {
	return parse(lexical.Hex, s)
}

// ParseLexicalBase32Hex decodes a string produced by LexicalBase32Hex.
func ParseLexicalBase32Hex(s string) (Geotime, error) {
	return parse(lexical.Base32Hex, s)
}

// ParseLexicalGeohash decodes a string produced by LexicalGeohash.
func ParseLexicalGeohash(s string) (Geotime, error) {
	return parse(lexical.Geohash32, s)
}

// ParseLexicalBase64 decodes a string produced by LexicalBase64.
func ParseLexicalBase64(s string) (Geotime, error) {
	return parse(lexical.Base64, s)
}

func parse(codec *lexical.Codec, s string) (Geotime, error) {
	v, err := codec.Decode(s)
	if err != nil {
		return Geotime{}, err
	}

	return Geotime{ms: v}, nil
}
