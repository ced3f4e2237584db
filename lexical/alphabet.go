package lexical

import (
	"fmt"
	"math/bits"
)

// Stock alphabet symbol sets. Each is arranged in strictly ascending byte
// order so that symbol index order equals lexical order, which is what makes
// the encodings sortable.
const (
	// HexSymbols is the lowercase hexadecimal alphabet (radix 16, width 32).
	HexSymbols = "0123456789abcdef"

	// Base32HexSymbols is the RFC 4648 base32hex alphabet without padding
	// (radix 32, width 26).
	Base32HexSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

	// GeohashSymbols is the geohash base32 alphabet, which drops a, i, l
	// and o to avoid transcription mistakes (radix 32, width 26).
	GeohashSymbols = "0123456789bcdefghjkmnpqrstuvwxyz"

	// Base64Symbols is a 64-symbol alphabet in ASCII order (radix 64,
	// width 22). Unlike standard base64, digits sort before letters and
	// uppercase sorts before lowercase, so encoded strings sort correctly.
	Base64Symbols = "0123456789:ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"
)

// Alphabet is an ordered symbol set for fixed-width lexical encoding.
//
// The radix must be a power of two between 2 and 64 so that each symbol
// carries a whole number of bits, and the symbols must be distinct and in
// strictly ascending byte order. Both properties are checked at construction
// time, never during encoding.
type Alphabet struct {
	symbols string
	index   [256]int8
	bits    uint
}

// NewAlphabet builds an Alphabet from the given symbol string.
//
// Returns an error if the symbol count is not a power of two in [2, 64] or
// if the symbols are not in strictly ascending byte order.
func NewAlphabet(symbols string) (*Alphabet, error) {
	n := len(symbols)
	if n < 2 || n > 64 || n&(n-1) != 0 {
		return nil, fmt.Errorf("lexical: alphabet size %d is not a power of two in [2, 64]", n)
	}

	a := &Alphabet{
		symbols: symbols,
		bits:    uint(bits.TrailingZeros(uint(n))),
	}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < n; i++ {
		if i > 0 && symbols[i] <= symbols[i-1] {
			return nil, fmt.Errorf("lexical: symbol %q at index %d breaks ascending byte order", symbols[i], i)
		}
		a.index[symbols[i]] = int8(i)
	}

	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on invalid symbols. It is
// intended for the package-level stock alphabets and other compile-time
// constant symbol sets.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}

	return a
}

// Radix returns the number of symbols in the alphabet.
func (a *Alphabet) Radix() int {
	return len(a.symbols)
}

// Symbols returns the symbol string in index order.
func (a *Alphabet) Symbols() string {
	return a.symbols
}

// SymbolBits returns the number of bits each symbol encodes.
func (a *Alphabet) SymbolBits() uint {
	return a.bits
}
