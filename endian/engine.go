// Package endian provides byte order utilities for block encoding and
// decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, and adds helpers for
// the 128-bit word pairs geotime offsets are made of. Block headers and raw
// payloads are little-endian on the wire; the big-endian engine exists for
// interoperability tests.
//
// All functions and methods are safe for concurrent use; the returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations. It is
// satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the standard for
// geotime blocks.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendUint128 appends the (hi, lo) word pair of a 128-bit value, low word
// first, using the engine's byte order for each word.
func AppendUint128(engine EndianEngine, buf []byte, hi, lo uint64) []byte {
	buf = engine.AppendUint64(buf, lo)

	return engine.AppendUint64(buf, hi)
}

// Uint128 reads the (hi, lo) word pair written by AppendUint128 from the
// first 16 bytes of buf.
func Uint128(engine EndianEngine, buf []byte) (hi, lo uint64) {
	lo = engine.Uint64(buf[0:8])
	hi = engine.Uint64(buf[8:16])

	return hi, lo
}
