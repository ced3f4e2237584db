// Package pool provides pooled byte buffers for block encoding.
package pool

import (
	"sync"
)

const (
	// BlockBufferDefaultSize is the initial capacity of pooled buffers,
	// sized for a typical delta-encoded block payload.
	BlockBufferDefaultSize = 1024 * 4

	// BlockBufferMaxThreshold is the largest capacity returned to the pool.
	// Oversized buffers are dropped to keep the pool footprint bounded.
	BlockBufferMaxThreshold = 1024 * 64
)

// ByteBuffer is a minimal growable byte buffer backed by a plain slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, retaining allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var blockBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(BlockBufferDefaultSize)
	},
}

// GetBlockBuffer obtains an empty ByteBuffer from the pool.
func GetBlockBuffer() *ByteBuffer {
	bb, _ := blockBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBlockBuffer returns a ByteBuffer to the pool. Buffers that grew beyond
// BlockBufferMaxThreshold are dropped.
func PutBlockBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > BlockBufferMaxThreshold {
		return
	}
	blockBufferPool.Put(bb)
}
