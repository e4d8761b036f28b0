// Package arena manages the engine's single block of storage. The block is
// either caller-supplied or self-allocated at construction and is carved
// into fixed regions exactly once; no region ever grows or moves afterwards.
package arena

import "errors"

// ErrBufferTooSmall is returned when a caller-supplied block cannot hold
// the required layout.
var ErrBufferTooSmall = errors.New("arena: buffer too small")

// Arena carves one contiguous byte block into fixed sub-regions.
type Arena struct {
	block []byte
	off   int
	owned bool
}

// New allocates a self-owned block of the given size.
func New(size int) *Arena {
	return &Arena{block: make([]byte, size), owned: true}
}

// FromBuffer wraps a caller-owned block. It fails when the block is smaller
// than required. The used prefix is zeroed since callers may hand over dirty
// storage.
func FromBuffer(buf []byte, required int) (*Arena, error) {
	if len(buf) < required {
		return nil, ErrBufferTooSmall
	}
	block := buf[:required]
	for i := range block {
		block[i] = 0
	}
	return &Arena{block: block}, nil
}

// Carve returns the next n bytes of the block. It fails when the block is
// exhausted; callers size the block with the same arithmetic that drives
// their carve calls, so a failure indicates a sizing bug.
func (a *Arena) Carve(n int) ([]byte, bool) {
	if n < 0 || a.off+n > len(a.block) {
		return nil, false
	}
	region := a.block[a.off : a.off+n : a.off+n]
	a.off += n
	return region, true
}

// Remaining returns the number of bytes not yet carved.
func (a *Arena) Remaining() int {
	return len(a.block) - a.off
}

// Owned reports whether the arena allocated its own block.
func (a *Arena) Owned() bool {
	return a.owned
}

// Release drops a self-owned block. Caller-supplied storage is left exactly
// as the engine last wrote it.
func (a *Arena) Release() {
	if a.owned {
		a.block = nil
	}
	a.off = 0
}
