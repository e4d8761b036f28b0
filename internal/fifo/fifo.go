// Package fifo implements the fixed-capacity byte ring buffer between the
// receive side and the processing loop. It is safe for exactly one producer
// and one consumer: the two sides share nothing but the front and back
// indices, which are accessed atomically.
package fifo

import "sync/atomic"

// Buf is a single-producer single-consumer byte queue over a fixed region.
// One slot is always kept empty to tell a full buffer from an empty one, so
// usable capacity is len(region)-1. The zero value is unusable; call Init.
type Buf struct {
	buf []byte

	// front is the position of the oldest byte, owned by the consumer.
	front atomic.Uint32

	// back is the position after the newest byte, owned by the producer.
	back atomic.Uint32
}

// Init points the buffer at its backing region. The region must hold at
// least two bytes.
func (b *Buf) Init(region []byte) {
	b.buf = region
	b.front.Store(0)
	b.back.Store(0)
}

// Push appends one byte. It fails without mutating anything when the buffer
// is full. Producer side only.
func (b *Buf) Push(c byte) bool {
	back := b.back.Load()
	next := (back + 1) % uint32(len(b.buf))
	if next == b.front.Load() {
		return false
	}
	b.buf[back] = c
	b.back.Store(next)
	return true
}

// Pop removes and returns the oldest byte. It returns zero when the buffer
// is empty; callers are expected to check Available first. Consumer side
// only.
func (b *Buf) Pop() byte {
	front := b.front.Load()
	if front == b.back.Load() {
		return 0
	}
	c := b.buf[front]
	b.front.Store((front + 1) % uint32(len(b.buf)))
	return c
}

// Available returns the number of occupied slots.
func (b *Buf) Available() int {
	front := b.front.Load()
	back := b.back.Load()
	if back >= front {
		return int(back - front)
	}
	return int(uint32(len(b.buf)) - front + back)
}
