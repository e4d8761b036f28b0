// Package history stores submitted command lines in a fixed-capacity buffer,
// most recent first. Entries are laid out back to back, each ended by a
// single terminator byte, so the buffer never fragments and eviction is a
// count decrement plus a shift.
package history

import "bytes"

// Store is a bounded most-recent-first log of lines. The zero value is
// unusable; call Init with the backing region.
type Store struct {
	buf   []byte
	count int
}

// Init points the store at its backing region.
func (s *Store) Init(region []byte) {
	s.buf = region
	s.count = 0
}

// Count returns the number of stored entries.
func (s *Store) Count() int {
	return s.count
}

// Put copies entry to the front of the store, evicting oldest entries one at
// a time until the footprint (length plus terminator) fits. It fails without
// mutating anything when the entry alone cannot fit even with every older
// entry evicted. Re-inserting the current most recent entry is a no-op that
// still reports success.
func (s *Store) Put(entry []byte) bool {
	n := len(entry)
	if n+1 > len(s.buf) {
		return false
	}

	if newest, ok := s.Get(1); ok && bytes.Equal(newest, entry) {
		return true
	}

	used := s.used()
	for len(s.buf)-used < n+1 {
		oldest, _ := s.Get(s.count)
		used -= len(oldest) + 1
		s.count--
	}

	if s.count > 0 {
		// shift surviving entries right to open the front slot
		copy(s.buf[n+1:n+1+used], s.buf[:used])
	}
	copy(s.buf, entry)
	s.buf[n] = 0
	s.count++
	return true
}

// Get returns the entry with the given 1-based rank, 1 being the most
// recent. Rank 0 or a rank past the last entry yields ok == false. The
// returned slice is a view into the store and is invalidated by Put.
func (s *Store) Get(item int) ([]byte, bool) {
	if item <= 0 || item > s.count {
		return nil, false
	}

	off := 0
	for n := 1; n < item; n++ {
		for s.buf[off] != 0 {
			off++
		}
		off++
	}
	end := off
	for end < len(s.buf) && s.buf[end] != 0 {
		end++
	}
	return s.buf[off:end], true
}

// used returns the offset just past the oldest entry's terminator.
func (s *Store) used() int {
	off := 0
	for n := 0; n < s.count; n++ {
		for s.buf[off] != 0 {
			off++
		}
		off++
	}
	return off
}
