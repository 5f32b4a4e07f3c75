// Package ring implements a fixed-capacity circular buffer.
//
// Unlike a grow-on-demand deque, a Ring never reallocates after
// construction: new values overwrite the slot under a wrapping
// write cursor, evicting the oldest value once the ring is full.
// That makes Push O(1) with zero allocations, which is the point
// of using it for rolling windows of recent values.
package ring

import "iter"

// Ring holds a fixed-capacity circular buffer. Values are pushed
// at the end; once the ring holds Cap values, each Push evicts
// the oldest one.
//
// A Ring is not safe for concurrent use.
type Ring[T any] struct {
	// buf holds the backing slice. Its length is fixed at
	// construction and never changes.
	buf []T

	// cur holds the index of the slot the next Push will write.
	// Invariant: 0 <= cur < len(buf).
	cur int

	// len holds the number of live values, at most len(buf).
	// Until the first wrap-around, cur == len.
	len int
}

// New returns a ring with the given fixed capacity.
// It panics if capacity is not positive.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("ring.New called with non-positive capacity")
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push writes x to the slot under the write cursor and advances
// the cursor by one, wrapping to the start when it reaches the
// capacity. If the ring is full, the oldest value is evicted.
func (r *Ring[T]) Push(x T) {
	r.buf[r.cur] = x
	r.cur++
	if r.cur == len(r.buf) {
		r.cur = 0
	}
	if r.len < len(r.buf) {
		r.len++
	}
}

// Len returns the number of live values in the ring.
func (r *Ring[T]) Len() int {
	return r.len
}

// Cap returns the fixed capacity of the ring.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Full reports whether the ring holds Cap values, so that the
// next Push will evict the oldest one.
func (r *Ring[T]) Full() bool {
	return r.len == len(r.buf)
}

// At returns the i'th oldest value in the ring; the oldest is at
// index zero and the newest at r.Len() - 1.
// It panics if i is out of range.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.len {
		panic("ring.Ring.At called with index out of range")
	}
	if !r.Full() {
		// No wrap-around has happened yet, so the oldest
		// value is still at the start of the backing slice.
		return r.buf[i]
	}
	j := r.cur + i
	if j >= len(r.buf) {
		j -= len(r.buf)
	}
	return r.buf[j]
}

// Front returns the oldest value in the ring without removing it.
// It panics if the ring is empty.
func (r *Ring[T]) Front() T {
	if r.len == 0 {
		panic("ring.Ring.Front called on empty ring")
	}
	return r.At(0)
}

// Back returns the newest value in the ring without removing it.
// It panics if the ring is empty.
func (r *Ring[T]) Back() T {
	if r.len == 0 {
		panic("ring.Ring.Back called on empty ring")
	}
	return r.At(r.len - 1)
}

// All returns an iterator over the values in the ring, oldest first.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.len {
			if !yield(r.At(i)) {
				break
			}
		}
	}
}

// Reset discards all values and returns the cursor to the start.
// The backing slice is retained.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.cur = 0
	r.len = 0
}
