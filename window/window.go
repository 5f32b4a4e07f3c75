// Package window implements a rolling window backed by a plain
// growable slice: sliding the window reslices off the front
// element and appends the new one at the back.
//
// The logical length never changes across a Slide, but the front
// of the backing array creeps forward until its spare capacity is
// exhausted, at which point append reallocates and copies the
// whole window. That periodic O(n) copy is what the fixed-capacity
// ring package avoids.
package window

import "iter"

// Window holds a slice-backed rolling window of values.
//
// A Window is not safe for concurrent use.
type Window[T any] struct {
	buf []T
}

// New returns a window holding a copy of xs.
func New[T any](xs []T) *Window[T] {
	return &Window[T]{buf: append([]T(nil), xs...)}
}

// Slide drops the oldest value and appends x at the back, keeping
// the logical length unchanged. It panics if the window is empty.
func (w *Window[T]) Slide(x T) {
	if len(w.buf) == 0 {
		panic("window.Window.Slide called on empty window")
	}
	w.buf = append(w.buf[1:], x)
}

// Len returns the number of values in the window.
func (w *Window[T]) Len() int {
	return len(w.buf)
}

// Cap returns the capacity of the backing slice. It shrinks as
// the window slides and jumps when append reallocates.
func (w *Window[T]) Cap() int {
	return cap(w.buf)
}

// At returns the i'th oldest value; the oldest is at index zero.
// It panics if i is out of range.
func (w *Window[T]) At(i int) T {
	if i < 0 || i >= len(w.buf) {
		panic("window.Window.At called with index out of range")
	}
	return w.buf[i]
}

// Front returns the oldest value. It panics if the window is empty.
func (w *Window[T]) Front() T {
	if len(w.buf) == 0 {
		panic("window.Window.Front called on empty window")
	}
	return w.buf[0]
}

// Back returns the newest value. It panics if the window is empty.
func (w *Window[T]) Back() T {
	if len(w.buf) == 0 {
		panic("window.Window.Back called on empty window")
	}
	return w.buf[len(w.buf)-1]
}

// All returns an iterator over the values, oldest first.
func (w *Window[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range w.buf {
			if !yield(x) {
				break
			}
		}
	}
}
