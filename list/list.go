// Package list implements a doubly-linked list specialized for
// rolling-window use: values are appended at the back and removed
// from the front. Every insertion allocates one node and every
// removal releases one, so a window of size n kept live through
// this type costs one allocation per slide.
package list

import "iter"

// node is an element of a List. The list is circular through a
// sentinel root node, so next and prev are never nil for a node
// that is in a list.
type node[T any] struct {
	next, prev *node[T]
	value      T
}

// List holds a doubly-linked list of values.
//
// The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
type List[T any] struct {
	root node[T] // sentinel; root.next is the front, root.prev the back
	len  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.lazyInit()
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.len
}

// PushBack appends x at the back of the list,
// allocating one node.
func (l *List[T]) PushBack(x T) {
	l.lazyInit()
	n := &node[T]{value: x}
	at := l.root.prev
	n.prev = at
	n.next = &l.root
	at.next = n
	l.root.prev = n
	l.len++
}

// PopFront removes the front value and returns it, releasing the
// node that held it. It panics if the list is empty.
func (l *List[T]) PopFront() T {
	if l.len == 0 {
		panic("list.List.PopFront called on empty list")
	}
	n := l.root.next
	l.root.next = n.next
	n.next.prev = &l.root
	x := n.value
	// Unlink so the node is collectable even if the caller
	// holds a stale reference.
	n.next = nil
	n.prev = nil
	n.value = *new(T)
	l.len--
	return x
}

// Front returns the front value without removing it.
// It panics if the list is empty.
func (l *List[T]) Front() T {
	if l.len == 0 {
		panic("list.List.Front called on empty list")
	}
	return l.root.next.value
}

// Back returns the back value without removing it.
// It panics if the list is empty.
func (l *List[T]) Back() T {
	if l.len == 0 {
		panic("list.List.Back called on empty list")
	}
	return l.root.prev.value
}

// All returns an iterator over the values in the list,
// front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.root.next == nil {
			return
		}
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.value) {
				break
			}
		}
	}
}
