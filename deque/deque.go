// Package deque provides a generic double-ended queue backed by a
// doubly-linked chain of nodes.
package deque

import "errors"

// ErrEmpty indicates a pop or peek on an empty deque.
var ErrEmpty = errors.New("deque is empty")

// node is one link in the chain backing a Deque.
type node[T any] struct {
	value T
	next  *node[T] // toward the back
	prev  *node[T] // toward the front
}

// Deque is a double-ended queue over values of any type. Every operation
// is O(1) except Items, which copies the contents. Call New or From to
// create one.
type Deque[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// From builds a deque from items in order: items[0] becomes the front and
// the last element the back.
func From[T any](items []T) *Deque[T] {
	d := New[T]()
	for _, item := range items {
		d.PushBack(item)
	}
	return d
}

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	n := &node[T]{value: v, next: d.front}
	if d.front != nil {
		d.front.prev = n
	} else {
		d.back = n
	}
	d.front = n
	d.size++
}

// PushBack inserts v at the back.
func (d *Deque[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: d.back}
	if d.back != nil {
		d.back.next = n
	} else {
		d.front = n
	}
	d.back = n
	d.size++
}

// PopFront removes and returns the front value. It returns ErrEmpty when
// the deque is empty.
func (d *Deque[T]) PopFront() (T, error) {
	if d.front == nil {
		var zero T
		return zero, ErrEmpty
	}

	n := d.front
	d.front = n.next
	if d.front != nil {
		d.front.prev = nil
	} else {
		d.back = nil
	}
	d.size--

	return n.value, nil
}

// PopBack removes and returns the back value. It returns ErrEmpty when
// the deque is empty.
func (d *Deque[T]) PopBack() (T, error) {
	if d.back == nil {
		var zero T
		return zero, ErrEmpty
	}

	n := d.back
	d.back = n.prev
	if d.back != nil {
		d.back.next = nil
	} else {
		d.front = nil
	}
	d.size--

	return n.value, nil
}

// PeekFront returns the front value without removing it. It returns
// ErrEmpty when the deque is empty.
func (d *Deque[T]) PeekFront() (T, error) {
	if d.front == nil {
		var zero T
		return zero, ErrEmpty
	}
	return d.front.value, nil
}

// PeekBack returns the back value without removing it. It returns
// ErrEmpty when the deque is empty.
func (d *Deque[T]) PeekBack() (T, error) {
	if d.back == nil {
		var zero T
		return zero, ErrEmpty
	}
	return d.back.value, nil
}

// Len returns the number of values held.
func (d *Deque[T]) Len() int {
	return d.size
}

// Empty reports whether the deque holds no values.
func (d *Deque[T]) Empty() bool {
	return d.front == nil
}

// Items returns the contents front to back as a fresh slice.
func (d *Deque[T]) Items() []T {
	items := make([]T, 0, d.size)
	for n := d.front; n != nil; n = n.next {
		items = append(items, n.value)
	}
	return items
}
