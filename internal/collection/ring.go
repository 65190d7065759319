// MIT License
//
// Copyright (c) 2026 Troupe Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package collection

// Ring is an unbounded FIFO queue backed by a growable slice.
// It is not safe for concurrent use; callers must hold their own lock.
type Ring[T any] struct {
	items []T
	head  int
}

// NewRing creates a new Ring with the given initial capacity.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{
		items: make([]T, 0, capacity),
	}
}

// Push appends the given value at the tail of the queue.
func (r *Ring[T]) Push(value T) {
	r.items = append(r.items, value)
}

// Pop removes and returns the value at the head of the queue.
// The second return value is false when the queue is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.head >= len(r.items) {
		return zero, false
	}

	value := r.items[r.head]
	r.items[r.head] = zero
	r.head++

	// reclaim the consumed prefix once it dominates the backing slice
	if r.head > 0 && r.head<<1 >= len(r.items) {
		n := copy(r.items, r.items[r.head:])
		clear(r.items[n:])
		r.items = r.items[:n]
		r.head = 0
	}
	return value, true
}

// Len returns the number of values in the queue.
func (r *Ring[T]) Len() int {
	return len(r.items) - r.head
}
