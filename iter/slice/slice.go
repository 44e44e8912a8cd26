// Package slice implements iterators that traverse uni-directionally
// over a generic slice of elements, either front to back (Iterator) or
// back to front (Reverse).
//
// Both iterators support the Size and Indexer interfaces, which lets the
// sequence operations answer length, last element and positional queries
// without walking the slice.  Size and At describe the elements that Next
// has yet to return, so a partly consumed iterator reports only its
// remainder.
package slice

import "context"

// Iterator traverses over a slice of element of type T.
type Iterator[T any] struct {
	s   []T
	pos int
	err error
}

// New returns an implementation of Iterator that traverses
// over the provided slice.  The slice is not copied and must not be
// modified while the iterator is in use.
func New[T any](s []T) Iterator[T] {
	return Iterator[T]{
		s: s,
	}
}

// Size returns the number of elements not yet returned by Next,
// implementing the Size interface.
func (r *Iterator[T]) Size() uint {
	return uint(len(r.s) - r.pos)
}

// At returns the i'th element still to be returned by Next, without moving
// the iterator.
func (r *Iterator[T]) At(i uint) (T, bool) {
	if i >= r.Size() {
		var zero T
		return zero, false
	}

	return r.s[uint(r.pos)+i], true
}

// Next advances the iterator to the next element of the underlying
// slice.  It returns false when the end of the slice has been reached or
// the context is cancelled.
func (r *Iterator[T]) Next(ctx context.Context) bool {
	if r.pos >= len(r.s) {
		return false
	}

	select {
	case <-ctx.Done():
		r.err = ctx.Err()
		return false
	default:
	}

	r.pos++
	return true
}

// Get returns element of the underlying slice that the iterator refers to,
// or the zero value of T if Next has not been called.
func (r *Iterator[T]) Get() T {
	if r.pos == 0 {
		var ret T
		return ret
	}

	return r.s[r.pos-1]
}

// Error returns the context's error if the context is cancelled
// during a call to Next()
func (r *Iterator[T]) Error() error {
	return r.err
}

// Reverse traverses a slice from the last element to the first without
// copying it.
type Reverse[T any] struct {
	s   []T
	pos int
	err error
}

// NewReverse returns an iterator that yields the elements of s back to
// front.
func NewReverse[T any](s []T) Reverse[T] {
	return Reverse[T]{
		s:   s,
		pos: len(s),
	}
}

// Size returns the number of elements not yet returned by Next.
func (r *Reverse[T]) Size() uint {
	return uint(r.pos)
}

// At returns the i'th element still to be returned by Next, ie. element
// pos-1-i of the underlying slice.
func (r *Reverse[T]) At(i uint) (T, bool) {
	if i >= r.Size() {
		var zero T
		return zero, false
	}

	return r.s[uint(r.pos)-1-i], true
}

// Next moves the iterator one element towards the start of the slice.
func (r *Reverse[T]) Next(ctx context.Context) bool {
	if r.pos <= 0 {
		return false
	}

	select {
	case <-ctx.Done():
		r.err = ctx.Err()
		return false
	default:
	}

	r.pos--
	return true
}

// Get returns the current element, or the zero value of T if Next has not
// been called.
func (r *Reverse[T]) Get() T {
	if r.pos >= len(r.s) {
		var ret T
		return ret
	}

	return r.s[r.pos]
}

// Error returns the context's error if the context was cancelled during
// a call to Next()
func (r *Reverse[T]) Error() error {
	return r.err
}
