package lazy

import (
	"context"
)

// Iterator is a generic interface for one-directional traversal through
// a collection or stream of items.
type Iterator[T any] interface {
	// Next traverses the iterator to the next element
	// Returns true if the iterator advanced, or false if there are no more
	// elements or if an error occured (see Error() below)
	Next(ctx context.Context) bool

	// Get returns current value referred to by the iterator
	Get() T

	// Error returns a non-nil value if an error occured processing Next()
	Error() error
}

// Size is an interface that can be implemented by an iterator that
// knows how many elements it has left to return
type Size[T any] interface {
	Size() uint
}

// Indexer is implemented by iterators backed by a random access collection.
// Size reports the number of elements Next has yet to return, and At
// returns the i'th of those without moving the iterator, or false if i is
// out of range.  Both are relative to the current position, so a partly
// consumed iterator exposes only its remainder.
type Indexer[T any] interface {
	Size[T]
	At(i uint) (T, bool)
}

// Stopper is implemented by iterators that hold resources which should be
// released when the consumer stops pulling before the end of the sequence.
// Stop must be safe to call more than once.
type Stopper interface {
	Stop()
}

// stop releases it if it supports the Stopper interface
func stop[T any](it Iterator[T]) {
	if s, ok := it.(Stopper); ok {
		s.Stop()
	}
}
