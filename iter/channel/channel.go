// Package channel implements an interator that reads a data stream from
// the supplied channel.
//
// A channel cannot be rewound, so sequences built on a channel iterator
// can be traversed only once.
package channel

import "context"

// Iterator traverses the elements of type T from a channel, until
// the channel is closed.
type Iterator[T any] struct {
	ch     <-chan T
	item   T
	loaded bool
	closed bool
	err    error
}

// New returns an implementation of Iterator that traverses the
// provided channel until the channel is closed or the context passed to
// Next expires.
//
// The channel iterator does not support the Size interface.
func New[T any](ch <-chan T) Iterator[T] {
	return Iterator[T]{
		ch: ch,
	}
}

// Next reads an item from the channel and stores the value, which can be
// retrieved using the Get() method.  Next returns true if an element was
// successfully read from the channel, or false if the channel was closed or
// if the context expired.
//
// If the context expired, Error() will return the result of the context's
// Err() function.
func (i *Iterator[T]) Next(ctx context.Context) bool {
	if i.closed || i.err != nil {
		return false
	}

	select {
	case item, ok := <-i.ch:
		if !ok {
			// the read failed due to empty closed channel
			i.closed = true
			return false
		}
		i.item = item
		i.loaded = true
		return true
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	}
}

// Get returns the value stored by the last successful Next method call,
// or the zero value of type T if Next has not been called.
func (i *Iterator[T]) Get() T {
	// return the zero value if called before Next()
	if !i.loaded {
		var ret T
		return ret
	}

	return i.item
}

// Error returns the context expiry reason if any from a previous call
// to Next, otherwise it returns nil.
func (i *Iterator[T]) Error() error {
	return i.err
}
