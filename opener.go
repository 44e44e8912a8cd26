package lazy

import (
	"context"
	"iter"
	"sync/atomic"

	"github.com/jake-scott/go-lazy/iter/slice"
)

// Opener is the source of a sequence.  Each call to Open returns an
// iterator positioned before the first element.
//
// A restartable opener returns a fresh, independent iterator on every call
// so the sequence can be traversed any number of times.  An opener that is
// not restartable hands out its single underlying iterator once; later
// calls return an iterator that fails with ErrConsumed.
type Opener[T any] interface {
	Open() Iterator[T]
	Restartable() bool
}

// sliceOpener exposes a materialized slice.  The slice iterators it returns
// implement Indexer, which the positional operations take advantage of.
type sliceOpener[T any] struct {
	s []T
}

func (o sliceOpener[T]) Open() Iterator[T] {
	i := slice.New(o.s)
	return &i
}

func (o sliceOpener[T]) Restartable() bool { return true }

// funcOpener calls a generator function for each traversal
type funcOpener[T any] func() Iterator[T]

func (f funcOpener[T]) Open() Iterator[T] {
	return f()
}

func (f funcOpener[T]) Restartable() bool { return true }

// onceOpener hands out an externally supplied iterator exactly once
type onceOpener[T any] struct {
	it   Iterator[T]
	used *atomic.Bool
}

func newOnceOpener[T any](it Iterator[T]) onceOpener[T] {
	return onceOpener[T]{
		it:   it,
		used: &atomic.Bool{},
	}
}

func (o onceOpener[T]) Open() Iterator[T] {
	if o.used.Swap(true) {
		return errIterator[T]{err: ErrConsumed}
	}

	return o.it
}

func (o onceOpener[T]) Restartable() bool { return false }

// pullOpener turns a push style iter.Seq into pull iterators
type pullOpener[T any] struct {
	seq iter.Seq[T]
}

func (o pullOpener[T]) Open() Iterator[T] {
	return &pullIterator[T]{seq: o.seq}
}

func (o pullOpener[T]) Restartable() bool { return true }

// pullIterator starts iter.Pull on the first call to Next and stops it
// at the end of the sequence, on cancellation or when Stop is called.
type pullIterator[T any] struct {
	seq     iter.Seq[T]
	next    func() (T, bool)
	release func()
	item    T
	done    bool
	err     error
}

func (i *pullIterator[T]) Next(ctx context.Context) bool {
	if i.done {
		return false
	}

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		i.Stop()
		return false
	default:
	}

	if i.next == nil {
		i.next, i.release = iter.Pull(i.seq)
	}

	v, ok := i.next()
	if !ok {
		i.Stop()
		return false
	}

	i.item = v
	return true
}

func (i *pullIterator[T]) Get() T {
	return i.item
}

func (i *pullIterator[T]) Error() error {
	return i.err
}

func (i *pullIterator[T]) Stop() {
	i.done = true
	if i.release != nil {
		i.release()
		i.release = nil
	}
}

// errIterator is empty and reports err
type errIterator[T any] struct {
	err error
}

func (i errIterator[T]) Next(context.Context) bool { return false }

func (i errIterator[T]) Get() T {
	var zero T
	return zero
}

func (i errIterator[T]) Error() error { return i.err }

// upstream is embedded by the openers of single input combinators
type upstream[T any] struct {
	up Opener[T]
}

func (u upstream[T]) Restartable() bool {
	return u.up.Restartable()
}
