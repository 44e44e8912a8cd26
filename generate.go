package lazy

import (
	"context"

	"golang.org/x/exp/constraints"
)

// Number is the set of types the numeric generators and aggregates work
// with.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range returns a restartable sequence of numbers starting at from and
// increasing by step while less than to.  A step that is not positive
// yields an empty sequence.
func Range[N Number](from, to, step N, opts ...Option) *Seq[N] {
	return FromFunc(func() Iterator[N] {
		return &rangeIterator[N]{next: from, to: to, step: step}
	}, opts...)
}

// RangeInclusive is like Range, but includes to if it is reached.
func RangeInclusive[N Number](from, to, step N, opts ...Option) *Seq[N] {
	return FromFunc(func() Iterator[N] {
		return &rangeIterator[N]{next: from, to: to, step: step, inclusive: true}
	}, opts...)
}

type rangeIterator[N Number] struct {
	next, to, step N
	inclusive      bool
	cur            N
	done           bool
	err            error
}

func (i *rangeIterator[N]) Next(ctx context.Context) bool {
	if i.done || i.step <= 0 {
		return false
	}

	if i.next > i.to || (i.next == i.to && !i.inclusive) {
		i.done = true
		return false
	}

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		i.done = true
		return false
	default:
	}

	i.cur = i.next
	i.next += i.step

	// stop rather than wrap around at the limit of integer types
	if i.next <= i.cur {
		i.done = true
	}
	return true
}

func (i *rangeIterator[N]) Get() N       { return i.cur }
func (i *rangeIterator[N]) Error() error { return i.err }

// Repeat returns a restartable sequence that yields item times times.
func Repeat[T any](item T, times int, opts ...Option) *Seq[T] {
	return FromFunc(func() Iterator[T] {
		return &repeatIterator[T]{item: item, left: times}
	}, opts...)
}

type repeatIterator[T any] struct {
	item T
	left int
	err  error
}

func (i *repeatIterator[T]) Next(ctx context.Context) bool {
	if i.left <= 0 {
		return false
	}

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		i.left = 0
		return false
	default:
	}

	i.left--
	return true
}

func (i *repeatIterator[T]) Get() T       { return i.item }
func (i *repeatIterator[T]) Error() error { return i.err }
