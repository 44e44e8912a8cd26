package lazy

import (
	"context"
)

// Distinct returns a sequence of the elements of s with duplicates removed.
// The first occurrence of each value is kept, in the order of s.
func Distinct[T comparable](s *Seq[T], opts ...Option) *Seq[T] {
	return DistinctBy(s, func(v T) T { return v }, opts...)
}

// DistinctBy returns a sequence of the elements of s for which key returns
// a value not returned for an earlier element.
func DistinctBy[T any, K comparable](s *Seq[T], key func(T) K, opts ...Option) *Seq[T] {
	return s.nextSeq(distinctOpener[T, K]{upstream[T]{s.src}, key}, opts...)
}

type distinctOpener[T any, K comparable] struct {
	upstream[T]
	key func(T) K
}

func (o distinctOpener[T, K]) Open() Iterator[T] {
	seen := make(map[K]struct{})

	return &filterIterator[T]{
		up: o.up.Open(),
		f: func(v T) bool {
			k := o.key(v)
			if _, ok := seen[k]; ok {
				return false
			}
			seen[k] = struct{}{}
			return true
		},
	}
}

// Intersect returns a sequence of the elements of s that are equal to at
// least one element of other, in the order of s and including duplicates.
// other is read in full on the first pull of each traversal; an error
// reading it is reported from then on, with the elements of other read
// before the failure still taking part.
func Intersect[T comparable](s, other *Seq[T], opts ...Option) *Seq[T] {
	return s.nextSeq(memberOpener[T]{upstream[T]{s.src}, other.src, s.opts.sizeHint, setIndex[T], true}, opts...)
}

// Except returns a sequence of the elements of s that are not equal to any
// element of other, in the order of s.
func Except[T comparable](s, other *Seq[T], opts ...Option) *Seq[T] {
	return s.nextSeq(memberOpener[T]{upstream[T]{s.src}, other.src, s.opts.sizeHint, setIndex[T], false}, opts...)
}

// IntersectFunc is like Intersect, using eq to compare elements.
func (s *Seq[T]) IntersectFunc(other *Seq[T], eq func(a, b T) bool, opts ...Option) *Seq[T] {
	return s.nextSeq(memberOpener[T]{upstream[T]{s.src}, other.src, s.opts.sizeHint, scanIndex(eq), true}, opts...)
}

// ExceptFunc is like Except, using eq to compare elements.
func (s *Seq[T]) ExceptFunc(other *Seq[T], eq func(a, b T) bool, opts ...Option) *Seq[T] {
	return s.nextSeq(memberOpener[T]{upstream[T]{s.src}, other.src, s.opts.sizeHint, scanIndex(eq), false}, opts...)
}

// setIndex builds a hash set of items
func setIndex[T comparable](items []T) func(T) bool {
	set := make(map[T]struct{}, len(items))
	for _, x := range items {
		set[x] = struct{}{}
	}

	return func(v T) bool {
		_, ok := set[v]
		return ok
	}
}

// scanIndex compares against every item with eq
func scanIndex[T any](eq func(a, b T) bool) func([]T) func(T) bool {
	return func(items []T) func(T) bool {
		return func(v T) bool {
			for _, x := range items {
				if eq(x, v) {
					return true
				}
			}
			return false
		}
	}
}

// memberOpener filters its upstream by membership in another sequence,
// which is read in full and indexed when the first element is pulled.
type memberOpener[T any] struct {
	upstream[T]
	other Opener[T]
	hint  uint
	index func([]T) func(T) bool
	keep  bool
}

func (o memberOpener[T]) Restartable() bool {
	return o.up.Restartable() && o.other.Restartable()
}

func (o memberOpener[T]) Open() Iterator[T] {
	return &memberIterator[T]{up: o.up.Open(), o: o}
}

type memberIterator[T any] struct {
	up       Iterator[T]
	o        memberOpener[T]
	contains func(T) bool
	err      error
}

// load reads and indexes other.  If other fails, the elements read before
// the failure are still indexed.
func (i *memberIterator[T]) load(ctx context.Context) error {
	other := i.o.other.Open()
	defer stop(other)

	items, err := collect(ctx, other, i.o.hint)
	i.contains = i.o.index(items)
	return err
}

func (i *memberIterator[T]) Next(ctx context.Context) bool {
	if i.contains == nil {
		i.err = i.load(ctx)
	}

	for i.up.Next(ctx) {
		if i.contains(i.up.Get()) == i.o.keep {
			return true
		}
	}

	return false
}

func (i *memberIterator[T]) Get() T { return i.up.Get() }

func (i *memberIterator[T]) Error() error {
	if i.err != nil {
		return i.err
	}
	return i.up.Error()
}

func (i *memberIterator[T]) Stop() { stop(i.up) }
