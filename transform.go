package lazy

import (
	"context"
)

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func domainName(s string) string {
//	    return strings.SplitN(s, "@", 2)[1]
//	}
type MapFunc[T any, M any] func(T) M

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result set.
//
// Example:
//
//	func findEvenInts(i int) bool {
//	    return i%2 == 0
//	}
type FilterFunc[T any] func(T) bool

// Map returns a sequence of the elements of this sequence transformed by m,
// in the same order.  m is called as elements are pulled.
//
// If the map function returns values of a different type to the input values,
// the non-OO version of Map() must be used instead.
func (s *Seq[T]) Map(m MapFunc[T, T], opts ...Option) *Seq[T] {
	return Map(s, m, opts...)
}

// Map is the non-OO version of Seq.Map().  It must be used in the case
// where the map function returns items of a different type than the input
// elements, due to limitations of Golang's generic syntax.
func Map[T, M any](s *Seq[T], m MapFunc[T, M], opts ...Option) *Seq[M] {
	return nextSeq[T, M](s, mapOpener[T, M]{upstream[T]{s.src}, m}, opts...)
}

type mapOpener[T, M any] struct {
	upstream[T]
	m MapFunc[T, M]
}

func (o mapOpener[T, M]) Open() Iterator[M] {
	return &mapIterator[T, M]{up: o.up.Open(), m: o.m}
}

type mapIterator[T, M any] struct {
	up   Iterator[T]
	m    MapFunc[T, M]
	item M
}

func (i *mapIterator[T, M]) Next(ctx context.Context) bool {
	if !i.up.Next(ctx) {
		return false
	}

	i.item = i.m(i.up.Get())
	return true
}

func (i *mapIterator[T, M]) Get() M       { return i.item }
func (i *mapIterator[T, M]) Error() error { return i.up.Error() }
func (i *mapIterator[T, M]) Stop()        { stop(i.up) }

// Filter is the non-OO version of Seq.Filter().
func Filter[T any](s *Seq[T], f FilterFunc[T], opts ...Option) *Seq[T] {
	return s.Filter(f, opts...)
}

// Filter returns a sequence of the elements of this sequence for which f
// returns true, in the same order.
func (s *Seq[T]) Filter(f FilterFunc[T], opts ...Option) *Seq[T] {
	return s.nextSeq(filterOpener[T]{upstream[T]{s.src}, f}, opts...)
}

type filterOpener[T any] struct {
	upstream[T]
	f FilterFunc[T]
}

func (o filterOpener[T]) Open() Iterator[T] {
	return &filterIterator[T]{up: o.up.Open(), f: o.f}
}

type filterIterator[T any] struct {
	up Iterator[T]
	f  FilterFunc[T]
}

func (i *filterIterator[T]) Next(ctx context.Context) bool {
	for i.up.Next(ctx) {
		if i.f(i.up.Get()) {
			return true
		}
	}

	return false
}

func (i *filterIterator[T]) Get() T       { return i.up.Get() }
func (i *filterIterator[T]) Error() error { return i.up.Error() }
func (i *filterIterator[T]) Stop()        { stop(i.up) }

// MapIndexed is like Map, but m also receives the 0-based position of the
// element.  Positions start again from zero on every traversal.
func (s *Seq[T]) MapIndexed(m func(item T, index int) T, opts ...Option) *Seq[T] {
	return MapIndexed(s, m, opts...)
}

// MapIndexed is the non-OO version of Seq.MapIndexed().
func MapIndexed[T, M any](s *Seq[T], m func(item T, index int) M, opts ...Option) *Seq[M] {
	return nextSeq[T, M](s, mapIndexedOpener[T, M]{upstream[T]{s.src}, m}, opts...)
}

type mapIndexedOpener[T, M any] struct {
	upstream[T]
	m func(T, int) M
}

func (o mapIndexedOpener[T, M]) Open() Iterator[M] {
	n := 0
	return &mapIterator[T, M]{
		up: o.up.Open(),
		m: func(v T) M {
			r := o.m(v, n)
			n++
			return r
		},
	}
}

// FilterIndexed is like Filter, but f also receives the 0-based position of
// the element in this sequence.  Positions start again from zero on every
// traversal.
func (s *Seq[T]) FilterIndexed(f func(item T, index int) bool, opts ...Option) *Seq[T] {
	return s.nextSeq(filterIndexedOpener[T]{upstream[T]{s.src}, f}, opts...)
}

// FilterIndexed is the non-OO version of Seq.FilterIndexed().
func FilterIndexed[T any](s *Seq[T], f func(item T, index int) bool, opts ...Option) *Seq[T] {
	return s.FilterIndexed(f, opts...)
}

type filterIndexedOpener[T any] struct {
	upstream[T]
	f func(T, int) bool
}

func (o filterIndexedOpener[T]) Open() Iterator[T] {
	n := 0
	return &filterIterator[T]{
		up: o.up.Open(),
		f: func(v T) bool {
			keep := o.f(v, n)
			n++
			return keep
		},
	}
}

// FlatMap returns a sequence of the elements of the slices returned by f
// for each element of this sequence, slice after slice.
func (s *Seq[T]) FlatMap(f func(T) []T, opts ...Option) *Seq[T] {
	return FlatMap(s, f, opts...)
}

// FlatMap is the non-OO version of Seq.FlatMap(), for nested elements of
// a different type.
func FlatMap[T, U any](s *Seq[T], f func(T) []U, opts ...Option) *Seq[U] {
	return nextSeq[T, U](s, flatMapOpener[T, U]{upstream[T]{s.src}, f}, opts...)
}

type flatMapOpener[T, U any] struct {
	upstream[T]
	f func(T) []U
}

func (o flatMapOpener[T, U]) Open() Iterator[U] {
	return &flatMapIterator[T, U]{up: o.up.Open(), f: o.f}
}

type flatMapIterator[T, U any] struct {
	up     Iterator[T]
	f      func(T) []U
	nested []U
	pos    int
}

func (i *flatMapIterator[T, U]) Next(ctx context.Context) bool {
	for i.pos >= len(i.nested) {
		if !i.up.Next(ctx) {
			return false
		}

		i.nested = i.f(i.up.Get())
		i.pos = 0
	}

	i.pos++
	return true
}

func (i *flatMapIterator[T, U]) Get() U {
	if i.pos == 0 {
		var zero U
		return zero
	}
	return i.nested[i.pos-1]
}

func (i *flatMapIterator[T, U]) Error() error { return i.up.Error() }
func (i *flatMapIterator[T, U]) Stop()        { stop(i.up) }

// Concat returns a sequence of the elements of this sequence followed by
// the elements of other.  The result is restartable only if both inputs
// are.
func (s *Seq[T]) Concat(other *Seq[T], opts ...Option) *Seq[T] {
	return s.nextSeq(concatOpener[T]{first: s.src, second: other.src}, opts...)
}

type concatOpener[T any] struct {
	first, second Opener[T]
}

func (o concatOpener[T]) Open() Iterator[T] {
	return &concatIterator[T]{cur: o.first.Open(), second: o.second}
}

func (o concatOpener[T]) Restartable() bool {
	return o.first.Restartable() && o.second.Restartable()
}

type concatIterator[T any] struct {
	cur    Iterator[T]
	second Opener[T]
}

func (i *concatIterator[T]) Next(ctx context.Context) bool {
	for {
		if i.cur.Next(ctx) {
			return true
		}

		// the second input is only opened once the first is exhausted
		// without error
		if i.second == nil || i.cur.Error() != nil {
			return false
		}

		stop(i.cur)
		i.cur = i.second.Open()
		i.second = nil
	}
}

func (i *concatIterator[T]) Get() T       { return i.cur.Get() }
func (i *concatIterator[T]) Error() error { return i.cur.Error() }
func (i *concatIterator[T]) Stop()        { stop(i.cur) }

// Take returns a sequence of at most the first n elements of this sequence.
// Once n elements have been produced the upstream iterator is not pulled
// again and is released, so Take can be used to bound infinite or expensive
// sources.
func (s *Seq[T]) Take(n int, opts ...Option) *Seq[T] {
	return s.nextSeq(takeOpener[T]{upstream[T]{s.src}, n}, opts...)
}

type takeOpener[T any] struct {
	upstream[T]
	n int
}

func (o takeOpener[T]) Open() Iterator[T] {
	up := o.up.Open()
	if o.n <= 0 {
		stop(up)
		return errIterator[T]{}
	}

	if ix, ok := up.(Indexer[T]); ok {
		return newView(up, ix, 0, min(uint(o.n), ix.Size()), false)
	}

	return &takeIterator[T]{up: up, n: o.n}
}

type takeIterator[T any] struct {
	up    Iterator[T]
	n     int
	taken int
}

func (i *takeIterator[T]) Next(ctx context.Context) bool {
	if i.taken >= i.n {
		return false
	}

	if !i.up.Next(ctx) {
		return false
	}

	i.taken++
	if i.taken == i.n {
		// the limit is reached: nothing more will be read from upstream,
		// but the current element must stay readable
		if s, ok := i.up.(Stopper); ok {
			defer s.Stop()
		}
	}
	return true
}

func (i *takeIterator[T]) Get() T       { return i.up.Get() }
func (i *takeIterator[T]) Error() error { return i.up.Error() }
func (i *takeIterator[T]) Stop()        { stop(i.up) }

// Skip returns a sequence of the elements of this sequence after the first
// n.  A negative n is treated as zero.  When the upstream iterator supports
// random access, the skipped elements are not visited.
func (s *Seq[T]) Skip(n int, opts ...Option) *Seq[T] {
	return s.nextSeq(skipOpener[T]{upstream[T]{s.src}, max(n, 0)}, opts...)
}

type skipOpener[T any] struct {
	upstream[T]
	n int
}

func (o skipOpener[T]) Open() Iterator[T] {
	up := o.up.Open()

	if ix, ok := up.(Indexer[T]); ok {
		size := ix.Size()
		start := min(uint(o.n), size)
		return newView(up, ix, start, size-start, false)
	}

	return &skipIterator[T]{up: up, n: o.n}
}

type skipIterator[T any] struct {
	up Iterator[T]
	n  int
}

func (i *skipIterator[T]) Next(ctx context.Context) bool {
	for ; i.n > 0; i.n-- {
		if !i.up.Next(ctx) {
			return false
		}
	}

	return i.up.Next(ctx)
}

func (i *skipIterator[T]) Get() T       { return i.up.Get() }
func (i *skipIterator[T]) Error() error { return i.up.Error() }
func (i *skipIterator[T]) Stop()        { stop(i.up) }

// TakeWhile returns a sequence of the leading elements of this sequence for
// which f returns true.  The sequence ends at the first element for which f
// returns false, even if later elements would pass.
func (s *Seq[T]) TakeWhile(f FilterFunc[T], opts ...Option) *Seq[T] {
	return s.nextSeq(takeWhileOpener[T]{upstream[T]{s.src}, f}, opts...)
}

type takeWhileOpener[T any] struct {
	upstream[T]
	f FilterFunc[T]
}

func (o takeWhileOpener[T]) Open() Iterator[T] {
	return &takeWhileIterator[T]{up: o.up.Open(), f: o.f}
}

type takeWhileIterator[T any] struct {
	up   Iterator[T]
	f    FilterFunc[T]
	done bool
}

func (i *takeWhileIterator[T]) Next(ctx context.Context) bool {
	if i.done {
		return false
	}

	if i.up.Next(ctx) && i.f(i.up.Get()) {
		return true
	}

	i.done = true
	stop(i.up)
	return false
}

func (i *takeWhileIterator[T]) Get() T       { return i.up.Get() }
func (i *takeWhileIterator[T]) Error() error { return i.up.Error() }
func (i *takeWhileIterator[T]) Stop()        { stop(i.up) }

// view is a window over a random access iterator, optionally reversed.  It
// is itself an Indexer so that chains of Skip, Take and Reverse over a
// slice never copy or walk it.
type view[T any] struct {
	up      Iterator[T]
	ix      Indexer[T]
	start   uint
	size    uint
	reverse bool
	pos     uint
	item    T
	err     error
}

func newView[T any](up Iterator[T], ix Indexer[T], start, size uint, reverse bool) *view[T] {
	return &view[T]{
		up:      up,
		ix:      ix,
		start:   start,
		size:    size,
		reverse: reverse,
	}
}

// Size and At cover the part of the window that Next has not yet returned
func (v *view[T]) Size() uint {
	return v.size - v.pos
}

func (v *view[T]) At(i uint) (T, bool) {
	if i >= v.Size() {
		var zero T
		return zero, false
	}
	return v.at(v.pos + i)
}

// at indexes the whole window
func (v *view[T]) at(i uint) (T, bool) {
	if v.reverse {
		return v.ix.At(v.start + v.size - 1 - i)
	}
	return v.ix.At(v.start + i)
}

func (v *view[T]) Next(ctx context.Context) bool {
	if v.pos >= v.size || v.err != nil {
		return false
	}

	select {
	case <-ctx.Done():
		v.err = ctx.Err()
		return false
	default:
	}

	item, ok := v.at(v.pos)
	if !ok {
		return false
	}

	v.item = item
	v.pos++
	return true
}

func (v *view[T]) Get() T       { return v.item }
func (v *view[T]) Error() error { return v.err }
func (v *view[T]) Stop()        { stop(v.up) }
