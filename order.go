package lazy

import (
	"cmp"
	"context"
	"slices"

	"github.com/jake-scott/go-lazy/iter/slice"
)

// Sort is the non-OO version of Seq.SortFunc() for elements with a natural
// order; it sorts in ascending order.
func Sort[T cmp.Ordered](s *Seq[T], opts ...Option) *Seq[T] {
	return s.SortFunc(cmp.Compare[T], opts...)
}

// SortFunc returns a sequence of the elements of this sequence sorted by
// compare, which returns a negative number when a sorts before b, a positive
// number when a sorts after b and zero when their order does not matter.
// The sort is stable.
//
// Sorting needs every element: the first pull reads the whole upstream
// sequence into a private buffer and sorts that, so the source (even a
// slice) is never modified.  If the upstream fails, the elements read
// before the failure are sorted and produced, and the error is reported
// with them.
func (s *Seq[T]) SortFunc(compare func(a, b T) int, opts ...Option) *Seq[T] {
	fill := func(ctx context.Context, t Tracer, up Iterator[T]) ([]T, error) {
		ct := t.SubTracer("collect")
		buf, err := collect(ctx, up, s.opts.sizeHint)
		ct.Msg("collected %d elements", len(buf))
		ct.End()

		st := t.SubTracer("sort %d elements", len(buf))
		slices.SortStableFunc(buf, compare)
		st.End()

		return buf, err
	}

	return buffered(s, "Sort", fill, opts...)
}

// Reverse returns a sequence of the elements of this sequence in reverse
// order.  If the upstream iterator supports random access (a slice, or
// a Skip or Take of one) the elements are read back to front in place,
// otherwise the first pull reads the whole upstream sequence into a
// temporary buffer.
func (s *Seq[T]) Reverse(opts ...Option) *Seq[T] {
	return s.nextSeq(reverseOpener[T]{upstream[T]{s.src}, s.opts.sizeHint}, opts...)
}

type reverseOpener[T any] struct {
	upstream[T]
	hint uint
}

func (o reverseOpener[T]) Open() Iterator[T] {
	up := o.up.Open()

	if ix, ok := up.(Indexer[T]); ok {
		return newView(up, ix, 0, ix.Size(), true)
	}

	fill := func(ctx context.Context, up Iterator[T]) ([]T, error) {
		return collect(ctx, up, o.hint)
	}

	return &bufferIterator[T, T]{up: up, fill: fill, reverse: true}
}

// buffered returns the next sequence of s, whose iterators read all of their
// input through fill on the first pull.  fill traces under the id of the
// new sequence.
func buffered[T, U any](s *Seq[T], name string, fill func(context.Context, Tracer, Iterator[T]) ([]U, error), opts ...Option) *Seq[U] {
	next := nextSeq[T, U](s, nil, opts...)

	next.src = bufferOpener[T, U]{
		upstream: upstream[T]{s.src},
		fill: func(ctx context.Context, up Iterator[T]) ([]U, error) {
			t := next.tracer(name)
			defer t.End()

			items, err := fill(ctx, t, up)
			if err != nil {
				t.Msg("upstream error after %d elements: %s", len(items), err)
			}
			return items, err
		},
	}

	return next
}

// bufferOpener opens iterators that read all of their input on the first
// call to Next and then traverse the result of fill
type bufferOpener[T, U any] struct {
	upstream[T]
	fill    func(context.Context, Iterator[T]) ([]U, error)
	reverse bool
}

func (o bufferOpener[T, U]) Open() Iterator[U] {
	return &bufferIterator[T, U]{up: o.up.Open(), fill: o.fill, reverse: o.reverse}
}

// bufferIterator produces whatever fill returned, even alongside an error.
// The error is visible from the first element on, so that a consumer that
// stops early still sees it.
type bufferIterator[T, U any] struct {
	up      Iterator[T]
	fill    func(context.Context, Iterator[T]) ([]U, error)
	reverse bool
	buf     Iterator[U]
	done    bool
	err     error
}

func (i *bufferIterator[T, U]) Next(ctx context.Context) bool {
	if i.done {
		return false
	}

	if i.buf == nil {
		items, err := i.fill(ctx, i.up)
		stop(i.up)
		i.err = err

		if i.reverse {
			r := slice.NewReverse(items)
			i.buf = &r
		} else {
			f := slice.New(items)
			i.buf = &f
		}
	}

	if !i.buf.Next(ctx) {
		i.done = true
		if i.err == nil {
			i.err = i.buf.Error()
		}
		return false
	}
	return true
}

func (i *bufferIterator[T, U]) Get() U {
	if i.buf == nil {
		var zero U
		return zero
	}
	return i.buf.Get()
}

func (i *bufferIterator[T, U]) Error() error { return i.err }
func (i *bufferIterator[T, U]) Stop()        { stop(i.up) }
