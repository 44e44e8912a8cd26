// Package lazy provides a lazy, composable wrapper around sequences of
// items.
//
// A Seq is built from a source (a slice, an iterator, a channel, a scanner,
// an iter.Seq or a generator function) and offers chained operations in
// the spirit of the higher order functions of slices: Map, Filter, FlatMap,
// Take, Skip, Sort, Distinct, set operations and grouping.  None of the
// chained operations touch the source; the work is done element by element
// when a terminal operation such as ToSlice, Reduce, Sum or Head pulls from
// the end of the chain.
//
// # Re-iteration
//
// Sequences built from a slice, an iter.Seq or a generator function are
// restartable: every terminal operation opens a fresh iterator and sees the
// same elements.  Sequences built from an existing iterator, a channel or a
// scanner are single-shot: the first traversal consumes the source and any
// later traversal fails with ErrConsumed.  Restartable reports which kind a
// sequence is; chained sequences inherit the property of their sources.
//
// # Errors
//
// Terminal operations return the error reported by the underlying iterator
// (a cancelled context, ErrConsumed, a scanner error) unless the sequence's
// ErrorHandler decides to ignore it.
package lazy

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/jake-scott/go-lazy/iter/channel"
	"github.com/jake-scott/go-lazy/iter/scanner"
)

// DefaultSizeHint is used by operations that buffer a whole sequence
// (ToSlice, Sort, Reverse, GroupBy ..) for the initial allocation when the
// underlying iterator cannot provide size infomation and a sequence specific
// size hint has not been provided.
var DefaultSizeHint uint = 100

var seqCounter atomic.Uint32

// Seq is an immutable, lazily evaluated sequence of elements of type T.
// Operations that transform a sequence return a new Seq that reads from
// this one on demand.
type Seq[T any] struct {
	src  Opener[T]
	id   uint32
	opts seqOptions
}

type seqOptions struct {
	inheritOptions bool
	sizeHint       uint
	tracer         TraceFunc
	tracing        bool
	ctx            context.Context
	onError        ErrorHandler
}

func defaultOptions() seqOptions {
	return seqOptions{
		ctx:      context.Background(),
		sizeHint: DefaultSizeHint,
		onError:  abortErrorHandler,
	}
}

// Options provide a mechanism to customize how the operations of a
// sequence behave.
type Option func(o *seqOptions)

// The SizeHint option provides buffering operations with a guideline
// regarding the number of elements there are to process.  This is primarily
// used with iterators that cannot provide the information themselves.
//
// If not specified and the iterator cannot provide the information, the default
// value DefaultSizeHint is used.
func SizeHint(hint uint) Option {
	return func(o *seqOptions) {
		o.sizeHint = hint
	}
}

// WithContext attaches the provided context to the sequence.  The context
// is passed to the iterators when a terminal operation runs, so cancelling
// it ends the traversal with the context's error.
func WithContext(ctx context.Context) Option {
	return func(o *seqOptions) {
		o.ctx = ctx
	}
}

// WithTraceFunc sets the trace function for the sequence.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f TraceFunc) Option {
	return func(o *seqOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing for the sequence.  If a custom trace function
// has not been set using WithTraceFunc, trace messages are printed to stderr.
func WithTracing(enable bool) Option {
	return func(o *seqOptions) {
		o.tracing = enable
	}
}

// WithErrorHandler installs a custom error handler which will be called
// from the terminal operations when the underlying iterator emits an error.
//
// The handler should return true to ignore the error or false to have the
// operation return it.
//
// The handler can stash the error for use in the pipeline's caller.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(o *seqOptions) {
		o.onError = handler
	}
}

// InheritOptions causes this sequence's options to be inherited by the
// sequences derived from it.  The derived sequence can override these
// inherited options.  Further inheritence can be disabled by passing this
// option with a false value.
//
// The default is no inheritence.
func InheritOptions(inherit bool) Option {
	return func(o *seqOptions) {
		o.inheritOptions = inherit
	}
}

func (o *seqOptions) processOptions(opts ...Option) {
	for _, f := range opts {
		f(o)
	}
}

// New instantiates a sequence from an Opener and optional set of options.
func New[T any](o Opener[T], opts ...Option) *Seq[T] {
	s := &Seq[T]{
		src:  o,
		opts: defaultOptions(),
		id:   seqCounter.Add(1),
	}
	s.opts.processOptions(opts...)
	return s
}

// FromSlice instantiates a restartable sequence backed by the provided
// slice.  The slice is not copied and no operation modifies it, but the
// caller must not modify it while the sequence is in use.
func FromSlice[T any](s []T, opts ...Option) *Seq[T] {
	return New[T](sliceOpener[T]{s: s}, opts...)
}

// Of instantiates a restartable sequence of the supplied items.
func Of[T any](items ...T) *Seq[T] {
	return FromSlice(items)
}

// FromIterator instantiates a single-shot sequence that traverses it.
func FromIterator[T any](it Iterator[T], opts ...Option) *Seq[T] {
	return New[T](newOnceOpener(it), opts...)
}

// FromChannel instantiates a single-shot sequence that reads the provided
// channel until it is closed.
func FromChannel[T any](ch <-chan T, opts ...Option) *Seq[T] {
	i := channel.New(ch)
	return FromIterator[T](&i, opts...)
}

// FromScanner instantiates a single-shot sequence of the tokens returned by
// the provided scanner.
func FromScanner(s scanner.Scanner, opts ...Option) *Seq[string] {
	i := scanner.New(s)
	return FromIterator[string](&i, opts...)
}

// FromSeq instantiates a restartable sequence from a Go iterator function.
// Each traversal calls seq again, so seq must be able to run more than
// once.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Seq[T] {
	return New[T](pullOpener[T]{seq: seq}, opts...)
}

// FromFunc instantiates a restartable sequence from a generator function
// that returns a fresh iterator each time it is called.
func FromFunc[T any](open func() Iterator[T], opts ...Option) *Seq[T] {
	return New[T](funcOpener[T](open), opts...)
}

// Iterator returns a new iterator over the elements of the sequence.  For a
// single-shot sequence only the first call returns a usable iterator.
//
// Callers that stop before the iterator is exhausted should release it
// with Stop if it implements Stopper.
func (s *Seq[T]) Iterator() Iterator[T] {
	return s.src.Open()
}

// Restartable reports whether the sequence can be traversed more than once.
func (s *Seq[T]) Restartable() bool {
	return s.src.Restartable()
}

// All returns a Go iterator over the elements of the sequence, for use with
// range.  An error from the underlying iterator ends the loop and is passed
// to the error handler; use ForEach to receive it instead.
func (s *Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.src.Open()
		defer stop(it)

		for it.Next(s.opts.ctx) {
			if !yield(it.Get()) {
				break
			}
		}

		if err := it.Error(); err != nil {
			s.opts.onError(ErrorContextIterator, err)
		}
	}
}

func (s *Seq[T]) tracer(description string, v ...any) Tracer {
	if s.opts.tracing {
		var t T
		description = fmt.Sprintf("(%T) %s", t, description)
		return newTracer(s.id, description, s.opts.tracer, v...)
	} else {
		return NullTracer{}
	}
}

func (s *Seq[T]) nextSeq(o Opener[T], opts ...Option) *Seq[T] {
	return nextSeq(s, o, opts...)
}

func nextSeq[T, U any](s *Seq[T], o Opener[U], opts ...Option) *Seq[U] {
	next := &Seq[U]{
		src: o,
		id:  seqCounter.Add(1),
	}

	// if this sequence has inheritence enabled them copy its options to the
	// next sequence
	if s.opts.inheritOptions {
		next.opts = s.opts
	} else {
		next.opts = defaultOptions()
	}

	next.opts.processOptions(opts...)

	return next
}

// sizeHint returns the number of elements it will produce if known, or the
// sequence's size hint
func (s *Seq[T]) sizeHint(it Iterator[T]) uint {
	if sh, ok := it.(Size[T]); ok {
		return sh.Size()
	}
	return s.opts.sizeHint
}

// drain opens a new iterator and passes each element to visit until visit
// returns false or the elements run out.  Iterator errors are filtered
// through the error handler in both cases, as buffering iterators report
// their error before the last element.
func (s *Seq[T]) drain(t Tracer, visit func(T) bool) error {
	it := s.src.Open()
	defer stop(it)

	n := 0
	for it.Next(s.opts.ctx) {
		n++
		if !visit(it.Get()) {
			t.Msg("stopped after %d elements", n)
			return s.check(t, it)
		}
	}

	t.Msg("drained %d elements", n)
	return s.check(t, it)
}

func (s *Seq[T]) check(t Tracer, it Iterator[T]) error {
	return s.checkFrom(t, it, ErrorContextIterator)
}

// checkFrom passes the error of it, if any, to the error handler with the
// given context and returns it unless the handler ignores it
func (s *Seq[T]) checkFrom(t Tracer, it Iterator[T], where ErrorContext) error {
	err := it.Error()
	if err == nil {
		return nil
	}

	if s.opts.onError(where, err) {
		t.Msg("ignoring iterator error: %s", err)
		return nil
	}

	t.Msg("iterator error: %s", err)
	return err
}

// collect reads the remaining elements of it into a new slice
func collect[T any](ctx context.Context, it Iterator[T], hint uint) ([]T, error) {
	if sh, ok := it.(Size[T]); ok {
		hint = sh.Size()
	}

	out := make([]T, 0, hint)
	for it.Next(ctx) {
		out = append(out, it.Get())
	}

	return out, it.Error()
}
