package lazy

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned by the strict accessors (Head, Last) when
	// the sequence has no elements.  Each has a Try variant that reports
	// absence with a boolean instead.
	ErrEmptySequence = errors.New("the sequence is empty")

	// ErrIndexOutOfRange is wrapped by the *IndexError returned from At.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrConsumed is reported by a single-shot sequence (one built on an
	// existing iterator, channel or scanner) when it is traversed a second
	// time.
	ErrConsumed = errors.New("single-shot sequence already consumed")

	// ErrNotFound is returned by First when no element matches.
	ErrNotFound = errors.New("no element found")
)

// IndexError is returned by At for a negative index or an index at or past
// the end of the sequence.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range", e.Index)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ErrorContext provides error handler callbacks with a hint about where in
// processing the error occured
type ErrorContext int

const (
	// ErrorContextIterator hints that the error occured reading an interator
	ErrorContextIterator ErrorContext = iota

	// ErrorContextOther hints that the error occured reading the other
	// input of an operation that compares two sequences, such as
	// SequenceEqual
	ErrorContextOther
)

func (c ErrorContext) String() string {
	switch c {
	case ErrorContextIterator:
		return "iterator"
	default:
		return "other"
	}
}

// Functions complying with the ErrorHandler prototype decide what happens
// when an iterator fails while a terminal operation is draining a sequence.
// A custom handler can be provided using the WithErrorHandler option.
//
// Parameters:
//   - where describes the context in which the error occured
//   - err is the error to be handled
//
// The function should return true if the error is to be ignored, in which
// case the terminal operation returns whatever it had computed before the
// failure, or false to have the operation return the error.  Buffering
// operations (Sort, Reverse, GroupBy, Intersect, Except) pass on what they
// read before a failure, so an ignored error still leaves their partial
// result.  The default handler returns false.
type ErrorHandler func(where ErrorContext, err error) bool

func abortErrorHandler(ErrorContext, error) bool {
	return false
}
