package lazy

import (
	"context"

	"github.com/jake-scott/go-lazy/iter/slice"
)

// ChildrenFunc returns the nested elements of a node of a tree, given the
// node's depth (zero for the elements of the sequence being flattened).
// A nil or empty result means the node is a leaf.
type ChildrenFunc[T any] func(node T, level int) []T

// Flatten walks the trees rooted at each element of s depth first, yielding
// every node before its children.  The walk uses an explicit stack, so deep
// trees do not grow the goroutine stack.
func Flatten[T any](s *Seq[T], children ChildrenFunc[T], opts ...Option) *Seq[T] {
	return FlattenMap(s, children, func(v T, _ int) T { return v }, opts...)
}

// FlattenMap is like Flatten, yielding the result of calling mapper with each
// node and its depth.
func FlattenMap[T, U any](s *Seq[T], children ChildrenFunc[T], mapper func(T, int) U, opts ...Option) *Seq[U] {
	return nextSeq[T, U](s, flattenOpener[T, U]{upstream[T]{s.src}, children, mapper}, opts...)
}

type flattenOpener[T, U any] struct {
	upstream[T]
	children ChildrenFunc[T]
	mapper   func(T, int) U
}

func (o flattenOpener[T, U]) Open() Iterator[U] {
	return &flattenIterator[T, U]{
		stack:    []frame[T]{{it: o.up.Open()}},
		children: o.children,
		mapper:   o.mapper,
	}
}

// frame is one level of the walk: the remaining siblings at that level
type frame[T any] struct {
	it    Iterator[T]
	level int
}

type flattenIterator[T, U any] struct {
	stack    []frame[T]
	children ChildrenFunc[T]
	mapper   func(T, int) U
	item     U
	err      error
}

func (i *flattenIterator[T, U]) Next(ctx context.Context) bool {
	for len(i.stack) > 0 {
		top := i.stack[len(i.stack)-1]

		if !top.it.Next(ctx) {
			if err := top.it.Error(); err != nil {
				i.err = err
				i.Stop()
				return false
			}

			i.stack = i.stack[:len(i.stack)-1]
			continue
		}

		node := top.it.Get()
		kids := i.children(node, top.level)
		i.item = i.mapper(node, top.level)

		if len(kids) > 0 {
			kit := slice.New(kids)
			i.stack = append(i.stack, frame[T]{it: &kit, level: top.level + 1})
		}
		return true
	}

	return false
}

func (i *flattenIterator[T, U]) Get() U       { return i.item }
func (i *flattenIterator[T, U]) Error() error { return i.err }

func (i *flattenIterator[T, U]) Stop() {
	for _, f := range i.stack {
		stop(f.it)
	}
	i.stack = nil
}
