package lazy

import (
	"context"
	"fmt"
	"strings"
)

// ToSlice returns a new slice of the elements of the sequence.
func (s *Seq[T]) ToSlice() ([]T, error) {
	t := s.tracer("ToSlice")
	defer t.End()

	it := s.src.Open()
	defer stop(it)

	out := make([]T, 0, s.sizeHint(it))
	for it.Next(s.opts.ctx) {
		out = append(out, it.Get())
	}

	t.Msg("collected %d elements", len(out))
	if err := s.check(t, it); err != nil {
		return nil, err
	}
	return out, nil
}

// ToSet returns the set of distinct elements of s.
func ToSet[T comparable](s *Seq[T]) (map[T]struct{}, error) {
	t := s.tracer("ToSet")
	defer t.End()

	out := make(map[T]struct{})
	err := s.drain(t, func(v T) bool {
		out[v] = struct{}{}
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ToMap returns a map from the keys produced by key to the elements that
// produced them, in the order of s.
func ToMap[T any, K comparable](s *Seq[T], key func(T) K) (map[K][]T, error) {
	t := s.tracer("ToMap")
	defer t.End()

	out := make(map[K][]T)
	err := s.drain(t, func(v T) bool {
		k := key(v)
		out[k] = append(out[k], v)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Group is a key and the elements of a sequence that produced it.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// Seq returns a restartable sequence of the elements of the group.
func (g Group[K, T]) Seq(opts ...Option) *Seq[T] {
	return FromSlice(g.Items, opts...)
}

// GroupBy returns a sequence of the groups of elements of s that produce the
// same key.  Groups are ordered by the first appearance of their key and the
// elements of each group keep the order of s.  The whole of s is read when
// the first group is pulled; if s fails, the groups of the elements read
// before the failure are produced along with the error.
func GroupBy[T any, K comparable](s *Seq[T], key func(T) K, opts ...Option) *Seq[Group[K, T]] {
	fill := func(ctx context.Context, t Tracer, up Iterator[T]) ([]Group[K, T], error) {
		gt := t.SubTracer("group")
		defer gt.End()

		var groups []Group[K, T]
		index := make(map[K]int)

		for up.Next(ctx) {
			v := up.Get()
			k := key(v)

			i, ok := index[k]
			if !ok {
				i = len(groups)
				index[k] = i
				groups = append(groups, Group[K, T]{Key: k})
			}
			groups[i].Items = append(groups[i].Items, v)
		}

		gt.Msg("%d groups", len(groups))
		return groups, up.Error()
	}

	return buffered(s, "GroupBy", fill, opts...)
}

// ToSeparatedString converts the elements to text and joins them with sep.
// convert returns the text for an element, or false to leave the element
// out; if convert is nil, elements are formatted with fmt.Sprint.
func (s *Seq[T]) ToSeparatedString(sep string, convert func(T) (string, bool)) (string, error) {
	t := s.tracer("ToSeparatedString")
	defer t.End()

	if convert == nil {
		convert = func(v T) (string, bool) {
			return fmt.Sprint(v), true
		}
	}

	var b strings.Builder
	first := true
	err := s.drain(t, func(v T) bool {
		text, ok := convert(v)
		if !ok {
			return true
		}

		if !first {
			b.WriteString(sep)
		}
		b.WriteString(text)
		first = false
		return true
	})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
