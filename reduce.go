package lazy

// ReduceFunc is a generic function that folds the next element of a
// sequence into an accumulated value.
type ReduceFunc[T any, R any] func(acc R, item T) R

// Reduce is the non-OO version of Seq.Reduce(), which must be used when
// the accumulated value is of a different type than the elements.
func Reduce[T, R any](s *Seq[T], initial R, f ReduceFunc[T, R]) (R, error) {
	t := s.tracer("Reduce")
	defer t.End()

	acc := initial
	err := s.drain(t, func(v T) bool {
		acc = f(acc, v)
		return true
	})
	if err != nil {
		return initial, err
	}

	return acc, nil
}

// Reduce folds the elements of the sequence into a single value, left to
// right, starting from initial.
func (s *Seq[T]) Reduce(initial T, f ReduceFunc[T, T]) (T, error) {
	return Reduce(s, initial, f)
}
