package lazy

// Sum returns the total of f applied to each element, or 0 for an empty
// sequence.
func (s *Seq[T]) Sum(f func(T) float64) (float64, error) {
	return SumOf(s, f)
}

// Min returns the smallest result of f applied to each element.  The
// boolean result is false for an empty sequence.  The result is NaN if f
// returns NaN for any element.
func (s *Seq[T]) Min(f func(T) float64) (float64, bool, error) {
	return MinOf(s, f)
}

// Max returns the largest result of f applied to each element.  The
// boolean result is false for an empty sequence.  The result is NaN if f
// returns NaN for any element.
func (s *Seq[T]) Max(f func(T) float64) (float64, bool, error) {
	return MaxOf(s, f)
}

// SumOf returns the total of f applied to each element of s, or zero for an
// empty sequence.
func SumOf[T any, N Number](s *Seq[T], f func(T) N) (N, error) {
	t := s.tracer("Sum")
	defer t.End()

	var total N
	err := s.drain(t, func(v T) bool {
		total += f(v)
		return true
	})

	return total, err
}

// MinOf returns the smallest result of f applied to each element of s.  The
// boolean result is false for an empty sequence.  For floating point
// results a NaN wins over every other value.
func MinOf[T any, N Number](s *Seq[T], f func(T) N) (N, bool, error) {
	return extremumOf(s, "Min", f, func(a, b N) bool { return a < b })
}

// MaxOf returns the largest result of f applied to each element of s.  The
// boolean result is false for an empty sequence.
func MaxOf[T any, N Number](s *Seq[T], f func(T) N) (N, bool, error) {
	return extremumOf(s, "Max", f, func(a, b N) bool { return a > b })
}

func extremumOf[T any, N Number](s *Seq[T], name string, f func(T) N, better func(a, b N) bool) (N, bool, error) {
	t := s.tracer(name)
	defer t.End()

	var acc N
	seen := false
	err := s.drain(t, func(v T) bool {
		x := f(v)
		switch {
		case !seen, isNaN(x):
			acc = x
		case !isNaN(acc) && better(x, acc):
			acc = x
		}
		seen = true
		return true
	})

	if err != nil || !seen {
		var zero N
		return zero, false, err
	}
	return acc, true, nil
}

// isNaN is only ever true for floating point values
func isNaN[N Number](x N) bool {
	return x != x
}

// SequenceEqual reports whether s and other have the same length and equal
// elements at each position.
func SequenceEqual[T comparable](s, other *Seq[T]) (bool, error) {
	return s.SequenceEqualFunc(other, func(a, b T) bool { return a == b })
}

// SequenceEqualFunc reports whether the sequence and other have the same
// length and eq returns true for the elements at each position.  Both
// sequences are read in step and the comparison stops at the first
// difference.
func (s *Seq[T]) SequenceEqualFunc(other *Seq[T], eq func(a, b T) bool) (bool, error) {
	t := s.tracer("SequenceEqual")
	defer t.End()

	a := s.src.Open()
	defer stop(a)
	b := other.src.Open()
	defer stop(b)

	for {
		nextA := a.Next(s.opts.ctx)
		nextB := b.Next(s.opts.ctx)

		if !nextA || !nextB {
			if err := s.check(t, a); err != nil {
				return false, err
			}
			if err := s.checkFrom(t, b, ErrorContextOther); err != nil {
				return false, err
			}

			return nextA == nextB, nil
		}

		if !eq(a.Get(), b.Get()) {
			t.Msg("elements differ")
			if err := s.check(t, a); err != nil {
				return false, err
			}
			if err := s.checkFrom(t, b, ErrorContextOther); err != nil {
				return false, err
			}
			return false, nil
		}
	}
}
