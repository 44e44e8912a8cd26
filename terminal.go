package lazy

// ForEach calls action with each element of the sequence and its 0-based
// position.
func (s *Seq[T]) ForEach(action func(item T, index int)) error {
	t := s.tracer("ForEach")
	defer t.End()

	i := 0
	return s.drain(t, func(v T) bool {
		action(v, i)
		i++
		return true
	})
}

// Find returns the first element for which f returns true.  The boolean
// result is false if there is no such element.
func (s *Seq[T]) Find(f FilterFunc[T]) (T, bool, error) {
	t := s.tracer("Find")
	defer t.End()

	var found T
	ok := false
	err := s.drain(t, func(v T) bool {
		if f(v) {
			found, ok = v, true
			return false
		}
		return true
	})

	return found, ok, err
}

// First is like Find, but returns ErrNotFound if no element matches.
func (s *Seq[T]) First(f FilterFunc[T]) (T, error) {
	v, ok, err := s.Find(f)
	if err == nil && !ok {
		err = ErrNotFound
	}
	return v, err
}

// FindIndex returns the 0-based position of the first element for which f
// returns true, or -1.
func (s *Seq[T]) FindIndex(f FilterFunc[T]) (int, error) {
	t := s.tracer("FindIndex")
	defer t.End()

	i, found := 0, -1
	err := s.drain(t, func(v T) bool {
		if f(v) {
			found = i
			return false
		}
		i++
		return true
	})

	return found, err
}

// Some reports whether f returns true for at least one element.  It
// returns false for an empty sequence.
func (s *Seq[T]) Some(f FilterFunc[T]) (bool, error) {
	_, ok, err := s.Find(f)
	return ok, err
}

// Every reports whether f returns true for all elements.  It returns true
// for an empty sequence.
func (s *Seq[T]) Every(f FilterFunc[T]) (bool, error) {
	_, ok, err := s.Find(func(v T) bool { return !f(v) })
	return !ok, err
}

// Contains reports whether item is an element of s.
func Contains[T comparable](s *Seq[T], item T) (bool, error) {
	return s.Some(func(v T) bool { return v == item })
}

// ContainsFunc reports whether eq returns true for item and some element of
// the sequence.
func (s *Seq[T]) ContainsFunc(item T, eq func(a, b T) bool) (bool, error) {
	return s.Some(func(v T) bool { return eq(item, v) })
}

// IsEmpty reports whether the sequence has no elements.  At most one
// element is pulled.
func (s *Seq[T]) IsEmpty() (bool, error) {
	_, ok, err := s.TryHead()
	return !ok, err
}

// Len returns the number of elements in the sequence.  When the underlying
// iterator knows its size (a slice, or a Skip, Take or Reverse of one) the
// elements are not visited.
func (s *Seq[T]) Len() (int, error) {
	t := s.tracer("Len")
	defer t.End()

	it := s.src.Open()
	defer stop(it)

	if sh, ok := it.(Size[T]); ok {
		t.Msg("size known by iterator")
		return int(sh.Size()), nil
	}

	n := 0
	for it.Next(s.opts.ctx) {
		n++
	}

	return n, s.check(t, it)
}

// TryHead returns the first element of the sequence.  The boolean result is
// false if the sequence is empty.
func (s *Seq[T]) TryHead() (T, bool, error) {
	return s.Find(func(T) bool { return true })
}

// Head returns the first element of the sequence, or ErrEmptySequence.
func (s *Seq[T]) Head() (T, error) {
	v, ok, err := s.TryHead()
	if err == nil && !ok {
		err = ErrEmptySequence
	}
	return v, err
}

// TryLast returns the last element of the sequence.  The boolean result is
// false if the sequence is empty.  The elements are only walked when the
// underlying iterator does not support random access.
func (s *Seq[T]) TryLast() (T, bool, error) {
	t := s.tracer("TryLast")
	defer t.End()

	it := s.src.Open()
	defer stop(it)

	if ix, ok := it.(Indexer[T]); ok {
		t.Msg("random access")
		if ix.Size() == 0 {
			var zero T
			return zero, false, nil
		}
		v, ok := ix.At(ix.Size() - 1)
		return v, ok, nil
	}

	var last T
	found := false
	for it.Next(s.opts.ctx) {
		last, found = it.Get(), true
	}

	if err := s.check(t, it); err != nil {
		var zero T
		return zero, false, err
	}
	return last, found, nil
}

// Last returns the last element of the sequence, or ErrEmptySequence.
func (s *Seq[T]) Last() (T, error) {
	v, ok, err := s.TryLast()
	if err == nil && !ok {
		err = ErrEmptySequence
	}
	return v, err
}

// TryAt returns the element at 0-based position i.  The boolean result is
// false if i is negative or not less than the length of the sequence.
func (s *Seq[T]) TryAt(i int) (T, bool, error) {
	var zero T
	if i < 0 {
		return zero, false, nil
	}

	t := s.tracer("TryAt %d", i)
	defer t.End()

	it := s.src.Open()
	defer stop(it)

	if ix, ok := it.(Indexer[T]); ok {
		t.Msg("random access")
		v, ok := ix.At(uint(i))
		return v, ok, nil
	}

	for n := 0; it.Next(s.opts.ctx); n++ {
		if n == i {
			if err := s.check(t, it); err != nil {
				return zero, false, err
			}
			return it.Get(), true, nil
		}
	}

	return zero, false, s.check(t, it)
}

// At returns the element at 0-based position i, or an *IndexError if there
// is no such element.
func (s *Seq[T]) At(i int) (T, error) {
	v, ok, err := s.TryAt(i)
	if err == nil && !ok {
		err = &IndexError{Index: i}
	}
	return v, err
}
