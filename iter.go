package seq

import "iter"

// All returns an index/value iterator over the live range [0, Len()).
// Multiple independent traversals may coexist; any operation that
// reallocates or shifts elements invalidates in-flight traversals.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(i, *s.buf.SlotAt(i)) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live range.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(*s.buf.SlotAt(i)) {
				return
			}
		}
	}
}

// Refs returns a mutable iterator yielding the address of each live
// element, with no copying. Yielded addresses obey the same
// invalidation rule as At.
func (s *Sequence[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(s.buf.SlotAt(i)) {
				return
			}
		}
	}
}
