package seq

import "github.com/pkg/errors"

// growCapacity is the amortized growth step: double, with a bootstrap
// of one slot from empty.
func growCapacity(oldCap int) int {
	if oldCap == 0 {
		return 1
	}
	return 2 * oldCap
}

// Reserve guarantees capacity for at least n elements. It is a no-op
// when n <= Cap(); otherwise it allocates a buffer of exactly n slots,
// relocates the live range, and retires the old buffer. Len() is
// unchanged.
//
// Strong guarantee: if clone-based relocation fails mid-batch, the
// elements already cloned into the new buffer are dropped and the new
// buffer released; the receiver is untouched.
func (s *Sequence[T]) Reserve(n int) error {
	if n <= s.buf.Cap() {
		return nil
	}
	nb := NewRawBuffer[T](n)
	if err := s.relocateSpan(&nb, 0, s.length, 0); err != nil {
		nb.Release()
		return err
	}
	s.retireBuffer(&nb)
	return nil
}

// Resize sets the length to exactly n, reserving first, dropping the
// tail when shrinking, and default-constructing new elements when
// growing. If a construction fails, the partially-built tail is
// dropped, Len() stays unchanged, and the error is returned (capacity
// may still have grown).
func (s *Sequence[T]) Resize(n int) error {
	if n < 0 {
		panic("seq: negative length in Resize")
	}
	if err := s.Reserve(n); err != nil {
		return err
	}
	if n < s.length {
		s.dropRange(n, s.length)
		s.length = n
		return nil
	}
	for i := s.length; i < n; i++ {
		v, err := s.fn.defaultNew()
		if err != nil {
			s.dropRange(s.length, i)
			return errors.Wrapf(err, "seq: construct element %d", i)
		}
		*s.buf.SlotAt(i) = v
	}
	s.length = n
	return nil
}

// relocateSpan transfers elements [from, to) of the live range into
// dst starting at dstFrom, per the relocation policy: a single bitwise
// copy when the type moves, element-wise Clone otherwise. On a clone
// failure the span's partial output in dst is dropped before the error
// is returned; the source elements are never touched.
func (s *Sequence[T]) relocateSpan(dst *RawBuffer[T], from, to, dstFrom int) error {
	n := to - from
	if n <= 0 {
		return nil
	}
	if s.fn.relocateByMove() {
		copy(dst.slice(dstFrom, n), s.buf.slice(from, n))
		return nil
	}
	for i := 0; i < n; i++ {
		v, err := s.fn.Clone(*s.buf.SlotAt(from + i))
		if err != nil {
			for j := 0; j < i; j++ {
				s.fn.dropSlot(dst.SlotAt(dstFrom + j))
			}
			return errors.Wrapf(err, "seq: relocate element %d", from+i)
		}
		*dst.SlotAt(dstFrom + i) = v
	}
	return nil
}

// retireBuffer installs nb as the backing storage and releases the old
// block. Clone-relocated originals still live in the old block and are
// dropped first; bitwise-moved elements were transferred and must not
// be.
func (s *Sequence[T]) retireBuffer(nb *RawBuffer[T]) {
	if !s.fn.relocateByMove() {
		s.dropRange(0, s.length)
	}
	s.buf.Swap(nb)
	nb.Release()
	s.grows++
}
