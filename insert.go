package seq

import (
	"fmt"

	"github.com/pkg/errors"
)

// Append adopts v as the new last element. The sequence takes the value
// as passed, the move flavor of appending; use AppendClone when the
// caller keeps ownership of a deep structure.
func (s *Sequence[T]) Append(v T) error {
	_, err := s.AppendFunc(func() (T, error) { return v, nil })
	return err
}

// AppendClone deep-copies v via the Clone hook and appends the copy.
func (s *Sequence[T]) AppendClone(v T) error {
	_, err := s.AppendFunc(func() (T, error) { return s.fn.cloneValue(v) })
	return err
}

// AppendFunc constructs the new last element with construct and returns
// its address.
//
// When capacity is exhausted the element is constructed into its final
// slot in a fresh buffer of max(1, 2*Cap()) before any existing element
// is relocated, so a failing construction leaves the receiver
// completely untouched (strong guarantee). With spare capacity the
// element is constructed into the next free slot.
//
// The returned address is valid until the next reallocation or shift.
func (s *Sequence[T]) AppendFunc(construct func() (T, error)) (*T, error) {
	if s.length < s.buf.Cap() {
		v, err := construct()
		if err != nil {
			return nil, errors.Wrap(err, "seq: append")
		}
		slot := s.buf.SlotAt(s.length)
		*slot = v
		s.length++
		return slot, nil
	}

	nb := NewRawBuffer[T](growCapacity(s.buf.Cap()))
	v, err := construct()
	if err != nil {
		nb.Release()
		return nil, errors.Wrap(err, "seq: append")
	}
	*nb.SlotAt(s.length) = v
	if err := s.relocateSpan(&nb, 0, s.length, 0); err != nil {
		s.fn.dropSlot(nb.SlotAt(s.length))
		nb.Release()
		return nil, err
	}
	s.retireBuffer(&nb)
	s.length++
	return s.buf.SlotAt(s.length - 1), nil
}

// Pop drops the last element. Popping an empty sequence is a no-op,
// not an error.
func (s *Sequence[T]) Pop() {
	if s.length == 0 {
		return
	}
	s.length--
	s.fn.dropSlot(s.buf.SlotAt(s.length))
}

// Insert adopts v as a new element before position i.
func (s *Sequence[T]) Insert(i int, v T) error {
	_, err := s.InsertFunc(i, func() (T, error) { return v, nil })
	return err
}

// InsertClone deep-copies v via the Clone hook and inserts the copy
// before position i.
func (s *Sequence[T]) InsertClone(i int, v T) error {
	_, err := s.InsertFunc(i, func() (T, error) { return s.fn.cloneValue(v) })
	return err
}

// InsertFunc constructs a new element before position i, which must be
// in [0, Len()] (Len() appends), and returns its address. The element
// previously at i, if any, now follows the new one.
//
// The growth path mirrors AppendFunc: the new element is constructed
// into the fresh buffer first, so a failure leaves the receiver
// untouched (strong guarantee). The spare-capacity path constructs the
// value up front, shifts [i, Len()) one slot forward, and installs the
// value at i; for NoBitwiseMove types the shift clones element-wise and
// a mid-shift failure leaves the sequence valid but altered. That path
// carries only the basic guarantee.
//
// All previously returned element addresses are invalidated.
func (s *Sequence[T]) InsertFunc(i int, construct func() (T, error)) (*T, error) {
	if checkEnabled && (i < 0 || i > s.length) {
		panic(fmt.Sprintf("seq: insert position %d out of range [0,%d]", i, s.length))
	}

	if s.length == s.buf.Cap() {
		nb := NewRawBuffer[T](growCapacity(s.buf.Cap()))
		v, err := construct()
		if err != nil {
			nb.Release()
			return nil, errors.Wrap(err, "seq: insert")
		}
		*nb.SlotAt(i) = v
		if err := s.relocateSpan(&nb, 0, i, 0); err != nil {
			s.fn.dropSlot(nb.SlotAt(i))
			nb.Release()
			return nil, err
		}
		if err := s.relocateSpan(&nb, i, s.length, i+1); err != nil {
			// A span can only fail under clone relocation, so the first
			// span put independent clones in nb; drop them along with
			// the new element.
			for j := 0; j <= i; j++ {
				s.fn.dropSlot(nb.SlotAt(j))
			}
			nb.Release()
			return nil, err
		}
		s.retireBuffer(&nb)
		s.length++
		return s.buf.SlotAt(i), nil
	}

	v, err := construct()
	if err != nil {
		return nil, errors.Wrap(err, "seq: insert")
	}
	if i == s.length {
		slot := s.buf.SlotAt(i)
		*slot = v
		s.length++
		return slot, nil
	}
	if err := s.shiftRight(i); err != nil {
		s.fn.dropValue(&v)
		return nil, err
	}
	slot := s.buf.SlotAt(i)
	*slot = v
	s.length++
	return slot, nil
}

// Remove erases the element at position i: the range [i+1, Len())
// shifts one slot back over it and the vacated last slot is dropped.
// The element that followed i now lives at index i.
//
// Remove fails only for NoBitwiseMove types, whose backward shift
// clones element-wise; a mid-shift clone failure leaves the sequence
// valid but altered (basic guarantee). For all other types the error is
// always nil.
func (s *Sequence[T]) Remove(i int) error {
	if checkEnabled && (i < 0 || i >= s.length) {
		panic(fmt.Sprintf("seq: remove position %d out of range [0,%d)", i, s.length))
	}

	if s.fn.relocateByMove() {
		s.fn.dropSlot(s.buf.SlotAt(i))
		n := s.length - i - 1
		if n > 0 {
			copy(s.buf.slice(i, n), s.buf.slice(i+1, n))
		}
		s.length--
		// Zero the stale duplicate so the GC can reclaim what it
		// references; the value itself moved down a slot.
		s.clearSlot(s.length)
		return nil
	}

	for j := i; j < s.length-1; j++ {
		v, err := s.fn.Clone(*s.buf.SlotAt(j + 1))
		if err != nil {
			return errors.Wrapf(err, "seq: shift element %d", j+1)
		}
		s.fn.dropSlot(s.buf.SlotAt(j))
		*s.buf.SlotAt(j) = v
	}
	s.length--
	s.fn.dropSlot(s.buf.SlotAt(s.length))
	return nil
}

// shiftRight opens a hole at slot i by shifting [i, length) one slot
// forward. Bitwise path: one overlapping copy; slot i keeps a stale
// duplicate the caller overwrites immediately. Clone path (NoBitwiseMove
// types): the last element is cloned into the new trailing slot, then
// the range shifts backward clone-by-clone; on failure the extended
// tail is accounted for so every live slot stays valid.
func (s *Sequence[T]) shiftRight(i int) error {
	if s.fn.relocateByMove() {
		n := s.length - i
		copy(s.buf.slice(i+1, n), s.buf.slice(i, n))
		return nil
	}

	last := s.length - 1
	v, err := s.fn.Clone(*s.buf.SlotAt(last))
	if err != nil {
		return errors.Wrapf(err, "seq: shift element %d", last)
	}
	*s.buf.SlotAt(last + 1) = v
	for j := last; j > i; j-- {
		v, err := s.fn.Clone(*s.buf.SlotAt(j - 1))
		if err != nil {
			// Slots [0, j] hold originals, (j, last+1] the shifted
			// copies: all live, so extend the length over the tail.
			s.length++
			return errors.Wrapf(err, "seq: shift element %d", j-1)
		}
		s.fn.dropSlot(s.buf.SlotAt(j))
		*s.buf.SlotAt(j) = v
	}
	s.fn.dropSlot(s.buf.SlotAt(i))
	return nil
}
