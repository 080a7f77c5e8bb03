package seq

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sequence is a growable contiguous container of T with manual control
// over storage and element lifecycle. It owns exactly one RawBuffer;
// slots [0, Len()) hold live elements, slots [Len(), Cap()) are raw
// storage. Not safe for concurrent mutation.
//
// The zero Sequence is an empty sequence with plain value semantics,
// ready to use. Do not copy a non-empty Sequence by value: two copies
// would alias one buffer. Use Clone, Move, or Swap.
type Sequence[T any] struct {
	buf    RawBuffer[T]
	length int
	fn     Funcs[T]
	grows  uint64 // buffer replacements, reported by Stats
}

// New returns an empty sequence with zero capacity using the given
// lifecycle hooks.
func New[T any](fn Funcs[T]) *Sequence[T] {
	return &Sequence[T]{fn: fn, buf: NewRawBuffer[T](0)}
}

// NewLen returns a sequence of exactly n default-constructed elements
// in a buffer of exactly n slots. If the New hook fails on element k,
// elements [0, k) are dropped and the buffer released before the
// wrapped error is returned: no leak, no partially-built sequence.
func NewLen[T any](fn Funcs[T], n int) (*Sequence[T], error) {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative length %d", n))
	}
	s := &Sequence[T]{fn: fn, buf: NewRawBuffer[T](n)}
	for i := 0; i < n; i++ {
		v, err := fn.defaultNew()
		if err != nil {
			s.dropRange(0, i)
			s.buf.Release()
			return nil, errors.Wrapf(err, "seq: construct element %d", i)
		}
		*s.buf.SlotAt(i) = v
	}
	s.length = n
	return s, nil
}

// Clone returns an independent copy: a buffer of exactly Len() slots
// with each element cloned in order. On a Clone hook failure the
// partial copy is dropped and released; the receiver is never touched.
func (s *Sequence[T]) Clone() (*Sequence[T], error) {
	d := &Sequence[T]{fn: s.fn, buf: NewRawBuffer[T](s.length)}
	for i := 0; i < s.length; i++ {
		v, err := s.fn.cloneValue(*s.buf.SlotAt(i))
		if err != nil {
			d.dropRange(0, i)
			d.buf.Release()
			return nil, errors.Wrapf(err, "seq: clone element %d", i)
		}
		*d.buf.SlotAt(i) = v
	}
	d.length = s.length
	return d, nil
}

// Move transfers buffer and length out of the receiver in constant
// time. The receiver is left empty (zero length, zero capacity) but
// valid for reuse. Move never fails.
func (s *Sequence[T]) Move() *Sequence[T] {
	d := &Sequence[T]{fn: s.fn, buf: s.buf.Move(), length: s.length, grows: s.grows}
	s.length = 0
	s.grows = 0
	return d
}

// Swap exchanges the full state of two sequences in constant time.
// Swap never fails.
func (s *Sequence[T]) Swap(other *Sequence[T]) {
	s.buf.Swap(&other.buf)
	s.length, other.length = other.length, s.length
	s.fn, other.fn = other.fn, s.fn
	s.grows, other.grows = other.grows, s.grows
}

// Assign replaces the receiver's contents with clones of other's
// elements.
//
// When other does not fit in the current capacity, Assign builds a full
// temporary copy and swaps it in: the strong guarantee, the receiver is
// untouched if any clone fails.
//
// When other fits, existing storage is reused: the overlapping prefix
// is clone-assigned element-wise, a trailing excess is dropped if other
// is shorter, extra elements are cloned into the tail if other is
// longer. This path gives only the basic guarantee: a failure mid-way
// leaves the receiver at an intermediate but valid length.
func (s *Sequence[T]) Assign(other *Sequence[T]) error {
	if s == other {
		return nil
	}
	if other.length > s.buf.Cap() {
		tmp, err := other.Clone()
		if err != nil {
			return err
		}
		g := s.grows + 1
		s.Swap(tmp)
		s.grows = g
		tmp.Release() // prior contents ride out in tmp
		return nil
	}
	n := min(s.length, other.length)
	for i := 0; i < n; i++ {
		v, err := s.fn.cloneValue(*other.buf.SlotAt(i))
		if err != nil {
			return errors.Wrapf(err, "seq: assign element %d", i)
		}
		s.fn.dropSlot(s.buf.SlotAt(i))
		*s.buf.SlotAt(i) = v
	}
	if other.length < s.length {
		s.dropRange(other.length, s.length)
	} else {
		for i := s.length; i < other.length; i++ {
			v, err := s.fn.cloneValue(*other.buf.SlotAt(i))
			if err != nil {
				s.length = i // keep the prefix built so far
				return errors.Wrapf(err, "seq: assign element %d", i)
			}
			*s.buf.SlotAt(i) = v
		}
	}
	s.length = other.length
	return nil
}

// Replace is move-assignment: it swaps state with other, so the
// receiver's prior contents ride out in other rather than being
// destroyed here. Replace never fails.
func (s *Sequence[T]) Replace(other *Sequence[T]) {
	s.Swap(other)
}

// At returns the address of element i for reading or writing in place.
// Caller contract: i < Len(). Checked only under the seqcheck build
// tag.
func (s *Sequence[T]) At(i int) *T {
	if checkEnabled && (i < 0 || i >= s.length) {
		panic(fmt.Sprintf("seq: element index %d out of range [0,%d)", i, s.length))
	}
	return s.buf.SlotAt(i)
}

// Get returns a copy of element i. Same contract as At.
func (s *Sequence[T]) Get(i int) T {
	return *s.At(i)
}

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int {
	return s.length
}

// Cap returns the storage capacity in element slots.
func (s *Sequence[T]) Cap() int {
	return s.buf.Cap()
}

// Clear drops all elements but keeps the buffer for reuse.
func (s *Sequence[T]) Clear() {
	s.dropRange(0, s.length)
	s.length = 0
}

// Release drops all elements and the buffer. The sequence returns to
// the valid empty state and may be reused.
func (s *Sequence[T]) Release() {
	s.Clear()
	s.buf.Release()
}

// dropRange drops the elements in slots [from, to).
func (s *Sequence[T]) dropRange(from, to int) {
	for i := from; i < to; i++ {
		s.fn.dropSlot(s.buf.SlotAt(i))
	}
}

// clearSlot zeroes a slot without running Drop, for stale duplicates
// left behind by bitwise shifts.
func (s *Sequence[T]) clearSlot(i int) {
	var zero T
	*s.buf.SlotAt(i) = zero
}
