package seq

import (
	"fmt"
	"unsafe"
)

// RawBuffer is a block of storage sized for a fixed number of element
// slots. It owns allocation only: it never constructs, clones, or drops
// elements, and it does not know which of its slots hold live values.
// The Sequence layered on top tracks liveness.
//
// The backing block is obtained from the Go heap and traced by the GC
// through the stored pointer, so "deallocation" is dropping the last
// reference. Go zeroes fresh allocations; a zeroed slot is still raw
// storage from the buffer's point of view, not a live element.
//
// Duplicating a RawBuffer value aliases the same block and has no
// well-defined ownership semantics. Transfer ownership with Move or
// Swap instead.
type RawBuffer[T any] struct {
	ptr      unsafe.Pointer // base address; nil when cap == 0
	cap      int            // capacity in element slots, not bytes
	elemSize uintptr
}

// NewRawBuffer allocates storage for capacity element slots. A capacity
// of 0 allocates nothing and yields the empty buffer. Negative capacity
// is a caller bug and panics.
func NewRawBuffer[T any](capacity int) RawBuffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("seq: negative buffer capacity %d", capacity))
	}
	var zero T
	b := RawBuffer[T]{elemSize: unsafe.Sizeof(zero)}
	if capacity == 0 {
		return b
	}
	b.ptr = unsafe.Pointer(&make([]T, capacity)[0])
	b.cap = capacity
	return b
}

// AddressOf returns the address of the slot at offset. Offsets in
// [0, Cap()] are valid; the one-past-the-end address may be formed for
// range arithmetic but never dereferenced. Checked only under the
// seqcheck build tag.
func (b *RawBuffer[T]) AddressOf(offset int) *T {
	if checkEnabled && (offset < 0 || offset > b.cap) {
		panic(fmt.Sprintf("seq: buffer offset %d out of range [0,%d]", offset, b.cap))
	}
	if b.ptr == nil {
		return nil
	}
	return (*T)(unsafe.Add(b.ptr, uintptr(offset)*b.elemSize))
}

// SlotAt returns the address of slot index. The caller contract is
// index in [0, Cap()); violations are checked only under the seqcheck
// build tag.
func (b *RawBuffer[T]) SlotAt(index int) *T {
	if checkEnabled && (index < 0 || index >= b.cap) {
		panic(fmt.Sprintf("seq: slot index %d out of range [0,%d)", index, b.cap))
	}
	return (*T)(unsafe.Add(b.ptr, uintptr(index)*b.elemSize))
}

// Cap returns the buffer's capacity in element slots.
func (b *RawBuffer[T]) Cap() int {
	return b.cap
}

// Swap exchanges storage between two buffers. No elements are touched
// and no allocation happens; Swap never fails.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	*b, *other = *other, *b
}

// Move transfers ownership of the block out of the receiver, leaving it
// empty. Constant time.
func (b *RawBuffer[T]) Move() RawBuffer[T] {
	m := *b
	*b = RawBuffer[T]{elemSize: b.elemSize}
	return m
}

// Release drops the buffer's reference to its block, returning it to
// the empty state. The owner must have dropped all live elements first;
// Release itself runs no element lifecycle.
func (b *RawBuffer[T]) Release() {
	b.ptr = nil
	b.cap = 0
}

// slice exposes n slots starting at offset as a []T. Internal helper
// for batch relocation; n == 0 yields nil even on the empty buffer.
func (b *RawBuffer[T]) slice(offset, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice(b.AddressOf(offset), n)
}
