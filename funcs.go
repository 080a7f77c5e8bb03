package seq

// Funcs bundles the element lifecycle hooks for a Sequence. Every field
// is optional; the zero Funcs gives plain value semantics: zero-value
// construction, shallow copies, no teardown.
//
// Hooks that can fail return an error. The container propagates such
// errors to the caller and documents, per operation, whether the
// sequence is left unchanged (strong guarantee) or merely valid (basic
// guarantee) when that happens.
type Funcs[T any] struct {
	// New produces the default element value, used by NewLen and by
	// Resize when growing. nil means the zero value, which cannot fail.
	New func() (T, error)

	// Clone produces an independent deep copy of v, used by Clone,
	// Assign, AppendClone/InsertClone, and clone-based relocation.
	// nil means a shallow value copy suffices, which cannot fail.
	Clone func(v T) (T, error)

	// Drop releases resources owned by the element before its slot is
	// reused or discarded. The container zeroes the slot afterwards so
	// the GC can collect whatever the dead value referenced. nil means
	// no teardown beyond the zeroing.
	Drop func(v *T)

	// NoBitwiseMove marks types whose values must not be relocated by
	// a bitwise copy, e.g. structs holding interior pointers into their
	// own storage. Such types are relocated by Clone followed by Drop
	// of the source, provided Clone is set.
	NoBitwiseMove bool
}

// relocateByMove reports how a relocation batch transfers elements into
// a new buffer: bitwise move when moving cannot fail or when cloning is
// unavailable, element-wise Clone otherwise. Resolved once per batch,
// never per element.
func (f Funcs[T]) relocateByMove() bool {
	return !f.NoBitwiseMove || f.Clone == nil
}

func (f Funcs[T]) defaultNew() (T, error) {
	if f.New == nil {
		var zero T
		return zero, nil
	}
	return f.New()
}

func (f Funcs[T]) cloneValue(v T) (T, error) {
	if f.Clone == nil {
		return v, nil
	}
	return f.Clone(v)
}

// dropSlot runs teardown for the value at p and zeroes the slot,
// returning it to raw storage.
func (f Funcs[T]) dropSlot(p *T) {
	if f.Drop != nil {
		f.Drop(p)
	}
	var zero T
	*p = zero
}

// dropValue runs teardown for a value that never made it into a slot.
func (f Funcs[T]) dropValue(v *T) {
	if f.Drop != nil {
		f.Drop(v)
	}
}
