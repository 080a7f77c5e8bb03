// Package seq implements a growable contiguous sequence container with
// manual control over storage, element lifecycle, and failure
// guarantees.
//
// # Overview
//
// The package separates memory lifetime from element lifetime across
// two layers:
//
//   - RawBuffer owns a block of storage sized for a fixed number of
//     element slots. It allocates and releases only; it never runs
//     element lifecycle and does not know which slots hold live values.
//   - Sequence owns exactly one RawBuffer plus a length, and is the
//     sole authority on liveness: slots [0, Len()) hold live elements,
//     the rest are raw storage. It drives the buffer through every
//     growth, insertion, and removal.
//
// This split is useful when element construction, copying, or teardown
// is expensive or can fail, and the caller needs to know exactly what
// state the container is in afterwards.
//
// # Basic Usage
//
//	s := seq.New[int](seq.Funcs[int]{})
//	for i := 0; i < 5; i++ {
//		s.Append(i * 2)
//	}
//	fmt.Println(s.Len(), s.Cap()) // 5 8
//
//	// Lifecycle hooks for types that own resources:
//	fn := seq.Funcs[*os.File]{
//		Drop: func(f **os.File) { (*f).Close() },
//	}
//	files := seq.New[*os.File](fn)
//
// # Failure Guarantees
//
// Lifecycle hooks (New, Clone) may fail; every operation documents what
// holds when they do:
//
//   - Strong guarantee: the operation either fully succeeds or leaves
//     the sequence observably unchanged. Holds for NewLen, Clone,
//     Reserve, the growth paths of AppendFunc and InsertFunc, and the
//     copy-and-swap path of Assign.
//   - Basic guarantee: the sequence may end up in a different but valid
//     state. Holds for the storage-reuse path of Assign and the
//     spare-capacity path of InsertFunc. The weaker tier on these two
//     paths is deliberate, the price of reusing storage in place.
//
// In every failure case already-constructed elements are dropped before
// the error propagates: no leaks, no partially-built state left behind.
//
// # Relocation
//
// Growing moves live elements into a fresh buffer. The transfer is a
// single bitwise copy unless the element type is marked NoBitwiseMove
// and has a Clone hook, in which case elements are cloned one by one
// and the originals dropped. The choice is resolved once per
// relocation, not per element.
//
// # Thread Safety
//
// A Sequence is not safe for concurrent mutation. Each instance
// exclusively owns its storage; callers sharing one across goroutines
// must synchronize externally.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized, capacity doubles on growth (1, 2, 4, ...)
//   - Insert/Remove at position i: O(Len() - i)
//   - Reserve/Resize: O(Len()) on growth
//   - At/Get/Len/Cap: O(1)
//
// # Important Notes
//
//   - Addresses returned by At, AppendFunc, InsertFunc, and Refs are
//     valid only until the next reallocation or shift.
//   - Do not copy a non-empty Sequence by value; use Clone, Move, or
//     Swap. The zero Sequence is a valid empty sequence.
//   - Index and position contracts are unchecked in release builds.
//     Build with -tags seqcheck to turn violations into panics.
package seq
