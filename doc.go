// Package fixedvec provides a fixed-capacity vector whose elements stay
// pinned in memory.
//
// A [FixedVec] owns a contiguous block of storage sized exactly to a
// capacity chosen at construction. Unlike a plain slice grown with append,
// it never reallocates: the address of an element, once pushed, does not
// change for as long as the element stays in the vector. That guarantee is
// the whole point of the type — it makes it safe to build self-referential
// structures (trees and graphs whose nodes hold pointers to other nodes in
// the same vector) or to hand out long-lived element pointers while the
// vector keeps growing toward its capacity.
//
// # Creating a vector
//
// [New] allocates empty storage for a given capacity. [FromSlice] copies
// existing elements into fresh storage. [Wrap] adopts a slice without
// copying, and [FixedVec.Unwrap] releases the backing storage again:
//
//	vec := fixedvec.New[int](100)
//	vec.Push(42)
//
//	p, _ := vec.GetRef(0)
//	for i := 0; i < 99; i++ {
//	    vec.Push(i) // p stays valid: pushes never move earlier elements
//	}
//
// # Capacity is a hard ceiling
//
// [FixedVec.Push], [FixedVec.Insert], and [FixedVec.Extend] panic when the
// vector is full. Exceeding a fixed capacity means the upper bound was
// mis-estimated upstream; that is a programmer error, not a runtime
// condition to absorb. Expected absence is different: [FixedVec.Pop],
// [FixedVec.Get], and [FixedVec.GetRef] report an empty or out-of-range
// query with a false second return instead of panicking.
//
// # What may move an element
//
// Operations on one element never disturb the addresses of elements before
// it. The complete list of address-invalidating operations:
//
//   - [FixedVec.Insert] at k relocates indices [k, len); earlier elements
//     keep their addresses.
//   - [FixedVec.Remove] at k compacts the tail, relocating [k+1, len).
//   - [FixedVec.Swap] invalidates the two swapped slots.
//   - [FixedVec.Set] overwrites one slot in place.
//   - [FixedVec.Clear], [FixedVec.Truncate], and [FixedVec.Unwrap] end the
//     lifetime of the affected elements.
//
// [Pinned] captures this contract as an interface for wrapper containers
// that need to reason about when cached addresses are still valid.
//
// # Raw addresses
//
// [FixedVec.UnsafePtrAt] is the single unsafe surface: it returns the
// address of a slot without any bounds check. The pointer is valid to
// dereference exactly as long as the pinning contract above holds for that
// slot. Every safe accessor ([FixedVec.At], [FixedVec.Get],
// [FixedVec.GetRef], [FixedVec.Slice]) checks bounds.
//
// # Iteration and parallel reads
//
// [FixedVec.All], [FixedVec.Values], and [FixedVec.Refs] are lazy,
// restartable range-over-func iterators over the occupied range.
// [FixedVec.Chunks] splits the occupied range into contiguous,
// non-overlapping read views for concurrent consumers, and
// [FixedVec.IntoChunks] partitions ownership of the backing storage
// outright. [ForEach] and [Map] run a function over those chunks with
// bounded workers, context cancellation, and panic capture.
//
// # Concurrency model
//
// The vector performs no internal synchronization. It is single-writer:
// mutation requires exclusive access. Any number of readers may run
// concurrently as long as no writer is active; that obligation is the
// caller's.
package fixedvec
