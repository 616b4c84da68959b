package fixedvec

import (
	"fmt"
	"iter"
	"unsafe"
)

// At returns the element at index with index-operator semantics.
//
// Panics if index is out of range; use [FixedVec.Get] for a non-panicking
// lookup.
func (v *FixedVec[T]) At(index int) T {
	if index < 0 || index >= len(v.data) {
		panic(fmt.Sprintf("fixedvec: index %d out of range for len %d", index, len(v.data)))
	}
	return v.data[index]
}

// Get returns the element at index. The second return is false if index is
// out of range.
func (v *FixedVec[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(v.data) {
		var zero T
		return zero, false
	}
	return v.data[index], true
}

// GetRef returns a pointer to the element at index for reading or in-place
// mutation. The second return is false if index is out of range.
//
// The pointer stays valid under the pinning contract: pushes and operations
// strictly after index do not disturb it, while Insert/Remove at or before
// index, Swap of that slot, Clear, Truncate below index, and Unwrap
// invalidate it.
func (v *FixedVec[T]) GetRef(index int) (*T, bool) {
	if index < 0 || index >= len(v.data) {
		return nil, false
	}
	return &v.data[index], true
}

// Slice returns a view of the elements at [i, j) without copying. The view
// shares backing storage with the vec.
//
// Panics if the range is not within the occupied range.
func (v *FixedVec[T]) Slice(i, j int) []T {
	if i < 0 || j < i || j > len(v.data) {
		panic(fmt.Sprintf("fixedvec: Slice range [%d:%d] out of range for len %d", i, j, len(v.data)))
	}
	return v.data[i:j:j]
}

// UnsafePtrAt returns the raw address of slot index without any bounds
// check. This is the package's sole unsafe surface.
//
// The contract: index must be less than Cap(), and the returned pointer is
// valid to read (and, for an occupied slot, write) exactly as long as the
// pinning contract holds for that slot — no Insert/Remove at or before
// index, no Swap of it, no Clear, no Truncate below it, no Unwrap.
// Dereferencing outside those preconditions is undefined behavior. Prefer
// [FixedVec.GetRef], which checks bounds, unless addressing the unoccupied
// range [Len(), Cap()) is required.
func (v *FixedVec[T]) UnsafePtrAt(index int) *T {
	base := unsafe.SliceData(v.data)
	return (*T)(unsafe.Add(unsafe.Pointer(base), uintptr(index)*unsafe.Sizeof(*base)))
}

// All returns an index/value iterator over the occupied range in index
// order. The sequence is lazy, finite, and restartable.
func (v *FixedVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a value iterator over the occupied range in index order.
func (v *FixedVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// Refs returns an iterator of element pointers over the occupied range in
// index order, for in-place mutation:
//
//	for p := range vec.Refs() {
//	    *p += 1
//	}
//
// The vec must not be structurally mutated (Push, Insert, Remove, ...)
// while iterating.
func (v *FixedVec[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range v.data {
			if !yield(&v.data[i]) {
				return
			}
		}
	}
}
