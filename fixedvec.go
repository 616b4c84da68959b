package fixedvec

import (
	"fmt"
)

// errFull is the panic message raised when an insertion would exceed the
// fixed capacity.
const errFull = "fixedvec: vec is full; a fixed-capacity vec cannot grow beyond its capacity"

// FixedVec is a vector with a strict, predetermined capacity.
//
// Storage is allocated once at construction and never reallocated, so the
// address of an element never changes while the element stays in the vec.
// See the package documentation for the exact list of operations that end
// or relocate an element's lifetime.
//
// The zero value is a valid vec with zero capacity: permanently empty and
// permanently full. A FixedVec must not be copied after first use; the copy
// would alias the same backing storage.
type FixedVec[T any] struct {
	// data is always sliced to the current length over the full-capacity
	// backing array. cap(data) never changes after construction.
	data []T
}

// New creates an empty vec with the given fixed capacity.
//
// The vec can never grow beyond this capacity. A capacity of zero is valid:
// the vec is permanently empty and permanently full.
//
// Panics if capacity is negative.
func New[T any](capacity int) *FixedVec[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("fixedvec: New requires non-negative capacity, got %d", capacity))
	}
	return &FixedVec[T]{data: make([]T, 0, capacity)}
}

// FromSlice creates a vec with the given capacity whose initial contents
// are a copy of items. items is not retained.
//
// Panics if capacity is negative or len(items) > capacity.
func FromSlice[T any](items []T, capacity int) *FixedVec[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("fixedvec: FromSlice requires non-negative capacity, got %d", capacity))
	}
	if len(items) > capacity {
		panic(fmt.Sprintf("fixedvec: FromSlice source length %d exceeds capacity %d", len(items), capacity))
	}
	data := make([]T, len(items), capacity)
	copy(data, items)
	return &FixedVec[T]{data: data}
}

// Wrap adopts items as the vec's backing storage without copying. The
// capacity is cap(items) and the length len(items).
//
// The vec takes exclusive ownership: the caller must not read or write
// items (or any slice aliasing it) afterwards. Use [FromSlice] when the
// source must stay usable.
func Wrap[T any](items []T) *FixedVec[T] {
	return &FixedVec[T]{data: items}
}

// Cap returns the fixed capacity, constant for the vec's lifetime.
func (v *FixedVec[T]) Cap() int { return cap(v.data) }

// Len returns the current number of elements.
func (v *FixedVec[T]) Len() int { return len(v.data) }

// Room returns the remaining space for new elements: Cap() - Len().
func (v *FixedVec[T]) Room() int { return cap(v.data) - len(v.data) }

// IsFull reports whether Len() == Cap(). A zero-capacity vec is always full.
func (v *FixedVec[T]) IsFull() bool { return len(v.data) == cap(v.data) }

// IsEmpty reports whether the vec holds no elements.
func (v *FixedVec[T]) IsEmpty() bool { return len(v.data) == 0 }

// AsSlice returns a read view of the occupied range without copying.
//
// The view shares backing storage with the vec: it stays coherent under
// in-place writes, but its length is fixed at the moment of the call and
// it is invalidated by any operation that relocates or drops elements.
// Its capacity is clipped to its length, so appending to the view
// reallocates instead of writing into the vec's unoccupied range.
func (v *FixedVec[T]) AsSlice() []T { return v.data[:len(v.data):len(v.data)] }

// ToSlice returns a copy of the contents with len == cap == Len().
func (v *FixedVec[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Unwrap releases the backing storage to the caller and leaves the vec
// empty with zero capacity. The returned slice has len Len() and cap Cap().
//
// Wrap(v.Unwrap()) round-trips length, capacity, and contents.
func (v *FixedVec[T]) Unwrap() []T {
	data := v.data
	v.data = nil
	return data
}

// String formats the vec contents for debugging.
func (v *FixedVec[T]) String() string {
	return fmt.Sprintf("FixedVec%v", v.data)
}

// Equal reports whether the vec's contents element-wise equal other.
// Capacity does not participate in equality.
func Equal[T comparable](v *FixedVec[T], other []T) bool {
	if len(v.data) != len(other) {
		return false
	}
	for i, x := range v.data {
		if x != other[i] {
			return false
		}
	}
	return true
}
