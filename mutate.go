package fixedvec

import "fmt"

// Push appends value at index Len() and increments the length. No existing
// element moves.
//
// Panics if the vec is full. Capacity exhaustion means the fixed upper
// bound was mis-estimated upstream; that is a programmer error, not a
// recoverable condition.
func (v *FixedVec[T]) Push(value T) {
	if len(v.data) == cap(v.data) {
		panic(errFull)
	}
	v.data = append(v.data, value)
}

// Insert writes value at index, shifting elements at [index, Len()) one
// slot toward the tail. Those shifted elements get new addresses; elements
// before index keep theirs.
//
// index == Len() is allowed and equivalent to [FixedVec.Push].
//
// Panics if the vec is full or index is out of range.
func (v *FixedVec[T]) Insert(index int, value T) {
	if len(v.data) == cap(v.data) {
		panic(errFull)
	}
	if index < 0 || index > len(v.data) {
		panic(fmt.Sprintf("fixedvec: Insert index %d out of range for len %d", index, len(v.data)))
	}
	v.data = append(v.data, value) // grow by one within fixed capacity
	copy(v.data[index+1:], v.data[index:])
	v.data[index] = value
}

// Extend appends items in order.
//
// Panics if Room() < len(items); the vec is unchanged in that case.
func (v *FixedVec[T]) Extend(items ...T) {
	if len(v.data)+len(items) > cap(v.data) {
		panic(errFull)
	}
	v.data = append(v.data, items...)
}

// Remove removes and returns the element at index, shifting elements at
// [index+1, Len()) one slot toward the head to keep logical indices
// contiguous. Those shifted elements get new addresses; elements before
// index keep theirs.
//
// Panics if index is out of range.
func (v *FixedVec[T]) Remove(index int) T {
	if index < 0 || index >= len(v.data) {
		panic(fmt.Sprintf("fixedvec: Remove index %d out of range for len %d", index, len(v.data)))
	}
	out := v.data[index]
	last := len(v.data) - 1
	copy(v.data[index:], v.data[index+1:])
	var zero T
	v.data[last] = zero // release the vacated slot for GC
	v.data = v.data[:last]
	return out
}

// Pop removes and returns the last element. The second return is false if
// the vec is empty; an empty vec is an expected state, not an error.
func (v *FixedVec[T]) Pop() (T, bool) {
	if len(v.data) == 0 {
		var zero T
		return zero, false
	}
	last := len(v.data) - 1
	out := v.data[last]
	var zero T
	v.data[last] = zero
	v.data = v.data[:last]
	return out, true
}

// Clear drops all elements and resets the length to zero. Capacity is
// unchanged. All previously obtained element addresses become invalid.
func (v *FixedVec[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// Truncate drops the elements at [n, Len()). It is a no-op when
// n >= Len(). Only trailing elements are dropped, so no surviving element
// moves.
//
// Panics if n is negative.
func (v *FixedVec[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("fixedvec: Truncate requires non-negative length, got %d", n))
	}
	if n >= len(v.data) {
		return
	}
	clear(v.data[n:])
	v.data = v.data[:n]
}

// Set overwrites the element at index in place. The slot's address is
// unchanged, but the previous value's lifetime in the vec ends.
//
// Panics if index is out of range.
func (v *FixedVec[T]) Set(index int, value T) {
	if index < 0 || index >= len(v.data) {
		panic(fmt.Sprintf("fixedvec: Set index %d out of range for len %d", index, len(v.data)))
	}
	v.data[index] = value
}

// Swap exchanges the elements at a and b. The addresses of exactly those
// two slots are invalidated; every other element stays pinned.
//
// Panics if either index is out of range.
func (v *FixedVec[T]) Swap(a, b int) {
	if a < 0 || a >= len(v.data) {
		panic(fmt.Sprintf("fixedvec: Swap index %d out of range for len %d", a, len(v.data)))
	}
	if b < 0 || b >= len(v.data) {
		panic(fmt.Sprintf("fixedvec: Swap index %d out of range for len %d", b, len(v.data)))
	}
	v.data[a], v.data[b] = v.data[b], v.data[a]
}
