package fixedvec

import "fmt"

// Chunks partitions the occupied range into at most n contiguous,
// non-overlapping views of near-equal size, in index order. Together the
// views cover exactly [0, Len()). An empty vec yields nil; if n exceeds
// Len(), one view per element is returned.
//
// The views share backing storage with the vec: they are safe for
// concurrent readers as long as no writer is active, and they are
// invalidated by any relocating or dropping operation.
//
// Panics if n <= 0.
func (v *FixedVec[T]) Chunks(n int) [][]T {
	if n <= 0 {
		panic(fmt.Sprintf("fixedvec: Chunks requires n > 0, got %d", n))
	}
	return chunkViews(v.data, n)
}

// ChunksOf partitions the occupied range into contiguous, non-overlapping
// views of exactly size elements each, except for a possibly shorter final
// view. An empty vec yields nil.
//
// Panics if size <= 0.
func (v *FixedVec[T]) ChunksOf(size int) [][]T {
	if size <= 0 {
		panic(fmt.Sprintf("fixedvec: ChunksOf requires size > 0, got %d", size))
	}
	if len(v.data) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(v.data)+size-1)/size)
	for i := 0; i < len(v.data); i += size {
		j := min(i+size, len(v.data))
		out = append(out, v.data[i:j:j])
	}
	return out
}

// IntoChunks is the consuming variant of [FixedVec.Chunks]: it partitions
// ownership of the backing storage into at most n contiguous chunks and
// leaves the vec empty with zero capacity. Each chunk is exclusively owned
// by its receiver, so distinct chunks may be read and written concurrently.
//
// Panics if n <= 0.
func (v *FixedVec[T]) IntoChunks(n int) [][]T {
	if n <= 0 {
		panic(fmt.Sprintf("fixedvec: IntoChunks requires n > 0, got %d", n))
	}
	data := v.data
	v.data = nil
	return chunkViews(data, n)
}

// chunkViews splits data into at most n contiguous near-equal parts.
// The first len(data)%n parts are one element longer, so sizes differ by
// at most one.
func chunkViews[T any](data []T, n int) [][]T {
	if len(data) == 0 {
		return nil
	}
	if n > len(data) {
		n = len(data)
	}
	out := make([][]T, 0, n)
	size, rem := len(data)/n, len(data)%n
	for i := 0; i < len(data); {
		j := i + size
		if rem > 0 {
			j++
			rem--
		}
		out = append(out, data[i:j:j])
		i = j
	}
	return out
}
