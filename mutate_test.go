package fixedvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushToCapacity(t *testing.T) {
	for _, capacity := range []int{4, 42, 1000} {
		vec := New[int](capacity)
		for i := 0; i < capacity; i++ {
			assert.Equal(t, i, vec.Len())
			vec.Push(i)
		}

		require.True(t, vec.IsFull())
		for i := 0; i < capacity; i++ {
			assert.Equal(t, i, vec.At(i))
		}
	}
}

func TestPushWhenFull(t *testing.T) {
	vec := New[int](2)
	vec.Push(1)
	vec.Push(2)

	require.PanicsWithValue(t, errFull, func() { vec.Push(3) })

	// The failed push left the vec unchanged.
	assert.Equal(t, 2, vec.Len())
	assert.True(t, Equal(vec, []int{1, 2}))
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		init  []int
		index int
		value int
		want  []int
	}{
		{"front", []int{2, 3}, 0, 1, []int{1, 2, 3}},
		{"middle", []int{1, 3}, 1, 2, []int{1, 2, 3}},
		{"end equals push", []int{1, 2}, 2, 3, []int{1, 2, 3}},
		{"empty", nil, 0, 1, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec := FromSlice(tt.init, 4)
			vec.Insert(tt.index, tt.value)
			assert.True(t, Equal(vec, tt.want), "got %v", vec.AsSlice())
		})
	}
}

func TestInsertPanics(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		vec := FromSlice([]int{1, 2}, 2)
		require.PanicsWithValue(t, errFull, func() { vec.Insert(0, 0) })
		assert.True(t, Equal(vec, []int{1, 2}))
	})
	t.Run("index past length", func(t *testing.T) {
		vec := FromSlice([]int{1}, 4)
		require.Panics(t, func() { vec.Insert(2, 0) })
	})
	t.Run("negative index", func(t *testing.T) {
		vec := FromSlice([]int{1}, 4)
		require.Panics(t, func() { vec.Insert(-1, 0) })
	})
}

func TestExtend(t *testing.T) {
	vec := New[int](10)

	vec.Extend(0, 1, 2)
	vec.Extend()
	vec.Extend(3, 4, 5, 6)

	assert.True(t, Equal(vec, []int{0, 1, 2, 3, 4, 5, 6}))
	assert.Equal(t, 3, vec.Room())
}

func TestExtendWithoutRoom(t *testing.T) {
	vec := New[int](3)
	vec.Push(0)

	require.PanicsWithValue(t, errFull, func() { vec.Extend(1, 2, 3) })
	assert.True(t, Equal(vec, []int{0}), "failed extend must not partially apply")
}

func TestRemove(t *testing.T) {
	vec := FromSlice([]int{0, 1, 2, 3}, 4)

	got := vec.Remove(1)
	assert.Equal(t, 1, got)
	assert.Equal(t, 3, vec.Len())
	assert.True(t, Equal(vec, []int{0, 2, 3}), "tail compacts with no gap")

	got = vec.Remove(2)
	assert.Equal(t, 3, got)
	assert.True(t, Equal(vec, []int{0, 2}))

	require.Panics(t, func() { vec.Remove(2) })
	require.Panics(t, func() { vec.Remove(-1) })
}

func TestRemoveDrains(t *testing.T) {
	vec := New[int](42)
	for i := 0; i < 42; i++ {
		vec.Push(i)
	}
	for !vec.IsEmpty() {
		vec.Remove(vec.Len() / 2)
	}
	assert.Equal(t, 0, vec.Len())
	assert.Equal(t, 42, vec.Cap())
}

func TestPop(t *testing.T) {
	vec := FromSlice([]int{1, 2}, 4)

	x, ok := vec.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, x)

	x, ok = vec.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, x)

	// Popping an empty vec is an expected absence, never a panic.
	x, ok = vec.Pop()
	assert.False(t, ok)
	assert.Zero(t, x)
}

func TestClear(t *testing.T) {
	vec := FromSlice([]int{1, 2, 3}, 10)

	vec.Clear()
	assert.Equal(t, 0, vec.Len())
	assert.Equal(t, 10, vec.Cap(), "capacity survives Clear")
	assert.True(t, vec.IsEmpty())

	// The vec is fully reusable after Clear.
	vec.Push(7)
	assert.True(t, Equal(vec, []int{7}))
}

func TestClearReleasesElements(t *testing.T) {
	vec := New[*int](4)
	x := 42
	vec.Push(&x)

	vec.Clear()

	// The vacated slot must not retain the old pointer.
	p := vec.UnsafePtrAt(0)
	assert.Nil(t, *p)
}

func TestTruncate(t *testing.T) {
	vec := New[int](50)
	for i := 0; i < 42; i++ {
		vec.Push(i)
	}

	vec.Truncate(100)
	assert.Equal(t, 42, vec.Len(), "truncating above the length is a no-op")

	vec.Truncate(21)
	assert.Equal(t, 21, vec.Len())
	for i := 0; i < 21; i++ {
		assert.Equal(t, i, vec.At(i))
	}

	vec.Truncate(0)
	assert.True(t, vec.IsEmpty())
	assert.Equal(t, 50, vec.Cap())

	require.Panics(t, func() { vec.Truncate(-1) })
}

func TestSet(t *testing.T) {
	vec := FromSlice([]int{1, 2, 3}, 3)

	vec.Set(1, 77)
	assert.True(t, Equal(vec, []int{1, 77, 3}))

	require.Panics(t, func() { vec.Set(3, 0) })
	require.Panics(t, func() { vec.Set(-1, 0) })
}

func TestSwap(t *testing.T) {
	vec := New[int](42)
	for i := 0; i < 42; i++ {
		vec.Push(i)
	}

	for i := 0; i < 21; i++ {
		vec.Swap(i, 21+i)
	}

	for i := 0; i < 21; i++ {
		assert.Equal(t, 21+i, vec.At(i))
	}
	for i := 21; i < 42; i++ {
		assert.Equal(t, i-21, vec.At(i))
	}

	require.Panics(t, func() { vec.Swap(0, 42) })
	require.Panics(t, func() { vec.Swap(-1, 0) })
}

// TestFillDrainCycles exercises length bookkeeping through interleaved
// grow/shrink patterns.
func TestFillDrainCycles(t *testing.T) {
	vec := New[int](42)

	fill := func() {
		for i := 0; i < 42; i++ {
			vec.Push(i)
		}
	}

	fill()
	for i := 0; i < 42; i++ {
		assert.Equal(t, 42-i, vec.Len())
		vec.Remove(0)
	}
	require.True(t, vec.IsEmpty())

	fill()
	for i := 41; i >= 0; i-- {
		x, ok := vec.Pop()
		require.True(t, ok)
		assert.Equal(t, i, x)
	}
	require.True(t, vec.IsEmpty())

	fill()
	vec.Clear()
	require.True(t, vec.IsEmpty())

	for i := 0; i < 42; i++ {
		vec.Insert(0, i)
	}
	require.True(t, vec.IsFull())
	assert.Equal(t, 41, vec.At(0))
	assert.Equal(t, 0, vec.At(41))
}
