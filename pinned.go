package fixedvec

// Pinned is the capability contract for containers that keep elements at
// stable addresses. Wrapper containers that build self-referential or
// immutable-push structures consume this interface rather than [FixedVec]
// directly.
//
// Relocation rules every implementation must honor:
//
//   - Push never moves an existing element.
//   - Insert at k may relocate only the elements at [k, Len()).
//   - Remove at k may relocate only the elements at [k+1, Len()).
//   - Clear invalidates every element address.
//   - No other operation moves an element.
//
// Capacity and admission semantics (what happens when Room() is zero) are
// the implementation's own; for [FixedVec], insertion into a full container
// panics.
type Pinned[T any] interface {
	Cap() int
	Len() int
	Room() int
	IsFull() bool
	IsEmpty() bool

	Get(index int) (T, bool)
	GetRef(index int) (*T, bool)

	// UnsafePtrAt is the unchecked raw-address entry point; see
	// [FixedVec.UnsafePtrAt] for the dereference preconditions.
	UnsafePtrAt(index int) *T

	Push(value T)
	Insert(index int, value T)
	Remove(index int) T
	Pop() (T, bool)
	Clear()
}

// Splittable is the capability contract for handing a container's occupied
// range to concurrent consumers. Chunks yields non-overlapping read views;
// IntoChunks transfers ownership of the backing storage, leaving the
// container empty.
//
// The container performs no synchronization: readers of Chunks views must
// not run concurrently with a writer.
type Splittable[T any] interface {
	Chunks(n int) [][]T
	IntoChunks(n int) [][]T
}

var (
	_ Pinned[int]     = (*FixedVec[int])(nil)
	_ Splittable[int] = (*FixedVec[int])(nil)
)
