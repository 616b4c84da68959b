package fixedvec

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered in a parallel worker together with the
// chunk the worker was processing and the goroutine stack trace captured at
// the point of the panic. The chunk index attributes the panic to a
// sub-range of the vec: chunk c of n covers roughly [c*Len()/n, (c+1)*Len()/n).
//
// By default [ForEach] and [Map] re-raise the *PanicError on the calling
// goroutine after all workers have stopped. With [WithPanicAsError] it is
// returned as a regular error instead.
type PanicError struct {
	// Chunk is the index of the chunk whose worker panicked, in the
	// partition order of [FixedVec.Chunks].
	Chunk int

	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns a human-readable representation of the panic, including the
// chunk attribution, the value, and the full stack trace.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in chunk %d: %v\n\n%s", e.Chunk, e.Value, e.Stack)
}

// Unwrap returns nil. PanicError does not wrap another error.
func (e *PanicError) Unwrap() error { return nil }

func newPanicError(chunk int, v any) *PanicError {
	// 8 KiB is enough for most stack traces. runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Chunk: chunk,
		Value: v,
		Stack: string(buf[:n]),
	}
}
