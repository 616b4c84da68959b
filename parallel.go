package fixedvec

import (
	"context"
	"sync"
)

// ForEach executes fn for every element of vec concurrently. The occupied
// range is split into one contiguous chunk per worker, and each worker
// walks its chunk in index order, so within a chunk fn observes elements
// sequentially.
//
// fn receives a pointer to the element in place. Because chunks are
// disjoint, fn may mutate the element it was handed, but it must not touch
// the vec itself: the vec is single-writer and the workers are its readers.
//
// The first error cancels the context passed to the remaining fn calls,
// stops each worker at its next element, and is returned after all workers
// have drained (fail-fast). A panic in fn is captured with its stack and
// re-raised after all workers have stopped, unless [WithPanicAsError] is
// set.
//
//	err := fixedvec.ForEach(ctx, vec, func(ctx context.Context, n *Node) error {
//	    return n.refresh(ctx)
//	}, fixedvec.WithWorkers(8))
func ForEach[T any](ctx context.Context, vec *FixedVec[T], fn func(ctx context.Context, item *T) error, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := newWorkSet(ctx, cfg)
	for ci, chunk := range vec.Chunks(cfg.workers) {
		w.spawn(ci, func(ctx context.Context) error {
			for i := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(ctx, &chunk[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return w.wait()
}

// Map executes fn for every element of vec concurrently and collects the
// results in index order into a new vec whose capacity equals vec.Len().
//
// Chunking, cancellation, fail-fast error handling, and panic handling
// follow [ForEach]. On error, Map returns nil and the error.
//
//	squares, err := fixedvec.Map(ctx, vec, func(ctx context.Context, x int) (int, error) {
//	    return x * x, nil
//	})
func Map[T, R any](ctx context.Context, vec *FixedVec[T], fn func(ctx context.Context, item T) (R, error), opts ...Option) (*FixedVec[R], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]R, vec.Len())

	w := newWorkSet(ctx, cfg)
	base := 0
	for ci, chunk := range vec.Chunks(cfg.workers) {
		out := results[base : base+len(chunk)]
		base += len(chunk)
		w.spawn(ci, func(ctx context.Context) error {
			for i, item := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := fn(ctx, item)
				if err != nil {
					return err
				}
				out[i] = r // safe: each worker writes a disjoint sub-range
			}
			return nil
		})
	}
	if err := w.wait(); err != nil {
		return nil, err
	}
	return Wrap(results), nil
}

// workSet runs one goroutine per chunk and aggregates their outcomes with
// fail-fast semantics: the first failure wins.
type workSet struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	wg     sync.WaitGroup
	cfg    config

	errOnce  sync.Once
	firstErr error

	panicOnce sync.Once
	panicked  *PanicError
}

func newWorkSet(ctx context.Context, cfg config) *workSet {
	ctx, cancel := context.WithCancelCause(ctx)
	return &workSet{ctx: ctx, cancel: cancel, cfg: cfg}
}

func (w *workSet) spawn(chunk int, fn func(context.Context) error) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		var err error
		func() {
			defer func() {
				if r := recover(); r != nil {
					pe := newPanicError(chunk, r)
					if w.cfg.panicAsErr {
						err = pe
						return
					}
					w.panicOnce.Do(func() {
						w.panicked = pe
						w.cancel(pe)
					})
				}
			}()
			err = fn(w.ctx)
		}()

		if err != nil {
			// Store and cancel in one step so the causing error is recorded
			// before any sibling can observe the cancellation. A sibling that
			// stops on the cancelled shared context therefore always loses
			// the race, whatever its error looks like.
			w.errOnce.Do(func() {
				w.firstErr = err
				w.cancel(err)
			})
		}
	}()
}

// wait blocks until every worker has stopped. It re-raises the first
// captured panic, if any; otherwise it returns the first worker error.
func (w *workSet) wait() error {
	w.wg.Wait()
	w.cancel(nil)

	if w.panicked != nil {
		panic(w.panicked)
	}
	return w.firstErr
}
