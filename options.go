package fixedvec

import "runtime"

type config struct {
	workers    int
	panicAsErr bool
}

// Option configures the parallel helpers [ForEach] and [Map].
type Option func(*config)

func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of worker goroutines, which is also the
// number of chunks the occupied range is split into. The default is
// runtime.GOMAXPROCS(0).
//
// Panics if n <= 0.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic("fixedvec: WithWorkers requires n > 0")
		}
		c.workers = n
	}
}

// WithPanicAsError converts panics in workers to [*PanicError] values
// returned as regular errors, instead of re-raising them on the calling
// goroutine.
func WithPanicAsError() Option {
	return func(c *config) {
		c.panicAsErr = true
	}
}
