// Package pool provides a fixed-size worker pool with a fork-join
// parallel-for over contiguous index ranges.
//
// The pool is created once and reused across many ParallelFor calls.
// Each worker owns its own task channel, so worker w always receives
// chunk w of a given range. For a fixed n the chunk boundaries are
// stable across calls, which lets callers keep per-worker state
// (scratch buffers, partial sums) without any synchronization.
package pool

import (
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidWorkers = errors.New("pool: worker count must be positive")

// Ensure prepares the runtime to execute the requested number of
// workers in parallel, raising GOMAXPROCS when it is below that count.
// The setting is process-wide and left in place. It reports false only
// when the runtime cannot be made to schedule more than one worker at
// a time, the one environment in which the pool cannot deliver
// parallel execution.
func Ensure(workers int) bool {
	if workers <= 1 {
		return true
	}
	if runtime.GOMAXPROCS(0) < workers {
		runtime.GOMAXPROCS(workers)
	}
	return runtime.GOMAXPROCS(0) > 1
}

type task struct {
	fn     func(worker, lo, hi int)
	lo, hi int
	done   *sync.WaitGroup
}

// Pool is a fixed set of worker goroutines.
type Pool struct {
	chans []chan task
	group errgroup.Group
}

// New starts a pool with the given number of workers.
func New(workers int) (*Pool, error) {
	if workers <= 0 {
		return nil, ErrInvalidWorkers
	}

	p := &Pool{chans: make([]chan task, workers)}
	for w := range p.chans {
		ch := make(chan task, 1)
		p.chans[w] = ch

		p.group.Go(func() error {
			for t := range ch {
				t.fn(w, t.lo, t.hi)
				t.done.Done()
			}
			return nil
		})
	}

	return p, nil
}

// Workers returns the pool size.
func (p *Pool) Workers() int {
	return len(p.chans)
}

// ParallelFor partitions the index range [0, n) into at most Workers()
// contiguous chunks whose sizes differ by at most one, hands chunk w to
// worker w, and blocks until every worker has finished its chunk.
// Ranges handed to fn are disjoint and cover [0, n) exactly.
func (p *Pool) ParallelFor(n int, fn func(worker, lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := len(p.chans)
	base := n / workers
	rem := n % workers

	var done sync.WaitGroup

	lo := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		if size == 0 {
			break
		}

		done.Add(1)
		p.chans[w] <- task{fn: fn, lo: lo, hi: lo + size, done: &done}
		lo += size
	}

	done.Wait()
}

// Close shuts down all workers and waits for them to exit. The pool
// must not be used afterwards.
func (p *Pool) Close() error {
	for _, ch := range p.chans {
		close(ch)
	}
	return p.group.Wait()
}
