package throughput

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-bench/internal/pool"
	"github.com/cwbudde/algo-bench/stats/sample"
)

var (
	ErrInvalidElements        = errors.New("throughput: element count must be positive")
	ErrInvalidTrials          = errors.New("throughput: trial count must be positive")
	ErrInvalidThreads         = errors.New("throughput: thread count must be positive")
	ErrFrameSize              = errors.New("throughput: fft frame size must be a power of two")
	ErrParallelismUnavailable = errors.New("throughput: parallel execution is not available on this runtime")
)

// Runner executes repeated timed trials of a workload on a fixed
// worker pool and aggregates the per-trial throughput samples.
type Runner struct {
	cfg Config
}

// New creates a Runner from the default config and the given options.
// The workload defaults to elementwise multiply.
func New(opts ...Option) (*Runner, error) {
	cfg := ApplyOptions(opts...)
	if cfg.Workload == nil {
		cfg.Workload = NewMul()
	}

	switch {
	case cfg.Elements <= 0:
		return nil, ErrInvalidElements
	case cfg.Trials <= 0:
		return nil, ErrInvalidTrials
	case cfg.Threads <= 0:
		return nil, ErrInvalidThreads
	}

	return &Runner{cfg: cfg}, nil
}

// Config returns the effective run configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Result holds the outcome of a benchmark run. Peak and Average are
// in millions of work items per second; Unit names the item kind.
type Result struct {
	Workload string
	Unit     string
	Peak     float64
	Average  float64
	Samples  []float64
	Stats    sample.Stats
}

// Run executes the configured number of trials and returns the
// aggregated result.
//
// Each trial times one pass of the workload over all items,
// distributed across the pool with a fork-join barrier; timestamping
// and sample collection happen on the calling goroutine between
// trials. A trial shorter than the clock resolution produces an
// infinite sample, which then dominates peak and average; such
// configurations are too small to measure, not errors.
//
// When more than one thread is configured, Run raises GOMAXPROCS to
// the thread count if it is lower; the setting is process-wide and
// stays raised after Run returns. ErrParallelismUnavailable is
// returned, before any allocation, only when the runtime cannot be
// made to schedule workers in parallel at all.
func (r *Runner) Run() (Result, error) {
	cfg := r.cfg

	if !pool.Ensure(cfg.Threads) {
		return Result{}, ErrParallelismUnavailable
	}

	items, err := cfg.Workload.Setup(cfg.Elements, cfg.Threads)
	if err != nil {
		return Result{}, err
	}

	p, err := pool.New(cfg.Threads)
	if err != nil {
		return Result{}, fmt.Errorf("throughput: %w", err)
	}

	samples := make([]float64, 0, cfg.Trials)
	for t := 0; t < cfg.Trials; t++ {
		start := time.Now()
		p.ParallelFor(items, cfg.Workload.Process)
		elapsed := time.Since(start)

		samples = append(samples, float64(items)/elapsed.Seconds()/1e6)
	}

	if err := p.Close(); err != nil {
		return Result{}, fmt.Errorf("throughput: %w", err)
	}
	if err := cfg.Workload.Verify(); err != nil {
		return Result{}, err
	}

	st := sample.Calculate(samples)

	return Result{
		Workload: cfg.Workload.Name(),
		Unit:     cfg.Workload.Unit(),
		Peak:     st.Peak,
		Average:  st.Mean,
		Samples:  samples,
		Stats:    st,
	}, nil
}
