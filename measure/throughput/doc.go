// Package throughput measures the parallel throughput of elementwise
// array kernels.
//
// A Runner executes a fixed number of timed trials. Each trial
// distributes the kernel's work items across a fixed worker pool with
// contiguous disjoint ranges, joins at a barrier, and derives one
// throughput sample (millions of items per second) from the trial's
// wall-clock duration. Samples are aggregated into peak and average
// values after all trials complete.
//
// # Usage
//
// Measure elementwise multiply throughput on four workers:
//
//	r, _ := throughput.New(
//	    throughput.WithElements(1_000_000),
//	    throughput.WithTrials(100),
//	    throughput.WithThreads(4),
//	)
//	res, err := r.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Peak Performance = %8.2f %s\n", res.Peak, res.Unit)
//
// Workloads other than the default multiply kernel are selected with
// WithWorkload:
//
//	r, _ := throughput.New(
//	    throughput.WithWorkload(throughput.NewFFT(512)),
//	    throughput.WithThreads(8),
//	)
//
// Trials run strictly sequentially; only the kernel itself executes in
// parallel, so one trial's timing never overlaps another's work.
package throughput
