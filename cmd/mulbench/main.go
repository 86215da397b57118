// Command mulbench measures parallel elementwise-kernel throughput.
//
// Usage:
//
//	mulbench [flags]
//
// Examples:
//
//	mulbench -threads 4
//	mulbench -size 1000000 -trials 100 -threads 8
//	mulbench -workload fft -fftframe 512 -threads 4
//	mulbench -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-bench/internal/pool"
	"github.com/cwbudde/algo-bench/measure/throughput"
)

type workloadEntry struct {
	name string
	desc string
	make func(fftFrame int) throughput.Workload
}

var registry = []workloadEntry{
	{"mul", "elementwise multiply, C[i] = A[i] * B[i]", func(int) throughput.Workload {
		return throughput.NewMul()
	}},
	{"mulsum", "elementwise multiply with per-worker sum reduction", func(int) throughput.Workload {
		return throughput.NewMulSum()
	}},
	{"fft", "batched forward FFT, one plan per worker", func(frame int) throughput.Workload {
		return throughput.NewFFT(frame)
	}},
}

func main() {
	size := flag.Int("size", 32742, "number of array elements")
	trials := flag.Int("trials", 1000, "number of timed trials")
	threads := flag.Int("threads", 1, "worker thread count")
	workload := flag.String("workload", "mul", "benchmark workload (see -list)")
	fftFrame := flag.Int("fftframe", 256, "frame size for the fft workload (power of two)")
	list := flag.Bool("list", false, "list available workloads")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mulbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Measures parallel kernel throughput over repeated timed trials\n")
		fmt.Fprintf(os.Stderr, "and reports peak and average throughput.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mulbench -threads 4\n")
		fmt.Fprintf(os.Stderr, "  mulbench -size 1000000 -trials 100 -threads 8\n")
		fmt.Fprintf(os.Stderr, "  mulbench -workload fft -fftframe 512 -threads 4\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entry := lookup(*workload)
	if entry == nil {
		fmt.Fprintf(os.Stderr, "error: unknown workload %q (try -list)\n", *workload)
		os.Exit(2)
	}

	if *size <= 0 || *trials <= 0 || *threads <= 0 {
		fmt.Fprintf(os.Stderr, "error: size, trials and threads must be positive\n")
		os.Exit(2)
	}

	if !pool.Ensure(*threads) {
		fmt.Fprintf(os.Stderr, "parallel execution is not supported here -- sorry.\n")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Using %d threads\n", *threads)

	r, err := throughput.New(
		throughput.WithElements(*size),
		throughput.WithTrials(*trials),
		throughput.WithThreads(*threads),
		throughput.WithWorkload(entry.make(*fftFrame)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	res, err := r.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Peak Performance = %8.2f %s\n", res.Peak, res.Unit)
	fmt.Printf("Average Performance = %8.2f %s\n", res.Average, res.Unit)
}

func lookup(name string) *workloadEntry {
	for i := range registry {
		if registry[i].name == name {
			return &registry[i]
		}
	}
	return nil
}

func printList() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range registry {
		fmt.Fprintf(w, "%s\t%s\n", e.name, e.desc)
	}
	w.Flush()
}
